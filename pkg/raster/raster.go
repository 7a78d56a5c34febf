// Package raster converts the vector document into a fixed-depth RGBA
// image and encodes it as PNG.
package raster

import (
	"bytes"
	"image"
	"image/png"
	"io"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/backgen/backgen/pkg/errors"
)

// Rasterize renders SVG markup into an RGBA image of the given size.
func Rasterize(svg []byte, width, height int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeImage, err, "parsing vector document")
	}
	icon.SetTarget(0, 0, float64(width), float64(height))

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(width, height, scanner), 1.0)
	return img, nil
}

// EncodePNG writes the image as PNG. Failures here mean the raster
// artifact could not be produced, as opposed to the parse failures of
// Rasterize.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return errors.Wrap(errors.ErrCodeRender, err, "encoding png")
	}
	return nil
}
