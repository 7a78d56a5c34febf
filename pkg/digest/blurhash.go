// Package digest produces and expands the compact blurhash digest of a
// generated image. The digest doubles as a cache key for the blurred
// placeholder served while the full asset loads.
package digest

import (
	"image"
	"math"

	"github.com/buckket/go-blurhash"
	"github.com/buckket/go-blurhash/base83"

	"github.com/backgen/backgen/pkg/errors"
)

// Component counts of the digest. 4x3 keeps the hash short while still
// following the dominant gradients of a background.
const (
	xComponents = 4
	yComponents = 3
)

// DefaultPunch is the contrast boost applied when expanding a digest.
const DefaultPunch = 1.2

// Encode digests an image.
func Encode(img image.Image) (string, error) {
	hash, err := blurhash.Encode(xComponents, yComponents, img)
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeImage, err, "encoding digest")
	}
	return hash, nil
}

// Preview expands a digest back into a blurred placeholder of the given
// size, boosting contrast by punch. The expansion is the reference
// blurhash reconstruction with a fractional punch factor.
func Preview(hash string, width, height int, punch float64) (*image.RGBA, error) {
	if len(hash) < 6 {
		return nil, errors.New(errors.ErrCodeImage, "digest %q too short", hash)
	}
	sizeFlag, err := base83.Decode(hash[:1])
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeImage, err, "invalid digest")
	}
	numY := sizeFlag/9 + 1
	numX := sizeFlag%9 + 1
	if len(hash) != 4+2*numX*numY {
		return nil, errors.New(errors.ErrCodeImage, "digest length %d does not match %dx%d components", len(hash), numX, numY)
	}

	quantMax, err := base83.Decode(hash[1:2])
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeImage, err, "invalid digest")
	}
	maxValue := (float64(quantMax) + 1) / 166 * punch

	type component struct{ r, g, b float64 }
	comps := make([]component, numX*numY)

	dc, err := base83.Decode(hash[2:6])
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeImage, err, "invalid digest")
	}
	comps[0] = component{
		r: srgbToLinear(dc >> 16),
		g: srgbToLinear((dc >> 8) & 255),
		b: srgbToLinear(dc & 255),
	}

	for i := 1; i < numX*numY; i++ {
		v, err := base83.Decode(hash[4+2*i : 6+2*i])
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeImage, err, "invalid digest")
		}
		comps[i] = component{
			r: signPow((float64(v/(19*19))-9)/9, 2) * maxValue,
			g: signPow((float64((v/19)%19)-9)/9, 2) * maxValue,
			b: signPow((float64(v%19)-9)/9, 2) * maxValue,
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var r, g, b float64
			for j := 0; j < numY; j++ {
				for i := 0; i < numX; i++ {
					basis := math.Cos(math.Pi*float64(x)*float64(i)/float64(width)) *
						math.Cos(math.Pi*float64(y)*float64(j)/float64(height))
					c := comps[j*numX+i]
					r += c.r * basis
					g += c.g * basis
					b += c.b * basis
				}
			}
			idx := img.PixOffset(x, y)
			img.Pix[idx] = linearToSRGB(r)
			img.Pix[idx+1] = linearToSRGB(g)
			img.Pix[idx+2] = linearToSRGB(b)
			img.Pix[idx+3] = 255
		}
	}
	return img, nil
}

func srgbToLinear(v int) float64 {
	f := float64(v) / 255
	if f <= 0.04045 {
		return f / 12.92
	}
	return math.Pow((f+0.055)/1.055, 2.4)
}

func linearToSRGB(v float64) uint8 {
	v = math.Max(0, math.Min(1, v))
	if v <= 0.0031308 {
		return uint8(v*12.92*255 + 0.5)
	}
	return uint8((1.055*math.Pow(v, 1/2.4)-0.055)*255 + 0.5)
}

func signPow(v, exp float64) float64 {
	return math.Copysign(math.Pow(math.Abs(v), exp), v)
}
