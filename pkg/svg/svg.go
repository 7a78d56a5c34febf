// Package svg serializes a generated scene into a minimal vector
// document: one root element carrying the frame's viewBox and one closed
// path element per tile.
package svg

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	svgo "github.com/ajstarks/svgo"

	"github.com/backgen/backgen/pkg/colors"
	"github.com/backgen/backgen/pkg/geom"
)

// strokeLikeFillBelow is the line width under which strokes take the fill
// color instead of the configured line color. Rendering hairlines in the
// fill color hides the anti-aliasing seams between adjacent tiles.
const strokeLikeFillBelow = 0.0001

// minStrokeWidth is the width substituted for a stroke-like-fill hairline.
const minStrokeWidth = 0.1

// Polygon is one closed filled path of the document.
type Polygon struct {
	Path []geom.Pos
	Fill colors.Color
}

// Document is a renderable vector scene.
type Document struct {
	Frame     geom.Frame
	LineWidth float64
	LineColor colors.Color
	Polygons  []Polygon
}

// NewDocument builds an empty document over the frame with the given
// stroke settings.
func NewDocument(f geom.Frame, lineWidth float64, lineColor colors.Color) *Document {
	return &Document{Frame: f, LineWidth: lineWidth, LineColor: lineColor}
}

// Add appends one closed polygon.
func (d *Document) Add(path []geom.Pos, fill colors.Color) {
	d.Polygons = append(d.Polygons, Polygon{Path: path, Fill: fill})
}

// Render writes the document as SVG markup.
func (d *Document) Render(w io.Writer) {
	canvas := svgo.New(w)
	canvas.Startview(d.Frame.W, d.Frame.H, d.Frame.X, d.Frame.Y, d.Frame.W, d.Frame.H)
	for _, poly := range d.Polygons {
		stroke, width := d.LineColor, d.LineWidth
		if d.LineWidth < strokeLikeFillBelow {
			stroke, width = poly.Fill, minStrokeWidth
		}
		style := fmt.Sprintf(`fill="%s" stroke="%s" stroke-width="%.2f"`,
			poly.Fill, stroke, width)
		canvas.Path(pathData(poly.Path), style)
	}
	canvas.End()
}

// Bytes renders the document into memory.
func (d *Document) Bytes() []byte {
	var buf bytes.Buffer
	d.Render(&buf)
	return buf.Bytes()
}

// pathData encodes a closed polygon as SVG path data, coordinates rounded
// to 1/100 unit.
func pathData(path []geom.Pos) string {
	var sb strings.Builder
	for i, p := range path {
		if i == 0 {
			sb.WriteByte('M')
		} else {
			sb.WriteByte('L')
		}
		fmt.Fprintf(&sb, "%.2f %.2f ", p.X, p.Y)
	}
	sb.WriteByte('Z')
	return sb.String()
}
