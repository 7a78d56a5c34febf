// Package tiling implements the seven plane-filling tile generators.
//
// Each generator fills a frame with adjacent, non-overlapping tiles and
// returns, in a deterministic order, every tile's anchor position and its
// closed boundary path. Tiles are over-generated past the frame edges so
// that no gap shows once the whole lattice is rotated about the frame
// center; partially visible tiles are kept, not clipped.
package tiling

import (
	"math"

	"github.com/backgen/backgen/pkg/geom"
)

// Tile is one generated cell: the anchor used for color queries and the
// closed polygon drawn for it.
type Tile struct {
	Anchor geom.Pos
	Path   []geom.Pos
}

// Movable is a polygon described relative to its anchor, placeable at any
// reference position.
type Movable []geom.Pos

// At places the shape at the reference position.
func (m Movable) At(ref geom.Pos) Tile {
	path := make([]geom.Pos, len(m))
	for i, p := range m {
		path[i] = ref.Add(p)
	}
	return Tile{Anchor: ref, Path: path}
}

// Vertex returns the idx-th vertex, wrapping around.
func (m Movable) Vertex(idx int) geom.Pos {
	return m[idx%len(m)]
}

// Side returns the vector from vertex idx to the next one.
func (m Movable) Side(idx int) geom.Pos {
	return m[(idx+1)%len(m)].Sub(m[idx%len(m)])
}

// Hexagon is the regular hexagon of circumradius size with its first
// vertex at rot degrees.
func Hexagon(size float64, rot int) Movable {
	pts := make(Movable, 0, 6)
	for i := 0; i < 6; i++ {
		pts = append(pts, geom.Polar(rot+60*i, size))
	}
	return pts
}

// Triangle is the equilateral triangle of circumradius size with its
// first vertex at rot degrees.
func Triangle(size float64, rot int) Movable {
	pts := make(Movable, 0, 3)
	for i := 0; i < 3; i++ {
		pts = append(pts, geom.Polar(rot+120*i, size))
	}
	return pts
}

// Square is the square of circumradius size rotated by rot degrees.
func Square(size float64, rot int) Movable {
	pts := make(Movable, 0, 4)
	for i := 0; i < 4; i++ {
		pts = append(pts, geom.Polar(rot+45+90*i, size))
	}
	return pts
}

// Rhombus is the rhombus with the given half-diagonals, long diagonal
// along rot degrees.
func Rhombus(ldiag, sdiag float64, rot int) Movable {
	return Movable{
		geom.Polar(rot, ldiag),
		geom.Polar(rot+90, sdiag),
		geom.Polar(rot+180, ldiag),
		geom.Polar(rot+270, sdiag),
	}
}

// lattice walks the affine lattice center + i*u + j*v over every index
// pair that can land within reach of the frame center and collects the
// tiles emitted per cell. Index order (i outer, j inner, both ascending)
// fixes the tile order.
func lattice(f geom.Frame, u, v geom.Pos, reach float64, cell func(pos geom.Pos, i, j int) []Tile) []Tile {
	c := f.Center()

	det := u.X*v.Y - u.Y*v.X
	// Row norms of the inverse basis bound how fast the indices grow
	// with distance from the center.
	iRate := math.Hypot(v.Y, v.X) / math.Abs(det)
	jRate := math.Hypot(u.Y, u.X) / math.Abs(det)
	iMax := int(math.Ceil(reach*iRate)) + 1
	jMax := int(math.Ceil(reach*jRate)) + 1

	var tiles []Tile
	for i := -iMax; i <= iMax; i++ {
		for j := -jMax; j <= jMax; j++ {
			pos := c.Add(u.Scale(float64(i))).Add(v.Scale(float64(j)))
			if pos.Dist(c) > reach {
				continue
			}
			tiles = append(tiles, cell(pos, i, j)...)
		}
	}
	return tiles
}

// reach is the over-generation radius for a frame and tile size.
func reach(f geom.Frame, size float64) float64 {
	return f.Diagonal()/2 + 3*size
}

// rotateTiles rotates every anchor and vertex about the frame center.
// Used by the generators that build their lattice axis-aligned.
func rotateTiles(tiles []Tile, f geom.Frame, rot int) []Tile {
	if rot%360 == 0 {
		return tiles
	}
	c := f.Center()
	for i := range tiles {
		tiles[i].Anchor = tiles[i].Anchor.RotateAbout(c, rot)
		for k := range tiles[i].Path {
			tiles[i].Path[k] = tiles[i].Path[k].RotateAbout(c, rot)
		}
	}
	return tiles
}
