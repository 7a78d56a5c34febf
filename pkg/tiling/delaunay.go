package tiling

import (
	"math/rand/v2"

	"github.com/fogleman/delaunay"

	"github.com/backgen/backgen/pkg/errors"
	"github.com/backgen/backgen/pkg/geom"
)

// Delaunay triangulates nb random points plus the corners of the frame
// inflated by 10%, so the triangulation always covers the whole frame.
// Each triangle becomes a tile anchored at its centroid.
func Delaunay(f geom.Frame, nb int, rng *rand.Rand) ([]Tile, error) {
	points := make([]delaunay.Point, 0, nb+4)
	for i := 0; i < nb; i++ {
		p := geom.RandomIn(f, rng)
		points = append(points, delaunay.Point{X: p.X, Y: p.Y})
	}
	errx := float64(f.W) / 10
	erry := float64(f.H) / 10
	x0, y0 := float64(f.X)-errx, float64(f.Y)-erry
	x1, y1 := float64(f.X+f.W)+errx, float64(f.Y+f.H)+erry
	points = append(points,
		delaunay.Point{X: x0, Y: y0},
		delaunay.Point{X: x1, Y: y0},
		delaunay.Point{X: x1, Y: y1},
		delaunay.Point{X: x0, Y: y1},
	)

	tri, err := delaunay.Triangulate(points)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeGeometry, err, "triangulation failed")
	}

	tiles := make([]Tile, 0, len(tri.Triangles)/3)
	for i := 0; i+2 < len(tri.Triangles); i += 3 {
		a := tri.Points[tri.Triangles[i]]
		b := tri.Points[tri.Triangles[i+1]]
		c := tri.Points[tri.Triangles[i+2]]
		path := []geom.Pos{
			{X: a.X, Y: a.Y},
			{X: b.X, Y: b.Y},
			{X: c.X, Y: c.Y},
		}
		anchor := geom.Pos{
			X: (a.X + b.X + c.X) / 3,
			Y: (a.Y + b.Y + c.Y) / 3,
		}
		tiles = append(tiles, Tile{Anchor: anchor, Path: path})
	}
	return tiles, nil
}
