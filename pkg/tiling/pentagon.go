package tiling

import (
	"math"

	"github.com/backgen/backgen/pkg/geom"
)

// Pentagons dispatches to one of the six pentagonal tilings. The caller
// resolves sub-type 0 (random) before calling.
func Pentagons(f geom.Frame, size float64, rot, subtype int) []Tile {
	switch subtype {
	case 1:
		return pentagonsHouses(f, size, rot, false)
	case 2:
		return pentagonsHouses(f, size, rot, true)
	case 3:
		return pentagonsHexThirds(f, size, rot, false)
	case 4:
		return pentagonsHexThirds(f, size, rot, true)
	case 5:
		return pentagonsSplitSquares(f, size, rot, false)
	default:
		return pentagonsSplitSquares(f, size, rot, true)
	}
}

// house is the square-plus-roof pentagon of edge t, apex up, relative to
// the center of its square part.
func house(t float64) Movable {
	return Movable{
		{X: -t / 2, Y: -t / 2},
		{X: t / 2, Y: -t / 2},
		{X: t / 2, Y: t / 2},
		{X: 0, Y: t},
		{X: -t / 2, Y: t / 2},
	}
}

// pentagonsHouses interlocks rows of upright houses with inverted ones:
// each inverted apex fills the valley between two upright roofs, and the
// band interface is flat so bands stack with any horizontal shift.
// staggered offsets every other band by half a tile.
func pentagonsHouses(f geom.Frame, size float64, rot int, staggered bool) []Tile {
	t := size
	upright := house(t)
	inverted := make(Movable, len(upright))
	for i, p := range upright {
		inverted[i] = p.Neg()
	}
	invOff := geom.Pos{X: t / 2, Y: 1.5 * t}
	u := geom.Pos{X: t, Y: 0}
	v := geom.Pos{X: 0, Y: 2.5 * t}
	tiles := lattice(f, u, v, reach(f, size), func(pos geom.Pos, _, j int) []Tile {
		if staggered && j%2 != 0 {
			pos = pos.Add(geom.Pos{X: t / 2})
		}
		return []Tile{upright.At(pos), inverted.At(pos.Add(invOff))}
	})
	return rotateTiles(tiles, f, rot)
}

// pentagonsHexThirds splits every hexagon of the hexagonal tiling into
// three congruent pentagons running from the center over two vertices to
// the neighbouring edge midpoints. pinwheeled rotates the split by one
// vertex on alternating cells.
func pentagonsHexThirds(f geom.Frame, size float64, rot int, pinwheeled bool) []Tile {
	step := size * math.Sqrt(3)
	u := geom.Polar(rot+30, step)
	v := geom.Polar(rot+90, step)

	thirds := func(startVertex int) []Movable {
		verts := make([]geom.Pos, 6)
		for i := 0; i < 6; i++ {
			verts[i] = geom.Polar(rot+60*(i+startVertex), size)
		}
		mid := func(a, b geom.Pos) geom.Pos { return a.Add(b).Scale(0.5) }
		pents := make([]Movable, 0, 3)
		for k := 0; k < 3; k++ {
			pents = append(pents, Movable{
				geom.Zero,
				mid(verts[(2*k+5)%6], verts[2*k]),
				verts[2*k],
				verts[2*k+1],
				mid(verts[2*k+1], verts[(2*k+2)%6]),
			})
		}
		return pents
	}

	even := thirds(0)
	odd := even
	if pinwheeled {
		odd = thirds(1)
	}

	return lattice(f, u, v, reach(f, size), func(pos geom.Pos, i, j int) []Tile {
		pents := even
		if (i+j)%2 != 0 {
			pents = odd
		}
		tiles := make([]Tile, 0, 3)
		for _, p := range pents {
			tiles = append(tiles, p.At(pos))
		}
		return tiles
	})
}

// pentagonsSplitSquares cuts every square of a square tiling into two
// pentagons along a bent seam. checkered mirrors the seam on alternating
// cells.
func pentagonsSplitSquares(f geom.Frame, size float64, rot int, checkered bool) []Tile {
	t := size
	seamBottom := geom.Pos{X: -0.2 * t, Y: -t / 2}
	seamBend := geom.Pos{X: 0.2 * t, Y: 0}
	seamTop := geom.Pos{X: -0.2 * t, Y: t / 2}

	left := Movable{
		{X: -t / 2, Y: -t / 2},
		seamBottom,
		seamBend,
		seamTop,
		{X: -t / 2, Y: t / 2},
	}
	right := Movable{
		seamBottom,
		{X: t / 2, Y: -t / 2},
		{X: t / 2, Y: t / 2},
		seamTop,
		seamBend,
	}
	mirror := func(m Movable) Movable {
		out := make(Movable, len(m))
		for i, p := range m {
			out[i] = geom.Pos{X: -p.X, Y: p.Y}
		}
		return out
	}
	leftM, rightM := mirror(left), mirror(right)

	u := geom.Pos{X: t, Y: 0}
	v := geom.Pos{X: 0, Y: t}
	tiles := lattice(f, u, v, reach(f, size), func(pos geom.Pos, i, j int) []Tile {
		a, b := left, right
		if checkered && (i+j)%2 != 0 {
			a, b = leftM, rightM
		}
		return []Tile{a.At(pos), b.At(pos)}
	})
	return rotateTiles(tiles, f, rot)
}
