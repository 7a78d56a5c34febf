package tiling

import (
	"math"

	"github.com/backgen/backgen/pkg/geom"
)

// Hexagons tiles the frame with regular hexagons of circumradius size,
// the whole lattice rotated by rot degrees.
func Hexagons(f geom.Frame, size float64, rot int) []Tile {
	hex := Hexagon(size, rot)
	step := size * math.Sqrt(3)
	u := geom.Polar(rot+30, step)
	v := geom.Polar(rot+90, step)
	return lattice(f, u, v, reach(f, size), func(pos geom.Pos, _, _ int) []Tile {
		return []Tile{hex.At(pos)}
	})
}

// Triangles tiles the frame with equilateral triangles of circumradius
// size. Each lattice cell holds one upward and one downward triangle.
func Triangles(f geom.Frame, size float64, rot int) []Tile {
	up := Triangle(size, rot)
	down := Triangle(size, rot+60)
	side := size * math.Sqrt(3)
	u := geom.Polar(rot+150, side)
	v := geom.Polar(rot+210, side)
	flip := geom.Polar(rot+180, size)
	return lattice(f, u, v, reach(f, size), func(pos geom.Pos, _, _ int) []Tile {
		return []Tile{up.At(pos), down.At(pos.Add(flip))}
	})
}

// HexagonsAndTriangles produces the trihexagonal tiling: hexagons of edge
// size with triangles of the same edge filling the gaps. One hexagon and
// two triangles per lattice cell.
func HexagonsAndTriangles(f geom.Frame, size float64, rot int) []Tile {
	hex := Hexagon(size, rot)
	triRadius := size / math.Sqrt(3)
	triDist := 2 * size / math.Sqrt(3)
	triA := Triangle(triRadius, rot+30)
	triB := Triangle(triRadius, rot+90)
	offA := geom.Polar(rot+30, triDist)
	offB := geom.Polar(rot+90, triDist)
	u := geom.Polar(rot, 2*size)
	v := geom.Polar(rot+60, 2*size)
	return lattice(f, u, v, reach(f, size), func(pos geom.Pos, _, _ int) []Tile {
		return []Tile{
			hex.At(pos),
			triA.At(pos.Add(offA)),
			triB.At(pos.Add(offB)),
		}
	})
}

// SquaresAndTriangles produces the elongated triangular tiling: rows of
// squares of edge size separated by rows of alternating triangles.
func SquaresAndTriangles(f geom.Frame, size float64, rot int) []Tile {
	t := size
	square := Square(t/math.Sqrt2, 0)
	up := Triangle(t/math.Sqrt(3), 90)
	down := Triangle(t/math.Sqrt(3), 270)
	upOff := geom.Pos{X: 0, Y: t/2 + t/(2*math.Sqrt(3))}
	downOff := geom.Pos{X: t / 2, Y: t/2 + t/math.Sqrt(3)}
	u := geom.Pos{X: t, Y: 0}
	v := geom.Pos{X: t / 2, Y: t * (1 + math.Sqrt(3)/2)}
	tiles := lattice(f, u, v, reach(f, size), func(pos geom.Pos, _, _ int) []Tile {
		return []Tile{
			square.At(pos),
			up.At(pos.Add(upOff)),
			down.At(pos.Add(downOff)),
		}
	})
	return rotateTiles(tiles, f, rot)
}

// RhombusTiling tiles the frame with rhombi of the given half-diagonals,
// long diagonal along rot degrees.
func RhombusTiling(f geom.Frame, ldiag, sdiag float64, rot int) []Tile {
	rho := Rhombus(ldiag, sdiag, rot)
	u := geom.Polar(rot, ldiag).Add(geom.Polar(rot+90, sdiag))
	v := geom.Polar(rot, ldiag).Sub(geom.Polar(rot+90, sdiag))
	return lattice(f, u, v, reach(f, ldiag), func(pos geom.Pos, _, _ int) []Tile {
		return []Tile{rho.At(pos)}
	})
}
