// Package geom provides the 2D primitives the tessellation and pattern
// generators are built on: positions with polar construction and line
// intersection, and the rectangular frame every scene is drawn into.
//
// Positions compare for identity on values rounded to 1/100 of a drawing
// unit. Tiles generated by neighbouring lattice cells meet at shared
// vertices whose coordinates differ only by floating-point noise; the
// rounded key keeps them from being treated as distinct anchors.
package geom

import (
	"math"
	"math/rand/v2"

	"github.com/backgen/backgen/pkg/errors"
)

// Pos is a point (or vector) in abstract drawing units.
type Pos struct {
	X, Y float64
}

// Zero is the origin.
var Zero = Pos{}

// Add returns p + q.
func (p Pos) Add(q Pos) Pos { return Pos{p.X + q.X, p.Y + q.Y} }

// Sub returns p - q.
func (p Pos) Sub(q Pos) Pos { return Pos{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by k.
func (p Pos) Scale(k float64) Pos { return Pos{p.X * k, p.Y * k} }

// Neg returns -p.
func (p Pos) Neg() Pos { return Pos{-p.X, -p.Y} }

// Dot returns the dot product of p and q.
func (p Pos) Dot(q Pos) float64 { return p.X*q.X + p.Y*q.Y }

// NormSq returns the squared euclidean norm of p.
func (p Pos) NormSq() float64 { return p.X*p.X + p.Y*p.Y }

// Norm returns the euclidean norm of p.
func (p Pos) Norm() float64 { return math.Sqrt(p.NormSq()) }

// Unit returns p scaled to unit length.
func (p Pos) Unit() Pos { return p.Scale(1 / p.Norm()) }

// Dist returns the distance between p and q.
func (p Pos) Dist(q Pos) float64 { return p.Sub(q).Norm() }

// Project returns the projection of p onto the direction of q.
func (p Pos) Project(q Pos) Pos {
	u := q.Unit()
	return u.Scale(p.Dot(u))
}

// Key is the identity of a position, rounded to the nearest 1/100 unit.
type Key struct {
	X, Y int32
}

// Key returns the rounded identity of p.
func (p Pos) Key() Key {
	return Key{
		X: int32(math.Round(p.X * 100)),
		Y: int32(math.Round(p.Y * 100)),
	}
}

// Radians converts a whole-degree angle to radians.
func Radians(deg int) float64 {
	return float64(deg) * math.Pi / 180
}

// Polar builds the vector of length r at deg degrees from the x axis.
func Polar(deg int, r float64) Pos {
	theta := Radians(deg)
	return Pos{r * math.Cos(theta), r * math.Sin(theta)}
}

// RotateAbout returns p rotated by deg degrees around c.
func (p Pos) RotateAbout(c Pos, deg int) Pos {
	theta := Radians(deg)
	sin, cos := math.Sin(theta), math.Cos(theta)
	d := p.Sub(c)
	return Pos{
		X: c.X + d.X*cos - d.Y*sin,
		Y: c.Y + d.X*sin + d.Y*cos,
	}
}

// RandomIn draws a position in f extended by 10% on every side, so that
// regions anchored near the border still reach past the visible frame.
func RandomIn(f Frame, rng *rand.Rand) Pos {
	errx := float64(f.W) / 10
	erry := float64(f.H) / 10
	return Pos{
		X: float64(f.X) - errx + rng.Float64()*float64(f.W)*1.2,
		Y: float64(f.Y) - erry + rng.Float64()*float64(f.H)*1.2,
	}
}

// Intersect computes the intersection of the line through p1 at angle a1
// (degrees) with the line through p2 at angle a2. Near-parallel lines have
// no usable intersection; that is a numeric singularity in the tessellation
// math and aborts the generation with a GEOMETRY_DEGENERATE error.
func Intersect(p1 Pos, a1 int, p2 Pos, a2 int) (Pos, error) {
	p1b := p1.Add(Polar(a1, 1))
	p2b := p2.Add(Polar(a2, 1))

	dx := Pos{p1.X - p1b.X, p2.X - p2b.X}
	dy := Pos{p1.Y - p1b.Y, p2.Y - p2b.Y}

	det := func(a, b Pos) float64 { return a.X*b.Y - a.Y*b.X }

	div := det(dx, dy)
	if math.Abs(div) < 0.01 {
		return Zero, errors.New(errors.ErrCodeGeometry,
			"near-parallel lines at %v (%d°) and %v (%d°)", p1, a1, p2, a2)
	}
	inv := 1 / div

	d := Pos{det(p1, p1b), det(p2, p2b)}
	return Pos{det(d, dx) * inv, det(d, dy) * inv}, nil
}

// CrossSign reports whether c lies to the left of the segment a→b.
func CrossSign(a, b, c Pos) bool {
	return (a.X-c.X)*(b.Y-c.Y)-(b.X-c.X)*(a.Y-c.Y) > 0
}
