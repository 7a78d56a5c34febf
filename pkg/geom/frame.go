package geom

import "math"

// Frame is the axis-aligned rectangle a scene is generated into, in
// abstract drawing units. Origin and extents are non-negative.
type Frame struct {
	X, Y, W, H int
}

// Center returns the middle point of the frame.
func (f Frame) Center() Pos {
	return Pos{float64(f.X) + float64(f.W)/2, float64(f.Y) + float64(f.H)/2}
}

// Diagonal returns the length of the frame diagonal. Tilings over-generate
// to this radius so that no gap shows after rotation about the center.
func (f Frame) Diagonal() float64 {
	return math.Hypot(float64(f.W), float64(f.H))
}

// Contains reports whether p lies inside the frame.
func (f Frame) Contains(p Pos) bool {
	return p.X >= float64(f.X) && p.X <= float64(f.X+f.W) &&
		p.Y >= float64(f.Y) && p.Y <= float64(f.Y+f.H)
}
