// Package pattern implements the nine decorative region families.
//
// A generator places a count-bounded set of regions across a frame,
// consuming the shared random stream in a fixed order. Every region
// exposes only a point-containment test; overlap between regions is left
// to the caller to resolve.
package pattern

import (
	"math"

	"github.com/backgen/backgen/pkg/geom"
)

// Region is a decorative shape reduced to its containment test.
type Region interface {
	Contains(p geom.Pos) bool
}

// Disc is the filled circle around Center.
type Disc struct {
	Center geom.Pos
	Radius float64
}

func (d Disc) Contains(p geom.Pos) bool {
	return p.Dist(d.Center) <= d.Radius
}

// Tri is the filled triangle ABC, either winding.
type Tri struct {
	A, B, C geom.Pos
}

func (t Tri) Contains(p geom.Pos) bool {
	s1 := geom.CrossSign(t.A, t.B, p)
	s2 := geom.CrossSign(t.B, t.C, p)
	s3 := geom.CrossSign(t.C, t.A, p)
	return s1 == s2 && s2 == s3
}

// Stripe is an infinite straight band of half-width Half around the line
// through Center along the unit direction Dir.
type Stripe struct {
	Center geom.Pos
	Dir    geom.Pos
	Half   float64
}

func (s Stripe) Contains(p geom.Pos) bool {
	d := p.Sub(s.Center)
	return math.Abs(d.X*s.Dir.Y-d.Y*s.Dir.X) <= s.Half
}

// SpiralArm is one arm of an archimedean spiral: the set of points whose
// radial position, measured in turns of pitch Pitch and offset by the
// polar angle, lands within the first Width fraction of a turn.
type SpiralArm struct {
	Center geom.Pos
	Pitch  float64
	Width  float64
}

func (s SpiralArm) Contains(p geom.Pos) bool {
	d := p.Sub(s.Center)
	r := d.Norm()
	turn := math.Atan2(d.Y, d.X) / (2 * math.Pi)
	frac := math.Mod(r/s.Pitch-turn, 1)
	if frac < 0 {
		frac++
	}
	return frac < s.Width
}

// Ring is the annulus Inner <= dist < Outer around Center. A boundless
// ring has no outer limit and absorbs everything past Inner.
type Ring struct {
	Center    geom.Pos
	Inner     float64
	Outer     float64
	Boundless bool
}

func (r Ring) Contains(p geom.Pos) bool {
	d := p.Dist(r.Center)
	return d >= r.Inner && (r.Boundless || d < r.Outer)
}

// Band is the slab From <= proj < To of the projection onto the unit
// direction Dir, measured from Origin. The outermost bands of a parallel
// set are open on one side so the set covers the whole plane.
type Band struct {
	Origin   geom.Pos
	Dir      geom.Pos
	From, To float64
	OpenLow  bool
	OpenHigh bool
}

func (b Band) Contains(p geom.Pos) bool {
	t := p.Sub(b.Origin).Dot(b.Dir)
	return (b.OpenLow || t >= b.From) && (b.OpenHigh || t < b.To)
}

// WaveBand is a Band whose boundaries undulate sinusoidally along the
// lateral axis. Sawtoothed swaps the sinusoid for a triangle wave.
type WaveBand struct {
	Band
	Amp        float64
	Wavelength float64
	Phase      float64
	Sawtoothed bool
}

func (w WaveBand) Contains(p geom.Pos) bool {
	d := p.Sub(w.Origin)
	lat := d.X*w.Dir.Y - d.Y*w.Dir.X
	x := (lat + w.Phase) / w.Wavelength
	var shift float64
	if w.Sawtoothed {
		frac := math.Mod(x, 1)
		if frac < 0 {
			frac++
		}
		shift = 4*math.Abs(frac-0.5) - 1
	} else {
		shift = math.Sin(2 * math.Pi * x)
	}
	t := d.Dot(w.Dir) + w.Amp*shift
	return (w.OpenLow || t >= w.From) && (w.OpenHigh || t < w.To)
}
