package config

import "github.com/backgen/backgen/pkg/colors"

// Defaults is the table of hard-coded fallback values. It is injected
// into the resolver rather than read from package state so tests can
// substitute their own table.
type Defaults struct {
	Deviation int
	Distance  int
	Size      float64
	Width     int
	Height    int

	NbFreeCircles       int
	NbFreeTriangles     int
	NbFreeStripes       int
	NbParallelStripes   int
	NbConcentricCircles int
	NbCrossedStripes    int
	NbFreeSpirals       int
	NbParallelWaves     int
	NbParallelSawteeth  int
	VarParallelStripes  int
	VarCrossedStripes   int
	WidthSpiral         float64
	WidthStripe         float64
	WidthWave           float64
	WidthSawtooth       float64
	TightnessSpiral     float64
	NbDelaunay          int

	LineWidth float64
	LineColor colors.Color

	// BaseWeight is the weight of chooser entries that do not carry an
	// explicit one.
	BaseWeight int
}

// Standard returns the documented defaults table.
func Standard() Defaults {
	return Defaults{
		Deviation: 20,
		Distance:  40,
		Size:      15,
		Width:     1000,
		Height:    600,

		NbFreeCircles:       10,
		NbFreeTriangles:     15,
		NbFreeStripes:       7,
		NbParallelStripes:   15,
		NbConcentricCircles: 5,
		NbCrossedStripes:    10,
		NbFreeSpirals:       3,
		NbParallelWaves:     15,
		NbParallelSawteeth:  15,
		VarParallelStripes:  15,
		VarCrossedStripes:   10,
		WidthSpiral:         0.3,
		WidthStripe:         0.1,
		WidthWave:           0.3,
		WidthSawtooth:       0.3,
		TightnessSpiral:     0.5,
		NbDelaunay:          1000,

		LineWidth: 1.0,
		LineColor: colors.Color{},

		BaseWeight: 10,
	}
}

// pick resolves one optional scalar: the explicit value when present,
// the fallback otherwise. Used uniformly so that the precedence rule
// lives in one place.
func pick[T any](explicit *T, fallback T) T {
	if explicit != nil {
		return *explicit
	}
	return fallback
}
