package config

import "math/rand/v2"

// TilingFamily identifies one of the seven plane-filling algorithms.
type TilingFamily int

const (
	TilingHexagons TilingFamily = iota
	TilingTriangles
	TilingHexagonsAndTriangles
	TilingSquaresAndTriangles
	TilingRhombus
	TilingDelaunay
	TilingPentagons
)

func (t TilingFamily) String() string {
	switch t {
	case TilingHexagons:
		return "hexagons"
	case TilingTriangles:
		return "triangles"
	case TilingHexagonsAndTriangles:
		return "hexagons&triangles"
	case TilingSquaresAndTriangles:
		return "squares&triangles"
	case TilingRhombus:
		return "rhombus"
	case TilingDelaunay:
		return "delaunay"
	case TilingPentagons:
		return "pentagons"
	}
	return "unknown"
}

// Tiling is a tiling family plus, for pentagons, the sub-type (1–6).
// Sub-type 0 means "pick one of the six at random" at tiling time.
type Tiling struct {
	Family   TilingFamily
	Pentagon int
}

// tilingChoices is the closed set drawn from when nothing constrains the
// family. Order matters: it fixes the index-to-family mapping for a draw.
var tilingChoices = []Tiling{
	{Family: TilingHexagons},
	{Family: TilingTriangles},
	{Family: TilingHexagonsAndTriangles},
	{Family: TilingSquaresAndTriangles},
	{Family: TilingRhombus},
	{Family: TilingDelaunay},
	{Family: TilingPentagons, Pentagon: 0},
}

// RandomTiling picks a tiling family uniformly, consuming one draw.
func RandomTiling(rng *rand.Rand) Tiling {
	return tilingChoices[rng.IntN(len(tilingChoices))]
}

// Pattern identifies one of the nine decorative region families.
type Pattern int

const (
	FreeCircles Pattern = iota
	FreeTriangles
	FreeStripes
	FreeSpirals
	ConcentricCircles
	ParallelStripes
	CrossedStripes
	ParallelWaves
	ParallelSawteeth
)

func (p Pattern) String() string {
	switch p {
	case FreeCircles:
		return "free-circles"
	case FreeTriangles:
		return "free-triangles"
	case FreeStripes:
		return "free-stripes"
	case FreeSpirals:
		return "free-spirals"
	case ConcentricCircles:
		return "concentric-circles"
	case ParallelStripes:
		return "parallel-stripes"
	case CrossedStripes:
		return "crossed-stripes"
	case ParallelWaves:
		return "parallel-waves"
	case ParallelSawteeth:
		return "parallel-sawteeth"
	}
	return "unknown"
}

var patternChoices = []Pattern{
	FreeCircles,
	FreeTriangles,
	FreeStripes,
	FreeSpirals,
	ConcentricCircles,
	ParallelStripes,
	CrossedStripes,
	ParallelWaves,
	ParallelSawteeth,
}

// RandomPattern picks a pattern family uniformly, consuming one draw.
func RandomPattern(rng *rand.Rand) Pattern {
	return patternChoices[rng.IntN(len(patternChoices))]
}
