package config

import (
	"github.com/backgen/backgen/pkg/chooser"
	"github.com/backgen/backgen/pkg/colors"
	"github.com/backgen/backgen/pkg/geom"
)

// SceneCfg is the fully resolved generation descriptor. Exactly one
// tiling family and one pattern family are chosen per generation; no
// field is optional anymore.
type SceneCfg struct {
	Deviation int
	Distance  int
	Theme     *chooser.Chooser[colors.ThemeItem]
	Frame     geom.Frame

	Tiling     Tiling
	SizeTiling float64
	NbDelaunay int

	Pattern         Pattern
	NbPattern       int
	VarStripes      int
	WidthPattern    float64
	TightnessSpiral float64

	LineWidth float64
	LineColor colors.Color
}
