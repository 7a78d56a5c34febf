// Package config loads the optional TOML meta-configuration and resolves
// it, together with a seeded random stream, into the single concrete
// descriptor one generation runs from.
//
// Every field of the document is optional at every level. Resolution
// follows a fixed precedence: explicit value, then section default, then
// global default, then the hard-coded defaults table. Malformed entries
// (colors, themes, shapes) are reported and substituted, never fatal; a
// document that does not parse at all degrades to the empty document.
package config

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// MetaConfig is the raw, fully optional configuration document.
type MetaConfig struct {
	Global *GlobalConfig  `toml:"global"`
	Lines  *LinesConfig   `toml:"lines"`
	Colors map[string]any `toml:"colors"`
	Themes map[string]any `toml:"themes"`
	Shapes map[string]any `toml:"shapes"`
	Data   *DataConfig    `toml:"data"`
	Entry  []EntryConfig  `toml:"entry"`
}

// GlobalConfig holds document-wide sizing and deviation defaults.
type GlobalConfig struct {
	Deviation *int     `toml:"deviation"`
	Weight    *int     `toml:"weight"` // legacy alias for distance
	Distance  *int     `toml:"distance"`
	Size      *float64 `toml:"size"`
	Width     *int     `toml:"width"`
	Height    *int     `toml:"height"`
}

// LinesConfig holds stroke settings, optionally overridden per tiling.
type LinesConfig struct {
	Width *float64 `toml:"width"`
	Color *string  `toml:"color"`

	DelWidth       *float64 `toml:"del_width"`
	DelColor       *string  `toml:"del_color"`
	HexWidth       *float64 `toml:"hex_width"`
	HexColor       *string  `toml:"hex_color"`
	TriWidth       *float64 `toml:"tri_width"`
	TriColor       *string  `toml:"tri_color"`
	RhoWidth       *float64 `toml:"rho_width"`
	RhoColor       *string  `toml:"rho_color"`
	HexAndTriWidth *float64 `toml:"hex_and_tri_width"`
	HexAndTriColor *string  `toml:"hex_and_tri_color"`
	SquAndTriWidth *float64 `toml:"squ_and_tri_width"`
	SquAndTriColor *string  `toml:"squ_and_tri_color"`
	PenWidth       *float64 `toml:"pen_width"`
	PenColor       *string  `toml:"pen_color"`
}

// DataConfig groups pattern and tiling numeric overrides.
type DataConfig struct {
	Patterns *PatternsConfig `toml:"patterns"`
	Tilings  *TilingsConfig  `toml:"tilings"`
}

// TilingsConfig overrides family-specific tiling parameters.
type TilingsConfig struct {
	SizeHex       *float64 `toml:"size_hex"`
	SizeTri       *float64 `toml:"size_tri"`
	SizeHexAndTri *float64 `toml:"size_hex_and_tri"`
	SizeSquAndTri *float64 `toml:"size_squ_and_tri"`
	SizeRho       *float64 `toml:"size_rho"`
	SizePen       *float64 `toml:"size_pen"`
	NbDelaunay    *int     `toml:"nb_delaunay"`
}

// PatternsConfig overrides family-specific pattern parameters.
type PatternsConfig struct {
	NbFreeCircles       *int     `toml:"nb_free_circles"`
	NbFreeSpirals       *int     `toml:"nb_free_spirals"`
	NbFreeStripes       *int     `toml:"nb_free_stripes"`
	NbCrossedStripes    *int     `toml:"nb_crossed_stripes"`
	NbParallelStripes   *int     `toml:"nb_parallel_stripes"`
	NbConcentricCircles *int     `toml:"nb_concentric_circles"`
	NbFreeTriangles     *int     `toml:"nb_free_triangles"`
	NbParallelWaves     *int     `toml:"nb_parallel_waves"`
	NbParallelSawteeth  *int     `toml:"nb_parallel_sawteeth"`
	VarParallelStripes  *int     `toml:"var_parallel_stripes"`
	VarCrossedStripes   *int     `toml:"var_crossed_stripes"`
	WidthSpiral         *float64 `toml:"width_spiral"`
	WidthStripe         *float64 `toml:"width_stripe"`
	WidthWave           *float64 `toml:"width_wave"`
	WidthSawtooth       *float64 `toml:"width_sawtooth"`
	TightnessSpiral     *float64 `toml:"tightness_spiral"`
}

// EntryConfig binds a time-of-day span to a weighted choice of theme,
// shape combination, and line-color override.
type EntryConfig struct {
	Span      *string  `toml:"span"`
	Distance  *int     `toml:"distance"`
	Themes    []string `toml:"themes"`
	Shapes    []string `toml:"shapes"`
	LineColor *string  `toml:"line_color"`
}

// Parse decodes a TOML document. A document that fails to decode degrades
// to the empty document; parsing never fails.
func Parse(src []byte) MetaConfig {
	var m MetaConfig
	if err := toml.Unmarshal(src, &m); err != nil {
		return MetaConfig{}
	}
	return m
}

// Load reads and parses the document at path. A missing or unreadable
// file yields the empty document.
func Load(path string) MetaConfig {
	if path == "" {
		return MetaConfig{}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return MetaConfig{}
	}
	return Parse(data)
}

// discard is the fallback logger for resolvers built without one.
func discard() *log.Logger {
	return log.New(io.Discard)
}
