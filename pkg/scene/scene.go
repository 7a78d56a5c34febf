// Package scene composes a resolved generation descriptor into drawable
// content: the decorative regions with their color recipes, the tiles of
// the chosen tessellation, and the fill color of any tile position.
//
// Everything here consumes the generation's shared random stream in a
// fixed order: regions first, one color recipe per region next, then the
// tessellation parameters, then one color query per tile in tile order.
package scene

import (
	"math/rand/v2"

	"github.com/backgen/backgen/pkg/colors"
	"github.com/backgen/backgen/pkg/config"
	"github.com/backgen/backgen/pkg/geom"
	"github.com/backgen/backgen/pkg/pattern"
	"github.com/backgen/backgen/pkg/tiling"
)

// ColorItem is the resolved color recipe of one decorative element: a
// fresh base shade, the theme color it blends toward, the blend and
// jitter magnitudes, and the salt rule. Immutable once drawn.
type ColorItem struct {
	Shade     colors.Color
	Theme     colors.Color
	Deviation int
	Distance  int
	Salt      colors.Salt
}

// Scene holds the active regions and their recipes for one generation.
// Read-only after construction.
type Scene struct {
	cfg     config.SceneCfg
	regions []pattern.Region
	items   []ColorItem
}

// New builds the scene: the pattern regions of the configured family,
// then one ColorItem per region in region order.
func New(cfg config.SceneCfg, rng *rand.Rand) *Scene {
	s := &Scene{cfg: cfg, regions: regions(cfg, rng)}
	s.items = make([]ColorItem, 0, len(s.regions))
	for range s.regions {
		s.items = append(s.items, s.drawItem(rng))
	}
	return s
}

func regions(cfg config.SceneCfg, rng *rand.Rand) []pattern.Region {
	f := cfg.Frame
	switch cfg.Pattern {
	case config.FreeCircles:
		return pattern.FreeCircles(f, cfg.NbPattern, rng)
	case config.FreeTriangles:
		return pattern.FreeTriangles(f, cfg.NbPattern, rng)
	case config.FreeStripes:
		return pattern.FreeStripes(f, cfg.NbPattern, cfg.WidthPattern, rng)
	case config.FreeSpirals:
		return pattern.FreeSpirals(f, cfg.NbPattern, cfg.WidthPattern, cfg.TightnessSpiral, rng)
	case config.ConcentricCircles:
		return pattern.ConcentricCircles(f, cfg.NbPattern, rng)
	case config.ParallelStripes:
		return pattern.ParallelStripes(f, cfg.NbPattern, cfg.VarStripes, rng)
	case config.CrossedStripes:
		return pattern.CrossedStripes(f, cfg.NbPattern, cfg.VarStripes, rng)
	case config.ParallelWaves:
		return pattern.ParallelWaves(f, cfg.NbPattern, cfg.WidthPattern, rng)
	default:
		return pattern.ParallelSawteeth(f, cfg.NbPattern, cfg.WidthPattern, rng)
	}
}

// drawItem samples the theme chooser and pairs the picked theme color
// with a fresh random shade and the effective jitter and blend values.
func (s *Scene) drawItem(rng *rand.Rand) ColorItem {
	item, ok := s.cfg.Theme.Choose(rng)
	if !ok {
		item = colors.ThemeItem{Salt: colors.None()}
	}
	deviation := s.cfg.Deviation
	if item.Deviation != nil {
		deviation = *item.Deviation
	}
	distance := s.cfg.Distance
	if item.Distance != nil {
		distance = *item.Distance
	}
	return ColorItem{
		Shade:     colors.Random(rng),
		Theme:     item.Color,
		Deviation: deviation,
		Distance:  distance,
		Salt:      item.Salt,
	}
}

// RegionCount reports how many decorative regions are active.
func (s *Scene) RegionCount() int {
	return len(s.regions)
}

// Color resolves the fill color for one tile position. Regions are
// tested in creation order and the first match wins; a position outside
// every region gets a one-off recipe drawn with the same rules. The
// blend toward the theme is fixed per recipe, the jitter and salt are
// per query.
func (s *Scene) Color(pos geom.Pos, rng *rand.Rand) colors.Color {
	item, found := ColorItem{}, false
	for i, r := range s.regions {
		if r.Contains(pos) {
			item, found = s.items[i], true
			break
		}
	}
	if !found {
		item = s.drawItem(rng)
	}
	c := item.Shade.Meanpoint(item.Theme, item.Distance)
	c = c.Variate(rng, item.Deviation)
	return item.Salt.Apply(rng, c)
}

// Tiles generates the tessellation of the configured family, drawing its
// remaining random parameters. The rhombus short diagonal and the
// pentagon sub-type, when left open, are drawn before the lattice
// rotation.
func (s *Scene) Tiles(rng *rand.Rand) ([]tiling.Tile, error) {
	f, size := s.cfg.Frame, s.cfg.SizeTiling
	switch s.cfg.Tiling.Family {
	case config.TilingHexagons:
		return tiling.Hexagons(f, size, rng.IntN(360)), nil
	case config.TilingTriangles:
		return tiling.Triangles(f, size, rng.IntN(360)), nil
	case config.TilingHexagonsAndTriangles:
		return tiling.HexagonsAndTriangles(f, size, rng.IntN(360)), nil
	case config.TilingSquaresAndTriangles:
		return tiling.SquaresAndTriangles(f, size, rng.IntN(360)), nil
	case config.TilingRhombus:
		sdiag := (0.4 + 0.6*rng.Float64()) * size
		return tiling.RhombusTiling(f, size, sdiag, rng.IntN(360)), nil
	case config.TilingDelaunay:
		return tiling.Delaunay(f, s.cfg.NbDelaunay, rng)
	default:
		sub := s.cfg.Tiling.Pentagon
		if sub == 0 {
			sub = 1 + rng.IntN(6)
		}
		return tiling.Pentagons(f, size, rng.IntN(360), sub), nil
	}
}
