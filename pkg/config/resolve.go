package config

import (
	"math/rand/v2"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/backgen/backgen/pkg/chooser"
	"github.com/backgen/backgen/pkg/colors"
	"github.com/backgen/backgen/pkg/geom"
)

// Resolver turns a raw MetaConfig into a SceneCfg. It owns the defaults
// table and the logger that configuration defects are reported to.
type Resolver struct {
	defaults Defaults
	logger   *log.Logger
}

// NewResolver builds a resolver over the given defaults table. A nil
// logger silences defect reports.
func NewResolver(d Defaults, logger *log.Logger) *Resolver {
	if logger == nil {
		logger = discard()
	}
	return &Resolver{defaults: d, logger: logger}
}

// Resolve produces the generation descriptor for one seed.
//
// The steps below consume the shared random stream in a fixed sequence;
// their order is part of the reproducibility contract and must not be
// rearranged. timeOfDay is the seed's time projection (hour*100+minute
// for clock-derived seeds, the raw seed otherwise).
func (r *Resolver) Resolve(m MetaConfig, rng *rand.Rand, timeOfDay uint64) SceneCfg {
	d := r.defaults

	// Global scalars: explicit, else document default, else constant.
	deviation, distance := d.Deviation, d.Distance
	size, width, height := d.Size, d.Width, d.Height
	if g := m.Global; g != nil {
		deviation = pick(g.Deviation, d.Deviation)
		if g.Distance != nil {
			distance = *g.Distance
		} else {
			distance = pick(g.Weight, d.Distance) // weight is the legacy name
		}
		size = pick(g.Size, d.Size)
		width = pick(g.Width, d.Width)
		height = pick(g.Height, d.Height)
	}

	// Named colors. Unparsable entries are dropped, not fatal.
	colorDict := make(map[string]colors.Color)
	for _, name := range sortedKeys(m.Colors) {
		c, err := colorFromValue(m.Colors[name], colorDict)
		if err != nil {
			r.logger.Warn("dropping invalid color", "name", name, "err", err)
			continue
		}
		colorDict[name] = c
	}

	// Named themes. References to earlier names flatten in place.
	themes := make(map[string]*chooser.Chooser[colors.ThemeItem])
	for _, name := range sortedKeys(m.Themes) {
		th, err := r.themeFromValue(m.Themes[name], colorDict, themes)
		if err != nil {
			r.logger.Warn("dropping invalid theme", "name", name, "err", err)
			continue
		}
		themes[name] = th
	}

	// Named shape combinations.
	shapes := make(map[string]shapePair)
	for _, name := range sortedKeys(m.Shapes) {
		shapes[name] = r.shapesFromValue(m.Shapes[name], shapes)
	}

	// Time-span entry selection.
	themeName, shapeName, lineColorOverride := r.chooseThemeShapes(rng, m.Entry, timeOfDay)

	// Tiling and pattern families, drawn from the selected combination
	// when it resolves, uniformly otherwise.
	var tiling Tiling
	var pattern Pattern
	if pair, ok := shapes[shapeName]; ok {
		if tl, ok := pair.tilings.Choose(rng); ok {
			tiling = tl
		} else {
			tiling = RandomTiling(rng)
		}
		if pt, ok := pair.patterns.Choose(rng); ok {
			pattern = pt
		} else {
			pattern = RandomPattern(rng)
		}
	} else {
		tiling = RandomTiling(rng)
		pattern = RandomPattern(rng)
	}

	// Family-specific pattern parameters.
	p := &PatternsConfig{}
	if m.Data != nil && m.Data.Patterns != nil {
		p = m.Data.Patterns
	}
	var nbPattern, varStripes int
	var widthPattern, tightnessSpiral float64
	switch pattern {
	case FreeCircles:
		nbPattern = pick(p.NbFreeCircles, d.NbFreeCircles)
	case FreeTriangles:
		nbPattern = pick(p.NbFreeTriangles, d.NbFreeTriangles)
	case FreeStripes:
		nbPattern = pick(p.NbFreeStripes, d.NbFreeStripes)
		widthPattern = pick(p.WidthStripe, d.WidthStripe)
	case FreeSpirals:
		nbPattern = pick(p.NbFreeSpirals, d.NbFreeSpirals)
		widthPattern = pick(p.WidthSpiral, d.WidthSpiral)
		tightnessSpiral = pick(p.TightnessSpiral, d.TightnessSpiral)
	case ConcentricCircles:
		nbPattern = pick(p.NbConcentricCircles, d.NbConcentricCircles)
	case ParallelStripes:
		nbPattern = pick(p.NbParallelStripes, d.NbParallelStripes)
		varStripes = pick(p.VarParallelStripes, d.VarParallelStripes)
	case CrossedStripes:
		nbPattern = pick(p.NbCrossedStripes, d.NbCrossedStripes)
		varStripes = pick(p.VarCrossedStripes, d.VarCrossedStripes)
	case ParallelWaves:
		nbPattern = pick(p.NbParallelWaves, d.NbParallelWaves)
		widthPattern = pick(p.WidthWave, d.WidthWave)
	case ParallelSawteeth:
		nbPattern = pick(p.NbParallelSawteeth, d.NbParallelSawteeth)
		widthPattern = pick(p.WidthSawtooth, d.WidthSawtooth)
	}

	// Without any usable theme, synthesize one from the color dictionary
	// or from a fresh random color.
	if len(themes) == 0 {
		item := colors.ThemeItem{Salt: colors.None()}
		if len(colorDict) == 0 {
			item.Color = colors.Random(rng)
		} else {
			names := sortedKeys(colorDict)
			item.Color = colorDict[names[rng.IntN(len(names))]]
		}
		themes["-default-"] = chooser.New(chooser.Entry[colors.ThemeItem]{Item: item, Weight: d.BaseWeight})
	}

	// Family-specific tiling parameters.
	t := &TilingsConfig{}
	if m.Data != nil && m.Data.Tilings != nil {
		t = m.Data.Tilings
	}
	sizeTiling, nbDelaunay := 0.0, 0
	switch tiling.Family {
	case TilingHexagons:
		sizeTiling = pick(t.SizeHex, size)
	case TilingTriangles:
		sizeTiling = pick(t.SizeTri, size)
	case TilingHexagonsAndTriangles:
		sizeTiling = pick(t.SizeHexAndTri, size)
	case TilingSquaresAndTriangles:
		sizeTiling = pick(t.SizeSquAndTri, size)
	case TilingRhombus:
		sizeTiling = pick(t.SizeRho, size)
	case TilingPentagons:
		sizeTiling = pick(t.SizePen, size)
	case TilingDelaunay:
		nbDelaunay = pick(t.NbDelaunay, d.NbDelaunay)
	}

	// Stroke settings: per-tiling override, else global lines, else
	// constants. The entry line-color override wins when it parses.
	lineWidth, lineColor := d.LineWidth, d.LineColor
	if m.Lines != nil {
		lineWidth, lineColor = m.Lines.settings(tiling.Family, colorDict, d)
	}
	if c, err := colorFromValue(lineColorOverride, colorDict); err == nil {
		lineColor = c
	}

	// Theme lookup; a name that does not resolve falls back to a random
	// defined theme.
	theme, ok := themes[themeName]
	if !ok {
		names := sortedKeys(themes)
		theme = themes[names[rng.IntN(len(names))]]
	}

	return SceneCfg{
		Deviation:       deviation,
		Distance:        distance,
		Theme:           theme,
		Frame:           geom.Frame{X: 0, Y: 0, W: width, H: height},
		Tiling:          tiling,
		SizeTiling:      sizeTiling,
		NbDelaunay:      nbDelaunay,
		Pattern:         pattern,
		NbPattern:       nbPattern,
		VarStripes:      varStripes,
		WidthPattern:    widthPattern,
		TightnessSpiral: tightnessSpiral,
		LineWidth:       lineWidth,
		LineColor:       lineColor,
	}
}

// chooseThemeShapes filters the time-span entries containing timeOfDay,
// weight-chooses one, then picks a theme name, shape-combination name and
// line-color override from it. Absent entries yield empty strings.
func (r *Resolver) chooseThemeShapes(rng *rand.Rand, entries []EntryConfig, timeOfDay uint64) (theme, shape, lineColor string) {
	if len(entries) == 0 {
		return "", "", ""
	}
	valid := chooser.New[int]()
	for i, e := range entries {
		start, end := parseSpan(e.Span)
		if start <= timeOfDay && timeOfDay <= end {
			valid.Push(i, pick(e.Distance, r.defaults.BaseWeight))
		}
	}
	idx, ok := valid.Choose(rng)
	if !ok {
		return "", "", ""
	}
	e := entries[idx]
	if len(e.Themes) > 0 {
		theme = e.Themes[rng.IntN(len(e.Themes))]
	}
	if len(e.Shapes) > 0 {
		shape = e.Shapes[rng.IntN(len(e.Shapes))]
	}
	if e.LineColor != nil {
		lineColor = *e.LineColor
	}
	return theme, shape, lineColor
}

// parseSpan reads a "HHMM-HHMM" span, defaulting to the full day.
func parseSpan(span *string) (start, end uint64) {
	start, end = 0, 2400
	if span == nil {
		return start, end
	}
	markers := strings.Split(*span, "-")
	if len(markers) > 0 {
		if v, err := strconv.ParseUint(markers[0], 10, 64); err == nil {
			start = v
		}
	}
	if len(markers) > 1 {
		if v, err := strconv.ParseUint(markers[1], 10, 64); err == nil {
			end = v
		}
	}
	return start, end
}

// settings resolves the stroke width and color for the chosen tiling:
// per-tiling values first, then the section-wide ones, then defaults.
func (l *LinesConfig) settings(family TilingFamily, dict map[string]colors.Color, d Defaults) (float64, colors.Color) {
	var w *float64
	var c *string
	switch family {
	case TilingHexagons:
		w, c = l.HexWidth, l.HexColor
	case TilingTriangles:
		w, c = l.TriWidth, l.TriColor
	case TilingHexagonsAndTriangles:
		w, c = l.HexAndTriWidth, l.HexAndTriColor
	case TilingSquaresAndTriangles:
		w, c = l.SquAndTriWidth, l.SquAndTriColor
	case TilingRhombus:
		w, c = l.RhoWidth, l.RhoColor
	case TilingPentagons:
		w, c = l.PenWidth, l.PenColor
	case TilingDelaunay:
		w, c = l.DelWidth, l.DelColor
	}

	width := pick(w, pick(l.Width, d.LineWidth))

	for _, candidate := range []*string{c, l.Color} {
		if candidate == nil {
			continue
		}
		if parsed, err := colorFromValue(*candidate, dict); err == nil {
			return width, parsed
		}
	}
	return width, d.LineColor
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
