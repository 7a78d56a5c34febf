package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/backgen/backgen/pkg/chooser"
	"github.com/backgen/backgen/pkg/colors"
)

// colorFromValue parses a color literal: a name resolving in the color
// dictionary, a "#RRGGBB" string, or a 3-element integer array.
func colorFromValue(val any, dict map[string]colors.Color) (colors.Color, error) {
	switch v := val.(type) {
	case string:
		if c, ok := dict[v]; ok {
			return c, nil
		}
		if c, ok := colors.ParseHex(v); ok {
			return c, nil
		}
	case []any:
		if len(v) != 3 {
			break
		}
		var c colors.Color
		chans := []*int{&c.R, &c.G, &c.B}
		for i, elem := range v {
			n, ok := elem.(int64)
			if !ok {
				return colors.Color{}, colorFormatError(val)
			}
			*chans[i] = int(n)
		}
		return c, nil
	}
	return colors.Color{}, colorFormatError(val)
}

func colorFormatError(val any) error {
	return fmt.Errorf("%v is not a valid color format; use [0, 0, 255] or \"#0000FF\"", val)
}

// themeItemFromValue parses one theme entry: either a space-separated
// token string ("x<N>" weight, "~<N>" deviation, "!<N>" distance, bare
// token = color reference) or a structured table with explicit fields.
func (r *Resolver) themeItemFromValue(val any, dict map[string]colors.Color) (colors.ThemeItem, int) {
	base := r.defaults.BaseWeight
	switch v := val.(type) {
	case string:
		item := colors.ThemeItem{Salt: colors.None()}
		weight := base
		for _, tok := range strings.Split(v, " ") {
			if tok == "" {
				continue
			}
			switch tok[0] {
			case 'x':
				if w, err := strconv.Atoi(tok[1:]); err == nil {
					weight = w
				} else {
					weight = base
				}
			case '~':
				if n, err := strconv.Atoi(tok[1:]); err == nil && n >= 0 {
					item.Deviation = &n
				}
			case '!':
				if n, err := strconv.Atoi(tok[1:]); err == nil && n >= 0 {
					item.Distance = &n
				}
			default:
				c, err := colorFromValue(tok, dict)
				if err != nil {
					r.logger.Warn("invalid theme color token", "token", tok)
					continue
				}
				item.Color = c
			}
		}
		return item, weight
	case map[string]any:
		item := colors.ThemeItem{Salt: colors.None()}
		if cv, ok := v["color"]; ok {
			c, err := colorFromValue(cv, dict)
			if err != nil {
				r.logger.Warn("invalid theme color", "value", cv)
			}
			item.Color = c
		}
		if n, ok := nonNegativeInt(v["variability"]); ok {
			item.Deviation = &n
		}
		if n, ok := nonNegativeInt(v["distance"]); ok {
			item.Distance = &n
		}
		weight := base
		if n, ok := nonNegativeInt(v["weight"]); ok {
			weight = n
		}
		if sv, ok := asArray(v["salt"]); ok {
			item.Salt = r.saltFromValue(sv, dict)
		}
		return item, weight
	default:
		r.logger.Warn("invalid theme item", "value", val)
		return colors.ThemeItem{Salt: colors.None()}, base
	}
}

// saltFromValue parses the salt array of a structured theme item.
func (r *Resolver) saltFromValue(entries []any, dict map[string]colors.Color) colors.Salt {
	var salt colors.Salt
	for _, e := range entries {
		tbl, ok := e.(map[string]any)
		if !ok {
			continue
		}
		item := colors.SaltItem{Likeliness: 1}
		if cv, ok := tbl["color"]; ok {
			item.Color, _ = colorFromValue(cv, dict)
		}
		switch l := tbl["likeliness"].(type) {
		case float64:
			item.Likeliness = l
		case int64:
			item.Likeliness = float64(l)
		}
		if n, ok := nonNegativeInt(tbl["variability"]); ok {
			item.Variability = n
		}
		salt = append(salt, item)
	}
	return salt
}

// nonNegativeInt coerces a TOML integer or float to a non-negative int.
func nonNegativeInt(val any) (int, bool) {
	switch n := val.(type) {
	case int64:
		if n < 0 {
			return 0, true
		}
		return int(n), true
	case float64:
		if n < 0 {
			return 0, true
		}
		return int(n + 0.5), true
	}
	return 0, false
}

// themeFromValue parses a named theme: a single item, an array of items,
// or references to previously defined themes, flattened in order.
func (r *Resolver) themeFromValue(val any, dict map[string]colors.Color, themes map[string]*chooser.Chooser[colors.ThemeItem]) (*chooser.Chooser[colors.ThemeItem], error) {
	out := chooser.New[colors.ThemeItem]()
	switch v := val.(type) {
	case string:
		if th, ok := themes[v]; ok {
			out.Append(th.Extract())
			return out, nil
		}
		item, weight := r.themeItemFromValue(v, dict)
		out.Push(item, weight)
		return out, nil
	case map[string]any:
		item, weight := r.themeItemFromValue(v, dict)
		out.Push(item, weight)
		return out, nil
	}
	if arr, ok := asArray(val); ok {
		for _, elem := range arr {
			if name, ok := elem.(string); ok {
				if th, ok := themes[name]; ok {
					out.Append(th.Extract())
					continue
				}
			}
			item, weight := r.themeItemFromValue(elem, dict)
			out.Push(item, weight)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%v is not a valid theme; provide a theme item or an array of theme items", val)
}

// asArray normalizes the two array shapes the TOML decoder produces for
// untyped values: inline arrays decode as []any, arrays of tables as
// []map[string]any.
func asArray(val any) ([]any, bool) {
	switch v := val.(type) {
	case []any:
		return v, true
	case []map[string]any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = e
		}
		return out, true
	}
	return nil, false
}

// shapePair is a resolved shape combination: independent choosers for the
// pattern and tiling families it allows.
type shapePair struct {
	patterns *chooser.Chooser[Pattern]
	tilings  *chooser.Chooser[Tiling]
}

// shapesFromValue parses a named shape combination: an array whose
// elements are a shape token, a reference to a previous combination, or
// a [token, weight] pair. Unknown tokens are reported and skipped.
func (r *Resolver) shapesFromValue(val any, shapes map[string]shapePair) shapePair {
	pair := shapePair{
		patterns: chooser.New[Pattern](),
		tilings:  chooser.New[Tiling](),
	}
	arr, ok := val.([]any)
	if !ok {
		r.logger.Warn("not an array of shapes", "value", val)
		return pair
	}
	for _, elem := range arr {
		switch v := elem.(type) {
		case string:
			if sh, ok := shapes[v]; ok {
				pair.patterns.Append(sh.patterns.Extract())
				pair.tilings.Append(sh.tilings.Extract())
				continue
			}
			r.addShape(v, r.defaults.BaseWeight, pair)
		case []any:
			s, okS := first(v).(string)
			w, okW := second(v).(int64)
			if len(v) != 2 || !okS || !okW || w <= 0 {
				r.logger.Warn("invalid shape entry", "value", v)
				continue
			}
			r.addShape(s, int(w), pair)
		default:
			r.logger.Warn("invalid shape entry", "value", v)
		}
	}
	return pair
}

func first(v []any) any {
	if len(v) > 0 {
		return v[0]
	}
	return nil
}

func second(v []any) any {
	if len(v) > 1 {
		return v[1]
	}
	return nil
}

// addShape maps one shape token (short code, dotted abbreviation, or full
// word) onto the pattern or tiling chooser of pair.
func (r *Resolver) addShape(s string, w int, pair shapePair) {
	switch s {
	case "H", "hex.", "hexagons":
		pair.tilings.Push(Tiling{Family: TilingHexagons}, w)
	case "T", "tri.", "triangles":
		pair.tilings.Push(Tiling{Family: TilingTriangles}, w)
	case "H&T", "hex.&tri.", "hexagons&triangles":
		pair.tilings.Push(Tiling{Family: TilingHexagonsAndTriangles}, w)
	case "S&T", "squ.&tri.", "squares&triangles":
		pair.tilings.Push(Tiling{Family: TilingSquaresAndTriangles}, w)
	case "R", "rho.", "rhombus":
		pair.tilings.Push(Tiling{Family: TilingRhombus}, w)
	case "D", "del.", "delaunay":
		pair.tilings.Push(Tiling{Family: TilingDelaunay}, w)
	case "P", "pen.", "pentagons":
		pair.tilings.Push(Tiling{Family: TilingPentagons, Pentagon: 0}, w)
	case "P1", "pen.1", "pentagons-1":
		pair.tilings.Push(Tiling{Family: TilingPentagons, Pentagon: 1}, w)
	case "P2", "pen.2", "pentagons-2":
		pair.tilings.Push(Tiling{Family: TilingPentagons, Pentagon: 2}, w)
	case "P3", "pen.3", "pentagons-3":
		pair.tilings.Push(Tiling{Family: TilingPentagons, Pentagon: 3}, w)
	case "P4", "pen.4", "pentagons-4":
		pair.tilings.Push(Tiling{Family: TilingPentagons, Pentagon: 4}, w)
	case "P5", "pen.5", "pentagons-5":
		pair.tilings.Push(Tiling{Family: TilingPentagons, Pentagon: 5}, w)
	case "P6", "pen.6", "pentagons-6":
		pair.tilings.Push(Tiling{Family: TilingPentagons, Pentagon: 6}, w)
	case "FC", "f-cir.", "free-circles":
		pair.patterns.Push(FreeCircles, w)
	case "FT", "f-tri.", "free-triangles":
		pair.patterns.Push(FreeTriangles, w)
	case "FR", "f-str.", "free-stripes":
		pair.patterns.Push(FreeStripes, w)
	case "FP", "f-spi.", "free-spirals":
		pair.patterns.Push(FreeSpirals, w)
	case "CC", "c-cir.", "concentric-circles":
		pair.patterns.Push(ConcentricCircles, w)
	case "PS", "p-str.", "parallel-stripes":
		pair.patterns.Push(ParallelStripes, w)
	case "CS", "c-str.", "crossed-stripes":
		pair.patterns.Push(CrossedStripes, w)
	case "PW", "p-wav.", "parallel-waves":
		pair.patterns.Push(ParallelWaves, w)
	case "PT", "p-saw.", "parallel-sawteeth":
		pair.patterns.Push(ParallelSawteeth, w)
	default:
		r.logger.Warn("unrecognized shape token", "token", s)
	}
}
