// Package colors implements the RGB color model of the generator: random
// shades, additive jitter, weighted blends toward a theme color, and the
// salt rule that speckles a fraction of elements with replacement colors.
package colors

import (
	"fmt"
	"math/rand/v2"
	"strconv"
)

// Color is an RGB triple. Channels may exceed 255 while a color is being
// mixed; they are clamped on output.
type Color struct {
	R, G, B int
}

// Clamp caps every channel to [0, 255].
func (c Color) Clamp() Color {
	return Color{clampChannel(c.R), clampChannel(c.G), clampChannel(c.B)}
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// Variate adds uniform noise in (-amount, amount) to each channel,
// flooring at zero. Amounts of zero or less consume no randomness.
func (c Color) Variate(rng *rand.Rand, amount int) Color {
	if amount <= 0 {
		return c
	}
	jitter := func(v int) int {
		v += rng.IntN(2*amount) - amount
		if v < 0 {
			return 0
		}
		return v
	}
	return Color{jitter(c.R), jitter(c.G), jitter(c.B)}
}

// Meanpoint blends c toward the theme color. distance is a percentage:
// 0 keeps the theme color only, 100 keeps c only.
func (c Color) Meanpoint(theme Color, distance int) Color {
	mix := func(a, b int) int { return (a*distance + b*(100-distance)) / 100 }
	return Color{mix(c.R, theme.R), mix(c.G, theme.G), mix(c.B, theme.B)}
}

// Random draws a fresh shade, one channel at a time.
func Random(rng *rand.Rand) Color {
	return Color{rng.IntN(255), rng.IntN(255), rng.IntN(255)}
}

// String renders the clamped color in the SVG format rgb(r,g,b).
func (c Color) String() string {
	v := c.Clamp()
	return fmt.Sprintf("rgb(%d,%d,%d)", v.R, v.G, v.B)
}

// ParseHex parses a "#RRGGBB" literal.
func ParseHex(s string) (Color, bool) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, false
	}
	r, errR := strconv.ParseUint(s[1:3], 16, 8)
	g, errG := strconv.ParseUint(s[3:5], 16, 8)
	b, errB := strconv.ParseUint(s[5:7], 16, 8)
	if errR != nil || errG != nil || errB != nil {
		return Color{}, false
	}
	return Color{int(r), int(g), int(b)}, true
}
