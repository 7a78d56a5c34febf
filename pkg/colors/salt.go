package colors

import "math/rand/v2"

// SaltItem is one probabilistic color-replacement rule entry.
type SaltItem struct {
	Color       Color
	Likeliness  float64 // percentage chance per element
	Variability int     // jitter applied to the replacement color
}

// Salt is a set of replacement entries consulted after the base color of
// an element has been computed. The zero value means "no salt".
type Salt []SaltItem

// None is the distinguished empty salt.
func None() Salt { return nil }

// Apply consults every entry in order, drawing one value per entry so the
// stream consumption does not depend on which entry fires. The first entry
// whose draw lands under its likeliness replaces the color, jittered by
// the entry's own variability.
func (s Salt) Apply(rng *rand.Rand, c Color) Color {
	fired := -1
	for i, item := range s {
		if rng.Float64()*100 < item.Likeliness && fired < 0 {
			fired = i
		}
	}
	if fired < 0 {
		return c
	}
	return s[fired].Color.Variate(rng, s[fired].Variability)
}

// ThemeItem is a named-theme entry: a color plus optional per-item
// overrides of the scene deviation and distance, and a salt rule.
type ThemeItem struct {
	Color     Color
	Deviation *int
	Distance  *int
	Salt      Salt
}
