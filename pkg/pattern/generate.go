package pattern

import (
	"math/rand/v2"

	"github.com/backgen/backgen/pkg/geom"
)

// Each generator consumes the random stream in a fixed per-region order;
// that order is part of the reproducibility contract.

// FreeCircles scatters nb discs across the frame. Per disc: center, then
// radius between 5% and 25% of the frame diagonal.
func FreeCircles(f geom.Frame, nb int, rng *rand.Rand) []Region {
	diag := f.Diagonal()
	regions := make([]Region, 0, nb)
	for i := 0; i < nb; i++ {
		center := geom.RandomIn(f, rng)
		radius := (0.05 + 0.2*rng.Float64()) * diag
		regions = append(regions, Disc{Center: center, Radius: radius})
	}
	return regions
}

// FreeTriangles scatters nb triangles, three independent corners each.
func FreeTriangles(f geom.Frame, nb int, rng *rand.Rand) []Region {
	regions := make([]Region, 0, nb)
	for i := 0; i < nb; i++ {
		a := geom.RandomIn(f, rng)
		b := geom.RandomIn(f, rng)
		c := geom.RandomIn(f, rng)
		regions = append(regions, Tri{A: a, B: b, C: c})
	}
	return regions
}

// FreeStripes scatters nb straight bands. Per stripe: center, then
// orientation. width is the stripe width as a fraction of the diagonal.
func FreeStripes(f geom.Frame, nb int, width float64, rng *rand.Rand) []Region {
	half := width * f.Diagonal() / 2
	regions := make([]Region, 0, nb)
	for i := 0; i < nb; i++ {
		center := geom.RandomIn(f, rng)
		dir := geom.Polar(rng.IntN(360), 1)
		regions = append(regions, Stripe{Center: center, Dir: dir, Half: half})
	}
	return regions
}

// FreeSpirals scatters nb spiral arms. Per spiral: center only; pitch
// derives from tightness, arm thickness from width (fraction of a turn).
func FreeSpirals(f geom.Frame, nb int, width, tightness float64, rng *rand.Rand) []Region {
	pitch := tightness * f.Diagonal() / 10
	regions := make([]Region, 0, nb)
	for i := 0; i < nb; i++ {
		center := geom.RandomIn(f, rng)
		regions = append(regions, SpiralArm{Center: center, Pitch: pitch, Width: width})
	}
	return regions
}

// ConcentricCircles rings a random center with nb equal-step annuli, the
// outermost boundless so the set covers the whole frame.
func ConcentricCircles(f geom.Frame, nb int, rng *rand.Rand) []Region {
	center := geom.RandomIn(f, rng)
	step := f.Diagonal() / (2 * float64(nb))
	regions := make([]Region, 0, nb)
	for i := 0; i < nb; i++ {
		regions = append(regions, Ring{
			Center:    center,
			Inner:     float64(i) * step,
			Outer:     float64(i+1) * step,
			Boundless: i == nb-1,
		})
	}
	return regions
}

// ParallelStripes covers the frame with nb parallel bands of jittered
// width. One orientation draw, then one width draw per band; variation is
// the width jitter in percent.
func ParallelStripes(f geom.Frame, nb, variation int, rng *rand.Rand) []Region {
	dir := geom.Polar(rng.IntN(360), 1)
	return bandSet(f, nb, variation, dir, rng)
}

// CrossedStripes interleaves two perpendicular band sets. One orientation
// draw, then nb width draws for the first set and nb for the second. The
// interleaved order makes first-match containment weave the two sets.
func CrossedStripes(f geom.Frame, nb, variation int, rng *rand.Rand) []Region {
	angle := rng.IntN(360)
	along := bandSet(f, nb, variation, geom.Polar(angle, 1), rng)
	across := bandSet(f, nb, variation, geom.Polar(angle+90, 1), rng)
	regions := make([]Region, 0, 2*nb)
	for i := 0; i < nb; i++ {
		regions = append(regions, along[i], across[i])
	}
	return regions
}

// ParallelWaves covers the frame with nb bands whose boundaries undulate
// sinusoidally. One orientation draw, then one phase draw shared by the
// set. width sets the amplitude as a fraction of the band width.
func ParallelWaves(f geom.Frame, nb int, width float64, rng *rand.Rand) []Region {
	return waveSet(f, nb, width, false, rng)
}

// ParallelSawteeth is ParallelWaves with a triangle-wave boundary.
func ParallelSawteeth(f geom.Frame, nb int, width float64, rng *rand.Rand) []Region {
	return waveSet(f, nb, width, true, rng)
}

// bandSet splits the projection span of the frame onto dir into nb bands
// of jittered width, the outer two open-ended.
func bandSet(f geom.Frame, nb, variation int, dir geom.Pos, rng *rand.Rand) []Region {
	origin := f.Center()
	diag := f.Diagonal()
	base := diag / float64(nb)
	cur := -diag / 2
	regions := make([]Region, 0, nb)
	for i := 0; i < nb; i++ {
		w := base * (1 + (2*rng.Float64()-1)*float64(variation)/100)
		regions = append(regions, Band{
			Origin:   origin,
			Dir:      dir,
			From:     cur,
			To:       cur + w,
			OpenLow:  i == 0,
			OpenHigh: i == nb-1,
		})
		cur += w
	}
	return regions
}

// waveSet splits the projection span into nb equal bands with undulating
// boundaries. All bands share one phase, so neighbouring boundaries
// coincide and the set partitions the plane.
func waveSet(f geom.Frame, nb int, width float64, sawtoothed bool, rng *rand.Rand) []Region {
	origin := f.Center()
	dir := geom.Polar(rng.IntN(360), 1)
	diag := f.Diagonal()
	base := diag / float64(nb)
	wavelength := 4 * base
	amp := width * base
	phase := rng.Float64() * wavelength
	cur := -diag / 2
	regions := make([]Region, 0, nb)
	for i := 0; i < nb; i++ {
		regions = append(regions, WaveBand{
			Band: Band{
				Origin:   origin,
				Dir:      dir,
				From:     cur,
				To:       cur + base,
				OpenLow:  i == 0,
				OpenHigh: i == nb-1,
			},
			Amp:        amp,
			Wavelength: wavelength,
			Phase:      phase,
			Sawtoothed: sawtoothed,
		})
		cur += base
	}
	return regions
}
