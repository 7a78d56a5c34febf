package pattern

import (
	"math/rand/v2"
	"testing"

	"github.com/backgen/backgen/pkg/geom"
)

var testFrame = geom.Frame{X: 0, Y: 0, W: 200, H: 100}

func newRng(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// assertFullCoverage probes a grid over the frame; every point must land
// in at least one region.
func assertFullCoverage(t *testing.T, regions []Region) {
	t.Helper()
	for x := 0; x <= testFrame.W; x += 10 {
		for y := 0; y <= testFrame.H; y += 10 {
			p := geom.Pos{X: float64(x) + 0.13, Y: float64(y) + 0.71}
			hit := false
			for _, r := range regions {
				if r.Contains(p) {
					hit = true
					break
				}
			}
			if !hit {
				t.Fatalf("no region covers %v", p)
			}
		}
	}
}

func TestDiscContains(t *testing.T) {
	d := Disc{Center: geom.Pos{X: 10, Y: 10}, Radius: 5}
	if !d.Contains(geom.Pos{X: 12, Y: 10}) {
		t.Error("inside point rejected")
	}
	if d.Contains(geom.Pos{X: 16, Y: 10}) {
		t.Error("outside point accepted")
	}
}

func TestTriContains(t *testing.T) {
	tri := Tri{A: geom.Pos{X: 0, Y: 0}, B: geom.Pos{X: 10, Y: 0}, C: geom.Pos{X: 5, Y: 10}}
	if !tri.Contains(geom.Pos{X: 5, Y: 3}) {
		t.Error("inside point rejected")
	}
	if tri.Contains(geom.Pos{X: 5, Y: 11}) || tri.Contains(geom.Pos{X: -1, Y: 1}) {
		t.Error("outside point accepted")
	}

	// Reversed winding must contain the same points.
	rev := Tri{A: tri.C, B: tri.B, C: tri.A}
	if !rev.Contains(geom.Pos{X: 5, Y: 3}) {
		t.Error("winding must not matter")
	}
}

func TestStripeContains(t *testing.T) {
	s := Stripe{Center: geom.Pos{X: 0, Y: 0}, Dir: geom.Pos{X: 1, Y: 0}, Half: 2}
	if !s.Contains(geom.Pos{X: 100, Y: 1.5}) {
		t.Error("point inside the band rejected")
	}
	if s.Contains(geom.Pos{X: 0, Y: 2.5}) {
		t.Error("point outside the band accepted")
	}
}

func TestSpiralArmContains(t *testing.T) {
	s := SpiralArm{Center: geom.Pos{}, Pitch: 10, Width: 0.3}
	// Along the positive x axis (angle 0) the arm occupies r in
	// [k*pitch, (k+0.3)*pitch).
	if !s.Contains(geom.Pos{X: 12, Y: 0}) {
		t.Error("point on the arm rejected")
	}
	if s.Contains(geom.Pos{X: 17, Y: 0}) {
		t.Error("point between turns accepted")
	}
}

func TestRingContains(t *testing.T) {
	r := Ring{Center: geom.Pos{}, Inner: 5, Outer: 10}
	if !r.Contains(geom.Pos{X: 7, Y: 0}) {
		t.Error("annulus point rejected")
	}
	if r.Contains(geom.Pos{X: 3, Y: 0}) || r.Contains(geom.Pos{X: 11, Y: 0}) {
		t.Error("point outside the annulus accepted")
	}

	boundless := Ring{Center: geom.Pos{}, Inner: 5, Boundless: true}
	if !boundless.Contains(geom.Pos{X: 1000, Y: 1000}) {
		t.Error("boundless ring must absorb far points")
	}
}

func TestBandOpenEnds(t *testing.T) {
	b := Band{Dir: geom.Pos{X: 1, Y: 0}, From: 0, To: 10}
	if b.Contains(geom.Pos{X: -1, Y: 0}) || b.Contains(geom.Pos{X: 10, Y: 0}) {
		t.Error("closed band leaked past its limits")
	}

	open := Band{Dir: geom.Pos{X: 1, Y: 0}, From: 0, To: 10, OpenLow: true, OpenHigh: true}
	if !open.Contains(geom.Pos{X: -1e6, Y: 0}) || !open.Contains(geom.Pos{X: 1e6, Y: 0}) {
		t.Error("open band must absorb the whole axis")
	}
}

func TestWaveBandShift(t *testing.T) {
	w := WaveBand{
		Band:       Band{Dir: geom.Pos{X: 1, Y: 0}, From: 0, To: 10},
		Amp:        3,
		Wavelength: 40,
	}
	// At lat = wavelength/4 the sinusoid peaks, pushing the boundary by
	// the full amplitude.
	if !w.Contains(geom.Pos{X: -2, Y: -10}) {
		t.Error("point inside the shifted band rejected")
	}
	if w.Contains(geom.Pos{X: -4, Y: -10}) {
		t.Error("point past the shifted boundary accepted")
	}
}

func TestGeneratorCounts(t *testing.T) {
	tests := []struct {
		name    string
		regions []Region
		want    int
	}{
		{"free circles", FreeCircles(testFrame, 10, newRng(1)), 10},
		{"free triangles", FreeTriangles(testFrame, 15, newRng(2)), 15},
		{"free stripes", FreeStripes(testFrame, 7, 0.1, newRng(3)), 7},
		{"free spirals", FreeSpirals(testFrame, 3, 0.3, 0.5, newRng(4)), 3},
		{"concentric circles", ConcentricCircles(testFrame, 5, newRng(5)), 5},
		{"parallel stripes", ParallelStripes(testFrame, 15, 15, newRng(6)), 15},
		{"crossed stripes", CrossedStripes(testFrame, 10, 10, newRng(7)), 20},
		{"parallel waves", ParallelWaves(testFrame, 15, 0.3, newRng(8)), 15},
		{"parallel sawteeth", ParallelSawteeth(testFrame, 15, 0.3, newRng(9)), 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.regions) != tt.want {
				t.Fatalf("got %d regions, want %d", len(tt.regions), tt.want)
			}
		})
	}
}

func TestCoveringFamilies(t *testing.T) {
	tests := []struct {
		name    string
		regions []Region
	}{
		{"concentric circles", ConcentricCircles(testFrame, 5, newRng(11))},
		{"parallel stripes", ParallelStripes(testFrame, 15, 15, newRng(12))},
		{"crossed stripes", CrossedStripes(testFrame, 10, 10, newRng(13))},
		{"parallel waves", ParallelWaves(testFrame, 15, 0.3, newRng(14))},
		{"parallel sawteeth", ParallelSawteeth(testFrame, 15, 0.3, newRng(15))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertFullCoverage(t, tt.regions)
		})
	}
}

func TestGeneratorsDeterministic(t *testing.T) {
	a := FreeCircles(testFrame, 5, newRng(42))
	b := FreeCircles(testFrame, 5, newRng(42))
	for i := range a {
		if a[i].(Disc) != b[i].(Disc) {
			t.Fatalf("disc %d diverged", i)
		}
	}
}

func TestCrossedStripesInterleaved(t *testing.T) {
	regions := CrossedStripes(testFrame, 4, 0, newRng(21))
	// Even indices belong to one orientation, odd to the perpendicular one.
	first := regions[0].(Band).Dir
	second := regions[1].(Band).Dir
	if dot := first.Dot(second); dot > 1e-9 || dot < -1e-9 {
		t.Fatalf("interleaved sets are not perpendicular: dot = %v", dot)
	}
	if regions[2].(Band).Dir != first || regions[3].(Band).Dir != second {
		t.Fatal("interleaving order broken")
	}
}
