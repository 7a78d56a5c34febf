package tiling

import (
	"math/rand/v2"
	"testing"

	"github.com/backgen/backgen/pkg/geom"
)

var testFrame = geom.Frame{X: 0, Y: 0, W: 200, H: 100}

func newRng(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// inPolygon is a ray-casting containment test for the convexity-free
// tile polygons.
func inPolygon(path []geom.Pos, p geom.Pos) bool {
	inside := false
	n := len(path)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := path[i], path[j]
		if (a.Y > p.Y) != (b.Y > p.Y) &&
			p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
	}
	return inside
}

// covered reports whether some tile contains p.
func covered(tiles []Tile, p geom.Pos) bool {
	for _, t := range tiles {
		if inPolygon(t.Path, p) {
			return true
		}
	}
	return false
}

// sampleGrid probes a coarse grid over the frame and fails on the first
// uncovered point.
func assertCoverage(t *testing.T, tiles []Tile) {
	t.Helper()
	for x := 5; x < testFrame.W; x += 24 {
		for y := 5; y < testFrame.H; y += 24 {
			p := geom.Pos{X: float64(x) + 0.31, Y: float64(y) + 0.47}
			if !covered(tiles, p) {
				t.Fatalf("no tile covers %v", p)
			}
		}
	}
}

func TestMovableAt(t *testing.T) {
	m := Movable{{X: 1, Y: 0}, {X: 0, Y: 1}}
	tile := m.At(geom.Pos{X: 10, Y: 20})
	if tile.Anchor != (geom.Pos{X: 10, Y: 20}) {
		t.Errorf("anchor = %v", tile.Anchor)
	}
	if tile.Path[0] != (geom.Pos{X: 11, Y: 20}) || tile.Path[1] != (geom.Pos{X: 10, Y: 21}) {
		t.Errorf("path = %v", tile.Path)
	}
}

func TestRegularTilingsCoverFrame(t *testing.T) {
	tests := []struct {
		name  string
		tiles []Tile
		sides int
	}{
		{"hexagons", Hexagons(testFrame, 15, 17), 6},
		{"triangles", Triangles(testFrame, 15, 43), 3},
		{"rhombus", RhombusTiling(testFrame, 15, 8, 77), 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.tiles) == 0 {
				t.Fatal("no tiles generated")
			}
			for _, tile := range tt.tiles {
				if len(tile.Path) != tt.sides {
					t.Fatalf("tile has %d vertices, want %d", len(tile.Path), tt.sides)
				}
			}
			assertCoverage(t, tt.tiles)
		})
	}
}

func TestMixedTilingsCoverFrame(t *testing.T) {
	tests := []struct {
		name  string
		tiles []Tile
	}{
		{"hexagons and triangles", HexagonsAndTriangles(testFrame, 15, 29)},
		{"squares and triangles", SquaresAndTriangles(testFrame, 15, 61)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.tiles) == 0 {
				t.Fatal("no tiles generated")
			}
			assertCoverage(t, tt.tiles)
		})
	}
}

func TestPentagonSubtypes(t *testing.T) {
	for subtype := 1; subtype <= 6; subtype++ {
		tiles := Pentagons(testFrame, 15, 31, subtype)
		if len(tiles) == 0 {
			t.Fatalf("subtype %d: no tiles generated", subtype)
		}
		for _, tile := range tiles {
			if len(tile.Path) != 5 {
				t.Fatalf("subtype %d: tile has %d vertices, want 5", subtype, len(tile.Path))
			}
		}
		assertCoverage(t, tiles)
	}
}

func TestTilingDeterministic(t *testing.T) {
	a := Hexagons(testFrame, 15, 45)
	b := Hexagons(testFrame, 15, 45)
	if len(a) != len(b) {
		t.Fatalf("tile counts diverged: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Anchor != b[i].Anchor {
			t.Fatalf("tile %d anchor diverged", i)
		}
	}
}

func TestRotateTilesZeroIsNoOp(t *testing.T) {
	tiles := []Tile{{Anchor: geom.Pos{X: 1, Y: 2}, Path: []geom.Pos{{X: 0, Y: 0}}}}
	got := rotateTiles(tiles, testFrame, 0)
	if got[0].Anchor != (geom.Pos{X: 1, Y: 2}) || got[0].Path[0] != (geom.Pos{}) {
		t.Fatal("rot 0 must leave tiles untouched")
	}
}

func TestDelaunay(t *testing.T) {
	tiles, err := Delaunay(testFrame, 200, newRng(13))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tiles) == 0 {
		t.Fatal("no tiles generated")
	}
	for _, tile := range tiles {
		if len(tile.Path) != 3 {
			t.Fatalf("tile has %d vertices, want 3", len(tile.Path))
		}
	}
	assertCoverage(t, tiles)
}

func TestDelaunayDeterministic(t *testing.T) {
	a, errA := Delaunay(testFrame, 50, newRng(5))
	b, errB := Delaunay(testFrame, 50, newRng(5))
	if errA != nil || errB != nil {
		t.Fatalf("unexpected errors: %v, %v", errA, errB)
	}
	if len(a) != len(b) {
		t.Fatalf("tile counts diverged: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Anchor != b[i].Anchor {
			t.Fatalf("tile %d anchor diverged", i)
		}
	}
}
