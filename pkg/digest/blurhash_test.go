package digest

import (
	"image"
	"image/color"
	"testing"

	"github.com/backgen/backgen/pkg/errors"
)

// validHash is the reference example digest from the blurhash test suite.
const validHash = "LEHV6nWB2yk8pyo0adR*.7kCMdnj"

func TestEncode(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 8), G: uint8(y * 8), B: 128, A: 255})
		}
	}

	hash, err := Encode(img)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if hash == "" {
		t.Fatal("empty digest")
	}

	again, err := Encode(img)
	if err != nil || again != hash {
		t.Fatalf("Encode not stable: %q vs %q (%v)", hash, again, err)
	}
}

func TestPreview(t *testing.T) {
	img, err := Preview(validHash, 80, 48, DefaultPunch)
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if got := img.Bounds(); got.Dx() != 80 || got.Dy() != 48 {
		t.Fatalf("bounds = %v, want 80x48", got)
	}

	// Every pixel must be opaque.
	for y := 0; y < 48; y += 7 {
		for x := 0; x < 80; x += 7 {
			if img.Pix[img.PixOffset(x, y)+3] != 255 {
				t.Fatalf("pixel (%d,%d) not opaque", x, y)
			}
		}
	}
}

func TestPreviewDeterministic(t *testing.T) {
	a, errA := Preview(validHash, 16, 16, DefaultPunch)
	b, errB := Preview(validHash, 16, 16, DefaultPunch)
	if errA != nil || errB != nil {
		t.Fatalf("unexpected errors: %v, %v", errA, errB)
	}
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("pixel byte %d diverged", i)
		}
	}
}

func TestPreviewInvalidDigest(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"too short", "LEH"},
		{"length mismatch", "LEHV6nWB"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Preview(tt.hash, 8, 8, DefaultPunch)
			if !errors.Is(err, errors.ErrCodeImage) {
				t.Fatalf("want IMAGE_ERROR, got %v", err)
			}
		})
	}
}

func TestEncodePreviewRoundtrip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 24))
	for y := 0; y < 24; y++ {
		for x := 0; x < 40; x++ {
			img.Set(x, y, color.RGBA{R: 30, G: 90, B: 200, A: 255})
		}
	}

	hash, err := Encode(img)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out, err := Preview(hash, 40, 24, 1.0)
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}

	// A flat image digests to a flat preview close to the source color.
	idx := out.PixOffset(20, 12)
	r, g, b := int(out.Pix[idx]), int(out.Pix[idx+1]), int(out.Pix[idx+2])
	if abs(r-30) > 20 || abs(g-90) > 20 || abs(b-200) > 20 {
		t.Fatalf("preview center = (%d,%d,%d), want near (30,90,200)", r, g, b)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
