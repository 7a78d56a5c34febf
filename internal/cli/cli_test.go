package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/backgen/backgen/pkg/config"
	"github.com/backgen/backgen/pkg/errors"
	"github.com/backgen/backgen/pkg/pipeline"
)

func TestFormatForPath(t *testing.T) {
	tests := []struct {
		path    string
		want    string
		wantErr bool
	}{
		{"background.svg", pipeline.FormatSVG, false},
		{"out/wall.png", pipeline.FormatPNG, false},
		{"UPPER.SVG", pipeline.FormatSVG, false},
		{"noext", "", true},
		{"image.gif", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := formatForPath(tt.path)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidFormat) {
					t.Fatalf("want INVALID_FORMAT, got %v", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Fatalf("formatForPath(%q) = %q, %v; want %q", tt.path, got, err, tt.want)
			}
		})
	}
}

func TestResolveSeed(t *testing.T) {
	t.Run("explicit", func(t *testing.T) {
		seed, timeOfDay, err := resolveSeed("1430")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seed != 1430 || timeOfDay != 1430 {
			t.Fatalf("resolveSeed = %d/%d, want 1430/1430", seed, timeOfDay)
		}
	})

	t.Run("invalid", func(t *testing.T) {
		_, _, err := resolveSeed("not-a-number")
		if !errors.Is(err, errors.ErrCodeInvalidSeed) {
			t.Fatalf("want INVALID_SEED, got %v", err)
		}
	})

	t.Run("negative", func(t *testing.T) {
		_, _, err := resolveSeed("-5")
		if !errors.Is(err, errors.ErrCodeInvalidSeed) {
			t.Fatalf("want INVALID_SEED, got %v", err)
		}
	})

	t.Run("clock derived", func(t *testing.T) {
		seed, timeOfDay, err := resolveSeed("")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if seed != timeOfDay {
			t.Fatalf("seed %d and time projection %d must match", seed, timeOfDay)
		}
		if seed > 2359 {
			t.Fatalf("clock seed %d out of HHMM range", seed)
		}
	})
}

func TestRootCommandWiring(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	for _, name := range []string{"generate", "serve", "cache", "completion"} {
		found := false
		for _, cmd := range root.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestBlurPathFor(t *testing.T) {
	tests := []struct{ in, want string }{
		{"background.svg", "background.blur.png"},
		{"out/wall.png", "out/wall.blur.png"},
		{"noext", "noext.blur.png"},
	}
	for _, tt := range tests {
		if got := blurPathFor(tt.in); got != tt.want {
			t.Errorf("blurPathFor(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCheckDestination(t *testing.T) {
	dir := t.TempDir()

	if err := checkDestination(filepath.Join(dir, "bg.svg")); err != nil {
		t.Fatalf("valid destination rejected: %v", err)
	}
	if err := checkDestination(""); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Fatalf("empty path: want INVALID_PATH, got %v", err)
	}
	if err := checkDestination(dir); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Fatalf("directory target: want INVALID_PATH, got %v", err)
	}
	if err := checkDestination(filepath.Join(dir, "missing", "bg.svg")); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Fatalf("missing directory: want INVALID_PATH, got %v", err)
	}
}

func TestGenerateWritesBlurPreview(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "bg.svg")

	w, h := 120, 80
	doc := &config.MetaConfig{
		Global: &config.GlobalConfig{Width: &w, Height: &h},
		Shapes: map[string]any{"fixed": []any{"H"}},
		Entry:  []config.EntryConfig{{Shapes: []string{"fixed"}}},
	}

	c := New(io.Discard, LogInfo)
	opts := pipeline.Options{
		Seed:       1430,
		Formats:    []string{pipeline.FormatSVG},
		WithDigest: true,
		Doc:        doc,
		Logger:     c.Logger,
	}
	if err := c.runGenerate(context.Background(), opts, out, blurPathFor(out), true); err != nil {
		t.Fatalf("runGenerate: %v", err)
	}

	if _, err := os.Stat(out); err != nil {
		t.Fatalf("artifact missing: %v", err)
	}
	blur, err := os.ReadFile(filepath.Join(dir, "bg.blur.png"))
	if err != nil {
		t.Fatalf("blur preview missing: %v", err)
	}
	if len(blur) < 8 || string(blur[1:4]) != "PNG" {
		t.Fatal("blur preview is not a PNG")
	}
}

func TestServeCommandFlags(t *testing.T) {
	c := New(io.Discard, LogInfo)
	cmd := c.serveCommand()
	for _, name := range []string{"addr", "config", "redis", "scope", "no-cache"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("flag %q not registered", name)
		}
	}
}
