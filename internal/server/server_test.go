package server

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/backgen/backgen/pkg/cache"
	"github.com/backgen/backgen/pkg/errors"
	"github.com/backgen/backgen/pkg/pipeline"
)

// testServer pins a tiny frame and the hexagon tiling so asset requests
// stay fast.
func testServer(t *testing.T) *Server {
	return testServerWith(t, cache.NewNullCache())
}

func testServerWith(t *testing.T, store cache.Cache) *Server {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "backgen.toml")
	doc := `
[global]
width = 120
height = 80

[shapes]
fixed = ["H"]

[[entry]]
shapes = ["fixed"]
`
	if err := os.WriteFile(cfgPath, []byte(doc), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	logger := log.New(io.Discard)
	runner := pipeline.NewRunner(store, nil, logger)
	return New(runner, logger, WithConfigPath(cfgPath))
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestIndexRedirects(t *testing.T) {
	rec := get(t, testServer(t), "/")
	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want 302", rec.Code)
	}
	loc := rec.Header().Get("Location")
	if !strings.HasPrefix(loc, "/gen/") {
		t.Fatalf("Location = %q", loc)
	}
	if _, err := parseSeed(strings.TrimPrefix(loc, "/gen/")); err != nil {
		t.Fatalf("redirect target is not a seed: %q", loc)
	}
}

func TestGenQueryRedirects(t *testing.T) {
	s := testServer(t)

	rec := get(t, s, "/gen?id=12")
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/gen/12" {
		t.Fatalf("status %d, Location %q", rec.Code, rec.Header().Get("Location"))
	}

	rec = get(t, s, "/gen?id=abc")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad id: status = %d, want 400", rec.Code)
	}
}

func TestGenPage(t *testing.T) {
	s := testServer(t)

	rec := get(t, s, "/gen/12")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "/assets/12.gen.png") || !strings.Contains(body, "/assets/12.blur.png") {
		t.Error("page must reference the seed's assets")
	}

	rec = get(t, s, "/gen/abc")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad seed: status = %d, want 400", rec.Code)
	}
}

func TestAssetSVG(t *testing.T) {
	rec := get(t, testServer(t), "/assets/12.gen.svg")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}
	if cc := rec.Header().Get("Cache-Control"); !strings.Contains(cc, "max-age=86400") {
		t.Errorf("Cache-Control = %q", cc)
	}
	if !strings.Contains(rec.Body.String(), "<svg") {
		t.Error("body is not SVG markup")
	}
}

func TestAssetBlur(t *testing.T) {
	rec := get(t, testServer(t), "/assets/12.blur.png")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q", ct)
	}
	// PNG signature
	if body := rec.Body.Bytes(); len(body) < 8 || string(body[1:4]) != "PNG" {
		t.Error("body is not a PNG")
	}
}

func TestAssetErrors(t *testing.T) {
	s := testServer(t)
	tests := []struct {
		path string
		want int
	}{
		{"/assets/noseparator", http.StatusNotFound},
		{"/assets/12.unknown", http.StatusNotFound},
		{"/assets/abc.gen.svg", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := get(t, s, tt.path)
			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestRequestIDHeader(t *testing.T) {
	rec := get(t, testServer(t), "/")
	if rec.Header().Get("X-Request-Id") == "" {
		t.Fatal("missing X-Request-Id header")
	}
}

func TestParseSeed(t *testing.T) {
	if id, err := parseSeed("42"); err != nil || id != 42 {
		t.Fatalf("parseSeed(42) = %d, %v", id, err)
	}
	if _, err := parseSeed("x"); !errors.Is(err, errors.ErrCodeInvalidSeed) {
		t.Fatalf("want INVALID_SEED, got %v", err)
	}
}

// memCache is an inspectable in-memory cache backend.
type memCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{entries: map[string][]byte{}}
}

func (m *memCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.entries[key]
	return data, ok, nil
}

func (m *memCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = data
	return nil
}

func (m *memCache) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

func (m *memCache) Close() error { return nil }

func TestBlurPreviewCached(t *testing.T) {
	store := newMemCache()
	s := testServerWith(t, store)

	first := get(t, s, "/assets/12.blur.png")
	if first.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", first.Code, first.Body.String())
	}

	var key string
	store.mu.Lock()
	for k := range store.entries {
		if strings.HasPrefix(k, "preview:") {
			key = k
		}
	}
	store.mu.Unlock()
	if key == "" {
		t.Fatal("blur preview was not stored in the cache")
	}

	// Poison the cached preview; the next request must serve it verbatim
	// instead of re-expanding the digest.
	store.mu.Lock()
	store.entries[key] = []byte("sentinel")
	store.mu.Unlock()

	second := get(t, s, "/assets/12.blur.png")
	if second.Body.String() != "sentinel" {
		t.Fatal("second request did not come from the preview cache")
	}
}
