package server

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/backgen/backgen/pkg/cache"
	"github.com/backgen/backgen/pkg/digest"
	"github.com/backgen/backgen/pkg/errors"
	"github.com/backgen/backgen/pkg/pipeline"
	"github.com/backgen/backgen/pkg/raster"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTmpl = template.Must(template.ParseFS(templateFS, "templates/page.html"))

// Blur placeholders keep the default 5:3 frame aspect at thumbnail size.
const (
	blurWidth  = 80
	blurHeight = 48
)

// handleIndex redirects to a fresh random seed.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, fmt.Sprintf("/gen/%d", randomSeed()), http.StatusFound)
}

// handleGenQuery redirects the ?id= form to the canonical page URL.
func (s *Server) handleGenQuery(w http.ResponseWriter, r *http.Request) {
	id, err := parseSeed(r.URL.Query().Get("id"))
	if err != nil {
		http.Error(w, errors.UserMessage(err), http.StatusBadRequest)
		return
	}
	http.Redirect(w, r, fmt.Sprintf("/gen/%d", id), http.StatusFound)
}

// handleGenPage renders the page for one seed.
func (s *Server) handleGenPage(w http.ResponseWriter, r *http.Request) {
	id, err := parseSeed(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, errors.UserMessage(err), http.StatusBadRequest)
		return
	}
	data := struct {
		ID    uint64
		Image string
		Blur  string
	}{
		ID:    id,
		Image: fmt.Sprintf("/assets/%d.gen.png", id),
		Blur:  fmt.Sprintf("/assets/%d.blur.png", id),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, data); err != nil {
		s.logger.Error("rendering page", "id", requestIDFrom(r.Context()), "err", err)
	}
}

// handleAsset generates and serves one asset. The name encodes the seed
// and the asset kind: <id>.gen.png, <id>.gen.svg or <id>.blur.png.
func (s *Server) handleAsset(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	idPart, kind, ok := strings.Cut(name, ".")
	if !ok {
		http.NotFound(w, r)
		return
	}
	id, err := parseSeed(idPart)
	if err != nil {
		http.Error(w, errors.UserMessage(err), http.StatusBadRequest)
		return
	}

	switch kind {
	case "gen.png":
		s.serveArtifact(w, r, id, pipeline.FormatPNG, "image/png")
	case "gen.svg":
		s.serveArtifact(w, r, id, pipeline.FormatSVG, "image/svg+xml")
	case "blur.png":
		s.serveBlur(w, r, id)
	default:
		http.NotFound(w, r)
	}
}

// serveArtifact runs the pipeline for one seed and writes the artifact.
func (s *Server) serveArtifact(w http.ResponseWriter, r *http.Request, id uint64, format, contentType string) {
	result, err := s.runner.Execute(r.Context(), pipeline.Options{
		Seed:       id,
		ConfigPath: s.configPath,
		Formats:    []string{format},
		Logger:     s.logger,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(result.Artifacts[format])
}

// serveBlur expands the seed's digest into a small blurred placeholder.
func (s *Server) serveBlur(w http.ResponseWriter, r *http.Request, id uint64) {
	result, err := s.runner.Execute(r.Context(), pipeline.Options{
		Seed:       id,
		ConfigPath: s.configPath,
		Formats:    []string{pipeline.FormatPNG},
		WithDigest: true,
		Logger:     s.logger,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	data, err := s.previewPNG(r.Context(), result.Digest)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	_, _ = w.Write(data)
}

// previewPNG expands a digest into its blurred placeholder PNG, keeping
// the expansion cached under the digest and the thumbnail size. The
// digest pins the pixels, so a cached preview never goes stale.
func (s *Server) previewPNG(ctx context.Context, hash string) ([]byte, error) {
	key := s.runner.Keyer.PreviewKey(hash, blurWidth, blurHeight)

	var data []byte
	var hit bool
	err := cache.RetryWithBackoff(ctx, func() error {
		var err error
		data, hit, err = s.runner.Cache.Get(ctx, key)
		return err
	})
	if err != nil {
		s.logger.Warn("blur preview lookup failed", "err", err)
	}
	if hit {
		return data, nil
	}

	img, err := digest.Preview(hash, blurWidth, blurHeight, digest.DefaultPunch)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := raster.EncodePNG(&buf, img); err != nil {
		return nil, err
	}
	if err := s.runner.Cache.Set(ctx, key, buf.Bytes(), cache.TTLPreview); err != nil {
		s.logger.Warn("caching blur preview failed", "err", err)
	}
	return buf.Bytes(), nil
}

// fail maps a pipeline error to an HTTP response.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("generation failed",
		"id", requestIDFrom(r.Context()),
		"code", errors.GetCode(err),
		"err", err)
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidSeed, errors.ErrCodeInvalidFormat:
		status = http.StatusBadRequest
	}
	http.Error(w, errors.UserMessage(err), status)
}

func parseSeed(raw string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidSeed, "invalid seed %q: expected an unsigned integer", raw)
	}
	return id, nil
}
