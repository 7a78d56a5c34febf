// Package server implements the backgen web front end.
//
// The server renders a page per generation seed with a blur-up
// placeholder, and serves the generated assets themselves. Assets are
// produced on demand through the shared pipeline runner, so repeated
// requests for the same seed hit the cache instead of regenerating.
//
// # Routes
//
//   - GET /               redirect to a fresh random seed
//   - GET /gen/{id}       page for one seed
//   - GET /gen?id=N       query form of the same page
//   - GET /assets/{name}  generated assets: <id>.gen.png, <id>.blur.png, <id>.gen.svg
package server

import (
	"context"
	"math/rand/v2"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/backgen/backgen/pkg/pipeline"
)

// Server holds the shared state of the web front end.
type Server struct {
	runner     *pipeline.Runner
	logger     *log.Logger
	configPath string
}

// Option configures a Server.
type Option func(*Server)

// WithConfigPath sets the configuration document used for every
// generation.
func WithConfigPath(path string) Option {
	return func(s *Server) { s.configPath = path }
}

// New creates a server around a pipeline runner.
func New(runner *pipeline.Runner, logger *log.Logger, opts ...Option) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{runner: runner, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router builds the route tree.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)

	r.Get("/", s.handleIndex)
	r.Get("/gen", s.handleGenQuery)
	r.Get("/gen/{id}", s.handleGenPage)
	r.Get("/assets/{name}", s.handleAsset)
	return r
}

// ListenAndServe runs the server until the context is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	s.logger.Info("listening", "addr", addr)
	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errc:
		return err
	}
}

// randomSeed draws the seed for an unaddressed visit. Unlike generation
// randomness this is not reproducible on purpose: every visit to the
// index gets a new image.
func randomSeed() uint64 {
	return rand.Uint64()
}
