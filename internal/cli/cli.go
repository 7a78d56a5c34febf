// Package cli implements the backgen command-line interface.
//
// This package provides commands for generating background images from a
// seed and an optional configuration document, serving the web front
// end, and managing the artifact cache. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - generate: Produce an SVG or PNG background for a seed
//   - serve: Run the HTTP front end
//   - cache: Manage the artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
//
// # Example
//
//	import "github.com/backgen/backgen/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/backgen/backgen/pkg/buildinfo"
	"github.com/backgen/backgen/pkg/cache"
	"github.com/backgen/backgen/pkg/errors"
	"github.com/backgen/backgen/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "backgen"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "backgen",
		Short:        "Backgen generates procedural background images",
		Long:         `Backgen is a CLI tool for generating tiled, procedurally colored background images. The same seed and configuration always reproduce the same image.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cache, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cache, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// cacheDir returns the cache directory using XDG standard (~/.cache/backgen/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// formatForPath maps an output path to its pipeline format.
func formatForPath(path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".svg":
		return pipeline.FormatSVG, nil
	case ".png":
		return pipeline.FormatPNG, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unsupported output extension: %q (use .svg or .png)", ext)
}

// checkDestination validates an output path before the pipeline runs, so
// a misspelled directory fails fast instead of after the render.
func checkDestination(path string) error {
	if path == "" {
		return errors.New(errors.ErrCodeInvalidPath, "empty output path")
	}
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return errors.New(errors.ErrCodeInvalidPath, "%s is a directory", path)
	}
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); err != nil {
		return errors.New(errors.ErrCodeInvalidPath, "output directory %s does not exist", dir)
	}
	return nil
}

// blurPathFor derives the blur preview destination from the artifact
// destination: background.svg gets background.blur.png beside it.
func blurPathFor(output string) string {
	return strings.TrimSuffix(output, filepath.Ext(output)) + ".blur.png"
}
