// Package pipeline provides the core generation pipeline for backgen.
//
// This package implements the complete resolve → compose → encode
// pipeline that can be used by CLI, web, and worker components. By
// centralizing this logic, we ensure consistent behavior across all
// entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Resolve: Collapse the layered configuration document into one
//     generation descriptor, consuming the seed's random stream
//  2. Compose: Build the scene (regions, tiles, per-tile colors) into a
//     vector document
//  3. Encode: Serialize the document as SVG and, on demand, rasterize it
//     to PNG and digest it
//
// Same seed plus same configuration always produces the same artifacts;
// every random draw comes from one sequential stream seeded by the seed.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Seed:    1430,
//	    Formats: []string{"png"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	png := result.Artifacts["png"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/backgen/backgen/pkg/config"
	"github.com/backgen/backgen/pkg/errors"
)

// Format constants for output formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG: true,
	FormatPNG: true,
}

// Options contains all configuration for the generation pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Seed drives every random draw of the generation.
	Seed uint64 `json:"seed"`

	// TimeOfDay is the seed's projection onto the configured time spans
	// (hour*100+minute for clock-derived seeds). Zero means "use the
	// seed itself".
	TimeOfDay uint64 `json:"time_of_day,omitempty"`

	// ConfigPath points to the configuration document. Empty, missing or
	// unparsable documents degrade to all defaults.
	ConfigPath string `json:"config_path,omitempty"`

	// Formats lists the artifacts to produce.
	Formats []string `json:"formats,omitempty"`

	// WithDigest also computes the blurhash digest of the raster.
	WithDigest bool `json:"with_digest,omitempty"`

	// Refresh bypasses the cache.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// Doc overrides ConfigPath with a pre-parsed document.
	Doc *config.MetaConfig `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Cfg is the resolved generation descriptor.
	Cfg config.SceneCfg

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Digest is the blurhash digest of the raster, when requested.
	Digest string

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which artifacts came from cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	TileCount   int
	RegionCount int
	ResolveTime time.Duration
	ComposeTime time.Duration
	EncodeTime  time.Duration
}

// CacheInfo tracks cache hits for the pipeline outputs.
type CacheInfo struct {
	ArtifactHit bool // Whether all artifacts came from cache
	DigestHit   bool // Whether the digest came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateAndSetDefaults checks fields and applies defaults for the full
// pipeline. This method is idempotent - calling it multiple times has the
// same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.TimeOfDay == 0 {
		o.TimeOfDay = o.Seed
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// NeedsRaster reports whether any requested output requires the raster
// image.
func (o *Options) NeedsRaster() bool {
	if o.WithDigest {
		return true
	}
	for _, f := range o.Formats {
		if f == FormatPNG {
			return true
		}
	}
	return false
}
