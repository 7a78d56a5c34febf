package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"time"

	"github.com/charmbracelet/log"

	"github.com/backgen/backgen/pkg/cache"
	"github.com/backgen/backgen/pkg/config"
	"github.com/backgen/backgen/pkg/digest"
	"github.com/backgen/backgen/pkg/raster"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and web front end can use this to avoid duplicating caching
// logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options; each execution owns its random stream.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete resolve → compose → encode pipeline with
// caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	doc := r.loadDoc(opts)
	cfgHash := docHash(doc)

	result := &Result{Artifacts: make(map[string][]byte)}

	rng := NewRand(opts.Seed)

	// Resolving is cheap and happens even for cached runs: callers size
	// derived outputs (the blur preview) from the resolved frame.
	resolveStart := time.Now()
	cfg := Resolve(doc, rng, opts.TimeOfDay, opts.Logger)
	result.Cfg = cfg
	result.Stats.ResolveTime = time.Since(resolveStart)

	r.Logger.Info("resolved configuration",
		"seed", opts.Seed,
		"tiling", cfg.Tiling.Family,
		"pattern", cfg.Pattern,
		"duration", result.Stats.ResolveTime)

	if !opts.Refresh && r.fromCache(ctx, opts, cfgHash, result) {
		r.Logger.Debug("artifacts from cache", "seed", opts.Seed)
		return result, nil
	}

	composeStart := time.Now()
	vec, stats, err := Compose(cfg, rng)
	if err != nil {
		return nil, err
	}
	result.Stats.TileCount = stats.TileCount
	result.Stats.RegionCount = stats.RegionCount
	result.Stats.ComposeTime = time.Since(composeStart)

	r.Logger.Info("composed scene",
		"tiles", stats.TileCount,
		"regions", stats.RegionCount,
		"duration", result.Stats.ComposeTime)

	encodeStart := time.Now()
	svgData := vec.Bytes()
	for _, format := range opts.Formats {
		if format == FormatSVG {
			result.Artifacts[FormatSVG] = svgData
		}
	}
	if opts.NeedsRaster() {
		img, err := raster.Rasterize(svgData, cfg.Frame.W, cfg.Frame.H)
		if err != nil {
			return nil, err
		}
		for _, format := range opts.Formats {
			if format == FormatPNG {
				data, err := pngBytes(img)
				if err != nil {
					return nil, err
				}
				result.Artifacts[FormatPNG] = data
			}
		}
		if opts.WithDigest {
			hash, err := digest.Encode(img)
			if err != nil {
				return nil, err
			}
			result.Digest = hash
		}
	}
	result.Stats.EncodeTime = time.Since(encodeStart)

	r.Logger.Info("encoded artifacts",
		"formats", opts.Formats,
		"duration", result.Stats.EncodeTime)

	r.store(ctx, opts, cfgHash, result)
	return result, nil
}

// fromCache fills the result from cached artifacts. It reports success
// only when every requested output was present.
func (r *Runner) fromCache(ctx context.Context, opts Options, cfgHash string, result *Result) bool {
	for _, format := range opts.Formats {
		key := r.Keyer.ArtifactKey(opts.Seed, cfgHash, format)
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil || !hit {
			return false
		}
		result.Artifacts[format] = data
	}
	if opts.WithDigest {
		key := r.Keyer.DigestKey(opts.Seed, cfgHash)
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil || !hit {
			return false
		}
		result.Digest = string(data)
		result.CacheInfo.DigestHit = true
	}
	result.CacheInfo.ArtifactHit = true
	return true
}

// store caches the produced artifacts. Failures are logged, not fatal.
func (r *Runner) store(ctx context.Context, opts Options, cfgHash string, result *Result) {
	for format, data := range result.Artifacts {
		key := r.Keyer.ArtifactKey(opts.Seed, cfgHash, format)
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			r.Logger.Warn("caching artifact failed", "format", format, "err", err)
		}
	}
	if result.Digest != "" {
		key := r.Keyer.DigestKey(opts.Seed, cfgHash)
		if err := r.Cache.Set(ctx, key, []byte(result.Digest), cache.TTLDigest); err != nil {
			r.Logger.Warn("caching digest failed", "err", err)
		}
	}
}

// loadDoc reads the configuration document from the options.
func (r *Runner) loadDoc(opts Options) config.MetaConfig {
	if opts.Doc != nil {
		return *opts.Doc
	}
	return config.Load(opts.ConfigPath)
}

// docHash fingerprints the configuration document for cache keys. JSON
// marshaling sorts map keys, so equal documents hash equally.
func docHash(doc config.MetaConfig) string {
	data, err := json.Marshal(doc)
	if err != nil {
		return ""
	}
	return cache.Hash(data)
}

func pngBytes(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := raster.EncodePNG(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
