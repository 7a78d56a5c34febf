// Package pkg provides the core libraries for backgen background generation.
//
// # Overview
//
// Backgen turns a 64-bit seed and an optional layered configuration
// document into a tiled, procedurally colored background image. The same
// seed with the same document always reproduces the same image: every
// random decision of a generation is drawn from one sequential stream
// seeded by the seed.
//
// # Architecture
//
// The typical data flow through backgen:
//
//	Seed + configuration document
//	         ↓
//	    [config] package (layered resolution → generation descriptor)
//	         ↓
//	    [scene] package (regions + tessellation + per-tile colors)
//	         ↓
//	    [svg] package (vector document)
//	         ↓
//	    [raster]/[digest] packages (PNG raster, blurhash digest)
//
// # Quick Start
//
// Generate an SVG background:
//
//	import "github.com/backgen/backgen/pkg/pipeline"
//
//	runner := pipeline.NewRunner(nil, nil, logger)
//	result, _ := runner.Execute(ctx, pipeline.Options{
//	    Seed:    1430,
//	    Formats: []string{pipeline.FormatSVG},
//	})
//	svg := result.Artifacts["svg"]
//
// # Main Packages
//
// ## Core Domain Logic
//
// [config] - The layered configuration document (colors, themes, shape
// combinations, time-span entries) and its resolution into one
// generation descriptor per seed.
//
// [tiling] - The seven plane-filling tessellations: hexagons, triangles,
// two hybrid tilings, rhombi, six pentagonal sub-types, and a Delaunay
// scatter.
//
// [pattern] - The nine decorative region families, each reduced to a
// point-containment test.
//
// [scene] - The compositor pairing regions with color recipes and
// resolving the fill color of every tile.
//
// [colors], [chooser], [geom] - Color arithmetic with salting, the
// weighted chooser, and the 2D primitives everything is built on.
//
// ## Output
//
// [svg] - Vector document serialization.
//
// [raster] - SVG-to-RGBA rasterization and PNG encoding.
//
// [digest] - Blurhash digests and blurred placeholders.
//
// ## Infrastructure
//
// [pipeline] - Complete generation pipeline (resolve → compose → encode)
// used by CLI and web front end. Ensures consistent behavior across all
// entry points.
//
// [cache] - Artifact and digest caching with file, Redis, and null
// backends.
//
// [errors] - Structured errors with machine-readable codes.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...               # All tests
//	go test ./pkg/config/...        # Specific package
//
// [config]: https://pkg.go.dev/github.com/backgen/backgen/pkg/config
// [tiling]: https://pkg.go.dev/github.com/backgen/backgen/pkg/tiling
// [pattern]: https://pkg.go.dev/github.com/backgen/backgen/pkg/pattern
// [scene]: https://pkg.go.dev/github.com/backgen/backgen/pkg/scene
// [colors]: https://pkg.go.dev/github.com/backgen/backgen/pkg/colors
// [chooser]: https://pkg.go.dev/github.com/backgen/backgen/pkg/chooser
// [geom]: https://pkg.go.dev/github.com/backgen/backgen/pkg/geom
// [svg]: https://pkg.go.dev/github.com/backgen/backgen/pkg/svg
// [raster]: https://pkg.go.dev/github.com/backgen/backgen/pkg/raster
// [digest]: https://pkg.go.dev/github.com/backgen/backgen/pkg/digest
// [pipeline]: https://pkg.go.dev/github.com/backgen/backgen/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/backgen/backgen/pkg/cache
// [errors]: https://pkg.go.dev/github.com/backgen/backgen/pkg/errors
package pkg
