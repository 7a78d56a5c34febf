package pipeline

import (
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/backgen/backgen/pkg/config"
	"github.com/backgen/backgen/pkg/scene"
	"github.com/backgen/backgen/pkg/svg"
)

// NewRand builds the sequential random stream of a generation. All
// randomness of one generation flows through a single stream seeded this
// way; two runs with the same seed replay identical draws.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// Resolve collapses a configuration document into the generation
// descriptor for one seed.
func Resolve(doc config.MetaConfig, rng *rand.Rand, timeOfDay uint64, logger *log.Logger) config.SceneCfg {
	return config.NewResolver(config.Standard(), logger).Resolve(doc, rng, timeOfDay)
}

// Compose builds the vector document for a resolved descriptor: the
// scene with its decorative regions, the tessellation, and one filled
// polygon per tile, colored in tile order.
func Compose(cfg config.SceneCfg, rng *rand.Rand) (*svg.Document, Stats, error) {
	sc := scene.New(cfg, rng)

	tiles, err := sc.Tiles(rng)
	if err != nil {
		return nil, Stats{}, err
	}

	doc := svg.NewDocument(cfg.Frame, cfg.LineWidth, cfg.LineColor)
	for _, t := range tiles {
		doc.Add(t.Path, sc.Color(t.Anchor, rng))
	}

	return doc, Stats{TileCount: len(tiles), RegionCount: sc.RegionCount()}, nil
}
