package cache

import "time"

// TTLs per artifact kind. Rendered assets are cheap to regenerate, so
// they expire; digests are tiny and effectively immutable for a given
// seed and configuration.
const (
	// TTLArtifact is how long rendered SVG/PNG assets are kept.
	TTLArtifact = 24 * time.Hour

	// TTLDigest is how long blurhash digests are kept.
	TTLDigest = 7 * 24 * time.Hour

	// TTLPreview is how long expanded blur placeholders are kept.
	TTLPreview = 24 * time.Hour
)
