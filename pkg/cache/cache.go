// Package cache provides caching for generated artifacts and digests.
//
// Two backends exist: a file cache for CLI usage and a Redis cache for
// the web front end. A null cache disables caching entirely. Keys are
// derived through a Keyer so that every caller hashes the same inputs
// the same way.
package cache

import (
	"context"
	"time"
)

// Cache is the storage interface shared by all backends.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present; an absent key is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no
	// expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer derives cache keys for the artifact kinds of the generator.
type Keyer interface {
	// ArtifactKey identifies a rendered asset: the seed it was generated
	// from, the hash of the configuration document, and the output
	// extension.
	ArtifactKey(seed uint64, cfgHash, ext string) string

	// DigestKey identifies the blurhash digest of an asset.
	DigestKey(seed uint64, cfgHash string) string

	// PreviewKey identifies an expanded blur placeholder.
	PreviewKey(digest string, width, height int) string
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ArtifactKey generates a key for a rendered asset.
func (k *DefaultKeyer) ArtifactKey(seed uint64, cfgHash, ext string) string {
	return hashKey("artifact", seed, cfgHash, ext)
}

// DigestKey generates a key for an asset digest.
func (k *DefaultKeyer) DigestKey(seed uint64, cfgHash string) string {
	return hashKey("digest", seed, cfgHash)
}

// PreviewKey generates a key for a blur placeholder.
func (k *DefaultKeyer) PreviewKey(digest string, width, height int) string {
	return hashKey("preview", digest, width, height)
}
