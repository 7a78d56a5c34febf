package cache

// ScopedKeyer wraps a Keyer with a prefix so that independent deployments
// sharing one Redis instance keep separate namespaces.
//
// Example usage:
//
//	// Per-site keys when several sites share a backend
//	siteKeyer := NewScopedKeyer(NewDefaultKeyer(), "site:blog:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// ArtifactKey generates a prefixed key for a rendered asset.
func (k *ScopedKeyer) ArtifactKey(seed uint64, cfgHash, ext string) string {
	return k.prefix + k.inner.ArtifactKey(seed, cfgHash, ext)
}

// DigestKey generates a prefixed key for an asset digest.
func (k *ScopedKeyer) DigestKey(seed uint64, cfgHash string) string {
	return k.prefix + k.inner.DigestKey(seed, cfgHash)
}

// PreviewKey generates a prefixed key for a blur placeholder.
func (k *ScopedKeyer) PreviewKey(digest string, width, height int) string {
	return k.prefix + k.inner.PreviewKey(digest, width, height)
}
