package cache

// ScopedKeyer wraps a Keyer with a prefix so multiple radars (or radar
// editions) can share one cache directory without key collisions.
//
// Example usage:
//
//	// Edition-specific keys
//	editionKeyer := NewScopedKeyer(NewDefaultKeyer(), "2026-q3:")
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

// DataKey generates a prefixed key for dataset caching.
func (k *ScopedKeyer) DataKey(contentHash string) string {
	return k.prefix + k.inner.DataKey(contentHash)
}

// LayoutKey generates a prefixed key for layout caching.
func (k *ScopedKeyer) LayoutKey(dataHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(dataHash, opts)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(dataHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(dataHash, opts)
}
