// Package cache provides content-addressed caching for rendered radar
// artifacts. The CLI uses a file-backed cache so repeated renders of an
// unchanged dataset skip the layout and conversion work; the browse TUI
// uses an in-memory cache for resize re-renders.
package cache

import (
	"context"
	"time"
)

// Cache TTLs per pipeline stage. Datasets change between editions, so
// they age out fastest; artifacts are content-addressed and effectively
// immutable, but still expire so stale editions do not accumulate.
const (
	TTLData     = 24 * time.Hour
	TTLLayout   = 7 * 24 * time.Hour
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is the storage interface shared by all backends. Get reports a
// miss with hit=false rather than an error; errors are reserved for
// backend failures.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// LayoutKeyOpts are the parameters that change a computed layout for
// the same input data.
type LayoutKeyOpts struct {
	Width   int
	Height  int
	Section string
}

// ArtifactKeyOpts are the parameters that change a rendered artifact
// for the same layout.
type ArtifactKeyOpts struct {
	Format string
	Scale  float64
	Title  string
}

// Keyer builds cache keys for the pipeline stages. Keys are
// content-addressed: they derive from a hash of the input data plus the
// options of the stage, so any change to either invalidates downstream
// entries automatically.
type Keyer interface {
	// DataKey identifies a parsed dataset by its content hash.
	DataKey(contentHash string) string

	// LayoutKey identifies a computed layout.
	LayoutKey(dataHash string, opts LayoutKeyOpts) string

	// ArtifactKey identifies a rendered output artifact.
	ArtifactKey(dataHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// DataKey generates a key for parsed dataset caching.
func (k *DefaultKeyer) DataKey(contentHash string) string {
	return "data:" + contentHash
}

// LayoutKey generates a key for layout caching.
func (k *DefaultKeyer) LayoutKey(dataHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", dataHash, opts)
}

// ArtifactKey generates a key for artifact caching.
func (k *DefaultKeyer) ArtifactKey(dataHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", dataHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = (*DefaultKeyer)(nil)
