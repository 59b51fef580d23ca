package cache

import (
	"context"
	"time"

	"github.com/dgraph-io/ristretto"
)

// MemoryCache is an in-process cache backed by ristretto. The browse
// TUI uses it to keep recently rendered charts across resize events
// without touching disk.
type MemoryCache struct {
	store *ristretto.Cache
}

// NewMemoryCache creates an in-memory cache bounded to roughly maxBytes
// of cached artifact data.
func NewMemoryCache(maxBytes int64) (Cache, error) {
	store, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1e4,
		MaxCost:     maxBytes,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &MemoryCache{store: store}, nil
}

// Get retrieves a value from the cache.
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, hit := c.store.Get(key)
	if !hit {
		return nil, false, nil
	}
	data, ok := v.([]byte)
	if !ok {
		return nil, false, nil
	}
	return data, true, nil
}

// Set stores a value in the cache. Ristretto admits writes
// asynchronously; Wait makes the entry visible to an immediate Get,
// which the resize re-render path depends on.
func (c *MemoryCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	if ttl > 0 {
		c.store.SetWithTTL(key, data, int64(len(data)), ttl)
	} else {
		c.store.Set(key, data, int64(len(data)))
	}
	c.store.Wait()
	return nil
}

// Delete removes a value from the cache.
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.store.Del(key)
	return nil
}

// Close releases the cache resources.
func (c *MemoryCache) Close() error {
	c.store.Close()
	return nil
}

// Ensure MemoryCache implements Cache.
var _ Cache = (*MemoryCache)(nil)
