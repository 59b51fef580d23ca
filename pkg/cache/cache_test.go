package cache

import (
	"context"
	"testing"
	"time"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = c.Get(ctx, "key")
	if hit {
		t.Error("NullCache should not store data")
	}

	// Delete does nothing (no error)
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	if err := c.Set(ctx, "chart", []byte("<svg/>"), 0); err != nil {
		t.Fatal(err)
	}
	data, hit, err := c.Get(ctx, "chart")
	if err != nil {
		t.Fatal(err)
	}
	if !hit || string(data) != "<svg/>" {
		t.Errorf("Get = (%q, %v), want hit with stored data", data, hit)
	}

	// Expired entries are treated as misses.
	if err := c.Set(ctx, "stale", []byte("x"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(10 * time.Millisecond)
	if _, hit, _ := c.Get(ctx, "stale"); hit {
		t.Error("expired entry should miss")
	}

	if err := c.Delete(ctx, "chart"); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := c.Get(ctx, "chart"); hit {
		t.Error("deleted entry should miss")
	}

	// Deleting a missing key is not an error.
	if err := c.Delete(ctx, "never-set"); err != nil {
		t.Errorf("Delete(missing) = %v, want nil", err)
	}
}

func TestMemoryCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewMemoryCache(1 << 20)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()

	if err := c.Set(ctx, "chart", []byte("<svg/>"), 0); err != nil {
		t.Fatal(err)
	}
	data, hit, err := c.Get(ctx, "chart")
	if err != nil {
		t.Fatal(err)
	}
	if !hit || string(data) != "<svg/>" {
		t.Errorf("Get = (%q, %v), want hit with stored data", data, hit)
	}

	if err := c.Delete(ctx, "chart"); err != nil {
		t.Fatal(err)
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	// DataKey
	if got := k.DataKey("abc123"); got != "data:abc123" {
		t.Errorf("DataKey unexpected: %s", got)
	}

	// LayoutKey should include options in hash
	lk1 := k.LayoutKey("abc123", LayoutKeyOpts{Width: 800, Height: 800})
	lk2 := k.LayoutKey("abc123", LayoutKeyOpts{Width: 1024, Height: 800})
	if lk1 == lk2 {
		t.Error("Different LayoutKeyOpts should produce different keys")
	}
	lk3 := k.LayoutKey("abc123", LayoutKeyOpts{Width: 800, Height: 800, Section: "Tools"})
	if lk1 == lk3 {
		t.Error("Detail layouts should key separately from full layouts")
	}

	// ArtifactKey
	ak1 := k.ArtifactKey("abc123", ArtifactKeyOpts{Format: "svg"})
	ak2 := k.ArtifactKey("abc123", ArtifactKeyOpts{Format: "png"})
	if ak1 == ak2 {
		t.Error("Different ArtifactKeyOpts should produce different keys")
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "2026-q3:")

	// All keys should be prefixed
	if got := scoped.DataKey("abc"); got != "2026-q3:data:abc" {
		t.Errorf("ScopedKeyer DataKey unexpected: %s", got)
	}

	layoutKey := scoped.LayoutKey("abc", LayoutKeyOpts{Width: 800})
	if len(layoutKey) < 9 || layoutKey[:8] != "2026-q3:" {
		t.Errorf("ScopedKeyer LayoutKey should be prefixed: %s", layoutKey)
	}
}

func TestScopedKeyerNilInner(t *testing.T) {
	// Should use DefaultKeyer when inner is nil
	scoped := NewScopedKeyer(nil, "prefix:")
	if got := scoped.DataKey("abc"); got != "prefix:data:abc" {
		t.Errorf("Unexpected key with nil inner: %s", got)
	}
}
