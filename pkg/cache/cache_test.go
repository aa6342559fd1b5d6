package cache

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestFileCacheRoundTrip(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache failed: %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	if err := c.Set(ctx, "k1", []byte("frame"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	data, ok, err := c.Get(ctx, "k1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok {
		t.Fatal("Get reported a miss for a stored key")
	}
	if string(data) != "frame" {
		t.Errorf("Get returned %q, want frame", data)
	}
}

func TestFileCacheMiss(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache failed: %v", err)
	}
	defer c.Close()

	_, ok, err := c.Get(context.Background(), "absent")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("Get reported a hit for an absent key")
	}
}

func TestFileCacheExpiry(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache failed: %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	if err := c.Set(ctx, "k1", []byte("frame"), time.Millisecond); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	_, ok, err := c.Get(ctx, "k1")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if ok {
		t.Error("expired entry still reported as hit")
	}
}

func TestFileCacheDelete(t *testing.T) {
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache failed: %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	if err := c.Set(ctx, "k1", []byte("frame"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := c.Delete(ctx, "k1"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k1"); ok {
		t.Error("deleted key still present")
	}
	if err := c.Delete(ctx, "k1"); err != nil {
		t.Errorf("Delete of absent key returned %v, want nil", err)
	}
}

func TestNullCacheNeverStores(t *testing.T) {
	c := NewNullCache()
	ctx := context.Background()

	if err := c.Set(ctx, "k1", []byte("frame"), 0); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, ok, _ := c.Get(ctx, "k1"); ok {
		t.Error("null cache returned a hit")
	}
}

func TestKeyerDeterminism(t *testing.T) {
	k := NewDefaultKeyer()

	a := k.SeriesKey("https://example.com/data")
	b := k.SeriesKey("https://example.com/data")
	if a != b {
		t.Error("identical locators produced different keys")
	}
	if a == k.SeriesKey("https://example.com/other") {
		t.Error("different locators produced the same key")
	}
	if !strings.HasPrefix(a, "series:") {
		t.Errorf("series key %q missing stage prefix", a)
	}

	opts := FrameKeyOpts{Kind: "bar", Theme: "dark", Width: 600, Height: 400}
	f1 := k.FrameKey("abc", opts)
	opts.Theme = "lite"
	f2 := k.FrameKey("abc", opts)
	if f1 == f2 {
		t.Error("different render options produced the same frame key")
	}

	a1 := k.ArtifactKey("abc", ArtifactKeyOpts{Format: "png", Scale: 2})
	a2 := k.ArtifactKey("abc", ArtifactKeyOpts{Format: "pdf"})
	if a1 == a2 {
		t.Error("different formats produced the same artifact key")
	}
}

func TestScopedKeyer(t *testing.T) {
	inner := NewDefaultKeyer()
	scoped := NewScopedKeyer(inner, "prod:")

	key := scoped.SeriesKey("https://example.com/data")
	if !strings.HasPrefix(key, "prod:") {
		t.Errorf("scoped key %q missing prefix", key)
	}
	if strings.TrimPrefix(key, "prod:") != inner.SeriesKey("https://example.com/data") {
		t.Error("scoped key does not wrap the inner key")
	}
}

func TestRetryWithBackoffStopsOnPermanent(t *testing.T) {
	calls := 0
	err := RetryWithBackoff(context.Background(), func() error {
		calls++
		return errors.New("permanent")
	})
	if err == nil {
		t.Fatal("RetryWithBackoff swallowed the error")
	}
	if calls != 1 {
		t.Errorf("permanent error retried %d times, want 1 call", calls)
	}
}

func TestRetryWithBackoffRetriesRetryable(t *testing.T) {
	calls := 0
	err := RetryWithBackoff(context.Background(), func() error {
		calls++
		if calls < 2 {
			return Retryable(errors.New("transient"))
		}
		return nil
	})
	if err != nil {
		t.Fatalf("RetryWithBackoff failed: %v", err)
	}
	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
}
