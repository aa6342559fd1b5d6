// Package cache provides pluggable byte caches and the key scheme used to
// cache fetched series and rendered chart artifacts. Backends share one
// interface so the CLI (file cache), the server (Redis) and tests (null
// cache) stay interchangeable.
package cache

import (
	"context"
	"time"
)

// Standard TTLs for the cacheable pipeline stages. Series data goes stale
// quickly; frames and artifacts are pure functions of their keys and keep for
// a day.
const (
	TTLSeries   = 5 * time.Minute
	TTLFrame    = 24 * time.Hour
	TTLArtifact = 24 * time.Hour
)

// Cache stores opaque byte values under string keys with optional TTLs.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key was
	// present; expired entries count as absent.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value. A non-positive ttl means the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// FrameKeyOpts are the option fields that affect a rendered frame. Two
// renders with equal series hash and equal opts produce identical frames, so
// they share a cache entry.
type FrameKeyOpts struct {
	Kind   string `json:"kind"`
	Theme  string `json:"theme"`
	Style  string `json:"style"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Extra  string `json:"extra,omitempty"` // hash of the remaining options
}

// ArtifactKeyOpts distinguish converted outputs of the same frame.
type ArtifactKeyOpts struct {
	Format string  `json:"format"`
	Scale  float64 `json:"scale,omitempty"`
}

// Keyer generates cache keys for the three cacheable stages: fetched series,
// rendered SVG frames, and converted artifacts.
type Keyer interface {
	// SeriesKey keys a fetched series by its locator.
	SeriesKey(locator string) string

	// FrameKey keys a rendered frame by the series hash and the rendering
	// options that shape it.
	FrameKey(seriesHash string, opts FrameKeyOpts) string

	// ArtifactKey keys a converted artifact by the frame hash and format.
	ArtifactKey(frameHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer is the standard key scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// SeriesKey generates a key for series caching.
func (k *DefaultKeyer) SeriesKey(locator string) string {
	return hashKey("series", locator)
}

// FrameKey generates a key for rendered frame caching.
func (k *DefaultKeyer) FrameKey(seriesHash string, opts FrameKeyOpts) string {
	return hashKey("frame", seriesHash, opts)
}

// ArtifactKey generates a key for artifact caching.
func (k *DefaultKeyer) ArtifactKey(frameHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", frameHash, opts)
}
