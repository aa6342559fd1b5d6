package cache

// ScopedKeyer wraps a Keyer with a prefix for namespace isolation. The serve
// command's --cache-prefix flag builds one so several chartwright deployments
// can share a Redis backend without colliding.
//
// Example usage:
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "prod:")
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

// SeriesKey generates a prefixed key for series caching.
func (k *ScopedKeyer) SeriesKey(locator string) string {
	return k.prefix + k.inner.SeriesKey(locator)
}

// FrameKey generates a prefixed key for rendered frame caching.
func (k *ScopedKeyer) FrameKey(seriesHash string, opts FrameKeyOpts) string {
	return k.prefix + k.inner.FrameKey(seriesHash, opts)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(frameHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(frameHash, opts)
}
