// Package dataset resolves data locators into chart series. A locator is a
// URI whose scheme picks the backend: http(s) endpoints returning a JSON
// array, mongodb collections, or local JSON files. The Resolver dispatches to
// the backend loaders and optionally caches fetched series.
package dataset

import (
	"context"
	"strings"
	"time"

	"github.com/chartwright/chartwright/pkg/cache"
	"github.com/chartwright/chartwright/pkg/chart"
	"github.com/chartwright/chartwright/pkg/errors"
)

// DefaultTTL is how long fetched series stay cached.
const DefaultTTL = 5 * time.Minute

// Resolver routes locators to scheme-specific loaders. It implements
// chart.Loader.
type Resolver struct {
	http  chart.Loader
	mongo chart.Loader
	file  chart.Loader
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver)

// WithHTTPLoader replaces the default HTTP loader.
func WithHTTPLoader(l chart.Loader) ResolverOption {
	return func(r *Resolver) { r.http = l }
}

// WithMongoLoader sets the loader for mongodb locators. Without one, mongodb
// locators fail with INVALID_LOCATOR.
func WithMongoLoader(l chart.Loader) ResolverOption {
	return func(r *Resolver) { r.mongo = l }
}

// WithFileLoader replaces the default local file loader.
func WithFileLoader(l chart.Loader) ResolverOption {
	return func(r *Resolver) { r.file = l }
}

// NewResolver creates a resolver with the default HTTP and file loaders.
func NewResolver(opts ...ResolverOption) *Resolver {
	r := &Resolver{
		http: NewHTTPLoader(nil, nil),
		file: &FileLoader{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load resolves the locator with the loader registered for its scheme.
func (r *Resolver) Load(ctx context.Context, locator string) (chart.Series, error) {
	switch {
	case strings.HasPrefix(locator, "http://"), strings.HasPrefix(locator, "https://"):
		return r.http.Load(ctx, locator)
	case strings.HasPrefix(locator, "mongodb://"), strings.HasPrefix(locator, "mongodb+srv://"):
		if r.mongo == nil {
			return nil, errors.New(errors.ErrCodeInvalidLocator, "no mongodb loader configured for %s", locator)
		}
		return r.mongo.Load(ctx, locator)
	case strings.HasPrefix(locator, "file://"):
		return r.file.Load(ctx, strings.TrimPrefix(locator, "file://"))
	case strings.Contains(locator, "://"):
		return nil, errors.New(errors.ErrCodeInvalidLocator, "unsupported locator scheme in %s", locator)
	case locator == "":
		return nil, errors.New(errors.ErrCodeInvalidLocator, "empty locator")
	default:
		// Bare paths load from the local filesystem.
		return r.file.Load(ctx, locator)
	}
}

// cachedLoad is the shared cache-aside wrapper for the backend loaders.
func cachedLoad(ctx context.Context, c cache.Cache, keyer cache.Keyer, locator string, ttl time.Duration, fetch func() (chart.Series, error)) (chart.Series, error) {
	if c == nil {
		return fetch()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	key := keyer.SeriesKey(locator)

	if data, ok, err := c.Get(ctx, key); err == nil && ok {
		if series, err := decodeSeries(data); err == nil {
			return series, nil
		}
		// Corrupt entry; refetch below.
		_ = c.Delete(ctx, key)
	}

	series, err := fetch()
	if err != nil {
		return nil, err
	}
	if data, err := encodeSeries(series); err == nil {
		_ = c.Set(ctx, key, data, ttl)
	}
	return series, nil
}
