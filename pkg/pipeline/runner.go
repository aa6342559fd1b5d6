package pipeline

import (
	"context"
	"encoding/json"
	"time"

	"github.com/charmbracelet/log"

	"github.com/chartwright/chartwright/pkg/cache"
	"github.com/chartwright/chartwright/pkg/chart"
	"github.com/chartwright/chartwright/pkg/errors"
	"github.com/chartwright/chartwright/pkg/observability"
	"github.com/chartwright/chartwright/pkg/render/svg/sink"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and server use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache, loader and logger - it
// doesn't store pipeline results. Multiple goroutines can safely use the
// same Runner with different requests.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Loader chart.Loader
	Logger *log.Logger
}

// NewRunner creates a runner with the given collaborators.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
// If loader is nil, locator requests fail with INVALID_LOCATOR.
func NewRunner(c cache.Cache, keyer cache.Keyer, loader chart.Loader, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Loader: loader,
		Logger: logger,
	}
}

// Execute runs the complete load → render pipeline with caching.
func (r *Runner) Execute(ctx context.Context, req Request) (*Result, error) {
	r.applyLogger(&req)
	if err := req.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{
		Artifacts: make(map[string][]byte),
	}

	// Stage 1: Load
	loadStart := time.Now()
	data, loadHit, err := r.LoadWithCacheInfo(ctx, req)
	if err != nil {
		return nil, err
	}
	result.Data = data
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.EntryCount = len(data)
	result.CacheInfo.LoadHit = loadHit

	if seriesData, err := json.Marshal(data); err == nil {
		result.SeriesHash = cache.Hash(seriesData)
	}

	req.Logger.Info("resolved series",
		"entries", len(data),
		"cached", loadHit,
		"duration", result.Stats.LoadTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, data, result.SeriesHash, req)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	req.Logger.Info("rendered outputs",
		"formats", req.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// LoadWithCacheInfo resolves the request's series with caching and returns
// cache hit info. Inline data short-circuits without touching the cache.
func (r *Runner) LoadWithCacheInfo(ctx context.Context, req Request) (chart.Series, bool, error) {
	if req.Data != nil {
		return req.Data, false, nil
	}
	if r.Loader == nil {
		return nil, false, errors.New(errors.ErrCodeInvalidLocator, "runner has no loader for locator %s", req.Locator)
	}

	cacheKey := r.Keyer.SeriesKey(req.Locator)
	if !req.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var series chart.Series
			if err := json.Unmarshal(data, &series); err == nil {
				observability.Cache().OnCacheHit(ctx, "series")
				return series, true, nil
			}
		}
		observability.Cache().OnCacheMiss(ctx, "series")
	}

	start := time.Now()
	observability.Data().OnLoadStart(ctx, req.Locator)
	series, err := r.Loader.Load(ctx, req.Locator)
	observability.Data().OnLoadComplete(ctx, req.Locator, len(series), time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	if data, err := json.Marshal(series); err == nil {
		_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLSeries)
		observability.Cache().OnCacheSet(ctx, "series", len(data))
	}
	return series, false, nil
}

// Load is a convenience wrapper that discards the cache hit info.
func (r *Runner) Load(ctx context.Context, req Request) (chart.Series, error) {
	data, _, err := r.LoadWithCacheInfo(ctx, req)
	return data, err
}

// RenderWithCacheInfo renders all requested formats with per-artifact caching
// and returns cache hit info.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, data chart.Series, seriesHash string, req Request) (map[string][]byte, bool, error) {
	if err := req.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	// Try to get all formats from cache first.
	allCached := true
	artifacts := make(map[string][]byte)
	for _, format := range req.Formats {
		cacheKey := r.artifactKey(seriesHash, format, req)
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			artifacts[format] = data
		} else {
			allCached = false
			break
		}
	}
	if allCached && len(artifacts) == len(req.Formats) {
		observability.Cache().OnCacheHit(ctx, "artifact")
		return artifacts, true, nil
	}

	kind := string(req.Options.GetType())
	for _, format := range req.Formats {
		parsed, err := sink.ParseFormat(format)
		if err != nil {
			return nil, false, err
		}

		start := time.Now()
		observability.Render().OnRenderStart(ctx, kind, format)
		artifact, err := sink.Render(data, req.Options, parsed, sink.WithScale(req.Scale))
		observability.Render().OnRenderComplete(ctx, kind, format, len(artifact), time.Since(start), err)
		if err != nil {
			return nil, false, err
		}
		artifacts[format] = artifact

		cacheKey := r.artifactKey(seriesHash, format, req)
		_ = r.Cache.Set(ctx, cacheKey, artifact, cache.TTLArtifact)
		observability.Cache().OnCacheSet(ctx, "artifact", len(artifact))
	}

	return artifacts, false, nil
}

// Render is a convenience wrapper that discards the cache hit info.
func (r *Runner) Render(ctx context.Context, data chart.Series, seriesHash string, req Request) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, data, seriesHash, req)
	return artifacts, err
}

// artifactKey builds the cache key for one rendered artifact. The full
// options document is hashed so any visual knob invalidates the entry.
func (r *Runner) artifactKey(seriesHash, format string, req Request) string {
	optsData, _ := json.Marshal(req.Options)
	frameKey := r.Keyer.FrameKey(seriesHash, cache.FrameKeyOpts{
		Kind:   string(req.Options.GetType()),
		Theme:  req.Options.Theme,
		Style:  req.Options.Style,
		Width:  req.Options.GetWidth(),
		Height: req.Options.GetHeight(),
		Extra:  cache.Hash(optsData),
	})
	return r.Keyer.ArtifactKey(frameKey, cache.ArtifactKeyOpts{
		Format: format,
		Scale:  req.Scale,
	})
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on the request if not already set.
func (r *Runner) applyLogger(req *Request) {
	if req.Logger == nil {
		req.Logger = r.Logger
	}
}
