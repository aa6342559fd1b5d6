// Package pipeline provides the core chart production pipeline for
// Chartwright.
//
// This package implements the complete load → render → convert pipeline that
// can be used by CLI and server components. By centralizing this logic, we
// ensure consistent behavior across all entry points and avoid code
// duplication.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Load: Resolve the series from a locator (http, mongodb, file) or take
//     inline data as-is
//  2. Render: Produce artifacts in the requested formats (SVG, PNG, PDF)
//
// Each stage can be run independently or as part of the complete pipeline,
// and each stage caches its output keyed by its inputs.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, loader, logger)
//	req := pipeline.Request{
//	    Locator: "https://example.com/revenue.json",
//	    Options: chart.Options{Type: chart.KindBar, Theme: "dark"},
//	    Formats: []string{"svg", "png"},
//	}
//	result, err := runner.Execute(ctx, req)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/chartwright/chartwright/pkg/chart"
	"github.com/chartwright/chartwright/pkg/errors"
	"github.com/chartwright/chartwright/pkg/render/svg/sink"
)

// DefaultScale is the PNG conversion scale factor.
const DefaultScale = 2.0

// Request contains all configuration for one pipeline run.
// This struct supports JSON serialization for API requests.
type Request struct {
	// Locator resolves the series through the runner's loader. Ignored when
	// Data is set.
	Locator string `json:"locator,omitempty"`

	// Data is an inline series, taking precedence over Locator.
	Data chart.Series `json:"data,omitempty"`

	// Options configure the chart.
	Options chart.Options `json:"options"`

	// Formats are the requested outputs. Defaults to ["svg"].
	Formats []string `json:"formats,omitempty"`

	// Scale is the PNG scale factor. Defaults to DefaultScale.
	Scale float64 `json:"scale,omitempty"`

	// Refresh bypasses the series cache.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Data is the resolved series.
	Data chart.Series

	// SeriesHash is the content hash of the resolved series.
	SeriesHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	EntryCount int
	LoadTime   time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	LoadHit   bool // Whether the series came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (r *Request) ValidateAndSetDefaults() error {
	if r.validated {
		return nil
	}
	if r.Data == nil && r.Locator == "" {
		return errors.New(errors.ErrCodeInvalidOptions, "request needs inline data or a locator")
	}
	if _, err := chart.ParseKind(string(r.Options.GetType())); err != nil {
		return err
	}

	if len(r.Formats) == 0 {
		r.Formats = []string{string(sink.FormatSVG)}
	}
	for _, f := range r.Formats {
		if _, err := sink.ParseFormat(f); err != nil {
			return err
		}
	}
	if r.Scale <= 0 {
		r.Scale = DefaultScale
	}
	if r.Logger == nil {
		r.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	r.validated = true
	return nil
}
