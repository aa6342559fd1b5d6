// Package pkg provides the core libraries for Chartwright chart rendering.
//
// # Overview
//
// Chartwright turns labeled numeric series into chart artifacts. The pkg
// directory is organized into these areas:
//
//  1. [chart] - Domain types (series, options, themes, live instances)
//  2. [render] - SVG drawing and format conversion
//  3. [dataset] - Series loading from http, file, and mongodb locators
//  4. [cache] - Pluggable byte caches and the cache key scheme
//  5. [pipeline] - Orchestration (load → render) shared by CLI and server
//  6. [errors] - Coded errors used across package boundaries
//  7. [observability] - No-op instrumentation hooks
//
// # Architecture
//
// The typical data flow through Chartwright:
//
//	Locator or inline series
//	         ↓
//	    [dataset] package (resolve the series, cached)
//	         ↓
//	    [chart] package (effective options: theme, style, palette)
//	         ↓
//	    [render/svg] package (draw the frame)
//	         ↓
//	    SVG/PNG/PDF output
//
// # Quick Start
//
// Render a bar chart to SVG:
//
//	import (
//	    "github.com/chartwright/chartwright/pkg/chart"
//	    "github.com/chartwright/chartwright/pkg/render/svg"
//	)
//
//	data := chart.Series{{Label: "Jan", Value: 12}, {Label: "Feb", Value: 9}}
//	frame, err := svg.Render(data, chart.Options{Type: chart.KindBar, Theme: "dark"})
//
// Or run the whole pipeline with caching:
//
//	runner := pipeline.NewRunner(cache, nil, loader, logger)
//	result, err := runner.Execute(ctx, pipeline.Request{
//	    Locator: "https://example.com/revenue.json",
//	    Options: chart.Options{Type: chart.KindBar},
//	    Formats: []string{"svg", "png"},
//	})
package pkg
