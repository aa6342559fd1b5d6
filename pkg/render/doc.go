// Package render provides chart rendering and output conversion.
//
// # Overview
//
// This package contains the rendering pipeline that transforms chart series
// into visual outputs. It provides:
//
//   - Generic format conversion (SVG to PDF/PNG)
//   - The SVG chart renderer (in [svg] subpackage)
//   - Output sinks for svg, png and pdf (in [svg/sink] subpackage)
//
// # Format Conversion
//
// The [ToPDF] and [ToPNG] functions convert any SVG to other formats using
// the external rsvg-convert tool (from librsvg).
//
//	frame, err := svg.Render(data, opts)
//	pdf, err := render.ToPDF(frame)
//	png, err := render.ToPNG(frame, 2.0)  // 2x scale
//
// # Chart Rendering
//
// The [svg] subpackage draws the chart kinds (bar, line, area, pie, donut,
// radar, gauge, heatmap, waterfall) as standalone SVG documents. The
// [svg/sink] subpackage wraps it with format selection so callers ask for a
// chart in a named output format directly.
//
// [svg]: github.com/chartwright/chartwright/pkg/render/svg
// [svg/sink]: github.com/chartwright/chartwright/pkg/render/svg/sink
package render
