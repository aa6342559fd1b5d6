// Package sink renders charts into named output formats. It wraps the SVG
// renderer with rsvg-convert conversion for png and pdf so callers pick a
// format instead of wiring the conversion themselves.
package sink

import (
	"github.com/chartwright/chartwright/pkg/chart"
	"github.com/chartwright/chartwright/pkg/errors"
	"github.com/chartwright/chartwright/pkg/render"
	"github.com/chartwright/chartwright/pkg/render/svg"
)

// Format is a supported output format.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
)

// Formats lists the supported output formats.
var Formats = []Format{FormatSVG, FormatPNG, FormatPDF}

// ParseFormat validates a format tag. Unknown tags return INVALID_FORMAT.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatSVG, FormatPNG, FormatPDF:
		return f, nil
	}
	return "", errors.New(errors.ErrCodeInvalidFormat, "unknown output format: %s (expected svg, png or pdf)", s)
}

// Option configures rendering output.
type Option func(*renderer)

type renderer struct {
	scale float64
}

// WithScale sets the PNG scale factor (default 2.0 for 2x resolution).
func WithScale(s float64) Option {
	return func(r *renderer) { r.scale = s }
}

// RenderSVG renders the series as a standalone SVG document.
func RenderSVG(data chart.Series, opts chart.Options) ([]byte, error) {
	return svg.Render(data, opts)
}

// RenderPNG renders the series as PNG via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(data chart.Series, opts chart.Options, sinkOpts ...Option) ([]byte, error) {
	r := renderer{scale: 2.0}
	for _, opt := range sinkOpts {
		opt(&r)
	}
	frame, err := svg.Render(data, opts)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(frame, r.scale)
}

// RenderPDF renders the series as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(data chart.Series, opts chart.Options) ([]byte, error) {
	frame, err := svg.Render(data, opts)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(frame)
}

// Render dispatches to the renderer for the given format.
func Render(data chart.Series, opts chart.Options, format Format, sinkOpts ...Option) ([]byte, error) {
	switch format {
	case FormatSVG:
		return RenderSVG(data, opts)
	case FormatPNG:
		return RenderPNG(data, opts, sinkOpts...)
	case FormatPDF:
		return RenderPDF(data, opts)
	}
	return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown output format: %s", format)
}
