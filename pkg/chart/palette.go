package chart

import "github.com/chartwright/chartwright/pkg/chart/colorx"

// ColorMode selects how a palette assigns a color to the entry at index i.
type ColorMode string

const (
	// ModeSeries cycles the palette by index modulo its length.
	ModeSeries ColorMode = "series"
	// ModeIndividual currently behaves exactly like ModeSeries. The two tags
	// are kept distinct so configs using either continue to work.
	ModeIndividual ColorMode = "individual"
	// ModeShade derives progressively darker variants of the palette's first
	// color: entry i is scaled by 1 - 0.15*i.
	ModeShade ColorMode = "shade"
)

// shadeStep is the per-index brightness decrement for ModeShade.
const shadeStep = 0.15

// SeriesColor returns the color for entry i under the given mode.
// An empty palette yields black for every index.
func SeriesColor(palette []string, i int, mode ColorMode) colorx.RGB {
	if len(palette) == 0 {
		return colorx.Black
	}
	switch mode {
	case ModeShade:
		return colorx.Scale(colorx.Parse(palette[0]), 1-shadeStep*float64(i))
	default: // series, individual, and anything unrecognized
		return colorx.Parse(palette[i%len(palette)])
	}
}

// BarColorMode returns the configured bar color mode, defaulting to series.
func (o *Options) GetBarColorMode() ColorMode {
	if o.BarColorMode == "" {
		return ModeSeries
	}
	return ColorMode(o.BarColorMode)
}

// LineColorMode returns the configured line color mode, defaulting to series.
func (o *Options) GetLineColorMode() ColorMode {
	if o.LineColorMode == "" {
		return ModeSeries
	}
	return ColorMode(o.LineColorMode)
}
