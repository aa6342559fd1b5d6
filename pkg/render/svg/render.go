// Package svg renders chart series to standalone SVG documents. Each chart
// kind has its own drawing routine; Render validates the configuration,
// resolves the theme and dispatches to it. The output is deterministic for
// identical inputs.
package svg

import (
	"fmt"

	"github.com/chartwright/chartwright/pkg/chart"
	"github.com/chartwright/chartwright/pkg/errors"
)

const animationCSS = `
    @keyframes chart-enter { from { opacity: 0; } to { opacity: 1; } }
    .chart-layer { animation: chart-enter %dms ease-out; }`

// Render produces a complete SVG frame for the series under the given
// options. An empty series fails with EMPTY_SERIES unless the placeholder is
// enabled, in which case a styled empty frame is returned instead. Kinds
// without a drawing routine fail with UNSUPPORTED_KIND.
func Render(data chart.Series, opts chart.Options) ([]byte, error) {
	kind := opts.GetType()
	if _, err := chart.ParseKind(string(kind)); err != nil {
		return nil, err
	}
	if !kind.Supported() {
		return nil, errors.New(errors.ErrCodeUnsupported, "chart type %s is not supported", kind)
	}

	width, height := opts.GetWidth(), opts.GetHeight()
	theme := opts.ResolveTheme()

	c := newCanvas(width, height)
	c.rect(0, 0, float64(width), float64(height), 0, theme.Background)

	if len(data) == 0 {
		if !opts.GetShowPlaceholder() {
			return nil, errors.New(errors.ErrCodeEmptySeries, "series has no entries")
		}
		drawPlaceholder(c, &opts, theme)
		return c.close(), nil
	}

	if opts.GetAnimated() {
		c.style(fmt.Sprintf(animationCSS, opts.GetAnimationDuration()))
		c.openGroup("chart-layer")
	} else {
		c.openGroup("")
	}

	drawTitle(c, &opts, theme)

	f := computeFrame(width, height, &opts, isCartesian(kind))
	switch kind {
	case chart.KindBar:
		drawBars(c, f, data, &opts, theme, false)
	case chart.KindHorizontalBar:
		drawBars(c, f, data, &opts, theme, true)
	case chart.KindLine, chart.KindArea:
		drawLine(c, f, data, &opts, theme)
	case chart.KindPie:
		drawPie(c, f, data, &opts, theme, false)
	case chart.KindDonut:
		drawPie(c, f, data, &opts, theme, true)
	case chart.KindRadar:
		drawRadar(c, f, data, &opts, theme)
	case chart.KindGauge:
		drawGauge(c, f, data, &opts, theme)
	case chart.KindHeatmap:
		drawHeatmap(c, f, data, &opts, theme)
	case chart.KindWaterfall:
		drawWaterfall(c, f, data, &opts, theme)
	}

	if isCartesian(kind) {
		drawAxisLabels(c, f, &opts, theme)
	}
	if f.hasLegend {
		drawLegend(c, f, data, &opts, theme)
	}

	c.closeGroup()
	return c.close(), nil
}

// isCartesian reports whether the kind draws on an x/y plot with grid and
// axis labels, as opposed to the radial and matrix charts.
func isCartesian(kind chart.Kind) bool {
	switch kind {
	case chart.KindBar, chart.KindHorizontalBar, chart.KindLine, chart.KindArea, chart.KindWaterfall:
		return true
	}
	return false
}

// drawPlaceholder renders the themed empty-state frame.
func drawPlaceholder(c *canvas, opts *chart.Options, theme chart.ThemeColors) {
	drawTitle(c, opts, theme)
	cx, cy := float64(c.width)/2, float64(c.height)/2
	c.text(cx, cy, "No data available", placeholderSize, theme.Text, "middle")
}
