package svg

import (
	"fmt"
	"math"

	"github.com/chartwright/chartwright/pkg/chart"
)

const (
	// The gauge arc spans the upper semicircle, sweeping clockwise from the
	// leftmost point over the top to the rightmost.
	gaugeStartAngle = 180.0
	gaugeEndAngle   = 360.0
	gaugeMaxDefault = 100.0
	gaugeStroke     = 18.0
)

// drawGauge renders a semicircular gauge from the first entry. The entry's
// Max field sets the full-scale value; without one the gauge runs to 100.
// Values clamp to the scale rather than overshooting the arc.
func drawGauge(c *canvas, f frame, data chart.Series, opts *chart.Options, theme chart.ThemeColors) {
	entry := data[0]
	max := entry.Max
	if max <= 0 {
		max = gaugeMaxDefault
	}
	value := entry.Value
	if value < 0 {
		value = 0
	}
	if value > max {
		value = max
	}

	cx := f.x + f.w/2
	cy := f.y + f.h*0.75
	radius := math.Min(f.w/2, f.h*0.7) - gaugeStroke
	if radius <= 0 {
		return
	}

	c.path(arcPath(cx, cy, radius, gaugeStartAngle, gaugeEndAngle), "", theme.Grid, gaugeStroke)

	from, to := opts.GetGradientColors()
	if !opts.GetGradient() {
		from = chart.SeriesColor(opts.GetColors(), 0, opts.GetBarColorMode()).Hex()
		to = from
	}
	c.linearGradient("gauge-gradient", from, to, true)

	sweep := (value / max) * (gaugeEndAngle - gaugeStartAngle)
	if sweep > 0 {
		c.path(arcPath(cx, cy, radius, gaugeStartAngle, gaugeStartAngle+sweep), "", "url(#gauge-gradient)", gaugeStroke)
	}

	c.boldText(cx, cy-radius/3, formatValue(value), titleFontSize+6, theme.Text, "middle")
	if opts.GetShowLabels() {
		caption := fmt.Sprintf("%s / %s", formatValue(value), formatValue(max))
		if entry.Label != "" {
			caption = entry.Label
			c.text(cx, cy+labelFontSize+4, fmt.Sprintf("%s / %s", formatValue(value), formatValue(max)), tickFontSize, theme.Text, "middle")
		}
		c.text(cx, cy, caption, labelFontSize, theme.Text, "middle")
	}
}
