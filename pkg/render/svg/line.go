package svg

import (
	"bytes"
	"fmt"

	"github.com/chartwright/chartwright/pkg/chart"
)

const (
	lineStrokeWidth = 2.5
	markerRadius    = 3.5
)

// drawLine renders line and area charts: a polyline through the data points,
// optional markers and value labels, and an optional fill down to the
// baseline. Area charts fill by default.
func drawLine(c *canvas, f frame, data chart.Series, opts *chart.Options, theme chart.ThemeColors) {
	scale := newValueScale(0, data.MaxValue(), f.h)

	if opts.GetShowGrid() {
		drawGrid(c, f, scale, theme, false)
	}

	pts := make([]point, len(data))
	step := f.w / float64(len(data))
	for i, e := range data {
		pts[i] = point{
			x: f.x + step*float64(i) + step/2,
			y: f.y + f.h - scale.offset(e.Value),
		}
	}

	stroke := chart.SeriesColor(opts.GetColors(), 0, opts.GetLineColorMode()).Hex()
	if opts.GetGradient() {
		from, to := opts.GetGradientColors()
		c.linearGradient("line-gradient", from, to, true)
		stroke = "url(#line-gradient)"
	}

	if opts.GetAreaFill() {
		fill := stroke
		if opts.GetGradient() {
			// Fade the fill vertically so the area reads as lighter than the line.
			from, _ := opts.GetGradientColors()
			c.linearGradient("area-gradient", from, theme.Background, false)
			fill = "url(#area-gradient)"
		}
		c.fillPath(areaPath(pts, f.y+f.h), fill, opts.GetFillOpacity())
	}

	c.polyline(pts, stroke, lineStrokeWidth)

	labels := data.Labels()
	for i, p := range pts {
		// Markers pick up the per-entry color so shade and cycling modes are
		// visible; a gradient stroke covers the markers too.
		markerFill := stroke
		if !opts.GetGradient() {
			markerFill = chart.SeriesColor(opts.GetColors(), i, opts.GetLineColorMode()).Hex()
		}
		c.circle(p.x, p.y, markerRadius, markerFill)
		if opts.GetShowLabels() {
			c.text(p.x, f.y+f.h+xTickBand-8, labels[i], tickFontSize, theme.Text, "middle")
			c.text(p.x, p.y-8, formatValue(data[i].Value), tickFontSize, theme.Text, "middle")
		}
	}
}

// areaPath closes the polyline down to the baseline for filling.
func areaPath(pts []point, baseline float64) string {
	var buf bytes.Buffer
	for i, p := range pts {
		if i == 0 {
			fmt.Fprintf(&buf, "M %.1f %.1f", p.x, p.y)
		} else {
			fmt.Fprintf(&buf, " L %.1f %.1f", p.x, p.y)
		}
	}
	fmt.Fprintf(&buf, " L %.1f %.1f L %.1f %.1f Z",
		pts[len(pts)-1].x, baseline, pts[0].x, baseline)
	return buf.String()
}
