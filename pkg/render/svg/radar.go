package svg

import (
	"math"

	"github.com/chartwright/chartwright/pkg/chart"
)

// radarRings is the number of concentric guide rings.
const radarRings = 5

// drawRadar renders a radar (spider) chart: one spoke per entry, concentric
// guide rings, and the value polygon scaled against the series maximum.
func drawRadar(c *canvas, f frame, data chart.Series, opts *chart.Options, theme chart.ThemeColors) {
	cx, cy := f.x+f.w/2, f.y+f.h/2
	radius := math.Min(f.w, f.h)/2 - labelFontSize
	if radius <= 0 {
		return
	}

	n := len(data)
	angleStep := 360.0 / float64(n)
	max := data.MaxValue()

	if opts.GetShowGrid() {
		for ring := 1; ring <= radarRings; ring++ {
			r := radius * float64(ring) / radarRings
			pts := make([]point, n)
			for i := range pts {
				pts[i] = polar(cx, cy, r, pieStartAngle+angleStep*float64(i))
			}
			c.polygon(pts, "none", theme.Grid, 1, 0)
		}
		for i := 0; i < n; i++ {
			p := polar(cx, cy, radius, pieStartAngle+angleStep*float64(i))
			c.line(cx, cy, p.x, p.y, theme.Grid, 1)
		}
	}

	pts := make([]point, n)
	for i, e := range data {
		r := 0.0
		if max > 0 {
			r = radius * e.Value / max
		}
		pts[i] = polar(cx, cy, r, pieStartAngle+angleStep*float64(i))
	}

	color := chart.SeriesColor(opts.GetColors(), 0, opts.GetLineColorMode())
	c.polygon(pts, color.Hex(), color.Hex(), lineStrokeWidth, opts.GetFillOpacity())
	for i, p := range pts {
		c.circle(p.x, p.y, markerRadius-1, chart.SeriesColor(opts.GetColors(), i, opts.GetLineColorMode()).Hex())
	}

	if opts.GetShowLabels() {
		labels := data.Labels()
		for i, label := range labels {
			p := polar(cx, cy, radius+labelFontSize, pieStartAngle+angleStep*float64(i))
			c.text(p.x, p.y+3, label, tickFontSize, theme.Text, "middle")
		}
	}
}
