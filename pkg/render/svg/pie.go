package svg

import (
	"fmt"
	"math"

	"github.com/chartwright/chartwright/pkg/chart"
	"github.com/chartwright/chartwright/pkg/chart/colorx"
)

const (
	// pieStartAngle puts the first slice boundary at twelve o'clock; slices
	// sweep clockwise from there.
	pieStartAngle = -90.0
	// donutInnerRatio is the inner radius of a donut as a fraction of the
	// outer radius.
	donutInnerRatio = 0.6
	pieLabelMin     = 0.04 // slices under 4% skip their percentage label
)

// drawPie renders pie and donut charts. Slice angles are proportional to each
// entry's share of the series total; entries with non-positive values take no
// angle. Donuts additionally show the series total in the hole.
func drawPie(c *canvas, f frame, data chart.Series, opts *chart.Options, theme chart.ThemeColors, donut bool) {
	cx, cy := f.x+f.w/2, f.y+f.h/2
	outer := math.Min(f.w, f.h) / 2
	if outer <= 0 {
		return
	}
	inner := 0.0
	if donut {
		inner = outer * donutInnerRatio
	}

	total := 0.0
	for _, e := range data {
		if e.Value > 0 {
			total += e.Value
		}
	}
	if total <= 0 {
		c.text(cx, cy, "No positive values", placeholderSize, theme.Text, "middle")
		return
	}

	palette := opts.GetColors()
	mode := opts.GetBarColorMode()

	angle := pieStartAngle
	for i, e := range data {
		if e.Value <= 0 {
			continue
		}
		share := e.Value / total
		end := angle + share*360
		// A full-circle arc has coincident endpoints and renders as nothing,
		// so a 100% slice stops a hair short.
		if end-angle >= 360 {
			end = angle + 359.99
		}

		rgb := chart.SeriesColor(palette, i, mode)
		color := rgb.Hex()
		if donut {
			c.path(ringSectorPath(cx, cy, inner, outer, angle, end), color, theme.Background, 1.5)
		} else {
			c.path(sectorPath(cx, cy, outer, angle, end), color, theme.Background, 1.5)
		}

		if opts.GetShowLabels() && share >= pieLabelMin {
			mid := (angle + end) / 2
			labelR := outer * 0.5
			if donut {
				labelR = (inner + outer) / 2
			}
			p := polar(cx, cy, labelR, mid)
			pct := fmt.Sprintf("%.0f%%", share*100)
			labelColor := colorx.Contrast(colorx.Luminance(rgb), contrastThreshold)
			c.text(p.x, p.y+3, pct, tickFontSize, labelColor.Hex(), "middle")
		}

		angle = end
	}

	if donut {
		c.boldText(cx, cy, formatValue(data.Total()), titleFontSize+2, theme.Text, "middle")
		c.text(cx, cy+16, "Total", labelFontSize, theme.Text, "middle")
	}
}
