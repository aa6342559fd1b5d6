package svg

import (
	"github.com/chartwright/chartwright/pkg/chart"
)

// barSlotFill is the fraction of each category slot occupied by the bar.
const barSlotFill = 0.6

// drawBars renders vertical or horizontal bar charts. Bars grow from a zero
// baseline toward the series maximum; the corner radius follows the
// configured shape style.
func drawBars(c *canvas, f frame, data chart.Series, opts *chart.Options, theme chart.ThemeColors, horizontal bool) {
	span := f.h
	if horizontal {
		span = f.w
	}
	scale := newValueScale(0, data.MaxValue(), span)

	if opts.GetShowGrid() {
		drawGrid(c, f, scale, theme, horizontal)
	}

	fill := ""
	if opts.GetGradient() {
		from, to := opts.GetGradientColors()
		c.linearGradient("bar-gradient", from, to, horizontal)
		fill = "url(#bar-gradient)"
	}

	radius := chart.CornerRadius(opts.Style)
	palette := opts.GetColors()
	mode := opts.GetBarColorMode()
	labels := data.Labels()
	across := f.w
	if horizontal {
		across = f.h
	}
	slot := across / float64(len(data))
	barSize := slot * barSlotFill

	for i, e := range data {
		color := fill
		if color == "" {
			color = chart.SeriesColor(palette, i, mode).Hex()
		}
		length := scale.offset(e.Value)

		if horizontal {
			y := f.y + slot*float64(i) + (slot-barSize)/2
			c.rect(f.x, y, length, barSize, radius, color)
			if opts.GetShowLabels() {
				c.text(f.x-6, y+barSize/2+3, labels[i], tickFontSize, theme.Text, "end")
				c.text(f.x+length+4, y+barSize/2+3, formatValue(e.Value), tickFontSize, theme.Text, "start")
			}
		} else {
			x := f.x + slot*float64(i) + (slot-barSize)/2
			y := f.y + f.h - length
			c.rect(x, y, barSize, length, radius, color)
			if opts.GetShowLabels() {
				c.text(x+barSize/2, f.y+f.h+xTickBand-8, labels[i], tickFontSize, theme.Text, "middle")
				c.text(x+barSize/2, y-4, formatValue(e.Value), tickFontSize, theme.Text, "middle")
			}
		}
	}
}
