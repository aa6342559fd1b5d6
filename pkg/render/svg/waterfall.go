package svg

import (
	"math"

	"github.com/chartwright/chartwright/pkg/chart"
)

// drawWaterfall renders a waterfall chart: each bar spans the gap between
// consecutive running totals, with dashed connectors carrying the level from
// one bar to the next. The value scale always includes the zero baseline even
// when every running total stays on one side of it.
func drawWaterfall(c *canvas, f frame, data chart.Series, opts *chart.Options, theme chart.ThemeColors) {
	sums := data.Cumulative()

	min, max := 0.0, 0.0
	for _, s := range sums {
		min = math.Min(min, s)
		max = math.Max(max, s)
	}
	scale := newValueScale(min, max, f.h)

	if opts.GetShowGrid() {
		drawGrid(c, f, scale, theme, false)
	}

	// Rising deltas take the second palette color, falling ones the fourth;
	// with the default palette that is green up, red down.
	palette := opts.GetColors()
	rise := chart.SeriesColor(palette, 1, chart.ModeSeries).Hex()
	fall := chart.SeriesColor(palette, 3, chart.ModeSeries).Hex()

	radius := chart.CornerRadius(opts.Style)
	labels := data.Labels()
	slot := f.w / float64(len(data))
	barSize := slot * barSlotFill
	baseline := f.y + f.h

	prevLevel := 0.0
	for i, e := range data {
		level := sums[i]
		yStart := baseline - scale.offset(prevLevel)
		yEnd := baseline - scale.offset(level)

		top, height := yEnd, yStart-yEnd
		color := rise
		if e.Value < 0 {
			top, height = yStart, yEnd-yStart
			color = fall
		}
		if height < 1 {
			height = 1 // zero-delta entries still get a visible tick
		}

		x := f.x + slot*float64(i) + (slot-barSize)/2
		c.rect(x, top, barSize, height, radius, color)

		if i > 0 {
			// Connector from the previous bar's level across the gap.
			prevRight := f.x + slot*float64(i-1) + (slot-barSize)/2 + barSize
			c.dashedLine(prevRight, yStart, x, yStart, theme.Text, 1)
		}

		if opts.GetShowLabels() {
			c.text(x+barSize/2, baseline+xTickBand-8, labels[i], tickFontSize, theme.Text, "middle")
			labelY := math.Min(top, yStart) - 4
			c.text(x+barSize/2, labelY, formatValue(level), tickFontSize, theme.Text, "middle")
		}

		prevLevel = level
	}
}
