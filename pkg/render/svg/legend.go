package svg

import (
	"github.com/chartwright/chartwright/pkg/chart"
)

const legendItemGap = 14.0

// drawLegend renders one swatch-and-label pair per entry inside the band the
// frame reserved. Top and bottom legends lay out as a centered row, left and
// right ones as a column.
func drawLegend(c *canvas, f frame, data chart.Series, opts *chart.Options, theme chart.ThemeColors) {
	labels := data.Labels()
	palette := opts.GetColors()
	mode := opts.GetBarColorMode()

	horizontal := f.legendPos == "top" || f.legendPos == "bottom"
	if horizontal {
		total := 0.0
		widths := make([]float64, len(labels))
		for i, label := range labels {
			widths[i] = legendSwatch + 4 + estimateTextWidth(label, legendFontSize)
			total += widths[i] + legendItemGap
		}
		x := f.legendX + (f.legendW-total)/2
		y := f.legendY + f.legendH/2
		for i, label := range labels {
			color := chart.SeriesColor(palette, i, mode).Hex()
			c.rect(x, y-legendSwatch/2, legendSwatch, legendSwatch, 2, color)
			c.text(x+legendSwatch+4, y+4, label, legendFontSize, theme.Text, "start")
			x += widths[i] + legendItemGap
		}
		return
	}

	x := f.legendX + 8
	y := f.legendY + legendFontSize
	for i, label := range labels {
		color := chart.SeriesColor(palette, i, mode).Hex()
		c.rect(x, y-legendSwatch+1, legendSwatch, legendSwatch, 2, color)
		c.text(x+legendSwatch+4, y, label, legendFontSize, theme.Text, "start")
		y += legendFontSize + 7
	}
}

// estimateTextWidth approximates rendered width from an average glyph ratio.
// Good enough for legend layout; exact metrics would need font tables.
func estimateTextWidth(s string, size float64) float64 {
	return float64(len(s)) * size * 0.55
}
