package svg

import (
	"github.com/chartwright/chartwright/pkg/chart"
	"github.com/chartwright/chartwright/pkg/chart/colorx"
)

// contrastThreshold splits cell intensities into the white-label and
// black-label halves.
const contrastThreshold = 0.5

const heatmapCellGap = 2.0

// drawHeatmap renders a matrix of cells, one row per entry. Cell colors
// interpolate between the first two palette colors by each cell's share of
// the matrix maximum; cell labels flip between white and black for contrast.
func drawHeatmap(c *canvas, f frame, data chart.Series, opts *chart.Options, theme chart.ThemeColors) {
	cols := 0
	for _, e := range data {
		if len(e.Values) > cols {
			cols = len(e.Values)
		}
	}
	if cols == 0 {
		c.text(f.x+f.w/2, f.y+f.h/2, "No cell values", placeholderSize, theme.Text, "middle")
		return
	}

	palette := opts.GetColors()
	cold := colorx.Parse(palette[0])
	hot := cold
	if len(palette) > 1 {
		hot = colorx.Parse(palette[1])
	}

	max := data.MaxCell()
	radius := chart.CornerRadius(opts.Style)
	rows := len(data)
	labelBand := 0.0
	if opts.GetShowLabels() {
		labelBand = yTickBand
	}
	cellW := (f.w - labelBand) / float64(cols)
	cellH := f.h / float64(rows)
	labels := data.Labels()

	for row, e := range data {
		y := f.y + cellH*float64(row)
		if opts.GetShowLabels() {
			c.text(f.x+labelBand-6, y+cellH/2+3, labels[row], tickFontSize, theme.Text, "end")
		}
		for col, v := range e.Values {
			intensity := 0.0
			if max > 0 {
				intensity = v / max
			}
			fill := colorx.Lerp(cold, hot, intensity)
			x := f.x + labelBand + cellW*float64(col)
			c.rect(x+heatmapCellGap/2, y+heatmapCellGap/2, cellW-heatmapCellGap, cellH-heatmapCellGap, radius, fill.Hex())

			if opts.GetShowLabels() {
				label := colorx.Contrast(intensity, contrastThreshold)
				c.text(x+cellW/2, y+cellH/2+3, formatValue(v), tickFontSize, label.Hex(), "middle")
			}
		}
	}
}
