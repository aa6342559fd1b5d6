package svg

import (
	"github.com/chartwright/chartwright/pkg/chart"
)

const (
	frameMargin     = 16.0
	titleBand       = 30.0
	axisLabelBand   = 18.0
	xTickBand       = 22.0
	yTickBand       = 40.0
	legendRowBand   = 30.0
	legendColBand   = 130.0
	gridDivisions   = 4
	labelFontSize   = 11.0
	titleFontSize   = 16.0
	tickFontSize    = 10.0
	legendFontSize  = 11.0
	legendSwatch    = 10.0
	placeholderSize = 14.0
)

// frame is the resolved layout of one chart: the plot rectangle left over
// after the title, axis labels and legend have claimed their bands.
type frame struct {
	x, y, w, h float64

	legendX, legendY float64
	legendW, legendH float64
	legendPos        string
	hasLegend        bool
}

// computeFrame carves the canvas into plot area, title band and legend band.
// Cartesian charts additionally reserve room for tick and axis labels.
func computeFrame(width, height int, opts *chart.Options, cartesian bool) frame {
	x0, y0 := frameMargin, frameMargin
	x1, y1 := float64(width)-frameMargin, float64(height)-frameMargin

	if opts.Title != "" {
		y0 += titleBand
	}

	f := frame{legendPos: opts.GetLegendPosition()}
	if opts.GetShowLegend() {
		f.hasLegend = true
		switch f.legendPos {
		case "top":
			f.legendX, f.legendY = x0, y0
			f.legendW, f.legendH = x1-x0, legendRowBand
			y0 += legendRowBand
		case "left":
			f.legendX, f.legendY = x0, y0
			f.legendW, f.legendH = legendColBand, y1-y0
			x0 += legendColBand
		case "right":
			f.legendX, f.legendY = x1-legendColBand, y0
			f.legendW, f.legendH = legendColBand, y1-y0
			x1 -= legendColBand
		default: // bottom
			f.legendX, f.legendY = x0, y1-legendRowBand
			f.legendW, f.legendH = x1-x0, legendRowBand
			y1 -= legendRowBand
		}
	}

	if cartesian {
		if opts.YLabel != "" {
			x0 += axisLabelBand
		}
		if opts.XLabel != "" {
			y1 -= axisLabelBand
		}
		x0 += yTickBand
		y1 -= xTickBand
	}

	f.x, f.y = x0, y0
	f.w, f.h = x1-x0, y1-y0
	if f.w < 0 {
		f.w = 0
	}
	if f.h < 0 {
		f.h = 0
	}
	return f
}

// drawTitle centers the chart title above the plot.
func drawTitle(c *canvas, opts *chart.Options, theme chart.ThemeColors) {
	if opts.Title == "" {
		return
	}
	c.boldText(float64(c.width)/2, frameMargin+titleFontSize, opts.Title, titleFontSize, theme.Text, "middle")
}

// drawAxisLabels writes the optional x and y axis captions.
func drawAxisLabels(c *canvas, f frame, opts *chart.Options, theme chart.ThemeColors) {
	if opts.XLabel != "" {
		c.text(f.x+f.w/2, float64(c.height)-frameMargin/2, opts.XLabel, labelFontSize, theme.Text, "middle")
	}
	if opts.YLabel != "" {
		c.rotatedText(f.x-yTickBand-4, f.y+f.h/2, opts.YLabel, labelFontSize, theme.Text)
	}
}

// drawGrid draws the horizontal (or vertical, for horizontal bars) grid lines
// and their tick labels.
func drawGrid(c *canvas, f frame, scale valueScale, theme chart.ThemeColors, horizontal bool) {
	for _, v := range scale.ticks(gridDivisions) {
		if horizontal {
			x := f.x + scale.offset(v)
			c.line(x, f.y, x, f.y+f.h, theme.Grid, 1)
			c.text(x, f.y+f.h+xTickBand-8, formatValue(v), tickFontSize, theme.Text, "middle")
		} else {
			y := f.y + f.h - scale.offset(v)
			c.line(f.x, y, f.x+f.w, y, theme.Grid, 1)
			c.text(f.x-6, y+3, formatValue(v), tickFontSize, theme.Text, "end")
		}
	}
}
