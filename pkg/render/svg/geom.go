package svg

import (
	"fmt"
	"math"
)

// polar converts a center, radius and angle in degrees to canvas coordinates.
// SVG's y axis points down, so increasing angles sweep clockwise and -90
// degrees is twelve o'clock.
func polar(cx, cy, r, angleDeg float64) point {
	rad := angleDeg * math.Pi / 180
	return point{x: cx + r*math.Cos(rad), y: cy + r*math.Sin(rad)}
}

// sectorPath builds a filled pie slice from startDeg to endDeg (clockwise).
func sectorPath(cx, cy, r, startDeg, endDeg float64) string {
	start := polar(cx, cy, r, startDeg)
	end := polar(cx, cy, r, endDeg)
	largeArc := 0
	if endDeg-startDeg > 180 {
		largeArc = 1
	}
	return fmt.Sprintf("M %.1f %.1f L %.1f %.1f A %.1f %.1f 0 %d 1 %.1f %.1f Z",
		cx, cy, start.x, start.y, r, r, largeArc, end.x, end.y)
}

// ringSectorPath builds a donut segment between an inner and outer radius.
func ringSectorPath(cx, cy, inner, outer, startDeg, endDeg float64) string {
	outerStart := polar(cx, cy, outer, startDeg)
	outerEnd := polar(cx, cy, outer, endDeg)
	innerStart := polar(cx, cy, inner, startDeg)
	innerEnd := polar(cx, cy, inner, endDeg)
	largeArc := 0
	if endDeg-startDeg > 180 {
		largeArc = 1
	}
	return fmt.Sprintf("M %.1f %.1f A %.1f %.1f 0 %d 1 %.1f %.1f L %.1f %.1f A %.1f %.1f 0 %d 0 %.1f %.1f Z",
		outerStart.x, outerStart.y, outer, outer, largeArc, outerEnd.x, outerEnd.y,
		innerEnd.x, innerEnd.y, inner, inner, largeArc, innerStart.x, innerStart.y)
}

// arcPath builds an unfilled arc from startDeg to endDeg for stroking.
func arcPath(cx, cy, r, startDeg, endDeg float64) string {
	start := polar(cx, cy, r, startDeg)
	end := polar(cx, cy, r, endDeg)
	largeArc := 0
	if endDeg-startDeg > 180 {
		largeArc = 1
	}
	return fmt.Sprintf("M %.1f %.1f A %.1f %.1f 0 %d 1 %.1f %.1f",
		start.x, start.y, r, r, largeArc, end.x, end.y)
}

// valueScale maps data values onto a pixel span. A zero or negative domain
// collapses every value to the origin instead of dividing by zero.
type valueScale struct {
	min, max float64
	span     float64
}

func newValueScale(min, max, span float64) valueScale {
	return valueScale{min: min, max: max, span: span}
}

// offset returns the pixel distance of v from the scale minimum.
func (s valueScale) offset(v float64) float64 {
	domain := s.max - s.min
	if domain <= 0 {
		return 0
	}
	return (v - s.min) / domain * s.span
}

// ticks returns n+1 evenly spaced domain values from min to max inclusive.
func (s valueScale) ticks(n int) []float64 {
	if n < 1 {
		n = 1
	}
	out := make([]float64, n+1)
	step := (s.max - s.min) / float64(n)
	for i := 0; i <= n; i++ {
		out[i] = s.min + step*float64(i)
	}
	return out
}

// formatValue trims trailing zeros so axis labels stay short.
func formatValue(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e9 {
		return fmt.Sprintf("%.0f", v)
	}
	return fmt.Sprintf("%.1f", v)
}
