// Package colorx provides the color arithmetic shared by all chart renderers:
// hex parsing, linear interpolation, and brightness scaling.
//
// All functions operate on RGB values in the 0-255 range. Parsing accepts
// 6-digit hex strings only (with or without a leading '#'); anything else
// yields black. This is a deliberate fallback policy rather than an error
// path — a malformed color in a chart config degrades to a visible but
// harmless default instead of aborting the render.
package colorx

import (
	"fmt"
	"strconv"
)

// RGB is a color with 8-bit red, green and blue channels.
type RGB struct {
	R, G, B uint8
}

// Black is the fallback color for unparseable input.
var Black = RGB{0, 0, 0}

// Parse converts a 6-digit hex color string to an RGB value.
// A leading '#' is optional. Invalid input returns Black.
func Parse(s string) RGB {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return Black
	}
	r, err := strconv.ParseUint(s[0:2], 16, 8)
	if err != nil {
		return Black
	}
	g, err := strconv.ParseUint(s[2:4], 16, 8)
	if err != nil {
		return Black
	}
	b, err := strconv.ParseUint(s[4:6], 16, 8)
	if err != nil {
		return Black
	}
	return RGB{uint8(r), uint8(g), uint8(b)}
}

// Hex returns the color as a lowercase "#rrggbb" string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Lerp interpolates linearly between a and b by t.
// t is clamped to [0, 1]; t=0 returns a, t=1 returns b.
func Lerp(a, b RGB, t float64) RGB {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return RGB{lerp(a.R, b.R), lerp(a.G, b.G), lerp(a.B, b.B)}
}

// Scale multiplies each channel by factor, clamping to [0, 255].
// A factor of 1 returns the color unchanged; factors below zero clamp to
// black. This powers the "shade" palette mode where successive entries get
// progressively darker variants of the base color.
func Scale(c RGB, factor float64) RGB {
	scale := func(v uint8) uint8 {
		f := float64(v) * factor
		if f < 0 {
			f = 0
		}
		if f > 255 {
			f = 255
		}
		return uint8(f)
	}
	return RGB{scale(c.R), scale(c.G), scale(c.B)}
}

// Luminance returns the perceived brightness of c in [0, 1] using the
// Rec. 601 channel weights.
func Luminance(c RGB) float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}

// Contrast returns white for intensities at or below the threshold and black
// above it. Heatmap cells use this to keep labels readable against the
// interpolated cell color (light text on dim cells, dark text on hot cells).
func Contrast(intensity, threshold float64) RGB {
	if intensity > threshold {
		return RGB{0, 0, 0}
	}
	return RGB{255, 255, 255}
}
