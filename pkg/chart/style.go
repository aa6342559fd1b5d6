package chart

// Built-in shape style tags. A style is a named corner-radius preset for
// rectangular shapes (bars, heatmap cells, legend swatches).
const (
	StyleSharp   = "sharp"
	StyleDefault = "default"
	StyleSoft    = "soft"
	StyleRounded = "rounded"
)

// styleRadii maps style tags to corner radii in pixels.
var styleRadii = map[string]float64{
	StyleSharp:   0,
	StyleDefault: 4,
	StyleSoft:    18,
	StyleRounded: 51,
}

// CornerRadius returns the corner radius for a style tag.
// Unknown tags fall back to the default radius of 4.
func CornerRadius(style string) float64 {
	if r, ok := styleRadii[style]; ok {
		return r
	}
	return styleRadii[StyleDefault]
}

// StyleNames lists the built-in style tags.
func StyleNames() []string {
	return []string{StyleSharp, StyleDefault, StyleSoft, StyleRounded}
}
