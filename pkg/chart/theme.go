package chart

// ThemeColors is a named bundle of surface colors: the canvas background,
// the text/label color, and the grid-line color.
type ThemeColors struct {
	Background string `json:"background,omitempty" toml:"background"`
	Text       string `json:"text,omitempty" toml:"text"`
	Grid       string `json:"grid,omitempty" toml:"grid"`
}

// Built-in theme tags.
const (
	ThemeLite   = "lite"
	ThemeDark   = "dark"
	ThemeOcean  = "ocean"
	ThemeForest = "forest"
)

// themeTable maps theme tags to their color bundles. Unknown tags fall back
// to lite; there is no error path.
var themeTable = map[string]ThemeColors{
	ThemeLite:   {Background: "#ffffff", Text: "#1f2937", Grid: "#e5e7eb"},
	ThemeDark:   {Background: "#111827", Text: "#f9fafb", Grid: "#374151"},
	ThemeOcean:  {Background: "#0c2233", Text: "#e0f2fe", Grid: "#1e4258"},
	ThemeForest: {Background: "#10201a", Text: "#ecfdf5", Grid: "#2a4a3c"},
}

// defaultTheme is the fallback for unknown tags and for missing fields in a
// custom theme.
var defaultTheme = themeTable[ThemeLite]

// ResolveTheme computes the effective colors for the options. Precedence,
// highest first:
//
//  1. CustomTheme — short-circuits; missing fields fill from the lite defaults
//  2. explicit Background / TextColor overrides
//  3. theme-table lookup by tag
//  4. built-in lite defaults (also the fallback for unknown tags)
func (o *Options) ResolveTheme() ThemeColors {
	if o.CustomTheme != nil {
		return fillTheme(*o.CustomTheme)
	}

	theme, ok := themeTable[o.Theme]
	if !ok {
		theme = defaultTheme
	}
	if o.Background != "" {
		theme.Background = o.Background
	}
	if o.TextColor != "" {
		theme.Text = o.TextColor
	}
	return theme
}

// fillTheme replaces empty fields with the lite defaults.
func fillTheme(t ThemeColors) ThemeColors {
	if t.Background == "" {
		t.Background = defaultTheme.Background
	}
	if t.Text == "" {
		t.Text = defaultTheme.Text
	}
	if t.Grid == "" {
		t.Grid = defaultTheme.Grid
	}
	return t
}

// ThemeNames lists the built-in theme tags.
func ThemeNames() []string {
	return []string{ThemeLite, ThemeDark, ThemeOcean, ThemeForest}
}
