package chart

// Options is the full caller-facing configuration surface for a chart. Every
// field is optional: zero values (nil for the pointer fields) mean "use the
// default", and Merge copies only the fields a caller actually set. There are
// no required fields and no cross-field validation at this layer — rendering
// applies documented fallbacks instead.
//
// The pointer fields exist so that an explicit false/zero can be told apart
// from "not set" during merging.
type Options struct {
	Type  Kind   `json:"type,omitempty" toml:"type"`
	Data  Series `json:"data,omitempty" toml:"data"`
	Theme string `json:"theme,omitempty" toml:"theme"`
	Style string `json:"style,omitempty" toml:"style"`

	// Explicit color overrides. CustomTheme takes precedence over everything;
	// Background/TextColor override the theme-table colors individually.
	CustomTheme *ThemeColors `json:"customTheme,omitempty" toml:"custom_theme"`
	Background  string       `json:"background,omitempty" toml:"background"`
	TextColor   string       `json:"textColor,omitempty" toml:"text_color"`

	Colors         []string `json:"colors,omitempty" toml:"colors"`
	BarColorMode   string   `json:"barColorMode,omitempty" toml:"bar_color_mode"`
	LineColorMode  string   `json:"lineColorMode,omitempty" toml:"line_color_mode"`
	Gradient       *bool    `json:"gradient,omitempty" toml:"gradient"`
	GradientColors []string `json:"gradientColors,omitempty" toml:"gradient_colors"`

	LineFill    *bool    `json:"lineFill,omitempty" toml:"line_fill"`
	AreaFill    *bool    `json:"areaFill,omitempty" toml:"area_fill"`
	FillOpacity *float64 `json:"fillOpacity,omitempty" toml:"fill_opacity"`

	ShowLegend     *bool  `json:"showLegend,omitempty" toml:"show_legend"`
	LegendPosition string `json:"legendPosition,omitempty" toml:"legend_position"`
	ShowGrid       *bool  `json:"showGrid,omitempty" toml:"show_grid"`
	ShowLabels     *bool  `json:"showLabels,omitempty" toml:"show_labels"`

	Animated          *bool `json:"animated,omitempty" toml:"animated"`
	AnimationDuration *int  `json:"animationDuration,omitempty" toml:"animation_duration"`

	Responsive      *bool `json:"responsive,omitempty" toml:"responsive"`
	ShowPlaceholder *bool `json:"showPlaceholder,omitempty" toml:"show_placeholder"`

	Title  string `json:"title,omitempty" toml:"title"`
	XLabel string `json:"xLabel,omitempty" toml:"x_label"`
	YLabel string `json:"yLabel,omitempty" toml:"y_label"`

	Width  int `json:"width,omitempty" toml:"width"`
	Height int `json:"height,omitempty" toml:"height"`
}

// Defaults applied when a field is unset.
const (
	DefaultTheme             = "lite"
	DefaultStyle             = "default"
	DefaultWidth             = 600
	DefaultHeight            = 400
	DefaultLegendPosition    = "bottom"
	DefaultAnimationDuration = 500 // milliseconds
	DefaultFillOpacity       = 0.25
)

// DefaultPalette is the built-in series color cycle.
var DefaultPalette = []string{
	"#3b82f6", "#10b981", "#f59e0b", "#ef4444",
	"#8b5cf6", "#ec4899", "#06b6d4", "#84cc16",
}

// Merge returns a copy of o with every set field of overlay applied on top.
// The merge is shallow: slices and pointers from overlay replace the
// originals wholesale.
func (o Options) Merge(overlay Options) Options {
	out := o
	if overlay.Type != "" {
		out.Type = overlay.Type
	}
	if overlay.Data != nil {
		out.Data = overlay.Data
	}
	if overlay.Theme != "" {
		out.Theme = overlay.Theme
	}
	if overlay.Style != "" {
		out.Style = overlay.Style
	}
	if overlay.CustomTheme != nil {
		out.CustomTheme = overlay.CustomTheme
	}
	if overlay.Background != "" {
		out.Background = overlay.Background
	}
	if overlay.TextColor != "" {
		out.TextColor = overlay.TextColor
	}
	if overlay.Colors != nil {
		out.Colors = overlay.Colors
	}
	if overlay.BarColorMode != "" {
		out.BarColorMode = overlay.BarColorMode
	}
	if overlay.LineColorMode != "" {
		out.LineColorMode = overlay.LineColorMode
	}
	if overlay.Gradient != nil {
		out.Gradient = overlay.Gradient
	}
	if overlay.GradientColors != nil {
		out.GradientColors = overlay.GradientColors
	}
	if overlay.LineFill != nil {
		out.LineFill = overlay.LineFill
	}
	if overlay.AreaFill != nil {
		out.AreaFill = overlay.AreaFill
	}
	if overlay.FillOpacity != nil {
		out.FillOpacity = overlay.FillOpacity
	}
	if overlay.ShowLegend != nil {
		out.ShowLegend = overlay.ShowLegend
	}
	if overlay.LegendPosition != "" {
		out.LegendPosition = overlay.LegendPosition
	}
	if overlay.ShowGrid != nil {
		out.ShowGrid = overlay.ShowGrid
	}
	if overlay.ShowLabels != nil {
		out.ShowLabels = overlay.ShowLabels
	}
	if overlay.Animated != nil {
		out.Animated = overlay.Animated
	}
	if overlay.AnimationDuration != nil {
		out.AnimationDuration = overlay.AnimationDuration
	}
	if overlay.Responsive != nil {
		out.Responsive = overlay.Responsive
	}
	if overlay.ShowPlaceholder != nil {
		out.ShowPlaceholder = overlay.ShowPlaceholder
	}
	if overlay.Title != "" {
		out.Title = overlay.Title
	}
	if overlay.XLabel != "" {
		out.XLabel = overlay.XLabel
	}
	if overlay.YLabel != "" {
		out.YLabel = overlay.YLabel
	}
	if overlay.Width != 0 {
		out.Width = overlay.Width
	}
	if overlay.Height != 0 {
		out.Height = overlay.Height
	}
	return out
}

// GetType returns the chart kind, defaulting to bar.
func (o *Options) GetType() Kind {
	if o.Type == "" {
		return KindBar
	}
	return o.Type
}

// GetWidth returns the surface width in pixels.
func (o *Options) GetWidth() int {
	if o.Width <= 0 {
		return DefaultWidth
	}
	return o.Width
}

// GetHeight returns the surface height in pixels.
func (o *Options) GetHeight() int {
	if o.Height <= 0 {
		return DefaultHeight
	}
	return o.Height
}

// GetColors returns the series palette.
func (o *Options) GetColors() []string {
	if len(o.Colors) == 0 {
		return DefaultPalette
	}
	return o.Colors
}

// GetGradientColors returns the two-stop gradient palette. A single
// configured color is paired with the first series color so gradients always
// have two stops.
func (o *Options) GetGradientColors() (string, string) {
	gc := o.GradientColors
	switch len(gc) {
	case 0:
		colors := o.GetColors()
		if len(colors) >= 2 {
			return colors[0], colors[1]
		}
		return colors[0], colors[0]
	case 1:
		return gc[0], o.GetColors()[0]
	default:
		return gc[0], gc[1]
	}
}

// GetLegendPosition returns top, bottom, left or right; anything else falls
// back to bottom.
func (o *Options) GetLegendPosition() string {
	switch o.LegendPosition {
	case "top", "bottom", "left", "right":
		return o.LegendPosition
	}
	return DefaultLegendPosition
}

func (o *Options) GetGradient() bool {
	return o.Gradient != nil && *o.Gradient
}

func (o *Options) GetLineFill() bool {
	return o.LineFill != nil && *o.LineFill
}

// GetAreaFill reports whether the region under a line is filled. Area charts
// fill by default; line charts only when lineFill or areaFill is set.
func (o *Options) GetAreaFill() bool {
	if o.AreaFill != nil {
		return *o.AreaFill
	}
	return o.GetType() == KindArea || o.GetLineFill()
}

func (o *Options) GetFillOpacity() float64 {
	if o.FillOpacity == nil {
		return DefaultFillOpacity
	}
	return *o.FillOpacity
}

func (o *Options) GetShowLegend() bool {
	return o.ShowLegend != nil && *o.ShowLegend
}

// GetShowGrid defaults to true.
func (o *Options) GetShowGrid() bool {
	if o.ShowGrid == nil {
		return true
	}
	return *o.ShowGrid
}

// GetShowLabels defaults to true.
func (o *Options) GetShowLabels() bool {
	if o.ShowLabels == nil {
		return true
	}
	return *o.ShowLabels
}

func (o *Options) GetAnimated() bool {
	return o.Animated != nil && *o.Animated
}

func (o *Options) GetAnimationDuration() int {
	if o.AnimationDuration == nil || *o.AnimationDuration <= 0 {
		return DefaultAnimationDuration
	}
	return *o.AnimationDuration
}

// GetResponsive defaults to true: instances follow surface resizes unless
// explicitly pinned.
func (o *Options) GetResponsive() bool {
	if o.Responsive == nil {
		return true
	}
	return *o.Responsive
}

func (o *Options) GetShowPlaceholder() bool {
	return o.ShowPlaceholder != nil && *o.ShowPlaceholder
}

// Bool returns a pointer to b, for building Options literals.
func Bool(b bool) *bool { return &b }

// Float returns a pointer to f, for building Options literals.
func Float(f float64) *float64 { return &f }

// Int returns a pointer to i, for building Options literals.
func Int(i int) *int { return &i }
