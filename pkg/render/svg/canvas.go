package svg

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"strings"

	"github.com/chartwright/chartwright/pkg/chart/colorx"
)

// canvas accumulates the SVG elements of one chart frame. All drawing
// routines append through it so the final document is produced in a single
// pass with no DOM intermediary.
type canvas struct {
	buf    bytes.Buffer
	width  int
	height int
}

func newCanvas(width, height int) *canvas {
	c := &canvas{width: width, height: height}
	fmt.Fprintf(&c.buf,
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		width, height, width, height)
	return c
}

func (c *canvas) close() []byte {
	c.buf.WriteString("</svg>\n")
	return c.buf.Bytes()
}

// point is a 2D coordinate in canvas space.
type point struct {
	x, y float64
}

// safeColor normalizes a color before it lands in an SVG attribute. Gradient
// references and keywords pass through; everything else is reparsed as hex,
// so malformed input falls back to black instead of leaking markup into the
// document.
func safeColor(s string) string {
	switch {
	case s == "" || s == "none":
		return s
	case strings.HasPrefix(s, "url(#") && strings.HasSuffix(s, ")") && !strings.ContainsAny(s, `"'<>&`):
		return s
	}
	return colorx.Parse(s).Hex()
}

func (c *canvas) rect(x, y, w, h, radius float64, fill string) {
	// The radius cannot exceed half the shorter side or the shape degenerates.
	if r := math.Min(w, h) / 2; radius > r {
		radius = r
	}
	if radius > 0 {
		fmt.Fprintf(&c.buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.1f" fill="%s"/>`+"\n",
			x, y, w, h, radius, safeColor(fill))
		return
	}
	fmt.Fprintf(&c.buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
		x, y, w, h, safeColor(fill))
}

func (c *canvas) line(x1, y1, x2, y2 float64, stroke string, width float64) {
	fmt.Fprintf(&c.buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f"/>`+"\n",
		x1, y1, x2, y2, safeColor(stroke), width)
}

func (c *canvas) dashedLine(x1, y1, x2, y2 float64, stroke string, width float64) {
	fmt.Fprintf(&c.buf, `  <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f" stroke-dasharray="4 3"/>`+"\n",
		x1, y1, x2, y2, safeColor(stroke), width)
}

func (c *canvas) circle(cx, cy, r float64, fill string) {
	fmt.Fprintf(&c.buf, `  <circle cx="%.1f" cy="%.1f" r="%.1f" fill="%s"/>`+"\n", cx, cy, r, safeColor(fill))
}

func (c *canvas) polyline(pts []point, stroke string, width float64) {
	c.buf.WriteString(`  <polyline points="`)
	writePoints(&c.buf, pts)
	fmt.Fprintf(&c.buf, `" fill="none" stroke="%s" stroke-width="%.1f" stroke-linejoin="round" stroke-linecap="round"/>`+"\n",
		safeColor(stroke), width)
}

func (c *canvas) polygon(pts []point, fill, stroke string, width, fillOpacity float64) {
	c.buf.WriteString(`  <polygon points="`)
	writePoints(&c.buf, pts)
	fmt.Fprintf(&c.buf, `" fill="%s" fill-opacity="%.2f" stroke="%s" stroke-width="%.1f"/>`+"\n",
		safeColor(fill), fillOpacity, safeColor(stroke), width)
}

func writePoints(buf *bytes.Buffer, pts []point) {
	for i, p := range pts {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(buf, "%.1f,%.1f", p.x, p.y)
	}
}

// path writes a raw path element. Pass an empty fill or stroke to omit it.
func (c *canvas) path(d, fill, stroke string, strokeWidth float64) {
	fmt.Fprintf(&c.buf, `  <path d="%s"`, d)
	if fill != "" {
		fmt.Fprintf(&c.buf, ` fill="%s"`, safeColor(fill))
	} else {
		c.buf.WriteString(` fill="none"`)
	}
	if stroke != "" {
		fmt.Fprintf(&c.buf, ` stroke="%s" stroke-width="%.1f" stroke-linecap="round"`, safeColor(stroke), strokeWidth)
	}
	c.buf.WriteString("/>\n")
}

func (c *canvas) fillPath(d, fill string, opacity float64) {
	fmt.Fprintf(&c.buf, `  <path d="%s" fill="%s" fill-opacity="%.2f"/>`+"\n", d, safeColor(fill), opacity)
}

// text anchors are the SVG values: start, middle, end.
func (c *canvas) text(x, y float64, s string, size float64, fill, anchor string) {
	fmt.Fprintf(&c.buf, `  <text x="%.1f" y="%.1f" font-size="%.1f" fill="%s" text-anchor="%s" font-family="sans-serif">%s</text>`+"\n",
		x, y, size, safeColor(fill), anchor, escapeXML(s))
}

func (c *canvas) boldText(x, y float64, s string, size float64, fill, anchor string) {
	fmt.Fprintf(&c.buf, `  <text x="%.1f" y="%.1f" font-size="%.1f" fill="%s" text-anchor="%s" font-family="sans-serif" font-weight="bold">%s</text>`+"\n",
		x, y, size, safeColor(fill), anchor, escapeXML(s))
}

// rotatedText writes text rotated 90 degrees counterclockwise around its
// anchor, for vertical axis captions.
func (c *canvas) rotatedText(x, y float64, s string, size float64, fill string) {
	fmt.Fprintf(&c.buf, `  <text x="%.1f" y="%.1f" font-size="%.1f" fill="%s" text-anchor="middle" font-family="sans-serif" transform="rotate(-90 %.1f %.1f)">%s</text>`+"\n",
		x, y, size, safeColor(fill), x, y, escapeXML(s))
}

// linearGradient registers a two-stop gradient under id. Horizontal gradients
// run left to right, vertical ones top to bottom.
func (c *canvas) linearGradient(id, from, to string, horizontal bool) {
	x2, y2 := "0", "1"
	if horizontal {
		x2, y2 = "1", "0"
	}
	fmt.Fprintf(&c.buf, `  <defs><linearGradient id="%s" x1="0" y1="0" x2="%s" y2="%s">`, id, x2, y2)
	fmt.Fprintf(&c.buf, `<stop offset="0%%" stop-color="%s"/><stop offset="100%%" stop-color="%s"/>`, safeColor(from), safeColor(to))
	c.buf.WriteString("</linearGradient></defs>\n")
}

func (c *canvas) style(css string) {
	fmt.Fprintf(&c.buf, "  <style>%s\n  </style>\n", css)
}

func (c *canvas) openGroup(class string) {
	if class == "" {
		c.buf.WriteString("  <g>\n")
		return
	}
	fmt.Fprintf(&c.buf, `  <g class="%s">`+"\n", class)
}

func (c *canvas) closeGroup() {
	c.buf.WriteString("  </g>\n")
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
