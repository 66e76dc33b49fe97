// Package canvas defines the drawing surface the layout engine targets.
//
// Coordinates are in points with the origin at the top-left corner of the
// page; y grows downwards. Text is positioned by its baseline.
package canvas

import (
	"io"
	"strconv"
	"strings"
)

// Font selects a font family, style ("", "B", "I", "BI") and size in points.
type Font struct {
	Family string
	Style  string
	Size   float64
}

// Color is an RGB color with 0-255 components.
type Color struct {
	R, G, B int
}

// Black is the default text color.
var Black = Color{}

// Hex parses a "#rrggbb" color. Malformed input yields black.
func Hex(s string) Color {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return Black
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Black
	}
	return Color{R: int(v >> 16 & 0xff), G: int(v >> 8 & 0xff), B: int(v & 0xff)}
}

// Measurer reports the rendered width of a string.
type Measurer interface {
	StringWidth(s string, f Font) float64
}

// Canvas is the set of drawing primitives the composer needs.
type Canvas interface {
	Measurer

	PageSize() (w, h float64)
	AddPage()

	SetFont(f Font)
	SetFillColor(c Color)
	SetStrokeColor(c Color)
	SetTextColor(c Color)

	DrawString(x, y float64, s string)
	RoundRect(x, y, w, h, r float64, fill, stroke bool)
	Line(x1, y1, x2, y2, width float64)

	// Image places an image read from r. imageType is "JPG", "PNG" or "GIF".
	// A failed placement returns an error and leaves the canvas usable.
	Image(name, imageType string, r io.Reader, x, y, w, h float64) error
}
