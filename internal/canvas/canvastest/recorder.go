// Package canvastest provides a recording Canvas for layout tests.
package canvastest

import (
	"io"
	"unicode/utf8"

	"cvpdf/internal/canvas"
)

// Op kinds recorded by Recorder.
const (
	OpPage  = "page"
	OpText  = "text"
	OpRect  = "rect"
	OpLine  = "line"
	OpImage = "image"
)

// Op is one recorded drawing call.
type Op struct {
	Kind  string
	Page  int
	X, Y  float64
	W, H  float64
	Text  string
	Font  canvas.Font
	Color canvas.Color
}

// Recorder records drawing calls. Every rune measures Size*CharWidth points,
// which makes wrap results predictable.
type Recorder struct {
	Width, Height float64
	CharWidth     float64

	// ImageErr, when set, is returned by Image.
	ImageErr error

	Ops   []Op
	Pages int

	font      canvas.Font
	textColor canvas.Color
}

// New returns a Recorder with a US Letter page and half-em glyphs.
func New() *Recorder {
	return &Recorder{Width: 612, Height: 792, CharWidth: 0.5}
}

func (r *Recorder) StringWidth(s string, f canvas.Font) float64 {
	return float64(utf8.RuneCountInString(s)) * f.Size * r.CharWidth
}

func (r *Recorder) PageSize() (w, h float64) { return r.Width, r.Height }

func (r *Recorder) AddPage() {
	r.Pages++
	r.Ops = append(r.Ops, Op{Kind: OpPage, Page: r.Pages})
}

func (r *Recorder) SetFont(f canvas.Font) { r.font = f }

func (r *Recorder) SetFillColor(canvas.Color) {}

func (r *Recorder) SetStrokeColor(canvas.Color) {}

func (r *Recorder) SetTextColor(c canvas.Color) { r.textColor = c }

func (r *Recorder) DrawString(x, y float64, s string) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Page: r.Pages, X: x, Y: y, Text: s, Font: r.font, Color: r.textColor})
}

func (r *Recorder) RoundRect(x, y, w, h, _ float64, _, _ bool) {
	r.Ops = append(r.Ops, Op{Kind: OpRect, Page: r.Pages, X: x, Y: y, W: w, H: h})
}

func (r *Recorder) Line(x1, y1, x2, _, _ float64) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, Page: r.Pages, X: x1, Y: y1, W: x2 - x1})
}

func (r *Recorder) Image(name, _ string, _ io.Reader, x, y, w, h float64) error {
	if r.ImageErr != nil {
		return r.ImageErr
	}
	r.Ops = append(r.Ops, Op{Kind: OpImage, Page: r.Pages, X: x, Y: y, W: w, H: h, Text: name})
	return nil
}

// Filter returns the recorded ops of the given kind.
func (r *Recorder) Filter(kind string) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Texts returns the strings drawn, in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Filter(OpText) {
		out = append(out, op.Text)
	}
	return out
}
