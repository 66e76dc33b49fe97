package canvas

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHex(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected Color
	}{
		{"with hash", "#1f2937", Color{R: 0x1f, G: 0x29, B: 0x37}},
		{"without hash", "F3F4F6", Color{R: 0xf3, G: 0xf4, B: 0xf6}},
		{"short form", "#fff", Black},
		{"not hex", "#zzzzzz", Black},
		{"empty", "", Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Hex(tt.in))
		})
	}
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		expected string
	}{
		{"ascii", "Quito", "Quito"},
		{"spanish accents", "Cédula", "C\xe9dula"},
		{"decomposed accent", "Ce\u0301dula", "C\xe9dula"},
		{"enye", "Año", "A\xf1o"},
		{"outside cp1252", "日本", "??"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, encode(tt.in))
		})
	}
}

func TestPDFStringWidth(t *testing.T) {
	p := NewPDF()
	regular := Font{Family: "Helvetica", Size: 10}
	bold := Font{Family: "Helvetica", Style: "B", Size: 10}

	assert.Zero(t, p.StringWidth("", regular))

	w := p.StringWidth("Experiencia laboral", regular)
	assert.Greater(t, w, 0.0)
	assert.Equal(t, w, p.StringWidth("Experiencia laboral", regular), "measuring must be deterministic")
	assert.Greater(t, p.StringWidth("Experiencia laboral", bold), w)

	double := p.StringWidth("Experiencia laboral", Font{Family: "Helvetica", Size: 20})
	assert.InDelta(t, 2*w, double, 0.001)
}

func TestPDFStringWidthDoesNotChangeDrawFont(t *testing.T) {
	p := NewPDF()
	p.AddPage()
	p.SetFont(Font{Family: "Helvetica", Style: "B", Size: 18})
	p.StringWidth("x", Font{Family: "Courier", Size: 6})

	size, _ := p.doc.GetFontSize()
	assert.Equal(t, 18.0, size)
}

func TestPDFOutput(t *testing.T) {
	p := NewPDF()
	p.SetInfo(Info{Title: "Hoja de vida", Author: "Ana Pérez", Creator: "cvpdf"})
	p.AddPage()
	p.SetFont(Font{Family: "Helvetica", Size: 10})
	p.SetTextColor(Hex("#111827"))
	p.DrawString(56, 80, "Dirección: Av. Amazonas")
	p.SetFillColor(Hex("#F3F4F6"))
	p.SetStrokeColor(Hex("#D1D5DB"))
	p.RoundRect(56, 100, 500, 60, 10, true, true)
	p.Line(56, 200, 556, 200, 1)

	w, h := p.PageSize()
	assert.Equal(t, 612.0, w)
	assert.Equal(t, 792.0, h)
	assert.Equal(t, 1, p.PageCount())

	var buf bytes.Buffer
	require.NoError(t, p.Output(&buf))
	assert.True(t, strings.HasPrefix(buf.String(), "%PDF"), "output does not start with PDF magic bytes")
}

func TestPDFImageFailureKeepsDocumentUsable(t *testing.T) {
	p := NewPDF()
	p.AddPage()

	err := p.Image("broken.png", "PNG", strings.NewReader("not a png"), 10, 10, 50, 50)
	assert.Error(t, err)
	assert.NoError(t, p.Err())

	p.SetFont(Font{Family: "Helvetica", Size: 10})
	p.DrawString(10, 100, "still drawing")

	var buf bytes.Buffer
	require.NoError(t, p.Output(&buf))
	assert.NotZero(t, buf.Len())
}
