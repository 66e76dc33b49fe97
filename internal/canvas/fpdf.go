package canvas

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/unicode/norm"
)

// Info carries the document metadata written into the PDF.
type Info struct {
	Title   string
	Author  string
	Subject string
	Creator string
	Created time.Time
}

// PDF is a Canvas backed by fpdf on a US Letter portrait page.
//
// Widths are measured on a second fpdf instance that never gets a page, so
// measuring does not touch the font state of the document being drawn.
type PDF struct {
	doc     *fpdf.Fpdf
	metrics *fpdf.Fpdf
}

// NewPDF creates an empty document. No page is open until AddPage.
func NewPDF() *PDF {
	doc := newLetter()
	doc.SetAutoPageBreak(false, 0)
	doc.SetMargins(0, 0, 0)
	return &PDF{doc: doc, metrics: newLetter()}
}

func newLetter() *fpdf.Fpdf {
	return fpdf.New("P", "pt", "Letter", "")
}

// SetInfo writes document metadata.
func (p *PDF) SetInfo(info Info) {
	p.doc.SetTitle(info.Title, true)
	p.doc.SetAuthor(info.Author, true)
	p.doc.SetSubject(info.Subject, true)
	p.doc.SetCreator(info.Creator, true)
	if !info.Created.IsZero() {
		p.doc.SetCreationDate(info.Created)
		p.doc.SetModificationDate(info.Created)
	}
}

func (p *PDF) StringWidth(s string, f Font) float64 {
	p.metrics.SetFont(f.Family, f.Style, f.Size)
	return p.metrics.GetStringWidth(encode(s))
}

func (p *PDF) PageSize() (w, h float64) {
	return p.doc.GetPageSize()
}

func (p *PDF) AddPage() {
	p.doc.AddPage()
}

// PageCount returns the number of pages opened so far.
func (p *PDF) PageCount() int {
	return p.doc.PageCount()
}

func (p *PDF) SetFont(f Font) {
	p.doc.SetFont(f.Family, f.Style, f.Size)
}

func (p *PDF) SetFillColor(c Color) {
	p.doc.SetFillColor(c.R, c.G, c.B)
}

func (p *PDF) SetStrokeColor(c Color) {
	p.doc.SetDrawColor(c.R, c.G, c.B)
}

func (p *PDF) SetTextColor(c Color) {
	p.doc.SetTextColor(c.R, c.G, c.B)
}

func (p *PDF) DrawString(x, y float64, s string) {
	p.doc.Text(x, y, encode(s))
}

func (p *PDF) RoundRect(x, y, w, h, r float64, fill, stroke bool) {
	style := ""
	if fill {
		style += "F"
	}
	if stroke {
		style += "D"
	}
	if style == "" {
		return
	}
	p.doc.RoundedRect(x, y, w, h, r, "1234", style)
}

func (p *PDF) Line(x1, y1, x2, y2, width float64) {
	p.doc.SetLineWidth(width)
	p.doc.Line(x1, y1, x2, y2)
}

func (p *PDF) Image(name, imageType string, r io.Reader, x, y, w, h float64) error {
	if err := p.doc.Error(); err != nil {
		return err
	}

	opts := fpdf.ImageOptions{ImageType: imageType}
	info := p.doc.RegisterImageOptionsReader(name, opts, r)
	if err := p.doc.Error(); err != nil || info == nil {
		// fpdf latches registration failures; the document itself is still sound.
		p.doc.ClearError()
		if err == nil {
			err = fmt.Errorf("image %s was not registered", name)
		}
		return fmt.Errorf("failed to register image: %w", err)
	}

	p.doc.ImageOptions(name, x, y, w, h, false, opts, 0, "")
	return nil
}

// Err returns the first drawing error recorded by fpdf, if any.
func (p *PDF) Err() error {
	return p.doc.Error()
}

// Output finishes the document and writes it to w.
func (p *PDF) Output(w io.Writer) error {
	if err := p.doc.Error(); err != nil {
		return err
	}
	return p.doc.Output(w)
}

// encode converts UTF-8 to the cp1252 bytes the PDF core fonts expect.
// Runes outside cp1252 become '?'.
func encode(s string) string {
	s = norm.NFC.String(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if c, ok := charmap.Windows1252.EncodeRune(r); ok {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('?')
	}
	return b.String()
}
