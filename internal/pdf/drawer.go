package pdf

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"cvpdf/internal/canvas"
)

// Drawer places section titles, paragraphs and cards on a canvas, moving the
// cursor by exactly the height each element occupies. One Drawer serves one
// document.
type Drawer struct {
	cv    canvas.Canvas
	cur   *Cursor
	geo   Geometry
	style Style
	upper cases.Caser
}

// NewDrawer returns a Drawer writing to cv and advancing cur.
func NewDrawer(cv canvas.Canvas, cur *Cursor, style Style) *Drawer {
	return &Drawer{
		cv:    cv,
		cur:   cur,
		geo:   cur.Geometry(),
		style: style,
		upper: cases.Upper(language.Spanish),
	}
}

// Cursor returns the page cursor the drawer advances.
func (d *Drawer) Cursor() *Cursor { return d.cur }

// SectionTitle draws an uppercase title with a rule under it when rule is
// set. Title and rule are reserved as one band so they never split.
func (d *Drawer) SectionTitle(title string, rule bool) {
	st := d.style
	top := d.cur.Take(st.TitleLead + st.SectionTitle.Leading + st.RuleGap)

	bandTop := top + st.TitleLead
	d.text(d.geo.Left, st.SectionTitle.baseline(bandTop), d.upper.String(title), st.SectionTitle)

	if rule {
		y := bandTop + st.SectionTitle.Leading
		d.cv.SetStrokeColor(st.RuleColor)
		d.cv.Line(d.geo.Left, y, d.geo.Width-d.geo.Right, y, st.RuleWidth)
	}
}

// Text wraps s to the column width and draws it line by line, breaking the
// page between lines when needed. It returns the number of lines drawn.
func (d *Drawer) Text(s string, ts TextStyle) int {
	lines := Wrap(d.cv, s, ts.Font, d.geo.ContentWidth())
	for _, line := range lines {
		top := d.cur.Take(ts.Leading)
		d.text(d.geo.Left, ts.baseline(top), line, ts)
	}
	return len(lines)
}

// Paragraph draws body text followed by a small gap. Empty text draws nothing.
func (d *Drawer) Paragraph(s string) {
	if d.Text(s, d.style.Paragraph) > 0 {
		d.cur.Gap(d.style.ParagraphGap)
	}
}

// Card draws c across the column and returns its height. The card moves to a
// new page as a whole when it does not fit on the current one.
func (d *Drawer) Card(c Card) float64 {
	st := d.style
	width := d.geo.ContentWidth()
	l := layoutCard(d.cv, st, width, c)

	top := d.cur.Take(l.height)
	x := d.geo.Left

	d.cv.SetFillColor(st.CardFill)
	d.cv.SetStrokeColor(st.CardStroke)
	d.cv.RoundRect(x, top, width, l.height, st.CardRadius, true, true)

	for _, line := range l.lines {
		d.text(x+st.CardPadX, line.style.baseline(top+line.offset), line.text, line.style)
	}

	d.cur.Gap(st.CardGap)
	return l.height
}

// Placeholder draws a title-only card carrying message.
func (d *Drawer) Placeholder(message string) float64 {
	return d.Card(Placeholder(message))
}

func (d *Drawer) text(x, baseline float64, s string, ts TextStyle) {
	d.cv.SetFont(ts.Font)
	d.cv.SetTextColor(ts.Color)
	d.cv.DrawString(x, baseline, s)
}
