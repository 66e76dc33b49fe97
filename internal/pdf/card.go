package pdf

import (
	"errors"
	"strings"

	"cvpdf/internal/canvas"
)

// ErrMissingTitle is returned when a card is built without a title.
var ErrMissingTitle = errors.New("card title is required")

// Card is a bordered block showing one record: a bold title, an optional
// subtitle line and an optional wrapped body.
type Card struct {
	title    string
	subtitle string
	body     string
}

// NewCard builds a card. Subtitle and body are optional; blank values are
// treated as absent.
func NewCard(title, subtitle, body string) (Card, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return Card{}, ErrMissingTitle
	}
	return Card{
		title:    title,
		subtitle: strings.TrimSpace(subtitle),
		body:     strings.TrimSpace(body),
	}, nil
}

// Placeholder is a title-only card standing in for an empty section.
func Placeholder(message string) Card {
	return Card{title: message}
}

func (c Card) Title() string    { return c.title }
func (c Card) Subtitle() string { return c.subtitle }
func (c Card) Body() string     { return c.body }

// cardLine is one text line inside a card, offset from the card's top edge.
type cardLine struct {
	text   string
	style  TextStyle
	offset float64
}

// cardLayout is the measured shape of a card. Drawing walks lines and
// consumes exactly height, so sizing and drawing cannot disagree.
type cardLayout struct {
	lines  []cardLine
	height float64
}

// layoutCard wraps the body to the card's inner width and stacks the title,
// subtitle and body bands between the vertical paddings.
func layoutCard(m canvas.Measurer, st Style, width float64, c Card) cardLayout {
	var l cardLayout
	offset := st.CardPadTop

	add := func(text string, ts TextStyle) {
		l.lines = append(l.lines, cardLine{text: text, style: ts, offset: offset})
		offset += ts.Leading
	}

	add(c.title, st.CardTitle)
	if c.subtitle != "" {
		add(c.subtitle, st.CardSubtitle)
	}
	for _, line := range Wrap(m, c.body, st.CardBody.Font, innerWidth(st, width)) {
		add(line, st.CardBody)
	}

	l.height = offset + st.CardPadBottom
	return l
}

func innerWidth(st Style, width float64) float64 {
	return width - 2*st.CardPadX
}

// CardHeight is the height the card occupies when drawn in a column of the
// given width, excluding the gap that follows it.
func CardHeight(m canvas.Measurer, st Style, width float64, c Card) float64 {
	return layoutCard(m, st, width, c).height
}
