package pdf

import "cvpdf/internal/canvas"

// ascent is the share of the font size drawn above the baseline. A line's
// baseline sits this far below the top of its band.
const ascent = 0.8

// TextStyle is a font, a color and the vertical band one line occupies.
type TextStyle struct {
	Font    canvas.Font
	Color   canvas.Color
	Leading float64
}

func (s TextStyle) baseline(top float64) float64 {
	return top + s.Font.Size*ascent
}

// Style holds every font, color and spacing constant of the document.
type Style struct {
	Name    TextStyle
	Tagline TextStyle
	Message TextStyle

	SectionTitle TextStyle
	TitleLead    float64 // space above a section title
	RuleGap      float64 // space between the rule band and the section content
	RuleColor    canvas.Color
	RuleWidth    float64

	Paragraph    TextStyle
	ParagraphGap float64

	CardTitle     TextStyle
	CardSubtitle  TextStyle
	CardBody      TextStyle
	CardPadTop    float64
	CardPadBottom float64
	CardPadX      float64
	CardRadius    float64
	CardGap       float64
	CardFill      canvas.Color
	CardStroke    canvas.Color

	HeaderGap  float64
	PhotoSize  float64
	PhotoTop   float64
	PhotoInset float64 // distance between the photo and the right margin
}

// DefaultStyle is the stock résumé look: Helvetica, slate greys, grey cards.
func DefaultStyle() Style {
	ink := canvas.Hex("#111827")
	slate := canvas.Hex("#1f2937")

	return Style{
		Name:    TextStyle{Font: canvas.Font{Family: "Helvetica", Style: "B", Size: 18}, Color: ink, Leading: 22},
		Tagline: TextStyle{Font: canvas.Font{Family: "Helvetica", Size: 11}, Color: canvas.Hex("#4b5563"), Leading: 16},
		Message: TextStyle{Font: canvas.Font{Family: "Helvetica", Style: "B", Size: 14}, Color: canvas.Black, Leading: 20},

		SectionTitle: TextStyle{Font: canvas.Font{Family: "Helvetica", Style: "B", Size: 12}, Color: slate, Leading: 0.7 * cm},
		TitleLead:    0.15 * cm,
		RuleGap:      0.45 * cm,
		RuleColor:    slate,
		RuleWidth:    1,

		Paragraph:    TextStyle{Font: canvas.Font{Family: "Helvetica", Size: 10}, Color: canvas.Black, Leading: 16},
		ParagraphGap: 4,

		CardTitle:     TextStyle{Font: canvas.Font{Family: "Helvetica", Style: "B", Size: 11}, Color: ink, Leading: 16},
		CardSubtitle:  TextStyle{Font: canvas.Font{Family: "Helvetica", Size: 9}, Color: canvas.Hex("#374151"), Leading: 13},
		CardBody:      TextStyle{Font: canvas.Font{Family: "Helvetica", Size: 9}, Color: canvas.Black, Leading: 12},
		CardPadTop:    10,
		CardPadBottom: 14,
		CardPadX:      12,
		CardRadius:    10,
		CardGap:       14,
		CardFill:      canvas.Hex("#F3F4F6"),
		CardStroke:    canvas.Hex("#D1D5DB"),

		HeaderGap:  9,
		PhotoSize:  3.6 * cm,
		PhotoTop:   1.4 * cm,
		PhotoInset: 0.6 * cm,
	}
}
