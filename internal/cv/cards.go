package cv

import (
	"fmt"
	"strings"

	"cvpdf/internal/pdf"
)

// ongoing ends the date range of a job that has not finished.
const ongoing = "Actualidad"

// Card maps a job to "role - company", location and dates, and duties.
func (e Experience) Card() (pdf.Card, error) {
	subtitle := e.Location
	if dates := dateRange(e.Start, e.End, ongoing); dates != "" {
		subtitle = join(" | ", e.Location, dates)
	}
	return pdf.NewCard(join(" - ", e.Role, e.Company), subtitle, e.Description)
}

// Card maps a course to "name (N horas)", its dates and description.
func (c Course) Card() (pdf.Card, error) {
	title := strings.TrimSpace(c.Name)
	if title != "" && c.Hours > 0 {
		title = fmt.Sprintf("%s (%d horas)", title, c.Hours)
	}
	return pdf.NewCard(title, dateRange(c.Start, c.End, ""), c.Description)
}

// Card maps a recognition to "kind: description" and its sponsor.
func (r Recognition) Card() (pdf.Card, error) {
	return pdf.NewCard(join(": ", r.Kind, r.Description), r.Sponsor, "")
}

func (a AcademicProduct) Card() (pdf.Card, error) {
	return pdf.NewCard(a.Name, a.Classifier, a.Description)
}

func (l LaborProduct) Card() (pdf.Card, error) {
	return pdf.NewCard(l.Name, l.Date.String(), l.Description)
}

// Card maps an item to "name - $value", its status and description.
func (g GarageItem) Card() (pdf.Card, error) {
	title := strings.TrimSpace(g.Name)
	if title != "" {
		title = fmt.Sprintf("%s - $%.2f", title, g.Value)
	}
	subtitle := ""
	if g.Status != "" {
		subtitle = "Estado: " + g.Status
	}
	return pdf.NewCard(title, subtitle, g.Description)
}

type carder interface {
	Card() (pdf.Card, error)
}

func buildCards[T carder](key SectionKey, records []T) ([]pdf.Card, error) {
	cards := make([]pdf.Card, 0, len(records))
	for i, r := range records {
		c, err := r.Card()
		if err != nil {
			return nil, fmt.Errorf("%s record %d: %w", key, i+1, err)
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// Cards builds the cards of a record section in data source order.
func (d *Data) Cards(key SectionKey) ([]pdf.Card, error) {
	switch key {
	case Experiences:
		return buildCards(key, d.Experience)
	case Courses:
		return buildCards(key, d.Courses)
	case Recognitions:
		return buildCards(key, d.Recognitions)
	case AcademicProducts:
		return buildCards(key, d.AcademicProducts)
	case LaborProducts:
		return buildCards(key, d.LaborProducts)
	case GarageSale:
		return buildCards(key, d.Garage)
	}
	return nil, nil
}

// join concatenates the non-blank parts with sep.
func join(sep string, parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}

func dateRange(start, end Date, open string) string {
	switch {
	case start.IsZero() && end.IsZero():
		return ""
	case start.IsZero():
		return end.String()
	case end.IsZero():
		return join(" - ", start.String(), open)
	}
	return start.String() + " - " + end.String()
}
