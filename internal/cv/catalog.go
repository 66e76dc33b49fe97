// Package cv composes a résumé PDF from profile data: header, then the
// selected sections in a fixed order, each as a titled list of cards.
package cv

import "strings"

// SectionKey identifies a section independently of its display title.
type SectionKey string

const (
	Personal         SectionKey = "datos"
	Experiences      SectionKey = "experiencia"
	Courses          SectionKey = "cursos"
	Recognitions     SectionKey = "reconocimientos"
	AcademicProducts SectionKey = "prod_academicos"
	LaborProducts    SectionKey = "prod_laborales"
	GarageSale       SectionKey = "garage"
)

// Section is a catalog entry: its key, display title and the message shown
// when it has no records.
type Section struct {
	Key   SectionKey
	Title string
	Empty string
}

// Catalog lists every section in render order.
var Catalog = []Section{
	{Personal, "Datos personales", ""},
	{Experiences, "Experiencia laboral", "No hay experiencia registrada."},
	{Courses, "Cursos realizados", "No hay cursos registrados."},
	{Recognitions, "Reconocimientos", "No hay reconocimientos registrados."},
	{AcademicProducts, "Productos académicos", "No hay productos académicos registrados."},
	{LaborProducts, "Productos laborales", "No hay productos laborales registrados."},
	{GarageSale, "Venta de garage", "No hay productos disponibles en garage."},
}

// Selection is the set of sections to render.
type Selection map[SectionKey]bool

// ParseSections builds a Selection from raw keys. Keys are matched without
// regard to case or surrounding space; unknown keys are ignored.
func ParseSections(keys []string) Selection {
	known := make(map[SectionKey]bool, len(Catalog))
	for _, s := range Catalog {
		known[s.Key] = true
	}

	sel := Selection{}
	for _, k := range keys {
		key := SectionKey(strings.ToLower(strings.TrimSpace(k)))
		if known[key] {
			sel[key] = true
		}
	}
	return sel
}

// AllSections selects the whole catalog.
func AllSections() Selection {
	sel := make(Selection, len(Catalog))
	for _, s := range Catalog {
		sel[s.Key] = true
	}
	return sel
}

// Has reports whether key is selected.
func (s Selection) Has(key SectionKey) bool {
	return s[key]
}

// Sections returns the selected catalog entries in render order.
func (s Selection) Sections() []Section {
	var out []Section
	for _, sec := range Catalog {
		if s.Has(sec.Key) {
			out = append(out, sec)
		}
	}
	return out
}
