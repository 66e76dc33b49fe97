package cv

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cvpdf/internal/pdf"
)

func TestRecordCards(t *testing.T) {
	start := NewDate(mustDate("2020-01-15"))
	end := NewDate(mustDate("2022-06-30"))

	tests := []struct {
		name     string
		record   carder
		title    string
		subtitle string
		body     string
	}{
		{
			name:     "experience with dates",
			record:   Experience{Role: "Analista", Company: "Acme", Location: "Quito", Start: start, End: end, Description: "Reportes."},
			title:    "Analista - Acme",
			subtitle: "Quito | 2020-01-15 - 2022-06-30",
			body:     "Reportes.",
		},
		{
			name:     "ongoing experience",
			record:   Experience{Role: "Analista", Company: "Acme", Start: start},
			title:    "Analista - Acme",
			subtitle: "2020-01-15 - Actualidad",
		},
		{
			name:   "experience without company",
			record: Experience{Role: "Consultora independiente"},
			title:  "Consultora independiente",
		},
		{
			name:     "course with hours",
			record:   Course{Name: "Redes", Hours: 120, Start: start, End: end},
			title:    "Redes (120 horas)",
			subtitle: "2020-01-15 - 2022-06-30",
		},
		{
			name:   "course without hours",
			record: Course{Name: "Redes", Description: "Ciclo básico."},
			title:  "Redes",
			body:   "Ciclo básico.",
		},
		{
			name:     "recognition",
			record:   Recognition{Kind: "Mención", Description: "Mejor tesis", Sponsor: "ULEAM"},
			title:    "Mención: Mejor tesis",
			subtitle: "ULEAM",
		},
		{
			name:     "academic product",
			record:   AcademicProduct{Name: "Artículo", Classifier: "Revista indexada", Description: "Sobre grafos."},
			title:    "Artículo",
			subtitle: "Revista indexada",
			body:     "Sobre grafos.",
		},
		{
			name:     "labor product",
			record:   LaborProduct{Name: "Sistema de turnos", Date: end},
			title:    "Sistema de turnos",
			subtitle: "2022-06-30",
		},
		{
			name:     "garage item",
			record:   GarageItem{Name: "Bicicleta", Value: 85.5, Status: StatusAvailable, Description: "Aro 26."},
			title:    "Bicicleta - $85.50",
			subtitle: "Estado: Disponible",
			body:     "Aro 26.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := tt.record.Card()
			require.NoError(t, err)
			assert.Equal(t, tt.title, c.Title())
			assert.Equal(t, tt.subtitle, c.Subtitle())
			assert.Equal(t, tt.body, c.Body())
		})
	}
}

func TestRecordCardsWithoutTitle(t *testing.T) {
	records := []carder{
		Experience{Location: "Quito"},
		Course{Hours: 20},
		Recognition{Sponsor: "ULEAM"},
		AcademicProduct{Classifier: "Tesis"},
		LaborProduct{Description: "Sin nombre"},
		GarageItem{Value: 10},
	}
	for _, r := range records {
		_, err := r.Card()
		assert.True(t, errors.Is(err, pdf.ErrMissingTitle), "%T", r)
	}
}

func TestDataCards(t *testing.T) {
	d := sampleData()

	cards, err := d.Cards(Experiences)
	require.NoError(t, err)
	require.Len(t, cards, 2)
	assert.Equal(t, "Desarrolladora - Acme", cards[0].Title())
	assert.Equal(t, "Pasante - Banco Central", cards[1].Title())

	cards, err = d.Cards(Recognitions)
	require.NoError(t, err)
	assert.Empty(t, cards)

	cards, err = d.Cards(Personal)
	require.NoError(t, err)
	assert.Nil(t, cards)
}
