package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cvpdf/internal/cv"
)

func TestFileLoad(t *testing.T) {
	data, err := NewFile(filepath.Join("testdata", "hoja_vida.json")).Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, data.Profile)

	p := data.Profile
	assert.Equal(t, 2, p.ID)
	assert.Equal(t, "María José Andrade Loor", p.FullName())
	assert.Equal(t, "1994-08-21", p.BirthDate.String())
	assert.Equal(t, "fotos/perfil.jpg", p.Photo)

	require.Len(t, data.Experience, 1)
	assert.Equal(t, "Acme", data.Experience[0].Company)
	assert.True(t, data.Experience[0].End.IsZero())

	require.Len(t, data.Courses, 1)
	assert.Equal(t, 40, data.Courses[0].Hours)

	assert.Empty(t, data.Recognitions)
	assert.Len(t, data.AcademicProducts, 1)
	assert.Len(t, data.LaborProducts, 1)

	require.Len(t, data.Garage, 1)
	assert.Equal(t, "Bicicleta", data.Garage[0].Name)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		noProfile  bool
		wantErr    bool
		errMessage string
	}{
		{
			name:      "no profiles",
			input:     `{"profiles": []}`,
			noProfile: true,
		},
		{
			name:      "no active profile",
			input:     `{"profiles": [{"id": 1, "active": false, "given_names": "A", "surnames": "B"}]}`,
			noProfile: true,
		},
		{
			name:  "first active profile wins",
			input: `{"profiles": [{"id": 7, "active": true, "given_names": "A", "surnames": "B"}, {"id": 3, "active": true, "given_names": "C", "surnames": "D"}]}`,
		},
		{
			name:       "missing profiles key",
			input:      `{}`,
			wantErr:    true,
			errMessage: "schema",
		},
		{
			name:       "bad date",
			input:      `{"profiles": [{"id": 1, "active": true, "given_names": "A", "surnames": "B", "birth_date": "21/08/1994"}]}`,
			wantErr:    true,
			errMessage: "schema",
		},
		{
			name:       "negative hours",
			input:      `{"profiles": [{"id": 1, "active": true, "given_names": "A", "surnames": "B", "courses": [{"name": "X", "hours": -4}]}]}`,
			wantErr:    true,
			errMessage: "invalid record",
		},
		{
			name:       "unknown garage status",
			input:      `{"profiles": [{"id": 1, "active": true, "given_names": "A", "surnames": "B", "garage": [{"name": "X", "value": 1, "status": "Regalado"}]}]}`,
			wantErr:    true,
			errMessage: "invalid record",
		},
		{
			name:       "not json",
			input:      `profiles:`,
			wantErr:    true,
			errMessage: "schema",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Decode("test.json", []byte(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				var loadErr *LoadError
				assert.True(t, errors.As(err, &loadErr))
				assert.Contains(t, err.Error(), tt.errMessage)
				return
			}
			require.NoError(t, err)
			if tt.noProfile {
				assert.Nil(t, data.Profile)
				return
			}
			require.NotNil(t, data.Profile)
			assert.Equal(t, 7, data.Profile.ID)
		})
	}
}

func TestFileLoadMissing(t *testing.T) {
	_, err := NewFile(filepath.Join(t.TempDir(), "nada.json")).Load(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestFileLoadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewFile(filepath.Join("testdata", "hoja_vida.json")).Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestVisible(t *testing.T) {
	items := []cv.GarageItem{
		{Name: "a", Status: cv.StatusAvailable},
		{Name: "b", Status: " vendido "},
		{Name: "c", Hidden: true},
		{Name: "d"},
	}
	got := visible(items, func(g cv.GarageItem) bool { return g.Hidden || sold(g.Status) })
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Name)
	assert.Equal(t, "d", got[1].Name)
}
