package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cvpdf/internal/cv"
)

type fakeSource struct {
	data *cv.Data
	err  error
}

func (f *fakeSource) Load(context.Context) (*cv.Data, error) {
	return f.data, f.err
}

func testData() *cv.Data {
	return &cv.Data{
		Profile: &cv.Profile{GivenNames: "María José", Surnames: "Andrade Loor", Tagline: "Ingeniera de software"},
		Courses: []cv.Course{{Name: "Go avanzado", Hours: 40}},
	}
}

func TestHandlePDF(t *testing.T) {
	tests := []struct {
		name   string
		source *fakeSource
		query  string
		status int
		isPDF  bool
	}{
		{"selected sections", &fakeSource{data: testData()}, "?sec=cursos&sec=experiencia", http.StatusOK, true},
		{"header only", &fakeSource{data: testData()}, "", http.StatusOK, true},
		{"no active profile", &fakeSource{data: &cv.Data{}}, "?sec=cursos", http.StatusOK, true},
		{"source failure", &fakeSource{err: errors.New("connection refused")}, "?sec=cursos", http.StatusInternalServerError, false},
		{"missing title", &fakeSource{data: &cv.Data{
			Profile: &cv.Profile{GivenNames: "A"},
			Courses: []cv.Course{{Hours: 3}},
		}}, "?sec=cursos", http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := New(0, tt.source, cv.NewComposer())
			req := httptest.NewRequest(http.MethodGet, "/pdf/"+tt.query, nil)
			rec := httptest.NewRecorder()

			srv.Handler().ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			if !tt.isPDF {
				var body map[string]string
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.NotEmpty(t, body["error"])
				return
			}
			assert.Equal(t, "application/pdf", rec.Header().Get("Content-Type"))
			assert.Equal(t, `inline; filename="hoja_vida.pdf"`, rec.Header().Get("Content-Disposition"))
			assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF")))

			_, err := uuid.Parse(rec.Header().Get("X-Document-ID"))
			assert.NoError(t, err)
		})
	}
}

func TestHandlePDFMethod(t *testing.T) {
	srv := New(0, &fakeSource{data: testData()}, cv.NewComposer())
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/pdf/", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleHealth(t *testing.T) {
	srv := New(0, &fakeSource{}, cv.NewComposer())
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
