// Package store loads résumé data for the active profile, either from a JSON
// data file or from the PostgreSQL tables of the administration site.
package store

import (
	"context"
	"fmt"
	"strings"

	"cvpdf/internal/cv"
)

// Source loads the data of the active profile. A source with no active
// profile returns Data with a nil Profile and no error.
type Source interface {
	Load(ctx context.Context) (*cv.Data, error)
}

// LoadError represents a failure to read or decode the data source
type LoadError struct {
	Source  string
	Message string
	Cause   error
}

func (e *LoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load %s: %s", e.Source, e.Message)
}

func (e *LoadError) Unwrap() error {
	return e.Cause
}

// visible drops the records hidden from the public site.
func visible[T any](records []T, hidden func(T) bool) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if !hidden(r) {
			out = append(out, r)
		}
	}
	return out
}

func sold(status string) bool {
	return strings.EqualFold(strings.TrimSpace(status), cv.StatusSold)
}

var (
	_ Source = (*File)(nil)
	_ Source = (*Postgres)(nil)
)
