package store

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/xeipuuv/gojsonschema"

	"cvpdf/internal/cv"
)

//go:embed schema.json
var schemaJSON string

// fileProfile is a profile as stored in the data file, with its records
// nested under it.
type fileProfile struct {
	cv.Profile
	Experience       []cv.Experience      `json:"experience" validate:"dive"`
	Courses          []cv.Course          `json:"courses" validate:"dive"`
	Recognitions     []cv.Recognition     `json:"recognitions" validate:"dive"`
	AcademicProducts []cv.AcademicProduct `json:"academic_products" validate:"dive"`
	LaborProducts    []cv.LaborProduct    `json:"labor_products" validate:"dive"`
	Garage           []cv.GarageItem      `json:"garage" validate:"dive"`
}

type fileData struct {
	Profiles []fileProfile `json:"profiles" validate:"dive"`
}

// File reads résumé data from a JSON document.
type File struct {
	Path string
}

// NewFile returns a source reading path.
func NewFile(path string) *File {
	return &File{Path: path}
}

// Load reads, validates and filters the data file.
func (f *File) Load(ctx context.Context) (*cv.Data, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, &LoadError{Source: f.Path, Message: "failed to read data file", Cause: err}
	}
	return Decode(f.Path, raw)
}

// Decode validates raw against the data file schema and returns the data of
// the active profile. The first active profile in file order wins; records
// marked hidden and sold garage items are dropped.
func Decode(name string, raw []byte) (*cv.Data, error) {
	if err := validateSchema(raw); err != nil {
		return nil, &LoadError{Source: name, Message: "data file does not match the schema", Cause: err}
	}

	var doc fileData
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &LoadError{Source: name, Message: "failed to decode data file", Cause: err}
	}
	if err := validator.New().Struct(doc); err != nil {
		return nil, &LoadError{Source: name, Message: "invalid record", Cause: err}
	}

	for i := range doc.Profiles {
		p := &doc.Profiles[i]
		if p.Active {
			return p.data(), nil
		}
	}
	return &cv.Data{}, nil
}

func (p *fileProfile) data() *cv.Data {
	profile := p.Profile
	return &cv.Data{
		Profile: &profile,
		Experience: visible(p.Experience, func(r cv.Experience) bool {
			return r.Hidden
		}),
		Courses: visible(p.Courses, func(r cv.Course) bool {
			return r.Hidden
		}),
		Recognitions: visible(p.Recognitions, func(r cv.Recognition) bool {
			return r.Hidden
		}),
		AcademicProducts: visible(p.AcademicProducts, func(r cv.AcademicProduct) bool {
			return r.Hidden
		}),
		LaborProducts: visible(p.LaborProducts, func(r cv.LaborProduct) bool {
			return r.Hidden
		}),
		Garage: visible(p.Garage, func(r cv.GarageItem) bool {
			return r.Hidden || sold(r.Status)
		}),
	}
}

// SchemaError lists the places where a data file breaks the schema.
type SchemaError struct {
	Errors []string
}

func (e *SchemaError) Error() string {
	return "schema validation failed: " + strings.Join(e.Errors, "; ")
}

func validateSchema(raw []byte) error {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(schemaJSON),
		gojsonschema.NewBytesLoader(raw),
	)
	if err != nil {
		return err
	}
	if result.Valid() {
		return nil
	}

	schemaErr := &SchemaError{Errors: make([]string, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		schemaErr.Errors = append(schemaErr.Errors, fmt.Sprintf("%s: %s", field, desc.Description()))
	}
	return schemaErr
}
