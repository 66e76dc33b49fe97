package cv

import "strings"

// Profile is the person the résumé belongs to.
type Profile struct {
	ID          int    `json:"id"`
	Active      bool   `json:"active"`
	GivenNames  string `json:"given_names"`
	Surnames    string `json:"surnames"`
	Tagline     string `json:"tagline"`
	NationalID  string `json:"national_id"`
	Nationality string `json:"nationality"`
	HomeAddress string `json:"home_address"`
	Photo       string `json:"photo,omitempty"`

	Birthplace     string `json:"birthplace,omitempty"`
	BirthDate      Date   `json:"birth_date"`
	MaritalStatus  string `json:"marital_status,omitempty"`
	DrivingLicence string `json:"driving_licence,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Landline       string `json:"landline,omitempty"`
	WorkAddress    string `json:"work_address,omitempty"`
	Website        string `json:"website,omitempty"`
}

// FullName joins given names and surnames.
func (p *Profile) FullName() string {
	return strings.TrimSpace(p.GivenNames + " " + p.Surnames)
}

// PersonalLines are the label/value lines of the personal data section.
// National id, nationality and home address always appear; the rest only
// when filled in.
func (p *Profile) PersonalLines() []string {
	lines := []string{
		"Cédula: " + p.NationalID,
		"Nacionalidad: " + p.Nationality,
		"Dirección: " + p.HomeAddress,
	}

	optional := []struct {
		label string
		value string
	}{
		{"Lugar de nacimiento", p.Birthplace},
		{"Fecha de nacimiento", p.BirthDate.String()},
		{"Estado civil", p.MaritalStatus},
		{"Licencia de conducir", p.DrivingLicence},
		{"Teléfono", p.Phone},
		{"Teléfono fijo", p.Landline},
		{"Dirección de trabajo", p.WorkAddress},
		{"Sitio web", p.Website},
	}
	for _, o := range optional {
		if v := strings.TrimSpace(o.value); v != "" {
			lines = append(lines, o.label+": "+v)
		}
	}
	return lines
}

// Experience is a past or current job.
type Experience struct {
	Role        string `json:"role"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Start       Date   `json:"start"`
	End         Date   `json:"end"`
	Description string `json:"description"`
	Hidden      bool   `json:"hidden,omitempty"`
}

// Course is a completed course or training.
type Course struct {
	Name        string `json:"name"`
	Start       Date   `json:"start"`
	End         Date   `json:"end"`
	Hours       int    `json:"hours" validate:"gte=0"`
	Description string `json:"description"`
	Sponsor     string `json:"sponsor,omitempty"`
	Hidden      bool   `json:"hidden,omitempty"`
}

// Recognition is an award or distinction.
type Recognition struct {
	Kind        string `json:"kind"`
	Date        Date   `json:"date"`
	Description string `json:"description"`
	Sponsor     string `json:"sponsor"`
	Hidden      bool   `json:"hidden,omitempty"`
}

// AcademicProduct is a paper, thesis or other academic output.
type AcademicProduct struct {
	Name        string `json:"name"`
	Classifier  string `json:"classifier"`
	Description string `json:"description"`
	Hidden      bool   `json:"hidden,omitempty"`
}

// LaborProduct is a deliverable produced at work.
type LaborProduct struct {
	Name        string `json:"name"`
	Date        Date   `json:"date"`
	Description string `json:"description"`
	Hidden      bool   `json:"hidden,omitempty"`
}

// Garage sale item statuses.
const (
	StatusAvailable = "Disponible"
	StatusSold      = "Vendido"
)

// GarageItem is something offered in the garage sale.
type GarageItem struct {
	Name        string  `json:"name"`
	Value       float64 `json:"value" validate:"gte=0"`
	Status      string  `json:"status" validate:"omitempty,oneof=Disponible Vendido"`
	Description string  `json:"description"`
	Hidden      bool    `json:"hidden,omitempty"`
}

// Data is everything a résumé is composed from. Record lists are already
// filtered to visible rows and keep the data source's order. A nil Profile
// means no profile is active.
type Data struct {
	Profile          *Profile
	Experience       []Experience
	Courses          []Course
	Recognitions     []Recognition
	AcademicProducts []AcademicProduct
	LaborProducts    []LaborProduct
	Garage           []GarageItem
}
