package cv

import (
	"bytes"
	"io"
	"log"
	"path/filepath"

	"github.com/google/uuid"

	"cvpdf/internal/canvas"
	"cvpdf/internal/pdf"
	"cvpdf/internal/photo"
)

// NoProfileMessage is the only content of a document without an active profile.
const NoProfileMessage = "No existe un perfil activo."

// Option configures a Composer.
type Option func(*Composer)

// WithLogger sets where skipped photos and finished documents are reported.
func WithLogger(l *log.Logger) Option {
	return func(c *Composer) { c.logger = l }
}

// WithMediaRoot sets the directory relative photo paths are resolved against.
func WithMediaRoot(dir string) Option {
	return func(c *Composer) { c.mediaRoot = dir }
}

// WithStyle replaces the default fonts, colors and spacing.
func WithStyle(s pdf.Style) Option {
	return func(c *Composer) { c.style = s }
}

// WithGeometry replaces the default US Letter page.
func WithGeometry(g pdf.Geometry) Option {
	return func(c *Composer) { c.geo = g }
}

// Composer turns résumé data into a paginated document. It holds no per
// document state, so one Composer may serve concurrent requests; every call
// builds its own cursor and canvas.
type Composer struct {
	style     pdf.Style
	geo       pdf.Geometry
	mediaRoot string
	logger    *log.Logger
}

// NewComposer returns a Composer for US Letter pages in the default style.
func NewComposer(opts ...Option) *Composer {
	c := &Composer{
		style: pdf.DefaultStyle(),
		geo:   pdf.Letter(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Summary describes a composed document.
type Summary struct {
	ID           uuid.UUID
	Pages        int
	Cards        int
	Placeholders int
	Photo        bool
}

// Render composes the document and writes the finished PDF to w.
func (c *Composer) Render(w io.Writer, data *Data, sel Selection) (*Summary, error) {
	doc := canvas.NewPDF()

	sum, err := c.Draw(doc, data, sel)
	if err != nil {
		return nil, err
	}
	if err := doc.Err(); err != nil {
		return nil, &RenderError{Message: "failed to draw document", Cause: err}
	}

	info := canvas.Info{Title: "Hoja de vida", Subject: sum.ID.String(), Creator: "cvpdf"}
	if data != nil && data.Profile != nil {
		info.Author = data.Profile.FullName()
	}
	doc.SetInfo(info)

	if err := doc.Output(w); err != nil {
		return nil, &RenderError{Message: "failed to write document", Cause: err}
	}

	c.logf("[PDF] Document %s composed: %d page(s), %d card(s), %d placeholder(s)",
		sum.ID, sum.Pages, sum.Cards, sum.Placeholders)
	return sum, nil
}

// Draw lays the document out on cnv in a single pass: the header, then every
// selected section in catalog order. Missing data is never an error; a record
// that cannot produce a card title is.
func (c *Composer) Draw(cnv canvas.Canvas, data *Data, sel Selection) (*Summary, error) {
	cur := pdf.NewCursor(cnv, c.geo)
	d := pdf.NewDrawer(cnv, cur, c.style)
	sum := &Summary{ID: uuid.New()}

	if data == nil || data.Profile == nil {
		d.Text(NoProfileMessage, c.style.Message)
		sum.Pages = cur.Page()
		return sum, nil
	}

	sum.Photo = c.drawHeader(cnv, d, data.Profile, sel)

	for _, sec := range sel.Sections() {
		d.SectionTitle(sec.Title, sec.Key != Personal)

		if sec.Key == Personal {
			for _, line := range data.Profile.PersonalLines() {
				d.Paragraph(line)
			}
			continue
		}

		cards, err := data.Cards(sec.Key)
		if err != nil {
			return nil, err
		}
		if len(cards) == 0 {
			d.Placeholder(sec.Empty)
			sum.Placeholders++
			continue
		}
		for _, card := range cards {
			d.Card(card)
			sum.Cards++
		}
	}

	sum.Pages = cur.Page()
	return sum, nil
}

// drawHeader draws the photo, name and tagline, and reports whether the
// photo was placed.
func (c *Composer) drawHeader(cnv canvas.Canvas, d *pdf.Drawer, p *Profile, sel Selection) bool {
	st := c.style
	placed := c.drawPhoto(cnv, p)

	d.Text(p.FullName(), st.Name)
	d.Text(p.Tagline, st.Tagline)

	cur := d.Cursor()
	cur.Gap(st.HeaderGap)

	// The personal data lines are short enough to run beside the photo; any
	// other first section starts with a full-width rule and must clear it.
	if placed && !sel.Has(Personal) {
		if below := st.PhotoTop + st.PhotoSize + st.HeaderGap; cur.Y() < below {
			cur.Gap(below - cur.Y())
		}
	}
	return placed
}

// drawPhoto places the profile photo in the top right corner. A photo that
// cannot be read, decoded or embedded is skipped and the document goes on
// without it.
func (c *Composer) drawPhoto(cnv canvas.Canvas, p *Profile) bool {
	if p.Photo == "" {
		return false
	}

	img, err := photo.Load(c.resolve(p.Photo))
	if err != nil {
		c.logf("[PDF] Skipping profile photo: %v", err)
		return false
	}

	st := c.style
	x := c.geo.Width - c.geo.Right - st.PhotoSize - st.PhotoInset
	if err := cnv.Image(img.Name, img.Type, bytes.NewReader(img.Data), x, st.PhotoTop, st.PhotoSize, st.PhotoSize); err != nil {
		c.logf("[PDF] Skipping profile photo: %v", err)
		return false
	}
	return true
}

func (c *Composer) resolve(path string) string {
	if filepath.IsAbs(path) || c.mediaRoot == "" {
		return path
	}
	return filepath.Join(c.mediaRoot, path)
}

func (c *Composer) logf(format string, args ...any) {
	if c.logger != nil {
		c.logger.Printf(format, args...)
	}
}
