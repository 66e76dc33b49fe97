package pdf

// cm is one centimetre in points.
const cm = 72 / 2.54

// Geometry describes the page and its margins, in points.
type Geometry struct {
	Width, Height float64
	Top, Bottom   float64
	Left, Right   float64
}

// Letter is a US Letter portrait page with 2 cm margins on every side.
func Letter() Geometry {
	return Geometry{
		Width:  612,
		Height: 792,
		Top:    2 * cm,
		Bottom: 2 * cm,
		Left:   2 * cm,
		Right:  2 * cm,
	}
}

// ContentWidth is the width of the single text column.
func (g Geometry) ContentWidth() float64 {
	return g.Width - g.Left - g.Right
}

// Limit is the lowest y content may reach.
func (g Geometry) Limit() float64 {
	return g.Height - g.Bottom
}

// Pager opens pages.
type Pager interface {
	AddPage()
}

// Cursor tracks the vertical position on the current page and breaks to a
// new page before an element would cross the bottom margin.
type Cursor struct {
	pager Pager
	geo   Geometry
	y     float64
	page  int

	// placed reports whether anything occupies the current page.
	placed bool
}

// NewCursor opens the first page and positions the cursor at its top margin.
func NewCursor(p Pager, g Geometry) *Cursor {
	c := &Cursor{pager: p, geo: g}
	c.newPage()
	return c
}

func (c *Cursor) newPage() {
	c.pager.AddPage()
	c.page++
	c.y = c.geo.Top
	c.placed = false
}

// Y is the top of the free space on the current page.
func (c *Cursor) Y() float64 { return c.y }

// Page is the 1-based number of the current page.
func (c *Cursor) Page() int { return c.page }

// Geometry returns the page geometry the cursor works in.
func (c *Cursor) Geometry() Geometry { return c.geo }

// Remaining is the free height left on the current page.
func (c *Cursor) Remaining() float64 {
	return c.geo.Limit() - c.y
}

// EnsureSpace starts a new page when an element of height h does not fit on
// the current one, and reports whether it did. An empty page is never
// abandoned: an element taller than the usable height is placed anyway and
// overflows.
func (c *Cursor) EnsureSpace(h float64) bool {
	if c.y+h <= c.geo.Limit() || !c.placed {
		return false
	}
	c.newPage()
	return true
}

// Take reserves a band of height h, breaking the page first if needed, and
// returns the top of the band.
func (c *Cursor) Take(h float64) float64 {
	c.EnsureSpace(h)
	top := c.y
	c.y += h
	c.placed = true
	return top
}

// Gap moves the cursor down by h without reserving content space. It stops at
// the bottom limit; the next element then breaks the page.
func (c *Cursor) Gap(h float64) {
	limit := c.geo.Limit()
	if c.y+h <= limit {
		c.y += h
		return
	}
	if c.y < limit {
		c.y = limit
	}
}
