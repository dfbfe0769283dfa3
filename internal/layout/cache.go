package layout

// Cache keeps the rows computed for one (width, height) pair until the
// content changes or a size they no longer fit is requested.
type Cache struct {
	width  int
	height int
	rows   []Row
	valid  bool
}

// Valid reports whether the cached rows are what Compute would return for
// the size. Rows that fit their height without a scrollbar stay valid for
// any height they still fit.
func (c *Cache) Valid(width, height int) bool {
	if !c.valid || c.width != width {
		return false
	}
	if c.height == height {
		return true
	}
	return len(c.rows) <= c.height && len(c.rows) <= height
}

// Rows returns the cached rows for the size, computing them on a miss. The
// second result reports a cache hit.
func (c *Cache) Rows(text string, width, height int) ([]Row, bool) {
	if c.Valid(width, height) {
		return c.rows, true
	}
	c.rows = Compute(text, width, height)
	c.width = width
	c.height = height
	c.valid = true
	return c.rows, false
}

func (c *Cache) Invalidate() {
	c.valid = false
}
