// Package canvas implements widget.Surface over a grid of terminal cells and
// renders the grid with lipgloss.
package canvas

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rivo/uniseg"

	"hexed/internal/widget"
)

type cell struct {
	// text is empty for the right half of a wide grapheme.
	text string
	role widget.Role
}

type Canvas struct {
	width   int
	height  int
	cells   [][]cell
	styles  map[widget.Role]lipgloss.Style
	focused bool
	enabled bool
}

func New(width, height int, styles map[widget.Role]lipgloss.Style) *Canvas {
	width = max(width, 0)
	height = max(height, 0)
	c := &Canvas{
		width:   width,
		height:  height,
		cells:   make([][]cell, height),
		styles:  styles,
		focused: true,
		enabled: true,
	}
	for y := range c.cells {
		c.cells[y] = make([]cell, width)
		for x := range c.cells[y] {
			c.cells[y][x] = cell{text: " "}
		}
	}
	return c
}

func (c *Canvas) SetFocused(focused bool) {
	c.focused = focused
}

func (c *Canvas) SetEnabled(enabled bool) {
	c.enabled = enabled
}

func (c *Canvas) Surface() widget.Surface {
	return &region{c: c, w: c.width, h: c.height}
}

// Line returns row y as plain text.
func (c *Canvas) Line(y int) string {
	if y < 0 || y >= c.height {
		return ""
	}
	var b strings.Builder
	for _, cl := range c.cells[y] {
		b.WriteString(cl.text)
	}
	return b.String()
}

// RoleAt returns the role the cell at (x, y) was last drawn with.
func (c *Canvas) RoleAt(x, y int) widget.Role {
	if y < 0 || y >= c.height || x < 0 || x >= c.width {
		return widget.RoleNone
	}
	return c.cells[y][x].role
}

func (c *Canvas) Render() string {
	lines := make([]string, c.height)
	for y, row := range c.cells {
		var b, run strings.Builder
		cur := widget.RoleNone
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if style, ok := c.styles[cur]; ok && cur != widget.RoleNone {
				b.WriteString(style.Render(run.String()))
			} else {
				b.WriteString(run.String())
			}
			run.Reset()
		}
		for _, cl := range row {
			if cl.role != cur {
				flush()
				cur = cl.role
			}
			run.WriteString(cl.text)
		}
		flush()
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

func (c *Canvas) set(x, y int, text string, role widget.Role) {
	c.cells[y][x] = cell{text: text, role: role}
}

type region struct {
	c    *Canvas
	x, y int
	w, h int
	role widget.Role
}

func (r *region) Size() widget.Size {
	return widget.Size{W: r.w, H: r.h}
}

func (r *region) Focused() bool {
	return r.c.focused
}

func (r *region) Enabled() bool {
	return r.c.enabled
}

func (r *region) Print(x, y int, text string) {
	if y < 0 || y >= r.h {
		return
	}
	col := x
	state := -1
	rest := text
	for len(rest) > 0 && col < r.w {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if w == 0 {
			continue
		}
		if col+w > r.w {
			break
		}
		if col >= 0 {
			r.c.set(r.x+col, r.y+y, cluster, r.role)
			for i := 1; i < w; i++ {
				r.c.set(r.x+col+i, r.y+y, "", r.role)
			}
		}
		col += w
	}
}

func (r *region) PrintHLine(x, y, n int, glyph string) {
	if n <= 0 || glyph == "" {
		return
	}
	r.Print(x, y, strings.Repeat(glyph, n))
}

func (r *region) WithRole(role widget.Role, draw func(widget.Surface)) {
	sub := *r
	sub.role = role
	draw(&sub)
}

func (r *region) Sub(x, y, w, h int) widget.Surface {
	x = min(max(x, 0), r.w)
	y = min(max(y, 0), r.h)
	return &region{
		c:    r.c,
		x:    r.x + x,
		y:    r.y + y,
		w:    max(min(w, r.w-x), 0),
		h:    max(min(h, r.h-y), 0),
		role: r.role,
	}
}
