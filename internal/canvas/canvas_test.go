package canvas

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"hexed/internal/widget"
)

func TestPrintClipsToRegion(t *testing.T) {
	c := New(8, 2, nil)
	s := c.Surface()
	s.Print(0, 0, "0123456789")
	s.Print(-2, 1, "abcdef")
	s.Print(0, 5, "dropped")

	assert.Equal(t, "01234567", c.Line(0))
	assert.Equal(t, "cdef    ", c.Line(1))
}

func TestSubOffsetsAndCrops(t *testing.T) {
	c := New(6, 3, nil)
	sub := c.Surface().Sub(2, 1, 10, 10)
	assert.Equal(t, widget.Size{W: 4, H: 2}, sub.Size())

	sub.Print(0, 0, "ABCDEFG")
	sub.PrintHLine(1, 1, 9, "-")
	assert.Equal(t, "      ", c.Line(0))
	assert.Equal(t, "  ABCD", c.Line(1))
	assert.Equal(t, "   ---", c.Line(2))
}

func TestWithRoleTagsCells(t *testing.T) {
	c := New(4, 1, nil)
	s := c.Surface()
	s.Print(0, 0, "ab")
	s.WithRole(widget.RoleCursor, func(s widget.Surface) {
		s.Print(1, 0, "X")
	})

	assert.Equal(t, "aX  ", c.Line(0))
	assert.Equal(t, widget.RoleNone, c.RoleAt(0, 0))
	assert.Equal(t, widget.RoleCursor, c.RoleAt(1, 0))
}

func TestWideGrapheme(t *testing.T) {
	c := New(3, 1, nil)
	c.Surface().Print(0, 0, "世世")
	assert.Equal(t, "世 ", c.Line(0), "the second wide grapheme does not fit")
}

func TestRenderWithoutStylesIsPlain(t *testing.T) {
	c := New(3, 2, nil)
	c.Surface().WithRole(widget.RoleGutter, func(s widget.Surface) {
		s.Print(0, 1, "OK")
	})
	assert.Equal(t, "   \nOK ", c.Render())
}

func TestFlags(t *testing.T) {
	c := New(1, 1, nil)
	s := c.Surface()
	assert.True(t, s.Focused())
	assert.True(t, s.Enabled())
	c.SetFocused(false)
	c.SetEnabled(false)
	assert.False(t, s.Focused())
	assert.False(t, s.Enabled())
}
