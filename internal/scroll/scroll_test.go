package scroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hexed/internal/canvas"
	"hexed/internal/widget"
)

func TestScrollTo(t *testing.T) {
	s := New()
	s.SetHeights(4, 20)
	require.True(t, s.Scrollable())

	s.ScrollTo(2)
	assert.Equal(t, 0, s.StartLine())

	s.ScrollTo(10)
	assert.Equal(t, 7, s.StartLine(), "line 10 becomes the last visible line")

	s.ScrollTo(5)
	assert.Equal(t, 5, s.StartLine(), "line 5 becomes the first visible line")

	s.ScrollTo(100)
	assert.Equal(t, 16, s.StartLine(), "never past the end")
}

func TestScrollUpDown(t *testing.T) {
	s := New()
	s.SetHeights(4, 10)
	assert.False(t, s.CanScrollUp())
	assert.True(t, s.CanScrollDown())

	s.ScrollDown(5)
	assert.Equal(t, 5, s.StartLine())
	s.ScrollDown(5)
	assert.Equal(t, 6, s.StartLine())
	assert.False(t, s.CanScrollDown())

	s.ScrollUp(4)
	assert.Equal(t, 2, s.StartLine())
	s.ScrollUp(4)
	assert.Equal(t, 0, s.StartLine())
}

func TestSetHeightsClampsStart(t *testing.T) {
	s := New()
	s.SetHeights(2, 10)
	s.ScrollDown(8)
	require.Equal(t, 8, s.StartLine())

	s.SetHeights(5, 10)
	assert.Equal(t, 5, s.StartLine())
	s.SetHeights(20, 10)
	assert.Equal(t, 0, s.StartLine())
	assert.False(t, s.Scrollable())
}

func TestDrag(t *testing.T) {
	s := New()
	s.SetHeights(10, 100)

	assert.False(t, s.StartDrag(widget.Point{X: 3, Y: 0}, 20), "not on the scrollbar")
	require.True(t, s.StartDrag(widget.Point{X: 19, Y: 0}, 20))
	assert.True(t, s.IsDragging())
	assert.Equal(t, 0, s.StartLine())

	s.Drag(widget.Point{X: 19, Y: 9})
	assert.Equal(t, 90, s.StartLine(), "thumb at the bottom shows the end")

	s.ReleaseGrab()
	s.Drag(widget.Point{X: 19, Y: 0})
	assert.Equal(t, 90, s.StartLine(), "released thumb does not move")
}

func TestDrawVisibleRowsAndBar(t *testing.T) {
	s := New()
	s.SetHeights(3, 6)
	s.ScrollDown(3)

	c := canvas.New(5, 3, nil)
	var drawn []int
	s.Draw(c.Surface(), func(p widget.Surface, i int) {
		assert.Equal(t, widget.Size{W: 4, H: 1}, p.Size())
		drawn = append(drawn, i)
		p.Print(0, 0, "row")
	})

	assert.Equal(t, []int{3, 4, 5}, drawn)
	assert.Equal(t, "row |", c.Line(0))
	assert.Equal(t, "row #", c.Line(2))
	assert.Equal(t, widget.RoleThumb, c.RoleAt(4, 2))
	assert.Equal(t, widget.RoleScrollbar, c.RoleAt(4, 0))
}
