// Package scroll keeps the first visible line of a view taller than its
// viewport and draws the matching scrollbar.
package scroll

import "hexed/internal/widget"

type ScrollBase struct {
	startLine     int
	contentHeight int
	viewHeight    int

	grabbing  bool
	thumbGrab int
}

func New() *ScrollBase {
	return &ScrollBase{}
}

func (s *ScrollBase) SetHeights(view, content int) {
	s.viewHeight = max(view, 0)
	s.contentHeight = max(content, 0)
	s.startLine = min(s.startLine, s.maxStart())
}

func (s *ScrollBase) StartLine() int {
	return s.startLine
}

func (s *ScrollBase) Scrollable() bool {
	return s.contentHeight > s.viewHeight
}

func (s *ScrollBase) CanScrollUp() bool {
	return s.startLine > 0
}

func (s *ScrollBase) CanScrollDown() bool {
	return s.startLine+s.viewHeight < s.contentHeight
}

func (s *ScrollBase) ScrollUp(n int) {
	s.startLine -= min(s.startLine, max(n, 0))
}

func (s *ScrollBase) ScrollDown(n int) {
	s.startLine = min(s.startLine+max(n, 0), s.maxStart())
}

// ScrollTo moves the view the least amount needed to show line.
func (s *ScrollBase) ScrollTo(line int) {
	switch {
	case line >= s.startLine+s.viewHeight:
		s.startLine = line + 1 - s.viewHeight
	case line < s.startLine:
		s.startLine = line
	}
	s.startLine = max(min(s.startLine, s.maxStart()), 0)
}

// StartDrag begins a thumb drag if pos is on the scrollbar column of a view
// that is width cells wide. Pressing the track outside the thumb centres the
// thumb on the pointer.
func (s *ScrollBase) StartDrag(pos widget.Point, width int) bool {
	if !s.Scrollable() || pos.X != s.scrollbarX(width) {
		return false
	}

	ty, th := s.thumb()
	if pos.Y >= ty && pos.Y < ty+th {
		s.thumbGrab = pos.Y - ty
	} else {
		s.thumbGrab = th / 2
	}
	s.grabbing = true
	s.Drag(pos)
	return true
}

func (s *ScrollBase) Drag(pos widget.Point) {
	if !s.grabbing {
		return
	}
	_, th := s.thumb()
	track := s.viewHeight - th
	if track <= 0 {
		return
	}
	ty := max(min(pos.Y-s.thumbGrab, track), 0)
	s.startLine = ty * s.maxStart() / track
}

func (s *ScrollBase) ReleaseGrab() {
	s.grabbing = false
}

func (s *ScrollBase) IsDragging() bool {
	return s.grabbing
}

// Draw calls drawRow with a one line surface for every visible line and
// then paints the scrollbar when the content overflows.
func (s *ScrollBase) Draw(surf widget.Surface, drawRow func(widget.Surface, int)) {
	size := surf.Size()
	w := size.W
	if s.Scrollable() {
		w = max(w-1, 0)
	}

	n := min(s.viewHeight, size.H, s.contentHeight-s.startLine)
	for y := 0; y < n; y++ {
		drawRow(surf.Sub(0, y, w, 1), s.startLine+y)
	}

	if !s.Scrollable() {
		return
	}
	x := s.scrollbarX(size.W)
	ty, th := s.thumb()
	h := min(s.viewHeight, size.H)
	surf.WithRole(widget.RoleScrollbar, func(p widget.Surface) {
		for y := 0; y < h; y++ {
			p.Print(x, y, "|")
		}
	})
	surf.WithRole(widget.RoleThumb, func(p widget.Surface) {
		for y := ty; y < ty+th && y < h; y++ {
			p.Print(x, y, "#")
		}
	})
}

func (s *ScrollBase) maxStart() int {
	return max(s.contentHeight-s.viewHeight, 0)
}

func (s *ScrollBase) scrollbarX(width int) int {
	return width - 1
}

func (s *ScrollBase) thumb() (y, height int) {
	if s.contentHeight == 0 {
		return 0, s.viewHeight
	}
	height = max(1, s.viewHeight*s.viewHeight/s.contentHeight)
	if ms := s.maxStart(); ms > 0 {
		y = (s.viewHeight - height) * s.startLine / ms
	}
	return y, height
}
