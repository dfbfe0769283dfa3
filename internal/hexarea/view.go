package hexarea

import (
	"fmt"

	"github.com/rivo/uniseg"

	"hexed/internal/layout"
	"hexed/internal/widget"
)

// RequiredSize lays the content out for constraint and returns the size
// that shows every row: the gutter, the widest row plus one blank column for
// the end-of-content cursor, a scrollbar column when the rows overflow, and
// the mode line.
func (a *HexArea) RequiredSize(constraint widget.Size) widget.Size {
	a.softComputeRows(constraint)

	_, h := contentArea(constraint)
	scrollWidth := 0
	if len(a.rows) > h {
		scrollWidth = 1
	}
	return widget.Size{
		W: AddressWidth + layout.MaxWidth(a.rows) + 1 + scrollWidth,
		H: len(a.rows) + statusLines,
	}
}

// Layout is called with the final size before drawing.
func (a *HexArea) Layout(size widget.Size) {
	a.lastSize = size
	a.laidOut = true
	a.computeRows(size)
}

// TakeFocus reports whether the widget accepts keyboard focus.
func (a *HexArea) TakeFocus() bool {
	return a.enabled
}

// ImportantArea is the cursor cell in content coordinates: the column
// includes the gutter and the row is the row index.
func (a *HexArea) ImportantArea() widget.Rect {
	width := 1
	if a.cursor < len(a.content) {
		_, _, w, _ := uniseg.FirstGraphemeCluster(a.content[a.cursor:], -1)
		width = max(w, 1)
	}
	return widget.Rect{
		Pos:  widget.Point{X: AddressWidth + a.selectedCol(), Y: a.selectedRow()},
		Size: widget.Size{W: width, H: 1},
	}
}

func addressLabel(addr int) string {
	return fmt.Sprintf("%08X  ", addr)
}

func (a *HexArea) cursorRole() widget.Role {
	if a.mode.IsInsert() {
		return widget.RoleCursorInsert
	}
	return widget.RoleCursor
}

func (a *HexArea) Draw(s widget.Surface) {
	size := s.Size()
	if size.W == 0 || size.H == 0 {
		return
	}

	s.WithRole(widget.RoleStatus, func(p widget.Surface) {
		p.Print(0, size.H-1, a.mode.String())
	})

	body := s.Sub(0, 0, size.W, size.H-statusLines)
	role := widget.RoleInactive
	if a.enabled && body.Enabled() {
		role = widget.RoleContent
	}

	w := body.Size().W
	if a.scroll.Scrollable() {
		w = max(w-1, 0)
	}
	body.WithRole(role, func(p widget.Surface) {
		for y := 0; y < p.Size().H; y++ {
			p.PrintHLine(0, y, w, " ")
		}
	})

	selected := a.selectedRow()
	a.scroll.Draw(body, func(p widget.Surface, i int) {
		if i >= len(a.rows) {
			return
		}
		row := a.rows[i]
		text := a.rowText(i)

		p.WithRole(widget.RoleGutter, func(p widget.Surface) {
			p.Print(0, 0, addressLabel(i*a.bytesPerLine))
		})
		p.WithRole(role, func(p widget.Surface) {
			p.Print(AddressWidth, 0, text)
		})

		if !p.Focused() || !a.enabled || i != selected {
			return
		}
		offset := a.cursor - row.Start
		glyph := "_"
		if offset < len(text) {
			glyph, _, _, _ = uniseg.FirstGraphemeClusterInString(text[offset:], -1)
		}
		x := AddressWidth + layout.Width(text[:offset])
		p.WithRole(a.cursorRole(), func(p widget.Surface) {
			p.Print(x, 0, glyph)
		})
	})
}
