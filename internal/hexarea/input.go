package hexarea

import (
	"unicode"

	"hexed/internal/hexcodec"
	"hexed/internal/layout"
	"hexed/internal/widget"
)

// OnEvent handles one input event. Unless the event was a scroll gesture or
// a click, the view then scrolls to keep the cursor's row visible.
func (a *HexArea) OnEvent(ev widget.Event) widget.Result {
	if !a.enabled {
		return widget.Ignored
	}

	fixScroll := true
	result := widget.Consumed(nil)

	switch ev := ev.(type) {
	case widget.Char:
		if a.mode.IsNormal() {
			a.handleNormalInput(ev.Ch)
		} else {
			result = a.handleInsertInput(ev.Ch)
		}

	case widget.Key:
		if !a.handleKey(ev) {
			return widget.Ignored
		}

	case widget.Mouse:
		handled, fix := a.handleMouse(ev)
		if !handled {
			return widget.Ignored
		}
		fixScroll = fix

	default:
		return widget.Ignored
	}

	if fixScroll {
		a.scroll.ScrollTo(a.selectedRow())
	}
	return result
}

func (a *HexArea) handleNormalInput(ch rune) {
	switch ch {
	case 'i':
		a.mode = ModeInsert
	case 'l':
		a.moveToNextHex()
	case 'h':
		a.moveToPrevHex()
	case 'j':
		if a.selectedRow()+1 < len(a.rows) {
			a.moveDown()
			if a.cursor == len(a.content) {
				a.moveLeft()
			}
		}
	case 'k':
		if a.selectedRow() > 0 {
			a.moveUp()
		}
	case '0':
		a.lineStart()
	case '$':
		a.lineEnd()
	case 'w':
		a.wordForward()
	case 'b':
		a.wordBackward()
	}
}

// handleInsertInput overwrites the digit under the cursor and advances to
// the next token. Separators are never overwritten.
func (a *HexArea) handleInsertInput(ch rune) widget.Result {
	ch = unicode.ToUpper(ch)
	if ch > unicode.MaxASCII || !hexcodec.IsDigit(byte(ch)) {
		return widget.Consumed(nil)
	}
	if a.cursor >= len(a.content) || !hexcodec.IsDigit(a.content[a.cursor]) {
		return widget.Consumed(nil)
	}

	a.content[a.cursor] = byte(ch)
	a.relayout()
	if !a.moveToNextHex() {
		a.cursor = len(a.content)
	}
	return widget.Consumed(a.changed())
}

func (a *HexArea) handleKey(ev widget.Key) bool {
	if ev.Code == widget.KeyEsc {
		a.mode = ModeNormal
		return true
	}

	if ev.Mod&widget.ModCtrl != 0 {
		switch ev.Code {
		case widget.KeyHome:
			a.cursor = 0
			return true
		case widget.KeyEnd:
			a.cursor = len(a.content)
			return true
		}
		return false
	}

	switch ev.Code {
	case widget.KeyUp:
		if a.selectedRow() == 0 {
			return false
		}
		a.moveUp()
	case widget.KeyDown:
		if a.selectedRow()+1 >= len(a.rows) {
			return false
		}
		a.moveDown()
	case widget.KeyPageUp:
		a.pageUp()
	case widget.KeyPageDown:
		a.pageDown()
	case widget.KeyLeft:
		if a.cursor == 0 {
			return false
		}
		a.moveLeft()
	case widget.KeyRight:
		if a.cursor >= len(a.content) {
			return false
		}
		a.moveRight()
	default:
		return false
	}
	return true
}

// handleMouse reports whether the event was used and whether the cursor
// should still be scrolled into view afterwards.
func (a *HexArea) handleMouse(ev widget.Mouse) (handled, fixScroll bool) {
	switch ev.Action {
	case widget.MouseWheelUp:
		if !a.scroll.CanScrollUp() {
			return false, false
		}
		a.scroll.ScrollUp(a.wheelRows)
		return true, false

	case widget.MouseWheelDown:
		if !a.scroll.CanScrollDown() {
			return false, false
		}
		a.scroll.ScrollDown(a.wheelRows)
		return true, false

	case widget.MouseHold:
		if ev.Button != widget.ButtonLeft {
			return false, false
		}
		pos, _ := ev.Pos.Sub(ev.Offset)
		a.scroll.Drag(pos)
		return true, false

	case widget.MouseRelease:
		a.scroll.ReleaseGrab()
		return true, false

	case widget.MousePress:
		pos, ok := ev.Pos.Sub(ev.Offset)
		if !ok {
			return false, false
		}
		if ev.Button == widget.ButtonLeft && a.scroll.StartDrag(pos, a.lastSize.W) {
			return true, false
		}
		if !ev.Pos.Fits(ev.Offset, a.lastSize) {
			return false, false
		}
		a.clickAt(pos)
		return true, false
	}
	return false, false
}

// clickAt places the cursor under a point relative to the widget's top-left
// corner.
func (a *HexArea) clickAt(pos widget.Point) {
	y := min(pos.Y+a.scroll.StartLine(), len(a.rows)-1)
	x := max(pos.X-AddressWidth, 0)
	a.cursor = a.rows[y].Start + layout.Prefix(a.rowText(y), x)
}
