// Package widget holds the small contracts shared by the hex area and the
// pieces it is drawn and driven with: input events, event results and the
// drawing surface.
package widget

import tea "github.com/charmbracelet/bubbletea"

// Event is one of Char, ModChar, Key or Mouse.
type Event interface {
	isEvent()
}

type Mod uint8

const (
	ModShift Mod = 1 << iota
	ModAlt
	ModCtrl
)

type KeyCode int

const (
	KeyEsc KeyCode = iota
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
)

type MouseAction int

const (
	MousePress MouseAction = iota
	MouseRelease
	MouseHold
	MouseWheelUp
	MouseWheelDown
)

type MouseButton int

const (
	ButtonNone MouseButton = iota
	ButtonLeft
	ButtonMiddle
	ButtonRight
)

// Char is a plain printable character.
type Char struct {
	Ch rune
}

// ModChar is a character typed with Ctrl or Alt held.
type ModChar struct {
	Ch  rune
	Mod Mod
}

// Key is a named key, possibly modified.
type Key struct {
	Code KeyCode
	Mod  Mod
}

// Mouse carries the absolute pointer position and the screen offset of the
// widget receiving it.
type Mouse struct {
	Action MouseAction
	Button MouseButton
	Pos    Point
	Offset Point
}

func (Char) isEvent()    {}
func (ModChar) isEvent() {}
func (Key) isEvent()     {}
func (Mouse) isEvent()   {}

// Result tells the caller whether an event was handled. Cmd, when set, is
// run by the program loop after the current event has been processed.
type Result struct {
	Consumed bool
	Cmd      tea.Cmd
}

var Ignored = Result{}

func Consumed(cmd tea.Cmd) Result {
	return Result{Consumed: true, Cmd: cmd}
}
