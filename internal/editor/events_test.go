package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"hexed/internal/widget"
)

func TestKeyEvents(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want []widget.Event
	}{
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}}, []widget.Event{widget.Char{Ch: 'l'}}},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}, Alt: true}, []widget.Event{widget.ModChar{Ch: 'x', Mod: widget.ModAlt}}},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("AB"), Paste: true}, []widget.Event{widget.Char{Ch: 'A'}, widget.Char{Ch: 'B'}}},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, []widget.Event{widget.Char{Ch: ' '}}},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, []widget.Event{widget.Key{Code: widget.KeyEsc}}},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, []widget.Event{widget.Key{Code: widget.KeyUp}}},
		{"alt up", tea.KeyMsg{Type: tea.KeyUp, Alt: true}, []widget.Event{widget.Key{Code: widget.KeyUp, Mod: widget.ModAlt}}},
		{"page down", tea.KeyMsg{Type: tea.KeyPgDown}, []widget.Event{widget.Key{Code: widget.KeyPageDown}}},
		{"ctrl end", tea.KeyMsg{Type: tea.KeyCtrlEnd}, []widget.Event{widget.Key{Code: widget.KeyEnd, Mod: widget.ModCtrl}}},
		{"ctrl letter", tea.KeyMsg{Type: tea.KeyCtrlW}, []widget.Event{widget.ModChar{Ch: 'w', Mod: widget.ModCtrl}}},
		{"unmapped", tea.KeyMsg{Type: tea.KeyF5}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, keyEvents(tt.msg))
		})
	}
}

func TestMouseEvent(t *testing.T) {
	offset := widget.Point{X: 0, Y: 1}
	pos := widget.Point{X: 4, Y: 3}

	tests := []struct {
		name   string
		msg    tea.MouseMsg
		want   widget.Mouse
		wantOK bool
	}{
		{
			"left press",
			tea.MouseMsg{X: 4, Y: 3, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress},
			widget.Mouse{Action: widget.MousePress, Button: widget.ButtonLeft, Pos: pos, Offset: offset},
			true,
		},
		{
			"drag",
			tea.MouseMsg{X: 4, Y: 3, Button: tea.MouseButtonLeft, Action: tea.MouseActionMotion},
			widget.Mouse{Action: widget.MouseHold, Button: widget.ButtonLeft, Pos: pos, Offset: offset},
			true,
		},
		{
			"release",
			tea.MouseMsg{X: 4, Y: 3, Button: tea.MouseButtonNone, Action: tea.MouseActionRelease},
			widget.Mouse{Action: widget.MouseRelease, Pos: pos, Offset: offset},
			true,
		},
		{
			"wheel",
			tea.MouseMsg{X: 4, Y: 3, Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress},
			widget.Mouse{Action: widget.MouseWheelDown, Pos: pos, Offset: offset},
			true,
		},
		{
			"hover",
			tea.MouseMsg{X: 4, Y: 3, Button: tea.MouseButtonNone, Action: tea.MouseActionMotion},
			widget.Mouse{Pos: pos, Offset: offset},
			false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := mouseEvent(tt.msg, offset)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
