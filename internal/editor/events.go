package editor

import (
	tea "github.com/charmbracelet/bubbletea"

	"hexed/internal/widget"
)

var namedKeys = map[tea.KeyType]widget.Key{
	tea.KeyEsc:           {Code: widget.KeyEsc},
	tea.KeyEnter:         {Code: widget.KeyEnter},
	tea.KeyTab:           {Code: widget.KeyTab},
	tea.KeyShiftTab:      {Code: widget.KeyTab, Mod: widget.ModShift},
	tea.KeyBackspace:     {Code: widget.KeyBackspace},
	tea.KeyDelete:        {Code: widget.KeyDelete},
	tea.KeyUp:            {Code: widget.KeyUp},
	tea.KeyDown:          {Code: widget.KeyDown},
	tea.KeyLeft:          {Code: widget.KeyLeft},
	tea.KeyRight:         {Code: widget.KeyRight},
	tea.KeyShiftUp:       {Code: widget.KeyUp, Mod: widget.ModShift},
	tea.KeyShiftDown:     {Code: widget.KeyDown, Mod: widget.ModShift},
	tea.KeyShiftLeft:     {Code: widget.KeyLeft, Mod: widget.ModShift},
	tea.KeyShiftRight:    {Code: widget.KeyRight, Mod: widget.ModShift},
	tea.KeyCtrlUp:        {Code: widget.KeyUp, Mod: widget.ModCtrl},
	tea.KeyCtrlDown:      {Code: widget.KeyDown, Mod: widget.ModCtrl},
	tea.KeyCtrlLeft:      {Code: widget.KeyLeft, Mod: widget.ModCtrl},
	tea.KeyCtrlRight:     {Code: widget.KeyRight, Mod: widget.ModCtrl},
	tea.KeyPgUp:          {Code: widget.KeyPageUp},
	tea.KeyPgDown:        {Code: widget.KeyPageDown},
	tea.KeyCtrlPgUp:      {Code: widget.KeyPageUp, Mod: widget.ModCtrl},
	tea.KeyCtrlPgDown:    {Code: widget.KeyPageDown, Mod: widget.ModCtrl},
	tea.KeyHome:          {Code: widget.KeyHome},
	tea.KeyEnd:           {Code: widget.KeyEnd},
	tea.KeyShiftHome:     {Code: widget.KeyHome, Mod: widget.ModShift},
	tea.KeyShiftEnd:      {Code: widget.KeyEnd, Mod: widget.ModShift},
	tea.KeyCtrlHome:      {Code: widget.KeyHome, Mod: widget.ModCtrl},
	tea.KeyCtrlEnd:       {Code: widget.KeyEnd, Mod: widget.ModCtrl},
	tea.KeyCtrlShiftHome: {Code: widget.KeyHome, Mod: widget.ModCtrl | widget.ModShift},
	tea.KeyCtrlShiftEnd:  {Code: widget.KeyEnd, Mod: widget.ModCtrl | widget.ModShift},
}

// keyEvents converts a key message into widget events. Pasted text yields
// one Char per rune.
func keyEvents(msg tea.KeyMsg) []widget.Event {
	var mod widget.Mod
	if msg.Alt {
		mod = widget.ModAlt
	}

	switch msg.Type {
	case tea.KeyRunes:
		events := make([]widget.Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if mod != 0 {
				events = append(events, widget.ModChar{Ch: r, Mod: mod})
			} else {
				events = append(events, widget.Char{Ch: r})
			}
		}
		return events
	case tea.KeySpace:
		return []widget.Event{widget.Char{Ch: ' '}}
	}

	if k, ok := namedKeys[msg.Type]; ok {
		k.Mod |= mod
		return []widget.Event{k}
	}

	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		ch := rune('a' + int(msg.Type-tea.KeyCtrlA))
		return []widget.Event{widget.ModChar{Ch: ch, Mod: widget.ModCtrl | mod}}
	}
	return nil
}

// mouseEvent converts a mouse message for a widget drawn at offset. Motion
// without a held button is dropped.
func mouseEvent(msg tea.MouseMsg, offset widget.Point) (widget.Mouse, bool) {
	ev := widget.Mouse{
		Pos:    widget.Point{X: msg.X, Y: msg.Y},
		Offset: offset,
	}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		ev.Action = widget.MouseWheelUp
		return ev, msg.Action == tea.MouseActionPress
	case tea.MouseButtonWheelDown:
		ev.Action = widget.MouseWheelDown
		return ev, msg.Action == tea.MouseActionPress
	case tea.MouseButtonLeft:
		ev.Button = widget.ButtonLeft
	case tea.MouseButtonMiddle:
		ev.Button = widget.ButtonMiddle
	case tea.MouseButtonRight:
		ev.Button = widget.ButtonRight
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if ev.Button == widget.ButtonNone {
			return ev, false
		}
		ev.Action = widget.MousePress
	case tea.MouseActionRelease:
		ev.Action = widget.MouseRelease
	case tea.MouseActionMotion:
		if ev.Button == widget.ButtonNone {
			return ev, false
		}
		ev.Action = widget.MouseHold
	default:
		return ev, false
	}
	return ev, true
}
