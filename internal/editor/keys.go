package editor

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Goto    key.Binding
	Save    key.Binding
	Quit    key.Binding
	Help    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Yes     key.Binding
	No      key.Binding

	// Handled by the hex area; listed for help only.
	Insert    key.Binding
	Normal    key.Binding
	NextHex   key.Binding
	PrevHex   key.Binding
	RowDown   key.Binding
	RowUp     key.Binding
	WordNext  key.Binding
	WordPrev  key.Binding
	LineStart key.Binding
	LineEnd   key.Binding
	Arrows    key.Binding
	Page      key.Binding
	Ends      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Goto: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("^G", "goto"),
		),
		Save: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("^S", "save"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q", "ctrl+c"),
			key.WithHelp("^Q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "help"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "ok"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "yes"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n", "no"),
		),

		Insert:    key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "insert mode")),
		Normal:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "normal mode")),
		NextHex:   key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "next byte")),
		PrevHex:   key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "previous byte")),
		RowDown:   key.NewBinding(key.WithKeys("j"), key.WithHelp("j", "row down")),
		RowUp:     key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "row up")),
		WordNext:  key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "next word")),
		WordPrev:  key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "word back")),
		LineStart: key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "row start")),
		LineEnd:   key.NewBinding(key.WithKeys("$"), key.WithHelp("$", "row end")),
		Arrows:    key.NewBinding(key.WithKeys("up", "down", "left", "right"), key.WithHelp("←↑↓→", "move")),
		Page:      key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("pgup/pgdn", "page")),
		Ends:      key.NewBinding(key.WithKeys("ctrl+home", "ctrl+end"), key.WithHelp("^home/^end", "start/end")),
	}
}

// ShortHelp is the legend of the main view.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Goto, k.Save, k.Quit, k.Insert, k.Normal}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Goto, k.Save, k.Quit, k.Help},
		{k.Insert, k.Normal, k.NextHex, k.PrevHex, k.RowDown, k.RowUp},
		{k.WordNext, k.WordPrev, k.LineStart, k.LineEnd},
		{k.Arrows, k.Page, k.Ends},
	}
}
