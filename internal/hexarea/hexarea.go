// Package hexarea implements a modal hex editing widget. The content is the
// space separated hex text of a byte buffer; it is wrapped into rows for the
// available width and edited one digit at a time.
package hexarea

import (
	"log"
	"strconv"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"hexed/internal/hexcodec"
	"hexed/internal/layout"
	"hexed/internal/scroll"
	"hexed/internal/widget"
)

// AddressWidth is the width of the address gutter: eight hex digits and two
// spaces.
const AddressWidth = 10

// One line under the rows shows the mode.
const statusLines = 1

const (
	defaultPageRows  = 5
	defaultWheelRows = 5
)

// Scroller tracks which rows are visible and draws the scrollbar.
type Scroller interface {
	SetHeights(view, content int)
	ScrollTo(line int)
	ScrollUp(n int)
	ScrollDown(n int)
	CanScrollUp() bool
	CanScrollDown() bool
	Scrollable() bool
	StartLine() int
	StartDrag(pos widget.Point, width int) bool
	Drag(pos widget.Point)
	ReleaseGrab()
	Draw(s widget.Surface, drawRow func(widget.Surface, int))
}

// ChangedMsg is sent after a keystroke modified the content.
type ChangedMsg struct{}

type HexArea struct {
	content []byte

	// rows is never empty.
	rows  []layout.Row
	cache layout.Cache

	// laidOut is set once Layout has been called; lastSize is that size.
	laidOut  bool
	lastSize widget.Size

	enabled bool
	scroll  Scroller

	// cursor is the byte offset of the selected grapheme.
	cursor int
	mode   Mode

	bytesPerLine int
	pageRows     int
	wheelRows    int
}

// New encodes data and returns a widget showing it in normal mode.
func New(data []byte, opts ...Option) *HexArea {
	a := &HexArea{
		enabled:   true,
		scroll:    scroll.New(),
		pageRows:  defaultPageRows,
		wheelRows: defaultWheelRows,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.SetContent(hexcodec.Encode(data))
	return a
}

// Content returns the hex text.
func (a *HexArea) Content() string {
	return string(a.content)
}

func (a *HexArea) SetContent(content string) {
	a.content = []byte(content)
	a.clampCursor()
	a.relayout()
}

func (a *HexArea) Len() int {
	return len(a.content)
}

func (a *HexArea) Cursor() int {
	return a.cursor
}

// SetCursor moves the cursor, clamped to the content, and scrolls it into
// view.
func (a *HexArea) SetCursor(cursor int) {
	a.cursor = cursor
	a.clampCursor()
	a.scroll.ScrollTo(a.selectedRow())
}

// CursorAddress is the index of the byte whose token holds the cursor.
func (a *HexArea) CursorAddress() int {
	return a.cursor / 3
}

// CursorByte decodes the token under the cursor.
func (a *HexArea) CursorByte() (byte, bool) {
	if a.cursor >= len(a.content) || isSpace(a.content[a.cursor]) {
		return 0, false
	}
	start := a.tokenStart(a.cursor)
	end := start
	for end < len(a.content) && !isSpace(a.content[end]) {
		end++
	}
	b, err := hexcodec.Decode(string(a.content[start:end]), nil)
	if err != nil || len(b) != 1 {
		return 0, false
	}
	return b[0], true
}

func (a *HexArea) Mode() Mode {
	return a.mode
}

func (a *HexArea) Rows() []layout.Row {
	return a.rows
}

func (a *HexArea) BytesPerLine() int {
	return a.bytesPerLine
}

func (a *HexArea) StartLine() int {
	return a.scroll.StartLine()
}

// Disable stops the widget from taking input or focus.
func (a *HexArea) Disable() {
	a.enabled = false
}

func (a *HexArea) Enable() {
	a.enabled = true
}

func (a *HexArea) IsEnabled() bool {
	return a.enabled
}

// Goto moves the cursor to the byte at the hex address. It reports false
// and changes nothing if address is not a hex number.
func (a *HexArea) Goto(address string) bool {
	v, err := strconv.ParseUint(address, 16, 64)
	if err != nil {
		log.Printf("hexarea: ignoring goto %q: %v", address, err)
		return false
	}

	pos := len(a.content)
	if v <= uint64(len(a.content)/3) {
		pos = int(v) * 3
	}
	a.SetCursor(pos)
	return true
}

func (a *HexArea) clampCursor() {
	a.cursor = max(min(a.cursor, len(a.content)), 0)
	for a.cursor > 0 && a.cursor < len(a.content) && !utf8.RuneStart(a.content[a.cursor]) {
		a.cursor--
	}
}

// relayout recomputes the rows after the content changed.
func (a *HexArea) relayout() {
	a.cache.Invalidate()
	if a.laidOut {
		a.computeRows(a.lastSize)
		return
	}
	a.rows = layout.Compute(string(a.content), layout.Unbounded, layout.Unbounded)
	a.updateBytesPerLine()
}

// contentArea is the wrapping size for a widget of the given size: the
// gutter and one column for the end-of-content cursor are taken from the
// width and the mode line from the height.
func contentArea(size widget.Size) (width, height int) {
	return max(size.W-AddressWidth-1, 0), max(size.H-statusLines, 0)
}

func (a *HexArea) softComputeRows(size widget.Size) {
	w, h := contentArea(size)
	if a.cache.Valid(w, h) {
		log.Printf("hexarea: layout cache still valid for %dx%d", w, h)
		return
	}
	a.rows, _ = a.cache.Rows(string(a.content), w, h)
	log.Printf("hexarea: computed %d rows for %dx%d", len(a.rows), w, h)
}

func (a *HexArea) computeRows(size widget.Size) {
	a.softComputeRows(size)
	_, h := contentArea(size)
	a.scroll.SetHeights(h, len(a.rows))
	a.updateBytesPerLine()
}

func (a *HexArea) updateBytesPerLine() {
	first := a.rows[0]
	a.bytesPerLine = layout.TokenCount(string(a.content[first.Start:first.End]))
}

func (a *HexArea) changed() tea.Cmd {
	return func() tea.Msg {
		return ChangedMsg{}
	}
}
