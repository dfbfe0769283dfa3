package hexarea

import (
	"github.com/rivo/uniseg"

	"hexed/internal/layout"
)

func isSpace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\r' || c == '\t'
}

func (a *HexArea) selectedRow() int {
	return layout.RowAt(a.rows, a.cursor)
}

// colAt is the number of cells left of offset on its row.
func (a *HexArea) colAt(offset int) int {
	row := a.rows[layout.RowAt(a.rows, offset)]
	return layout.Width(string(a.content[row.Start:offset]))
}

func (a *HexArea) selectedCol() int {
	return a.colAt(a.cursor)
}

func (a *HexArea) rowText(i int) string {
	row := a.rows[i]
	return string(a.content[row.Start:row.End])
}

// moveLeft steps back one grapheme, onto the previous row if needed.
func (a *HexArea) moveLeft() {
	if a.cursor == 0 {
		return
	}
	row := a.selectedRow()
	if a.rows[row].Start == a.cursor && row > 0 {
		row--
	}
	start := min(a.rows[row].Start, a.cursor-1)
	a.cursor -= lastGraphemeLen(a.content[start:a.cursor])
}

func (a *HexArea) moveRight() {
	if a.cursor >= len(a.content) {
		return
	}
	cluster, _, _, _ := uniseg.FirstGraphemeCluster(a.content[a.cursor:], -1)
	a.cursor += len(cluster)
}

func lastGraphemeLen(b []byte) int {
	n := 0
	state := -1
	for len(b) > 0 {
		var cluster []byte
		cluster, b, _, state = uniseg.FirstGraphemeCluster(b, state)
		n = len(cluster)
	}
	return max(n, 1)
}

func (a *HexArea) moveUp() {
	row := a.selectedRow()
	if row == 0 {
		return
	}
	x := a.selectedCol()
	prev := a.rows[row-1]
	a.cursor = prev.Start + layout.Prefix(a.rowText(row-1), x)
}

func (a *HexArea) moveDown() {
	row := a.selectedRow()
	if row+1 == len(a.rows) {
		return
	}
	x := a.selectedCol()
	next := a.rows[row+1]
	a.cursor = next.Start + layout.Prefix(a.rowText(row+1), x)
}

func (a *HexArea) pageUp() {
	for i := 0; i < a.pageRows; i++ {
		a.moveUp()
	}
}

func (a *HexArea) pageDown() {
	for i := 0; i < a.pageRows; i++ {
		a.moveDown()
	}
}

func (a *HexArea) lineStart() {
	a.cursor = a.rows[a.selectedRow()].Start
}

// lineEnd selects the last digit of the cursor's row.
func (a *HexArea) lineEnd() {
	row := a.rows[a.selectedRow()]
	if row.End == row.Start {
		return
	}
	a.cursor = row.End - 1
	a.clampCursor()
	if isSpace(a.content[a.cursor]) {
		a.moveLeft()
	}
}

// tokenStart walks back from offset to the first digit of its token.
func (a *HexArea) tokenStart(offset int) int {
	for offset > 0 && !isSpace(a.content[offset-1]) {
		offset--
	}
	return offset
}

// nextTokenStart returns the first digit of the token after the cursor, or
// -1 at the last token.
func (a *HexArea) nextTokenStart() int {
	i := a.cursor
	for i < len(a.content) && !isSpace(a.content[i]) {
		i++
	}
	for i < len(a.content) && isSpace(a.content[i]) {
		i++
	}
	if i >= len(a.content) {
		return -1
	}
	return i
}

// prevTokenStart returns the first digit of the token before the one under
// the cursor, or -1 at the first token.
func (a *HexArea) prevTokenStart() int {
	i := a.cursor
	if i < len(a.content) && !isSpace(a.content[i]) {
		i = a.tokenStart(i)
	}
	j := i - 1
	for j >= 0 && isSpace(a.content[j]) {
		j--
	}
	if j < 0 {
		return -1
	}
	return a.tokenStart(j)
}

// lastDigit is the offset of the final non separator character, or -1.
func (a *HexArea) lastDigit() int {
	j := len(a.content) - 1
	for j >= 0 && isSpace(a.content[j]) {
		j--
	}
	return j
}

func (a *HexArea) moveToNextHex() bool {
	n := a.nextTokenStart()
	if n < 0 {
		return false
	}
	a.cursor = n
	return true
}

func (a *HexArea) moveToPrevHex() bool {
	p := a.prevTokenStart()
	if p < 0 {
		return false
	}
	a.cursor = p
	return true
}

// wordForward jumps to the next token, or to the last digit of the buffer
// when already on the final token.
func (a *HexArea) wordForward() {
	if a.moveToNextHex() {
		return
	}
	if last := a.lastDigit(); last > a.cursor {
		a.cursor = last
		a.clampCursor()
	}
}

// wordBackward goes to the start of the current token, or to the previous
// token when already there.
func (a *HexArea) wordBackward() {
	if a.cursor < len(a.content) && !isSpace(a.content[a.cursor]) {
		if start := a.tokenStart(a.cursor); start < a.cursor {
			a.cursor = start
			return
		}
	}
	a.moveToPrevHex()
}
