// Package layout splits editor content into display rows.
package layout

import (
	"math"
	"sort"
	"strings"

	"github.com/rivo/uniseg"
)

// Unbounded is used as a width or height when no viewport is known yet.
const Unbounded = math.MaxInt32

// Row is the half-open byte range [Start, End) of one display line and the
// number of terminal cells it occupies.
type Row struct {
	Start int
	End   int
	Width int
}

func (r Row) Len() int {
	return r.End - r.Start
}

type segment struct {
	start int
	end   int
	width int
	hard  bool
}

// segments cuts text at every line break opportunity. Trailing spaces stay
// with the text before them.
func segments(text string) []segment {
	var segs []segment
	start, pos, width := 0, 0, 0
	state := -1
	rest := text
	for len(rest) > 0 {
		var cluster string
		var boundaries int
		cluster, rest, boundaries, state = uniseg.StepString(rest, state)
		pos += len(cluster)
		width += boundaries >> uniseg.ShiftWidth

		brk := boundaries & uniseg.MaskLine
		if brk == uniseg.LineDontBreak && len(rest) > 0 {
			continue
		}
		segs = append(segs, segment{
			start: start,
			end:   pos,
			width: width,
			hard:  brk == uniseg.LineMustBreak && len(rest) > 0,
		})
		start, width = pos, 0
	}
	return segs
}

// Wrap packs text into rows no wider than width. A segment wider than the
// row is broken between graphemes, and a grapheme wider than the row gets a
// row of its own.
func Wrap(text string, width int) []Row {
	if width < 1 {
		width = 1
	}

	var rows []Row
	cur := Row{}
	flush := func() {
		if cur.End > cur.Start {
			rows = append(rows, cur)
		}
		cur = Row{Start: cur.End, End: cur.End}
	}

	for _, seg := range segments(text) {
		if seg.width > width {
			flush()
			cur = splitSegment(text, seg, width, &rows)
		} else {
			if cur.Width+seg.width > width {
				flush()
			}
			cur.End = seg.end
			cur.Width += seg.width
		}
		if seg.hard {
			flush()
		}
	}
	flush()
	return rows
}

func splitSegment(text string, seg segment, width int, rows *[]Row) Row {
	cur := Row{Start: seg.start, End: seg.start}
	state := -1
	rest := text[seg.start:seg.end]
	for len(rest) > 0 {
		var cluster string
		var w int
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if cur.Width+w > width && cur.End > cur.Start {
			*rows = append(*rows, cur)
			cur = Row{Start: cur.End, End: cur.End}
		}
		cur.End += len(cluster)
		cur.Width += w
	}
	return cur
}

// withGhost appends an empty row at the end of the text unless the last row
// already reaches it, so the cursor always has a cell to be drawn in.
func withGhost(rows []Row, length int) []Row {
	if len(rows) == 0 || rows[len(rows)-1].End != length {
		rows = append(rows, Row{Start: length, End: length})
	}
	return rows
}

// Compute lays text out for a viewport of width x height cells. When the
// rows overflow the height one column is given up for a scrollbar and the
// text is wrapped again. The result is never empty.
func Compute(text string, width, height int) []Row {
	rows := withGhost(Wrap(text, width), len(text))
	if len(rows) > height {
		rows = withGhost(Wrap(text, width-1), len(text))
	}
	return rows
}

// RowAt returns the index of the last row starting at or before offset.
func RowAt(rows []Row, offset int) int {
	i := sort.Search(len(rows), func(i int) bool {
		return rows[i].Start > offset
	})
	if i == 0 {
		return 0
	}
	return i - 1
}

// Prefix returns the byte length of the shortest grapheme prefix of text
// whose display width reaches width, or len(text) if none does.
func Prefix(text string, width int) int {
	n, w := 0, 0
	state := -1
	rest := text
	for len(rest) > 0 && w < width {
		var cluster string
		var cw int
		cluster, rest, cw, state = uniseg.FirstGraphemeClusterInString(rest, state)
		n += len(cluster)
		w += cw
	}
	return n
}

// Width is the display width of text.
func Width(text string) int {
	return uniseg.StringWidth(text)
}

// TokenCount counts the whitespace separated tokens in text.
func TokenCount(text string) int {
	return len(strings.Fields(text))
}

func MaxWidth(rows []Row) int {
	w := 0
	for _, r := range rows {
		if r.Width > w {
			w = r.Width
		}
	}
	return w
}
