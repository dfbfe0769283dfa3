package layout

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hexed/internal/hexcodec"
)

func TestWrap(t *testing.T) {
	cases := []struct {
		name  string
		text  string
		width int
		want  []Row
	}{
		{
			name:  "single row",
			text:  "DE AD BE EF",
			width: 80,
			want:  []Row{{Start: 0, End: 11, Width: 11}},
		},
		{
			name:  "separator stays on its row",
			text:  "DE AD BE EF",
			width: 6,
			want:  []Row{{0, 6, 6}, {6, 11, 5}},
		},
		{
			name:  "last row holds one more token",
			text:  "DE AD BE EF",
			width: 5,
			want:  []Row{{0, 3, 3}, {3, 6, 3}, {6, 11, 5}},
		},
		{
			name:  "one token per row",
			text:  "DE AD BE EF",
			width: 4,
			want:  []Row{{0, 3, 3}, {3, 6, 3}, {6, 9, 3}, {9, 11, 2}},
		},
		{
			name:  "narrower than a token",
			text:  "DE AD",
			width: 1,
			want:  []Row{{0, 1, 1}, {1, 2, 1}, {2, 3, 1}, {3, 4, 1}, {4, 5, 1}},
		},
		{
			name:  "empty",
			text:  "",
			width: 10,
			want:  nil,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Wrap(tc.text, tc.width))
		})
	}
}

func TestWrapZeroWidthIsCoerced(t *testing.T) {
	assert.Equal(t, Wrap("DE AD", 1), Wrap("DE AD", 0))
	assert.Equal(t, Wrap("DE AD", 1), Wrap("DE AD", -3))
}

func TestWrapHardBreak(t *testing.T) {
	rows := Wrap("DE\nAD", 80)
	require.Len(t, rows, 2)
	assert.Equal(t, 0, rows[0].Start)
	assert.Equal(t, 3, rows[0].End)
	assert.Equal(t, 3, rows[1].Start)
	assert.Equal(t, 5, rows[1].End)
}

func TestComputeGhostRow(t *testing.T) {
	assert.Equal(t, []Row{{0, 0, 0}}, Compute("", 10, 10))
	assert.Equal(t, []Row{{0, 11, 11}}, Compute("DE AD BE EF", 80, 10))

	rows := Compute("DE AD", 1, 100)
	require.NotEmpty(t, rows)
	assert.Equal(t, 5, rows[len(rows)-1].End)
}

func TestComputeReservesScrollbarColumn(t *testing.T) {
	// Two rows at width 6 do not fit one line, so the text is wrapped at 5.
	rows := Compute("DE AD BE EF", 6, 1)
	assert.Equal(t, []Row{{0, 3, 3}, {3, 6, 3}, {6, 11, 5}}, rows)

	rows = Compute("DE AD BE EF", 6, 2)
	assert.Equal(t, []Row{{0, 6, 6}, {6, 11, 5}}, rows)
}

func TestComputePartitionsContent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for n := 0; n < 64; n++ {
		data := make([]byte, rng.Intn(200))
		rng.Read(data)
		text := hexcodec.Encode(data)

		for _, width := range []int{0, 1, 2, 3, 7, 16, 47, 200} {
			height := rng.Intn(20)
			rows := Compute(text, width, height)
			require.NotEmpty(t, rows)
			require.Equal(t, 0, rows[0].Start)

			for i := 1; i < len(rows); i++ {
				require.Equal(t, rows[i-1].End, rows[i].Start, "rows must be contiguous")
			}
			last := rows[len(rows)-1]
			require.Equal(t, len(text), last.End)
			for i, r := range rows {
				require.LessOrEqual(t, r.Start, r.End)
				if i < len(rows)-1 || r.Len() > 0 {
					require.Positive(t, r.Len(), "only the ghost row may be empty")
				}
				require.Equal(t, Width(text[r.Start:r.End]), r.Width)
			}
		}
	}
}

func TestRowAt(t *testing.T) {
	rows := []Row{{0, 3, 3}, {3, 6, 3}, {6, 6, 0}}
	assert.Equal(t, 0, RowAt(rows, 0))
	assert.Equal(t, 0, RowAt(rows, 2))
	assert.Equal(t, 1, RowAt(rows, 3))
	assert.Equal(t, 1, RowAt(rows, 5))
	assert.Equal(t, 2, RowAt(rows, 6))
}

func TestPrefix(t *testing.T) {
	assert.Equal(t, 0, Prefix("DE AD", 0))
	assert.Equal(t, 2, Prefix("DE AD", 2))
	assert.Equal(t, 5, Prefix("DE AD", 50))
	// A wide grapheme is taken whole.
	assert.Equal(t, len("ж世"), Prefix("ж世x", 2))
}

func TestTokenCount(t *testing.T) {
	assert.Equal(t, 2, TokenCount("DE AD "))
	assert.Equal(t, 0, TokenCount(""))
}

func TestCacheIsIdempotent(t *testing.T) {
	var c Cache
	text := "DE AD BE EF"

	first, hit := c.Rows(text, 6, 4)
	require.False(t, hit)
	second, hit := c.Rows(text, 6, 4)
	require.True(t, hit)
	assert.Equal(t, first, second)
	assert.Same(t, &first[0], &second[0])

	_, hit = c.Rows(text, 7, 4)
	assert.False(t, hit, "a new size recomputes")

	c.Invalidate()
	assert.False(t, c.Valid(7, 4))
	_, hit = c.Rows(text, 7, 4)
	assert.False(t, hit)
}

func TestCacheKeepsRowsThatStillFit(t *testing.T) {
	var c Cache
	text := "DE AD BE EF"

	// Two rows at width 6.
	first, _ := c.Rows(text, 6, 10)
	require.Len(t, first, 2)

	second, hit := c.Rows(text, 6, 2)
	assert.True(t, hit, "the rows fit the smaller height unchanged")
	assert.Same(t, &first[0], &second[0])

	_, hit = c.Rows(text, 6, 1)
	assert.False(t, hit, "overflowing rows are wrapped again")

	// Rows wrapped for a scrollbar are only valid for the height they were
	// computed for.
	assert.False(t, c.Valid(6, 10))
	assert.True(t, c.Valid(6, 1))
}
