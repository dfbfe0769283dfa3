package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointSub(t *testing.T) {
	p, ok := Point{X: 12, Y: 5}.Sub(Point{X: 2, Y: 1})
	assert.True(t, ok)
	assert.Equal(t, Point{X: 10, Y: 4}, p)

	_, ok = Point{X: 1, Y: 5}.Sub(Point{X: 2, Y: 1})
	assert.False(t, ok)
}

func TestPointFits(t *testing.T) {
	size := Size{W: 10, H: 3}
	off := Point{X: 0, Y: 1}
	assert.True(t, Point{X: 0, Y: 1}.Fits(off, size))
	assert.True(t, Point{X: 9, Y: 3}.Fits(off, size))
	assert.False(t, Point{X: 10, Y: 3}.Fits(off, size))
	assert.False(t, Point{X: 3, Y: 0}.Fits(off, size))
	assert.False(t, Point{X: 3, Y: 4}.Fits(off, size))
}

func TestResult(t *testing.T) {
	assert.False(t, Ignored.Consumed)
	r := Consumed(nil)
	assert.True(t, r.Consumed)
	assert.Nil(t, r.Cmd)
}
