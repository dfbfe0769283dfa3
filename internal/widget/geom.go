package widget

type Point struct {
	X int
	Y int
}

// Sub subtracts o and reports whether the result stayed non-negative.
func (p Point) Sub(o Point) (Point, bool) {
	if p.X < o.X || p.Y < o.Y {
		return Point{}, false
	}
	return Point{X: p.X - o.X, Y: p.Y - o.Y}, true
}

// Fits reports whether p lies inside the rectangle of the given size placed
// at offset.
func (p Point) Fits(offset Point, size Size) bool {
	q, ok := p.Sub(offset)
	return ok && q.X < size.W && q.Y < size.H
}

type Size struct {
	W int
	H int
}

type Rect struct {
	Pos  Point
	Size Size
}
