package hexarea

type Option func(a *HexArea)

// WithScroller replaces the default scroll.ScrollBase.
func WithScroller(s Scroller) Option {
	return func(a *HexArea) {
		a.scroll = s
	}
}

// WithPageRows sets how many rows PageUp and PageDown move the cursor.
func WithPageRows(n int) Option {
	return func(a *HexArea) {
		if n > 0 {
			a.pageRows = n
		}
	}
}

// WithWheelRows sets how many rows one mouse wheel notch scrolls.
func WithWheelRows(n int) Option {
	return func(a *HexArea) {
		if n > 0 {
			a.wheelRows = n
		}
	}
}
