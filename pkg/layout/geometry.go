package layout

// Size holds container dimensions in layout units.
type Size struct {
	Width  int
	Height int
}

// Valid reports whether both dimensions are positive. Layout has no
// meaningful result inside a degenerate container, so Resolve rejects
// invalid sizes at the call boundary.
func (s Size) Valid() bool {
	return s.Width > 0 && s.Height > 0
}

// Rect is an axis-aligned rectangle in container coordinates. X and Y are
// the top-left corner; the Y axis grows downward.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() int { return r.X }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() int { return r.X + r.Width }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() int { return r.Y }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.Height }
