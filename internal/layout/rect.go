package layout

// Rect represents a rectangle in Y-up coordinates.
// X and Y are the bottom-left corner; Width and Height are dimensions.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() float64 {
	return r.X + r.Width
}

// Top returns the y-coordinate of the top edge (exclusive).
func (r Rect) Top() float64 {
	return r.Y + r.Height
}

// Size returns the dimensions of the rectangle.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Inset returns a new Rect shrunk by the given Padding.
// Negative values expand the rectangle.
func (r Rect) Inset(p Padding) Rect {
	return Rect{
		X:      r.X + p.Left,
		Y:      r.Y + p.Bottom,
		Width:  r.Width - p.Left - p.Right,
		Height: r.Height - p.Top - p.Bottom,
	}
}
