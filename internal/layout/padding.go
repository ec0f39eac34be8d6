package layout

// Padding represents spacing on the four sides of a box. It is used for
// cell, row and table padding as well as for table margins.
// Negative values are allowed and make neighbouring boxes overlap.
type Padding struct {
	Top, Right, Bottom, Left float64
}

// PadAll creates Padding with the same value on all sides.
func PadAll(n float64) Padding {
	return Padding{Top: n, Right: n, Bottom: n, Left: n}
}

// PadSymmetric creates Padding with vertical (top/bottom) and horizontal (left/right) values.
func PadSymmetric(v, h float64) Padding {
	return Padding{Top: v, Right: h, Bottom: v, Left: h}
}

// PadTRBL creates Padding in top, right, bottom, left order.
func PadTRBL(t, r, b, l float64) Padding {
	return Padding{Top: t, Right: r, Bottom: b, Left: l}
}

// Horizontal returns the sum of Left and Right.
func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

// Vertical returns the sum of Top and Bottom.
func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

// IsZero returns true if all sides are zero.
func (p Padding) IsZero() bool {
	return p.Top == 0 && p.Right == 0 && p.Bottom == 0 && p.Left == 0
}
