// layout.go re-exports geometry types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package aligntable

import "github.com/spiddekauga/aligntable/internal/layout"

// Horizontal specifies how a box is placed along the X axis.
type Horizontal = layout.Horizontal

const (
	Left   = layout.Left
	Center = layout.Center
	Right  = layout.Right
)

// Vertical specifies how a box is placed along the Y axis.
type Vertical = layout.Vertical

const (
	Top    = layout.Top
	Middle = layout.Middle
	Bottom = layout.Bottom
)

// Align pairs a horizontal and a vertical alignment.
type Align = layout.Align

// Padding represents spacing on four sides. It is used both for padding and
// for table margins.
type Padding = layout.Padding

// Rect represents a rectangle in Y-up coordinates.
type Rect = layout.Rect

// Size represents a width/height pair.
type Size = layout.Size

// Point represents an x/y coordinate.
type Point = layout.Point

// NewAlign creates an Align from its two components.
func NewAlign(h Horizontal, v Vertical) Align {
	return layout.NewAlign(h, v)
}

// PadAll creates Padding with the same value on all sides.
func PadAll(n float64) Padding {
	return layout.PadAll(n)
}

// PadSymmetric creates Padding with vertical (top/bottom) and horizontal (left/right) values.
func PadSymmetric(v, h float64) Padding {
	return layout.PadSymmetric(v, h)
}

// PadTRBL creates Padding following CSS order: Top, Right, Bottom, Left.
func PadTRBL(t, r, b, l float64) Padding {
	return layout.PadTRBL(t, r, b, l)
}

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return layout.NewRect(x, y, width, height)
}

// Truncate drops the fractional part of v, rounding toward zero.
func Truncate(v float64) float64 {
	return layout.Truncate(v)
}
