package layout

import "fmt"

// Horizontal specifies how a box is placed along the X axis.
type Horizontal uint8

const (
	Left   Horizontal = iota // Flush against the left edge
	Center                   // Centered horizontally
	Right                    // Flush against the right edge
)

func (h Horizontal) String() string {
	switch h {
	case Left:
		return "left"
	case Center:
		return "center"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Horizontal(%d)", uint8(h))
	}
}

// Vertical specifies how a box is placed along the Y axis.
type Vertical uint8

const (
	Top    Vertical = iota // Flush against the top edge
	Middle                 // Centered vertically
	Bottom                 // Flush against the bottom edge
)

func (v Vertical) String() string {
	switch v {
	case Top:
		return "top"
	case Middle:
		return "middle"
	case Bottom:
		return "bottom"
	default:
		return fmt.Sprintf("Vertical(%d)", uint8(v))
	}
}

// Align pairs a horizontal and a vertical alignment. It is a value type and
// is copied into tables, rows and cells; later changes to the source do not
// affect the copies.
type Align struct {
	Horizontal Horizontal
	Vertical   Vertical
}

// NewAlign creates an Align from its two components.
func NewAlign(h Horizontal, v Vertical) Align {
	return Align{Horizontal: h, Vertical: v}
}

func (a Align) String() string {
	return a.Horizontal.String() + "/" + a.Vertical.String()
}
