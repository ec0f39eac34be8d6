package aligntable

import (
	"github.com/pkg/errors"

	"github.com/spiddekauga/aligntable/internal/debug"
)

// Cell holds at most one Box together with its alignment, padding and
// sizing flags. Cells are created by Table.Add and owned by a Row.
type Cell struct {
	actor Box
	row   *Row

	align Align
	pad   Padding

	fillWidth       bool
	fillHeight      bool
	fixedWidth      bool
	fixedHeight     bool
	boxShape        bool
	keepAspectRatio bool

	// Size of the child before box-shape or aspect correction.
	widthBeforeFill  float64
	heightBeforeFill float64

	// Size of the cell itself: for empty cells, and for cells that both
	// fill and are fixed along an axis.
	cellWidth  float64
	cellHeight float64

	aspectRatio float64
}

func newCell() *Cell {
	c := &Cell{}
	c.Reset()
	return c
}

// Reset clears every flag, the padding, the alignment and the child
// reference. It does not touch the child itself.
func (c *Cell) Reset() {
	*c = Cell{
		align:       NewAlign(Left, Middle),
		aspectRatio: 1,
	}
}

// Actor returns the cell's child, or nil for an empty cell.
func (c *Cell) Actor() Box { return c.actor }

// Row returns the row that owns the cell.
func (c *Cell) Row() *Row { return c.row }

// IsEmpty reports whether the cell has no child.
func (c *Cell) IsEmpty() bool { return c.actor == nil }

// Visible reports whether the cell takes part in layout. Empty cells are
// always visible.
func (c *Cell) Visible() bool {
	return c.actor == nil || c.actor.Visible()
}

// setActor assigns the child. A sizeable child with no current size along
// an axis is given its preferred size so it never shows at zero size.
func (c *Cell) setActor(b Box) *Cell {
	c.actor = b

	if sz, ok := b.(Sizeable); ok {
		if sz.Height() == 0 {
			sz.SetHeight(Truncate(sz.PrefHeight()))
		}
		if sz.Width() == 0 {
			sz.SetWidth(Truncate(sz.PrefWidth()))
		}
	}
	return c
}

func (c *Cell) contains(b Box) bool {
	return c.actor != nil && c.actor == b
}

func (c *Cell) invalidate() {
	if c.row != nil {
		c.row.invalidate()
	}
}

// --- Alignment and padding ---

// Align returns the cell alignment.
func (c *Cell) Align() Align { return c.align }

// SetAlign sets the cell alignment. A child that aligns its own content
// receives the same alignment.
func (c *Cell) SetAlign(h Horizontal, v Vertical) *Cell {
	c.align = NewAlign(h, v)
	if a, ok := c.actor.(Aligner); ok {
		a.SetAlignment(c.align)
	}
	c.invalidate()
	return c
}

// SetAlignH sets only the horizontal alignment.
func (c *Cell) SetAlignH(h Horizontal) *Cell {
	return c.SetAlign(h, c.align.Vertical)
}

// SetAlignV sets only the vertical alignment.
func (c *Cell) SetAlignV(v Vertical) *Cell {
	return c.SetAlign(c.align.Horizontal, v)
}

// Pad returns the cell padding.
func (c *Cell) Pad() Padding { return c.pad }

// SetPad sets the space between the cell edge and its child.
func (c *Cell) SetPad(p Padding) *Cell {
	c.pad = p
	c.invalidate()
	return c
}

// SetPadAll sets the same padding on all four sides.
func (c *Cell) SetPadAll(n float64) *Cell {
	return c.SetPad(PadAll(n))
}

// --- Sizing flags ---

func (c *Cell) FillWidth() bool       { return c.fillWidth }
func (c *Cell) FillHeight() bool      { return c.fillHeight }
func (c *Cell) FixedWidth() bool      { return c.fixedWidth }
func (c *Cell) FixedHeight() bool     { return c.fixedHeight }
func (c *Cell) BoxShaped() bool       { return c.boxShape }
func (c *Cell) KeepAspectRatio() bool { return c.keepAspectRatio }

// SetFillWidth makes the cell absorb the row's leftover width. Enabling it
// fails while fill height is combined with keep aspect ratio or box shape.
func (c *Cell) SetFillWidth(fill bool) error {
	if fill && c.fillHeight {
		switch {
		case c.keepAspectRatio:
			return rejected(errors.WithMessage(ErrIncompatibleFlags,
				"fill width cannot be used with both fill height and keep aspect ratio"))
		case c.boxShape:
			return rejected(errors.WithMessage(ErrIncompatibleFlags,
				"fill width cannot be used with both fill height and box shape"))
		}
	}

	c.fillWidth = fill
	if fill && c.actor != nil {
		c.widthBeforeFill = c.actor.Width()
	}
	c.invalidate()
	return nil
}

// SetFillHeight makes the cell fill the row height. Enabling it fails while
// fill width is combined with keep aspect ratio or box shape.
func (c *Cell) SetFillHeight(fill bool) error {
	if fill && c.fillWidth {
		switch {
		case c.keepAspectRatio:
			return rejected(errors.WithMessage(ErrIncompatibleFlags,
				"fill height cannot be used with both fill width and keep aspect ratio"))
		case c.boxShape:
			return rejected(errors.WithMessage(ErrIncompatibleFlags,
				"fill height cannot be used with both fill width and box shape"))
		}
	}

	c.fillHeight = fill
	if fill && c.actor != nil {
		c.heightBeforeFill = c.actor.Height()
	}
	c.invalidate()
	return nil
}

// SetBoxShaped forces the child to be square by growing its smaller side.
// Enabling it fails with keep aspect ratio or with both fill flags.
func (c *Cell) SetBoxShaped(boxShaped bool) error {
	if boxShaped {
		switch {
		case c.keepAspectRatio:
			return rejected(errors.WithMessage(ErrIncompatibleFlags,
				"box shape cannot be used with keep aspect ratio"))
		case c.fillWidth && c.fillHeight:
			return rejected(errors.WithMessage(ErrIncompatibleFlags,
				"box shape cannot be used with both fill width and fill height"))
		}
	}

	c.boxShape = boxShaped
	c.invalidate()
	return nil
}

// SetKeepAspectRatio keeps the child's preferred aspect ratio when it is
// resized. Enabling it fails with box shape or with both fill flags.
func (c *Cell) SetKeepAspectRatio(keep bool) error {
	if keep {
		switch {
		case c.boxShape:
			return rejected(errors.WithMessage(ErrIncompatibleFlags,
				"keep aspect ratio cannot be used with box shape"))
		case c.fillWidth && c.fillHeight:
			return rejected(errors.WithMessage(ErrIncompatibleFlags,
				"keep aspect ratio cannot be used with both fill width and fill height"))
		}
	}

	c.keepAspectRatio = keep
	c.invalidate()
	return nil
}

// SetFixedWidth locks the child's width to its current value. Combined
// with fill width, the cell grows while the child keeps its width.
func (c *Cell) SetFixedWidth(fixed bool) *Cell {
	c.fixedWidth = fixed
	c.invalidate()
	return c
}

// SetFixedHeight locks the child's height to its current value.
func (c *Cell) SetFixedHeight(fixed bool) *Cell {
	c.fixedHeight = fixed
	c.invalidate()
	return c
}

// SetWidth resizes the child and marks the width as fixed. A nested table
// keeps the new width. Use ResetWidth to go back to the preferred width.
func (c *Cell) SetWidth(width float64) *Cell {
	if c.actor == nil {
		return c
	}
	c.actor.SetWidth(Truncate(width))
	c.fixedWidth = true
	if ct, ok := c.actor.(container); ok {
		ct.setKeepWidth(true)
	}
	c.invalidate()
	return c
}

// SetHeight resizes the child and marks the height as fixed.
func (c *Cell) SetHeight(height float64) *Cell {
	if c.actor == nil {
		return c
	}
	c.actor.SetHeight(Truncate(height))
	c.fixedHeight = true
	if ct, ok := c.actor.(container); ok {
		ct.setKeepHeight(true)
	}
	c.invalidate()
	return c
}

// SetSize resizes the child and marks both axes as fixed.
func (c *Cell) SetSize(width, height float64) *Cell {
	c.SetWidth(width)
	return c.SetHeight(height)
}

// ResetWidth clears the fixed width and resizes the child to its
// preferred width.
func (c *Cell) ResetWidth() *Cell {
	c.fixedWidth = false
	if sz, ok := c.actor.(Sizeable); ok {
		if ct, ok := sz.(container); ok {
			ct.setKeepWidth(false)
		}
		sz.SetWidth(Truncate(sz.PrefWidth()))
	}
	c.invalidate()
	return c
}

// ResetHeight clears the fixed height and resizes the child to its
// preferred height.
func (c *Cell) ResetHeight() *Cell {
	c.fixedHeight = false
	if sz, ok := c.actor.(Sizeable); ok {
		if ct, ok := sz.(container); ok {
			ct.setKeepHeight(false)
		}
		sz.SetHeight(Truncate(sz.PrefHeight()))
	}
	c.invalidate()
	return c
}

// ResetSize clears both fixed flags.
func (c *Cell) ResetSize() *Cell {
	c.ResetHeight()
	return c.ResetWidth()
}

// --- Sizes ---

// PrefWidth returns the child's preferred width, or its current width when
// fixed, plus padding.
func (c *Cell) PrefWidth() float64 {
	switch sz := c.actor.(type) {
	case nil:
		return c.pad.Horizontal()
	case Sizeable:
		if c.fixedWidth {
			return sz.Width() + c.pad.Horizontal()
		}
		return sz.PrefWidth() + c.pad.Horizontal()
	default:
		return sz.Width() + c.pad.Horizontal()
	}
}

// PrefHeight returns the child's preferred height, or its current height
// when fixed, plus padding.
func (c *Cell) PrefHeight() float64 {
	switch sz := c.actor.(type) {
	case nil:
		return c.pad.Vertical()
	case Sizeable:
		if c.fixedHeight {
			return sz.Height() + c.pad.Vertical()
		}
		return sz.PrefHeight() + c.pad.Vertical()
	default:
		return sz.Height() + c.pad.Vertical()
	}
}

// Width returns the width the cell occupies in its row.
func (c *Cell) Width() float64 {
	switch {
	case c.actor == nil:
		return c.cellWidth + c.pad.Horizontal()
	case c.fillWidth && c.fixedWidth:
		return c.cellWidth
	}
	// Text can change size outside a layout pass; always report it fresh.
	if tb, ok := c.actor.(TextBox); ok && !c.fixedWidth && !c.fillWidth {
		return tb.PrefWidth() + c.pad.Horizontal()
	}
	return c.actor.Width() + c.pad.Horizontal()
}

// Height returns the height the cell occupies in its row.
func (c *Cell) Height() float64 {
	switch {
	case c.actor == nil:
		return c.cellHeight + c.pad.Vertical()
	case c.fillHeight && c.fixedHeight:
		return c.cellHeight
	}
	if tb, ok := c.actor.(TextBox); ok && !c.fixedHeight && !c.fillHeight {
		return tb.PrefHeight() + c.pad.Vertical()
	}
	return c.actor.Height() + c.pad.Vertical()
}

// --- Layout passes ---

func (c *Cell) calculatePreferredSize() {
	if c.actor == nil {
		return
	}

	ct, nested := c.actor.(container)
	switch {
	case nested:
		ct.calculatePreferredSize()
	default:
		if sz, ok := c.actor.(Sizeable); ok {
			sz.Validate()
		}
	}

	// Undo the previous squaring so the child is measured at its own size.
	if c.boxShape && !c.fillWidth && !c.fillHeight && !nested &&
		(c.widthBeforeFill != 0 || c.heightBeforeFill != 0) {
		c.actor.SetSize(Truncate(c.widthBeforeFill), Truncate(c.heightBeforeFill))
	}

	if c.keepAspectRatio {
		if sz, ok := c.actor.(Sizeable); ok && sz.PrefHeight() != 0 {
			c.aspectRatio = sz.PrefWidth() / sz.PrefHeight()
		} else if c.actor.Height() != 0 {
			c.aspectRatio = c.actor.Width() / c.actor.Height()
		}
	}
}

func (c *Cell) calculateActualSize() {
	if ct, ok := c.actor.(container); ok {
		ct.calculateActualSize()
	}
}

// updateSize gives the cell its final width and height, padding included.
// The child takes the full size minus padding along every axis that is not
// fixed, then box shape or aspect ratio corrects the result.
func (c *Cell) updateSize(width, height float64) {
	if c.actor == nil {
		c.cellWidth = width - c.pad.Horizontal()
		c.cellHeight = height - c.pad.Vertical()
		return
	}

	avail := NewRect(0, 0, width, height).Inset(c.pad).Size()

	actorWidth := avail.Width
	if c.fixedWidth {
		actorWidth = c.actor.Width()
	}
	actorHeight := avail.Height
	if c.fixedHeight {
		actorHeight = c.actor.Height()
	}

	// The cell is larger than its child.
	if c.fixedWidth && c.fillWidth {
		c.cellWidth = width
	}
	if c.fixedHeight && c.fillHeight {
		c.cellHeight = height
	}

	if ct, ok := c.actor.(container); ok {
		ct.updateSize(actorWidth, actorHeight)
		return
	}

	c.actor.SetSize(Truncate(actorWidth), Truncate(actorHeight))

	switch {
	case c.boxShape && !c.fillWidth && !c.fillHeight:
		c.widthBeforeFill = c.actor.Width()
		c.heightBeforeFill = c.actor.Height()

		if side := max(c.widthBeforeFill, c.heightBeforeFill); side != 0 {
			c.actor.SetSize(Truncate(side), Truncate(side))
		}

	case c.keepAspectRatio && c.aspectRatio != 0:
		c.widthBeforeFill = c.actor.Width()
		c.heightBeforeFill = c.actor.Height()

		correctWidth, correctHeight := actorWidth, actorHeight
		switch {
		case c.fillWidth:
			correctHeight = correctWidth / c.aspectRatio
		case c.fillHeight:
			correctWidth = c.aspectRatio * correctHeight
		case c.fixedWidth:
			correctHeight = c.actor.Width() / c.aspectRatio
		case c.fixedHeight:
			correctWidth = c.actor.Height() * c.aspectRatio
		}
		c.actor.SetSize(Truncate(correctWidth), Truncate(correctHeight))
	}
}

// layout positions the child inside the rectangle starting at start with
// the given size, honoring the cell alignment and padding.
func (c *Cell) layout(start Point, available Size) {
	if c.actor == nil {
		return
	}

	width := c.actor.Width()
	height := c.actor.Height()
	inner := NewRect(start.X, start.Y, available.Width, available.Height).Inset(c.pad)

	x := inner.X
	switch c.align.Horizontal {
	case Right:
		x = inner.Right() - width
	case Center:
		x += (inner.Width - width) * 0.5
	}

	y := inner.Y
	switch c.align.Vertical {
	case Top:
		y = inner.Top() - height
	case Middle:
		y += (inner.Height - height) * 0.5
	}

	c.actor.SetPosition(Truncate(x), Truncate(y))

	if ct, ok := c.actor.(container); ok {
		ct.Layout()
	}
}

// Dispose detaches the child from its parent. With disposeActor set, a
// nested table is disposed recursively and a Disposer child is disposed.
func (c *Cell) Dispose(disposeActor bool) {
	actor := c.actor
	if actor == nil {
		return
	}
	if p := actor.Parent(); p != nil {
		p.RemoveChild(actor)
	}
	c.actor = nil

	if !disposeActor {
		return
	}
	switch a := actor.(type) {
	case container:
		a.Dispose(true)
	case Disposer:
		a.Dispose()
	}
}

func rejected(err error) error {
	debug.Logger().Debug().Err(err).Msg("rejected cell flag")
	return err
}
