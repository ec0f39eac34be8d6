package aligntable

import "slices"

// Row is a horizontal band of cells laid out left to right. Rows are
// created by a Table and own their cells.
type Row struct {
	cells []*Cell
	table *Table

	align Align
	pad   Padding

	fillWidth     bool
	fillHeight    bool
	fixedWidth    bool
	fixedHeight   bool
	equalCellSize bool

	// Cached sizes, padding excluded.
	prefWidth  float64
	prefHeight float64
	minWidth   float64
	minHeight  float64
	width      float64
	height     float64
}

func newRow() *Row {
	r := &Row{}
	r.Reset()
	return r
}

// Reset clears the row's flags, sizes, padding, alignment and cell list.
// The cells themselves are not disposed.
func (r *Row) Reset() {
	*r = Row{
		align: NewAlign(Left, Middle),
	}
}

func (r *Row) invalidate() {
	if r.table != nil {
		r.table.InvalidateHierarchy()
	}
}

func (r *Row) cellPool() Pool[*Cell] {
	if r.table != nil {
		return r.table.cellPool
	}
	return defaultCellPool
}

// add inserts cell at index and copies the row alignment into it.
func (r *Row) add(cell *Cell, index int) {
	r.cells = slices.Insert(r.cells, index, cell)
	cell.row = r
	cell.SetAlign(r.align.Horizontal, r.align.Vertical)
}

// removeActor drops every cell holding b and returns the cells to the pool.
func (r *Row) removeActor(b Box) bool {
	removed := false
	r.cells = slices.DeleteFunc(r.cells, func(c *Cell) bool {
		if !c.contains(b) {
			return false
		}
		c.actor = nil
		r.cellPool().Free(c)
		removed = true
		return true
	})
	return removed
}

// RemoveEmptyCells drops every cell without a child.
func (r *Row) RemoveEmptyCells() *Row {
	r.cells = slices.DeleteFunc(r.cells, func(c *Cell) bool {
		if !c.IsEmpty() {
			return false
		}
		r.cellPool().Free(c)
		return true
	})
	r.invalidate()
	return r
}

func (r *Row) dispose(disposeActors bool) {
	pool := r.cellPool()
	for _, c := range r.cells {
		c.Dispose(disposeActors)
		pool.Free(c)
	}
	r.cells = nil
}

// Cells returns the row's cells in layout order.
func (r *Row) Cells() []*Cell { return r.cells }

// CellCount returns the number of cells, visible or not.
func (r *Row) CellCount() int { return len(r.cells) }

// LastCell returns the last cell, or nil for an empty row.
func (r *Row) LastCell() *Cell {
	if len(r.cells) == 0 {
		return nil
	}
	return r.cells[len(r.cells)-1]
}

// Visible reports whether the row takes part in layout: it is empty, or at
// least one of its cells is visible.
func (r *Row) Visible() bool {
	if len(r.cells) == 0 {
		return true
	}
	for _, c := range r.cells {
		if c.Visible() {
			return true
		}
	}
	return false
}

func (r *Row) visibleCellCount() int {
	n := 0
	for _, c := range r.cells {
		if c.Visible() {
			n++
		}
	}
	return n
}

func (r *Row) hasVisibleFillCell() bool {
	for _, c := range r.cells {
		if c.Visible() && c.FillWidth() {
			return true
		}
	}
	return false
}

// fillsWidth reports whether the table should stretch the row to its full
// width: either the row asks for it, or a fill cell needs room to grow.
func (r *Row) fillsWidth() bool {
	return r.fillWidth || (!r.fixedWidth && r.hasVisibleFillCell())
}

// --- Alignment and padding ---

// Align returns the row alignment.
func (r *Row) Align() Align { return r.align }

// SetAlign sets the row alignment. Cells added afterwards copy it; existing
// cells keep theirs.
func (r *Row) SetAlign(h Horizontal, v Vertical) *Row {
	r.align = NewAlign(h, v)
	r.invalidate()
	return r
}

// SetAlignH sets only the horizontal alignment.
func (r *Row) SetAlignH(h Horizontal) *Row {
	return r.SetAlign(h, r.align.Vertical)
}

// SetAlignV sets only the vertical alignment.
func (r *Row) SetAlignV(v Vertical) *Row {
	return r.SetAlign(r.align.Horizontal, v)
}

// Pad returns the row padding.
func (r *Row) Pad() Padding { return r.pad }

// SetPad sets the space between the row edge and its cells.
func (r *Row) SetPad(p Padding) *Row {
	r.pad = p
	r.invalidate()
	return r
}

// SetPadAll sets the same padding on all four sides.
func (r *Row) SetPadAll(n float64) *Row {
	return r.SetPad(PadAll(n))
}

// --- Flags ---

func (r *Row) FillWidth() bool     { return r.fillWidth }
func (r *Row) FillHeight() bool    { return r.fillHeight }
func (r *Row) FixedWidth() bool    { return r.fixedWidth }
func (r *Row) FixedHeight() bool   { return r.fixedHeight }
func (r *Row) EqualCellSize() bool { return r.equalCellSize }

// SetFillWidth stretches the row to the table's width.
func (r *Row) SetFillWidth(fill bool) *Row {
	r.fillWidth = fill
	r.invalidate()
	return r
}

// SetFillHeight gives the row a share of the table's leftover height.
func (r *Row) SetFillHeight(fill bool) *Row {
	r.fillHeight = fill
	r.invalidate()
	return r
}

// SetFixedWidth keeps the row's width across layout passes.
func (r *Row) SetFixedWidth(fixed bool) *Row {
	r.fixedWidth = fixed
	r.invalidate()
	return r
}

// SetFixedHeight keeps the row's height across layout passes.
func (r *Row) SetFixedHeight(fixed bool) *Row {
	r.fixedHeight = fixed
	r.invalidate()
	return r
}

// SetEqualCellSize gives every cell the same width: the row is as wide as
// its widest cell times the number of cells.
func (r *Row) SetEqualCellSize(equal bool) *Row {
	r.equalCellSize = equal
	r.invalidate()
	return r
}

// SetWidth fixes the row's width, padding excluded.
func (r *Row) SetWidth(width float64) *Row {
	r.width = width
	r.fixedWidth = true
	r.invalidate()
	return r
}

// SetHeight fixes the row's height, padding excluded.
func (r *Row) SetHeight(height float64) *Row {
	r.height = height
	r.fixedHeight = true
	r.invalidate()
	return r
}

// --- Sizes, padding included ---

func (r *Row) PrefWidth() float64  { return r.prefWidth + r.pad.Horizontal() }
func (r *Row) PrefHeight() float64 { return r.prefHeight + r.pad.Vertical() }
func (r *Row) MinWidth() float64   { return r.minWidth + r.pad.Horizontal() }
func (r *Row) MinHeight() float64  { return r.minHeight + r.pad.Vertical() }
func (r *Row) Width() float64      { return r.width + r.pad.Horizontal() }
func (r *Row) Height() float64     { return r.height + r.pad.Vertical() }

// --- Layout passes ---

func (r *Row) calculatePreferredSize() {
	r.prefWidth, r.prefHeight = 0, 0
	r.minWidth, r.minHeight = 0, 0
	if !r.fixedWidth {
		r.width = 0
	}
	if !r.fixedHeight {
		r.height = 0
	}

	for _, c := range r.cells {
		if c.Visible() {
			c.calculatePreferredSize()
			r.addSize(c)
		}
	}

	if r.fixedWidth && r.minWidth < r.width {
		r.minWidth = r.width
	}
	if r.fixedHeight && r.minHeight < r.height {
		r.minHeight = r.height
	}
}

func (r *Row) addSize(c *Cell) {
	prefWidth, width := c.PrefWidth(), c.Width()
	prefHeight, height := c.PrefHeight(), c.Height()

	if r.equalCellSize {
		n := float64(len(r.cells))
		if prefWidth*n > r.prefWidth {
			r.prefWidth = prefWidth * n
			if !r.fixedWidth {
				r.width = width * n
			}
		}
		r.minWidth = max(r.minWidth, prefWidth*n)
	} else {
		r.prefWidth += prefWidth
		if !r.fixedWidth {
			r.width += width
		}
		r.minWidth += max(prefWidth, width)
	}

	r.prefHeight = max(r.prefHeight, prefHeight)
	r.minHeight = max(r.minHeight, prefHeight, height)
	if !r.fixedHeight {
		r.height = max(r.height, height)
	}
}

func (r *Row) calculateActualSize() {
	keepWidth := r.fillsWidth() || r.fixedWidth
	keepHeight := r.fillHeight || r.fixedHeight
	if !keepWidth {
		r.width = 0
	}
	if !keepHeight {
		r.height = 0
	}

	for _, c := range r.cells {
		if !c.Visible() {
			continue
		}
		c.calculateActualSize()
		if !keepWidth {
			r.width += c.Width()
		}
		if !keepHeight {
			r.height = max(r.height, c.Height())
		}
	}
}

// updateSize gives the row its final size, padding included, and hands
// each visible cell its share. Leftover width goes to fill cells in whole
// pixels; the last fill cell takes what the others leave.
func (r *Row) updateSize(width, height float64) {
	if !r.fixedWidth {
		r.width = width - r.pad.Horizontal()
	}
	if !r.fixedHeight {
		r.height = height - r.pad.Vertical()
	}

	visible := r.visibleCellCount()
	if r.equalCellSize && visible > 0 {
		cellWidth := r.width / float64(visible)
		for _, c := range r.cells {
			if c.Visible() {
				c.updateSize(cellWidth, r.height)
			}
		}
		return
	}

	cellWidthTotal := 0.0
	fillCells := 0
	for _, c := range r.cells {
		if c.Visible() {
			cellWidthTotal += c.Width()
			if c.FillWidth() {
				fillCells++
			}
		}
	}

	extra := r.width - cellWidthTotal
	for _, c := range r.cells {
		if !c.Visible() {
			continue
		}

		cellWidth := c.Width()
		if c.FillWidth() {
			share := Truncate(extra / float64(fillCells))
			if fillCells == 1 {
				share = extra
			}
			cellWidth += share
			extra -= share
			fillCells--
		}

		cellHeight := c.Height()
		if c.FillHeight() {
			cellHeight = r.height
		}

		c.updateSize(cellWidth, cellHeight)
	}
}

// layout positions the visible cells left to right inside the band that
// starts at start. Fill cells take priority over horizontal alignment.
func (r *Row) layout(start Point, available Size) {
	offset := start

	if r.hasVisibleFillCell() {
		offset.X += r.pad.Left
	} else {
		switch r.align.Horizontal {
		case Left:
			offset.X += r.pad.Left
		case Right:
			offset.X += r.pad.Left + available.Width - r.Width()
		case Center:
			offset.X += r.pad.Left + (available.Width-r.Width())*0.5
		}
	}

	switch r.align.Vertical {
	case Bottom:
		offset.Y = start.Y + r.pad.Bottom
	case Top:
		offset.Y = start.Y + available.Height - r.height - r.pad.Top
	case Middle:
		offset.Y = start.Y + r.pad.Bottom + (available.Height-r.Height())*0.5
	}

	for _, c := range r.cells {
		if !c.Visible() {
			continue
		}
		width := c.Width()
		c.layout(offset, Size{Width: width, Height: r.height})
		offset.X += width
	}
}
