package aligntable

import "github.com/spiddekauga/aligntable/internal/debug"

// maxLayoutPasses bounds Validate when a layout pass invalidates the table
// again.
const maxLayoutPasses = 5

// --- Sizes ---

// Width returns the table width, padding included.
func (t *Table) Width() float64 { return t.width + t.pad.Horizontal() }

// Height returns the table height, padding included.
func (t *Table) Height() float64 { return t.height + t.pad.Vertical() }

// ContentWidth returns the table width without padding.
func (t *Table) ContentWidth() float64 { return t.width }

// ContentHeight returns the table height without padding.
func (t *Table) ContentHeight() float64 { return t.height }

// WidthWithMargin returns the table width, padding and margin included.
func (t *Table) WidthWithMargin() float64 { return t.Width() + t.margin.Horizontal() }

// HeightWithMargin returns the table height, padding and margin included.
func (t *Table) HeightWithMargin() float64 { return t.Height() + t.margin.Vertical() }

// PrefWidth returns the width the table wants. Inside a viewport it is the
// actual content width; with keep width or no preferred width it is the
// current width.
func (t *Table) PrefWidth() float64 {
	switch {
	case t.inViewport():
		return t.actualWidth + t.pad.Horizontal()
	case t.keepWidth || !t.hasPrefWidth:
		return t.Width()
	default:
		return t.prefWidth
	}
}

// PrefHeight returns the height the table wants.
func (t *Table) PrefHeight() float64 {
	switch {
	case t.inViewport():
		return t.actualHeight + t.pad.Vertical()
	case t.keepHeight || !t.hasPrefHeight:
		return t.Height()
	default:
		return t.prefHeight
	}
}

func (t *Table) MinWidth() float64  { return t.minWidth }
func (t *Table) MinHeight() float64 { return t.minHeight }

// SetSize resizes the table, padding included. It is ignored inside a
// viewport, which sets the bounds itself.
func (t *Table) SetSize(width, height float64) {
	if t.inViewport() {
		return
	}
	t.setContentSize(width-t.pad.Horizontal(), height-t.pad.Vertical())
}

func (t *Table) SetWidth(width float64) {
	if t.inViewport() {
		return
	}
	t.setContentSize(width-t.pad.Horizontal(), t.height)
}

func (t *Table) SetHeight(height float64) {
	if t.inViewport() {
		return
	}
	t.setContentSize(t.width, height-t.pad.Vertical())
}

func (t *Table) setContentSize(width, height float64) {
	if t.width == width && t.height == height {
		return
	}
	t.width = width
	t.height = height
	t.Invalidate()
}

// setWidthSilent and setHeightSilent resize without invalidating; the
// layout passes use them to fit the table to its content.
func (t *Table) setWidthSilent(width float64)   { t.width = width }
func (t *Table) setHeightSilent(height float64) { t.height = height }

func (t *Table) viewport() (Viewport, bool) {
	if t.parent == nil {
		return nil, false
	}
	return asViewport(t.parent)
}

func (t *Table) inViewport() bool {
	_, ok := t.viewport()
	return ok
}

// --- Invalidation ---

// Invalidate marks the table for a full layout: sizes and positions.
func (t *Table) Invalidate() {
	t.needsLayout = true
	t.validLayout = false
	t.validCellSizes = false
}

// InvalidateHierarchy invalidates the table and every ancestor.
func (t *Table) InvalidateHierarchy() {
	t.Invalidate()
	if t.parent != nil {
		t.parent.InvalidateHierarchy()
	}
}

// Validate lays the table out if needed. Inside a viewport any invalid
// layout triggers it. Hosts call it once per frame on root tables.
func (t *Table) Validate() {
	if !t.needsLayout && (t.validLayout || !t.inViewport()) {
		return
	}
	for i := 0; i < maxLayoutPasses; i++ {
		t.Layout()
		if !t.needsLayout {
			return
		}
	}
}

// --- Two-pass layout ---

// Layout recomputes sizes if they are invalid, then positions the table and
// every row. Rows are stacked from the bottom padding edge upward in
// reverse order, so the first row ends up at the top.
func (t *Table) Layout() {
	if !t.validCellSizes {
		t.calculatePreferredSize()
		t.updateSize(-1, -1)
		t.calculateActualSize()
	}

	rowWidthMax := t.width
	for _, r := range t.rows {
		if r.Visible() {
			rowWidthMax = max(rowWidthMax, r.Width())
		}
	}

	t.alignPosition()

	offset := Point{X: t.pad.Left, Y: t.pad.Bottom}
	for i := len(t.rows) - 1; i >= 0; i-- {
		r := t.rows[i]
		if !r.Visible() {
			continue
		}
		available := Size{Width: rowWidthMax, Height: r.Height()}
		r.layout(offset, available)
		offset.Y += available.Height
	}

	t.validLayout = true
	t.needsLayout = false

	debug.Logger().Debug().
		Str("table", t.name).
		Int("rows", len(t.rows)).
		Float64("pref_width", t.prefWidth).
		Float64("pref_height", t.prefHeight).
		Float64("width", t.Width()).
		Float64("height", t.Height()).
		Float64("x", t.x).
		Float64("y", t.y).
		Msg("layout")

	// The viewport sizes itself from our actual size; let it catch up.
	if vp, ok := t.viewport(); ok {
		vp.Invalidate()
	}
}

// calculatePreferredSize measures every visible row bottom-up. Unless the
// size is kept, the table is silently fitted to its content.
func (t *Table) calculatePreferredSize() {
	t.prefWidth, t.prefHeight = 0, 0
	t.minWidth, t.minHeight = 0, 0
	t.allotted = false

	width, height := 0.0, 0.0
	for _, r := range t.rows {
		if !r.Visible() {
			continue
		}
		r.calculatePreferredSize()

		t.prefHeight += r.PrefHeight()
		t.minHeight += r.MinHeight()
		height += r.Height()

		t.prefWidth = max(t.prefWidth, r.PrefWidth())
		t.minWidth = max(t.minWidth, r.MinWidth())
		width = max(width, r.Width())
	}

	t.prefWidth += t.pad.Horizontal() + t.margin.Horizontal()
	t.prefHeight += t.pad.Vertical() + t.margin.Vertical()
	t.minWidth += t.pad.Horizontal() + t.margin.Horizontal()
	t.minHeight += t.pad.Vertical() + t.margin.Vertical()

	if t.fillParentHeight && t.parent != nil {
		t.prefHeight = t.parent.Height()
		t.minHeight = t.parent.Height()
		height = t.parent.Height() - t.margin.Vertical() - t.pad.Vertical()
	}
	if t.fillParentWidth && t.parent != nil {
		t.prefWidth = t.parent.Width()
		t.minWidth = t.parent.Width()
		width = t.parent.Width() - t.margin.Horizontal() - t.pad.Horizontal()
	}

	if !t.keepWidth {
		t.setWidthSilent(width)
	}
	if !t.keepHeight {
		t.setHeightSilent(height)
	}
}

// updateSize distributes the given size, padding included and margin
// included, to the rows. -1 derives the size from the parent when filling
// it, the current size when keeping it, or the available size otherwise.
// Leftover height is split evenly among fill-height rows; fill-width rows
// get the full content width.
func (t *Table) updateSize(width, height float64) {
	rowHeightTotal := 0.0
	fillRows := 0
	for _, r := range t.rows {
		if r.Visible() {
			rowHeightTotal += r.Height()
			if r.FillHeight() {
				fillRows++
			}
		}
	}

	if width == -1 && height == -1 {
		width, height = t.derivedSize()
	} else {
		width -= t.margin.Horizontal()
		height -= t.margin.Vertical()
		t.allotted = true
		t.allotWidth = width - t.pad.Horizontal()
		t.allotHeight = height - t.pad.Vertical()
	}

	extraPerFillRow := 0.0
	if fillRows > 0 {
		extraPerFillRow = (height - t.pad.Vertical() - rowHeightTotal) / float64(fillRows)
	}

	for _, r := range t.rows {
		if !r.Visible() {
			continue
		}
		rowWidth := r.Width()
		if r.fillsWidth() {
			rowWidth = width - t.pad.Horizontal()
		}
		rowHeight := r.Height()
		if r.FillHeight() {
			rowHeight += extraPerFillRow
		}
		r.updateSize(rowWidth, rowHeight)
	}

	if !t.keepWidth {
		t.setWidthSilent(width - t.pad.Horizontal())
	}
	if !t.keepHeight && fillRows > 0 {
		t.setHeightSilent(height - t.pad.Vertical())
	}
}

// derivedSize returns the outer size, margin excluded, the table lays out
// in when no parent cell gives it one.
func (t *Table) derivedSize() (width, height float64) {
	switch {
	case t.fillParentWidth && t.parent != nil:
		width = t.parent.Width() - t.margin.Horizontal()
	case t.keepWidth:
		width = t.Width()
	default:
		width = t.AvailableWidth() + t.pad.Horizontal()
	}

	switch {
	case t.fillParentHeight && t.parent != nil:
		height = t.parent.Height() - t.margin.Vertical()
	case t.keepHeight:
		height = t.Height()
	default:
		height = t.AvailableHeight() + t.pad.Vertical()
	}
	return width, height
}

// calculateActualSize sums the rows' final sizes into the table's actual
// size. A table given room by its cell grows to fill it.
func (t *Table) calculateActualSize() {
	width, height := 0.0, 0.0
	for _, r := range t.rows {
		if !r.Visible() {
			continue
		}
		r.calculateActualSize()
		height += r.Height()
		width = max(width, r.Width())
	}

	if t.allotted {
		width = max(width, t.allotWidth)
		height = max(height, t.allotHeight)
	}

	if t.fillParentHeight && t.parent != nil {
		height = t.parent.Height() - t.margin.Vertical() - t.pad.Vertical()
	}
	if t.fillParentWidth && t.parent != nil {
		width = t.parent.Width() - t.margin.Horizontal() - t.pad.Horizontal()
	}
	t.actualWidth = width
	t.actualHeight = height

	if !t.keepWidth {
		t.setWidthSilent(width)
	}
	if !t.keepHeight {
		t.setHeightSilent(height)
	}
	t.validCellSizes = true
}
