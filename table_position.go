package aligntable

// AvailableWidth returns the content width the table may use: the max
// width if set, otherwise the width of the stage or viewport it sits in, or
// its own width with margin, minus margin and padding.
func (t *Table) AvailableWidth() float64 {
	if t.maxWidth > 0 {
		return t.maxWidth - t.pad.Horizontal()
	}

	var width float64
	switch p := t.parent; {
	case p == nil:
		width = t.WidthWithMargin()
	case p.Parent() == nil:
		width = p.Width()
	case t.inViewport():
		width = p.Width()
	default:
		width = t.WidthWithMargin()
	}
	return width - t.margin.Horizontal() - t.pad.Horizontal()
}

// AvailableHeight returns the content height the table may use.
func (t *Table) AvailableHeight() float64 {
	if t.maxHeight > 0 {
		return t.maxHeight - t.pad.Vertical()
	}

	var height float64
	switch p := t.parent; {
	case p == nil:
		height = t.HeightWithMargin()
	case p.Parent() == nil:
		height = p.Height()
	case t.inViewport():
		height = p.Height()
	default:
		height = t.HeightWithMargin()
	}
	return height - t.margin.Vertical() - t.pad.Vertical()
}

// alignPosition places the table within its available area according to
// the table alignment. It does nothing when the parent positions its
// children or the position is set manually. Fill rows pin the table to its
// margin. Center and middle split the available size evenly and ignore the
// margin. Inside a viewport only axes where the table is smaller than the
// viewport are aligned; the viewport scrolls the others.
func (t *Table) alignPosition() {
	if t.positionManual || (t.parent != nil && positionsChildren(t.parent)) {
		return
	}

	alignX, alignY := true, true
	if vp, ok := t.viewport(); ok {
		alignX = t.actualWidth+t.pad.Horizontal() < vp.Width()
		alignY = t.actualHeight+t.pad.Vertical() < vp.Height()
	}

	fillWidth, fillHeight := false, false
	for _, r := range t.rows {
		fillWidth = fillWidth || r.fillsWidth()
		fillHeight = fillHeight || r.FillHeight()
	}

	if alignX {
		t.x = Truncate(t.alignedX(fillWidth && !t.keepWidth))
	}
	if alignY {
		t.y = Truncate(t.alignedY(fillHeight && !t.keepHeight))
	}
}

func (t *Table) alignedX(fill bool) float64 {
	if fill {
		return t.margin.Left
	}

	available := t.AvailableWidth() + t.pad.Horizontal()
	actual := t.actualWidth + t.pad.Horizontal()

	switch t.tableAlign.Horizontal {
	case Right:
		return available - actual + t.margin.Left
	case Center:
		return available*0.5 - actual*0.5
	default:
		return t.margin.Left
	}
}

func (t *Table) alignedY(fill bool) float64 {
	if fill {
		return t.margin.Bottom
	}

	available := t.AvailableHeight() + t.pad.Vertical()
	actual := t.actualHeight + t.pad.Vertical()

	switch t.tableAlign.Vertical {
	case Top:
		return available - actual + t.margin.Bottom
	case Middle:
		return available*0.5 - actual*0.5
	default:
		return t.margin.Bottom
	}
}

// SetBounds is called by a viewport to place and size the table. The size
// is applied without invalidating the parent; along an axis where the table
// is smaller than the viewport the table keeps its own aligned position.
func (t *Table) SetBounds(x, y, width, height float64) {
	contentWidth := width - t.pad.Horizontal()
	contentHeight := height - t.pad.Vertical()
	if contentWidth != t.width || contentHeight != t.height {
		t.setWidthSilent(contentWidth)
		t.setHeightSilent(contentHeight)
		t.needsLayout = true
		t.validLayout = false
	}

	useX, useY := true, true
	if vp, ok := t.viewport(); ok && !t.positionManual {
		useX = t.actualWidth+t.pad.Horizontal() >= vp.Width()
		useY = t.actualHeight+t.pad.Vertical() >= vp.Height()
	}
	if !useX || !useY {
		t.alignPosition()
	}
	if useX {
		t.x = x
	}
	if useY {
		t.y = y
	}
}
