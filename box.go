package aligntable

// Box is a positionable, sizeable item that can be placed in a Cell.
// Positions are relative to the parent, Y-up.
type Box interface {
	Name() string
	X() float64
	Y() float64
	SetPosition(x, y float64)
	Width() float64
	Height() float64
	SetSize(width, height float64)
	SetWidth(width float64)
	SetHeight(height float64)
	Visible() bool
	SetVisible(visible bool)
	Parent() Parent
	SetParent(p Parent)
}

// Sizeable is a Box with a preferred and minimum size contract.
type Sizeable interface {
	Box
	PrefWidth() float64
	PrefHeight() float64
	MinWidth() float64
	MinHeight() float64
	// Invalidate marks the box as needing layout.
	Invalidate()
	// InvalidateHierarchy invalidates the box and every ancestor.
	InvalidateHierarchy()
	// Validate lays the box out if it is invalid.
	Validate()
}

// TextBox is a text label. Its preferred size follows its font metrics and
// can change outside a layout pass, so cells always ask for it fresh.
type TextBox interface {
	Sizeable
	Text() string
}

// Aligner is implemented by boxes that align their own content. A cell
// forwards its alignment to such a child.
type Aligner interface {
	SetAlignment(a Align)
}

// Disposer is implemented by boxes that release resources when their cell
// is disposed with disposeActors set.
type Disposer interface {
	Dispose()
}

// Parent is a box that holds other boxes.
type Parent interface {
	Width() float64
	Height() float64
	Parent() Parent
	InvalidateHierarchy()
	// RemoveChild detaches b and reports whether it was a child.
	RemoveChild(b Box) bool
}

// ChildPositioner is implemented by parents that position their children
// themselves. A table inside such a parent does not align itself.
type ChildPositioner interface {
	PositionsChildren() bool
}

// Viewport is a scrollable parent. A table inside a viewport reports its
// actual size as preferred size and lets the viewport set its bounds.
type Viewport interface {
	Parent
	ScrollsContent() bool
	Invalidate()
}

// container is the two-pass sub-contract of nested layout containers.
type container interface {
	Sizeable
	calculatePreferredSize()
	updateSize(width, height float64)
	calculateActualSize()
	Layout()
	setKeepWidth(keep bool)
	setKeepHeight(keep bool)
	Dispose(disposeActors bool)
}

// positionsChildren reports whether p lays out its own children.
func positionsChildren(p Parent) bool {
	cp, ok := p.(ChildPositioner)
	return ok && cp.PositionsChildren()
}

// asViewport returns p as a Viewport if it scrolls its content.
func asViewport(p Parent) (Viewport, bool) {
	vp, ok := p.(Viewport)
	if !ok || !vp.ScrollsContent() {
		return nil, false
	}
	return vp, true
}
