package aligntable

// Widget is a leaf box with a settable preferred and minimum size. It stands
// in for buttons, images and other host widgets.
type Widget struct {
	Actor
	prefWidth  float64
	prefHeight float64
	minWidth   float64
	minHeight  float64
	disposed   bool
}

// NewWidget creates a widget with the given preferred size. The minimum
// size defaults to the preferred size. The current size starts at zero and
// is set by the cell the widget is added to.
func NewWidget(name string, prefWidth, prefHeight float64) *Widget {
	w := &Widget{
		prefWidth:  prefWidth,
		prefHeight: prefHeight,
		minWidth:   prefWidth,
		minHeight:  prefHeight,
	}
	w.name = name
	return w
}

func (w *Widget) PrefWidth() float64  { return w.prefWidth }
func (w *Widget) PrefHeight() float64 { return w.prefHeight }
func (w *Widget) MinWidth() float64   { return w.minWidth }
func (w *Widget) MinHeight() float64  { return w.minHeight }

// SetPrefSize changes the preferred size and invalidates the containing
// hierarchy.
func (w *Widget) SetPrefSize(width, height float64) {
	if w.prefWidth == width && w.prefHeight == height {
		return
	}
	w.prefWidth = width
	w.prefHeight = height
	w.InvalidateHierarchy()
}

// SetMinSize changes the minimum size.
func (w *Widget) SetMinSize(width, height float64) {
	w.minWidth = width
	w.minHeight = height
}

// Invalidate is a no-op; a widget has no layout of its own.
func (w *Widget) Invalidate() {}

func (w *Widget) InvalidateHierarchy() {
	if w.parent != nil {
		w.parent.InvalidateHierarchy()
	}
}

// Validate is a no-op; a widget has no layout of its own.
func (w *Widget) Validate() {}

// Dispose marks the widget as disposed.
func (w *Widget) Dispose() {
	w.disposed = true
}

// Disposed reports whether Dispose has been called.
func (w *Widget) Disposed() bool {
	return w.disposed
}
