package aligntable

// Window holds a single content box. It sizes itself to the content's
// preferred size plus its own padding and positions the content itself, so
// a table inside a window does not align itself.
type Window struct {
	Actor
	content     Box
	pad         Padding
	needsLayout bool
}

// NewWindow creates an empty window.
func NewWindow(name string) *Window {
	w := &Window{needsLayout: true}
	w.name = name
	return w
}

// SetContent replaces the window content.
func (w *Window) SetContent(b Box) {
	if w.content != nil {
		w.content.SetParent(nil)
	}
	if b != nil {
		if p := b.Parent(); p != nil {
			p.RemoveChild(b)
		}
		b.SetParent(w)
	}
	w.content = b
	w.InvalidateHierarchy()
}

// Content returns the window content, or nil.
func (w *Window) Content() Box { return w.content }

// Pad returns the window padding.
func (w *Window) Pad() Padding { return w.pad }

// SetPad sets the space between the window edge and its content.
func (w *Window) SetPad(p Padding) {
	w.pad = p
	w.InvalidateHierarchy()
}

// PositionsChildren reports true; the window places its content.
func (w *Window) PositionsChildren() bool { return true }

// RemoveChild detaches b if it is the window content.
func (w *Window) RemoveChild(b Box) bool {
	if b == nil || w.content != b {
		return false
	}
	w.content.SetParent(nil)
	w.content = nil
	w.InvalidateHierarchy()
	return true
}

func (w *Window) PrefWidth() float64 {
	return contentPrefWidth(w.content) + w.pad.Horizontal()
}

func (w *Window) PrefHeight() float64 {
	return contentPrefHeight(w.content) + w.pad.Vertical()
}

func (w *Window) MinWidth() float64  { return w.PrefWidth() }
func (w *Window) MinHeight() float64 { return w.PrefHeight() }

func (w *Window) Invalidate() {
	w.needsLayout = true
}

func (w *Window) InvalidateHierarchy() {
	w.needsLayout = true
	if w.parent != nil {
		w.parent.InvalidateHierarchy()
	}
}

// Validate lays out the content, then wraps the window around it.
func (w *Window) Validate() {
	if !w.needsLayout {
		if sz, ok := w.content.(Sizeable); ok {
			sz.Validate()
		}
		return
	}
	w.needsLayout = false
	if w.content == nil {
		w.width = w.pad.Horizontal()
		w.height = w.pad.Vertical()
		return
	}

	sz, sizeable := w.content.(Sizeable)
	if _, nested := w.content.(container); sizeable && !nested {
		w.content.SetSize(Truncate(sz.PrefWidth()), Truncate(sz.PrefHeight()))
	}
	if sizeable {
		sz.Validate()
	}

	w.width = Truncate(w.content.Width() + w.pad.Horizontal())
	w.height = Truncate(w.content.Height() + w.pad.Vertical())
	w.content.SetPosition(w.pad.Left, w.pad.Bottom)
}

func contentPrefWidth(b Box) float64 {
	if b == nil {
		return 0
	}
	if sz, ok := b.(Sizeable); ok {
		return sz.PrefWidth()
	}
	return b.Width()
}

func contentPrefHeight(b Box) float64 {
	if b == nil {
		return 0
	}
	if sz, ok := b.(Sizeable); ok {
		return sz.PrefHeight()
	}
	return b.Height()
}
