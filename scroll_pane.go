package aligntable

// boundsSetter is implemented by boxes that let a viewport place and size
// them in one call, bypassing their own SetSize.
type boundsSetter interface {
	SetBounds(x, y, width, height float64)
}

// ScrollPane is a viewport onto a single content box. The content is sized
// to at least the viewport and scrolled by an offset measured from the
// top-left corner.
type ScrollPane struct {
	Actor
	content     Box
	scrollX     float64
	scrollY     float64
	needsLayout bool
}

// NewScrollPane creates a scroll pane of the given viewport size.
func NewScrollPane(name string, width, height float64) *ScrollPane {
	sp := &ScrollPane{needsLayout: true}
	sp.name = name
	sp.width = width
	sp.height = height
	return sp
}

// SetContent replaces the scrolled content.
func (sp *ScrollPane) SetContent(b Box) {
	if sp.content != nil {
		sp.content.SetParent(nil)
	}
	if b != nil {
		if p := b.Parent(); p != nil {
			p.RemoveChild(b)
		}
		b.SetParent(sp)
	}
	sp.content = b
	sp.scrollX, sp.scrollY = 0, 0
	sp.InvalidateHierarchy()
}

// Content returns the scrolled content, or nil.
func (sp *ScrollPane) Content() Box { return sp.content }

// ScrollsContent reports true; tables inside a scroll pane defer their
// bounds to it.
func (sp *ScrollPane) ScrollsContent() bool { return true }

// RemoveChild detaches b if it is the content.
func (sp *ScrollPane) RemoveChild(b Box) bool {
	if b == nil || sp.content != b {
		return false
	}
	sp.content.SetParent(nil)
	sp.content = nil
	sp.InvalidateHierarchy()
	return true
}

// SetSize changes the viewport size.
func (sp *ScrollPane) SetSize(width, height float64) {
	if sp.width == width && sp.height == height {
		return
	}
	sp.Actor.SetSize(width, height)
	sp.Invalidate()
}

func (sp *ScrollPane) SetWidth(width float64)   { sp.SetSize(width, sp.height) }
func (sp *ScrollPane) SetHeight(height float64) { sp.SetSize(sp.width, height) }

// PrefWidth is the content's preferred width; the pane can be given less.
func (sp *ScrollPane) PrefWidth() float64  { return contentPrefWidth(sp.content) }
func (sp *ScrollPane) PrefHeight() float64 { return contentPrefHeight(sp.content) }
func (sp *ScrollPane) MinWidth() float64   { return 0 }
func (sp *ScrollPane) MinHeight() float64  { return 0 }

func (sp *ScrollPane) Invalidate() {
	sp.needsLayout = true
}

func (sp *ScrollPane) InvalidateHierarchy() {
	sp.needsLayout = true
	if sp.parent != nil {
		sp.parent.InvalidateHierarchy()
	}
}

// ScrollX returns the horizontal offset from the left edge.
func (sp *ScrollPane) ScrollX() float64 { return sp.scrollX }

// ScrollY returns the vertical offset from the top edge.
func (sp *ScrollPane) ScrollY() float64 { return sp.scrollY }

// MaxScrollX returns how far the content can scroll horizontally.
func (sp *ScrollPane) MaxScrollX() float64 {
	if sp.content == nil {
		return 0
	}
	return max(0, sp.content.Width()-sp.width)
}

// MaxScrollY returns how far the content can scroll vertically.
func (sp *ScrollPane) MaxScrollY() float64 {
	if sp.content == nil {
		return 0
	}
	return max(0, sp.content.Height()-sp.height)
}

// ScrollTo sets the scroll offset, clamped to the scrollable range, and
// repositions the content.
func (sp *ScrollPane) ScrollTo(x, y float64) {
	sp.scrollX = x
	sp.scrollY = y
	sp.clampScroll()
	sp.placeContent()
}

func (sp *ScrollPane) clampScroll() {
	sp.scrollX = min(max(sp.scrollX, 0), sp.MaxScrollX())
	sp.scrollY = min(max(sp.scrollY, 0), sp.MaxScrollY())
}

// Validate lays out the content and sizes it to at least the viewport.
func (sp *ScrollPane) Validate() {
	sz, sizeable := sp.content.(Sizeable)
	if !sp.needsLayout {
		if sizeable {
			sz.Validate()
		}
		return
	}
	if sp.content == nil {
		sp.needsLayout = false
		return
	}

	if sizeable {
		sz.Validate()
	}
	sp.placeContent()
	if sizeable {
		// Bounds may have changed the content size.
		sz.Validate()
	}
	sp.clampScroll()
	sp.needsLayout = false
}

// placeContent sizes the content to max(viewport, preferred) per axis and
// positions it so its top edge sits at the viewport top when not scrolled.
func (sp *ScrollPane) placeContent() {
	if sp.content == nil {
		return
	}
	width := Truncate(max(sp.width, contentPrefWidth(sp.content)))
	height := Truncate(max(sp.height, contentPrefHeight(sp.content)))
	x := -sp.scrollX
	y := sp.height - height + sp.scrollY

	if bs, ok := sp.content.(boundsSetter); ok {
		bs.SetBounds(x, y, width, height)
		return
	}
	sp.content.SetSize(width, height)
	sp.content.SetPosition(x, y)
}
