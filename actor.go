package aligntable

// Actor is the embeddable base of every box: a name, a position relative to
// the parent, a size, a visibility flag and a parent link.
type Actor struct {
	name   string
	x, y   float64
	width  float64
	height float64
	hidden bool
	parent Parent
}

// Name returns the actor's name, used in dumps and debug logs.
func (a *Actor) Name() string { return a.name }

// SetName sets the actor's name.
func (a *Actor) SetName(name string) { a.name = name }

func (a *Actor) X() float64 { return a.x }
func (a *Actor) Y() float64 { return a.y }

// SetPosition moves the actor. Positions are relative to the parent.
func (a *Actor) SetPosition(x, y float64) {
	a.x = x
	a.y = y
}

func (a *Actor) Width() float64  { return a.width }
func (a *Actor) Height() float64 { return a.height }

func (a *Actor) SetSize(width, height float64) {
	a.width = width
	a.height = height
}

func (a *Actor) SetWidth(width float64)   { a.width = width }
func (a *Actor) SetHeight(height float64) { a.height = height }

// Bounds returns the actor's rectangle in parent coordinates.
func (a *Actor) Bounds() Rect {
	return NewRect(a.x, a.y, a.width, a.height)
}

func (a *Actor) Visible() bool { return !a.hidden }

// SetVisible shows or hides the actor. A change invalidates the parent
// hierarchy so containers drop the actor from their next layout.
func (a *Actor) SetVisible(visible bool) {
	if a.hidden == !visible {
		return
	}
	a.hidden = !visible
	if a.parent != nil {
		a.parent.InvalidateHierarchy()
	}
}

func (a *Actor) Parent() Parent { return a.parent }

// SetParent sets the parent link. It does not add the actor to the parent;
// containers call it when a child is added or removed.
func (a *Actor) SetParent(p Parent) { a.parent = p }

// Remove detaches b from its parent, if any.
func Remove(b Box) bool {
	p := b.Parent()
	if p == nil {
		return false
	}
	return p.RemoveChild(b)
}
