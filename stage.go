package aligntable

import "slices"

// Stage is the root of a box tree. It has a fixed size, no parent, and
// validates its visible children once per frame.
type Stage struct {
	width    float64
	height   float64
	children []Box
}

// NewStage creates a stage of the given size.
func NewStage(width, height float64) *Stage {
	return &Stage{width: width, height: height}
}

func (s *Stage) Width() float64  { return s.width }
func (s *Stage) Height() float64 { return s.height }

// Parent returns nil; the stage is always the root.
func (s *Stage) Parent() Parent { return nil }

// InvalidateHierarchy is a no-op; invalidation stops at the stage.
func (s *Stage) InvalidateHierarchy() {}

// Resize changes the stage size and invalidates every child so tables that
// align or fill against the stage lay out again.
func (s *Stage) Resize(width, height float64) {
	if s.width == width && s.height == height {
		return
	}
	s.width = width
	s.height = height
	for _, child := range s.children {
		if sz, ok := child.(Sizeable); ok {
			sz.Invalidate()
		}
	}
}

// AddActor adds b to the stage, detaching it from any previous parent.
func (s *Stage) AddActor(b Box) {
	if p := b.Parent(); p != nil {
		p.RemoveChild(b)
	}
	b.SetParent(s)
	s.children = append(s.children, b)
}

// RemoveChild detaches b from the stage.
func (s *Stage) RemoveChild(b Box) bool {
	i := slices.Index(s.children, b)
	if i < 0 {
		return false
	}
	s.children = slices.Delete(s.children, i, i+1)
	b.SetParent(nil)
	return true
}

// Children returns the stage's direct children.
func (s *Stage) Children() []Box {
	return s.children
}

// Validate lays out every visible child that needs it. Hosts call it once
// per frame, before reading positions.
func (s *Stage) Validate() {
	for _, child := range s.children {
		if !child.Visible() {
			continue
		}
		if sz, ok := child.(Sizeable); ok {
			sz.Validate()
		}
	}
}
