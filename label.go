package aligntable

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Label is a text box measured with a font face. Its preferred width is the
// widest line and its preferred height is one line height per line.
type Label struct {
	Actor
	text  string
	face  font.Face
	align Align
}

// NewLabel creates a label using the 7x13 fixed-width face.
func NewLabel(name, text string) *Label {
	l := &Label{
		text: text,
		face: basicfont.Face7x13,
	}
	l.name = name
	return l
}

func (l *Label) Text() string { return l.text }

// SetText changes the text and invalidates the containing hierarchy.
func (l *Label) SetText(text string) {
	if l.text == text {
		return
	}
	l.text = text
	l.InvalidateHierarchy()
}

// Face returns the font face used for measuring.
func (l *Label) Face() font.Face { return l.face }

// SetFace changes the font face and invalidates the containing hierarchy.
func (l *Label) SetFace(face font.Face) {
	l.face = face
	l.InvalidateHierarchy()
}

// Alignment returns the alignment of the text within the label.
func (l *Label) Alignment() Align { return l.align }

// SetAlignment sets the alignment of the text within the label.
func (l *Label) SetAlignment(a Align) { l.align = a }

func (l *Label) lines() []string {
	return strings.Split(l.text, "\n")
}

func (l *Label) lineHeight() float64 {
	m := l.face.Metrics()
	return float64((m.Ascent + m.Descent).Ceil())
}

func (l *Label) PrefWidth() float64 {
	widest := 0
	for _, line := range l.lines() {
		if w := font.MeasureString(l.face, line).Ceil(); w > widest {
			widest = w
		}
	}
	return float64(widest)
}

func (l *Label) PrefHeight() float64 {
	return float64(len(l.lines())) * l.lineHeight()
}

func (l *Label) MinWidth() float64  { return l.PrefWidth() }
func (l *Label) MinHeight() float64 { return l.PrefHeight() }

// Invalidate is a no-op; the label measures itself on demand.
func (l *Label) Invalidate() {}

func (l *Label) InvalidateHierarchy() {
	if l.parent != nil {
		l.parent.InvalidateHierarchy()
	}
}

// Validate is a no-op; the label measures itself on demand.
func (l *Label) Validate() {}
