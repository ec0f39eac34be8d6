package aligntable

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Dump writes an indented description of each box tree to w: type, name,
// position and size. Tables are expanded row by row, cell by cell.
func Dump(w io.Writer, boxes ...Box) error {
	var sb strings.Builder
	for _, b := range boxes {
		dumpBox(&sb, b, 0)
	}
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return errors.Wrap(err, "write dump")
	}
	return nil
}

// DumpStage writes every child of the stage.
func DumpStage(w io.Writer, s *Stage) error {
	return Dump(w, s.Children()...)
}

func dumpBox(sb *strings.Builder, b Box, depth int) {
	indent(sb, depth)
	fmt.Fprintf(sb, "%s %q %s", boxKind(b), b.Name(), geometry(b))
	if t, ok := b.(*Table); ok {
		sb.WriteString(padding(t.pad))
	}
	if !b.Visible() {
		sb.WriteString(" hidden")
	}
	sb.WriteByte('\n')

	switch v := b.(type) {
	case *Table:
		dumpTable(sb, v, depth+1)
	case *Window:
		if c := v.Content(); c != nil {
			dumpBox(sb, c, depth+1)
		}
	case *ScrollPane:
		if c := v.Content(); c != nil {
			dumpBox(sb, c, depth+1)
		}
	}
}

func dumpTable(sb *strings.Builder, t *Table, depth int) {
	for i, r := range t.rows {
		indent(sb, depth)
		fmt.Fprintf(sb, "row %d w=%g h=%g align=%s%s%s\n", i, r.Width(), r.Height(), r.align, padding(r.pad), rowFlags(r))

		for j, c := range r.cells {
			indent(sb, depth+1)
			fmt.Fprintf(sb, "cell %d w=%g h=%g%s%s\n", j, c.Width(), c.Height(), padding(c.pad), cellFlags(c))
			if c.actor != nil {
				dumpBox(sb, c.actor, depth+2)
			}
		}
	}
}

func boxKind(b Box) string {
	switch v := b.(type) {
	case *Table:
		return "Table"
	case *Window:
		return "Window"
	case *ScrollPane:
		return "ScrollPane"
	case *Label:
		return fmt.Sprintf("Label[%q]", v.Text())
	case *Widget:
		return "Widget"
	default:
		return fmt.Sprintf("%T", b)
	}
}

func geometry(b Box) string {
	return fmt.Sprintf("x=%g y=%g w=%g h=%g", b.X(), b.Y(), b.Width(), b.Height())
}

// padding formats p in top, right, bottom, left order, or returns an
// empty string when every side is zero.
func padding(p Padding) string {
	if p.IsZero() {
		return ""
	}
	return fmt.Sprintf(" pad=%g,%g,%g,%g", p.Top, p.Right, p.Bottom, p.Left)
}

func rowFlags(r *Row) string {
	return flags(map[string]bool{
		"fill-width":   r.fillWidth,
		"fill-height":  r.fillHeight,
		"fixed-width":  r.fixedWidth,
		"fixed-height": r.fixedHeight,
		"equal":        r.equalCellSize,
	})
}

func cellFlags(c *Cell) string {
	return flags(map[string]bool{
		"fill-width":   c.fillWidth,
		"fill-height":  c.fillHeight,
		"fixed-width":  c.fixedWidth,
		"fixed-height": c.fixedHeight,
		"box":          c.boxShape,
		"aspect":       c.keepAspectRatio,
	})
}

var flagOrder = []string{"fill-width", "fill-height", "fixed-width", "fixed-height", "box", "aspect", "equal"}

func flags(set map[string]bool) string {
	var sb strings.Builder
	for _, name := range flagOrder {
		if set[name] {
			sb.WriteByte(' ')
			sb.WriteString(name)
		}
	}
	return sb.String()
}

func indent(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
}
