package aligntable

import (
	"slices"

	"github.com/pkg/errors"
)

// Table stacks rows top to bottom and lays them out in two passes. A table
// is itself a Box, so it can be the child of another table's cell.
//
// The embedded Actor holds the content size, padding excluded. Width and
// Height include padding; preferred and minimum sizes include padding and
// margin.
type Table struct {
	Actor

	rows    []*Row
	lastRow *Row

	tableAlign Align
	rowAlign   Align
	cellPad    Padding
	rowPad     Padding
	pad        Padding
	margin     Padding

	prefWidth    float64
	prefHeight   float64
	minWidth     float64
	minHeight    float64
	actualWidth  float64
	actualHeight float64
	maxWidth     float64
	maxHeight    float64

	// Content size handed down by a parent cell in the current pass.
	allotted    bool
	allotWidth  float64
	allotHeight float64

	keepWidth        bool
	keepHeight       bool
	hasPrefWidth     bool
	hasPrefHeight    bool
	positionManual   bool
	fillParentWidth  bool
	fillParentHeight bool

	validCellSizes bool
	validLayout    bool
	needsLayout    bool
	disposing      bool

	cellPool Pool[*Cell]
	rowPool  Pool[*Row]

	onVisibilityChange func(visible bool)
}

// New creates an empty table. The first row is created on the first Add.
func New(opts ...Option) *Table {
	t := &Table{
		hasPrefWidth:  true,
		hasPrefHeight: true,
		needsLayout:   true,
		cellPool:      defaultCellPool,
		rowPool:       defaultRowPool,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// --- Tree building ---

// Add appends b to the last row, creating the first row if needed.
func (t *Table) Add(b Box) *Cell {
	index := 0
	if t.lastRow != nil {
		index = t.lastRow.CellCount()
	}
	c, _ := t.AddAt(index, b)
	return c
}

// AddAt inserts b at index in the last row. The index must be within
// [0, cell count]; an out of range index leaves the table untouched.
func (t *Table) AddAt(index int, b Box) (*Cell, error) {
	n := 0
	if t.lastRow != nil {
		n = t.lastRow.CellCount()
	}
	if index < 0 || index > n {
		return nil, errors.WithMessagef(ErrIndexOutOfRange, "cell index %d outside [0,%d]", index, n)
	}

	if t.lastRow == nil {
		t.AddRow()
	}

	c := t.create(b)
	t.lastRow.add(c, index)
	t.InvalidateHierarchy()
	return c, nil
}

// AddEmpty appends an empty cell, useful as a spacer.
func (t *Table) AddEmpty() *Cell {
	return t.Add(nil)
}

// AddEmptyCells appends n empty cells.
func (t *Table) AddEmptyCells(n int) []*Cell {
	cells := make([]*Cell, 0, n)
	for i := 0; i < n; i++ {
		cells = append(cells, t.AddEmpty())
	}
	return cells
}

func (t *Table) create(b Box) *Cell {
	c := t.cellPool.Obtain()
	c.pad = t.cellPad

	if b != nil {
		if p := b.Parent(); p != nil && p != Parent(t) {
			p.RemoveChild(b)
		}
		b.SetParent(t)
		if sz, ok := b.(Sizeable); ok {
			sz.Invalidate()
		}
	}
	return c.setActor(b)
}

// AddRow appends a row with the table's default row alignment. Later adds
// go to this row.
func (t *Table) AddRow() *Row {
	return t.insertRow(len(t.rows), t.rowAlign)
}

// AddRowAligned appends a row with the given alignment.
func (t *Table) AddRowAligned(h Horizontal, v Vertical) *Row {
	return t.insertRow(len(t.rows), NewAlign(h, v))
}

// InsertRow inserts a row at index with the default row alignment. Later
// adds go to this row.
func (t *Table) InsertRow(index int) (*Row, error) {
	return t.InsertRowAligned(index, t.rowAlign.Horizontal, t.rowAlign.Vertical)
}

// InsertRowAligned inserts a row at index with the given alignment.
func (t *Table) InsertRowAligned(index int, h Horizontal, v Vertical) (*Row, error) {
	if index < 0 || index > len(t.rows) {
		return nil, errors.WithMessagef(ErrIndexOutOfRange, "row index %d outside [0,%d]", index, len(t.rows))
	}
	return t.insertRow(index, NewAlign(h, v)), nil
}

func (t *Table) insertRow(index int, align Align) *Row {
	r := t.rowPool.Obtain()
	r.table = t
	r.align = align
	r.pad = t.rowPad

	t.rows = slices.Insert(t.rows, index, r)
	t.lastRow = r
	t.InvalidateHierarchy()
	return r
}

// MoveRow moves the row at from so it ends up before the row currently at
// to. A to equal to the row count moves the row last.
func (t *Table) MoveRow(from, to int) error {
	if from < 0 || from >= len(t.rows) {
		return errors.WithMessagef(ErrIndexOutOfRange, "row index %d outside [0,%d)", from, len(t.rows))
	}
	if to < 0 || to > len(t.rows) {
		return errors.WithMessagef(ErrIndexOutOfRange, "row index %d outside [0,%d]", to, len(t.rows))
	}
	if to > from {
		to--
	}

	r := t.rows[from]
	t.rows = slices.Delete(t.rows, from, from+1)
	t.rows = slices.Insert(t.rows, to, r)
	t.InvalidateHierarchy()
	return nil
}

// MoveRowToTop moves the row at index first.
func (t *Table) MoveRowToTop(index int) error {
	return t.MoveRow(index, 0)
}

// MoveRowToBottom moves the row at index last.
func (t *Table) MoveRowToBottom(index int) error {
	return t.MoveRow(index, len(t.rows))
}

// RemoveRow removes r and disposes its cells. With disposeActors set the
// cells' children are disposed too.
func (t *Table) RemoveRow(r *Row, disposeActors bool) {
	i := slices.Index(t.rows, r)
	if i < 0 {
		return
	}
	t.rows = slices.Delete(t.rows, i, i+1)

	t.disposing = true
	r.dispose(disposeActors)
	t.disposing = false

	if t.lastRow == r {
		t.lastRow = nil
		if len(t.rows) > 0 {
			t.lastRow = t.rows[len(t.rows)-1]
		}
	}
	t.rowPool.Free(r)
	t.InvalidateHierarchy()
}

// RemoveChild removes the cell holding b. Rows left without cells are
// removed as well.
func (t *Table) RemoveChild(b Box) bool {
	if b == nil || b.Parent() != Parent(t) {
		return false
	}
	b.SetParent(nil)
	if t.disposing {
		return true
	}

	t.rows = slices.DeleteFunc(t.rows, func(r *Row) bool {
		if !r.removeActor(b) || r.CellCount() > 0 {
			return false
		}
		if t.lastRow == r {
			t.lastRow = nil
		}
		t.rowPool.Free(r)
		return true
	})
	if t.lastRow == nil && len(t.rows) > 0 {
		t.lastRow = t.rows[len(t.rows)-1]
	}
	t.InvalidateHierarchy()
	return true
}

// Dispose frees every row and cell back to the pools. With disposeActors
// set, nested tables and Disposer children are disposed too.
func (t *Table) Dispose(disposeActors bool) {
	t.disposing = true
	for _, r := range t.rows {
		r.dispose(disposeActors)
		t.rowPool.Free(r)
	}
	t.rows = nil
	t.lastRow = nil
	t.disposing = false
	t.Invalidate()
}

// SetPreferences copies default paddings and alignments from other.
func (t *Table) SetPreferences(other *Table) *Table {
	t.cellPad = other.cellPad
	t.rowPad = other.rowPad
	t.tableAlign = other.tableAlign
	t.rowAlign = other.rowAlign
	return t
}

// Defaults returns the table's alignment and padding defaults.
func (t *Table) Defaults() Defaults {
	return Defaults{
		TableAlign: t.tableAlign,
		RowAlign:   t.rowAlign,
		CellPad:    t.cellPad,
		RowPad:     t.rowPad,
	}
}

// --- Alignment, padding and margin ---

// SetAlign sets both the table alignment and the default row alignment.
func (t *Table) SetAlign(h Horizontal, v Vertical) *Table {
	t.SetRowAlign(h, v)
	return t.SetTableAlign(h, v)
}

// TableAlign returns how the table places itself in its available area.
func (t *Table) TableAlign() Align { return t.tableAlign }

// SetTableAlign sets how the table places itself in its available area.
func (t *Table) SetTableAlign(h Horizontal, v Vertical) *Table {
	t.tableAlign = NewAlign(h, v)
	t.Invalidate()
	return t
}

// RowAlign returns the alignment copied into new rows.
func (t *Table) RowAlign() Align { return t.rowAlign }

// SetRowAlign sets the alignment copied into new rows. Existing rows keep
// theirs.
func (t *Table) SetRowAlign(h Horizontal, v Vertical) *Table {
	t.rowAlign = NewAlign(h, v)
	return t
}

// SetCellPaddingDefault sets the padding copied into new cells.
func (t *Table) SetCellPaddingDefault(p Padding) *Table {
	t.cellPad = p
	return t
}

// SetRowPaddingDefault sets the padding copied into new rows.
func (t *Table) SetRowPaddingDefault(p Padding) *Table {
	t.rowPad = p
	return t
}

// Pad returns the table padding.
func (t *Table) Pad() Padding { return t.pad }

// SetPad sets the space between the table edge and its rows.
func (t *Table) SetPad(p Padding) *Table {
	t.pad = p
	t.InvalidateHierarchy()
	return t
}

// SetPadAll sets the same padding on all four sides.
func (t *Table) SetPadAll(n float64) *Table {
	return t.SetPad(PadAll(n))
}

// Margin returns the table margin.
func (t *Table) Margin() Padding { return t.margin }

// SetMargin sets the space kept free around the table.
func (t *Table) SetMargin(m Padding) *Table {
	t.margin = m
	t.InvalidateHierarchy()
	return t
}

// SetMarginAll sets the same margin on all four sides.
func (t *Table) SetMarginAll(n float64) *Table {
	return t.SetMargin(PadAll(n))
}

// --- Size flags ---

// SetKeepSize keeps the current size instead of sizing to content.
func (t *Table) SetKeepSize(keep bool) *Table {
	t.setKeepWidth(keep)
	t.setKeepHeight(keep)
	t.Invalidate()
	return t
}

// SetKeepWidth keeps the current width instead of sizing to content.
func (t *Table) SetKeepWidth(keep bool) *Table {
	t.setKeepWidth(keep)
	t.Invalidate()
	return t
}

// SetKeepHeight keeps the current height instead of sizing to content.
func (t *Table) SetKeepHeight(keep bool) *Table {
	t.setKeepHeight(keep)
	t.Invalidate()
	return t
}

func (t *Table) setKeepWidth(keep bool)  { t.keepWidth = keep }
func (t *Table) setKeepHeight(keep bool) { t.keepHeight = keep }

func (t *Table) KeepWidth() bool  { return t.keepWidth }
func (t *Table) KeepHeight() bool { return t.keepHeight }

// SetHasPreferredWidth controls whether PrefWidth reports the content
// width. When false it reports the current width.
func (t *Table) SetHasPreferredWidth(has bool) *Table {
	t.hasPrefWidth = has
	t.InvalidateHierarchy()
	return t
}

// SetHasPreferredHeight controls whether PrefHeight reports the content
// height. When false it reports the current height.
func (t *Table) SetHasPreferredHeight(has bool) *Table {
	t.hasPrefHeight = has
	t.InvalidateHierarchy()
	return t
}

// SetPositionManually stops the table from aligning itself.
func (t *Table) SetPositionManually(manual bool) *Table {
	t.positionManual = manual
	return t
}

// PositionSetManually reports whether the table skips self-alignment.
func (t *Table) PositionSetManually() bool { return t.positionManual }

// SetFillParent sizes the table to its parent on both axes.
func (t *Table) SetFillParent(fill bool) *Table {
	t.fillParentWidth = fill
	t.fillParentHeight = fill
	t.Invalidate()
	return t
}

// SetFillParentWidth sizes the table to its parent's width, overriding
// the preferred, minimum and current width.
func (t *Table) SetFillParentWidth(fill bool) *Table {
	t.fillParentWidth = fill
	t.Invalidate()
	return t
}

// SetFillParentHeight sizes the table to its parent's height, overriding
// the preferred, minimum and current height.
func (t *Table) SetFillParentHeight(fill bool) *Table {
	t.fillParentHeight = fill
	t.Invalidate()
	return t
}

// SetMaxWidth caps the width available to the table. Zero removes the cap.
func (t *Table) SetMaxWidth(width float64) *Table {
	t.maxWidth = width
	t.Invalidate()
	return t
}

// SetMaxHeight caps the height available to the table. Zero removes the cap.
func (t *Table) SetMaxHeight(height float64) *Table {
	t.maxHeight = height
	t.Invalidate()
	return t
}

// --- Queries ---

// Rows returns the rows in insertion order; the first row is laid out at
// the top.
func (t *Table) Rows() []*Row { return t.rows }

// RowCount returns the number of rows.
func (t *Table) RowCount() int { return len(t.rows) }

// LastRow returns the row that Add appends to, or nil.
func (t *Table) LastRow() *Row { return t.lastRow }

// LastCell returns the last cell of the last row, or nil.
func (t *Table) LastCell() *Cell {
	if t.lastRow == nil {
		return nil
	}
	return t.lastRow.LastCell()
}

// IsEmpty reports whether the table has no rows.
func (t *Table) IsEmpty() bool { return len(t.rows) == 0 }

// HasVisibleCells reports whether any row is visible.
func (t *Table) HasVisibleCells() bool {
	for _, r := range t.rows {
		if r.Visible() {
			return true
		}
	}
	return false
}

// IsLayoutValid reports whether the last layout is still current.
func (t *Table) IsLayoutValid() bool { return t.validLayout }

// Actors returns the children of every cell, descending into nested
// tables instead of returning them.
func (t *Table) Actors(onlyVisible bool) []Box {
	var actors []Box
	t.collectActors(onlyVisible, &actors)
	return actors
}

func (t *Table) collectActors(onlyVisible bool, actors *[]Box) {
	for _, r := range t.rows {
		for _, c := range r.cells {
			if onlyVisible && !c.Visible() {
				continue
			}
			switch a := c.actor.(type) {
			case nil:
			case *Table:
				a.collectActors(onlyVisible, actors)
			default:
				*actors = append(*actors, a)
			}
		}
	}
}

// PositionsChildren reports true; a table positions the boxes in its cells.
func (t *Table) PositionsChildren() bool { return true }

// SetVisible shows or hides the table and invalidates the hierarchy. The
// visibility callback runs only when the state changes.
func (t *Table) SetVisible(visible bool) {
	if t.Visible() == visible {
		return
	}
	t.hidden = !visible
	t.InvalidateHierarchy()
	if t.onVisibilityChange != nil {
		t.onVisibilityChange(visible)
	}
}

// SetOnVisibilityChange sets the callback for when the table is shown or
// hidden. A nil fn removes it.
func (t *Table) SetOnVisibilityChange(fn func(visible bool)) {
	t.onVisibilityChange = fn
}
