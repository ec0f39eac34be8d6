package aligntable

// Option configures a Table.
type Option func(*Table)

// Defaults is the per-table configuration copied by value into every new
// row and cell. The zero value aligns left/top with no padding.
type Defaults struct {
	// TableAlign places the table within its available area.
	TableAlign Align
	// RowAlign is copied into each new row, and from the row into each
	// new cell.
	RowAlign Align
	// CellPad is copied into each new cell.
	CellPad Padding
	// RowPad is copied into each new row.
	RowPad Padding
}

// WithName sets the table name used in dumps and debug logs.
func WithName(name string) Option {
	return func(t *Table) {
		t.name = name
	}
}

// WithDefaults replaces the table's alignment and padding defaults.
func WithDefaults(d Defaults) Option {
	return func(t *Table) {
		t.tableAlign = d.TableAlign
		t.rowAlign = d.RowAlign
		t.cellPad = d.CellPad
		t.rowPad = d.RowPad
	}
}

// WithAlign sets both the table alignment and the default row alignment.
func WithAlign(h Horizontal, v Vertical) Option {
	return func(t *Table) {
		t.tableAlign = NewAlign(h, v)
		t.rowAlign = NewAlign(h, v)
	}
}

// WithTableAlign sets how the table places itself in its available area.
func WithTableAlign(h Horizontal, v Vertical) Option {
	return func(t *Table) {
		t.tableAlign = NewAlign(h, v)
	}
}

// WithRowAlign sets the alignment copied into new rows.
func WithRowAlign(h Horizontal, v Vertical) Option {
	return func(t *Table) {
		t.rowAlign = NewAlign(h, v)
	}
}

// WithCellPadding sets the padding copied into new cells.
func WithCellPadding(p Padding) Option {
	return func(t *Table) {
		t.cellPad = p
	}
}

// WithRowPadding sets the padding copied into new rows.
func WithRowPadding(p Padding) Option {
	return func(t *Table) {
		t.rowPad = p
	}
}

// WithPad sets the table padding.
func WithPad(p Padding) Option {
	return func(t *Table) {
		t.pad = p
	}
}

// WithMargin sets the table margin.
func WithMargin(m Padding) Option {
	return func(t *Table) {
		t.margin = m
	}
}

// WithOnVisibilityChange sets the callback for when the table is shown or
// hidden.
func WithOnVisibilityChange(fn func(visible bool)) Option {
	return func(t *Table) {
		t.onVisibilityChange = fn
	}
}

// WithPools makes the table obtain cells and rows from the given pools.
// Nil pools keep the defaults.
func WithPools(cells Pool[*Cell], rows Pool[*Row]) Option {
	return func(t *Table) {
		if cells != nil {
			t.cellPool = cells
		}
		if rows != nil {
			t.rowPool = rows
		}
	}
}
