package aligntable

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

func TestTable_EndToEnd(t *testing.T) {
	type tc struct {
		pad     Padding
		cellPad Padding
		wantRow float64
		wantX   []float64
	}

	tests := map[string]tc{
		"no padding": {
			wantRow: 100,
			wantX:   []float64{0, 40},
		},
		"table and cell padding": {
			pad:     PadAll(5),
			cellPad: PadAll(3),
			wantRow: 112,
			wantX:   []float64{8, 54},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			table := New(WithPad(tt.pad), WithCellPadding(tt.cellPad))
			a := NewWidget("a", 40, 10)
			b := NewWidget("b", 60, 10)
			table.Add(a)
			table.Add(b)

			table.Layout()

			if got := table.Rows()[0].PrefWidth(); got != tt.wantRow {
				t.Errorf("row PrefWidth() = %v, want %v", got, tt.wantRow)
			}
			if got, want := table.PrefWidth(), tt.wantRow+tt.pad.Horizontal(); got != want {
				t.Errorf("PrefWidth() = %v, want %v", got, want)
			}
			if diff := cmp.Diff(tt.wantX, []float64{a.X(), b.X()}); diff != "" {
				t.Errorf("x positions mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTable_FirstRowOnTop(t *testing.T) {
	table := New()
	top := NewWidget("top", 10, 10)
	mid := NewWidget("mid", 10, 20)
	bottom := NewWidget("bottom", 10, 30)
	table.Add(top)
	table.AddRow()
	table.Add(mid)
	table.AddRow()
	table.Add(bottom)

	table.Layout()

	got := []float64{top.Y(), mid.Y(), bottom.Y()}
	if diff := cmp.Diff([]float64{50, 30, 0}, got); diff != "" {
		t.Errorf("y positions mismatch (-want +got):\n%s", diff)
	}
	if table.Height() != 60 {
		t.Errorf("Height() = %v, want 60", table.Height())
	}
}

func TestTable_Alignment(t *testing.T) {
	type tc struct {
		h      Horizontal
		v      Vertical
		margin Padding
		want   Point
	}

	// A 50x50 table on a 200x200 stage.
	tests := map[string]tc{
		"center middle": {h: Center, v: Middle, want: Point{X: 75, Y: 75}},
		"left bottom":   {h: Left, v: Bottom, want: Point{X: 0, Y: 0}},
		"right top":     {h: Right, v: Top, want: Point{X: 150, Y: 150}},
		"left bottom with margin": {
			h: Left, v: Bottom,
			margin: PadAll(10),
			want:   Point{X: 10, Y: 10},
		},
		"right top with margin": {
			h: Right, v: Top,
			margin: PadAll(10),
			want:   Point{X: 140, Y: 140},
		},
		"center middle with margin": {
			h: Center, v: Middle,
			margin: PadAll(10),
			want:   Point{X: 65, Y: 65},
		},
		"center middle with uneven margin": {
			h: Center, v: Middle,
			margin: Padding{Left: 40, Bottom: 20},
			want:   Point{X: 55, Y: 65},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			stage := NewStage(200, 200)
			table := New(WithTableAlign(tt.h, tt.v), WithMargin(tt.margin))
			table.Add(NewWidget("w", 50, 50))
			stage.AddActor(table)

			stage.Validate()

			got := Point{X: table.X(), Y: table.Y()}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("position mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTable_FillNextToFixed(t *testing.T) {
	stage := NewStage(300, 200)
	table := New()
	fixed := NewWidget("fixed", 50, 10)
	fill := NewWidget("fill", 0, 10)
	table.Add(fixed)
	if err := table.Add(fill).SetFillWidth(true); err != nil {
		t.Fatal(err)
	}
	stage.AddActor(table)

	stage.Validate()

	if fill.Width() != 250 {
		t.Errorf("fill Width() = %v, want 250", fill.Width())
	}
	if fill.X() != 50 {
		t.Errorf("fill X() = %v, want 50", fill.X())
	}
	if table.X() != 0 || table.Width() != 300 {
		t.Errorf("table x=%v w=%v, want x=0 w=300", table.X(), table.Width())
	}
}

func TestTable_FillHeightRows(t *testing.T) {
	stage := NewStage(100, 100)
	table := New()
	table.Add(NewWidget("a", 10, 10))
	table.LastRow().SetFillHeight(true)
	table.AddRow()
	table.Add(NewWidget("b", 10, 20))
	stage.AddActor(table)

	stage.Validate()

	if got := table.Rows()[0].Height(); got != 80 {
		t.Errorf("fill row Height() = %v, want 80", got)
	}
	if table.Height() != 100 {
		t.Errorf("Height() = %v, want 100", table.Height())
	}
	if table.Y() != 0 {
		t.Errorf("Y() = %v, want 0", table.Y())
	}
}

func TestTable_NestedFill(t *testing.T) {
	stage := NewStage(200, 100)
	outer := New(WithPad(PadAll(10)))
	outer.SetFillParentWidth(true)
	inner := New()
	w := NewWidget("w", 50, 20)
	inner.Add(w)
	if err := outer.Add(inner).SetFillWidth(true); err != nil {
		t.Fatal(err)
	}
	stage.AddActor(outer)

	stage.Validate()

	if outer.Width() != 200 {
		t.Errorf("outer Width() = %v, want 200", outer.Width())
	}
	if inner.Width() != 180 {
		t.Errorf("inner Width() = %v, want 180", inner.Width())
	}
	if inner.X() != 10 || inner.Y() != 10 {
		t.Errorf("inner position = (%v, %v), want (10, 10)", inner.X(), inner.Y())
	}
	if w.X() != 0 {
		t.Errorf("widget X() = %v, want 0", w.X())
	}
}

func TestTable_LayoutIsIdempotent(t *testing.T) {
	stage := NewStage(300, 200)
	table := New(WithPad(PadAll(5)), WithCellPadding(PadAll(2)), WithTableAlign(Center, Middle))
	table.Add(NewWidget("a", 50, 10))
	if err := table.Add(NewWidget("b", 0, 10)).SetFillWidth(true); err != nil {
		t.Fatal(err)
	}
	table.AddRow()
	inner := New()
	inner.Add(NewWidget("c", 30, 20))
	inner.Add(NewLabel("d", "Hi"))
	table.Add(inner)
	stage.AddActor(table)

	snapshot := func() []Rect {
		rects := []Rect{table.Bounds(), inner.Bounds()}
		for _, b := range table.Actors(false) {
			rects = append(rects, NewRect(b.X(), b.Y(), b.Width(), b.Height()))
		}
		return rects
	}

	stage.Validate()
	first := snapshot()

	table.Layout()
	if diff := cmp.Diff(first, snapshot()); diff != "" {
		t.Errorf("positions changed on relayout (-first +second):\n%s", diff)
	}

	table.Invalidate()
	stage.Validate()
	if diff := cmp.Diff(first, snapshot()); diff != "" {
		t.Errorf("sizes changed on full relayout (-first +second):\n%s", diff)
	}
}

func TestTable_InvalidationPropagates(t *testing.T) {
	stage := NewStage(200, 200)
	outer := New()
	inner := New()
	inner.Add(NewWidget("w", 10, 10))
	outer.Add(inner)
	stage.AddActor(outer)

	stage.Validate()
	if !outer.IsLayoutValid() || !inner.IsLayoutValid() {
		t.Fatal("layout should be valid after Validate")
	}

	inner.AddRow()

	if inner.IsLayoutValid() {
		t.Error("inner layout should be invalid")
	}
	if outer.IsLayoutValid() {
		t.Error("outer layout should be invalid")
	}
}

func TestTable_HidingChildInvalidates(t *testing.T) {
	stage := NewStage(200, 200)
	table := New()
	table.Add(NewWidget("a", 10, 10))
	table.AddRow()
	hidden := NewWidget("b", 10, 20)
	table.Add(hidden)
	stage.AddActor(table)
	stage.Validate()

	hidden.SetVisible(false)
	if table.IsLayoutValid() {
		t.Fatal("hiding a child should invalidate the table")
	}

	stage.Validate()
	if table.Height() != 10 {
		t.Errorf("Height() = %v, want 10 without the hidden row", table.Height())
	}
	if !table.HasVisibleCells() {
		t.Error("HasVisibleCells() = false, want true")
	}
}

func TestTable_OnVisibilityChange(t *testing.T) {
	var got []bool
	table := New(WithOnVisibilityChange(func(visible bool) {
		got = append(got, visible)
	}))
	table.Add(NewWidget("w", 10, 10))
	table.Layout()

	table.SetVisible(false)
	table.SetVisible(false)
	if table.IsLayoutValid() {
		t.Error("hiding the table should invalidate it")
	}
	table.SetVisible(true)

	if diff := cmp.Diff([]bool{false, true}, got); diff != "" {
		t.Errorf("visibility events mismatch (-want +got):\n%s", diff)
	}

	table.SetOnVisibilityChange(nil)
	table.SetVisible(false)
	if len(got) != 2 {
		t.Errorf("got %d events after removing the callback, want 2", len(got))
	}
}

func TestTable_FillParent(t *testing.T) {
	stage := NewStage(300, 200)
	table := New()
	table.SetFillParent(true)
	table.Add(NewWidget("w", 10, 10))
	stage.AddActor(table)

	stage.Validate()

	got := []float64{table.Width(), table.Height(), table.PrefWidth(), table.MinWidth(), table.X(), table.Y()}
	if diff := cmp.Diff([]float64{300, 200, 300, 300, 0, 0}, got); diff != "" {
		t.Errorf("fill parent mismatch (-want +got):\n%s", diff)
	}
}

func TestTable_KeepSize(t *testing.T) {
	stage := NewStage(400, 400)
	table := New()
	table.SetKeepSize(true)
	table.SetSize(200, 100)
	table.Add(NewWidget("w", 10, 10))
	stage.AddActor(table)

	stage.Validate()

	if table.Width() != 200 || table.Height() != 100 {
		t.Errorf("size = %vx%v, want 200x100", table.Width(), table.Height())
	}
	if table.PrefWidth() != 200 {
		t.Errorf("PrefWidth() = %v, want 200", table.PrefWidth())
	}
}

func TestTable_HasPreferredWidth(t *testing.T) {
	type tc struct {
		has  bool
		want float64
	}

	tests := map[string]tc{
		"content plus padding and margin": {has: true, want: 56},
		"current width":                   {has: false, want: 50},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			table := New(WithPad(PadAll(5)), WithMargin(PadAll(3)))
			table.SetHasPreferredWidth(tt.has)
			table.Add(NewWidget("w", 40, 10))

			table.Layout()

			if got := table.PrefWidth(); got != tt.want {
				t.Errorf("PrefWidth() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTable_AvailableWidth(t *testing.T) {
	type tc struct {
		setup func(stage *Stage, table *Table)
		want  float64
	}

	tests := map[string]tc{
		"max width minus padding": {
			setup: func(_ *Stage, table *Table) {
				table.SetMaxWidth(120)
			},
			want: 100,
		},
		"stage width minus margin and padding": {
			setup: func(stage *Stage, table *Table) {
				table.SetMarginAll(5)
				stage.AddActor(table)
			},
			want: 270,
		},
		"own width when unparented": {
			setup: func(_ *Stage, table *Table) {
				table.SetSize(80, 40)
			},
			want: 60,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			stage := NewStage(300, 300)
			table := New(WithPad(PadAll(10)))
			tt.setup(stage, table)

			if got := table.AvailableWidth(); got != tt.want {
				t.Errorf("AvailableWidth() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTable_AddAt(t *testing.T) {
	table := New()
	a := NewWidget("a", 10, 10)
	table.Add(a)

	for _, index := range []int{-1, 2} {
		if _, err := table.AddAt(index, NewWidget("x", 10, 10)); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("AddAt(%d) error = %v, want ErrIndexOutOfRange", index, err)
		}
	}

	b := NewWidget("b", 10, 10)
	if _, err := table.AddAt(0, b); err != nil {
		t.Fatalf("AddAt(0) error = %v", err)
	}

	got := cellNames(table.LastRow())
	if diff := cmp.Diff([]string{"b", "a"}, got); diff != "" {
		t.Errorf("cell order mismatch (-want +got):\n%s", diff)
	}
	if b.Parent() != Parent(table) {
		t.Error("added box should be parented to the table")
	}
}

func TestTable_AddAtOutOfRangeOnEmptyTable(t *testing.T) {
	table := New()
	w := NewWidget("w", 10, 10)

	if _, err := table.AddAt(1, w); !errors.Is(err, ErrIndexOutOfRange) {
		t.Fatalf("AddAt(1) error = %v, want ErrIndexOutOfRange", err)
	}

	if table.RowCount() != 0 {
		t.Errorf("RowCount() = %d, want 0", table.RowCount())
	}
	if table.LastRow() != nil {
		t.Error("LastRow() should stay nil")
	}
	if w.Parent() != nil {
		t.Error("rejected box should not be parented")
	}
}

func TestTable_AddReparents(t *testing.T) {
	from := New()
	to := New()
	w := NewWidget("w", 10, 10)
	from.Add(w)

	to.Add(w)

	if from.RowCount() != 0 {
		t.Errorf("source RowCount() = %d, want 0", from.RowCount())
	}
	if w.Parent() != Parent(to) {
		t.Error("widget should be parented to the destination table")
	}
}

func TestTable_InsertRow(t *testing.T) {
	table := newNamedRows("a", "b")

	r, err := table.InsertRowAligned(1, Right, Bottom)
	if err != nil {
		t.Fatal(err)
	}
	table.Add(NewWidget("x", 10, 10))

	if diff := cmp.Diff([]string{"a", "x", "b"}, rowNames(table)); diff != "" {
		t.Errorf("row order mismatch (-want +got):\n%s", diff)
	}
	if r.Align() != NewAlign(Right, Bottom) {
		t.Errorf("Align() = %v, want right/bottom", r.Align())
	}
	if _, err := table.InsertRow(5); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("InsertRow(5) error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestTable_MoveRow(t *testing.T) {
	type tc struct {
		move    func(t *Table) error
		want    []string
		wantErr bool
	}

	tests := map[string]tc{
		"first to end": {
			move: func(t *Table) error { return t.MoveRow(0, 3) },
			want: []string{"b", "c", "a"},
		},
		"last to start": {
			move: func(t *Table) error { return t.MoveRow(2, 0) },
			want: []string{"c", "a", "b"},
		},
		"before the next row is a no-op": {
			move: func(t *Table) error { return t.MoveRow(1, 2) },
			want: []string{"a", "b", "c"},
		},
		"to top": {
			move: func(t *Table) error { return t.MoveRowToTop(1) },
			want: []string{"b", "a", "c"},
		},
		"to bottom": {
			move: func(t *Table) error { return t.MoveRowToBottom(0) },
			want: []string{"b", "c", "a"},
		},
		"from out of range": {
			move:    func(t *Table) error { return t.MoveRow(3, 0) },
			want:    []string{"a", "b", "c"},
			wantErr: true,
		},
		"to out of range": {
			move:    func(t *Table) error { return t.MoveRow(0, 4) },
			want:    []string{"a", "b", "c"},
			wantErr: true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			table := newNamedRows("a", "b", "c")

			err := tt.move(table)
			if tt.wantErr != errors.Is(err, ErrIndexOutOfRange) {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, rowNames(table)); diff != "" {
				t.Errorf("row order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTable_RemoveChild(t *testing.T) {
	table := New()
	a := NewWidget("a", 10, 10)
	b := NewWidget("b", 10, 10)
	c := NewWidget("c", 10, 10)
	table.Add(a)
	table.Add(b)
	table.AddRow()
	table.Add(c)
	table.AddRow()
	table.AddEmpty()

	if !Remove(c) {
		t.Fatal("Remove(c) = false, want true")
	}
	if table.RowCount() != 2 {
		t.Errorf("RowCount() = %d, want 2: the emptied row goes, the spacer row stays", table.RowCount())
	}
	if c.Parent() != nil {
		t.Error("removed box should have no parent")
	}

	if !table.RemoveChild(a) {
		t.Fatal("RemoveChild(a) = false, want true")
	}
	if diff := cmp.Diff([]string{"b"}, cellNames(table.Rows()[0])); diff != "" {
		t.Errorf("first row mismatch (-want +got):\n%s", diff)
	}

	if table.RemoveChild(NewWidget("stranger", 1, 1)) {
		t.Error("RemoveChild of a foreign box = true, want false")
	}
}

func TestTable_RemoveRow(t *testing.T) {
	type tc struct {
		disposeActors bool
	}

	tests := map[string]tc{
		"keeps actors":    {disposeActors: false},
		"disposes actors": {disposeActors: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			table := newNamedRows("a", "b")
			last := table.Rows()[1]
			w := last.Cells()[0].Actor().(*Widget)

			table.RemoveRow(last, tt.disposeActors)

			if diff := cmp.Diff([]string{"a"}, rowNames(table)); diff != "" {
				t.Errorf("row order mismatch (-want +got):\n%s", diff)
			}
			if table.LastRow() != table.Rows()[0] {
				t.Error("LastRow() should fall back to the remaining row")
			}
			if w.Parent() != nil {
				t.Error("removed row's actor should be detached")
			}
			if w.Disposed() != tt.disposeActors {
				t.Errorf("Disposed() = %v, want %v", w.Disposed(), tt.disposeActors)
			}
		})
	}
}

func TestTable_Dispose(t *testing.T) {
	outer := New()
	inner := New()
	w := NewWidget("w", 10, 10)
	inner.Add(w)
	outer.Add(inner)

	outer.Dispose(true)

	if !outer.IsEmpty() || !inner.IsEmpty() {
		t.Error("both tables should be empty")
	}
	if inner.Parent() != nil || w.Parent() != nil {
		t.Error("children should be detached")
	}
	if !w.Disposed() {
		t.Error("nested widget should be disposed")
	}
	if outer.LastCell() != nil {
		t.Error("LastCell() should be nil after Dispose")
	}
}

func TestTable_Actors(t *testing.T) {
	type tc struct {
		onlyVisible bool
		want        []string
	}

	tests := map[string]tc{
		"all":          {want: []string{"a", "b", "c"}},
		"only visible": {onlyVisible: true, want: []string{"a", "b"}},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			outer := New()
			inner := New()
			outer.Add(NewWidget("a", 10, 10))
			outer.AddEmpty()
			outer.Add(inner)
			inner.Add(NewWidget("b", 10, 10))
			hidden := NewWidget("c", 10, 10)
			hidden.SetVisible(false)
			inner.Add(hidden)

			var got []string
			for _, b := range outer.Actors(tt.onlyVisible) {
				got = append(got, b.Name())
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("actors mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTable_Defaults(t *testing.T) {
	d := Defaults{
		TableAlign: NewAlign(Center, Middle),
		RowAlign:   NewAlign(Right, Bottom),
		CellPad:    PadAll(2),
		RowPad:     PadSymmetric(1, 3),
	}
	table := New(WithDefaults(d), WithName("defaults"))
	c := table.Add(NewWidget("w", 10, 10))

	if diff := cmp.Diff(d, table.Defaults()); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
	if c.Pad() != d.CellPad {
		t.Errorf("cell Pad() = %+v, want %+v", c.Pad(), d.CellPad)
	}
	if c.Align() != d.RowAlign {
		t.Errorf("cell Align() = %v, want %v", c.Align(), d.RowAlign)
	}
	if got := table.LastRow().Pad(); got != d.RowPad {
		t.Errorf("row Pad() = %+v, want %+v", got, d.RowPad)
	}

	copied := New().SetPreferences(table)
	if diff := cmp.Diff(d, copied.Defaults()); diff != "" {
		t.Errorf("copied defaults mismatch (-want +got):\n%s", diff)
	}
}

type countingPool[T any] struct {
	Pool[T]
	obtained int
	freed    int
}

func (p *countingPool[T]) Obtain() T {
	p.obtained++
	return p.Pool.Obtain()
}

func (p *countingPool[T]) Free(v T) {
	p.freed++
	p.Pool.Free(v)
}

func TestTable_Pools(t *testing.T) {
	cells := &countingPool[*Cell]{Pool: NewAllocCellPool()}
	rows := &countingPool[*Row]{Pool: NewAllocRowPool()}
	table := New(WithPools(cells, rows))
	table.Add(NewWidget("a", 10, 10))
	table.Add(NewWidget("b", 10, 10))
	table.AddRow()
	table.Add(NewWidget("c", 10, 10))

	if cells.obtained != 3 || rows.obtained != 2 {
		t.Errorf("obtained cells=%d rows=%d, want 3 and 2", cells.obtained, rows.obtained)
	}

	table.Dispose(false)

	if cells.freed != 3 || rows.freed != 2 {
		t.Errorf("freed cells=%d rows=%d, want 3 and 2", cells.freed, rows.freed)
	}
}

func TestCellPool_ReusesResetCells(t *testing.T) {
	p := NewCellPool()
	c := p.Obtain()
	c.SetPadAll(3)
	_ = c.SetFillWidth(true)

	p.Free(c)
	again := p.Obtain()

	if again != c {
		t.Error("Obtain() should return the freed cell")
	}
	if !again.Pad().IsZero() || again.FillWidth() {
		t.Error("freed cell should be reset")
	}
}

func newNamedRows(names ...string) *Table {
	table := New()
	for i, name := range names {
		if i > 0 {
			table.AddRow()
		}
		table.Add(NewWidget(name, 10, 10))
	}
	return table
}

func rowNames(table *Table) []string {
	var names []string
	for _, r := range table.Rows() {
		names = append(names, r.Cells()[0].Actor().Name())
	}
	return names
}

func cellNames(r *Row) []string {
	var names []string
	for _, c := range r.Cells() {
		names = append(names, c.Actor().Name())
	}
	return names
}
