package aligntable

import "github.com/spiddekauga/aligntable/internal/pool"

// Pool recycles cells and rows. Free must leave the instance fully reset
// before it is handed out again.
type Pool[T any] interface {
	Obtain() T
	Free(v T)
}

type commonsPool[T pool.Resetter] struct {
	p *pool.Pool[T]
}

func (c commonsPool[T]) Obtain() T { return c.p.Get() }
func (c commonsPool[T]) Free(v T)  { c.p.Put(v) }

// NewCellPool returns an unbounded pool of cells.
func NewCellPool() Pool[*Cell] {
	return commonsPool[*Cell]{p: pool.New(newCell)}
}

// NewRowPool returns an unbounded pool of rows.
func NewRowPool() Pool[*Row] {
	return commonsPool[*Row]{p: pool.New(newRow)}
}

type allocPool[T pool.Resetter] struct {
	create func() T
}

func (a allocPool[T]) Obtain() T { return a.create() }
func (a allocPool[T]) Free(v T)  { v.Reset() }

// NewAllocCellPool returns a cell pool that allocates on every Obtain.
func NewAllocCellPool() Pool[*Cell] {
	return allocPool[*Cell]{create: newCell}
}

// NewAllocRowPool returns a row pool that allocates on every Obtain.
func NewAllocRowPool() Pool[*Row] {
	return allocPool[*Row]{create: newRow}
}

var (
	defaultCellPool = NewCellPool()
	defaultRowPool  = NewRowPool()
)
