// Package pool provides a typed object pool for layout nodes, backed by
// github.com/jolestar/go-commons-pool.
package pool

import (
	"context"

	pool "github.com/jolestar/go-commons-pool"

	"github.com/spiddekauga/aligntable/internal/debug"
)

// Resetter is implemented by values that can be cleared for reuse.
type Resetter interface {
	Reset()
}

// Pool recycles values of type T. The zero value is not usable; use New.
type Pool[T Resetter] struct {
	ctx     context.Context
	objects *pool.ObjectPool
	create  func() T
}

// New returns an unbounded LIFO pool that creates values with create.
func New[T Resetter](create func() T) *Pool[T] {
	ctx := context.Background()
	factory := pool.NewPooledObjectFactorySimple(func(context.Context) (interface{}, error) {
		return create(), nil
	})

	cfg := pool.NewDefaultPoolConfig()
	cfg.MaxTotal = -1
	cfg.MaxIdle = 1024
	cfg.LIFO = true

	return &Pool[T]{
		ctx:     ctx,
		objects: pool.NewObjectPool(ctx, factory, cfg),
		create:  create,
	}
}

// Get borrows a value from the pool, creating one if none is idle.
func (p *Pool[T]) Get() T {
	obj, err := p.objects.BorrowObject(p.ctx)
	if err != nil {
		debug.Logger().Debug().Err(err).Msg("pool borrow failed")
		return p.create()
	}
	v, ok := obj.(T)
	if !ok {
		return p.create()
	}
	return v
}

// Put resets v and returns it to the pool. Values that were not borrowed
// from this pool, or are already idle, are reset and dropped.
func (p *Pool[T]) Put(v T) {
	v.Reset()
	if err := p.objects.ReturnObject(p.ctx, v); err != nil {
		debug.Logger().Debug().Err(err).Msg("pool dropped value")
	}
}

// Active returns the number of values currently borrowed.
func (p *Pool[T]) Active() int {
	return p.objects.GetNumActive()
}

// Idle returns the number of values waiting for reuse.
func (p *Pool[T]) Idle() int {
	return p.objects.GetNumIdle()
}
