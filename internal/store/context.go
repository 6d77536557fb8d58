package store

import (
	"context"
	"fmt"
	"sync"
)

// DefaultQueueDepth is the submission buffer used when none is given.
const DefaultQueueDepth = 64

// ExecContext is a serialized execution queue that owns an Engine. Units of
// work run one at a time, in submission order, on a single goroutine.
type ExecContext struct {
	engine Engine
	work   chan func()
	done   chan struct{}

	mu     sync.RWMutex
	closed bool

	// pending is only touched from the queue goroutine.
	pending Changes
}

// NewExecContext starts a queue in front of engine. depth bounds how many
// units may wait before Do blocks.
func NewExecContext(engine Engine, depth int) *ExecContext {
	if depth <= 0 {
		depth = DefaultQueueDepth
	}
	c := &ExecContext{
		engine: engine,
		work:   make(chan func(), depth),
		done:   make(chan struct{}),
	}
	go c.run()
	return c
}

// Open creates a SQLite-backed ExecContext for the store file at path.
func Open(path string, depth int) (*ExecContext, error) {
	engine, err := NewSQLiteEngine(path)
	if err != nil {
		return nil, err
	}
	return NewExecContext(engine, depth), nil
}

func (c *ExecContext) run() {
	defer close(c.done)
	for fn := range c.work {
		fn()
	}
}

// Close stops accepting work, waits for the submitted units to finish and
// closes the engine.
func (c *ExecContext) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	close(c.work)
	c.mu.Unlock()

	<-c.done
	return c.engine.Close()
}

// submit enqueues fn. It fails without running fn when ctx ends first or the
// context is closed.
func (c *ExecContext) submit(ctx context.Context, fn func()) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.closed {
		return ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	select {
	case c.work <- fn:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type outcome[T any] struct {
	val T
	err error
}

// perform runs unit on the queue and waits for its result. The unit's
// outcome is delivered exactly once, including when the unit panics. Once
// submitted, the unit runs to completion even if ctx ends while waiting.
func perform[T any](ctx context.Context, c *ExecContext, unit func(s *Scope) (T, error)) (T, error) {
	var zero T
	result := make(chan outcome[T], 1)
	scope := &Scope{ctx: context.WithoutCancel(ctx), ec: c}

	err := c.submit(ctx, func() {
		var o outcome[T]
		defer func() {
			if r := recover(); r != nil {
				o = outcome[T]{err: fmt.Errorf("unit of work panicked: %v", r)}
			}
			// Records the unit created but did not save are dropped.
			scope.rollback()
			result <- o
		}()
		o.val, o.err = unit(scope)
	})
	if err != nil {
		return zero, err
	}

	select {
	case o := <-result:
		return o.val, o.err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

// Do runs fn as a unit of work and returns its error.
func (c *ExecContext) Do(ctx context.Context, fn func(s *Scope) error) error {
	_, err := perform(ctx, c, func(s *Scope) (struct{}, error) {
		return struct{}{}, fn(s)
	})
	return err
}

// Scope is the view of an ExecContext handed to a running unit of work. It
// must not be retained after the unit returns.
type Scope struct {
	ctx context.Context
	ec  *ExecContext
}

// FetchLists fetches list records.
func (s *Scope) FetchLists(q ListQuery) ([]ListEntity, error) {
	return s.ec.engine.FetchLists(s.ctx, q)
}

// FetchItems fetches item records.
func (s *Scope) FetchItems(q ItemQuery) ([]ItemEntity, error) {
	return s.ec.engine.FetchItems(s.ctx, q)
}

// CountItems counts item records per parent list id.
func (s *Scope) CountItems(listIDs []string) (map[string]int, error) {
	return s.ec.engine.CountItems(s.ctx, listIDs)
}

// NewList returns an empty list record that will be written by the next Save.
func (s *Scope) NewList() *ListEntity {
	e := &ListEntity{}
	s.ec.pending.Lists = append(s.ec.pending.Lists, e)
	return e
}

// NewItem returns an empty item record that will be written by the next Save.
func (s *Scope) NewItem() *ItemEntity {
	e := &ItemEntity{}
	s.ec.pending.Items = append(s.ec.pending.Items, e)
	return e
}

// Save commits the pending records. On failure they are discarded.
func (s *Scope) Save() error {
	changes := s.ec.pending
	s.ec.pending = Changes{}
	return s.ec.engine.Save(s.ctx, &changes)
}

func (s *Scope) rollback() {
	s.ec.pending = Changes{}
}
