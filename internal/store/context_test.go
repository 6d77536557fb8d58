package store

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingEngine remembers saved changes and fails nothing.
type recordingEngine struct {
	saved  []Changes
	closed bool
}

func (e *recordingEngine) FetchLists(context.Context, ListQuery) ([]ListEntity, error) {
	return nil, nil
}

func (e *recordingEngine) FetchItems(context.Context, ItemQuery) ([]ItemEntity, error) {
	return nil, nil
}

func (e *recordingEngine) CountItems(context.Context, []string) (map[string]int, error) {
	return map[string]int{}, nil
}

func (e *recordingEngine) Save(_ context.Context, c *Changes) error {
	e.saved = append(e.saved, *c)
	return nil
}

func (e *recordingEngine) Close() error {
	e.closed = true
	return nil
}

func TestExecContext(t *testing.T) {
	ctx := context.Background()

	t.Run("RunsUnitsInSubmissionOrder", func(t *testing.T) {
		ec := NewExecContext(&recordingEngine{}, 4)
		defer ec.Close()

		gate := make(chan struct{})
		started := make(chan struct{})
		var order []int
		var wg sync.WaitGroup

		// Hold the queue so the following units line up behind it.
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = ec.Do(ctx, func(*Scope) error {
				close(started)
				<-gate
				return nil
			})
		}()
		<-started

		for i := 0; i < 3; i++ {
			require.NoError(t, ec.submit(ctx, func() { order = append(order, i) }))
		}
		close(gate)
		wg.Wait()

		require.NoError(t, ec.Do(ctx, func(*Scope) error { return nil }))
		assert.Equal(t, []int{0, 1, 2}, order)
	})

	t.Run("ReturnsUnitResult", func(t *testing.T) {
		ec := NewExecContext(&recordingEngine{}, 0)
		defer ec.Close()

		got, err := perform(ctx, ec, func(*Scope) (int, error) { return 42, nil })
		require.NoError(t, err)
		assert.Equal(t, 42, got)

		boom := errors.New("boom")
		_, err = perform(ctx, ec, func(*Scope) (int, error) { return 0, boom })
		assert.ErrorIs(t, err, boom)
	})

	t.Run("RecoversPanics", func(t *testing.T) {
		ec := NewExecContext(&recordingEngine{}, 0)
		defer ec.Close()

		err := ec.Do(ctx, func(*Scope) error { panic("bad unit") })
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad unit")

		// The queue keeps serving after a panic.
		assert.NoError(t, ec.Do(ctx, func(*Scope) error { return nil }))
	})

	t.Run("ConcurrentCallers", func(t *testing.T) {
		ec := NewExecContext(&recordingEngine{}, 2)
		defer ec.Close()

		counter := 0
		var wg sync.WaitGroup
		for i := 0; i < 50; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				assert.NoError(t, ec.Do(ctx, func(*Scope) error { counter++; return nil }))
			}()
		}
		wg.Wait()
		assert.Equal(t, 50, counter)
	})

	t.Run("DiscardsUnsavedRecords", func(t *testing.T) {
		engine := &recordingEngine{}
		ec := NewExecContext(engine, 0)
		defer ec.Close()

		require.NoError(t, ec.Do(ctx, func(s *Scope) error {
			s.NewList()
			return nil
		}))
		require.NoError(t, ec.Do(ctx, func(s *Scope) error {
			s.NewItem()
			return s.Save()
		}))

		require.Len(t, engine.saved, 1)
		assert.Empty(t, engine.saved[0].Lists)
		assert.Len(t, engine.saved[0].Items, 1)
	})

	t.Run("CanceledBeforeSubmit", func(t *testing.T) {
		ec := NewExecContext(&recordingEngine{}, 0)
		defer ec.Close()

		canceled, cancel := context.WithCancel(ctx)
		cancel()

		ran := false
		err := ec.Do(canceled, func(*Scope) error { ran = true; return nil })
		assert.ErrorIs(t, err, context.Canceled)
		require.NoError(t, ec.Do(ctx, func(*Scope) error { return nil }))
		assert.False(t, ran)
	})

	t.Run("CanceledWhileWaiting", func(t *testing.T) {
		ec := NewExecContext(&recordingEngine{}, 0)
		defer ec.Close()

		waiting, cancel := context.WithCancel(ctx)
		release := make(chan struct{})
		finished := make(chan struct{})

		go func() {
			time.Sleep(10 * time.Millisecond)
			cancel()
		}()
		err := ec.Do(waiting, func(s *Scope) error {
			<-release
			defer close(finished)
			assert.NoError(t, s.ctx.Err())
			return nil
		})
		assert.ErrorIs(t, err, context.Canceled)

		close(release)
		select {
		case <-finished:
		case <-time.After(time.Second):
			t.Fatal("submitted unit did not run to completion")
		}
	})

	t.Run("Close", func(t *testing.T) {
		engine := &recordingEngine{}
		ec := NewExecContext(engine, 0)

		require.NoError(t, ec.Close())
		assert.True(t, engine.closed)
		assert.NoError(t, ec.Close())

		err := ec.Do(ctx, func(*Scope) error { return nil })
		assert.ErrorIs(t, err, ErrClosed)
	})
}
