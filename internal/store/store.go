// Package store persists tasks lists and task items in a local object store.
//
// Every read and write runs as a unit of work on an [ExecContext], a
// serialized queue that owns the [Engine]. Store methods submit a unit,
// wait for its single result and return it, so callers may use a store from
// any number of goroutines.
package store

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/activitylist/activitylist/internal/model"
)

// TasksListRepository reads and creates tasks lists.
type TasksListRepository interface {
	ReadAll(ctx context.Context) ([]model.TasksList, error)
	ReadLists(ctx context.Context) ([]model.TasksList, error)
	Insert(ctx context.Context, id uuid.UUID, name string, createdAt time.Time, kind model.ActivityType) error
	ReadTaskItemsCount(ctx context.Context, listIDs []uuid.UUID) (map[uuid.UUID]int, error)
}

// TaskItemRepository reads and creates the items of a tasks list.
type TaskItemRepository interface {
	ReadItems(ctx context.Context, listID uuid.UUID) ([]model.TaskItem, error)
	Insert(ctx context.Context, item model.TaskItem, listID uuid.UUID) error
}

// Clock returns the current time. It is injected so tests can pin it.
type Clock func() time.Time

type options struct {
	clock  Clock
	logger *log.Logger
}

// Option configures a store.
type Option func(*options)

// WithClock sets the time source used to stamp newly created records.
func WithClock(c Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// WithLogger sets the logger that receives quarantine and orphan reports.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		clock:  time.Now,
		logger: defaultLogger(os.Stderr),
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func defaultLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Level:           log.WarnLevel,
		Prefix:          "store",
	})
}
