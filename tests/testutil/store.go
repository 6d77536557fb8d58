package testutil

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jmoiron/sqlx"

	"github.com/activitylist/activitylist/internal/store"
)

// ErrEngine is the failure produced by ErrorProneEngine.
var ErrEngine = errors.New("engine operation failed")

// NewTestEngine creates an in-memory SQLiteEngine with all migrations
// applied.
func NewTestEngine(t *testing.T) *store.SQLiteEngine {
	t.Helper()

	e, err := store.NewSQLiteEngine(":memory:")
	if err != nil {
		t.Fatalf("creating test engine: %v", err)
	}
	return e
}

// NewFileEngine creates a SQLiteEngine on a fresh database file in a
// temporary directory and returns it with the file path, so tests can open
// a second handle on the same data with RawDB.
func NewFileEngine(t *testing.T) (*store.SQLiteEngine, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "activitylist.db")
	e, err := store.NewSQLiteEngine(path)
	if err != nil {
		t.Fatalf("creating file engine: %v", err)
	}
	return e, path
}

// RawDB opens a plain sqlx handle on the database file at path, for writing
// rows the store itself would never produce. It is closed when the test
// completes.
func RawDB(t *testing.T, path string) *sqlx.DB {
	t.Helper()

	db, err := sqlx.Open("sqlite", path)
	if err != nil {
		t.Fatalf("opening raw handle: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// NewTestContext creates an ExecContext over engine, or over a fresh
// in-memory SQLiteEngine when engine is nil. It is closed when the test
// completes.
func NewTestContext(t *testing.T, engine store.Engine) *store.ExecContext {
	t.Helper()

	if engine == nil {
		engine = NewTestEngine(t)
	}
	ec := store.NewExecContext(engine, 0)

	t.Cleanup(func() {
		if err := ec.Close(); err != nil {
			t.Errorf("closing test context: %v", err)
		}
	})

	return ec
}

// FixedClock returns a store.Clock that always reports at.
func FixedClock(at time.Time) store.Clock {
	return func() time.Time { return at }
}

// QuietLogger returns a logger that discards its output.
func QuietLogger() *log.Logger {
	return log.New(io.Discard)
}

// ErrorProneEngine wraps an Engine and fails the selected operations with
// ErrEngine. Operations that are not selected are delegated.
type ErrorProneEngine struct {
	store.Engine

	FailFetchLists bool
	FailFetchItems bool
	FailCount      bool
	FailSave       bool
}

// FailingEngine returns an ErrorProneEngine on a fresh in-memory engine with
// every operation failing.
func FailingEngine(t *testing.T) *ErrorProneEngine {
	t.Helper()
	return &ErrorProneEngine{
		Engine:         NewTestEngine(t),
		FailFetchLists: true,
		FailFetchItems: true,
		FailCount:      true,
		FailSave:       true,
	}
}

func (e *ErrorProneEngine) FetchLists(ctx context.Context, q store.ListQuery) ([]store.ListEntity, error) {
	if e.FailFetchLists {
		return nil, ErrEngine
	}
	return e.Engine.FetchLists(ctx, q)
}

func (e *ErrorProneEngine) FetchItems(ctx context.Context, q store.ItemQuery) ([]store.ItemEntity, error) {
	if e.FailFetchItems {
		return nil, ErrEngine
	}
	return e.Engine.FetchItems(ctx, q)
}

func (e *ErrorProneEngine) CountItems(ctx context.Context, listIDs []string) (map[string]int, error) {
	if e.FailCount {
		return nil, ErrEngine
	}
	return e.Engine.CountItems(ctx, listIDs)
}

func (e *ErrorProneEngine) Save(ctx context.Context, c *store.Changes) error {
	if e.FailSave {
		return ErrEngine
	}
	return e.Engine.Save(ctx, c)
}
