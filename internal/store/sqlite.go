package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// SQLiteEngine implements Engine on a local SQLite database.
type SQLiteEngine struct {
	db *sqlx.DB
}

// NewSQLiteEngine opens (or creates) a SQLite database at dbPath, enables
// foreign keys and runs any pending schema migrations. dbPath may be
// ":memory:".
func NewSQLiteEngine(dbPath string) (*SQLiteEngine, error) {
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// All access is serialized by the ExecContext; a single connection also
	// keeps an in-memory database alive for the engine's lifetime.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	e := &SQLiteEngine{db: db}
	if err := e.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return e, nil
}

// Close closes the underlying database connection.
func (e *SQLiteEngine) Close() error {
	return e.db.Close()
}

// runMigrations checks the current schema version and applies any
// outstanding migrations in order.
func (e *SQLiteEngine) runMigrations() error {
	currentVersion := 0

	var tableCount int
	err := e.db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = e.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := e.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}

	return nil
}

// FetchLists retrieves list records, optionally restricted to q.IDs.
func (e *SQLiteEngine) FetchLists(ctx context.Context, q ListQuery) ([]ListEntity, error) {
	query := "SELECT pk, id, name, created_at, type FROM tasks_lists"
	var args []any

	if q.IDs != nil {
		if len(q.IDs) == 0 {
			return nil, nil
		}
		var err error
		query, args, err = sqlx.In(query+" WHERE id IN (?)", q.IDs)
		if err != nil {
			return nil, fmt.Errorf("building tasks lists query: %w", err)
		}
	}
	query = e.db.Rebind(query + " ORDER BY pk")

	var lists []ListEntity
	if err := e.db.SelectContext(ctx, &lists, query, args...); err != nil {
		return nil, fmt.Errorf("querying tasks lists: %w", err)
	}
	return lists, nil
}

// FetchItems retrieves the item records owned by the lists in q.ListIDs.
func (e *SQLiteEngine) FetchItems(ctx context.Context, q ItemQuery) ([]ItemEntity, error) {
	if len(q.ListIDs) == 0 {
		return nil, nil
	}

	query, args, err := sqlx.In(`
		SELECT i.pk, i.id, i.name, i.created_at, i.type, i.list_pk, l.id AS list_id
		FROM task_items i
		JOIN tasks_lists l ON i.list_pk = l.pk
		WHERE l.id IN (?)
		ORDER BY i.pk`, q.ListIDs)
	if err != nil {
		return nil, fmt.Errorf("building task items query: %w", err)
	}

	var items []ItemEntity
	if err := e.db.SelectContext(ctx, &items, e.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("querying task items: %w", err)
	}
	return items, nil
}

// CountItems counts item records per parent list id in a single query.
func (e *SQLiteEngine) CountItems(ctx context.Context, listIDs []string) (map[string]int, error) {
	counts := make(map[string]int)
	if len(listIDs) == 0 {
		return counts, nil
	}

	query, args, err := sqlx.In(`
		SELECT l.id AS list_id, COUNT(i.pk) AS items
		FROM task_items i
		JOIN tasks_lists l ON i.list_pk = l.pk
		WHERE l.id IN (?)
		GROUP BY l.id`, listIDs)
	if err != nil {
		return nil, fmt.Errorf("building item count query: %w", err)
	}

	var rows []struct {
		ListID string `db:"list_id"`
		Items  int    `db:"items"`
	}
	if err := e.db.SelectContext(ctx, &rows, e.db.Rebind(query), args...); err != nil {
		return nil, fmt.Errorf("counting task items: %w", err)
	}

	for _, r := range rows {
		counts[r.ListID] += r.Items
	}
	return counts, nil
}

// Save inserts all pending records in one transaction. Lists are written
// first so items may reference lists created in the same batch.
func (e *SQLiteEngine) Save(ctx context.Context, c *Changes) error {
	if c.Empty() {
		return nil
	}

	tx, err := e.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	for _, l := range c.Lists {
		res, err := tx.ExecContext(ctx, `
			INSERT INTO tasks_lists (id, name, created_at, type)
			VALUES (?, ?, ?, ?)`,
			l.ID, l.Name, l.CreatedAt, l.Type,
		)
		if err != nil {
			return fmt.Errorf("inserting tasks list %s: %w", l.ID.String, err)
		}
		pk, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("reading tasks list key: %w", err)
		}
		l.PK = pk
	}

	for _, i := range c.Items {
		if p := i.Parent(); p != nil {
			i.SetParent(p)
		}
		res, err := tx.ExecContext(ctx, `
			INSERT INTO task_items (id, name, created_at, type, list_pk)
			VALUES (?, ?, ?, ?, ?)`,
			i.ID, i.Name, i.CreatedAt, i.Type, i.ListPK,
		)
		if err != nil {
			return fmt.Errorf("inserting task item %s: %w", i.ID.String, err)
		}
		pk, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("reading task item key: %w", err)
		}
		i.PK = pk
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}
