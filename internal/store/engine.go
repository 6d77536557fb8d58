package store

import (
	"context"
	"database/sql"
)

// Engine is the durable object store behind an ExecContext. Implementations
// are only ever called from the context's queue goroutine, one call at a time.
type Engine interface {
	// FetchLists returns list records matching q in insertion order.
	FetchLists(ctx context.Context, q ListQuery) ([]ListEntity, error)

	// FetchItems returns item records matching q in insertion order.
	FetchItems(ctx context.Context, q ItemQuery) ([]ItemEntity, error)

	// CountItems returns the number of items owned by each of the lists
	// with the given ids. Lists without items are absent from the result.
	CountItems(ctx context.Context, listIDs []string) (map[string]int, error)

	// Save commits the records in c atomically. On success every record
	// has its PK assigned.
	Save(ctx context.Context, c *Changes) error

	Close() error
}

// ListQuery selects list records. A nil IDs matches every record.
type ListQuery struct {
	IDs []string
}

// ItemQuery selects item records by the string id of their parent list.
type ItemQuery struct {
	ListIDs []string
}

// ListEntity is the persisted shape of a tasks list. Fields are nullable
// because the store does not enforce them; the mapper does. CreatedAt and
// Type scan any stored value without error.
type ListEntity struct {
	PK        int64          `db:"pk"`
	ID        sql.NullString `db:"id"`
	Name      sql.NullString `db:"name"`
	CreatedAt Timestamp      `db:"created_at"`
	Type      Code           `db:"type"`
}

// ItemEntity is the persisted shape of a task item.
type ItemEntity struct {
	PK        int64          `db:"pk"`
	ID        sql.NullString `db:"id"`
	Name      sql.NullString `db:"name"`
	CreatedAt Timestamp      `db:"created_at"`
	Type      Code           `db:"type"`

	// ListPK is the parent's primary key. ListID is its string id and is
	// only filled by fetches.
	ListPK sql.NullInt64  `db:"list_pk"`
	ListID sql.NullString `db:"list_id"`

	parent *ListEntity
}

// SetParent attaches the item to list. A nil list leaves the item without
// a parent.
func (e *ItemEntity) SetParent(list *ListEntity) {
	e.parent = list
	if list == nil {
		e.ListPK = sql.NullInt64{}
		e.ListID = sql.NullString{}
		return
	}
	e.ListID = list.ID
	if list.PK != 0 {
		e.ListPK = sql.NullInt64{Int64: list.PK, Valid: true}
	}
}

// Parent returns the list attached with SetParent, if any.
func (e *ItemEntity) Parent() *ListEntity {
	return e.parent
}

// Changes is the set of records pending in a Scope.
type Changes struct {
	Lists []*ListEntity
	Items []*ItemEntity
}

// Empty reports whether there is nothing to commit.
func (c *Changes) Empty() bool {
	return c == nil || (len(c.Lists) == 0 && len(c.Items) == 0)
}
