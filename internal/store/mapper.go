package store

import (
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/activitylist/activitylist/internal/model"
)

// listToDomain converts a list record and its already mapped items.
// It reports false when the record has no valid id, name, creation time or
// type code.
func listToDomain(e ListEntity, items []model.TaskItem) (model.TasksList, bool) {
	id, ok := parseID(e.ID)
	if !ok || !e.Name.Valid || !e.CreatedAt.Valid {
		return model.TasksList{}, false
	}
	kind, ok := kindOf(e.Type)
	if !ok {
		return model.TasksList{}, false
	}
	if items == nil {
		items = []model.TaskItem{}
	}
	return model.TasksList{
		ID:        id,
		Name:      e.Name.String,
		CreatedAt: e.CreatedAt.Time.UTC(),
		Type:      kind,
		Items:     items,
	}, true
}

// itemToDomain converts an item record. The parent list id is required.
func itemToDomain(e ItemEntity) (model.TaskItem, bool) {
	id, ok := parseID(e.ID)
	if !ok || !e.Name.Valid || !e.CreatedAt.Valid {
		return model.TaskItem{}, false
	}
	listID, ok := parseID(e.ListID)
	if !ok {
		return model.TaskItem{}, false
	}
	kind, ok := kindOf(e.Type)
	if !ok {
		return model.TaskItem{}, false
	}
	return model.TaskItem{
		ID:        id,
		Name:      e.Name.String,
		CreatedAt: e.CreatedAt.Time.UTC(),
		Type:      kind,
		ListID:    listID,
	}, true
}

// newListEntity creates a list record pending in s.
func newListEntity(s *Scope, id uuid.UUID, name string, createdAt time.Time, kind model.ActivityType) *ListEntity {
	e := s.NewList()
	e.ID = sql.NullString{String: id.String(), Valid: true}
	e.Name = sql.NullString{String: name, Valid: true}
	e.CreatedAt = Timestamp{Time: createdAt.UTC(), Valid: true}
	e.Type = codeOf(kind)
	return e
}

// newItemEntity creates an item record pending in s. The caller attaches
// the parent once it has been located.
func newItemEntity(s *Scope, item model.TaskItem) *ItemEntity {
	e := s.NewItem()
	e.ID = sql.NullString{String: item.ID.String(), Valid: true}
	e.Name = sql.NullString{String: item.Name, Valid: true}
	e.CreatedAt = Timestamp{Time: item.CreatedAt.UTC(), Valid: true}
	e.Type = codeOf(item.Type)
	return e
}

func parseID(s sql.NullString) (uuid.UUID, bool) {
	if !s.Valid {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(s.String)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// kindOf resolves a stored code; unreadable and out of range codes fail.
func kindOf(c Code) (model.ActivityType, bool) {
	if !c.Valid {
		return model.ActivityUndefined, false
	}
	return activityFromCode(c.Int64)
}
