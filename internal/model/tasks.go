package model

import (
	"time"

	"github.com/google/uuid"
)

// TasksList is a named, typed collection of task items.
type TasksList struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	Type      ActivityType

	// Items holds the valid items owned by the list. Order is not significant.
	Items []TaskItem
}

// TaskItem is a single entry of a tasks list.
type TaskItem struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
	Type      ActivityType

	// ListID references the owning TasksList.
	ListID uuid.UUID
}

// TasksListInfo is the display projection of a tasks list: its metadata,
// the number of items it owns and the icon resolved for its type.
// It is built per read and never persisted.
type TasksListInfo[I any] struct {
	ID         uuid.UUID
	Name       string
	Type       ActivityType
	TasksCount int
	Icon       I
}

// TaskItemInfo is the display projection of a task item.
type TaskItemInfo[I any] struct {
	ID        uuid.UUID
	Name      string
	Type      ActivityType
	CreatedAt time.Time
	Icon      I
}
