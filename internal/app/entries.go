package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/activitylist/activitylist/internal/model"
)

// listCreatedMsg is sent after a list is persisted.
type listCreatedMsg struct {
	id  uuid.UUID
	err error
}

// itemCreatedMsg is sent after an item is persisted.
type itemCreatedMsg struct {
	listID uuid.UUID
	err    error
}

func (m Model) createList(name string, kind model.ActivityType) tea.Cmd {
	s := m.lists
	return func() tea.Msg {
		id, err := s.Create(context.Background(), name, kind)
		return listCreatedMsg{id: id, err: err}
	}
}

// createItem adds an item to the open list.
func (m Model) createItem(name string, kind model.ActivityType) tea.Cmd {
	s := m.itemStore
	listID := m.items.ListID()
	item := model.TaskItem{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: m.clock().UTC(),
		Type:      kind,
		ListID:    listID,
	}
	return func() tea.Msg {
		return itemCreatedMsg{listID: listID, err: s.Insert(context.Background(), item, listID)}
	}
}
