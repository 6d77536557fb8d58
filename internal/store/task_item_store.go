package store

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/activitylist/activitylist/internal/model"
)

// TaskItemStore reads and writes task items through an ExecContext.
type TaskItemStore struct {
	ec     *ExecContext
	logger *log.Logger
}

var _ TaskItemRepository = (*TaskItemStore)(nil)

// NewTaskItemStore creates a TaskItemStore on ec.
func NewTaskItemStore(ec *ExecContext, opts ...Option) *TaskItemStore {
	o := buildOptions(opts)
	return &TaskItemStore{ec: ec, logger: o.logger}
}

// ReadItems returns the valid items of the list with the given id.
func (r *TaskItemStore) ReadItems(ctx context.Context, listID uuid.UUID) ([]model.TaskItem, error) {
	items, err := perform(ctx, r.ec, func(s *Scope) ([]model.TaskItem, error) {
		entities, err := s.FetchItems(ItemQuery{ListIDs: []string{listID.String()}})
		if err != nil {
			return nil, err
		}

		result := make([]model.TaskItem, 0, len(entities))
		for _, e := range entities {
			item, ok := itemToDomain(e)
			if !ok {
				quarantine(r.logger, kindTaskItem, e.PK, e.ID.String)
				continue
			}
			result = append(result, item)
		}
		return result, nil
	})
	if err != nil {
		return nil, kindError(ErrReadTaskItems, "reading items of tasks list %s: %w", listID, err)
	}
	return items, nil
}

// Insert persists item as a child of the list with id listID; item.ListID
// is not consulted. A failure to look the parent up is reported as
// ErrReadTaskItems and a failed commit as ErrInsertTaskItem. A parent that
// does not exist is not an error: the item is saved without one.
func (r *TaskItemStore) Insert(ctx context.Context, item model.TaskItem, listID uuid.UUID) error {
	err := r.ec.Do(ctx, func(s *Scope) error {
		parents, err := s.FetchLists(ListQuery{IDs: []string{listID.String()}})
		if err != nil {
			return kindError(ErrReadTaskItems, "resolving tasks list %s: %w", listID, err)
		}

		entity := newItemEntity(s, item)
		if len(parents) > 0 {
			entity.SetParent(&parents[0])
		} else {
			r.logger.Info("saving task item without parent", "item", item.ID, "list", listID)
		}

		if err := s.Save(); err != nil {
			return kindError(ErrInsertTaskItem, "inserting task item %s: %w", item.ID, err)
		}
		return nil
	})
	if err != nil && !errors.Is(err, ErrReadTaskItems) && !errors.Is(err, ErrInsertTaskItem) {
		return kindError(ErrInsertTaskItem, "inserting task item %s: %w", item.ID, err)
	}
	return err
}
