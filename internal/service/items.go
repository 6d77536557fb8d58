package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/activitylist/activitylist/internal/model"
	"github.com/activitylist/activitylist/internal/store"
)

// TaskItemsService lists the items of one tasks list with their icons.
type TaskItemsService[I any] struct {
	listID uuid.UUID
	items  store.TaskItemRepository
	images ImageLookup[I]
}

// NewTaskItemsService creates a TaskItemsService bound to the list listID.
func NewTaskItemsService[I any](listID uuid.UUID, items store.TaskItemRepository, images ImageLookup[I]) *TaskItemsService[I] {
	return &TaskItemsService[I]{listID: listID, items: items, images: images}
}

// ReadTaskItems returns the list's items in repository order.
func (s *TaskItemsService[I]) ReadTaskItems(ctx context.Context) ([]model.TaskItemInfo[I], error) {
	items, err := s.items.ReadItems(ctx, s.listID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFromRepository, err)
	}

	infos := make([]model.TaskItemInfo[I], 0, len(items))
	for _, it := range items {
		infos = append(infos, model.TaskItemInfo[I]{
			ID:        it.ID,
			Name:      it.Name,
			Type:      it.Type,
			CreatedAt: it.CreatedAt,
			Icon:      s.images.Image(it.Type),
		})
	}
	return infos, nil
}
