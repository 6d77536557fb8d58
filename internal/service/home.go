package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/activitylist/activitylist/internal/model"
	"github.com/activitylist/activitylist/internal/store"
)

// HomeService builds the home screen: every tasks list with its item count
// and icon.
type HomeService[I any] struct {
	lists  store.TasksListRepository
	images ImageLookup[I]
}

// NewHomeService creates a HomeService reading from lists and resolving
// icons with images.
func NewHomeService[I any](lists store.TasksListRepository, images ImageLookup[I]) *HomeService[I] {
	return &HomeService[I]{lists: lists, images: images}
}

// ReadTasksInfos returns one TasksListInfo per list, in the order the
// repository returned the lists. Lists are read without their items and
// counts are read after them, for their ids only; a list without a count has zero items. Any repository failure
// is returned as ErrReadFromRepository.
func (s *HomeService[I]) ReadTasksInfos(ctx context.Context) ([]model.TasksListInfo[I], error) {
	lists, err := s.lists.ReadLists(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFromRepository, err)
	}

	ids := make([]uuid.UUID, len(lists))
	for i, l := range lists {
		ids[i] = l.ID
	}

	counts, err := s.lists.ReadTaskItemsCount(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadFromRepository, err)
	}

	infos := make([]model.TasksListInfo[I], 0, len(lists))
	for _, l := range lists {
		infos = append(infos, model.TasksListInfo[I]{
			ID:         l.ID,
			Name:       l.Name,
			Type:       l.Type,
			TasksCount: counts[l.ID],
			Icon:       s.images.Image(l.Type),
		})
	}
	return infos, nil
}
