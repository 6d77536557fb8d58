package store

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/activitylist/activitylist/internal/model"
)

// TasksListStore reads and writes tasks lists through an ExecContext.
type TasksListStore struct {
	ec     *ExecContext
	clock  Clock
	logger *log.Logger
}

var _ TasksListRepository = (*TasksListStore)(nil)

// NewTasksListStore creates a TasksListStore on ec.
func NewTasksListStore(ec *ExecContext, opts ...Option) *TasksListStore {
	o := buildOptions(opts)
	return &TasksListStore{ec: ec, clock: o.clock, logger: o.logger}
}

// ReadAll returns every valid tasks list with its valid items, in insertion
// order. Malformed records are dropped; only an engine failure is an error,
// reported as ErrReadTasksLists.
func (r *TasksListStore) ReadAll(ctx context.Context) ([]model.TasksList, error) {
	return r.read(ctx, true)
}

// ReadLists is ReadAll without the items: no item record is fetched and
// every returned list has an empty Items slice. Pair it with
// ReadTaskItemsCount when only the counts are needed.
func (r *TasksListStore) ReadLists(ctx context.Context) ([]model.TasksList, error) {
	return r.read(ctx, false)
}

func (r *TasksListStore) read(ctx context.Context, withItems bool) ([]model.TasksList, error) {
	lists, err := perform(ctx, r.ec, func(s *Scope) ([]model.TasksList, error) {
		entities, err := s.FetchLists(ListQuery{})
		if err != nil {
			return nil, err
		}

		var itemsByList map[string][]model.TaskItem
		if withItems {
			if itemsByList, err = r.fetchItems(s, entities); err != nil {
				return nil, err
			}
		}

		result := make([]model.TasksList, 0, len(entities))
		for _, e := range entities {
			list, ok := listToDomain(e, itemsByList[e.ID.String])
			if !ok {
				quarantine(r.logger, kindTasksList, e.PK, e.ID.String)
				continue
			}
			result = append(result, list)
		}
		return result, nil
	})
	if err != nil {
		return nil, kindError(ErrReadTasksLists, "reading tasks lists: %w", err)
	}
	return lists, nil
}

// fetchItems loads the valid items of the given lists in one engine call,
// grouped by list id.
func (r *TasksListStore) fetchItems(s *Scope, lists []ListEntity) (map[string][]model.TaskItem, error) {
	ids := make([]string, 0, len(lists))
	for _, e := range lists {
		if _, ok := parseID(e.ID); ok {
			ids = append(ids, e.ID.String)
		}
	}

	entities, err := s.FetchItems(ItemQuery{ListIDs: ids})
	if err != nil {
		return nil, err
	}
	byList := make(map[string][]model.TaskItem, len(ids))
	for _, ie := range entities {
		item, ok := itemToDomain(ie)
		if !ok {
			quarantine(r.logger, kindTaskItem, ie.PK, ie.ID.String)
			continue
		}
		byList[ie.ListID.String] = append(byList[ie.ListID.String], item)
	}
	return byList, nil
}

// Insert persists a new tasks list. A failed commit is reported as
// ErrInsertTasksList.
func (r *TasksListStore) Insert(
	ctx context.Context,
	id uuid.UUID,
	name string,
	createdAt time.Time,
	kind model.ActivityType,
) error {
	err := r.ec.Do(ctx, func(s *Scope) error {
		newListEntity(s, id, name, createdAt, kind)
		return s.Save()
	})
	if err != nil {
		return kindError(ErrInsertTasksList, "inserting tasks list %s: %w", id, err)
	}
	return nil
}

// Create inserts a tasks list with a fresh id, stamped with the store's
// clock, and returns the id.
func (r *TasksListStore) Create(ctx context.Context, name string, kind model.ActivityType) (uuid.UUID, error) {
	id := uuid.New()
	if err := r.Insert(ctx, id, name, r.clock(), kind); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

// ReadTaskItemsCount returns the number of items owned by each of the given
// lists, computed in one engine call. Lists without items are omitted, so
// callers treat a missing id as zero. Failures are reported as
// ErrReadTasksLists.
func (r *TasksListStore) ReadTaskItemsCount(ctx context.Context, listIDs []uuid.UUID) (map[uuid.UUID]int, error) {
	counts := make(map[uuid.UUID]int)
	if len(listIDs) == 0 {
		return counts, nil
	}

	keys := make([]string, 0, len(listIDs))
	byKey := make(map[string]uuid.UUID, len(listIDs))
	for _, id := range listIDs {
		k := id.String()
		if _, seen := byKey[k]; seen {
			continue
		}
		byKey[k] = id
		keys = append(keys, k)
	}

	raw, err := perform(ctx, r.ec, func(s *Scope) (map[string]int, error) {
		return s.CountItems(keys)
	})
	if err != nil {
		return nil, kindError(ErrReadTasksLists, "counting task items: %w", err)
	}

	for k, n := range raw {
		if id, ok := byKey[k]; ok && n > 0 {
			counts[id] = n
		}
	}
	return counts, nil
}
