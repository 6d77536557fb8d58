package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/activitylist/activitylist/internal/model"
)

var errRepository = errors.New("repository failure")

// tasksListRepositoryStub returns canned results and records its calls.
type tasksListRepositoryStub struct {
	lists    []model.TasksList
	counts   map[uuid.UUID]int
	readErr  error
	countErr error

	readAllCalls   int
	readListsCalls int
	insertCalls    int
	countCalls     [][]uuid.UUID
}

func (s *tasksListRepositoryStub) ReadAll(context.Context) ([]model.TasksList, error) {
	s.readAllCalls++
	if s.readErr != nil {
		return nil, s.readErr
	}
	return s.lists, nil
}

func (s *tasksListRepositoryStub) ReadLists(context.Context) ([]model.TasksList, error) {
	s.readListsCalls++
	if s.readErr != nil {
		return nil, s.readErr
	}
	lists := make([]model.TasksList, len(s.lists))
	for i, l := range s.lists {
		l.Items = []model.TaskItem{}
		lists[i] = l
	}
	return lists, nil
}

func (s *tasksListRepositoryStub) Insert(context.Context, uuid.UUID, string, time.Time, model.ActivityType) error {
	s.insertCalls++
	return nil
}

func (s *tasksListRepositoryStub) ReadTaskItemsCount(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]int, error) {
	s.countCalls = append(s.countCalls, ids)
	if s.countErr != nil {
		return nil, s.countErr
	}
	return s.counts, nil
}

// taskItemRepositoryStub returns canned items and records requested lists.
type taskItemRepositoryStub struct {
	items   []model.TaskItem
	readErr error

	readArgs    []uuid.UUID
	insertCalls int
}

func (s *taskItemRepositoryStub) ReadItems(_ context.Context, listID uuid.UUID) ([]model.TaskItem, error) {
	s.readArgs = append(s.readArgs, listID)
	if s.readErr != nil {
		return nil, s.readErr
	}
	return s.items, nil
}

func (s *taskItemRepositoryStub) Insert(context.Context, model.TaskItem, uuid.UUID) error {
	s.insertCalls++
	return nil
}

// imageStub resolves every type to its integer value.
var imageStub = ImageLookupFunc[int](func(kind model.ActivityType) int { return int(kind) })

func makeTasksList(name string, kind model.ActivityType) model.TasksList {
	return model.TasksList{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		Type:      kind,
	}
}
