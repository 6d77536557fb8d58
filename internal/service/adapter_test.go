package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/activitylist/activitylist/internal/model"
)

func TestHomeItems(t *testing.T) {
	ctx := context.Background()

	t.Run("Rows", func(t *testing.T) {
		a := makeTasksList("Trip", model.ActivityAirplane)
		b := makeTasksList("Groceries", model.ActivityShop)
		repo := &tasksListRepositoryStub{
			lists:  []model.TasksList{a, b},
			counts: map[uuid.UUID]int{a.ID: 3},
		}
		sut := NewHomeItems(NewHomeService[int](repo, imageStub))

		rows, err := sut.ReadItems(ctx)
		require.NoError(t, err)
		assert.Equal(t, []ItemData[int]{
			{Title: "Trip", Subtitle: "3 Tasks", Icon: int(model.ActivityAirplane)},
			{Title: "Groceries", Subtitle: "0 Tasks", Icon: int(model.ActivityShop)},
		}, rows)
	})

	t.Run("Failure", func(t *testing.T) {
		repo := &tasksListRepositoryStub{readErr: errRepository}
		sut := NewHomeItems(NewHomeService[int](repo, imageStub))

		_, err := sut.ReadItems(ctx)
		assert.ErrorIs(t, err, ErrReadFromRepository)
	})
}
