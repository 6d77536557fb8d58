package store_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/activitylist/activitylist/internal/model"
	"github.com/activitylist/activitylist/internal/store"
	"github.com/activitylist/activitylist/tests/testutil"
)

func newStores(t *testing.T, engine store.Engine) (*store.TasksListStore, *store.TaskItemStore, *store.ExecContext) {
	t.Helper()
	lists, ec := newListStore(t, engine)
	items := store.NewTaskItemStore(ec, store.WithLogger(testutil.QuietLogger()))
	return lists, items, ec
}

func TestTaskItemStore(t *testing.T) {
	ctx := context.Background()

	t.Run("ReadItemsEmpty", func(t *testing.T) {
		_, sut, _ := newStores(t, nil)

		items, err := sut.ReadItems(ctx, uuid.New())
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("InsertThenReadItems", func(t *testing.T) {
		lists, sut, _ := newStores(t, nil)
		listID := uuid.New()
		require.NoError(t, lists.Insert(ctx, listID, "Trip", createdAt, model.ActivityAirplane))

		first := model.TaskItem{ID: uuid.New(), Name: "Book flights", CreatedAt: createdAt, Type: model.ActivityAirplane}
		second := model.TaskItem{ID: uuid.New(), Name: "Pack", CreatedAt: createdAt, Type: model.ActivityShop}
		require.NoError(t, sut.Insert(ctx, first, listID))
		require.NoError(t, sut.Insert(ctx, second, listID))

		items, err := sut.ReadItems(ctx, listID)
		require.NoError(t, err)

		first.ListID, second.ListID = listID, listID
		assert.Equal(t, []model.TaskItem{first, second}, items)
	})

	t.Run("ReadItemsIsScopedToList", func(t *testing.T) {
		lists, sut, _ := newStores(t, nil)
		listA, listB := uuid.New(), uuid.New()
		require.NoError(t, lists.Insert(ctx, listA, "A", createdAt, model.ActivityGym))
		require.NoError(t, lists.Insert(ctx, listB, "B", createdAt, model.ActivityGym))
		insertItems(t, sut, listA, 2)
		insertItems(t, sut, listB, 5)

		items, err := sut.ReadItems(ctx, listB)
		require.NoError(t, err)
		assert.Len(t, items, 5)
		for _, it := range items {
			assert.Equal(t, listB, it.ListID)
		}
	})

	t.Run("ListIDArgumentWins", func(t *testing.T) {
		lists, sut, _ := newStores(t, nil)
		listID := uuid.New()
		require.NoError(t, lists.Insert(ctx, listID, "A", createdAt, model.ActivityGym))

		item := model.TaskItem{ID: uuid.New(), Name: "x", CreatedAt: createdAt, ListID: uuid.New()}
		require.NoError(t, sut.Insert(ctx, item, listID))

		items, err := sut.ReadItems(ctx, listID)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, listID, items[0].ListID)
	})

	t.Run("OrphanInsert", func(t *testing.T) {
		lists, sut, _ := newStores(t, nil)
		missing := uuid.New()

		item := model.TaskItem{ID: uuid.New(), Name: "orphan", CreatedAt: createdAt, Type: model.ActivityGame}
		require.NoError(t, sut.Insert(ctx, item, missing))

		items, err := sut.ReadItems(ctx, missing)
		require.NoError(t, err)
		assert.Empty(t, items)

		counts, err := lists.ReadTaskItemsCount(ctx, []uuid.UUID{missing})
		require.NoError(t, err)
		assert.Empty(t, counts)
	})

	t.Run("QuarantinesInvalidItems", func(t *testing.T) {
		lists, sut, ec := newStores(t, nil)
		listID := uuid.New()
		require.NoError(t, lists.Insert(ctx, listID, "A", createdAt, model.ActivityGym))
		valid := model.TaskItem{ID: uuid.New(), Name: "valid", CreatedAt: createdAt, Type: model.ActivityGym}
		require.NoError(t, sut.Insert(ctx, valid, listID))

		err := ec.Do(ctx, func(s *store.Scope) error {
			parents, err := s.FetchLists(store.ListQuery{IDs: []string{listID.String()}})
			if err != nil {
				return err
			}
			bad := s.NewItem()
			bad.ID = sql.NullString{String: "invalid_id", Valid: true}
			bad.Name = sql.NullString{String: "bad", Valid: true}
			bad.CreatedAt = store.Timestamp{Time: createdAt, Valid: true}
			bad.SetParent(&parents[0])

			unknown := s.NewItem()
			unknown.ID = sql.NullString{String: uuid.NewString(), Valid: true}
			unknown.Name = sql.NullString{String: "unknown", Valid: true}
			unknown.CreatedAt = store.Timestamp{Time: createdAt, Valid: true}
			unknown.Type = store.Code{Int64: 42, Valid: true}
			unknown.SetParent(&parents[0])
			return s.Save()
		})
		require.NoError(t, err)

		items, err := sut.ReadItems(ctx, listID)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, valid.ID, items[0].ID)

		// Counts reflect stored records, valid or not.
		counts, err := lists.ReadTaskItemsCount(ctx, []uuid.UUID{listID})
		require.NoError(t, err)
		assert.Equal(t, 3, counts[listID])
	})

	t.Run("QuarantinesUnreadableColumns", func(t *testing.T) {
		engine, path := testutil.NewFileEngine(t)
		lists, sut, _ := newStores(t, engine)
		raw := testutil.RawDB(t, path)

		listID := uuid.New()
		require.NoError(t, lists.Insert(ctx, listID, "A", createdAt, model.ActivityGym))
		valid := model.TaskItem{ID: uuid.New(), Name: "valid", CreatedAt: createdAt, Type: model.ActivityGym}
		require.NoError(t, sut.Insert(ctx, valid, listID))

		for _, row := range []struct {
			createdAt any
			code      any
		}{
			{createdAt, 40000},
			{createdAt, "swimming"},
			{"garbage", 2},
		} {
			_, err := raw.Exec(`
				INSERT INTO task_items (id, name, created_at, type, list_pk)
				SELECT ?, 'raw', ?, ?, pk FROM tasks_lists WHERE id = ?`,
				uuid.NewString(), row.createdAt, row.code, listID.String(),
			)
			require.NoError(t, err)
		}

		items, err := sut.ReadItems(ctx, listID)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, valid.ID, items[0].ID)

		all, err := lists.ReadAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, []model.TaskItem{items[0]}, all[0].Items)
	})
}

func TestTaskItemStoreErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("ReadItems", func(t *testing.T) {
		_, sut, _ := newStores(t, testutil.FailingEngine(t))

		_, err := sut.ReadItems(ctx, uuid.New())
		require.ErrorIs(t, err, store.ErrReadTaskItems)
		assert.ErrorIs(t, err, testutil.ErrEngine)
	})

	t.Run("InsertParentLookup", func(t *testing.T) {
		_, sut, _ := newStores(t, testutil.FailingEngine(t))

		err := sut.Insert(ctx, model.TaskItem{ID: uuid.New(), Name: "x", CreatedAt: createdAt}, uuid.New())
		require.ErrorIs(t, err, store.ErrReadTaskItems)
		assert.NotErrorIs(t, err, store.ErrInsertTaskItem)
	})

	t.Run("InsertSave", func(t *testing.T) {
		engine := &testutil.ErrorProneEngine{Engine: testutil.NewTestEngine(t), FailSave: true}
		_, sut, _ := newStores(t, engine)

		err := sut.Insert(ctx, model.TaskItem{ID: uuid.New(), Name: "x", CreatedAt: createdAt}, uuid.New())
		require.ErrorIs(t, err, store.ErrInsertTaskItem)
		assert.ErrorIs(t, err, testutil.ErrEngine)
		assert.NotErrorIs(t, err, store.ErrReadTaskItems)
	})

	t.Run("Closed", func(t *testing.T) {
		ec := store.NewExecContext(testutil.NewTestEngine(t), 0)
		sut := store.NewTaskItemStore(ec, store.WithLogger(testutil.QuietLogger()))
		require.NoError(t, ec.Close())

		err := sut.Insert(ctx, model.TaskItem{ID: uuid.New()}, uuid.New())
		require.ErrorIs(t, err, store.ErrInsertTaskItem)
		assert.ErrorIs(t, err, store.ErrClosed)
	})
}
