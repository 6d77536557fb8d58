package store

import (
	"database/sql"
	"io"
	"math"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/activitylist/activitylist/internal/model"
)

var mapperTime = time.Date(2024, 4, 1, 12, 0, 0, 0, time.UTC)

func validListEntity(id uuid.UUID) ListEntity {
	return ListEntity{
		PK:        1,
		ID:        sql.NullString{String: id.String(), Valid: true},
		Name:      sql.NullString{String: "Trip", Valid: true},
		CreatedAt: Timestamp{Time: mapperTime, Valid: true},
		Type:      codeOf(model.ActivityAirplane),
	}
}

func TestListToDomain(t *testing.T) {
	id := uuid.New()

	t.Run("Valid", func(t *testing.T) {
		got, ok := listToDomain(validListEntity(id), nil)
		require.True(t, ok)
		assert.Equal(t, model.TasksList{
			ID:        id,
			Name:      "Trip",
			CreatedAt: mapperTime,
			Type:      model.ActivityAirplane,
			Items:     []model.TaskItem{},
		}, got)
	})

	t.Run("NormalizesTimeZone", func(t *testing.T) {
		e := validListEntity(id)
		e.CreatedAt.Time = mapperTime.In(time.FixedZone("CET", 3600))

		got, ok := listToDomain(e, nil)
		require.True(t, ok)
		assert.Equal(t, mapperTime, got.CreatedAt)
	})

	invalid := map[string]func(e *ListEntity){
		"NullID":        func(e *ListEntity) { e.ID = sql.NullString{} },
		"UnparsableID":  func(e *ListEntity) { e.ID.String = "invalid_id" },
		"NullName":      func(e *ListEntity) { e.Name = sql.NullString{} },
		"NullCreatedAt": func(e *ListEntity) { e.CreatedAt = Timestamp{} },
		"UnknownType":   func(e *ListEntity) { e.Type = Code{Int64: math.MaxInt16, Valid: true} },
		"WideType":      func(e *ListEntity) { e.Type = Code{Int64: 40000, Valid: true} },
		"NegativeType":  func(e *ListEntity) { e.Type = Code{Int64: -1, Valid: true} },
		"UnreadType":    func(e *ListEntity) { e.Type = Code{} },
	}
	for name, mutate := range invalid {
		t.Run(name, func(t *testing.T) {
			e := validListEntity(id)
			mutate(&e)
			_, ok := listToDomain(e, nil)
			assert.False(t, ok)
		})
	}
}

func TestItemToDomain(t *testing.T) {
	id, listID := uuid.New(), uuid.New()
	valid := func() ItemEntity {
		return ItemEntity{
			PK:        3,
			ID:        sql.NullString{String: id.String(), Valid: true},
			Name:      sql.NullString{String: "Pack", Valid: true},
			CreatedAt: Timestamp{Time: mapperTime, Valid: true},
			Type:      codeOf(model.ActivityShop),
			ListPK:    sql.NullInt64{Int64: 1, Valid: true},
			ListID:    sql.NullString{String: listID.String(), Valid: true},
		}
	}

	got, ok := itemToDomain(valid())
	require.True(t, ok)
	assert.Equal(t, model.TaskItem{
		ID:        id,
		Name:      "Pack",
		CreatedAt: mapperTime,
		Type:      model.ActivityShop,
		ListID:    listID,
	}, got)

	invalid := map[string]func(e *ItemEntity){
		"UnparsableID":  func(e *ItemEntity) { e.ID.String = "nope" },
		"NullName":      func(e *ItemEntity) { e.Name = sql.NullString{} },
		"NullCreatedAt": func(e *ItemEntity) { e.CreatedAt = Timestamp{} },
		"NoParent":      func(e *ItemEntity) { e.ListID = sql.NullString{} },
		"UnknownType":   func(e *ItemEntity) { e.Type = Code{Int64: 10, Valid: true} },
	}
	for name, mutate := range invalid {
		t.Run(name, func(t *testing.T) {
			e := valid()
			mutate(&e)
			_, ok := itemToDomain(e)
			assert.False(t, ok)
		})
	}
}

func TestActivityCodes(t *testing.T) {
	seen := make(map[int64]model.ActivityType)
	for _, kind := range model.ActivityTypes {
		code := activityCode(kind)
		back, ok := activityFromCode(code)
		require.True(t, ok, "code %d of %s", code, kind)
		assert.Equal(t, kind, back)

		_, dup := seen[code]
		assert.False(t, dup, "code %d reused", code)
		seen[code] = kind
	}

	_, ok := activityFromCode(int64(len(model.ActivityTypes)))
	assert.False(t, ok)
	_, ok = activityFromCode(math.MaxInt64)
	assert.False(t, ok)
	assert.Equal(t, int64(4), activityCode(model.ActivityAirplane))
}

func TestNewEntities(t *testing.T) {
	engine := &recordingEngine{}
	ec := NewExecContext(engine, 0)
	defer ec.Close()
	s := &Scope{ctx: t.Context(), ec: ec}

	listID := uuid.New()
	list := newListEntity(s, listID, "Trip", mapperTime, model.ActivitySwimming)
	item := newItemEntity(s, model.TaskItem{ID: uuid.New(), Name: "Goggles", CreatedAt: mapperTime, Type: model.ActivitySwimming})

	assert.Equal(t, listID.String(), list.ID.String)
	assert.Equal(t, codeOf(model.ActivitySwimming), list.Type)
	assert.False(t, item.ListPK.Valid)
	assert.Nil(t, item.Parent())

	item.SetParent(list)
	assert.Same(t, list, item.Parent())
	assert.Equal(t, listID.String(), item.ListID.String)
	assert.Len(t, ec.pending.Lists, 1)
	assert.Len(t, ec.pending.Items, 1)
	ec.pending = Changes{}
}

func TestQuarantineCounts(t *testing.T) {
	before := promtest.ToFloat64(quarantinedCounter.WithLabelValues(kindTasksList))
	quarantine(log.New(io.Discard), kindTasksList, 7, "invalid_id")
	after := promtest.ToFloat64(quarantinedCounter.WithLabelValues(kindTasksList))
	assert.Equal(t, before+1, after)
}
