package service

import (
	"context"
	"fmt"
)

// ItemData is one row of a generic list screen.
type ItemData[I any] struct {
	Title    string
	Subtitle string
	Icon     I
}

// HomeItems presents the home screen as list rows: the list name as title
// and its item count as subtitle.
type HomeItems[I any] struct {
	home *HomeService[I]
}

// NewHomeItems wraps home.
func NewHomeItems[I any](home *HomeService[I]) *HomeItems[I] {
	return &HomeItems[I]{home: home}
}

// ReadItems returns one row per tasks list.
func (a *HomeItems[I]) ReadItems(ctx context.Context) ([]ItemData[I], error) {
	infos, err := a.home.ReadTasksInfos(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]ItemData[I], 0, len(infos))
	for _, info := range infos {
		rows = append(rows, ItemData[I]{
			Title:    info.Name,
			Subtitle: fmt.Sprintf("%d Tasks", info.TasksCount),
			Icon:     info.Icon,
		})
	}
	return rows, nil
}
