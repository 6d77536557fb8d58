// Package service composes store reads into display-ready records.
package service

import (
	"errors"

	"github.com/activitylist/activitylist/internal/model"
)

// ErrReadFromRepository is the single error kind returned by the services.
// The underlying store error stays wrapped for diagnostics.
var ErrReadFromRepository = errors.New("read from repository")

// ImageLookup resolves the icon of an activity type. It never fails.
type ImageLookup[I any] interface {
	Image(kind model.ActivityType) I
}

// ImageLookupFunc adapts a function to ImageLookup.
type ImageLookupFunc[I any] func(kind model.ActivityType) I

// Image calls f(kind).
func (f ImageLookupFunc[I]) Image(kind model.ActivityType) I {
	return f(kind)
}
