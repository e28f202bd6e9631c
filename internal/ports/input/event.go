package input

import (
	"context"
	"time"

	"eventreg/internal/domain/entities"
)

// EventInput carries the mutable fields of an event.
type EventInput struct {
	Name        string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
	MaxCapacity int
}

// EventPatch carries a partial update; nil fields are left unchanged.
type EventPatch struct {
	Name        *string
	Location    *string
	StartTime   *time.Time
	EndTime     *time.Time
	MaxCapacity *int
}

type EventUseCase interface {
	CreateEvent(ctx context.Context, in EventInput) (*entities.Event, error)
	UpdateEvent(ctx context.Context, id int64, in EventInput) (*entities.Event, error)
	PatchEvent(ctx context.Context, id int64, patch EventPatch) (*entities.Event, error)
	DeleteEvent(ctx context.Context, id int64) error
}
