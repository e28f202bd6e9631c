//go:generate go run go.uber.org/mock/mockgen -source=event_repo.go -destination=../../mocks/mock_event_repo.go -package=mocks
package output

import (
	"context"
	"time"

	"eventreg/internal/domain/entities"
)

// EventRepository persists events. Implementations translate storage failures
// into domain errors: a missing row is domain.ErrEventNotFound, a violated
// schedule uniqueness is domain.ErrEventScheduleConflict and a violated time
// ordering check is domain.ErrInvalidTimeRange.
type EventRepository interface {
	Create(ctx context.Context, event *entities.Event) error
	FindByID(ctx context.Context, id int64) (*entities.Event, error)
	// FindByIDForUpdate locks the event row until the enclosing transaction ends.
	FindByIDForUpdate(ctx context.Context, id int64) (*entities.Event, error)
	ListUpcoming(ctx context.Context, now time.Time, limit, offset int) ([]entities.Event, error)
	CountUpcoming(ctx context.Context, now time.Time) (int64, error)
	Update(ctx context.Context, event *entities.Event) error
	Delete(ctx context.Context, id int64) error
}
