package database

import (
	"context"
	"fmt"
	"time"

	"eventreg/internal/domain"
	"eventreg/internal/domain/entities"
	"eventreg/internal/infrastructure/database/sqlc_generated"
	"eventreg/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

type EventRepository struct {
	q *sqlc_generated.Queries
}

func NewEventRepository(q *sqlc_generated.Queries) *EventRepository {
	return &EventRepository{q: q}
}

func (r *EventRepository) Create(ctx context.Context, event *entities.Event) error {
	createdAt := event.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	row, err := r.q.CreateEvent(ctx, sqlc_generated.CreateEventParams{
		Name:        event.Name,
		Location:    event.Location,
		StartTime:   timeToPgtypeTimestamptz(event.StartTime),
		EndTime:     timeToPgtypeTimestamptz(event.EndTime),
		MaxCapacity: int32(event.MaxCapacity),
		CreatedAt:   timeToPgtypeTimestamptz(createdAt),
	})
	if err != nil {
		return wrap("create event", err)
	}
	*event = eventToDomain(row)
	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, id int64) (*entities.Event, error) {
	row, err := r.q.GetEventByID(ctx, id)
	if err != nil {
		return nil, wrap("get event by id", err)
	}
	e := eventToDomain(row)
	return &e, nil
}

func (r *EventRepository) FindByIDForUpdate(ctx context.Context, id int64) (*entities.Event, error) {
	row, err := r.q.GetEventByIDForUpdate(ctx, id)
	if err != nil {
		return nil, wrap("lock event", err)
	}
	e := eventToDomain(row)
	return &e, nil
}

func (r *EventRepository) ListUpcoming(ctx context.Context, now time.Time, limit, offset int) ([]entities.Event, error) {
	rows, err := r.q.ListUpcomingEvents(ctx, sqlc_generated.ListUpcomingEventsParams{
		Now:       timeToPgtypeTimestamptz(now),
		RowLimit:  int32(limit),
		RowOffset: int32(offset),
	})
	if err != nil {
		return nil, fmt.Errorf("list upcoming events: %w", err)
	}
	out := make([]entities.Event, len(rows))
	for i := range rows {
		out[i] = eventToDomain(rows[i])
	}
	return out, nil
}

func (r *EventRepository) CountUpcoming(ctx context.Context, now time.Time) (int64, error) {
	count, err := r.q.CountUpcomingEvents(ctx, timeToPgtypeTimestamptz(now))
	if err != nil {
		return 0, fmt.Errorf("count upcoming events: %w", err)
	}
	return count, nil
}

func (r *EventRepository) Update(ctx context.Context, event *entities.Event) error {
	row, err := r.q.UpdateEvent(ctx, sqlc_generated.UpdateEventParams{
		ID:          event.ID,
		Name:        event.Name,
		Location:    event.Location,
		StartTime:   timeToPgtypeTimestamptz(event.StartTime),
		EndTime:     timeToPgtypeTimestamptz(event.EndTime),
		MaxCapacity: int32(event.MaxCapacity),
	})
	if err != nil {
		return wrap("update event", err)
	}
	*event = eventToDomain(row)
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	n, err := r.q.DeleteEvent(ctx, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if n == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}

// wrap returns the domain error behind err when there is one, else err with
// the operation name.
func wrap(op string, err error) error {
	if derr := domainError(err); derr != nil {
		return derr
	}
	return fmt.Errorf("%s: %w", op, err)
}
