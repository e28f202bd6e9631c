package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"eventreg/internal/domain"
	"eventreg/internal/domain/entities"
	"eventreg/internal/infrastructure/database/sqlc_generated"
	"eventreg/internal/ports/output"
)

var _ output.AttendeeRepository = (*AttendeeRepository)(nil)

// AttendeeRepository implements output.AttendeeRepository using sqlc + pgx.
type AttendeeRepository struct {
	q *sqlc_generated.Queries
}

func NewAttendeeRepository(q *sqlc_generated.Queries) *AttendeeRepository {
	return &AttendeeRepository{q: q}
}

func (r *AttendeeRepository) Create(ctx context.Context, attendee *entities.Attendee) error {
	row, err := r.q.CreateAttendeeWithinCapacity(ctx, sqlc_generated.CreateAttendeeWithinCapacityParams{
		Name:         attendee.Name,
		Email:        attendee.Email,
		RegisteredAt: timeToPgtypeTimestamptz(attendee.RegisteredAt),
		EventID:      attendee.EventID,
	})
	if errors.Is(err, pgx.ErrNoRows) {
		// Either the event is gone or it has no slot left.
		if _, ferr := r.q.GetEventByID(ctx, attendee.EventID); ferr != nil {
			return wrap("create attendee", ferr)
		}
		return domain.ErrEventFull
	}
	if err != nil {
		return wrap("create attendee", err)
	}
	*attendee = attendeeToDomain(row)
	return nil
}

func (r *AttendeeRepository) ExistsByEventIDAndEmail(ctx context.Context, eventID int64, email string) (bool, error) {
	exists, err := r.q.AttendeeExistsByEventIDAndEmail(ctx, sqlc_generated.AttendeeExistsByEventIDAndEmailParams{
		EventID: eventID,
		Email:   email,
	})
	if err != nil {
		return false, fmt.Errorf("check attendee email: %w", err)
	}
	return exists, nil
}

func (r *AttendeeRepository) CountByEventID(ctx context.Context, eventID int64) (int64, error) {
	count, err := r.q.CountAttendeesByEventID(ctx, eventID)
	if err != nil {
		return 0, fmt.Errorf("count attendees: %w", err)
	}
	return count, nil
}

func (r *AttendeeRepository) ListByEventID(ctx context.Context, eventID int64, limit, offset int) ([]entities.Attendee, error) {
	rows, err := r.q.ListAttendeesByEventID(ctx, sqlc_generated.ListAttendeesByEventIDParams{
		EventID: eventID,
		Limit:   int32(limit),
		Offset:  int32(offset),
	})
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}
	out := make([]entities.Attendee, len(rows))
	for i := range rows {
		out[i] = attendeeToDomain(rows[i])
	}
	return out, nil
}
