package sqlite

import (
	"context"
	"fmt"

	"eventreg/internal/domain"
	"eventreg/internal/domain/entities"
	"eventreg/internal/ports/output"
)

var _ output.AttendeeRepository = (*AttendeeRepository)(nil)

type AttendeeRepository struct {
	q querier
}

func (r *AttendeeRepository) Create(ctx context.Context, attendee *entities.Attendee) error {
	res, err := r.q.ExecContext(ctx,
		`INSERT INTO attendees (event_id, name, email, registered_at)
		 SELECT e.id, ?, ?, ?
		 FROM events e
		 WHERE e.id = ?
		   AND (SELECT count(*) FROM attendees a WHERE a.event_id = e.id) < e.max_capacity`,
		attendee.Name,
		attendee.Email,
		toMillis(attendee.RegisteredAt),
		attendee.EventID,
	)
	if err != nil {
		return wrap("create attendee", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("create attendee: %w", err)
	}
	if n == 0 {
		var exists bool
		if err := r.q.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM events WHERE id = ?)`, attendee.EventID).Scan(&exists); err != nil {
			return fmt.Errorf("create attendee: %w", err)
		}
		if !exists {
			return domain.ErrEventNotFound
		}
		return domain.ErrEventFull
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create attendee: %w", err)
	}
	attendee.ID = id
	attendee.RegisteredAt = fromMillis(toMillis(attendee.RegisteredAt))
	return nil
}

func (r *AttendeeRepository) ExistsByEventIDAndEmail(ctx context.Context, eventID int64, email string) (bool, error) {
	var exists bool
	err := r.q.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM attendees WHERE event_id = ? AND email = ?)`,
		eventID, email,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check attendee email: %w", err)
	}
	return exists, nil
}

func (r *AttendeeRepository) CountByEventID(ctx context.Context, eventID int64) (int64, error) {
	var count int64
	if err := r.q.QueryRowContext(ctx, `SELECT count(*) FROM attendees WHERE event_id = ?`, eventID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count attendees: %w", err)
	}
	return count, nil
}

func (r *AttendeeRepository) ListByEventID(ctx context.Context, eventID int64, limit, offset int) ([]entities.Attendee, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT id, event_id, name, email, registered_at
		 FROM attendees
		 WHERE event_id = ?
		 ORDER BY registered_at, id
		 LIMIT ? OFFSET ?`,
		eventID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}
	defer rows.Close()

	out := make([]entities.Attendee, 0, limit)
	for rows.Next() {
		var (
			a          entities.Attendee
			registered int64
		)
		if err := rows.Scan(&a.ID, &a.EventID, &a.Name, &a.Email, &registered); err != nil {
			return nil, fmt.Errorf("scan attendee: %w", err)
		}
		a.RegisteredAt = fromMillis(registered)
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list attendees: %w", err)
	}
	return out, nil
}
