package sqlite

import (
	"context"
	"fmt"
	"time"

	"eventreg/internal/domain"
	"eventreg/internal/domain/entities"
	"eventreg/internal/ports/output"
)

var _ output.EventRepository = (*EventRepository)(nil)

type EventRepository struct {
	q querier
}

const eventColumns = `id, name, location, start_time, end_time, max_capacity, created_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(row rowScanner) (entities.Event, error) {
	var (
		e                   entities.Event
		start, end, created int64
	)
	if err := row.Scan(&e.ID, &e.Name, &e.Location, &start, &end, &e.MaxCapacity, &created); err != nil {
		return entities.Event{}, err
	}
	e.StartTime = fromMillis(start)
	e.EndTime = fromMillis(end)
	e.CreatedAt = fromMillis(created)
	return e, nil
}

func (r *EventRepository) Create(ctx context.Context, event *entities.Event) error {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	res, err := r.q.ExecContext(ctx,
		`INSERT INTO events (name, location, start_time, end_time, max_capacity, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		event.Name,
		event.Location,
		toMillis(event.StartTime),
		toMillis(event.EndTime),
		event.MaxCapacity,
		toMillis(event.CreatedAt),
	)
	if err != nil {
		return wrap("create event", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("create event: %w", err)
	}
	event.ID = id
	event.StartTime = fromMillis(toMillis(event.StartTime))
	event.EndTime = fromMillis(toMillis(event.EndTime))
	event.CreatedAt = fromMillis(toMillis(event.CreatedAt))
	return nil
}

func (r *EventRepository) FindByID(ctx context.Context, id int64) (*entities.Event, error) {
	e, err := scanEvent(r.q.QueryRowContext(ctx, `SELECT `+eventColumns+` FROM events WHERE id = ?`, id))
	if err != nil {
		return nil, wrap("get event by id", err)
	}
	return &e, nil
}

// FindByIDForUpdate reads the event inside the caller's transaction. SQLite
// transactions here begin IMMEDIATE, so the write lock is already held.
func (r *EventRepository) FindByIDForUpdate(ctx context.Context, id int64) (*entities.Event, error) {
	return r.FindByID(ctx, id)
}

func (r *EventRepository) ListUpcoming(ctx context.Context, now time.Time, limit, offset int) ([]entities.Event, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+eventColumns+` FROM events
		 WHERE start_time > ?
		 ORDER BY start_time, id
		 LIMIT ? OFFSET ?`,
		toMillis(now), limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list upcoming events: %w", err)
	}
	defer rows.Close()

	out := make([]entities.Event, 0, limit)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list upcoming events: %w", err)
	}
	return out, nil
}

func (r *EventRepository) CountUpcoming(ctx context.Context, now time.Time) (int64, error) {
	var count int64
	err := r.q.QueryRowContext(ctx, `SELECT count(*) FROM events WHERE start_time > ?`, toMillis(now)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count upcoming events: %w", err)
	}
	return count, nil
}

func (r *EventRepository) Update(ctx context.Context, event *entities.Event) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE events
		 SET name = ?, location = ?, start_time = ?, end_time = ?, max_capacity = ?
		 WHERE id = ?`,
		event.Name,
		event.Location,
		toMillis(event.StartTime),
		toMillis(event.EndTime),
		event.MaxCapacity,
		event.ID,
	)
	if err != nil {
		return wrap("update event", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return domain.ErrEventNotFound
	}
	updated, err := r.FindByID(ctx, event.ID)
	if err != nil {
		return err
	}
	*event = *updated
	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM events WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	if n == 0 {
		return domain.ErrEventNotFound
	}
	return nil
}
