package database

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"eventreg/internal/domain/entities"
	"eventreg/internal/infrastructure/database/sqlc_generated"
)

// pgtypeTimestamptzToTime returns t.Time in UTC when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time.UTC()
}

func timeToPgtypeTimestamptz(t time.Time) pgtype.Timestamptz {
	if t.IsZero() {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: t.UTC(), Valid: true}
}

func eventToDomain(e sqlc_generated.Event) entities.Event {
	return entities.Event{
		ID:          e.ID,
		Name:        e.Name,
		Location:    e.Location,
		StartTime:   pgtypeTimestamptzToTime(e.StartTime),
		EndTime:     pgtypeTimestamptzToTime(e.EndTime),
		MaxCapacity: int(e.MaxCapacity),
		CreatedAt:   pgtypeTimestamptzToTime(e.CreatedAt),
	}
}

func attendeeToDomain(a sqlc_generated.Attendee) entities.Attendee {
	return entities.Attendee{
		ID:           a.ID,
		EventID:      a.EventID,
		Name:         a.Name,
		Email:        a.Email,
		RegisteredAt: pgtypeTimestamptzToTime(a.RegisteredAt),
	}
}
