package database

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"eventreg/internal/domain"
)

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
	pgCheckViolation      = "23514"
)

const (
	constraintEventSchedule  = "unique_event_schedule"
	constraintEventTimeRange = "event_start_before_end"
	constraintEventCapacity  = "event_capacity_positive"
	constraintAttendeeEmail  = "unique_attendee_email"
	constraintAttendeeFormat = "attendee_email_normalized"
)

// domainError maps a storage error to a domain error, or returns nil when err
// has no domain meaning.
func domainError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrEventNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		switch pgErr.ConstraintName {
		case constraintEventSchedule:
			return domain.ErrEventScheduleConflict
		case constraintAttendeeEmail:
			return domain.ErrAttendeeExists
		}
	case pgCheckViolation:
		switch pgErr.ConstraintName {
		case constraintEventTimeRange:
			return domain.ErrInvalidTimeRange
		case constraintEventCapacity:
			return domain.ErrInvalidCapacity
		case constraintAttendeeFormat:
			return domain.ErrInvalidEmail
		}
	case pgForeignKeyViolation:
		return domain.ErrEventNotFound
	}
	return nil
}
