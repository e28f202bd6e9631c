package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"eventreg/internal/domain"
)

// domainError maps a SQLite error to a domain error, or returns nil when err
// has no domain meaning.
func domainError(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrEventNotFound
	}

	var sqliteErr *msqlite.Error
	if !errors.As(err, &sqliteErr) {
		return nil
	}
	message := strings.ToLower(sqliteErr.Error())
	switch sqliteErr.Code() {
	case sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
		switch {
		case strings.Contains(message, "events.name"):
			return domain.ErrEventScheduleConflict
		case strings.Contains(message, "attendees.event_id"):
			return domain.ErrAttendeeExists
		}
	case sqlite3lib.SQLITE_CONSTRAINT_CHECK:
		switch {
		case strings.Contains(message, "event_start_before_end"):
			return domain.ErrInvalidTimeRange
		case strings.Contains(message, "event_capacity_positive"):
			return domain.ErrInvalidCapacity
		case strings.Contains(message, "attendee_email_normalized"):
			return domain.ErrInvalidEmail
		}
	case sqlite3lib.SQLITE_CONSTRAINT_FOREIGNKEY:
		return domain.ErrEventNotFound
	}
	return nil
}

func wrap(op string, err error) error {
	if derr := domainError(err); derr != nil {
		return derr
	}
	return fmt.Errorf("%s: %w", op, err)
}
