package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a domain error for the transport layer.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindValidation
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// Error is a domain error. Two errors match under errors.Is when their codes are
// equal, so sentinels below can be returned as-is or enriched with Data.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Data    map[string]any
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

func newError(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

// Domain errors.
var (
	ErrEventNotFound         = newError(KindNotFound, "event_not_found", "event not found")
	ErrInvalidPage           = newError(KindNotFound, "invalid_page", "invalid page")
	ErrEventNameRequired     = newError(KindValidation, "event_name_required", "event name is required")
	ErrEventLocationRequired = newError(KindValidation, "event_location_required", "event location is required")
	ErrFieldTooLong          = newError(KindValidation, "field_too_long", "field is too long")
	ErrInvalidTimeRange      = newError(KindValidation, "invalid_time_range", "end time must be after start time")
	ErrStartInPast           = newError(KindValidation, "start_in_past", "start time must be in the future")
	ErrInvalidCapacity       = newError(KindValidation, "invalid_capacity", "capacity must be at least 1")
	ErrCapacityTooLarge      = newError(KindValidation, "capacity_too_large", "capacity is too large")
	ErrAttendeeNameRequired  = newError(KindValidation, "attendee_name_required", "attendee name is required")
	ErrInvalidEmail          = newError(KindValidation, "invalid_email", "invalid email address")
	ErrEventFull             = newError(KindValidation, "event_full", "event is full")
	ErrInvalidTimezone       = newError(KindValidation, "invalid_timezone", "invalid timezone")
	ErrInvalidPageNumber     = newError(KindValidation, "invalid_page_number", "page must be a positive integer")
	ErrInvalidRequest        = newError(KindValidation, "invalid_request", "invalid request")
	ErrEventScheduleConflict = newError(KindConflict, "event_schedule_conflict", "an event with the same name, location, and start time already exists")
	ErrAttendeeExists        = newError(KindConflict, "attendee_exists", "this email is already registered for the event")
)

// InvalidTimezone returns ErrInvalidTimezone naming the rejected zone.
func InvalidTimezone(name string) error {
	return &Error{
		Kind:    KindValidation,
		Code:    ErrInvalidTimezone.Code,
		Message: fmt.Sprintf("invalid timezone: %q", name),
		Data:    map[string]any{"Timezone": name},
	}
}

// FieldTooLong returns ErrFieldTooLong for field with the given limit.
func FieldTooLong(field string, max int) error {
	return &Error{
		Kind:    KindValidation,
		Code:    ErrFieldTooLong.Code,
		Message: fmt.Sprintf("%s must have at most %d characters", field, max),
		Data:    map[string]any{"Field": field, "Max": max},
	}
}

// CapacityTooLarge returns ErrCapacityTooLarge naming the largest accepted
// capacity.
func CapacityTooLarge(limit int) error {
	return &Error{
		Kind:    KindValidation,
		Code:    ErrCapacityTooLarge.Code,
		Message: fmt.Sprintf("capacity must be at most %d", limit),
		Data:    map[string]any{"Max": limit},
	}
}

// InvalidRequest returns ErrInvalidRequest carrying a transport-level detail.
func InvalidRequest(detail string) error {
	return &Error{
		Kind:    KindValidation,
		Code:    ErrInvalidRequest.Code,
		Message: "invalid request: " + detail,
		Data:    map[string]any{"Detail": detail},
	}
}

// Code returns the domain error code carried by err, or "" if err is not a
// domain error.
func Code(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// KindOf returns the kind of the domain error carried by err.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}
