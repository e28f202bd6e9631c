package entities

import (
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"eventreg/internal/domain"
)

// MaxTextLength bounds names and locations.
const MaxTextLength = 255

// TimePrecision is the resolution timestamps are kept at. Every storage
// backend can represent it exactly, so schedule uniqueness compares the same
// values everywhere.
const TimePrecision = time.Millisecond

// MaxCapacityLimit is the largest capacity every storage backend can hold.
const MaxCapacityLimit = math.MaxInt32

// IsFull reports whether attendeeCount has reached the event capacity.
func (e *Event) IsFull(attendeeCount int64) bool {
	return attendeeCount >= int64(e.MaxCapacity)
}

// Normalize trims free-text fields and truncates timestamps to TimePrecision.
func (e *Event) Normalize() {
	e.Name = strings.TrimSpace(e.Name)
	e.Location = strings.TrimSpace(e.Location)
	e.StartTime = e.StartTime.Truncate(TimePrecision)
	e.EndTime = e.EndTime.Truncate(TimePrecision)
	e.CreatedAt = e.CreatedAt.Truncate(TimePrecision)
}

// Validate checks the invariants every stored event must satisfy.
func (e *Event) Validate() error {
	if e.Name == "" {
		return domain.ErrEventNameRequired
	}
	if utf8.RuneCountInString(e.Name) > MaxTextLength {
		return domain.FieldTooLong("name", MaxTextLength)
	}
	if e.Location == "" {
		return domain.ErrEventLocationRequired
	}
	if utf8.RuneCountInString(e.Location) > MaxTextLength {
		return domain.FieldTooLong("location", MaxTextLength)
	}
	if !e.StartTime.Before(e.EndTime) {
		return domain.ErrInvalidTimeRange
	}
	if e.MaxCapacity < 1 {
		return domain.ErrInvalidCapacity
	}
	if e.MaxCapacity > MaxCapacityLimit {
		return domain.CapacityTooLarge(MaxCapacityLimit)
	}
	return nil
}

type Event struct {
	ID          int64
	Name        string
	Location    string
	StartTime   time.Time
	EndTime     time.Time
	MaxCapacity int
	CreatedAt   time.Time
}
