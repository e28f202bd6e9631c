package input

import (
	"context"
	"time"

	"eventreg/internal/domain/entities"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// PageRequest selects a 1-based page. Zero values mean the defaults.
type PageRequest struct {
	Page     int
	PageSize int
}

// PageInfo describes the page that was returned.
type PageInfo struct {
	Page     int
	PageSize int
	Total    int64
}

func (p PageInfo) HasNext() bool {
	return int64(p.Page)*int64(p.PageSize) < p.Total
}

func (p PageInfo) HasPrevious() bool {
	return p.Page > 1
}

// LocalizedEvent is an event with its window converted into a requested zone.
type LocalizedEvent struct {
	entities.Event
	LocalStartTime time.Time
	LocalEndTime   time.Time
}

type UpcomingEvents struct {
	CurrentTime time.Time
	Timezone    string
	Events      []LocalizedEvent
	Page        PageInfo
}

type AttendeePage struct {
	Attendees []entities.Attendee
	Page      PageInfo
}

type EventDetails struct {
	entities.Event
	AttendeeCount int64
}

type QueryUseCase interface {
	// ListUpcomingEvents lists events starting after now. An empty timezone
	// name is rejected; callers substitute the default for a missing one.
	ListUpcomingEvents(ctx context.Context, timezone string, page PageRequest) (*UpcomingEvents, error)
	ListAttendees(ctx context.Context, eventID int64, page PageRequest) (*AttendeePage, error)
	GetEvent(ctx context.Context, id int64) (*EventDetails, error)
}
