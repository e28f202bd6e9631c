package application

import (
	"context"
	"time"

	"github.com/samber/lo"

	"eventreg/internal/domain"
	"eventreg/internal/domain/entities"
	"eventreg/internal/ports/input"
	"eventreg/internal/ports/output"
	"eventreg/pkg/tz"
)

var _ input.QueryUseCase = (*QueryService)(nil)

// QueryService serves read-only projections.
type QueryService struct {
	store output.Store
	now   func() time.Time
}

func NewQueryService(store output.Store, opts ...Option) *QueryService {
	o := buildOptions(opts)
	return &QueryService{store: store, now: o.now}
}

func (s *QueryService) ListUpcomingEvents(ctx context.Context, timezone string, req input.PageRequest) (*input.UpcomingEvents, error) {
	loc, err := tz.Resolve(timezone)
	if err != nil {
		return nil, domain.InvalidTimezone(timezone)
	}
	page, err := normalizePage(req)
	if err != nil {
		return nil, err
	}

	now := s.now()
	total, err := s.store.Events().CountUpcoming(ctx, now)
	if err != nil {
		return nil, err
	}
	page.Total = total
	if err := checkPageInRange(page); err != nil {
		return nil, err
	}

	events, err := s.store.Events().ListUpcoming(ctx, now, page.PageSize, offset(page))
	if err != nil {
		return nil, err
	}

	return &input.UpcomingEvents{
		CurrentTime: now.In(loc),
		Timezone:    loc.String(),
		Events: lo.Map(events, func(e entities.Event, _ int) input.LocalizedEvent {
			return input.LocalizedEvent{
				Event:          e,
				LocalStartTime: e.StartTime.In(loc),
				LocalEndTime:   e.EndTime.In(loc),
			}
		}),
		Page: page,
	}, nil
}

func (s *QueryService) ListAttendees(ctx context.Context, eventID int64, req input.PageRequest) (*input.AttendeePage, error) {
	page, err := normalizePage(req)
	if err != nil {
		return nil, err
	}
	if _, err := s.store.Events().FindByID(ctx, eventID); err != nil {
		return nil, err
	}

	total, err := s.store.Attendees().CountByEventID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	page.Total = total
	if err := checkPageInRange(page); err != nil {
		return nil, err
	}

	attendees, err := s.store.Attendees().ListByEventID(ctx, eventID, page.PageSize, offset(page))
	if err != nil {
		return nil, err
	}
	return &input.AttendeePage{Attendees: attendees, Page: page}, nil
}

func (s *QueryService) GetEvent(ctx context.Context, id int64) (*input.EventDetails, error) {
	event, err := s.store.Events().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	count, err := s.store.Attendees().CountByEventID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &input.EventDetails{Event: *event, AttendeeCount: count}, nil
}

// normalizePage applies defaults and caps the page size.
func normalizePage(req input.PageRequest) (input.PageInfo, error) {
	if req.Page < 0 {
		return input.PageInfo{}, domain.ErrInvalidPageNumber
	}
	page := input.PageInfo{Page: req.Page, PageSize: req.PageSize}
	if page.Page == 0 {
		page.Page = 1
	}
	if page.PageSize <= 0 {
		page.PageSize = input.DefaultPageSize
	}
	if page.PageSize > input.MaxPageSize {
		page.PageSize = input.MaxPageSize
	}
	return page, nil
}

// checkPageInRange rejects pages past the end; the first page always exists.
// The comparison is done on page numbers so that a huge page cannot overflow
// the offset.
func checkPageInRange(page input.PageInfo) error {
	if page.Page <= 1 {
		return nil
	}
	if page.Total == 0 || int64(page.Page-1) > (page.Total-1)/int64(page.PageSize) {
		return domain.ErrInvalidPage
	}
	return nil
}

func offset(page input.PageInfo) int {
	return (page.Page - 1) * page.PageSize
}
