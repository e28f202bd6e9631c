package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"eventreg/internal/domain"
	"eventreg/internal/domain/entities"
	"eventreg/internal/ports/input"
)

func upcoming(n int) []entities.Event {
	out := make([]entities.Event, n)
	for i := range out {
		start := fixedNow.Add(time.Duration(i+1) * time.Hour)
		out[i] = entities.Event{ID: int64(i + 1), Name: "e", Location: "l", StartTime: start, EndTime: start.Add(time.Hour), MaxCapacity: 1}
	}
	return out
}

func TestQueryService_ListUpcomingEvents(t *testing.T) {
	ctx := context.Background()

	t.Run("should convert times into the requested zone", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		svc := NewQueryService(f.store, WithClock(fixedClock))

		f.events.EXPECT().CountUpcoming(gomock.Any(), fixedNow).Return(int64(25), nil)
		f.events.EXPECT().ListUpcoming(gomock.Any(), fixedNow, 10, 20).Return(upcoming(5), nil)

		res, err := svc.ListUpcomingEvents(ctx, "America/New_York", input.PageRequest{Page: 3})

		req.NoError(err)
		req.Equal("America/New_York", res.Timezone)
		req.Equal("America/New_York", res.CurrentTime.Location().String())
		req.Len(res.Events, 5)
		req.True(res.Events[0].LocalStartTime.Equal(res.Events[0].StartTime))
		req.Equal("America/New_York", res.Events[0].LocalStartTime.Location().String())
		req.Equal(3, res.Page.Page)
		req.False(res.Page.HasNext())
		req.True(res.Page.HasPrevious())
	})

	t.Run("should reject an unknown zone without touching storage", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		svc := NewQueryService(f.store, WithClock(fixedClock))

		f.events.EXPECT().CountUpcoming(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.ListUpcomingEvents(ctx, "Mars/Olympus_Mons", input.PageRequest{})
		req.ErrorIs(err, domain.ErrInvalidTimezone)
		var de *domain.Error
		req.ErrorAs(err, &de)
		req.Equal("Mars/Olympus_Mons", de.Data["Timezone"])

		_, err = svc.ListUpcomingEvents(ctx, "", input.PageRequest{})
		req.ErrorIs(err, domain.ErrInvalidTimezone)
	})

	t.Run("should cap the page size", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		svc := NewQueryService(f.store, WithClock(fixedClock))

		f.events.EXPECT().CountUpcoming(gomock.Any(), gomock.Any()).Return(int64(0), nil)
		f.events.EXPECT().ListUpcoming(gomock.Any(), gomock.Any(), input.MaxPageSize, 0).Return(nil, nil)

		res, err := svc.ListUpcomingEvents(ctx, "UTC", input.PageRequest{PageSize: 1000})

		req.NoError(err)
		req.Empty(res.Events)
		req.Equal(input.MaxPageSize, res.Page.PageSize)
	})

	t.Run("should refuse a page past the end", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		svc := NewQueryService(f.store, WithClock(fixedClock))

		f.events.EXPECT().CountUpcoming(gomock.Any(), gomock.Any()).Return(int64(10), nil)
		f.events.EXPECT().ListUpcoming(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.ListUpcomingEvents(ctx, "UTC", input.PageRequest{Page: 2})

		req.ErrorIs(err, domain.ErrInvalidPage)
	})

	t.Run("should refuse a page far past the end without overflowing", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		svc := NewQueryService(f.store, WithClock(fixedClock))

		f.events.EXPECT().CountUpcoming(gomock.Any(), gomock.Any()).Return(int64(1), nil)
		f.events.EXPECT().ListUpcoming(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.ListUpcomingEvents(ctx, "UTC", input.PageRequest{Page: 100000000000000000, PageSize: 100})

		req.ErrorIs(err, domain.ErrInvalidPage)
	})

	t.Run("should reject a negative page", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		svc := NewQueryService(f.store, WithClock(fixedClock))

		_, err := svc.ListUpcomingEvents(ctx, "UTC", input.PageRequest{Page: -1})

		req.ErrorIs(err, domain.ErrInvalidPageNumber)
	})
}

func TestQueryService_ListAttendees(t *testing.T) {
	ctx := context.Background()

	t.Run("should page attendees of an existing event", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		svc := NewQueryService(f.store, WithClock(fixedClock))

		f.events.EXPECT().FindByID(gomock.Any(), int64(3)).Return(storedEvent(), nil)
		f.attendees.EXPECT().CountByEventID(gomock.Any(), int64(3)).Return(int64(3), nil)
		f.attendees.EXPECT().ListByEventID(gomock.Any(), int64(3), 2, 0).Return([]entities.Attendee{{ID: 1}, {ID: 2}}, nil)

		res, err := svc.ListAttendees(ctx, 3, input.PageRequest{PageSize: 2})

		req.NoError(err)
		req.Len(res.Attendees, 2)
		req.True(res.Page.HasNext())
		req.False(res.Page.HasPrevious())
	})

	t.Run("should report a missing event", func(t *testing.T) {
		req := require.New(t)
		f := newFixture(t)
		svc := NewQueryService(f.store, WithClock(fixedClock))

		f.events.EXPECT().FindByID(gomock.Any(), int64(9)).Return(nil, domain.ErrEventNotFound)

		_, err := svc.ListAttendees(ctx, 9, input.PageRequest{})

		req.ErrorIs(err, domain.ErrEventNotFound)
	})
}

func TestQueryService_GetEvent(t *testing.T) {
	req := require.New(t)
	f := newFixture(t)
	svc := NewQueryService(f.store)

	f.events.EXPECT().FindByID(gomock.Any(), int64(3)).Return(storedEvent(), nil)
	f.attendees.EXPECT().CountByEventID(gomock.Any(), int64(3)).Return(int64(4), nil)

	details, err := svc.GetEvent(context.Background(), 3)

	req.NoError(err)
	req.Equal("Original", details.Name)
	req.EqualValues(4, details.AttendeeCount)
}

func TestCheckPageInRange(t *testing.T) {
	tests := []struct {
		name string
		page input.PageInfo
		want error
	}{
		{name: "first page of nothing", page: input.PageInfo{Page: 1, PageSize: 10}},
		{name: "second page of nothing", page: input.PageInfo{Page: 2, PageSize: 10}, want: domain.ErrInvalidPage},
		{name: "last partial page", page: input.PageInfo{Page: 3, PageSize: 10, Total: 21}},
		{name: "exactly full pages", page: input.PageInfo{Page: 3, PageSize: 10, Total: 20}, want: domain.ErrInvalidPage},
		{name: "huge page", page: input.PageInfo{Page: 1 << 62, PageSize: 100, Total: 5}, want: domain.ErrInvalidPage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := checkPageInRange(tt.page)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.want)
		})
	}
}
