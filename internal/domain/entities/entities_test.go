package entities

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"eventreg/internal/domain"
)

func validEvent() Event {
	start := time.Date(2030, time.March, 1, 18, 0, 0, 0, time.UTC)
	return Event{
		Name:        "Go Meetup",
		Location:    "Bengaluru",
		StartTime:   start,
		EndTime:     start.Add(2 * time.Hour),
		MaxCapacity: 10,
	}
}

func TestEventValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(e *Event)
		want   error
	}{
		{name: "valid", mutate: func(*Event) {}},
		{name: "missing name", mutate: func(e *Event) { e.Name = "" }, want: domain.ErrEventNameRequired},
		{name: "missing location", mutate: func(e *Event) { e.Location = "" }, want: domain.ErrEventLocationRequired},
		{name: "name too long", mutate: func(e *Event) { e.Name = strings.Repeat("x", MaxTextLength+1) }, want: domain.ErrFieldTooLong},
		{name: "end equals start", mutate: func(e *Event) { e.EndTime = e.StartTime }, want: domain.ErrInvalidTimeRange},
		{name: "end before start", mutate: func(e *Event) { e.EndTime = e.StartTime.Add(-time.Minute) }, want: domain.ErrInvalidTimeRange},
		{name: "zero capacity", mutate: func(e *Event) { e.MaxCapacity = 0 }, want: domain.ErrInvalidCapacity},
		{name: "negative capacity", mutate: func(e *Event) { e.MaxCapacity = -3 }, want: domain.ErrInvalidCapacity},
		{name: "largest capacity", mutate: func(e *Event) { e.MaxCapacity = MaxCapacityLimit }},
		{name: "capacity past int32", mutate: func(e *Event) { e.MaxCapacity = MaxCapacityLimit + 1 }, want: domain.ErrCapacityTooLarge},
		{name: "capacity wrapping int32 to one", mutate: func(e *Event) { e.MaxCapacity = 1<<32 + 1 }, want: domain.ErrCapacityTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEvent()
			tt.mutate(&e)
			err := e.Validate()
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestEventIsFull(t *testing.T) {
	e := validEvent()
	e.MaxCapacity = 2

	assert.False(t, e.IsFull(1))
	assert.True(t, e.IsFull(2))
	assert.True(t, e.IsFull(3))
}

func TestEventNormalizeTruncatesToPrecision(t *testing.T) {
	e := validEvent()
	e.StartTime = e.StartTime.Add(400 * time.Microsecond)
	e.EndTime = e.EndTime.Add(1500 * time.Microsecond)
	e.Normalize()

	assert.Equal(t, validEvent().StartTime, e.StartTime)
	assert.Equal(t, validEvent().EndTime.Add(time.Millisecond), e.EndTime)
}

func TestAttendeeNormalizeAndValidate(t *testing.T) {
	a := Attendee{Name: "  Ada  ", Email: "  Ada@Example.COM "}
	a.Normalize()

	assert.Equal(t, "Ada", a.Name)
	assert.Equal(t, "ada@example.com", a.Email)
	require.NoError(t, a.Validate())

	for _, email := range []string{"", "not-an-email", "@example.com", "ada@"} {
		bad := Attendee{Name: "Ada", Email: email}
		bad.Normalize()
		assert.ErrorIs(t, bad.Validate(), domain.ErrInvalidEmail, email)
	}

	unnamed := Attendee{Email: "ada@example.com"}
	assert.ErrorIs(t, unnamed.Validate(), domain.ErrAttendeeNameRequired)
}
