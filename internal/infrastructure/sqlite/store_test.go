package sqlite

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"eventreg/internal/application"
	"eventreg/internal/domain"
	"eventreg/internal/domain/entities"
	"eventreg/internal/ports/input"
	"eventreg/internal/ports/output"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "eventreg.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func newEvent(name string, start time.Time, capacity int) *entities.Event {
	return &entities.Event{
		Name:        name,
		Location:    "Chennai",
		StartTime:   start,
		EndTime:     start.Add(90 * time.Minute),
		MaxCapacity: capacity,
	}
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	_, err := Open("  ", zerolog.Nop())
	require.Error(t, err)
}

func TestOpenIsIdempotent(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "eventreg.db")
	first, err := Open(path, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := Open(path, zerolog.Nop())
	require.NoError(t, err)
	require.NoError(t, second.Ping(context.Background()))
	require.NoError(t, second.Close())
}

func TestEventRoundTrip(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	start := time.Date(2031, time.January, 5, 9, 30, 0, 0, time.UTC)

	event := newEvent("Rust vs Go", start, 4)
	require.NoError(t, store.Events().Create(ctx, event))
	require.NotZero(t, event.ID)

	got, err := store.Events().FindByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, "Rust vs Go", got.Name)
	assert.Equal(t, "Chennai", got.Location)
	assert.True(t, got.StartTime.Equal(start))
	assert.True(t, got.EndTime.Equal(start.Add(90*time.Minute)))
	assert.Equal(t, 4, got.MaxCapacity)

	got.Name = "Go vs Rust"
	require.NoError(t, store.Events().Update(ctx, got))
	assert.Equal(t, "Go vs Rust", got.Name)

	_, err = store.Events().FindByID(ctx, 4242)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)

	missing := newEvent("ghost", start, 1)
	missing.ID = 4242
	assert.ErrorIs(t, store.Events().Update(ctx, missing), domain.ErrEventNotFound)
}

func TestEventConstraintsMapToDomainErrors(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	start := time.Now().Add(24 * time.Hour)

	require.NoError(t, store.Events().Create(ctx, newEvent("Meetup", start, 3)))
	assert.ErrorIs(t, store.Events().Create(ctx, newEvent("Meetup", start, 8)), domain.ErrEventScheduleConflict)

	backwards := newEvent("Backwards", start, 3)
	backwards.EndTime = start
	assert.ErrorIs(t, store.Events().Create(ctx, backwards), domain.ErrInvalidTimeRange)

	empty := newEvent("Empty", start, 0)
	assert.ErrorIs(t, store.Events().Create(ctx, empty), domain.ErrInvalidCapacity)
}

func TestListUpcomingSkipsPastEvents(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, store.Events().Create(ctx, newEvent("yesterday", now.Add(-24*time.Hour), 1)))
	require.NoError(t, store.Events().Create(ctx, newEvent("later", now.Add(48*time.Hour), 1)))
	require.NoError(t, store.Events().Create(ctx, newEvent("soon", now.Add(time.Hour), 1)))

	count, err := store.Events().CountUpcoming(ctx, now)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	events, err := store.Events().ListUpcoming(ctx, now, 10, 0)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "soon", events[0].Name)
	assert.Equal(t, "later", events[1].Name)

	page, err := store.Events().ListUpcoming(ctx, now, 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "later", page[0].Name)
}

func TestAttendeeCapacityDuplicatesAndCascade(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	event := newEvent("Workshop", time.Now().Add(time.Hour), 2)
	require.NoError(t, store.Events().Create(ctx, event))

	register := func(name, email string) error {
		return store.Attendees().Create(ctx, &entities.Attendee{
			EventID:      event.ID,
			Name:         name,
			Email:        email,
			RegisteredAt: time.Now(),
		})
	}

	require.NoError(t, register("Ada", "ada@example.com"))
	assert.ErrorIs(t, register("Ada twin", "ada@example.com"), domain.ErrAttendeeExists)
	require.NoError(t, register("Bob", "bob@example.com"))
	assert.ErrorIs(t, register("Cy", "cy@example.com"), domain.ErrEventFull)

	attendees, err := store.Attendees().ListByEventID(ctx, event.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, attendees, 2)
	assert.Equal(t, "Ada", attendees[0].Name)
	assert.Equal(t, "Bob", attendees[1].Name)

	err = store.Attendees().Create(ctx, &entities.Attendee{EventID: event.ID + 7, Name: "Eve", Email: "eve@example.com", RegisteredAt: time.Now()})
	assert.ErrorIs(t, err, domain.ErrEventNotFound)

	require.NoError(t, store.Events().Delete(ctx, event.ID))
	count, err := store.Attendees().CountByEventID(ctx, event.ID)
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.ErrorIs(t, store.Events().Delete(ctx, event.ID), domain.ErrEventNotFound)
}

func TestWithTxNestsAndRollsBack(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()

	err := store.WithTx(ctx, func(ctx context.Context, tx output.Store) error {
		if err := tx.Events().Create(ctx, newEvent("inner", time.Now().Add(time.Hour), 1)); err != nil {
			return err
		}
		return tx.WithTx(ctx, func(ctx context.Context, nested output.Store) error {
			assert.Same(t, tx, nested)
			return domain.ErrInvalidRequest
		})
	})
	require.ErrorIs(t, err, domain.ErrInvalidRequest)

	count, err := store.Events().CountUpcoming(ctx, time.Now())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestConcurrentRegistrationsFillExactlyToCapacity(t *testing.T) {
	t.Parallel()

	store := openTempStore(t)
	ctx := context.Background()
	const capacity, callers = 5, 20

	event := newEvent("Sold out", time.Now().Add(time.Hour), capacity)
	require.NoError(t, store.Events().Create(ctx, event))

	svc := application.NewRegistrationService(store, zerolog.Nop())
	var g errgroup.Group
	errs := make([]error, callers)
	for i := range callers {
		g.Go(func() error {
			_, errs[i] = svc.RegisterAttendee(ctx, event.ID, input.AttendeeInput{
				Name:  fmt.Sprintf("guest %d", i),
				Email: fmt.Sprintf("Guest%d@Example.com", i),
			})
			return nil
		})
	}
	require.NoError(t, g.Wait())

	var registered int
	for _, err := range errs {
		if err == nil {
			registered++
			continue
		}
		require.ErrorIs(t, err, domain.ErrEventFull)
	}
	assert.Equal(t, capacity, registered)

	count, err := store.Attendees().CountByEventID(ctx, event.ID)
	require.NoError(t, err)
	assert.EqualValues(t, capacity, count)
}
