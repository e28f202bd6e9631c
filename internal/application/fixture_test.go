package application

import (
	"context"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"eventreg/internal/mocks"
	"eventreg/internal/ports/output"
)

var fixedNow = time.Date(2030, time.January, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type fixture struct {
	store     *mocks.MockStore
	events    *mocks.MockEventRepository
	attendees *mocks.MockAttendeeRepository
}

// newFixture wires a mock store whose WithTx runs fn against the same mocks.
func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		store:     mocks.NewMockStore(ctrl),
		events:    mocks.NewMockEventRepository(ctrl),
		attendees: mocks.NewMockAttendeeRepository(ctrl),
	}
	f.store.EXPECT().Events().Return(f.events).AnyTimes()
	f.store.EXPECT().Attendees().Return(f.attendees).AnyTimes()
	f.store.EXPECT().
		WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, output.Store) error) error {
			return fn(ctx, f.store)
		}).
		AnyTimes()
	return f
}
