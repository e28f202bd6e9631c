//go:generate go run go.uber.org/mock/mockgen -source=attendee_repo.go -destination=../../mocks/mock_attendee_repo.go -package=mocks
package output

import (
	"context"

	"eventreg/internal/domain/entities"
)

type AttendeeRepository interface {
	// Create inserts the attendee only while the event is below its capacity,
	// in a single statement. It returns domain.ErrEventFull when no slot is
	// left and domain.ErrAttendeeExists on a duplicate (event, email).
	Create(ctx context.Context, attendee *entities.Attendee) error
	ExistsByEventIDAndEmail(ctx context.Context, eventID int64, email string) (bool, error)
	CountByEventID(ctx context.Context, eventID int64) (int64, error)
	ListByEventID(ctx context.Context, eventID int64, limit, offset int) ([]entities.Attendee, error)
}
