package input

import (
	"context"

	"eventreg/internal/domain/entities"
)

type AttendeeInput struct {
	Name  string
	Email string
}

type RegistrationUseCase interface {
	RegisterAttendee(ctx context.Context, eventID int64, in AttendeeInput) (*entities.Attendee, error)
}
