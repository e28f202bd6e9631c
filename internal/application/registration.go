package application

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"eventreg/internal/domain"
	"eventreg/internal/domain/entities"
	"eventreg/internal/metrics"
	"eventreg/internal/ports/input"
	"eventreg/internal/ports/output"
)

var _ input.RegistrationUseCase = (*RegistrationService)(nil)

type RegistrationService struct {
	store  output.Store
	logger zerolog.Logger
	now    func() time.Time
}

func NewRegistrationService(store output.Store, logger zerolog.Logger, opts ...Option) *RegistrationService {
	o := buildOptions(opts)
	return &RegistrationService{
		store:  store,
		logger: logger.With().Str("component", "registration").Logger(),
		now:    o.now,
	}
}

// RegisterAttendee registers one attendee for an event. The event row is
// locked for the whole transaction and the insert itself is conditional on the
// remaining capacity, so concurrent registrations cannot overbook.
func (s *RegistrationService) RegisterAttendee(ctx context.Context, eventID int64, in input.AttendeeInput) (*entities.Attendee, error) {
	attendee := &entities.Attendee{
		EventID: eventID,
		Name:    in.Name,
		Email:   in.Email,
	}
	attendee.Normalize()

	err := s.store.WithTx(ctx, func(ctx context.Context, tx output.Store) error {
		event, err := tx.Events().FindByIDForUpdate(ctx, eventID)
		if err != nil {
			return err
		}
		if err := attendee.Validate(); err != nil {
			return err
		}

		count, err := tx.Attendees().CountByEventID(ctx, eventID)
		if err != nil {
			return err
		}
		if event.IsFull(count) {
			return domain.ErrEventFull
		}

		exists, err := tx.Attendees().ExistsByEventIDAndEmail(ctx, eventID, attendee.Email)
		if err != nil {
			return err
		}
		if exists {
			return domain.ErrAttendeeExists
		}

		attendee.RegisteredAt = s.now().UTC().Truncate(entities.TimePrecision)
		return tx.Attendees().Create(ctx, attendee)
	})
	metrics.Registrations.WithLabelValues(registrationOutcome(err)).Inc()
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("event_id", eventID).
		Int64("attendee_id", attendee.ID).
		Msg("attendee registered")
	return attendee, nil
}

func registrationOutcome(err error) string {
	if err == nil {
		return "registered"
	}
	if code := domain.Code(err); code != "" {
		return code
	}
	return "error"
}
