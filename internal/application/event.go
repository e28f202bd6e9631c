package application

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"eventreg/internal/domain"
	"eventreg/internal/domain/entities"
	"eventreg/internal/metrics"
	"eventreg/internal/ports/input"
	"eventreg/internal/ports/output"
)

var _ input.EventUseCase = (*EventService)(nil)

type EventService struct {
	store  output.Store
	logger zerolog.Logger
	now    func() time.Time
}

func NewEventService(store output.Store, logger zerolog.Logger, opts ...Option) *EventService {
	o := buildOptions(opts)
	return &EventService{
		store:  store,
		logger: logger.With().Str("component", "events").Logger(),
		now:    o.now,
	}
}

// CreateEvent validates and stores a new event. Schedule uniqueness is left to
// the storage constraint, which surfaces as domain.ErrEventScheduleConflict.
func (s *EventService) CreateEvent(ctx context.Context, in input.EventInput) (*entities.Event, error) {
	now := s.now().UTC()
	event := &entities.Event{
		Name:        in.Name,
		Location:    in.Location,
		StartTime:   in.StartTime.UTC(),
		EndTime:     in.EndTime.UTC(),
		MaxCapacity: in.MaxCapacity,
		CreatedAt:   now,
	}
	event.Normalize()
	if err := event.Validate(); err != nil {
		return nil, err
	}
	if event.StartTime.Before(now) {
		return nil, domain.ErrStartInPast
	}

	err := s.store.WithTx(ctx, func(ctx context.Context, tx output.Store) error {
		return tx.Events().Create(ctx, event)
	})
	if err != nil {
		if errors.Is(err, domain.ErrEventScheduleConflict) {
			s.logger.Debug().
				Str("name", event.Name).
				Str("location", event.Location).
				Time("start_time", event.StartTime).
				Msg("event schedule conflict")
		}
		return nil, err
	}

	metrics.EventsCreated.Inc()
	s.logger.Info().Int64("event_id", event.ID).Int("max_capacity", event.MaxCapacity).Msg("event created")
	return event, nil
}

// UpdateEvent replaces every mutable field of an event.
func (s *EventService) UpdateEvent(ctx context.Context, id int64, in input.EventInput) (*entities.Event, error) {
	return s.modify(ctx, id, func(event *entities.Event) {
		event.Name = in.Name
		event.Location = in.Location
		event.StartTime = in.StartTime.UTC()
		event.EndTime = in.EndTime.UTC()
		event.MaxCapacity = in.MaxCapacity
	})
}

// PatchEvent replaces the fields set in patch.
func (s *EventService) PatchEvent(ctx context.Context, id int64, patch input.EventPatch) (*entities.Event, error) {
	return s.modify(ctx, id, func(event *entities.Event) {
		if patch.Name != nil {
			event.Name = *patch.Name
		}
		if patch.Location != nil {
			event.Location = *patch.Location
		}
		if patch.StartTime != nil {
			event.StartTime = patch.StartTime.UTC()
		}
		if patch.EndTime != nil {
			event.EndTime = patch.EndTime.UTC()
		}
		if patch.MaxCapacity != nil {
			event.MaxCapacity = *patch.MaxCapacity
		}
	})
}

func (s *EventService) modify(ctx context.Context, id int64, apply func(*entities.Event)) (*entities.Event, error) {
	var updated *entities.Event
	err := s.store.WithTx(ctx, func(ctx context.Context, tx output.Store) error {
		event, err := tx.Events().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		apply(event)
		event.Normalize()
		if err := event.Validate(); err != nil {
			return err
		}
		if err := tx.Events().Update(ctx, event); err != nil {
			return err
		}
		updated = event
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int64("event_id", id).Msg("event updated")
	return updated, nil
}

// DeleteEvent removes an event; its attendees go with it.
func (s *EventService) DeleteEvent(ctx context.Context, id int64) error {
	if err := s.store.Events().Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("event_id", id).Msg("event deleted")
	return nil
}
