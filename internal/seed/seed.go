// Package seed loads YAML fixtures and applies them through the event and
// registration use cases, so seeded data obeys the same rules as API traffic.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"eventreg/internal/domain"
	"eventreg/internal/ports/input"
	"eventreg/pkg/tz"
)

//go:embed demo.yaml
var demo []byte

// Fixture is the root of a fixture file.
type Fixture struct {
	Events []EventFixture `yaml:"events"`
}

// EventFixture describes one event. Start is an absolute timestamp; when it
// is empty the event starts StartsIn after the fixture is applied.
type EventFixture struct {
	Name        string            `yaml:"name"`
	Location    string            `yaml:"location"`
	Start       string            `yaml:"start,omitempty"`
	StartsIn    time.Duration     `yaml:"starts_in,omitempty"`
	Duration    time.Duration     `yaml:"duration"`
	MaxCapacity int               `yaml:"max_capacity"`
	Attendees   []AttendeeFixture `yaml:"attendees,omitempty"`
}

type AttendeeFixture struct {
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

// Demo returns the embedded demo fixture.
func Demo() (*Fixture, error) {
	return Parse(demo)
}

// LoadFile reads a fixture from path.
func LoadFile(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture: %w", err)
	}
	return Parse(data)
}

// Parse decodes a fixture and checks its shape. Unknown keys are rejected.
func Parse(data []byte) (*Fixture, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f Fixture
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decode fixture: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

func (f *Fixture) validate() error {
	var errs []string
	for i, ev := range f.Events {
		if strings.TrimSpace(ev.Name) == "" {
			errs = append(errs, fmt.Sprintf("events[%d].name: required", i))
		}
		if ev.Start == "" && ev.StartsIn <= 0 {
			errs = append(errs, fmt.Sprintf("events[%d]: start or a positive starts_in is required", i))
		}
		if ev.Duration <= 0 {
			errs = append(errs, fmt.Sprintf("events[%d].duration: must be positive", i))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid fixture: %s", strings.Join(errs, "; "))
	}
	return nil
}

// Result summarizes one Apply run.
type Result struct {
	EventsCreated       int
	EventsSkipped       int
	AttendeesRegistered int
	AttendeesRejected   int
}

// Seeder applies fixtures.
type Seeder struct {
	events       input.EventUseCase
	registration input.RegistrationUseCase
	zone         *time.Location
	now          func() time.Time
	logger       zerolog.Logger
}

// NewSeeder creates a Seeder. zone interprets fixture timestamps without an
// offset; nil means tz.Default.
func NewSeeder(events input.EventUseCase, registration input.RegistrationUseCase, zone *time.Location, logger zerolog.Logger) *Seeder {
	if zone == nil {
		zone = tz.Default
	}
	return &Seeder{
		events:       events,
		registration: registration,
		zone:         zone,
		now:          time.Now,
		logger:       logger.With().Str("component", "seed").Logger(),
	}
}

// Apply creates every event of f and registers its attendees. An event that
// already exists is skipped, which makes re-running a fixture harmless.
// Rejected registrations are logged and counted; any other error stops the run.
func (s *Seeder) Apply(ctx context.Context, f *Fixture) (Result, error) {
	var res Result
	now := s.now()

	for _, ef := range f.Events {
		start := now.Add(ef.StartsIn)
		if ef.Start != "" {
			t, err := tz.ParseTimestamp(ef.Start, s.zone)
			if err != nil {
				return res, fmt.Errorf("event %q: %w", ef.Name, err)
			}
			start = t
		}

		event, err := s.events.CreateEvent(ctx, input.EventInput{
			Name:        ef.Name,
			Location:    ef.Location,
			StartTime:   start,
			EndTime:     start.Add(ef.Duration),
			MaxCapacity: ef.MaxCapacity,
		})
		if errors.Is(err, domain.ErrEventScheduleConflict) {
			s.logger.Warn().Str("event", ef.Name).Msg("event already exists, skipping")
			res.EventsSkipped++
			continue
		}
		if err != nil {
			return res, fmt.Errorf("create event %q: %w", ef.Name, err)
		}
		res.EventsCreated++

		for _, af := range ef.Attendees {
			_, err := s.registration.RegisterAttendee(ctx, event.ID, input.AttendeeInput{
				Name:  af.Name,
				Email: af.Email,
			})
			if err != nil {
				if domain.Code(err) == "" {
					return res, fmt.Errorf("register %q for %q: %w", af.Email, ef.Name, err)
				}
				s.logger.Warn().
					Err(err).
					Int64("event_id", event.ID).
					Str("email", af.Email).
					Msg("registration rejected")
				res.AttendeesRejected++
				continue
			}
			res.AttendeesRegistered++
		}
	}

	s.logger.Info().
		Int("events_created", res.EventsCreated).
		Int("events_skipped", res.EventsSkipped).
		Int("attendees_registered", res.AttendeesRegistered).
		Int("attendees_rejected", res.AttendeesRejected).
		Msg("fixture applied")
	return res, nil
}
