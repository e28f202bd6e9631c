package httpapi

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"eventreg/internal/ports/input"
	"eventreg/internal/ports/output"
	"eventreg/pkg/tz"
)

// Pinger reports whether the storage backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler serves the HTTP API using use cases.
type Handler struct {
	events       input.EventUseCase
	registration input.RegistrationUseCase
	queries      input.QueryUseCase
	translator   output.Translator
	health       Pinger
	defaultZone  *time.Location
	logger       zerolog.Logger
}

// NewHandler creates a Handler. defaultZone is used for requests that name no
// timezone and for timestamps without an offset; nil means tz.Default.
func NewHandler(
	events input.EventUseCase,
	registration input.RegistrationUseCase,
	queries input.QueryUseCase,
	translator output.Translator,
	health Pinger,
	defaultZone *time.Location,
	logger zerolog.Logger,
) *Handler {
	if defaultZone == nil {
		defaultZone = tz.Default
	}
	return &Handler{
		events:       events,
		registration: registration,
		queries:      queries,
		translator:   translator,
		health:       health,
		defaultZone:  defaultZone,
		logger:       logger.With().Str("component", "http").Logger(),
	}
}

func (h *Handler) translate(locale, key string, data map[string]any) string {
	if h.translator == nil {
		return key
	}
	return h.translator.T(locale, key, data)
}
