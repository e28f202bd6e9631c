package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"eventreg/internal/metrics"
)

// Routes registers every endpoint on a ServeMux. An {id} that is not a
// positive integer is answered with 404 by the handlers.
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/events/{$}", h.listEvents)
	mux.HandleFunc("POST /api/events/{$}", h.createEvent)
	mux.HandleFunc("GET /api/events/{id}/{$}", h.getEvent)
	mux.HandleFunc("PUT /api/events/{id}/{$}", h.updateEvent)
	mux.HandleFunc("PATCH /api/events/{id}/{$}", h.patchEvent)
	mux.HandleFunc("DELETE /api/events/{id}/{$}", h.deleteEvent)
	mux.HandleFunc("POST /api/events/{id}/register/{$}", h.registerAttendee)
	mux.HandleFunc("GET /api/events/{id}/attendees/{$}", h.listAttendees)

	mux.HandleFunc("GET /healthz", h.healthz)
	mux.Handle("GET /metrics", metrics.Handler())
	return mux
}

// Router wraps Routes with the middleware stack. Metrics sit directly on the
// mux so that the matched pattern is visible to them.
func (h *Handler) Router(rl *RateLimiter) http.Handler {
	return Chain(h.Routes(),
		RequestID(h.logger),
		RequestLogging(),
		h.Recovery(),
		h.RateLimit(rl),
		metrics.HTTPMiddleware,
	)
}

type ServerConfig struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	RateLimitPerMin int
	RateLimitBurst  int
}

// Server is the HTTP adapter.
type Server struct {
	http            *http.Server
	limiter         *RateLimiter
	shutdownTimeout time.Duration
	logger          zerolog.Logger
}

func NewServer(cfg ServerConfig, h *Handler, logger zerolog.Logger) *Server {
	limiter := NewRateLimiter(cfg.RateLimitPerMin, cfg.RateLimitBurst)
	return &Server{
		http: &http.Server{
			Addr:              cfg.Addr,
			Handler:           h.Router(limiter),
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       60 * time.Second,
		},
		limiter:         limiter,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	defer s.limiter.Stop()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.http.Addr).Msg("http server listening")
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info().Msg("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	if err := s.http.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
