package httpapi

import (
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"eventreg/internal/domain"
)

// statusFor maps a domain error kind to an HTTP status. Conflicts are 400 to
// match the established API contract.
func statusFor(kind domain.Kind) int {
	switch kind {
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindValidation, domain.KindConflict:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as {"error": message}. Domain errors are localized
// from the Accept-Language header; anything else is logged and hidden behind
// a generic 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var de *domain.Error
	if !errors.As(err, &de) {
		zerolog.Ctx(r.Context()).Error().
			Err(err).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Msg("request failed")
		h.writeMessage(w, r, http.StatusInternalServerError, "errors.internal", nil, "internal server error")
		return
	}

	status := statusFor(de.Kind)
	zerolog.Ctx(r.Context()).Warn().
		Str("code", de.Code).
		Int("status", status).
		Msg(de.Message)
	h.writeMessage(w, r, status, "errors."+de.Code, de.Data, de.Message)
}

// writeMessage writes the translation of key, or fallback when no catalog
// has it.
func (h *Handler) writeMessage(w http.ResponseWriter, r *http.Request, status int, key string, data map[string]any, fallback string) {
	msg := h.translate(r.Header.Get("Accept-Language"), key, data)
	if msg == "" || msg == key {
		msg = fallback
	}
	writeJSON(w, status, errorResponse{Error: msg})
}
