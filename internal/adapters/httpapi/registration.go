package httpapi

import (
	"net/http"

	"eventreg/internal/domain"
	"eventreg/internal/ports/input"
)

// registerAttendee serves POST /api/events/{id}/register/.
func (h *Handler) registerAttendee(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeError(w, r, domain.ErrEventNotFound)
		return
	}
	var req registrationRequest
	if err := decodeJSON(r, w, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	attendee, err := h.registration.RegisterAttendee(r.Context(), id, input.AttendeeInput{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAttendeeResponse(*attendee))
}

// listAttendees serves GET /api/events/{id}/attendees/.
func (h *Handler) listAttendees(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeError(w, r, domain.ErrEventNotFound)
		return
	}
	page, err := pageRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	res, err := h.queries.ListAttendees(r.Context(), id, page)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newPageResponse(r, res.Page, toAttendeeResponses(res.Attendees)))
}
