package httpapi

import (
	"net/http"

	"eventreg/internal/domain"
)

// listEvents serves GET /api/events/.
func (h *Handler) listEvents(w http.ResponseWriter, r *http.Request) {
	zone := h.defaultZone.String()
	if values, ok := r.URL.Query()["timezone"]; ok {
		zone = values[0]
	}
	page, err := pageRequest(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	res, err := h.queries.ListUpcomingEvents(r.Context(), zone, page)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newPageResponse(r, res.Page, toUpcomingResponse(res)))
}

// createEvent serves POST /api/events/.
func (h *Handler) createEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := decodeJSON(r, w, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	in, err := h.eventInput(req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	event, err := h.events.CreateEvent(r.Context(), in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEventResponse(*event))
}

// getEvent serves GET /api/events/{id}/.
func (h *Handler) getEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeError(w, r, domain.ErrEventNotFound)
		return
	}

	details, err := h.queries.GetEvent(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp := toEventResponse(details.Event)
	resp.AttendeeCount = &details.AttendeeCount
	writeJSON(w, http.StatusOK, resp)
}

// updateEvent serves PUT /api/events/{id}/.
func (h *Handler) updateEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeError(w, r, domain.ErrEventNotFound)
		return
	}
	var req eventRequest
	if err := decodeJSON(r, w, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	in, err := h.eventInput(req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	event, err := h.events.UpdateEvent(r.Context(), id, in)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponse(*event))
}

// patchEvent serves PATCH /api/events/{id}/.
func (h *Handler) patchEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeError(w, r, domain.ErrEventNotFound)
		return
	}
	var req eventPatchRequest
	if err := decodeJSON(r, w, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	patch, err := h.eventPatch(req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	event, err := h.events.PatchEvent(r.Context(), id, patch)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponse(*event))
}

// deleteEvent serves DELETE /api/events/{id}/.
func (h *Handler) deleteEvent(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		h.writeError(w, r, domain.ErrEventNotFound)
		return
	}
	if err := h.events.DeleteEvent(r.Context(), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
