package httpapi

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/samber/lo"

	"eventreg/internal/domain/entities"
	"eventreg/internal/ports/input"
	"eventreg/pkg/tz"
)

type errorResponse struct {
	Error string `json:"error"`
}

type eventResponse struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Location      string `json:"location"`
	StartTime     string `json:"start_time"`
	EndTime       string `json:"end_time"`
	MaxCapacity   int    `json:"max_capacity"`
	CreatedAt     string `json:"created_at"`
	AttendeeCount *int64 `json:"attendee_count,omitempty"`
}

type localizedEventResponse struct {
	eventResponse
	LocalStartTime string `json:"local_start_time"`
	LocalEndTime   string `json:"local_end_time"`
}

type upcomingEventsResponse struct {
	CurrentTime string                   `json:"current_time"`
	Timezone    string                   `json:"timezone"`
	Events      []localizedEventResponse `json:"events"`
}

type attendeeResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	RegisteredAt string `json:"registered_at"`
}

// pageResponse is the paginated envelope: count, next and previous page URLs,
// and the page results.
type pageResponse struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  any     `json:"results"`
}

func toEventResponse(e entities.Event) eventResponse {
	return eventResponse{
		ID:          e.ID,
		Name:        e.Name,
		Location:    e.Location,
		StartTime:   tz.Format(e.StartTime, time.UTC),
		EndTime:     tz.Format(e.EndTime, time.UTC),
		MaxCapacity: e.MaxCapacity,
		CreatedAt:   tz.Format(e.CreatedAt, time.UTC),
	}
}

func toUpcomingResponse(res *input.UpcomingEvents) upcomingEventsResponse {
	return upcomingEventsResponse{
		CurrentTime: res.CurrentTime.Format(time.RFC3339Nano),
		Timezone:    res.Timezone,
		Events: lo.Map(res.Events, func(e input.LocalizedEvent, _ int) localizedEventResponse {
			return localizedEventResponse{
				eventResponse:  toEventResponse(e.Event),
				LocalStartTime: e.LocalStartTime.Format(time.RFC3339Nano),
				LocalEndTime:   e.LocalEndTime.Format(time.RFC3339Nano),
			}
		}),
	}
}

func toAttendeeResponses(attendees []entities.Attendee) []attendeeResponse {
	return lo.Map(attendees, func(a entities.Attendee, _ int) attendeeResponse {
		return toAttendeeResponse(a)
	})
}

func toAttendeeResponse(a entities.Attendee) attendeeResponse {
	return attendeeResponse{
		ID:           a.ID,
		Name:         a.Name,
		Email:        a.Email,
		RegisteredAt: tz.Format(a.RegisteredAt, time.UTC),
	}
}

func newPageResponse(r *http.Request, page input.PageInfo, results any) pageResponse {
	resp := pageResponse{Count: page.Total, Results: results}
	if page.HasNext() {
		resp.Next = lo.ToPtr(pageURL(r, page.Page+1))
	}
	if page.HasPrevious() {
		resp.Previous = lo.ToPtr(pageURL(r, page.Page-1))
	}
	return resp
}

// pageURL is the absolute URL of the current request pointing at page. The
// first page is addressed without a page parameter.
func pageURL(r *http.Request, page int) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto == "http" || proto == "https" {
		scheme = proto
	}

	q := r.URL.Query()
	if page <= 1 {
		q.Del("page")
	} else {
		q.Set("page", strconv.Itoa(page))
	}
	u := url.URL{
		Scheme:   scheme,
		Host:     r.Host,
		Path:     r.URL.Path,
		RawQuery: q.Encode(),
	}
	return u.String()
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
