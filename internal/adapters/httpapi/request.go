package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"eventreg/internal/domain"
	"eventreg/internal/ports/input"
	"eventreg/pkg/tz"
)

const maxBodyBytes = 1 << 20

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

type eventRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Location    string `json:"location" validate:"required,max=255"`
	StartTime   string `json:"start_time" validate:"required"`
	EndTime     string `json:"end_time" validate:"required"`
	MaxCapacity *int   `json:"max_capacity" validate:"required"`
}

type eventPatchRequest struct {
	Name        *string `json:"name" validate:"omitempty,max=255"`
	Location    *string `json:"location" validate:"omitempty,max=255"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	MaxCapacity *int    `json:"max_capacity"`
}

// registrationRequest is checked by the registration engine once the event
// is known to exist.
type registrationRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// decodeJSON reads one JSON object from the request body into dst and
// validates it.
func decodeJSON(r *http.Request, w http.ResponseWriter, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		switch {
		case errors.Is(err, io.EOF):
			return domain.InvalidRequest("request body is empty")
		case errors.As(err, &maxErr):
			return domain.InvalidRequest("request body is too large")
		default:
			return domain.InvalidRequest("malformed JSON body")
		}
	}
	if err := validate.Struct(dst); err != nil {
		return validationError(err)
	}
	return nil
}

// validationError turns the first validator failure into a domain error.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.InvalidRequest(err.Error())
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "required":
		return domain.InvalidRequest(fe.Field() + " is required")
	case "max":
		limit, _ := strconv.Atoi(fe.Param())
		return domain.FieldTooLong(fe.Field(), limit)
	default:
		return domain.InvalidRequest(fe.Field() + " is invalid")
	}
}

func (h *Handler) parseTime(field, value string) (time.Time, error) {
	t, err := tz.ParseTimestamp(value, h.defaultZone)
	if err != nil {
		return time.Time{}, domain.InvalidRequest(fmt.Sprintf("%s must be an ISO 8601 timestamp", field))
	}
	return t, nil
}

func (h *Handler) eventInput(req eventRequest) (input.EventInput, error) {
	start, err := h.parseTime("start_time", req.StartTime)
	if err != nil {
		return input.EventInput{}, err
	}
	end, err := h.parseTime("end_time", req.EndTime)
	if err != nil {
		return input.EventInput{}, err
	}
	return input.EventInput{
		Name:        req.Name,
		Location:    req.Location,
		StartTime:   start,
		EndTime:     end,
		MaxCapacity: *req.MaxCapacity,
	}, nil
}

func (h *Handler) eventPatch(req eventPatchRequest) (input.EventPatch, error) {
	patch := input.EventPatch{
		Name:        req.Name,
		Location:    req.Location,
		MaxCapacity: req.MaxCapacity,
	}
	if req.StartTime != nil {
		start, err := h.parseTime("start_time", *req.StartTime)
		if err != nil {
			return input.EventPatch{}, err
		}
		patch.StartTime = &start
	}
	if req.EndTime != nil {
		end, err := h.parseTime("end_time", *req.EndTime)
		if err != nil {
			return input.EventPatch{}, err
		}
		patch.EndTime = &end
	}
	return patch, nil
}

// pathID reads the {id} wildcard. ok is false when it is not a positive
// integer, in which case no route matches.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, false
	}
	return id, true
}

// pageRequest reads page and page_size. A non-numeric or non-positive page
// is an error; an unusable page_size falls back to the default.
func pageRequest(r *http.Request) (input.PageRequest, error) {
	q := r.URL.Query()
	var req input.PageRequest

	if raw := q.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return input.PageRequest{}, domain.ErrInvalidPageNumber
		}
		req.Page = page
	}
	if raw := q.Get("page_size"); raw != "" {
		if size, err := strconv.Atoi(raw); err == nil && size > 0 {
			req.PageSize = size
		}
	}
	return req, nil
}
