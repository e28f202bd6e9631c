package entities

import (
	"strings"
	"time"
	"unicode/utf8"

	"eventreg/internal/domain"
)

// MaxEmailLength follows the RFC 5321 path limit.
const MaxEmailLength = 254

// Attendee represents a registration for exactly one event.
type Attendee struct {
	ID           int64
	EventID      int64
	Name         string
	Email        string
	RegisteredAt time.Time
}

// NormalizeEmail trims and lowercases an address so that registrations are
// compared case-insensitively.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Normalize trims the name and normalizes the email.
func (a *Attendee) Normalize() {
	a.Name = strings.TrimSpace(a.Name)
	a.Email = NormalizeEmail(a.Email)
}

// Validate expects a normalized attendee.
func (a *Attendee) Validate() error {
	if a.Name == "" {
		return domain.ErrAttendeeNameRequired
	}
	if utf8.RuneCountInString(a.Name) > MaxTextLength {
		return domain.FieldTooLong("name", MaxTextLength)
	}
	if !strings.Contains(a.Email, "@") || strings.HasPrefix(a.Email, "@") || strings.HasSuffix(a.Email, "@") {
		return domain.ErrInvalidEmail
	}
	if len(a.Email) > MaxEmailLength {
		return domain.FieldTooLong("email", MaxEmailLength)
	}
	return nil
}
