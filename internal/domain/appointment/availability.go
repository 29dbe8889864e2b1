package appointment

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/gym-scheduler/internal/httperr"
)

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"

	DefaultConsultationFee = 100.0
)

var (
	ErrMissingSlot        = httperr.Validation("Please select both date and time.")
	ErrInvalidSlot        = httperr.Validation("Invalid date or time format.")
	ErrInvalidReschedule  = httperr.Validation("Invalid date/time format for rescheduling.")
	ErrTrainerUnavailable = httperr.ErrBusiness("trainer_unavailable")
)

// ParseSlot reads a booking form's date and time fields as a wall-clock instant in loc.
// Collisions are exact-instant, so seconds are always zero.
func ParseSlot(date, clock string, loc *time.Location) (time.Time, error) {
	date = strings.TrimSpace(date)
	clock = strings.TrimSpace(clock)
	if date == "" || clock == "" {
		return time.Time{}, ErrMissingSlot
	}

	at, err := time.ParseInLocation(DateLayout+" "+TimeLayout, date+" "+clock, loc)
	if err != nil {
		return time.Time{}, ErrInvalidSlot
	}
	return at, nil
}

var dateTimeLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDateTime accepts the value of an <input type="datetime-local"> and its ISO relatives.
func ParseDateTime(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateTimeLayouts {
		if at, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return at, nil
		}
	}
	return time.Time{}, ErrInvalidReschedule
}
