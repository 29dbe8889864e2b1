package timezone

import "time"

const DefaultTimezone = "UTC"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	return time.UTC
}

// Clock yields "now" in the gym's zone. Use cases take a Clock so tests can pin time.
type Clock interface {
	Now() time.Time
	Location() *time.Location
}

type LocalClock struct {
	loc *time.Location
}

func NewClock(tz string) LocalClock {
	return LocalClock{loc: Location(tz)}
}

func (c LocalClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c LocalClock) Location() *time.Location {
	return c.loc
}

type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time {
	return c.At
}

func (c FixedClock) Location() *time.Location {
	return c.At.Location()
}

// Today truncates t to midnight in its own location.
func Today(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MonthBounds returns [first day of t's month, first day of the next month).
func MonthBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return start, start.AddDate(0, 1, 0)
}
