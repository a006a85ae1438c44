package timezone

import (
	"fmt"
	"time"
)

const DefaultTimezone = "America/Sao_Paulo"

const (
	DateLayout   = "2006-01-02"
	MinuteLayout = "15:04"
)

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

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Clock returns the current instant in the business timezone.
type Clock func() time.Time

func SystemClock(tz string) Clock {
	loc := Location(tz)
	return func() time.Time {
		return time.Now().In(loc)
	}
}

// FixedClock is used by tests and by tooling that replays a moment.
func FixedClock(t time.Time) Clock {
	return func() time.Time { return t }
}

// --------------------------------------------------
// Dates and minute-of-day
// --------------------------------------------------

func ParseDate(s string) (string, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", s, err)
	}
	return d.Format(DateLayout), nil
}

func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

func ParseMinute(hm string) (int, error) {
	t, err := time.Parse(MinuteLayout, hm)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", hm, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func FormatMinute(minute int) string {
	return fmt.Sprintf("%02d:%02d", minute/60, minute%60)
}

// At combines a date and a minute-of-day as wall-clock time in loc.
func At(date string, minute int, loc *time.Location) (time.Time, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), minute/60, minute%60, 0, 0, loc), nil
}
