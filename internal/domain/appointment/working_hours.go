package appointment

import (
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"

	// DefaultSlotMinutes is the grid step used when none is configured.
	DefaultSlotMinutes = 30
)

var Weekdays = []string{"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}

// ParseISODate accepts "YYYY-MM-DD" only. Request dates go through it because
// the raw string is the store's equality key.
func ParseISODate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, errors.Newf("invalid date %q", s)
	}
	return d, nil
}

// parseHolidayDate also accepts RFC 3339 timestamps found in stored holiday entries.
func parseHolidayDate(s string) (time.Time, error) {
	if d, err := ParseISODate(s); err == nil {
		return d, nil
	}
	if ts, err := time.Parse(time.RFC3339, s); err == nil {
		return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Time{}, errors.Newf("invalid date %q", s)
}

// ParseClock converts "HH:MM" to minutes after midnight. The two-digit form
// is required so stored values stay string-comparable.
func ParseClock(hm string) (int, error) {
	if len(hm) != len(ClockLayout) {
		return 0, errors.Newf("invalid time %q", hm)
	}
	t, err := time.Parse(ClockLayout, hm)
	if err != nil {
		return 0, errors.Wrapf(err, "invalid time %q", hm)
	}
	return t.Hour()*60 + t.Minute(), nil
}

func FormatClock(minutes int) string {
	return time.Date(2000, 1, 1, 0, minutes, 0, 0, time.UTC).Format(ClockLayout)
}

// WeekdayName returns the lowercase working-hours key for date.
func WeekdayName(date time.Time) string {
	return strings.ToLower(date.Weekday().String())
}

func IsWeekday(name string) bool {
	for _, d := range Weekdays {
		if d == name {
			return true
		}
	}
	return false
}

func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
