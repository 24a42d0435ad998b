package timezone

import "time"

const (
	DefaultTimezone = "UTC"
	dateLayout      = "2006-01-02"
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
	return time.UTC
}

// Clock yields the current time in the salon's configured zone.
type Clock struct {
	loc *time.Location
	now func() time.Time
}

func NewClock(tz string) Clock {
	return Clock{loc: Location(tz), now: time.Now}
}

// FixedClock always reports t. Used by tests and replays.
func FixedClock(t time.Time) Clock {
	return Clock{loc: t.Location(), now: func() time.Time { return t }}
}

func (c Clock) Now() time.Time {
	if c.now == nil {
		return time.Now().In(time.UTC)
	}
	loc := c.loc
	if loc == nil {
		loc = time.UTC
	}
	return c.now().In(loc)
}

// Today is the current calendar date as "YYYY-MM-DD".
func (c Clock) Today() string {
	return c.Now().Format(dateLayout)
}

func (c Clock) Tomorrow() string {
	return c.Now().AddDate(0, 0, 1).Format(dateLayout)
}
