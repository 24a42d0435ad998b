package appointment

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

const (
	ReasonManuallyUnavailable = "manually unavailable"
	ReasonClosedWeekly        = "closed per weekly schedule"
	ReasonHoliday             = "holiday"
)

// DaySchedule is the open/closed determination for one calendar date.
type DaySchedule struct {
	IsOpen bool   `json:"isOpen"`
	Open   string `json:"open,omitempty"`
	Close  string `json:"close,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// Contains reports whether hm falls in [Open, Close).
func (d DaySchedule) Contains(hm string) bool {
	if !d.IsOpen {
		return false
	}
	t, err := ParseClock(hm)
	if err != nil {
		return false
	}
	open, err := ParseClock(d.Open)
	if err != nil {
		return false
	}
	closing, err := ParseClock(d.Close)
	if err != nil {
		return false
	}
	return t >= open && t < closing
}

// ComputeDaySchedule decides whether salon is open on date, checking the
// manual override, then the weekly schedule, then holidays.
func ComputeDaySchedule(salon *models.Salon, date time.Time) DaySchedule {
	if !salon.IsAvailable {
		return DaySchedule{Reason: ReasonManuallyUnavailable}
	}

	hours, ok := salon.WorkingHours[WeekdayName(date)]
	if !ok || !hours.IsOpen {
		return DaySchedule{Reason: ReasonClosedWeekly}
	}

	if IsHoliday(salon.Holidays, date) {
		return DaySchedule{Reason: ReasonHoliday}
	}

	return DaySchedule{IsOpen: true, Open: hours.Open, Close: hours.Close}
}

// IsHoliday reports whether a holiday entry blocks date. An entry blocks when
// it is full-day or carries a start/end window; partial windows close the
// whole day.
func IsHoliday(holidays []models.Holiday, date time.Time) bool {
	for _, h := range holidays {
		d, err := parseHolidayDate(h.Date)
		if err != nil || !SameDay(d, date) {
			continue
		}
		if h.IsFullDay || (h.StartTime != "" && h.EndTime != "") {
			return true
		}
	}
	return false
}

// GenerateSlots returns slot start times from open, stepping by
// durationMinutes, strictly before close. Misconfigured or empty windows
// yield an empty slice.
func GenerateSlots(open, close string, durationMinutes int) []string {
	if durationMinutes <= 0 {
		durationMinutes = DefaultSlotMinutes
	}

	slots := []string{}

	start, err := ParseClock(open)
	if err != nil {
		return slots
	}
	end, err := ParseClock(close)
	if err != nil {
		return slots
	}

	for cur := start; cur < end; cur += durationMinutes {
		slots = append(slots, FormatClock(cur))
	}
	return slots
}
