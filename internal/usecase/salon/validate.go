package salon

import (
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// validateWeeklyHours checks weekday keys and, for open days, an HH:MM
// window with open before close.
func validateWeeklyHours(hours models.WeeklyHours) error {
	fields := map[string]string{}

	for day, h := range hours {
		if !domain.IsWeekday(day) {
			fields[day] = "unknown weekday"
			continue
		}
		if !h.IsOpen {
			continue
		}

		open, err := domain.ParseClock(h.Open)
		if err != nil {
			fields[day+".open"] = "open must be HH:MM"
			continue
		}
		closing, err := domain.ParseClock(h.Close)
		if err != nil {
			fields[day+".close"] = "close must be HH:MM"
			continue
		}
		if open >= closing {
			fields[day] = "open must be before close"
		}
	}

	if len(fields) > 0 {
		return httperr.Validation("invalid_working_hours", "Invalid working hours.", fields)
	}
	return nil
}
