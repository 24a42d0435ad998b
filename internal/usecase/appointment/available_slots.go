package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

type AvailableSlots struct {
	Date     string
	Schedule domain.DaySchedule
	Slots    []string
}

type ListAvailableSlots struct {
	salons      domain.SalonRepository
	checker     *ConflictChecker
	slotMinutes int
}

func NewListAvailableSlots(
	salons domain.SalonRepository,
	checker *ConflictChecker,
	slotMinutes int,
) *ListAvailableSlots {
	return &ListAvailableSlots{
		salons:      salons,
		checker:     checker,
		slotMinutes: slotMinutes,
	}
}

// Execute returns the free slots for date in ascending order. A closed day
// yields an empty list and the closing reason, not an error.
func (uc *ListAvailableSlots) Execute(ctx context.Context, salonID, date string) (*AvailableSlots, error) {
	if date == "" {
		return nil, httperr.Validation("date_required", "Date is required.", map[string]string{
			"date": "date is required",
		})
	}
	day, err := domain.ParseISODate(date)
	if err != nil {
		return nil, httperr.Validation("invalid_date", "Date must be YYYY-MM-DD.", map[string]string{
			"date": "date must be YYYY-MM-DD",
		})
	}

	salon, err := loadSalon(ctx, uc.salons, salonID)
	if err != nil {
		return nil, err
	}

	out := &AvailableSlots{
		Date:     date,
		Schedule: domain.ComputeDaySchedule(salon, day),
		Slots:    []string{},
	}
	if !out.Schedule.IsOpen {
		return out, nil
	}

	booked, err := uc.checker.GetBookedTimes(ctx, salonID, date)
	if err != nil {
		return nil, err
	}

	for _, slot := range domain.GenerateSlots(out.Schedule.Open, out.Schedule.Close, uc.slotMinutes) {
		if _, taken := booked[slot]; !taken {
			out.Slots = append(out.Slots, slot)
		}
	}
	return out, nil
}
