package salon

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// ======================================================
// Working hours
// ======================================================

type SetWorkingHours struct {
	repo domain.SalonRepository
}

func NewSetWorkingHours(repo domain.SalonRepository) *SetWorkingHours {
	return &SetWorkingHours{repo: repo}
}

// Execute replaces the whole weekly map.
func (uc *SetWorkingHours) Execute(ctx context.Context, salonID, actorID string, hours models.WeeklyHours) (*models.Salon, error) {
	salon, err := loadOwned(ctx, uc.repo, salonID, actorID, "update working hours")
	if err != nil {
		return nil, err
	}
	if hours == nil {
		hours = models.WeeklyHours{}
	}
	if err := validateWeeklyHours(hours); err != nil {
		return nil, err
	}

	salon.WorkingHours = hours
	if err := save(ctx, uc.repo, salon, "Failed to update working hours."); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "working hours updated", "salon_id", salon.ID)
	return salon, nil
}

// ======================================================
// Holidays
// ======================================================

type HolidayInput struct {
	Date      string
	Reason    string
	IsFullDay bool
	StartTime string
	EndTime   string
}

type AddHoliday struct {
	repo  domain.SalonRepository
	clock timezone.Clock
}

func NewAddHoliday(repo domain.SalonRepository, clock timezone.Clock) *AddHoliday {
	return &AddHoliday{repo: repo, clock: clock}
}

func (uc *AddHoliday) Execute(ctx context.Context, salonID, actorID string, in HolidayInput) (*models.Holiday, error) {
	salon, err := loadOwned(ctx, uc.repo, salonID, actorID, "set holidays")
	if err != nil {
		return nil, err
	}

	if err := validateHoliday(in); err != nil {
		return nil, err
	}

	h := models.Holiday{
		ID:        uuid.NewString(),
		Date:      in.Date,
		Reason:    in.Reason,
		IsFullDay: in.IsFullDay,
		StartTime: in.StartTime,
		EndTime:   in.EndTime,
		CreatedAt: uc.clock.Now(),
	}

	salon.Holidays = append(salon.Holidays, h)
	if err := save(ctx, uc.repo, salon, "Failed to set holiday."); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "holiday added", "salon_id", salon.ID, "date", h.Date)
	return &h, nil
}

func validateHoliday(in HolidayInput) error {
	fields := map[string]string{}
	if _, err := domain.ParseISODate(in.Date); err != nil {
		fields["date"] = "date must be YYYY-MM-DD"
	}

	// A window needs both ends, otherwise the entry never matches a day.
	start, startErr := domain.ParseClock(in.StartTime)
	end, endErr := domain.ParseClock(in.EndTime)
	switch {
	case in.StartTime == "" && in.EndTime == "":
		if !in.IsFullDay {
			fields["isFullDay"] = "holiday must be full day or have startTime and endTime"
		}
	case in.StartTime == "":
		fields["startTime"] = "startTime is required with endTime"
	case in.EndTime == "":
		fields["endTime"] = "endTime is required with startTime"
	case startErr != nil || endErr != nil:
		if startErr != nil {
			fields["startTime"] = "startTime must be HH:MM"
		}
		if endErr != nil {
			fields["endTime"] = "endTime must be HH:MM"
		}
	case start >= end:
		fields["endTime"] = "endTime must be after startTime"
	}

	if len(fields) > 0 {
		return httperr.Validation("invalid_holiday", "Invalid holiday.", fields)
	}
	return nil
}
