package salon

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

const defaultStatus = "open"

type AvailabilityInput struct {
	IsAvailable   bool
	Status        string
	StatusMessage string
}

type SetAvailability struct {
	repo domain.SalonRepository
}

func NewSetAvailability(repo domain.SalonRepository) *SetAvailability {
	return &SetAvailability{repo: repo}
}

// Execute flips the manual override. A salon marked unavailable accepts no
// bookings whatever its working hours say.
func (uc *SetAvailability) Execute(ctx context.Context, salonID, actorID string, in AvailabilityInput) (*models.Salon, error) {
	salon, err := loadOwned(ctx, uc.repo, salonID, actorID, "update availability")
	if err != nil {
		return nil, err
	}

	salon.IsAvailable = in.IsAvailable
	salon.Status = in.Status
	salon.StatusMessage = in.StatusMessage

	if err := save(ctx, uc.repo, salon, "Failed to update availability status."); err != nil {
		return nil, err
	}
	return salon, nil
}

type Availability struct {
	IsAvailable   bool               `json:"isAvailable"`
	WorkingHours  models.WeeklyHours `json:"workingHours"`
	Holidays      []models.Holiday   `json:"holidays"`
	IsHoliday     bool               `json:"isHoliday"`
	Status        string             `json:"status"`
	StatusMessage string             `json:"statusMessage"`
}

type GetAvailability struct {
	repo domain.SalonRepository
}

func NewGetAvailability(repo domain.SalonRepository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// Execute is public. An empty or unparsable date never counts as a holiday.
func (uc *GetAvailability) Execute(ctx context.Context, salonID, date string) (*Availability, error) {
	salon, err := loadSalon(ctx, uc.repo, salonID)
	if err != nil {
		return nil, err
	}

	out := &Availability{
		IsAvailable:   salon.IsAvailable,
		WorkingHours:  salon.WorkingHours,
		Holidays:      salon.Holidays,
		Status:        salon.Status,
		StatusMessage: salon.StatusMessage,
	}
	if out.WorkingHours == nil {
		out.WorkingHours = models.WeeklyHours{}
	}
	if out.Holidays == nil {
		out.Holidays = []models.Holiday{}
	}
	if out.Status == "" {
		out.Status = defaultStatus
	}

	if day, err := domain.ParseISODate(date); err == nil {
		out.IsHoliday = domain.IsHoliday(salon.Holidays, day)
	}
	return out, nil
}
