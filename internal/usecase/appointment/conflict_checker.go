package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

// ConflictChecker answers point-in-time questions about which slots active
// appointments hold. Results are as fresh as the store read.
type ConflictChecker struct {
	repo domain.AppointmentRepository
}

func NewConflictChecker(repo domain.AppointmentRepository) *ConflictChecker {
	return &ConflictChecker{repo: repo}
}

func (c *ConflictChecker) GetBookedTimes(ctx context.Context, salonID, date string) (map[string]struct{}, error) {
	apps, err := c.repo.ListAppointments(ctx, domain.ListFilter{
		SalonID:  salonID,
		Date:     date,
		Statuses: domain.ActiveStatuses,
	})
	if err != nil {
		return nil, httperr.Internal(err, "Failed to load booked times.")
	}

	booked := make(map[string]struct{}, len(apps))
	for _, ap := range apps {
		booked[ap.Time] = struct{}{}
	}
	return booked, nil
}

func (c *ConflictChecker) IsSlotTaken(ctx context.Context, salonID, date, hm string) (bool, error) {
	apps, err := c.repo.ListAppointments(ctx, domain.ListFilter{
		SalonID:  salonID,
		Date:     date,
		Time:     hm,
		Statuses: domain.ActiveStatuses,
	})
	if err != nil {
		return false, httperr.Internal(err, "Failed to check slot.")
	}
	return len(apps) > 0, nil
}
