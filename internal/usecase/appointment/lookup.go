package appointment

import (
	"context"

	"github.com/cockroachdb/errors"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func loadSalon(ctx context.Context, repo domain.SalonRepository, id string) (*models.Salon, error) {
	salon, err := repo.GetSalon(ctx, id)
	if errors.Is(err, domain.ErrSalonNotFound) {
		return nil, httperr.NotFound("salon_not_found", "Salon not found.")
	}
	if err != nil {
		return nil, httperr.Internal(err, "Failed to load salon.")
	}
	return salon, nil
}

func loadAppointment(ctx context.Context, repo domain.AppointmentRepository, id string) (*models.Appointment, error) {
	ap, err := repo.GetAppointment(ctx, id)
	if errors.Is(err, domain.ErrAppointmentNotFound) {
		return nil, httperr.NotFound("appointment_not_found", "Appointment not found.")
	}
	if err != nil {
		return nil, httperr.Internal(err, "Failed to load appointment.")
	}
	return ap, nil
}

// isOwner reports whether actorID owns salonID. A missing salon is not owned.
func isOwner(ctx context.Context, repo domain.SalonRepository, salonID, actorID string) (bool, error) {
	salon, err := repo.GetSalon(ctx, salonID)
	if errors.Is(err, domain.ErrSalonNotFound) {
		return false, nil
	}
	if err != nil {
		return false, httperr.Internal(err, "Failed to load salon.")
	}
	return actorID != "" && salon.OwnerID == actorID, nil
}

func parseStatusFilter(raw string) ([]domain.Status, error) {
	if raw == "" {
		return nil, nil
	}
	st, ok := domain.ParseStatus(raw)
	if !ok {
		return nil, httperr.Validation("invalid_status", "Invalid status filter.", map[string]string{
			"status": "status must be one of: pending confirmed completed cancelled",
		})
	}
	return []domain.Status{st}, nil
}
