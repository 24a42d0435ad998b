package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type GetAppointment struct {
	salons       domain.SalonRepository
	appointments domain.AppointmentRepository
}

func NewGetAppointment(salons domain.SalonRepository, appointments domain.AppointmentRepository) *GetAppointment {
	return &GetAppointment{salons: salons, appointments: appointments}
}

// Execute returns the appointment to its customer or the salon owner.
func (uc *GetAppointment) Execute(ctx context.Context, appointmentID, actorID string) (*models.Appointment, error) {
	ap, err := loadAppointment(ctx, uc.appointments, appointmentID)
	if err != nil {
		return nil, err
	}

	if actorID != "" && ap.CustomerID == actorID {
		return ap, nil
	}

	owner, err := isOwner(ctx, uc.salons, ap.SalonID, actorID)
	if err != nil {
		return nil, err
	}
	if !owner {
		return nil, httperr.Forbidden("forbidden", "Unauthorized to view this appointment.")
	}
	return ap, nil
}
