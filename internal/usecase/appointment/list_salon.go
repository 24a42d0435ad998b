package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

type ListSalonInput struct {
	SalonID string
	ActorID string
	Status  string
	Date    string
	Page    int
	Limit   int
}

type ListSalonAppointments struct {
	salons       domain.SalonRepository
	appointments domain.AppointmentRepository
}

func NewListSalonAppointments(
	salons domain.SalonRepository,
	appointments domain.AppointmentRepository,
) *ListSalonAppointments {
	return &ListSalonAppointments{
		salons:       salons,
		appointments: appointments,
	}
}

// Execute lists a salon's appointments for its owner, newest first.
func (uc *ListSalonAppointments) Execute(ctx context.Context, in ListSalonInput) (dto.AppointmentPage, error) {
	salon, err := loadSalon(ctx, uc.salons, in.SalonID)
	if err != nil {
		return dto.AppointmentPage{}, err
	}
	if in.ActorID == "" || salon.OwnerID != in.ActorID {
		return dto.AppointmentPage{}, httperr.Forbidden("forbidden", "Unauthorized to view appointments for this salon.")
	}

	statuses, err := parseStatusFilter(in.Status)
	if err != nil {
		return dto.AppointmentPage{}, err
	}
	if in.Date != "" {
		if _, err := domain.ParseISODate(in.Date); err != nil {
			return dto.AppointmentPage{}, httperr.Validation("invalid_date", "Date must be YYYY-MM-DD.", map[string]string{
				"date": "date must be YYYY-MM-DD",
			})
		}
	}

	apps, err := uc.appointments.ListAppointments(ctx, domain.ListFilter{
		SalonID:  salon.ID,
		Date:     in.Date,
		Statuses: statuses,
	})
	if err != nil {
		return dto.AppointmentPage{}, httperr.Internal(err, "Failed to get salon appointments.")
	}

	return dto.Paginate(apps, in.Page, in.Limit), nil
}
