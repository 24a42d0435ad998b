package appointment

import (
	"context"
	"log/slog"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type UpdateStatusInput struct {
	AppointmentID string
	ActorID       string
	Status        string
	Notes         string
}

type UpdateAppointmentStatus struct {
	salons       domain.SalonRepository
	appointments domain.AppointmentRepository
	audit        *audit.Dispatcher
	clock        timezone.Clock
}

func NewUpdateAppointmentStatus(
	salons domain.SalonRepository,
	appointments domain.AppointmentRepository,
	audit *audit.Dispatcher,
	clock timezone.Clock,
) *UpdateAppointmentStatus {
	return &UpdateAppointmentStatus{
		salons:       salons,
		appointments: appointments,
		audit:        audit,
		clock:        clock,
	}
}

// Execute applies an owner-driven transition. Ownership is checked before
// the requested status is looked at.
func (uc *UpdateAppointmentStatus) Execute(
	ctx context.Context,
	in UpdateStatusInput,
) (*models.Appointment, error) {

	ap, err := loadAppointment(ctx, uc.appointments, in.AppointmentID)
	if err != nil {
		return nil, err
	}

	owner, err := isOwner(ctx, uc.salons, ap.SalonID, in.ActorID)
	if err != nil {
		return nil, err
	}
	if !owner {
		return nil, httperr.Forbidden("forbidden", "Unauthorized to update this appointment.")
	}

	to, ok := domain.ParseStatus(in.Status)
	if !ok {
		return nil, httperr.Validation("invalid_status", "Invalid status.", map[string]string{
			"status": "status must be one of: pending confirmed completed cancelled",
		})
	}

	from := ap.Status
	if err := domain.Transition(ap, to, in.Notes, uc.clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.appointments.UpdateAppointment(ctx, ap); err != nil {
		return nil, httperr.Internal(err, "Failed to update appointment status.")
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  ap.SalonID,
		ActorID:  in.ActorID,
		Action:   "appointment_status_updated",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]string{"from": from, "to": ap.Status},
	})
	slog.InfoContext(ctx, "appointment status updated",
		"appointment_id", ap.ID,
		"from", from,
		"to", ap.Status,
	)

	return ap, nil
}
