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

type CancelAppointment struct {
	repo  domain.AppointmentRepository
	audit *audit.Dispatcher
	clock timezone.Clock
}

func NewCancelAppointment(
	repo domain.AppointmentRepository,
	audit *audit.Dispatcher,
	clock timezone.Clock,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
		clock: clock,
	}
}

// Execute cancels on behalf of the booking customer.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID string,
	customerID string,
	reason string,
) (*models.Appointment, error) {

	ap, err := uc.load(ctx, appointmentID, customerID)
	if err != nil {
		return nil, err
	}

	if err := domain.Cancel(ap, reason, uc.clock.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, httperr.Internal(err, "Failed to cancel appointment.")
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  ap.SalonID,
		ActorID:  customerID,
		Action:   "appointment_cancelled",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]string{"reason": reason},
	})
	slog.InfoContext(ctx, "appointment cancelled", "appointment_id", ap.ID, "salon_id", ap.SalonID)

	return ap, nil
}

func (uc *CancelAppointment) load(ctx context.Context, appointmentID, customerID string) (*models.Appointment, error) {
	ap, err := loadAppointment(ctx, uc.repo, appointmentID)
	if err != nil {
		return nil, err
	}
	if customerID == "" || ap.CustomerID != customerID {
		return nil, httperr.Forbidden("forbidden", "Unauthorized to cancel this appointment.")
	}
	return ap, nil
}
