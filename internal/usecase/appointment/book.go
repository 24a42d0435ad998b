package appointment

import (
	"context"
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	SalonID     string
	ServiceID   string
	ServiceName string
	Date        string
	Time        string
	Notes       string

	// Optional. Default to the caller and the catalog entry.
	CustomerID   string
	CustomerName string
	TotalAmount  *float64

	ActorID    string
	ActorName  string
	ActorEmail string
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	salons       domain.SalonRepository
	appointments domain.AppointmentRepository
	checker      *ConflictChecker
	locker       domain.SlotLocker
	lockTTL      time.Duration
	audit        *audit.Dispatcher
	metrics      *metrics.Metrics
}

// NewBookAppointment wires the booking path. locker may be nil, in which
// case the store's conditional insert alone guards the slot.
func NewBookAppointment(
	salons domain.SalonRepository,
	appointments domain.AppointmentRepository,
	locker domain.SlotLocker,
	lockTTL time.Duration,
	audit *audit.Dispatcher,
	metrics *metrics.Metrics,
) *BookAppointment {
	return &BookAppointment{
		salons:       salons,
		appointments: appointments,
		checker:      NewConflictChecker(appointments),
		locker:       locker,
		lockTTL:      lockTTL,
		audit:        audit,
		metrics:      metrics,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (ap *models.Appointment, err error) {

	defer func() { uc.metrics.BookingAttempt(outcomeOf(err)) }()

	// --------------------------------------------------
	// Required fields
	// --------------------------------------------------
	if err := validateBooking(in); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Salon
	// --------------------------------------------------
	salon, err := loadSalon(ctx, uc.salons, in.SalonID)
	if err != nil {
		return nil, err
	}

	if !salon.IsAvailable {
		return nil, httperr.Unavailable("salon_unavailable", "Salon is currently not accepting appointments.")
	}

	// --------------------------------------------------
	// Opening hours (exclusive at close)
	// --------------------------------------------------
	day, _ := domain.ParseISODate(in.Date)
	schedule := domain.ComputeDaySchedule(salon, day)
	if !schedule.IsOpen {
		return nil, httperr.Closed("salon_closed", "Salon is closed on the selected date ("+schedule.Reason+").")
	}
	if !schedule.Contains(in.Time) {
		return nil, httperr.Closed("outside_working_hours", "Selected time is outside working hours.")
	}

	// --------------------------------------------------
	// Service
	// --------------------------------------------------
	serviceName := in.ServiceName
	var totalAmount float64
	if in.TotalAmount != nil {
		totalAmount = *in.TotalAmount
	}

	if len(salon.Services) > 0 {
		svc := salon.FindService(in.ServiceID)
		if svc == nil || !svc.IsActive {
			return nil, httperr.NotFound("service_not_found", "Service not found.")
		}
		if serviceName == "" {
			serviceName = svc.Name
		}
		if in.TotalAmount == nil {
			totalAmount = svc.Price
		}
	}

	// --------------------------------------------------
	// Fast conflict check
	// --------------------------------------------------
	taken, err := uc.checker.IsSlotTaken(ctx, salon.ID, in.Date, in.Time)
	if err != nil {
		return nil, err
	}
	if taken {
		uc.conflict(in)
		return nil, httperr.Conflict("slot_taken", "Time slot is already booked.")
	}

	// --------------------------------------------------
	// Cross-instance slot lock
	// --------------------------------------------------
	if uc.locker != nil {
		unlock, err := uc.locker.Lock(ctx, domain.SlotKey(salon.ID, in.Date, in.Time), uc.lockTTL)
		if errors.Is(err, domain.ErrSlotLocked) {
			uc.conflict(in)
			return nil, httperr.Conflict("slot_locked", "Time slot is being booked, try again.")
		}
		if err != nil {
			return nil, httperr.Internal(err, "Failed to book appointment.")
		}
		defer func() {
			if uerr := unlock(context.WithoutCancel(ctx)); uerr != nil {
				slog.WarnContext(ctx, "slot unlock failed", "salon_id", salon.ID, "error", uerr)
			}
		}()
	}

	// --------------------------------------------------
	// Conditional write
	// --------------------------------------------------
	ap = &models.Appointment{
		SalonID:      salon.ID,
		ServiceID:    in.ServiceID,
		ServiceName:  serviceName,
		CustomerID:   firstNonEmpty(in.CustomerID, in.ActorID),
		CustomerName: firstNonEmpty(in.CustomerName, in.ActorName, in.ActorEmail),
		SalonName:    salon.Name,
		Date:         in.Date,
		Time:         in.Time,
		Status:       string(domain.InitialStatus()),
		TotalAmount:  totalAmount,
		Notes:        in.Notes,
	}

	if err := uc.appointments.CreateIfSlotFree(ctx, ap); err != nil {
		if errors.Is(err, domain.ErrSlotTaken) {
			uc.conflict(in)
			return nil, httperr.Conflict("slot_taken", "Time slot is already booked.")
		}
		return nil, httperr.Internal(err, "Failed to book appointment.")
	}

	// --------------------------------------------------
	// Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		SalonID:  salon.ID,
		ActorID:  in.ActorID,
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: ap.ID,
		Metadata: map[string]string{"date": ap.Date, "time": ap.Time},
	})
	slog.InfoContext(ctx, "appointment booked",
		"appointment_id", ap.ID,
		"salon_id", salon.ID,
		"date", ap.Date,
		"time", ap.Time,
	)

	return ap, nil
}

func (uc *BookAppointment) conflict(in BookAppointmentInput) {
	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		ActorID:  in.ActorID,
		Action:   "appointment_conflict",
		Entity:   "appointment",
		Metadata: map[string]string{"date": in.Date, "time": in.Time},
	})
}

func validateBooking(in BookAppointmentInput) error {
	fields := map[string]string{}
	if in.SalonID == "" {
		fields["salonId"] = "salonId is required"
	}
	if in.ServiceID == "" {
		fields["serviceId"] = "serviceId is required"
	}
	if in.Date == "" {
		fields["date"] = "date is required"
	} else if _, err := domain.ParseISODate(in.Date); err != nil {
		fields["date"] = "date must be YYYY-MM-DD"
	}
	if in.Time == "" {
		fields["time"] = "time is required"
	} else if _, err := domain.ParseClock(in.Time); err != nil {
		fields["time"] = "time must be HH:MM"
	}
	if in.TotalAmount != nil && *in.TotalAmount < 0 {
		fields["totalAmount"] = "totalAmount must not be negative"
	}

	if len(fields) > 0 {
		return httperr.Validation("missing_required_fields", "Missing or invalid required fields.", fields)
	}
	return nil
}

func outcomeOf(err error) string {
	if err == nil {
		return metrics.OutcomeBooked
	}
	switch httperr.KindOf(err) {
	case httperr.KindConflict:
		return metrics.OutcomeConflict
	case httperr.KindClosed:
		return metrics.OutcomeClosed
	case httperr.KindUnavailable:
		return metrics.OutcomeUnavailable
	case httperr.KindValidation:
		return metrics.OutcomeInvalid
	case httperr.KindNotFound:
		return metrics.OutcomeNotFound
	default:
		return metrics.OutcomeError
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
