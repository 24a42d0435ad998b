package reminder

import (
	"context"
	"log/slog"

	"github.com/cockroachdb/errors"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

const ActionReminder = "appointment_reminder"

// Sweeper emits one reminder event per active appointment dated tomorrow.
type Sweeper struct {
	appointments domain.AppointmentRepository
	audit        *audit.Dispatcher
	metrics      *metrics.Metrics
	clock        timezone.Clock
}

func NewSweeper(
	appointments domain.AppointmentRepository,
	audit *audit.Dispatcher,
	metrics *metrics.Metrics,
	clock timezone.Clock,
) *Sweeper {
	return &Sweeper{
		appointments: appointments,
		audit:        audit,
		metrics:      metrics,
		clock:        clock,
	}
}

// Run returns how many reminders were dispatched.
func (s *Sweeper) Run(ctx context.Context) (int, error) {
	date := s.clock.Tomorrow()

	aps, err := s.appointments.ListAppointments(ctx, domain.ListFilter{
		Date:     date,
		Statuses: domain.ActiveStatuses,
	})
	if err != nil {
		return 0, errors.Wrapf(err, "list appointments for %s", date)
	}

	for _, ap := range aps {
		s.audit.Dispatch(audit.Event{
			SalonID:  ap.SalonID,
			ActorID:  "system",
			Action:   ActionReminder,
			Entity:   "appointment",
			EntityID: ap.ID,
			Metadata: map[string]string{
				"customerId": ap.CustomerID,
				"date":       ap.Date,
				"time":       ap.Time,
				"service":    ap.ServiceName,
			},
		})
		s.metrics.ReminderSent()
	}

	slog.InfoContext(ctx, "reminder sweep finished", "date", date, "count", len(aps))
	return len(aps), nil
}
