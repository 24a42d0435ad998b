package appointment

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, reason string, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancellationReason = reason
	ap.CancelledAt = &now
	ap.UpdatedAt = now
	return nil
}

func Transition(ap *models.Appointment, to Status, notes string, now time.Time) error {
	if err := CanTransition(Status(ap.Status), to); err != nil {
		return err
	}

	ap.Status = string(to)
	if notes != "" {
		ap.Notes = notes
	}
	if to == StatusCancelled {
		ap.CancelledAt = &now
	}
	ap.UpdatedAt = now
	return nil
}
