package appointment

import "github.com/cockroachdb/errors"

// Sentinels returned by repository and lock implementations.
var (
	ErrSalonNotFound       = errors.New("salon not found")
	ErrAppointmentNotFound = errors.New("appointment not found")
	ErrSlotTaken           = errors.New("slot already booked")
	ErrSlotLocked          = errors.New("slot is locked by another booking")
)
