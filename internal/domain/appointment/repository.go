package appointment

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// ListFilter narrows ListAppointments. Empty fields are not applied.
type ListFilter struct {
	SalonID    string
	CustomerID string
	Date       string
	Time       string
	Statuses   []Status
}

// SalonFilter narrows ListSalons. Empty fields are not applied.
type SalonFilter struct {
	OwnerID    string
	City       string
	ActiveOnly bool
}

type SalonRepository interface {
	// GetSalon returns ErrSalonNotFound when id is unknown.
	GetSalon(ctx context.Context, id string) (*models.Salon, error)

	// ListSalons returns matches ordered by CreatedAt, newest first.
	ListSalons(ctx context.Context, filter SalonFilter) ([]models.Salon, error)
	CreateSalon(ctx context.Context, salon *models.Salon) error
	UpdateSalon(ctx context.Context, salon *models.Salon) error
}

type AppointmentRepository interface {
	// GetAppointment returns ErrAppointmentNotFound when id is unknown.
	GetAppointment(ctx context.Context, id string) (*models.Appointment, error)

	// ListAppointments returns matches ordered by CreatedAt, newest first.
	ListAppointments(ctx context.Context, filter ListFilter) ([]models.Appointment, error)

	// CreateAppointment writes unconditionally.
	CreateAppointment(ctx context.Context, ap *models.Appointment) error

	// CreateIfSlotFree writes ap only when no active appointment holds
	// (SalonID, Date, Time); otherwise it returns ErrSlotTaken.
	CreateIfSlotFree(ctx context.Context, ap *models.Appointment) error

	UpdateAppointment(ctx context.Context, ap *models.Appointment) error
}
