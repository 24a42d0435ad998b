package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	SalonID     string `gorm:"type:uuid;not null;index:idx_appointments_salon_date,priority:1" json:"salonId"`
	ServiceID   string `gorm:"size:64;not null" json:"serviceId"`
	ServiceName string `gorm:"size:100" json:"serviceName"`
	CustomerID  string `gorm:"size:64;not null;index" json:"customerId"`

	// Denormalized for display, never re-synced.
	CustomerName string `gorm:"size:100" json:"customerName"`
	SalonName    string `gorm:"size:100" json:"salonName"`

	Date string `gorm:"size:10;not null;index:idx_appointments_salon_date,priority:2" json:"date"`
	Time string `gorm:"size:5;not null" json:"time"`

	Status      string  `gorm:"size:20;not null" json:"status"`
	TotalAmount float64 `json:"totalAmount"`
	Notes       string  `gorm:"size:500" json:"notes,omitempty"`

	CancellationReason string     `gorm:"size:500" json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
