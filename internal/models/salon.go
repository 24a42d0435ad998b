package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DayHours is the opening window for one weekday. When IsOpen is false
// Open and Close are ignored.
type DayHours struct {
	Open   string `json:"open"`
	Close  string `json:"close"`
	IsOpen bool   `json:"isOpen"`
}

// WeeklyHours is keyed by lowercase weekday name ("monday" ... "sunday").
type WeeklyHours map[string]DayHours

type Holiday struct {
	ID        string    `json:"id"`
	Date      string    `json:"date"`
	Reason    string    `json:"reason"`
	IsFullDay bool      `json:"isFullDay"`
	StartTime string    `json:"startTime,omitempty"`
	EndTime   string    `json:"endTime,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Service struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Duration    int       `json:"duration"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Salon is stored as a document: schedule, holidays and catalog are JSON columns.
type Salon struct {
	ID          string `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID     string `gorm:"size:64;index;not null" json:"ownerId"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:500" json:"description"`
	Address     string `gorm:"size:255" json:"address"`
	City        string `gorm:"size:100;index" json:"city"`
	State       string `gorm:"size:100" json:"state"`
	Pincode     string `gorm:"size:20" json:"pincode"`
	Phone       string `gorm:"size:20" json:"phone"`
	Email       string `gorm:"size:100" json:"email"`

	WorkingHours WeeklyHours `gorm:"type:jsonb;serializer:json" json:"workingHours"`
	Holidays     []Holiday   `gorm:"type:jsonb;serializer:json" json:"holidays"`
	Services     []Service   `gorm:"type:jsonb;serializer:json" json:"services"`

	// IsActive lists the salon in public browsing; IsAvailable gates bookings.
	IsActive      bool   `gorm:"not null;default:true;index" json:"isActive"`
	IsAvailable   bool   `gorm:"not null" json:"isAvailable"`
	Status        string `gorm:"size:20" json:"status"`
	StatusMessage string `gorm:"size:255" json:"statusMessage"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Salon) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

// FindService returns the catalog entry with the given id, or nil.
func (s *Salon) FindService(id string) *Service {
	for i := range s.Services {
		if s.Services[i].ID == id {
			return &s.Services[i]
		}
	}
	return nil
}
