package salon

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type ServiceInput struct {
	Name        string
	Description string
	Duration    int
	Price       float64
	Category    string
}

type CreateSalonInput struct {
	OwnerID      string
	Name         string
	Description  string
	Address      string
	City         string
	State        string
	Pincode      string
	Phone        string
	Email        string
	WorkingHours models.WeeklyHours
	Services     []ServiceInput
}

type CreateSalon struct {
	repo  domain.SalonRepository
	clock timezone.Clock
}

func NewCreateSalon(repo domain.SalonRepository, clock timezone.Clock) *CreateSalon {
	return &CreateSalon{repo: repo, clock: clock}
}

func (uc *CreateSalon) Execute(ctx context.Context, in CreateSalonInput) (*models.Salon, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, httperr.Validation("missing_required_fields", "Salon name is required.", map[string]string{
			"name": "name is required",
		})
	}

	hours := in.WorkingHours
	if hours == nil {
		hours = models.WeeklyHours{}
	}
	if err := validateWeeklyHours(hours); err != nil {
		return nil, err
	}

	services := make([]models.Service, 0, len(in.Services))
	for _, s := range in.Services {
		svc, err := buildService(s, uc.clock)
		if err != nil {
			return nil, err
		}
		services = append(services, svc)
	}

	salon := &models.Salon{
		OwnerID:      in.OwnerID,
		Name:         in.Name,
		Description:  in.Description,
		Address:      in.Address,
		City:         in.City,
		State:        in.State,
		Pincode:      in.Pincode,
		Phone:        in.Phone,
		Email:        in.Email,
		WorkingHours: hours,
		Holidays:     []models.Holiday{},
		Services:     services,
		IsActive:     true,
		IsAvailable:  true,
		Status:       "open",
	}

	if err := uc.repo.CreateSalon(ctx, salon); err != nil {
		return nil, httperr.Internal(err, "Failed to register salon.")
	}

	slog.InfoContext(ctx, "salon registered", "salon_id", salon.ID, "owner_id", salon.OwnerID)
	return salon, nil
}

func buildService(in ServiceInput, clock timezone.Clock) (models.Service, error) {
	if err := validateService(in.Name, in.Duration, in.Price); err != nil {
		return models.Service{}, err
	}

	return models.Service{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Duration:    in.Duration,
		Price:       in.Price,
		Category:    in.Category,
		IsActive:    true,
		CreatedAt:   clock.Now(),
	}, nil
}

func validateService(name string, duration int, price float64) error {
	fields := map[string]string{}
	if strings.TrimSpace(name) == "" {
		fields["name"] = "name is required"
	}
	if duration <= 0 {
		fields["duration"] = "duration must be a positive number of minutes"
	}
	if price < 0 {
		fields["price"] = "price must not be negative"
	}
	if len(fields) > 0 {
		return httperr.Validation("invalid_service", "Invalid service.", fields)
	}
	return nil
}
