package salon

import (
	"context"
	"log/slog"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

type AddService struct {
	repo  domain.SalonRepository
	clock timezone.Clock
}

func NewAddService(repo domain.SalonRepository, clock timezone.Clock) *AddService {
	return &AddService{repo: repo, clock: clock}
}

func (uc *AddService) Execute(ctx context.Context, salonID, actorID string, in ServiceInput) (*models.Service, error) {
	salon, err := loadOwned(ctx, uc.repo, salonID, actorID, "add services")
	if err != nil {
		return nil, err
	}

	svc, err := buildService(in, uc.clock)
	if err != nil {
		return nil, err
	}

	salon.Services = append(salon.Services, svc)
	if err := save(ctx, uc.repo, salon, "Failed to add service."); err != nil {
		return nil, err
	}
	return &svc, nil
}

// ServicePatch carries the fields to change; nil leaves a field as is.
type ServicePatch struct {
	Name        *string
	Description *string
	Duration    *int
	Price       *float64
	Category    *string
	IsActive    *bool
}

type UpdateService struct {
	repo domain.SalonRepository
}

func NewUpdateService(repo domain.SalonRepository) *UpdateService {
	return &UpdateService{repo: repo}
}

func (uc *UpdateService) Execute(ctx context.Context, salonID, serviceID, actorID string, patch ServicePatch) (*models.Service, error) {
	salon, err := loadOwned(ctx, uc.repo, salonID, actorID, "update services")
	if err != nil {
		return nil, err
	}

	svc := salon.FindService(serviceID)
	if svc == nil {
		return nil, httperr.NotFound("service_not_found", "Service not found.")
	}

	next := *svc
	if patch.Name != nil {
		next.Name = *patch.Name
	}
	if patch.Description != nil {
		next.Description = *patch.Description
	}
	if patch.Duration != nil {
		next.Duration = *patch.Duration
	}
	if patch.Price != nil {
		next.Price = *patch.Price
	}
	if patch.Category != nil {
		next.Category = *patch.Category
	}
	if patch.IsActive != nil {
		next.IsActive = *patch.IsActive
	}
	if err := validateService(next.Name, next.Duration, next.Price); err != nil {
		return nil, err
	}

	*svc = next
	if err := save(ctx, uc.repo, salon, "Failed to update service."); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "service updated", "salon_id", salon.ID, "service_id", svc.ID, "active", svc.IsActive)
	return &next, nil
}

// RemoveService drops a catalog entry. Appointments already booked keep
// their denormalized service name.
type RemoveService struct {
	repo domain.SalonRepository
}

func NewRemoveService(repo domain.SalonRepository) *RemoveService {
	return &RemoveService{repo: repo}
}

func (uc *RemoveService) Execute(ctx context.Context, salonID, serviceID, actorID string) error {
	salon, err := loadOwned(ctx, uc.repo, salonID, actorID, "delete services")
	if err != nil {
		return err
	}

	kept := make([]models.Service, 0, len(salon.Services))
	for _, s := range salon.Services {
		if s.ID != serviceID {
			kept = append(kept, s)
		}
	}
	if len(kept) == len(salon.Services) {
		return httperr.NotFound("service_not_found", "Service not found.")
	}

	salon.Services = kept
	if err := save(ctx, uc.repo, salon, "Failed to delete service."); err != nil {
		return err
	}

	slog.InfoContext(ctx, "service removed", "salon_id", salon.ID, "service_id", serviceID)
	return nil
}
