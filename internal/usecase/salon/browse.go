package salon

import (
	"context"
	"log/slog"
	"strings"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// DefaultBrowseLimit is the page size of the public salon list.
const DefaultBrowseLimit = 50

// ======================================================
// BROWSE (public)
// ======================================================

type BrowseInput struct {
	City    string
	Service string
	Page    int
	Limit   int
}

type BrowseSalons struct {
	repo domain.SalonRepository
}

func NewBrowseSalons(repo domain.SalonRepository) *BrowseSalons {
	return &BrowseSalons{repo: repo}
}

// Execute lists active salons. Service matches any catalog entry whose name
// contains it, case-insensitively.
func (uc *BrowseSalons) Execute(ctx context.Context, in BrowseInput) (dto.SalonPage, error) {
	salons, err := uc.repo.ListSalons(ctx, domain.SalonFilter{City: in.City, ActiveOnly: true})
	if err != nil {
		return dto.SalonPage{}, httperr.Internal(err, "Failed to get salons.")
	}

	if needle := strings.ToLower(strings.TrimSpace(in.Service)); needle != "" {
		matched := salons[:0]
		for _, s := range salons {
			if offers(s, needle) {
				matched = append(matched, s)
			}
		}
		salons = matched
	}

	limit := in.Limit
	if limit == 0 {
		limit = DefaultBrowseLimit
	}
	return dto.PaginateSalons(salons, in.Page, limit), nil
}

func offers(s models.Salon, needle string) bool {
	for _, svc := range s.Services {
		if strings.Contains(strings.ToLower(svc.Name), needle) {
			return true
		}
	}
	return false
}

// ======================================================
// PROFILE (public)
// ======================================================

type GetProfile struct {
	repo domain.SalonRepository
}

func NewGetProfile(repo domain.SalonRepository) *GetProfile {
	return &GetProfile{repo: repo}
}

func (uc *GetProfile) Execute(ctx context.Context, salonID string) (*models.Salon, error) {
	return loadSalon(ctx, uc.repo, salonID)
}

// ======================================================
// OWNER
// ======================================================

type ListOwnSalons struct {
	repo domain.SalonRepository
}

func NewListOwnSalons(repo domain.SalonRepository) *ListOwnSalons {
	return &ListOwnSalons{repo: repo}
}

func (uc *ListOwnSalons) Execute(ctx context.Context, actorID string) ([]models.Salon, error) {
	if actorID == "" {
		return nil, httperr.Forbidden("forbidden", "Unauthorized to list salons.")
	}
	salons, err := uc.repo.ListSalons(ctx, domain.SalonFilter{OwnerID: actorID})
	if err != nil {
		return nil, httperr.Internal(err, "Failed to get your salons.")
	}
	return salons, nil
}

// DeactivateSalon hides a salon from browsing and stops new bookings. The
// document stays so existing appointments keep their salon.
type DeactivateSalon struct {
	repo domain.SalonRepository
}

func NewDeactivateSalon(repo domain.SalonRepository) *DeactivateSalon {
	return &DeactivateSalon{repo: repo}
}

func (uc *DeactivateSalon) Execute(ctx context.Context, salonID, actorID string) (*models.Salon, error) {
	salon, err := loadOwned(ctx, uc.repo, salonID, actorID, "delete")
	if err != nil {
		return nil, err
	}

	salon.IsActive = false
	salon.IsAvailable = false
	salon.Status = "closed"
	if err := save(ctx, uc.repo, salon, "Failed to delete salon."); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "salon deactivated", "salon_id", salon.ID)
	return salon, nil
}
