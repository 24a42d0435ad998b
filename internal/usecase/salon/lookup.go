package salon

import (
	"context"

	"github.com/cockroachdb/errors"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func loadSalon(ctx context.Context, repo domain.SalonRepository, id string) (*models.Salon, error) {
	salon, err := repo.GetSalon(ctx, id)
	if errors.Is(err, domain.ErrSalonNotFound) {
		return nil, httperr.NotFound("salon_not_found", "Salon not found.")
	}
	if err != nil {
		return nil, httperr.Internal(err, "Failed to load salon.")
	}
	return salon, nil
}

// loadOwned returns the salon only when actorID owns it.
func loadOwned(ctx context.Context, repo domain.SalonRepository, id, actorID, action string) (*models.Salon, error) {
	salon, err := loadSalon(ctx, repo, id)
	if err != nil {
		return nil, err
	}
	if actorID == "" || salon.OwnerID != actorID {
		return nil, httperr.Forbidden("forbidden", "Unauthorized to "+action+" for this salon.")
	}
	return salon, nil
}

func save(ctx context.Context, repo domain.SalonRepository, salon *models.Salon, msg string) error {
	if err := repo.UpdateSalon(ctx, salon); err != nil {
		return httperr.Internal(err, msg)
	}
	return nil
}
