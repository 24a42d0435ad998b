package repository

import (
	"context"

	"github.com/cockroachdb/errors"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type SalonGormRepository struct {
	db *gorm.DB
}

func NewSalonGormRepository(db *gorm.DB) *SalonGormRepository {
	return &SalonGormRepository{db: db}
}

func (r *SalonGormRepository) GetSalon(ctx context.Context, id string) (*models.Salon, error) {
	var salon models.Salon
	if err := r.db.WithContext(ctx).First(&salon, "id = ?", id).Error; err != nil {
		return nil, translate(err, domain.ErrSalonNotFound, "get salon")
	}
	return &salon, nil
}

func (r *SalonGormRepository) ListSalons(ctx context.Context, filter domain.SalonFilter) ([]models.Salon, error) {
	tx := r.db.WithContext(ctx).Model(&models.Salon{})
	if filter.OwnerID != "" {
		tx = tx.Where("owner_id = ?", filter.OwnerID)
	}
	if filter.City != "" {
		tx = tx.Where("city = ?", filter.City)
	}
	if filter.ActiveOnly {
		tx = tx.Where("is_active = ?", true)
	}

	var salons []models.Salon
	if err := tx.Order("created_at DESC").Find(&salons).Error; err != nil {
		return nil, errors.Wrap(err, "list salons")
	}
	return salons, nil
}

func (r *SalonGormRepository) CreateSalon(ctx context.Context, salon *models.Salon) error {
	return translate(r.db.WithContext(ctx).Create(salon).Error, domain.ErrSalonNotFound, "create salon")
}

// UpdateSalon rewrites the whole document, zero values included.
func (r *SalonGormRepository) UpdateSalon(ctx context.Context, salon *models.Salon) error {
	res := r.db.WithContext(ctx).
		Model(&models.Salon{}).
		Where("id = ?", salon.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(salon)
	if res.Error != nil {
		return translate(res.Error, domain.ErrSalonNotFound, "update salon")
	}
	if res.RowsAffected == 0 {
		return domain.ErrSalonNotFound
	}
	return nil
}

var _ domain.SalonRepository = (*SalonGormRepository)(nil)
