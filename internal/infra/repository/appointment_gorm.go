package repository

import (
	"context"

	"github.com/cockroachdb/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Reads
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, "id = ?", id).Error; err != nil {
		return nil, translate(err, domain.ErrAppointmentNotFound, "get appointment")
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := applyFilter(r.db.WithContext(ctx), filter).
		Order("created_at DESC").
		Find(&apps).Error; err != nil {
		return nil, errors.Wrap(err, "list appointments")
	}
	return apps, nil
}

// --------------------------------------------------
// Writes
// --------------------------------------------------

func (r *AppointmentGormRepository) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrSlotTaken
		}
		return errors.Wrap(err, "create appointment")
	}
	return nil
}

// CreateIfSlotFree locks the salon row so bookings for one salon serialize,
// re-checks the slot and inserts. The partial unique index on active slots
// backs this up when another writer bypasses the lock.
func (r *AppointmentGormRepository) CreateIfSlotFree(ctx context.Context, ap *models.Appointment) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var salon models.Salon
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			First(&salon, "id = ?", ap.SalonID).Error; err != nil {
			return translate(err, domain.ErrSalonNotFound, "lock salon")
		}

		var count int64
		if err := applyFilter(tx, domain.ListFilter{
			SalonID:  ap.SalonID,
			Date:     ap.Date,
			Time:     ap.Time,
			Statuses: domain.ActiveStatuses,
		}).Count(&count).Error; err != nil {
			return errors.Wrap(err, "count active slot")
		}
		if count > 0 {
			return domain.ErrSlotTaken
		}

		return tx.Create(ap).Error
	})

	switch {
	case err == nil:
		return nil
	case errors.Is(err, domain.ErrSlotTaken), isUniqueViolation(err):
		return domain.ErrSlotTaken
	case errors.Is(err, domain.ErrSalonNotFound):
		return domain.ErrSalonNotFound
	default:
		return errors.Wrap(err, "create appointment")
	}
}

// UpdateAppointment writes every column but id and created_at. A missing
// row is ErrAppointmentNotFound.
func (r *AppointmentGormRepository) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", ap.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(ap)
	if res.Error != nil {
		if isUniqueViolation(res.Error) {
			return domain.ErrSlotTaken
		}
		return errors.Wrap(res.Error, "update appointment")
	}
	if res.RowsAffected == 0 {
		return domain.ErrAppointmentNotFound
	}
	return nil
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func applyFilter(db *gorm.DB, f domain.ListFilter) *gorm.DB {
	q := db.Model(&models.Appointment{})
	if f.SalonID != "" {
		q = q.Where("salon_id = ?", f.SalonID)
	}
	if f.CustomerID != "" {
		q = q.Where("customer_id = ?", f.CustomerID)
	}
	if f.Date != "" {
		q = q.Where(`"date" = ?`, f.Date)
	}
	if f.Time != "" {
		q = q.Where(`"time" = ?`, f.Time)
	}
	if len(f.Statuses) > 0 {
		q = q.Where("status IN ?", statusStrings(f.Statuses))
	}
	return q
}

func statusStrings(statuses []domain.Status) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

// Compile-time check
var _ domain.AppointmentRepository = (*AppointmentGormRepository)(nil)
