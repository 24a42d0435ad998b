package audit

import (
	"context"
	"math"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200

	// MaxPage keeps (Page-1)*Limit inside an int32 offset.
	MaxPage = math.MaxInt32 / MaxLimit
)

// Query selects a salon's audit entries. Zero From/To are unbounded; To is
// inclusive of its whole day.
type Query struct {
	SalonID string
	Action  string
	Entity  string
	From    time.Time
	To      time.Time
	Page    int
	Limit   int
}

// Normalized applies the page and limit defaults and bounds.
func (q Query) Normalized() Query {
	if q.Page <= 0 {
		q.Page = 1
	}
	if q.Page > MaxPage {
		q.Page = MaxPage
	}
	if q.Limit <= 0 || q.Limit > MaxLimit {
		q.Limit = DefaultLimit
	}
	return q
}

func (q Query) offset() int {
	return (q.Page - 1) * q.Limit
}

type Reader interface {
	List(ctx context.Context, q Query) (logs []models.AuditLog, total int64, err error)
}

// List reads audit_logs newest first.
func (s *GormSink) List(ctx context.Context, q Query) ([]models.AuditLog, int64, error) {
	q = q.Normalized()

	tx := s.db.WithContext(ctx).
		Model(&models.AuditLog{}).
		Where("salon_id = ?", q.SalonID)

	if q.Action != "" {
		tx = tx.Where("action = ?", q.Action)
	}
	if q.Entity != "" {
		tx = tx.Where("entity = ?", q.Entity)
	}
	if !q.From.IsZero() {
		tx = tx.Where("created_at >= ?", q.From)
	}
	if !q.To.IsZero() {
		tx = tx.Where("created_at < ?", q.To.Add(24*time.Hour))
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "count audit logs")
	}

	var logs []models.AuditLog
	if err := tx.
		Order("created_at DESC").
		Limit(q.Limit).
		Offset(q.offset()).
		Find(&logs).Error; err != nil {
		return nil, 0, errors.Wrap(err, "list audit logs")
	}
	return logs, total, nil
}
