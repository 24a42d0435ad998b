package salon

import (
	"context"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

type AuditLogPage struct {
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
	Total int64             `json:"total"`
	Logs  []models.AuditLog `json:"logs"`
}

type ListAuditLogs struct {
	salons domain.SalonRepository
	reader audit.Reader
}

func NewListAuditLogs(salons domain.SalonRepository, reader audit.Reader) *ListAuditLogs {
	return &ListAuditLogs{salons: salons, reader: reader}
}

func (uc *ListAuditLogs) Execute(ctx context.Context, actorID string, q audit.Query) (*AuditLogPage, error) {
	if _, err := loadOwned(ctx, uc.salons, q.SalonID, actorID, "view audit logs"); err != nil {
		return nil, err
	}

	q = q.Normalized()

	logs, total, err := uc.reader.List(ctx, q)
	if err != nil {
		return nil, httperr.Internal(err, "Failed to load audit logs.")
	}
	if logs == nil {
		logs = []models.AuditLog{}
	}

	return &AuditLogPage{Page: q.Page, Limit: q.Limit, Total: total, Logs: logs}, nil
}
