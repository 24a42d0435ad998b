package audit

import (
	"context"
	"sync"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

const memoryCapacity = 1000

// MemorySink keeps the most recent events in a bounded buffer and mirrors
// each one to the structured log. Used with the memory store.
type MemorySink struct {
	log *LogSink

	mu      sync.RWMutex
	entries []models.AuditLog
	nextID  uint
	now     func() time.Time
}

func NewMemorySink(log *LogSink) *MemorySink {
	return &MemorySink{log: log, now: time.Now}
}

func (s *MemorySink) Write(ctx context.Context, ev Event) error {
	if s.log != nil {
		_ = s.log.Write(ctx, ev)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	s.entries = append(s.entries, models.AuditLog{
		ID:        s.nextID,
		SalonID:   ev.SalonID,
		ActorID:   ev.ActorID,
		Action:    ev.Action,
		Entity:    ev.Entity,
		EntityID:  ev.EntityID,
		Metadata:  encodeMetadata(ev.Metadata),
		CreatedAt: s.now(),
	})
	if len(s.entries) > memoryCapacity {
		s.entries = append([]models.AuditLog(nil), s.entries[len(s.entries)-memoryCapacity:]...)
	}
	return nil
}

func (s *MemorySink) List(_ context.Context, q Query) ([]models.AuditLog, int64, error) {
	q = q.Normalized()

	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []models.AuditLog
	for i := len(s.entries) - 1; i >= 0; i-- {
		e := s.entries[i]
		if e.SalonID != q.SalonID {
			continue
		}
		if q.Action != "" && e.Action != q.Action {
			continue
		}
		if q.Entity != "" && e.Entity != q.Entity {
			continue
		}
		if !q.From.IsZero() && e.CreatedAt.Before(q.From) {
			continue
		}
		if !q.To.IsZero() && !e.CreatedAt.Before(q.To.Add(24*time.Hour)) {
			continue
		}
		matched = append(matched, e)
	}

	total := int64(len(matched))
	start := q.offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + q.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return append([]models.AuditLog{}, matched[start:end]...), total, nil
}

var (
	_ Reader = (*MemorySink)(nil)
	_ Reader = (*GormSink)(nil)
	_ Sink   = (*MemorySink)(nil)
	_ Sink   = (*GormSink)(nil)
)
