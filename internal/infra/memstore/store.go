package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Store keeps salons and appointments in process memory. Records are
// copied on the way in and out so callers never share state with the store.
type Store struct {
	mu sync.RWMutex

	salons       map[string]models.Salon
	salonOrder   []string
	appointments map[string]record
	seq          uint64

	now func() time.Time
}

type record struct {
	ap  models.Appointment
	seq uint64
}

func New() *Store {
	return &Store{
		salons:       make(map[string]models.Salon),
		appointments: make(map[string]record),
		now:          time.Now,
	}
}

// ======================================================
// Salons
// ======================================================

func (s *Store) GetSalon(_ context.Context, id string) (*models.Salon, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	salon, ok := s.salons[id]
	if !ok {
		return nil, domain.ErrSalonNotFound
	}
	out := cloneSalon(salon)
	return &out, nil
}

func (s *Store) CreateSalon(_ context.Context, salon *models.Salon) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if salon.ID == "" {
		salon.ID = uuid.NewString()
	}
	now := s.now()
	if salon.CreatedAt.IsZero() {
		salon.CreatedAt = now
	}
	salon.UpdatedAt = now

	if _, exists := s.salons[salon.ID]; !exists {
		s.salonOrder = append(s.salonOrder, salon.ID)
	}
	s.salons[salon.ID] = cloneSalon(*salon)
	return nil
}

// ListSalons walks creation order backwards, so ties on CreatedAt keep
// newest first.
func (s *Store) ListSalons(_ context.Context, filter domain.SalonFilter) ([]models.Salon, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Salon, 0)
	for i := len(s.salonOrder) - 1; i >= 0; i-- {
		salon := s.salons[s.salonOrder[i]]
		if filter.OwnerID != "" && salon.OwnerID != filter.OwnerID {
			continue
		}
		if filter.City != "" && salon.City != filter.City {
			continue
		}
		if filter.ActiveOnly && !salon.IsActive {
			continue
		}
		out = append(out, cloneSalon(salon))
	}
	return out, nil
}

func (s *Store) UpdateSalon(_ context.Context, salon *models.Salon) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.salons[salon.ID]; !ok {
		return domain.ErrSalonNotFound
	}
	salon.UpdatedAt = s.now()
	s.salons[salon.ID] = cloneSalon(*salon)
	return nil
}

// ======================================================
// Appointments
// ======================================================

func (s *Store) GetAppointment(_ context.Context, id string) (*models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.appointments[id]
	if !ok {
		return nil, domain.ErrAppointmentNotFound
	}
	ap := rec.ap
	return &ap, nil
}

func (s *Store) ListAppointments(_ context.Context, filter domain.ListFilter) ([]models.Appointment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]record, 0)
	for _, rec := range s.appointments {
		if matches(rec.ap, filter) {
			matched = append(matched, rec)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.ap.CreatedAt.Equal(b.ap.CreatedAt) {
			return a.ap.CreatedAt.After(b.ap.CreatedAt)
		}
		return a.seq > b.seq
	})

	out := make([]models.Appointment, len(matched))
	for i, rec := range matched {
		out[i] = rec.ap
	}
	return out, nil
}

func (s *Store) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.insertLocked(ap)
	return nil
}

// CreateIfSlotFree checks and inserts under one write lock.
func (s *Store) CreateIfSlotFree(_ context.Context, ap *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	slot := domain.ListFilter{
		SalonID:  ap.SalonID,
		Date:     ap.Date,
		Time:     ap.Time,
		Statuses: domain.ActiveStatuses,
	}
	for _, rec := range s.appointments {
		if matches(rec.ap, slot) {
			return domain.ErrSlotTaken
		}
	}

	s.insertLocked(ap)
	return nil
}

func (s *Store) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.appointments[ap.ID]
	if !ok {
		return domain.ErrAppointmentNotFound
	}
	if ap.UpdatedAt.IsZero() {
		ap.UpdatedAt = s.now()
	}
	rec.ap = *ap
	s.appointments[ap.ID] = rec
	return nil
}

func (s *Store) insertLocked(ap *models.Appointment) {
	if ap.ID == "" {
		ap.ID = uuid.NewString()
	}
	now := s.now()
	if ap.CreatedAt.IsZero() {
		ap.CreatedAt = now
	}
	if ap.UpdatedAt.IsZero() {
		ap.UpdatedAt = now
	}

	s.seq++
	s.appointments[ap.ID] = record{ap: *ap, seq: s.seq}
}

func matches(ap models.Appointment, f domain.ListFilter) bool {
	if f.SalonID != "" && ap.SalonID != f.SalonID {
		return false
	}
	if f.CustomerID != "" && ap.CustomerID != f.CustomerID {
		return false
	}
	if f.Date != "" && ap.Date != f.Date {
		return false
	}
	if f.Time != "" && ap.Time != f.Time {
		return false
	}
	if len(f.Statuses) == 0 {
		return true
	}
	for _, st := range f.Statuses {
		if ap.Status == string(st) {
			return true
		}
	}
	return false
}

func cloneSalon(s models.Salon) models.Salon {
	out := s
	if s.WorkingHours != nil {
		out.WorkingHours = make(models.WeeklyHours, len(s.WorkingHours))
		for k, v := range s.WorkingHours {
			out.WorkingHours[k] = v
		}
	}
	out.Holidays = append([]models.Holiday(nil), s.Holidays...)
	out.Services = append([]models.Service(nil), s.Services...)
	return out
}

var (
	_ domain.SalonRepository       = (*Store)(nil)
	_ domain.AppointmentRepository = (*Store)(nil)
)
