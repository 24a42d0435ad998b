package appointment_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	lockmock "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment/mock"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/memstore"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	uc "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

type BookingSuite struct {
	suite.Suite

	ctx   context.Context
	store *memstore.Store
	salon *models.Salon
	book  *uc.BookAppointment
	slots *uc.ListAvailableSlots
}

func (s *BookingSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memstore.New()
	s.salon = newSalon(s.T(), s.store)
	s.book = uc.NewBookAppointment(s.store, s.store, nil, 0, nil, metrics.New("test"))
	s.slots = uc.NewListAvailableSlots(s.store, uc.NewConflictChecker(s.store), domain.DefaultSlotMinutes)
}

func TestBookingSuite(t *testing.T) {
	suite.Run(t, new(BookingSuite))
}

func (s *BookingSuite) input(hm string) uc.BookAppointmentInput {
	return uc.BookAppointmentInput{
		SalonID:   s.salon.ID,
		ServiceID: "svc-1",
		Date:      monday,
		Time:      hm,
		ActorID:   customerID,
		ActorName: "Ana",
	}
}

func (s *BookingSuite) freeSlots() []string {
	out, err := s.slots.Execute(s.ctx, s.salon.ID, monday)
	s.Require().NoError(err)
	return out.Slots
}

// ======================================================
// Scenario
// ======================================================

func (s *BookingSuite) TestBookThenConflictThenSlotsShrink() {
	s.Equal([]string{"09:00", "09:30", "10:00", "10:30"}, s.freeSlots())

	ap, err := s.book.Execute(s.ctx, s.input("09:00"))
	s.Require().NoError(err)
	s.NotEmpty(ap.ID)
	s.Equal(string(domain.StatusPending), ap.Status)
	s.Equal(customerID, ap.CustomerID)
	s.Equal("Ana", ap.CustomerName)
	s.Equal("Studio S", ap.SalonName)

	_, err = s.book.Execute(s.ctx, s.input("09:00"))
	requireKind(s.T(), httperr.KindConflict, err)

	s.Equal([]string{"09:30", "10:00", "10:30"}, s.freeSlots())
}

func (s *BookingSuite) TestSequentialBookingsNeverShareActiveSlot() {
	for round := 0; round < 3; round++ {
		for _, hm := range []string{"09:00", "09:30", "10:00", "10:30"} {
			_, _ = s.book.Execute(s.ctx, s.input(hm))
		}
	}

	active, err := s.store.ListAppointments(s.ctx, domain.ListFilter{
		SalonID:  s.salon.ID,
		Statuses: domain.ActiveStatuses,
	})
	s.Require().NoError(err)
	s.Len(active, 4)

	seen := map[string]bool{}
	for _, ap := range active {
		key := ap.Date + " " + ap.Time
		s.False(seen[key], "duplicate active slot %s", key)
		seen[key] = true
	}
	s.Empty(s.freeSlots())
}

func (s *BookingSuite) TestCancelledSlotCanBeRebooked() {
	seedAppointment(s.T(), s.store, s.salon.ID, string(domain.StatusCancelled))

	_, err := s.book.Execute(s.ctx, s.input("09:00"))
	s.NoError(err)
}

// ======================================================
// Rejections
// ======================================================

func (s *BookingSuite) TestMissingRequiredFields() {
	_, err := s.book.Execute(s.ctx, uc.BookAppointmentInput{ActorID: customerID})
	requireKind(s.T(), httperr.KindValidation, err)

	var be httperr.BusinessError
	s.Require().True(errors.As(err, &be))
	s.Contains(be.Fields, "salonId")
	s.Contains(be.Fields, "serviceId")
	s.Contains(be.Fields, "date")
	s.Contains(be.Fields, "time")
}

func (s *BookingSuite) TestMalformedDateAndTime() {
	in := s.input("9am")
	in.Date = "03/06/2024"
	_, err := s.book.Execute(s.ctx, in)
	requireKind(s.T(), httperr.KindValidation, err)
}

func (s *BookingSuite) TestUnknownSalon() {
	in := s.input("09:00")
	in.SalonID = "missing"
	_, err := s.book.Execute(s.ctx, in)
	requireKind(s.T(), httperr.KindNotFound, err)
}

func (s *BookingSuite) TestManuallyUnavailable() {
	s.salon.IsAvailable = false
	s.Require().NoError(s.store.UpdateSalon(s.ctx, s.salon))

	_, err := s.book.Execute(s.ctx, s.input("09:00"))
	requireKind(s.T(), httperr.KindUnavailable, err)
}

func (s *BookingSuite) TestClosedWeekday() {
	in := s.input("09:00")
	in.Date = "2024-06-04"
	_, err := s.book.Execute(s.ctx, in)
	requireKind(s.T(), httperr.KindClosed, err)
}

func (s *BookingSuite) TestOutsideHoursIsExclusiveAtClose() {
	for _, hm := range []string{"08:30", "11:00", "11:30"} {
		_, err := s.book.Execute(s.ctx, s.input(hm))
		requireKind(s.T(), httperr.KindClosed, err)
	}
	_, err := s.book.Execute(s.ctx, s.input("10:59"))
	s.NoError(err)
}

func (s *BookingSuite) TestFullDayHolidayBlocksBookingAndSlots() {
	s.salon.WorkingHours["monday"] = models.DayHours{Open: "09:00", Close: "18:00", IsOpen: true}
	s.salon.Holidays = []models.Holiday{{Date: monday, Reason: "Festival", IsFullDay: true}}
	s.Require().NoError(s.store.UpdateSalon(s.ctx, s.salon))

	_, err := s.book.Execute(s.ctx, s.input("10:00"))
	requireKind(s.T(), httperr.KindClosed, err)

	out, err := s.slots.Execute(s.ctx, s.salon.ID, monday)
	s.Require().NoError(err)
	s.Empty(out.Slots)
	s.Equal(domain.ReasonHoliday, out.Schedule.Reason)
}

// ======================================================
// Catalog defaults
// ======================================================

func (s *BookingSuite) TestServiceDefaultsFromCatalog() {
	s.salon.Services = []models.Service{
		{ID: "svc-1", Name: "Haircut", Price: 25, Duration: 30, IsActive: true},
		{ID: "svc-2", Name: "Retired", Price: 10, IsActive: false},
	}
	s.Require().NoError(s.store.UpdateSalon(s.ctx, s.salon))

	ap, err := s.book.Execute(s.ctx, s.input("09:00"))
	s.Require().NoError(err)
	s.Equal("Haircut", ap.ServiceName)
	s.Equal(25.0, ap.TotalAmount)

	in := s.input("09:30")
	in.ServiceID = "svc-2"
	_, err = s.book.Execute(s.ctx, in)
	requireKind(s.T(), httperr.KindNotFound, err)

	in.ServiceID = "nope"
	_, err = s.book.Execute(s.ctx, in)
	requireKind(s.T(), httperr.KindNotFound, err)
}

func (s *BookingSuite) TestExplicitFieldsOverrideDefaults() {
	amount := 40.0
	in := s.input("10:00")
	in.CustomerID = "walk-in"
	in.CustomerName = "Bea"
	in.ServiceName = "Colour"
	in.TotalAmount = &amount

	ap, err := s.book.Execute(s.ctx, in)
	s.Require().NoError(err)
	s.Equal("walk-in", ap.CustomerID)
	s.Equal("Bea", ap.CustomerName)
	s.Equal("Colour", ap.ServiceName)
	s.Equal(40.0, ap.TotalAmount)
}

func (s *BookingSuite) TestCustomerNameFallsBackToEmail() {
	in := s.input("10:30")
	in.ActorName = ""
	in.ActorEmail = "ana@example.com"

	ap, err := s.book.Execute(s.ctx, in)
	s.Require().NoError(err)
	s.Equal("ana@example.com", ap.CustomerName)
}

// ======================================================
// Concurrency
// ======================================================

// The unguarded check-then-write pair lets two requests both pass the
// check before either writes.
func TestUnguardedCheckThenWriteCanDoubleBook(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	salon := newSalon(t, st)
	checker := uc.NewConflictChecker(st)

	var checked, wg sync.WaitGroup
	checked.Add(2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			taken, err := checker.IsSlotTaken(ctx, salon.ID, monday, "09:00")
			checked.Done()
			checked.Wait()
			if err != nil || taken {
				return
			}
			_ = st.CreateAppointment(ctx, &models.Appointment{
				SalonID:    salon.ID,
				ServiceID:  "svc",
				CustomerID: customerID,
				Date:       monday,
				Time:       "09:00",
				Status:     string(domain.StatusPending),
			})
		}()
	}
	wg.Wait()

	active, err := st.ListAppointments(ctx, domain.ListFilter{
		SalonID:  salon.ID,
		Date:     monday,
		Time:     "09:00",
		Statuses: domain.ActiveStatuses,
	})
	require.NoError(t, err)
	assert.Len(t, active, 2)
}

func TestConcurrentBookingsAdmitExactlyOne(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	salon := newSalon(t, st)
	book := uc.NewBookAppointment(st, st, nil, 0, nil, nil)

	const n = 20
	var (
		start sync.WaitGroup
		wg    sync.WaitGroup
		errs  = make([]error, n)
	)
	start.Add(1)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			start.Wait()
			_, errs[i] = book.Execute(ctx, uc.BookAppointmentInput{
				SalonID:   salon.ID,
				ServiceID: "svc",
				Date:      monday,
				Time:      "09:00",
				ActorID:   customerID,
			})
		}(i)
	}
	start.Done()
	wg.Wait()

	ok := 0
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.Equal(t, httperr.KindConflict, httperr.KindOf(err))
	}
	assert.Equal(t, 1, ok)
}

// ======================================================
// Slot lock
// ======================================================

func TestBook_SlotLock(t *testing.T) {
	ctx := context.Background()

	t.Run("lock held for the write and released", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		locker := lockmock.NewMockSlotLocker(ctrl)
		st := memstore.New()
		salon := newSalon(t, st)

		released := false
		locker.EXPECT().
			Lock(gomock.Any(), domain.SlotKey(salon.ID, monday, "09:00"), 5*time.Second).
			Return(func(context.Context) error { released = true; return nil }, nil).
			Times(1)

		book := uc.NewBookAppointment(st, st, locker, 5*time.Second, nil, nil)
		_, err := book.Execute(ctx, uc.BookAppointmentInput{
			SalonID: salon.ID, ServiceID: "svc", Date: monday, Time: "09:00", ActorID: customerID,
		})
		require.NoError(t, err)
		assert.True(t, released)
	})

	t.Run("lock held elsewhere is a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		locker := lockmock.NewMockSlotLocker(ctrl)
		st := memstore.New()
		salon := newSalon(t, st)

		locker.EXPECT().Lock(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, domain.ErrSlotLocked)

		book := uc.NewBookAppointment(st, st, locker, time.Second, nil, nil)
		_, err := book.Execute(ctx, uc.BookAppointmentInput{
			SalonID: salon.ID, ServiceID: "svc", Date: monday, Time: "09:00", ActorID: customerID,
		})
		requireKind(t, httperr.KindConflict, err)
		assert.True(t, httperr.IsBusiness(err, "slot_locked"))
	})

	t.Run("lock backend failure is internal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		locker := lockmock.NewMockSlotLocker(ctrl)
		st := memstore.New()
		salon := newSalon(t, st)

		locker.EXPECT().Lock(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("redis down"))

		book := uc.NewBookAppointment(st, st, locker, time.Second, nil, nil)
		_, err := book.Execute(ctx, uc.BookAppointmentInput{
			SalonID: salon.ID, ServiceID: "svc", Date: monday, Time: "09:00", ActorID: customerID,
		})
		requireKind(t, httperr.KindInternal, err)
	})

	t.Run("fast path conflict skips the lock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		locker := lockmock.NewMockSlotLocker(ctrl)
		st := memstore.New()
		salon := newSalon(t, st)
		seedAppointment(t, st, salon.ID, string(domain.StatusConfirmed))

		book := uc.NewBookAppointment(st, st, locker, time.Second, nil, nil)
		_, err := book.Execute(ctx, uc.BookAppointmentInput{
			SalonID: salon.ID, ServiceID: "svc", Date: monday, Time: "09:00", ActorID: customerID,
		})
		requireKind(t, httperr.KindConflict, err)
	})
}
