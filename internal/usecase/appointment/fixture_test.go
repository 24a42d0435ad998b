package appointment_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/memstore"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

const (
	ownerID    = "owner-1"
	customerID = "customer-1"
	strangerID = "stranger-1"

	// 2024-06-03 is a Monday.
	monday = "2024-06-03"
)

var fixedNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

func testClock() timezone.Clock {
	return timezone.FixedClock(fixedNow)
}

func newSalon(t *testing.T, st *memstore.Store, mutate ...func(*models.Salon)) *models.Salon {
	t.Helper()

	salon := &models.Salon{
		OwnerID:     ownerID,
		Name:        "Studio S",
		IsAvailable: true,
		WorkingHours: models.WeeklyHours{
			"monday": {Open: "09:00", Close: "11:00", IsOpen: true},
		},
	}
	for _, m := range mutate {
		m(salon)
	}
	require.NoError(t, st.CreateSalon(context.Background(), salon))
	return salon
}

func seedAppointment(t *testing.T, st *memstore.Store, salonID, status string) *models.Appointment {
	t.Helper()

	ap := &models.Appointment{
		SalonID:    salonID,
		ServiceID:  "svc",
		CustomerID: customerID,
		Date:       monday,
		Time:       "09:00",
		Status:     status,
	}
	require.NoError(t, st.CreateAppointment(context.Background(), ap))
	return ap
}

func requireKind(t *testing.T, want httperr.Kind, err error) {
	t.Helper()
	require.Error(t, err)
	require.Equal(t, want, httperr.KindOf(err), "error: %v", err)
}
