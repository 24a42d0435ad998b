package salon_test

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/infra/memstore"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
	"github.com/BruksfildServices01/salon-scheduler/internal/usecase/salon"
)

const ownerID = "owner-1"

var clock = timezone.FixedClock(time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC))

func register(t *testing.T, st *memstore.Store) *models.Salon {
	t.Helper()

	s, err := salon.NewCreateSalon(st, clock).Execute(context.Background(), salon.CreateSalonInput{
		OwnerID: ownerID,
		Name:    "Studio S",
		WorkingHours: models.WeeklyHours{
			"monday": {Open: "09:00", Close: "18:00", IsOpen: true},
			"sunday": {IsOpen: false},
		},
		Services: []salon.ServiceInput{{Name: "Haircut", Duration: 30, Price: 25}},
	})
	require.NoError(t, err)
	return s
}

func TestCreateSalon(t *testing.T) {
	st := memstore.New()
	s := register(t, st)

	assert.NotEmpty(t, s.ID)
	assert.True(t, s.IsAvailable)
	require.Len(t, s.Services, 1)
	assert.NotEmpty(t, s.Services[0].ID)
	assert.True(t, s.Services[0].IsActive)

	stored, err := st.GetSalon(context.Background(), s.ID)
	require.NoError(t, err)
	assert.Equal(t, ownerID, stored.OwnerID)
}

func TestCreateSalon_Validation(t *testing.T) {
	st := memstore.New()
	create := salon.NewCreateSalon(st, clock)

	tests := []struct {
		name string
		in   salon.CreateSalonInput
	}{
		{"missing name", salon.CreateSalonInput{OwnerID: ownerID}},
		{"unknown weekday", salon.CreateSalonInput{OwnerID: ownerID, Name: "x", WorkingHours: models.WeeklyHours{
			"funday": {Open: "09:00", Close: "10:00", IsOpen: true},
		}}},
		{"inverted window", salon.CreateSalonInput{OwnerID: ownerID, Name: "x", WorkingHours: models.WeeklyHours{
			"monday": {Open: "18:00", Close: "09:00", IsOpen: true},
		}}},
		{"bad clock", salon.CreateSalonInput{OwnerID: ownerID, Name: "x", WorkingHours: models.WeeklyHours{
			"monday": {Open: "9", Close: "18:00", IsOpen: true},
		}}},
		{"service without duration", salon.CreateSalonInput{OwnerID: ownerID, Name: "x", Services: []salon.ServiceInput{{Name: "Cut"}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := create.Execute(context.Background(), tt.in)
			assert.Equal(t, httperr.KindValidation, httperr.KindOf(err))
		})
	}
}

func TestOwnerOnlyOperations(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	s := register(t, st)

	_, err := salon.NewAddService(st, clock).Execute(ctx, s.ID, "intruder", salon.ServiceInput{Name: "Nails", Duration: 45})
	assert.Equal(t, httperr.KindForbidden, httperr.KindOf(err))

	_, err = salon.NewSetWorkingHours(st).Execute(ctx, s.ID, "intruder", models.WeeklyHours{})
	assert.Equal(t, httperr.KindForbidden, httperr.KindOf(err))

	_, err = salon.NewAddHoliday(st, clock).Execute(ctx, s.ID, "intruder", salon.HolidayInput{Date: "2024-06-03", IsFullDay: true})
	assert.Equal(t, httperr.KindForbidden, httperr.KindOf(err))

	_, err = salon.NewSetAvailability(st).Execute(ctx, s.ID, "intruder", salon.AvailabilityInput{})
	assert.Equal(t, httperr.KindForbidden, httperr.KindOf(err))

	_, err = salon.NewSetAvailability(st).Execute(ctx, "missing", ownerID, salon.AvailabilityInput{})
	assert.Equal(t, httperr.KindNotFound, httperr.KindOf(err))
}

func TestAddService(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	s := register(t, st)

	svc, err := salon.NewAddService(st, clock).Execute(ctx, s.ID, ownerID, salon.ServiceInput{
		Name: "Nails", Duration: 45, Price: 30, Category: "hands",
	})
	require.NoError(t, err)

	stored, err := st.GetSalon(ctx, s.ID)
	require.NoError(t, err)
	require.Len(t, stored.Services, 2)
	assert.Equal(t, svc.ID, stored.Services[1].ID)
	assert.NotNil(t, stored.FindService(svc.ID))
}

func TestSetWorkingHours(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	s := register(t, st)

	_, err := salon.NewSetWorkingHours(st).Execute(ctx, s.ID, ownerID, models.WeeklyHours{
		"tuesday": {Open: "10:00", Close: "14:00", IsOpen: true},
	})
	require.NoError(t, err)

	stored, err := st.GetSalon(ctx, s.ID)
	require.NoError(t, err)
	assert.NotContains(t, stored.WorkingHours, "monday")
	assert.Equal(t, "14:00", stored.WorkingHours["tuesday"].Close)
}

func TestHolidayAndAvailability(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	s := register(t, st)

	_, err := salon.NewAddHoliday(st, clock).Execute(ctx, s.ID, ownerID, salon.HolidayInput{Date: "03-06-2024"})
	assert.Equal(t, httperr.KindValidation, httperr.KindOf(err))

	h, err := salon.NewAddHoliday(st, clock).Execute(ctx, s.ID, ownerID, salon.HolidayInput{
		Date: "2024-06-03", Reason: "Festival", IsFullDay: true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, h.ID)

	get := salon.NewGetAvailability(st)

	av, err := get.Execute(ctx, s.ID, "2024-06-03")
	require.NoError(t, err)
	assert.True(t, av.IsHoliday)
	assert.True(t, av.IsAvailable)
	assert.Equal(t, "open", av.Status)
	assert.Len(t, av.Holidays, 1)

	av, err = get.Execute(ctx, s.ID, "2024-06-04")
	require.NoError(t, err)
	assert.False(t, av.IsHoliday)

	av, err = get.Execute(ctx, s.ID, "")
	require.NoError(t, err)
	assert.False(t, av.IsHoliday)

	_, err = salon.NewSetAvailability(st).Execute(ctx, s.ID, ownerID, salon.AvailabilityInput{
		IsAvailable: false, Status: "busy", StatusMessage: "Back soon",
	})
	require.NoError(t, err)

	av, err = get.Execute(ctx, s.ID, "")
	require.NoError(t, err)
	assert.False(t, av.IsAvailable)
	assert.Equal(t, "busy", av.Status)
	assert.Equal(t, "Back soon", av.StatusMessage)

	_, err = get.Execute(ctx, "missing", "")
	assert.Equal(t, httperr.KindNotFound, httperr.KindOf(err))
}

func TestAddHoliday_Windows(t *testing.T) {
	ctx := context.Background()
	st := memstore.New()
	s := register(t, st)
	add := salon.NewAddHoliday(st, clock)

	tests := []struct {
		name      string
		in        salon.HolidayInput
		wantField string
	}{
		{"full day", salon.HolidayInput{Date: "2024-06-03", IsFullDay: true}, ""},
		{"window", salon.HolidayInput{Date: "2024-06-03", StartTime: "12:00", EndTime: "14:00"}, ""},
		{"no window and not full day", salon.HolidayInput{Date: "2024-06-03"}, "isFullDay"},
		{"start only", salon.HolidayInput{Date: "2024-06-03", StartTime: "12:00"}, "endTime"},
		{"end only", salon.HolidayInput{Date: "2024-06-03", EndTime: "14:00"}, "startTime"},
		{"inverted", salon.HolidayInput{Date: "2024-06-03", StartTime: "14:00", EndTime: "12:00"}, "endTime"},
		{"empty window", salon.HolidayInput{Date: "2024-06-03", StartTime: "12:00", EndTime: "12:00"}, "endTime"},
		{"malformed start", salon.HolidayInput{Date: "2024-06-03", StartTime: "9h", EndTime: "12:00"}, "startTime"},
		{"timestamp date", salon.HolidayInput{Date: "2024-06-03T00:00:00Z", IsFullDay: true}, "date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := add.Execute(ctx, s.ID, ownerID, tt.in)
			if tt.wantField == "" {
				require.NoError(t, err)
				return
			}

			var be httperr.BusinessError
			require.True(t, errors.As(err, &be), "error: %v", err)
			assert.Equal(t, httperr.KindValidation, be.Kind)
			assert.Contains(t, be.Fields, tt.wantField)
		})
	}
}
