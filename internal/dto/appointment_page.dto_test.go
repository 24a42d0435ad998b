package dto

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func appointments(n int) []models.Appointment {
	out := make([]models.Appointment, n)
	for i := range out {
		out[i].ID = strconv.Itoa(i)
	}
	return out
}

func TestPaginate(t *testing.T) {
	testCases := []struct {
		name      string
		total     int
		page      int
		limit     int
		wantIDs   []string
		wantPages int
		wantNext  bool
		wantPrev  bool
	}{
		{name: "first page", total: 25, page: 1, limit: 10, wantIDs: []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}, wantPages: 3, wantNext: true},
		{name: "last partial page", total: 25, page: 3, limit: 10, wantIDs: []string{"20", "21", "22", "23", "24"}, wantPages: 3, wantPrev: true},
		{name: "page past the end", total: 5, page: 4, limit: 2, wantIDs: []string{}, wantPages: 3, wantPrev: true},
		{name: "empty set", total: 0, page: 1, limit: 10, wantIDs: []string{}, wantPages: 0},
		{name: "defaults applied", total: 3, page: 0, limit: 0, wantIDs: []string{"0", "1", "2"}, wantPages: 1},
		{name: "huge page", total: 2, page: 100000000000000000, limit: 100, wantIDs: []string{}, wantPages: 1, wantPrev: true},
		{name: "exact last page", total: 20, page: 2, limit: 10, wantIDs: []string{"10", "11", "12", "13", "14", "15", "16", "17", "18", "19"}, wantPages: 2, wantPrev: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Paginate(appointments(tc.total), tc.page, tc.limit)

			ids := make([]string, 0, len(got.Appointments))
			for _, ap := range got.Appointments {
				ids = append(ids, ap.ID)
			}
			assert.Equal(t, tc.wantIDs, ids)
			assert.Equal(t, tc.total, got.Pagination.TotalAppointments)
			assert.Equal(t, tc.wantPages, got.Pagination.TotalPages)
			assert.Equal(t, tc.wantNext, got.Pagination.HasNext)
			assert.Equal(t, tc.wantPrev, got.Pagination.HasPrev)
		})
	}
}
