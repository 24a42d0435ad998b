package dto

import "github.com/BruksfildServices01/salon-scheduler/internal/models"

type Pagination struct {
	CurrentPage       int  `json:"currentPage"`
	TotalPages        int  `json:"totalPages"`
	TotalAppointments int  `json:"totalAppointments"`
	HasNext           bool `json:"hasNext"`
	HasPrev           bool `json:"hasPrev"`
}

type AppointmentPage struct {
	Appointments []models.Appointment `json:"appointments"`
	Pagination   Pagination           `json:"pagination"`
}

// Paginate slices an already loaded result set. page is 1-indexed.
func Paginate(all []models.Appointment, page, limit int) AppointmentPage {
	total := len(all)
	page, limit, start, end := window(total, page, limit)

	items := make([]models.Appointment, end-start)
	copy(items, all[start:end])

	return AppointmentPage{
		Appointments: items,
		Pagination: Pagination{
			CurrentPage:       page,
			TotalPages:        totalPages(total, limit),
			TotalAppointments: total,
			HasNext:           end < total,
			HasPrev:           page > 1,
		},
	}
}
