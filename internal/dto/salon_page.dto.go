package dto

import "github.com/BruksfildServices01/salon-scheduler/internal/models"

type SalonPagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalSalons int  `json:"totalSalons"`
	HasNext     bool `json:"hasNext"`
	HasPrev     bool `json:"hasPrev"`
}

type SalonPage struct {
	Salons     []models.Salon  `json:"salons"`
	Pagination SalonPagination `json:"pagination"`
}

func PaginateSalons(all []models.Salon, page, limit int) SalonPage {
	total := len(all)
	page, limit, start, end := window(total, page, limit)

	items := make([]models.Salon, end-start)
	copy(items, all[start:end])

	return SalonPage{
		Salons: items,
		Pagination: SalonPagination{
			CurrentPage: page,
			TotalPages:  totalPages(total, limit),
			TotalSalons: total,
			HasNext:     end < total,
			HasPrev:     page > 1,
		},
	}
}
