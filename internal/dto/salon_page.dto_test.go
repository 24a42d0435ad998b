package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

func TestPaginateSalons(t *testing.T) {
	all := []models.Salon{{ID: "a"}, {ID: "b"}, {ID: "c"}}

	got := PaginateSalons(all, 2, 2)
	assert.Equal(t, []models.Salon{{ID: "c"}}, got.Salons)
	assert.Equal(t, SalonPagination{CurrentPage: 2, TotalPages: 2, TotalSalons: 3, HasPrev: true}, got.Pagination)

	got = PaginateSalons(all, 1, 2)
	assert.Len(t, got.Salons, 2)
	assert.True(t, got.Pagination.HasNext)

	got = PaginateSalons(all, 100000000000000000, MaxLimit)
	assert.Empty(t, got.Salons)
	assert.Equal(t, 3, got.Pagination.TotalSalons)
	assert.False(t, got.Pagination.HasNext)
}
