package repository

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"pg unique", &pgconn.PgError{Code: "23505", Message: "duplicate key value violates unique constraint"}, true},
		{"wrapped pg unique", errors.Wrap(&pgconn.PgError{Code: "23505"}, "insert"), true},
		{"gorm translated", gorm.ErrDuplicatedKey, true},
		{"pg other", &pgconn.PgError{Code: "40001"}, false},
		{"plain", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueViolation(tt.err))
		})
	}
}

func TestTranslate(t *testing.T) {
	assert.NoError(t, translate(nil, domain.ErrSalonNotFound, "op"))
	assert.ErrorIs(t, translate(gorm.ErrRecordNotFound, domain.ErrSalonNotFound, "op"), domain.ErrSalonNotFound)

	err := translate(errors.New("conn reset"), domain.ErrSalonNotFound, "get salon")
	assert.NotErrorIs(t, err, domain.ErrSalonNotFound)
	assert.Contains(t, err.Error(), "get salon")
}

func TestStatusStrings(t *testing.T) {
	assert.Equal(t, []string{"pending", "confirmed"}, statusStrings(domain.ActiveStatuses))
}
