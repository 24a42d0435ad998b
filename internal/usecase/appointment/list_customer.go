package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/dto"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

type ListCustomerInput struct {
	CustomerID string
	Status     string
	Page       int
	Limit      int
}

type ListCustomerAppointments struct {
	repo domain.AppointmentRepository
}

func NewListCustomerAppointments(repo domain.AppointmentRepository) *ListCustomerAppointments {
	return &ListCustomerAppointments{repo: repo}
}

func (uc *ListCustomerAppointments) Execute(ctx context.Context, in ListCustomerInput) (dto.AppointmentPage, error) {
	statuses, err := parseStatusFilter(in.Status)
	if err != nil {
		return dto.AppointmentPage{}, err
	}

	apps, err := uc.repo.ListAppointments(ctx, domain.ListFilter{
		CustomerID: in.CustomerID,
		Statuses:   statuses,
	})
	if err != nil {
		return dto.AppointmentPage{}, httperr.Internal(err, "Failed to get appointments.")
	}

	return dto.Paginate(apps, in.Page, in.Limit), nil
}
