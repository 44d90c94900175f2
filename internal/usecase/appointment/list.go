package appointment

import (
	"context"

	domain "github.com/agendalivre/platform-api/internal/domain/appointment"
	"github.com/agendalivre/platform-api/internal/httperr"
	"github.com/agendalivre/platform-api/internal/models"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(repo domain.Repository) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{repo: repo}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	tenantID string,
	date string,
) ([]models.Appointment, error) {

	if !validDate(date) {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	return uc.repo.ListByDate(ctx, tenantID, date, "")
}
