package appointment

import (
	"context"
	"time"

	domain "github.com/agendalivre/platform-api/internal/domain/appointment"
	"github.com/agendalivre/platform-api/internal/httperr"
	"github.com/agendalivre/platform-api/internal/models"
)

const dateLayout = "2006-01-02"

// resolveServices carrega os serviços do tenant e calcula a duração
// efetiva. Qualquer id que não resolva para um serviço do tenant
// falha a operação inteira.
func resolveServices(
	ctx context.Context,
	repo domain.Repository,
	tenantID string,
	serviceIDs []string,
) ([]models.Service, int, error) {

	services, err := repo.GetServices(ctx, tenantID, serviceIDs)
	if err != nil {
		return nil, 0, err
	}
	if len(services) != len(serviceIDs) {
		return nil, 0, httperr.ErrBusiness("service_not_found")
	}

	return services, domain.DurationFor(services), nil
}

// ComputeDuration soma a duração dos serviços informados; soma zero
// vira o default de 60 minutos.
func ComputeDuration(
	ctx context.Context,
	repo domain.Repository,
	tenantID string,
	serviceIDs []string,
) (int, error) {

	_, duration, err := resolveServices(ctx, repo, tenantID, serviceIDs)
	return duration, err
}

// FindOverlapping carrega os agendamentos do tenant na data (menos o
// excluído) e devolve os que cruzam [start, start+duration).
func FindOverlapping(
	ctx context.Context,
	repo domain.Repository,
	tenantID string,
	date string,
	hhmm string,
	durationMin int,
	excludeID string,
) ([]models.Appointment, error) {

	startMin, err := domain.MinutesOf(hhmm)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	existing, err := repo.ListByDate(ctx, tenantID, date, excludeID)
	if err != nil {
		return nil, err
	}

	return domain.FindConflicts(existing, startMin, durationMin), nil
}

// conflictError materializa o erro tipado a partir do primeiro
// agendamento conflitante.
func conflictError(conflicts []models.Appointment) error {
	first := conflicts[0]
	start, end, err := domain.Window(&first)
	if err != nil {
		return err
	}

	return httperr.ConflictError{
		ConflictingAppointmentID: first.ID,
		ConflictStart:            domain.FormatMinutes(start),
		ConflictEnd:              domain.FormatMinutes(end),
	}
}

func validDate(date string) bool {
	_, err := time.Parse(dateLayout, date)
	return err == nil
}
