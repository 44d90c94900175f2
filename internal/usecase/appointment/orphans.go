package appointment

import (
	"context"
	"fmt"

	"github.com/agendalivre/platform-api/internal/audit"
	domain "github.com/agendalivre/platform-api/internal/domain/appointment"
	"github.com/agendalivre/platform-api/internal/httperr"
	"github.com/agendalivre/platform-api/internal/models"
)

// FindOrphanAppointments lista agendamentos sem nenhum serviço
// vinculado, anomalia de integridade a ser reparada.
type FindOrphanAppointments struct {
	repo domain.Repository
}

func NewFindOrphanAppointments(repo domain.Repository) *FindOrphanAppointments {
	return &FindOrphanAppointments{repo: repo}
}

func (uc *FindOrphanAppointments) Execute(
	ctx context.Context,
	tenantID string,
) ([]models.Appointment, error) {
	return uc.repo.ListOrphans(ctx, tenantID)
}

// ======================================================
// FIX
// ======================================================

type FixReport struct {
	Fixed  int      `json:"fixed"`
	Errors []string `json:"errors"`
}

type FixOrphanAppointments struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewFixOrphanAppointments(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *FixOrphanAppointments {
	return &FixOrphanAppointments{
		repo:  repo,
		audit: audit,
	}
}

// Execute vincula o serviço padrão a cada órfão. Falhas individuais
// não abortam o lote: entram no relatório e o reparo continua.
func (uc *FixOrphanAppointments) Execute(
	ctx context.Context,
	tenantID string,
	defaultServiceID string,
	actorID *string,
) (*FixReport, error) {

	svc, err := uc.repo.GetServiceByID(ctx, tenantID, defaultServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	orphans, err := uc.repo.ListOrphans(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	report := &FixReport{Errors: []string{}}

	for i := range orphans {
		if err := uc.repo.AttachService(ctx, &orphans[i], *svc); err != nil {
			report.Errors = append(report.Errors,
				fmt.Sprintf("%s: %v", orphans[i].ID, err))
			continue
		}
		report.Fixed++
	}

	uc.audit.Dispatch(audit.Event{
		TenantID: tenantID,
		UserID:   actorID,
		Action:   "orphan_appointments_fixed",
		Entity:   "appointment",
		Metadata: report,
	})

	return report, nil
}
