package appointment

import (
	"context"

	"github.com/agendalivre/platform-api/internal/audit"
	domain "github.com/agendalivre/platform-api/internal/domain/appointment"
	"github.com/agendalivre/platform-api/internal/httperr"
	"github.com/agendalivre/platform-api/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	TenantID string
	ActorID  *string

	ClientID       string
	ProfessionalID *string

	ServiceIDs []string

	Date   string // "YYYY-MM-DD"
	Time   string // "HH:MM"
	Status string
	Notes  string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if len(in.ServiceIDs) == 0 {
		return nil, httperr.ErrBusiness("at_least_one_service")
	}

	if !validDate(in.Date) {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	if _, err := domain.MinutesOf(in.Time); err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	services, duration, err := resolveServices(ctx, uc.repo, in.TenantID, in.ServiceIDs)
	if err != nil {
		return nil, err
	}

	conflicts, err := FindOverlapping(
		ctx, uc.repo,
		in.TenantID, in.Date, in.Time, duration,
		"",
	)
	if err != nil {
		return nil, err
	}
	if len(conflicts) > 0 {
		return nil, conflictError(conflicts)
	}

	status := string(domain.InitialStatus())
	if in.Status != "" && domain.IsValidStatus(in.Status) {
		status = in.Status
	}

	ap := &models.Appointment{
		TenantID:       in.TenantID,
		ClientID:       in.ClientID,
		ProfessionalID: in.ProfessionalID,
		Date:           in.Date,
		Time:           in.Time,
		DurationMin:    duration,
		Status:         status,
		Notes:          in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap, services); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		TenantID: in.TenantID,
		UserID:   in.ActorID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
