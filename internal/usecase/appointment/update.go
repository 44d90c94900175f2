package appointment

import (
	"context"

	"github.com/agendalivre/platform-api/internal/audit"
	domain "github.com/agendalivre/platform-api/internal/domain/appointment"
	"github.com/agendalivre/platform-api/internal/httperr"
	"github.com/agendalivre/platform-api/internal/models"
)

// UpdateAppointmentInput é um patch: só campos não-nil são aplicados.
type UpdateAppointmentInput struct {
	TenantID      string
	AppointmentID string
	ActorID       *string

	ClientID       *string
	ProfessionalID *string
	ServiceIDs     *[]string
	Date           *string
	Time           *string
	Notes          *string
}

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.TenantID, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	var services []models.Service
	duration := ap.DurationMin

	if in.ServiceIDs != nil {
		if len(*in.ServiceIDs) == 0 {
			return nil, httperr.ErrBusiness("at_least_one_service")
		}
		services, duration, err = resolveServices(ctx, uc.repo, in.TenantID, *in.ServiceIDs)
		if err != nil {
			return nil, err
		}
	}

	finalDate := ap.Date
	if in.Date != nil {
		finalDate = *in.Date
	}
	finalTime := ap.Time
	if in.Time != nil {
		finalTime = *in.Time
	}

	// Qualquer mudança de serviços, data ou hora exige nova checagem
	// de conflito contra o slot final, excluindo o próprio id.
	if in.ServiceIDs != nil || in.Date != nil || in.Time != nil {
		if !validDate(finalDate) {
			return nil, httperr.ErrBusiness("invalid_date_or_time")
		}

		conflicts, err := FindOverlapping(
			ctx, uc.repo,
			in.TenantID, finalDate, finalTime, duration,
			ap.ID,
		)
		if err != nil {
			return nil, err
		}
		if len(conflicts) > 0 {
			return nil, conflictError(conflicts)
		}
	}

	fields := map[string]any{}
	if in.ClientID != nil {
		fields["client_id"] = *in.ClientID
	}
	if in.ProfessionalID != nil {
		fields["professional_id"] = *in.ProfessionalID
	}
	if in.Date != nil {
		fields["date"] = *in.Date
	}
	if in.Time != nil {
		fields["time"] = *in.Time
	}
	if in.Notes != nil {
		fields["notes"] = *in.Notes
	}
	if in.ServiceIDs != nil {
		fields["duration_min"] = duration
	}

	if len(fields) > 0 {
		if err := uc.repo.UpdateAppointmentFields(
			ctx, in.TenantID, ap.ID, fields,
		); err != nil {
			return nil, err
		}
	}

	if in.ServiceIDs != nil {
		if err := uc.repo.ReplaceServices(ctx, ap, services); err != nil {
			return nil, err
		}
	}

	uc.audit.Dispatch(audit.Event{
		TenantID: in.TenantID,
		UserID:   in.ActorID,
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return uc.repo.GetAppointment(ctx, in.TenantID, ap.ID)
}
