package appointment

import (
	"context"

	"github.com/agendalivre/platform-api/internal/models"
)

type Repository interface {
	// -------- Tenant --------
	GetTenantByID(
		ctx context.Context,
		id string,
	) (*models.Tenant, error)

	// -------- Services --------
	GetServices(
		ctx context.Context,
		tenantID string,
		ids []string,
	) ([]models.Service, error)

	GetServiceByID(
		ctx context.Context,
		tenantID string,
		id string,
	) (*models.Service, error)

	// -------- Appointment (create / conflict) --------
	ListByDate(
		ctx context.Context,
		tenantID string,
		date string,
		excludeID string,
	) ([]models.Appointment, error)

	// CreateAppointment grava a linha do agendamento e seus vínculos
	// de serviço como uma unidade atômica.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
		services []models.Service,
	) error

	// -------- Appointment (read / mutate) --------
	GetAppointment(
		ctx context.Context,
		tenantID string,
		id string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// UpdateAppointmentFields persiste apenas os campos presentes.
	UpdateAppointmentFields(
		ctx context.Context,
		tenantID string,
		id string,
		fields map[string]any,
	) error

	ReplaceServices(
		ctx context.Context,
		ap *models.Appointment,
		services []models.Service,
	) error

	// -------- Orphan repair --------
	ListOrphans(
		ctx context.Context,
		tenantID string,
	) ([]models.Appointment, error)

	AttachService(
		ctx context.Context,
		ap *models.Appointment,
		svc models.Service,
	) error
}
