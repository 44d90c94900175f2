package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/agendalivre/platform-api/internal/domain/appointment"
	"github.com/agendalivre/platform-api/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Tenant
// --------------------------------------------------

func (r *AppointmentGormRepository) GetTenantByID(
	ctx context.Context,
	id string,
) (*models.Tenant, error) {

	var tenant models.Tenant
	if err := r.db.WithContext(ctx).First(&tenant, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}

// --------------------------------------------------
// Services
// --------------------------------------------------

func (r *AppointmentGormRepository) GetServices(
	ctx context.Context,
	tenantID string,
	ids []string,
) ([]models.Service, error) {

	var services []models.Service
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id IN ?", tenantID, ids).
		Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *AppointmentGormRepository) GetServiceByID(
	ctx context.Context,
	tenantID string,
	id string,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *AppointmentGormRepository) ListByDate(
	ctx context.Context,
	tenantID string,
	date string,
	excludeID string,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Services").
		Where("tenant_id = ? AND date = ?", tenantID, date)

	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var apps []models.Appointment
	if err := q.Order("time ASC").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
	services []models.Service,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Services").Create(ap).Error; err != nil {
			return err
		}
		if err := tx.Model(ap).Association("Services").Append(services); err != nil {
			return err
		}
		ap.Services = services
		return nil
	})
}

// --------------------------------------------------
// Appointment (read / mutate)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	tenantID string,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Services").
		Preload("Client").
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Omit("Services", "Client").Save(ap).Error
}

func (r *AppointmentGormRepository) UpdateAppointmentFields(
	ctx context.Context,
	tenantID string,
	id string,
	fields map[string]any,
) error {

	return r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		Updates(fields).Error
}

func (r *AppointmentGormRepository) ReplaceServices(
	ctx context.Context,
	ap *models.Appointment,
	services []models.Service,
) error {

	if err := r.db.WithContext(ctx).
		Model(ap).
		Association("Services").
		Replace(services); err != nil {
		return err
	}
	ap.Services = services
	return nil
}

// --------------------------------------------------
// Orphan repair
// --------------------------------------------------

func (r *AppointmentGormRepository) ListOrphans(
	ctx context.Context,
	tenantID string,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Where("id NOT IN (SELECT appointment_id FROM appointment_services)").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) AttachService(
	ctx context.Context,
	ap *models.Appointment,
	svc models.Service,
) error {
	return r.db.WithContext(ctx).
		Model(ap).
		Association("Services").
		Append(&svc)
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
