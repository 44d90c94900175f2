package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/agendalivre/platform-api/internal/domain/ledger"
	"github.com/agendalivre/platform-api/internal/models"
)

type LedgerGormRepository struct {
	db *gorm.DB
}

func NewLedgerGormRepository(db *gorm.DB) *LedgerGormRepository {
	return &LedgerGormRepository{db: db}
}

func (r *LedgerGormRepository) GetTenantByID(
	ctx context.Context,
	id string,
) (*models.Tenant, error) {

	var tenant models.Tenant
	if err := r.db.WithContext(ctx).First(&tenant, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (r *LedgerGormRepository) FindPostedBySource(
	ctx context.Context,
	tenantID string,
	source domain.Source,
	sourceID string,
) (*models.FinancialTransaction, error) {

	var t models.FinancialTransaction
	err := r.db.WithContext(ctx).
		Where(
			"tenant_id = ? AND source = ? AND source_id = ? AND status = ?",
			tenantID, string(source), sourceID, string(domain.StatusPosted),
		).
		First(&t).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *LedgerGormRepository) CreateTransaction(
	ctx context.Context,
	t *models.FinancialTransaction,
) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *LedgerGormRepository) UpdateTransaction(
	ctx context.Context,
	t *models.FinancialTransaction,
) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *LedgerGormRepository) GetCategoryByName(
	ctx context.Context,
	tenantID string,
	name string,
) (*models.FinancialCategory, error) {

	var cat models.FinancialCategory
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND name = ?", tenantID, name).
		First(&cat).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *LedgerGormRepository) GetCategoryByID(
	ctx context.Context,
	tenantID string,
	id string,
) (*models.FinancialCategory, error) {

	var cat models.FinancialCategory
	if err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&cat).Error; err != nil {
		return nil, err
	}
	return &cat, nil
}

func (r *LedgerGormRepository) ListPostedBetween(
	ctx context.Context,
	tenantID string,
	startDate string,
	endDate string,
) ([]models.FinancialTransaction, error) {

	var txs []models.FinancialTransaction
	if err := r.db.WithContext(ctx).
		Where(
			"tenant_id = ? AND status = ? AND date >= ? AND date <= ?",
			tenantID, string(domain.StatusPosted), startDate, endDate,
		).
		Order("date ASC").
		Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

func (r *LedgerGormRepository) ListBetween(
	ctx context.Context,
	tenantID string,
	startDate string,
	endDate string,
) ([]models.FinancialTransaction, error) {

	var txs []models.FinancialTransaction
	if err := r.db.WithContext(ctx).
		Where(
			"tenant_id = ? AND date >= ? AND date <= ?",
			tenantID, startDate, endDate,
		).
		Order("date ASC").
		Find(&txs).Error; err != nil {
		return nil, err
	}
	return txs, nil
}

// Compile-time check
var _ domain.Repository = (*LedgerGormRepository)(nil)
