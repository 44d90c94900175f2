package ledger

import (
	"context"

	"github.com/agendalivre/platform-api/internal/models"
)

type Repository interface {
	GetTenantByID(
		ctx context.Context,
		id string,
	) (*models.Tenant, error)

	// FindPostedBySource devolve (nil, nil) quando não há lançamento
	// posted para a origem.
	FindPostedBySource(
		ctx context.Context,
		tenantID string,
		source Source,
		sourceID string,
	) (*models.FinancialTransaction, error)

	CreateTransaction(
		ctx context.Context,
		t *models.FinancialTransaction,
	) error

	UpdateTransaction(
		ctx context.Context,
		t *models.FinancialTransaction,
	) error

	// GetCategoryByName devolve (nil, nil) quando ausente.
	GetCategoryByName(
		ctx context.Context,
		tenantID string,
		name string,
	) (*models.FinancialCategory, error)

	GetCategoryByID(
		ctx context.Context,
		tenantID string,
		id string,
	) (*models.FinancialCategory, error)

	ListPostedBetween(
		ctx context.Context,
		tenantID string,
		startDate string,
		endDate string,
	) ([]models.FinancialTransaction, error)

	ListBetween(
		ctx context.Context,
		tenantID string,
		startDate string,
		endDate string,
	) ([]models.FinancialTransaction, error)
}
