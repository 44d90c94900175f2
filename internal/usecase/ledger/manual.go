package ledger

import (
	"context"

	"github.com/agendalivre/platform-api/internal/audit"
	"github.com/agendalivre/platform-api/internal/cache"
	domain "github.com/agendalivre/platform-api/internal/domain/ledger"
	"github.com/agendalivre/platform-api/internal/httperr"
	"github.com/agendalivre/platform-api/internal/models"
	"github.com/agendalivre/platform-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateManualTransactionInput struct {
	TenantID string
	ActorID  *string

	Type          domain.Type
	CategoryID    *string
	Title         string
	Amount        float64
	PaymentMethod string
	Date          string // vazio = hoje no fuso do tenant
}

// ======================================================
// USE CASE
// ======================================================

type CreateManualTransaction struct {
	repo  domain.Repository
	cache *cache.SummaryCache
	audit *audit.Dispatcher
}

func NewCreateManualTransaction(
	repo domain.Repository,
	summaryCache *cache.SummaryCache,
	audit *audit.Dispatcher,
) *CreateManualTransaction {
	return &CreateManualTransaction{
		repo:  repo,
		cache: summaryCache,
		audit: audit,
	}
}

func (uc *CreateManualTransaction) Execute(
	ctx context.Context,
	in CreateManualTransactionInput,
) (*models.FinancialTransaction, error) {

	if in.Type != domain.TypeIncome && in.Type != domain.TypeExpense {
		return nil, httperr.ErrBusiness("invalid_transaction_type")
	}
	if in.Amount <= 0 {
		return nil, httperr.ErrBusiness("invalid_amount")
	}

	tenant, err := uc.repo.GetTenantByID(ctx, in.TenantID)
	if err != nil {
		return nil, err
	}

	date := in.Date
	if date == "" {
		date = timezone.TodayIn(tenant.Timezone)
	}

	t := &models.FinancialTransaction{
		TenantID:      in.TenantID,
		Type:          string(in.Type),
		Source:        string(domain.SourceManual),
		Title:         in.Title,
		Amount:        in.Amount,
		PaymentMethod: in.PaymentMethod,
		Date:          date,
		Status:        string(domain.StatusPosted),
	}

	// O nome da categoria é congelado aqui; renomes posteriores não
	// alteram o histórico.
	if in.CategoryID != nil {
		cat, err := uc.repo.GetCategoryByID(ctx, in.TenantID, *in.CategoryID)
		if err != nil {
			return nil, httperr.ErrBusiness("category_not_found")
		}
		t.CategoryID = &cat.ID
		t.CategoryName = cat.Name
	}

	if err := uc.repo.CreateTransaction(ctx, t); err != nil {
		return nil, err
	}

	uc.cache.InvalidateTenant(ctx, in.TenantID)

	uc.audit.Dispatch(audit.Event{
		TenantID: in.TenantID,
		UserID:   in.ActorID,
		Action:   "transaction_created",
		Entity:   "financial_transaction",
		EntityID: &t.ID,
	})

	return t, nil
}
