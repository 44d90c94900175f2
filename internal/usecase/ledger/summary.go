package ledger

import (
	"context"

	"github.com/agendalivre/platform-api/internal/cache"
	domain "github.com/agendalivre/platform-api/internal/domain/ledger"
	"github.com/agendalivre/platform-api/internal/httperr"
	"github.com/agendalivre/platform-api/internal/models"
)

// GetFinancialSummary agrega lançamentos posted do período inclusivo.
type GetFinancialSummary struct {
	repo  domain.Repository
	cache *cache.SummaryCache
}

func NewGetFinancialSummary(
	repo domain.Repository,
	summaryCache *cache.SummaryCache,
) *GetFinancialSummary {
	return &GetFinancialSummary{
		repo:  repo,
		cache: summaryCache,
	}
}

func (uc *GetFinancialSummary) Execute(
	ctx context.Context,
	tenantID string,
	startDate string,
	endDate string,
) (*domain.Summary, error) {

	if startDate == "" || endDate == "" || startDate > endDate {
		return nil, httperr.ErrBusiness("invalid_date_range")
	}

	if s, ok := uc.cache.Get(ctx, tenantID, startDate, endDate); ok {
		return s, nil
	}

	txs, err := uc.repo.ListPostedBetween(ctx, tenantID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	s := domain.Summarize(txs)
	uc.cache.Set(ctx, tenantID, startDate, endDate, &s)

	return &s, nil
}

// ListTransactions devolve todos os lançamentos do período, inclusive
// estornados, para a listagem do extrato.
type ListTransactions struct {
	repo domain.Repository
}

func NewListTransactions(repo domain.Repository) *ListTransactions {
	return &ListTransactions{repo: repo}
}

func (uc *ListTransactions) Execute(
	ctx context.Context,
	tenantID string,
	startDate string,
	endDate string,
) ([]models.FinancialTransaction, error) {

	if startDate == "" || endDate == "" || startDate > endDate {
		return nil, httperr.ErrBusiness("invalid_date_range")
	}

	return uc.repo.ListBetween(ctx, tenantID, startDate, endDate)
}
