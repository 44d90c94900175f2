package ledger

import (
	"context"

	"github.com/agendalivre/platform-api/internal/audit"
	"github.com/agendalivre/platform-api/internal/cache"
	domain "github.com/agendalivre/platform-api/internal/domain/ledger"
	"github.com/agendalivre/platform-api/internal/models"
	"github.com/agendalivre/platform-api/internal/timezone"
)

// VoidTransactionBySource estorna o lançamento derivado de uma origem
// virando o status para voided. A linha nunca é apagada: o histórico
// contábil permanece auditável.
type VoidTransactionBySource struct {
	repo  domain.Repository
	cache *cache.SummaryCache
	audit *audit.Dispatcher
}

func NewVoidTransactionBySource(
	repo domain.Repository,
	summaryCache *cache.SummaryCache,
	audit *audit.Dispatcher,
) *VoidTransactionBySource {
	return &VoidTransactionBySource{
		repo:  repo,
		cache: summaryCache,
		audit: audit,
	}
}

// Execute devolve (nil, nil) quando não há lançamento posted para a
// origem. Estornar o que não existe não é erro.
func (uc *VoidTransactionBySource) Execute(
	ctx context.Context,
	tenantID string,
	source domain.Source,
	sourceID string,
) (*models.FinancialTransaction, error) {

	t, err := uc.repo.FindPostedBySource(ctx, tenantID, source, sourceID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, nil
	}

	tenant, err := uc.repo.GetTenantByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(tenant.Timezone)
	t.Status = string(domain.StatusVoided)
	t.VoidedAt = &now

	if err := uc.repo.UpdateTransaction(ctx, t); err != nil {
		return nil, err
	}

	uc.cache.InvalidateTenant(ctx, tenantID)

	uc.audit.Dispatch(audit.Event{
		TenantID: tenantID,
		Action:   "transaction_voided",
		Entity:   "financial_transaction",
		EntityID: &t.ID,
		Metadata: map[string]string{"source": string(source), "source_id": sourceID},
	})

	return t, nil
}
