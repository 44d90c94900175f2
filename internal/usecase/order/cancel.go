package order

import (
	"context"

	"github.com/agendalivre/platform-api/internal/audit"
	ledgerdomain "github.com/agendalivre/platform-api/internal/domain/ledger"
	domain "github.com/agendalivre/platform-api/internal/domain/order"
	"github.com/agendalivre/platform-api/internal/httperr"
	"github.com/agendalivre/platform-api/internal/models"
	"github.com/agendalivre/platform-api/internal/timezone"
	ucledger "github.com/agendalivre/platform-api/internal/usecase/ledger"
)

// CancelOrder devolve o estoque de cada item, estorna o lançamento
// derivado e muda o status para cancelled.
type CancelOrder struct {
	repo  domain.Repository
	void  *ucledger.VoidTransactionBySource
	audit *audit.Dispatcher
}

func NewCancelOrder(
	repo domain.Repository,
	void *ucledger.VoidTransactionBySource,
	audit *audit.Dispatcher,
) *CancelOrder {
	return &CancelOrder{
		repo:  repo,
		void:  void,
		audit: audit,
	}
}

func (uc *CancelOrder) Execute(
	ctx context.Context,
	tenantID string,
	orderID string,
	actorID *string,
) (*models.Order, error) {

	tenant, err := uc.repo.GetTenantByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	o, err := uc.repo.GetOrderByID(ctx, tenantID, orderID)
	if err != nil {
		return nil, httperr.ErrBusiness("order_not_found")
	}

	if err := domain.CanCancel(domain.Status(o.Status)); err != nil {
		return nil, err
	}

	for _, item := range o.Items {
		if err := uc.repo.AdjustStock(
			ctx, tenantID, item.ProductID, item.Quantity,
		); err != nil {
			return nil, err
		}
	}

	if _, err := uc.void.Execute(
		ctx, tenantID, ledgerdomain.SourceOrder, o.ID,
	); err != nil {
		return nil, err
	}

	now := timezone.NowIn(tenant.Timezone)
	o.Status = string(domain.StatusCancelled)
	o.CancelledAt = &now

	if err := uc.repo.UpdateOrder(ctx, o); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		TenantID: tenantID,
		UserID:   actorID,
		Action:   "order_cancelled",
		Entity:   "order",
		EntityID: &o.ID,
	})

	return o, nil
}
