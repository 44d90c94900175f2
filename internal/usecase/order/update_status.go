package order

import (
	"context"

	"github.com/agendalivre/platform-api/internal/audit"
	domain "github.com/agendalivre/platform-api/internal/domain/order"
	"github.com/agendalivre/platform-api/internal/httperr"
	"github.com/agendalivre/platform-api/internal/models"
)

// UpdateOrderStatus avança o pedido um estágio no ciclo
// pending → preparing → ready → delivered.
type UpdateOrderStatus struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateOrderStatus(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateOrderStatus {
	return &UpdateOrderStatus{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateOrderStatus) Execute(
	ctx context.Context,
	tenantID string,
	orderID string,
	target domain.Status,
	actorID *string,
) (*models.Order, error) {

	o, err := uc.repo.GetOrderByID(ctx, tenantID, orderID)
	if err != nil {
		return nil, httperr.ErrBusiness("order_not_found")
	}

	if err := domain.CanTransition(domain.Status(o.Status), target); err != nil {
		return nil, err
	}

	o.Status = string(target)
	if err := uc.repo.UpdateOrder(ctx, o); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		TenantID: tenantID,
		UserID:   actorID,
		Action:   "order_status_updated",
		Entity:   "order",
		EntityID: &o.ID,
		Metadata: map[string]string{"status": string(target)},
	})

	return o, nil
}
