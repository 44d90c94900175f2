package order

import (
	"context"

	"github.com/agendalivre/platform-api/internal/audit"
	domain "github.com/agendalivre/platform-api/internal/domain/order"
	"github.com/agendalivre/platform-api/internal/httperr"
	"github.com/agendalivre/platform-api/internal/models"
	ucledger "github.com/agendalivre/platform-api/internal/usecase/ledger"
)

// ======================================================
// INPUT
// ======================================================

type OrderItemInput struct {
	ProductID string
	Quantity  int
}

type CreateOrderInput struct {
	TenantID string
	ActorID  *string

	ClientID        string
	Items           []OrderItemInput
	PaymentMethod   string
	Notes           string
	DeliveryAddress string
	ClientAddressID *string
}

// ======================================================
// USE CASE
// ======================================================

type CreateOrder struct {
	repo   domain.Repository
	derive *ucledger.CreateTransactionFromOrder
	audit  *audit.Dispatcher
}

func NewCreateOrder(
	repo domain.Repository,
	derive *ucledger.CreateTransactionFromOrder,
	audit *audit.Dispatcher,
) *CreateOrder {
	return &CreateOrder{
		repo:   repo,
		derive: derive,
		audit:  audit,
	}
}

func (uc *CreateOrder) Execute(
	ctx context.Context,
	in CreateOrderInput,
) (*models.Order, error) {

	if len(in.Items) == 0 {
		return nil, httperr.ErrBusiness("at_least_one_item")
	}

	if _, err := uc.repo.GetClientByID(ctx, in.TenantID, in.ClientID); err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	// Valida produto a produto antes de qualquer escrita: o preço
	// vigente é congelado no item aqui.
	var (
		items []models.OrderItem
		total float64
	)
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return nil, httperr.ErrBusiness("invalid_quantity")
		}

		product, err := uc.repo.GetProductByID(ctx, in.TenantID, it.ProductID)
		if err != nil {
			return nil, httperr.ErrBusiness("product_not_found")
		}
		if !product.Active {
			return nil, httperr.ErrBusiness("product_inactive")
		}
		if product.ManageStock && product.StockQuantity < it.Quantity {
			return nil, httperr.ErrBusiness("insufficient_stock")
		}

		subtotal := product.Price * float64(it.Quantity)
		items = append(items, models.OrderItem{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    it.Quantity,
			UnitPrice:   product.Price,
			Subtotal:    subtotal,
		})
		total += subtotal
	}

	number, err := uc.repo.NextOrderNumber(ctx, in.TenantID)
	if err != nil {
		return nil, err
	}

	o := &models.Order{
		TenantID:        in.TenantID,
		ClientID:        in.ClientID,
		OrderNumber:     number,
		Items:           items,
		Status:          string(domain.InitialStatus()),
		Total:           total,
		PaymentMethod:   in.PaymentMethod,
		Notes:           in.Notes,
		DeliveryAddress: in.DeliveryAddress,
		ClientAddressID: in.ClientAddressID,
	}

	if err := uc.repo.CreateOrder(ctx, o); err != nil {
		return nil, err
	}

	if _, err := uc.derive.Execute(ctx, in.TenantID, o.ID); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		TenantID: in.TenantID,
		UserID:   in.ActorID,
		Action:   "order_created",
		Entity:   "order",
		EntityID: &o.ID,
	})

	return uc.repo.GetOrderByID(ctx, in.TenantID, o.ID)
}
