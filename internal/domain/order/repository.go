package order

import (
	"context"

	"github.com/agendalivre/platform-api/internal/models"
)

type Repository interface {
	GetTenantByID(
		ctx context.Context,
		id string,
	) (*models.Tenant, error)

	GetClientByID(
		ctx context.Context,
		tenantID string,
		id string,
	) (*models.Client, error)

	GetProductByID(
		ctx context.Context,
		tenantID string,
		id string,
	) (*models.Product, error)

	// NextOrderNumber aloca o próximo sequencial do tenant.
	NextOrderNumber(
		ctx context.Context,
		tenantID string,
	) (int, error)

	// CreateOrder grava pedido, itens e baixa de estoque dos produtos
	// gerenciados na mesma transação. O estoque nunca fica negativo.
	CreateOrder(
		ctx context.Context,
		o *models.Order,
	) error

	GetOrderByID(
		ctx context.Context,
		tenantID string,
		id string,
	) (*models.Order, error)

	UpdateOrder(
		ctx context.Context,
		o *models.Order,
	) error

	// AdjustStock soma delta ao estoque de um produto gerenciado,
	// com piso em zero.
	AdjustStock(
		ctx context.Context,
		tenantID string,
		productID string,
		delta int,
	) error

	ListOrders(
		ctx context.Context,
		tenantID string,
	) ([]models.Order, error)
}
