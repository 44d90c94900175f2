package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/agendalivre/platform-api/internal/domain/order"
	"github.com/agendalivre/platform-api/internal/models"
)

type OrderGormRepository struct {
	db *gorm.DB
}

func NewOrderGormRepository(db *gorm.DB) *OrderGormRepository {
	return &OrderGormRepository{db: db}
}

func (r *OrderGormRepository) GetTenantByID(
	ctx context.Context,
	id string,
) (*models.Tenant, error) {

	var tenant models.Tenant
	if err := r.db.WithContext(ctx).First(&tenant, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tenant, nil
}

func (r *OrderGormRepository) GetClientByID(
	ctx context.Context,
	tenantID string,
	id string,
) (*models.Client, error) {

	var client models.Client
	if err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&client).Error; err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *OrderGormRepository) GetProductByID(
	ctx context.Context,
	tenantID string,
	id string,
) (*models.Product, error) {

	var product models.Product
	if err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *OrderGormRepository) NextOrderNumber(
	ctx context.Context,
	tenantID string,
) (int, error) {

	var max int
	if err := r.db.WithContext(ctx).
		Model(&models.Order{}).
		Where("tenant_id = ?", tenantID).
		Select("COALESCE(MAX(order_number), 0)").
		Scan(&max).Error; err != nil {
		return 0, err
	}
	return max + 1, nil
}

// CreateOrder insere pedido e itens e baixa o estoque dos produtos
// gerenciados na mesma transação, com piso em zero.
func (r *OrderGormRepository) CreateOrder(
	ctx context.Context,
	o *models.Order,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(o).Error; err != nil {
			return err
		}

		for _, item := range o.Items {
			var product models.Product
			if err := tx.
				Where("id = ? AND tenant_id = ?", item.ProductID, o.TenantID).
				First(&product).Error; err != nil {
				return err
			}

			if !product.ManageStock {
				continue
			}

			remaining := product.StockQuantity - item.Quantity
			if remaining < 0 {
				remaining = 0
			}

			if err := tx.Model(&product).
				Update("stock_quantity", remaining).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *OrderGormRepository) GetOrderByID(
	ctx context.Context,
	tenantID string,
	id string,
) (*models.Order, error) {

	var o models.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Client").
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderGormRepository) UpdateOrder(
	ctx context.Context,
	o *models.Order,
) error {
	return r.db.WithContext(ctx).Omit("Items", "Client").Save(o).Error
}

func (r *OrderGormRepository) AdjustStock(
	ctx context.Context,
	tenantID string,
	productID string,
	delta int,
) error {

	var product models.Product
	if err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", productID, tenantID).
		First(&product).Error; err != nil {
		return err
	}

	if !product.ManageStock {
		return nil
	}

	quantity := product.StockQuantity + delta
	if quantity < 0 {
		quantity = 0
	}

	return r.db.WithContext(ctx).
		Model(&product).
		Update("stock_quantity", quantity).Error
}

func (r *OrderGormRepository) ListOrders(
	ctx context.Context,
	tenantID string,
) ([]models.Order, error) {

	var orders []models.Order
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Client").
		Where("tenant_id = ?", tenantID).
		Order("order_number DESC").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// Compile-time check
var _ domain.Repository = (*OrderGormRepository)(nil)
