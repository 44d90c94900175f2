package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Order struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	TenantID string `gorm:"size:36;index" json:"tenant_id"`

	ClientID string `gorm:"size:36;index" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	// Sequencial por tenant, atribuído na criação.
	OrderNumber int `json:"order_number"`

	Items []OrderItem `gorm:"constraint:OnDelete:CASCADE;" json:"items"`

	Status          string  `gorm:"size:20;default:'pending'" json:"status"`
	Total           float64 `json:"total"`
	PaymentMethod   string  `gorm:"size:30" json:"payment_method"`
	Notes           string  `gorm:"size:255" json:"notes"`
	DeliveryAddress string  `gorm:"size:255" json:"delivery_address"`
	ClientAddressID *string `gorm:"size:36" json:"client_address_id"`

	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

type OrderItem struct {
	ID      string `gorm:"primaryKey;size:36" json:"id"`
	OrderID string `gorm:"size:36;index" json:"order_id"`

	ProductID   string `gorm:"size:36" json:"product_id"`
	ProductName string `gorm:"size:100" json:"product_name"`

	Quantity int `json:"quantity"`

	// Preço vigente no momento da criação do pedido; mudanças
	// posteriores no produto não afetam o item.
	UnitPrice float64 `json:"unit_price"`
	Subtotal  float64 `json:"subtotal"`

	CreatedAt time.Time `json:"created_at"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
