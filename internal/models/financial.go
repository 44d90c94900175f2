package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FinancialCategory struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	TenantID string `gorm:"size:36;index" json:"tenant_id"`

	Name string `gorm:"size:100;not null" json:"name"`
	Type string `gorm:"size:10" json:"type"` // income | expense

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *FinancialCategory) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

type FinancialTransaction struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	TenantID string `gorm:"size:36;index:idx_transactions_tenant_source" json:"tenant_id"`

	Type string `gorm:"size:10;not null" json:"type"` // income | expense

	// Origem do lançamento. Para source != manual vale no máximo um
	// lançamento posted por (tenant, source, source_id).
	Source   string  `gorm:"size:20;default:'manual';index:idx_transactions_tenant_source" json:"source"`
	SourceID *string `gorm:"size:36;index:idx_transactions_tenant_source" json:"source_id"`

	CategoryID *string `gorm:"size:36" json:"category_id"`
	// Nome da categoria congelado na criação; renomear a categoria não
	// altera lançamentos históricos.
	CategoryName string `gorm:"size:100" json:"category_name"`

	Title         string  `gorm:"size:255" json:"title"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `gorm:"size:30" json:"payment_method"`

	Date string `gorm:"size:10;index" json:"date"`

	Status   string     `gorm:"size:10;default:'posted'" json:"status"` // posted | voided
	VoidedAt *time.Time `json:"voided_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (t *FinancialTransaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
