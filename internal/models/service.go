package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Service struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	TenantID string `gorm:"size:36;index" json:"tenant_id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Category    string  `gorm:"size:50" json:"category"`
	Value       float64 `json:"value"`
	DurationMin int     `json:"duration_min"`
	Active      bool    `gorm:"default:true" json:"active"`

	// Janela promocional: datas "YYYY-MM-DD", limites inclusivos.
	PromotionalValue   *float64 `json:"promotional_value"`
	PromotionStartDate *string  `gorm:"size:10" json:"promotion_start_date"`
	PromotionEndDate   *string  `gorm:"size:10" json:"promotion_end_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Service) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
