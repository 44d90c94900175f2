package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Appointment struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	TenantID string `gorm:"size:36;index:idx_appointments_tenant_date" json:"tenant_id"`

	ClientID string `gorm:"size:36;index" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	ProfessionalID *string `gorm:"size:36" json:"professional_id"`

	Services []Service `gorm:"many2many:appointment_services;" json:"services"`

	// Slot agendado: data "YYYY-MM-DD", hora "HH:MM", duração em minutos.
	Date        string `gorm:"size:10;index:idx_appointments_tenant_date" json:"date"`
	Time        string `gorm:"size:5" json:"time"`
	DurationMin int    `json:"duration_min"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`
	Notes  string `gorm:"size:255" json:"notes"`

	PaymentMethod       *string    `gorm:"size:30" json:"payment_method"`
	PaymentAmount       *float64   `json:"payment_amount"`
	PaymentDiscount     *float64   `json:"payment_discount"`
	PaymentDiscountType *string    `gorm:"size:10" json:"payment_discount_type"`
	PaymentRegisteredAt *time.Time `json:"payment_registered_at"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Appointment) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
