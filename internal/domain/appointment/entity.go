package appointment

import (
	"time"

	"github.com/agendalivre/platform-api/internal/httperr"
	"github.com/agendalivre/platform-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

func Cancel(ap *models.Appointment, now time.Time) error {
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

const (
	DiscountTypeAmount  = "amount"
	DiscountTypePercent = "percent"
)

// RegisterPayment aplica o pagamento sobre um agendamento concluído.
// Válido uma única vez; o valor final nunca fica negativo.
func RegisterPayment(
	ap *models.Appointment,
	method string,
	discount *float64,
	discountType *string,
	originalTotal float64,
	now time.Time,
) error {

	if Status(ap.Status) != StatusCompleted {
		return httperr.ErrBusiness("not_completed")
	}
	if ap.PaymentRegisteredAt != nil {
		return httperr.ErrBusiness("already_paid")
	}

	amount := originalTotal
	if discount != nil {
		if discountType != nil && *discountType == DiscountTypePercent {
			amount -= originalTotal * (*discount / 100)
		} else {
			amount -= *discount
		}
	}
	if amount < 0 {
		amount = 0
	}

	ap.PaymentMethod = &method
	ap.PaymentAmount = &amount
	ap.PaymentDiscount = discount
	ap.PaymentDiscountType = discountType
	ap.PaymentRegisteredAt = &now
	return nil
}
