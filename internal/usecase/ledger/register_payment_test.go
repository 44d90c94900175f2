package ledger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apptdomain "github.com/agendalivre/platform-api/internal/domain/appointment"
	domain "github.com/agendalivre/platform-api/internal/domain/ledger"
	"github.com/agendalivre/platform-api/internal/httperr"
	"github.com/agendalivre/platform-api/internal/models"
	"github.com/agendalivre/platform-api/internal/testutil"
)

func (e *env) paymentUC() *RegisterAppointmentPayment {
	derive := NewCreateTransactionFromAppointment(e.ledgerRepo, e.apptRepo, nil, e.audit)
	return NewRegisterAppointmentPayment(e.apptRepo, derive, e.audit)
}

func f(v float64) *float64 { return &v }
func s(v string) *string   { return &v }

func TestRegisterAppointmentPayment_FullFlow(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	corte := testutil.SeedService(t, e.db, e.tenant.ID, "Corte", 50, 30)
	barba := testutil.SeedService(t, e.db, e.tenant.ID, "Barba", 30, 20)
	ap := e.seedCompletedAppointment(t, []models.Service{*corte, *barba})

	uc := e.paymentUC()

	paid, err := uc.Execute(ctx, RegisterAppointmentPaymentInput{
		TenantID:      e.tenant.ID,
		AppointmentID: ap.ID,
		PaymentMethod: "pix",
	})
	require.NoError(t, err)

	require.NotNil(t, paid.PaymentAmount)
	assert.Equal(t, 80.0, *paid.PaymentAmount)
	assert.Equal(t, "pix", *paid.PaymentMethod)
	assert.NotNil(t, paid.PaymentRegisteredAt)

	// Lançamento de receita derivado com o valor pago.
	tx, err := e.ledgerRepo.FindPostedBySource(
		ctx, e.tenant.ID, domain.SourceAppointment, ap.ID)
	require.NoError(t, err)
	require.NotNil(t, tx)
	assert.Equal(t, 80.0, tx.Amount)
	assert.Equal(t, "pix", tx.PaymentMethod)
}

func TestRegisterAppointmentPayment_UsesPromotionalPriceOnDate(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	// Promoção cobre a data do atendimento: 40 em vez de 50.
	corte := &models.Service{
		TenantID:           e.tenant.ID,
		Name:               "Corte",
		Value:              50,
		DurationMin:        30,
		Active:             true,
		PromotionalValue:   f(40),
		PromotionStartDate: s("2025-03-01"),
		PromotionEndDate:   s("2025-03-31"),
	}
	require.NoError(t, e.db.Create(corte).Error)

	ap := e.seedCompletedAppointment(t, []models.Service{*corte})

	paid, err := e.paymentUC().Execute(ctx, RegisterAppointmentPaymentInput{
		TenantID:      e.tenant.ID,
		AppointmentID: ap.ID,
		PaymentMethod: "cash",
	})
	require.NoError(t, err)
	assert.Equal(t, 40.0, *paid.PaymentAmount)
}

func TestRegisterAppointmentPayment_Discounts(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	corte := testutil.SeedService(t, e.db, e.tenant.ID, "Corte", 100, 30)

	t.Run("percentual", func(t *testing.T) {
		ap := e.seedCompletedAppointment(t, []models.Service{*corte})

		paid, err := e.paymentUC().Execute(ctx, RegisterAppointmentPaymentInput{
			TenantID:      e.tenant.ID,
			AppointmentID: ap.ID,
			PaymentMethod: "pix",
			Discount:      f(20),
			DiscountType:  s(apptdomain.DiscountTypePercent),
		})
		require.NoError(t, err)
		assert.Equal(t, 80.0, *paid.PaymentAmount)
	})

	t.Run("valor maior que o total zera", func(t *testing.T) {
		ap := e.seedCompletedAppointment(t, []models.Service{*corte})

		paid, err := e.paymentUC().Execute(ctx, RegisterAppointmentPaymentInput{
			TenantID:      e.tenant.ID,
			AppointmentID: ap.ID,
			PaymentMethod: "pix",
			Discount:      f(150),
			DiscountType:  s(apptdomain.DiscountTypeAmount),
		})
		require.NoError(t, err)
		assert.Equal(t, 0.0, *paid.PaymentAmount)
	})
}

func TestRegisterAppointmentPayment_Guards(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	corte := testutil.SeedService(t, e.db, e.tenant.ID, "Corte", 100, 30)

	// Ainda agendado: sem pagamento.
	scheduled := &models.Appointment{
		TenantID:    e.tenant.ID,
		ClientID:    e.client.ID,
		Date:        "2025-03-10",
		Time:        "10:00",
		DurationMin: 30,
		Status:      string(apptdomain.StatusScheduled),
	}
	require.NoError(t, e.apptRepo.CreateAppointment(
		ctx, scheduled, []models.Service{*corte}))

	uc := e.paymentUC()

	_, err := uc.Execute(ctx, RegisterAppointmentPaymentInput{
		TenantID:      e.tenant.ID,
		AppointmentID: scheduled.ID,
		PaymentMethod: "pix",
	})
	assert.True(t, httperr.IsBusiness(err, "not_completed"))

	// Pagamento é único.
	done := e.seedCompletedAppointment(t, []models.Service{*corte})
	_, err = uc.Execute(ctx, RegisterAppointmentPaymentInput{
		TenantID:      e.tenant.ID,
		AppointmentID: done.ID,
		PaymentMethod: "pix",
	})
	require.NoError(t, err)

	_, err = uc.Execute(ctx, RegisterAppointmentPaymentInput{
		TenantID:      e.tenant.ID,
		AppointmentID: done.ID,
		PaymentMethod: "pix",
	})
	assert.True(t, httperr.IsBusiness(err, "already_paid"))
}
