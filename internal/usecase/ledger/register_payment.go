package ledger

import (
	"context"

	"github.com/agendalivre/platform-api/internal/audit"
	apptdomain "github.com/agendalivre/platform-api/internal/domain/appointment"
	"github.com/agendalivre/platform-api/internal/domain/catalog"
	"github.com/agendalivre/platform-api/internal/httperr"
	"github.com/agendalivre/platform-api/internal/models"
	"github.com/agendalivre/platform-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type RegisterAppointmentPaymentInput struct {
	TenantID      string
	AppointmentID string
	ActorID       *string

	PaymentMethod string
	Discount      *float64
	DiscountType  *string // "amount" | "percent"
}

// ======================================================
// USE CASE
// ======================================================

// RegisterAppointmentPayment grava o pagamento de um atendimento
// concluído e deriva o lançamento de receita correspondente.
type RegisterAppointmentPayment struct {
	apptRepo apptdomain.Repository
	derive   *CreateTransactionFromAppointment
	audit    *audit.Dispatcher
}

func NewRegisterAppointmentPayment(
	apptRepo apptdomain.Repository,
	derive *CreateTransactionFromAppointment,
	audit *audit.Dispatcher,
) *RegisterAppointmentPayment {
	return &RegisterAppointmentPayment{
		apptRepo: apptRepo,
		derive:   derive,
		audit:    audit,
	}
}

func (uc *RegisterAppointmentPayment) Execute(
	ctx context.Context,
	in RegisterAppointmentPaymentInput,
) (*models.Appointment, error) {

	tenant, err := uc.apptRepo.GetTenantByID(ctx, in.TenantID)
	if err != nil {
		return nil, err
	}

	ap, err := uc.apptRepo.GetAppointment(ctx, in.TenantID, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	// Total bruto pela janela promocional avaliada na data do
	// atendimento, serviço a serviço.
	originalTotal := 0.0
	for i := range ap.Services {
		originalTotal += catalog.EffectiveValue(&ap.Services[i], ap.Date)
	}

	now := timezone.NowIn(tenant.Timezone)
	if err := apptdomain.RegisterPayment(
		ap,
		in.PaymentMethod,
		in.Discount,
		in.DiscountType,
		originalTotal,
		now,
	); err != nil {
		return nil, err
	}

	if err := uc.apptRepo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	if _, err := uc.derive.Execute(
		ctx,
		in.TenantID,
		ap.ID,
		in.PaymentMethod,
		*ap.PaymentAmount,
	); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		TenantID: in.TenantID,
		UserID:   in.ActorID,
		Action:   "appointment_payment_registered",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
