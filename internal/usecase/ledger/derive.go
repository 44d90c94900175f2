package ledger

import (
	"context"
	"fmt"

	"github.com/agendalivre/platform-api/internal/audit"
	"github.com/agendalivre/platform-api/internal/cache"
	apptdomain "github.com/agendalivre/platform-api/internal/domain/appointment"
	domain "github.com/agendalivre/platform-api/internal/domain/ledger"
	orderdomain "github.com/agendalivre/platform-api/internal/domain/order"
	"github.com/agendalivre/platform-api/internal/httperr"
	"github.com/agendalivre/platform-api/internal/models"
	"github.com/agendalivre/platform-api/internal/timezone"
)

// ======================================================
// FROM APPOINTMENT
// ======================================================

// CreateTransactionFromAppointment deriva o lançamento de receita de
// um atendimento. Idempotente: já existindo lançamento posted para a
// origem, ele é devolvido sem alteração.
type CreateTransactionFromAppointment struct {
	repo     domain.Repository
	apptRepo apptdomain.Repository
	cache    *cache.SummaryCache
	audit    *audit.Dispatcher
}

func NewCreateTransactionFromAppointment(
	repo domain.Repository,
	apptRepo apptdomain.Repository,
	summaryCache *cache.SummaryCache,
	audit *audit.Dispatcher,
) *CreateTransactionFromAppointment {
	return &CreateTransactionFromAppointment{
		repo:     repo,
		apptRepo: apptRepo,
		cache:    summaryCache,
		audit:    audit,
	}
}

func (uc *CreateTransactionFromAppointment) Execute(
	ctx context.Context,
	tenantID string,
	appointmentID string,
	paymentMethod string,
	amount float64,
) (*models.FinancialTransaction, error) {

	existing, err := uc.repo.FindPostedBySource(
		ctx, tenantID, domain.SourceAppointment, appointmentID,
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	ap, err := uc.apptRepo.GetAppointment(ctx, tenantID, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	tenant, err := uc.repo.GetTenantByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	title := "Atendimento"
	if ap.Client.Name != "" {
		title = fmt.Sprintf("Atendimento - %s", ap.Client.Name)
	}

	sourceID := ap.ID
	t := &models.FinancialTransaction{
		TenantID:      tenantID,
		Type:          string(domain.TypeIncome),
		Source:        string(domain.SourceAppointment),
		SourceID:      &sourceID,
		Title:         title,
		Amount:        amount,
		PaymentMethod: paymentMethod,
		// Lançado na data corrente, não na data do atendimento.
		Date:   timezone.TodayIn(tenant.Timezone),
		Status: string(domain.StatusPosted),
	}

	if cat, err := uc.repo.GetCategoryByName(
		ctx, tenantID, domain.CategoryServices,
	); err == nil && cat != nil {
		t.CategoryID = &cat.ID
		t.CategoryName = cat.Name
	}

	if err := uc.repo.CreateTransaction(ctx, t); err != nil {
		return nil, err
	}

	uc.cache.InvalidateTenant(ctx, tenantID)

	uc.audit.Dispatch(audit.Event{
		TenantID: tenantID,
		Action:   "transaction_derived",
		Entity:   "financial_transaction",
		EntityID: &t.ID,
		Metadata: map[string]string{"source": "appointment", "source_id": ap.ID},
	})

	return t, nil
}

// ======================================================
// FROM ORDER
// ======================================================

type CreateTransactionFromOrder struct {
	repo      domain.Repository
	orderRepo orderdomain.Repository
	cache     *cache.SummaryCache
	audit     *audit.Dispatcher
}

func NewCreateTransactionFromOrder(
	repo domain.Repository,
	orderRepo orderdomain.Repository,
	summaryCache *cache.SummaryCache,
	audit *audit.Dispatcher,
) *CreateTransactionFromOrder {
	return &CreateTransactionFromOrder{
		repo:      repo,
		orderRepo: orderRepo,
		cache:     summaryCache,
		audit:     audit,
	}
}

func (uc *CreateTransactionFromOrder) Execute(
	ctx context.Context,
	tenantID string,
	orderID string,
) (*models.FinancialTransaction, error) {

	existing, err := uc.repo.FindPostedBySource(
		ctx, tenantID, domain.SourceOrder, orderID,
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	o, err := uc.orderRepo.GetOrderByID(ctx, tenantID, orderID)
	if err != nil {
		return nil, httperr.ErrBusiness("order_not_found")
	}

	tenant, err := uc.repo.GetTenantByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	title := fmt.Sprintf("Venda #%d", o.OrderNumber)
	if o.Client.Name != "" {
		title = fmt.Sprintf("Venda #%d - %s", o.OrderNumber, o.Client.Name)
	}

	sourceID := o.ID
	t := &models.FinancialTransaction{
		TenantID:      tenantID,
		Type:          string(domain.TypeIncome),
		Source:        string(domain.SourceOrder),
		SourceID:      &sourceID,
		Title:         title,
		Amount:        o.Total,
		PaymentMethod: o.PaymentMethod,
		Date:          timezone.TodayIn(tenant.Timezone),
		Status:        string(domain.StatusPosted),
	}

	if cat, err := uc.repo.GetCategoryByName(
		ctx, tenantID, domain.CategorySales,
	); err == nil && cat != nil {
		t.CategoryID = &cat.ID
		t.CategoryName = cat.Name
	}

	if err := uc.repo.CreateTransaction(ctx, t); err != nil {
		return nil, err
	}

	uc.cache.InvalidateTenant(ctx, tenantID)

	uc.audit.Dispatch(audit.Event{
		TenantID: tenantID,
		Action:   "transaction_derived",
		Entity:   "financial_transaction",
		EntityID: &t.ID,
		Metadata: map[string]string{"source": "order", "source_id": o.ID},
	})

	return t, nil
}
