package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ledgerdomain "github.com/agendalivre/platform-api/internal/domain/ledger"
	domain "github.com/agendalivre/platform-api/internal/domain/order"
	"github.com/agendalivre/platform-api/internal/httperr"
	"github.com/agendalivre/platform-api/internal/models"
	"github.com/agendalivre/platform-api/internal/testutil"
)

func (e *env) seedOrder(t *testing.T, productID string, qty int) *models.Order {
	t.Helper()

	o, err := e.createUC().Execute(context.Background(), CreateOrderInput{
		TenantID:      e.tenant.ID,
		ClientID:      e.client.ID,
		Items:         []OrderItemInput{{ProductID: productID, Quantity: qty}},
		PaymentMethod: "pix",
	})
	require.NoError(t, err)
	return o
}

func TestCancelOrder_RestoresStockAndVoidsTransaction(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	shampoo := testutil.SeedProduct(t, e.db, e.tenant.ID, "Shampoo", 25, 5)
	o := e.seedOrder(t, shampoo.ID, 3)
	require.Equal(t, 2, e.stockOf(t, shampoo.ID))

	cancelled, err := e.cancelUC().Execute(ctx, e.tenant.ID, o.ID, nil)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), cancelled.Status)
	assert.NotNil(t, cancelled.CancelledAt)

	// Estoque de volta ao original.
	assert.Equal(t, 5, e.stockOf(t, shampoo.ID))

	// Lançamento estornado, não apagado.
	posted, err := e.ledgerRepo.FindPostedBySource(
		ctx, e.tenant.ID, ledgerdomain.SourceOrder, o.ID)
	require.NoError(t, err)
	assert.Nil(t, posted)

	var tx models.FinancialTransaction
	require.NoError(t, e.db.
		Where("tenant_id = ? AND source = ? AND source_id = ?",
			e.tenant.ID, string(ledgerdomain.SourceOrder), o.ID).
		First(&tx).Error)
	assert.Equal(t, string(ledgerdomain.StatusVoided), tx.Status)
	assert.NotNil(t, tx.VoidedAt)
}

func TestCancelOrder_InvalidStates(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	cancel := e.cancelUC()

	shampoo := testutil.SeedProduct(t, e.db, e.tenant.ID, "Shampoo", 25, 10)

	// Duas vezes não.
	o := e.seedOrder(t, shampoo.ID, 1)
	_, err := cancel.Execute(ctx, e.tenant.ID, o.ID, nil)
	require.NoError(t, err)

	_, err = cancel.Execute(ctx, e.tenant.ID, o.ID, nil)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	assert.Equal(t, 10, e.stockOf(t, shampoo.ID), "estoque devolvido uma vez só")

	// Entregue não cancela.
	delivered := e.seedOrder(t, shampoo.ID, 1)
	require.NoError(t, e.db.Model(&models.Order{}).
		Where("id = ?", delivered.ID).
		Update("status", string(domain.StatusDelivered)).Error)

	_, err = cancel.Execute(ctx, e.tenant.ID, delivered.ID, nil)
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))

	_, err = cancel.Execute(ctx, e.tenant.ID, "no-such-order", nil)
	assert.True(t, httperr.IsBusiness(err, "order_not_found"))
}

func TestUpdateOrderStatus_StepByStep(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	uc := NewUpdateOrderStatus(e.repo, e.audit)

	shampoo := testutil.SeedProduct(t, e.db, e.tenant.ID, "Shampoo", 25, 10)
	o := e.seedOrder(t, shampoo.ID, 1)

	// Pular estágio não pode.
	_, err := uc.Execute(ctx, e.tenant.ID, o.ID, domain.StatusReady, nil)
	assert.True(t, httperr.IsBusiness(err, "invalid_status_transition"))

	for _, target := range []domain.Status{
		domain.StatusPreparing,
		domain.StatusReady,
		domain.StatusDelivered,
	} {
		updated, err := uc.Execute(ctx, e.tenant.ID, o.ID, target, nil)
		require.NoError(t, err)
		assert.Equal(t, string(target), updated.Status)
	}

	// Entregue é terminal.
	_, err = uc.Execute(ctx, e.tenant.ID, o.ID, domain.StatusPending, nil)
	assert.True(t, httperr.IsBusiness(err, "invalid_status_transition"))
}
