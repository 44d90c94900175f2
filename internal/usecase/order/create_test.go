package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/agendalivre/platform-api/internal/audit"
	ledgerdomain "github.com/agendalivre/platform-api/internal/domain/ledger"
	domain "github.com/agendalivre/platform-api/internal/domain/order"
	"github.com/agendalivre/platform-api/internal/httperr"
	infrarepo "github.com/agendalivre/platform-api/internal/infra/repository"
	"github.com/agendalivre/platform-api/internal/models"
	"github.com/agendalivre/platform-api/internal/testutil"
	ucledger "github.com/agendalivre/platform-api/internal/usecase/ledger"
)

type env struct {
	db         *gorm.DB
	repo       domain.Repository
	ledgerRepo *infrarepo.LedgerGormRepository
	audit      *audit.Dispatcher
	tenant     *models.Tenant
	client     *models.Client
}

func newEnv(t *testing.T) *env {
	t.Helper()

	db := testutil.NewDB(t)
	tenant := testutil.SeedTenant(t, db)

	return &env{
		db:         db,
		repo:       infrarepo.NewOrderGormRepository(db),
		ledgerRepo: infrarepo.NewLedgerGormRepository(db),
		audit:      audit.NewDispatcher(audit.New(db)),
		tenant:     tenant,
		client:     testutil.SeedClient(t, db, tenant.ID, "Maria"),
	}
}

func (e *env) createUC() *CreateOrder {
	derive := ucledger.NewCreateTransactionFromOrder(e.ledgerRepo, e.repo, nil, e.audit)
	return NewCreateOrder(e.repo, derive, e.audit)
}

func (e *env) cancelUC() *CancelOrder {
	void := ucledger.NewVoidTransactionBySource(e.ledgerRepo, nil, e.audit)
	return NewCancelOrder(e.repo, void, e.audit)
}

func (e *env) stockOf(t *testing.T, productID string) int {
	t.Helper()

	var p models.Product
	require.NoError(t, e.db.First(&p, "id = ?", productID).Error)
	return p.StockQuantity
}

func TestCreateOrder(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	shampoo := testutil.SeedProduct(t, e.db, e.tenant.ID, "Shampoo", 25, 5)

	o, err := e.createUC().Execute(ctx, CreateOrderInput{
		TenantID:      e.tenant.ID,
		ClientID:      e.client.ID,
		Items:         []OrderItemInput{{ProductID: shampoo.ID, Quantity: 3}},
		PaymentMethod: "pix",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, o.OrderNumber)
	assert.Equal(t, string(domain.StatusPending), o.Status)
	assert.Equal(t, 75.0, o.Total)

	require.Len(t, o.Items, 1)
	assert.Equal(t, 25.0, o.Items[0].UnitPrice)
	assert.Equal(t, 75.0, o.Items[0].Subtotal)
	assert.Equal(t, "Shampoo", o.Items[0].ProductName)

	// Baixa de estoque: 5 - 3.
	assert.Equal(t, 2, e.stockOf(t, shampoo.ID))

	// Lançamento de receita derivado do pedido.
	tx, err := e.ledgerRepo.FindPostedBySource(
		ctx, e.tenant.ID, ledgerdomain.SourceOrder, o.ID)
	require.NoError(t, err)
	require.NotNil(t, tx)
	assert.Equal(t, 75.0, tx.Amount)
	assert.Equal(t, "Venda #1 - Maria", tx.Title)

	// Numeração sequencial por tenant.
	second, err := e.createUC().Execute(ctx, CreateOrderInput{
		TenantID:      e.tenant.ID,
		ClientID:      e.client.ID,
		Items:         []OrderItemInput{{ProductID: shampoo.ID, Quantity: 1}},
		PaymentMethod: "cash",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, second.OrderNumber)
}

func TestCreateOrder_PriceSnapshot(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	shampoo := testutil.SeedProduct(t, e.db, e.tenant.ID, "Shampoo", 25, 10)

	o, err := e.createUC().Execute(ctx, CreateOrderInput{
		TenantID:      e.tenant.ID,
		ClientID:      e.client.ID,
		Items:         []OrderItemInput{{ProductID: shampoo.ID, Quantity: 2}},
		PaymentMethod: "pix",
	})
	require.NoError(t, err)

	// Reajuste posterior não toca o item gravado.
	require.NoError(t, e.db.Model(&models.Product{}).
		Where("id = ?", shampoo.ID).Update("price", 40).Error)

	stored, err := e.repo.GetOrderByID(ctx, e.tenant.ID, o.ID)
	require.NoError(t, err)
	assert.Equal(t, 25.0, stored.Items[0].UnitPrice)
	assert.Equal(t, 50.0, stored.Total)
}

func TestCreateOrder_UnmanagedStockNotTouched(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()

	brinde := &models.Product{
		TenantID:      e.tenant.ID,
		Name:          "Brinde",
		Price:         10,
		Active:        true,
		ManageStock:   false,
		StockQuantity: 1,
	}
	require.NoError(t, e.db.Create(brinde).Error)

	_, err := e.createUC().Execute(ctx, CreateOrderInput{
		TenantID:      e.tenant.ID,
		ClientID:      e.client.ID,
		Items:         []OrderItemInput{{ProductID: brinde.ID, Quantity: 5}},
		PaymentMethod: "pix",
	})
	require.NoError(t, err, "sem controle de estoque a quantidade não limita")
	assert.Equal(t, 1, e.stockOf(t, brinde.ID))
}

func TestCreateOrder_Validation(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	uc := e.createUC()

	shampoo := testutil.SeedProduct(t, e.db, e.tenant.ID, "Shampoo", 25, 2)

	_, err := uc.Execute(ctx, CreateOrderInput{
		TenantID: e.tenant.ID,
		ClientID: e.client.ID,
	})
	assert.True(t, httperr.IsBusiness(err, "at_least_one_item"))

	_, err = uc.Execute(ctx, CreateOrderInput{
		TenantID: e.tenant.ID,
		ClientID: "no-such-client",
		Items:    []OrderItemInput{{ProductID: shampoo.ID, Quantity: 1}},
	})
	assert.True(t, httperr.IsBusiness(err, "client_not_found"))

	_, err = uc.Execute(ctx, CreateOrderInput{
		TenantID: e.tenant.ID,
		ClientID: e.client.ID,
		Items:    []OrderItemInput{{ProductID: shampoo.ID, Quantity: 0}},
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_quantity"))

	_, err = uc.Execute(ctx, CreateOrderInput{
		TenantID: e.tenant.ID,
		ClientID: e.client.ID,
		Items:    []OrderItemInput{{ProductID: "no-such-product", Quantity: 1}},
	})
	assert.True(t, httperr.IsBusiness(err, "product_not_found"))

	_, err = uc.Execute(ctx, CreateOrderInput{
		TenantID: e.tenant.ID,
		ClientID: e.client.ID,
		Items:    []OrderItemInput{{ProductID: shampoo.ID, Quantity: 3}},
	})
	assert.True(t, httperr.IsBusiness(err, "insufficient_stock"))
	assert.Equal(t, 2, e.stockOf(t, shampoo.ID), "falha não baixa estoque")

	inactive := &models.Product{
		TenantID: e.tenant.ID,
		Name:     "Descontinuado",
		Price:    10,
		Active:   false,
	}
	require.NoError(t, e.db.Create(inactive).Error)

	_, err = uc.Execute(ctx, CreateOrderInput{
		TenantID: e.tenant.ID,
		ClientID: e.client.ID,
		Items:    []OrderItemInput{{ProductID: inactive.ID, Quantity: 1}},
	})
	assert.True(t, httperr.IsBusiness(err, "product_inactive"))
}
