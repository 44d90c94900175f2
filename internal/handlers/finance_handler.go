package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	ledgerdomain "github.com/agendalivre/platform-api/internal/domain/ledger"
	"github.com/agendalivre/platform-api/internal/httperr"
	"github.com/agendalivre/platform-api/internal/httpresp"
	"github.com/agendalivre/platform-api/internal/models"
	ucLedger "github.com/agendalivre/platform-api/internal/usecase/ledger"
)

type FinanceHandler struct {
	db           *gorm.DB
	createManual *ucLedger.CreateManualTransaction
	summary      *ucLedger.GetFinancialSummary
	list         *ucLedger.ListTransactions
}

func NewFinanceHandler(
	db *gorm.DB,
	createManual *ucLedger.CreateManualTransaction,
	summary *ucLedger.GetFinancialSummary,
	list *ucLedger.ListTransactions,
) *FinanceHandler {
	return &FinanceHandler{
		db:           db,
		createManual: createManual,
		summary:      summary,
		list:         list,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ManualTransactionRequest struct {
	CategoryID    *string `json:"categoryId"`
	Title         string  `json:"title" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
	PaymentMethod string  `json:"paymentMethod"`
	Date          string  `json:"date"`
}

type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required"`
	Type string `json:"type" binding:"required"`
}

// ======================================================
// TRANSACTIONS
// ======================================================

func (h *FinanceHandler) CreateIncome(c *gin.Context) {
	h.createTransaction(c, ledgerdomain.TypeIncome)
}

func (h *FinanceHandler) CreateExpense(c *gin.Context) {
	h.createTransaction(c, ledgerdomain.TypeExpense)
}

func (h *FinanceHandler) createTransaction(c *gin.Context, typ ledgerdomain.Type) {
	tenantID, ok := resolveTenant(c)
	if !ok {
		return
	}

	var req ManualTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	t, err := h.createManual.Execute(c.Request.Context(), ucLedger.CreateManualTransactionInput{
		TenantID:      tenantID,
		ActorID:       actorID(c),
		Type:          typ,
		CategoryID:    req.CategoryID,
		Title:         req.Title,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Date:          req.Date,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.Created(c, t)
}

func (h *FinanceHandler) Summary(c *gin.Context) {
	tenantID, ok := resolveTenant(c)
	if !ok {
		return
	}

	s, err := h.summary.Execute(
		c.Request.Context(),
		tenantID,
		c.Query("start"),
		c.Query("end"),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, s)
}

func (h *FinanceHandler) ListTransactions(c *gin.Context) {
	tenantID, ok := resolveTenant(c)
	if !ok {
		return
	}

	txs, err := h.list.Execute(
		c.Request.Context(),
		tenantID,
		c.Query("start"),
		c.Query("end"),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, txs)
}

// ======================================================
// CATEGORIES (CRUD leve)
// ======================================================

func (h *FinanceHandler) ListCategories(c *gin.Context) {
	tenantID, ok := resolveTenant(c)
	if !ok {
		return
	}

	var cats []models.FinancialCategory
	if err := h.db.
		Where("tenant_id = ?", tenantID).
		Order("name ASC").
		Find(&cats).Error; err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, cats)
}

func (h *FinanceHandler) CreateCategory(c *gin.Context) {
	tenantID, ok := resolveTenant(c)
	if !ok {
		return
	}

	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	if req.Type != string(ledgerdomain.TypeIncome) && req.Type != string(ledgerdomain.TypeExpense) {
		httperr.BadRequest(c, "invalid_category_type", "Tipo de categoria inválido.")
		return
	}

	cat := models.FinancialCategory{
		TenantID: tenantID,
		Name:     req.Name,
		Type:     req.Type,
	}

	if err := h.db.Create(&cat).Error; err != nil {
		respondError(c, err)
		return
	}

	httpresp.Created(c, cat)
}
