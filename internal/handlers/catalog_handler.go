package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendalivre/platform-api/internal/httperr"
	"github.com/agendalivre/platform-api/internal/httpresp"
	"github.com/agendalivre/platform-api/internal/models"
)

// Serviços e produtos: CRUD leve, sem invariantes além do escopo por
// tenant. Alimentam o agendador, o catálogo de preços e os pedidos.
type CatalogHandler struct {
	db *gorm.DB
}

func NewCatalogHandler(db *gorm.DB) *CatalogHandler {
	return &CatalogHandler{db: db}
}

// ======================================================
// SERVICES
// ======================================================

type ServiceRequest struct {
	Name               string   `json:"name" binding:"required"`
	Category           string   `json:"category"`
	Value              float64  `json:"value"`
	DurationMin        int      `json:"durationMin"`
	Active             *bool    `json:"active"`
	PromotionalValue   *float64 `json:"promotionalValue"`
	PromotionStartDate *string  `json:"promotionStartDate"`
	PromotionEndDate   *string  `json:"promotionEndDate"`
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	tenantID, ok := resolveTenant(c)
	if !ok {
		return
	}

	var services []models.Service
	if err := h.db.
		Where("tenant_id = ?", tenantID).
		Order("name ASC").
		Find(&services).Error; err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, services)
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	tenantID, ok := resolveTenant(c)
	if !ok {
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	svc := models.Service{
		TenantID:           tenantID,
		Name:               req.Name,
		Category:           req.Category,
		Value:              req.Value,
		DurationMin:        req.DurationMin,
		Active:             true,
		PromotionalValue:   req.PromotionalValue,
		PromotionStartDate: req.PromotionStartDate,
		PromotionEndDate:   req.PromotionEndDate,
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := h.db.Create(&svc).Error; err != nil {
		respondError(c, err)
		return
	}

	httpresp.Created(c, svc)
}

func (h *CatalogHandler) UpdateService(c *gin.Context) {
	tenantID, ok := resolveTenant(c)
	if !ok {
		return
	}

	var svc models.Service
	if err := h.db.
		Where("id = ? AND tenant_id = ?", c.Param("id"), tenantID).
		First(&svc).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "Serviço não encontrado.")
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	svc.Name = req.Name
	svc.Category = req.Category
	svc.Value = req.Value
	svc.DurationMin = req.DurationMin
	svc.PromotionalValue = req.PromotionalValue
	svc.PromotionStartDate = req.PromotionStartDate
	svc.PromotionEndDate = req.PromotionEndDate
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := h.db.Save(&svc).Error; err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, svc)
}

// ======================================================
// PRODUCTS
// ======================================================

type ProductRequest struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	Active        *bool   `json:"active"`
	ManageStock   *bool   `json:"manageStock"`
	StockQuantity *int    `json:"stockQuantity"`
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	tenantID, ok := resolveTenant(c)
	if !ok {
		return
	}

	var products []models.Product
	if err := h.db.
		Where("tenant_id = ?", tenantID).
		Order("name ASC").
		Find(&products).Error; err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, products)
}

func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	tenantID, ok := resolveTenant(c)
	if !ok {
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	product := models.Product{
		TenantID:    tenantID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Active:      true,
	}
	if req.Active != nil {
		product.Active = *req.Active
	}
	if req.ManageStock != nil {
		product.ManageStock = *req.ManageStock
	}
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}

	if err := h.db.Create(&product).Error; err != nil {
		respondError(c, err)
		return
	}

	httpresp.Created(c, product)
}

func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	tenantID, ok := resolveTenant(c)
	if !ok {
		return
	}

	var product models.Product
	if err := h.db.
		Where("id = ? AND tenant_id = ?", c.Param("id"), tenantID).
		First(&product).Error; err != nil {
		httperr.NotFound(c, "product_not_found", "Produto não encontrado.")
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	if req.Active != nil {
		product.Active = *req.Active
	}
	if req.ManageStock != nil {
		product.ManageStock = *req.ManageStock
	}
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}

	if err := h.db.Save(&product).Error; err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, product)
}
