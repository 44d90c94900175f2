package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/agendalivre/platform-api/internal/httperr"
	"github.com/agendalivre/platform-api/internal/httpresp"
	"github.com/agendalivre/platform-api/internal/models"
)

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

type ClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

func (h *ClientHandler) List(c *gin.Context) {
	tenantID, ok := resolveTenant(c)
	if !ok {
		return
	}

	var clients []models.Client
	if err := h.db.
		Where("tenant_id = ?", tenantID).
		Order("name ASC").
		Find(&clients).Error; err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, clients)
}

func (h *ClientHandler) Create(c *gin.Context) {
	tenantID, ok := resolveTenant(c)
	if !ok {
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	client := models.Client{
		TenantID: tenantID,
		Name:     req.Name,
		Phone:    req.Phone,
		Email:    req.Email,
	}

	if err := h.db.Create(&client).Error; err != nil {
		respondError(c, err)
		return
	}

	httpresp.Created(c, client)
}
