package handlers

import (
	"github.com/gin-gonic/gin"

	orderdomain "github.com/agendalivre/platform-api/internal/domain/order"
	"github.com/agendalivre/platform-api/internal/httperr"
	"github.com/agendalivre/platform-api/internal/httpresp"
	ucOrder "github.com/agendalivre/platform-api/internal/usecase/order"
)

type OrderHandler struct {
	create       *ucOrder.CreateOrder
	cancel       *ucOrder.CancelOrder
	updateStatus *ucOrder.UpdateOrderStatus
	repo         orderdomain.Repository
}

func NewOrderHandler(
	create *ucOrder.CreateOrder,
	cancel *ucOrder.CancelOrder,
	updateStatus *ucOrder.UpdateOrderStatus,
	repo orderdomain.Repository,
) *OrderHandler {
	return &OrderHandler{
		create:       create,
		cancel:       cancel,
		updateStatus: updateStatus,
		repo:         repo,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type OrderItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required"`
}

type CreateOrderRequest struct {
	ClientID        string             `json:"clientId" binding:"required"`
	Items           []OrderItemRequest `json:"items" binding:"required"`
	PaymentMethod   string             `json:"paymentMethod" binding:"required"`
	Notes           string             `json:"notes"`
	DeliveryAddress string             `json:"deliveryAddress"`
	ClientAddressID *string            `json:"clientAddressId"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *OrderHandler) Create(c *gin.Context) {
	tenantID, ok := resolveTenant(c)
	if !ok {
		return
	}

	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	items := make([]ucOrder.OrderItemInput, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, ucOrder.OrderItemInput{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
		})
	}

	o, err := h.create.Execute(c.Request.Context(), ucOrder.CreateOrderInput{
		TenantID:        tenantID,
		ActorID:         actorID(c),
		ClientID:        req.ClientID,
		Items:           items,
		PaymentMethod:   req.PaymentMethod,
		Notes:           req.Notes,
		DeliveryAddress: req.DeliveryAddress,
		ClientAddressID: req.ClientAddressID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.Created(c, o)
}

func (h *OrderHandler) List(c *gin.Context) {
	tenantID, ok := resolveTenant(c)
	if !ok {
		return
	}

	orders, err := h.repo.ListOrders(c.Request.Context(), tenantID)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, orders)
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	tenantID, ok := resolveTenant(c)
	if !ok {
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	o, err := h.updateStatus.Execute(
		c.Request.Context(),
		tenantID,
		c.Param("id"),
		orderdomain.Status(req.Status),
		actorID(c),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, o)
}

func (h *OrderHandler) Cancel(c *gin.Context) {
	tenantID, ok := resolveTenant(c)
	if !ok {
		return
	}

	o, err := h.cancel.Execute(c.Request.Context(), tenantID, c.Param("id"), actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, o)
}
