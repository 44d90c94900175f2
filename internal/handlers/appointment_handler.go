package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/agendalivre/platform-api/internal/httperr"
	"github.com/agendalivre/platform-api/internal/httpresp"
	"github.com/agendalivre/platform-api/internal/models"
	ucAppointment "github.com/agendalivre/platform-api/internal/usecase/appointment"
	ucLedger "github.com/agendalivre/platform-api/internal/usecase/ledger"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create          *ucAppointment.CreateAppointment
	update          *ucAppointment.UpdateAppointment
	cancel          *ucAppointment.CancelAppointment
	complete        *ucAppointment.CompleteAppointment
	findOrphans     *ucAppointment.FindOrphanAppointments
	fixOrphans      *ucAppointment.FixOrphanAppointments
	registerPayment *ucLedger.RegisterAppointmentPayment
	listByDate      *ucAppointment.ListAppointmentsByDate
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	update *ucAppointment.UpdateAppointment,
	cancel *ucAppointment.CancelAppointment,
	complete *ucAppointment.CompleteAppointment,
	findOrphans *ucAppointment.FindOrphanAppointments,
	fixOrphans *ucAppointment.FixOrphanAppointments,
	registerPayment *ucLedger.RegisterAppointmentPayment,
	listByDate *ucAppointment.ListAppointmentsByDate,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:          create,
		update:          update,
		cancel:          cancel,
		complete:        complete,
		findOrphans:     findOrphans,
		fixOrphans:      fixOrphans,
		registerPayment: registerPayment,
		listByDate:      listByDate,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientID       string   `json:"clientId" binding:"required"`
	ServiceIDs     []string `json:"serviceIds"`
	Date           string   `json:"date" binding:"required"`
	Time           string   `json:"time" binding:"required"`
	ProfessionalID *string  `json:"professionalId"`
	Status         string   `json:"status"`
	Notes          string   `json:"notes"`
}

type UpdateAppointmentRequest struct {
	ClientID       *string   `json:"clientId"`
	ServiceIDs     *[]string `json:"serviceIds"`
	Date           *string   `json:"date"`
	Time           *string   `json:"time"`
	ProfessionalID *string   `json:"professionalId"`
	Notes          *string   `json:"notes"`
}

type RegisterPaymentRequest struct {
	PaymentMethod string   `json:"paymentMethod" binding:"required"`
	Discount      *float64 `json:"discount"`
	DiscountType  *string  `json:"discountType"`
}

type FixOrphansRequest struct {
	DefaultServiceID string `json:"defaultServiceId" binding:"required"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	tenantID, ok := resolveTenant(c)
	if !ok {
		return
	}

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		TenantID:       tenantID,
		ActorID:        actorID(c),
		ClientID:       req.ClientID,
		ProfessionalID: req.ProfessionalID,
		ServiceIDs:     req.ServiceIDs,
		Date:           req.Date,
		Time:           req.Time,
		Status:         req.Status,
		Notes:          req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	tenantID, ok := resolveTenant(c)
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), ucAppointment.UpdateAppointmentInput{
		TenantID:       tenantID,
		AppointmentID:  c.Param("id"),
		ActorID:        actorID(c),
		ClientID:       req.ClientID,
		ProfessionalID: req.ProfessionalID,
		ServiceIDs:     req.ServiceIDs,
		Date:           req.Date,
		Time:           req.Time,
		Notes:          req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	tenantID, ok := resolveTenant(c)
	if !ok {
		return
	}

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Informe a data.")
		return
	}

	apps, err := h.listByDate.Execute(c.Request.Context(), tenantID, date)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.List(c, apps)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	tenantID, ok := resolveTenant(c)
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), tenantID, c.Param("id"), actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	tenantID, ok := resolveTenant(c)
	if !ok {
		return
	}

	ap, err := h.complete.Execute(c.Request.Context(), tenantID, c.Param("id"), actorID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) RegisterPayment(c *gin.Context) {
	tenantID, ok := resolveTenant(c)
	if !ok {
		return
	}

	var req RegisterPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.registerPayment.Execute(c.Request.Context(), ucLedger.RegisterAppointmentPaymentInput{
		TenantID:      tenantID,
		AppointmentID: c.Param("id"),
		ActorID:       actorID(c),
		PaymentMethod: req.PaymentMethod,
		Discount:      req.Discount,
		DiscountType:  req.DiscountType,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) ListOrphans(c *gin.Context) {
	tenantID, ok := resolveTenant(c)
	if !ok {
		return
	}

	orphans, err := h.findOrphans.Execute(c.Request.Context(), tenantID)
	if err != nil {
		respondError(c, err)
		return
	}

	if orphans == nil {
		orphans = []models.Appointment{}
	}
	httpresp.List(c, orphans)
}

func (h *AppointmentHandler) FixOrphans(c *gin.Context) {
	tenantID, ok := resolveTenant(c)
	if !ok {
		return
	}

	var req FixOrphansRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	report, err := h.fixOrphans.Execute(
		c.Request.Context(), tenantID, req.DefaultServiceID, actorID(c),
	)
	if err != nil {
		respondError(c, err)
		return
	}

	httpresp.OK(c, report)
}
