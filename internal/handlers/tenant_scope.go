package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/agendalivre/platform-api/internal/authz"
	"github.com/agendalivre/platform-api/internal/httperr"
	"github.com/agendalivre/platform-api/internal/middleware"
)

// resolveTenant determina o tenant alvo da operação e valida a
// capacidade do chamador sobre ele. Admins podem mirar outro tenant
// via query string; os demais operam sempre no próprio.
func resolveTenant(c *gin.Context) (string, bool) {
	caller := middleware.CallerFrom(c)

	tenantID := caller.TenantID
	if override := c.Query("tenant_id"); override != "" {
		tenantID = override
	}

	if !authz.CanActOnTenant(caller, tenantID) {
		httperr.Forbidden(c, "tenant_forbidden", "Sem acesso a este tenant.")
		return "", false
	}

	return tenantID, true
}

func actorID(c *gin.Context) *string {
	caller := middleware.CallerFrom(c)
	if caller.UserID == "" {
		return nil
	}
	id := caller.UserID
	return &id
}
