package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/agendalivre/platform-api/internal/httperr"
)

var notFoundCodes = map[string]bool{
	"service_not_found":     true,
	"appointment_not_found": true,
	"product_not_found":     true,
	"order_not_found":       true,
	"client_not_found":      true,
	"category_not_found":    true,
}

var conflictCodes = map[string]bool{
	"insufficient_stock":        true,
	"already_paid":              true,
	"not_completed":             true,
	"invalid_state":             true,
	"invalid_status_transition": true,
	"product_inactive":          true,
}

// respondError traduz os erros de negócio para HTTP. Falhas
// inesperadas de persistência são logadas por inteiro e respondidas
// como erro genérico.
func respondError(c *gin.Context, err error) {
	if ce, ok := httperr.AsConflict(err); ok {
		httperr.WriteConflict(c, ce)
		return
	}

	if code, ok := httperr.BusinessCode(err); ok {
		switch {
		case notFoundCodes[code]:
			httperr.NotFound(c, code, "Registro não encontrado.")
		case conflictCodes[code]:
			httperr.Conflict(c, code, "Operação não permitida no estado atual.")
		default:
			httperr.BadRequest(c, code, "Dados inválidos.")
		}
		return
	}

	logrus.WithError(err).
		WithField("path", c.FullPath()).
		Error("unexpected error")
	httperr.Internal(c, "internal_error", "Erro interno.")
}
