package httperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ConflictError carrega os detalhes de um conflito de horário de forma
// tipada, em vez de serializar JSON dentro da mensagem do erro.
type ConflictError struct {
	ConflictingAppointmentID string
	ConflictStart            string // "HH:MM"
	ConflictEnd              string // "HH:MM"
}

func (e ConflictError) Error() string {
	return fmt.Sprintf("appointment conflict with %s (%s-%s)",
		e.ConflictingAppointmentID, e.ConflictStart, e.ConflictEnd)
}

func AsConflict(err error) (ConflictError, bool) {
	var ce ConflictError
	ok := errors.As(err, &ce)
	return ce, ok
}

type conflictDetails struct {
	ConflictingAppointmentID string `json:"conflictingAppointmentId"`
	ConflictStart            string `json:"conflictStart"`
	ConflictEnd              string `json:"conflictEnd"`
	Message                  string `json:"message"`
}

type conflictBody struct {
	Error   string          `json:"error"`
	Code    string          `json:"code"`
	Details conflictDetails `json:"details"`
}

// WriteConflict responde 409 no formato consumido pelos clientes.
func WriteConflict(c *gin.Context, ce ConflictError) {
	c.JSON(http.StatusConflict, conflictBody{
		Error: "Horário indisponível",
		Code:  "APPOINTMENT_CONFLICT",
		Details: conflictDetails{
			ConflictingAppointmentID: ce.ConflictingAppointmentID,
			ConflictStart:            ce.ConflictStart,
			ConflictEnd:              ce.ConflictEnd,
			Message: fmt.Sprintf(
				"Já existe um agendamento entre %s e %s.",
				ce.ConflictStart, ce.ConflictEnd,
			),
		},
	})
}
