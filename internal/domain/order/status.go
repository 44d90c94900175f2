package order

import "github.com/agendalivre/platform-api/internal/httperr"

type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusDelivered Status = "delivered"
	StatusCancelled Status = "cancelled"
)

// Progressão normal do pedido, um passo por vez.
var next = map[Status]Status{
	StatusPending:   StatusPreparing,
	StatusPreparing: StatusReady,
	StatusReady:     StatusDelivered,
}

// CanTransition valida o avanço para o próximo estágio do ciclo
// pending → preparing → ready → delivered.
func CanTransition(current, target Status) error {
	if next[current] != target {
		return httperr.ErrBusiness("invalid_status_transition")
	}
	return nil
}

// CanCancel: cancelável a partir de qualquer estado não terminal.
// Pedidos entregues ou já cancelados não mudam mais.
func CanCancel(current Status) error {
	if current == StatusCancelled || current == StatusDelivered {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func InitialStatus() Status {
	return StatusPending
}
