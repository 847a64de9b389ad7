package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/court-scheduler/internal/httperr"
)

// writeBusinessError traduz os códigos de negócio dos use cases para o
// status HTTP e a mensagem da resposta. Erros fora da taxonomia caem
// em 500 genérico.
func writeBusinessError(c *gin.Context, err error) {
	var be httperr.BusinessError
	if !errors.As(err, &be) {
		httperr.Internal(c, "internal_error", "Erro interno.")
		return
	}

	switch be.Code {
	case "invalid_date_or_time", "validation_error":
		httperr.BadRequest(c, be.Code, "Data ou hora inválida.")
	case "court_not_found":
		httperr.NotFound(c, be.Code, "Quadra não encontrada.")
	case "booking_not_found":
		httperr.NotFound(c, be.Code, "Reserva não encontrada.")
	case "court_inactive":
		httperr.BadRequest(c, be.Code, "Quadra indisponível.")
	case "slot_unavailable":
		httperr.Conflict(c, be.Code, "Horário indisponível.")
	case "payment_conflict":
		httperr.Conflict(c, be.Code, "Pagamento já registrado para esta reserva.")
	case "invalid_state":
		httperr.BadRequest(c, be.Code, "Estado inválido para a operação.")
	default:
		httperr.BadRequest(c, be.Code, "Requisição inválida.")
	}
}
