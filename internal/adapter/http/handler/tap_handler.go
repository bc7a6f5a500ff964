package handler

import (
	"fare-validator/internal/adapter/http/dto"
	"fare-validator/internal/core/ports"
	"fare-validator/pkg/apperror"
	"fare-validator/pkg/response"

	"github.com/gin-gonic/gin"
)

// TapHandler is the endpoint validators call when a card is presented.
type TapHandler struct {
	ticketingSvc ports.TicketingService
}

// NewTapHandler creates a new TapHandler.
func NewTapHandler(ticketingSvc ports.TicketingService) *TapHandler {
	return &TapHandler{ticketingSvc: ticketingSvc}
}

// Tap handles POST /api/v1/taps.
func (h *TapHandler) Tap(c *gin.Context) {
	var req dto.TapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	cardID, err := parseCardID(req.CardID)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.ticketingSvc.ValidateTicket(c.Request.Context(), cardID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toTapResponse(result))
}
