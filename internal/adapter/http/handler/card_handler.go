package handler

import (
	"fare-validator/internal/adapter/http/dto"
	"fare-validator/internal/adapter/http/middleware"
	"fare-validator/internal/core/ports"
	"fare-validator/pkg/apperror"
	"fare-validator/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CardHandler serves the back-office card endpoints.
type CardHandler struct {
	ticketingSvc ports.TicketingService
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(ticketingSvc ports.TicketingService) *CardHandler {
	return &CardHandler{ticketingSvc: ticketingSvc}
}

// Issue handles POST /api/v1/cards.
func (h *CardHandler) Issue(c *gin.Context) {
	var req dto.IssueCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	cardID, err := parseCardID(req.CardID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Set(middleware.CtxResourceID, cardID.String())

	ticket, err := h.ticketingSvc.IssueTicket(c.Request.Context(), cardID, req.Force)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toTicketResponse(ticket))
}

// Get handles GET /api/v1/cards/:cardID.
func (h *CardHandler) Get(c *gin.Context) {
	cardID, err := cardIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	ticket, err := h.ticketingSvc.ReadTicket(c.Request.Context(), cardID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toTicketResponse(ticket))
}

// Credit handles POST /api/v1/cards/:cardID/credit.
func (h *CardHandler) Credit(c *gin.Context) {
	cardID, err := cardIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Set(middleware.CtxResourceID, cardID.String())

	var req dto.CreditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		response.Error(c, apperror.ErrInvalidAmount())
		return
	}

	ticket, err := h.ticketingSvc.AddCredit(c.Request.Context(), cardID, amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toTicketResponse(ticket))
}

// History handles GET /api/v1/cards/:cardID/history.
func (h *CardHandler) History(c *gin.Context) {
	cardID, err := cardIDParam(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var q dto.HistoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	history, err := h.ticketingSvc.History(c.Request.Context(), cardID, q.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toHistoryResponse(cardID, history))
}
