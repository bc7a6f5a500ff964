package handler

import (
	"time"

	"fare-validator/internal/adapter/http/dto"
	"fare-validator/internal/core/domain"
	"fare-validator/internal/core/ports"
	"fare-validator/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// cardIDParam parses the :cardID path segment.
func cardIDParam(c *gin.Context) (domain.CardID, error) {
	return parseCardID(c.Param("cardID"))
}

func parseCardID(raw string) (domain.CardID, error) {
	id, err := domain.ParseCardID(raw)
	if err != nil {
		return nil, apperror.Validation("invalid card id")
	}
	return id, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatTime(*t)
	return &s
}

func toTicketResponse(t *domain.TicketState) dto.TicketResponse {
	resp := dto.TicketResponse{
		CardID:            t.CardID.String(),
		Credit:            t.Credit.StringFixed(2),
		CurrentValidation: formatTimePtr(t.CurrentValidation),
		SessionValidation: formatTimePtr(t.SessionValidation),
		SessionExpense:    t.SessionExpense.StringFixed(2),
		LastUsage:         formatTime(t.LastUsage),
	}
	if t.Tier != nil {
		resp.Tier = t.Tier.Name
	}
	return resp
}

func toTapResponse(r *ports.TapResult) dto.TapResponse {
	return dto.TapResponse{
		Outcome:  string(r.Outcome),
		Charged:  r.Charged.StringFixed(2),
		Location: r.Location,
		Time:     formatTime(r.Time),
		Ticket:   toTicketResponse(r.Ticket),
	}
}

func toTierResponse(t *domain.FareTier, base bool) dto.TierResponse {
	resp := dto.TierResponse{
		Name:            t.Name,
		DurationMinutes: t.DurationMinutes,
		Cost:            t.Cost.StringFixed(2),
		Base:            base,
	}
	if t.NextUpgrade != nil {
		next := t.NextUpgrade.Name
		resp.NextUpgrade = &next
	}
	return resp
}

func toHistoryResponse(cardID domain.CardID, h *ports.TicketHistory) dto.HistoryResponse {
	resp := dto.HistoryResponse{
		CardID:       cardID.String(),
		Validations:  make([]dto.ValidationResponse, 0, len(h.Validations)),
		Transactions: make([]dto.CreditTransactionResponse, 0, len(h.Transactions)),
	}
	if s := h.Snapshot; s != nil {
		resp.Snapshot = &dto.SnapshotResponse{
			Credit:         s.Credit.StringFixed(2),
			Tier:           s.TierName,
			SessionExpense: s.SessionExpense.StringFixed(2),
			LastUsage:      formatTime(s.LastUsage),
			UpdatedAt:      formatTime(s.UpdatedAt),
		}
	}
	for _, v := range h.Validations {
		resp.Validations = append(resp.Validations, dto.ValidationResponse{
			ID:       v.ID.String(),
			Location: v.Location,
			Time:     formatTime(v.Time),
			Digest:   v.EncryptedStateDigest,
		})
	}
	for _, tx := range h.Transactions {
		resp.Transactions = append(resp.Transactions, dto.CreditTransactionResponse{
			ID:       tx.ID.String(),
			Location: tx.Location,
			Time:     formatTime(tx.Time),
			Amount:   tx.Amount.StringFixed(2),
		})
	}
	return resp
}
