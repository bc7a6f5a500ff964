package handler

import (
	"fare-validator/internal/adapter/http/dto"
	"fare-validator/internal/core/domain"
	"fare-validator/pkg/response"

	"github.com/gin-gonic/gin"
)

// TierHandler exposes the fare catalog.
type TierHandler struct {
	catalog *domain.Catalog
}

// NewTierHandler creates a new TierHandler.
func NewTierHandler(catalog *domain.Catalog) *TierHandler {
	return &TierHandler{catalog: catalog}
}

// List handles GET /api/v1/tiers.
func (h *TierHandler) List(c *gin.Context) {
	base := h.catalog.Base()
	tiers := h.catalog.Tiers()
	out := make([]dto.TierResponse, 0, len(tiers))
	for _, t := range tiers {
		out = append(out, toTierResponse(t, t == base))
	}
	response.OK(c, out)
}
