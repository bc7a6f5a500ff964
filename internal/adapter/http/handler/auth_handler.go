package handler

import (
	"fare-validator/internal/adapter/http/dto"
	"fare-validator/internal/adapter/http/middleware"
	"fare-validator/internal/core/ports"
	"fare-validator/pkg/apperror"
	"fare-validator/pkg/response"

	"github.com/gin-gonic/gin"
)

// AuthHandler issues operator session tokens.
type AuthHandler struct {
	authSvc ports.AuthService
}

func NewAuthHandler(authSvc ports.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	req.Normalize()

	token, expiry, err := h.authSvc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	// The audit trail attributes the login to the operator who just signed in.
	c.Set(middleware.CtxOperator, req.Username)
	response.OK(c, dto.LoginResponse{Token: token, Expiry: expiry.Unix()})
}
