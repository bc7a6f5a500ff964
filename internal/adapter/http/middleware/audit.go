package middleware

import (
	"net/http"
	"time"

	"fare-validator/internal/core/domain"
	"fare-validator/internal/core/ports"
	"fare-validator/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// auditedRoutes keys on the registered pattern, so path parameters match.
var auditedRoutes = map[string]domain.ActionKind{
	http.MethodPost + " /api/v1/auth/login":          domain.ActionLogin,
	http.MethodPost + " /api/v1/cards":               domain.ActionIssue,
	http.MethodPost + " /api/v1/cards/:cardID/credit": domain.ActionTopup,
}

// AuditLog records successful operator writes once the handler has run.
func AuditLog(auditSvc ports.AuditService) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		kind, ok := auditedRoutes[c.Request.Method+" "+c.FullPath()]
		if !ok {
			return
		}
		status := c.Writer.Status()
		if status < http.StatusOK || status >= http.StatusMultipleChoices {
			return
		}

		auditSvc.Log(c.Request.Context(), &domain.OperatorAction{
			ID:        uuid.New(),
			Kind:      kind,
			Operator:  c.GetString(CtxOperator),
			CardID:    c.GetString(CtxResourceID),
			RequestID: c.GetString(response.RequestIDKey),
			Status:    status,
			ClientIP:  c.ClientIP(),
			At:        time.Now().UTC(),
		})
	}
}
