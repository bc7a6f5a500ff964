package middleware

import (
	"fmt"
	"strconv"
	"time"

	redisStore "fare-validator/internal/adapter/storage/redis"
	"fare-validator/pkg/apperror"
	"fare-validator/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RateLimitRule defines a rate limit for an endpoint group.
type RateLimitRule struct {
	Limit  int64
	Window time.Duration
}

// DefaultRateLimitRules returns the limits per endpoint group.
func DefaultRateLimitRules() map[string]RateLimitRule {
	return map[string]RateLimitRule{
		"taps":         {Limit: 120, Window: time.Minute},
		"tiers":        {Limit: 60, Window: time.Minute},
		"auth_login":   {Limit: 10, Window: time.Minute},
		"cards_issue":  {Limit: 30, Window: time.Minute},
		"cards_credit": {Limit: 30, Window: time.Minute},
		"cards_read":   {Limit: 120, Window: time.Minute},
	}
}

// RateLimiter creates a rate-limiting middleware for a given endpoint group.
// A store failure lets the request through.
func RateLimiter(store *redisStore.RateLimitStore, group string, rule RateLimitRule, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", extractIdentifier(c), group)

		q, err := store.Take(c.Request.Context(), key, rule.Limit, rule.Window)
		if err != nil {
			log.Warn().Err(err).Str("group", group).Msg("rate limit check failed, allowing request (degraded mode)")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.FormatInt(q.Limit, 10))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(q.Remaining, 10))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(q.Reset.Unix(), 10))

		if !q.Allowed {
			c.Header("Retry-After", strconv.FormatInt(q.RetryAfter(time.Now()), 10))
			response.Abort(c, apperror.ErrRateLimitExceeded())
			return
		}

		c.Next()
	}
}

// extractIdentifier picks the authenticated validator, then the operator,
// then the client address.
func extractIdentifier(c *gin.Context) string {
	if id := c.GetString(CtxValidatorID); id != "" {
		return "validator:" + id
	}
	if op := c.GetString(CtxOperator); op != "" {
		return "operator:" + op
	}
	return "ip:" + c.ClientIP()
}
