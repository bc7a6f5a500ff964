package middleware

import (
	"bytes"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"fare-validator/internal/core/ports"
	"fare-validator/pkg/apperror"
	"fare-validator/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	HeaderRequestID   = "X-Request-ID"
	HeaderValidatorID = "X-Validator-ID"

	// Header names for validator request signing
	HeaderSignature = "X-Signature"
	HeaderTimestamp = "X-Timestamp"
	HeaderNonce     = "X-Nonce"

	// Max timestamp drift allowed (60 seconds)
	maxTimestampDrift = 60 * time.Second

	// Nonces outlive the drift window on both sides.
	nonceTTL = 2 * maxTimestampDrift

	// Context keys
	CtxOperator    = "operator"
	CtxValidatorID = "validator_id"
	CtxResourceID  = "resource_id"
)

// ValidatorAuth verifies HMAC-SHA256 signed validator requests.
// Pipeline: check timestamp -> resolve key -> verify signature -> consume nonce.
// The nonce is consumed only once the signature holds, so forged requests
// cannot burn a device's nonces. A nil or failing nonce store rejects.
func ValidatorAuth(
	keys ports.ValidatorKeyring,
	sigSvc ports.SignatureService,
	nonceStore ports.NonceStore,
	log zerolog.Logger,
) gin.HandlerFunc {
	return func(c *gin.Context) {
		validatorID := c.GetHeader(HeaderValidatorID)
		signature := c.GetHeader(HeaderSignature)
		timestampStr := c.GetHeader(HeaderTimestamp)
		nonce := c.GetHeader(HeaderNonce)

		if validatorID == "" || signature == "" || timestampStr == "" || nonce == "" {
			response.Abort(c, apperror.ErrInvalidSignature())
			return
		}

		timestamp, err := strconv.ParseInt(timestampStr, 10, 64)
		if err != nil {
			response.Abort(c, apperror.ErrTimestampExpired())
			return
		}
		drift := time.Since(time.Unix(timestamp, 0))
		if drift > maxTimestampDrift || drift < -maxTimestampDrift {
			response.Abort(c, apperror.ErrTimestampExpired())
			return
		}

		var secret string
		ok := false
		if keys != nil {
			secret, ok = keys.SecretFor(validatorID)
		}
		if !ok {
			log.Warn().Str("validator_id", validatorID).Msg("tap from unknown validator")
			response.Abort(c, apperror.ErrUnknownValidator())
			return
		}

		bodyBytes, err := io.ReadAll(c.Request.Body)
		if err != nil {
			response.Abort(c, apperror.Validation("cannot read request body"))
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))

		canonical := sigSvc.BuildCanonicalString(
			c.Request.Method,
			c.Request.URL.Path,
			timestamp,
			nonce,
			string(bodyBytes),
		)
		if !sigSvc.Verify(secret, canonical, signature) {
			log.Warn().Str("validator_id", validatorID).Msg("validator signature mismatch")
			response.Abort(c, apperror.ErrInvalidSignature())
			return
		}

		if nonceStore == nil {
			response.Abort(c, apperror.ErrReplayCheck(nil))
			return
		}
		isNew, err := nonceStore.CheckAndSet(c.Request.Context(), validatorID, nonce, nonceTTL)
		if err != nil {
			log.Error().Err(err).Str("validator_id", validatorID).Msg("nonce store error, rejecting request")
			response.Abort(c, apperror.ErrReplayCheck(err))
			return
		}
		if !isNew {
			log.Warn().Str("validator_id", validatorID).Str("nonce", nonce).Msg("replayed validator request")
			response.Abort(c, apperror.ErrNonceUsed())
			return
		}

		c.Set(CtxValidatorID, validatorID)
		c.Next()
	}
}

// JWTAuth validates operator bearer tokens and stores the operator name.
func JWTAuth(tokenSvc ports.TokenService, log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || tokenStr == "" {
			response.Abort(c, apperror.ErrInvalidToken())
			return
		}

		claims, err := tokenSvc.Validate(tokenStr)
		if err != nil {
			log.Debug().Err(err).Str("path", c.Request.URL.Path).Msg("rejected bearer token")
			response.Abort(c, apperror.ErrInvalidToken())
			return
		}

		c.Set(CtxOperator, claims.Operator)
		c.Next()
	}
}

// RequestID propagates X-Request-ID or assigns a fresh one.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Set(response.RequestIDKey, id)
		c.Header(HeaderRequestID, id)
		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("request_id", c.GetString(response.RequestIDKey)).
			Str("method", c.Request.Method).
			Str("path", c.FullPath()).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				response.Abort(c, apperror.InternalError(nil))
			}
		}()
		c.Next()
	}
}

// MaxBodySize limits the request body. Reads past the limit fail, which
// surfaces as a binding error in the handler.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
