package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	assert.Equal(t, "[CARD_001] Card carries no ticket", ErrCardEmpty().Error())
	assert.Equal(t, "[SYS_001] Internal database error: connection refused",
		ErrDatabaseError(fmt.Errorf("connection refused")).Error())
}

func TestAppError_UnwrapKeepsCause(t *testing.T) {
	inner := errors.New("pg: connection closed")
	err := fmt.Errorf("listing validations: %w", ErrDatabaseError(inner))

	assert.ErrorIs(t, err, inner)
	assert.Nil(t, ErrCardBusy().Unwrap())
}

func TestAppError_IsMatchesCode(t *testing.T) {
	err := fmt.Errorf("tap: %w", ErrCardBusy())

	assert.ErrorIs(t, err, ErrCardBusy())
	assert.NotErrorIs(t, err, ErrCardEmpty())
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, "FARE_001", CodeOf(fmt.Errorf("x: %w", ErrInsufficientCredit(nil))))
	assert.Equal(t, "", CodeOf(errors.New("plain")))
	assert.Equal(t, "", CodeOf(nil))
}

func TestConstructors(t *testing.T) {
	cause := errors.New("cause")
	tests := []struct {
		err    *AppError
		code   Code
		status int
	}{
		{ErrInsufficientCredit(cause), CodeInsufficientCredit, http.StatusPaymentRequired},
		{ErrInvalidAmount(), CodeInvalidInput, http.StatusBadRequest},
		{ErrUnknownTier(cause), CodeUnknownTier, http.StatusInternalServerError},
		{ErrNegativeCredit(), CodeNegativeCredit, http.StatusUnprocessableEntity},
		{ErrCardEmpty(), CodeCardEmpty, http.StatusNotFound},
		{ErrCardMismatch(), CodeCardMismatch, http.StatusConflict},
		{ErrCardBusy(), CodeCardBusy, http.StatusConflict},
		{ErrTicketAlreadyIssued(), CodeAlreadyIssued, http.StatusConflict},
		{ErrTransportFailure(cause), CodeTransport, http.StatusBadGateway},
		{ErrCorruptTicket(cause), CodeCorruptTicket, http.StatusUnprocessableEntity},
		{ErrNotFound("Ticket history"), CodeNotFound, http.StatusNotFound},
		{ErrInvalidCredentials(), CodeBadCredentials, http.StatusUnauthorized},
		{ErrInvalidToken(), CodeBadToken, http.StatusUnauthorized},
		{ErrRateLimitExceeded(), CodeRateLimited, http.StatusTooManyRequests},
		{ErrUnknownValidator(), CodeUnknownValidator, http.StatusUnauthorized},
		{ErrInvalidSignature(), CodeBadSignature, http.StatusUnauthorized},
		{ErrTimestampExpired(), CodeStaleTimestamp, http.StatusForbidden},
		{ErrNonceUsed(), CodeNonceUsed, http.StatusForbidden},
		{ErrReplayCheck(cause), CodeReplayCheck, http.StatusServiceUnavailable},
		{ErrDatabaseError(cause), CodeInternal, http.StatusInternalServerError},
		{ErrLockFailure(cause), CodeLock, http.StatusServiceUnavailable},
		{ErrEncryptionFailure(cause), CodeEncryption, http.StatusInternalServerError},
		{InternalError(cause), CodeInternal, http.StatusInternalServerError},
		{Validation("card_id is required"), CodeInvalidInput, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(string(tt.code)+" "+tt.err.Message, func(t *testing.T) {
			assert.Equal(t, string(tt.code), tt.err.Code)
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
			assert.NotEmpty(t, tt.err.Message)
		})
	}
}

func TestMessageOverrides(t *testing.T) {
	assert.Equal(t, "Ticket history not found", ErrNotFound("Ticket history").Message)
	assert.Equal(t, "card_id is required", Validation("card_id is required").Message)
	assert.Equal(t, "Internal server error", InternalError(nil).Message)
}
