package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is the stable identifier clients switch on.
type Code string

const (
	CodeInsufficientCredit Code = "FARE_001"
	CodeInvalidInput       Code = "FARE_002"
	CodeUnknownTier        Code = "FARE_003"
	CodeNegativeCredit     Code = "FARE_004"

	CodeCardEmpty      Code = "CARD_001"
	CodeCardMismatch   Code = "CARD_002"
	CodeCardBusy       Code = "CARD_003"
	CodeAlreadyIssued  Code = "CARD_004"
	CodeTransport      Code = "CARD_005"
	CodeCorruptTicket  Code = "CARD_006"
	CodeNotFound       Code = "CARD_007"
	CodeBadCredentials Code = "AUTH_001"
	CodeBadToken       Code = "AUTH_003"
	CodeRateLimited    Code = "RATE_001"

	CodeUnknownValidator Code = "SEC_001"
	CodeBadSignature     Code = "SEC_002"
	CodeStaleTimestamp   Code = "SEC_003"
	CodeNonceUsed        Code = "SEC_004"
	CodeReplayCheck      Code = "SEC_005"

	CodeInternal   Code = "SYS_001"
	CodeLock       Code = "SYS_002"
	CodeEncryption Code = "SYS_003"
)

type codeInfo struct {
	status  int
	message string
}

var catalog = map[Code]codeInfo{
	CodeInsufficientCredit: {http.StatusPaymentRequired, "Insufficient credit on card"},
	CodeInvalidInput:       {http.StatusBadRequest, "Invalid amount"},
	CodeUnknownTier:        {http.StatusInternalServerError, "Ticket references an unknown fare tier"},
	CodeNegativeCredit:     {http.StatusUnprocessableEntity, "Ticket credit is negative"},
	CodeCardEmpty:          {http.StatusNotFound, "Card carries no ticket"},
	CodeCardMismatch:       {http.StatusConflict, "Ticket belongs to a different card"},
	CodeCardBusy:           {http.StatusConflict, "Card is being processed by another validator"},
	CodeAlreadyIssued:      {http.StatusConflict, "Card already carries a ticket"},
	CodeTransport:          {http.StatusBadGateway, "Card transport failure"},
	CodeCorruptTicket:      {http.StatusUnprocessableEntity, "Ticket on card cannot be decoded"},
	CodeNotFound:           {http.StatusNotFound, "Not found"},
	CodeBadCredentials:     {http.StatusUnauthorized, "Invalid credentials"},
	CodeBadToken:           {http.StatusUnauthorized, "Invalid or expired token"},
	CodeRateLimited:        {http.StatusTooManyRequests, "Rate limit exceeded"},
	CodeUnknownValidator:   {http.StatusUnauthorized, "Unknown validator"},
	CodeBadSignature:       {http.StatusUnauthorized, "Invalid signature"},
	CodeStaleTimestamp:     {http.StatusForbidden, "Request timestamp expired"},
	CodeNonceUsed:          {http.StatusForbidden, "Nonce has already been used"},
	CodeReplayCheck:        {http.StatusServiceUnavailable, "Replay protection unavailable"},
	CodeInternal:           {http.StatusInternalServerError, "Internal server error"},
	CodeLock:               {http.StatusServiceUnavailable, "Card lock unavailable"},
	CodeEncryption:         {http.StatusInternalServerError, "Encryption service failure"},
}

// AppError carries a client-facing code and message. Err stays server side.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches any AppError with the same code.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	return ok && t.Code == e.Code
}

func New(code string, message string, httpStatus int) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus}
}

func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{Code: code, Message: message, HTTPStatus: httpStatus, Err: err}
}

// CodeOf returns the code of the first AppError in err's chain, or "".
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

func build(code Code, err error) *AppError {
	s := catalog[code]
	return Wrap(string(code), s.message, s.status, err)
}

func ErrInsufficientCredit(err error) *AppError { return build(CodeInsufficientCredit, err) }
func ErrInvalidAmount() *AppError               { return build(CodeInvalidInput, nil) }
func ErrUnknownTier(err error) *AppError        { return build(CodeUnknownTier, err) }
func ErrNegativeCredit() *AppError              { return build(CodeNegativeCredit, nil) }

func ErrCardEmpty() *AppError                 { return build(CodeCardEmpty, nil) }
func ErrCardMismatch() *AppError              { return build(CodeCardMismatch, nil) }
func ErrCardBusy() *AppError                  { return build(CodeCardBusy, nil) }
func ErrTicketAlreadyIssued() *AppError       { return build(CodeAlreadyIssued, nil) }
func ErrTransportFailure(err error) *AppError { return build(CodeTransport, err) }
func ErrCorruptTicket(err error) *AppError    { return build(CodeCorruptTicket, err) }

func ErrNotFound(entity string) *AppError {
	e := build(CodeNotFound, nil)
	e.Message = entity + " not found"
	return e
}

func ErrInvalidCredentials() *AppError { return build(CodeBadCredentials, nil) }
func ErrInvalidToken() *AppError       { return build(CodeBadToken, nil) }
func ErrRateLimitExceeded() *AppError  { return build(CodeRateLimited, nil) }

func ErrUnknownValidator() *AppError     { return build(CodeUnknownValidator, nil) }
func ErrInvalidSignature() *AppError     { return build(CodeBadSignature, nil) }
func ErrTimestampExpired() *AppError     { return build(CodeStaleTimestamp, nil) }
func ErrNonceUsed() *AppError            { return build(CodeNonceUsed, nil) }
func ErrReplayCheck(err error) *AppError { return build(CodeReplayCheck, err) }

func ErrDatabaseError(err error) *AppError {
	e := build(CodeInternal, err)
	e.Message = "Internal database error"
	return e
}

func ErrLockFailure(err error) *AppError       { return build(CodeLock, err) }
func ErrEncryptionFailure(err error) *AppError { return build(CodeEncryption, err) }

// InternalError hides err behind a generic SYS_001.
func InternalError(err error) *AppError { return build(CodeInternal, err) }

// Validation reports a rejected request body with the binder's message.
func Validation(message string) *AppError {
	e := build(CodeInvalidInput, nil)
	e.Message = message
	return e
}
