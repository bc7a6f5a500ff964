package domain

import "errors"

// Sentinel errors raised by the fare model and the validation engine.
var (
	ErrInsufficientCredit = errors.New("insufficient credit")
	ErrNegativeCredit     = errors.New("ticket credit is negative")
	ErrUnknownFareTier    = errors.New("unknown fare tier")
	ErrInvalidFareTier    = errors.New("invalid fare tier")
	ErrCorruptTicket      = errors.New("ticket blob cannot be decoded")
)
