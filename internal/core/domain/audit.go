package domain

import (
	"time"

	"github.com/google/uuid"
)

// ActionKind names a back-office action worth keeping.
type ActionKind string

const (
	ActionLogin ActionKind = "LOGIN"
	ActionIssue ActionKind = "ISSUE"
	ActionTopup ActionKind = "TOPUP"
)

// OperatorAction is one successful back-office write. Taps are not recorded
// here; validations have their own append-only trail.
type OperatorAction struct {
	ID        uuid.UUID  `json:"id"`
	Kind      ActionKind `json:"kind"`
	Operator  string     `json:"operator,omitempty"`
	CardID    string     `json:"card_id,omitempty"`
	RequestID string     `json:"request_id,omitempty"`
	Status    int        `json:"status"`
	ClientIP  string     `json:"client_ip"`
	At        time.Time  `json:"at"`
}
