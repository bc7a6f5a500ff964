package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Outcome names the path the validation engine took for a tap.
type Outcome string

const (
	OutcomeReset       Outcome = "RESET"        // new session, base fare charged
	OutcomeRenewed     Outcome = "RENEWED"      // covered by the session, validation refreshed
	OutcomeConfirmed   Outcome = "CONFIRMED"    // covered, nothing to record
	OutcomeUpgraded    Outcome = "UPGRADED"     // moved to the next tier
	OutcomeChargedBase Outcome = "CHARGED_BASE" // base fare charged within the session
)

// IsChargeable reports whether the outcome debits credit.
func (o Outcome) IsChargeable() bool {
	return o == OutcomeReset || o == OutcomeUpgraded || o == OutcomeChargedBase
}

// ValidationRecord is an append-only audit entry for a recorded validation.
type ValidationRecord struct {
	ID                   uuid.UUID `json:"id"`
	CardID               CardID    `json:"card_id"`
	Location             string    `json:"location"`
	Time                 time.Time `json:"time"`
	EncryptedStateDigest string    `json:"encrypted_state_digest"` // sha256 of the blob written to the card
}

// CreditTransaction is an append-only audit entry for a top-up.
type CreditTransaction struct {
	ID       uuid.UUID       `json:"id"`
	CardID   CardID          `json:"card_id"`
	Location string          `json:"location"`
	Time     time.Time       `json:"time"`
	Amount   decimal.Decimal `json:"amount"`
}

// AuditEventKind tags an AuditEvent.
type AuditEventKind string

const (
	AuditEventValidation        AuditEventKind = "VALIDATION"
	AuditEventTicketUpdate      AuditEventKind = "TICKET_UPDATE"
	AuditEventCreditTransaction AuditEventKind = "CREDIT_TRANSACTION"
)

// AuditEvent is one record destined for the audit sink. Exactly one payload
// field is set, matching Kind.
type AuditEvent struct {
	Kind        AuditEventKind
	Validation  *ValidationRecord
	Ticket      *TicketState
	Transaction *CreditTransaction
}

// ValidationResult is the successful output of the validation engine.
type ValidationResult struct {
	Ticket  *TicketState
	Outcome Outcome
	Charged decimal.Decimal
	Events  []AuditEvent
}

// Validations returns the validation records among the events.
func (r *ValidationResult) Validations() []*ValidationRecord {
	var out []*ValidationRecord
	for _, e := range r.Events {
		if e.Kind == AuditEventValidation {
			out = append(out, e.Validation)
		}
	}
	return out
}
