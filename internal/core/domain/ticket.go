package domain

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// CardID is the unique identifier burned into a physical card.
type CardID []byte

// ParseCardID decodes a hex card identifier, ignoring ':' separators.
func ParseCardID(s string) (CardID, error) {
	raw := strings.ReplaceAll(strings.TrimSpace(s), ":", "")
	if raw == "" {
		return nil, fmt.Errorf("empty card id")
	}
	b, err := hex.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("decoding card id: %w", err)
	}
	return CardID(b), nil
}

// String returns the upper-case hex form used in logs, keys and the API.
func (c CardID) String() string {
	return strings.ToUpper(hex.EncodeToString(c))
}

// Equal reports whether both identifiers carry the same bytes.
func (c CardID) Equal(other CardID) bool {
	return c.String() == other.String()
}

// TicketState is the fare state stored on one card.
type TicketState struct {
	CardID            CardID
	Credit            decimal.Decimal
	Tier              *FareTier
	CurrentValidation *time.Time // most recent chargeable validation
	SessionValidation *time.Time // session start, nil when no session is active
	SessionExpense    decimal.Decimal
	LastUsage         time.Time // diagnostics only
}

// NewTicket returns the state of a freshly issued card.
func NewTicket(cardID CardID, base *FareTier, now time.Time) *TicketState {
	id := make(CardID, len(cardID))
	copy(id, cardID)
	return &TicketState{
		CardID:         id,
		Credit:         decimal.Zero,
		Tier:           base,
		SessionExpense: decimal.Zero,
		LastUsage:      now,
	}
}

// HasSession reports whether a session is currently open.
func (t *TicketState) HasSession() bool {
	return t.SessionValidation != nil
}

// Clone returns a deep copy. Tiers are shared since they are immutable.
func (t *TicketState) Clone() *TicketState {
	c := *t
	c.CardID = make(CardID, len(t.CardID))
	copy(c.CardID, t.CardID)
	c.CurrentValidation = cloneTime(t.CurrentValidation)
	c.SessionValidation = cloneTime(t.SessionValidation)
	return &c
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

// MarshalText encodes the identifier as hex so JSON payloads stay readable.
func (c CardID) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a hex identifier.
func (c *CardID) UnmarshalText(text []byte) error {
	id, err := ParseCardID(string(text))
	if err != nil {
		return err
	}
	*c = id
	return nil
}

// TicketSnapshot is the copy of a ticket kept in the secondary log. The tier
// is stored by name since the catalog may change between deployments.
type TicketSnapshot struct {
	CardID            CardID          `json:"card_id"`
	Credit            decimal.Decimal `json:"credit"`
	TierName          string          `json:"tier"`
	CurrentValidation *time.Time      `json:"current_validation,omitempty"`
	SessionValidation *time.Time      `json:"session_validation,omitempty"`
	SessionExpense    decimal.Decimal `json:"session_expense"`
	LastUsage         time.Time       `json:"last_usage"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// Snapshot captures the ticket for the secondary log.
func (t *TicketState) Snapshot(at time.Time) *TicketSnapshot {
	s := &TicketSnapshot{
		CardID:            append(CardID(nil), t.CardID...),
		Credit:            t.Credit,
		CurrentValidation: cloneTime(t.CurrentValidation),
		SessionValidation: cloneTime(t.SessionValidation),
		SessionExpense:    t.SessionExpense,
		LastUsage:         t.LastUsage,
		UpdatedAt:         at,
	}
	if t.Tier != nil {
		s.TierName = t.Tier.Name
	}
	return s
}
