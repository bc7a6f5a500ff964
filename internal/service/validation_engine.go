package service

import (
	"fmt"
	"time"

	"fare-validator/internal/core/domain"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EngineOptions tunes the validation engine.
type EngineOptions struct {
	// RecordUpgradeValidation makes an upgrade refresh CurrentValidation and emit
	// a validation record, like a base charge does. SessionValidation is never
	// touched by an upgrade.
	RecordUpgradeValidation bool
}

// ValidationEngine decides the outcome of a tap. It performs no I/O and never
// mutates the ticket it is given.
type ValidationEngine struct {
	catalog *domain.Catalog
	opts    EngineOptions
}

// NewValidationEngine creates an engine bound to a fare catalog.
func NewValidationEngine(catalog *domain.Catalog, opts EngineOptions) *ValidationEngine {
	return &ValidationEngine{catalog: catalog, opts: opts}
}

// Catalog returns the fare catalog the engine charges against.
func (e *ValidationEngine) Catalog() *domain.Catalog {
	return e.catalog
}

// tap carries the working copy through one decision.
type tap struct {
	ticket   *domain.TicketState
	base     *domain.FareTier
	location string
	now      time.Time
	charged  decimal.Decimal
	events   []domain.AuditEvent
}

// Validate computes the successor of ticket for a tap at location and now.
// On error the caller keeps the original ticket: nothing is partially applied.
func (e *ValidationEngine) Validate(ticket *domain.TicketState, location string, now time.Time) (*domain.ValidationResult, error) {
	if ticket.Credit.IsNegative() {
		return nil, domain.ErrNegativeCredit
	}
	if ticket.Tier == nil {
		return nil, fmt.Errorf("%w: ticket has no tier", domain.ErrUnknownFareTier)
	}

	t := &tap{
		ticket:   ticket.Clone(),
		base:     e.catalog.Base(),
		location: location,
		now:      now,
		charged:  decimal.Zero,
	}
	t.ticket.LastUsage = now

	outcome, err := e.decide(t)
	if err != nil {
		return nil, err
	}

	t.events = append(t.events, domain.AuditEvent{
		Kind:   domain.AuditEventTicketUpdate,
		Ticket: t.ticket.Clone(),
	})

	return &domain.ValidationResult{
		Ticket:  t.ticket,
		Outcome: outcome,
		Charged: t.charged,
		Events:  t.events,
	}, nil
}

func (e *ValidationEngine) decide(t *tap) (domain.Outcome, error) {
	s := t.ticket
	if !s.HasSession() {
		return t.reset()
	}

	elapsed := t.now.Sub(*s.SessionValidation)
	if elapsed < s.Tier.Duration() {
		return t.renewIfStale(), nil
	}

	next := s.Tier.NextUpgrade
	if next == nil || elapsed > next.Duration() {
		// Outlived both the current tier and its upgrade window.
		return t.reset()
	}

	if t.sinceCurrent() < t.base.Duration() {
		return t.renewIfStale(), nil
	}

	if s.SessionExpense.Add(t.base.Cost).GreaterThanOrEqual(next.Cost) {
		return t.upgrade(next, e.opts.RecordUpgradeValidation)
	}
	return t.chargeBase()
}

func (t *tap) reset() (domain.Outcome, error) {
	t.ticket.SessionExpense = decimal.Zero
	if err := t.charge(t.base.Cost); err != nil {
		return "", err
	}
	now := t.now
	session := t.now
	t.ticket.Tier = t.base
	t.ticket.CurrentValidation = &now
	t.ticket.SessionValidation = &session
	t.recordValidation()
	return domain.OutcomeReset, nil
}

func (t *tap) renewIfStale() domain.Outcome {
	if t.sinceCurrent() > t.base.Duration() {
		now := t.now
		t.ticket.CurrentValidation = &now
		t.recordValidation()
		return domain.OutcomeRenewed
	}
	return domain.OutcomeConfirmed
}

// upgrade charges the difference to the next tier. A session that already
// spent more than the next tier costs is upgraded for free, never refunded.
func (t *tap) upgrade(next *domain.FareTier, record bool) (domain.Outcome, error) {
	if err := t.charge(decimal.Max(next.Cost.Sub(t.ticket.SessionExpense), decimal.Zero)); err != nil {
		return "", err
	}
	t.ticket.Tier = next
	if record {
		now := t.now
		t.ticket.CurrentValidation = &now
		t.recordValidation()
	}
	return domain.OutcomeUpgraded, nil
}

func (t *tap) chargeBase() (domain.Outcome, error) {
	if err := t.charge(t.base.Cost); err != nil {
		return "", err
	}
	now := t.now
	t.ticket.CurrentValidation = &now
	t.recordValidation()
	return domain.OutcomeChargedBase, nil
}

func (t *tap) charge(amount decimal.Decimal) error {
	if t.ticket.Credit.Sub(amount).IsNegative() {
		return fmt.Errorf("%w: required %s, available %s",
			domain.ErrInsufficientCredit, amount.StringFixed(2), t.ticket.Credit.StringFixed(2))
	}
	t.ticket.Credit = t.ticket.Credit.Sub(amount)
	t.ticket.SessionExpense = t.ticket.SessionExpense.Add(amount)
	t.charged = t.charged.Add(amount)
	return nil
}

// sinceCurrent is the time since the last chargeable validation. A session
// without one is treated as stale.
func (t *tap) sinceCurrent() time.Duration {
	if t.ticket.CurrentValidation == nil {
		return t.base.Duration() + time.Nanosecond
	}
	return t.now.Sub(*t.ticket.CurrentValidation)
}

// recordValidation emits a validation record. The digest of the encrypted
// state is stamped by the caller once the successor blob exists.
func (t *tap) recordValidation() {
	t.events = append(t.events, domain.AuditEvent{
		Kind: domain.AuditEventValidation,
		Validation: &domain.ValidationRecord{
			ID:       uuid.New(),
			CardID:   t.ticket.CardID,
			Location: t.location,
			Time:     t.now,
		},
	})
}
