package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fare-validator/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// TicketRepo implements ports.TicketRepository. The card is the source of
// truth; this table only mirrors the last state a validator wrote.
type TicketRepo struct {
	pool Pool
}

// NewTicketRepo creates a new TicketRepo.
func NewTicketRepo(pool Pool) *TicketRepo {
	return &TicketRepo{pool: pool}
}

// Upsert stores the snapshot. Conflicting writers are resolved by last usage:
// an older snapshot never replaces a newer one.
func (r *TicketRepo) Upsert(ctx context.Context, tx pgx.Tx, s *domain.TicketSnapshot) error {
	query := `INSERT INTO tickets (card_id, credit, tier, current_validation, session_validation,
		session_expense, last_usage, updated_at)
		VALUES ($1, $2::numeric, $3, $4, $5, $6::numeric, $7, $8)
		ON CONFLICT (card_id) DO UPDATE SET
			credit = EXCLUDED.credit,
			tier = EXCLUDED.tier,
			current_validation = EXCLUDED.current_validation,
			session_validation = EXCLUDED.session_validation,
			session_expense = EXCLUDED.session_expense,
			last_usage = EXCLUDED.last_usage,
			updated_at = EXCLUDED.updated_at
		WHERE tickets.last_usage <= EXCLUDED.last_usage`

	_, err := tx.Exec(ctx, query,
		s.CardID.String(), s.Credit.String(), s.TierName,
		s.CurrentValidation, s.SessionValidation,
		s.SessionExpense.String(), s.LastUsage, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert ticket: %w", err)
	}
	return nil
}

// GetByCardID returns the last stored snapshot, or nil if the card is unknown.
func (r *TicketRepo) GetByCardID(ctx context.Context, cardID domain.CardID) (*domain.TicketSnapshot, error) {
	query := `SELECT card_id, credit::text, tier, current_validation, session_validation,
		session_expense::text, last_usage, updated_at
		FROM tickets WHERE card_id = $1`

	var (
		id, credit, expense string
		s                   domain.TicketSnapshot
		current, session    *time.Time
	)
	err := r.pool.QueryRow(ctx, query, cardID.String()).Scan(
		&id, &credit, &s.TierName, &current, &session, &expense, &s.LastUsage, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get ticket: %w", err)
	}

	if s.CardID, err = domain.ParseCardID(id); err != nil {
		return nil, fmt.Errorf("parse card id: %w", err)
	}
	if s.Credit, err = decimal.NewFromString(credit); err != nil {
		return nil, fmt.Errorf("parse credit: %w", err)
	}
	if s.SessionExpense, err = decimal.NewFromString(expense); err != nil {
		return nil, fmt.Errorf("parse session expense: %w", err)
	}
	s.CurrentValidation = current
	s.SessionValidation = session
	return &s, nil
}
