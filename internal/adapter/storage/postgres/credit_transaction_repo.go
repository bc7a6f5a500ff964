package postgres

import (
	"context"
	"fmt"

	"fare-validator/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// CreditTransactionRepo implements ports.CreditTransactionRepository.
type CreditTransactionRepo struct {
	pool Pool
}

// NewCreditTransactionRepo creates a new CreditTransactionRepo.
func NewCreditTransactionRepo(pool Pool) *CreditTransactionRepo {
	return &CreditTransactionRepo{pool: pool}
}

// Create appends a top-up within a database transaction.
func (r *CreditTransactionRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.CreditTransaction) error {
	query := `INSERT INTO credit_transactions (id, card_id, location, amount, created_at)
		VALUES ($1, $2, $3, $4::numeric, $5)`

	_, err := tx.Exec(ctx, query, t.ID, t.CardID.String(), t.Location, t.Amount.String(), t.Time)
	if err != nil {
		return fmt.Errorf("insert credit transaction: %w", err)
	}
	return nil
}

// ListByCard returns the most recent top-ups of a card, newest first.
func (r *CreditTransactionRepo) ListByCard(ctx context.Context, cardID domain.CardID, limit int) ([]domain.CreditTransaction, error) {
	query := `SELECT id, location, amount::text, created_at
		FROM credit_transactions WHERE card_id = $1 ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, cardID.String(), limit)
	if err != nil {
		return nil, fmt.Errorf("list credit transactions: %w", err)
	}
	defer rows.Close()

	var txns []domain.CreditTransaction
	for rows.Next() {
		t := domain.CreditTransaction{CardID: cardID}
		var amount string
		if err := rows.Scan(&t.ID, &t.Location, &amount, &t.Time); err != nil {
			return nil, fmt.Errorf("scan credit transaction row: %w", err)
		}
		if t.Amount, err = decimal.NewFromString(amount); err != nil {
			return nil, fmt.Errorf("parse amount: %w", err)
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate credit transaction rows: %w", err)
	}
	return txns, nil
}
