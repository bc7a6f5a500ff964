package postgres

import (
	"context"
	"fmt"

	"fare-validator/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// ValidationRepo implements ports.ValidationRepository.
type ValidationRepo struct {
	pool Pool
}

// NewValidationRepo creates a new ValidationRepo.
func NewValidationRepo(pool Pool) *ValidationRepo {
	return &ValidationRepo{pool: pool}
}

// Create appends a validation record within a database transaction.
func (r *ValidationRepo) Create(ctx context.Context, tx pgx.Tx, rec *domain.ValidationRecord) error {
	query := `INSERT INTO validations (id, card_id, location, validated_at, state_digest)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := tx.Exec(ctx, query, rec.ID, rec.CardID.String(), rec.Location, rec.Time, rec.EncryptedStateDigest)
	if err != nil {
		return fmt.Errorf("insert validation: %w", err)
	}
	return nil
}

// ListByCard returns the most recent validations of a card, newest first.
func (r *ValidationRepo) ListByCard(ctx context.Context, cardID domain.CardID, limit int) ([]domain.ValidationRecord, error) {
	query := `SELECT id, location, validated_at, state_digest
		FROM validations WHERE card_id = $1 ORDER BY validated_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, cardID.String(), limit)
	if err != nil {
		return nil, fmt.Errorf("list validations: %w", err)
	}
	defer rows.Close()

	var recs []domain.ValidationRecord
	for rows.Next() {
		rec := domain.ValidationRecord{CardID: cardID}
		if err := rows.Scan(&rec.ID, &rec.Location, &rec.Time, &rec.EncryptedStateDigest); err != nil {
			return nil, fmt.Errorf("scan validation row: %w", err)
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate validation rows: %w", err)
	}
	return recs, nil
}
