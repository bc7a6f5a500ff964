package postgres

import (
	"context"
	"fmt"

	"fare-validator/internal/core/domain"
)

// AuditRepo stores operator actions in operator_actions.
type AuditRepo struct {
	pool Pool
}

func NewAuditRepo(pool Pool) *AuditRepo {
	return &AuditRepo{pool: pool}
}

func (r *AuditRepo) Create(ctx context.Context, action *domain.OperatorAction) error {
	query := `INSERT INTO operator_actions (id, kind, operator, card_id, request_id, status, client_ip, at)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7, $8)`

	_, err := r.pool.Exec(ctx, query,
		action.ID, string(action.Kind), action.Operator, action.CardID,
		action.RequestID, action.Status, action.ClientIP, action.At,
	)
	if err != nil {
		return fmt.Errorf("insert operator action %s: %w", action.Kind, err)
	}
	return nil
}
