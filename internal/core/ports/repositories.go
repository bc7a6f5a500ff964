package ports

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

import (
	"context"

	"fare-validator/internal/core/domain"

	"github.com/jackc/pgx/v5"
)

// AuditSink receives everything a tap or a top-up produces. Calls run inside
// the caller's database transaction so a tap is persisted as one unit.
type AuditSink interface {
	RegisterValidation(ctx context.Context, tx pgx.Tx, rec *domain.ValidationRecord) error
	RegisterTicketUpdate(ctx context.Context, tx pgx.Tx, ticket *domain.TicketState) error
	RegisterTransaction(ctx context.Context, tx pgx.Tx, txn *domain.CreditTransaction) error
}

// TicketRepository keeps the last known state of every card.
type TicketRepository interface {
	// Upsert stores the snapshot unless a newer one (by last usage) is already stored.
	Upsert(ctx context.Context, tx pgx.Tx, snap *domain.TicketSnapshot) error
	GetByCardID(ctx context.Context, cardID domain.CardID) (*domain.TicketSnapshot, error)
}

// ValidationRepository persists validation records.
type ValidationRepository interface {
	Create(ctx context.Context, tx pgx.Tx, rec *domain.ValidationRecord) error
	ListByCard(ctx context.Context, cardID domain.CardID, limit int) ([]domain.ValidationRecord, error)
}

// CreditTransactionRepository persists top-ups.
type CreditTransactionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, txn *domain.CreditTransaction) error
	ListByCard(ctx context.Context, cardID domain.CardID, limit int) ([]domain.CreditTransaction, error)
}

// AuditRepository persists operator actions.
type AuditRepository interface {
	Create(ctx context.Context, action *domain.OperatorAction) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
