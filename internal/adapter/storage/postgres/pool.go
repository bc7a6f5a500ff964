package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Pool is the subset of *pgxpool.Pool the repositories use. pgxmock.PgxPoolIface
// satisfies it, which is how the repositories are unit tested.
type Pool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Transactor hands out the transaction a tap's secondary-log writes share.
type Transactor struct {
	pool Pool
}

func NewTransactor(pool Pool) *Transactor {
	return &Transactor{pool: pool}
}

func (t *Transactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return t.pool.Begin(ctx)
}

var errSchemaMissing = errors.New("ticket schema not migrated")

// StoreHealth reports the secondary log healthy once the ticket tables exist.
type StoreHealth struct {
	pool Pool
}

func NewStoreHealth(pool Pool) *StoreHealth {
	return &StoreHealth{pool: pool}
}

func (h *StoreHealth) Name() string { return "postgres" }

func (h *StoreHealth) Ping(ctx context.Context) error {
	var migrated bool
	err := h.pool.QueryRow(ctx, `SELECT to_regclass('public.tickets') IS NOT NULL`).Scan(&migrated)
	if err != nil {
		return fmt.Errorf("probing schema: %w", err)
	}
	if !migrated {
		return errSchemaMissing
	}
	return nil
}
