package postgres

import (
	"context"
	"testing"
	"time"

	"fare-validator/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreditTransactionRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCreditTransactionRepo(mock)
	txn := &domain.CreditTransaction{
		ID:       uuid.New(),
		CardID:   testCard,
		Location: "DEPOT",
		Time:     time.Now().UTC().Truncate(time.Microsecond),
		Amount:   decimal.RequireFromString("20.00"),
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO credit_transactions").
		WithArgs(txn.ID, "0415918A", "DEPOT", "20", txn.Time).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	dbTx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	require.NoError(t, repo.Create(context.Background(), dbTx, txn))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreditTransactionRepo_ListByCard(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCreditTransactionRepo(mock)
	now := time.Now().UTC().Truncate(time.Microsecond)
	id := uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM credit_transactions WHERE card_id").
		WithArgs("0415918A", 5).
		WillReturnRows(pgxmock.NewRows([]string{"id", "location", "amount", "created_at"}).
			AddRow(id, "DEPOT", "12.50", now))

	txns, err := repo.ListByCard(context.Background(), testCard, 5)
	require.NoError(t, err)
	require.Len(t, txns, 1)
	assert.Equal(t, id, txns[0].ID)
	assert.True(t, txns[0].Amount.Equal(decimal.RequireFromString("12.5")))
	assert.Equal(t, testCard, txns[0].CardID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreditTransactionRepo_ListByCard_BadAmount(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewCreditTransactionRepo(mock)

	mock.ExpectQuery("SELECT (.+) FROM credit_transactions").
		WithArgs("0415918A", 5).
		WillReturnRows(pgxmock.NewRows([]string{"id", "location", "amount", "created_at"}).
			AddRow(uuid.New(), "DEPOT", "lots", time.Now()))

	_, err = repo.ListByCard(context.Background(), testCard, 5)
	assert.Error(t, err)
}
