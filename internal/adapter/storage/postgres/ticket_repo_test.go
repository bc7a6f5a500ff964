package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"fare-validator/internal/core/domain"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCard = domain.CardID{0x04, 0x15, 0x91, 0x8A}

func newTestSnapshot() *domain.TicketSnapshot {
	now := time.Now().UTC().Truncate(time.Microsecond)
	session := now.Add(-20 * time.Minute)
	return &domain.TicketSnapshot{
		CardID:            testCard,
		Credit:            decimal.RequireFromString("8.50"),
		TierName:          "BIT",
		CurrentValidation: &session,
		SessionValidation: &session,
		SessionExpense:    decimal.RequireFromString("1.50"),
		LastUsage:         now,
		UpdatedAt:         now,
	}
}

func ticketColumns() []string {
	return []string{"card_id", "credit", "tier", "current_validation", "session_validation",
		"session_expense", "last_usage", "updated_at"}
}

func TestTicketRepo_Upsert(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTicketRepo(mock)
	s := newTestSnapshot()

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO tickets .+ ON CONFLICT \(card_id\) DO UPDATE .+ WHERE tickets\.last_usage <= EXCLUDED\.last_usage`).
		WithArgs("0415918A", "8.5", "BIT", s.CurrentValidation, s.SessionValidation, "1.5", s.LastUsage, s.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	dbTx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	require.NoError(t, repo.Upsert(context.Background(), dbTx, s))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTicketRepo_Upsert_StaleSnapshotIsNotAnError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTicketRepo(mock)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO tickets").WillReturnResult(pgxmock.NewResult("INSERT", 0))

	dbTx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	assert.NoError(t, repo.Upsert(context.Background(), dbTx, newTestSnapshot()))
}

func TestTicketRepo_Upsert_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTicketRepo(mock)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO tickets").WillReturnError(errors.New("check constraint violated"))

	dbTx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	assert.Error(t, repo.Upsert(context.Background(), dbTx, newTestSnapshot()))
}

func TestTicketRepo_GetByCardID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTicketRepo(mock)
	s := newTestSnapshot()

	mock.ExpectQuery("SELECT (.+) FROM tickets WHERE card_id").
		WithArgs("0415918A").
		WillReturnRows(pgxmock.NewRows(ticketColumns()).AddRow(
			"0415918A", "8.50", "BIT", s.CurrentValidation, s.SessionValidation, "1.50", s.LastUsage, s.UpdatedAt,
		))

	got, err := repo.GetByCardID(context.Background(), testCard)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, testCard, got.CardID)
	assert.True(t, got.Credit.Equal(s.Credit))
	assert.True(t, got.SessionExpense.Equal(s.SessionExpense))
	assert.Equal(t, "BIT", got.TierName)
	assert.Equal(t, s.SessionValidation, got.SessionValidation)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTicketRepo_GetByCardID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTicketRepo(mock)

	mock.ExpectQuery("SELECT (.+) FROM tickets").
		WithArgs("0415918A").
		WillReturnError(pgx.ErrNoRows)

	got, err := repo.GetByCardID(context.Background(), testCard)
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestTicketRepo_GetByCardID_BadCredit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTicketRepo(mock)
	s := newTestSnapshot()

	mock.ExpectQuery("SELECT (.+) FROM tickets").
		WithArgs("0415918A").
		WillReturnRows(pgxmock.NewRows(ticketColumns()).AddRow(
			"0415918A", "n/a", "BIT", s.CurrentValidation, s.SessionValidation, "1.50", s.LastUsage, s.UpdatedAt,
		))

	_, err = repo.GetByCardID(context.Background(), testCard)
	assert.Error(t, err)
}
