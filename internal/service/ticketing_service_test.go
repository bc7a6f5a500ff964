package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"fare-validator/internal/core/domain"
	"fare-validator/internal/core/ports"
	"fare-validator/internal/core/ports/mocks"
	"fare-validator/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testCredential = "write-key"

var testCard = domain.CardID{0x04, 0x15, 0x91}

var okWrite = []ports.OperationResult{
	{Operation: "authenticate", Success: true},
	{Operation: "write", Success: true},
}

// mockTx implements pgx.Tx for testing
type mockTx struct {
	pgx.Tx
	commitErr  error
	committed  bool
	rolledBack bool
}

func (m *mockTx) Rollback(_ context.Context) error {
	if !m.committed {
		m.rolledBack = true
	}
	return nil
}

func (m *mockTx) Commit(_ context.Context) error {
	if m.commitErr != nil {
		return m.commitErr
	}
	m.committed = true
	return nil
}

type ticketingTestDeps struct {
	svc          *TicketingServiceImpl
	catalog      *domain.Catalog
	codec        *AESTicketCodec
	transport    *mocks.MockTicketTransport
	sink         *mocks.MockAuditSink
	transactor   *mocks.MockDBTransactor
	tickets      *mocks.MockTicketRepository
	validations  *mocks.MockValidationRepository
	transactions *mocks.MockCreditTransactionRepository
	lock         *mocks.MockCardLock
	now          time.Time
	ctrl         *gomock.Controller
}

func setupTicketingService(t *testing.T, withLock bool) *ticketingTestDeps {
	ctrl := gomock.NewController(t)
	c := newTestCatalog(t)
	d := &ticketingTestDeps{
		catalog:      c,
		codec:        newTestCodec(t, c),
		transport:    mocks.NewMockTicketTransport(ctrl),
		sink:         mocks.NewMockAuditSink(ctrl),
		transactor:   mocks.NewMockDBTransactor(ctrl),
		tickets:      mocks.NewMockTicketRepository(ctrl),
		validations:  mocks.NewMockValidationRepository(ctrl),
		transactions: mocks.NewMockCreditTransactionRepository(ctrl),
		lock:         mocks.NewMockCardLock(ctrl),
		now:          at(0),
		ctrl:         ctrl,
	}

	deps := TicketingDeps{
		Engine:       NewValidationEngine(c, EngineOptions{RecordUpgradeValidation: true}),
		Transport:    d.transport,
		Codec:        d.codec,
		Location:     StaticLocation("STOP-42"),
		Sink:         d.sink,
		Transactor:   d.transactor,
		Tickets:      d.tickets,
		Validations:  d.validations,
		Transactions: d.transactions,
	}
	if withLock {
		deps.Lock = d.lock
	}

	d.svc = NewTicketingService(deps, TicketingConfig{WriteCredential: testCredential}, zerolog.Nop()).
		WithClock(func() time.Time { return d.now })
	return d
}

func (d *ticketingTestDeps) blob(t *testing.T, ticket *domain.TicketState) []byte {
	t.Helper()
	b, err := d.codec.Encrypt(ticket)
	require.NoError(t, err)
	return b
}

func (d *ticketingTestDeps) expectRead(blob []byte, err error) {
	d.transport.EXPECT().ReadTicketBlob(gomock.Any(), testCard).Return(blob, err)
}

func (d *ticketingTestDeps) expectWrite(written *[]byte, results []ports.OperationResult, err error) *gomock.Call {
	return d.transport.EXPECT().WriteTicketBlob(gomock.Any(), testCard, gomock.Any(), testCredential).DoAndReturn(
		func(_ context.Context, _ domain.CardID, blob []byte, _ string) ([]ports.OperationResult, error) {
			if written != nil {
				*written = blob
			}
			return results, err
		})
}

func requireAppError(t *testing.T, err error, code string) {
	t.Helper()
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
}

// ==================== ValidateTicket Tests ====================

func TestTicketingService_ValidateTicket_FreshTicketChargesBase(t *testing.T) {
	d := setupTicketingService(t, false)
	defer d.ctrl.Finish()

	ticket := domain.NewTicket(testCard, d.catalog.Base(), at(-600))
	ticket.Credit = dec("10")
	tx := &mockTx{}
	var written []byte
	var rec *domain.ValidationRecord

	d.expectRead(d.blob(t, ticket), nil)
	d.transactor.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	gomock.InOrder(
		d.sink.EXPECT().RegisterValidation(gomock.Any(), tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ pgx.Tx, r *domain.ValidationRecord) error {
				rec = r
				return nil
			}),
		d.sink.EXPECT().RegisterTicketUpdate(gomock.Any(), tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ pgx.Tx, tk *domain.TicketState) error {
				assert.True(t, tk.Credit.Equal(dec("8.50")))
				return nil
			}),
	)
	d.expectWrite(&written, okWrite, nil)

	res, err := d.svc.ValidateTicket(context.Background(), testCard)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeReset, res.Outcome)
	assert.True(t, res.Charged.Equal(dec("1.50")))
	assert.True(t, res.Ticket.Credit.Equal(dec("8.50")))
	assert.Equal(t, "STOP-42", res.Location)
	assert.Equal(t, at(0), res.Time)
	assert.True(t, tx.committed)

	require.NotNil(t, rec)
	assert.Equal(t, blobDigest(written), rec.EncryptedStateDigest)
	assert.Equal(t, "STOP-42", rec.Location)

	onCard, err := d.codec.Decrypt(written, testCard)
	require.NoError(t, err)
	assert.True(t, onCard.Credit.Equal(dec("8.50")))
	assert.Equal(t, "B", onCard.Tier.Name)
}

func TestTicketingService_ValidateTicket_ConfirmedWritesStateOnly(t *testing.T) {
	d := setupTicketingService(t, false)
	defer d.ctrl.Finish()

	d.now = at(30)
	tx := &mockTx{}

	d.expectRead(d.blob(t, sessionTicket(t, d.catalog, "B", "8.50", "1.50", at(0), at(0))), nil)
	d.transactor.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	d.sink.EXPECT().RegisterTicketUpdate(gomock.Any(), tx, gomock.Any()).Return(nil)
	d.expectWrite(nil, okWrite, nil)

	res, err := d.svc.ValidateTicket(context.Background(), testCard)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeConfirmed, res.Outcome)
	assert.True(t, res.Charged.IsZero())
	assert.True(t, res.Ticket.Credit.Equal(dec("8.50")))
}

func TestTicketingService_ValidateTicket_InsufficientCreditLeavesCardUntouched(t *testing.T) {
	d := setupTicketingService(t, false)
	defer d.ctrl.Finish()

	ticket := domain.NewTicket(testCard, d.catalog.Base(), at(-600))
	ticket.Credit = dec("1.00")
	d.expectRead(d.blob(t, ticket), nil)

	_, err := d.svc.ValidateTicket(context.Background(), testCard)
	requireAppError(t, err, "FARE_001")
	assert.ErrorIs(t, err, domain.ErrInsufficientCredit)
}

func TestTicketingService_ValidateTicket_CardWriteFailureRollsBack(t *testing.T) {
	d := setupTicketingService(t, false)
	defer d.ctrl.Finish()

	tx := &mockTx{}
	d.expectRead(d.blob(t, sessionTicket(t, d.catalog, "B", "5", "1.50", at(-120), at(-120))), nil)
	d.transactor.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	d.sink.EXPECT().RegisterValidation(gomock.Any(), tx, gomock.Any()).Return(nil)
	d.sink.EXPECT().RegisterTicketUpdate(gomock.Any(), tx, gomock.Any()).Return(nil)
	d.expectWrite(nil, []ports.OperationResult{{Operation: "authenticate", Success: false, Detail: "card removed"}}, errors.New("tag lost"))

	_, err := d.svc.ValidateTicket(context.Background(), testCard)
	requireAppError(t, err, "CARD_005")
	assert.False(t, tx.committed)
	assert.True(t, tx.rolledBack)
}

func TestTicketingService_ValidateTicket_FailedOperationResultIsWriteFailure(t *testing.T) {
	d := setupTicketingService(t, false)
	defer d.ctrl.Finish()

	tx := &mockTx{}
	d.expectRead(d.blob(t, sessionTicket(t, d.catalog, "B", "5", "1.50", at(-120), at(-120))), nil)
	d.transactor.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	d.sink.EXPECT().RegisterValidation(gomock.Any(), tx, gomock.Any()).Return(nil)
	d.sink.EXPECT().RegisterTicketUpdate(gomock.Any(), tx, gomock.Any()).Return(nil)
	d.expectWrite(nil, []ports.OperationResult{
		{Operation: "authenticate", Success: true},
		{Operation: "write", Success: false, Detail: "page locked"},
	}, nil)

	_, err := d.svc.ValidateTicket(context.Background(), testCard)
	requireAppError(t, err, "CARD_005")
	assert.True(t, tx.rolledBack)
}

func TestTicketingService_ValidateTicket_SinkFailureSkipsCardWrite(t *testing.T) {
	d := setupTicketingService(t, false)
	defer d.ctrl.Finish()

	tx := &mockTx{}
	d.expectRead(d.blob(t, sessionTicket(t, d.catalog, "B", "5", "1.50", at(-120), at(-120))), nil)
	d.transactor.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	d.sink.EXPECT().RegisterValidation(gomock.Any(), tx, gomock.Any()).Return(errors.New("disk full"))

	_, err := d.svc.ValidateTicket(context.Background(), testCard)
	requireAppError(t, err, "SYS_001")
	assert.True(t, tx.rolledBack)
}

func TestTicketingService_ValidateTicket_CommitFailureRestoresPriorBlob(t *testing.T) {
	d := setupTicketingService(t, false)
	defer d.ctrl.Finish()

	prior := d.blob(t, sessionTicket(t, d.catalog, "B", "5", "1.50", at(-120), at(-120)))
	tx := &mockTx{commitErr: errors.New("serialization failure")}

	d.expectRead(prior, nil)
	d.transactor.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	d.sink.EXPECT().RegisterValidation(gomock.Any(), tx, gomock.Any()).Return(nil)
	d.sink.EXPECT().RegisterTicketUpdate(gomock.Any(), tx, gomock.Any()).Return(nil)
	gomock.InOrder(
		d.expectWrite(nil, okWrite, nil),
		d.transport.EXPECT().WriteTicketBlob(gomock.Any(), testCard, prior, testCredential).Return(okWrite, nil),
	)

	_, err := d.svc.ValidateTicket(context.Background(), testCard)
	requireAppError(t, err, "SYS_001")
	assert.NotErrorIs(t, err, errNotRestored)
}

func TestTicketingService_ValidateTicket_CommitFailureReportsRejectedRestore(t *testing.T) {
	d := setupTicketingService(t, false)
	defer d.ctrl.Finish()

	prior := d.blob(t, sessionTicket(t, d.catalog, "B", "5", "1.50", at(-120), at(-120)))
	tx := &mockTx{commitErr: errors.New("serialization failure")}

	d.expectRead(prior, nil)
	d.transactor.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	d.sink.EXPECT().RegisterValidation(gomock.Any(), tx, gomock.Any()).Return(nil)
	d.sink.EXPECT().RegisterTicketUpdate(gomock.Any(), tx, gomock.Any()).Return(nil)
	gomock.InOrder(
		d.expectWrite(nil, okWrite, nil),
		// The card refuses the restore without the transport reporting an error.
		d.transport.EXPECT().WriteTicketBlob(gomock.Any(), testCard, prior, testCredential).Return([]ports.OperationResult{
			{Operation: "authenticate", Success: true},
			{Operation: "write", Success: false, Detail: "page locked"},
		}, nil),
	)

	_, err := d.svc.ValidateTicket(context.Background(), testCard)
	requireAppError(t, err, "SYS_001")
	assert.ErrorIs(t, err, errNotRestored)
	assert.Contains(t, err.Error(), "write failed: page locked")
}

func TestCheckWrite(t *testing.T) {
	assert.NoError(t, checkWrite(okWrite, nil))
	assert.NoError(t, checkWrite(nil, nil))

	transportErr := errors.New("tag lost")
	assert.ErrorIs(t, checkWrite(okWrite, transportErr), transportErr)

	err := checkWrite([]ports.OperationResult{{Operation: "authenticate", Success: false, Detail: "credential mismatch"}}, nil)
	assert.EqualError(t, err, "authenticate failed: credential mismatch")
}

func TestTicketingService_ValidateTicket_BeginFailure(t *testing.T) {
	d := setupTicketingService(t, false)
	defer d.ctrl.Finish()

	d.expectRead(d.blob(t, sessionTicket(t, d.catalog, "B", "5", "1.50", at(-120), at(-120))), nil)
	d.transactor.EXPECT().Begin(gomock.Any()).Return(nil, errors.New("pool exhausted"))

	_, err := d.svc.ValidateTicket(context.Background(), testCard)
	requireAppError(t, err, "SYS_001")
}

func TestTicketingService_ValidateTicket_ReadErrors(t *testing.T) {
	tests := []struct {
		name string
		blob []byte
		err  error
		code string
	}{
		{"empty card", nil, ports.ErrCardEmpty, "CARD_001"},
		{"transport down", nil, errors.New("no reader"), "CARD_005"},
		{"garbage blob", []byte("not a ticket at all"), nil, "CARD_006"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := setupTicketingService(t, false)
			defer d.ctrl.Finish()

			d.expectRead(tt.blob, tt.err)

			_, err := d.svc.ValidateTicket(context.Background(), testCard)
			requireAppError(t, err, tt.code)
		})
	}
}

func TestTicketingService_ValidateTicket_CardMismatch(t *testing.T) {
	d := setupTicketingService(t, false)
	defer d.ctrl.Finish()

	codec := mocks.NewMockTicketCodec(d.ctrl)
	d.svc.deps.Codec = codec

	d.expectRead([]byte{0x01}, nil)
	codec.EXPECT().Decrypt([]byte{0x01}, testCard).Return(
		domain.NewTicket(domain.CardID{0xFF}, d.catalog.Base(), at(0)), nil)

	_, err := d.svc.ValidateTicket(context.Background(), testCard)
	requireAppError(t, err, "CARD_002")
}

// ==================== Card Lock Tests ====================

func TestTicketingService_ValidateTicket_LockBusy(t *testing.T) {
	d := setupTicketingService(t, true)
	defer d.ctrl.Finish()

	d.lock.EXPECT().Acquire(gomock.Any(), testCard, defaultLockTTL).Return("", false, nil)

	_, err := d.svc.ValidateTicket(context.Background(), testCard)
	requireAppError(t, err, "CARD_003")
}

func TestTicketingService_ValidateTicket_LockErrorFailsClosed(t *testing.T) {
	d := setupTicketingService(t, true)
	defer d.ctrl.Finish()

	d.lock.EXPECT().Acquire(gomock.Any(), testCard, defaultLockTTL).Return("", false, errors.New("redis down"))

	_, err := d.svc.ValidateTicket(context.Background(), testCard)
	requireAppError(t, err, "SYS_002")
}

func TestTicketingService_ValidateTicket_ReleasesLockOnFailure(t *testing.T) {
	d := setupTicketingService(t, true)
	defer d.ctrl.Finish()

	gomock.InOrder(
		d.lock.EXPECT().Acquire(gomock.Any(), testCard, defaultLockTTL).Return("tok-1", true, nil),
		d.transport.EXPECT().ReadTicketBlob(gomock.Any(), testCard).Return(nil, ports.ErrCardEmpty),
		d.lock.EXPECT().Release(gomock.Any(), testCard, "tok-1").Return(nil),
	)

	_, err := d.svc.ValidateTicket(context.Background(), testCard)
	requireAppError(t, err, "CARD_001")
}

// ==================== IssueTicket Tests ====================

func TestTicketingService_IssueTicket_EmptyCard(t *testing.T) {
	d := setupTicketingService(t, false)
	defer d.ctrl.Finish()

	tx := &mockTx{}
	var written []byte
	d.expectRead(nil, ports.ErrCardEmpty)
	d.transactor.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	d.sink.EXPECT().RegisterTicketUpdate(gomock.Any(), tx, gomock.Any()).Return(nil)
	d.expectWrite(&written, okWrite, nil)

	ticket, err := d.svc.IssueTicket(context.Background(), testCard, false)
	require.NoError(t, err)
	assert.True(t, ticket.Credit.IsZero())
	assert.Equal(t, "B", ticket.Tier.Name)
	assert.False(t, ticket.HasSession())
	assert.True(t, tx.committed)

	onCard, err := d.codec.Decrypt(written, testCard)
	require.NoError(t, err)
	assert.Equal(t, testCard, onCard.CardID)
}

func TestTicketingService_IssueTicket_RefusesExistingTicket(t *testing.T) {
	d := setupTicketingService(t, false)
	defer d.ctrl.Finish()

	d.expectRead(d.blob(t, freshTicket(d.catalog, "3")), nil)

	_, err := d.svc.IssueTicket(context.Background(), testCard, false)
	requireAppError(t, err, "CARD_004")
}

func TestTicketingService_IssueTicket_CorruptTicketNeedsForce(t *testing.T) {
	d := setupTicketingService(t, false)
	defer d.ctrl.Finish()

	d.expectRead([]byte("scrambled"), nil)

	_, err := d.svc.IssueTicket(context.Background(), testCard, false)
	requireAppError(t, err, "CARD_006")
}

func TestTicketingService_IssueTicket_ForceOverwrites(t *testing.T) {
	d := setupTicketingService(t, false)
	defer d.ctrl.Finish()

	tx := &mockTx{}
	d.expectRead(d.blob(t, freshTicket(d.catalog, "3")), nil)
	d.transactor.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	d.sink.EXPECT().RegisterTicketUpdate(gomock.Any(), tx, gomock.Any()).Return(nil)
	d.expectWrite(nil, okWrite, nil)

	ticket, err := d.svc.IssueTicket(context.Background(), testCard, true)
	require.NoError(t, err)
	assert.True(t, ticket.Credit.IsZero())
}

func TestTicketingService_IssueTicket_CommitFailureOnEmptyCardSkipsRestore(t *testing.T) {
	d := setupTicketingService(t, false)
	defer d.ctrl.Finish()

	tx := &mockTx{commitErr: errors.New("conn closed")}
	d.expectRead(nil, ports.ErrCardEmpty)
	d.transactor.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	d.sink.EXPECT().RegisterTicketUpdate(gomock.Any(), tx, gomock.Any()).Return(nil)
	d.expectWrite(nil, okWrite, nil).Times(1)

	_, err := d.svc.IssueTicket(context.Background(), testCard, false)
	requireAppError(t, err, "SYS_001")
}

// ==================== AddCredit Tests ====================

func TestTicketingService_AddCredit_Success(t *testing.T) {
	d := setupTicketingService(t, false)
	defer d.ctrl.Finish()

	d.now = at(15)
	tx := &mockTx{}
	var written []byte
	d.expectRead(d.blob(t, sessionTicket(t, d.catalog, "B", "0.50", "1.50", at(0), at(0))), nil)
	d.transactor.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	gomock.InOrder(
		d.sink.EXPECT().RegisterTransaction(gomock.Any(), tx, gomock.Any()).DoAndReturn(
			func(_ context.Context, _ pgx.Tx, txn *domain.CreditTransaction) error {
				assert.True(t, txn.Amount.Equal(dec("20")))
				assert.Equal(t, "STOP-42", txn.Location)
				assert.Equal(t, at(15), txn.Time)
				assert.NotEqual(t, uuid.Nil, txn.ID)
				return nil
			}),
		d.sink.EXPECT().RegisterTicketUpdate(gomock.Any(), tx, gomock.Any()).Return(nil),
	)
	d.expectWrite(&written, okWrite, nil)

	ticket, err := d.svc.AddCredit(context.Background(), testCard, dec("20"))
	require.NoError(t, err)
	assert.True(t, ticket.Credit.Equal(dec("20.50")))
	assert.True(t, ticket.SessionExpense.Equal(dec("1.50")), "top-up must not touch the session")
	require.NotNil(t, ticket.SessionValidation)
	assert.Equal(t, at(0), *ticket.SessionValidation)

	onCard, err := d.codec.Decrypt(written, testCard)
	require.NoError(t, err)
	assert.True(t, onCard.Credit.Equal(dec("20.50")))
}

func TestTicketingService_AddCredit_InvalidAmount(t *testing.T) {
	d := setupTicketingService(t, false)
	defer d.ctrl.Finish()

	for _, amount := range []string{"0", "-5", "0.015", "10.001"} {
		_, err := d.svc.AddCredit(context.Background(), testCard, dec(amount))
		requireAppError(t, err, "FARE_002")
	}
}

func TestTicketingService_AddCredit_ThenRetryTapSucceeds(t *testing.T) {
	d := setupTicketingService(t, false)
	defer d.ctrl.Finish()

	var onCard []byte
	start := domain.NewTicket(testCard, d.catalog.Base(), at(-600))
	start.Credit = dec("1.00")
	onCard = d.blob(t, start)

	d.transport.EXPECT().ReadTicketBlob(gomock.Any(), testCard).DoAndReturn(
		func(context.Context, domain.CardID) ([]byte, error) { return onCard, nil }).Times(3)
	d.transport.EXPECT().WriteTicketBlob(gomock.Any(), testCard, gomock.Any(), testCredential).DoAndReturn(
		func(_ context.Context, _ domain.CardID, blob []byte, _ string) ([]ports.OperationResult, error) {
			onCard = blob
			return okWrite, nil
		}).Times(2)
	d.transactor.EXPECT().Begin(gomock.Any()).DoAndReturn(
		func(context.Context) (pgx.Tx, error) { return &mockTx{}, nil }).Times(2)
	d.sink.EXPECT().RegisterTransaction(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	d.sink.EXPECT().RegisterValidation(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	d.sink.EXPECT().RegisterTicketUpdate(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)

	_, err := d.svc.ValidateTicket(context.Background(), testCard)
	requireAppError(t, err, "FARE_001")

	_, err = d.svc.AddCredit(context.Background(), testCard, dec("5"))
	require.NoError(t, err)

	res, err := d.svc.ValidateTicket(context.Background(), testCard)
	require.NoError(t, err)
	assert.Equal(t, domain.OutcomeReset, res.Outcome)
	assert.True(t, res.Ticket.Credit.Equal(dec("4.50")), "charged exactly once")
}

// ==================== ReadTicket / History Tests ====================

func TestTicketingService_ReadTicket(t *testing.T) {
	d := setupTicketingService(t, false)
	defer d.ctrl.Finish()

	d.expectRead(d.blob(t, freshTicket(d.catalog, "7.25")), nil)

	ticket, err := d.svc.ReadTicket(context.Background(), testCard)
	require.NoError(t, err)
	assert.True(t, ticket.Credit.Equal(dec("7.25")))
}

func TestTicketingService_History(t *testing.T) {
	d := setupTicketingService(t, false)
	defer d.ctrl.Finish()

	ctx := context.Background()
	snap := freshTicket(d.catalog, "2").Snapshot(at(0))
	d.tickets.EXPECT().GetByCardID(ctx, testCard).Return(snap, nil)
	d.validations.EXPECT().ListByCard(ctx, testCard, 10).Return([]domain.ValidationRecord{{ID: uuid.New()}}, nil)
	d.transactions.EXPECT().ListByCard(ctx, testCard, 10).Return(nil, nil)

	h, err := d.svc.History(ctx, testCard, 10)
	require.NoError(t, err)
	assert.Same(t, snap, h.Snapshot)
	assert.Len(t, h.Validations, 1)
	assert.Empty(t, h.Transactions)
}

func TestTicketingService_History_ClampsLimit(t *testing.T) {
	d := setupTicketingService(t, false)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.tickets.EXPECT().GetByCardID(ctx, testCard).Return(nil, nil)
	d.validations.EXPECT().ListByCard(ctx, testCard, maxHistoryLimit).Return(nil, nil)
	d.transactions.EXPECT().ListByCard(ctx, testCard, maxHistoryLimit).Return(nil, nil)

	_, err := d.svc.History(ctx, testCard, 100000)
	requireAppError(t, err, "CARD_007")
}

func TestTicketingService_History_DatabaseError(t *testing.T) {
	d := setupTicketingService(t, false)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.tickets.EXPECT().GetByCardID(ctx, testCard).Return(nil, errors.New("timeout"))

	_, err := d.svc.History(ctx, testCard, 0)
	requireAppError(t, err, "SYS_001")
}
