package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"fare-validator/internal/core/domain"
	"fare-validator/internal/core/ports"
	"fare-validator/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const (
	defaultLockTTL      = 10 * time.Second
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

// errNotRestored marks a commit failure that also left the new blob on the card.
var errNotRestored = errors.New("prior ticket not restored")

// TicketingDeps groups the collaborators of the ticketing service.
type TicketingDeps struct {
	Engine       *ValidationEngine
	Transport    ports.TicketTransport
	Codec        ports.TicketCodec
	Location     ports.LocationProvider
	Sink         ports.AuditSink
	Transactor   ports.DBTransactor
	Tickets      ports.TicketRepository
	Validations  ports.ValidationRepository
	Transactions ports.CreditTransactionRepository
	Lock         ports.CardLock // nil disables cross-validator locking
}

// TicketingConfig holds the card-facing settings.
type TicketingConfig struct {
	WriteCredential string
	LockTTL         time.Duration
}

// TicketingServiceImpl implements ports.TicketingService. Every operation is
// read-modify-write on the card, with the secondary log written in the same
// unit: a failed card write rolls the database back, and a failed commit
// restores the prior blob on the card.
type TicketingServiceImpl struct {
	deps TicketingDeps
	cfg  TicketingConfig
	log  zerolog.Logger
	now  func() time.Time
}

// NewTicketingService creates a new TicketingServiceImpl.
func NewTicketingService(deps TicketingDeps, cfg TicketingConfig, log zerolog.Logger) *TicketingServiceImpl {
	if cfg.LockTTL <= 0 {
		cfg.LockTTL = defaultLockTTL
	}
	return &TicketingServiceImpl{
		deps: deps,
		cfg:  cfg,
		log:  log,
		now:  time.Now,
	}
}

// WithClock overrides the time source. Used by tests and replay tooling.
func (s *TicketingServiceImpl) WithClock(now func() time.Time) *TicketingServiceImpl {
	s.now = now
	return s
}

// IssueTicket writes a fresh ticket on the card. Without force, a card that
// already carries a readable ticket is left alone.
func (s *TicketingServiceImpl) IssueTicket(ctx context.Context, cardID domain.CardID, force bool) (*domain.TicketState, error) {
	var issued *domain.TicketState
	err := s.withCardLock(ctx, cardID, func() error {
		prior, err := s.deps.Transport.ReadTicketBlob(ctx, cardID)
		switch {
		case errors.Is(err, ports.ErrCardEmpty):
			prior = nil
		case err != nil:
			return apperror.ErrTransportFailure(fmt.Errorf("read card: %w", err))
		case !force:
			if _, err := s.decode(prior, cardID); err != nil {
				return err
			}
			return apperror.ErrTicketAlreadyIssued()
		}

		ticket := domain.NewTicket(cardID, s.deps.Engine.Catalog().Base(), s.now().UTC())
		if err := s.commit(ctx, cardID, prior, ticket, func(tx pgx.Tx, _ string) error {
			return s.deps.Sink.RegisterTicketUpdate(ctx, tx, ticket)
		}); err != nil {
			return err
		}

		s.log.Info().
			Str("card_id", cardID.String()).
			Bool("force", force).
			Str("tier", ticket.Tier.Name).
			Msg("ticket issued")
		issued = ticket
		return nil
	})
	return issued, err
}

// ReadTicket decodes the ticket currently on the card without changing it.
func (s *TicketingServiceImpl) ReadTicket(ctx context.Context, cardID domain.CardID) (*domain.TicketState, error) {
	ticket, _, err := s.load(ctx, cardID)
	return ticket, err
}

// ValidateTicket processes one tap.
func (s *TicketingServiceImpl) ValidateTicket(ctx context.Context, cardID domain.CardID) (*ports.TapResult, error) {
	var out *ports.TapResult
	err := s.withCardLock(ctx, cardID, func() error {
		ticket, prior, err := s.load(ctx, cardID)
		if err != nil {
			return err
		}

		now := s.now().UTC()
		location := s.deps.Location.CurrentLocation()

		result, err := s.deps.Engine.Validate(ticket, location, now)
		if err != nil {
			s.log.Info().
				Err(err).
				Str("card_id", cardID.String()).
				Str("credit", ticket.Credit.StringFixed(2)).
				Msg("tap rejected")
			return mapFareError(err)
		}

		if err := s.commit(ctx, cardID, prior, result.Ticket, func(tx pgx.Tx, digest string) error {
			for _, rec := range result.Validations() {
				rec.EncryptedStateDigest = digest
			}
			return dispatchEvents(ctx, tx, s.deps.Sink, result.Events)
		}); err != nil {
			return err
		}

		s.log.Info().
			Str("card_id", cardID.String()).
			Str("outcome", string(result.Outcome)).
			Str("charged", result.Charged.StringFixed(2)).
			Str("credit", result.Ticket.Credit.StringFixed(2)).
			Str("tier", result.Ticket.Tier.Name).
			Str("location", location).
			Msg("tap processed")

		out = &ports.TapResult{
			Ticket:   result.Ticket,
			Outcome:  result.Outcome,
			Charged:  result.Charged,
			Location: location,
			Time:     now,
		}
		return nil
	})
	return out, err
}

// AddCredit tops up the card. It does not touch the session.
func (s *TicketingServiceImpl) AddCredit(ctx context.Context, cardID domain.CardID, amount decimal.Decimal) (*domain.TicketState, error) {
	if !amount.IsPositive() || !domain.WholeCents(amount) {
		return nil, apperror.ErrInvalidAmount()
	}

	var updated *domain.TicketState
	err := s.withCardLock(ctx, cardID, func() error {
		ticket, prior, err := s.load(ctx, cardID)
		if err != nil {
			return err
		}

		now := s.now().UTC()
		next := ticket.Clone()
		next.Credit = next.Credit.Add(amount)
		next.LastUsage = now

		txn := &domain.CreditTransaction{
			ID:       uuid.New(),
			CardID:   next.CardID,
			Location: s.deps.Location.CurrentLocation(),
			Time:     now,
			Amount:   amount,
		}

		if err := s.commit(ctx, cardID, prior, next, func(tx pgx.Tx, _ string) error {
			return dispatchEvents(ctx, tx, s.deps.Sink, []domain.AuditEvent{
				{Kind: domain.AuditEventCreditTransaction, Transaction: txn},
				{Kind: domain.AuditEventTicketUpdate, Ticket: next.Clone()},
			})
		}); err != nil {
			return err
		}

		s.log.Info().
			Str("card_id", cardID.String()).
			Str("amount", amount.StringFixed(2)).
			Str("credit", next.Credit.StringFixed(2)).
			Msg("credit added")
		updated = next
		return nil
	})
	return updated, err
}

// History returns the secondary log kept for a card.
func (s *TicketingServiceImpl) History(ctx context.Context, cardID domain.CardID, limit int) (*ports.TicketHistory, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	snap, err := s.deps.Tickets.GetByCardID(ctx, cardID)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("get ticket snapshot: %w", err))
	}
	validations, err := s.deps.Validations.ListByCard(ctx, cardID, limit)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list validations: %w", err))
	}
	transactions, err := s.deps.Transactions.ListByCard(ctx, cardID, limit)
	if err != nil {
		return nil, apperror.ErrDatabaseError(fmt.Errorf("list transactions: %w", err))
	}
	if snap == nil && len(validations) == 0 && len(transactions) == 0 {
		return nil, apperror.ErrNotFound("Ticket history")
	}

	return &ports.TicketHistory{
		Snapshot:     snap,
		Validations:  validations,
		Transactions: transactions,
	}, nil
}

// withCardLock runs fn while holding the per-card lock, if one is configured.
func (s *TicketingServiceImpl) withCardLock(ctx context.Context, cardID domain.CardID, fn func() error) error {
	if s.deps.Lock == nil {
		return fn()
	}

	token, ok, err := s.deps.Lock.Acquire(ctx, cardID, s.cfg.LockTTL)
	if err != nil {
		return apperror.ErrLockFailure(err)
	}
	if !ok {
		return apperror.ErrCardBusy()
	}
	defer func() {
		if err := s.deps.Lock.Release(context.WithoutCancel(ctx), cardID, token); err != nil {
			s.log.Warn().Err(err).Str("card_id", cardID.String()).Msg("failed to release card lock")
		}
	}()

	return fn()
}

// load reads and decodes the ticket, returning the raw blob for compensation.
func (s *TicketingServiceImpl) load(ctx context.Context, cardID domain.CardID) (*domain.TicketState, []byte, error) {
	blob, err := s.deps.Transport.ReadTicketBlob(ctx, cardID)
	if errors.Is(err, ports.ErrCardEmpty) {
		return nil, nil, apperror.ErrCardEmpty()
	}
	if err != nil {
		return nil, nil, apperror.ErrTransportFailure(fmt.Errorf("read card: %w", err))
	}

	ticket, err := s.decode(blob, cardID)
	if err != nil {
		return nil, nil, err
	}
	return ticket, blob, nil
}

func (s *TicketingServiceImpl) decode(blob []byte, cardID domain.CardID) (*domain.TicketState, error) {
	ticket, err := s.deps.Codec.Decrypt(blob, cardID)
	if err != nil {
		return nil, mapFareError(err)
	}
	if !ticket.CardID.Equal(cardID) {
		s.log.Warn().
			Str("card_id", cardID.String()).
			Str("ticket_card_id", ticket.CardID.String()).
			Msg("ticket belongs to a different card")
		return nil, apperror.ErrCardMismatch()
	}
	return ticket, nil
}

// commit encrypts next, persists through persist inside a database
// transaction, writes the card and commits.
func (s *TicketingServiceImpl) commit(
	ctx context.Context,
	cardID domain.CardID,
	prior []byte,
	next *domain.TicketState,
	persist func(tx pgx.Tx, digest string) error,
) error {
	blob, err := s.deps.Codec.Encrypt(next)
	if err != nil {
		return apperror.ErrEncryptionFailure(fmt.Errorf("encrypt ticket: %w", err))
	}

	dbTx, err := s.deps.Transactor.Begin(ctx)
	if err != nil {
		return apperror.ErrDatabaseError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	if err := persist(dbTx, blobDigest(blob)); err != nil {
		return apperror.ErrDatabaseError(err)
	}

	if err := s.writeCard(ctx, cardID, blob); err != nil {
		return err
	}

	if err := dbTx.Commit(ctx); err != nil {
		if rerr := s.compensate(ctx, cardID, prior); rerr != nil {
			return apperror.ErrDatabaseError(fmt.Errorf("commit tx: %w: %w", err, rerr))
		}
		return apperror.ErrDatabaseError(fmt.Errorf("commit tx: %w", err))
	}

	return nil
}

func (s *TicketingServiceImpl) writeCard(ctx context.Context, cardID domain.CardID, blob []byte) error {
	results, err := s.deps.Transport.WriteTicketBlob(ctx, cardID, blob, s.cfg.WriteCredential)
	if err = checkWrite(results, err); err != nil {
		s.log.Warn().
			Err(err).
			Str("card_id", cardID.String()).
			Interface("operations", results).
			Msg("card write failed")
		return apperror.ErrTransportFailure(fmt.Errorf("write card: %w", err))
	}
	return nil
}

// checkWrite folds a failed low-level step into the write error. A card can
// report a failed operation without the transport returning an error.
func checkWrite(results []ports.OperationResult, err error) error {
	if err != nil {
		return err
	}
	for _, r := range results {
		if !r.Success {
			return fmt.Errorf("%s failed: %s", r.Operation, r.Detail)
		}
	}
	return nil
}

// compensate puts the prior blob back after the secondary log refused the
// new state, so the card stays authoritative.
func (s *TicketingServiceImpl) compensate(ctx context.Context, cardID domain.CardID, prior []byte) error {
	if prior == nil {
		s.log.Error().Str("card_id", cardID.String()).Msg("commit failed after issuing; card keeps the new ticket")
		return nil
	}
	results, err := s.deps.Transport.WriteTicketBlob(context.WithoutCancel(ctx), cardID, prior, s.cfg.WriteCredential)
	if err = checkWrite(results, err); err != nil {
		s.log.Error().
			Err(err).
			Str("card_id", cardID.String()).
			Interface("operations", results).
			Msg("failed to restore prior ticket after commit failure")
		return fmt.Errorf("%w: %w", errNotRestored, err)
	}
	s.log.Warn().Str("card_id", cardID.String()).Msg("restored prior ticket after commit failure")
	return nil
}

func blobDigest(blob []byte) string {
	sum := sha256.Sum256(blob)
	return hex.EncodeToString(sum[:])
}

// mapFareError converts engine and codec errors to API errors.
func mapFareError(err error) error {
	switch {
	case errors.Is(err, domain.ErrInsufficientCredit):
		return apperror.ErrInsufficientCredit(err)
	case errors.Is(err, domain.ErrNegativeCredit):
		return apperror.ErrNegativeCredit()
	case errors.Is(err, domain.ErrUnknownFareTier):
		return apperror.ErrUnknownTier(err)
	case errors.Is(err, domain.ErrCorruptTicket):
		return apperror.ErrCorruptTicket(err)
	default:
		return apperror.ErrEncryptionFailure(err)
	}
}
