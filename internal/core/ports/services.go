package ports

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"fare-validator/internal/core/domain"

	"github.com/shopspring/decimal"
)

// ErrCardEmpty is returned by a transport when the card carries no ticket blob.
var ErrCardEmpty = errors.New("card carries no ticket")

// TicketTransport moves opaque ticket blobs to and from a card.
type TicketTransport interface {
	ReadTicketBlob(ctx context.Context, cardID domain.CardID) ([]byte, error)
	WriteTicketBlob(ctx context.Context, cardID domain.CardID, blob []byte, credential string) ([]OperationResult, error)
}

// OperationResult reports one low-level step of a card write.
type OperationResult struct {
	Operation string `json:"operation"`
	Success   bool   `json:"success"`
	Detail    string `json:"detail,omitempty"`
}

// TicketCodec encrypts ticket state with a key derived from the card identifier.
type TicketCodec interface {
	Encrypt(ticket *domain.TicketState) ([]byte, error)
	Decrypt(blob []byte, cardID domain.CardID) (*domain.TicketState, error)
}

// HealthChecker is one dependency reported by the health endpoint.
type HealthChecker interface {
	Name() string
	Ping(ctx context.Context) error
}

// LocationProvider names the point of use for audit attribution.
type LocationProvider interface {
	CurrentLocation() string
}

// CardLock serialises taps on the same card across validators.
type CardLock interface {
	// Acquire returns ok=false when another holder owns the lock.
	Acquire(ctx context.Context, cardID domain.CardID, ttl time.Duration) (token string, ok bool, err error)
	Release(ctx context.Context, cardID domain.CardID, token string) error
}

// SignatureService signs and verifies validator requests with HMAC-SHA256.
type SignatureService interface {
	Sign(secretKey string, payload string) string
	Verify(secretKey string, payload string, signature string) bool
	BuildCanonicalString(method, path string, timestamp int64, nonce string, body string) string
}

// ValidatorKeyring resolves the shared secret of a validator device.
type ValidatorKeyring interface {
	SecretFor(validatorID string) (secret string, ok bool)
}

// NonceStore remembers request nonces to reject replays.
type NonceStore interface {
	// CheckAndSet returns true when the nonce is new for this validator.
	CheckAndSet(ctx context.Context, validatorID string, nonce string, ttl time.Duration) (bool, error)
}

// HashService handles password hashing (Argon2id).
type HashService interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) (bool, error)
}

// TokenService handles JWT token operations.
type TokenService interface {
	Generate(operator string) (string, time.Time, error)
	Validate(tokenString string) (*TokenClaims, error)
}

// TokenClaims holds the parsed JWT claims.
type TokenClaims struct {
	Operator string
}

// --- Service Ports (Business Logic) ---

// TicketingService drives a card through issue, tap and top-up.
type TicketingService interface {
	IssueTicket(ctx context.Context, cardID domain.CardID, force bool) (*domain.TicketState, error)
	ReadTicket(ctx context.Context, cardID domain.CardID) (*domain.TicketState, error)
	ValidateTicket(ctx context.Context, cardID domain.CardID) (*TapResult, error)
	AddCredit(ctx context.Context, cardID domain.CardID, amount decimal.Decimal) (*domain.TicketState, error)
	History(ctx context.Context, cardID domain.CardID, limit int) (*TicketHistory, error)
}

// TapResult is the outcome of one validation as seen by the caller.
type TapResult struct {
	Ticket   *domain.TicketState
	Outcome  domain.Outcome
	Charged  decimal.Decimal
	Location string
	Time     time.Time
}

// TicketHistory is the secondary log kept for one card.
type TicketHistory struct {
	Snapshot     *domain.TicketSnapshot
	Validations  []domain.ValidationRecord
	Transactions []domain.CreditTransaction
}

// AuthService authenticates back-office operators.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, time.Time, error) // token, expiry, error
}

// AuditService records operator actions without blocking the request.
type AuditService interface {
	Log(ctx context.Context, action *domain.OperatorAction)
}
