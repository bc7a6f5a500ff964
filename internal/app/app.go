// Package app assembles the validator from configuration. The HTTP server
// and farectl share it so both run the same orchestrator.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fare-validator/config"
	httpHandler "fare-validator/internal/adapter/http/handler"
	pgStorage "fare-validator/internal/adapter/storage/postgres"
	redisStorage "fare-validator/internal/adapter/storage/redis"
	"fare-validator/internal/adapter/transport/memory"
	redisTransport "fare-validator/internal/adapter/transport/redis"
	"fare-validator/internal/core/domain"
	"fare-validator/internal/core/ports"
	"fare-validator/internal/service"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// Infra holds the live connections the services run on.
type Infra struct {
	DB    pgStorage.Pool
	Redis goredis.UniversalClient
	// Transport overrides card.transport when set.
	Transport ports.TicketTransport
}

// App is a fully wired validator.
type App struct {
	Config         *config.Config
	Log            zerolog.Logger
	Catalog        *domain.Catalog
	Ticketing      *service.TicketingServiceImpl
	Auth           *service.AuthServiceImpl
	Tokens         *service.JWTTokenService
	Audit          *service.OperatorAudit
	ValidatorKeys  service.StaticValidatorKeys
	Nonces         *redisStorage.NonceStore
	RateLimits     *redisStorage.RateLimitStore
	HealthCheckers []ports.HealthChecker

	closers []func()
}

// Connect opens PostgreSQL and Redis, applies migrations and builds the app.
func Connect(ctx context.Context, cfg *config.Config, log zerolog.Logger, transport ports.TicketTransport) (*App, error) {
	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("connecting postgres: %w", err)
	}
	if err := pgStorage.Migrate(ctx, pool, log); err != nil {
		pool.Close()
		return nil, fmt.Errorf("migrating: %w", err)
	}

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("connecting redis: %w", err)
	}

	a, err := Build(cfg, log, Infra{DB: pool, Redis: rdb, Transport: transport})
	if err != nil {
		_ = rdb.Close()
		pool.Close()
		return nil, err
	}
	// Infra closes last: closers run in reverse.
	a.closers = append([]func(){func() { _ = rdb.Close() }, pool.Close}, a.closers...)
	return a, nil
}

// Build wires every service on top of already established connections.
func Build(cfg *config.Config, log zerolog.Logger, infra Infra) (*App, error) {
	catalog, err := BuildCatalog(cfg.Fares)
	if err != nil {
		return nil, err
	}

	codec, err := service.NewAESTicketCodec(cfg.Card.MasterKey, catalog)
	if err != nil {
		return nil, fmt.Errorf("card master key: %w", err)
	}

	if len(cfg.Operators) > 0 && cfg.JWT.Secret == "" {
		return nil, errors.New("jwt.secret is required when operators are configured")
	}

	keys, err := ValidatorKeys(cfg.Validators)
	if err != nil {
		return nil, err
	}
	if len(keys) == 0 {
		log.Warn().Msg("no validator keys configured, every tap will be rejected")
	}

	a := &App{Config: cfg, Log: log, Catalog: catalog, ValidatorKeys: keys}

	transport := infra.Transport
	if transport == nil {
		transport, err = newTransport(cfg.Card, infra.Redis)
		if err != nil {
			return nil, err
		}
	}

	tickets := pgStorage.NewTicketRepo(infra.DB)
	validations := pgStorage.NewValidationRepo(infra.DB)
	transactions := pgStorage.NewCreditTransactionRepo(infra.DB)

	deps := service.TicketingDeps{
		Engine: service.NewValidationEngine(catalog, service.EngineOptions{
			RecordUpgradeValidation: cfg.Engine.RecordUpgradeValidation,
		}),
		Transport:    transport,
		Codec:        codec,
		Location:     service.StaticLocation(cfg.Validator.Location),
		Sink:         service.NewStorageAuditSink(tickets, validations, transactions),
		Transactor:   pgStorage.NewTransactor(infra.DB),
		Tickets:      tickets,
		Validations:  validations,
		Transactions: transactions,
	}
	if infra.Redis != nil {
		deps.Lock = redisStorage.NewCardLock(infra.Redis)
		a.Nonces = redisStorage.NewNonceStore(infra.Redis)
		a.RateLimits = redisStorage.NewRateLimitStore(infra.Redis)
		a.HealthCheckers = append(a.HealthCheckers, redisStorage.NewHealthCheck(infra.Redis, 0))
	} else {
		log.Warn().Msg("no redis client, card locking and rate limits disabled, taps are refused")
	}
	a.HealthCheckers = append([]ports.HealthChecker{pgStorage.NewStoreHealth(infra.DB)}, a.HealthCheckers...)

	a.Ticketing = service.NewTicketingService(deps, service.TicketingConfig{
		WriteCredential: cfg.Card.WriteCredential,
		LockTTL:         cfg.Card.LockTTL,
	}, log)

	a.Tokens = service.NewJWTTokenService(cfg.JWT.Secret, cfg.JWT.Expiry, cfg.JWT.Issuer)
	a.Auth = service.NewAuthService(Operators(cfg.Operators), service.NewArgon2HashService(), a.Tokens)
	a.Audit = service.NewOperatorAudit(pgStorage.NewAuditRepo(infra.DB), log, cfg.Server.AuditQueue)
	a.closers = append(a.closers, a.Audit.Close)

	log.Info().
		Str("location", cfg.Validator.Location).
		Str("base_tier", catalog.Base().Name).
		Int("tiers", len(catalog.Tiers())).
		Int("operators", len(cfg.Operators)).
		Msg("validator assembled")

	return a, nil
}

// Router returns the HTTP API bound to this app.
func (a *App) Router() *gin.Engine {
	deps := httpHandler.RouterDeps{
		AuthSvc:        a.Auth,
		TicketingSvc:   a.Ticketing,
		Catalog:        a.Catalog,
		TokenSvc:       a.Tokens,
		ValidatorKeys:  a.ValidatorKeys,
		SigSvc:         service.NewHMACSignatureService(),
		RateLimitStore: a.RateLimits,
		HealthCheckers: a.HealthCheckers,
		AuditSvc:       a.Audit,
		Logger:         a.Log,
	}
	if a.Nonces != nil {
		deps.NonceStore = a.Nonces
	}
	return httpHandler.SetupRouter(deps)
}

// Close releases the connections opened by Connect, last opened first.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

// BuildCatalog parses the configured tiers into a linked catalog.
func BuildCatalog(cfg config.FaresConfig) (*domain.Catalog, error) {
	defs := make([]domain.TierDefinition, 0, len(cfg.Tiers))
	for _, t := range cfg.Tiers {
		cost, err := decimal.NewFromString(t.Cost)
		if err != nil {
			return nil, fmt.Errorf("%w: tier %q cost %q", domain.ErrInvalidFareTier, t.Name, t.Cost)
		}
		defs = append(defs, domain.TierDefinition{
			Name:            t.Name,
			DurationMinutes: t.DurationMinutes,
			Cost:            cost,
			Next:            t.Next,
		})
	}
	catalog, err := domain.NewCatalog(defs, cfg.Base)
	if err != nil {
		return nil, fmt.Errorf("fare catalog: %w", err)
	}
	return catalog, nil
}

// Operators maps configured accounts to service credentials.
func Operators(cfg []config.OperatorConfig) []service.OperatorCredential {
	out := make([]service.OperatorCredential, 0, len(cfg))
	for _, op := range cfg {
		out = append(out, service.OperatorCredential{Username: op.Username, PasswordHash: op.PasswordHash})
	}
	return out
}

// ValidatorKeys indexes the configured device secrets by validator id.
func ValidatorKeys(cfg []config.ValidatorKeyConfig) (service.StaticValidatorKeys, error) {
	keys := make(service.StaticValidatorKeys, len(cfg))
	for _, v := range cfg {
		if v.ID == "" || v.Secret == "" {
			return nil, fmt.Errorf("validator key %q: id and secret are required", v.ID)
		}
		if _, dup := keys[v.ID]; dup {
			return nil, fmt.Errorf("validator key %q configured twice", v.ID)
		}
		keys[v.ID] = v.Secret
	}
	return keys, nil
}

func newTransport(cfg config.CardConfig, client goredis.UniversalClient) (ports.TicketTransport, error) {
	switch strings.ToLower(cfg.Transport) {
	case "", "redis":
		if client == nil {
			return nil, errors.New("redis card transport needs a redis client")
		}
		return redisTransport.NewTransport(client), nil
	case "memory":
		t, err := memory.Open(cfg.MemoryPath)
		if err != nil {
			return nil, fmt.Errorf("opening card file: %w", err)
		}
		return t, nil
	default:
		return nil, fmt.Errorf("unknown card transport %q", cfg.Transport)
	}
}
