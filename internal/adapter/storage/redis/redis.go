package redis

import (
	"context"
	"fmt"
	"time"

	"fare-validator/config"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const (
	clientName         = "fare-validator"
	defaultPingTimeout = 2 * time.Second
)

// NewClient connects to the store shared by validators for card locks and
// rate limits. The client is returned only after a successful ping.
func NewClient(ctx context.Context, cfg config.RedisConfig, log zerolog.Logger) (goredis.UniversalClient, error) {
	client := goredis.NewUniversalClient(&goredis.UniversalOptions{
		Addrs:      []string{cfg.Addr()},
		Password:   cfg.Password,
		DB:         cfg.DB,
		ClientName: clientName,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis at %s: %w", cfg.Addr(), err)
	}

	log.Info().Str("addr", cfg.Addr()).Int("db", cfg.DB).Msg("card lock store connected")
	return client, nil
}

// HealthCheck pings the lock store with a bounded timeout.
type HealthCheck struct {
	client  goredis.UniversalClient
	timeout time.Duration
}

// NewHealthCheck builds a checker; a non-positive timeout uses the default.
func NewHealthCheck(client goredis.UniversalClient, timeout time.Duration) *HealthCheck {
	if timeout <= 0 {
		timeout = defaultPingTimeout
	}
	return &HealthCheck{client: client, timeout: timeout}
}

func (h *HealthCheck) Name() string { return "redis" }

func (h *HealthCheck) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()
	return h.client.Ping(ctx).Err()
}
