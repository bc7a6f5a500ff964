package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fare-validator/internal/core/domain"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// releaseScript deletes the lock only if it still holds our token, so a
// holder whose TTL lapsed cannot free a lock taken over by someone else.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// CardLock implements ports.CardLock using Redis SET NX PX.
type CardLock struct {
	client goredis.UniversalClient
	prefix string
}

// NewCardLock creates a new Redis-backed card lock.
func NewCardLock(client goredis.UniversalClient) *CardLock {
	return &CardLock{
		client: client,
		prefix: "card-lock:",
	}
}

// Acquire takes the lock for cardID. Returns ok=false if it is already held.
func (l *CardLock) Acquire(ctx context.Context, cardID domain.CardID, ttl time.Duration) (string, bool, error) {
	token := uuid.NewString()
	result, err := l.client.SetArgs(ctx, l.prefix+cardID.String(), token, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis card lock: %w", err)
	}
	return token, result == "OK", nil
}

// Release frees the lock if token still owns it.
func (l *CardLock) Release(ctx context.Context, cardID domain.CardID, token string) error {
	if err := releaseScript.Run(ctx, l.client, []string{l.prefix + cardID.String()}, token).Err(); err != nil {
		return fmt.Errorf("redis card unlock: %w", err)
	}
	return nil
}
