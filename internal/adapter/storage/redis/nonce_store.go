package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// NonceStore implements ports.NonceStore using Redis SET NX.
type NonceStore struct {
	client goredis.UniversalClient
	prefix string
}

// NewNonceStore creates a new Redis-backed nonce store.
func NewNonceStore(client goredis.UniversalClient) *NonceStore {
	return &NonceStore{client: client, prefix: "nonce:"}
}

// CheckAndSet records the nonce for ttl. It returns false when the validator
// already used it inside that window.
func (s *NonceStore) CheckAndSet(ctx context.Context, validatorID string, nonce string, ttl time.Duration) (bool, error) {
	key := s.prefix + validatorID + ":" + nonce
	result, err := s.client.SetArgs(ctx, key, 1, goredis.SetArgs{Mode: "NX", TTL: ttl}).Result()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis nonce check: %w", err)
	}
	return result == "OK", nil
}
