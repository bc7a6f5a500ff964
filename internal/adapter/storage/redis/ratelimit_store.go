package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// takeScript counts a hit and arms the expiry on the first hit of a window
// in one round trip, so a crash between the two cannot leave a counter
// that never expires.
var takeScript = goredis.NewScript(`
local n = redis.call("INCR", KEYS[1])
if n == 1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return n
`)

// Quota is the state of one caller's window after a hit.
type Quota struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	Reset     time.Time
}

// RetryAfter is the whole-second wait until the window resets, at least one.
func (q Quota) RetryAfter(now time.Time) int64 {
	secs := int64(q.Reset.Sub(now).Round(time.Second) / time.Second)
	if secs < 1 {
		return 1
	}
	return secs
}

// RateLimitStore keeps fixed-window counters shared by every validator.
type RateLimitStore struct {
	client goredis.UniversalClient
	now    func() time.Time
}

func NewRateLimitStore(client goredis.UniversalClient) *RateLimitStore {
	return &RateLimitStore{client: client, now: time.Now}
}

// Take records one hit for key and reports whether it fits in the window.
func (s *RateLimitStore) Take(ctx context.Context, key string, limit int64, window time.Duration) (Quota, error) {
	if window < time.Second {
		window = time.Second
	}
	now := s.now()
	start := now.Truncate(window)
	reset := start.Add(window)
	redisKey := fmt.Sprintf("ratelimit:%s:%d", key, start.Unix())

	// Keep the key a little past the window so late hits still see it.
	ttl := reset.Sub(now) + time.Second
	count, err := takeScript.Run(ctx, s.client, []string{redisKey}, ttl.Milliseconds()).Int64()
	if err != nil {
		return Quota{}, fmt.Errorf("rate limit %s: %w", key, err)
	}

	return Quota{
		Allowed:   count <= limit,
		Limit:     limit,
		Remaining: max(limit-count, 0),
		Reset:     reset,
	}, nil
}
