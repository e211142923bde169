package kv

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// reserveScript implements the limit-occurrence counter as a sorted
// set of unique tokens scored by reservation time. Atomically:
// prune entries outside the window, check cardinality against max,
// insert the new token, extend the key TTL past the window.
var reserveScript = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local maxn = tonumber(ARGV[3])
local token = ARGV[4]
redis.call("ZREMRANGEBYSCORE", key, "-inf", now - window)
local count = redis.call("ZCARD", key)
if count >= maxn then
	return {0, count}
end
redis.call("ZADD", key, now, token)
redis.call("PEXPIRE", key, (window + 60) * 1000)
return {1, count + 1}
`)

// releaseTokenScript removes the token only if it is still present.
var releaseTokenScript = redis.NewScript(`
return redis.call("ZREM", KEYS[1], ARGV[1])
`)

// Reservation is one reserved limit-counter member. Held until the
// confirm either commits (kept, expires with the window) or rolls
// back (released).
type Reservation struct {
	Key   string
	Token string
}

// LimitCounter reserves and releases LIMIT_OCCURRENCE counters.
type LimitCounter interface {
	// Reserve attempts to take one occurrence under key. window is the
	// rolling period; maxN the cap. Returns allowed=false with the
	// current count when the cap is reached.
	Reserve(ctx context.Context, key string, window time.Duration, maxN int) (res Reservation, allowed bool, count int, err error)

	// Release undoes a reservation. Releasing an already-expired or
	// already-released token is a no-op.
	Release(ctx context.Context, res Reservation) error
}

// RedisLimitCounter implements LimitCounter on Redis sorted sets.
type RedisLimitCounter struct {
	client redis.Cmdable
}

// NewRedisLimitCounter wraps a Redis client.
func NewRedisLimitCounter(client redis.Cmdable) *RedisLimitCounter {
	return &RedisLimitCounter{client: client}
}

func (c *RedisLimitCounter) Reserve(ctx context.Context, key string, window time.Duration, maxN int) (Reservation, bool, int, error) {
	token := uuid.New().String()
	now := time.Now().Unix()
	vals, err := reserveScript.Run(ctx, c.client,
		[]string{key}, now, int64(window.Seconds()), maxN, token).Int64Slice()
	if err != nil {
		return Reservation{}, false, 0, fmt.Errorf("limit reserve %s: %w", key, err)
	}
	if len(vals) != 2 {
		return Reservation{}, false, 0, fmt.Errorf("limit reserve %s: unexpected script reply %v", key, vals)
	}
	allowed := vals[0] == 1
	count := int(vals[1])
	if !allowed {
		return Reservation{}, false, count, nil
	}
	return Reservation{Key: key, Token: token}, true, count, nil
}

func (c *RedisLimitCounter) Release(ctx context.Context, res Reservation) error {
	if res.Token == "" {
		return nil
	}
	if err := releaseTokenScript.Run(ctx, c.client, []string{res.Key}, res.Token).Err(); err != nil {
		return fmt.Errorf("limit release %s: %w", res.Key, err)
	}
	return nil
}
