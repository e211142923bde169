package kv

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrLockNotAcquired is returned when the lock could not be taken
// within the retry budget.
var ErrLockNotAcquired = errors.New("kv: lock not acquired")

// lockRetryAttempts bounds the jittered wait loop.
const lockRetryAttempts = 8

// releaseScript deletes the lock only if the caller still owns it.
// Compare-and-delete must be atomic: a plain GET+DEL could delete a
// lock that expired and was re-acquired by another process.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Locker is the distributed lock interface used by the session manager.
type Locker interface {
	// Acquire takes the lock, returning an opaque ownership token.
	// Blocks with jittered retries up to the attempt budget.
	Acquire(ctx context.Context, key string, ttl time.Duration) (string, error)

	// Release frees the lock if token still owns it.
	Release(ctx context.Context, key, token string) error
}

// RedisLocker implements Locker with SET NX PX plus an atomic
// compare-and-delete release.
type RedisLocker struct {
	client redis.Cmdable
}

// NewRedisLocker wraps a Redis client.
func NewRedisLocker(client redis.Cmdable) *RedisLocker {
	return &RedisLocker{client: client}
}

func (l *RedisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (string, error) {
	token := uuid.New().String()
	for attempt := 0; attempt < lockRetryAttempts; attempt++ {
		ok, err := l.client.SetNX(ctx, key, token, ttl).Result()
		if err != nil {
			return "", fmt.Errorf("lock setnx %s: %w", key, err)
		}
		if ok {
			return token, nil
		}
		// Jittered backoff: 50-150ms keeps contention short without
		// thundering on the holder's release.
		wait := 50*time.Millisecond + time.Duration(rand.Intn(100))*time.Millisecond
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(wait):
		}
	}
	return "", ErrLockNotAcquired
}

func (l *RedisLocker) Release(ctx context.Context, key, token string) error {
	if err := releaseScript.Run(ctx, l.client, []string{key}, token).Err(); err != nil {
		return fmt.Errorf("lock release %s: %w", key, err)
	}
	return nil
}
