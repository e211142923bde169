package kv

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when a key does not exist or has expired.
var ErrNotFound = errors.New("kv: key not found")

// Store is the JSON record interface used by the constraints store,
// the language cache, and the clinic warm flags.
type Store interface {
	// GetJSON unmarshals the value at key into v.
	// Returns ErrNotFound when the key is absent.
	GetJSON(ctx context.Context, key string, v any) error

	// SetJSON marshals v and stores it at key with the given TTL.
	// A zero TTL stores without expiry.
	SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// SetNXFlag sets a marker key if absent; reports whether it was set.
	// Used for in-flight guards (clinic warm refresh).
	SetNXFlag(ctx context.Context, key string, ttl time.Duration) (bool, error)
}

// Scanner lists keys by prefix. The outreach worker uses it to find
// scheduled follow-ups; Store implementations in this package provide it.
type Scanner interface {
	// ScanKeys returns up to limit keys starting with prefix.
	// A limit of zero or less means no cap.
	ScanKeys(ctx context.Context, prefix string, limit int) ([]string, error)
}

// RedisStore implements Store on a Redis client.
type RedisStore struct {
	client redis.Cmdable
}

// NewRedisStore wraps a Redis client.
func NewRedisStore(client redis.Cmdable) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) GetJSON(ctx context.Context, key string, v any) error {
	raw, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrNotFound
		}
		return fmt.Errorf("kv get %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("kv decode %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("kv encode %s: %w", key, err)
	}
	if err := s.client.Set(ctx, key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("kv set %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("kv del %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) SetNXFlag(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("kv setnx %s: %w", key, err)
	}
	return ok, nil
}

func (s *RedisStore) ScanKeys(ctx context.Context, prefix string, limit int) ([]string, error) {
	var keys []string
	var cursor uint64
	for {
		batch, next, err := s.client.Scan(ctx, cursor, prefix+"*", 100).Result()
		if err != nil {
			return nil, fmt.Errorf("kv scan %s: %w", prefix, err)
		}
		keys = append(keys, batch...)
		if limit > 0 && len(keys) >= limit {
			return keys[:limit], nil
		}
		cursor = next
		if cursor == 0 {
			return keys, nil
		}
	}
}
