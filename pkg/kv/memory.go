package kv

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryStore is an in-process Store used by unit tests and local
// development without Redis. TTLs are honored by wall clock.
type MemoryStore struct {
	mu    sync.Mutex
	items map[string]memoryItem
}

type memoryItem struct {
	raw      []byte
	expireAt time.Time // zero = no expiry
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: map[string]memoryItem{}}
}

func (s *MemoryStore) GetJSON(_ context.Context, key string, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[key]
	if !ok || (!item.expireAt.IsZero() && time.Now().After(item.expireAt)) {
		delete(s.items, key)
		return ErrNotFound
	}
	return json.Unmarshal(item.raw, v)
}

func (s *MemoryStore) SetJSON(_ context.Context, key string, v any, ttl time.Duration) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	var expireAt time.Time
	if ttl > 0 {
		expireAt = time.Now().Add(ttl)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = memoryItem{raw: raw, expireAt: expireAt}
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
	return nil
}

func (s *MemoryStore) SetNXFlag(_ context.Context, key string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[key]
	if ok && (item.expireAt.IsZero() || time.Now().Before(item.expireAt)) {
		return false, nil
	}
	s.items[key] = memoryItem{raw: []byte("1"), expireAt: time.Now().Add(ttl)}
	return true, nil
}

func (s *MemoryStore) ScanKeys(_ context.Context, prefix string, limit int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	var keys []string
	for key, item := range s.items {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		if !item.expireAt.IsZero() && now.After(item.expireAt) {
			continue
		}
		keys = append(keys, key)
		if limit > 0 && len(keys) >= limit {
			break
		}
	}
	return keys, nil
}

// MemoryLocker is an in-process Locker for tests.
type MemoryLocker struct {
	mu    sync.Mutex
	locks map[string]memoryLock
}

type memoryLock struct {
	token    string
	expireAt time.Time
}

// NewMemoryLocker creates an empty in-memory locker.
func NewMemoryLocker() *MemoryLocker {
	return &MemoryLocker{locks: map[string]memoryLock{}}
}

func (l *MemoryLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (string, error) {
	token := uuid.New().String()
	for attempt := 0; attempt < lockRetryAttempts; attempt++ {
		l.mu.Lock()
		held, ok := l.locks[key]
		if !ok || time.Now().After(held.expireAt) {
			l.locks[key] = memoryLock{token: token, expireAt: time.Now().Add(ttl)}
			l.mu.Unlock()
			return token, nil
		}
		l.mu.Unlock()
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(5 * time.Millisecond):
		}
	}
	return "", ErrLockNotAcquired
}

func (l *MemoryLocker) Release(_ context.Context, key, token string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if held, ok := l.locks[key]; ok && held.token == token {
		delete(l.locks, key)
	}
	return nil
}

// MemoryLimitCounter is an in-process LimitCounter for tests.
type MemoryLimitCounter struct {
	mu      sync.Mutex
	members map[string]map[string]time.Time // key -> token -> reserved at
}

// NewMemoryLimitCounter creates an empty in-memory limit counter.
func NewMemoryLimitCounter() *MemoryLimitCounter {
	return &MemoryLimitCounter{members: map[string]map[string]time.Time{}}
}

func (c *MemoryLimitCounter) Reserve(_ context.Context, key string, window time.Duration, maxN int) (Reservation, bool, int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := time.Now()
	set := c.members[key]
	if set == nil {
		set = map[string]time.Time{}
		c.members[key] = set
	}
	for token, at := range set {
		if now.Sub(at) > window {
			delete(set, token)
		}
	}
	if len(set) >= maxN {
		return Reservation{}, false, len(set), nil
	}
	token := uuid.New().String()
	set[token] = now
	return Reservation{Key: key, Token: token}, true, len(set), nil
}

func (c *MemoryLimitCounter) Release(_ context.Context, res Reservation) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if set, ok := c.members[res.Key]; ok {
		delete(set, res.Token)
	}
	return nil
}
