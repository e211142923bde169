package kv

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	type payload struct {
		Name string `json:"name"`
	}

	require.NoError(t, store.SetJSON(ctx, "k", payload{Name: "a"}, 0))

	var got payload
	require.NoError(t, store.GetJSON(ctx, "k", &got))
	assert.Equal(t, "a", got.Name)

	require.NoError(t, store.Delete(ctx, "k"))
	assert.ErrorIs(t, store.GetJSON(ctx, "k", &got), ErrNotFound)
}

func TestMemoryStore_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.SetJSON(ctx, "k", "v", 10*time.Millisecond))
	time.Sleep(20 * time.Millisecond)

	var got string
	assert.ErrorIs(t, store.GetJSON(ctx, "k", &got), ErrNotFound)
}

func TestMemoryLocker_MutualExclusion(t *testing.T) {
	ctx := context.Background()
	locker := NewMemoryLocker()

	token, err := locker.Acquire(ctx, "lock", time.Second)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// Second acquire with a short context budget must fail.
	shortCtx, cancel := context.WithTimeout(ctx, 30*time.Millisecond)
	defer cancel()
	_, err = locker.Acquire(shortCtx, "lock", time.Second)
	assert.Error(t, err)

	require.NoError(t, locker.Release(ctx, "lock", token))

	token2, err := locker.Acquire(ctx, "lock", time.Second)
	require.NoError(t, err)
	assert.NotEqual(t, token, token2)
}

func TestMemoryLocker_ReleaseRequiresOwnership(t *testing.T) {
	ctx := context.Background()
	locker := NewMemoryLocker()

	token, err := locker.Acquire(ctx, "lock", time.Second)
	require.NoError(t, err)

	// A stale token must not free the lock.
	require.NoError(t, locker.Release(ctx, "lock", "not-the-token"))
	shortCtx, cancel := context.WithTimeout(ctx, 30*time.Millisecond)
	defer cancel()
	_, err = locker.Acquire(shortCtx, "lock", time.Second)
	assert.Error(t, err)

	require.NoError(t, locker.Release(ctx, "lock", token))
}

func TestMemoryLimitCounter_CapAndRelease(t *testing.T) {
	ctx := context.Background()
	counter := NewMemoryLimitCounter()

	var reservations []Reservation
	for i := 0; i < 3; i++ {
		res, allowed, count, err := counter.Reserve(ctx, "limit", time.Hour, 3)
		require.NoError(t, err)
		assert.True(t, allowed)
		assert.Equal(t, i+1, count)
		reservations = append(reservations, res)
	}

	_, allowed, count, err := counter.Reserve(ctx, "limit", time.Hour, 3)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, 3, count)

	// Releasing one frees a slot.
	require.NoError(t, counter.Release(ctx, reservations[0]))
	_, allowed, _, err = counter.Reserve(ctx, "limit", time.Hour, 3)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestMemoryLimitCounter_WindowPrune(t *testing.T) {
	ctx := context.Background()
	counter := NewMemoryLimitCounter()

	_, allowed, _, err := counter.Reserve(ctx, "limit", 10*time.Millisecond, 1)
	require.NoError(t, err)
	require.True(t, allowed)

	time.Sleep(20 * time.Millisecond)

	_, allowed, count, err := counter.Reserve(ctx, "limit", 10*time.Millisecond, 1)
	require.NoError(t, err)
	assert.True(t, allowed, "expired member should have been pruned")
	assert.Equal(t, 1, count)
}
