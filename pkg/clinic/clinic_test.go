package clinic

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediqo/mediqo/pkg/kv"
	"github.com/mediqo/mediqo/pkg/models"
)

type stubSource struct {
	mu       sync.Mutex
	loads    int
	profiles map[string]models.ClinicProfile
}

func newStubSource(profiles ...models.ClinicProfile) *stubSource {
	s := &stubSource{profiles: map[string]models.ClinicProfile{}}
	for _, p := range profiles {
		s.profiles[p.ClinicID] = p
	}
	return s
}

func (s *stubSource) Load(_ context.Context, clinicID string) (models.ClinicProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loads++
	p, ok := s.profiles[clinicID]
	if !ok {
		return models.ClinicProfile{}, errors.New("clinic not found")
	}
	return p, nil
}

func (s *stubSource) ByInstance(_ context.Context, instanceName string) (models.ClinicProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loads++
	for _, p := range s.profiles {
		if p.InstanceName == instanceName {
			return p, nil
		}
	}
	return models.ClinicProfile{}, errors.New("clinic not found")
}

func (s *stubSource) loadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loads
}

func TestCache_GetServesFromCache(t *testing.T) {
	source := newStubSource(models.ClinicProfile{ClinicID: "c1", Name: "Smile"})
	cache := NewCache(source, kv.NewMemoryStore())
	ctx := context.Background()

	first, err := cache.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "Smile", first.Name)

	_, err = cache.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 1, source.loadCount())
}

func TestCache_GetMiss(t *testing.T) {
	cache := NewCache(newStubSource(), kv.NewMemoryStore())
	_, err := cache.Get(context.Background(), "nope")
	assert.Error(t, err)
}

func TestCache_StaleServedWhileRefreshing(t *testing.T) {
	source := newStubSource(models.ClinicProfile{ClinicID: "c1", Name: "Smile"})
	cache := NewCache(source, kv.NewMemoryStore(), WithTTL(time.Millisecond))
	ctx := context.Background()

	_, err := cache.Get(ctx, "c1")
	require.NoError(t, err)

	source.mu.Lock()
	source.profiles["c1"] = models.ClinicProfile{ClinicID: "c1", Name: "Smile v2"}
	source.mu.Unlock()

	time.Sleep(5 * time.Millisecond)

	// Stale hit returns immediately with the old profile.
	stale, err := cache.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "Smile", stale.Name)

	// The background refresh picks up the new one.
	assert.Eventually(t, func() bool {
		fresh, err := cache.Get(ctx, "c1")
		return err == nil && fresh.Name == "Smile v2"
	}, time.Second, 5*time.Millisecond)
}

func TestCache_WarmFlagThrottlesRefresh(t *testing.T) {
	source := newStubSource(models.ClinicProfile{ClinicID: "c1", Name: "Smile"})
	flags := kv.NewMemoryStore()
	cache := NewCache(source, flags, WithTTL(time.Millisecond), WithWarmTTL(time.Minute))
	ctx := context.Background()

	_, err := cache.Get(ctx, "c1")
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)

	// Burn the flag so the refresher cannot acquire it.
	set, err := flags.SetNXFlag(ctx, "clinic_warm:c1", time.Minute)
	require.NoError(t, err)
	require.True(t, set)

	_, err = cache.Get(ctx, "c1")
	require.NoError(t, err)
	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, 1, source.loadCount())
}

func TestCache_GetByInstance(t *testing.T) {
	source := newStubSource(models.ClinicProfile{ClinicID: "c1", InstanceName: "clinic-abc-123"})
	cache := NewCache(source, kv.NewMemoryStore())
	ctx := context.Background()

	p, err := cache.GetByInstance(ctx, "clinic-abc-123")
	require.NoError(t, err)
	assert.Equal(t, "c1", p.ClinicID)

	// Second lookup hits the cache.
	_, err = cache.GetByInstance(ctx, "clinic-abc-123")
	require.NoError(t, err)
	assert.Equal(t, 1, source.loadCount())
}

func TestCache_Flush(t *testing.T) {
	source := newStubSource(models.ClinicProfile{ClinicID: "c1"})
	cache := NewCache(source, kv.NewMemoryStore())
	ctx := context.Background()

	_, err := cache.Get(ctx, "c1")
	require.NoError(t, err)
	cache.Flush()
	_, err = cache.Get(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, 2, source.loadCount())
}
