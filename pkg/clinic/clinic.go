// Package clinic loads clinic profiles and caches them per process
// with a short TTL. Stale entries are refreshed by an off-path
// background task gated by a per-clinic in-flight flag.
package clinic

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/mediqo/mediqo/ent"
	entclinic "github.com/mediqo/mediqo/ent/clinic"
	"github.com/mediqo/mediqo/pkg/kv"
	"github.com/mediqo/mediqo/pkg/models"
)

// ProfileSource loads a clinic profile from the system of record.
type ProfileSource interface {
	Load(ctx context.Context, clinicID string) (models.ClinicProfile, error)
	// ByInstance resolves the clinic bound to a messaging instance.
	ByInstance(ctx context.Context, instanceName string) (models.ClinicProfile, error)
}

// EntSource loads profiles from the clinics table.
type EntSource struct {
	client *ent.Client
}

// NewEntSource creates a database-backed profile source.
func NewEntSource(client *ent.Client) *EntSource {
	return &EntSource{client: client}
}

func (s *EntSource) Load(ctx context.Context, clinicID string) (models.ClinicProfile, error) {
	row, err := s.client.Clinic.Get(ctx, clinicID)
	if err != nil {
		return models.ClinicProfile{}, fmt.Errorf("load clinic %s: %w", clinicID, err)
	}
	return profileFromRow(row)
}

func (s *EntSource) ByInstance(ctx context.Context, instanceName string) (models.ClinicProfile, error) {
	row, err := s.client.Clinic.Query().
		Where(entclinic.InstanceName(instanceName)).
		Only(ctx)
	if err != nil {
		return models.ClinicProfile{}, fmt.Errorf("load clinic by instance %s: %w", instanceName, err)
	}
	return profileFromRow(row)
}

func profileFromRow(row *ent.Clinic) (models.ClinicProfile, error) {
	raw, err := json.Marshal(row.Profile)
	if err != nil {
		return models.ClinicProfile{}, fmt.Errorf("encode clinic profile %s: %w", row.ID, err)
	}
	var profile models.ClinicProfile
	if err := json.Unmarshal(raw, &profile); err != nil {
		return models.ClinicProfile{}, fmt.Errorf("decode clinic profile %s: %w", row.ID, err)
	}
	profile.ClinicID = row.ID
	profile.Name = row.Name
	profile.Timezone = row.Timezone
	profile.InstanceName = row.InstanceName
	profile.DefaultLanguage = row.DefaultLanguage
	return profile, nil
}

const defaultCacheTTL = 60 * time.Second

// Cache is the per-process clinic profile cache. Get serves from
// cache within the TTL; a stale entry is served as-is while a
// background refresh is kicked off, throttled by the KV in-flight
// flag so only one process refreshes a clinic at a time.
type Cache struct {
	source  ProfileSource
	flags   kv.Store
	ttl     time.Duration
	warmTTL time.Duration

	mu      sync.RWMutex
	entries map[string]cacheEntry
}

type cacheEntry struct {
	profile  models.ClinicProfile
	loadedAt time.Time
}

// Option configures the cache.
type Option func(*Cache)

// WithTTL overrides the freshness TTL.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) { c.ttl = ttl }
}

// WithWarmTTL overrides how long the refresh in-flight flag lives.
func WithWarmTTL(ttl time.Duration) Option {
	return func(c *Cache) { c.warmTTL = ttl }
}

// NewCache creates a clinic cache over the given source. flags is the
// KV store used for cross-process refresh throttling.
func NewCache(source ProfileSource, flags kv.Store, opts ...Option) *Cache {
	c := &Cache{
		source:  source,
		flags:   flags,
		ttl:     defaultCacheTTL,
		warmTTL: defaultCacheTTL,
		entries: map[string]cacheEntry{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Get returns the clinic profile, loading it on first use. Fresh
// entries are served directly; stale entries are served immediately
// while a background refresh runs.
func (c *Cache) Get(ctx context.Context, clinicID string) (models.ClinicProfile, error) {
	c.mu.RLock()
	entry, ok := c.entries[clinicID]
	c.mu.RUnlock()

	if ok {
		if time.Since(entry.loadedAt) < c.ttl {
			return entry.profile, nil
		}
		c.refreshAsync(clinicID)
		return entry.profile, nil
	}

	profile, err := c.source.Load(ctx, clinicID)
	if err != nil {
		return models.ClinicProfile{}, err
	}
	c.put(clinicID, profile)
	return profile, nil
}

// GetByInstance resolves a clinic through its messaging instance name
// and caches it under its clinic id.
func (c *Cache) GetByInstance(ctx context.Context, instanceName string) (models.ClinicProfile, error) {
	c.mu.RLock()
	for _, entry := range c.entries {
		if entry.profile.InstanceName == instanceName && time.Since(entry.loadedAt) < c.ttl {
			c.mu.RUnlock()
			return entry.profile, nil
		}
	}
	c.mu.RUnlock()

	profile, err := c.source.ByInstance(ctx, instanceName)
	if err != nil {
		return models.ClinicProfile{}, err
	}
	c.put(profile.ClinicID, profile)
	return profile, nil
}

func (c *Cache) put(clinicID string, profile models.ClinicProfile) {
	c.mu.Lock()
	c.entries[clinicID] = cacheEntry{profile: profile, loadedAt: time.Now()}
	c.mu.Unlock()
}

// refreshAsync reloads a stale clinic off the request path. The KV
// flag keeps concurrent processes from stampeding the same clinic.
func (c *Cache) refreshAsync(clinicID string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		acquired, err := c.flags.SetNXFlag(ctx, "clinic_warm:"+clinicID, c.warmTTL)
		if err != nil {
			slog.Warn("clinic warm flag failed", "clinic_id", clinicID, "error", err)
			return
		}
		if !acquired {
			return
		}

		profile, err := c.source.Load(ctx, clinicID)
		if err != nil {
			slog.Warn("clinic warm refresh failed", "clinic_id", clinicID, "error", err)
			return
		}
		c.put(clinicID, profile)
		slog.Debug("clinic profile refreshed", "clinic_id", clinicID)
	}()
}

// Flush empties the cache. Test hook.
func (c *Cache) Flush() {
	c.mu.Lock()
	c.entries = map[string]cacheEntry{}
	c.mu.Unlock()
}
