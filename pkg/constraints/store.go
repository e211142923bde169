// Package constraints maintains the per-session constraint block and
// derives structured updates to it from patient messages. Exclusion
// sets only grow within a session; a meta-reset replaces the block.
package constraints

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mediqo/mediqo/pkg/kv"
	"github.com/mediqo/mediqo/pkg/lang"
	"github.com/mediqo/mediqo/pkg/models"
)

// DefaultTTL is how long a block survives without updates. Every
// update re-applies it, so an active conversation never expires.
const DefaultTTL = 24 * time.Hour

// Store keeps constraint blocks in the KV store, one per session.
type Store struct {
	kv  kv.Store
	ttl time.Duration
}

// NewStore creates a constraints store with the default TTL.
func NewStore(store kv.Store) *Store {
	return &Store{kv: store, ttl: DefaultTTL}
}

// NewStoreTTL creates a constraints store with an explicit TTL.
func NewStoreTTL(store kv.Store, ttl time.Duration) *Store {
	return &Store{kv: store, ttl: ttl}
}

func blockKey(sessionID string) string {
	return "constraints:" + sessionID
}

// Get loads the block for a session. A missing block comes back as a
// fresh empty one rather than an error.
func (s *Store) Get(ctx context.Context, sessionID string) (models.ConstraintBlock, error) {
	var block models.ConstraintBlock
	err := s.kv.GetJSON(ctx, blockKey(sessionID), &block)
	if errors.Is(err, kv.ErrNotFound) {
		return models.ConstraintBlock{SessionID: sessionID, FreshSession: true}, nil
	}
	if err != nil {
		return models.ConstraintBlock{}, fmt.Errorf("constraints get: %w", err)
	}
	return block, nil
}

// Set replaces the block wholesale and re-applies the TTL.
func (s *Store) Set(ctx context.Context, block models.ConstraintBlock) error {
	block.LastUpdated = time.Now().UTC()
	if err := s.kv.SetJSON(ctx, blockKey(block.SessionID), block, s.ttl); err != nil {
		return fmt.Errorf("constraints set: %w", err)
	}
	return nil
}

// Clear removes the block for a session.
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	if err := s.kv.Delete(ctx, blockKey(sessionID)); err != nil {
		return fmt.Errorf("constraints clear: %w", err)
	}
	return nil
}

// Update applies an extractor result to the live block. Exclusions
// accumulate (morphology-aware de-dup), desired fields replace,
// last_updated is touched and the TTL re-applied. A meta-reset clears
// the block instead.
func (s *Store) Update(ctx context.Context, sessionID string, update models.ConstraintUpdate, language lang.Language) (models.ConstraintBlock, error) {
	if update.MetaReset {
		if err := s.Clear(ctx, sessionID); err != nil {
			return models.ConstraintBlock{}, err
		}
		fresh := models.ConstraintBlock{SessionID: sessionID, FreshSession: true}
		return fresh, s.Set(ctx, fresh)
	}

	block, err := s.Get(ctx, sessionID)
	if err != nil {
		return models.ConstraintBlock{}, err
	}

	for _, name := range update.ExcludeDoctors {
		if !IsExcluded(name, block.ExcludedDoctors, language, EntityDoctor) {
			block.ExcludedDoctors = append(block.ExcludedDoctors, name)
		}
	}
	for _, name := range update.ExcludeServices {
		if !IsExcluded(name, block.ExcludedServices, language, EntityService) {
			block.ExcludedServices = append(block.ExcludedServices, name)
		}
	}
	if update.DesiredService != "" {
		block.DesiredService = update.DesiredService
	}
	if update.DesiredDoctor != "" {
		block.DesiredDoctor = update.DesiredDoctor
	}
	if update.TimeWindow != nil {
		block.TimeWindow = *update.TimeWindow
	}
	block.FreshSession = false

	if err := s.Set(ctx, block); err != nil {
		return models.ConstraintBlock{}, err
	}
	return block, nil
}
