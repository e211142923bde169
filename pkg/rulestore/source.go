package rulestore

import (
	"context"
	"errors"
	"fmt"

	"github.com/mediqo/mediqo/pkg/policy"
	"github.com/mediqo/mediqo/pkg/scheduling"
)

// PolicySource adapts the store to the scheduling engine: the active
// snapshot compiled through the shared digest-keyed cache. A clinic
// with no active bundle schedules unconstrained.
type PolicySource struct {
	store Store
	cache *policy.Cache
}

// NewPolicySource wires a policy source.
func NewPolicySource(store Store, cache *policy.Cache) *PolicySource {
	if cache == nil {
		cache = policy.NewCache()
	}
	return &PolicySource{store: store, cache: cache}
}

func (s *PolicySource) Active(ctx context.Context, clinicID string) (*scheduling.ActivePolicy, error) {
	snap, err := s.store.Active(ctx, clinicID)
	if errors.Is(err, ErrNoActiveBundle) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	compiled, err := snap.Compile(s.cache)
	if err != nil {
		// A stored snapshot that no longer compiles is corrupt data,
		// not a request problem.
		return nil, fmt.Errorf("compile active bundle %s: %w", snap.ID, err)
	}
	return &scheduling.ActivePolicy{
		SnapshotID: snap.ID,
		Version:    snap.Version,
		Compiled:   compiled,
	}, nil
}
