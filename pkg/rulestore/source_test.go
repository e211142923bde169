package rulestore

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediqo/mediqo/pkg/policy"
)

func TestPolicySource_NoBundleMeansNoPolicy(t *testing.T) {
	source := NewPolicySource(&memStore{}, nil)

	active, err := source.Active(context.Background(), "c1")
	require.NoError(t, err)
	assert.Nil(t, active)
}

func TestPolicySource_CompilesActiveSnapshot(t *testing.T) {
	store := &memStore{}
	raw := testBundleJSON(t, "c1")
	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	sha, err := policy.Digest(raw)
	require.NoError(t, err)

	snap, err := store.Upsert(context.Background(), UpsertInput{
		ClinicID: "c1",
		BundleID: "safety-rules",
		Status:   StatusActive,
		SHA256:   sha,
		Bundle:   doc,
	})
	require.NoError(t, err)

	source := NewPolicySource(store, policy.NewCache())
	active, err := source.Active(context.Background(), "c1")
	require.NoError(t, err)
	require.NotNil(t, active)

	assert.Equal(t, snap.ID, active.SnapshotID)
	assert.Equal(t, 1, active.Version)
	require.Len(t, active.Compiled.Hard, 1)
	assert.Equal(t, "deny-minors", active.Compiled.Hard[0].RuleID)
	assert.Equal(t, sha, active.Compiled.Digest)
}
