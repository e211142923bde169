package rulestore

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/google/uuid"

	"github.com/mediqo/mediqo/proto/rulestorepb"
)

// memStore mirrors EntStore's versioning and demotion semantics.
type memStore struct {
	snaps []*Snapshot
}

func (m *memStore) Active(_ context.Context, clinicID string) (*Snapshot, error) {
	for _, s := range m.snaps {
		if s.ClinicID == clinicID && s.Status == StatusActive {
			return s, nil
		}
	}
	return nil, ErrNoActiveBundle
}

func (m *memStore) History(_ context.Context, clinicID string, limit int) ([]*Snapshot, error) {
	var out []*Snapshot
	for i := len(m.snaps) - 1; i >= 0 && len(out) < limit; i-- {
		if m.snaps[i].ClinicID == clinicID {
			out = append(out, m.snaps[i])
		}
	}
	return out, nil
}

func (m *memStore) Upsert(_ context.Context, in UpsertInput) (*Snapshot, error) {
	version := 1
	for _, s := range m.snaps {
		if s.ClinicID == in.ClinicID && s.Version >= version {
			version = s.Version + 1
		}
	}
	if in.Status == StatusActive {
		for _, s := range m.snaps {
			if s.ClinicID == in.ClinicID && s.Status == StatusActive {
				s.Status = StatusStaged
			}
		}
	}
	snap := &Snapshot{
		ID:        uuid.New().String(),
		ClinicID:  in.ClinicID,
		BundleID:  in.BundleID,
		Version:   version,
		Status:    in.Status,
		SHA256:    in.SHA256,
		Bundle:    in.Bundle,
		Metadata:  in.Metadata,
		Actor:     in.Actor,
		CreatedAt: time.Now(),
	}
	m.snaps = append(m.snaps, snap)
	return snap, nil
}

func testBundleJSON(t *testing.T, clinicID string) []byte {
	t.Helper()
	doc := map[string]any{
		"schema_version": "1",
		"bundle_id":      "safety-rules",
		"clinic_id":      clinicID,
		"rules": []map[string]any{
			{
				"rule_id":    "deny-minors",
				"precedence": 10,
				"conditions": map[string]any{"field": "patient.age", "operator": "less_than", "value": 18},
				"effect":     map[string]any{"type": "DENY", "message": "adults only"},
			},
		},
	}
	raw, err := json.Marshal(doc)
	require.NoError(t, err)
	return raw
}

func TestUpsertBundle_StoresValidatedSnapshot(t *testing.T) {
	store := &memStore{}
	svc := NewService(store, nil)

	resp, err := svc.UpsertBundle(context.Background(), &rulestorepb.UpsertBundleRequest{
		ClinicId:   "c1",
		BundleJson: testBundleJSON(t, "c1"),
		Status:     StatusActive,
		ActorId:    "ana",
	})
	require.NoError(t, err)

	snap := resp.GetSnapshot()
	assert.Equal(t, "safety-rules", snap.GetBundleId())
	assert.Equal(t, int32(1), snap.GetVersion())
	assert.Equal(t, StatusActive, snap.GetStatus())
	assert.Len(t, snap.GetSha256(), 64)
	assert.Equal(t, "ana", snap.GetActorId())
}

func TestUpsertBundle_ActivationDemotesPrevious(t *testing.T) {
	store := &memStore{}
	svc := NewService(store, nil)

	for range 2 {
		_, err := svc.UpsertBundle(context.Background(), &rulestorepb.UpsertBundleRequest{
			ClinicId:   "c1",
			BundleJson: testBundleJSON(t, "c1"),
			Status:     StatusActive,
		})
		require.NoError(t, err)
	}

	active, err := store.Active(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, 2, active.Version)

	history, err := store.History(context.Background(), "c1", 10)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, StatusStaged, history[1].Status)
}

func TestUpsertBundle_RejectsInvalidBundle(t *testing.T) {
	svc := NewService(&memStore{}, nil)

	_, err := svc.UpsertBundle(context.Background(), &rulestorepb.UpsertBundleRequest{
		ClinicId:   "c1",
		BundleJson: []byte(`{"schema_version": "1", "bundle_id": "b", "clinic_id": "c1"}`),
		Status:     StatusDraft,
	})
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
	assert.Contains(t, st.Message(), "validation failed")
}

func TestUpsertBundle_RejectsClinicMismatch(t *testing.T) {
	svc := NewService(&memStore{}, nil)

	_, err := svc.UpsertBundle(context.Background(), &rulestorepb.UpsertBundleRequest{
		ClinicId:   "c2",
		BundleJson: testBundleJSON(t, "c1"),
		Status:     StatusDraft,
	})
	require.Error(t, err)
	st, _ := status.FromError(err)
	assert.Equal(t, codes.InvalidArgument, st.Code())
	assert.Contains(t, st.Message(), "does not match")
}

func TestUpsertBundle_RejectsUnknownStatus(t *testing.T) {
	svc := NewService(&memStore{}, nil)

	_, err := svc.UpsertBundle(context.Background(), &rulestorepb.UpsertBundleRequest{
		ClinicId:   "c1",
		BundleJson: testBundleJSON(t, "c1"),
		Status:     "published",
	})
	require.Error(t, err)
	st, _ := status.FromError(err)
	assert.Equal(t, codes.InvalidArgument, st.Code())
}

func TestGetActiveBundle_NotFound(t *testing.T) {
	svc := NewService(&memStore{}, nil)

	_, err := svc.GetActiveBundle(context.Background(), &rulestorepb.GetActiveBundleRequest{ClinicId: "c1"})
	require.Error(t, err)
	st, _ := status.FromError(err)
	assert.Equal(t, codes.NotFound, st.Code())
}

func TestGetActiveBundle_WithHistory(t *testing.T) {
	store := &memStore{}
	svc := NewService(store, nil)
	for range 3 {
		_, err := svc.UpsertBundle(context.Background(), &rulestorepb.UpsertBundleRequest{
			ClinicId:   "c1",
			BundleJson: testBundleJSON(t, "c1"),
			Status:     StatusActive,
		})
		require.NoError(t, err)
	}

	resp, err := svc.GetActiveBundle(context.Background(), &rulestorepb.GetActiveBundleRequest{
		ClinicId:       "c1",
		IncludeHistory: true,
		HistoryLimit:   2,
	})
	require.NoError(t, err)

	assert.Equal(t, int32(3), resp.GetActive().GetVersion())
	require.Len(t, resp.GetHistory(), 2)
	assert.Equal(t, int32(3), resp.GetHistory()[0].GetVersion())
}
