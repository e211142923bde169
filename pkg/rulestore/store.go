// Package rulestore persists versioned rule-bundle snapshots and
// serves them to rule-authoring tooling over gRPC and to the
// scheduling engine as its policy source.
package rulestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mediqo/mediqo/ent"
	entsnap "github.com/mediqo/mediqo/ent/policysnapshot"
	"github.com/mediqo/mediqo/pkg/policy"
)

// Snapshot statuses. Exactly one snapshot per clinic is active.
const (
	StatusDraft  = "draft"
	StatusStaged = "staged"
	StatusActive = "active"
)

// ErrNoActiveBundle is returned when a clinic has no active snapshot.
var ErrNoActiveBundle = errors.New("rulestore: no active bundle")

// Snapshot is one immutable version of a clinic's rule bundle.
type Snapshot struct {
	ID        string
	ClinicID  string
	BundleID  string
	Version   int
	Status    string
	SHA256    string
	Bundle    map[string]any
	Metadata  map[string]any
	Actor     string
	CreatedAt time.Time
}

// UpsertInput is a validated bundle ready to persist. The service
// layer fills BundleID and SHA256 from the bundle itself.
type UpsertInput struct {
	ClinicID string
	BundleID string
	Status   string
	SHA256   string
	Bundle   map[string]any
	Metadata map[string]any
	Actor    string
}

// Store persists snapshots.
type Store interface {
	// Active returns the clinic's active snapshot, ErrNoActiveBundle
	// when there is none.
	Active(ctx context.Context, clinicID string) (*Snapshot, error)
	// History lists the clinic's snapshots newest first.
	History(ctx context.Context, clinicID string, limit int) ([]*Snapshot, error)
	// Upsert stores a new version. When the new snapshot is active, the
	// previously active one is demoted to staged in the same
	// transaction.
	Upsert(ctx context.Context, in UpsertInput) (*Snapshot, error)
}

// EntStore implements Store on the policy_snapshots table.
type EntStore struct {
	client *ent.Client
}

// NewEntStore wraps an ent client.
func NewEntStore(client *ent.Client) *EntStore {
	return &EntStore{client: client}
}

func (s *EntStore) Active(ctx context.Context, clinicID string) (*Snapshot, error) {
	row, err := s.client.PolicySnapshot.Query().
		Where(
			entsnap.ClinicID(clinicID),
			entsnap.StatusEQ(entsnap.StatusActive),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNoActiveBundle
	}
	if err != nil {
		return nil, fmt.Errorf("load active bundle for %s: %w", clinicID, err)
	}
	return snapshotFromRow(row), nil
}

func (s *EntStore) History(ctx context.Context, clinicID string, limit int) ([]*Snapshot, error) {
	rows, err := s.client.PolicySnapshot.Query().
		Where(entsnap.ClinicID(clinicID)).
		Order(ent.Desc(entsnap.FieldVersion)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bundle history for %s: %w", clinicID, err)
	}
	out := make([]*Snapshot, 0, len(rows))
	for _, row := range rows {
		out = append(out, snapshotFromRow(row))
	}
	return out, nil
}

func (s *EntStore) Upsert(ctx context.Context, in UpsertInput) (*Snapshot, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin upsert: %w", err)
	}
	defer tx.Rollback()

	version, err := nextVersion(ctx, tx, in.ClinicID)
	if err != nil {
		return nil, err
	}

	if in.Status == StatusActive {
		if _, err := tx.PolicySnapshot.Update().
			Where(
				entsnap.ClinicID(in.ClinicID),
				entsnap.StatusEQ(entsnap.StatusActive),
			).
			SetStatus(entsnap.StatusStaged).
			Save(ctx); err != nil {
			return nil, fmt.Errorf("demote active bundle: %w", err)
		}
	}

	builder := tx.PolicySnapshot.Create().
		SetID(uuid.New().String()).
		SetClinicID(in.ClinicID).
		SetBundleID(in.BundleID).
		SetVersion(version).
		SetStatus(entsnap.Status(in.Status)).
		SetSha256(in.SHA256).
		SetBundle(in.Bundle)
	if in.Metadata != nil {
		builder.SetMetadata(in.Metadata)
	}
	if in.Actor != "" {
		builder.SetActor(in.Actor)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("store bundle snapshot: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit upsert: %w", err)
	}
	return snapshotFromRow(row), nil
}

func nextVersion(ctx context.Context, tx *ent.Tx, clinicID string) (int, error) {
	last, err := tx.PolicySnapshot.Query().
		Where(entsnap.ClinicID(clinicID)).
		Order(ent.Desc(entsnap.FieldVersion)).
		First(ctx)
	if ent.IsNotFound(err) {
		return 1, nil
	}
	if err != nil {
		return 0, fmt.Errorf("last bundle version for %s: %w", clinicID, err)
	}
	return last.Version + 1, nil
}

func snapshotFromRow(row *ent.PolicySnapshot) *Snapshot {
	return &Snapshot{
		ID:        row.ID,
		ClinicID:  row.ClinicID,
		BundleID:  row.BundleID,
		Version:   row.Version,
		Status:    string(row.Status),
		SHA256:    row.Sha256,
		Bundle:    row.Bundle,
		Metadata:  row.Metadata,
		Actor:     row.Actor,
		CreatedAt: row.CreatedAt,
	}
}

// BundleJSON re-encodes the stored bundle document.
func (s *Snapshot) BundleJSON() ([]byte, error) {
	raw, err := json.Marshal(s.Bundle)
	if err != nil {
		return nil, fmt.Errorf("encode bundle %s: %w", s.ID, err)
	}
	return raw, nil
}

// Compile compiles the stored bundle through the shared cache.
func (s *Snapshot) Compile(cache *policy.Cache) (*policy.CompiledPolicy, error) {
	raw, err := s.BundleJSON()
	if err != nil {
		return nil, err
	}
	return cache.Compile(raw)
}
