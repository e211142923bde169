package rulestore

//go:generate protoc --go_out=.. --go_opt=module=github.com/mediqo/mediqo --go-grpc_out=.. --go-grpc_opt=module=github.com/mediqo/mediqo -I ../../proto ../../proto/rulestore.proto

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/mediqo/mediqo/pkg/policy"
	"github.com/mediqo/mediqo/proto/rulestorepb"
)

// defaultHistoryLimit caps history reads when the client sends 0.
const defaultHistoryLimit = 10

// Service implements the RuleStore RPC surface.
type Service struct {
	rulestorepb.UnimplementedRuleStoreServer

	store  Store
	logger *slog.Logger
}

// NewService wires the RPC service.
func NewService(store Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, logger: logger}
}

func (s *Service) GetActiveBundle(ctx context.Context, req *rulestorepb.GetActiveBundleRequest) (*rulestorepb.GetActiveBundleResponse, error) {
	if req.GetClinicId() == "" {
		return nil, status.Error(codes.InvalidArgument, "clinic_id is required")
	}

	active, err := s.store.Active(ctx, req.GetClinicId())
	if errors.Is(err, ErrNoActiveBundle) {
		return nil, status.Errorf(codes.NotFound, "clinic %s has no active bundle", req.GetClinicId())
	}
	if err != nil {
		s.logger.Error("active bundle read failed", slog.String("error", err.Error()))
		return nil, status.Error(codes.Internal, "bundle read failed")
	}

	resp := &rulestorepb.GetActiveBundleResponse{}
	resp.Active, err = snapshotToProto(active)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	if req.GetIncludeHistory() {
		limit := int(req.GetHistoryLimit())
		if limit <= 0 {
			limit = defaultHistoryLimit
		}
		history, err := s.store.History(ctx, req.GetClinicId(), limit)
		if err != nil {
			s.logger.Error("bundle history read failed", slog.String("error", err.Error()))
			return nil, status.Error(codes.Internal, "bundle history read failed")
		}
		for _, snap := range history {
			pb, err := snapshotToProto(snap)
			if err != nil {
				return nil, status.Error(codes.Internal, err.Error())
			}
			resp.History = append(resp.History, pb)
		}
	}
	return resp, nil
}

func (s *Service) UpsertBundle(ctx context.Context, req *rulestorepb.UpsertBundleRequest) (*rulestorepb.UpsertBundleResponse, error) {
	if req.GetClinicId() == "" {
		return nil, status.Error(codes.InvalidArgument, "clinic_id is required")
	}
	switch req.GetStatus() {
	case StatusDraft, StatusStaged, StatusActive:
	default:
		return nil, status.Errorf(codes.InvalidArgument, "status must be draft, staged, or active; got %q", req.GetStatus())
	}

	bundle, problems := policy.ValidateBundle(req.GetBundleJson())
	if len(problems) > 0 {
		return nil, status.Error(codes.InvalidArgument, renderProblems(problems))
	}
	if bundle.ClinicID != req.GetClinicId() {
		return nil, status.Errorf(codes.InvalidArgument,
			"bundle clinic_id %q does not match request clinic_id %q", bundle.ClinicID, req.GetClinicId())
	}

	sha, err := policy.Digest(req.GetBundleJson())
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	var doc map[string]any
	if err := json.Unmarshal(req.GetBundleJson(), &doc); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	var metadata map[string]any
	if len(req.GetMetadataJson()) > 0 {
		if err := json.Unmarshal(req.GetMetadataJson(), &metadata); err != nil {
			return nil, status.Errorf(codes.InvalidArgument, "metadata_json: %v", err)
		}
	}

	snap, err := s.store.Upsert(ctx, UpsertInput{
		ClinicID: req.GetClinicId(),
		BundleID: bundle.BundleID,
		Status:   req.GetStatus(),
		SHA256:   sha,
		Bundle:   doc,
		Metadata: metadata,
		Actor:    req.GetActorId(),
	})
	if err != nil {
		s.logger.Error("bundle upsert failed",
			slog.String("clinic_id", req.GetClinicId()),
			slog.String("error", err.Error()))
		return nil, status.Error(codes.Internal, "bundle upsert failed")
	}

	pb, err := snapshotToProto(snap)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &rulestorepb.UpsertBundleResponse{Snapshot: pb}, nil
}

func renderProblems(problems []policy.Problem) string {
	parts := make([]string, 0, len(problems))
	for _, p := range problems {
		parts = append(parts, fmt.Sprintf("%s: %s", p.Path, p.Message))
	}
	return "bundle validation failed: " + strings.Join(parts, "; ")
}

func snapshotToProto(snap *Snapshot) (*rulestorepb.BundleSnapshot, error) {
	bundleJSON, err := snap.BundleJSON()
	if err != nil {
		return nil, err
	}
	pb := &rulestorepb.BundleSnapshot{
		SnapshotId: snap.ID,
		ClinicId:   snap.ClinicID,
		BundleId:   snap.BundleID,
		Version:    int32(snap.Version),
		Status:     snap.Status,
		Sha256:     snap.SHA256,
		BundleJson: bundleJSON,
		ActorId:    snap.Actor,
		CreatedAt:  timestamppb.New(snap.CreatedAt),
	}
	if snap.Metadata != nil {
		raw, err := json.Marshal(snap.Metadata)
		if err != nil {
			return nil, fmt.Errorf("encode snapshot metadata: %w", err)
		}
		pb.MetadataJson = raw
	}
	return pb, nil
}
