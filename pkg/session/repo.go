package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mediqo/mediqo/ent"
	entsession "github.com/mediqo/mediqo/ent/session"
)

// ErrNoActiveSession is returned when a (clinic, phone) pair has no
// active session.
var ErrNoActiveSession = errors.New("session: no active session")

// Record is the repository view of a session row.
type Record struct {
	ID             string
	Phone          string
	ClinicID       string
	Status         string
	Language       string
	StartedAt      time.Time
	LastActivityAt time.Time
	PrevSessionID  string
	ResetKind      string
	Summary        string
	SummaryStatus  string
	PendingAction  string
	// LastServiceMentioned is the fast path's service memory.
	LastServiceMentioned string
}

// Repo is the session persistence surface the manager needs.
type Repo interface {
	FindActive(ctx context.Context, clinicID, phone string) (*Record, error)
	Get(ctx context.Context, id string) (*Record, error)
	Create(ctx context.Context, rec Record) (*Record, error)
	Touch(ctx context.Context, id string, at time.Time) error
	// Close archives the session; reports false when it was already
	// closed, making archival idempotent.
	Close(ctx context.Context, id string, at time.Time) (bool, error)
}

// EntRepo implements Repo on the sessions table.
type EntRepo struct {
	client *ent.Client
}

// NewEntRepo wraps an ent client.
func NewEntRepo(client *ent.Client) *EntRepo {
	return &EntRepo{client: client}
}

func (r *EntRepo) FindActive(ctx context.Context, clinicID, phone string) (*Record, error) {
	row, err := r.client.Session.Query().
		Where(
			entsession.ClinicID(clinicID),
			entsession.Phone(phone),
			entsession.StatusEQ(entsession.StatusActive),
		).
		Order(ent.Desc(entsession.FieldLastActivityAt)).
		First(ctx)
	if ent.IsNotFound(err) {
		return nil, ErrNoActiveSession
	}
	if err != nil {
		return nil, fmt.Errorf("find active session: %w", err)
	}
	return recordFromRow(row), nil
}

func (r *EntRepo) Get(ctx context.Context, id string) (*Record, error) {
	row, err := r.client.Session.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get session %s: %w", id, err)
	}
	return recordFromRow(row), nil
}

func (r *EntRepo) Create(ctx context.Context, rec Record) (*Record, error) {
	builder := r.client.Session.Create().
		SetID(rec.ID).
		SetPhone(rec.Phone).
		SetClinicID(rec.ClinicID).
		SetStartedAt(rec.StartedAt).
		SetLastActivityAt(rec.LastActivityAt).
		SetResetKind(entsession.ResetKind(rec.ResetKind))
	if rec.Language != "" {
		builder.SetLanguage(rec.Language)
	}
	if rec.PrevSessionID != "" {
		builder.SetPrevSessionID(rec.PrevSessionID)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return recordFromRow(row), nil
}

func (r *EntRepo) Touch(ctx context.Context, id string, at time.Time) error {
	if err := r.client.Session.UpdateOneID(id).
		SetLastActivityAt(at).
		Exec(ctx); err != nil {
		return fmt.Errorf("touch session %s: %w", id, err)
	}
	return nil
}

// SetConversationState persists the fast path's service memory and
// pending action. Not part of Repo: only the pipeline writes these.
func (r *EntRepo) SetConversationState(ctx context.Context, id, lastService, pendingAction string) error {
	if err := r.client.Session.UpdateOneID(id).
		SetLastServiceMentioned(lastService).
		SetPendingAction(pendingAction).
		Exec(ctx); err != nil {
		return fmt.Errorf("set conversation state on %s: %w", id, err)
	}
	return nil
}

// SetSummary records a summarization outcome. Not part of Repo: only
// the summarizer writes these.
func (r *EntRepo) SetSummary(ctx context.Context, id, summary, status string) error {
	builder := r.client.Session.UpdateOneID(id).
		SetSummaryStatus(entsession.SummaryStatus(status))
	if summary != "" {
		builder.SetSummary(summary)
	}
	if err := builder.Exec(ctx); err != nil {
		return fmt.Errorf("set summary on %s: %w", id, err)
	}
	return nil
}

// PendingSummaries lists closed sessions the summarizer has not
// processed yet, oldest first.
func (r *EntRepo) PendingSummaries(ctx context.Context, limit int) ([]string, error) {
	ids, err := r.client.Session.Query().
		Where(
			entsession.StatusEQ(entsession.StatusClosed),
			entsession.SummaryStatusEQ(entsession.SummaryStatusPending),
		).
		Order(ent.Asc(entsession.FieldLastActivityAt)).
		Limit(limit).
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("pending summaries: %w", err)
	}
	return ids, nil
}

func (r *EntRepo) Close(ctx context.Context, id string, at time.Time) (bool, error) {
	n, err := r.client.Session.Update().
		Where(
			entsession.ID(id),
			entsession.StatusNEQ(entsession.StatusClosed),
		).
		SetStatus(entsession.StatusClosed).
		SetClosedAt(at).
		Save(ctx)
	if err != nil {
		return false, fmt.Errorf("close session %s: %w", id, err)
	}
	return n > 0, nil
}

func recordFromRow(row *ent.Session) *Record {
	rec := &Record{
		ID:             row.ID,
		Phone:          row.Phone,
		ClinicID:       row.ClinicID,
		Status:         string(row.Status),
		Language:       row.Language,
		StartedAt:      row.StartedAt,
		LastActivityAt: row.LastActivityAt,
		ResetKind:      string(row.ResetKind),
		SummaryStatus:  string(row.SummaryStatus),
		PendingAction:  row.PendingAction,

		LastServiceMentioned: row.LastServiceMentioned,
	}
	if row.PrevSessionID != nil {
		rec.PrevSessionID = *row.PrevSessionID
	}
	if row.Summary != nil {
		rec.Summary = *row.Summary
	}
	return rec
}
