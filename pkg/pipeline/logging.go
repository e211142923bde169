package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mediqo/mediqo/ent"
	entturn "github.com/mediqo/mediqo/ent/conversationturn"
	"github.com/mediqo/mediqo/pkg/kv"
	"github.com/mediqo/mediqo/pkg/lang"
	"github.com/mediqo/mediqo/pkg/models"
	"github.com/mediqo/mediqo/pkg/tools"
)

// TurnRecord is one processed turn for the conversation log.
type TurnRecord struct {
	SessionID            string
	ClinicID             string
	UserMessage          string
	AssistantMessage     string
	Lane                 string
	FastPath             bool
	LatencyMs            int
	ToolsAudit           []tools.AuditEntry
	HallucinationBlocked bool
	ResponseFlagged      bool
	ConstraintsDelta     *models.ConstraintUpdate
}

// TurnLog persists turn records.
type TurnLog interface {
	Append(ctx context.Context, rec TurnRecord) error
}

// EntTurnLog writes conversation turns to the database.
type EntTurnLog struct {
	client *ent.Client
}

// NewEntTurnLog wraps an ent client.
func NewEntTurnLog(client *ent.Client) *EntTurnLog {
	return &EntTurnLog{client: client}
}

func (l *EntTurnLog) Append(ctx context.Context, rec TurnRecord) error {
	seq, err := l.client.ConversationTurn.Query().
		Where(entturn.SessionID(rec.SessionID)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("turn sequence query: %w", err)
	}

	builder := l.client.ConversationTurn.Create().
		SetID(uuid.New().String()).
		SetSessionID(rec.SessionID).
		SetClinicID(rec.ClinicID).
		SetSequenceNumber(seq + 1).
		SetUserMessage(rec.UserMessage).
		SetAssistantMessage(rec.AssistantMessage).
		SetLane(rec.Lane).
		SetFastPath(rec.FastPath).
		SetLatencyMs(rec.LatencyMs).
		SetHallucinationBlocked(rec.HallucinationBlocked).
		SetResponseFlagged(rec.ResponseFlagged)

	if len(rec.ToolsAudit) > 0 {
		audit, err := toJSONSlice(rec.ToolsAudit)
		if err != nil {
			return err
		}
		builder.SetToolsCalled(audit)
	}
	if rec.ConstraintsDelta != nil {
		delta, err := toJSONMap(rec.ConstraintsDelta)
		if err != nil {
			return err
		}
		builder.SetConstraintsDelta(delta)
	}

	if err := builder.Exec(ctx); err != nil {
		return fmt.Errorf("append conversation turn: %w", err)
	}
	return nil
}

func toJSONSlice(v any) ([]map[string]interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode turn audit: %w", err)
	}
	var out []map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode turn audit: %w", err)
	}
	return out, nil
}

func toJSONMap(v any) (map[string]interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode constraints delta: %w", err)
	}
	var out map[string]interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("decode constraints delta: %w", err)
	}
	return out, nil
}

func (p *Pipeline) logTurn(ctx context.Context, tc *TurnContext) error {
	if tc.Session == nil || p.deps.TurnLog == nil {
		return nil
	}

	rec := TurnRecord{
		SessionID:        tc.Session.ID,
		ClinicID:         tc.Request.ClinicID,
		UserMessage:      tc.Request.Body,
		AssistantMessage: tc.Response,
		Lane:             string(tc.Route.Lane),
		FastPath:         tc.FastPath,
		LatencyMs:        tc.LatencyMs,
	}
	if tc.Executor != nil {
		stats := tc.Executor.Stats()
		rec.ToolsAudit = tc.Executor.Audit()
		rec.HallucinationBlocked = stats.HallucinationBlocked
		rec.ResponseFlagged = stats.ResponseFlagged
	}
	if tc.ConstraintsChanged {
		delta := tc.ConstraintsDelta
		rec.ConstraintsDelta = &delta
	}

	if p.deps.LogFailFast {
		return p.deps.TurnLog.Append(ctx, rec)
	}

	go func() {
		logCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := p.deps.TurnLog.Append(logCtx, rec); err != nil {
			p.deps.Logger.Warn("conversation log write failed",
				slog.String("session_id", rec.SessionID),
				slog.String("error", err.Error()))
		}
	}()
	return nil
}

// FollowUp is a promised future contact.
type FollowUp struct {
	ClinicID string    `json:"clinic_id"`
	Phone    string    `json:"phone"`
	Language string    `json:"language"`
	DueAt    time.Time `json:"due_at"`
	Note     string    `json:"note"`
}

// FollowUps schedules promised contacts for the outreach worker.
type FollowUps interface {
	Schedule(ctx context.Context, f FollowUp) error
}

// KVFollowUps stores follow-ups in the KV store; the outreach worker
// scans the keyspace. Entries expire a day past due so a dead worker
// cannot accumulate stale promises forever.
type KVFollowUps struct {
	store kv.Store
}

// NewKVFollowUps wraps a KV store.
func NewKVFollowUps(store kv.Store) *KVFollowUps {
	return &KVFollowUps{store: store}
}

func (s *KVFollowUps) Schedule(ctx context.Context, f FollowUp) error {
	key := fmt.Sprintf("followup:%s:%s", f.ClinicID, uuid.New().String())
	ttl := time.Until(f.DueAt) + 24*time.Hour
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return s.store.SetJSON(ctx, key, f, ttl)
}

// followUpPhrases are the assistant promises that warrant scheduling
// an outreach check.
var followUpPhrases = map[lang.Language][]string{
	lang.English: {"get back to you", "follow up", "will contact you", "check with the team"},
	lang.Spanish: {"le respondo", "nos pondremos en contacto", "le contactaremos", "consultarlo con el equipo"},
	lang.Russian: {"вернусь к вам", "свяжемся с вами", "уточню у команды", "напишем вам"},
}

func promisesFollowUp(response string, language lang.Language) bool {
	lowered := strings.ToLower(response)
	for _, phrase := range followUpPhrases[language] {
		if strings.Contains(lowered, phrase) {
			return true
		}
	}
	return false
}
