package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediqo/mediqo/pkg/constraints"
	"github.com/mediqo/mediqo/pkg/hydrate"
	"github.com/mediqo/mediqo/pkg/lang"
	"github.com/mediqo/mediqo/pkg/llm"
	"github.com/mediqo/mediqo/pkg/models"
	"github.com/mediqo/mediqo/pkg/router"
	"github.com/mediqo/mediqo/pkg/scheduling"
	"github.com/mediqo/mediqo/pkg/session"
	"github.com/mediqo/mediqo/pkg/tiers"
	"github.com/mediqo/mediqo/pkg/tools"
)

func pipeClinic() models.ClinicProfile {
	return models.ClinicProfile{
		ClinicID: "c1",
		Name:     "Clinica Central",
		Timezone: "UTC",
		Services: []models.Service{
			{ID: "S1", Name: "Limpieza Dental", DurationMinutes: 45, Price: 850, Currency: "MXN", Description: "Deep dental cleaning."},
		},
		Doctors:        []models.Doctor{{ID: "doc-shtern", Name: "Dr. Shtern", ServiceIDs: []string{"S1"}}},
		ServiceAliases: map[string]string{"limpieza": "S1"},
	}
}

type fakeLangSvc struct{ language lang.Language }

func (f *fakeLangSvc) Resolve(context.Context, string, string, string) lang.Language {
	return f.language
}

type fakeSessions struct {
	rec         *session.Record
	lastSignals session.Signals
}

func (f *fakeSessions) Resolve(_ context.Context, _, _, _ string, signals session.Signals) (session.Resolution, error) {
	f.lastSignals = signals
	return session.Resolution{Session: f.rec, Decision: session.Continue}, nil
}

type fakeHydrator struct {
	clinic  models.ClinicProfile
	patient models.PatientProfile
	block   models.ConstraintBlock
	history []models.HistoryMessage
}

func (f *fakeHydrator) Hydrate(_ context.Context, in hydrate.Input) (*hydrate.Context, error) {
	return &hydrate.Context{
		Clinic:      f.clinic,
		Patient:     f.patient,
		Session:     in.Session,
		Constraints: f.block,
		History:     f.history,
		PrevSummary: in.PrevSummary,
	}, nil
}

type fakeGate struct{ open bool }

func (f *fakeGate) OpenForPatient(context.Context, string, string) (bool, error) {
	return f.open, nil
}

type fakeState struct {
	lastService string
	pending     string
	calls       int
}

func (f *fakeState) SetConversationState(_ context.Context, _, lastService, pendingAction string) error {
	f.lastService = lastService
	f.pending = pendingAction
	f.calls++
	return nil
}

type fakeConstraints struct {
	block      models.ConstraintBlock
	lastUpdate *models.ConstraintUpdate
}

func (f *fakeConstraints) Update(_ context.Context, sessionID string, update models.ConstraintUpdate, _ lang.Language) (models.ConstraintBlock, error) {
	f.lastUpdate = &update
	f.block.SessionID = sessionID
	if update.DesiredService != "" {
		f.block.DesiredService = update.DesiredService
	}
	f.block.ExcludedDoctors = append(f.block.ExcludedDoctors, update.ExcludeDoctors...)
	if update.TimeWindow != nil {
		f.block.TimeWindow = *update.TimeWindow
	}
	return f.block, nil
}

type fakeTurnLog struct {
	recs []TurnRecord
	err  error
}

func (f *fakeTurnLog) Append(_ context.Context, rec TurnRecord) error {
	if f.err != nil {
		return f.err
	}
	f.recs = append(f.recs, rec)
	return nil
}

type fakeFollowUps struct{ scheduled []FollowUp }

func (f *fakeFollowUps) Schedule(_ context.Context, fu FollowUp) error {
	f.scheduled = append(f.scheduled, fu)
	return nil
}

type scriptedProvider struct {
	responses []*llm.Response
	errs      []error
	requests  []llm.Request
	idx       int
}

func (p *scriptedProvider) Model() string { return "scripted" }

func (p *scriptedProvider) next(req llm.Request) (*llm.Response, error) {
	p.requests = append(p.requests, req)
	if p.idx >= len(p.responses) {
		return nil, errors.New("provider called more times than scripted")
	}
	resp, err := p.responses[p.idx], error(nil)
	if p.idx < len(p.errs) {
		err = p.errs[p.idx]
	}
	p.idx++
	if err != nil {
		return nil, err
	}
	return resp, nil
}

func (p *scriptedProvider) Generate(_ context.Context, req llm.Request) (*llm.Response, error) {
	return p.next(req)
}

func (p *scriptedProvider) GenerateWithTools(_ context.Context, req llm.Request, _ []llm.ToolDefinition) (*llm.Response, error) {
	return p.next(req)
}

type fakeProviders struct{ provider llm.Provider }

func (f *fakeProviders) ForModel(string) (llm.Provider, error) { return f.provider, nil }

type fakeSched struct {
	slots []models.Slot
}

func (s *fakeSched) SuggestSlots(context.Context, models.SuggestSlotsInput) (*models.SuggestSlotsResult, error) {
	return &models.SuggestSlotsResult{Slots: s.slots}, nil
}

func (s *fakeSched) HoldSlot(context.Context, models.HoldSlotInput) (*models.HoldSlotResult, error) {
	return &models.HoldSlotResult{HoldID: "h1"}, nil
}

func (s *fakeSched) ConfirmHold(context.Context, models.ConfirmHoldInput) (*models.ConfirmHoldResult, error) {
	return &models.ConfirmHoldResult{AppointmentID: "a1"}, nil
}

func (s *fakeSched) CancelAppointment(context.Context, scheduling.CancelInput) error { return nil }

type pipeFixture struct {
	pipeline  *Pipeline
	sessions  *fakeSessions
	gate      *fakeGate
	state     *fakeState
	updates   *fakeConstraints
	turnLog   *fakeTurnLog
	followUps *fakeFollowUps
	provider  *scriptedProvider
}

func newPipeFixture(t *testing.T, language lang.Language) *pipeFixture {
	t.Helper()
	registry, err := tiers.NewRegistry(tiers.Config{Getenv: func(string) string { return "" }})
	require.NoError(t, err)

	f := &pipeFixture{
		sessions: &fakeSessions{rec: &session.Record{
			ID: "sess-1", ClinicID: "c1", Phone: "+5215550001", Status: "active",
		}},
		gate:      &fakeGate{},
		state:     &fakeState{},
		updates:   &fakeConstraints{},
		turnLog:   &fakeTurnLog{},
		followUps: &fakeFollowUps{},
		provider: &scriptedProvider{responses: []*llm.Response{
			{Content: "How can I help?"},
		}},
	}
	f.pipeline = New(Deps{
		Language: &fakeLangSvc{language: language},
		Sessions: f.sessions,
		Hydrator: &fakeHydrator{
			clinic:  pipeClinic(),
			patient: models.PatientProfile{PatientID: "p1", ClinicID: "c1", Phone: "+5215550001"},
		},
		Escalations: f.gate,
		Router:      router.New(),
		FastPath:    router.NewFastPath(),
		State:       f.state,
		Extractor:   constraints.NewExtractor(),
		Constraints: f.updates,
		Tiers:       registry,
		Providers:   &fakeProviders{provider: f.provider},
		Scheduler:   &fakeSched{slots: []models.Slot{{
			DoctorID: "doc-shtern", RoomID: "r1", ServiceID: "S1",
			StartTime: time.Date(2025, 11, 25, 11, 0, 0, 0, time.UTC),
			EndTime:   time.Date(2025, 11, 25, 12, 0, 0, 0, time.UTC),
		}}},
		TurnLog:     f.turnLog,
		FollowUps:   f.followUps,
		LogFailFast: true,
	})
	return f
}

func inbound(body string) models.MessageRequest {
	return models.MessageRequest{
		FromPhone:  "+5215550001",
		Body:       body,
		ClinicID:   "c1",
		Channel:    "whatsapp",
		ReceivedAt: time.Now(),
	}
}

func TestProcess_FastPathPriceSkipsLLM(t *testing.T) {
	f := newPipeFixture(t, lang.Spanish)

	res, err := f.pipeline.Process(context.Background(), inbound("cuánto cuesta limpieza?"))
	require.NoError(t, err)

	assert.True(t, res.FastPath)
	assert.Equal(t, router.LanePrice, res.Lane)
	assert.Contains(t, res.Text, "cuesta")
	assert.Contains(t, res.Text, "850")

	// No LLM call, and the session remembers the offer.
	assert.Empty(t, f.provider.requests)
	assert.Equal(t, "S1", f.state.lastService)
	assert.Equal(t, "offer_booking", f.state.pending)

	require.Len(t, f.turnLog.recs, 1)
	assert.True(t, f.turnLog.recs[0].FastPath)
	assert.Equal(t, "price", f.turnLog.recs[0].Lane)
}

func TestProcess_EscalationHoldShortCircuits(t *testing.T) {
	f := newPipeFixture(t, lang.English)
	f.gate.open = true

	res, err := f.pipeline.Process(context.Background(), inbound("any update on my booking?"))
	require.NoError(t, err)

	assert.Equal(t, lang.Fallback(lang.English), res.Text)
	assert.Empty(t, f.provider.requests)

	// The holding phrase is a promise, so outreach is scheduled.
	require.Len(t, f.followUps.scheduled, 1)
	assert.Equal(t, "c1", f.followUps.scheduled[0].ClinicID)
	require.Len(t, f.turnLog.recs, 1)
}

func TestProcess_ComplexTurnBuildsPromptAndCallsLLM(t *testing.T) {
	f := newPipeFixture(t, lang.English)

	res, err := f.pipeline.Process(context.Background(), inbound("I need help choosing a treatment"))
	require.NoError(t, err)

	assert.Equal(t, "How can I help?", res.Text)
	assert.Equal(t, router.LaneComplex, res.Lane)
	assert.False(t, res.FastPath)

	require.Len(t, f.provider.requests, 1)
	system := f.provider.requests[0].System
	assert.Contains(t, system, "Clinica Central")
	assert.Contains(t, system, "Booking control")
	assert.Contains(t, system, "Limpieza Dental")

	msgs := f.provider.requests[0].Messages
	require.NotEmpty(t, msgs)
	assert.Equal(t, llm.RoleUser, msgs[len(msgs)-1].Role)
	assert.Equal(t, "I need help choosing a treatment", msgs[len(msgs)-1].Content)
}

func TestProcess_ExplicitResetSignal(t *testing.T) {
	f := newPipeFixture(t, lang.English)

	_, err := f.pipeline.Process(context.Background(), inbound("let's start over please"))
	require.NoError(t, err)
	assert.True(t, f.sessions.lastSignals.ExplicitReset)
}

func TestProcess_ConstraintChangeEchoedAndLogged(t *testing.T) {
	f := newPipeFixture(t, lang.English)

	res, err := f.pipeline.Process(context.Background(), inbound("Please forget Dr. Dan"))
	require.NoError(t, err)

	require.NotNil(t, f.updates.lastUpdate)
	assert.NotEmpty(t, f.updates.lastUpdate.ExcludeDoctors)

	assert.True(t, strings.HasPrefix(res.Text, "Noted: "), "state echo must lead the reply, got %q", res.Text)
	assert.Contains(t, res.Text, "How can I help?")

	require.Len(t, f.turnLog.recs, 1)
	assert.NotNil(t, f.turnLog.recs[0].ConstraintsDelta)
}

func TestProcess_ToolTurnSetsPendingAction(t *testing.T) {
	f := newPipeFixture(t, lang.English)
	f.provider.responses = []*llm.Response{
		{ToolCalls: []llm.ToolCall{{
			ID:   "call-1",
			Name: tools.ToolCheckAvailability,
			Arguments: map[string]any{
				"service_name":   "Limpieza Dental",
				"preferred_date": "2025-11-25",
			},
		}}, AssistantMeta: "m1"},
		{Content: "We have 11:00 on Tuesday, shall I book it?"},
	}

	res, err := f.pipeline.Process(context.Background(), inbound("I need help choosing a treatment"))
	require.NoError(t, err)

	assert.Equal(t, "We have 11:00 on Tuesday, shall I book it?", res.Text)
	assert.False(t, res.ResponseFlagged, "time is backed by the availability call")
	assert.Equal(t, "offer_booking", f.state.pending)

	require.Len(t, f.turnLog.recs, 1)
	require.Len(t, f.turnLog.recs[0].ToolsAudit, 1)
	assert.Equal(t, tools.ToolCheckAvailability, f.turnLog.recs[0].ToolsAudit[0].Tool)
}

func TestProcess_GenerationFailureFallsBackToTemplate(t *testing.T) {
	f := newPipeFixture(t, lang.English)
	f.provider.responses = []*llm.Response{nil, nil}
	f.provider.errs = []error{errors.New("provider down"), errors.New("still down")}

	res, err := f.pipeline.Process(context.Background(), inbound("I need help choosing a treatment"))
	require.NoError(t, err)
	assert.Contains(t, res.Text, "once more")
}

func TestProcess_LogFailFastPropagates(t *testing.T) {
	f := newPipeFixture(t, lang.English)
	f.turnLog.err = errors.New("db down")

	_, err := f.pipeline.Process(context.Background(), inbound("hello there"))
	require.ErrorContains(t, err, "db down")
}
