package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediqo/mediqo/pkg/models"
	"github.com/mediqo/mediqo/pkg/pipeline"
	"github.com/mediqo/mediqo/pkg/scheduling"
)

type stubProcessor struct {
	result *pipeline.TurnResult
	err    error
	got    chan models.MessageRequest
}

func (p *stubProcessor) Process(_ context.Context, req models.MessageRequest) (*pipeline.TurnResult, error) {
	p.got <- req
	return p.result, p.err
}

type stubSender struct {
	sent chan sentMessage
}

type sentMessage struct {
	Instance, Phone, Text string
}

func (s *stubSender) SendText(_ context.Context, instance, phone, text string) error {
	s.sent <- sentMessage{Instance: instance, Phone: phone, Text: text}
	return nil
}

type stubScheduling struct {
	err     error
	suggest *models.SuggestSlotsResult
	hold    *models.HoldSlotResult
	confirm *models.ConfirmHoldResult
	queue   []*scheduling.Escalation
}

func (s *stubScheduling) SuggestSlots(context.Context, models.SuggestSlotsInput) (*models.SuggestSlotsResult, error) {
	return s.suggest, s.err
}

func (s *stubScheduling) HoldSlot(context.Context, models.HoldSlotInput) (*models.HoldSlotResult, error) {
	return s.hold, s.err
}

func (s *stubScheduling) ConfirmHold(context.Context, models.ConfirmHoldInput) (*models.ConfirmHoldResult, error) {
	return s.confirm, s.err
}

func (s *stubScheduling) CancelAppointment(context.Context, scheduling.CancelInput) error {
	return s.err
}

func (s *stubScheduling) Queue(context.Context, string) ([]*scheduling.Escalation, error) {
	return s.queue, s.err
}

func (s *stubScheduling) Assign(context.Context, string, string) (*scheduling.Escalation, error) {
	return nil, s.err
}

func (s *stubScheduling) Decline(context.Context, string, string) error {
	return s.err
}

func (s *stubScheduling) Resolve(context.Context, scheduling.ResolveInput) (*models.ConfirmHoldResult, error) {
	return s.confirm, s.err
}

type apiFixture struct {
	router    *gin.Engine
	processor *stubProcessor
	sender    *stubSender
	sched     *stubScheduling
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	f := &apiFixture{
		processor: &stubProcessor{
			result: &pipeline.TurnResult{SessionID: "sess-1", Text: "We are open 9 to 6."},
			got:    make(chan models.MessageRequest, 1),
		},
		sender: &stubSender{sent: make(chan sentMessage, 1)},
		sched:  &stubScheduling{},
	}
	server := NewServer(Deps{
		Pipeline:        f.processor,
		Scheduling:      f.sched,
		Sender:          f.sender,
		DefaultClinicID: "default-clinic",
	})
	f.router = gin.New()
	server.Register(f.router)
	return f
}

const inboundWebhook = `{
	"event": "messages.upsert",
	"instance": "clinic-7f3e9a10-22bc-4f7d-9d22-aa10b4c0de99-1732500000",
	"data": {
		"key": {"remoteJid": "5215550001@s.whatsapp.net", "fromMe": false, "id": "MSG1"},
		"pushName": "Maria",
		"message": {"conversation": "what are your hours?"}
	}
}`

func (f *apiFixture) post(t *testing.T, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestWebhook_AcceptsAndRepliesInBackground(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.post(t, "/webhooks/whatsapp", inboundWebhook)
	assert.Equal(t, http.StatusAccepted, rec.Code)

	select {
	case req := <-f.processor.got:
		assert.Equal(t, "5215550001", req.FromPhone)
		assert.Equal(t, "what are your hours?", req.Body)
		assert.Equal(t, "7f3e9a10-22bc-4f7d-9d22-aa10b4c0de99", req.ClinicID)
	case <-time.After(2 * time.Second):
		t.Fatal("pipeline was not invoked")
	}

	select {
	case sent := <-f.sender.sent:
		assert.Equal(t, "clinic-7f3e9a10-22bc-4f7d-9d22-aa10b4c0de99-1732500000", sent.Instance)
		assert.Equal(t, "5215550001", sent.Phone)
		assert.Equal(t, "We are open 9 to 6.", sent.Text)
	case <-time.After(2 * time.Second):
		t.Fatal("reply was not sent")
	}
}

func TestWebhook_IgnoresOwnMessages(t *testing.T) {
	f := newAPIFixture(t)

	body := strings.Replace(inboundWebhook, `"fromMe": false`, `"fromMe": true`, 1)
	rec := f.post(t, "/webhooks/whatsapp", body)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), "ignored")
	select {
	case <-f.processor.got:
		t.Fatal("pipeline must not run for our own messages")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestWebhook_RejectsMalformedPayload(t *testing.T) {
	f := newAPIFixture(t)
	rec := f.post(t, "/webhooks/whatsapp", `{not json`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
