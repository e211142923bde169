package messaging

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testInstance = "clinic-7f3e9a10-22bc-4f7d-9d22-aa10b4c0de99-1732500000"

func webhookBody(message string) []byte {
	return fmt.Appendf(nil, `{
		"event": "messages.upsert",
		"instance": %q,
		"data": {
			"key": {"remoteJid": "5215550001@s.whatsapp.net", "fromMe": false, "id": "MSG1"},
			"pushName": "Maria",
			"message": %s,
			"messageTimestamp": 1732500000
		}
	}`, testInstance, message)
}

func TestParseWebhook_Conversation(t *testing.T) {
	req, err := ParseWebhook(webhookBody(`{"conversation": "hola, quiero una cita"}`), "default-clinic")
	require.NoError(t, err)

	assert.Equal(t, "5215550001", req.FromPhone)
	assert.Equal(t, "hola, quiero una cita", req.Body)
	assert.Equal(t, "MSG1", req.SID)
	assert.Equal(t, "7f3e9a10-22bc-4f7d-9d22-aa10b4c0de99", req.ClinicID)
	assert.Equal(t, "whatsapp", req.Channel)
	assert.Equal(t, "Maria", req.PushName)
	assert.Equal(t, int64(1732500000), req.ReceivedAt.Unix())
	assert.Equal(t, testInstance, req.Metadata["instance"])
}

func TestParseWebhook_NestedShapes(t *testing.T) {
	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"extended text", `{"extendedTextMessage": {"text": "reply text"}}`, "reply text"},
		{"image caption", `{"imageMessage": {"caption": "my x-ray"}}`, "my x-ray"},
		{"video caption", `{"videoMessage": {"caption": "see video"}}`, "see video"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := ParseWebhook(webhookBody(tt.message), "default-clinic")
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.Body)
		})
	}
}

func TestParseWebhook_SkipsOwnMessages(t *testing.T) {
	body := []byte(`{
		"instance": "` + testInstance + `",
		"data": {
			"key": {"remoteJid": "5215550001@s.whatsapp.net", "fromMe": true, "id": "MSG2"},
			"message": {"conversation": "our own reply"}
		}
	}`)
	_, err := ParseWebhook(body, "default-clinic")
	assert.ErrorIs(t, err, ErrSelfMessage)
}

func TestParseWebhook_NoText(t *testing.T) {
	_, err := ParseWebhook(webhookBody(`{"conversation": "   "}`), "default-clinic")
	assert.ErrorIs(t, err, ErrNoText)
}

func TestParseWebhook_Malformed(t *testing.T) {
	_, err := ParseWebhook([]byte(`{not json`), "default-clinic")
	assert.Error(t, err)
}

func TestClinicIDFromInstance(t *testing.T) {
	tests := []struct {
		name     string
		instance string
		want     string
	}{
		{"canonical shape", testInstance, "7f3e9a10-22bc-4f7d-9d22-aa10b4c0de99"},
		{"missing prefix", "7f3e9a10-22bc-4f7d-9d22-aa10b4c0de99-1732500000", "fallback"},
		{"not a uuid", "clinic-one-two-three-four-five-1732500000", "fallback"},
		{"too short", "clinic-7f3e9a10", "fallback"},
		{"empty", "", "fallback"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClinicIDFromInstance(tt.instance, "fallback"))
		})
	}
}
