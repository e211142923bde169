// Package messaging adapts the WhatsApp transport: parsing inbound
// webhook payloads into MessageRequests and sending replies through
// the gateway's REST API.
package messaging

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mediqo/mediqo/pkg/models"
)

// ErrSelfMessage marks an echo of our own outbound message; the
// webhook fires for both directions.
var ErrSelfMessage = errors.New("messaging: message sent by us")

// ErrNoText marks a payload with no extractable text (stickers,
// reactions, bare media).
var ErrNoText = errors.New("messaging: no text content")

// WebhookPayload is the gateway's message-upsert event. Only the
// fields we extract are declared.
type WebhookPayload struct {
	Event    string `json:"event"`
	Instance string `json:"instance"`
	Data     struct {
		Key struct {
			RemoteJid string `json:"remoteJid"`
			FromMe    bool   `json:"fromMe"`
			ID        string `json:"id"`
		} `json:"key"`
		PushName string `json:"pushName"`
		Message  struct {
			Conversation        string `json:"conversation"`
			ExtendedTextMessage struct {
				Text string `json:"text"`
			} `json:"extendedTextMessage"`
			ImageMessage struct {
				Caption string `json:"caption"`
			} `json:"imageMessage"`
			VideoMessage struct {
				Caption string `json:"caption"`
			} `json:"videoMessage"`
		} `json:"message"`
		MessageTimestamp int64 `json:"messageTimestamp"`
	} `json:"data"`
}

// ParseWebhook extracts one MessageRequest from a raw webhook body.
// Returns ErrSelfMessage / ErrNoText for payloads the pipeline must
// skip.
func ParseWebhook(raw []byte, defaultClinicID string) (*models.MessageRequest, error) {
	var payload WebhookPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("decode webhook payload: %w", err)
	}
	if payload.Data.Key.FromMe {
		return nil, ErrSelfMessage
	}

	body := messageText(payload)
	if body == "" {
		return nil, ErrNoText
	}

	receivedAt := time.Now()
	if ts := payload.Data.MessageTimestamp; ts > 0 {
		receivedAt = time.Unix(ts, 0)
	}

	return &models.MessageRequest{
		FromPhone:  phoneFromJid(payload.Data.Key.RemoteJid),
		Body:       body,
		SID:        payload.Data.Key.ID,
		ClinicID:   ClinicIDFromInstance(payload.Instance, defaultClinicID),
		Channel:    "whatsapp",
		PushName:   payload.Data.PushName,
		ReceivedAt: receivedAt,
		Metadata:   map[string]string{"instance": payload.Instance},
	}, nil
}

// messageText digs the body out of whichever message shape the
// gateway used.
func messageText(payload WebhookPayload) string {
	msg := payload.Data.Message
	for _, candidate := range []string{
		msg.Conversation,
		msg.ExtendedTextMessage.Text,
		msg.ImageMessage.Caption,
		msg.VideoMessage.Caption,
	} {
		if text := strings.TrimSpace(candidate); text != "" {
			return text
		}
	}
	return ""
}

// phoneFromJid strips the transport suffix: "5215550001@s.whatsapp.net"
// becomes "5215550001".
func phoneFromJid(jid string) string {
	if at := strings.IndexByte(jid, '@'); at >= 0 {
		return jid[:at]
	}
	return jid
}

// ClinicIDFromInstance recovers the clinic id from an instance name of
// the form clinic-{uuid}-{timestamp}. The UUID's own hyphens mean the
// id spans tokens 1-5. Anything else falls back to the default.
func ClinicIDFromInstance(instance, fallback string) string {
	parts := strings.Split(instance, "-")
	if len(parts) < 7 || parts[0] != "clinic" {
		return fallback
	}
	candidate := strings.Join(parts[1:6], "-")
	if _, err := uuid.Parse(candidate); err != nil {
		return fallback
	}
	return candidate
}
