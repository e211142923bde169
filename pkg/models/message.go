// Package models defines the shared domain types passed between
// pipeline components. Persistence-level types live in ent; these are
// the transient per-request shapes.
package models

import "time"

// MessageRequest is a normalized inbound patient message.
// Built by the webhook handler from the raw transport payload.
type MessageRequest struct {
	FromPhone  string            `json:"from_phone"`
	ToPhone    string            `json:"to_phone"`
	Body       string            `json:"body"`
	SID        string            `json:"sid"`
	ClinicID   string            `json:"clinic_id"`
	Channel    string            `json:"channel"`
	PushName   string            `json:"push_name,omitempty"`
	Metadata   map[string]string `json:"metadata,omitempty"`
	ReceivedAt time.Time         `json:"received_at"`
}

// HistoryMessage is one prior turn loaded for prompt assembly.
type HistoryMessage struct {
	Role      string    `json:"role"` // user | assistant
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// OutboundMessage is a reply queued for the messaging transport.
type OutboundMessage struct {
	Instance string `json:"instance"`
	Phone    string `json:"phone"`
	Text     string `json:"text"`
}
