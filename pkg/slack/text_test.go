package slack

import (
	"testing"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "lowercase",
			input:    "Escalation ESC-1 Opened",
			expected: "escalation esc-1 opened",
		},
		{
			name:     "collapse whitespace",
			input:    "escalation   esc-1\t\topened\n\ntoday",
			expected: "escalation esc-1 opened today",
		},
		{
			name:     "trim",
			input:    "  hello  ",
			expected: "hello",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalizeText(tt.input))
		})
	}
}

func TestCollectMessageText(t *testing.T) {
	tests := []struct {
		name     string
		msg      goslack.Message
		expected string
	}{
		{
			name: "text only",
			msg: goslack.Message{
				Msg: goslack.Msg{Text: "hello world"},
			},
			expected: "hello world",
		},
		{
			name: "text with attachment text",
			msg: goslack.Message{
				Msg: goslack.Msg{
					Text: "escalation",
					Attachments: []goslack.Attachment{
						{Text: "no slots available"},
					},
				},
			},
			expected: "escalation no slots available",
		},
		{
			name: "attachment with both text and fallback",
			msg: goslack.Message{
				Msg: goslack.Msg{
					Attachments: []goslack.Attachment{
						{Text: "att text", Fallback: "att fallback"},
					},
				},
			},
			expected: "att text att fallback",
		},
		{
			name:     "empty message",
			msg:      goslack.Message{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, collectMessageText(tt.msg))
		})
	}
}
