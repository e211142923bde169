package slack

import (
	"strings"
	"testing"
	"time"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediqo/mediqo/pkg/models"
	"github.com/mediqo/mediqo/pkg/scheduling"
)

func openEscalation() *scheduling.Escalation {
	return &scheduling.Escalation{
		ID:        "esc-1",
		ClinicID:  "c1",
		PatientID: "p1",
		ServiceID: "svc-cleaning",
		Status:    scheduling.EscalationOpen,
		Reason:    "no_slots_available",
		Suggestions: make([]models.RelaxationSuggestion, 3),
		SLADeadline: time.Date(2025, 11, 26, 9, 0, 0, 0, time.UTC),
	}
}

func TestBuildOpenedMessage(t *testing.T) {
	esc := openEscalation()
	blocks := BuildOpenedMessage(esc, "https://dash.example.com")

	require.Len(t, blocks, 2)

	section, ok := blocks[0].(*goslack.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, ":rotating_light:")
	assert.Contains(t, section.Text.Text, "esc-1")
	assert.Contains(t, section.Text.Text, "no slots matched")
	require.Len(t, section.Fields, 4)

	action := blocks[1].(*goslack.ActionBlock)
	require.Len(t, action.Elements.ElementSet, 1)
	btn, ok := action.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
	require.True(t, ok)
	assert.Equal(t, "Open Escalation", btn.Text.Text)
	assert.Equal(t, "https://dash.example.com/escalations/esc-1", btn.URL)
}

func TestBuildOpenedMessage_PolicyRuleReason(t *testing.T) {
	esc := openEscalation()
	esc.Reason = "escalate_rule:review-sedation"
	blocks := BuildOpenedMessage(esc, "https://dash.example.com")

	section := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, section.Text.Text, "review-sedation")
	assert.Contains(t, section.Text.Text, "staff review")
}

func TestBuildClosedMessage_Resolved(t *testing.T) {
	esc := openEscalation()
	esc.Status = scheduling.EscalationResolved
	esc.Resolution = map[string]any{"appointment_id": "a1", "actor": "ana"}

	blocks := BuildClosedMessage(esc, "https://dash.example.com")
	require.Len(t, blocks, 2)

	section := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, section.Text.Text, ":white_check_mark:")
	assert.Contains(t, section.Text.Text, "Escalation Resolved")
	assert.Contains(t, section.Text.Text, "a1")
	assert.Contains(t, section.Text.Text, "ana")

	action := blocks[1].(*goslack.ActionBlock)
	btn := action.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
	assert.Equal(t, "View Details", btn.Text.Text)
}

func TestBuildClosedMessage_Declined(t *testing.T) {
	esc := openEscalation()
	esc.Status = scheduling.EscalationDeclined
	esc.Resolution = map[string]any{"declined_reason": "patient booked elsewhere"}

	blocks := BuildClosedMessage(esc, "https://dash.example.com")

	section := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, section.Text.Text, ":no_entry_sign:")
	assert.Contains(t, section.Text.Text, "Escalation Declined")
	assert.Contains(t, section.Text.Text, "patient booked elsewhere")
}

func TestBuildClosedMessage_UnknownStatus(t *testing.T) {
	esc := openEscalation()
	esc.Status = "assigned"

	blocks := BuildClosedMessage(esc, "https://dash.example.com")

	section := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, section.Text.Text, ":question:")
	assert.Contains(t, section.Text.Text, "Escalation assigned")
}

func TestTruncateForSlack(t *testing.T) {
	t.Run("short text unchanged", func(t *testing.T) {
		assert.Equal(t, "hello", truncateForSlack("hello"))
	})

	t.Run("exact limit unchanged", func(t *testing.T) {
		text := strings.Repeat("a", maxBlockTextLength)
		assert.Equal(t, text, truncateForSlack(text))
	})

	t.Run("over limit truncated", func(t *testing.T) {
		text := strings.Repeat("a", maxBlockTextLength+100)
		result := truncateForSlack(text)
		assert.Less(t, len(result), len(text))
		assert.Contains(t, result, "truncated")
	})
}
