package slack

import (
	"fmt"
	"strings"
	"time"

	goslack "github.com/slack-go/slack"

	"github.com/mediqo/mediqo/pkg/scheduling"
)

const maxBlockTextLength = 2900

var statusEmoji = map[string]string{
	scheduling.EscalationResolved: ":white_check_mark:",
	scheduling.EscalationDeclined: ":no_entry_sign:",
}

var statusLabel = map[string]string{
	scheduling.EscalationResolved: "Escalation Resolved",
	scheduling.EscalationDeclined: "Escalation Declined",
}

func escalationURL(escalationID, dashboardURL string) string {
	return fmt.Sprintf("%s/escalations/%s", dashboardURL, escalationID)
}

// reasonLabel turns the stored reason code into channel-readable text.
func reasonLabel(reason string) string {
	if after, ok := strings.CutPrefix(reason, "escalate_rule:"); ok {
		return fmt.Sprintf("policy rule `%s` requires staff review", after)
	}
	if reason == "no_slots_available" {
		return "no slots matched the patient's constraints"
	}
	return reason
}

// BuildOpenedMessage creates Block Kit blocks announcing a new
// escalation. The escalation ID stays in the text so the outcome
// notification can find this message and thread under it.
func BuildOpenedMessage(esc *scheduling.Escalation, dashboardURL string) []goslack.Block {
	text := fmt.Sprintf(":rotating_light: *Scheduling escalation* `%s`\n%s", esc.ID, reasonLabel(esc.Reason))

	fields := []*goslack.TextBlockObject{
		goslack.NewTextBlockObject(goslack.MarkdownType, fmt.Sprintf("*Clinic:*\n%s", esc.ClinicID), false, false),
		goslack.NewTextBlockObject(goslack.MarkdownType, fmt.Sprintf("*Service:*\n%s", esc.ServiceID), false, false),
		goslack.NewTextBlockObject(goslack.MarkdownType, fmt.Sprintf("*SLA deadline:*\n%s", esc.SLADeadline.UTC().Format(time.RFC3339)), false, false),
		goslack.NewTextBlockObject(goslack.MarkdownType, fmt.Sprintf("*Suggestions ready:*\n%d", len(esc.Suggestions)), false, false),
	}

	blocks := []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, truncateForSlack(text), false, false),
			fields, nil,
		),
	}

	btn := goslack.NewButtonBlockElement("", "", goslack.NewTextBlockObject(goslack.PlainTextType, "Open Escalation", false, false))
	btn.URL = escalationURL(esc.ID, dashboardURL)
	blocks = append(blocks, goslack.NewActionBlock("", btn))

	return blocks
}

// BuildClosedMessage creates Block Kit blocks for an escalation outcome.
func BuildClosedMessage(esc *scheduling.Escalation, dashboardURL string) []goslack.Block {
	emoji := statusEmoji[esc.Status]
	if emoji == "" {
		emoji = ":question:"
	}
	label := statusLabel[esc.Status]
	if label == "" {
		label = "Escalation " + esc.Status
	}

	text := fmt.Sprintf("%s *%s* `%s`", emoji, label, esc.ID)
	switch esc.Status {
	case scheduling.EscalationResolved:
		if appointmentID, ok := esc.Resolution["appointment_id"].(string); ok && appointmentID != "" {
			text += fmt.Sprintf("\nBooked appointment `%s`", appointmentID)
		}
		if actor, ok := esc.Resolution["actor"].(string); ok && actor != "" {
			text += fmt.Sprintf(" by %s", actor)
		}
	case scheduling.EscalationDeclined:
		if reason, ok := esc.Resolution["declined_reason"].(string); ok && reason != "" {
			text += fmt.Sprintf("\n*Reason:*\n%s", truncateForSlack(reason))
		}
	}

	blocks := []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, truncateForSlack(text), false, false),
			nil, nil,
		),
	}

	btn := goslack.NewButtonBlockElement("", "", goslack.NewTextBlockObject(goslack.PlainTextType, "View Details", false, false))
	btn.URL = escalationURL(esc.ID, dashboardURL)
	blocks = append(blocks, goslack.NewActionBlock("", btn))

	return blocks
}

func truncateForSlack(text string) string {
	if len(text) <= maxBlockTextLength {
		return text
	}
	return text[:maxBlockTextLength] + "\n\n_... (truncated — open the escalation for the full request)_"
}
