package pipeline

import (
	"fmt"
	"strings"

	"github.com/mediqo/mediqo/pkg/lang"
	"github.com/mediqo/mediqo/pkg/llm"
	"github.com/mediqo/mediqo/pkg/models"
)

var languageNames = map[lang.Language]string{
	lang.English: "English",
	lang.Spanish: "Spanish",
	lang.Russian: "Russian",
}

// buildSystemPrompt assembles the system prompt: clinic facts, the
// live constraint rules, continuity from an archived session, and the
// narrower's booking control block.
func buildSystemPrompt(tc *TurnContext) string {
	clinic := tc.Hydrated.Clinic
	var b strings.Builder

	fmt.Fprintf(&b, "You are the scheduling assistant of %s.\n", clinic.Name)
	fmt.Fprintf(&b, "Reply in %s only.\n", languageNames[tc.Language])
	b.WriteString("Never state concrete appointment times or prices unless a tool call in this conversation returned them.\n")

	if len(clinic.Services) > 0 {
		b.WriteString("\nServices:\n")
		for _, s := range clinic.Services {
			fmt.Fprintf(&b, "- %s (%s, %d min, %s)\n",
				s.Name, s.ID, s.DurationMinutes, lang.FormatCurrency(tc.Language, s.Price, s.Currency))
		}
	}
	if len(clinic.Doctors) > 0 {
		b.WriteString("Doctors:\n")
		for _, d := range clinic.Doctors {
			fmt.Fprintf(&b, "- %s (%s)\n", d.Name, d.ID)
		}
	}

	if rules := constraintRules(tc.Constraints, tc.Hydrated.Patient); rules != "" {
		b.WriteString("\nConversation rules:\n")
		b.WriteString(rules)
	}

	if tc.PrevSummary != "" {
		b.WriteString("\nPrevious conversation summary (context only, re-confirm anything you rely on): ")
		b.WriteString(tc.PrevSummary)
		b.WriteString("\n")
	}

	if tc.Narrowing != nil {
		if block := tc.Narrowing.ControlBlock(tc.Language); block != "" {
			b.WriteString("\nBooking control:\n")
			b.WriteString(block)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// constraintRules renders the DO-NOT lines the model must honor. The
// executor enforces them regardless; stating them keeps the model
// from wasting turns on blocked calls.
func constraintRules(block models.ConstraintBlock, patient models.PatientProfile) string {
	var lines []string
	excludedDoctors := append(append([]string{}, block.ExcludedDoctors...), patient.HardDoctorBans...)
	if len(excludedDoctors) > 0 {
		lines = append(lines, "DO NOT offer or book these doctors: "+strings.Join(excludedDoctors, ", "))
	}
	excludedServices := append(append([]string{}, block.ExcludedServices...), patient.HardServiceBans...)
	if len(excludedServices) > 0 {
		lines = append(lines, "DO NOT offer these services: "+strings.Join(excludedServices, ", "))
	}
	if block.DesiredService != "" {
		lines = append(lines, "The patient wants: "+block.DesiredService+". DO NOT switch services without asking.")
	}
	if !block.TimeWindow.IsZero() {
		lines = append(lines, fmt.Sprintf("The patient asked for %s (%s to %s). Search that window.",
			block.TimeWindow.Display, block.TimeWindow.Start, block.TimeWindow.End))
	}
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// conversationMessages maps the hydrated history plus the new message
// into the provider-neutral shape.
func conversationMessages(tc *TurnContext) []llm.Message {
	history := tc.Hydrated.History
	out := make([]llm.Message, 0, len(history)+1)
	for _, h := range history {
		role := llm.RoleUser
		if h.Role == "assistant" {
			role = llm.RoleAssistant
		}
		out = append(out, llm.Message{Role: role, Content: h.Content})
	}
	return append(out, llm.Message{Role: llm.RoleUser, Content: tc.Request.Body})
}

// stateEcho renders the one-line constraint acknowledgement prepended
// when this turn changed the block.
func stateEcho(language lang.Language, block models.ConstraintBlock) string {
	var parts []string
	if block.DesiredService != "" {
		parts = append(parts, block.DesiredService)
	}
	if block.DesiredDoctor != "" {
		parts = append(parts, block.DesiredDoctor)
	}
	if len(block.ExcludedDoctors) > 0 {
		parts = append(parts, "not "+strings.Join(block.ExcludedDoctors, ", not "))
	}
	if !block.TimeWindow.IsZero() && block.TimeWindow.Display != "" {
		parts = append(parts, block.TimeWindow.Display)
	}
	if len(parts) == 0 {
		return ""
	}
	echo, err := lang.Render(language, lang.TplStateEcho, map[string]string{
		"summary": strings.Join(parts, "; "),
	})
	if err != nil {
		return ""
	}
	return echo
}
