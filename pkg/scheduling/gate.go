package scheduling

import (
	"strings"
	"time"

	"github.com/mediqo/mediqo/pkg/models"
	"github.com/mediqo/mediqo/pkg/policy"
)

// slotContext builds the dotted-path evaluation context policy rules
// see for one candidate slot. Times are rendered in the clinic
// timezone.
func slotContext(clinicID, patientID string, slot models.Slot, loc *time.Location, metadata map[string]string) map[string]any {
	start := slot.StartTime.In(loc)
	ctx := map[string]any{
		"clinic_id":  clinicID,
		"patient_id": patientID,
		"doctor_id":  slot.DoctorID,
		"room_id":    slot.RoomID,
		"service_id": slot.ServiceID,
		"date":       start.Format("2006-01-02"),
		"hour":       start.Hour(),
		"weekday":    strings.ToLower(start.Weekday().String()),
		"start_time": slot.StartTime.Format(time.RFC3339),
		"end_time":   slot.EndTime.Format(time.RFC3339),
	}
	if len(metadata) > 0 {
		meta := make(map[string]any, len(metadata))
		for k, v := range metadata {
			meta[k] = v
		}
		ctx["metadata"] = meta
	}
	return ctx
}

// gateOutcome is the result of running the hard-rule partition against
// one slot context.
type gateOutcome struct {
	// violated holds matched DENY rules and failed REQUIRE_FIELD rules.
	violated []policy.Rule
	// escalate is the first matched ESCALATE rule, which aborts the
	// whole request.
	escalate *policy.Rule
	// limits holds matched LIMIT_OCCURRENCE rules, reserved at confirm.
	limits []policy.Rule
}

func (g gateOutcome) blocked() bool {
	return len(g.violated) > 0 || g.escalate != nil
}

// evalHardRules walks the hard partition in compiled order.
func evalHardRules(rules []policy.Rule, ctx map[string]any) gateOutcome {
	var out gateOutcome
	for i := range rules {
		rule := rules[i]
		if !policy.Evaluate(rule.Conditions, ctx) {
			continue
		}
		switch rule.Effect.Type {
		case policy.EffectDeny:
			out.violated = append(out.violated, rule)
		case policy.EffectEscalate:
			if out.escalate == nil {
				out.escalate = &rule
			}
		case policy.EffectRequireField:
			if !policy.Truthy(policy.ResolvePath(ctx, rule.Effect.Field)) {
				out.violated = append(out.violated, rule)
			}
		case policy.EffectLimitOccurrence:
			out.limits = append(out.limits, rule)
		}
	}
	return out
}

// explainFor returns the patient-safe explanation for a blocking rule.
// Rule internals are never surfaced verbatim.
func explainFor(rule policy.Rule) string {
	if rule.ExplainTemplate != "" {
		return rule.ExplainTemplate
	}
	return "this time is not available under clinic policy"
}

func violationError(rules []policy.Rule) *PolicyViolationError {
	err := &PolicyViolationError{}
	for _, r := range rules {
		err.RuleIDs = append(err.RuleIDs, r.RuleID)
		err.Messages = append(err.Messages, explainFor(r))
	}
	return err
}
