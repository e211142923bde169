package pipeline

import (
	"encoding/json"
	"strings"

	"github.com/mediqo/mediqo/pkg/lang"
	"github.com/mediqo/mediqo/pkg/models"
)

// NarrowingKind selects between the two instruction shapes.
type NarrowingKind string

const (
	// NarrowAsk tells the model to ask one specific clarifying
	// question.
	NarrowAsk NarrowingKind = "ask_clarification"
	// NarrowCheck tells the model to call check_availability with
	// pre-bound arguments.
	NarrowCheck NarrowingKind = "check_availability"
)

// NarrowingInstruction is the narrower's advisory decision, injected
// into the system prompt as the booking control block. The model may
// phrase things its own way but must respect the DO/DO-NOT rules.
type NarrowingInstruction struct {
	Kind         NarrowingKind
	TemplateKey  string
	TemplateArgs map[string]string
	// ToolArgs are the pre-bound check_availability arguments.
	ToolArgs map[string]any
}

// Narrow decides the single next move that shrinks the booking search
// space: ask for the missing service, ask for the missing time
// window, or check availability with everything that is bound.
func Narrow(block models.ConstraintBlock, clinic models.ClinicProfile, language lang.Language) *NarrowingInstruction {
	if block.DesiredService == "" {
		names := make([]string, 0, len(clinic.Services))
		for _, s := range clinic.Services {
			names = append(names, s.Name)
		}
		return &NarrowingInstruction{
			Kind:         NarrowAsk,
			TemplateKey:  lang.TplServiceClarify,
			TemplateArgs: map[string]string{"services": strings.Join(names, ", ")},
		}
	}

	if block.TimeWindow.IsZero() {
		return &NarrowingInstruction{
			Kind:         NarrowAsk,
			TemplateKey:  lang.TplNarrowTime,
			TemplateArgs: map[string]string{"service": block.DesiredService},
		}
	}

	args := map[string]any{
		"service_name": block.DesiredService,
		"date_from":    block.TimeWindow.Start,
		"date_to":      block.TimeWindow.End,
	}
	if block.DesiredDoctor != "" {
		args["doctor_id"] = block.DesiredDoctor
	}
	return &NarrowingInstruction{Kind: NarrowCheck, ToolArgs: args}
}

// ControlBlock renders the instruction for the system prompt.
func (n *NarrowingInstruction) ControlBlock(language lang.Language) string {
	switch n.Kind {
	case NarrowAsk:
		question, err := lang.Render(language, n.TemplateKey, n.TemplateArgs)
		if err != nil {
			return ""
		}
		return "DO: ask the patient exactly one question to move the booking forward, in the spirit of: " + question
	case NarrowCheck:
		encoded, err := json.Marshal(n.ToolArgs)
		if err != nil {
			return ""
		}
		return "DO: call check_availability now with these arguments before saying anything about times: " + string(encoded)
	}
	return ""
}
