// Package policy compiles declarative per-clinic rule bundles into a
// runtime evaluator. Compilation is all-or-nothing: validation problems
// accumulate and are returned together, and a bundle that fails any
// check produces no partial compilation.
package policy

import (
	"encoding/json"
	"fmt"
)

// EffectType enumerates what a matched rule does.
type EffectType string

const (
	// Hard effects — evaluated in the gate, can reject slots or the
	// whole request.
	EffectDeny            EffectType = "DENY"
	EffectEscalate        EffectType = "ESCALATE"
	EffectRequireField    EffectType = "REQUIRE_FIELD"
	EffectLimitOccurrence EffectType = "LIMIT_OCCURRENCE"

	// Soft effects — evaluated during scoring.
	EffectAdjustScore EffectType = "ADJUST_SCORE"
	EffectWarn        EffectType = "WARN"
)

// IsHard reports whether the effect belongs to the hard partition.
func (t EffectType) IsHard() bool {
	switch t {
	case EffectDeny, EffectEscalate, EffectRequireField, EffectLimitOccurrence:
		return true
	}
	return false
}

// Effect is a rule's action. Only the fields relevant to Type are set.
type Effect struct {
	Type EffectType `json:"type"`

	// Field names the context field that must be truthy (REQUIRE_FIELD).
	Field string `json:"field,omitempty"`

	// Key, WindowSeconds and MaxN parameterize LIMIT_OCCURRENCE.
	// Key is a template over the slot context, e.g. "tenant:{clinic_id}".
	Key           string `json:"key,omitempty"`
	WindowSeconds int    `json:"window_seconds,omitempty"`
	MaxN          int    `json:"max_n,omitempty"`

	// Delta adjusts the soft score (ADJUST_SCORE), unscaled.
	Delta float64 `json:"delta,omitempty"`

	// Message is appended to slot explanations (WARN).
	Message string `json:"message,omitempty"`
}

// Rule is one declarative policy rule.
type Rule struct {
	RuleID     string `json:"rule_id"`
	Precedence int    `json:"precedence"`
	// Salience breaks runtime ordering ties; higher wins.
	Salience        int        `json:"salience,omitempty"`
	Conditions      *Condition `json:"conditions"`
	Effect          Effect     `json:"effect"`
	Dependencies    []string   `json:"dependencies,omitempty"`
	ExplainTemplate string     `json:"explain_template,omitempty"`
	Description     string     `json:"description,omitempty"`
}

// Bundle is a clinic's authored rule collection.
type Bundle struct {
	SchemaVersion string         `json:"schema_version"`
	BundleID      string         `json:"bundle_id"`
	ClinicID      string         `json:"clinic_id"`
	Rules         []Rule         `json:"rules"`
	Metadata      map[string]any `json:"metadata,omitempty"`
}

// Operator enumerates leaf comparison operators.
type Operator string

const (
	OpEquals         Operator = "equals"
	OpNotEquals      Operator = "not_equals"
	OpGreaterThan    Operator = "greater_than"
	OpGreaterOrEqual Operator = "greater_or_equal"
	OpLessThan       Operator = "less_than"
	OpLessOrEqual    Operator = "less_or_equal"
	OpContains       Operator = "contains"
	OpNotContains    Operator = "not_contains"
	OpStartsWith     Operator = "starts_with"
	OpEndsWith       Operator = "ends_with"
	OpIn             Operator = "in"
	OpNotIn          Operator = "not_in"
	OpBetween        Operator = "between"
	OpIsNull         Operator = "is_null"
	OpIsNotNull      Operator = "is_not_null"
	OpRegex          Operator = "regex"
)

// CombinatorKind enumerates boolean combinators.
type CombinatorKind string

const (
	CombAll  CombinatorKind = "all"
	CombAny  CombinatorKind = "any"
	CombNone CombinatorKind = "none"
	CombNot  CombinatorKind = "not"
)

// Condition is a tagged union: either a boolean combinator over child
// conditions or a single field comparison leaf. Exactly one of
// Combinator or Leaf is set after decoding.
type Condition struct {
	Combinator *Combinator
	Leaf       *Leaf
}

// Combinator is a boolean node. Not holds exactly one child.
type Combinator struct {
	Kind     CombinatorKind
	Children []*Condition
}

// Leaf compares a dotted-path context field against a value.
type Leaf struct {
	Field         string   `json:"field"`
	Operator      Operator `json:"operator"`
	Value         any      `json:"value,omitempty"`
	CaseSensitive bool     `json:"case_sensitive,omitempty"`
}

// UnmarshalJSON decodes the authored condition shape: a node with an
// "all"/"any"/"none"/"not" key is a combinator, anything else must be
// a {field, operator, ...} leaf.
func (c *Condition) UnmarshalJSON(data []byte) error {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}

	for _, kind := range []CombinatorKind{CombAll, CombAny, CombNone} {
		raw, ok := probe[string(kind)]
		if !ok {
			continue
		}
		var children []*Condition
		if err := json.Unmarshal(raw, &children); err != nil {
			return fmt.Errorf("condition %s: %w", kind, err)
		}
		c.Combinator = &Combinator{Kind: kind, Children: children}
		return nil
	}
	if raw, ok := probe[string(CombNot)]; ok {
		var child Condition
		if err := json.Unmarshal(raw, &child); err != nil {
			return fmt.Errorf("condition not: %w", err)
		}
		c.Combinator = &Combinator{Kind: CombNot, Children: []*Condition{&child}}
		return nil
	}

	var leaf Leaf
	if err := json.Unmarshal(data, &leaf); err != nil {
		return err
	}
	if leaf.Field == "" || leaf.Operator == "" {
		return fmt.Errorf("condition leaf requires field and operator")
	}
	c.Leaf = &leaf
	return nil
}

// MarshalJSON re-encodes the condition in its authored shape.
func (c *Condition) MarshalJSON() ([]byte, error) {
	if c.Combinator != nil {
		if c.Combinator.Kind == CombNot {
			if len(c.Combinator.Children) != 1 {
				return nil, fmt.Errorf("not combinator requires exactly one child")
			}
			return json.Marshal(map[string]any{"not": c.Combinator.Children[0]})
		}
		return json.Marshal(map[string]any{string(c.Combinator.Kind): c.Combinator.Children})
	}
	if c.Leaf != nil {
		return json.Marshal(c.Leaf)
	}
	return nil, fmt.Errorf("empty condition")
}

// Problem is one validation finding, locatable in the bundle JSON.
type Problem struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (p Problem) String() string {
	return fmt.Sprintf("%s: %s", p.Path, p.Message)
}

// ValidationError aggregates all problems found in a bundle.
type ValidationError struct {
	Problems []Problem
}

func (e *ValidationError) Error() string {
	if len(e.Problems) == 1 {
		return fmt.Sprintf("bundle validation failed: %s", e.Problems[0])
	}
	return fmt.Sprintf("bundle validation failed with %d problems (first: %s)",
		len(e.Problems), e.Problems[0])
}
