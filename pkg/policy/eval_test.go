package policy

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leafCond(field string, op Operator, value any) *Condition {
	return &Condition{Leaf: &Leaf{Field: field, Operator: op, Value: value}}
}

func TestResolvePath(t *testing.T) {
	ctx := map[string]any{
		"slot": map[string]any{
			"doctor_id": "doc-1",
			"score":     42.0,
		},
	}

	assert.Equal(t, "doc-1", ResolvePath(ctx, "slot.doctor_id"))
	assert.Equal(t, 42.0, ResolvePath(ctx, "slot.score"))
	assert.Nil(t, ResolvePath(ctx, "slot.missing"))
	assert.Nil(t, ResolvePath(ctx, "missing.deeper.path"))
}

func TestEvaluate_Operators(t *testing.T) {
	ctx := map[string]any{
		"patient": map[string]any{
			"age":  17.0,
			"name": "Maria Lopez",
			"tags": []any{"vip", "recall"},
		},
		"slot": map[string]any{
			"hour":       14.0,
			"doctor_id":  "doc-shtern",
			"service_id": "svc-cleaning",
		},
	}

	tests := []struct {
		name string
		cond *Condition
		want bool
	}{
		{"equals number", leafCond("patient.age", OpEquals, 17.0), true},
		{"equals string case-insensitive", leafCond("slot.doctor_id", OpEquals, "DOC-Shtern"), true},
		{"not_equals", leafCond("slot.service_id", OpNotEquals, "svc-implant"), true},
		{"greater_than", leafCond("patient.age", OpGreaterThan, 16), true},
		{"greater_or_equal boundary", leafCond("patient.age", OpGreaterOrEqual, 17), true},
		{"less_than false", leafCond("patient.age", OpLessThan, 17), false},
		{"less_or_equal", leafCond("slot.hour", OpLessOrEqual, 14), true},
		{"contains substring", leafCond("patient.name", OpContains, "lopez"), true},
		{"contains list member", leafCond("patient.tags", OpContains, "vip"), true},
		{"not_contains", leafCond("patient.name", OpNotContains, "garcia"), true},
		{"starts_with", leafCond("slot.doctor_id", OpStartsWith, "doc-"), true},
		{"ends_with", leafCond("slot.service_id", OpEndsWith, "cleaning"), true},
		{"in", leafCond("slot.doctor_id", OpIn, []any{"doc-shtern", "doc-dan"}), true},
		{"not_in", leafCond("slot.doctor_id", OpNotIn, []any{"doc-dan"}), true},
		{"between inclusive", leafCond("slot.hour", OpBetween, []any{9.0, 14.0}), true},
		{"between outside", leafCond("slot.hour", OpBetween, []any{15.0, 18.0}), false},
		{"is_null on missing", leafCond("slot.room_id", OpIsNull, nil), true},
		{"is_not_null", leafCond("slot.doctor_id", OpIsNotNull, nil), true},
		{"regex case-insensitive", leafCond("patient.name", OpRegex, "^maria"), true},
		{"null comparison fails leaf", leafCond("slot.room_id", OpEquals, "r1"), false},
		{"null greater_than fails leaf", leafCond("slot.room_id", OpGreaterThan, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.cond, ctx))
		})
	}
}

func TestEvaluate_CaseSensitive(t *testing.T) {
	ctx := map[string]any{"name": "Maria"}

	sensitive := &Condition{Leaf: &Leaf{
		Field: "name", Operator: OpEquals, Value: "maria", CaseSensitive: true,
	}}
	assert.False(t, Evaluate(sensitive, ctx))

	regex := &Condition{Leaf: &Leaf{
		Field: "name", Operator: OpRegex, Value: "^maria$", CaseSensitive: true,
	}}
	assert.False(t, Evaluate(regex, ctx))
}

func TestEvaluate_Combinators(t *testing.T) {
	ctx := map[string]any{"a": 1.0, "b": 2.0}
	isOne := leafCond("a", OpEquals, 1.0)
	isTwo := leafCond("a", OpEquals, 2.0)

	all := &Condition{Combinator: &Combinator{Kind: CombAll, Children: []*Condition{isOne, leafCond("b", OpEquals, 2.0)}}}
	assert.True(t, Evaluate(all, ctx))

	anyCond := &Condition{Combinator: &Combinator{Kind: CombAny, Children: []*Condition{isTwo, isOne}}}
	assert.True(t, Evaluate(anyCond, ctx))

	none := &Condition{Combinator: &Combinator{Kind: CombNone, Children: []*Condition{isTwo}}}
	assert.True(t, Evaluate(none, ctx))

	not := &Condition{Combinator: &Combinator{Kind: CombNot, Children: []*Condition{isTwo}}}
	assert.True(t, Evaluate(not, ctx))
}

func TestCondition_JSONRoundTrip(t *testing.T) {
	raw := `{
		"any": [
			{"field": "slot.hour", "operator": "between", "value": [9, 12]},
			{"not": {"field": "patient.vip", "operator": "equals", "value": true}}
		]
	}`

	var cond Condition
	require.NoError(t, json.Unmarshal([]byte(raw), &cond))
	require.NotNil(t, cond.Combinator)
	assert.Equal(t, CombAny, cond.Combinator.Kind)
	require.Len(t, cond.Combinator.Children, 2)
	assert.NotNil(t, cond.Combinator.Children[0].Leaf)
	assert.Equal(t, CombNot, cond.Combinator.Children[1].Combinator.Kind)

	out, err := json.Marshal(&cond)
	require.NoError(t, err)

	var again Condition
	require.NoError(t, json.Unmarshal(out, &again))
	assert.Equal(t, CombAny, again.Combinator.Kind)
}

func TestTruthy(t *testing.T) {
	assert.False(t, Truthy(nil))
	assert.False(t, Truthy(false))
	assert.False(t, Truthy(""))
	assert.False(t, Truthy(0.0))
	assert.False(t, Truthy([]any{}))
	assert.True(t, Truthy("yes"))
	assert.True(t, Truthy(1.0))
	assert.True(t, Truthy([]any{"x"}))
}

func TestExpandKey(t *testing.T) {
	ctx := map[string]any{
		"clinic_id": "c1",
		"slot":      map[string]any{"doctor_id": "doc-1"},
	}
	assert.Equal(t, "tenant:c1:doc-1", ExpandKey("tenant:{clinic_id}:{slot.doctor_id}", ctx))
	assert.Equal(t, "tenant:unknown", ExpandKey("tenant:{nope}", ctx))
}
