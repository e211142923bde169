package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mixedBundleJSON() string {
	return `{
		"schema_version": "1",
		"bundle_id": "bundle-mixed",
		"clinic_id": "clinic-1",
		"rules": [
			{"rule_id": "warn-late", "precedence": 40,
			 "conditions": {"field": "slot.hour", "operator": "greater_or_equal", "value": 18},
			 "effect": {"type": "WARN", "message": "evening slot"}},
			{"rule_id": "deny-minors", "precedence": 10,
			 "conditions": {"field": "patient.age", "operator": "less_than", "value": 18},
			 "effect": {"type": "DENY"}},
			{"rule_id": "boost-morning", "precedence": 30,
			 "conditions": {"field": "slot.hour", "operator": "less_than", "value": 12},
			 "effect": {"type": "ADJUST_SCORE", "delta": 5}},
			{"rule_id": "limit-implants", "precedence": 20,
			 "conditions": {"field": "service.category", "operator": "equals", "value": "implant"},
			 "effect": {"type": "LIMIT_OCCURRENCE", "key": "implants:{slot.doctor_id}", "window_seconds": 86400, "max_n": 2}}
		]
	}`
}

func TestCompile_PartitionsAndOrders(t *testing.T) {
	compiled, err := Compile([]byte(mixedBundleJSON()))
	require.NoError(t, err)

	// Hard and soft partitions together cover every rule exactly once.
	assert.Len(t, compiled.Hard, 2)
	assert.Len(t, compiled.Soft, 2)

	hardIDs := []string{compiled.Hard[0].RuleID, compiled.Hard[1].RuleID}
	assert.Equal(t, []string{"deny-minors", "limit-implants"}, hardIDs)

	softIDs := []string{compiled.Soft[0].RuleID, compiled.Soft[1].RuleID}
	assert.Equal(t, []string{"boost-morning", "warn-late"}, softIDs)
}

func TestCompile_Deterministic(t *testing.T) {
	a, err := Compile([]byte(mixedBundleJSON()))
	require.NoError(t, err)
	b, err := Compile([]byte(mixedBundleJSON()))
	require.NoError(t, err)

	assert.Equal(t, a.Digest, b.Digest)
	assert.Equal(t, a.Hard, b.Hard)
	assert.Equal(t, a.Soft, b.Soft)
}

func TestCompile_RejectsInvalidBundle(t *testing.T) {
	raw := `{"schema_version": "1", "bundle_id": "b", "clinic_id": "c", "rules": [
		{"rule_id": "r1", "precedence": 1, "conditions": {"field": "x", "operator": "is_null"}, "effect": {"type": "DENY"}},
		{"rule_id": "r1", "precedence": 2, "conditions": {"field": "x", "operator": "is_null"}, "effect": {"type": "DENY"}}
	]}`

	compiled, err := Compile([]byte(raw))
	assert.Nil(t, compiled)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Problems, 1)
	assert.Equal(t, "/rules/1/rule_id", ve.Problems[0].Path)
}

func TestSortRules_SalienceAndIDTieBreaks(t *testing.T) {
	rules := []Rule{
		{RuleID: "b", Precedence: 1, Salience: 0},
		{RuleID: "a", Precedence: 1, Salience: 0},
		{RuleID: "c", Precedence: 1, Salience: 9},
	}
	sortRules(rules)

	got := []string{rules[0].RuleID, rules[1].RuleID, rules[2].RuleID}
	assert.Equal(t, []string{"c", "a", "b"}, got)
}

func TestCanonicalJSON_IgnoresEncodingDifferences(t *testing.T) {
	compact := `{"b":1,"a":{"y":2,"x":3}}`
	spaced := "{\n  \"a\": {\"x\": 3, \"y\": 2},\n  \"b\": 1\n}"

	c1, err := CanonicalJSON([]byte(compact))
	require.NoError(t, err)
	c2, err := CanonicalJSON([]byte(spaced))
	require.NoError(t, err)
	assert.Equal(t, c1, c2)

	d1, err := Digest([]byte(compact))
	require.NoError(t, err)
	d2, err := Digest([]byte(spaced))
	require.NoError(t, err)
	assert.Equal(t, d1, d2)
	assert.Len(t, d1, 64)
}

func TestDigest_ChangesWithContent(t *testing.T) {
	d1, err := Digest([]byte(`{"a":1}`))
	require.NoError(t, err)
	d2, err := Digest([]byte(`{"a":2}`))
	require.NoError(t, err)
	assert.NotEqual(t, d1, d2)
}

func TestCache_SharesEntryAcrossEncodings(t *testing.T) {
	cache := NewCache()

	compact, err := CanonicalJSON([]byte(mixedBundleJSON()))
	require.NoError(t, err)

	first, err := cache.Compile([]byte(mixedBundleJSON()))
	require.NoError(t, err)
	second, err := cache.Compile(compact)
	require.NoError(t, err)

	// Same canonical digest means the same cached instance.
	assert.Same(t, first, second)

	cache.Flush()
	third, err := cache.Compile(compact)
	require.NoError(t, err)
	assert.NotSame(t, first, third)
	assert.Equal(t, first.Digest, third.Digest)
}
