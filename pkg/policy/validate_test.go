package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBundleJSON() string {
	return `{
		"schema_version": "1",
		"bundle_id": "bundle-1",
		"clinic_id": "clinic-1",
		"rules": [
			{
				"rule_id": "no-minors-surgery",
				"precedence": 10,
				"conditions": {"all": [
					{"field": "patient.age", "operator": "less_than", "value": 18},
					{"field": "service.category", "operator": "equals", "value": "surgery"}
				]},
				"effect": {"type": "DENY"},
				"explain_template": "surgery requires an adult patient"
			},
			{
				"rule_id": "prefer-morning",
				"precedence": 20,
				"conditions": {"field": "slot.hour", "operator": "less_than", "value": 12},
				"effect": {"type": "ADJUST_SCORE", "delta": 5},
				"dependencies": ["no-minors-surgery"]
			}
		]
	}`
}

func TestValidateBundle_OK(t *testing.T) {
	bundle, problems := ValidateBundle([]byte(validBundleJSON()))
	require.Empty(t, problems)
	require.NotNil(t, bundle)
	assert.Equal(t, "bundle-1", bundle.BundleID)
	assert.Equal(t, "clinic-1", bundle.ClinicID)
	assert.Len(t, bundle.Rules, 2)
}

func TestValidateBundle_InvalidJSON(t *testing.T) {
	bundle, problems := ValidateBundle([]byte("{not json"))
	assert.Nil(t, bundle)
	require.Len(t, problems, 1)
	assert.Equal(t, "/", problems[0].Path)
}

func TestValidateBundle_SchemaFailures(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantPath string
	}{
		{
			name:     "missing bundle_id",
			raw:      `{"schema_version": "1", "clinic_id": "c", "rules": []}`,
			wantPath: "/",
		},
		{
			name: "unknown operator",
			raw: `{"schema_version": "1", "bundle_id": "b", "clinic_id": "c", "rules": [
				{"rule_id": "r1", "precedence": 1,
				 "conditions": {"field": "x", "operator": "approximately", "value": 1},
				 "effect": {"type": "DENY"}}
			]}`,
			wantPath: "/rules/0/conditions",
		},
		{
			name: "limit effect missing window",
			raw: `{"schema_version": "1", "bundle_id": "b", "clinic_id": "c", "rules": [
				{"rule_id": "r1", "precedence": 1,
				 "conditions": {"field": "x", "operator": "is_null"},
				 "effect": {"type": "LIMIT_OCCURRENCE", "key": "k", "max_n": 2}}
			]}`,
			wantPath: "/rules/0/effect",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bundle, problems := ValidateBundle([]byte(tt.raw))
			assert.Nil(t, bundle)
			require.NotEmpty(t, problems)

			found := false
			for _, p := range problems {
				if len(p.Path) >= len(tt.wantPath) && p.Path[:len(tt.wantPath)] == tt.wantPath {
					found = true
				}
			}
			assert.True(t, found, "expected a problem under %s, got %v", tt.wantPath, problems)
		})
	}
}

func TestValidateBundle_DuplicateRuleID(t *testing.T) {
	raw := `{"schema_version": "1", "bundle_id": "b", "clinic_id": "c", "rules": [
		{"rule_id": "r1", "precedence": 1, "conditions": {"field": "x", "operator": "is_null"}, "effect": {"type": "DENY"}},
		{"rule_id": "r1", "precedence": 2, "conditions": {"field": "x", "operator": "is_null"}, "effect": {"type": "WARN", "message": "m"}}
	]}`

	bundle, problems := ValidateBundle([]byte(raw))
	assert.Nil(t, bundle)
	require.Len(t, problems, 1)
	assert.Equal(t, "/rules/1/rule_id", problems[0].Path)
	assert.Contains(t, problems[0].Message, `duplicate rule_id "r1"`)
}

func TestValidateBundle_DuplicatePrecedence(t *testing.T) {
	raw := `{"schema_version": "1", "bundle_id": "b", "clinic_id": "c", "rules": [
		{"rule_id": "r1", "precedence": 5, "conditions": {"field": "x", "operator": "is_null"}, "effect": {"type": "DENY"}},
		{"rule_id": "r2", "precedence": 5, "conditions": {"field": "x", "operator": "is_null"}, "effect": {"type": "DENY"}}
	]}`

	bundle, problems := ValidateBundle([]byte(raw))
	assert.Nil(t, bundle)
	require.Len(t, problems, 1)
	assert.Equal(t, "/rules/1/precedence", problems[0].Path)
	assert.Contains(t, problems[0].Message, "duplicate precedence 5")
}

func TestValidateBundle_UnresolvedDependency(t *testing.T) {
	raw := `{"schema_version": "1", "bundle_id": "b", "clinic_id": "c", "rules": [
		{"rule_id": "r1", "precedence": 1,
		 "conditions": {"field": "x", "operator": "is_null"},
		 "effect": {"type": "DENY"},
		 "dependencies": ["r1", "ghost"]}
	]}`

	bundle, problems := ValidateBundle([]byte(raw))
	assert.Nil(t, bundle)
	require.Len(t, problems, 1)
	assert.Equal(t, "/rules/0/dependencies/1", problems[0].Path)
	assert.Contains(t, problems[0].Message, `unresolved dependency "ghost"`)
}

func TestValidateBundle_AccumulatesProblems(t *testing.T) {
	raw := `{"schema_version": "1", "bundle_id": "b", "clinic_id": "c", "rules": [
		{"rule_id": "r1", "precedence": 1, "conditions": {"field": "x", "operator": "is_null"}, "effect": {"type": "DENY"}},
		{"rule_id": "r1", "precedence": 1, "conditions": {"field": "x", "operator": "is_null"}, "effect": {"type": "DENY"}, "dependencies": ["nope"]}
	]}`

	bundle, problems := ValidateBundle([]byte(raw))
	assert.Nil(t, bundle)
	assert.Len(t, problems, 3)
}

func TestValidationError_Message(t *testing.T) {
	one := &ValidationError{Problems: []Problem{{Path: "/rules/0", Message: "bad"}}}
	assert.Equal(t, "bundle validation failed: /rules/0: bad", one.Error())

	many := &ValidationError{Problems: []Problem{
		{Path: "/a", Message: "x"},
		{Path: "/b", Message: "y"},
	}}
	assert.Equal(t, "bundle validation failed with 2 problems (first: /a: x)", many.Error())
}
