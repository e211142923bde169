package policy

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:embed schema.json
var bundleSchemaJSON []byte

// bundleSchema is compiled once at startup. The schema is embedded in
// the binary, so a failure here is a build defect — fatal config.
var bundleSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(bundleSchemaJSON))
	if err != nil {
		panic(fmt.Sprintf("policy: embedded schema is not valid JSON: %v", err))
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("rule-bundle.json", doc); err != nil {
		panic(fmt.Sprintf("policy: failed to add schema resource: %v", err))
	}
	schema, err := c.Compile("rule-bundle.json")
	if err != nil {
		panic(fmt.Sprintf("policy: failed to compile schema: %v", err))
	}
	return schema
}

// ValidateBundle checks a raw bundle document. Structural (JSON
// Schema) validation runs first; when it passes, semantic checks run
// on the decoded bundle. All problems are accumulated — callers get
// the full list, not the first failure.
func ValidateBundle(raw []byte) (*Bundle, []Problem) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, []Problem{{Path: "/", Message: fmt.Sprintf("invalid JSON: %v", err)}}
	}

	if err := bundleSchema.Validate(doc); err != nil {
		return nil, schemaProblems(err)
	}

	var bundle Bundle
	if err := json.Unmarshal(raw, &bundle); err != nil {
		// Schema passed but our decoder rejected the document; report
		// at the root rather than guessing a location.
		return nil, []Problem{{Path: "/", Message: fmt.Sprintf("decode: %v", err)}}
	}

	if problems := semanticProblems(&bundle); len(problems) > 0 {
		return nil, problems
	}
	return &bundle, nil
}

// schemaProblems flattens a jsonschema validation error tree into
// located problems, leaf causes only.
func schemaProblems(err error) []Problem {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []Problem{{Path: "/", Message: err.Error()}}
	}
	var problems []Problem
	printer := message.NewPrinter(language.English)
	var walk func(e *jsonschema.ValidationError)
	walk = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			path := "/" + strings.Join(e.InstanceLocation, "/")
			problems = append(problems, Problem{Path: path, Message: e.ErrorKind.LocalizedString(printer)})
			return
		}
		for _, cause := range e.Causes {
			walk(cause)
		}
	}
	walk(ve)
	sort.Slice(problems, func(i, j int) bool {
		if problems[i].Path != problems[j].Path {
			return problems[i].Path < problems[j].Path
		}
		return problems[i].Message < problems[j].Message
	})
	return problems
}

// semanticProblems enforces the bundle invariants that the schema
// cannot express: unique rule ids, unique precedences, and resolvable
// dependencies.
func semanticProblems(bundle *Bundle) []Problem {
	var problems []Problem

	ids := map[string]int{}
	precedences := map[int]int{}
	for i, rule := range bundle.Rules {
		if prev, ok := ids[rule.RuleID]; ok {
			problems = append(problems, Problem{
				Path:    fmt.Sprintf("/rules/%d/rule_id", i),
				Message: fmt.Sprintf("duplicate rule_id %q (first declared at /rules/%d)", rule.RuleID, prev),
			})
		} else {
			ids[rule.RuleID] = i
		}
		if prev, ok := precedences[rule.Precedence]; ok {
			problems = append(problems, Problem{
				Path:    fmt.Sprintf("/rules/%d/precedence", i),
				Message: fmt.Sprintf("duplicate precedence %d (first declared at /rules/%d)", rule.Precedence, prev),
			})
		} else {
			precedences[rule.Precedence] = i
		}
	}

	for i, rule := range bundle.Rules {
		for j, dep := range rule.Dependencies {
			if _, ok := ids[dep]; !ok {
				problems = append(problems, Problem{
					Path:    fmt.Sprintf("/rules/%d/dependencies/%d", i, j),
					Message: fmt.Sprintf("unresolved dependency %q", dep),
				})
			}
		}
	}

	return problems
}
