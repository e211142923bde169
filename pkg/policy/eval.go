package policy

import (
	"fmt"
	"regexp"
	"strings"
)

// ResolvePath resolves a dotted field path against a context object.
// Missing intermediate keys resolve to nil; any comparison against nil
// (except is_null / is_not_null) fails the leaf.
func ResolvePath(ctx map[string]any, path string) any {
	var current any = ctx
	for _, part := range strings.Split(path, ".") {
		node, ok := current.(map[string]any)
		if !ok {
			return nil
		}
		current, ok = node[part]
		if !ok {
			return nil
		}
	}
	return current
}

// Evaluate runs a condition tree against a context object.
func Evaluate(cond *Condition, ctx map[string]any) bool {
	if cond == nil {
		return true
	}
	if comb := cond.Combinator; comb != nil {
		switch comb.Kind {
		case CombAll:
			for _, child := range comb.Children {
				if !Evaluate(child, ctx) {
					return false
				}
			}
			return true
		case CombAny:
			for _, child := range comb.Children {
				if Evaluate(child, ctx) {
					return true
				}
			}
			return false
		case CombNone:
			for _, child := range comb.Children {
				if Evaluate(child, ctx) {
					return false
				}
			}
			return true
		case CombNot:
			return len(comb.Children) == 1 && !Evaluate(comb.Children[0], ctx)
		}
		return false
	}
	if cond.Leaf != nil {
		return evaluateLeaf(cond.Leaf, ctx)
	}
	return false
}

func evaluateLeaf(leaf *Leaf, ctx map[string]any) bool {
	fieldVal := ResolvePath(ctx, leaf.Field)

	switch leaf.Operator {
	case OpIsNull:
		return fieldVal == nil
	case OpIsNotNull:
		return fieldVal != nil
	}
	if fieldVal == nil {
		return false
	}

	switch leaf.Operator {
	case OpEquals:
		return valuesEqual(fieldVal, leaf.Value, leaf.CaseSensitive)
	case OpNotEquals:
		return !valuesEqual(fieldVal, leaf.Value, leaf.CaseSensitive)
	case OpGreaterThan, OpGreaterOrEqual, OpLessThan, OpLessOrEqual:
		return compareNumbers(leaf.Operator, fieldVal, leaf.Value)
	case OpContains:
		return containsValue(fieldVal, leaf.Value, leaf.CaseSensitive)
	case OpNotContains:
		return !containsValue(fieldVal, leaf.Value, leaf.CaseSensitive)
	case OpStartsWith:
		s, pre, ok := stringPair(fieldVal, leaf.Value, leaf.CaseSensitive)
		return ok && strings.HasPrefix(s, pre)
	case OpEndsWith:
		s, suf, ok := stringPair(fieldVal, leaf.Value, leaf.CaseSensitive)
		return ok && strings.HasSuffix(s, suf)
	case OpIn:
		return inList(fieldVal, leaf.Value, leaf.CaseSensitive)
	case OpNotIn:
		return !inList(fieldVal, leaf.Value, leaf.CaseSensitive)
	case OpBetween:
		bounds, ok := leaf.Value.([]any)
		if !ok || len(bounds) != 2 {
			return false
		}
		return compareNumbers(OpGreaterOrEqual, fieldVal, bounds[0]) &&
			compareNumbers(OpLessOrEqual, fieldVal, bounds[1])
	case OpRegex:
		pattern, ok := leaf.Value.(string)
		if !ok {
			return false
		}
		s, ok := fieldVal.(string)
		if !ok {
			return false
		}
		if !leaf.CaseSensitive {
			pattern = "(?i)" + pattern
		}
		re, err := regexp.Compile(pattern)
		if err != nil {
			return false
		}
		return re.MatchString(s)
	}
	return false
}

func valuesEqual(a, b any, caseSensitive bool) bool {
	if as, ok := a.(string); ok {
		bs, ok := b.(string)
		if !ok {
			return false
		}
		if caseSensitive {
			return as == bs
		}
		return strings.EqualFold(as, bs)
	}
	if af, ok := toFloat(a); ok {
		bf, ok := toFloat(b)
		return ok && af == bf
	}
	if ab, ok := a.(bool); ok {
		bb, ok := b.(bool)
		return ok && ab == bb
	}
	return fmt.Sprintf("%v", a) == fmt.Sprintf("%v", b)
}

func compareNumbers(op Operator, a, b any) bool {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if !aok || !bok {
		return false
	}
	switch op {
	case OpGreaterThan:
		return af > bf
	case OpGreaterOrEqual:
		return af >= bf
	case OpLessThan:
		return af < bf
	case OpLessOrEqual:
		return af <= bf
	}
	return false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// containsValue handles both string containment and list membership,
// depending on the shape of the field value.
func containsValue(fieldVal, needle any, caseSensitive bool) bool {
	switch v := fieldVal.(type) {
	case string:
		s, sub, ok := stringPair(v, needle, caseSensitive)
		return ok && strings.Contains(s, sub)
	case []any:
		for _, item := range v {
			if valuesEqual(item, needle, caseSensitive) {
				return true
			}
		}
	}
	return false
}

func inList(fieldVal, listVal any, caseSensitive bool) bool {
	list, ok := listVal.([]any)
	if !ok {
		return false
	}
	for _, item := range list {
		if valuesEqual(fieldVal, item, caseSensitive) {
			return true
		}
	}
	return false
}

func stringPair(a, b any, caseSensitive bool) (string, string, bool) {
	as, aok := a.(string)
	bs, bok := b.(string)
	if !aok || !bok {
		return "", "", false
	}
	if !caseSensitive {
		return strings.ToLower(as), strings.ToLower(bs), true
	}
	return as, bs, true
}

// Truthy implements the REQUIRE_FIELD check: nil, false, zero, empty
// string and empty collection are falsy.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case []any:
		return len(t) > 0
	case map[string]any:
		return len(t) > 0
	}
	if f, ok := toFloat(v); ok {
		return f != 0
	}
	return true
}

// keyPlaceholder matches {dotted.path} segments in LIMIT_OCCURRENCE
// key templates.
var keyPlaceholder = regexp.MustCompile(`\{([a-zA-Z0-9_.]+)\}`)

// ExpandKey substitutes {field} placeholders in a counter key template
// with values resolved from the slot context.
func ExpandKey(template string, ctx map[string]any) string {
	return keyPlaceholder.ReplaceAllStringFunc(template, func(match string) string {
		path := match[1 : len(match)-1]
		val := ResolvePath(ctx, path)
		if val == nil {
			return "unknown"
		}
		return fmt.Sprintf("%v", val)
	})
}
