package policy

import (
	"encoding/json"
	"sort"
	"sync"
)

// CompiledPolicy is the runtime evaluator derived from a bundle.
// Hard rules are delivered in (precedence asc, salience desc, rule_id
// asc) order; the same canonical bundle always compiles to the same
// ordering.
type CompiledPolicy struct {
	BundleID string
	ClinicID string
	Hard     []Rule
	Soft     []Rule
	Digest   string
	Metadata map[string]any

	// Source is the canonical JSON the digest was computed over.
	Source []byte
}

// Compile validates raw bundle JSON and produces a compiled policy.
// Returns a *ValidationError carrying every problem when the bundle is
// rejected; never returns a partial compilation.
func Compile(raw []byte) (*CompiledPolicy, error) {
	bundle, problems := ValidateBundle(raw)
	if len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}
	return compileValidated(bundle, raw)
}

// CompileBundle compiles an already-decoded bundle, re-validating it
// first. Used by the rule store, which persists decoded bundles.
func CompileBundle(bundle *Bundle) (*CompiledPolicy, error) {
	raw, err := json.Marshal(bundle)
	if err != nil {
		return nil, err
	}
	return Compile(raw)
}

func compileValidated(bundle *Bundle, raw []byte) (*CompiledPolicy, error) {
	canonical, err := CanonicalJSON(raw)
	if err != nil {
		return nil, err
	}
	digest, err := Digest(raw)
	if err != nil {
		return nil, err
	}

	compiled := &CompiledPolicy{
		BundleID: bundle.BundleID,
		ClinicID: bundle.ClinicID,
		Digest:   digest,
		Metadata: bundle.Metadata,
		Source:   canonical,
	}
	for _, rule := range bundle.Rules {
		if rule.Effect.Type.IsHard() {
			compiled.Hard = append(compiled.Hard, rule)
		} else {
			compiled.Soft = append(compiled.Soft, rule)
		}
	}
	sortRules(compiled.Hard)
	sortRules(compiled.Soft)
	return compiled, nil
}

// sortRules orders by (precedence asc, salience desc, rule_id asc).
// The validator rejects duplicate precedence, so salience and id only
// matter as a deterministic safety net.
func sortRules(rules []Rule) {
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].Precedence != rules[j].Precedence {
			return rules[i].Precedence < rules[j].Precedence
		}
		if rules[i].Salience != rules[j].Salience {
			return rules[i].Salience > rules[j].Salience
		}
		return rules[i].RuleID < rules[j].RuleID
	})
}

// Cache memoizes compiled policies by canonical digest.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]*CompiledPolicy
}

// NewCache creates an empty compile cache.
func NewCache() *Cache {
	return &Cache{entries: map[string]*CompiledPolicy{}}
}

// Compile returns the cached policy for raw's digest, compiling on
// miss. Distinct encodings of the same canonical bundle share one
// entry.
func (c *Cache) Compile(raw []byte) (*CompiledPolicy, error) {
	digest, err := Digest(raw)
	if err != nil {
		return nil, err
	}

	c.mu.RLock()
	cached, ok := c.entries[digest]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	compiled, err := Compile(raw)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[digest] = compiled
	c.mu.Unlock()
	return compiled, nil
}

// Flush empties the cache. Test hook.
func (c *Cache) Flush() {
	c.mu.Lock()
	c.entries = map[string]*CompiledPolicy{}
	c.mu.Unlock()
}
