// Package tiers maps semantic model tiers to concrete model names.
// Resolution precedence: experiment assignment, env override, clinic
// mapping, global mapping, compiled default. Results are memoized for
// a short TTL so a turn's repeated lookups are stable and cheap.
package tiers

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"
)

// Tier is a semantic model category.
type Tier string

const (
	TierRouting       Tier = "routing"
	TierToolCalling   Tier = "tool_calling"
	TierReasoning     Tier = "reasoning"
	TierSummarization Tier = "summarization"
	TierMultimodal    Tier = "multimodal"
	TierVoice         Tier = "voice"
)

// AllTiers lists every tier, for startup validation.
var AllTiers = []Tier{TierRouting, TierToolCalling, TierReasoning, TierSummarization, TierMultimodal, TierVoice}

// Capability names what a model can do; a model may serve a tier only
// when its capability set covers it.
type Capability string

const (
	CapText       Capability = "text"
	CapTools      Capability = "tools"
	CapVision     Capability = "vision"
	CapAudio      Capability = "audio"
	CapLongOutput Capability = "long_output"
)

// tierNeeds is the capability each tier requires.
var tierNeeds = map[Tier][]Capability{
	TierRouting:       {CapText},
	TierToolCalling:   {CapText, CapTools},
	TierReasoning:     {CapText},
	TierSummarization: {CapText, CapLongOutput},
	TierMultimodal:    {CapText, CapVision},
	TierVoice:         {CapAudio},
}

// compiledDefaults are the models used when nothing else is mapped.
var compiledDefaults = map[Tier]string{
	TierRouting:       "claude-3-5-haiku-latest",
	TierToolCalling:   "claude-sonnet-4-5",
	TierReasoning:     "claude-sonnet-4-5",
	TierSummarization: "gpt-4o-mini",
	TierMultimodal:    "gpt-4o",
	TierVoice:         "gpt-4o-audio-preview",
}

// defaultCapabilities covers the models the defaults and common
// mappings name. A mapping to a model outside the matrix never wins:
// extend the matrix (Config.Capabilities) when adopting a new model.
var defaultCapabilities = map[string][]Capability{
	"claude-3-5-haiku-latest": {CapText, CapTools},
	"claude-sonnet-4-5":       {CapText, CapTools, CapVision, CapLongOutput},
	"claude-opus-4-1":         {CapText, CapTools, CapVision, CapLongOutput},
	"gpt-4o":                  {CapText, CapTools, CapVision, CapLongOutput},
	"gpt-4o-mini":             {CapText, CapTools, CapLongOutput},
	"gpt-4o-audio-preview":    {CapText, CapAudio},
}

// Variant is one experiment arm.
type Variant struct {
	Model  string
	Weight int // percentage points of the 0-99 bucket space
}

// Experiment routes a share of sticky ids to alternate models for a
// tier. Weights need not cover 100; unassigned buckets fall through
// to the normal chain.
type Experiment struct {
	ID       string
	Tier     Tier
	Variants []Variant
}

// Config seeds a registry.
type Config struct {
	Experiments    []Experiment
	ClinicMappings map[string]map[Tier]string
	GlobalMappings map[Tier]string
	// Capabilities overrides/extends the built-in matrix.
	Capabilities map[string][]Capability
	// Getenv defaults to os.Getenv; injectable for tests.
	Getenv func(string) string
	// MemoTTL defaults to 60s.
	MemoTTL time.Duration
}

// Registry resolves tiers to models.
type Registry struct {
	cfg          Config
	capabilities map[string]map[Capability]bool

	mu   sync.Mutex
	memo map[string]memoEntry
}

type memoEntry struct {
	model    string
	cachedAt time.Time
}

// NewRegistry builds a registry. Fails when a compiled default cannot
// serve its own tier; that is a build defect, surfaced at startup.
func NewRegistry(cfg Config) (*Registry, error) {
	if cfg.Getenv == nil {
		cfg.Getenv = os.Getenv
	}
	if cfg.MemoTTL == 0 {
		cfg.MemoTTL = 60 * time.Second
	}

	caps := map[string]map[Capability]bool{}
	for model, list := range defaultCapabilities {
		caps[model] = capSet(list)
	}
	for model, list := range cfg.Capabilities {
		caps[model] = capSet(list)
	}

	r := &Registry{cfg: cfg, capabilities: caps, memo: map[string]memoEntry{}}
	for _, tier := range AllTiers {
		if !r.supports(compiledDefaults[tier], tier) {
			return nil, fmt.Errorf("tiers: default model %q cannot serve tier %s", compiledDefaults[tier], tier)
		}
	}
	return r, nil
}

func capSet(list []Capability) map[Capability]bool {
	set := map[Capability]bool{}
	for _, c := range list {
		set[c] = true
	}
	return set
}

// supports reports whether a model can serve a tier. Models absent
// from the matrix serve nothing, so a typo'd mapping falls through to
// the compiled default instead of reaching the provider.
func (r *Registry) supports(model string, tier Tier) bool {
	set, known := r.capabilities[model]
	if !known {
		return false
	}
	for _, need := range tierNeeds[tier] {
		if !set[need] {
			return false
		}
	}
	return true
}

// Resolve returns the model for a tier. stickyID keeps experiment
// assignment stable per patient; clinicID selects clinic mappings.
// Deterministic: same inputs, same answer, for at least the memo TTL.
func (r *Registry) Resolve(clinicID, stickyID string, tier Tier) string {
	key := clinicID + "|" + stickyID + "|" + string(tier)

	r.mu.Lock()
	if entry, ok := r.memo[key]; ok && time.Since(entry.cachedAt) < r.cfg.MemoTTL {
		r.mu.Unlock()
		return entry.model
	}
	r.mu.Unlock()

	model := r.resolve(clinicID, stickyID, tier)

	r.mu.Lock()
	r.memo[key] = memoEntry{model: model, cachedAt: time.Now()}
	r.mu.Unlock()
	return model
}

func (r *Registry) resolve(clinicID, stickyID string, tier Tier) string {
	for _, candidate := range r.candidates(clinicID, stickyID, tier) {
		if candidate != "" && r.supports(candidate, tier) {
			return candidate
		}
	}
	return compiledDefaults[tier]
}

// candidates yields the resolution chain in precedence order.
func (r *Registry) candidates(clinicID, stickyID string, tier Tier) []string {
	var out []string

	for _, exp := range r.cfg.Experiments {
		if exp.Tier != tier {
			continue
		}
		if model, ok := assignBucket(exp, stickyID); ok {
			out = append(out, model)
		}
	}

	out = append(out, r.cfg.Getenv(envVar(tier)))

	if byTier, ok := r.cfg.ClinicMappings[clinicID]; ok {
		out = append(out, byTier[tier])
	}
	out = append(out, r.cfg.GlobalMappings[tier])
	return out
}

func envVar(tier Tier) string {
	return "TIER_" + strings.ToUpper(string(tier)) + "_MODEL"
}

// assignBucket hashes (experiment|sticky) into a 0-99 bucket and walks
// the cumulative variant weights.
func assignBucket(exp Experiment, stickyID string) (string, bool) {
	sum := sha256.Sum256([]byte(exp.ID + "|" + stickyID))
	bucket := int(binary.BigEndian.Uint64(sum[:8]) % 100)

	cumulative := 0
	for _, v := range exp.Variants {
		cumulative += v.Weight
		if bucket < cumulative {
			return v.Model, true
		}
	}
	return "", false
}

// Flush empties the memo. Test hook.
func (r *Registry) Flush() {
	r.mu.Lock()
	r.memo = map[string]memoEntry{}
	r.mu.Unlock()
}
