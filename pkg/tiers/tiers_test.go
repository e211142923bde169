package tiers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func noEnv(string) string { return "" }

func newRegistry(t *testing.T, cfg Config) *Registry {
	t.Helper()
	if cfg.Getenv == nil {
		cfg.Getenv = noEnv
	}
	r, err := NewRegistry(cfg)
	require.NoError(t, err)
	return r
}

func TestResolve_CompiledDefault(t *testing.T) {
	r := newRegistry(t, Config{})
	assert.Equal(t, "claude-sonnet-4-5", r.Resolve("c1", "p1", TierToolCalling))
	assert.Equal(t, "gpt-4o-mini", r.Resolve("c1", "p1", TierSummarization))
}

func TestResolve_PrecedenceChain(t *testing.T) {
	cfg := Config{
		ClinicMappings: map[string]map[Tier]string{
			"c1": {TierReasoning: "gpt-4o"},
		},
		GlobalMappings: map[Tier]string{TierReasoning: "gpt-4o-mini"},
		Getenv:         noEnv,
	}
	r := newRegistry(t, cfg)

	// Clinic mapping beats global.
	assert.Equal(t, "gpt-4o", r.Resolve("c1", "p1", TierReasoning))
	// Other clinics fall to global.
	assert.Equal(t, "gpt-4o-mini", r.Resolve("c2", "p1", TierReasoning))
}

func TestResolve_EnvBeatsClinicMapping(t *testing.T) {
	cfg := Config{
		ClinicMappings: map[string]map[Tier]string{
			"c1": {TierReasoning: "gpt-4o"},
		},
		Getenv: func(key string) string {
			if key == "TIER_REASONING_MODEL" {
				return "claude-opus-4-1"
			}
			return ""
		},
	}
	r := newRegistry(t, cfg)
	assert.Equal(t, "claude-opus-4-1", r.Resolve("c1", "p1", TierReasoning))
}

func TestResolve_ExperimentWinsForAssignedBuckets(t *testing.T) {
	cfg := Config{
		Experiments: []Experiment{{
			ID:       "exp-1",
			Tier:     TierToolCalling,
			Variants: []Variant{{Model: "gpt-4o", Weight: 100}},
		}},
		GlobalMappings: map[Tier]string{TierToolCalling: "claude-sonnet-4-5"},
		Getenv:         noEnv,
	}
	r := newRegistry(t, cfg)

	// Full-weight experiment captures every sticky id.
	assert.Equal(t, "gpt-4o", r.Resolve("c1", "any-patient", TierToolCalling))
}

func TestResolve_PartialExperimentFallsThrough(t *testing.T) {
	cfg := Config{
		Experiments: []Experiment{{
			ID:       "exp-2",
			Tier:     TierToolCalling,
			Variants: []Variant{{Model: "gpt-4o", Weight: 50}},
		}},
		GlobalMappings: map[Tier]string{TierToolCalling: "claude-sonnet-4-5"},
		Getenv:         noEnv,
	}
	r := newRegistry(t, cfg)

	inExperiment := 0
	total := 200
	for i := 0; i < total; i++ {
		sticky := "patient-" + string(rune('a'+i%26)) + string(rune('0'+i%10))
		model := r.Resolve("c1", sticky, TierToolCalling)
		if model == "gpt-4o" {
			inExperiment++
		} else {
			assert.Equal(t, "claude-sonnet-4-5", model)
		}
	}
	// Roughly half; the exact share depends on the hash but both arms
	// must be populated.
	assert.Greater(t, inExperiment, 0)
	assert.Less(t, inExperiment, total)
}

func TestResolve_Deterministic(t *testing.T) {
	cfg := Config{
		Experiments: []Experiment{{
			ID:       "exp-3",
			Tier:     TierToolCalling,
			Variants: []Variant{{Model: "gpt-4o", Weight: 33}},
		}},
		Getenv: noEnv,
	}
	r := newRegistry(t, cfg)

	first := r.Resolve("c1", "patient-42", TierToolCalling)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, r.Resolve("c1", "patient-42", TierToolCalling))
	}

	// A fresh registry with the same config gives the same answer.
	r2 := newRegistry(t, cfg)
	assert.Equal(t, first, r2.Resolve("c1", "patient-42", TierToolCalling))
}

func TestResolve_CapabilityFallback(t *testing.T) {
	cfg := Config{
		// gpt-4o-mini has no vision capability; the multimodal tier
		// must skip it and use the compiled default.
		GlobalMappings: map[Tier]string{TierMultimodal: "gpt-4o-mini"},
		Getenv:         noEnv,
	}
	r := newRegistry(t, cfg)
	assert.Equal(t, "gpt-4o", r.Resolve("c1", "p1", TierMultimodal))
}

func TestResolve_UnknownModelFallsBackToDefault(t *testing.T) {
	// A typo'd env override must not reach the provider; the tier falls
	// back to its compiled default.
	cfg := Config{
		Getenv: func(key string) string {
			if key == "TIER_TOOL_CALLING_MODEL" {
				return "totally-made-up-model"
			}
			return ""
		},
	}
	r := newRegistry(t, cfg)
	assert.Equal(t, "claude-sonnet-4-5", r.Resolve("c1", "p1", TierToolCalling))

	// Same for mappings, in every tier.
	cfg2 := Config{
		GlobalMappings: map[Tier]string{TierReasoning: "some-new-model"},
		Getenv:         noEnv,
	}
	r2 := newRegistry(t, cfg2)
	assert.Equal(t, "claude-sonnet-4-5", r2.Resolve("c1", "p1", TierReasoning))
}

func TestResolve_DeclaredCapabilitiesAdmitNewModels(t *testing.T) {
	cfg := Config{
		GlobalMappings: map[Tier]string{TierReasoning: "some-new-model"},
		Capabilities: map[string][]Capability{
			"some-new-model": {CapText},
		},
		Getenv: noEnv,
	}
	r := newRegistry(t, cfg)
	assert.Equal(t, "some-new-model", r.Resolve("c1", "p1", TierReasoning))
}

func TestRegistry_MemoAndFlush(t *testing.T) {
	calls := 0
	cfg := Config{
		Getenv: func(key string) string {
			if key == "TIER_ROUTING_MODEL" {
				calls++
				return "gpt-4o-mini"
			}
			return ""
		},
		MemoTTL: time.Minute,
	}
	r := newRegistry(t, cfg)

	r.Resolve("c1", "p1", TierRouting)
	r.Resolve("c1", "p1", TierRouting)
	assert.Equal(t, 1, calls)

	r.Flush()
	r.Resolve("c1", "p1", TierRouting)
	assert.Equal(t, 2, calls)
}

func TestNewRegistry_RejectsBrokenDefaultMatrix(t *testing.T) {
	_, err := NewRegistry(Config{
		Capabilities: map[string][]Capability{
			// Strip the voice default of its audio capability.
			"gpt-4o-audio-preview": {CapText},
		},
		Getenv: noEnv,
	})
	assert.Error(t, err)
}
