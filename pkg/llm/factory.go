package llm

import (
	"fmt"
	"strings"
	"sync"
)

// FactoryConfig carries the vendor credentials.
type FactoryConfig struct {
	AnthropicAPIKey string
	OpenAIAPIKey    string
}

// Factory hands out one lazily created, cached provider per model
// name. Model names prefixed "claude" go to Anthropic; everything
// else goes to OpenAI.
type Factory struct {
	newAnthropic func(model string) (Provider, error)
	newOpenAI    func(model string) (Provider, error)

	mu    sync.Mutex
	cache map[string]Provider
}

// NewFactory builds a factory over the real SDK clients. A missing
// key disables that vendor; resolving one of its models returns
// ErrNoProvider.
func NewFactory(cfg FactoryConfig) *Factory {
	f := &Factory{cache: map[string]Provider{}}
	if cfg.AnthropicAPIKey != "" {
		f.newAnthropic = func(model string) (Provider, error) {
			return NewAnthropicProvider(cfg.AnthropicAPIKey, model)
		}
	}
	if cfg.OpenAIAPIKey != "" {
		f.newOpenAI = func(model string) (Provider, error) {
			return NewOpenAIProvider(cfg.OpenAIAPIKey, model)
		}
	}
	return f
}

// ForModel returns the provider serving the named model, creating it
// on first use.
func (f *Factory) ForModel(model string) (Provider, error) {
	if model == "" {
		return nil, fmt.Errorf("%w: empty model name", ErrNoProvider)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.cache[model]; ok {
		return p, nil
	}

	build := f.newOpenAI
	if strings.HasPrefix(model, "claude") {
		build = f.newAnthropic
	}
	if build == nil {
		return nil, fmt.Errorf("%w: %s (vendor not configured)", ErrNoProvider, model)
	}
	p, err := build(model)
	if err != nil {
		return nil, err
	}
	f.cache[model] = p
	return p, nil
}

// Flush drops all cached providers. Test hook.
func (f *Factory) Flush() {
	f.mu.Lock()
	f.cache = map[string]Provider{}
	f.mu.Unlock()
}
