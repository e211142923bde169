package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticProvider struct{ model string }

func (p *staticProvider) Model() string { return p.model }

func (p *staticProvider) Generate(context.Context, Request) (*Response, error) {
	return &Response{}, nil
}

func (p *staticProvider) GenerateWithTools(context.Context, Request, []ToolDefinition) (*Response, error) {
	return &Response{}, nil
}

func testFactory() (*Factory, *int, *int) {
	anthropicBuilds, openaiBuilds := 0, 0
	f := &Factory{cache: map[string]Provider{}}
	f.newAnthropic = func(model string) (Provider, error) {
		anthropicBuilds++
		return &staticProvider{model: model}, nil
	}
	f.newOpenAI = func(model string) (Provider, error) {
		openaiBuilds++
		return &staticProvider{model: model}, nil
	}
	return f, &anthropicBuilds, &openaiBuilds
}

func TestFactory_PrefixDispatch(t *testing.T) {
	f, anthropicBuilds, openaiBuilds := testFactory()

	p, err := f.ForModel("claude-sonnet-4-5")
	require.NoError(t, err)
	assert.Equal(t, "claude-sonnet-4-5", p.Model())
	assert.Equal(t, 1, *anthropicBuilds)

	p, err = f.ForModel("gpt-4o-mini")
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", p.Model())
	assert.Equal(t, 1, *openaiBuilds)
}

func TestFactory_CachesPerModel(t *testing.T) {
	f, anthropicBuilds, _ := testFactory()

	first, err := f.ForModel("claude-3-5-haiku-latest")
	require.NoError(t, err)
	second, err := f.ForModel("claude-3-5-haiku-latest")
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, *anthropicBuilds)
}

func TestFactory_FlushDropsCache(t *testing.T) {
	f, anthropicBuilds, _ := testFactory()

	_, err := f.ForModel("claude-sonnet-4-5")
	require.NoError(t, err)
	f.Flush()
	_, err = f.ForModel("claude-sonnet-4-5")
	require.NoError(t, err)
	assert.Equal(t, 2, *anthropicBuilds)
}

func TestFactory_UnconfiguredVendor(t *testing.T) {
	f := NewFactory(FactoryConfig{OpenAIAPIKey: "sk-test"})

	_, err := f.ForModel("claude-sonnet-4-5")
	assert.ErrorIs(t, err, ErrNoProvider)

	_, err = f.ForModel("")
	assert.ErrorIs(t, err, ErrNoProvider)
}
