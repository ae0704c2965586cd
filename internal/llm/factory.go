package llm

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/assessly/internal/store"
)

// NewProvider builds the configured provider. Each attempt is recorded;
// retries wrap the recording so every call to the API leaves an event.
func NewProvider(ctx context.Context, cfg Config, events store.EventRepo, log *zap.Logger) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	switch cfg.Provider {
	case ProviderAnthropic:
		base = newAnthropic(cfg.Anthropic)
	case ProviderOpenAI:
		base = newOpenAI(cfg.OpenAI)
	case ProviderOpenRouter:
		or := cfg.OpenRouter
		if or.BaseURL == "" {
			or.BaseURL = openRouterBaseURL
		}
		base = newOpenAI(or)
	case ProviderGemini:
		g, err := newGemini(ctx, cfg.Gemini)
		if err != nil {
			return nil, fmt.Errorf("init gemini provider: %w", err)
		}
		base = g
	case ProviderMock:
		base = NewMockProvider()
	default:
		return nil, errors.New("no LLM provider configured")
	}

	return Wrap(base, Retry(cfg.Retry), Record(cfg.Provider, events, log)), nil
}
