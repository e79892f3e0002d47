package llm

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/abhisek/mcqgen/internal/store"
)

// ErrNotConfigured is returned when no provider is selected and no standard
// API key is present in the environment.
var ErrNotConfigured = errors.New("API key not found. Set GOOGLE_API_KEY (or OPENAI_API_KEY, ANTHROPIC_API_KEY, OPENROUTER_API_KEY), or select a provider with MCQGEN_LLM_PROVIDER")

// NewProvider creates a Provider from configuration. When eventRepo is
// non-nil the provider is wrapped with request logging.
func NewProvider(ctx context.Context, cfg Config, eventRepo store.EventRepo) (Provider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var base Provider
	var err error

	switch cfg.Provider {
	case ProviderAnthropic:
		base, err = NewAnthropicProvider(cfg.Anthropic)
	case ProviderOpenAI:
		base, err = NewOpenAIProvider(cfg.OpenAI)
	case ProviderGemini:
		base, err = NewGeminiProvider(ctx, cfg.Gemini)
	case ProviderOpenRouter:
		base, err = NewOpenRouterProvider(cfg.OpenRouter)
	case ProviderOllama:
		base, err = NewOllamaProvider(cfg.Ollama)
	case ProviderMock:
		base = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown LLM provider: %q", cfg.Provider)
	}
	if err != nil {
		return nil, fmt.Errorf("initializing %s provider: %w", cfg.Provider, err)
	}

	if eventRepo == nil {
		return base, nil
	}
	return WithLogging(base, eventRepo), nil
}

// ResolveConfig returns the effective configuration from the environment.
// An explicit MCQGEN_LLM_PROVIDER wins; otherwise the standard vendor API
// keys are probed via DiscoverConfig.
func ResolveConfig() (Config, error) {
	if os.Getenv("MCQGEN_LLM_PROVIDER") != "" {
		return ConfigFromEnv(), nil
	}
	cfg, ok := DiscoverConfig()
	if !ok {
		return Config{}, ErrNotConfigured
	}
	cfg.Timeout = ConfigFromEnv().Timeout
	return cfg, nil
}
