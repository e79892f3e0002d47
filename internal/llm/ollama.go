package llm

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
)

const defaultOllamaServerURL = "http://localhost:11434"

// LangChainProvider adapts any langchaingo model to Provider. It backs the
// "ollama" provider, which runs against a local model server with no API key.
type LangChainProvider struct {
	model   llms.Model
	modelID string
}

// NewOllamaProvider creates a provider backed by a local Ollama server.
func NewOllamaProvider(cfg OllamaConfig) (*LangChainProvider, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("ollama model is required")
	}

	serverURL := cfg.ServerURL
	if serverURL == "" {
		serverURL = defaultOllamaServerURL
	}

	m, err := ollama.New(
		ollama.WithModel(cfg.Model),
		ollama.WithServerURL(serverURL),
	)
	if err != nil {
		return nil, fmt.Errorf("create Ollama client: %w", err)
	}

	return NewLangChainProvider(m, cfg.Model), nil
}

// NewLangChainProvider wraps an already-configured langchaingo model.
func NewLangChainProvider(model llms.Model, modelID string) *LangChainProvider {
	return &LangChainProvider{model: model, modelID: modelID}
}

func (p *LangChainProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var messages []llms.MessageContent
	if req.System != "" {
		messages = append(messages, llms.TextParts(llms.ChatMessageTypeSystem, req.System))
	}
	for _, m := range req.Messages {
		msgType := llms.ChatMessageTypeHuman
		if m.Role == RoleAssistant {
			msgType = llms.ChatMessageTypeAI
		}
		messages = append(messages, llms.TextParts(msgType, m.Content))
	}

	opts := []llms.CallOption{llms.WithTemperature(req.Temperature)}
	if req.MaxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(req.MaxTokens))
	}

	resp, err := p.model.GenerateContent(ctx, messages, opts...)
	if err != nil {
		return nil, &ErrProviderUnavailable{Err: err}
	}

	if resp == nil || len(resp.Choices) == 0 || resp.Choices[0].Content == "" {
		return nil, &ErrInvalidResponse{Err: errEmptyReply}
	}

	choice := resp.Choices[0]
	return &Response{
		Text:       choice.Content,
		Usage:      langChainUsage(choice.GenerationInfo),
		Model:      p.modelID,
		StopReason: mapLangChainStopReason(choice.StopReason),
	}, nil
}

func (p *LangChainProvider) ModelID() string {
	return p.modelID
}

// langChainUsage reads the token counts backends report in GenerationInfo.
func langChainUsage(info map[string]any) Usage {
	u := Usage{
		InputTokens:  intFromInfo(info, "PromptTokens"),
		OutputTokens: intFromInfo(info, "CompletionTokens"),
		TotalTokens:  intFromInfo(info, "TotalTokens"),
	}
	if u.TotalTokens == 0 {
		u.TotalTokens = u.InputTokens + u.OutputTokens
	}
	return u
}

func intFromInfo(info map[string]any, key string) int {
	switch v := info[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return 0
	}
}

func mapLangChainStopReason(reason string) string {
	switch reason {
	case "length", "max_tokens":
		return StopMaxTokens
	default:
		return StopEnd
	}
}
