package llm

import (
	"errors"
	"fmt"
	"testing"

	"google.golang.org/genai"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.5-pro"},
		{"gemini-1.5-flash", "gemini-1.5-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiConfig(t *testing.T) {
	cfg := buildGeminiConfig(Request{
		System:      "You write quizzes.",
		MaxTokens:   512,
		Temperature: 0.9,
	})

	if cfg.MaxOutputTokens != 512 {
		t.Errorf("MaxOutputTokens = %d, want 512", cfg.MaxOutputTokens)
	}
	if cfg.Temperature == nil || *cfg.Temperature != float32(0.9) {
		t.Errorf("Temperature = %v, want 0.9", cfg.Temperature)
	}
	if cfg.SystemInstruction == nil || cfg.SystemInstruction.Parts[0].Text != "You write quizzes." {
		t.Errorf("system instruction not set")
	}

	bare := buildGeminiConfig(Request{})
	if bare.Temperature != nil {
		t.Errorf("expected nil temperature for zero value")
	}
	if bare.SystemInstruction != nil {
		t.Errorf("expected no system instruction")
	}
}

func TestBuildGeminiContents(t *testing.T) {
	contents := buildGeminiContents([]Message{
		{Role: RoleUser, Content: "hi"},
		{Role: RoleAssistant, Content: "hello"},
	})
	if len(contents) != 2 {
		t.Fatalf("expected 2 contents, got %d", len(contents))
	}
	if contents[0].Role != "user" {
		t.Errorf("role[0] = %q, want user", contents[0].Role)
	}
	if contents[1].Role != "model" {
		t.Errorf("role[1] = %q, want model", contents[1].Role)
	}
}

func TestMapGeminiStopReason(t *testing.T) {
	tests := []struct {
		reason genai.FinishReason
		want   string
	}{
		{"STOP", StopEnd},
		{"MAX_TOKENS", StopMaxTokens},
		{"SAFETY", StopEnd},
	}
	for _, tt := range tests {
		result := &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{FinishReason: tt.reason}},
		}
		if got := mapGeminiStopReason(result); got != tt.want {
			t.Errorf("mapGeminiStopReason(%q) = %q, want %q", tt.reason, got, tt.want)
		}
	}

	if got := mapGeminiStopReason(&genai.GenerateContentResponse{}); got != StopEnd {
		t.Errorf("no candidates: got %q, want %q", got, StopEnd)
	}
}

func TestMapGeminiError(t *testing.T) {
	rl := mapGeminiError(fmt.Errorf("call: %w", genai.APIError{Code: 429, Message: "quota"}))
	var rateErr *ErrRateLimit
	if !errors.As(rl, &rateErr) {
		t.Fatalf("expected ErrRateLimit, got %T", rl)
	}

	down := mapGeminiError(genai.APIError{Code: 503, Message: "overloaded"})
	var unavail *ErrProviderUnavailable
	if !errors.As(down, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T", down)
	}

	other := mapGeminiError(errors.New("dial tcp: connection refused"))
	if !errors.As(other, &unavail) {
		t.Fatalf("expected ErrProviderUnavailable, got %T", other)
	}
}
