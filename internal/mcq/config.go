package mcq

import "time"

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Checks run over every parsed batch. They only report; they never
	// drop questions.
	Checks []Check

	// MaxTokens is the token budget for the model response. Ten questions
	// with explanations fit comfortably in the default.
	MaxTokens int

	// Temperature controls output randomness (0.0-1.0). Kept high so that
	// repeated requests produce different questions.
	Temperature float64

	// Timeout bounds a single generation call. Zero means no limit.
	Timeout time.Duration
}

// DefaultConfig returns a Config with the standard check chain and
// recommended defaults.
func DefaultConfig() Config {
	return Config{
		Checks:      DefaultChecks(),
		MaxTokens:   4096,
		Temperature: 0.9,
		Timeout:     60 * time.Second,
	}
}
