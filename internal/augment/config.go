package augment

import "time"

// Config controls the behavior of the Generator.
type Config struct {
	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0).
	Temperature float64

	// MaxContextMistakes is the maximum number of recent mistakes
	// included in the prompt as generation context.
	MaxContextMistakes int

	// Timeout bounds each provider call. Generation is a best-effort
	// enrichment; a slow provider must not stall the session.
	Timeout time.Duration
}

// DefaultConfig returns the recommended defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:          512,
		Temperature:        0.7,
		MaxContextMistakes: 5,
		Timeout:            8 * time.Second,
	}
}
