package augment

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"github.com/wenqi/pindrill/internal/llm"
	"github.com/wenqi/pindrill/internal/pinyin"
)

// Generator produces AI supplement items from a learner's recent mistakes.
// Generation is best effort: any provider failure, malformed response, or
// empty result degrades to zero items rather than an error the session
// would have to handle.
type Generator struct {
	provider llm.Provider
	config   Config
}

// New creates a Generator with the given provider and config.
func New(provider llm.Provider, cfg Config) *Generator {
	return &Generator{provider: provider, config: cfg}
}

// supplementOutput is the raw LLM response before validation.
type supplementOutput struct {
	Items []struct {
		Content string `json:"content"`
		Pinyin  string `json:"pinyin"`
	} `json:"items"`
}

// Generate requests input.Count supplement items from the provider.
// The returned slice may be shorter than requested, including empty,
// and is never nil alongside a nil error.
func (g *Generator) Generate(ctx context.Context, input Input) ([]Supplement, error) {
	if input.Count <= 0 {
		return []Supplement{}, nil
	}

	ctx = llm.WithPurpose(ctx, "supplement-gen")
	ctx, cancel := context.WithTimeout(ctx, g.config.Timeout)
	defer cancel()

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)},
		},
		Schema:      SupplementSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return []Supplement{}, nil
	}

	var raw supplementOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return []Supplement{}, nil
	}

	out := make([]Supplement, 0, len(raw.Items))
	for _, item := range raw.Items {
		content := strings.TrimSpace(item.Content)
		reading := pinyin.Normalize(item.Pinyin)
		if content == "" || reading == "" {
			continue
		}
		out = append(out, Supplement{
			ID:      uuid.NewString(),
			Content: content,
			Pinyin:  reading,
		})
		if len(out) == input.Count {
			break
		}
	}

	return out, nil
}
