package augment

import "github.com/wenqi/pindrill/internal/llm"

// SupplementSchema defines the JSON schema for LLM supplement responses.
var SupplementSchema = &llm.Schema{
	Name:        "pinyin-supplements",
	Description: "A batch of Chinese reading practice items with pinyin answers",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"items": map[string]any{
				"type":        "array",
				"description": "The generated practice items",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"content": map[string]any{
							"type":        "string",
							"description": "The hanzi word or short phrase to read aloud, simplified characters only",
						},
						"pinyin": map[string]any{
							"type":        "string",
							"description": "The correct pinyin reading in numeric tone notation, e.g. 'ni3 hao3', syllables separated by spaces",
						},
					},
					"required":             []any{"content", "pinyin"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"items"},
		"additionalProperties": false,
	},
}
