package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name: "test-supplements",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"items": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"content": map[string]any{"type": "string"},
							"pinyin":  map[string]any{"type": "string"},
							"tone":    map[string]any{"type": "integer", "minimum": 1, "maximum": 5},
						},
						"required": []any{"content", "pinyin"},
					},
				},
			},
			"required": []any{"items"},
		},
	}
}

func TestValidateResponse_Valid(t *testing.T) {
	raw := json.RawMessage(`{"items":[{"content":"你好","pinyin":"nǐ hǎo"}]}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"items":[{"content":"你好"}]}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected validation error for missing required field")
	}
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"items":[{"content":42,"pinyin":"nǐ hǎo"}]}`)
	if err := validateResponse(testSchema(), raw); err == nil {
		t.Fatal("expected validation error for wrong type")
	}
}

func TestValidateResponse_OutOfRange(t *testing.T) {
	raw := json.RawMessage(`{"items":[{"content":"你","pinyin":"ni3","tone":9}]}`)
	if err := validateResponse(testSchema(), raw); err == nil {
		t.Fatal("expected validation error for out-of-range tone")
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{"items": [`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invalid *ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %T", err)
	}
}

func TestValidateResponse_EmptyItems(t *testing.T) {
	raw := json.RawMessage(`{"items":[]}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("empty items array should be valid: %v", err)
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`anything at all`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("nil schema should skip validation: %v", err)
	}
}
