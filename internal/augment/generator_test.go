package augment

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/wenqi/pindrill/internal/llm"
)

func testInput(count int) Input {
	return Input{
		Count: count,
		Mistakes: []ContextMistake{
			{QuestionContent: "知道", CorrectPinyin: "zhī dào", WrongPinyin: "zī dào"},
			{QuestionContent: "上海", CorrectPinyin: "shàng hǎi", WrongPinyin: "sàng hǎi"},
		},
	}
}

func TestGenerate_Success(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"items":[
			{"content":"中国","pinyin":"zhong1 guo2"},
			{"content":"吃饭","pinyin":"chi1 fan4"}
		]}`),
	})
	g := New(mock, DefaultConfig())

	items, err := g.Generate(context.Background(), testInput(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].Content != "中国" {
		t.Errorf("content: got %q", items[0].Content)
	}
	if items[0].Pinyin != "zhōng guó" {
		t.Errorf("expected diacritic rendering, got %q", items[0].Pinyin)
	}
	if items[0].ID == "" || items[0].ID == items[1].ID {
		t.Error("expected unique non-empty ephemeral IDs")
	}
}

func TestGenerate_ProviderErrorDegradesToEmpty(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	g := New(mock, DefaultConfig())

	items, err := g.Generate(context.Background(), testInput(3))
	if err != nil {
		t.Fatalf("provider failure should not surface an error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected 0 items, got %d", len(items))
	}
}

func TestGenerate_MalformedJSONDegradesToEmpty(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"items": [`),
	})
	g := New(mock, DefaultConfig())

	items, err := g.Generate(context.Background(), testInput(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected 0 items, got %d", len(items))
	}
}

func TestGenerate_SkipsIncompleteItems(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"items":[
			{"content":"","pinyin":"hao3"},
			{"content":"好","pinyin":""},
			{"content":"好","pinyin":"hao3"}
		]}`),
	})
	g := New(mock, DefaultConfig())

	items, err := g.Generate(context.Background(), testInput(3))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Pinyin != "hǎo" {
		t.Errorf("got %q", items[0].Pinyin)
	}
}

func TestGenerate_CapsAtRequestedCount(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"items":[
			{"content":"一","pinyin":"yi1"},
			{"content":"二","pinyin":"er4"},
			{"content":"三","pinyin":"san1"}
		]}`),
	})
	g := New(mock, DefaultConfig())

	items, err := g.Generate(context.Background(), testInput(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
}

func TestGenerate_ZeroCountSkipsProvider(t *testing.T) {
	mock := llm.NewMockProvider()
	g := New(mock, DefaultConfig())

	items, err := g.Generate(context.Background(), Input{Count: 0})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected 0 items, got %d", len(items))
	}
	if mock.CallCount() != 0 {
		t.Fatalf("expected no provider calls, got %d", mock.CallCount())
	}
}

func TestGenerate_PromptCarriesMistakeContext(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"items":[]}`),
	})
	g := New(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), testInput(2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mock.CallCount() != 1 {
		t.Fatalf("expected 1 call, got %d", mock.CallCount())
	}
	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "知道") || !strings.Contains(msg, "zī dào") {
		t.Errorf("prompt missing mistake context: %q", msg)
	}
	if mock.Calls[0].Schema != SupplementSchema {
		t.Error("expected supplement schema on the request")
	}
}

func TestGenerate_ContextMistakesTruncated(t *testing.T) {
	mistakes := make([]ContextMistake, 8)
	for i := range mistakes {
		mistakes[i] = ContextMistake{QuestionContent: "字", CorrectPinyin: "zi4", WrongPinyin: "ci4"}
	}
	mistakes[0].QuestionContent = "首先"
	mistakes[7].QuestionContent = "最近"

	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"items":[]}`),
	})
	g := New(mock, DefaultConfig())

	if _, err := g.Generate(context.Background(), Input{Mistakes: mistakes, Count: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	msg := mock.Calls[0].Messages[0].Content
	// Oldest-due entries win the context slots; only 5 lines remain.
	if !strings.Contains(msg, "首先") {
		t.Error("expected oldest-due mistake in prompt")
	}
	if strings.Contains(msg, "最近") {
		t.Error("expected entries past the cap dropped")
	}
	if strings.Count(msg, "correct:") != 5 {
		t.Errorf("expected 5 context lines, got %d", strings.Count(msg, "correct:"))
	}
}
