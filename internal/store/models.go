package store

import (
	"context"
	"time"
)

// Question is one entry in the question bank: a prompt (hanzi content)
// and its correct pinyin in diacritic form.
type Question struct {
	ID        int64
	Content   string
	Pinyin    string
	Category  string
	CreatedAt time.Time
}

// MistakeRecord tracks one question a learner has answered incorrectly
// at least once. (user_id, question_id) is the logical key.
type MistakeRecord struct {
	ID             int64
	UserID         string
	QuestionID     int64
	WrongAnswer    string
	ErrorCount     int
	ReviewStage    int
	LastReviewedAt *time.Time
	NextReviewAt   time.Time
	CreatedAt      time.Time
}

// DueMistake is a MistakeRecord joined with its question content.
type DueMistake struct {
	MistakeRecord
	Content string
	Pinyin  string
}

// SymbolProgress tracks one pinyin symbol's mastery state for a learner.
// (user_id, symbol_id) is the logical key.
type SymbolProgress struct {
	ID            int64
	UserID        string
	SymbolID      string
	StudyCount    int
	IsMastered    bool
	MasteryLevel  int
	LastStudiedAt time.Time
	NextReviewAt  time.Time
}

// RequestLog is the append surface for the LLM request log. The llm
// package's logging decorator writes through it; *AugmentLogRepo
// satisfies it.
type RequestLog interface {
	Append(ctx context.Context, data AugmentRequestData) error
}

// AugmentRequestData captures one LLM API call for the request log.
type AugmentRequestData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

