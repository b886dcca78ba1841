package session

import (
	"context"
	"math/rand"
	"time"

	"github.com/wenqi/pindrill/internal/augment"
	"github.com/wenqi/pindrill/internal/store"
)

// ItemKind distinguishes where a review item came from.
type ItemKind string

const (
	// KindMistake is an item drawn from the learner's due mistake records.
	KindMistake ItemKind = "mistake"

	// KindAI is an ephemeral AI-generated supplement.
	KindAI ItemKind = "ai"
)

// Item is one prompt in a review session.
type Item struct {
	Kind    ItemKind
	Content string
	Pinyin  string

	// MistakeID, QuestionID and Stage are set for KindMistake items.
	// Stage is the ladder stage the record held when the session started.
	MistakeID  int64
	QuestionID int64
	Stage      int

	// SupplementID is the ephemeral identifier for KindAI items.
	SupplementID string
}

// Result is the outcome of submitting one answer.
type Result struct {
	Correct       bool
	CorrectPinyin string
}

// Scheduler is the mistake-scheduling surface a session needs.
// *mistakes.Service satisfies it.
type Scheduler interface {
	DueMistakes(ctx context.Context, userID string, now time.Time) ([]*store.DueMistake, error)
	RecordMiss(ctx context.Context, userID string, questionID int64, wrongText string, now time.Time) (*store.MistakeRecord, error)
	RecordSuccess(ctx context.Context, mistakeID int64, currentStage int, now time.Time) error
}

// Augmenter produces supplement items. *augment.Generator satisfies it.
type Augmenter interface {
	Generate(ctx context.Context, input augment.Input) ([]augment.Supplement, error)
}

// QuestionBank is the question persistence surface used when an AI item
// is missed and needs a durable identity. *store.QuestionRepo satisfies it.
type QuestionBank interface {
	Create(ctx context.Context, q *store.Question) error
	GetByContent(ctx context.Context, content string) (*store.Question, error)
}

// Config controls session composition.
type Config struct {
	// SupplementCount is how many AI items to request. Zero disables
	// augmentation even when an Augmenter is configured.
	SupplementCount int

	// Shuffle randomizes item order within each segment. Mistake items
	// always precede supplements regardless.
	Shuffle bool

	// Rand is the randomness source for shuffling. Nil falls back to a
	// time-seeded source; tests inject a fixed seed.
	Rand *rand.Rand

	// Clock supplies the current time for scheduler writes made during
	// the session. Nil means time.Now.
	Clock func() time.Time
}

// DefaultConfig returns the recommended session defaults.
func DefaultConfig() Config {
	return Config{
		SupplementCount: 5,
		Shuffle:         true,
	}
}
