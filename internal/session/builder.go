package session

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/wenqi/pindrill/internal/augment"
	"github.com/wenqi/pindrill/internal/store"
)

// Builder assembles review sessions from due mistakes plus optional AI
// supplements.
type Builder struct {
	scheduler Scheduler
	augmenter Augmenter
	questions QuestionBank
	cfg       Config
}

// NewBuilder creates a Builder. augmenter may be nil, in which case
// sessions contain only due mistakes.
func NewBuilder(scheduler Scheduler, augmenter Augmenter, questions QuestionBank, cfg Config) *Builder {
	return &Builder{
		scheduler: scheduler,
		augmenter: augmenter,
		questions: questions,
		cfg:       cfg,
	}
}

// Start builds a session queue for the learner. Due mistakes come first,
// oldest due leading unless shuffled; supplements are appended after.
// Augmentation failure is non-fatal: the session proceeds with whatever
// the generator returned. A storage failure reading due mistakes is fatal.
func (b *Builder) Start(ctx context.Context, userID string, now time.Time) (*Queue, error) {
	due, err := b.scheduler.DueMistakes(ctx, userID, now)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}

	items := make([]Item, 0, len(due)+b.cfg.SupplementCount)
	for _, d := range due {
		items = append(items, Item{
			Kind:       KindMistake,
			Content:    d.Content,
			Pinyin:     d.Pinyin,
			MistakeID:  d.ID,
			QuestionID: d.QuestionID,
			Stage:      d.ReviewStage,
		})
	}

	rng := b.cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(now.UnixNano()))
	}
	if b.cfg.Shuffle {
		rng.Shuffle(len(items), func(i, j int) {
			items[i], items[j] = items[j], items[i]
		})
	}

	// Supplements extend an existing review; an empty due set stays empty.
	if b.augmenter != nil && b.cfg.SupplementCount > 0 && len(due) > 0 {
		supplements, err := b.augmenter.Generate(ctx, augment.Input{
			Mistakes: contextFromDue(due),
			Count:    b.cfg.SupplementCount,
		})
		if err == nil {
			start := len(items)
			for _, s := range supplements {
				items = append(items, Item{
					Kind:         KindAI,
					Content:      s.Content,
					Pinyin:       s.Pinyin,
					SupplementID: s.ID,
				})
			}
			if b.cfg.Shuffle {
				tail := items[start:]
				rng.Shuffle(len(tail), func(i, j int) {
					tail[i], tail[j] = tail[j], tail[i]
				})
			}
		}
	}

	return newQueue(b, userID, items), nil
}

// contextFromDue converts due records into generation context.
func contextFromDue(due []*store.DueMistake) []augment.ContextMistake {
	out := make([]augment.ContextMistake, 0, len(due))
	for _, d := range due {
		out = append(out, augment.ContextMistake{
			QuestionContent: d.Content,
			CorrectPinyin:   d.Pinyin,
			WrongPinyin:     d.WrongAnswer,
		})
	}
	return out
}
