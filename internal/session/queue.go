package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wenqi/pindrill/internal/pinyin"
	"github.com/wenqi/pindrill/internal/store"
)

// Queue is an in-progress review session. Submitting an answer grades it,
// feeds the outcome back into the scheduler, and advances to the next item.
type Queue struct {
	builder *Builder
	userID  string
	items   []Item
	pos     int
}

func newQueue(b *Builder, userID string, items []Item) *Queue {
	return &Queue{builder: b, userID: userID, items: items}
}

// Len returns the total number of items in the session.
func (q *Queue) Len() int { return len(q.items) }

// Pos returns the index of the current item.
func (q *Queue) Pos() int { return q.pos }

// Items returns the session's items in presentation order.
func (q *Queue) Items() []Item { return q.items }

// Current returns the item awaiting an answer, or nil if the session is
// finished.
func (q *Queue) Current() *Item {
	if q.pos >= len(q.items) {
		return nil
	}
	return &q.items[q.pos]
}

// HasNext reports whether any item still awaits an answer.
func (q *Queue) HasNext() bool {
	return q.pos < len(q.items)
}

// Submit grades the answer for the current item and advances the queue.
// The Result is always valid when the queue had a current item; a non-nil
// error reports a persistence failure that did not stop the session.
func (q *Queue) Submit(ctx context.Context, answer string) (Result, error) {
	item := q.Current()
	if item == nil {
		return Result{}, errors.New("session finished")
	}
	q.pos++

	res := Result{
		Correct:       pinyin.Equivalent(answer, item.Pinyin),
		CorrectPinyin: item.Pinyin,
	}

	now := q.now()
	var err error
	switch item.Kind {
	case KindMistake:
		if res.Correct {
			err = q.builder.scheduler.RecordSuccess(ctx, item.MistakeID, item.Stage, now)
		} else {
			_, err = q.builder.scheduler.RecordMiss(ctx, q.userID, item.QuestionID, answer, now)
		}
	case KindAI:
		if !res.Correct {
			err = q.recordAIMiss(ctx, item, answer, now)
		}
	}
	if err != nil {
		return res, fmt.Errorf("submit: %w", err)
	}
	return res, nil
}

// recordAIMiss gives a missed supplement a durable identity in the
// question bank, then schedules it like any other mistake. A supplement
// whose content already exists reuses the existing question.
func (q *Queue) recordAIMiss(ctx context.Context, item *Item, answer string, now time.Time) error {
	question, err := q.builder.questions.GetByContent(ctx, item.Content)
	switch {
	case errors.Is(err, store.ErrNotFound):
		question = &store.Question{
			Content:   item.Content,
			Pinyin:    item.Pinyin,
			Category:  "ai",
			CreatedAt: now,
		}
		if err := q.builder.questions.Create(ctx, question); err != nil {
			return fmt.Errorf("persist supplement: %w", err)
		}
	case err != nil:
		return fmt.Errorf("persist supplement: %w", err)
	}

	if _, err := q.builder.scheduler.RecordMiss(ctx, q.userID, question.ID, answer, now); err != nil {
		return err
	}
	return nil
}

func (q *Queue) now() time.Time {
	if q.builder.cfg.Clock != nil {
		return q.builder.cfg.Clock()
	}
	return time.Now()
}
