package mistakes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wenqi/pindrill/internal/store"
)

// Repo is the persistence surface the scheduler needs. *store.MistakeRepo
// satisfies it; tests supply mocks.
type Repo interface {
	GetByUserQuestion(ctx context.Context, userID string, questionID int64) (*store.MistakeRecord, error)
	GetByID(ctx context.Context, id int64) (*store.MistakeRecord, error)
	Create(ctx context.Context, m *store.MistakeRecord) error
	Update(ctx context.Context, m *store.MistakeRecord) error
	Due(ctx context.Context, userID string, now time.Time) ([]*store.DueMistake, error)
}

// Service applies the interval ladder to mistake records. It holds no
// state between calls; every operation is a read-compute-write against
// the repo.
type Service struct {
	repo Repo
}

// NewService creates a mistake scheduler over the given repo.
func NewService(repo Repo) *Service {
	return &Service{repo: repo}
}

// RecordMiss registers an incorrect answer for a question. A new record
// starts at stage 0; an existing record resets to stage 0 regardless of
// prior progress, with its error count incremented. Either way the next
// review lands at now + the first ladder interval.
func (s *Service) RecordMiss(ctx context.Context, userID string, questionID int64, wrongText string, now time.Time) (*store.MistakeRecord, error) {
	rec, err := s.repo.GetByUserQuestion(ctx, userID, questionID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		rec = &store.MistakeRecord{
			UserID:       userID,
			QuestionID:   questionID,
			WrongAnswer:  wrongText,
			ErrorCount:   1,
			ReviewStage:  0,
			NextReviewAt: NextAfterMiss(now),
			CreatedAt:    now,
		}
		if err := s.repo.Create(ctx, rec); err != nil {
			return nil, fmt.Errorf("record miss: %w", err)
		}
		return rec, nil
	case err != nil:
		return nil, fmt.Errorf("record miss: %w", err)
	}

	rec.WrongAnswer = wrongText
	rec.ErrorCount++
	rec.ReviewStage = 0
	rec.LastReviewedAt = &now
	rec.NextReviewAt = NextAfterMiss(now)
	if err := s.repo.Update(ctx, rec); err != nil {
		return nil, fmt.Errorf("record miss: %w", err)
	}
	return rec, nil
}

// RecordSuccess advances a record one stage past currentStage. Clearing
// the final ladder stage parks the record MasteredParkDays out instead of
// deleting it. The advance is computed from the caller's view of the
// stage, so a replay against the same stage lands on the same result.
func (s *Service) RecordSuccess(ctx context.Context, mistakeID int64, currentStage int, now time.Time) error {
	rec, err := s.repo.GetByID(ctx, mistakeID)
	if err != nil {
		return fmt.Errorf("record success: %w", err)
	}

	nextStage, nextReview := NextAfterSuccess(currentStage, now)
	rec.ReviewStage = nextStage
	rec.LastReviewedAt = &now
	rec.NextReviewAt = nextReview
	if err := s.repo.Update(ctx, rec); err != nil {
		return fmt.Errorf("record success: %w", err)
	}
	return nil
}

// DueMistakes returns the learner's due records joined with question
// content, oldest due first. Records whose question no longer resolves
// are filtered out by the store. An empty result means nothing to review.
func (s *Service) DueMistakes(ctx context.Context, userID string, now time.Time) ([]*store.DueMistake, error) {
	due, err := s.repo.Due(ctx, userID, now)
	if err != nil {
		return nil, fmt.Errorf("due mistakes: %w", err)
	}
	return due, nil
}
