package symbols

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/wenqi/pindrill/internal/store"
)

// DefaultDueLimit caps the flashcard batch handed to a drill session.
const DefaultDueLimit = 20

// Repo is the persistence surface the mastery tracker needs.
// *store.SymbolProgressRepo satisfies it; tests supply mocks.
type Repo interface {
	Get(ctx context.Context, userID, symbolID string) (*store.SymbolProgress, error)
	Create(ctx context.Context, p *store.SymbolProgress) error
	Update(ctx context.Context, p *store.SymbolProgress) error
	DueOrUnmastered(ctx context.Context, userID string, now time.Time, limit int) ([]*store.SymbolProgress, error)
}

// Card is a progress record joined with its inventory metadata,
// ready for flashcard display.
type Card struct {
	Progress *store.SymbolProgress
	Symbol   Symbol
}

// Service tracks symbol mastery. Like the mistake scheduler it is a
// stateless transformation over the fetched record.
type Service struct {
	repo Repo
}

// NewService creates a symbol mastery tracker over the given repo.
func NewService(repo Repo) *Service {
	return &Service{repo: repo}
}

// RecordStudyOutcome registers one flashcard study action. The first
// action creates the record; later ones increment the study count,
// overwrite the mastered flag, and step the mastery level. The next
// review lands 3 days out when remembered, 1 day when not. A nil return
// means the write persisted; callers must check it.
func (s *Service) RecordStudyOutcome(ctx context.Context, userID, symbolID string, remembered bool, now time.Time) error {
	rec, err := s.repo.Get(ctx, userID, symbolID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		level := 0
		if remembered {
			level = 1
		}
		rec = &store.SymbolProgress{
			UserID:        userID,
			SymbolID:      symbolID,
			StudyCount:    1,
			IsMastered:    remembered,
			MasteryLevel:  level,
			LastStudiedAt: now,
			NextReviewAt:  NextReview(remembered, now),
		}
		if err := s.repo.Create(ctx, rec); err != nil {
			return fmt.Errorf("record study outcome: %w", err)
		}
		return nil
	case err != nil:
		return fmt.Errorf("record study outcome: %w", err)
	}

	rec.StudyCount++
	rec.IsMastered = remembered
	rec.MasteryLevel = AdvanceLevel(rec.MasteryLevel, remembered)
	rec.LastStudiedAt = now
	rec.NextReviewAt = NextReview(remembered, now)
	if err := s.repo.Update(ctx, rec); err != nil {
		return fmt.Errorf("record study outcome: %w", err)
	}
	return nil
}

// DueOrUnmastered returns flashcards that are unmastered or due, capped
// to limit (DefaultDueLimit when limit <= 0), joined with inventory
// metadata. Records for symbols no longer in the inventory are dropped.
// An empty result means nothing to review.
func (s *Service) DueOrUnmastered(ctx context.Context, userID string, now time.Time, limit int) ([]Card, error) {
	if limit <= 0 {
		limit = DefaultDueLimit
	}
	recs, err := s.repo.DueOrUnmastered(ctx, userID, now, limit)
	if err != nil {
		return nil, fmt.Errorf("due symbols: %w", err)
	}
	cards := make([]Card, 0, len(recs))
	for _, rec := range recs {
		sym, ok := Lookup(rec.SymbolID)
		if !ok {
			continue
		}
		cards = append(cards, Card{Progress: rec, Symbol: sym})
	}
	return cards, nil
}

// Unstudied returns inventory symbols the learner has no record for yet,
// capped to limit. Used by the drill command to introduce new symbols
// once the due queue runs dry.
func (s *Service) Unstudied(ctx context.Context, userID string, limit int) ([]Symbol, error) {
	var out []Symbol
	for _, sym := range Inventory {
		if limit > 0 && len(out) >= limit {
			break
		}
		_, err := s.repo.Get(ctx, userID, sym.ID)
		if errors.Is(err, store.ErrNotFound) {
			out = append(out, sym)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("unstudied symbols: %w", err)
		}
	}
	return out, nil
}
