package symbols

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/wenqi/pindrill/internal/store"
)

type mockRepo struct {
	records map[string]*store.SymbolProgress // keyed by userID+"/"+symbolID
	nextID  int64
	failAll bool
}

var errStorage = errors.New("storage failed")

func newMockRepo() *mockRepo {
	return &mockRepo{records: make(map[string]*store.SymbolProgress), nextID: 1}
}

func (m *mockRepo) key(userID, symbolID string) string { return userID + "/" + symbolID }

func (m *mockRepo) Get(_ context.Context, userID, symbolID string) (*store.SymbolProgress, error) {
	if m.failAll {
		return nil, errStorage
	}
	r, ok := m.records[m.key(userID, symbolID)]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *mockRepo) Create(_ context.Context, p *store.SymbolProgress) error {
	if m.failAll {
		return errStorage
	}
	p.ID = m.nextID
	m.nextID++
	cp := *p
	m.records[m.key(p.UserID, p.SymbolID)] = &cp
	return nil
}

func (m *mockRepo) Update(_ context.Context, p *store.SymbolProgress) error {
	if m.failAll {
		return errStorage
	}
	k := m.key(p.UserID, p.SymbolID)
	if _, ok := m.records[k]; !ok {
		return store.ErrNotFound
	}
	cp := *p
	m.records[k] = &cp
	return nil
}

func (m *mockRepo) DueOrUnmastered(_ context.Context, userID string, now time.Time, limit int) ([]*store.SymbolProgress, error) {
	if m.failAll {
		return nil, errStorage
	}
	var out []*store.SymbolProgress
	for _, r := range m.records {
		if r.UserID != userID {
			continue
		}
		if !r.IsMastered || !r.NextReviewAt.After(now) {
			cp := *r
			out = append(out, &cp)
		}
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

func TestRecordStudyOutcome_CreatesOnce(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	if err := svc.RecordStudyOutcome(ctx, "u1", "zh", true, now); err != nil {
		t.Fatalf("RecordStudyOutcome: %v", err)
	}
	rec, err := repo.Get(ctx, "u1", "zh")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.StudyCount != 1 || !rec.IsMastered || rec.MasteryLevel != 1 {
		t.Errorf("after create: %+v", rec)
	}
	if !rec.NextReviewAt.Equal(now.AddDate(0, 0, 3)) {
		t.Errorf("NextReviewAt = %v, want +3d", rec.NextReviewAt)
	}

	// A second outcome updates the same logical record.
	later := now.AddDate(0, 0, 3)
	if err := svc.RecordStudyOutcome(ctx, "u1", "zh", false, later); err != nil {
		t.Fatalf("RecordStudyOutcome: %v", err)
	}
	if len(repo.records) != 1 {
		t.Fatalf("records = %d, want 1 (no duplicates)", len(repo.records))
	}
	rec, _ = repo.Get(ctx, "u1", "zh")
	if rec.StudyCount != 2 {
		t.Errorf("StudyCount = %d, want 2", rec.StudyCount)
	}
	if rec.IsMastered {
		t.Error("IsMastered should be overwritten to false")
	}
	if rec.MasteryLevel != 0 {
		t.Errorf("MasteryLevel = %d, want 0", rec.MasteryLevel)
	}
	if !rec.NextReviewAt.Equal(later.AddDate(0, 0, 1)) {
		t.Errorf("NextReviewAt = %v, want +1d", rec.NextReviewAt)
	}
}

func TestRecordStudyOutcome_FirstMissStartsAtZero(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	if err := svc.RecordStudyOutcome(context.Background(), "u1", "ai", false, now); err != nil {
		t.Fatalf("RecordStudyOutcome: %v", err)
	}
	rec, _ := repo.Get(context.Background(), "u1", "ai")
	if rec.MasteryLevel != 0 || rec.IsMastered {
		t.Errorf("after first miss: %+v", rec)
	}
}

func TestRecordStudyOutcome_ReportsStorageFailure(t *testing.T) {
	repo := newMockRepo()
	repo.failAll = true
	svc := NewService(repo)

	err := svc.RecordStudyOutcome(context.Background(), "u1", "zh", true, time.Now())
	if !errors.Is(err, errStorage) {
		t.Errorf("err = %v, want wrapped storage error", err)
	}
}

func TestDueOrUnmastered_JoinsInventoryAndDropsUnknown(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	if err := svc.RecordStudyOutcome(ctx, "u1", "zh", false, now); err != nil {
		t.Fatalf("seed: %v", err)
	}
	// A record for a symbol that left the inventory.
	repo.records["u1/ghost"] = &store.SymbolProgress{
		UserID: "u1", SymbolID: "ghost", StudyCount: 1,
		LastStudiedAt: now, NextReviewAt: now,
	}

	cards, err := svc.DueOrUnmastered(ctx, "u1", now, 0)
	if err != nil {
		t.Fatalf("DueOrUnmastered: %v", err)
	}
	if len(cards) != 1 {
		t.Fatalf("cards = %d, want 1", len(cards))
	}
	if cards[0].Symbol.ID != "zh" || cards[0].Symbol.Mnemonic == "" {
		t.Errorf("card = %+v, want joined zh metadata", cards[0].Symbol)
	}
}

func TestDueOrUnmastered_EmptyIsValid(t *testing.T) {
	svc := NewService(newMockRepo())
	cards, err := svc.DueOrUnmastered(context.Background(), "u1", time.Now(), 0)
	if err != nil {
		t.Fatalf("DueOrUnmastered: %v", err)
	}
	if len(cards) != 0 {
		t.Errorf("cards = %d, want 0", len(cards))
	}
}
