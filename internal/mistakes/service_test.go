package mistakes

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/wenqi/pindrill/internal/store"
)

// mockRepo is an in-memory Repo for tests.
type mockRepo struct {
	records map[int64]*store.MistakeRecord
	nextID  int64
	failAll bool
}

var errStorage = errors.New("storage failed")

func newMockRepo() *mockRepo {
	return &mockRepo{records: make(map[int64]*store.MistakeRecord), nextID: 1}
}

func (m *mockRepo) GetByUserQuestion(_ context.Context, userID string, questionID int64) (*store.MistakeRecord, error) {
	if m.failAll {
		return nil, errStorage
	}
	for _, r := range m.records {
		if r.UserID == userID && r.QuestionID == questionID {
			cp := *r
			return &cp, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *mockRepo) GetByID(_ context.Context, id int64) (*store.MistakeRecord, error) {
	if m.failAll {
		return nil, errStorage
	}
	r, ok := m.records[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *r
	return &cp, nil
}

func (m *mockRepo) Create(_ context.Context, rec *store.MistakeRecord) error {
	if m.failAll {
		return errStorage
	}
	rec.ID = m.nextID
	m.nextID++
	cp := *rec
	m.records[rec.ID] = &cp
	return nil
}

func (m *mockRepo) Update(_ context.Context, rec *store.MistakeRecord) error {
	if m.failAll {
		return errStorage
	}
	if _, ok := m.records[rec.ID]; !ok {
		return store.ErrNotFound
	}
	cp := *rec
	m.records[rec.ID] = &cp
	return nil
}

func (m *mockRepo) Due(_ context.Context, userID string, now time.Time) ([]*store.DueMistake, error) {
	if m.failAll {
		return nil, errStorage
	}
	var due []*store.DueMistake
	for _, r := range m.records {
		if r.UserID == userID && !r.NextReviewAt.After(now) {
			due = append(due, &store.DueMistake{MistakeRecord: *r})
		}
	}
	return due, nil
}

func TestRecordMiss_CreatesAtStageZero(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	rec, err := svc.RecordMiss(context.Background(), "u1", 42, "ni2 hao3", now)
	if err != nil {
		t.Fatalf("RecordMiss: %v", err)
	}
	if rec.ReviewStage != 0 || rec.ErrorCount != 1 {
		t.Errorf("stage/count = %d/%d, want 0/1", rec.ReviewStage, rec.ErrorCount)
	}
	if rec.WrongAnswer != "ni2 hao3" {
		t.Errorf("WrongAnswer = %q", rec.WrongAnswer)
	}
	if !rec.NextReviewAt.Equal(now.Add(5 * time.Minute)) {
		t.Errorf("NextReviewAt = %v, want now+5m", rec.NextReviewAt)
	}
	if rec.LastReviewedAt != nil {
		t.Errorf("LastReviewedAt = %v, want nil on first miss", rec.LastReviewedAt)
	}
}

func TestRecordMiss_ResetsStage(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	ctx := context.Background()
	t0 := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	rec, err := svc.RecordMiss(ctx, "u1", 42, "wrong1", t0)
	if err != nil {
		t.Fatalf("RecordMiss: %v", err)
	}

	// Progress the record partway up the ladder.
	if err := svc.RecordSuccess(ctx, rec.ID, 0, t0.Add(time.Hour)); err != nil {
		t.Fatalf("RecordSuccess: %v", err)
	}
	if err := svc.RecordSuccess(ctx, rec.ID, 1, t0.Add(2*time.Hour)); err != nil {
		t.Fatalf("RecordSuccess: %v", err)
	}
	mid, _ := repo.GetByID(ctx, rec.ID)
	if mid.ReviewStage != 2 {
		t.Fatalf("ReviewStage = %d, want 2", mid.ReviewStage)
	}

	// A new miss resets everything back to the bottom of the ladder.
	t1 := t0.Add(3 * time.Hour)
	again, err := svc.RecordMiss(ctx, "u1", 42, "wrong2", t1)
	if err != nil {
		t.Fatalf("RecordMiss: %v", err)
	}
	if again.ID != rec.ID {
		t.Errorf("created duplicate record: %d != %d", again.ID, rec.ID)
	}
	if again.ReviewStage != 0 {
		t.Errorf("ReviewStage = %d, want 0 after reset", again.ReviewStage)
	}
	if again.ErrorCount != 2 {
		t.Errorf("ErrorCount = %d, want 2", again.ErrorCount)
	}
	if again.WrongAnswer != "wrong2" {
		t.Errorf("WrongAnswer = %q, want latest submission", again.WrongAnswer)
	}
	if !again.NextReviewAt.Equal(t1.Add(5 * time.Minute)) {
		t.Errorf("NextReviewAt = %v, want t1+5m", again.NextReviewAt)
	}
}

func TestRecordSuccess_AdvancesThroughLadder(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	ctx := context.Background()
	t0 := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	rec, err := svc.RecordMiss(ctx, "u1", 7, "x", t0)
	if err != nil {
		t.Fatalf("RecordMiss: %v", err)
	}

	// Three successful reviews, each at its computed due time.
	now := rec.NextReviewAt
	for stage := 0; stage < 3; stage++ {
		cur, _ := repo.GetByID(ctx, rec.ID)
		now = cur.NextReviewAt
		if err := svc.RecordSuccess(ctx, rec.ID, cur.ReviewStage, now); err != nil {
			t.Fatalf("RecordSuccess at stage %d: %v", stage, err)
		}
	}

	final, _ := repo.GetByID(ctx, rec.ID)
	if final.ReviewStage != 3 {
		t.Errorf("ReviewStage = %d, want 3", final.ReviewStage)
	}
	want := now.Add(1440 * time.Minute)
	if !final.NextReviewAt.Equal(want) {
		t.Errorf("NextReviewAt = %v, want %v", final.NextReviewAt, want)
	}
}

func TestRecordSuccess_ParksMastered(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	rec, err := svc.RecordMiss(ctx, "u1", 7, "x", now)
	if err != nil {
		t.Fatalf("RecordMiss: %v", err)
	}

	if err := svc.RecordSuccess(ctx, rec.ID, 7, now); err != nil {
		t.Fatalf("RecordSuccess: %v", err)
	}

	final, _ := repo.GetByID(ctx, rec.ID)
	if final.ReviewStage != 8 {
		t.Errorf("ReviewStage = %d, want 8", final.ReviewStage)
	}
	if !final.NextReviewAt.Equal(now.Add(30 * 24 * time.Hour)) {
		t.Errorf("NextReviewAt = %v, want now+30d", final.NextReviewAt)
	}
}

func TestRecordMiss_PropagatesStorageFailure(t *testing.T) {
	repo := newMockRepo()
	repo.failAll = true
	svc := NewService(repo)

	_, err := svc.RecordMiss(context.Background(), "u1", 1, "x", time.Now())
	if !errors.Is(err, errStorage) {
		t.Errorf("err = %v, want wrapped storage error", err)
	}
}
