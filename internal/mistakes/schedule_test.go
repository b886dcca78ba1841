package mistakes

import (
	"testing"
	"time"
)

func TestIntervalAt_Ladder(t *testing.T) {
	want := []time.Duration{
		5 * time.Minute,
		30 * time.Minute,
		12 * time.Hour,
		24 * time.Hour,
		48 * time.Hour,
		96 * time.Hour,
		7 * 24 * time.Hour,
		15 * 24 * time.Hour,
	}
	for stage, w := range want {
		if got := IntervalAt(stage); got != w {
			t.Errorf("IntervalAt(%d) = %v, want %v", stage, got, w)
		}
	}
}

func TestIntervalAt_PastLadderParks(t *testing.T) {
	park := 30 * 24 * time.Hour
	if got := IntervalAt(len(LadderMinutes)); got != park {
		t.Errorf("IntervalAt(%d) = %v, want %v", len(LadderMinutes), got, park)
	}
	if got := IntervalAt(100); got != park {
		t.Errorf("IntervalAt(100) = %v, want %v", got, park)
	}
}

func TestNextAfterSuccess_Monotonic(t *testing.T) {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	for stage := 0; stage <= 6; stage++ {
		nextStage, next := NextAfterSuccess(stage, now)
		if nextStage != stage+1 {
			t.Errorf("stage %d: nextStage = %d, want %d", stage, nextStage, stage+1)
		}
		want := now.Add(time.Duration(LadderMinutes[stage+1]) * time.Minute)
		if !next.Equal(want) {
			t.Errorf("stage %d: next = %v, want %v", stage, next, want)
		}
	}
}

func TestNextAfterSuccess_FinalStageParks(t *testing.T) {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	nextStage, next := NextAfterSuccess(7, now)
	if nextStage != 8 {
		t.Errorf("nextStage = %d, want 8", nextStage)
	}
	if !IsMastered(nextStage) {
		t.Error("stage 8 should count as mastered")
	}
	want := now.Add(30 * 24 * time.Hour)
	if !next.Equal(want) {
		t.Errorf("next = %v, want %v", next, want)
	}
}

func TestNextAfterMiss(t *testing.T) {
	now := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	if got := NextAfterMiss(now); !got.Equal(now.Add(5 * time.Minute)) {
		t.Errorf("NextAfterMiss = %v, want %v", got, now.Add(5*time.Minute))
	}
}
