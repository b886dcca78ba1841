package symbols

import (
	"testing"
	"time"
)

func TestNextReview_TwoTier(t *testing.T) {
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	if got := NextReview(true, now); !got.Equal(now.AddDate(0, 0, 3)) {
		t.Errorf("mastered next = %v, want +3d", got)
	}
	if got := NextReview(false, now); !got.Equal(now.AddDate(0, 0, 1)) {
		t.Errorf("unmastered next = %v, want +1d", got)
	}
}

func TestAdvanceLevel_Clamps(t *testing.T) {
	tests := []struct {
		level      int
		remembered bool
		want       int
	}{
		{0, true, 1},
		{4, true, 5},
		{5, true, 5}, // never exceeds the cap
		{5, false, 4},
		{1, false, 0},
		{0, false, 0}, // never goes negative
	}
	for _, tt := range tests {
		if got := AdvanceLevel(tt.level, tt.remembered); got != tt.want {
			t.Errorf("AdvanceLevel(%d, %v) = %d, want %d", tt.level, tt.remembered, got, tt.want)
		}
	}
}

func TestInventory_Size(t *testing.T) {
	var initials, finals, wholes int
	for _, s := range Inventory {
		switch s.Category {
		case CategoryInitial:
			initials++
		case CategoryFinal:
			finals++
		case CategoryWhole:
			wholes++
		}
	}
	if initials != 23 || finals != 24 || wholes != 16 {
		t.Errorf("inventory = %d/%d/%d, want 23 initials, 24 finals, 16 wholes",
			initials, finals, wholes)
	}
}

func TestInventory_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool, len(Inventory))
	for _, s := range Inventory {
		if seen[s.ID] {
			t.Errorf("duplicate symbol ID %q", s.ID)
		}
		seen[s.ID] = true
	}
}

func TestLookup(t *testing.T) {
	s, ok := Lookup("zh")
	if !ok {
		t.Fatal("expected zh in inventory")
	}
	if s.Category != CategoryInitial {
		t.Errorf("zh category = %s, want initial", s.Category)
	}
	if _, ok := Lookup("xyz"); ok {
		t.Error("xyz should not resolve")
	}
}
