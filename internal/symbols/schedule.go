// Package symbols tracks per-symbol pinyin mastery with a flat two-tier
// review interval. The symbol set is a small closed inventory drilled as
// flashcards, so it gets a coarser schedule than the mistake ladder.
package symbols

import "time"

// Review intervals in calendar days.
const (
	MasteredIntervalDays   = 3
	UnmasteredIntervalDays = 1
)

// MaxMasteryLevel caps the cumulative confidence counter.
const MaxMasteryLevel = 5

// NextReview computes the next review time from a study outcome.
func NextReview(mastered bool, now time.Time) time.Time {
	days := UnmasteredIntervalDays
	if mastered {
		days = MasteredIntervalDays
	}
	return now.AddDate(0, 0, days)
}

// AdvanceLevel moves the mastery level one step in the outcome's
// direction, clamped to [0, MaxMasteryLevel].
func AdvanceLevel(level int, remembered bool) int {
	if remembered {
		level++
	} else {
		level--
	}
	if level < 0 {
		return 0
	}
	if level > MaxMasteryLevel {
		return MaxMasteryLevel
	}
	return level
}
