// Package mistakes schedules review of questions a learner has missed,
// using a fixed Ebbinghaus-style interval ladder.
package mistakes

import "time"

// LadderMinutes is the fixed review interval ladder, indexed by review
// stage: 5 min, 30 min, 12 h, 1 day, 2 days, 4 days, 7 days, 15 days.
var LadderMinutes = []int{5, 30, 720, 1440, 2880, 5760, 10080, 21600}

// MasteredParkDays is the parking interval applied once a record clears
// the whole ladder. Mastered items are pushed far out, never deleted.
const MasteredParkDays = 30

// IntervalAt returns the ladder interval for a stage. Stages at or past
// the end of the ladder get the parking interval.
func IntervalAt(stage int) time.Duration {
	if stage >= len(LadderMinutes) {
		return MasteredParkDays * 24 * time.Hour
	}
	if stage < 0 {
		stage = 0
	}
	return time.Duration(LadderMinutes[stage]) * time.Minute
}

// IsMastered reports whether a stage is past the end of the ladder.
func IsMastered(stage int) bool {
	return stage >= len(LadderMinutes)
}

// NextAfterSuccess computes the stage and review time following a
// successful review at currentStage.
func NextAfterSuccess(currentStage int, now time.Time) (nextStage int, nextReview time.Time) {
	nextStage = currentStage + 1
	return nextStage, now.Add(IntervalAt(nextStage))
}

// NextAfterMiss computes the review time following a miss. The stage
// always resets to 0 regardless of prior progress.
func NextAfterMiss(now time.Time) time.Time {
	return now.Add(IntervalAt(0))
}
