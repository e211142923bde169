// Package session manages conversation session lifecycle: boundary
// detection under a distributed lock, archival, and the soft/hard
// reset semantics.
package session

import "time"

// Decision is a boundary-check outcome.
type Decision string

const (
	// Continue keeps the current session.
	Continue Decision = "continue"
	// SoftReset archives the session and opens a new one, injecting
	// the previous session's summary as continuity context.
	SoftReset Decision = "soft"
	// HardReset archives the session and opens a new one carrying only
	// patient-profile safety data.
	HardReset Decision = "hard"
)

// Signals are the boundary inputs gathered before scoring.
type Signals struct {
	// Gap since the session's last activity.
	Gap time.Duration
	// TopicDrift in [0,1] between the new message and the episode.
	TopicDrift float64
	// HardCorrection marks a detected "no, I meant ..." correction.
	HardCorrection bool
	// OutcomeEvent marks a completed outcome (booked, cancelled).
	OutcomeEvent bool
	// ExplicitReset marks a meta-reset phrase in the message.
	ExplicitReset bool
}

const (
	hardThreshold = 1.0
	softThreshold = 0.5
)

// gapRows are the gap thresholds and their weights. A gap scores the
// strongest satisfied row, so a longer silence never scores below a
// shorter one.
var gapRows = []struct {
	at     time.Duration
	weight float64
}{
	{72 * time.Hour, 1.0},
	{48 * time.Hour, 0.6},
	{24 * time.Hour, 0.3},
	{4 * time.Hour, 0.5},
}

func gapScore(gap time.Duration) float64 {
	score := 0.0
	for _, row := range gapRows {
		if gap >= row.at && row.weight > score {
			score = row.weight
		}
	}
	return score
}

// SplitScore computes the weighted boundary score.
func SplitScore(s Signals) float64 {
	score := gapScore(s.Gap)

	switch {
	case s.TopicDrift > 0.7:
		score += 0.8
	case s.TopicDrift > 0.4:
		score += 0.4
	}

	if s.HardCorrection {
		score += 0.7
	}
	if s.OutcomeEvent {
		score += 1.0
	}
	if s.ExplicitReset {
		score += 1.0
	}
	return score
}

// Decide maps a signal set to a boundary decision.
func Decide(s Signals) Decision {
	score := SplitScore(s)
	switch {
	case score >= hardThreshold:
		return HardReset
	case score >= softThreshold:
		return SoftReset
	default:
		return Continue
	}
}
