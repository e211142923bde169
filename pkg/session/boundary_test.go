package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSplitScore(t *testing.T) {
	tests := []struct {
		name    string
		signals Signals
		want    float64
	}{
		{"no signals", Signals{}, 0},
		{"gap 72h", Signals{Gap: 72 * time.Hour}, 1.0},
		{"gap 48h", Signals{Gap: 50 * time.Hour}, 0.6},
		{"gap 24h", Signals{Gap: 30 * time.Hour}, 0.5},
		{"gap 4h", Signals{Gap: 5 * time.Hour}, 0.5},
		{"gap below 4h", Signals{Gap: 3 * time.Hour}, 0},
		{"high drift", Signals{TopicDrift: 0.8}, 0.8},
		{"mid drift", Signals{TopicDrift: 0.5}, 0.4},
		{"low drift", Signals{TopicDrift: 0.3}, 0},
		{"correction", Signals{HardCorrection: true}, 0.7},
		{"outcome", Signals{OutcomeEvent: true}, 1.0},
		{"explicit reset", Signals{ExplicitReset: true}, 1.0},
		{"gap plus drift stack", Signals{Gap: 5 * time.Hour, TopicDrift: 0.5}, 0.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, SplitScore(tt.signals), 1e-9)
		})
	}
}

func TestSplitScore_GapNeverDropsAsSilenceGrows(t *testing.T) {
	gaps := []time.Duration{
		time.Hour, 4 * time.Hour, 23 * time.Hour, 24 * time.Hour,
		30 * time.Hour, 48 * time.Hour, 60 * time.Hour, 72 * time.Hour, 200 * time.Hour,
	}
	prev := 0.0
	for _, gap := range gaps {
		got := SplitScore(Signals{Gap: gap})
		assert.GreaterOrEqual(t, got, prev, "gap %s", gap)
		prev = got
	}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		name    string
		signals Signals
		want    Decision
	}{
		{"fresh activity continues", Signals{Gap: time.Hour}, Continue},
		{"five hour gap is soft", Signals{Gap: 5 * time.Hour}, SoftReset},
		{"thirty hour gap is soft", Signals{Gap: 30 * time.Hour}, SoftReset},
		{"fifty hour gap is soft", Signals{Gap: 50 * time.Hour}, SoftReset},
		{"three day gap is hard", Signals{Gap: 73 * time.Hour}, HardReset},
		{"outcome alone is hard", Signals{OutcomeEvent: true}, HardReset},
		{"explicit reset is hard", Signals{ExplicitReset: true}, HardReset},
		{"correction alone is soft", Signals{HardCorrection: true}, SoftReset},
		{"drift stacks into hard", Signals{Gap: 50 * time.Hour, TopicDrift: 0.5}, HardReset},
		{"mid drift alone continues", Signals{TopicDrift: 0.5}, Continue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decide(tt.signals))
		})
	}
}
