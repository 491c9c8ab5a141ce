package game

import (
	"time"

	"github.com/google/uuid"
)

// HistoryEntry records one scored round.
type HistoryEntry struct {
	ID       string    `json:"id"`
	Round    int       `json:"round"`
	Human    Move      `json:"human"`
	Opponent Move      `json:"opponent"`
	Outcome  Outcome   `json:"outcome"`
	PlayedAt time.Time `json:"played_at"`
}

// MatchState is the cumulative score, round counter, and history of one
// match. It is owned by the Referee; all mutation happens there.
type MatchState struct {
	HumanScore    int
	OpponentScore int
	Round         int
	// History holds scored rounds, most recent first.
	History []HistoryEntry
}

// NewMatchState returns a fresh match: score 0/0, round 1, empty history.
func NewMatchState() *MatchState {
	return &MatchState{Round: 1}
}

// record appends a scored round: updates scores, prepends the history
// entry (stamped with the current round number), and advances the round
// counter. Rounds that sampled no gesture never reach here, so they
// leave score, history, and counter untouched.
func (m *MatchState) record(human, opponent Move, outcome Outcome, now time.Time) HistoryEntry {
	entry := HistoryEntry{
		ID:       uuid.NewString(),
		Round:    m.Round,
		Human:    human,
		Opponent: opponent,
		Outcome:  outcome,
		PlayedAt: now,
	}

	switch outcome {
	case Win:
		m.HumanScore++
	case Lose:
		m.OpponentScore++
	}

	m.History = append([]HistoryEntry{entry}, m.History...)
	m.Round++

	return entry
}

// reset restores the initial state.
func (m *MatchState) reset() {
	m.HumanScore = 0
	m.OpponentScore = 0
	m.Round = 1
	m.History = nil
}

// Snapshot is an immutable copy of the match state for presentation.
type Snapshot struct {
	HumanScore    int            `json:"human_score"`
	OpponentScore int            `json:"opponent_score"`
	Round         int            `json:"round"`
	History       []HistoryEntry `json:"history"`
}

// snapshot copies the current state.
func (m *MatchState) snapshot() Snapshot {
	history := make([]HistoryEntry, len(m.History))
	copy(history, m.History)

	return Snapshot{
		HumanScore:    m.HumanScore,
		OpponentScore: m.OpponentScore,
		Round:         m.Round,
		History:       history,
	}
}
