package game

import (
	"testing"
	"time"
)

func TestMatchState_Record(t *testing.T) {
	m := NewMatchState()
	now := time.Now()

	e1 := m.record(Rock, Scissors, Win, now)
	e2 := m.record(Paper, Scissors, Lose, now)
	e3 := m.record(Rock, Rock, Draw, now)

	if e1.Round != 1 || e2.Round != 2 || e3.Round != 3 {
		t.Errorf("entry rounds = %d, %d, %d, want 1, 2, 3", e1.Round, e2.Round, e3.Round)
	}
	if m.Round != 4 {
		t.Errorf("round counter = %d, want 4", m.Round)
	}
	if m.HumanScore != 1 || m.OpponentScore != 1 {
		t.Errorf("score = %d/%d, want 1/1 (draw scores neither side)", m.HumanScore, m.OpponentScore)
	}

	// Most recent first
	if m.History[0].ID != e3.ID || m.History[2].ID != e1.ID {
		t.Error("history not ordered most recent first")
	}

	// Entry IDs are distinct
	if e1.ID == e2.ID || e2.ID == e3.ID || e1.ID == e3.ID {
		t.Error("history entry IDs collide")
	}
}

func TestMatchState_Reset(t *testing.T) {
	m := NewMatchState()
	m.record(Rock, Scissors, Win, time.Now())
	m.record(Scissors, Rock, Lose, time.Now())

	m.reset()

	if m.HumanScore != 0 || m.OpponentScore != 0 {
		t.Errorf("score = %d/%d, want 0/0", m.HumanScore, m.OpponentScore)
	}
	if m.Round != 1 {
		t.Errorf("round = %d, want 1", m.Round)
	}
	if len(m.History) != 0 {
		t.Errorf("history length = %d, want 0", len(m.History))
	}
}

func TestMatchState_SnapshotIsolation(t *testing.T) {
	m := NewMatchState()
	m.record(Rock, Scissors, Win, time.Now())

	snap := m.snapshot()
	m.record(Paper, Rock, Win, time.Now())

	if len(snap.History) != 1 {
		t.Errorf("snapshot history length = %d, want 1 (unaffected by later rounds)", len(snap.History))
	}
	if snap.Round != 2 {
		t.Errorf("snapshot round = %d, want 2", snap.Round)
	}

	// Mutating the snapshot's history must not leak back
	snap.History[0].Outcome = Lose
	if m.History[len(m.History)-1].Outcome != Win {
		t.Error("snapshot shares backing storage with the match state")
	}
}
