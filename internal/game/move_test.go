package game

import (
	"testing"

	"github.com/ayusman/janken/internal/gesture"
)

func TestResolve_AllPairs(t *testing.T) {
	tests := []struct {
		human    Move
		opponent Move
		want     Outcome
	}{
		{Rock, Rock, Draw},
		{Rock, Paper, Lose},
		{Rock, Scissors, Win},
		{Paper, Rock, Win},
		{Paper, Paper, Draw},
		{Paper, Scissors, Lose},
		{Scissors, Rock, Lose},
		{Scissors, Paper, Win},
		{Scissors, Scissors, Draw},
	}

	for _, tt := range tests {
		t.Run(string(tt.human)+" vs "+string(tt.opponent), func(t *testing.T) {
			if got := Resolve(tt.human, tt.opponent); got != tt.want {
				t.Errorf("Resolve(%s, %s) = %s, want %s", tt.human, tt.opponent, got, tt.want)
			}
		})
	}
}

func TestResolve_SymmetricInverse(t *testing.T) {
	for _, a := range Moves {
		for _, b := range Moves {
			forward := Resolve(a, b)
			backward := Resolve(b, a)

			if forward == Win && backward != Lose {
				t.Errorf("Resolve(%s, %s) = Win but Resolve(%s, %s) = %s", a, b, b, a, backward)
			}
			if forward == Draw && backward != Draw {
				t.Errorf("Resolve(%s, %s) = Draw but Resolve(%s, %s) = %s", a, b, b, a, backward)
			}
		}
	}
}

func TestMoveFromGesture(t *testing.T) {
	tests := []struct {
		g      gesture.Gesture
		want   Move
		wantOK bool
	}{
		{gesture.Rock, Rock, true},
		{gesture.Paper, Paper, true},
		{gesture.Scissors, Scissors, true},
		{gesture.None, "", false},
	}

	for _, tt := range tests {
		got, ok := MoveFromGesture(tt.g)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("MoveFromGesture(%s) = (%s, %v), want (%s, %v)", tt.g, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestRandomGenerator_Uniform(t *testing.T) {
	gen := NewSeededGenerator(1)

	const draws = 3000
	counts := make(map[Move]int)
	for i := 0; i < draws; i++ {
		counts[gen.Next()]++
	}

	// Each move should land near draws/3; allow a generous band
	for _, m := range Moves {
		if counts[m] < 800 || counts[m] > 1200 {
			t.Errorf("move %s drawn %d times out of %d, expected roughly uniform", m, counts[m], draws)
		}
	}
}
