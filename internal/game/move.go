// Package game implements the Janken match: moves, outcome resolution,
// the opponent, and the round state machine.
package game

import (
	"math/rand"
	"time"

	"github.com/ayusman/janken/internal/gesture"
)

// Move is a committed rock/paper/scissors choice. Unlike a Gesture it can
// never be "none"; only moves are scored.
type Move string

const (
	Rock     Move = "rock"
	Paper    Move = "paper"
	Scissors Move = "scissors"
)

// Moves lists all valid moves in a fixed order.
var Moves = [3]Move{Rock, Paper, Scissors}

// Outcome is the result of one round from the human player's perspective.
type Outcome string

const (
	Win  Outcome = "win"
	Lose Outcome = "lose"
	Draw Outcome = "draw"
)

// beats maps each move to the move it defeats.
var beats = map[Move]Move{
	Rock:     Scissors,
	Paper:    Rock,
	Scissors: Paper,
}

// Resolve computes the outcome of a round. It is total over all nine
// move pairs.
func Resolve(human, opponent Move) Outcome {
	switch {
	case human == opponent:
		return Draw
	case beats[human] == opponent:
		return Win
	default:
		return Lose
	}
}

// MoveFromGesture converts a classified gesture into a committed move.
// The second return value is false for None.
func MoveFromGesture(g gesture.Gesture) (Move, bool) {
	switch g {
	case gesture.Rock:
		return Rock, true
	case gesture.Paper:
		return Paper, true
	case gesture.Scissors:
		return Scissors, true
	default:
		return "", false
	}
}

// Generator produces the opponent's move for a round.
type Generator interface {
	// Next returns one move. Called at most once per round.
	Next() Move
}

// randomGenerator picks moves uniformly and independently.
type randomGenerator struct {
	rng *rand.Rand
}

// NewRandomGenerator creates a Generator with a time-based seed.
func NewRandomGenerator() Generator {
	return &randomGenerator{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewSeededGenerator creates a Generator with a fixed seed for tests.
func NewSeededGenerator(seed int64) Generator {
	return &randomGenerator{
		rng: rand.New(rand.NewSource(seed)),
	}
}

func (g *randomGenerator) Next() Move {
	return Moves[g.rng.Intn(len(Moves))]
}
