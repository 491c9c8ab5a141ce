// Package gesture classifies hand landmarks into the game's hand shapes.
package gesture

import (
	"math"

	"github.com/ayusman/janken/internal/detector"
)

// Gesture is the classifier output category.
type Gesture string

const (
	// Rock is a closed fist.
	Rock Gesture = "rock"
	// Paper is an open palm.
	Paper Gesture = "paper"
	// Scissors is index and middle fingers extended.
	Scissors Gesture = "scissors"
	// None means no hand was detected or the shape is ambiguous.
	None Gesture = "none"
)

// ThumbSplayRatio is the minimum ratio of thumb-tip-to-wrist over
// thumb-MCP-to-wrist horizontal distance for the thumb to count as
// extended. Vertical checks don't work for the thumb because it
// extends sideways.
const ThumbSplayRatio = 1.2

// fingers lists tip and PIP landmark indices for the four non-thumb fingers:
// index, middle, ring, pinky.
var fingers = [4][2]int{
	{detector.IndexTip, detector.IndexPIP},
	{detector.MiddleTip, detector.MiddlePIP},
	{detector.RingTip, detector.RingPIP},
	{detector.PinkyTip, detector.PinkyPIP},
}

// Classify maps one hand's landmarks to a Gesture. A nil hand classifies
// as None. The function is pure and safe to call on every frame.
//
// A finger counts as extended when its tip is strictly above its PIP
// joint (smaller y, since y grows downward). The thumb counts as
// extended when its tip is splayed horizontally past ThumbSplayRatio
// times the thumb MCP's distance from the wrist.
func Classify(hand *detector.HandLandmarks) Gesture {
	if hand == nil {
		return None
	}

	var extended [4]bool
	extendedCount := 0
	for i, f := range fingers {
		if hand.Points[f[0]].Y < hand.Points[f[1]].Y {
			extended[i] = true
			extendedCount++
		}
	}

	wristX := hand.Points[detector.Wrist].X
	tipDist := math.Abs(hand.Points[detector.ThumbTip].X - wristX)
	mcpDist := math.Abs(hand.Points[detector.ThumbMCP].X - wristX)
	thumbExtended := tipDist > ThumbSplayRatio*mcpDist

	index, middle, ring, pinky := extended[0], extended[1], extended[2], extended[3]

	switch {
	case extendedCount >= 3 && (thumbExtended || extendedCount == 4):
		return Paper
	case index && middle && !ring && !pinky:
		return Scissors
	case extendedCount <= 1 && !index && !middle:
		return Rock
	default:
		return None
	}
}
