package gesture

import (
	"testing"

	"github.com/ayusman/janken/internal/detector"
)

func TestClassify_PresetShapes(t *testing.T) {
	tests := []struct {
		name string
		hand detector.HandLandmarks
		want Gesture
	}{
		{"fist is rock", detector.RockLandmarks(), Rock},
		{"open palm is paper", detector.PaperLandmarks(), Paper},
		{"open palm with tucked thumb is paper", detector.TuckedThumbPaperLandmarks(), Paper},
		{"index and middle up is scissors", detector.ScissorsLandmarks(), Scissors},
		{"index only is no gesture", detector.PointLandmarks(), None},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(&tt.hand); got != tt.want {
				t.Errorf("Classify() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestClassify_NilHand(t *testing.T) {
	if got := Classify(nil); got != None {
		t.Errorf("Classify(nil) = %s, want %s", got, None)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	hand := detector.ScissorsLandmarks()

	first := Classify(&hand)
	for i := 0; i < 100; i++ {
		if got := Classify(&hand); got != first {
			t.Fatalf("Classify() = %s on call %d, want %s every time", got, i, first)
		}
	}
}

func TestClassify_ThumbSplay(t *testing.T) {
	t.Run("splayed thumb with three fingers is paper", func(t *testing.T) {
		// Open palm but with the pinky curled: extendedCount == 3, so the
		// paper rule needs the thumb
		hand := detector.PaperLandmarks()
		hand.Points[detector.PinkyTip] = detector.Point3D{X: 0.37, Y: 0.72, Z: 0.0}

		if got := Classify(&hand); got != Paper {
			t.Errorf("Classify() = %s, want %s", got, Paper)
		}
	})

	t.Run("tucked thumb with three fingers is no gesture", func(t *testing.T) {
		hand := detector.TuckedThumbPaperLandmarks()
		hand.Points[detector.PinkyTip] = detector.Point3D{X: 0.37, Y: 0.72, Z: 0.0}

		// Three fingers up, no thumb: not paper, not scissors (ring up),
		// not rock
		if got := Classify(&hand); got != None {
			t.Errorf("Classify() = %s, want %s", got, None)
		}
	})

	t.Run("splay ratio at the boundary is not extended", func(t *testing.T) {
		// Thumb tip exactly at 1.2x the MCP distance: the rule requires
		// strictly greater
		hand := detector.RockLandmarks()
		wristX := hand.Points[detector.Wrist].X
		mcpDist := hand.Points[detector.ThumbMCP].X - wristX
		hand.Points[detector.ThumbTip] = detector.Point3D{
			X: wristX + ThumbSplayRatio*mcpDist,
			Y: hand.Points[detector.ThumbTip].Y,
		}

		if got := Classify(&hand); got != Rock {
			t.Errorf("Classify() = %s, want %s", got, Rock)
		}
	})
}

func TestClassify_FingerBoundary(t *testing.T) {
	// A fingertip exactly level with its PIP joint does not count as
	// extended: extension requires tip strictly above
	hand := detector.ScissorsLandmarks()
	hand.Points[detector.MiddleTip] = hand.Points[detector.MiddlePIP]

	// Middle no longer extended: index-only, which matches nothing
	if got := Classify(&hand); got != None {
		t.Errorf("Classify() = %s, want %s", got, None)
	}
}

func TestClassify_Total(t *testing.T) {
	// Sweep a grid of degenerate hands; every input must produce one of
	// the four labels without panicking
	labels := map[Gesture]bool{Rock: true, Paper: true, Scissors: true, None: true}

	for i := 0; i < detector.NumLandmarks; i++ {
		hand := detector.HandLandmarks{}
		for j := 0; j < detector.NumLandmarks; j++ {
			hand.Points[j] = detector.Point3D{
				X: float64((i+j)%7) / 7.0,
				Y: float64((i*j)%5) / 5.0,
			}
		}

		if got := Classify(&hand); !labels[got] {
			t.Fatalf("Classify() produced unknown label %q", got)
		}
	}
}
