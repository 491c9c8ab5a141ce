package app

import (
	"encoding/json"
	"log"
	"time"

	"github.com/ayusman/janken/internal/detector"
	"github.com/ayusman/janken/internal/gesture"
	"github.com/ayusman/janken/internal/metrics"
)

// runPipeline is the per-frame loop: read a frame, detect the hand,
// classify it, and publish the result to the live cell. It never blocks
// on the referee; the countdown runs on its own timers and only reads
// the cell.
//
// Frame rate is adaptive: active while a hand is visible or a round is
// counting down, idle otherwise. A running countdown always forces the
// active rate so the sampled gesture reflects fresh frames.
func (a *App) runPipeline(stopCh <-chan struct{}) {
	activeMode := false
	lastHandTime := time.Now()
	lastGesture := gesture.None

	frameInterval := time.Second / time.Duration(a.config.IdleFPS)
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			if !a.IsEnabled() {
				continue
			}

			frame, err := a.Camera().ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			hands, err := a.Detector().Detect(frame)
			frame.Close()

			if err != nil {
				log.Printf("Error detecting hand: %v", err)
				continue
			}

			metrics.FramesTotal.Inc()

			// Only the first detected hand plays; multi-hand input is
			// out of scope.
			current := gesture.None
			handSeen := len(hands) > 0
			if handSeen {
				current = gesture.Classify(&hands[0])
			}

			a.live.Set(current)
			metrics.GesturesTotal.WithLabelValues(string(current)).Inc()

			if current != lastGesture {
				lastGesture = current
				a.mu.RLock()
				fn := a.onGesture
				a.mu.RUnlock()
				if fn != nil {
					fn(current)
				}
			}

			if handSeen {
				lastHandTime = time.Now()
				if a.IsRecording() {
					a.recordSample(string(current), &hands[0])
				}
			}

			// Adaptive frame rate
			wantActive := handSeen || a.referee.CountingDown()
			if wantActive && !activeMode {
				activeMode = true
				a.Camera().SetFPS(a.config.ActiveFPS)
				frameInterval = time.Second / time.Duration(a.config.ActiveFPS)
				ticker.Reset(frameInterval)
				log.Println("Switched to active mode")
			} else if !wantActive && activeMode {
				if time.Since(lastHandTime) > time.Duration(IdleTimeoutMs)*time.Millisecond {
					activeMode = false
					a.Camera().SetFPS(a.config.IdleFPS)
					frameInterval = time.Second / time.Duration(a.config.IdleFPS)
					ticker.Reset(frameInterval)
					log.Println("Switched to idle mode")
				}
			}
		}
	}
}

// recordSample stores one labeled landmark capture.
func (a *App) recordSample(label string, hand *detector.HandLandmarks) {
	data, err := json.Marshal(hand)
	if err != nil {
		log.Printf("Error encoding sample: %v", err)
		return
	}

	if _, err := a.config.Store.Samples().Create(label, data); err != nil {
		log.Printf("Error saving sample: %v", err)
	}
}
