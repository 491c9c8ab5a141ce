// Package app wires the capture, detection, classification, and round
// logic of the Janken game into one running pipeline.
package app

import (
	"errors"
	"log"
	"strconv"
	"sync"

	"github.com/ayusman/janken/internal/capture"
	"github.com/ayusman/janken/internal/detector"
	"github.com/ayusman/janken/internal/game"
	"github.com/ayusman/janken/internal/gesture"
	"github.com/ayusman/janken/internal/store"
)

// settingRecording is the settings key under which the sample recording
// toggle is persisted across restarts.
const settingRecording = "recording"

// Pipeline timing constants.
const (
	// DefaultIdleFPS is the frame rate while no hand is visible.
	DefaultIdleFPS = 5
	// DefaultActiveFPS is the frame rate while a hand is visible or a
	// round is running.
	DefaultActiveFPS = 15
	// IdleTimeoutMs is how long the pipeline keeps the active rate
	// after the last visible hand.
	IdleTimeoutMs = 2000
)

// Config holds configuration options for the application.
type Config struct {
	Store     *store.Store
	CameraID  int
	IdleFPS   int
	ActiveFPS int
	Timing    game.Timing
}

// App owns the frame loop and the referee. The frame loop is the only
// writer of the live gesture cell; the referee is the only writer of the
// match state.
type App struct {
	config    Config
	camera    capture.Camera
	detector  detector.Detector
	live      *gesture.Cell
	referee   *game.Referee
	enabled   bool
	recording bool
	onGesture func(g gesture.Gesture)
	mu        sync.RWMutex
	stopCh    chan struct{}
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	if config.IdleFPS <= 0 {
		config.IdleFPS = DefaultIdleFPS
	}
	if config.ActiveFPS <= 0 {
		config.ActiveFPS = DefaultActiveFPS
	}
	if config.Timing.BeatInterval <= 0 {
		config.Timing = game.DefaultTiming()
	}

	live := gesture.NewCell()

	a := &App{
		config:  config,
		camera:  capture.NewCamera(config.CameraID),
		live:    live,
		referee: game.NewReferee(live, game.NewRandomGenerator(), game.NewScheduler(), config.Timing),
		enabled: true,
	}

	// Try MediaPipe first, fall back to mock detector
	if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = detector.NewMockDetector()
	}

	// Restore the recording toggle from the last run
	if config.Store != nil {
		value, err := config.Store.Settings().Get(settingRecording)
		if err != nil && !errors.Is(err, store.ErrNotFound) {
			log.Printf("Error reading recording setting: %v", err)
		}
		a.recording = value == "true"
	}

	return a
}

// SetEnabled enables or disables gesture detection. While disabled the
// live gesture stays at its last value and rounds will sample it as-is.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
}

// IsEnabled returns whether gesture detection is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// SetRecording toggles sample recording. While on, every classified
// frame with a visible hand is stored for offline inspection. The
// toggle is persisted so it survives a restart.
func (a *App) SetRecording(recording bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if recording && a.config.Store == nil {
		log.Println("Sample recording requested but no store configured")
		return
	}
	a.recording = recording

	if a.config.Store != nil {
		if err := a.config.Store.Settings().Set(settingRecording, strconv.FormatBool(recording)); err != nil {
			log.Printf("Error persisting recording setting: %v", err)
		}
	}
}

// IsRecording returns whether sample recording is active.
func (a *App) IsRecording() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.recording
}

// SetDetector sets the hand detector implementation to use.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// SetCamera sets the camera implementation to use.
func (a *App) SetCamera(c capture.Camera) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.camera = c
}

// OnGestureChange registers a callback invoked from the frame loop
// whenever the live gesture value changes.
func (a *App) OnGestureChange(fn func(g gesture.Gesture)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.onGesture = fn
}

// Referee returns the round state machine.
func (a *App) Referee() *game.Referee {
	return a.referee
}

// LiveGesture returns the most recent classified gesture.
func (a *App) LiveGesture() gesture.Gesture {
	return a.live.Get()
}

// Live returns the live gesture cell for read-only consumers.
func (a *App) Live() *gesture.Cell {
	return a.live
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.camera
}

// Detector returns the hand detector.
func (a *App) Detector() detector.Detector {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.detector
}

// Start opens the camera and begins the frame loop.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Don't start if already running
	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return err
	}

	a.camera.SetFPS(a.config.IdleFPS)

	a.stopCh = make(chan struct{})
	go a.runPipeline(a.stopCh)

	log.Println("Detection pipeline started")
	return nil
}

// Stop halts the frame loop and releases resources.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Detection pipeline stopped")
}
