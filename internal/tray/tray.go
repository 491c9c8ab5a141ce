// Package tray provides the system tray host for the Janken game.
package tray

import (
	"fmt"
	"sync"

	"github.com/getlantern/systray"
)

// Tray represents the system tray application.
type Tray struct {
	onPlay   func()
	onReset  func()
	onToggle func(enabled bool)
	onQuit   func()
	enabled  bool
	mu       sync.RWMutex

	// Menu items stored for later updates
	menuToggle  *systray.MenuItem
	menuScore   *systray.MenuItem
	menuGesture *systray.MenuItem
}

// New creates a new Tray instance with detection enabled by default.
func New() *Tray {
	return &Tray{
		enabled: true,
	}
}

// OnPlay sets the callback for the play-round menu item.
func (t *Tray) OnPlay(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onPlay = fn
}

// OnReset sets the callback for the reset-match menu item.
func (t *Tray) OnReset(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onReset = fn
}

// OnToggle sets the callback for toggling hand detection.
func (t *Tray) OnToggle(fn func(enabled bool)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onToggle = fn
}

// OnQuit sets the callback for the quit menu item.
func (t *Tray) OnQuit(fn func()) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.onQuit = fn
}

// Run starts the system tray application.
// This function blocks until systray.Quit() is called.
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

// onReady is called when the system tray is ready.
// It sets up the menu structure.
func (t *Tray) onReady() {
	systray.SetTitle("Janken")
	systray.SetTooltip("Janken - Rock Paper Scissors")

	menuPlay := systray.AddMenuItem("Play Round", "Start a countdown")
	menuReset := systray.AddMenuItem("Reset Match", "Clear score and history")
	systray.AddSeparator()

	t.menuScore = systray.AddMenuItem("You 0 : 0 CPU", "Current score")
	t.menuScore.Disable()
	t.menuGesture = systray.AddMenuItem("Hand: none", "Live detected gesture")
	t.menuGesture.Disable()
	systray.AddSeparator()

	t.menuToggle = systray.AddMenuItem("● Detection on", "Toggle hand detection")
	systray.AddSeparator()

	menuQuit := systray.AddMenuItem("Quit", "Quit Janken")

	// Handle menu item clicks in a separate goroutine
	go func() {
		for {
			select {
			case <-menuPlay.ClickedCh:
				t.handlePlay()
			case <-menuReset.ClickedCh:
				t.handleReset()
			case <-t.menuToggle.ClickedCh:
				t.handleToggle()
			case <-menuQuit.ClickedCh:
				t.handleQuit()
				return
			}
		}
	}()
}

// onExit is called when the system tray is about to exit.
func (t *Tray) onExit() {
}

func (t *Tray) handlePlay() {
	t.mu.RLock()
	callback := t.onPlay
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}
}

func (t *Tray) handleReset() {
	t.mu.RLock()
	callback := t.onReset
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}
}

func (t *Tray) handleToggle() {
	t.mu.Lock()
	t.enabled = !t.enabled
	enabled := t.enabled

	if enabled {
		t.menuToggle.SetTitle("● Detection on")
	} else {
		t.menuToggle.SetTitle("○ Detection off")
	}

	callback := t.onToggle
	t.mu.Unlock()

	// Call the callback outside the lock to prevent deadlocks
	if callback != nil {
		callback(enabled)
	}
}

func (t *Tray) handleQuit() {
	t.mu.RLock()
	callback := t.onQuit
	t.mu.RUnlock()

	if callback != nil {
		callback()
	}

	systray.Quit()
}

// SetScore updates the score display in the menu.
func (t *Tray) SetScore(human, opponent int) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.menuScore != nil {
		t.menuScore.SetTitle(fmt.Sprintf("You %d : %d CPU", human, opponent))
	}
}

// SetLiveGesture updates the live gesture display in the menu.
func (t *Tray) SetLiveGesture(name string) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if t.menuGesture != nil {
		if name == "" {
			t.menuGesture.SetTitle("Hand: none")
		} else {
			t.menuGesture.SetTitle("Hand: " + name)
		}
	}
}

// IsEnabled returns the current enabled state.
func (t *Tray) IsEnabled() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.enabled
}
