// Package announce bridges round events to an external narration command.
// Speech itself stays outside the process: any command that takes a
// phrase as its argument works (macOS `say`, `espeak`, a shell script).
package announce

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/ayusman/janken/internal/game"
)

// Countdown call phrases, indexed by beat. The last one is the go signal.
var beatPhrases = [game.GoBeat + 1]string{"rock", "paper", "scissors", "shoot"}

// Announcer runs an external command per phrase with a timeout.
type Announcer struct {
	command   string
	timeoutMs int
}

// New creates an Announcer. An empty command disables all announcements.
func New(command string, timeoutMs int) *Announcer {
	return &Announcer{
		command:   command,
		timeoutMs: timeoutMs,
	}
}

// Enabled reports whether a narration command is configured.
func (a *Announcer) Enabled() bool {
	return a.command != ""
}

// Say runs the narration command with the given phrase as its argument.
func (a *Announcer) Say(phrase string) error {
	if !a.Enabled() {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(a.timeoutMs)*time.Millisecond)
	defer cancel()

	cmd := exec.CommandContext(ctx, a.command, phrase)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()

	if ctx.Err() == context.DeadlineExceeded {
		return fmt.Errorf("announce timeout after %dms", a.timeoutMs)
	}

	if err != nil {
		if stderrStr := stderr.String(); stderrStr != "" {
			return fmt.Errorf("announce failed: %w, stderr: %s", err, stderrStr)
		}
		return fmt.Errorf("announce failed: %w", err)
	}

	return nil
}

// Beat narrates one countdown beat.
func (a *Announcer) Beat(beat int) error {
	if beat < 0 || beat >= len(beatPhrases) {
		return fmt.Errorf("unknown beat %d", beat)
	}
	return a.Say(beatPhrases[beat])
}

// Result narrates the end of a round. A nil entry is the no-gesture case.
func (a *Announcer) Result(entry *game.HistoryEntry) error {
	if entry == nil {
		return a.Say("no gesture detected")
	}

	switch entry.Outcome {
	case game.Win:
		return a.Say(fmt.Sprintf("%s beats %s, you win", entry.Human, entry.Opponent))
	case game.Lose:
		return a.Say(fmt.Sprintf("%s beats %s, you lose", entry.Opponent, entry.Human))
	default:
		return a.Say(fmt.Sprintf("both %s, draw", entry.Human))
	}
}
