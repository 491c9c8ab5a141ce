package announce

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ayusman/janken/internal/game"
)

// captureScript writes its arguments to a file so tests can see what the
// announcer said.
func captureScript(t *testing.T) (cmd string, outFile string) {
	t.Helper()

	dir := t.TempDir()
	outFile = filepath.Join(dir, "out.txt")
	cmd = filepath.Join(dir, "capture.sh")

	script := "#!/bin/sh\necho \"$1\" >> " + outFile + "\n"
	if err := os.WriteFile(cmd, []byte(script), 0755); err != nil {
		t.Fatalf("writing capture script: %v", err)
	}
	return cmd, outFile
}

func spoken(t *testing.T, outFile string) []string {
	t.Helper()

	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("reading capture output: %v", err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func TestAnnouncer_Disabled(t *testing.T) {
	a := New("", 1000)

	if a.Enabled() {
		t.Error("Enabled() = true with empty command")
	}
	if err := a.Say("anything"); err != nil {
		t.Errorf("Say on a disabled announcer returned %v, want nil", err)
	}
}

func TestAnnouncer_Beats(t *testing.T) {
	cmd, outFile := captureScript(t)
	a := New(cmd, 2000)

	for beat := 0; beat <= game.GoBeat; beat++ {
		if err := a.Beat(beat); err != nil {
			t.Fatalf("Beat(%d) failed: %v", beat, err)
		}
	}

	want := []string{"rock", "paper", "scissors", "shoot"}
	got := spoken(t, outFile)
	if len(got) != len(want) {
		t.Fatalf("spoke %d phrases, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("phrase[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAnnouncer_UnknownBeat(t *testing.T) {
	cmd, _ := captureScript(t)
	a := New(cmd, 2000)

	if err := a.Beat(-1); err == nil {
		t.Error("Beat(-1) returned nil, want error")
	}
	if err := a.Beat(game.GoBeat + 1); err == nil {
		t.Errorf("Beat(%d) returned nil, want error", game.GoBeat+1)
	}
}

func TestAnnouncer_Result(t *testing.T) {
	cmd, outFile := captureScript(t)
	a := New(cmd, 2000)

	entries := []*game.HistoryEntry{
		{Human: game.Rock, Opponent: game.Scissors, Outcome: game.Win},
		{Human: game.Rock, Opponent: game.Paper, Outcome: game.Lose},
		{Human: game.Paper, Opponent: game.Paper, Outcome: game.Draw},
		nil,
	}
	for _, e := range entries {
		if err := a.Result(e); err != nil {
			t.Fatalf("Result failed: %v", err)
		}
	}

	got := spoken(t, outFile)
	want := []string{
		"rock beats scissors, you win",
		"paper beats rock, you lose",
		"both paper, draw",
		"no gesture detected",
	}
	if len(got) != len(want) {
		t.Fatalf("spoke %d phrases, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("phrase[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestAnnouncer_CommandFailure(t *testing.T) {
	a := New("/nonexistent/narrator", 1000)

	if err := a.Say("rock"); err == nil {
		t.Error("Say with a missing command returned nil, want error")
	}
}

func TestAnnouncer_Timeout(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping timeout test in short mode")
	}

	dir := t.TempDir()
	cmd := filepath.Join(dir, "slow.sh")
	if err := os.WriteFile(cmd, []byte("#!/bin/sh\nsleep 5\n"), 0755); err != nil {
		t.Fatalf("writing slow script: %v", err)
	}

	a := New(cmd, 100)

	start := time.Now()
	err := a.Say("rock")
	elapsed := time.Since(start)

	if err == nil {
		t.Error("Say returned nil, want timeout error")
	}
	if elapsed > 2*time.Second {
		t.Errorf("Say took %v, the timeout did not fire", elapsed)
	}
}
