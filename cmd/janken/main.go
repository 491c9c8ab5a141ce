package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/ayusman/janken/internal/announce"
	"github.com/ayusman/janken/internal/app"
	"github.com/ayusman/janken/internal/config"
	"github.com/ayusman/janken/internal/game"
	"github.com/ayusman/janken/internal/gesture"
	"github.com/ayusman/janken/internal/metrics"
	"github.com/ayusman/janken/internal/server"
	"github.com/ayusman/janken/internal/store"
	"github.com/ayusman/janken/internal/tray"
)

func main() {
	fmt.Println("Janken - Rock Paper Scissors by hand")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			log.Fatalf("Failed to get home directory: %v", err)
		}

		dataDir := filepath.Join(homeDir, ".janken")
		if err := os.MkdirAll(dataDir, 0755); err != nil {
			log.Fatalf("Failed to create data directory: %v", err)
		}
		dbPath = filepath.Join(dataDir, "janken.db")
	}

	st, err := store.New(dbPath)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer st.Close()

	a := app.New(app.Config{
		Store:     st,
		CameraID:  cfg.CameraID,
		IdleFPS:   cfg.IdleFPS,
		ActiveFPS: cfg.ActiveFPS,
		Timing: game.Timing{
			BeatInterval: time.Duration(cfg.BeatIntervalMs) * time.Millisecond,
			SettleDelay:  time.Duration(cfg.SettleDelayMs) * time.Millisecond,
		},
	})

	srv := server.New(server.Config{
		StaticDir: findWebDir(),
		Store:     st,
		Camera:    a.Camera(),
		Referee:   a.Referee(),
		Live:      a.Live(),
		Recorder:  a,
	})

	voice := announce.New(cfg.AnnounceCmd, cfg.AnnounceTimeoutMs)
	t := tray.New()

	wireHooks(a, srv, voice, t)

	if err := a.Start(); err != nil {
		log.Fatalf("Failed to start detection pipeline: %v", err)
	}

	go func() {
		fmt.Printf("Starting server on %s\n", cfg.Addr)
		if err := srv.ListenAndServe(cfg.Addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	t.OnPlay(func() { a.Referee().StartRound() })
	t.OnReset(func() { a.Referee().Reset() })
	t.OnToggle(func(enabled bool) { a.SetEnabled(enabled) })
	t.OnQuit(func() { a.Stop() })

	// Blocks until quit
	t.Run()
}

// wireHooks connects the game core to its presentation collaborators:
// websocket clients, the narration command, the tray, and metrics.
func wireHooks(a *app.App, srv *server.Server, voice *announce.Announcer, t *tray.Tray) {
	events := srv.Events()

	a.OnGestureChange(func(g gesture.Gesture) {
		t.SetLiveGesture(string(g))
		events.Broadcast(map[string]any{"type": "gesture", "gesture": g})
	})

	a.Referee().SetHooks(game.Hooks{
		OnBeat: func(beat int) {
			events.Broadcast(map[string]any{"type": "beat", "beat": beat})
			go func() {
				if err := voice.Beat(beat); err != nil {
					log.Printf("Announce error: %v", err)
				}
			}()
		},
		OnResolved: func(snap game.Snapshot, entry *game.HistoryEntry) {
			outcome := "no_gesture"
			if entry != nil {
				outcome = string(entry.Outcome)
			}
			metrics.RoundsTotal.WithLabelValues(outcome).Inc()

			t.SetScore(snap.HumanScore, snap.OpponentScore)
			events.Broadcast(map[string]any{
				"type":           "result",
				"entry":          entry,
				"human_score":    snap.HumanScore,
				"opponent_score": snap.OpponentScore,
				"round":          snap.Round,
			})
			go func() {
				if err := voice.Result(entry); err != nil {
					log.Printf("Announce error: %v", err)
				}
			}()
		},
		OnReset: func() {
			t.SetScore(0, 0)
			events.Broadcast(map[string]any{"type": "reset"})
		},
	})
}

// findWebDir searches for the web directory in common locations.
// Returns the first existing directory or empty string if none found.
func findWebDir() string {
	relativePaths := []string{"web", "../web", "../../web"}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	homeWebDir := filepath.Join(homeDir, ".janken", "web")
	if info, err := os.Stat(homeWebDir); err == nil && info.IsDir() {
		return homeWebDir
	}

	return ""
}
