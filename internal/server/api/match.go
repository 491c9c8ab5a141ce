// Package api provides HTTP API handlers for the Janken game.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/ayusman/janken/internal/game"
	"github.com/ayusman/janken/internal/gesture"
)

// MatchHandler exposes the match state and the round commands.
type MatchHandler struct {
	referee *game.Referee
	live    *gesture.Cell
}

// NewMatchHandler creates a MatchHandler over the given referee and
// live gesture cell.
func NewMatchHandler(referee *game.Referee, live *gesture.Cell) *MatchHandler {
	return &MatchHandler{referee: referee, live: live}
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// State handles GET /api/state and returns the match snapshot.
func (h *MatchHandler) State(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	snap := h.referee.Snapshot()
	writeJSON(w, http.StatusOK, map[string]any{
		"human_score":    snap.HumanScore,
		"opponent_score": snap.OpponentScore,
		"round":          snap.Round,
		"history":        snap.History,
		"counting_down":  h.referee.CountingDown(),
	})
}

// Gesture handles GET /api/gesture and returns the live gesture.
func (h *MatchHandler) Gesture(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"gesture": string(h.live.Get())})
}

// StartRound handles POST /api/round/start. Starting while a countdown
// is running is not an error: the request reports started=false.
func (h *MatchHandler) StartRound(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	started := h.referee.StartRound()
	writeJSON(w, http.StatusAccepted, map[string]bool{"started": started})
}

// Reset handles POST /api/reset. Resetting during a countdown is
// rejected with 409.
func (h *MatchHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if !h.referee.Reset() {
		writeError(w, http.StatusConflict, "Round in progress")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
