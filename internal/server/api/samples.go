package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/ayusman/janken/internal/store"
)

// SamplesHandler handles HTTP requests for recorded classifier samples.
type SamplesHandler struct {
	store *store.Store
}

// NewSamplesHandler creates a new SamplesHandler with the given store.
func NewSamplesHandler(s *store.Store) *SamplesHandler {
	return &SamplesHandler{store: s}
}

// ServeHTTP implements the http.Handler interface.
// Expected paths: /api/samples, /api/samples/stats, /api/samples/{id}
func (h *SamplesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/samples")
	path = strings.TrimPrefix(path, "/")

	switch {
	case path == "":
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.list(w, r)
	case path == "stats":
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.stats(w, r)
	default:
		if r.Method != http.MethodDelete {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		h.delete(w, r, path)
	}
}

type sampleResponse struct {
	ID        string          `json:"id"`
	Label     string          `json:"label"`
	Data      json.RawMessage `json:"data"`
	CreatedAt string          `json:"created_at"`
}

type listSamplesResponse struct {
	Samples []sampleResponse `json:"samples"`
}

// list handles GET /api/samples with an optional ?label= filter.
func (h *SamplesHandler) list(w http.ResponseWriter, r *http.Request) {
	samples, err := h.store.Samples().List(r.URL.Query().Get("label"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list samples")
		return
	}

	response := listSamplesResponse{
		Samples: make([]sampleResponse, 0, len(samples)),
	}

	for _, s := range samples {
		response.Samples = append(response.Samples, sampleResponse{
			ID:        s.ID,
			Label:     s.Label,
			Data:      s.Data,
			CreatedAt: s.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		})
	}

	writeJSON(w, http.StatusOK, response)
}

// stats handles GET /api/samples/stats.
func (h *SamplesHandler) stats(w http.ResponseWriter, r *http.Request) {
	counts, err := h.store.Samples().CountByLabel()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to count samples")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"counts": counts})
}

// delete handles DELETE /api/samples/{id}.
func (h *SamplesHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	if err := h.store.Samples().Delete(id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Sample not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete sample")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Recorder toggles sample recording on the running pipeline.
type Recorder interface {
	SetRecording(recording bool)
	IsRecording() bool
}

// RecordHandler handles POST /api/record.
type RecordHandler struct {
	recorder Recorder
}

// NewRecordHandler creates a RecordHandler over the given Recorder.
func NewRecordHandler(rec Recorder) *RecordHandler {
	return &RecordHandler{recorder: rec}
}

type recordRequest struct {
	Recording bool `json:"recording"`
}

// Toggle handles POST /api/record.
func (h *RecordHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req recordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	h.recorder.SetRecording(req.Recording)
	writeJSON(w, http.StatusOK, map[string]bool{"recording": h.recorder.IsRecording()})
}
