// Package server provides the HTTP host for the Janken game: the match
// API, the websocket event feed, the camera preview, and metrics.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ayusman/janken/internal/capture"
	"github.com/ayusman/janken/internal/game"
	"github.com/ayusman/janken/internal/gesture"
	"github.com/ayusman/janken/internal/server/api"
	"github.com/ayusman/janken/internal/store"
)

// Config holds the server configuration.
type Config struct {
	StaticDir string
	Store     *store.Store
	Camera    capture.Camera
	Referee   *game.Referee
	Live      *gesture.Cell
	Recorder  api.Recorder
}

// Server represents the HTTP server for the Janken application.
type Server struct {
	config Config
	mux    *http.ServeMux
	events *EventsHandler
	start  time.Time
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		events: NewEventsHandler(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)
	s.mux.Handle("/metrics", promhttp.Handler())
	s.mux.Handle("/api/events", s.events)

	if s.config.Referee != nil {
		matchHandler := api.NewMatchHandler(s.config.Referee, s.config.Live)
		s.mux.HandleFunc("/api/state", matchHandler.State)
		s.mux.HandleFunc("/api/gesture", matchHandler.Gesture)
		s.mux.HandleFunc("/api/round/start", matchHandler.StartRound)
		s.mux.HandleFunc("/api/reset", matchHandler.Reset)
	}

	if s.config.Store != nil {
		samplesHandler := api.NewSamplesHandler(s.config.Store)
		s.mux.Handle("/api/samples", samplesHandler)
		s.mux.Handle("/api/samples/", samplesHandler)
	}

	if s.config.Recorder != nil {
		s.mux.HandleFunc("/api/record", api.NewRecordHandler(s.config.Recorder).Toggle)
	}

	if s.config.Camera != nil {
		s.mux.Handle("/api/stream", NewStreamHandler(s.config.Camera))
	}

	if s.config.StaticDir != "" {
		fs := http.FileServer(http.Dir(s.config.StaticDir))
		s.mux.Handle("/", fs)
	}
}

// Events returns the websocket broadcast handler so the host can push
// round events to connected clients.
func (s *Server) Events() *EventsHandler {
	return s.events
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /api/health.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	uptime := time.Since(s.start)

	response := map[string]interface{}{
		"status": "ok",
		"uptime": uptime.String(),
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		return
	}
}

// ListenAndServe starts the HTTP server on the given address.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s)
}
