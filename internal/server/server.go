// Package server provides the HTTP server for the Vyayam exercise tracking system.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ayusman/vyayam/internal/capture"
	"github.com/ayusman/vyayam/internal/exercise"
	"github.com/ayusman/vyayam/internal/server/api"
	"github.com/ayusman/vyayam/internal/store"
)

// SnapshotSource provides the most recent tracking snapshot. The tracking
// pipeline implements this.
type SnapshotSource interface {
	Snapshot() exercise.Snapshot
}

// Config holds the server configuration.
type Config struct {
	StaticDir string
	Store     *store.Store
	Camera    capture.Camera
	Snapshots SnapshotSource
}

// Server represents the HTTP server for the Vyayam application.
type Server struct {
	config Config
	mux    *http.ServeMux
	start  time.Time
	live   *LiveHandler
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
		start:  time.Now(),
	}
	s.setupRoutes()
	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/api/health", s.handleHealth)

	// Register workout API handler if Store is configured
	if s.config.Store != nil {
		workoutHandler := api.NewWorkoutHandler(s.config.Store)
		s.mux.Handle("/api/workouts", workoutHandler)
		s.mux.Handle("/api/workouts/", workoutHandler)
	}

	// Register camera stream endpoint if Camera is configured
	if s.config.Camera != nil {
		streamHandler := NewStreamHandler(s.config.Camera)
		s.mux.Handle("/api/stream", streamHandler)
	}

	// Register live tracking WebSocket endpoint if a snapshot source is configured
	if s.config.Snapshots != nil {
		s.live = NewLiveHandler(s.config.Snapshots)
		s.mux.Handle("/api/live", s.live)
	}

	// Serve static files if StaticDir is configured
	if s.config.StaticDir != "" {
		fs := http.FileServer(http.Dir(s.config.StaticDir))
		s.mux.Handle("/", fs)
	}
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

// Close releases server resources, stopping the live broadcaster if one
// was started.
func (s *Server) Close() {
	if s.live != nil {
		s.live.Close()
	}
}
