// Package api provides HTTP API handlers for the Vyayam exercise tracking system.
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/ayusman/vyayam/internal/store"
)

// WorkoutHandler handles HTTP requests for workout resources.
type WorkoutHandler struct {
	store *store.Store
}

// NewWorkoutHandler creates a new WorkoutHandler with the given store.
func NewWorkoutHandler(s *store.Store) *WorkoutHandler {
	return &WorkoutHandler{store: s}
}

// ServeHTTP implements the http.Handler interface and routes requests to appropriate methods.
func (h *WorkoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Parse the path to determine if this is a collection or item request
	// Expected paths: /api/workouts or /api/workouts/{id}
	path := strings.TrimPrefix(r.URL.Path, "/api/workouts")
	path = strings.TrimPrefix(path, "/")

	if path == "" {
		// Collection endpoint: /api/workouts
		switch r.Method {
		case http.MethodGet:
			h.list(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
		return
	}

	// Item endpoint: /api/workouts/{id}
	id := path
	switch r.Method {
	case http.MethodGet:
		h.get(w, r, id)
	case http.MethodDelete:
		h.delete(w, r, id)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Response types

type workoutSetResponse struct {
	ID        string `json:"id"`
	Exercise  string `json:"exercise"`
	Reps      int    `json:"reps"`
	CreatedAt string `json:"created_at"`
}

type workoutResponse struct {
	ID        string               `json:"id"`
	StartedAt string               `json:"started_at"`
	EndedAt   *string              `json:"ended_at"`
	TotalReps int                  `json:"total_reps"`
	Sets      []workoutSetResponse `json:"sets,omitempty"`
}

type listWorkoutsResponse struct {
	Workouts []workoutResponse `json:"workouts"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

// toResponse converts a store.Workout and its sets to a workoutResponse.
func toResponse(w *store.Workout, sets []*store.WorkoutSet) workoutResponse {
	resp := workoutResponse{
		ID:        w.ID,
		StartedAt: formatTime(w.StartedAt),
	}
	if w.EndedAt != nil {
		ended := formatTime(*w.EndedAt)
		resp.EndedAt = &ended
	}

	for _, set := range sets {
		resp.TotalReps += set.Reps
		resp.Sets = append(resp.Sets, workoutSetResponse{
			ID:        set.ID,
			Exercise:  set.Exercise,
			Reps:      set.Reps,
			CreatedAt: formatTime(set.CreatedAt),
		})
	}
	return resp
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

// list handles GET /api/workouts and returns all workouts with their sets.
func (h *WorkoutHandler) list(w http.ResponseWriter, r *http.Request) {
	workouts, err := h.store.Workouts().List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list workouts")
		return
	}

	response := listWorkoutsResponse{
		Workouts: make([]workoutResponse, 0, len(workouts)),
	}

	for _, workout := range workouts {
		sets, err := h.store.Workouts().ListSets(workout.ID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "Failed to list workout sets")
			return
		}
		response.Workouts = append(response.Workouts, toResponse(workout, sets))
	}

	writeJSON(w, http.StatusOK, response)
}

// get handles GET /api/workouts/{id} and returns a single workout with its sets.
func (h *WorkoutHandler) get(w http.ResponseWriter, r *http.Request, id string) {
	workout, err := h.store.Workouts().GetByID(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Workout not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to get workout")
		return
	}

	sets, err := h.store.Workouts().ListSets(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list workout sets")
		return
	}

	writeJSON(w, http.StatusOK, toResponse(workout, sets))
}

// delete handles DELETE /api/workouts/{id} and removes a workout with its sets.
func (h *WorkoutHandler) delete(w http.ResponseWriter, r *http.Request, id string) {
	err := h.store.Workouts().Delete(id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "Workout not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to delete workout")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
