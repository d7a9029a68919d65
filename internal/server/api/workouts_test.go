package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ayusman/vyayam/internal/store"
)

func newTestHandler(t *testing.T) (*WorkoutHandler, *store.Store) {
	t.Helper()

	s, err := store.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("store.New() error = %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return NewWorkoutHandler(s), s
}

func seedWorkout(t *testing.T, s *store.Store, sets ...*store.WorkoutSet) *store.Workout {
	t.Helper()

	w := &store.Workout{ID: uuid.NewString()}
	if err := s.Workouts().Create(w); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	for _, set := range sets {
		set.WorkoutID = w.ID
		if set.ID == "" {
			set.ID = uuid.NewString()
		}
		if err := s.Workouts().AddSet(set); err != nil {
			t.Fatalf("AddSet failed: %v", err)
		}
	}
	return w
}

func TestWorkoutHandler_List(t *testing.T) {
	h, s := newTestHandler(t)

	seedWorkout(t, s,
		&store.WorkoutSet{Exercise: "curl", Reps: 12},
		&store.WorkoutSet{Exercise: "pushup", Reps: 8},
	)

	req := httptest.NewRequest(http.MethodGet, "/api/workouts", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp listWorkoutsResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Workouts) != 1 {
		t.Fatalf("expected 1 workout, got %d", len(resp.Workouts))
	}
	if resp.Workouts[0].TotalReps != 20 {
		t.Errorf("expected total_reps 20, got %d", resp.Workouts[0].TotalReps)
	}
	if len(resp.Workouts[0].Sets) != 2 {
		t.Errorf("expected 2 sets, got %d", len(resp.Workouts[0].Sets))
	}
}

func TestWorkoutHandler_List_Empty(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/workouts", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp listWorkoutsResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Workouts) != 0 {
		t.Errorf("expected empty workout list, got %d", len(resp.Workouts))
	}
}

func TestWorkoutHandler_Get(t *testing.T) {
	h, s := newTestHandler(t)

	w := seedWorkout(t, s, &store.WorkoutSet{Exercise: "pullup", Reps: 5})
	if err := s.Workouts().Finish(w.ID, time.Now()); err != nil {
		t.Fatalf("Finish failed: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/workouts/"+w.ID, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp workoutResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != w.ID {
		t.Errorf("expected id %q, got %q", w.ID, resp.ID)
	}
	if resp.EndedAt == nil {
		t.Error("expected ended_at to be set for a finished workout")
	}
	if len(resp.Sets) != 1 || resp.Sets[0].Exercise != "pullup" {
		t.Errorf("unexpected sets: %+v", resp.Sets)
	}
}

func TestWorkoutHandler_Get_NotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/workouts/nope", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestWorkoutHandler_Delete(t *testing.T) {
	h, s := newTestHandler(t)

	w := seedWorkout(t, s, &store.WorkoutSet{Exercise: "curl", Reps: 3})

	req := httptest.NewRequest(http.MethodDelete, "/api/workouts/"+w.ID, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}

	if _, err := s.Workouts().GetByID(w.ID); err == nil {
		t.Error("expected workout to be deleted")
	}
}

func TestWorkoutHandler_Delete_NotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/workouts/nope", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestWorkoutHandler_MethodNotAllowed(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/workouts", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405 for POST on collection, got %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPut, "/api/workouts/some-id", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected 405 for PUT on item, got %d", rec.Code)
	}
}
