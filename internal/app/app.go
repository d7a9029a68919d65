// Package app provides the main application logic for the Vyayam exercise
// tracking system.
package app

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ayusman/vyayam/internal/capture"
	"github.com/ayusman/vyayam/internal/detector"
	"github.com/ayusman/vyayam/internal/exercise"
	"github.com/ayusman/vyayam/internal/store"
)

// Pipeline timing constants.
const (
	// IdleFPS is the frame rate when no motion is detected.
	IdleFPS = 5
	// ActiveFPS is the frame rate during active tracking.
	ActiveFPS = 15
	// IdleTimeoutMs is the time in milliseconds to wait before switching back to idle mode.
	IdleTimeoutMs = 2000
)

// settingTrackingEnabled is the settings key that persists the tracking
// toggle across restarts.
const settingTrackingEnabled = "tracking_enabled"

// Config holds configuration options for the application.
type Config struct {
	Store        *store.Store
	CameraID     int
	MotionThresh float64
	Detector     detector.Config
	Exercise     exercise.Config
}

// App orchestrates frame capture, pose detection and rep counting, and
// persists finished sets to the store.
type App struct {
	config   Config
	camera   capture.Camera
	motion   *capture.MotionDetector
	detector detector.Detector
	session  *exercise.Session

	enabled  bool
	mu       sync.RWMutex
	stopCh   chan struct{}
	snapshot exercise.Snapshot

	workoutID    string
	flushed      map[exercise.Kind]int
	lastExercise exercise.Kind
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	motionThreshold := config.MotionThresh
	if motionThreshold <= 0 {
		motionThreshold = 1.0 // Default threshold: 1% pixel change
	}

	a := &App{
		config:       config,
		camera:       capture.NewCamera(config.CameraID),
		motion:       capture.NewMotionDetector(motionThreshold),
		session:      exercise.NewSession(config.Exercise),
		enabled:      false,
		stopCh:       nil,
		lastExercise: exercise.KindNone,
	}
	a.snapshot = exercise.Snapshot{Exercise: exercise.KindNone, Feedback: "no exercise detected"}

	// Try MediaPipe first, fall back to mock detector
	if mp, err := detector.NewMediaPipeDetector(config.Detector); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe pose detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = detector.NewMockDetector()
	}

	return a
}

// SetEnabled enables or disables exercise tracking. Enabling opens a new
// workout in the store; disabling flushes the counted sets and closes it.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if enabled == a.enabled {
		return
	}
	a.enabled = enabled

	if enabled {
		a.beginWorkout()
	} else {
		a.endWorkout()
	}

	if a.config.Store != nil {
		value := "false"
		if enabled {
			value = "true"
		}
		if err := a.config.Store.Settings().Set(settingTrackingEnabled, value); err != nil {
			log.Printf("Failed to persist tracking state: %v", err)
		}
	}
}

// IsEnabled returns whether exercise tracking is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// RestoreState re-applies the persisted tracking toggle from the store.
func (a *App) RestoreState() {
	if a.config.Store == nil {
		return
	}

	value, err := a.config.Store.Settings().Get(settingTrackingEnabled)
	if err != nil {
		return // no stored state yet
	}
	if value == "true" {
		a.SetEnabled(true)
	}
}

// SetDetector sets the pose detector implementation to use.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// Snapshot returns the most recent tracking snapshot.
func (a *App) Snapshot() exercise.Snapshot {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.snapshot
}

// beginWorkout opens a workout row and resets the counting session.
// Caller must hold the lock.
func (a *App) beginWorkout() {
	a.session = exercise.NewSession(a.config.Exercise)
	a.flushed = make(map[exercise.Kind]int)
	a.lastExercise = exercise.KindNone

	if a.config.Store == nil {
		return
	}

	w := &store.Workout{ID: uuid.NewString()}
	if err := a.config.Store.Workouts().Create(w); err != nil {
		log.Printf("Failed to create workout: %v", err)
		return
	}
	a.workoutID = w.ID
	log.Printf("Workout started: %s", w.ID)
}

// endWorkout flushes outstanding sets and marks the workout finished.
// Caller must hold the lock.
func (a *App) endWorkout() {
	a.flushSets()

	if a.config.Store == nil || a.workoutID == "" {
		return
	}

	if err := a.config.Store.Workouts().Finish(a.workoutID, time.Now()); err != nil {
		log.Printf("Failed to finish workout %s: %v", a.workoutID, err)
	} else {
		log.Printf("Workout finished: %s", a.workoutID)
	}
	a.workoutID = ""
}

// flushSets writes the reps counted since the last flush as workout sets.
// Caller must hold the lock.
func (a *App) flushSets() {
	if a.config.Store == nil || a.workoutID == "" {
		return
	}

	for kind, state := range a.session.Counts() {
		delta := state.Reps - a.flushed[kind]
		if delta <= 0 {
			continue
		}

		set := &store.WorkoutSet{
			ID:        uuid.NewString(),
			WorkoutID: a.workoutID,
			Exercise:  string(kind),
			Reps:      delta,
		}
		if err := a.config.Store.Workouts().AddSet(set); err != nil {
			log.Printf("Failed to record %s set: %v", kind, err)
			continue
		}
		a.flushed[kind] = state.Reps
	}
}

// Start begins the tracking pipeline.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Don't start if already running
	if a.stopCh != nil {
		return nil
	}

	// Open the camera
	if err := a.camera.Open(); err != nil {
		return err
	}

	// Set initial FPS to idle mode
	a.camera.SetFPS(IdleFPS)

	// Create stop channel and start the pipeline
	stopCh := make(chan struct{})
	a.stopCh = stopCh
	go a.runPipeline(stopCh)

	log.Println("Tracking pipeline started")
	return nil
}

// Stop halts the tracking pipeline and releases resources. Any workout in
// progress is finished first.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.enabled {
		a.enabled = false
		a.endWorkout()
	}

	// Signal the pipeline to stop
	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}

	// Close the camera
	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	// Close motion detector
	a.motion.Close()

	// Close the pose detector if set
	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Tracking pipeline stopped")
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	return a.camera
}

// MotionDetector returns the motion detector instance.
func (a *App) MotionDetector() *capture.MotionDetector {
	return a.motion
}

// Detector returns the pose detector.
func (a *App) Detector() detector.Detector {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.detector
}
