package app

import (
	"log"
	"time"

	"github.com/ayusman/vyayam/internal/detector"
	"github.com/ayusman/vyayam/internal/exercise"
)

// runPipeline is the main tracking loop that processes frames from the camera.
// It manages the state transitions between idle and active modes based on
// motion detection.
//
// Pipeline logic:
// 1. Start in idle mode (idleFPS=5)
// 2. On motion detected, switch to active mode (activeFPS=15)
// 3. Run pose detection
// 4. Feed the pose through the exercise session (classify + count)
// 5. On a stable exercise change, flush the finished set to the store
// 6. After 2s no motion, switch back to idle mode
//
// The stop channel is passed in rather than read from the struct so Stop
// can replace a.stopCh without racing the loop.
func (a *App) runPipeline(stopCh <-chan struct{}) {
	// Track whether we're in active mode
	activeMode := false

	// Track the last motion detection time
	lastMotionTime := time.Now()

	// Frame interval based on current FPS
	frameInterval := time.Second / time.Duration(IdleFPS)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			// Skip processing if tracking is disabled
			if !a.IsEnabled() {
				continue
			}

			// Read a frame from the camera
			frame, err := a.camera.ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			// Step 1: Motion detection
			motionDetected, _ := a.motion.Detect(frame)

			if motionDetected {
				lastMotionTime = time.Now()

				// Switch to active mode if not already
				if !activeMode {
					activeMode = true
					a.camera.SetFPS(ActiveFPS)
					frameInterval = time.Second / time.Duration(ActiveFPS)
					ticker.Reset(frameInterval)
					log.Println("Switched to active mode")
				}
			} else if activeMode {
				// Check if we should switch back to idle mode
				if time.Since(lastMotionTime) > time.Duration(IdleTimeoutMs)*time.Millisecond {
					activeMode = false
					a.camera.SetFPS(IdleFPS)
					frameInterval = time.Second / time.Duration(IdleFPS)
					ticker.Reset(frameInterval)
					log.Println("Switched to idle mode")
				}
			}

			// SetDetector may swap the detector mid-run, so take it
			// through the locked accessor.
			det := a.Detector()

			// Outside active mode feed empty observations so the gate
			// drops and counters freeze instead of acting on a stale
			// pose.
			if !activeMode || det == nil {
				frame.Close()
				a.ProcessPose(nil)
				continue
			}

			// Step 2: Pose detection
			pose, err := det.Detect(frame)
			frame.Close() // Done with the frame

			if err != nil {
				log.Printf("Error detecting pose: %v", err)
				continue
			}

			// Step 3: Classification and rep counting
			a.ProcessPose(pose)
		}
	}
}

// ProcessPose runs one pose observation through the session, publishes the
// snapshot, and flushes sets when the stable exercise changes. The pipeline
// calls this for every frame; it is exported so recorded poses can be
// replayed through the full tracking path.
func (a *App) ProcessPose(pose *detector.PoseLandmarks) exercise.Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	snap := a.session.Process(pose)
	a.snapshot = snap

	if snap.Exercise != a.lastExercise {
		if a.lastExercise != exercise.KindNone {
			log.Printf("Exercise ended: %s", a.lastExercise)
			a.flushSets()
		}
		if snap.Exercise != exercise.KindNone {
			log.Printf("Exercise detected: %s", snap.Exercise)
		}
		a.lastExercise = snap.Exercise
	}

	return snap
}
