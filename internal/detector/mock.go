package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	pose *PoseLandmarks
	err  error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetPose sets the pose that will be returned by Detect.
func (m *MockDetector) SetPose(pose *PoseLandmarks) {
	m.pose = pose
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured pose or error.
func (m *MockDetector) Detect(frame *gocv.Mat) (*PoseLandmarks, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.pose, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// basePose returns a PoseLandmarks with every landmark placed at a
// plausible standing position and high visibility. Fixture functions
// below reposition the joints that matter for their pose.
func basePose() PoseLandmarks {
	lm := PoseLandmarks{Score: 0.95}

	head := Point2D{X: 0.5, Y: 0.2, Visibility: 0.95}
	for i := Nose; i <= MouthRight; i++ {
		lm.Points[i] = head
	}

	lm.Points[LeftShoulder] = Point2D{X: 0.42, Y: 0.30, Visibility: 0.95}
	lm.Points[RightShoulder] = Point2D{X: 0.58, Y: 0.30, Visibility: 0.95}
	lm.Points[LeftElbow] = Point2D{X: 0.42, Y: 0.45, Visibility: 0.95}
	lm.Points[RightElbow] = Point2D{X: 0.58, Y: 0.45, Visibility: 0.95}
	lm.Points[LeftWrist] = Point2D{X: 0.42, Y: 0.60, Visibility: 0.95}
	lm.Points[RightWrist] = Point2D{X: 0.58, Y: 0.60, Visibility: 0.95}
	for i := LeftPinky; i <= RightThumb; i += 2 {
		lm.Points[i] = Point2D{X: 0.42, Y: 0.63, Visibility: 0.9}
		lm.Points[i+1] = Point2D{X: 0.58, Y: 0.63, Visibility: 0.9}
	}
	lm.Points[LeftHip] = Point2D{X: 0.44, Y: 0.58, Visibility: 0.95}
	lm.Points[RightHip] = Point2D{X: 0.56, Y: 0.58, Visibility: 0.95}
	lm.Points[LeftKnee] = Point2D{X: 0.44, Y: 0.75, Visibility: 0.9}
	lm.Points[RightKnee] = Point2D{X: 0.56, Y: 0.75, Visibility: 0.9}
	lm.Points[LeftAnkle] = Point2D{X: 0.44, Y: 0.92, Visibility: 0.9}
	lm.Points[RightAnkle] = Point2D{X: 0.56, Y: 0.92, Visibility: 0.9}
	for i := LeftHeel; i <= RightFootIndex; i += 2 {
		lm.Points[i] = Point2D{X: 0.44, Y: 0.95, Visibility: 0.85}
		lm.Points[i+1] = Point2D{X: 0.56, Y: 0.95, Visibility: 0.85}
	}

	return lm
}

// StandingArmsExtendedPose returns a pose standing upright with both arms
// hanging straight down: the rest position of a biceps curl.
func StandingArmsExtendedPose() PoseLandmarks {
	return basePose()
}

// StandingArmsCurledPose returns a pose standing upright with both elbows
// fully flexed: the top of a biceps curl.
func StandingArmsCurledPose() PoseLandmarks {
	lm := basePose()
	lm.Points[LeftWrist] = Point2D{X: 0.48, Y: 0.33, Visibility: 0.95}
	lm.Points[RightWrist] = Point2D{X: 0.52, Y: 0.33, Visibility: 0.95}
	return lm
}

// PlankArmsExtendedPose returns a near-horizontal body with arms straight
// under the shoulders: the top of a push-up.
func PlankArmsExtendedPose() PoseLandmarks {
	lm := basePose()
	lm.Points[LeftShoulder] = Point2D{X: 0.30, Y: 0.55, Visibility: 0.95}
	lm.Points[RightShoulder] = Point2D{X: 0.32, Y: 0.57, Visibility: 0.95}
	lm.Points[LeftElbow] = Point2D{X: 0.30, Y: 0.62, Visibility: 0.95}
	lm.Points[RightElbow] = Point2D{X: 0.32, Y: 0.63, Visibility: 0.95}
	lm.Points[LeftWrist] = Point2D{X: 0.30, Y: 0.69, Visibility: 0.95}
	lm.Points[RightWrist] = Point2D{X: 0.32, Y: 0.69, Visibility: 0.95}
	lm.Points[LeftHip] = Point2D{X: 0.60, Y: 0.62, Visibility: 0.95}
	lm.Points[RightHip] = Point2D{X: 0.60, Y: 0.64, Visibility: 0.95}
	lm.Points[LeftAnkle] = Point2D{X: 0.85, Y: 0.70, Visibility: 0.9}
	lm.Points[RightAnkle] = Point2D{X: 0.85, Y: 0.72, Visibility: 0.9}
	return lm
}

// PlankArmsBentPose returns a near-horizontal body lowered onto bent
// elbows: the bottom of a push-up.
func PlankArmsBentPose() PoseLandmarks {
	lm := PlankArmsExtendedPose()
	lm.Points[LeftShoulder] = Point2D{X: 0.30, Y: 0.62, Visibility: 0.95}
	lm.Points[RightShoulder] = Point2D{X: 0.32, Y: 0.64, Visibility: 0.95}
	lm.Points[LeftElbow] = Point2D{X: 0.38, Y: 0.68, Visibility: 0.95}
	lm.Points[RightElbow] = Point2D{X: 0.40, Y: 0.69, Visibility: 0.95}
	lm.Points[LeftWrist] = Point2D{X: 0.30, Y: 0.72, Visibility: 0.95}
	lm.Points[RightWrist] = Point2D{X: 0.32, Y: 0.72, Visibility: 0.95}
	lm.Points[LeftHip] = Point2D{X: 0.60, Y: 0.66, Visibility: 0.95}
	lm.Points[RightHip] = Point2D{X: 0.60, Y: 0.68, Visibility: 0.95}
	return lm
}

// HangArmsExtendedPose returns a body hanging from a bar with straight
// arms overhead: the dead-hang rest position of a pull-up.
func HangArmsExtendedPose() PoseLandmarks {
	lm := basePose()
	lm.Points[LeftShoulder] = Point2D{X: 0.44, Y: 0.40, Visibility: 0.95}
	lm.Points[RightShoulder] = Point2D{X: 0.56, Y: 0.40, Visibility: 0.95}
	lm.Points[LeftElbow] = Point2D{X: 0.42, Y: 0.28, Visibility: 0.95}
	lm.Points[RightElbow] = Point2D{X: 0.58, Y: 0.28, Visibility: 0.95}
	lm.Points[LeftWrist] = Point2D{X: 0.41, Y: 0.16, Visibility: 0.95}
	lm.Points[RightWrist] = Point2D{X: 0.59, Y: 0.16, Visibility: 0.95}
	lm.Points[LeftHip] = Point2D{X: 0.46, Y: 0.62, Visibility: 0.95}
	lm.Points[RightHip] = Point2D{X: 0.54, Y: 0.62, Visibility: 0.95}
	return lm
}

// HangArmsPulledPose returns a body pulled up to the bar with flexed
// elbows: the top of a pull-up.
func HangArmsPulledPose() PoseLandmarks {
	lm := basePose()
	lm.Points[LeftShoulder] = Point2D{X: 0.44, Y: 0.30, Visibility: 0.95}
	lm.Points[RightShoulder] = Point2D{X: 0.56, Y: 0.30, Visibility: 0.95}
	lm.Points[LeftElbow] = Point2D{X: 0.34, Y: 0.28, Visibility: 0.95}
	lm.Points[RightElbow] = Point2D{X: 0.66, Y: 0.28, Visibility: 0.95}
	lm.Points[LeftWrist] = Point2D{X: 0.42, Y: 0.20, Visibility: 0.95}
	lm.Points[RightWrist] = Point2D{X: 0.58, Y: 0.20, Visibility: 0.95}
	lm.Points[LeftHip] = Point2D{X: 0.46, Y: 0.50, Visibility: 0.95}
	lm.Points[RightHip] = Point2D{X: 0.54, Y: 0.50, Visibility: 0.95}
	return lm
}
