// Package detector provides body pose detection interfaces and types for exercise tracking.
package detector

// Body landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/pose_landmarker
const (
	Nose           = 0
	LeftEyeInner   = 1
	LeftEye        = 2
	LeftEyeOuter   = 3
	RightEyeInner  = 4
	RightEye       = 5
	RightEyeOuter  = 6
	LeftEar        = 7
	RightEar       = 8
	MouthLeft      = 9
	MouthRight     = 10
	LeftShoulder   = 11
	RightShoulder  = 12
	LeftElbow      = 13
	RightElbow     = 14
	LeftWrist      = 15
	RightWrist     = 16
	LeftPinky      = 17
	RightPinky     = 18
	LeftIndex      = 19
	RightIndex     = 20
	LeftThumb      = 21
	RightThumb     = 22
	LeftHip        = 23
	RightHip       = 24
	LeftKnee       = 25
	RightKnee      = 26
	LeftAnkle      = 27
	RightAnkle     = 28
	LeftHeel       = 29
	RightHeel      = 30
	LeftFootIndex  = 31
	RightFootIndex = 32
	NumLandmarks   = 33
)

// Point2D represents a body landmark position in normalized image space.
// X and Y are in the [0,1] range; Visibility is the detector's confidence
// that the landmark is actually visible in the frame.
type Point2D struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Visibility float64 `json:"visibility"`
}

// PoseLandmarks represents the 33 body landmarks detected by MediaPipe
// for a single person in a single frame.
type PoseLandmarks struct {
	Points [NumLandmarks]Point2D `json:"points"`
	Score  float64               `json:"score"`
}

// At returns the landmark at the given index and whether its visibility
// meets the given floor. Out-of-range indices report not visible.
func (p *PoseLandmarks) At(index int, floor float64) (Point2D, bool) {
	if p == nil || index < 0 || index >= NumLandmarks {
		return Point2D{}, false
	}
	pt := p.Points[index]
	return pt, pt.Visibility >= floor
}

// Midpoint returns the point halfway between the two landmarks and whether
// both meet the visibility floor. Used for averaging left/right joint pairs.
func (p *PoseLandmarks) Midpoint(left, right int, floor float64) (Point2D, bool) {
	a, aOK := p.At(left, floor)
	b, bOK := p.At(right, floor)
	if !aOK || !bOK {
		return Point2D{}, false
	}
	return Point2D{
		X:          (a.X + b.X) / 2,
		Y:          (a.Y + b.Y) / 2,
		Visibility: (a.Visibility + b.Visibility) / 2,
	}, true
}
