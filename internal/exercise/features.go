package exercise

import (
	"github.com/ayusman/vyayam/internal/detector"
)

// Features holds the geometric measurements derived from one frame of body
// landmarks. The validity flags mark which measurements had all of their
// landmarks above the visibility floor; consumers must not read a
// measurement whose flag is false.
type Features struct {
	LeftElbowAngle  float64
	RightElbowAngle float64
	AvgElbowAngle   float64
	TorsoTilt       float64

	// Average y coordinates of the left/right joint pairs.
	WristY    float64
	ShoulderY float64
	HipY      float64

	ElbowsValid    bool
	TorsoValid     bool
	WristsValid    bool
	ShouldersValid bool
	HipsValid      bool
}

// ComputeFeatures derives the per-frame features from the given landmarks.
// A nil pose (no detection this frame) yields zero features with every
// validity flag false.
func ComputeFeatures(pose *detector.PoseLandmarks, visibilityFloor float64) Features {
	var f Features
	if pose == nil {
		return f
	}

	left, leftOK := elbowAngle(pose, detector.LeftShoulder, detector.LeftElbow, detector.LeftWrist, visibilityFloor)
	right, rightOK := elbowAngle(pose, detector.RightShoulder, detector.RightElbow, detector.RightWrist, visibilityFloor)

	switch {
	case leftOK && rightOK:
		f.LeftElbowAngle = left
		f.RightElbowAngle = right
		f.AvgElbowAngle = (left + right) / 2
		f.ElbowsValid = true
	case leftOK:
		f.LeftElbowAngle = left
		f.AvgElbowAngle = left
		f.ElbowsValid = true
	case rightOK:
		f.RightElbowAngle = right
		f.AvgElbowAngle = right
		f.ElbowsValid = true
	}

	shoulderMid, shouldersOK := pose.Midpoint(detector.LeftShoulder, detector.RightShoulder, visibilityFloor)
	if shouldersOK {
		f.ShoulderY = shoulderMid.Y
		f.ShouldersValid = true
	}

	hipMid, hipsOK := pose.Midpoint(detector.LeftHip, detector.RightHip, visibilityFloor)
	if hipsOK {
		f.HipY = hipMid.Y
		f.HipsValid = true
	}

	if shouldersOK && hipsOK {
		f.TorsoTilt = TorsoTilt(shoulderMid, hipMid)
		f.TorsoValid = true
	}

	wristMid, wristsOK := pose.Midpoint(detector.LeftWrist, detector.RightWrist, visibilityFloor)
	if wristsOK {
		f.WristY = wristMid.Y
		f.WristsValid = true
	}

	return f
}

// elbowAngle computes the angle at one elbow if the shoulder, elbow and
// wrist of that arm are all visible.
func elbowAngle(pose *detector.PoseLandmarks, shoulder, elbow, wrist int, floor float64) (float64, bool) {
	s, sOK := pose.At(shoulder, floor)
	e, eOK := pose.At(elbow, floor)
	w, wOK := pose.At(wrist, floor)
	if !sOK || !eOK || !wOK {
		return 0, false
	}
	return Angle(s, e, w), true
}
