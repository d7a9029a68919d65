// Package exercise provides exercise classification and repetition counting
// from 2-D body landmarks.
package exercise

import (
	"math"

	"github.com/ayusman/vyayam/internal/detector"
)

// Angle returns the angle in degrees at vertex b formed by the rays b→a and
// b→c, folded into the [0,180] range. Degenerate input (a or c coincides
// with b) returns 0.
func Angle(a, b, c detector.Point2D) float64 {
	if (a.X == b.X && a.Y == b.Y) || (c.X == b.X && c.Y == b.Y) {
		return 0
	}

	radians := math.Atan2(c.Y-b.Y, c.X-b.X) - math.Atan2(a.Y-b.Y, a.X-b.X)
	angle := math.Abs(radians * 180.0 / math.Pi)

	if angle > 180.0 {
		angle = 360.0 - angle
	}

	return angle
}

// TorsoTilt returns the angle in degrees between the hip→shoulder vector and
// vertical (toward decreasing y in image coordinates): 0 is perfectly
// upright, 90 is horizontal. A zero-length torso vector returns 0.
func TorsoTilt(shoulder, hip detector.Point2D) float64 {
	dx := shoulder.X - hip.X
	dy := shoulder.Y - hip.Y

	length := math.Hypot(dx, dy)
	if length == 0 {
		return 0
	}

	// Cosine against the upward unit vector (0, -1), clamped to absorb
	// floating-point overshoot before the arccosine.
	cos := -dy / length
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}

	return math.Acos(cos) * 180.0 / math.Pi
}
