package exercise

import (
	"math"
	"testing"

	"github.com/ayusman/vyayam/internal/detector"
)

const epsilon = 1e-9

func pt(x, y float64) detector.Point2D {
	return detector.Point2D{X: x, Y: y, Visibility: 1}
}

func TestAngle(t *testing.T) {
	t.Run("straight line is 180 degrees", func(t *testing.T) {
		angle := Angle(pt(0, 0), pt(0.5, 0), pt(1, 0))
		if math.Abs(angle-180) > 1e-6 {
			t.Errorf("expected 180, got %f", angle)
		}
	})

	t.Run("right angle is 90 degrees", func(t *testing.T) {
		angle := Angle(pt(1, 0), pt(0, 0), pt(0, 1))
		if math.Abs(angle-90) > 1e-6 {
			t.Errorf("expected 90, got %f", angle)
		}
	})

	t.Run("is symmetric in its outer points", func(t *testing.T) {
		triples := [][3]detector.Point2D{
			{pt(0.1, 0.2), pt(0.4, 0.5), pt(0.9, 0.3)},
			{pt(0.0, 1.0), pt(0.5, 0.5), pt(1.0, 1.0)},
			{pt(0.3, 0.9), pt(0.3, 0.1), pt(0.8, 0.1)},
		}
		for _, tr := range triples {
			forward := Angle(tr[0], tr[1], tr[2])
			backward := Angle(tr[2], tr[1], tr[0])
			if math.Abs(forward-backward) > epsilon {
				t.Errorf("Angle(a,b,c)=%f != Angle(c,b,a)=%f", forward, backward)
			}
		}
	})

	t.Run("stays in the 0 to 180 range", func(t *testing.T) {
		// Sweep one ray around the vertex; the folded angle must never
		// leave [0,180].
		b := pt(0.5, 0.5)
		a := pt(0.9, 0.5)
		for deg := 0; deg < 360; deg += 15 {
			rad := float64(deg) * math.Pi / 180
			c := pt(0.5+0.3*math.Cos(rad), 0.5+0.3*math.Sin(rad))
			if c.X == b.X && c.Y == b.Y {
				continue
			}
			angle := Angle(a, b, c)
			if angle < 0 || angle > 180 {
				t.Errorf("angle %f out of range for ray at %d degrees", angle, deg)
			}
		}
	})

	t.Run("degenerate input returns 0", func(t *testing.T) {
		b := pt(0.5, 0.5)
		if angle := Angle(b, b, pt(1, 1)); angle != 0 {
			t.Errorf("expected 0 for a==b, got %f", angle)
		}
		if angle := Angle(pt(0, 0), b, b); angle != 0 {
			t.Errorf("expected 0 for c==b, got %f", angle)
		}
	})
}

func TestTorsoTilt(t *testing.T) {
	t.Run("upright torso is 0 degrees", func(t *testing.T) {
		tilt := TorsoTilt(pt(0.5, 0.3), pt(0.5, 0.6))
		if math.Abs(tilt) > 1e-6 {
			t.Errorf("expected 0, got %f", tilt)
		}
	})

	t.Run("horizontal torso is 90 degrees", func(t *testing.T) {
		tilt := TorsoTilt(pt(0.2, 0.6), pt(0.7, 0.6))
		if math.Abs(tilt-90) > 1e-6 {
			t.Errorf("expected 90, got %f", tilt)
		}
	})

	t.Run("inverted torso is 180 degrees", func(t *testing.T) {
		tilt := TorsoTilt(pt(0.5, 0.8), pt(0.5, 0.2))
		if math.Abs(tilt-180) > 1e-6 {
			t.Errorf("expected 180, got %f", tilt)
		}
	})

	t.Run("45 degree lean", func(t *testing.T) {
		tilt := TorsoTilt(pt(0.6, 0.5), pt(0.5, 0.6))
		if math.Abs(tilt-45) > 1e-6 {
			t.Errorf("expected 45, got %f", tilt)
		}
	})

	t.Run("zero-length torso returns 0", func(t *testing.T) {
		if tilt := TorsoTilt(pt(0.5, 0.5), pt(0.5, 0.5)); tilt != 0 {
			t.Errorf("expected 0 for coincident shoulder and hip, got %f", tilt)
		}
	})
}
