package exercise

// Config holds the tunable parameters for classification and rep counting.
// The numeric boundaries are deliberately configuration rather than code:
// they vary with camera placement and should be tunable without rebuilds.
type Config struct {
	// VisibilityFloor is the minimum landmark visibility for a landmark to
	// participate in feature computation.
	VisibilityFloor float64

	// HistorySize is the capacity of the classification history window.
	HistorySize int

	// MinHistory is the number of observed frames required before the
	// stable exercise may change.
	MinHistory int

	// TiltSplit is the torso tilt in degrees separating upright exercises
	// (curl, pull-up) from horizontal ones (push-up).
	TiltSplit float64

	// PushupWristBand is how close (in normalized y) the wrists must be to
	// shoulder level for a push-up.
	PushupWristBand float64

	// PullupWristMargin is how far above the shoulders (in normalized y)
	// the wrists must be for a pull-up.
	PullupWristMargin float64

	// CurlWristHipBand is how far below hip level (in normalized y) the
	// wrists may be and still count as a curl position.
	CurlWristHipBand float64

	// Thresholds is the per-exercise rep counter threshold table.
	Thresholds map[Kind]Thresholds
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() Config {
	return Config{
		VisibilityFloor:   0.5,
		HistorySize:       10,
		MinHistory:        5,
		TiltSplit:         60,
		PushupWristBand:   0.15,
		PullupWristMargin: 0.05,
		CurlWristHipBand:  0.10,
		Thresholds:        DefaultThresholds(),
	}
}
