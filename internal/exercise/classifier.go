package exercise

import "math"

// Kind identifies an exercise.
type Kind string

const (
	// KindCurl is a standing biceps curl.
	KindCurl Kind = "curl"
	// KindPushup is a push-up.
	KindPushup Kind = "pushup"
	// KindPullup is a pull-up.
	KindPullup Kind = "pullup"
	// KindNone means no exercise is recognized.
	KindNone Kind = "none"
)

// Kinds lists the countable exercises in a fixed order.
var Kinds = []Kind{KindCurl, KindPushup, KindPullup}

// Classifier derives an instantaneous exercise label per frame and smooths
// it over a bounded FIFO history into a stable exercise. A single noisy
// frame never flips the stable label; only a majority of the window does.
type Classifier struct {
	cfg     Config
	history []Kind
	stable  Kind
}

// NewClassifier creates a Classifier with the given configuration.
func NewClassifier(cfg Config) *Classifier {
	return &Classifier{
		cfg:     cfg,
		history: make([]Kind, 0, cfg.HistorySize),
		stable:  KindNone,
	}
}

// Classify derives the instantaneous exercise label for one frame. Rules are
// evaluated in precedence order; a rule whose measurements are invalid is
// skipped rather than matched.
func (c *Classifier) Classify(f Features) Kind {
	// Body near horizontal with hands at shoulder level: push-up.
	if f.TorsoValid && f.WristsValid && f.ShouldersValid &&
		f.TorsoTilt > c.cfg.TiltSplit &&
		math.Abs(f.WristY-f.ShoulderY) <= c.cfg.PushupWristBand {
		return KindPushup
	}

	// Upright with wrists above the shoulders: pull-up.
	if f.TorsoValid && f.WristsValid && f.ShouldersValid &&
		f.TorsoTilt <= c.cfg.TiltSplit &&
		f.WristY < f.ShoulderY-c.cfg.PullupWristMargin {
		return KindPullup
	}

	// Upright with wrists no lower than roughly hip level: curl.
	if f.TorsoValid && f.WristsValid && f.HipsValid &&
		f.TorsoTilt <= c.cfg.TiltSplit &&
		f.WristY <= f.HipY+c.cfg.CurlWristHipBand {
		return KindCurl
	}

	return KindNone
}

// Observe pushes an instantaneous label into the history and returns the
// stable exercise. The history holds at most HistorySize entries, evicting
// the oldest. Once MinHistory entries are present, the most frequent
// non-none label becomes stable if it fills at least half the window;
// otherwise the previous stable label holds.
func (c *Classifier) Observe(label Kind) Kind {
	if len(c.history) >= c.cfg.HistorySize {
		copy(c.history, c.history[1:])
		c.history = c.history[:c.cfg.HistorySize-1]
	}
	c.history = append(c.history, label)

	if len(c.history) < c.cfg.MinHistory {
		return c.stable
	}

	counts := make(map[Kind]int, len(Kinds))
	for _, l := range c.history {
		if l != KindNone {
			counts[l]++
		}
	}

	best := KindNone
	bestCount := 0
	for _, kind := range Kinds {
		if counts[kind] > bestCount {
			best = kind
			bestCount = counts[kind]
		}
	}

	if best != KindNone && bestCount >= c.cfg.HistorySize/2 {
		c.stable = best
	}

	return c.stable
}

// Stable returns the current stable exercise.
func (c *Classifier) Stable() Kind {
	return c.stable
}
