package exercise

import (
	"fmt"

	"github.com/ayusman/vyayam/internal/detector"
)

// Snapshot is the per-frame output of a Session: the stable exercise, the
// state of every counter, whether the position gate for the stable exercise
// was satisfied this frame, and a short human-readable status line.
// Snapshots are value copies; consumers cannot mutate session state through
// them.
type Snapshot struct {
	Exercise     Kind                  `json:"exercise"`
	Counts       map[Kind]CounterState `json:"counts"`
	PositionGate bool                  `json:"position_gate"`
	Feedback     string                `json:"feedback"`
}

// Session tracks one camera stream: it owns the classifier history and one
// rep counter per exercise, and turns a stream of per-frame landmarks into
// snapshots. A Session is not safe for concurrent use; create one per
// stream and drive it from a single goroutine.
type Session struct {
	cfg        Config
	classifier *Classifier
	counters   map[Kind]*Counter
	active     Kind
}

// NewSession creates a Session with the given configuration. Exercises
// missing from the threshold table fall back to the defaults.
func NewSession(cfg Config) *Session {
	defaults := DefaultThresholds()
	counters := make(map[Kind]*Counter, len(Kinds))
	for _, kind := range Kinds {
		t, ok := cfg.Thresholds[kind]
		if !ok {
			t = defaults[kind]
		}
		counters[kind] = NewCounter(t)
	}

	return &Session{
		cfg:        cfg,
		classifier: NewClassifier(cfg),
		counters:   counters,
		active:     KindNone,
	}
}

// Process consumes one frame of landmarks and returns the updated snapshot.
// A nil pose is a frame with no detection: it degrades to a none label and
// a false gate, never an error.
func (s *Session) Process(pose *detector.PoseLandmarks) Snapshot {
	f := ComputeFeatures(pose, s.cfg.VisibilityFloor)

	instant := s.classifier.Classify(f)
	stable := s.classifier.Observe(instant)

	// Switching exercises keeps the old counter's reps but clears its
	// stage, so a later re-entry starts from a known state.
	if stable != s.active {
		if prev, ok := s.counters[s.active]; ok {
			prev.ResetStage()
		}
		s.active = stable
	}

	gate := false
	if counter, ok := s.counters[stable]; ok {
		gate = f.ElbowsValid && s.positionGate(stable, f)
		counter.Update(f.AvgElbowAngle, gate)
	}

	return s.snapshot(gate)
}

// Active returns the current stable exercise.
func (s *Session) Active() Kind {
	return s.active
}

// Counts returns the current state of every counter.
func (s *Session) Counts() map[Kind]CounterState {
	counts := make(map[Kind]CounterState, len(s.counters))
	for kind, counter := range s.counters {
		counts[kind] = counter.State()
	}
	return counts
}

// positionGate reports whether the body is in a pose consistent with the
// given exercise. A false gate freezes that exercise's counter.
func (s *Session) positionGate(kind Kind, f Features) bool {
	switch kind {
	case KindCurl:
		return f.TorsoValid && f.TorsoTilt <= s.cfg.TiltSplit
	case KindPushup:
		return f.TorsoValid && f.TorsoTilt > s.cfg.TiltSplit
	case KindPullup:
		return f.WristsValid && f.ShouldersValid && f.WristY < f.ShoulderY
	}
	return false
}

func (s *Session) snapshot(gate bool) Snapshot {
	return Snapshot{
		Exercise:     s.active,
		Counts:       s.Counts(),
		PositionGate: gate,
		Feedback:     s.feedback(gate),
	}
}

func (s *Session) feedback(gate bool) string {
	if s.active == KindNone {
		return "no exercise detected"
	}
	if !gate {
		return fmt.Sprintf("hold a steady %s position", s.active)
	}
	return fmt.Sprintf("%s: %d reps", s.active, s.counters[s.active].Reps())
}
