package exercise

// Stage is the coarse phase a rep counter is currently in. The meaning of
// up/down is exercise-specific: arm bent vs extended for curls and
// pull-ups, body raised vs lowered for push-ups.
type Stage string

const (
	StageNone Stage = "none"
	StageUp   Stage = "up"
	StageDown Stage = "down"
)

// Thresholds defines the hysteresis band for one exercise's counter. The
// average elbow angle exceeding RestAngle puts the counter in RestStage;
// dropping below TriggerAngle while in RestStage flips it to TriggerStage
// and credits one rep.
type Thresholds struct {
	RestAngle    float64
	TriggerAngle float64
	RestStage    Stage
	TriggerStage Stage
}

// DefaultThresholds returns the built-in per-exercise threshold table.
// Curls and pull-ups credit a rep on the pull (extended→bent), push-ups on
// the descent (extended→lowered).
func DefaultThresholds() map[Kind]Thresholds {
	return map[Kind]Thresholds{
		KindCurl:   {RestAngle: 160, TriggerAngle: 45, RestStage: StageDown, TriggerStage: StageUp},
		KindPushup: {RestAngle: 160, TriggerAngle: 90, RestStage: StageUp, TriggerStage: StageDown},
		KindPullup: {RestAngle: 150, TriggerAngle: 70, RestStage: StageDown, TriggerStage: StageUp},
	}
}

// CounterState is the externally visible state of one exercise's counter.
type CounterState struct {
	Reps  int   `json:"reps"`
	Stage Stage `json:"stage"`
}

// Counter is the repetition state machine for one exercise. Rep counts are
// monotone: they only ever increase within a session.
type Counter struct {
	thresholds Thresholds
	reps       int
	stage      Stage
}

// NewCounter creates a Counter with the given thresholds.
func NewCounter(t Thresholds) *Counter {
	return &Counter{
		thresholds: t,
		stage:      StageNone,
	}
}

// Update advances the state machine with this frame's average elbow angle.
// A false gate clears the stage without evaluating the angle, so re-entering
// the valid pose never credits a rep from stale state. Returns true when a
// rep was credited.
func (c *Counter) Update(avgElbowAngle float64, gate bool) bool {
	if !gate {
		c.stage = StageNone
		return false
	}

	switch {
	case avgElbowAngle > c.thresholds.RestAngle:
		c.stage = c.thresholds.RestStage

	case avgElbowAngle < c.thresholds.TriggerAngle:
		from := c.stage
		c.stage = c.thresholds.TriggerStage
		// Only the rest→trigger transition counts; arriving at the
		// trigger side from anywhere else just adopts the stage.
		if from == c.thresholds.RestStage {
			c.reps++
			return true
		}
	}

	return false
}

// Reps returns the number of reps credited so far.
func (c *Counter) Reps() int {
	return c.reps
}

// Stage returns the current stage.
func (c *Counter) Stage() Stage {
	return c.stage
}

// ResetStage clears the stage without touching the rep count. Called when
// the counter's exercise stops being the stable one.
func (c *Counter) ResetStage() {
	c.stage = StageNone
}

// State returns the externally visible counter state.
func (c *Counter) State() CounterState {
	return CounterState{Reps: c.reps, Stage: c.stage}
}
