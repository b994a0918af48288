// Package session runs a pose game: it walks the player through the
// catalog, scores each held pose and keeps the running total.
package session

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/xibuifgo/Group4-Game-Therapy/internal/detector"
	"github.com/xibuifgo/Group4-Game-Therapy/internal/features"
	"github.com/xibuifgo/Group4-Game-Therapy/internal/pose"
)

// Phase is a step of the game.
type Phase string

const (
	// PhaseIdle is the state before Start.
	PhaseIdle Phase = "idle"
	// PhasePreview waits for the player to step into view and raise both arms.
	PhasePreview Phase = "preview"
	// PhaseShow displays the target pose until the player raises both arms.
	PhaseShow Phase = "show"
	// PhaseHold scores the player continuously while they hold the pose.
	PhaseHold Phase = "hold"
	// PhaseResult shows the pose's final score.
	PhaseResult Phase = "result"
	// PhaseOver is reached after the last pose.
	PhaseOver Phase = "over"
)

// Config holds the game timing and scoring policy.
type Config struct {
	// ScoreThreshold is the score at or above which a pose earns its full
	// score; below it the pose earns half.
	ScoreThreshold float64
	// ReadyHold is how long both arms must stay raised to advance.
	ReadyHold time.Duration
	// HoldDuration is how long each pose is scored.
	HoldDuration time.Duration
	// ResultDuration is how long the result of a pose is shown.
	ResultDuration time.Duration
	// SmoothingWindow is the number of recent readings averaged for scoring.
	SmoothingWindow int
	// SkipPreview starts directly at the first pose.
	SkipPreview bool
}

// DefaultConfig returns the standard game settings.
func DefaultConfig() Config {
	return Config{
		ScoreThreshold:  70,
		ReadyHold:       3 * time.Second,
		HoldDuration:    10 * time.Second,
		ResultDuration:  3 * time.Second,
		SmoothingWindow: features.DefaultWindowSize,
	}
}

// Result is the outcome of one pose.
type Result struct {
	PoseIndex int
	PoseName  string
	Score     float64
	Passed    bool
	// Awarded is what the pose added to the total.
	Awarded float64
}

// Frame is the per-tick view of the game for display.
type Frame struct {
	Phase     Phase
	PoseIndex int
	PoseName  string
	Score     float64
	Feedback  string
	Total     float64
	// ReadyProgress is how far through the ready gesture the player is, 0-1.
	ReadyProgress float64
	// Remaining is the time left in a timed phase.
	Remaining time.Duration
	Detected  bool
	Stable    bool
}

// Session is one play-through of the catalog. It is not safe for
// concurrent use.
type Session struct {
	id      string
	config  Config
	catalog *pose.Catalog

	phase      Phase
	poseIndex  int
	phaseStart time.Time
	readySince time.Time

	window   *features.Window
	prev     *detector.BodyLandmarks
	score    float64
	feedback string
	total    float64
	results  []Result

	// OnEvent, if set, receives every game event synchronously.
	OnEvent func(Event)
}

// New creates a session over catalog.
func New(catalog *pose.Catalog, config Config) *Session {
	return &Session{
		id:      uuid.New().String(),
		config:  config,
		catalog: catalog,
		phase:   PhaseIdle,
		window:  features.NewWindow(config.SmoothingWindow),
	}
}

// ID returns the session identifier. It changes on every Start.
func (s *Session) ID() string {
	return s.id
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// PoseIndex returns the index of the current pose.
func (s *Session) PoseIndex() int {
	return s.poseIndex
}

// Total returns the running total.
func (s *Session) Total() float64 {
	return s.total
}

// Results returns the outcome of every completed pose.
func (s *Session) Results() []Result {
	return append([]Result(nil), s.results...)
}

// Start begins a new game at now, discarding any previous progress.
func (s *Session) Start(now time.Time) {
	s.id = uuid.New().String()
	s.poseIndex = 0
	s.total = 0
	s.results = nil
	s.prev = nil
	s.readySince = time.Time{}
	s.resetScore()

	s.emit(Event{Type: EventGameStarted, At: now})

	if s.catalog.Count() == 0 {
		s.enter(PhaseOver, now)
		s.emit(Event{Type: EventGameOver, At: now})
		return
	}
	if s.config.SkipPreview {
		s.showPose(now)
		return
	}
	s.enter(PhasePreview, now)
}

// Tick advances the game to now given the landmarks detected this frame,
// which may be nil. It returns what should be displayed.
func (s *Session) Tick(now time.Time, lm *detector.BodyLandmarks) Frame {
	stable := detector.IsStable(lm, s.prev, detector.StabilityThreshold)
	if lm != nil {
		s.prev = lm
	}

	switch s.phase {
	case PhasePreview:
		if s.readyHeld(now, lm, true) {
			s.showPose(now)
		}

	case PhaseShow:
		if s.readyHeld(now, lm, false) {
			s.enter(PhaseHold, now)
			s.window.Reset()
			s.emit(s.poseEvent(EventPoseHold, now))
		}

	case PhaseHold:
		s.scoreTick(lm)
		if now.Sub(s.phaseStart) >= s.config.HoldDuration {
			s.finishPose(now)
		}

	case PhaseResult:
		if now.Sub(s.phaseStart) >= s.config.ResultDuration {
			s.poseIndex++
			if s.poseIndex < s.catalog.Count() {
				s.showPose(now)
			} else {
				s.enter(PhaseOver, now)
				s.emit(Event{Type: EventGameOver, Total: s.total, At: now})
			}
		}
	}

	return s.frame(now, lm != nil, stable)
}

func (s *Session) enter(p Phase, now time.Time) {
	s.phase = p
	s.phaseStart = now
	s.readySince = time.Time{}
}

func (s *Session) showPose(now time.Time) {
	s.enter(PhaseShow, now)
	s.resetScore()
	s.emit(s.poseEvent(EventPoseShown, now))
}

func (s *Session) resetScore() {
	s.score = 0
	s.feedback = ""
	s.window.Reset()
}

// readyHeld tracks the ready gesture and reports whether it has been held
// for the configured time.
func (s *Session) readyHeld(now time.Time, lm *detector.BodyLandmarks, requireVisible bool) bool {
	if !ArmsRaised(lm, requireVisible) {
		s.readySince = time.Time{}
		return false
	}
	if s.readySince.IsZero() {
		s.readySince = now
	}
	return now.Sub(s.readySince) >= s.config.ReadyHold
}

// scoreTick scores the smoothed recent readings against the current pose.
func (s *Session) scoreTick(lm *detector.BodyLandmarks) {
	if lm == nil {
		s.score = 0
		s.feedback = s.catalog.Feedback(nil, s.poseIndex)
		return
	}

	s.window.Push(features.Extract(lm))
	smoothed := s.window.Smoothed()
	s.score = s.catalog.Score(smoothed, s.poseIndex)
	s.feedback = s.catalog.Feedback(smoothed, s.poseIndex)
}

func (s *Session) finishPose(now time.Time) {
	r := Result{
		PoseIndex: s.poseIndex,
		PoseName:  s.poseName(),
		Score:     s.score,
		Passed:    s.score >= s.config.ScoreThreshold,
	}
	if r.Passed {
		r.Awarded = s.score
	} else {
		r.Awarded = math.Floor(s.score / 2)
	}

	s.total += r.Awarded
	s.results = append(s.results, r)
	s.enter(PhaseResult, now)

	ev := s.poseEvent(EventPoseScored, now)
	ev.Score = r.Score
	ev.Passed = r.Passed
	ev.Feedback = s.feedback
	s.emit(ev)
}

func (s *Session) poseName() string {
	info, _ := s.catalog.Describe(s.poseIndex)
	return info.Name
}

func (s *Session) frame(now time.Time, detected, stable bool) Frame {
	f := Frame{
		Phase:     s.phase,
		PoseIndex: s.poseIndex,
		PoseName:  s.poseName(),
		Score:     s.score,
		Feedback:  s.feedback,
		Total:     s.total,
		Detected:  detected,
		Stable:    stable,
	}

	if !s.readySince.IsZero() && s.config.ReadyHold > 0 {
		f.ReadyProgress = math.Min(1, float64(now.Sub(s.readySince))/float64(s.config.ReadyHold))
	}

	var limit time.Duration
	switch s.phase {
	case PhaseHold:
		limit = s.config.HoldDuration
	case PhaseResult:
		limit = s.config.ResultDuration
	}
	if limit > 0 {
		if left := limit - now.Sub(s.phaseStart); left > 0 {
			f.Remaining = left
		}
	}

	return f
}

// ArmsRaised reports whether both wrists are above their shoulders. With
// requireVisible, the shoulders, elbows and ankles must also be visible so
// that the whole body is known to be in frame.
func ArmsRaised(lm *detector.BodyLandmarks, requireVisible bool) bool {
	if lm == nil {
		return false
	}
	if requireVisible && !lm.AllVisible(
		detector.LeftShoulder, detector.RightShoulder,
		detector.LeftElbow, detector.RightElbow,
		detector.LeftAnkle, detector.RightAnkle,
	) {
		return false
	}

	lw, okLW := lm.Get(detector.LeftWrist)
	ls, okLS := lm.Get(detector.LeftShoulder)
	rw, okRW := lm.Get(detector.RightWrist)
	rs, okRS := lm.Get(detector.RightShoulder)
	if !okLW || !okLS || !okRW || !okRS {
		return false
	}
	return lw.Y < ls.Y && rw.Y < rs.Y
}
