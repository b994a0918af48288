package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xibuifgo/Group4-Game-Therapy/internal/detector"
	"github.com/xibuifgo/Group4-Game-Therapy/internal/pose"
)

var t0 = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func at(seconds float64) time.Time {
	return t0.Add(time.Duration(seconds * float64(time.Second)))
}

// twoPoseCatalog holds the standing stance followed by the T-pose.
func twoPoseCatalog() *pose.Catalog {
	return pose.NewCatalog(pose.DefaultTemplates()[:2])
}

type recorder struct {
	events []Event
}

func (r *recorder) record(ev Event) {
	r.events = append(r.events, ev)
}

func (r *recorder) types() []EventType {
	out := make([]EventType, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Type
	}
	return out
}

func TestSession_FullGame(t *testing.T) {
	rec := &recorder{}
	s := New(twoPoseCatalog(), DefaultConfig())
	s.OnEvent = rec.record

	s.Start(at(0))
	require.Equal(t, PhasePreview, s.Phase())

	// Ready gesture interrupted, then held for 3s
	s.Tick(at(0), detector.ArmsRaisedLandmarks())
	s.Tick(at(1), detector.StandingLandmarks())
	s.Tick(at(2), detector.ArmsRaisedLandmarks())
	f := s.Tick(at(4), detector.ArmsRaisedLandmarks())
	assert.Equal(t, PhasePreview, f.Phase)
	f = s.Tick(at(5), detector.ArmsRaisedLandmarks())
	require.Equal(t, PhaseShow, f.Phase)
	assert.Equal(t, "Normal Standing Stance", f.PoseName)

	// Ready gesture again to start holding
	s.Tick(at(5), detector.ArmsRaisedLandmarks())
	f = s.Tick(at(8), detector.ArmsRaisedLandmarks())
	require.Equal(t, PhaseHold, f.Phase)

	for sec := 9; sec < 18; sec++ {
		f = s.Tick(at(float64(sec)), detector.StandingLandmarks())
		require.Equal(t, PhaseHold, f.Phase)
	}
	assert.InDelta(t, 100, f.Score, 1e-6)
	assert.Equal(t, time.Second, f.Remaining)

	f = s.Tick(at(18), detector.StandingLandmarks())
	require.Equal(t, PhaseResult, f.Phase)
	assert.InDelta(t, 100, s.Total(), 1e-6)

	f = s.Tick(at(21), nil)
	require.Equal(t, PhaseShow, f.Phase)
	assert.Equal(t, 1, f.PoseIndex)

	s.Tick(at(21), detector.ArmsRaisedLandmarks())
	f = s.Tick(at(24), detector.ArmsRaisedLandmarks())
	require.Equal(t, PhaseHold, f.Phase)

	// Standing still is a poor T-pose: only the torso matches
	for sec := 25; sec <= 34; sec++ {
		f = s.Tick(at(float64(sec)), detector.StandingLandmarks())
	}
	require.Equal(t, PhaseResult, f.Phase)

	results := s.Results()
	require.Len(t, results, 2)
	assert.True(t, results[0].Passed)
	assert.False(t, results[1].Passed)
	assert.InDelta(t, 100.0/3, results[1].Score, 1e-6)
	assert.Equal(t, 16.0, results[1].Awarded)
	assert.InDelta(t, 116, s.Total(), 1e-6)

	f = s.Tick(at(37), nil)
	assert.Equal(t, PhaseOver, f.Phase)

	assert.Equal(t, []EventType{
		EventGameStarted,
		EventPoseShown, EventPoseHold, EventPoseScored,
		EventPoseShown, EventPoseHold, EventPoseScored,
		EventGameOver,
	}, rec.types())
	for _, ev := range rec.events {
		assert.Equal(t, s.ID(), ev.SessionID)
	}
	assert.InDelta(t, 116, rec.events[len(rec.events)-1].Total, 1e-6)
}

func TestSession_NoLandmarksWhileHolding(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SkipPreview = true
	cfg.ReadyHold = 0

	s := New(twoPoseCatalog(), cfg)
	s.Start(at(0))
	require.Equal(t, PhaseShow, s.Phase())

	s.Tick(at(0), detector.ArmsRaisedLandmarks())
	require.Equal(t, PhaseHold, s.Phase())

	f := s.Tick(at(1), detector.StandingLandmarks())
	assert.Greater(t, f.Score, 90.0)
	assert.True(t, f.Detected)

	f = s.Tick(at(2), nil)
	assert.Equal(t, 0.0, f.Score)
	assert.Equal(t, pose.FeedbackNoPose, f.Feedback)
	assert.False(t, f.Detected)
}

func TestSession_Smoothing(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SkipPreview = true
	cfg.ReadyHold = 0
	cfg.SmoothingWindow = 2

	// T-pose only
	s := New(pose.NewCatalog(pose.DefaultTemplates()[1:2]), cfg)
	s.Start(at(0))
	s.Tick(at(0), detector.ArmsRaisedLandmarks())
	require.Equal(t, PhaseHold, s.Phase())

	f := s.Tick(at(1), detector.TPoseLandmarks())
	assert.InDelta(t, 100, f.Score, 1e-6)

	// One standing reading drags the smoothed arms away from 180
	f = s.Tick(at(2), detector.StandingLandmarks())
	assert.Less(t, f.Score, 100.0)

	// Window of two forgets the T-pose reading
	f = s.Tick(at(3), detector.StandingLandmarks())
	assert.InDelta(t, 100.0/3, f.Score, 1e-6)
}

func TestSession_ReadyProgress(t *testing.T) {
	s := New(twoPoseCatalog(), DefaultConfig())
	s.Start(at(0))

	s.Tick(at(10), detector.ArmsRaisedLandmarks())
	f := s.Tick(at(11.5), detector.ArmsRaisedLandmarks())
	assert.InDelta(t, 0.5, f.ReadyProgress, 1e-9)

	f = s.Tick(at(12), detector.StandingLandmarks())
	assert.Equal(t, 0.0, f.ReadyProgress)
}

func TestSession_PreviewRequiresWholeBody(t *testing.T) {
	s := New(twoPoseCatalog(), DefaultConfig())
	s.Start(at(0))

	body := detector.ArmsRaisedLandmarks()
	ankle, _ := body.Get(detector.LeftAnkle)
	ankle.Visibility = 0.1
	body.Set(detector.LeftAnkle, ankle)

	s.Tick(at(0), body)
	f := s.Tick(at(5), body)
	assert.Equal(t, PhasePreview, f.Phase)

	// Once past the preview the ankles no longer matter
	assert.True(t, ArmsRaised(body, false))
	assert.False(t, ArmsRaised(body, true))
	assert.False(t, ArmsRaised(nil, false))
}

func TestSession_Restart(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SkipPreview = true
	s := New(twoPoseCatalog(), cfg)

	s.Start(at(0))
	first := s.ID()
	s.Start(at(1))

	assert.NotEqual(t, first, s.ID())
	assert.Equal(t, 0.0, s.Total())
	assert.Empty(t, s.Results())
}

func TestSession_EmptyCatalog(t *testing.T) {
	rec := &recorder{}
	s := New(pose.NewCatalog(nil), DefaultConfig())
	s.OnEvent = rec.record

	s.Start(at(0))

	assert.Equal(t, PhaseOver, s.Phase())
	assert.Equal(t, []EventType{EventGameStarted, EventGameOver}, rec.types())
}

func TestSession_TickBeforeStart(t *testing.T) {
	s := New(twoPoseCatalog(), DefaultConfig())
	f := s.Tick(at(0), detector.ArmsRaisedLandmarks())
	assert.Equal(t, PhaseIdle, f.Phase)
}
