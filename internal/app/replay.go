package app

import (
	"time"

	"github.com/xibuifgo/Group4-Game-Therapy/internal/pose"
	"github.com/xibuifgo/Group4-Game-Therapy/internal/recording"
	"github.com/xibuifgo/Group4-Game-Therapy/internal/session"
)

// Replay plays a recording through a fresh session, ticking once per
// recorded frame at the frame's own time. onEvent may be nil.
func Replay(rec *recording.Recording, catalog *pose.Catalog, config session.Config, onEvent func(session.Event)) *session.Session {
	s := session.New(catalog, config)
	s.OnEvent = onEvent

	start := time.Unix(0, 0)
	s.Start(start)
	for _, f := range rec.Frames {
		if s.Phase() == session.PhaseOver {
			break
		}
		s.Tick(start.Add(time.Duration(f.TimeMs)*time.Millisecond), f.Landmarks)
	}
	return s
}
