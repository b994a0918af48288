package session

import "time"

// EventType identifies a game event.
type EventType string

const (
	EventGameStarted EventType = "game_started"
	EventPoseShown   EventType = "pose_shown"
	EventPoseHold    EventType = "pose_hold"
	EventPoseScored  EventType = "pose_scored"
	EventGameOver    EventType = "game_over"
)

// Event is emitted on every phase change that a narrator or other
// collaborator may want to react to.
type Event struct {
	Type        EventType
	SessionID   string
	PoseIndex   int
	PoseName    string
	Description string
	Score       float64
	Passed      bool
	Feedback    string
	Total       float64
	At          time.Time
}

func (s *Session) poseEvent(t EventType, now time.Time) Event {
	info, _ := s.catalog.Describe(s.poseIndex)
	return Event{
		Type:        t,
		PoseIndex:   s.poseIndex,
		PoseName:    info.Name,
		Description: info.Description,
		Total:       s.total,
		At:          now,
	}
}

func (s *Session) emit(ev Event) {
	if s.OnEvent == nil {
		return
	}
	ev.SessionID = s.id
	s.OnEvent(ev)
}
