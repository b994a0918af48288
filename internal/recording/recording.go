// Package recording stores timed sequences of body landmarks so a game can
// be replayed or a pose template trained without a camera.
package recording

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/xibuifgo/Group4-Game-Therapy/internal/detector"
	"github.com/xibuifgo/Group4-Game-Therapy/internal/features"
)

// ErrInvalidRecording is returned for recordings that fail validation.
var ErrInvalidRecording = errors.New("invalid recording")

// Frame is one detector reading. Landmarks is nil when nobody was in view.
type Frame struct {
	TimeMs    int64                   `json:"t_ms" validate:"gte=0"`
	Landmarks *detector.BodyLandmarks `json:"landmarks"`
}

// Recording is a named, time-ordered list of frames.
type Recording struct {
	Name   string  `json:"name"`
	Frames []Frame `json:"frames" validate:"required,min=1,dive"`
}

// Load reads a recording from a JSON file.
func Load(path string) (*Recording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read recording: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a JSON recording. Frames are sorted by time.
func Parse(data []byte) (*Recording, error) {
	var r Recording
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecording, err)
	}
	if err := validator.New().Struct(r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRecording, err)
	}
	sort.SliceStable(r.Frames, func(i, j int) bool {
		return r.Frames[i].TimeMs < r.Frames[j].TimeMs
	})
	return &r, nil
}

// Save writes the recording as JSON.
func (r *Recording) Save(path string) error {
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode recording: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Duration is the time of the last frame.
func (r *Recording) Duration() time.Duration {
	if len(r.Frames) == 0 {
		return 0
	}
	return time.Duration(r.Frames[len(r.Frames)-1].TimeMs) * time.Millisecond
}

// At returns the landmarks of the latest frame at or before offset, or nil
// before the first frame.
func (r *Recording) At(offset time.Duration) *detector.BodyLandmarks {
	ms := offset.Milliseconds()
	i := sort.Search(len(r.Frames), func(i int) bool {
		return r.Frames[i].TimeMs > ms
	})
	if i == 0 {
		return nil
	}
	return r.Frames[i-1].Landmarks
}

// Features extracts the features of every frame with a person in view.
func (r *Recording) Features() []features.Set {
	var out []features.Set
	for _, f := range r.Frames {
		if f.Landmarks == nil {
			continue
		}
		out = append(out, features.Extract(f.Landmarks))
	}
	return out
}

// Recorder collects detector readings into a Recording.
type Recorder struct {
	start time.Time
	rec   Recording
}

// NewRecorder starts a recording at start.
func NewRecorder(name string, start time.Time) *Recorder {
	return &Recorder{start: start, rec: Recording{Name: name}}
}

// Add appends a reading taken at now.
func (r *Recorder) Add(now time.Time, lm *detector.BodyLandmarks) {
	r.rec.Frames = append(r.rec.Frames, Frame{
		TimeMs:    now.Sub(r.start).Milliseconds(),
		Landmarks: lm,
	})
}

// Recording returns what has been collected so far.
func (r *Recorder) Recording() *Recording {
	rec := r.rec
	rec.Frames = append([]Frame(nil), r.rec.Frames...)
	return &rec
}
