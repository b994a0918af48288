package recording

import (
	"sync"
	"time"

	"gocv.io/x/gocv"

	"github.com/xibuifgo/Group4-Game-Therapy/internal/detector"
)

// Detector plays a recording back as a pose detector, one frame per
// Detect call. Pixels are ignored. After the last frame it keeps
// returning nil unless it loops.
type Detector struct {
	mu    sync.Mutex
	rec   *Recording
	index int
	loop  bool
}

// NewDetector creates a Detector over rec.
func NewDetector(rec *Recording, loop bool) *Detector {
	return &Detector{rec: rec, loop: loop}
}

func (d *Detector) Detect(frame *gocv.Mat) (*detector.BodyLandmarks, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.index >= len(d.rec.Frames) {
		if !d.loop || len(d.rec.Frames) == 0 {
			return nil, nil
		}
		d.index = 0
	}
	lm := d.rec.Frames[d.index].Landmarks
	d.index++
	return lm, nil
}

// Done reports whether a non-looping playback has served every frame.
func (d *Detector) Done() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return !d.loop && d.index >= len(d.rec.Frames)
}

func (d *Detector) Close() error {
	return nil
}

var _ detector.Detector = (*Detector)(nil)

// Tap passes detections through from a detector and records each one.
type Tap struct {
	detector.Detector
	rec *Recorder
	now func() time.Time
}

// NewTap records every detection made by d into rec, stamped with the
// wall clock.
func NewTap(d detector.Detector, rec *Recorder) *Tap {
	return &Tap{Detector: d, rec: rec, now: time.Now}
}

func (t *Tap) Detect(frame *gocv.Mat) (*detector.BodyLandmarks, error) {
	lm, err := t.Detector.Detect(frame)
	if err == nil {
		t.rec.Add(t.now(), lm)
	}
	return lm, err
}
