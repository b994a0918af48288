package app

import (
	"errors"
	"log"
	"time"

	"github.com/xibuifgo/Group4-Game-Therapy/internal/capture"
	"github.com/xibuifgo/Group4-Game-Therapy/internal/detector"
	"github.com/xibuifgo/Group4-Game-Therapy/internal/session"
)

// runPipeline ticks the game at the configured rate until stopCh closes or
// the game is over.
func (a *App) runPipeline(stopCh <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(a.config.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case now := <-ticker.C:
			frame, err := a.ProcessFrame(now)
			if err != nil {
				log.Printf("Error processing frame: %v", err)
				continue
			}
			if frame.Phase == session.PhaseOver {
				return
			}
		}
	}
}

// ProcessFrame runs one tick: read a frame, detect the body and advance the
// session. Detection errors count as no person in view so the game clock
// keeps running; camera errors are returned.
func (a *App) ProcessFrame(now time.Time) (session.Frame, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	mat, err := a.camera.ReadFrame()
	if err != nil && !errors.Is(err, capture.ErrNoFrame) {
		return session.Frame{}, err
	}

	var body *detector.BodyLandmarks
	if mat != nil {
		body, err = a.detector.Detect(mat)
		mat.Close()
		if err != nil {
			log.Printf("Error detecting pose: %v", err)
			body = nil
		}
	}

	frame := a.session.Tick(now, body)
	if frame.Phase != a.lastPhase {
		log.Printf("Phase %s -> %s", a.lastPhase, frame.Phase)
		a.lastPhase = frame.Phase
	}

	if a.OnFrame != nil {
		a.OnFrame(frame)
	}
	return frame, nil
}
