// Package app wires the camera, pose detector, game session and hooks into
// the running pose game.
package app

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/xibuifgo/Group4-Game-Therapy/internal/capture"
	"github.com/xibuifgo/Group4-Game-Therapy/internal/detector"
	"github.com/xibuifgo/Group4-Game-Therapy/internal/hook"
	"github.com/xibuifgo/Group4-Game-Therapy/internal/pose"
	"github.com/xibuifgo/Group4-Game-Therapy/internal/session"
)

// DefaultTickInterval runs the pipeline at 30Hz.
const DefaultTickInterval = time.Second / 30

// Config holds configuration options for the application.
type Config struct {
	Catalog      *pose.Catalog
	Session      session.Config
	Detector     detector.Config
	CameraID     int
	Mirror       bool
	TickInterval time.Duration
	HookDir      string
	HookTimeout  time.Duration
}

// App runs the game loop: read a frame, detect the body, advance the
// session and hand events to hooks.
type App struct {
	config     Config
	camera     capture.Camera
	detector   detector.Detector
	session    *session.Session
	hooks      *hook.Manager
	dispatcher *hook.Dispatcher

	// OnFrame, if set, receives the game view after every tick.
	OnFrame func(session.Frame)

	mu        sync.Mutex
	stopCh    chan struct{}
	done      chan struct{}
	lastPhase session.Phase
}

// New creates a new App. A nil catalog uses the built-in poses.
func New(config Config) *App {
	if config.Catalog == nil {
		config.Catalog = pose.DefaultCatalog()
	}
	if config.TickInterval <= 0 {
		config.TickInterval = DefaultTickInterval
	}
	if config.HookTimeout <= 0 {
		config.HookTimeout = 5 * time.Second
	}

	a := &App{
		config: config,
		camera: capture.NewCamera(capture.Options{
			DeviceID: config.CameraID,
			FPS:      int(time.Second / config.TickInterval),
			Mirror:   config.Mirror,
		}),
		session: session.New(config.Catalog, config.Session),
		hooks:   hook.NewManager(config.HookDir),
	}
	a.dispatcher = hook.NewDispatcher(a.hooks, hook.NewExecutor(config.HookTimeout))
	a.session.OnEvent = a.handleEvent

	// Try MediaPipe first, fall back to mock detector
	if mp, err := detector.NewMediaPipeDetector(config.Detector); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe pose detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = detector.NewMockDetector()
	}

	return a
}

// SetDetector sets the pose detector implementation to use.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// Detector returns the pose detector.
func (a *App) Detector() detector.Detector {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.detector
}

// SetCamera replaces the frame source. It must be called before Start.
func (a *App) SetCamera(c capture.Camera) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.camera = c
}

// DiscoverHooks scans the hook directory and returns how many hooks were
// found.
func (a *App) DiscoverHooks() (int, error) {
	if err := a.hooks.Discover(); err != nil {
		return 0, err
	}
	n := len(a.hooks.List())
	if n > 0 {
		log.Printf("Loaded %d hooks from %s", n, a.hooks.HookDir())
	}
	return n, nil
}

// Begin opens the camera and starts a new game without running the
// pipeline loop. Frames are then driven by ProcessFrame.
func (a *App) Begin(now time.Time) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.camera.Open(); err != nil {
		return err
	}
	a.session.Start(now)
	a.lastPhase = a.session.Phase()
	return nil
}

// Start opens the camera, starts a new game and runs the pipeline until
// Stop is called or the game is over.
func (a *App) Start() error {
	a.mu.Lock()
	running := a.stopCh != nil
	a.mu.Unlock()

	// Don't start if already running
	if running {
		return nil
	}

	if err := a.Begin(time.Now()); err != nil {
		return err
	}

	a.mu.Lock()
	a.stopCh = make(chan struct{})
	a.done = make(chan struct{})
	go a.runPipeline(a.stopCh, a.done)
	a.mu.Unlock()

	log.Println("Game pipeline started")
	return nil
}

// Done is closed when the pipeline exits. It is nil before Start.
func (a *App) Done() <-chan struct{} {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.done
}

// Stop halts the pipeline, waits for running hooks and releases resources.
func (a *App) Stop() {
	a.mu.Lock()
	stopCh, done := a.stopCh, a.done
	a.stopCh = nil
	a.mu.Unlock()

	if stopCh != nil {
		close(stopCh)
		<-done
	}

	a.dispatcher.Wait()

	a.mu.Lock()
	defer a.mu.Unlock()

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}
	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Game pipeline stopped")
}

// Session returns the game session.
func (a *App) Session() *session.Session {
	return a.session
}

// Hooks returns the hook manager.
func (a *App) Hooks() *hook.Manager {
	return a.hooks
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.camera
}

func (a *App) handleEvent(ev session.Event) {
	switch ev.Type {
	case session.EventPoseShown:
		log.Printf("Pose %d: %s", ev.PoseIndex+1, ev.PoseName)
	case session.EventPoseScored:
		log.Printf("Scored %s: %.1f (passed: %v, total %.0f)", ev.PoseName, ev.Score, ev.Passed, a.session.Total())
	case session.EventGameOver:
		log.Printf("Game over, total score %.0f", ev.Total)
	}
	a.dispatcher.Dispatch(context.Background(), ev)
}
