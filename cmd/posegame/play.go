package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/xibuifgo/Group4-Game-Therapy/internal/app"
	"github.com/xibuifgo/Group4-Game-Therapy/internal/capture"
	"github.com/xibuifgo/Group4-Game-Therapy/internal/config"
	"github.com/xibuifgo/Group4-Game-Therapy/internal/recording"
	"github.com/xibuifgo/Group4-Game-Therapy/internal/session"
)

type playOptions struct {
	camera      int
	hookDir     string
	skipPreview bool
	noMirror    bool
	replay      string
	record      string
}

func newPlayCmd() *cobra.Command {
	var opts playOptions

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the pose game with a webcam",
		Long:  "Opens the camera, waits for the player to raise both arms, then walks through every pose in the catalog and prints the scores.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("camera") {
				cfg.CameraID = opts.camera
			}
			if opts.hookDir != "" {
				cfg.HookDir = opts.hookDir
			}
			if opts.skipPreview {
				cfg.SkipPreview = true
			}
			if opts.noMirror {
				cfg.Mirror = false
			}
			return runPlay(cmd.OutOrStdout(), cfg, opts)
		},
	}

	cmd.Flags().IntVar(&opts.camera, "camera", 0, "Camera device ID")
	cmd.Flags().StringVar(&opts.hookDir, "hooks", "", "Hook directory (default: ~/.posegame/hooks)")
	cmd.Flags().BoolVar(&opts.skipPreview, "skip-preview", false, "Start at the first pose without the ready gesture")
	cmd.Flags().BoolVar(&opts.noMirror, "no-mirror", false, "Do not flip the camera image")
	cmd.Flags().StringVar(&opts.replay, "replay", "", "Play a landmark recording instead of using the camera")
	cmd.Flags().StringVar(&opts.record, "record", "", "Save detected landmarks to this recording file")
	return cmd
}

func runPlay(out io.Writer, cfg config.Config, opts playOptions) error {
	catalog, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return err
	}

	a := app.New(app.Config{
		Catalog:      catalog,
		Session:      cfg.Session(),
		Detector:     cfg.Detector(),
		CameraID:     cfg.CameraID,
		Mirror:       cfg.Mirror,
		TickInterval: cfg.TickInterval(),
		HookDir:      cfg.HookDir,
		HookTimeout:  cfg.HookTimeout,
	})

	if _, err := a.DiscoverHooks(); err != nil {
		log.Printf("Hook discovery failed: %v", err)
	}

	if opts.replay != "" {
		rec, err := recording.Load(opts.replay)
		if err != nil {
			return err
		}
		a.SetCamera(capture.NewBlankCamera())
		a.SetDetector(recording.NewDetector(rec, false))
	}

	var recorder *recording.Recorder
	if opts.record != "" {
		recorder = recording.NewRecorder(time.Now().Format("20060102-150405"), time.Now())
		a.SetDetector(recording.NewTap(a.Detector(), recorder))
	}

	var lastFeedback string
	a.OnFrame = func(f session.Frame) {
		if f.Phase == session.PhaseHold && f.Feedback != lastFeedback {
			lastFeedback = f.Feedback
			log.Printf("%.0f - %s", f.Score, f.Feedback)
		}
	}

	if err := a.Start(); err != nil {
		return fmt.Errorf("failed to start: %w", err)
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case <-sigCh:
		log.Println("Interrupted")
	case <-a.Done():
	}
	a.Stop()

	printResults(out, a.Session())

	if recorder != nil {
		if err := recorder.Recording().Save(opts.record); err != nil {
			return fmt.Errorf("failed to save recording: %w", err)
		}
		fmt.Fprintf(out, "Recording saved to %s\n", opts.record)
	}
	return nil
}

func printResults(out io.Writer, s *session.Session) {
	for _, r := range s.Results() {
		status := "failed"
		if r.Passed {
			status = "passed"
		}
		fmt.Fprintf(out, "%-24s %6.1f  %s  +%.0f\n", r.PoseName, r.Score, status, r.Awarded)
	}
	fmt.Fprintf(out, "Total score: %.0f\n", s.Total())
}
