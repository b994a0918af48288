// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"

	"github.com/xibuifgo/Group4-Game-Therapy/internal/detector"
	"github.com/xibuifgo/Group4-Game-Therapy/internal/session"
)

// Config is the full set of runtime settings. Every field can be set with a
// POSEGAME_ environment variable.
type Config struct {
	CameraID int  `env:"CAMERA_ID" envDefault:"0" validate:"gte=0"`
	Mirror   bool `env:"MIRROR" envDefault:"true"`
	TickHz   int  `env:"TICK_HZ" envDefault:"30" validate:"gte=1,lte=120"`

	ModelComplexity int     `env:"MODEL_COMPLEXITY" envDefault:"2" validate:"gte=0,lte=2"`
	MinConfidence   float64 `env:"MIN_CONFIDENCE" envDefault:"0.5" validate:"gte=0,lte=1"`
	MinTrackingConf float64 `env:"MIN_TRACKING_CONFIDENCE" envDefault:"0.5" validate:"gte=0,lte=1"`

	ScoreThreshold  float64       `env:"SCORE_THRESHOLD" envDefault:"70" validate:"gte=0,lte=100"`
	ReadyHold       time.Duration `env:"READY_HOLD" envDefault:"3s" validate:"gte=0"`
	HoldDuration    time.Duration `env:"HOLD_DURATION" envDefault:"10s" validate:"gt=0"`
	ResultDuration  time.Duration `env:"RESULT_DURATION" envDefault:"3s" validate:"gte=0"`
	SmoothingWindow int           `env:"SMOOTHING_WINDOW" envDefault:"5" validate:"gte=1"`
	SkipPreview     bool          `env:"SKIP_PREVIEW"`

	// CatalogPath is a JSON pose catalog. Empty means the built-in poses.
	CatalogPath string `env:"CATALOG"`
	// HookDir holds hook subdirectories. Empty disables hooks.
	HookDir     string        `env:"HOOK_DIR"`
	HookTimeout time.Duration `env:"HOOK_TIMEOUT" envDefault:"5s" validate:"gt=0"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "POSEGAME_"}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.HookDir == "" {
		cfg.HookDir = DefaultHookDir()
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field ranges.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Session returns the game settings.
func (c Config) Session() session.Config {
	return session.Config{
		ScoreThreshold:  c.ScoreThreshold,
		ReadyHold:       c.ReadyHold,
		HoldDuration:    c.HoldDuration,
		ResultDuration:  c.ResultDuration,
		SmoothingWindow: c.SmoothingWindow,
		SkipPreview:     c.SkipPreview,
	}
}

// Detector returns the pose detector settings.
func (c Config) Detector() detector.Config {
	return detector.Config{
		ModelComplexity: c.ModelComplexity,
		MinConfidence:   c.MinConfidence,
		MinTrackingConf: c.MinTrackingConf,
	}
}

// TickInterval is the time between pipeline ticks.
func (c Config) TickInterval() time.Duration {
	if c.TickHz <= 0 {
		return time.Second / 30
	}
	return time.Second / time.Duration(c.TickHz)
}

// DefaultHookDir returns ~/.posegame/hooks, or "" when the home directory
// is unknown.
func DefaultHookDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".posegame", "hooks")
}
