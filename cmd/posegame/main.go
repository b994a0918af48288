// Package main provides the posegame command line: play the pose game with
// a webcam, replay recorded sessions, list poses and train new ones.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/xibuifgo/Group4-Game-Therapy/internal/config"
	"github.com/xibuifgo/Group4-Game-Therapy/internal/pose"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "posegame",
		Short:         "Body pose balance game",
		Long:          "posegame shows a sequence of balance poses, scores how closely the player matches each one from webcam landmarks and keeps a running total.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("catalog", "", "Path to a JSON pose catalog (default: built-in poses)")

	root.AddCommand(newPlayCmd(), newReplayCmd(), newPosesCmd(), newTrainCmd())
	return root
}

func main() {
	log.SetPrefix("[POSEGAME] ")

	// Load .env file if it exists
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the environment and applies the --catalog flag.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if path, _ := cmd.Flags().GetString("catalog"); path != "" {
		cfg.CatalogPath = path
	}
	return cfg, nil
}

// loadCatalog returns the catalog at path, or the built-in poses when path
// is empty.
func loadCatalog(path string) (*pose.Catalog, error) {
	if path == "" {
		return pose.DefaultCatalog(), nil
	}
	catalog, err := pose.LoadCatalog(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}
	return catalog, nil
}
