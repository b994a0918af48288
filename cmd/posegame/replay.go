package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xibuifgo/Group4-Game-Therapy/internal/app"
	"github.com/xibuifgo/Group4-Game-Therapy/internal/recording"
	"github.com/xibuifgo/Group4-Game-Therapy/internal/session"
)

func newReplayCmd() *cobra.Command {
	var (
		path    string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Score a landmark recording",
		Long:  "Runs a recorded session through the game at its recorded timing and prints each pose's score.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			catalog, err := loadCatalog(cfg.CatalogPath)
			if err != nil {
				return err
			}
			rec, err := recording.Load(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			var onEvent func(session.Event)
			if verbose {
				onEvent = func(ev session.Event) {
					fmt.Fprintf(out, "%6dms %-12s %s\n", ev.At.UnixMilli(), ev.Type, ev.PoseName)
				}
			}

			s := app.Replay(rec, catalog, cfg.Session(), onEvent)
			printResults(out, s)
			if s.Phase() != session.PhaseOver {
				fmt.Fprintf(out, "Recording ended during %s of pose %d\n", s.Phase(), s.PoseIndex()+1)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "recording", "r", "", "Path to a landmark recording JSON file (required)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Print every game event")
	if err := cmd.MarkFlagRequired("recording"); err != nil {
		panic(fmt.Sprintf("failed to mark recording flag as required: %v", err))
	}
	return cmd
}
