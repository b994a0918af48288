package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/xibuifgo/Group4-Game-Therapy/internal/pose"
	"github.com/xibuifgo/Group4-Game-Therapy/internal/recording"
)

type trainOptions struct {
	recording   string
	name        string
	description string
	tolerance   float64
	out         string
}

func newTrainCmd() *cobra.Command {
	var opts trainOptions

	cmd := &cobra.Command{
		Use:   "train",
		Short: "Build a pose template from a recording",
		Long:  "Averages the joint angles of every frame in a recording of someone holding a pose and writes a one-pose catalog.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := trainTemplate(opts)
			if err != nil {
				return err
			}
			if opts.out == "" {
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
				return nil
			}
			if err := os.WriteFile(opts.out, data, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", opts.out, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s to %s\n", opts.name, opts.out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.recording, "recording", "r", "", "Path to a landmark recording JSON file (required)")
	cmd.Flags().StringVarP(&opts.name, "name", "n", "", "Pose name (required)")
	cmd.Flags().StringVarP(&opts.description, "description", "d", "", "Pose description")
	cmd.Flags().Float64Var(&opts.tolerance, "tolerance", 20, "Default angle tolerance in degrees")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output catalog file (default: stdout)")
	for _, name := range []string{"recording", "name"} {
		if err := cmd.MarkFlagRequired(name); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", name, err))
		}
	}
	return cmd
}

func trainTemplate(opts trainOptions) ([]byte, error) {
	rec, err := recording.Load(opts.recording)
	if err != nil {
		return nil, err
	}

	tmpl, err := pose.NewTrainer().TrainGeneric(opts.name, opts.description, rec.Features(), opts.tolerance)
	if err != nil {
		return nil, fmt.Errorf("failed to train %s: %w", opts.name, err)
	}
	return pose.MarshalCatalog([]pose.Template{tmpl})
}
