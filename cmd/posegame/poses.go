package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xibuifgo/Group4-Game-Therapy/internal/pose"
)

func newPosesCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "poses",
		Short: "List the poses in the catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("catalog")
			catalog, err := loadCatalog(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				templates := make([]pose.Template, 0, catalog.Count())
				for i := 0; i < catalog.Count(); i++ {
					t, _ := catalog.Get(i)
					templates = append(templates, t)
				}
				data, err := pose.MarshalCatalog(templates)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
				return nil
			}

			for i := 0; i < catalog.Count(); i++ {
				t, _ := catalog.Get(i)
				check := string(t.Check)
				if check == "" {
					check = "angles"
				}
				fmt.Fprintf(out, "%d. %-24s [%s] %s\n", i+1, t.Name, check, t.Description)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the catalog as JSON")
	return cmd
}
