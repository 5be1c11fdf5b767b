package main

import (
	"fmt"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rlcnet/exercise"
	"github.com/katalvlaran/rlcnet/store"
)

func newHistoryCmd(f *rootFlags) *cobra.Command {
	var (
		limit    int
		markdown bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List archived exercises",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}
			st, err := store.Open(cfg.Output.Store)
			if err != nil {
				return err
			}
			defer st.Close()

			recs, err := st.ListExercises(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(recs) == 0 {
				fmt.Fprintln(out, "No exercises archived yet.")
				return nil
			}

			w := table.NewWriter()
			w.SetStyle(table.StyleLight)
			w.AppendHeader(table.Row{"Run", "Created", "Topology", "Voltage", "Time", "Seed", "Attempts"})
			for _, r := range recs {
				w.AppendRow(table.Row{r.Run, r.CreatedAt.Local().Format(time.DateTime), r.Topology,
					exercise.FormatNumber(r.Voltage), r.Regimes, r.Seed, r.Attempts})
			}
			if markdown {
				fmt.Fprintln(out, w.RenderMarkdown())
			} else {
				fmt.Fprintln(out, w.Render())
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "number of exercises to list (0 = all)")
	cmd.Flags().BoolVar(&markdown, "markdown", false, "render a Markdown table")

	return cmd
}
