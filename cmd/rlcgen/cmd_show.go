package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rlcnet/exercise"
)

func newShowCmd(f *rootFlags) *cobra.Command {
	var markdown bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the solution tables of a new network without writing files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, f)
			if err != nil {
				return err
			}
			g, err := generate(cmd, cfg, newLogger(cmd.ErrOrStderr(), f.verbose))
			if err != nil {
				return err
			}
			regimes, _ := cfg.Regimes()

			mode := exercise.ASCII
			if markdown {
				mode = exercise.Markdown
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%+v\n", g.result.Network)
			for _, r := range regimes {
				fmt.Fprintln(out)
				fmt.Fprintln(out, exercise.RenderTable(exercise.NewSheet(g.result.Network, r, g.voltage), mode))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&markdown, "markdown", false, "render Markdown tables")

	return cmd
}
