package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathlight/graphio"
)

func newExportCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the loaded map as YAML or JSON",
		Long: `Write the loaded map to stdout. Paths reference cities by id, so the
output can be loaded back with --graph.

Examples:
  pathlight export > demo.yaml
  pathlight --graph demo.yaml export --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := graphio.ParseFormat(format)
			if err != nil {
				return err
			}
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			return graphio.Encode(cmd.OutOrStdout(), g, f)
		},
	}

	cmd.Flags().StringVar(&format, "format", string(graphio.FormatYAML), "Output format: yaml or json")
	return cmd
}
