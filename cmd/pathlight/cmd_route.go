package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathlight/highlight"
	"github.com/katalvlaran/pathlight/server"
)

func newRouteCmd(a *app) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "route FROM TO",
		Short: "Find the shortest route between two cities",
		Long: `Find the shortest route between two cities.

FROM and TO may be node ids or names. An unreachable destination is
reported as "no path" and is not an error.

Examples:
  pathlight route "City 1" "City 5"
  pathlight route 53971515-7947-427e-b63a-8be1fdf62667 "City 7" --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := a.loadGraph()
			if err != nil {
				return err
			}
			svc, err := server.NewService(g, a.logger)
			if err != nil {
				return err
			}

			res, err := svc.Route(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(server.NewRouteResponse(res))
			}

			if !res.Found {
				fmt.Fprintf(out, "no path from %s to %s\n", res.From.Name, res.To.Name)
				return nil
			}
			fmt.Fprintln(out, strings.Join(res.Names, " -> "))
			fmt.Fprintf(out, "ids:   %s\n", strings.Join(res.Path, " -> "))
			for i := 1; i < len(res.Path); i++ {
				leg, _ := highlight.Weight(g.Edges, res.Path[i-1:i+1])
				fmt.Fprintf(out, "  %s -> %s: %g\n", res.Names[i-1], res.Names[i], leg)
			}
			fmt.Fprintf(out, "total: %g\n", res.Distance)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON for scripting")
	return cmd
}
