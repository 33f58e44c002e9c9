package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathlight/config"
	"github.com/katalvlaran/pathlight/core"
	"github.com/katalvlaran/pathlight/graphio"
	"github.com/katalvlaran/pathlight/observability"
)

// app carries state shared by every subcommand.
type app struct {
	graphFile string
	logLevel  string
	logFormat string

	cfg    config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "pathlight",
		Short: "Shortest routes on a weighted city map",
		Long: `pathlight loads a map of cities and paths and finds the shortest route
between two cities with Dijkstra's algorithm.

Cities may be referenced by id or by name. Without --graph (or
PATHLIGHT_GRAPH_FILE) the built-in seven-city demo map is used.

Examples:
  pathlight route "City 6" "City 7"
  pathlight nodes --json
  pathlight --graph map.yaml export --format json
  pathlight serve --port 9090`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.graphFile, "graph", "",
		"Graph definition file (.yaml, .yml or .json); defaults to PATHLIGHT_GRAPH_FILE or the demo map")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "",
		"Log level: debug, info, warn, error (defaults to LOG_LEVEL)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "",
		"Log format: text or json (defaults to LOG_FORMAT)")

	root.AddCommand(
		newRouteCmd(a),
		newNodesCmd(a),
		newPathsCmd(a),
		newExportCmd(a),
		newServeCmd(a),
	)

	return root
}

// setup merges environment configuration with global flags.
// Flags win over the environment.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if a.graphFile != "" {
		cfg.Graph.File = a.graphFile
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Logging.Format = a.logFormat
	}

	a.cfg = cfg
	a.logger = observability.NewLoggerTo(cmd.ErrOrStderr(), cfg.Logging)
	return nil
}

// loadGraph reads the configured graph file, or the demo map.
func (a *app) loadGraph() (*core.Graph, error) {
	if a.cfg.Graph.File == "" {
		a.logger.Debug("using demo map")
		return graphio.Demo(), nil
	}
	g, err := graphio.Load(a.cfg.Graph.File)
	if err != nil {
		return nil, fmt.Errorf("load graph: %w", err)
	}
	a.logger.Debug("graph file loaded", "file", a.cfg.Graph.File)
	return g, nil
}
