package cli

import (
	"context"
	"os"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/fdebgo/fdeb/bundle"
	"github.com/fdebgo/fdeb/ioformat"
	"github.com/fdebgo/fdeb/solver"
	"github.com/fdebgo/fdeb/vector2"
)

// runOpts holds every CLI flag from the original FDEB reference's argument
// surface, renamed to Go conventions.
type runOpts struct {
	nodesPath string
	edgesPath string
	jsonPath  string

	k       float64
	s       float64
	i       int
	compat  float64
	cycles  int
	sigma   float64
	epsilon float64

	edgeWeight     float64
	edgePercentage float64

	gravCenterX float64
	gravCenterY float64
	gravExp     float64

	visualize bool
}

// Execute builds the fdeb root command and runs it against os.Args.
func Execute() error {
	var verbose bool
	opts := &runOpts{
		k:       solver.DefaultK,
		s:       solver.DefaultS,
		i:       solver.DefaultIterations,
		compat:  solver.DefaultCompat,
		cycles:  solver.DefaultCycles,
		sigma:   solver.DefaultSigma,
		epsilon: solver.DefaultEpsilon,
		gravExp: solver.DefaultBeta,
	}

	root := &cobra.Command{
		Use:           "fdeb",
		Short:         "Force-directed edge bundling calculator",
		Long:          "fdeb reads node positions and weighted edges, relaxes the edges into bundled polylines, and optionally writes the result as JSON.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBundle(cmd, opts)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	flags := root.Flags()
	flags.StringVarP(&opts.nodesPath, "nodes", "n", "", "file containing node positions (required)")
	flags.StringVarP(&opts.edgesPath, "edges", "e", "", "file containing edges (required)")
	flags.StringVar(&opts.jsonPath, "json", "", "path to write JSON output (unset: no output)")

	flags.Float64Var(&opts.k, "K", opts.k, "edge stiffness")
	flags.Float64Var(&opts.s, "S", opts.s, "initial step size")
	flags.IntVar(&opts.i, "I", opts.i, "initial iterations per cycle")
	flags.Float64VarP(&opts.compat, "compat", "c", opts.compat, "compatibility threshold")
	flags.IntVarP(&opts.cycles, "cycles", "C", opts.cycles, "number of relaxation cycles")
	flags.Float64VarP(&opts.sigma, "sigma", "s", opts.sigma, "smoothing width")
	flags.Float64VarP(&opts.epsilon, "epsilon", "E", opts.epsilon, "lowest interaction distance")

	flags.Float64Var(&opts.edgeWeight, "edge-weight", 0, "edge weight threshold; edges at or below this weight are dropped")
	flags.Float64Var(&opts.edgePercentage, "edge-percentage", 0, "keep only this percentage of edges, strongest first")

	flags.Float64Var(&opts.gravCenterX, "gravitation-center-x", 0, "gravitation center x; setting any gravitation-* flag turns gravity on")
	flags.Float64Var(&opts.gravCenterY, "gravitation-center-y", 0, "gravitation center y")
	flags.Float64Var(&opts.gravExp, "gravitation-exponent", opts.gravExp, "gravitation falloff exponent")

	flags.BoolVar(&opts.visualize, "visualize", false, "accepted for interface compatibility; this build has no real-time renderer")

	_ = root.MarkFlagRequired("nodes")
	_ = root.MarkFlagRequired("edges")

	return root.ExecuteContext(context.Background())
}

// runBundle loads the graph, relaxes it, and optionally exports JSON.
func runBundle(cmd *cobra.Command, opts *runOpts) error {
	logger := loggerFromContext(cmd.Context())

	var filterOpts []bundle.FilterOption
	if cmd.Flags().Changed("edge-weight") {
		filterOpts = append(filterOpts, bundle.WithWeightThreshold(opts.edgeWeight))
	}
	if cmd.Flags().Changed("edge-percentage") {
		filterOpts = append(filterOpts, bundle.WithPercentile(opts.edgePercentage))
	}

	g, err := bundle.Load(opts.nodesPath, opts.edgesPath, opts.compat, logger, filterOpts...)
	if err != nil {
		return reportAndExit(logger, err)
	}

	cfg := solver.NewConfig(
		solver.WithK(opts.k),
		solver.WithS(opts.s),
		solver.WithIterations(opts.i),
		solver.WithCycles(opts.cycles),
		solver.WithCompat(opts.compat),
		solver.WithSigma(opts.sigma),
		solver.WithEpsilon(opts.epsilon),
	)
	if cmd.Flags().Changed("gravitation-center-x") ||
		cmd.Flags().Changed("gravitation-center-y") ||
		cmd.Flags().Changed("gravitation-exponent") {
		cfg.Gravity = &solver.GravityConfig{
			Center:   vector2.V{X: opts.gravCenterX, Y: opts.gravCenterY},
			Exponent: opts.gravExp,
		}
	}

	if opts.visualize {
		logger.Warn("--visualize was set, but this build has no real-time renderer; ignoring")
	}

	if err := solver.New(cfg, logger).Run(cmd.Context(), g); err != nil {
		return reportAndExit(logger, err)
	}

	if opts.jsonPath != "" {
		if err := ioformat.ExportJSON(g, opts.jsonPath, time.Now()); err != nil {
			return reportAndExit(logger, err)
		}
		logger.Info("wrote JSON output", "path", opts.jsonPath)
	}

	return nil
}

// reportAndExit logs err at error level and returns it so cobra's non-zero
// exit path fires without printing redundant usage text.
func reportAndExit(logger *charmlog.Logger, err error) error {
	logger.Error("fdeb failed", "err", err)

	return err
}
