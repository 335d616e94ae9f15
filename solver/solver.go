package solver

import (
	"context"

	charmlog "github.com/charmbracelet/log"

	"github.com/fdebgo/fdeb/bundle"
	"github.com/fdebgo/fdeb/vector2"
)

// Solver drives the cycle/iteration schedule documented in doc.go over a
// bundle.Graph. It holds no per-run mutable state beyond its Config and
// logger, so a single Solver can be reused across graphs.
type Solver struct {
	cfg    Config
	logger *charmlog.Logger
}

// New returns a Solver configured with cfg. A nil logger is replaced with a
// discarding one, matching bundle.Load's nil-safe logging policy.
func New(cfg Config, logger *charmlog.Logger) *Solver {
	if logger == nil {
		logger = charmlog.NewWithOptions(discard{}, charmlog.Options{})
	}

	return &Solver{cfg: cfg, logger: logger}
}

// discard is an io.Writer that drops everything written to it.
type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

// Run executes the full relaxation schedule against g in place, deforming
// every curve's Subdivisions. It checks ctx between cycles (not between
// individual iterations, matching the coarse cancellation granularity of
// Graph::iterate) and returns ctx.Err() if canceled.
//
// Ported from the original FDEB reference's iteration, cycle-update, and
// smoothing routines.
func (s *Solver) Run(ctx context.Context, g *bundle.Graph) error {
	step := s.cfg.S
	iterations := s.cfg.Iterations

	for cycle := 1; cycle <= s.cfg.Cycles; cycle++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		if cycle > 1 {
			for _, c := range g.Edges {
				c.Resubdivide()
			}
		}

		s.logger.Info("cycle start", "cycle", cycle, "step", step, "iterations", iterations, "subdivisions", subdivisionCount(g))

		for iter := 0; iter < iterations; iter++ {
			s.runIteration(g, step)
		}

		step /= 2
		iterations = (2 * iterations) / 3
	}

	for _, c := range g.Edges {
		c.Smooth(s.cfg.Sigma)
	}
	s.logger.Info("smoothing complete")

	return nil
}

// runIteration performs one zero -> spring -> electrostatic -> gravity ->
// step pass over every curve in g. The ordering is fixed, per doc.go.
func (s *Solver) runIteration(g *bundle.Graph, step float64) {
	buffers := make([][]vector2.V, len(g.Edges))
	for i, c := range g.Edges {
		buffers[i] = c.NewForceBuffer()
	}

	for i, c := range g.Edges {
		c.AddSpringForce(buffers[i], s.cfg.K)
	}

	for i, c := range g.Edges {
		for _, j := range g.Neighbors[i] {
			c.AddElectrostaticForce(buffers[i], g.Edges[j], s.cfg.Epsilon)
		}
	}

	if s.cfg.Gravity != nil {
		for i, c := range g.Edges {
			c.AddGravityForce(buffers[i], s.cfg.Gravity.Center, s.cfg.Gravity.Exponent)
		}
	}

	for i, c := range g.Edges {
		c.ApplyStep(buffers[i], step)
	}
}

// subdivisionCount sums the interior point count over every curve, used for
// progress logging only.
func subdivisionCount(g *bundle.Graph) int {
	total := 0
	for _, c := range g.Edges {
		total += len(c.Subdivisions)
	}

	return total
}
