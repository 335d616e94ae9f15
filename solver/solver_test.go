package solver_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fdebgo/fdeb/bundle"
	"github.com/fdebgo/fdeb/compat"
	"github.com/fdebgo/fdeb/edge"
	"github.com/fdebgo/fdeb/solver"
	"github.com/fdebgo/fdeb/vector2"
)

// twoParallelEdges builds a graph of two short, close, parallel horizontal
// edges: a compatible pair that should bundle toward each other.
func twoParallelEdges(gap float64) *bundle.Graph {
	a := edge.New("A0", "A1", vector2.V{X: 0, Y: 0}, vector2.V{X: 100, Y: 0}, 1)
	b := edge.New("B0", "B1", vector2.V{X: 0, Y: gap}, vector2.V{X: 100, Y: gap}, 1)
	curves := []*edge.Curve{a, b}

	return &bundle.Graph{
		Nodes: map[string]*bundle.Node{
			"A0": {Pos: a.Start}, "A1": {Pos: a.End},
			"B0": {Pos: b.Start}, "B1": {Pos: b.End},
		},
		Edges:     curves,
		Neighbors: compat.BuildNeighbors(curves, 0.1),
	}
}

// TestRun_ParallelEdgesBundleTogether ports the core FDEB scenario: two
// short, close, parallel edges are compatible and must be pulled closer to
// each other by the electrostatic force once relaxed.
func TestRun_ParallelEdgesBundleTogether(t *testing.T) {
	g := twoParallelEdges(10)
	require.NotEmpty(t, g.Neighbors[0], "parallel edges must be compatibility neighbors")

	before := g.Edges[0].Subdivisions[0].Sub(g.Edges[1].Subdivisions[0]).Length()

	cfg := solver.NewConfig(solver.WithCycles(2), solver.WithIterations(20))
	s := solver.New(cfg, nil)
	require.NoError(t, s.Run(context.Background(), g))

	after := minSeparation(g.Edges[0].Subdivisions, g.Edges[1].Subdivisions)
	assert.Less(t, after, before)
}

// minSeparation returns the smallest pairwise distance between
// corresponding subdivision points of two equally-subdivided curves.
func minSeparation(a, b []vector2.V) float64 {
	min := a[0].Sub(b[0]).Length()
	for i := range a {
		d := a[i].Sub(b[i]).Length()
		if d < min {
			min = d
		}
	}

	return min
}

// TestRun_IncompatibleEdgesStayPut verifies that two perpendicular,
// non-compatible edges never interact: with no gravity and a spring force
// that is already at rest on the single seeded midpoint, the subdivision
// points must not move beyond the solver's displacement floor.
func TestRun_IncompatibleEdgesStayPut(t *testing.T) {
	a := edge.New("A0", "A1", vector2.V{X: 0, Y: 0}, vector2.V{X: 100, Y: 0}, 1)
	b := edge.New("B0", "B1", vector2.V{X: 50, Y: -50}, vector2.V{X: 50, Y: 50}, 1)
	curves := []*edge.Curve{a, b}
	g := &bundle.Graph{
		Nodes: map[string]*bundle.Node{
			"A0": {Pos: a.Start}, "A1": {Pos: a.End},
			"B0": {Pos: b.Start}, "B1": {Pos: b.End},
		},
		Edges:     curves,
		Neighbors: compat.BuildNeighbors(curves, 0.9),
	}
	require.Empty(t, g.Neighbors[0], "perpendicular edges must not be compatibility neighbors")

	beforeA := g.Edges[0].Subdivisions[0]
	beforeB := g.Edges[1].Subdivisions[0]

	cfg := solver.NewConfig(solver.WithCycles(1), solver.WithIterations(10))
	s := solver.New(cfg, nil)
	require.NoError(t, s.Run(context.Background(), g))

	assert.InDelta(t, beforeA.X, g.Edges[0].Subdivisions[0].X, 1e-9)
	assert.InDelta(t, beforeA.Y, g.Edges[0].Subdivisions[0].Y, 1e-9)
	assert.InDelta(t, beforeB.X, g.Edges[1].Subdivisions[0].X, 1e-9)
	assert.InDelta(t, beforeB.Y, g.Edges[1].Subdivisions[0].Y, 1e-9)
}

// TestRun_GravityPullsTowardCenter verifies the optional gravity term
// displaces subdivisions toward the configured center. The edge is alone,
// with no compatibility neighbors, so no electrostatic pull competes with
// gravity.
func TestRun_GravityPullsTowardCenter(t *testing.T) {
	a := edge.New("A0", "A1", vector2.V{X: 0, Y: 0}, vector2.V{X: 100, Y: 0}, 1)
	g := &bundle.Graph{
		Nodes:     map[string]*bundle.Node{"A0": {Pos: a.Start}, "A1": {Pos: a.End}},
		Edges:     []*edge.Curve{a},
		Neighbors: [][]int{{}},
	}
	center := vector2.V{X: 50, Y: -1000}

	cfg := solver.NewConfig(
		solver.WithCycles(1),
		solver.WithIterations(1),
		solver.WithGravity(center, solver.DefaultBeta),
	)
	s := solver.New(cfg, nil)
	require.NoError(t, s.Run(context.Background(), g))

	for _, c := range g.Edges {
		assert.Less(t, c.Subdivisions[0].Y, 0.0, "gravity toward a point below the line must pull Y negative")
	}
}

// TestRun_Deterministic verifies two runs over identical input converge to
// identical output: no randomness, no map-order dependence.
func TestRun_Deterministic(t *testing.T) {
	g1 := twoParallelEdges(10)
	g2 := twoParallelEdges(10)

	cfg := solver.NewConfig(solver.WithCycles(2), solver.WithIterations(15))
	require.NoError(t, solver.New(cfg, nil).Run(context.Background(), g1))
	require.NoError(t, solver.New(cfg, nil).Run(context.Background(), g2))

	require.Equal(t, len(g1.Edges[0].Subdivisions), len(g2.Edges[0].Subdivisions))
	for i := range g1.Edges[0].Subdivisions {
		assert.InDelta(t, g1.Edges[0].Subdivisions[i].X, g2.Edges[0].Subdivisions[i].X, 1e-15)
		assert.InDelta(t, g1.Edges[0].Subdivisions[i].Y, g2.Edges[0].Subdivisions[i].Y, 1e-15)
	}
}

// TestRun_SubdivisionCountDoublesEachCycle verifies the resubdivision
// schedule: the count seeded at 1 doubles at the start of every cycle after
// the first.
func TestRun_SubdivisionCountDoublesEachCycle(t *testing.T) {
	g := twoParallelEdges(10)
	cfg := solver.NewConfig(solver.WithCycles(4), solver.WithIterations(1))
	require.NoError(t, solver.New(cfg, nil).Run(context.Background(), g))

	assert.Len(t, g.Edges[0].Subdivisions, 8) // 1 -> 2 -> 4 -> 8 over 4 cycles
}

// TestRun_RespectsContextCancellation verifies Run stops between cycles and
// surfaces the context error once canceled.
func TestRun_RespectsContextCancellation(t *testing.T) {
	g := twoParallelEdges(10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cfg := solver.NewConfig(solver.WithCycles(3), solver.WithIterations(5))
	err := solver.New(cfg, nil).Run(ctx, g)
	require.ErrorIs(t, err, context.Canceled)
}

// TestRun_SingleIterationDisplacementBoundedByStep verifies the core step
// invariant (Edge::update): no subdivision point may move farther than the
// current step size in a single iteration.
func TestRun_SingleIterationDisplacementBoundedByStep(t *testing.T) {
	g := twoParallelEdges(10)
	before := g.Edges[0].Subdivisions[0]

	cfg := solver.NewConfig(solver.WithCycles(1), solver.WithIterations(1), solver.WithS(0.4))
	require.NoError(t, solver.New(cfg, nil).Run(context.Background(), g))

	displaced := g.Edges[0].Subdivisions[0].Sub(before).Length()
	assert.LessOrEqual(t, displaced, 0.4+1e-9)
}
