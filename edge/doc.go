// Package edge implements the curve representation at the heart of the
// bundling engine (component C1 of the design): an ordered polyline from a
// fixed source anchor to a fixed target anchor, with an interior sequence
// of movable subdivision points.
//
// A Curve is built once (direction-normalized, seeded with a single
// midpoint subdivision) and then mutated only by the solver: Resubdivide
// doubles the subdivision count between cycles, the Add*Force methods
// accumulate per-iteration force terms into a caller-owned buffer, and
// ApplyStep displaces each subdivision point by a fixed-magnitude step in
// its accumulated force direction. Smooth applies a final Gaussian blur
// along the subdivision index after the last cycle.
//
// Ported from the original FDEB reference's Edge struct: direction
// arrangement, subdivision, spring/electrostatic/gravitational force
// accumulation, the per-iteration update, and final smoothing.
package edge
