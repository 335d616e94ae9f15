// Package solver implements the relaxation driver (component C3): the
// cycle/iteration schedule, the parameter bundle (stiffness K, step S,
// iteration count I, cycle count C, compatibility threshold τ, smoothing
// σ, interaction floor ε, optional gravity), and the force-accumulation
// loop that deforms edge curves into bundles.
//
// # Schedule
//
//	for cycle = 1..C:
//	    if cycle > 1: every edge doubles its subdivisions
//	    for iter = 1..I_current:
//	        zero force buffers
//	        add spring forces
//	        add electrostatic forces (from compatibility neighbors)
//	        add gravity forces (if enabled)
//	        apply step
//	    S /= 2
//	    I_current = floor(2*I_current/3)
//	after last cycle: smooth every edge
//
// Ordering within an iteration is fixed (zero -> spring -> electrostatic
// -> gravity -> step); step-halving and resubdivision happen strictly
// between cycles.
//
// Ported from the original FDEB reference's iteration, cycle-update, and
// smoothing routines. Parameter defaults and the functional-options
// configuration style are grounded on
// builder/config.go's BuilderOption/builderConfig pattern: no process-wide
// singletons, a Config value flows explicitly into New.
package solver
