// Package compat implements the compatibility oracle (component C2): the
// four-factor pairwise compatibility measure between two edge curves
// (angle, scale, position, visibility) and the symmetric neighbor-list
// build that drives which edges influence each other during relaxation.
//
// Ported from the original FDEB reference's free compatibility functions
// over Edge and its compatibility-list construction.
package compat
