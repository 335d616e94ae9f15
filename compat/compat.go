package compat

import (
	"math"

	"github.com/fdebgo/fdeb/edge"
	"github.com/fdebgo/fdeb/vector2"
)

// epsilon guards against division by a near-zero edge length, matching the
// reference implementation's EPSILON constant.
const epsilon = 1e-6

// project returns the projection of point onto the infinite line through
// lineStart and lineEnd. Ported from the original FDEB reference's point
// projection helper.
func project(point, lineStart, lineEnd vector2.V) vector2.V {
	l := lineStart.Sub(lineEnd).Length()
	r := ((lineStart.Y-point.Y)*(lineStart.Y-lineEnd.Y) -
		(lineStart.X-point.X)*(lineEnd.X-lineStart.X)) / (l * l)

	return lineStart.Add(lineEnd.Sub(lineStart).Scale(r))
}

// Angle returns the angle-compatibility factor C_a = |â · b̂|, the absolute
// cosine of the angle between a and b's canonical direction vectors.
func Angle(a, b *edge.Curve) float64 {
	va := a.Vector().Normalize()
	vb := b.Vector().Normalize()

	return math.Abs(va.Dot(vb))
}

// Scale returns the scale-compatibility factor C_s, penalizing length
// mismatch between a and b symmetrically. Returns 0 if the average length
// is at or below epsilon.
func Scale(a, b *edge.Curve) float64 {
	l1, l2 := a.Length(), b.Length()
	avg := (l1 + l2) / 2.0
	if avg <= epsilon {
		return 0
	}

	return 2.0 / (avg/math.Min(l1, l2) + math.Max(l1, l2)/avg)
}

// Position returns the position-compatibility factor C_p, which falls off
// as the midpoints of a and b separate. Returns 0 if the average length is
// at or below epsilon.
func Position(a, b *edge.Curve) float64 {
	avg := (a.Length() + b.Length()) / 2.0
	if avg <= epsilon {
		return 0
	}
	mid1 := vector2.Mid(a.Start, a.End)
	mid2 := vector2.Mid(b.Start, b.End)

	return avg / (avg + mid1.Sub(mid2).Length())
}

// visibility computes the asymmetric projection visibility of a onto b:
// it projects a's endpoints onto the infinite line through b, then measures
// how well b's own midpoint is covered by that projected interval. Returns 0
// if b or the projected interval has a length at or below epsilon.
// Ported from the original FDEB reference's edge-visibility computation.
func visibility(a, b *edge.Curve) float64 {
	if b.Length() <= epsilon {
		return 0
	}
	i0 := project(a.Start, b.Start, b.End)
	i1 := project(a.End, b.Start, b.End)
	span := i0.Sub(i1).Length()
	if span <= epsilon {
		return 0
	}
	midI := vector2.Mid(i0, i1)
	midB := vector2.Mid(b.Start, b.End)

	return math.Max(0, 1.0-2.0*midB.Sub(midI).Length()/span)
}

// Visibility returns the symmetric visibility-compatibility factor C_v,
// the minimum of the two directions' asymmetric visibility.
func Visibility(a, b *edge.Curve) float64 {
	return math.Min(visibility(a, b), visibility(b, a))
}

// Score returns the aggregate compatibility C(a,b), the product of the four
// factors. It is never computed for a pair where a == b.
func Score(a, b *edge.Curve) float64 {
	return Angle(a, b) * Scale(a, b) * Position(a, b) * Visibility(a, b)
}

// BuildNeighbors computes, for every unordered pair of curves, the
// aggregate compatibility Score and returns a symmetric adjacency list
// keyed by index: neighbors[i] contains j iff Score(curves[i], curves[j])
// is at or above threshold. Ported from the original FDEB reference's
// compatibility-list construction.
func BuildNeighbors(curves []*edge.Curve, threshold float64) [][]int {
	neighbors := make([][]int, len(curves))
	for i := range curves {
		neighbors[i] = make([]int, 0)
	}

	for i := 0; i < len(curves); i++ {
		for j := i + 1; j < len(curves); j++ {
			if Score(curves[i], curves[j]) >= threshold {
				neighbors[i] = append(neighbors[i], j)
				neighbors[j] = append(neighbors[j], i)
			}
		}
	}

	return neighbors
}
