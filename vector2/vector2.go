// Package vector2 provides a minimal double-precision 2D vector type used
// throughout the bundling engine: node positions, edge endpoints, subdivision
// points, and accumulated forces are all vector2.V values.
//
// The package has no dependencies beyond the standard library. No example
// repository in the retrieval pack ships a dedicated geometry/vector
// primitive, so this stays stdlib-only rather than reaching for a
// third-party library that nothing in the corpus actually uses (see
// DESIGN.md).
package vector2

import "math"

// zeroEpsilon is the length below which Normalize treats a vector as the
// zero vector rather than dividing by a near-zero length.
const zeroEpsilon = 1e-12

// V is a point or displacement in the plane.
type V struct {
	X float64
	Y float64
}

// Zero is the additive identity.
var Zero = V{}

// Add returns v + o.
func (v V) Add(o V) V {
	return V{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v V) Sub(o V) V {
	return V{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v scaled by s.
func (v V) Scale(s float64) V {
	return V{X: v.X * s, Y: v.Y * s}
}

// Div returns v divided by s. Callers must guard against s == 0.
func (v V) Div(s float64) V {
	return V{X: v.X / s, Y: v.Y / s}
}

// Dot returns the dot product of v and o.
func (v V) Dot(o V) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Length returns the Euclidean norm of v.
func (v V) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length. If v is (near) zero, it
// returns Zero rather than dividing by ~0.
func (v V) Normalize() V {
	l := v.Length()
	if l < zeroEpsilon {
		return Zero
	}

	return v.Div(l)
}

// Mid returns the midpoint of a and b.
func Mid(a, b V) V {
	return a.Add(b).Scale(0.5)
}
