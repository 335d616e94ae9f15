package edge

import (
	"math"

	"github.com/fdebgo/fdeb/vector2"
)

// invSqrt2Pi is 1/sqrt(2*pi), the normalizing constant of the standard
// Gaussian density used by Smooth.
const invSqrt2Pi = 0.3989422804014327

// pointEpsilon is the machine-precision floor below which ApplyStep leaves
// a subdivision point unchanged rather than normalizing a near-zero force.
const pointEpsilon = 1e-6

// Curve is a single edge's polyline: a fixed Start/End pair plus an ordered
// sequence of interior Subdivisions, all in vector2 space. Start and End
// never move after construction; only Subdivisions are mutated, and only
// by the solver.
type Curve struct {
	// Source and Target are the node labels this curve connects, kept for
	// JSON emission.
	Source string
	Target string

	// Start and End are the (possibly swapped) anchor positions; see
	// direction normalization in New.
	Start vector2.V
	End   vector2.V

	// Subdivisions holds the interior control points, in order from Start
	// toward End. It never includes Start or End themselves.
	Subdivisions []vector2.V

	// Width is the cosmetic, weight-derived draw width, normalized by the
	// graph container after all curves are built.
	Width float64
}

// New constructs a Curve between start and end, performs the canonical
// direction normalization so that subdivision index i refers to "the same
// end" on any two compatible edges, and seeds a single midpoint subdivision.
//
// Ported from the original FDEB reference's Edge constructor and its
// arrange_direction step.
func New(source, target string, start, end vector2.V, width float64) *Curve {
	c := &Curve{
		Source: source,
		Target: target,
		Start:  start,
		End:    end,
		Width:  width,
	}
	c.arrangeDirection()
	c.Subdivisions = []vector2.V{vector2.Mid(c.Start, c.End)}

	return c
}

// Vector returns End - Start.
func (c *Curve) Vector() vector2.V {
	return c.End.Sub(c.Start)
}

// Length returns the straight-line distance between Start and End.
func (c *Curve) Length() float64 {
	return c.Vector().Length()
}

// arrangeDirection swaps Start/End so that, canonically, either |dx| >= |dy|
// and start.x <= end.x, or |dx| < |dy| and start.y <= end.y.
func (c *Curve) arrangeDirection() {
	v := c.Vector()
	swap := (math.Abs(v.X) >= math.Abs(v.Y) && c.End.X < c.Start.X) ||
		(math.Abs(v.X) < math.Abs(v.Y) && c.End.Y < c.Start.Y)
	if swap {
		c.Start, c.End = c.End, c.Start
	}
}

// Resubdivide doubles the number of interior subdivision points, sampling
// the current piecewise-linear polyline (Start, Subdivisions..., End) at
// evenly spaced parameters. Implemented iteratively with a fractional
// carry rather than recursively, ported directly from the original FDEB
// reference's edge subdivision routine.
func (c *Curve) Resubdivide() {
	oldNum := len(c.Subdivisions)
	if oldNum == 0 {
		c.Subdivisions = []vector2.V{vector2.Mid(c.Start, c.End)}

		return
	}

	newNum := 2 * oldNum
	segmentLength := float64(oldNum+1) / float64(newNum+1)

	result := make([]vector2.V, newNum)
	v1, v2 := c.Start, c.Subdivisions[0]
	v1Index, v2Index := -1, 0
	r := segmentLength

	for i := 0; i < newNum; i++ {
		result[i] = v1.Add(v2.Sub(v1).Scale(r))
		if r+segmentLength > 1.0 {
			r = segmentLength - (1.0 - r)
			v1Index++
			v2Index++
			if v1Index >= 0 {
				v1 = c.Subdivisions[v1Index]
			}
			if v2Index < oldNum {
				v2 = c.Subdivisions[v2Index]
			} else {
				v2 = c.End
			}
		} else {
			r += segmentLength
		}
	}

	c.Subdivisions = result
}

// AddSpringForce adds the spring-force contribution of this curve's own
// subdivisions into buf, which must have length len(c.Subdivisions).
// Ported from the original FDEB reference's spring-force accumulation.
func (c *Curve) AddSpringForce(buf []vector2.V, k float64) {
	n := len(c.Subdivisions)
	kp := k / (c.Length() * float64(n+1))

	if n == 1 {
		buf[0] = buf[0].Add(c.Start.Add(c.End).Sub(c.Subdivisions[0].Scale(2)).Scale(kp))

		return
	}

	buf[0] = buf[0].Add(c.Start.Add(c.Subdivisions[1]).Sub(c.Subdivisions[0].Scale(2)).Scale(kp))
	for i := 1; i < n-1; i++ {
		buf[i] = buf[i].Add(c.Subdivisions[i-1].Add(c.Subdivisions[i+1]).Sub(c.Subdivisions[i].Scale(2)).Scale(kp))
	}
	buf[n-1] = buf[n-1].Add(c.Subdivisions[n-2].Add(c.End).Sub(c.Subdivisions[n-1].Scale(2)).Scale(kp))
}

// AddElectrostaticForce adds the unit-direction pull toward other's
// subdivision points into buf. other must share this curve's subdivision
// count (guaranteed by the solver's synchronized resubdivision). Pairs
// closer than eps are skipped to avoid a singular direction.
// Ported from the original FDEB reference's electrostatic-force accumulation.
func (c *Curve) AddElectrostaticForce(buf []vector2.V, other *Curve, eps float64) {
	for i := range c.Subdivisions {
		d := other.Subdivisions[i].Sub(c.Subdivisions[i])
		dl := d.Length()
		if dl > eps {
			buf[i] = buf[i].Add(d.Div(dl))
		}
	}
}

// AddGravityForce adds an attractive pull toward center, with falloff
// exponent beta, into buf. Ported from the original FDEB reference's
// gravitational-force accumulation.
func (c *Curve) AddGravityForce(buf []vector2.V, center vector2.V, beta float64) {
	for i, p := range c.Subdivisions {
		d := center.Sub(p)
		dl := d.Length()
		buf[i] = buf[i].Add(d.Scale(0.1 * math.Pow(dl+1.0, beta)))
	}
}

// ApplyStep displaces each subdivision point by step, in the direction of
// its accumulated force in buf. Points whose force magnitude is at or below
// the machine epsilon floor are left unchanged. Ported from the original
// FDEB reference's per-iteration point update.
func (c *Curve) ApplyStep(buf []vector2.V, step float64) {
	for i, f := range buf {
		l := f.Length()
		if l > pointEpsilon {
			c.Subdivisions[i] = c.Subdivisions[i].Add(f.Scale(step / l))
		}
	}
}

// gaussWeight evaluates the standard normal density at distance dist
// (in index units) with standard deviation sigma. Ported from the original
// FDEB reference's Gaussian weighting helper.
func gaussWeight(dist int, sigma float64) float64 {
	d := float64(dist)

	return invSqrt2Pi * math.Exp(-0.5*(d/sigma)*(d/sigma)) / sigma
}

// Smooth replaces each subdivision point with a Gaussian-weighted average
// of all subdivision points and the two fixed endpoints, weighted by index
// distance along the curve (Start at index 0, the n subdivisions at 1..n,
// End at n+1). Ported from the original FDEB reference's final smoothing
// pass.
func (c *Curve) Smooth(sigma float64) {
	n := len(c.Subdivisions)
	result := make([]vector2.V, n)

	for i := 0; i < n; i++ {
		sum := vector2.Zero
		totalWeight := 0.0

		wStart := gaussWeight(i+1, sigma)
		sum = sum.Add(c.Start.Scale(wStart))
		totalWeight += wStart

		for j := 0; j < n; j++ {
			w := gaussWeight(i-j, sigma)
			sum = sum.Add(c.Subdivisions[j].Scale(w))
			totalWeight += w
		}

		wEnd := gaussWeight(n-i, sigma)
		sum = sum.Add(c.End.Scale(wEnd))
		totalWeight += wEnd

		result[i] = sum.Div(totalWeight)
	}

	c.Subdivisions = result
}

// NewForceBuffer returns a zeroed force accumulator sized for this curve's
// current subdivision count.
func (c *Curve) NewForceBuffer() []vector2.V {
	return make([]vector2.V, len(c.Subdivisions))
}
