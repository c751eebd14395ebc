package isometric

import "math"

// SightTester answers line-of-sight queries between two scene points.
type SightTester interface {
	// Blocked reports whether anything stops a sight ray from a to b.
	Blocked(a, b Point) bool
}

// SightFunc adapts a function to SightTester.
type SightFunc func(a, b Point) bool

// Blocked implements SightTester.
func (f SightFunc) Blocked(a, b Point) bool { return f(a, b) }

// ClearSight is a SightTester with nothing in the way.
var ClearSight SightTester = SightFunc(func(Point, Point) bool { return false })

// sightEpsilon keeps a ray that merely touches its own endpoints from being
// blocked by walls meeting there.
const sightEpsilon = 1e-9

// WallSight tests sight rays against a set of walls. Walls that do not block
// sight and open doors are ignored. A wall touching the ray only at its
// destination does not block it.
type WallSight struct {
	Walls []*Wall
}

// Blocked implements SightTester.
func (s WallSight) Blocked(a, b Point) bool {
	for _, w := range s.Walls {
		if w == nil || !w.BlocksSight || w.IsOpenDoor() {
			continue
		}
		if raySegmentHit(a, b, w.A, w.B) {
			return true
		}
	}
	return false
}

// raySegmentHit reports whether segment a-b crosses segment c-d strictly
// between a and b (ray parameter in (eps, 1-eps)), endpoints of c-d included.
// Collinear overlaps count as hits.
func raySegmentHit(a, b, c, d Point) bool {
	r := b.Sub(a)
	s := d.Sub(c)
	denom := cross(r, s)
	ac := c.Sub(a)

	if math.Abs(denom) < sightEpsilon {
		if math.Abs(cross(ac, r)) >= sightEpsilon {
			return false // parallel, not collinear
		}
		rr := r.Dot(r)
		if rr == 0 {
			return false
		}
		t0 := ac.Dot(r) / rr
		t1 := d.Sub(a).Dot(r) / rr
		lo, hi := math.Min(t0, t1), math.Max(t0, t1)
		return hi > sightEpsilon && lo < 1-sightEpsilon
	}

	t := cross(ac, s) / denom
	u := cross(ac, r) / denom
	return t > sightEpsilon && t < 1-sightEpsilon && u >= -sightEpsilon && u <= 1+sightEpsilon
}

// cross returns the z component of the 2D cross product.
func cross(p, q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}
