package isometric

import (
	"fmt"
	"math"
)

// Quad is a quadrilateral given by its corners in order: top-left,
// top-right, bottom-right, bottom-left of the untransformed shape.
type Quad [4]Point

// Diagonals holds the diagonal lengths of a quad and their ratio.
type Diagonals struct {
	// D1 runs top-left to bottom-right, D2 top-right to bottom-left.
	D1, D2 float64
	// Proportion is D1 / D2, or 0 when D2 is zero.
	Proportion float64
	// Readable is the nearest readable form of Proportion.
	Readable string
}

// DiagonalProportion measures the diagonals of q.
func DiagonalProportion(q Quad) Diagonals {
	d := Diagonals{
		D1: q[0].Dist(q[2]),
		D2: q[1].Dist(q[3]),
	}
	if d.D2 != 0 {
		d.Proportion = d.D1 / d.D2
	}
	d.Readable = ReadableRatio(d.Proportion)
	return d
}

// readableMax bounds numerators and denominators tried by ReadableRatio.
const readableMax = 20

// readableTolerance is the largest error reported without the "~" prefix.
const readableTolerance = 0.01

var readableRoots = [...]struct {
	label string
	value float64
}{
	{"√2", math.Sqrt2},
	{"√3", math.Sqrt(3)},
	{"√5", math.Sqrt(5)},
}

// ReadableRatio returns the fraction "n:d" (n, d in 1..20), or root form
// "√k:d" (k in 2, 3, 5), closest to v. Candidates are tried denominators
// first, then roots; a later candidate only wins with a strictly smaller
// error. The result is prefixed with "~" when the error exceeds 0.01.
func ReadableRatio(v float64) string {
	best := ""
	bestDiff := math.Inf(1)
	for den := 1; den <= readableMax; den++ {
		for num := 1; num <= readableMax; num++ {
			if diff := math.Abs(float64(num)/float64(den) - v); diff < bestDiff {
				bestDiff = diff
				best = fmt.Sprintf("%d:%d", num, den)
			}
		}
	}
	for _, r := range readableRoots {
		for den := 1; den <= readableMax; den++ {
			if diff := math.Abs(r.value/float64(den) - v); diff < bestDiff {
				bestDiff = diff
				best = fmt.Sprintf("%s:%d", r.label, den)
			}
		}
	}
	if bestDiff > readableTolerance {
		return "~" + best
	}
	return best
}

// AngleBetween returns the angle in degrees between vectors u and v, or 0
// when either has zero length.
func AngleBetween(u, v Point) float64 {
	lu, lv := u.Len(), v.Len()
	if lu == 0 || lv == 0 {
		return 0
	}
	c := u.Dot(v) / (lu * lv)
	return RadToDeg(math.Acos(max(-1, min(1, c))))
}

// AngleBetweenLines returns the angle in degrees between segment a1-a2 and
// segment b1-b2.
func AngleBetweenLines(a1, a2, b1, b2 Point) float64 {
	return AngleBetween(a2.Sub(a1), b2.Sub(b1))
}

// QuadAngles returns the interior angle in degrees at each corner of q, in
// corner order.
func QuadAngles(q Quad) [4]float64 {
	var out [4]float64
	for i := range q {
		prev := q[(i+3)%4]
		next := q[(i+1)%4]
		out[i] = AngleBetween(prev.Sub(q[i]), next.Sub(q[i]))
	}
	return out
}
