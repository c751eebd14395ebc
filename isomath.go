package isometric

import "math"

// Point is a 2D position or offset in scene pixels.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Scale returns p scaled by k.
func (p Point) Scale(k float64) Point { return Point{p.X * k, p.Y * k} }

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// Len returns the Euclidean length of p.
func (p Point) Len() float64 { return math.Hypot(p.X, p.Y) }

// Dist returns the distance between p and q.
func (p Point) Dist(q Point) float64 { return p.Sub(q).Len() }

// Lerp interpolates between p and q.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{p.X + (q.X-p.X)*t, p.Y + (q.Y-p.Y)*t}
}

const (
	deg45 = math.Pi / 4
	deg30 = math.Pi / 6
)

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 { return deg * math.Pi / 180 }

// RadToDeg converts radians to degrees.
func RadToDeg(rad float64) float64 { return rad * 180 / math.Pi }

// CartesianToIso rotates a flat offset by -45 degrees into the basis used by
// the compensated entity meshes.
func CartesianToIso(x, y float64) Point {
	sin, cos := math.Sincos(-deg45)
	return Point{
		X: x*cos - y*sin,
		Y: x*sin + y*cos,
	}
}

// IsoToCartesian is the inverse of CartesianToIso.
func IsoToCartesian(x, y float64) Point {
	sin, cos := math.Sincos(deg45)
	return Point{
		X: x*cos - y*sin,
		Y: x*sin + y*cos,
	}
}

// HUDPosition projects a scene point onto the 30 degree basis used to place
// flat overlay widgets. It is not invertible.
func HUDPosition(x, y float64) Point {
	return HUDPositionAngle(x, y, 30)
}

// HUDPositionAngle is HUDPosition with a preset's HUD angle in degrees.
func HUDPositionAngle(x, y, deg float64) Point {
	sin, cos := math.Sincos(DegToRad(deg))
	return Point{
		X: (x + y) * cos,
		Y: -(x - y) * sin,
	}
}
