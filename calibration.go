package isometric

import (
	"fmt"
	"strings"
)

// Pivot selects the point of the calibration rectangle that stays fixed
// under rotation and skew.
type Pivot uint8

const (
	PivotTopLeft Pivot = iota
	PivotTopRight
	PivotBottomRight
	PivotBottomLeft
	PivotCenter
)

var pivotNames = [...]string{
	PivotTopLeft:     "top-left",
	PivotTopRight:    "top-right",
	PivotBottomRight: "bottom-right",
	PivotBottomLeft:  "bottom-left",
	PivotCenter:      "center",
}

// String returns the pivot's name, such as "top-left".
func (p Pivot) String() string {
	if int(p) < len(pivotNames) {
		return pivotNames[p]
	}
	return "unknown"
}

// ParsePivot parses a pivot name as returned by Pivot.String.
func ParsePivot(s string) (Pivot, error) {
	for i, name := range pivotNames {
		if name == s {
			return Pivot(i), nil
		}
	}
	return 0, fmt.Errorf("isometric: unknown pivot %q", s)
}

// anchor returns the normalized anchor of the pivot and of the corner the
// diagonal line runs to.
func (p Pivot) anchor() (pivot, opposite Point) {
	switch p {
	case PivotTopRight:
		return Point{1, 0}, Point{0, 1}
	case PivotBottomRight:
		return Point{1, 1}, Point{0, 0}
	case PivotBottomLeft:
		return Point{0, 1}, Point{1, 0}
	case PivotCenter:
		return Point{0.5, 0.5}, Point{0, 0}
	}
	return Point{0, 0}, Point{1, 1}
}

// CalibrationSize is the side of the calibration rectangle in pixels.
const CalibrationSize = 200

// Calibration is a square transformed like the scene root, measured to
// derive the constants of a projection preset. Angles are in degrees.
type Calibration struct {
	Scale                  float64
	Rotation, SkewX, SkewY float64
	Pivot                  Pivot

	// Rect is the square's render node, positioned by the caller.
	Rect *Node
}

// NewCalibration returns an untransformed square at half scale pivoting on
// its top-left corner.
func NewCalibration() *Calibration {
	r := NewSprite("calibration", nil)
	r.SetTextureSize(CalibrationSize, CalibrationSize)
	r.Alpha = 0.5
	return &Calibration{Scale: 0.5, Rect: r}
}

// FromPreset sets the rotation and skew to those of p.
func (c *Calibration) FromPreset(p Preset) {
	c.Rotation, c.SkewX, c.SkewY = p.Rotation, p.SkewX, p.SkewY
}

// Sync writes the calibration parameters to Rect.
func (c *Calibration) Sync() {
	pivot, _ := c.Pivot.anchor()
	c.Rect.SetScale(c.Scale, c.Scale)
	c.Rect.SetRotation(DegToRad(c.Rotation))
	c.Rect.SetSkew(DegToRad(c.SkewX), DegToRad(c.SkewY))
	c.Rect.SetAnchor(pivot.X, pivot.Y)
}

// corner maps a normalized point of the square to world space.
func (c *Calibration) corner(u Point) Point {
	x, y := c.Rect.LocalToWorld(u.X*CalibrationSize, u.Y*CalibrationSize)
	return Point{x, y}
}

// Corners returns the square's transformed corners.
func (c *Calibration) Corners() Quad {
	return Quad{
		c.corner(Point{0, 0}),
		c.corner(Point{1, 0}),
		c.corner(Point{1, 1}),
		c.corner(Point{0, 1}),
	}
}

// PivotLine returns the pivot and the corner the diagonal line runs to, in
// world space.
func (c *Calibration) PivotLine() (pivot, opposite Point) {
	p, o := c.Pivot.anchor()
	return c.corner(p), c.corner(o)
}

// Report is one calibration measurement.
type Report struct {
	Rotation, SkewX, SkewY float64
	Diagonals              Diagonals
	// LineAngle is the angle between the horizontal through the pivot and
	// the pivot's diagonal.
	LineAngle float64
	// Corners holds the interior angles in corner order.
	Corners [4]float64
	// HUDAngle is half the top-left angle less LineAngle.
	HUDAngle float64
}

// Measure syncs Rect and measures the transformed square.
func (c *Calibration) Measure() Report {
	c.Sync()
	q := c.Corners()
	pivot, opposite := c.PivotLine()
	corners := QuadAngles(q)
	line := AngleBetween(Point{1, 0}, opposite.Sub(pivot))
	return Report{
		Rotation:  c.Rotation,
		SkewX:     c.SkewX,
		SkewY:     c.SkewY,
		Diagonals: DiagonalProportion(q),
		LineAngle: line,
		Corners:   corners,
		HUDAngle:  corners[0]/2 - line,
	}
}

// fixed2 formats v with two decimals, without a negative zero.
func fixed2(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	if s == "-0.00" {
		return "0.00"
	}
	return s
}

// PresetLine formats the report as a preset row: rotation, skewX, skewY,
// HUD angle, reverse rotation, reverse skews and ratio.
func (r Report) PresetLine() string {
	return fmt.Sprintf("%g, %g, %g, %s, 45, 0, 0, %.7f",
		r.Rotation, r.SkewX, r.SkewY, fixed2(r.HUDAngle), r.Diagonals.Proportion)
}

// String returns a multi-line summary of the measurement.
func (r Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "rotation: %g\n", r.Rotation)
	fmt.Fprintf(&b, "skewX: %g\n", r.SkewX)
	fmt.Fprintf(&b, "skewY: %g\n", r.SkewY)
	fmt.Fprintf(&b, "hudAngle: %s\n", fixed2(r.HUDAngle))
	fmt.Fprintf(&b, "ratio: %.9f\n", r.Diagonals.Proportion)
	fmt.Fprintf(&b, "diagonals: %.2f / %.2f\n", r.Diagonals.D1, r.Diagonals.D2)
	fmt.Fprintf(&b, "approx. ratio: %s\n", r.Diagonals.Readable)
	fmt.Fprintf(&b, "line angle: %.2f\n", r.LineAngle)
	fmt.Fprintf(&b, "adjusted angle: %s\n", fixed2(45-r.LineAngle))
	fmt.Fprintf(&b, "diamond angles: %s / %s", fixed2(r.HUDAngle), fixed2(r.Corners[1]/2-r.LineAngle))
	return b.String()
}
