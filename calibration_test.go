package isometric

import (
	"math"
	"strings"
	"testing"
)

func assertApprox(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Errorf("%s = %.9f, want %.9f", name, got, want)
	}
}

func TestPivotStringAndParse(t *testing.T) {
	for p := PivotTopLeft; p <= PivotCenter; p++ {
		got, err := ParsePivot(p.String())
		if err != nil || got != p {
			t.Errorf("ParsePivot(%q) = %v, %v", p.String(), got, err)
		}
	}
	if _, err := ParsePivot("middle"); err == nil {
		t.Error("expected error for unknown pivot")
	}
	if Pivot(42).String() != "unknown" {
		t.Error("out of range pivot should be unknown")
	}
}

func TestNewCalibrationDefaults(t *testing.T) {
	c := NewCalibration()
	if c.Scale != 0.5 || c.Pivot != PivotTopLeft {
		t.Errorf("defaults = scale %v, pivot %v", c.Scale, c.Pivot)
	}
	if c.Rect.TextureWidth != CalibrationSize || c.Rect.TextureHeight != CalibrationSize {
		t.Error("rect should be a calibration-sized square")
	}
	if c.Rect.Alpha != 0.5 {
		t.Errorf("rect alpha = %v, want 0.5", c.Rect.Alpha)
	}
}

func TestCalibrationUntransformed(t *testing.T) {
	r := NewCalibration().Measure()
	assertApprox(t, "ratio", r.Diagonals.Proportion, 1, 1e-9)
	for _, a := range r.Corners {
		assertApprox(t, "corner", a, 90, 1e-9)
	}
	assertApprox(t, "line", r.LineAngle, 45, 1e-9)
	assertApprox(t, "hud", r.HUDAngle, 0, 1e-9)
}

func TestCalibrationTrueIsometric(t *testing.T) {
	c := NewCalibration()
	c.FromPreset(PresetOrDefault(""))
	r := c.Measure()

	assertApprox(t, "ratio", r.Diagonals.Proportion, math.Sqrt(3), 1e-9)
	if r.Diagonals.Readable != "√3:1" {
		t.Errorf("readable = %q, want √3:1", r.Diagonals.Readable)
	}
	assertApprox(t, "line", r.LineAngle, 0, 1e-6)
	assertApprox(t, "hud", r.HUDAngle, 30, 1e-6)
	want := [4]float64{60, 120, 60, 120}
	for i := range want {
		assertApprox(t, "corner", r.Corners[i], want[i], 1e-6)
	}
	if got := r.PresetLine(); got != "-30, 30, 0, 30.00, 45, 0, 0, 1.7320508" {
		t.Errorf("PresetLine = %q", got)
	}
}

func TestCalibrationDimetric(t *testing.T) {
	p, err := LookupPreset("Dimetric (2:1)")
	if err != nil {
		t.Fatal(err)
	}
	c := NewCalibration()
	c.FromPreset(p)
	r := c.Measure()
	assertApprox(t, "ratio", r.Diagonals.Proportion, 2, 1e-3)
	if r.Diagonals.Readable != "2:1" {
		t.Errorf("readable = %q, want 2:1", r.Diagonals.Readable)
	}
}

func TestCalibrationPresetsMatchTableRatio(t *testing.T) {
	for _, p := range Presets() {
		c := NewCalibration()
		c.FromPreset(p)
		assertApprox(t, p.Name, c.Measure().Diagonals.Proportion, p.Ratio, 1e-3)
	}
}

func TestCalibrationSyncWritesRect(t *testing.T) {
	c := NewCalibration()
	c.Scale = 2
	c.Rotation = 90
	c.SkewX, c.SkewY = 10, 20
	c.Pivot = PivotBottomRight
	c.Sync()

	n := c.Rect
	if n.ScaleX != 2 || n.ScaleY != 2 {
		t.Errorf("scale = (%v, %v), want 2", n.ScaleX, n.ScaleY)
	}
	assertApprox(t, "rotation", n.Rotation, math.Pi/2, 1e-12)
	assertApprox(t, "skewX", n.SkewX, DegToRad(10), 1e-12)
	assertApprox(t, "skewY", n.SkewY, DegToRad(20), 1e-12)
	if n.AnchorX != 1 || n.AnchorY != 1 {
		t.Errorf("anchor = (%v, %v), want (1, 1)", n.AnchorX, n.AnchorY)
	}
}

func TestCalibrationPivotLine(t *testing.T) {
	c := NewCalibration()
	c.Pivot = PivotCenter
	c.Sync()
	pivot, opposite := c.PivotLine()
	assertPoint(t, "pivot", pivot, Pt(0, 0))
	assertPoint(t, "opposite", opposite, Pt(-50, -50))

	c.Pivot = PivotTopRight
	c.Sync()
	pivot, opposite = c.PivotLine()
	assertPoint(t, "pivot", pivot, Pt(0, 0))
	assertPoint(t, "opposite", opposite, Pt(-100, 100))
}

func TestCalibrationCornersFollowRectPosition(t *testing.T) {
	c := NewCalibration()
	c.Rect.SetPosition(300, 200)
	c.Sync()
	q := c.Corners()
	assertPoint(t, "TL", q[0], Pt(300, 200))
	assertPoint(t, "BR", q[2], Pt(400, 300))
}

func TestReportString(t *testing.T) {
	c := NewCalibration()
	c.FromPreset(PresetOrDefault(""))
	s := c.Measure().String()
	for _, want := range []string{"rotation: -30", "skewX: 30", "hudAngle: 30.00", "ratio: 1.732050808", "approx. ratio: √3:1"} {
		if !strings.Contains(s, want) {
			t.Errorf("report missing %q:\n%s", want, s)
		}
	}
}

func TestFixed2NoNegativeZero(t *testing.T) {
	if got := fixed2(-0.001); got != "0.00" {
		t.Errorf("fixed2(-0.001) = %q, want 0.00", got)
	}
	if got := fixed2(-1.239); got != "-1.24" {
		t.Errorf("fixed2(-1.239) = %q, want -1.24", got)
	}
}
