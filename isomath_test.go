package isometric

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	p := Pt(3, 4)
	if p.Add(Pt(1, 1)) != Pt(4, 5) {
		t.Error("Add")
	}
	if p.Sub(Pt(1, 1)) != Pt(2, 3) {
		t.Error("Sub")
	}
	if p.Scale(2) != Pt(6, 8) {
		t.Error("Scale")
	}
	assertNear(t, "Dot", p.Dot(Pt(2, 1)), 10)
	assertNear(t, "Len", p.Len(), 5)
	assertNear(t, "Dist", p.Dist(Pt(0, 0)), 5)
	assertPoint(t, "Lerp", Pt(0, 0).Lerp(Pt(10, -10), 0.25), Pt(2.5, -2.5))
}

func TestDegRadRoundtrip(t *testing.T) {
	assertNear(t, "45deg", DegToRad(45), math.Pi/4)
	assertNear(t, "pi", RadToDeg(math.Pi), 180)
	for _, d := range []float64{-30, 0, 18.435, 90, 360} {
		assertNear(t, "roundtrip", RadToDeg(DegToRad(d)), d)
	}
}

func TestCartesianToIso(t *testing.T) {
	h := math.Sqrt2 / 2
	assertPoint(t, "(1,0)", CartesianToIso(1, 0), Pt(h, -h))
	assertPoint(t, "(0,1)", CartesianToIso(0, 1), Pt(h, h))
	assertPoint(t, "(1,1)", CartesianToIso(1, 1), Pt(math.Sqrt2, 0))
}

func TestIsoMappingsAreLinear(t *testing.T) {
	cases := []struct {
		a, b Point
	}{
		{Pt(1, 0), Pt(0, 1)},
		{Pt(-3, 7), Pt(12.5, -4)},
		{Pt(100, 100), Pt(-100, -100)},
		{Pt(0, 0), Pt(33, 0.25)},
	}
	for _, c := range cases {
		sum := c.a.Add(c.b)
		assertPoint(t, "CartesianToIso additive", CartesianToIso(sum.X, sum.Y),
			CartesianToIso(c.a.X, c.a.Y).Add(CartesianToIso(c.b.X, c.b.Y)))
		assertPoint(t, "IsoToCartesian additive", IsoToCartesian(sum.X, sum.Y),
			IsoToCartesian(c.a.X, c.a.Y).Add(IsoToCartesian(c.b.X, c.b.Y)))
		assertPoint(t, "CartesianToIso homogeneous", CartesianToIso(3*c.a.X, 3*c.a.Y),
			CartesianToIso(c.a.X, c.a.Y).Scale(3))
	}
	assertPoint(t, "origin", CartesianToIso(0, 0), Pt(0, 0))
}

func TestIsoToCartesianInverse(t *testing.T) {
	for _, p := range []Point{{0, 0}, {1, 0}, {-3, 7}, {125.5, -40}} {
		iso := CartesianToIso(p.X, p.Y)
		assertPoint(t, "roundtrip", IsoToCartesian(iso.X, iso.Y), p)
		back := IsoToCartesian(p.X, p.Y)
		assertPoint(t, "reverse roundtrip", CartesianToIso(back.X, back.Y), p)
	}
}

func TestHUDPosition(t *testing.T) {
	assertPoint(t, "(100,0)", HUDPosition(100, 0), Pt(100*math.Sqrt(3)/2, -50))
	assertPoint(t, "(0,100)", HUDPosition(0, 100), Pt(100*math.Sqrt(3)/2, 50))
	assertPoint(t, "diagonal", HUDPosition(50, 50), Pt(100*math.Sqrt(3)/2, 0))
}

func TestHUDPositionAngleMatchesDefault(t *testing.T) {
	assertPoint(t, "30deg", HUDPositionAngle(12, -7, 30), HUDPosition(12, -7))
	assertPoint(t, "0deg", HUDPositionAngle(10, 5, 0), Pt(15, 0))
}
