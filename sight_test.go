package isometric

import "testing"

func TestWallSightBlocked(t *testing.T) {
	wall := &Wall{ID: "x", A: Pt(50, -10), B: Pt(50, 10), BlocksSight: true}
	s := WallSight{Walls: []*Wall{nil, wall}}
	if !s.Blocked(Pt(0, 0), Pt(100, 0)) {
		t.Error("crossing wall should block")
	}
	if s.Blocked(Pt(0, 20), Pt(100, 20)) {
		t.Error("ray passing beyond the wall end should be clear")
	}
}

func TestWallSightIgnoresNonBlocking(t *testing.T) {
	w := &Wall{A: Pt(50, -10), B: Pt(50, 10)}
	if (WallSight{Walls: []*Wall{w}}).Blocked(Pt(0, 0), Pt(100, 0)) {
		t.Error("wall without BlocksSight should not block")
	}
	w.BlocksSight = true
	w.Door, w.State = DoorRegular, DoorOpen
	if (WallSight{Walls: []*Wall{w}}).Blocked(Pt(0, 0), Pt(100, 0)) {
		t.Error("open door should not block")
	}
}

func TestWallSightTouchingDestination(t *testing.T) {
	w := &Wall{A: Pt(50, -10), B: Pt(50, 10), BlocksSight: true}
	if (WallSight{Walls: []*Wall{w}}).Blocked(Pt(0, 0), Pt(50, 0)) {
		t.Error("wall at the destination should not block")
	}
	if (WallSight{Walls: []*Wall{w}}).Blocked(Pt(0, 0), Pt(50, 10)) {
		t.Error("ray to the wall's own endpoint should not block")
	}
}

func TestRaySegmentHitParallelAndCollinear(t *testing.T) {
	a, b := Pt(0, 0), Pt(100, 0)
	if raySegmentHit(a, b, Pt(0, 5), Pt(100, 5)) {
		t.Error("parallel segment should not hit")
	}
	if !raySegmentHit(a, b, Pt(20, 0), Pt(30, 0)) {
		t.Error("collinear overlap should hit")
	}
	if raySegmentHit(a, b, Pt(120, 0), Pt(130, 0)) {
		t.Error("collinear segment past the ray should not hit")
	}
	if raySegmentHit(a, a, Pt(0, 0), Pt(10, 0)) {
		t.Error("zero-length ray should not hit")
	}
}

func TestSightFunc(t *testing.T) {
	calls := 0
	f := SightFunc(func(a, b Point) bool {
		calls++
		return a.X > b.X
	})
	if !f.Blocked(Pt(1, 0), Pt(0, 0)) || f.Blocked(Pt(0, 0), Pt(1, 0)) || calls != 2 {
		t.Error("SightFunc should delegate to the function")
	}
	if ClearSight.Blocked(Pt(0, 0), Pt(1e6, 1e6)) {
		t.Error("ClearSight never blocks")
	}
}
