package isometric

import "testing"

func TestInFrontOfHorizontal(t *testing.T) {
	w := &Wall{ID: "h", A: Pt(0, 100), B: Pt(200, 100)}
	if !InFrontOf(Pt(50, 150), w) {
		t.Error("point below a horizontal wall should be in front")
	}
	if InFrontOf(Pt(50, 50), w) {
		t.Error("point above a horizontal wall should be behind")
	}
}

func TestInFrontOfVertical(t *testing.T) {
	w := &Wall{ID: "v", A: Pt(100, 0), B: Pt(100, 200)}
	if !InFrontOf(Pt(50, 100), w) {
		t.Error("point left of a vertical wall should be in front")
	}
	if InFrontOf(Pt(150, 100), w) {
		t.Error("point right of a vertical wall should be behind")
	}
}

func TestInFrontOfDiagonals(t *testing.T) {
	cases := []struct {
		name string
		wall Wall
		p    Point
		want bool
	}{
		{"shallow / below", Wall{A: Pt(0, 100), B: Pt(200, 0)}, Pt(100, 80), true},
		{"shallow / above", Wall{A: Pt(0, 100), B: Pt(200, 0)}, Pt(100, 20), false},
		{"shallow / reversed endpoints", Wall{A: Pt(200, 0), B: Pt(0, 100)}, Pt(100, 80), true},
		{"steep / below", Wall{A: Pt(0, 200), B: Pt(100, 0)}, Pt(50, 150), false},
		{"steep / above", Wall{A: Pt(0, 200), B: Pt(100, 0)}, Pt(50, 50), true},
		{"shallow \\ below", Wall{A: Pt(0, 0), B: Pt(200, 100)}, Pt(100, 80), true},
		{"shallow \\ above", Wall{A: Pt(0, 0), B: Pt(200, 100)}, Pt(100, 20), false},
		{"steep \\ below", Wall{A: Pt(0, 0), B: Pt(100, 200)}, Pt(50, 150), true},
		{"steep \\ above", Wall{A: Pt(0, 0), B: Pt(100, 200)}, Pt(50, 50), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := c.wall
			if got := InFrontOf(c.p, &w); got != c.want {
				t.Errorf("InFrontOf(%v) = %v, want %v", c.p, got, c.want)
			}
		})
	}
}

func TestInFrontOfOpenDoor(t *testing.T) {
	w := &Wall{A: Pt(0, 100), B: Pt(200, 100), Door: DoorRegular, State: DoorOpen}
	if InFrontOf(Pt(50, 150), w) {
		t.Error("nothing is in front of an open door")
	}
	w.State = DoorLocked
	if !InFrontOf(Pt(50, 150), w) {
		t.Error("a locked door occludes like a wall")
	}
	w.Door, w.State = DoorSecret, DoorOpen
	if InFrontOf(Pt(50, 150), w) {
		t.Error("nothing is in front of an open secret door")
	}
	if InFrontOf(Pt(50, 150), nil) {
		t.Error("nil wall")
	}
}

func TestWallCenter(t *testing.T) {
	w := &Wall{A: Pt(0, 100), B: Pt(200, 0)}
	assertPoint(t, "center", w.Center(), Pt(100, 50))
}

func TestCanSeeWall(t *testing.T) {
	w := &Wall{A: Pt(0, 100), B: Pt(200, 100)}
	from := Pt(100, 300)

	if !CanSeeWall(from, w, ClearSight) {
		t.Error("clear sight to a wall in front should see it")
	}
	if CanSeeWall(Pt(100, 0), w, ClearSight) {
		t.Error("a wall seen from behind is not visible")
	}
	blockAll := SightFunc(func(Point, Point) bool { return true })
	if CanSeeWall(from, w, blockAll) {
		t.Error("fully blocked sight should not see the wall")
	}
	onlyCenter := SightFunc(func(_, b Point) bool { return b != w.Center() })
	if !CanSeeWall(from, w, onlyCenter) {
		t.Error("seeing the midpoint is enough")
	}
}
