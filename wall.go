package isometric

import "math"

// DoorType classifies a wall as a plain wall or a door.
type DoorType uint8

const (
	DoorNone    DoorType = iota // plain wall
	DoorRegular                 // visible door
	DoorSecret                  // secret door
)

// DoorState is the open/closed state of a door wall.
type DoorState uint8

const (
	DoorClosed DoorState = iota
	DoorOpen
	DoorLocked
)

// Wall is a line-segment obstruction on the scene.
type Wall struct {
	ID   string
	A, B Point
	Door DoorType
	// State is only meaningful when Door is not DoorNone.
	State DoorState
	// BlocksSight reports whether the wall stops sight rays.
	BlocksSight bool
}

// Center returns the midpoint of the segment.
func (w *Wall) Center() Point {
	return w.A.Lerp(w.B, 0.5)
}

// IsOpenDoor reports whether the wall is a door in its open state.
func (w *Wall) IsOpenDoor() bool {
	return (w.Door == DoorRegular || w.Door == DoorSecret) && w.State == DoorOpen
}

// straightEpsilon is the tolerance for treating a wall as horizontal or vertical.
const straightEpsilon = 0.001

// InFrontOf reports whether p lies in front of the wall as seen by the
// isometric camera. Open doors never occlude, so nothing is in front of them.
//
// Horizontal walls: in front when p is below. Vertical walls: in front when p
// is to the left. Diagonal walls compare p against the wall's line at p.X,
// with the verdict picked by orientation and steepness:
//
//	"/" under 45 degrees: below the line
//	"/" 45 degrees or more: above the line
//	"\" either steepness: below the line
func InFrontOf(p Point, w *Wall) bool {
	if w == nil || w.IsOpenDoor() {
		return false
	}
	x1, y1 := w.A.X, w.A.Y
	x2, y2 := w.B.X, w.B.Y

	if math.Abs(y1-y2) < straightEpsilon {
		return p.Y > y1
	}
	if math.Abs(x1-x2) < straightEpsilon {
		return p.X < x1
	}

	angle := RadToDeg(math.Atan2(math.Abs(y2-y1), math.Abs(x2-x1)))
	slope := (y2 - y1) / (x2 - x1)
	diff := p.Y - (slope*(p.X-x1) + y1)

	if isForwardDiagonal(x1, y1, x2, y2) {
		if angle < 45 {
			return diff > 0
		}
		return diff < 0
	}
	return diff > 0
}

// isForwardDiagonal reports whether the segment rises to the right ("/") in
// screen coordinates.
func isForwardDiagonal(x1, y1, x2, y2 float64) bool {
	if x2 > x1 {
		return y2 < y1
	}
	return y2 > y1
}

// CanSeeWall reports whether a viewer at from is in front of the wall and
// has an unobstructed sight ray to either endpoint or the midpoint.
func CanSeeWall(from Point, w *Wall, sight SightTester) bool {
	if !InFrontOf(from, w) {
		return false
	}
	for _, target := range [3]Point{w.A, w.Center(), w.B} {
		if !sight.Blocked(from, target) {
			return true
		}
	}
	return false
}
