package isometric

// ElevationAid is the ground marker of an elevated movable: a shadow at the
// unelevated footprint center and a line up to the displaced art.
type ElevationAid struct {
	Center Point
	Radius float64
	Tip    Point
}

const (
	shadowAlpha = 0.3
	lineAlpha   = 0.5
	lineWidth   = 2
)

var lineColor = ColorFromHex(0xff0000)

// ComputeElevationAid returns the marker for m under p. ok is false when the
// token visuals are disabled or the movable is not above the ground.
func ComputeElevationAid(m *Movable, p Projection) (aid ElevationAid, ok bool) {
	if !p.Isometric() || !p.TokenVisuals || m.Flags.Disabled || m.Elevation <= 0 {
		return ElevationAid{}, false
	}
	_, fh := m.Footprint.normalized()
	gridSize := p.Scene.GridSize
	if gridSize <= 0 {
		gridSize = 100
	}
	h := fh * gridSize
	pos := movablePosition(m, p, elevationOffset(m, p))
	return ElevationAid{
		Center: Point{m.X + h/2, m.Y + h/2},
		Radius: h / 2,
		Tip:    Point{pos.X, pos.Y + h/2},
	}, true
}

// newElevationVisual builds the render nodes for an aid: a translucent black
// circle and a red line, grouped in one container.
func newElevationVisual(entityID string, aid ElevationAid) *Node {
	c := NewContainer(entityID + "-visuals")
	c.EntityID = entityID

	shadow := NewCircle(entityID+"-shadow", aid.Center.X, aid.Center.Y, aid.Radius)
	shadow.Color = Color{0, 0, 0, 1}
	shadow.Alpha = shadowAlpha
	c.AddChild(shadow)

	line := NewLine(entityID+"-line", aid.Center, aid.Tip, lineWidth)
	line.Color = lineColor
	line.Alpha = lineAlpha
	c.AddChild(line)
	return c
}
