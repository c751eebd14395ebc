package isometric

import (
	"log/slog"
	"math"
)

// ResetEntity restores an entity's mesh to the flat identity transform at its
// document position. Entities without a mesh are skipped.
func ResetEntity(e SpatialEntity) {
	resetEntity(e, logger)
}

func resetEntity(e SpatialEntity, log *slog.Logger) {
	p := e.Base()
	if p.Mesh == nil {
		log.Debug("mesh missing, reset skipped", "entity", p.ID)
		return
	}
	m := p.Mesh
	m.SetRotation(0)
	m.SetSkew(0, 0)
	m.SetScale(1, 1)
	m.SetPosition(p.X, p.Y)
	m.SetAnchor(0, 0)
}

// ApplyEntity writes the transform for the given projection: the isometric
// compensation in isometric mode, the identity transform otherwise or when
// the entity opted out. The result is a pure function of the entity and p,
// so repeated calls converge on the same state.
func ApplyEntity(e SpatialEntity, p Projection) {
	b := e.Base()
	if b.Mesh == nil {
		p.log().Debug("mesh missing, transform skipped", "entity", b.ID)
		return
	}
	if !p.Isometric() || b.Flags.Disabled {
		resetEntity(e, p.log())
		return
	}
	switch v := e.(type) {
	case *Movable:
		applyMovable(v, p)
	case *Static:
		applyStatic(v, p)
	}
}

// elevationOffset returns the pre-projection X offset produced by elevation,
// or zero when height adjustment is off.
func elevationOffset(m *Movable, p Projection) float64 {
	if !p.HeightAdjustment || m.Elevation == 0 {
		return 0
	}
	fw, _ := m.Footprint.normalized()
	return m.Elevation * (1 / p.Scene.gridDistance()) * 100 * math.Sqrt2 / fw
}

// movablePosition returns the projected mesh position with the given extra
// pre-projection X offset.
func movablePosition(m *Movable, p Projection, extraX float64) Point {
	fw, fh := m.Footprint.normalized()
	g := p.Scene.GridSizeRatio()
	iso := CartesianToIso((m.Flags.OffsetX+extraX)*g, m.Flags.OffsetY*g)
	return Point{m.X + iso.X*fw, m.Y + iso.Y*fh}
}

func applyMovable(m *Movable, p Projection) {
	mesh := m.Mesh
	mesh.SetRotation(p.Preset.ReverseRotation)
	mesh.SetSkew(p.Preset.ReverseSkewX, p.Preset.ReverseSkewY)
	mesh.SetAnchor(0, 1)

	fw, fh := m.Footprint.normalized()
	s := scaleOrDefault(m.Flags.Scale)
	g := p.Scene.GridSizeRatio()
	mesh.SetScale(fw*s*g, fh*s*g*p.Preset.Ratio)

	pos := movablePosition(m, p, elevationOffset(m, p))
	mesh.SetPosition(pos.X, pos.Y)
}

func applyStatic(t *Static, p Projection) {
	mesh := t.Mesh
	fw, fh := t.Footprint.normalized()
	aw, ah := t.art()
	s := scaleOrDefault(t.Flags.Scale)
	g := p.Scene.GridSizeRatio()
	iso := CartesianToIso(t.Flags.OffsetX*g, t.Flags.OffsetY*g)

	if !t.Flags.ReverseTransform {
		mesh.SetRotation(0)
		mesh.SetSkew(0, 0)
		mesh.SetAnchor(0, 0)
		mesh.SetScale(fw/aw*s, fh/ah*s)
		mesh.SetPosition(t.X+iso.X, t.Y+iso.Y)
		return
	}

	mesh.SetRotation(p.Preset.ReverseRotation)
	mesh.SetSkew(p.Preset.ReverseSkewX, p.Preset.ReverseSkewY)
	mesh.SetAnchor(0.5, 0.5)
	mesh.SetScale(fw/aw*s, fh/ah*s*p.Preset.Ratio)
	mesh.SetPosition(t.X+fw/2+iso.X, t.Y+fh/2+iso.Y)
}

// DepthSortKey orders movables back to front by their distance from the
// scene's top-left corner, normalized by the scene diagonal to [0, 10000].
func DepthSortKey(pos Point, c SceneConfig) int {
	origin := Point{c.Width * c.Padding, c.Height * c.Padding}
	far := origin.Add(Point{c.Width, c.Height})
	diag := origin.Dist(far)
	if diag == 0 {
		return 0
	}
	return int(math.Round(pos.Dist(origin) / diag * 10000))
}
