package isometric

// EntityKind distinguishes movable tokens from static tiles.
type EntityKind uint8

const (
	KindMovable EntityKind = iota // token-like; footprint in grid cells
	KindStatic                    // tile-like; footprint in scene pixels
)

// String returns "movable" or "static".
func (k EntityKind) String() string {
	if k == KindStatic {
		return "static"
	}
	return "movable"
}

// Footprint is the extent an entity occupies on the scene.
type Footprint struct {
	W, H float64
}

// normalized returns the footprint with non-positive dimensions treated as 1.
func (f Footprint) normalized() (w, h float64) {
	w, h = f.W, f.H
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return w, h
}

// Placement is the geometry and configuration common to every entity.
// The host owns it; the engine only reads it and writes to Mesh.
type Placement struct {
	ID string
	// X and Y are the document position (top-left) in scene pixels.
	X, Y      float64
	Footprint Footprint
	// ArtWidth and ArtHeight are the source art dimensions in pixels.
	ArtWidth, ArtHeight float64
	// Elevation is in grid distance units.
	Elevation float64
	Flags     Flags
	// Mesh is the render object the engine transforms. Nil while the host
	// has no renderable for the entity.
	Mesh *Node
}

// art returns the art dimensions with zero or negative values treated as 1.
func (p *Placement) art() (w, h float64) {
	w, h = p.ArtWidth, p.ArtHeight
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return w, h
}

// SpatialEntity is a placeable object: either *Movable or *Static.
type SpatialEntity interface {
	// Base returns the shared placement data.
	Base() *Placement
	// Kind reports which variant the entity is.
	Kind() EntityKind
	// Center returns the footprint center in scene pixels.
	Center(gridSize float64) Point
	spatialEntity()
}

// Movable is a token-like entity. Its footprint is measured in grid cells.
type Movable struct {
	Placement
	// ActorID is the actor the token represents ("" for none).
	ActorID string
	// Observer reports whether the viewing user may observe this token.
	Observer bool
}

// Base implements SpatialEntity.
func (m *Movable) Base() *Placement { return &m.Placement }

// Kind implements SpatialEntity.
func (m *Movable) Kind() EntityKind { return KindMovable }

// Center implements SpatialEntity.
func (m *Movable) Center(gridSize float64) Point {
	if gridSize <= 0 {
		gridSize = 100
	}
	fw, fh := m.Footprint.normalized()
	return Point{m.X + fw*gridSize/2, m.Y + fh*gridSize/2}
}

func (*Movable) spatialEntity() {}

// Static is a tile-like entity. Its footprint is measured in scene pixels.
type Static struct {
	Placement
}

// Base implements SpatialEntity.
func (s *Static) Base() *Placement { return &s.Placement }

// Kind implements SpatialEntity.
func (s *Static) Kind() EntityKind { return KindStatic }

// Center implements SpatialEntity.
func (s *Static) Center(float64) Point {
	fw, fh := s.Footprint.normalized()
	return Point{s.X + fw/2, s.Y + fh/2}
}

func (*Static) spatialEntity() {}
