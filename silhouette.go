package isometric

import "image"

// Silhouette styling: darkened art with a green outline.
const (
	silhouetteDarken    = 0.3
	silhouetteThickness = 2
)

var silhouetteOutline = ColorFromHex(0x00ff59)

// SilhouetteEntry is one silhouette placed by the last rebuild.
type SilhouetteEntry struct {
	EntityID string
	TileID   string
	Node     *Node
}

// Silhouettes draws a darkened, outlined copy of every movable hidden by a
// static, clipped to the occluding static's art. Like the overlay it is
// derived state rebuilt from scratch.
type Silhouettes struct {
	layer   *Node
	entries []SilhouetteEntry

	darken  *ColorMatrixFilter
	outline *OutlineFilter

	masks map[image.Image]*alphaMask
}

// NewSilhouettes creates a silhouette set drawing into layer.
func NewSilhouettes(layer *Node) *Silhouettes {
	d := NewColorMatrixFilter()
	d.SetDarken(silhouetteDarken)
	return &Silhouettes{
		layer:   layer,
		darken:  d,
		outline: NewOutlineFilter(silhouetteThickness, silhouetteOutline),
		masks:   make(map[image.Image]*alphaMask),
	}
}

// Entries returns the silhouettes placed by the last rebuild. The returned
// slice MUST NOT be mutated by the caller.
func (s *Silhouettes) Entries() []SilhouetteEntry {
	return s.entries
}

// Clear removes and disposes every silhouette.
func (s *Silhouettes) Clear() {
	for _, e := range s.entries {
		e.Node.Dispose()
	}
	s.layer.RemoveChildren()
	clear(s.entries)
	s.entries = s.entries[:0]
}

// Rebuild clears the set and adds a silhouette for every movable hidden by
// an occluding static. A movable gets at most one silhouette, clipped by the
// first static found hiding it. It returns the number of silhouettes placed.
func (s *Silhouettes) Rebuild(movables []*Movable, statics []*Static) int {
	s.Clear()
	for _, m := range movables {
		if m.Mesh == nil || m.Flags.Disabled {
			continue
		}
		for _, t := range statics {
			if !t.Flags.Occluding || t.Mesh == nil || !s.occludes(m.Mesh, t.Mesh) {
				continue
			}
			s.add(m, t)
			break
		}
	}
	return len(s.entries)
}

// Occludes reports whether tile covers part of token on screen: both have
// non-empty world bounds, the bounds intersect and, when both carry an AlphaSource, their art has
// coverage at a common point.
func Occludes(token, tile *Node) bool {
	return occludes(token, tile, newAlphaMask(token.AlphaSource, token.TextureWidth, token.TextureHeight),
		newAlphaMask(tile.AlphaSource, tile.TextureWidth, tile.TextureHeight))
}

func (s *Silhouettes) occludes(token, tile *Node) bool {
	return occludes(token, tile, s.mask(token), s.mask(tile))
}

func occludes(token, tile *Node, tm, lm *alphaMask) bool {
	if token.Type == NodeTypeContainer || tile.Type == NodeTypeContainer {
		return false
	}
	tb, lb := token.WorldBounds(), tile.WorldBounds()
	if tb.Empty() || lb.Empty() || !tb.Intersects(lb) {
		return false
	}
	area := tb.Intersection(lb)
	if tm == nil || lm == nil {
		return true
	}
	return alphaOverlap(area, token, tm, tile, lm)
}

// mask returns the cached alpha mask of n's art, or nil when n has none.
func (s *Silhouettes) mask(n *Node) *alphaMask {
	if n.AlphaSource == nil {
		return nil
	}
	if m, ok := s.masks[n.AlphaSource]; ok && m.texW == n.TextureWidth && m.texH == n.TextureHeight {
		return m
	}
	m := newAlphaMask(n.AlphaSource, n.TextureWidth, n.TextureHeight)
	s.masks[n.AlphaSource] = m
	return m
}

func (s *Silhouettes) add(m *Movable, t *Static) {
	dup := m.Mesh.Clone()
	dup.Name = m.ID + "-silhouette"
	dup.EntityID = m.ID
	dup.Filters = []Filter{s.darken, s.outline}

	clip := t.Mesh.Clone()
	clip.Name = t.ID + "-clip"
	clip.EntityID = t.ID
	dup.SetMask(clip)

	s.layer.AddChild(dup)
	s.entries = append(s.entries, SilhouetteEntry{EntityID: m.ID, TileID: t.ID, Node: dup})
}

// Forget drops cached alpha masks. Call it when entity art changes.
func (s *Silhouettes) Forget() {
	clear(s.masks)
}
