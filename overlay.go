package isometric

import (
	"log/slog"

	"github.com/tanema/gween/ease"
)

// Tile opacity bounds and step for the overlay's tile duplicates.
const (
	tileOpacityStep    = 0.5
	tileOpacityDefault = 1.0
)

// OverlayEntry is one duplicate placed in the overlay by the last rebuild.
type OverlayEntry struct {
	EntityID string
	Kind     EntityKind
	Node     *Node
	// Behind reports that the entity sits behind an included tile's wall
	// and was pushed to the back of the entity sub-layer.
	Behind bool

	baseAlpha float64
}

// OverlayInput is the scene snapshot one overlay rebuild works from.
type OverlayInput struct {
	// Control is the entity the overlay is computed for. Nil yields an
	// empty overlay.
	Control  *Movable
	Movables []*Movable
	Statics  []*Static
	Walls    map[string]*Wall
	// Sight answers ray queries. Nil means nothing blocks sight.
	Sight    SightTester
	GridSize float64
	// Logger receives skipped-work diagnostics. Nil uses the package logger.
	Logger *slog.Logger
}

// Overlay keeps tiles whose linked wall the control entity can see, and the
// entities it can see, drawn above everything else. Its contents are derived
// state: every Rebuild clears the layer and repopulates it from scratch.
type Overlay struct {
	root     *Node
	tiles    *Node
	entities *Node

	entries     []OverlayEntry
	controlID   string
	tileOpacity float64

	// FadeSeconds is the duration of tile opacity changes. Zero applies
	// them immediately.
	FadeSeconds float32
	fades       []*TweenGroup
}

// NewOverlay creates the overlay's tile and entity sub-layers under root.
// Tiles always draw below entities.
func NewOverlay(root *Node) *Overlay {
	o := &Overlay{
		root:        root,
		tiles:       NewContainer("overlay-tiles"),
		entities:    NewContainer("overlay-entities"),
		tileOpacity: tileOpacityDefault,
	}
	o.entities.ZIndex = 1
	root.AddChild(o.tiles)
	root.AddChild(o.entities)
	return o
}

// Entries returns the duplicates placed by the last rebuild. The returned
// slice MUST NOT be mutated by the caller.
func (o *Overlay) Entries() []OverlayEntry {
	return o.entries
}

// ControlID returns the ID of the entity the last rebuild was computed for,
// or "" when the overlay is empty.
func (o *Overlay) ControlID() string {
	return o.controlID
}

// TileOpacity returns the opacity applied to tile duplicates.
func (o *Overlay) TileOpacity() float64 {
	return o.tileOpacity
}

// Clear removes and disposes every duplicate and stops running fades.
func (o *Overlay) Clear() {
	for _, e := range o.entries {
		e.Node.Dispose()
	}
	o.tiles.RemoveChildren()
	o.entities.RemoveChildren()
	clear(o.entries)
	o.entries = o.entries[:0]
	o.fades = o.fades[:0]
	o.controlID = ""
}

// Rebuild clears the overlay and repopulates it for in. It returns the
// number of duplicates placed.
func (o *Overlay) Rebuild(in OverlayInput) int {
	o.Clear()
	log := in.Logger
	if log == nil {
		log = logger
	}
	control := in.Control
	if control == nil {
		log.Debug("overlay empty, no control entity")
		return 0
	}
	sight := in.Sight
	if sight == nil {
		sight = ClearSight
	}
	o.controlID = control.ID
	from := control.Center(in.GridSize)

	var included []*Wall
	for _, t := range in.Statics {
		if t.Flags.LinkedWallID == "" {
			continue
		}
		w := in.Walls[t.Flags.LinkedWallID]
		if w == nil || !CanSeeWall(from, w, sight) {
			continue
		}
		if t.Mesh == nil {
			log.Debug("tile mesh missing, overlay skipped", "entity", t.ID)
			continue
		}
		included = append(included, w)
		o.addTile(t)
	}

	if control.Mesh != nil {
		o.addEntity(control, false)
	} else {
		log.Debug("control mesh missing, overlay skipped", "entity", control.ID)
	}

	for _, m := range in.Movables {
		if m == control || m.ID == control.ID {
			continue
		}
		if m.Mesh == nil {
			log.Debug("entity mesh missing, overlay skipped", "entity", m.ID)
			continue
		}
		c := m.Center(in.GridSize)
		if sight.Blocked(from, c) {
			continue
		}
		behind := false
		for _, w := range included {
			if !InFrontOf(c, w) {
				behind = true
				break
			}
		}
		o.addEntity(m, behind)
	}
	return len(o.entries)
}

func (o *Overlay) addTile(t *Static) {
	dup := t.Mesh.Clone()
	dup.Name = t.ID + "-overlay"
	dup.EntityID = t.ID
	base := t.Mesh.Alpha
	dup.Alpha = base * o.tileOpacity
	o.tiles.AddChild(dup)
	o.entries = append(o.entries, OverlayEntry{EntityID: t.ID, Kind: KindStatic, Node: dup, baseAlpha: base})
}

func (o *Overlay) addEntity(m *Movable, behind bool) {
	dup := m.Mesh.Clone()
	dup.Name = m.ID + "-overlay"
	dup.EntityID = m.ID
	dup.ZIndex = 0
	if behind {
		dup.ZIndex = -1
	}
	o.entities.AddChild(dup)
	o.entries = append(o.entries, OverlayEntry{EntityID: m.ID, Kind: KindMovable, Node: dup, Behind: behind, baseAlpha: m.Mesh.Alpha})
}

// IncreaseTileOpacity raises the tile duplicate opacity by one step.
func (o *Overlay) IncreaseTileOpacity() {
	o.SetTileOpacity(o.tileOpacity + tileOpacityStep)
}

// DecreaseTileOpacity lowers the tile duplicate opacity by one step.
func (o *Overlay) DecreaseTileOpacity() {
	o.SetTileOpacity(o.tileOpacity - tileOpacityStep)
}

// ResetTileOpacity restores full tile duplicate opacity.
func (o *Overlay) ResetTileOpacity() {
	o.SetTileOpacity(tileOpacityDefault)
}

// SetTileOpacity sets the tile duplicate opacity, clamped to [0, 1], and
// applies it to the current duplicates, fading over FadeSeconds if set.
func (o *Overlay) SetTileOpacity(v float64) {
	o.tileOpacity = clamp01(v)
	o.fades = o.fades[:0]
	for _, e := range o.entries {
		if e.Kind != KindStatic {
			continue
		}
		to := e.baseAlpha * o.tileOpacity
		if o.FadeSeconds > 0 {
			o.fades = append(o.fades, TweenAlpha(e.Node, to, o.FadeSeconds, ease.Linear))
			continue
		}
		e.Node.SetAlpha(to)
	}
}

// Fading reports whether an opacity fade is still running.
func (o *Overlay) Fading() bool {
	return len(o.fades) > 0
}

// Update advances running opacity fades by dt seconds.
func (o *Overlay) Update(dt float32) {
	live := o.fades[:0]
	for _, g := range o.fades {
		g.Update(dt)
		if !g.Done {
			live = append(live, g)
		}
	}
	clear(o.fades[len(live):])
	o.fades = live
}

// ResolveControl picks the entity the overlay is computed for: the
// controlled entity, then the last controlled one, then the token of the
// user's actor, then the first entity the user may observe. It returns nil
// when none apply. Empty IDs are ignored.
func ResolveControl(movables []*Movable, controlled, lastControlled, actorID string) *Movable {
	find := func(id string) *Movable {
		if id == "" {
			return nil
		}
		for _, m := range movables {
			if m.ID == id {
				return m
			}
		}
		return nil
	}
	if m := find(controlled); m != nil {
		return m
	}
	if m := find(lastControlled); m != nil {
		return m
	}
	if actorID != "" {
		for _, m := range movables {
			if m.ActorID == actorID {
				return m
			}
		}
	}
	for _, m := range movables {
		if m.Observer {
			return m
		}
	}
	return nil
}
