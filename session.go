package isometric

import (
	"log/slog"

	"github.com/tanema/gween/ease"
)

// Session is the projection state of one active scene. The host creates it
// when the scene activates, forwards lifecycle notifications through the On*
// methods, calls Update once per frame and Close when the scene goes away.
//
// Scene-level triggers apply immediately. Entity-level triggers are deferred
// to the next Update or Flush, where each pending entity is re-applied from
// its current flags and the overlay is rebuilt once.
type Session struct {
	canvas   *Canvas
	settings Settings
	scene    SceneConfig
	proj     Projection
	ready    bool

	movables []*Movable
	statics  []*Static
	walls    []*Wall
	byID     map[string]SpatialEntity
	wallByID map[string]*Wall

	sched       *Scheduler
	overlay     *Overlay
	silhouettes *Silhouettes
	visuals     map[string]*Node
	stageTweens []*TweenGroup

	sink  EventSink
	sight SightTester

	controlled     string
	lastControlled string
	actorID        string
	overlayDirty   bool
	closed         bool
}

// NewSession creates the session of a scene drawn on c. Panics if c is nil.
func NewSession(c *Canvas, s Settings, scene SceneConfig) *Session {
	if c == nil {
		panic("isometric: NewSession requires a canvas")
	}
	sess := &Session{
		canvas:      c,
		settings:    s,
		scene:       scene,
		proj:        NewProjection(s, scene),
		byID:        make(map[string]SpatialEntity),
		wallByID:    make(map[string]*Wall),
		sched:       NewScheduler(),
		overlay:     NewOverlay(c.Overlay),
		silhouettes: NewSilhouettes(c.Silhouettes),
		visuals:     make(map[string]*Node),
	}
	sess.overlay.FadeSeconds = float32(s.OpacityFadeSeconds)
	return sess
}

// log returns the package logger when the session's debug setting is on.
func (s *Session) log() *slog.Logger {
	return debugLogger(s.settings.Debug)
}

func (s *Session) emit(ev Event) {
	if s.sink != nil {
		s.sink.EmitEvent(ev)
	}
}

// SetEventSink sets the optional host or ECS bridge. Pass nil to detach.
func (s *Session) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetSightTester replaces the wall-based sight test. Pass nil to restore it.
func (s *Session) SetSightTester(t SightTester) {
	s.sight = t
	s.markOverlay()
}

// Canvas returns the canvas the session draws on.
func (s *Session) Canvas() *Canvas { return s.canvas }

// Projection returns the projection of the current settings.
func (s *Session) Projection() Projection { return s.proj }

// Settings returns the current world settings.
func (s *Session) Settings() Settings { return s.settings }

// SceneConfig returns the current scene configuration.
func (s *Session) SceneConfig() SceneConfig { return s.scene }

// Overlay returns the session's occlusion overlay.
func (s *Session) Overlay() *Overlay { return s.overlay }

// Silhouettes returns the session's silhouette set.
func (s *Session) Silhouettes() *Silhouettes { return s.silhouettes }

// Entity returns the registered entity with the given ID.
func (s *Session) Entity(id string) (SpatialEntity, bool) {
	e, ok := s.byID[id]
	return e, ok
}

// Movables returns the registered movables in creation order. The returned
// slice MUST NOT be mutated by the caller.
func (s *Session) Movables() []*Movable { return s.movables }

// Statics returns the registered statics in creation order. The returned
// slice MUST NOT be mutated by the caller.
func (s *Session) Statics() []*Static { return s.statics }

// Wall returns the registered wall with the given ID.
func (s *Session) Wall(id string) (*Wall, bool) {
	w, ok := s.wallByID[id]
	return w, ok
}

// ElevationVisual returns the elevation aid node of a movable, if any.
func (s *Session) ElevationVisual(id string) (*Node, bool) {
	n, ok := s.visuals[id]
	return n, ok
}

// Pending reports whether an apply for the entity is scheduled.
func (s *Session) Pending(id string) bool {
	return s.sched.Pending(id)
}

// --- Scene triggers ---

// OnSceneReady applies the projection to the whole scene.
func (s *Session) OnSceneReady() {
	if s.closed {
		return
	}
	s.ready = true
	s.applyScene(true)
}

// OnViewportResized resizes the viewport and re-applies the background
// transform when both the projection and the background toggle are on.
func (s *Session) OnViewportResized(width, height float64) {
	if s.closed {
		return
	}
	s.canvas.Viewport.Resize(width, height)
	if s.proj.Isometric() && s.scene.IsometricBackground {
		ApplyBackground(s.canvas.Background, s.proj)
	}
}

// OnViewportPanned moves the viewport and refreshes the overlay.
func (s *Session) OnViewportPanned(dx, dy float64) {
	if s.closed {
		return
	}
	s.canvas.Viewport.Pan(dx, dy)
	s.markOverlay()
}

// OnSceneConfigChanged replaces the scene configuration and re-applies the
// projection to the whole scene.
func (s *Session) OnSceneConfigChanged(scene SceneConfig) {
	if s.closed {
		return
	}
	s.scene = scene
	s.applyScene(false)
}

// OnSettingsChanged replaces the world settings and re-applies the
// projection to the whole scene.
func (s *Session) OnSettingsChanged(settings Settings) {
	if s.closed {
		return
	}
	s.settings = settings
	s.overlay.FadeSeconds = float32(settings.OpacityFadeSeconds)
	s.applyScene(false)
}

// applyScene rebuilds the projection and applies it to the stage, the
// background and every entity. Pending entity applies are absorbed.
func (s *Session) applyScene(force bool) {
	prev := s.proj
	s.proj = NewProjection(s.settings, s.scene)
	if force || prev.Mode != s.proj.Mode {
		s.log().Info("projection changed", "mode", s.proj.Mode, "preset", s.proj.Preset.Name)
		s.emit(Event{Type: EventProjectionChanged, Isometric: s.proj.Isometric()})
	}

	s.applyStage(!force)
	ApplyBackground(s.canvas.Background, s.proj)
	s.sched.Drain()
	for _, m := range s.movables {
		s.applyEntity(m)
	}
	for _, t := range s.statics {
		s.applyEntity(t)
	}
	s.silhouettes.Forget()
	s.markOverlay()
}

// applyStage writes the projection to the stage. With animate set and a
// transition duration configured, the stage eases from its current rotation
// and skew instead of snapping.
func (s *Session) applyStage(animate bool) {
	stage := s.canvas.Stage
	s.stageTweens = nil
	if stage == nil {
		ApplyStage(stage, s.proj)
		return
	}
	rot, sx, sy := stage.Rotation, stage.SkewX, stage.SkewY
	ApplyStage(stage, s.proj)
	d := float32(s.settings.TransitionSeconds)
	if !animate || d <= 0 || (rot == stage.Rotation && sx == stage.SkewX && sy == stage.SkewY) {
		return
	}
	toRot, toX, toY := stage.Rotation, stage.SkewX, stage.SkewY
	stage.SetRotation(rot)
	stage.SetSkew(sx, sy)
	s.stageTweens = []*TweenGroup{
		TweenRotation(stage, toRot, d, ease.InOutQuad),
		TweenSkew(stage, toX, toY, d, ease.InOutQuad),
	}
}

// Transitioning reports whether the stage is easing toward a new projection.
func (s *Session) Transitioning() bool {
	return len(s.stageTweens) > 0
}

// advanceStage moves the stage transition by dt seconds and snaps to the
// exact projection once it ends.
func (s *Session) advanceStage(dt float32) {
	if len(s.stageTweens) == 0 {
		return
	}
	done := true
	for _, g := range s.stageTweens {
		g.Update(dt)
		done = done && g.Done
	}
	if done {
		s.stageTweens = nil
		ApplyStage(s.canvas.Stage, s.proj)
	}
}

// --- Entity triggers ---

// OnEntityCreated registers e, attaches its mesh to the canvas and
// schedules its apply. An entity with a known ID replaces the old one.
func (s *Session) OnEntityCreated(e SpatialEntity) {
	if s.closed || e == nil {
		return
	}
	b := e.Base()
	if _, ok := s.byID[b.ID]; ok {
		s.unregister(b.ID)
	}
	s.byID[b.ID] = e
	switch v := e.(type) {
	case *Movable:
		s.movables = append(s.movables, v)
	case *Static:
		s.statics = append(s.statics, v)
	}
	if b.Mesh != nil && b.Mesh.Parent == nil {
		s.canvas.AddEntityMesh(e)
	}
	s.schedule(b.ID)
}

// OnEntityUpdated schedules a re-apply of the entity from its current flags
// and geometry.
func (s *Session) OnEntityUpdated(id string) {
	if s.closed {
		return
	}
	if _, ok := s.byID[id]; !ok {
		s.log().Debug("update for unknown entity", "entity", id)
		return
	}
	s.schedule(id)
}

// OnEntityRedraw schedules a re-apply after the host rebuilt the entity's
// render object.
func (s *Session) OnEntityRedraw(id string) {
	s.OnEntityUpdated(id)
}

// OnEntityDeleted drops the entity, its pending apply and its derived
// render state.
func (s *Session) OnEntityDeleted(id string) {
	if s.closed {
		return
	}
	if !s.unregister(id) {
		return
	}
	if s.lastControlled == id {
		s.lastControlled = ""
	}
	if s.controlled == id {
		s.controlled = ""
	}
	s.emit(Event{Type: EventEntityRemoved, EntityID: id, Isometric: s.proj.Isometric()})
	s.markOverlay()
}

// unregister removes the entity from the registries and the canvas. It
// reports whether the entity was known.
func (s *Session) unregister(id string) bool {
	e, ok := s.byID[id]
	if !ok {
		return false
	}
	delete(s.byID, id)
	s.sched.Cancel(id)
	s.dropVisual(id)
	switch v := e.(type) {
	case *Movable:
		s.movables = removeByPtr(s.movables, v)
	case *Static:
		s.statics = removeByPtr(s.statics, v)
	}
	if m := e.Base().Mesh; m != nil {
		m.RemoveFromParent()
	}
	return true
}

func removeByPtr[T comparable](s []T, v T) []T {
	for i, x := range s {
		if x == v {
			copy(s[i:], s[i+1:])
			var zero T
			s[len(s)-1] = zero
			return s[:len(s)-1]
		}
	}
	return s
}

// OnControlChanged records that the user took or released control of an
// entity.
func (s *Session) OnControlChanged(id string, controlled bool) {
	if s.closed {
		return
	}
	switch {
	case controlled:
		s.controlled = id
		s.lastControlled = id
	case s.controlled == id:
		s.controlled = ""
	}
	s.markOverlay()
}

// OnUserActorChanged sets the actor owned by the viewing user.
func (s *Session) OnUserActorChanged(actorID string) {
	if s.closed {
		return
	}
	s.actorID = actorID
	s.markOverlay()
}

// --- Walls ---

// SetWall registers w, replacing any wall with the same ID.
func (s *Session) SetWall(w *Wall) {
	if s.closed || w == nil {
		return
	}
	if old, ok := s.wallByID[w.ID]; ok {
		s.walls = removeByPtr(s.walls, old)
	}
	s.wallByID[w.ID] = w
	s.walls = append(s.walls, w)
	s.markOverlay()
}

// RemoveWall drops the wall with the given ID.
func (s *Session) RemoveWall(id string) {
	if s.closed {
		return
	}
	if w, ok := s.wallByID[id]; ok {
		delete(s.wallByID, id)
		s.walls = removeByPtr(s.walls, w)
		s.markOverlay()
	}
}

// OnWallChanged refreshes the overlay after the host changed a wall, such
// as opening a door.
func (s *Session) OnWallChanged(id string) {
	if s.closed {
		return
	}
	if _, ok := s.wallByID[id]; !ok {
		s.log().Debug("change for unknown wall", "wall", id)
	}
	s.markOverlay()
}

// --- Frame ---

func (s *Session) schedule(id string) {
	s.sched.Schedule(id)
	s.markOverlay()
}

func (s *Session) markOverlay() {
	s.overlayDirty = true
}

// Update advances viewport scrolling by dt seconds, runs the deferred work
// of the frame, then advances overlay fades.
func (s *Session) Update(dt float32) {
	if s.closed {
		return
	}
	if s.canvas.Viewport.update(dt) {
		s.markOverlay()
	}
	s.Flush()
	s.overlay.Update(dt)
	s.advanceStage(dt)
}

// Flush applies every scheduled entity and rebuilds the overlay if a
// trigger asked for it.
func (s *Session) Flush() {
	if s.closed {
		return
	}
	for _, id := range s.sched.Drain() {
		if e, ok := s.byID[id]; ok {
			s.applyEntity(e)
		}
	}
	if s.overlayDirty {
		s.overlayDirty = false
		s.rebuildOverlay()
	}
}

// applyEntity applies the projection to one entity and refreshes its
// derived render state.
func (s *Session) applyEntity(e SpatialEntity) {
	b := e.Base()
	s.dropVisual(b.ID)
	if b.Mesh == nil {
		s.log().Debug("mesh missing, entity skipped", "entity", b.ID)
		return
	}
	if b.Mesh.Parent == nil {
		s.canvas.AddEntityMesh(e)
	}
	ApplyEntity(e, s.proj)

	ev := Event{Type: EventEntityReset, EntityID: b.ID, Isometric: s.proj.Isometric()}
	if s.proj.Isometric() && !b.Flags.Disabled {
		ev.Type = EventEntityTransformed
	}
	s.emit(ev)

	m, ok := e.(*Movable)
	if !ok {
		return
	}
	if s.proj.DepthSort {
		z := 0
		if s.proj.Isometric() {
			z = DepthSortKey(Point{m.X, m.Y}, s.scene)
		}
		m.Mesh.SetZIndex(z)
	}
	if aid, ok := ComputeElevationAid(m, s.proj); ok {
		v := newElevationVisual(m.ID, aid)
		s.canvas.Visuals.AddChild(v)
		s.visuals[m.ID] = v
	}
}

func (s *Session) dropVisual(id string) {
	if v, ok := s.visuals[id]; ok {
		v.Dispose()
		delete(s.visuals, id)
	}
}

// Control returns the entity the overlay is computed for, or nil.
func (s *Session) Control() *Movable {
	return ResolveControl(s.movables, s.controlled, s.lastControlled, s.actorID)
}

func (s *Session) rebuildOverlay() {
	if !s.ready {
		return
	}
	if !s.proj.Isometric() || !s.settings.EnableOcclusionDynamicTile {
		s.overlay.Clear()
	} else {
		sight := s.sight
		if sight == nil {
			sight = WallSight{Walls: s.walls}
		}
		n := s.overlay.Rebuild(OverlayInput{
			Control:  s.Control(),
			Movables: s.movables,
			Statics:  s.statics,
			Walls:    s.wallByID,
			Sight:    sight,
			GridSize: s.scene.GridSize,
			Logger:   s.log(),
		})
		s.log().Debug("overlay rebuilt", "entries", n, "control", s.overlay.ControlID())
		s.emit(Event{Type: EventOverlayRebuilt, EntityID: s.overlay.ControlID(), Isometric: true, Count: n})
	}

	if !s.proj.Isometric() || !s.settings.EnableOcclusionSilhouette {
		s.silhouettes.Clear()
		return
	}
	n := s.silhouettes.Rebuild(s.movables, s.statics)
	s.log().Debug("silhouettes rebuilt", "entries", n)
}

// Close resets every entity, clears the derived render state and detaches
// the session. Later calls on the session do nothing.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.overlay.Clear()
	s.silhouettes.Clear()
	for id := range s.visuals {
		s.dropVisual(id)
	}
	for _, m := range s.movables {
		resetEntity(m, s.log())
	}
	for _, t := range s.statics {
		resetEntity(t, s.log())
	}
	flat := Projection{Scene: s.scene, Debug: s.settings.Debug}
	s.stageTweens = nil
	ApplyStage(s.canvas.Stage, flat)
	ApplyBackground(s.canvas.Background, flat)
	s.sched.Drain()
	s.sink = nil
	s.closed = true
}
