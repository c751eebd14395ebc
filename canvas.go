package isometric

import "github.com/hajimehoshi/ebiten/v2"

// Canvas is the host render tree of one scene. Stage receives the
// whole-scene projection; every layer is a child of it so entity meshes,
// visual aids and the overlay all share the projected space.
type Canvas struct {
	// Stage is the root of the render tree.
	Stage *Node
	// Background is the scene art. Nil when the scene has none.
	Background *Node

	Tiles       *Node
	Visuals     *Node
	Tokens      *Node
	Silhouettes *Node
	// Overlay holds the always-visible duplicates and is never culled.
	Overlay *Node

	Viewport *Viewport

	r renderer
}

// NewCanvas creates an empty canvas rendering through a viewport of the given
// screen size.
func NewCanvas(screenW, screenH float64) *Canvas {
	c := &Canvas{
		Stage:       NewContainer("stage"),
		Tiles:       NewContainer("tiles"),
		Visuals:     NewContainer("visuals"),
		Tokens:      NewContainer("tokens"),
		Silhouettes: NewContainer("silhouettes"),
		Overlay:     NewContainer("overlay"),
		Viewport:    NewViewport(screenW, screenH),
	}
	c.Stage.AddChild(c.Tiles)
	c.Stage.AddChild(c.Visuals)
	c.Stage.AddChild(c.Tokens)
	c.Stage.AddChild(c.Silhouettes)
	c.Stage.AddChild(c.Overlay)
	return c
}

// SetBackground installs the background node below every layer, replacing
// any previous one. Pass nil to remove it.
func (c *Canvas) SetBackground(n *Node) {
	if c.Background != nil {
		c.Background.RemoveFromParent()
	}
	c.Background = n
	if n != nil {
		c.Stage.AddChildAt(n, 0)
	}
}

// AddEntityMesh attaches an entity's mesh to the layer matching its kind.
func (c *Canvas) AddEntityMesh(e SpatialEntity) {
	p := e.Base()
	if p.Mesh == nil {
		return
	}
	p.Mesh.EntityID = p.ID
	if e.Kind() == KindStatic {
		c.Tiles.AddChild(p.Mesh)
	} else {
		c.Tokens.AddChild(p.Mesh)
	}
}

// Draw renders the canvas onto screen through the viewport.
func (c *Canvas) Draw(screen *ebiten.Image) {
	updateWorldTransform(c.Stage, identityTransform, 1, false)
	view := c.Viewport.computeViewMatrix()
	b := screen.Bounds()
	bounds := Rect{X: float64(b.Min.X), Y: float64(b.Min.Y), Width: float64(b.Dx()), Height: float64(b.Dy())}
	c.r.drawTree(screen, c.Stage, view, bounds, c.Viewport.CullEnabled, c.Overlay)
}
