package isometric

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// nodeIDCounter is a plain counter (no atomic, the engine is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the render object the engine writes transforms to. A single flat
// struct is used for all node types, the way the host canvas exposes them.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// EntityID links the node to the entity document it renders ("" for
	// layers and helper geometry).
	EntityID string

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local)
	X, Y         float64
	ScaleX       float64
	ScaleY       float64
	Rotation     float64
	SkewX, SkewY float64
	// AnchorX and AnchorY are normalized fractions of the texture size.
	AnchorX, AnchorY float64

	// Computed during Draw
	worldTransform [6]float64
	worldAlpha     float64
	transformDirty bool

	Alpha   float64
	Visible bool
	ZIndex  int

	// Sprite fields (NodeTypeSprite)
	Image         *ebiten.Image
	TextureWidth  float64
	TextureHeight float64
	Color         Color
	BlendMode     BlendMode

	// AlphaSource is an optional CPU-side copy of the sprite art used for
	// pixel-level overlap tests. Only its alpha channel is read.
	AlphaSource image.Image

	// Mesh fields (NodeTypeMesh)
	Vertices  []ebiten.Vertex
	Indices   []uint16
	MeshImage *ebiten.Image

	Filters []Filter
	mask    *Node

	disposed       bool
	childrenSorted bool
	sortedChildren []*Node
}

func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Alpha = 1
	n.Color = ColorWhite
	n.Visible = true
	n.transformDirty = true
	n.childrenSorted = true
}

// NewContainer creates a container node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewSprite creates a sprite node. The texture size is taken from img; a nil
// image renders as a solid rectangle sized by SetTextureSize.
func NewSprite(name string, img *ebiten.Image) *Node {
	n := &Node{Name: name, Type: NodeTypeSprite, Image: img}
	nodeDefaults(n)
	if img != nil {
		b := img.Bounds()
		n.TextureWidth = float64(b.Dx())
		n.TextureHeight = float64(b.Dy())
	}
	return n
}

// NewMesh creates a mesh node that uses DrawTriangles for rendering.
func NewMesh(name string, img *ebiten.Image, vertices []ebiten.Vertex, indices []uint16) *Node {
	n := &Node{
		Name:      name,
		Type:      NodeTypeMesh,
		MeshImage: img,
		Vertices:  vertices,
		Indices:   indices,
	}
	nodeDefaults(n)
	return n
}

// SetTextureSize sets the unscaled size of the sprite's texture.
func (n *Node) SetTextureSize(w, h float64) {
	n.TextureWidth = w
	n.TextureHeight = h
	n.transformDirty = true
}

// Clone returns a detached copy of the node's visual state: image, texture
// size, transform, alpha and color. Children, filters and mask are not copied.
func (n *Node) Clone() *Node {
	c := &Node{
		Name:          n.Name,
		Type:          n.Type,
		EntityID:      n.EntityID,
		X:             n.X,
		Y:             n.Y,
		ScaleX:        n.ScaleX,
		ScaleY:        n.ScaleY,
		Rotation:      n.Rotation,
		SkewX:         n.SkewX,
		SkewY:         n.SkewY,
		AnchorX:       n.AnchorX,
		AnchorY:       n.AnchorY,
		Alpha:         n.Alpha,
		Visible:       n.Visible,
		ZIndex:        n.ZIndex,
		Image:         n.Image,
		TextureWidth:  n.TextureWidth,
		TextureHeight: n.TextureHeight,
		Color:         n.Color,
		BlendMode:     n.BlendMode,
		AlphaSource:   n.AlphaSource,
		MeshImage:     n.MeshImage,
	}
	if n.Vertices != nil {
		c.Vertices = append([]ebiten.Vertex(nil), n.Vertices...)
	}
	if n.Indices != nil {
		c.Indices = append([]uint16(nil), n.Indices...)
	}
	c.ID = nextNodeID()
	c.transformDirty = true
	c.childrenSorted = true
	return c
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("isometric: cannot add nil child")
	}
	if debugEnabled {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	if isAncestor(child, n) {
		panic("isometric: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	n.childrenSorted = false
	markSubtreeDirty(child)
}

// AddChildAt inserts child at the given index.
// Same reparenting and cycle-check behavior as AddChild.
func (n *Node) AddChildAt(child *Node, index int) {
	if child == nil {
		panic("isometric: cannot add nil child")
	}
	if debugEnabled {
		debugCheckDisposed(n, "AddChildAt (parent)")
		debugCheckDisposed(child, "AddChildAt (child)")
	}
	if isAncestor(child, n) {
		panic("isometric: adding child would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	if index < 0 || index > len(n.children) {
		panic("isometric: child index out of range")
	}
	child.Parent = n
	n.children = append(n.children, nil)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
	n.childrenSorted = false
	markSubtreeDirty(child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("isometric: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.Parent = nil
	n.childrenSorted = false
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// RemoveChildren detaches all children from this node.
// Children are NOT disposed.
func (n *Node) RemoveChildren() {
	for _, child := range n.children {
		child.Parent = nil
		markSubtreeDirty(child)
	}
	clear(n.children)
	n.children = n.children[:0]
	n.childrenSorted = true
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// SetZIndex sets the node's ZIndex and marks the parent's children as unsorted.
func (n *Node) SetZIndex(z int) {
	if n.ZIndex == z {
		return
	}
	n.ZIndex = z
	if n.Parent != nil {
		n.Parent.childrenSorted = false
	}
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed,
// and recursively disposes all descendants.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.sortedChildren = nil
	n.Parent = nil
	n.Filters = nil
	n.mask = nil
	n.Image = nil
	n.MeshImage = nil
	n.AlphaSource = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on node and all its descendants.
func markSubtreeDirty(node *Node) {
	node.transformDirty = true
	for _, child := range node.children {
		markSubtreeDirty(child)
	}
}
