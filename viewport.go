package isometric

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for viewport X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Viewport controls the view into a Canvas: pan position, zoom and screen size.
type Viewport struct {
	// X and Y are the world-space position the viewport centers on.
	X, Y float64
	// Zoom is the scale factor (1.0 = no zoom, >1 = zoom in, <1 = zoom out).
	Zoom float64
	// Width and Height are the screen-space size in pixels.
	Width, Height float64

	// CullEnabled skips nodes whose world AABB doesn't intersect the
	// visible bounds. The overlay layer is never culled.
	CullEnabled bool

	viewMatrix    [6]float64
	invViewMatrix [6]float64
	dirty         bool

	scrollTween *scrollAnim
}

// NewViewport creates a Viewport of the given screen size centered on the origin.
func NewViewport(width, height float64) *Viewport {
	return &Viewport{
		Zoom:        1.0,
		Width:       width,
		Height:      height,
		CullEnabled: true,
		dirty:       true,
	}
}

// Resize changes the screen-space size.
func (v *Viewport) Resize(width, height float64) {
	v.Width = width
	v.Height = height
	v.dirty = true
}

// Pan moves the viewport center by (dx, dy) world units.
func (v *Viewport) Pan(dx, dy float64) {
	v.X += dx
	v.Y += dy
	v.dirty = true
}

// SetZoom sets the zoom factor. Non-positive values are ignored.
func (v *Viewport) SetZoom(z float64) {
	if z <= 0 {
		return
	}
	v.Zoom = z
	v.dirty = true
}

// ScrollTo animates the viewport to the given world position over duration seconds.
func (v *Viewport) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	v.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(v.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(v.Y), float32(y), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is in progress.
func (v *Viewport) Scrolling() bool {
	return v.scrollTween != nil
}

// update advances the scroll animation. It reports whether the view moved.
func (v *Viewport) update(dt float32) bool {
	if v.scrollTween == nil {
		return false
	}
	prevX, prevY := v.X, v.Y
	if !v.scrollTween.doneX {
		val, done := v.scrollTween.tweenX.Update(dt)
		v.X = float64(val)
		v.scrollTween.doneX = done
	}
	if !v.scrollTween.doneY {
		val, done := v.scrollTween.tweenY.Update(dt)
		v.Y = float64(val)
		v.scrollTween.doneY = done
	}
	if v.scrollTween.doneX && v.scrollTween.doneY {
		v.scrollTween = nil
	}
	moved := v.X != prevX || v.Y != prevY
	if moved {
		v.dirty = true
	}
	return moved
}

// computeViewMatrix recomputes the cached view matrix if dirty.
//
// viewMatrix = Translate(cx, cy) * Scale(zoom) * Translate(-X, -Y)
// where cx, cy = screen center.
func (v *Viewport) computeViewMatrix() [6]float64 {
	if !v.dirty {
		return v.viewMatrix
	}
	v.dirty = false

	cx := v.Width / 2
	cy := v.Height / 2
	z := v.Zoom

	v.viewMatrix = [6]float64{z, 0, 0, z, cx - z*v.X, cy - z*v.Y}
	v.invViewMatrix = invertAffine(v.viewMatrix)
	return v.viewMatrix
}

// WorldToScreen converts world coordinates to screen coordinates.
func (v *Viewport) WorldToScreen(wx, wy float64) (sx, sy float64) {
	v.computeViewMatrix()
	return transformPoint(v.viewMatrix, wx, wy)
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (v *Viewport) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	v.computeViewMatrix()
	return transformPoint(v.invViewMatrix, sx, sy)
}

// VisibleBounds returns the axis-aligned bounding rect of the visible area
// in world space.
func (v *Viewport) VisibleBounds() Rect {
	v.computeViewMatrix()
	inv := v.invViewMatrix

	x0, y0 := transformPoint(inv, 0, 0)
	x1, y1 := transformPoint(inv, v.Width, v.Height)

	return Rect{
		X:      math.Min(x0, x1),
		Y:      math.Min(y0, y1),
		Width:  math.Abs(x1 - x0),
		Height: math.Abs(y1 - y0),
	}
}

// shouldCull returns true if the node should be skipped during rendering.
// viewWorld is view * worldTransform; screen is the screen-space rect.
// Containers are never culled.
func shouldCull(n *Node, viewWorld [6]float64, screen Rect) bool {
	var aabb Rect
	switch n.Type {
	case NodeTypeContainer:
		return false
	case NodeTypeMesh:
		if len(n.Vertices) == 0 {
			return false
		}
		aabb = meshWorldAABB(n, viewWorld)
	default:
		if n.TextureWidth == 0 && n.TextureHeight == 0 {
			return false
		}
		aabb = worldAABB(viewWorld, n.TextureWidth, n.TextureHeight)
	}
	return !aabb.Intersects(screen)
}
