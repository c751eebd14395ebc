package isometric

import "math"

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// computeLocalTransform computes the local affine matrix from the node's
// transform properties. Returns [a, b, c, d, tx, ty].
//
// Skew rotates each axis instead of shearing it: SkewX turns the Y axis and
// SkewY turns the X axis, on top of Rotation. The anchor point, in texture
// pixels, lands on (X, Y).
func computeLocalTransform(n *Node) [6]float64 {
	sinX, cosX := math.Sincos(n.Rotation + n.SkewY)
	sinY, cosY := math.Sincos(n.Rotation - n.SkewX)

	a := cosX * n.ScaleX
	b := sinX * n.ScaleX
	c := -sinY * n.ScaleY
	d := cosY * n.ScaleY

	px := n.AnchorX * n.TextureWidth
	py := n.AnchorY * n.TextureHeight

	return [6]float64{a, b, c, d, n.X - (px*a + py*c), n.Y - (px*b + py*d)}
}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// isSingular reports whether m collapses area (zero scale).
func isSingular(m [6]float64) bool {
	det := m[0]*m[3] - m[2]*m[1]
	return det > -1e-12 && det < 1e-12
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// updateWorldTransform recomputes a node's worldTransform and worldAlpha.
// parentRecomputed forces recomputation of this node even if it's not dirty.
func updateWorldTransform(n *Node, parentTransform [6]float64, parentAlpha float64, parentRecomputed bool) {
	recompute := n.transformDirty || parentRecomputed
	if recompute {
		local := computeLocalTransform(n)
		n.worldTransform = multiplyAffine(parentTransform, local)
		n.worldAlpha = parentAlpha * n.Alpha
		n.transformDirty = false
	}

	for _, child := range n.children {
		updateWorldTransform(child, n.worldTransform, n.worldAlpha, recompute)
	}
}

// WorldTransform returns the node's current world matrix, composed from the
// local transforms of the node and its ancestors. Unlike the cached matrix
// used while drawing, it reflects field writes made since the last frame.
func (n *Node) WorldTransform() [6]float64 {
	m := computeLocalTransform(n)
	for p := n.Parent; p != nil; p = p.Parent {
		m = multiplyAffine(computeLocalTransform(p), m)
	}
	return m
}

// --- Transform property setters ---

// SetPosition sets the node's local X and Y and marks it dirty.
func (n *Node) SetPosition(x, y float64) {
	n.X = x
	n.Y = y
	n.transformDirty = true
}

// SetScale sets the node's ScaleX and ScaleY and marks it dirty.
func (n *Node) SetScale(sx, sy float64) {
	n.ScaleX = sx
	n.ScaleY = sy
	n.transformDirty = true
}

// SetRotation sets the node's rotation (in radians) and marks it dirty.
func (n *Node) SetRotation(r float64) {
	n.Rotation = r
	n.transformDirty = true
}

// SetSkew sets the node's SkewX and SkewY and marks it dirty.
func (n *Node) SetSkew(sx, sy float64) {
	n.SkewX = sx
	n.SkewY = sy
	n.transformDirty = true
}

// SetAnchor sets the node's normalized anchor and marks it dirty.
func (n *Node) SetAnchor(ax, ay float64) {
	n.AnchorX = ax
	n.AnchorY = ay
	n.transformDirty = true
}

// SetAlpha sets the node's alpha and marks it dirty.
func (n *Node) SetAlpha(a float64) {
	n.Alpha = a
	n.transformDirty = true
}

// MarkDirty marks the node's transform as dirty, forcing recomputation
// on the next frame. Useful after bulk-setting fields directly.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// --- Coordinate conversion ---

// WorldToLocal converts a world-space point to this node's local coordinate space.
func (n *Node) WorldToLocal(wx, wy float64) (lx, ly float64) {
	inv := invertAffine(n.WorldTransform())
	return transformPoint(inv, wx, wy)
}

// LocalToWorld converts a local-space point to world-space.
func (n *Node) LocalToWorld(lx, ly float64) (wx, wy float64) {
	return transformPoint(n.WorldTransform(), lx, ly)
}

// WorldBounds returns the world-space AABB of the node's texture quad, or of
// its vertices for meshes. Containers report an empty rect at their origin.
func (n *Node) WorldBounds() Rect {
	m := n.WorldTransform()
	switch n.Type {
	case NodeTypeMesh:
		if len(n.Vertices) == 0 {
			break
		}
		return meshWorldAABB(n, m)
	case NodeTypeSprite:
		return worldAABB(m, n.TextureWidth, n.TextureHeight)
	}
	x, y := transformPoint(m, 0, 0)
	return Rect{X: x, Y: y}
}

// worldAABB computes the axis-aligned bounding box of a w x h rectangle
// transformed by the given affine matrix.
func worldAABB(transform [6]float64, w, h float64) Rect {
	x0, y0 := transformPoint(transform, 0, 0)
	x1, y1 := transformPoint(transform, w, 0)
	x2, y2 := transformPoint(transform, w, h)
	x3, y3 := transformPoint(transform, 0, h)

	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
