package isometric

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Render texture pool ---

// renderTexturePool manages reusable offscreen ebiten.Images keyed by
// power-of-two dimensions. After warmup, Acquire/Release are zero-alloc.
type renderTexturePool struct {
	buckets map[uint64][]*ebiten.Image
}

// poolKey packs power-of-two width and height into a single uint64.
func poolKey(w, h int) uint64 {
	return uint64(w)<<32 | uint64(h)
}

// Acquire returns a cleared offscreen image with at least (w, h) pixels.
// Dimensions are rounded up to the next power of two.
func (p *renderTexturePool) Acquire(w, h int) *ebiten.Image {
	pw := nextPowerOfTwo(w)
	ph := nextPowerOfTwo(h)
	key := poolKey(pw, ph)

	if p.buckets != nil {
		if stack := p.buckets[key]; len(stack) > 0 {
			img := stack[len(stack)-1]
			p.buckets[key] = stack[:len(stack)-1]
			img.Clear()
			return img
		}
	}

	return ebiten.NewImageWithOptions(
		image.Rect(0, 0, pw, ph),
		&ebiten.NewImageOptions{Unmanaged: true},
	)
}

// Release returns an image to the pool for reuse. The image is cleared on
// next Acquire, not here.
func (p *renderTexturePool) Release(img *ebiten.Image) {
	if img == nil {
		return
	}
	b := img.Bounds()
	key := poolKey(b.Dx(), b.Dy())

	if p.buckets == nil {
		p.buckets = make(map[uint64][]*ebiten.Image)
	}
	p.buckets[key] = append(p.buckets[key], img)
}

// nextPowerOfTwo returns the smallest power of two >= n (minimum 1).
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << int(math.Ceil(math.Log2(float64(n))))
}

// --- Immediate-mode tree renderer ---

// renderer draws a node tree depth-first. Buffers are reused across frames.
type renderer struct {
	pool  renderTexturePool
	imgOp ebiten.DrawImageOptions
	triOp ebiten.DrawTrianglesOptions
	verts []ebiten.Vertex
}

// geoM converts an affine matrix to an ebiten.GeoM.
func geoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(0, 1, m[2])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 0, m[1])
	g.SetElement(1, 1, m[3])
	g.SetElement(1, 2, m[5])
	return g
}

// drawTree renders n and its visible descendants. noCull marks the subtree
// that is always rendered regardless of the visible bounds.
func (r *renderer) drawTree(target *ebiten.Image, n *Node, view [6]float64, screen Rect, cull bool, noCull *Node) {
	if !n.Visible {
		return
	}
	if n == noCull {
		cull = false
	}

	m := multiplyAffine(view, n.worldTransform)
	culled := cull && shouldCull(n, m, screen)

	if !culled {
		if n.mask != nil || len(n.Filters) > 0 {
			r.drawSpecial(target, n, m)
		} else {
			r.drawContent(target, n, m, n.Color, n.worldAlpha)
		}
	}

	if len(n.children) == 0 {
		return
	}
	children := n.children
	if !n.childrenSorted {
		rebuildSortedChildren(n)
	}
	if n.sortedChildren != nil {
		children = n.sortedChildren
	}
	for _, child := range children {
		r.drawTree(target, child, view, screen, cull, noCull)
	}
}

// rebuildSortedChildren rebuilds the ZIndex-sorted traversal order for a node
// with a stable insertion sort.
func rebuildSortedChildren(n *Node) {
	nc := len(n.children)
	if cap(n.sortedChildren) < nc {
		n.sortedChildren = make([]*Node, nc)
	}
	n.sortedChildren = n.sortedChildren[:nc]
	copy(n.sortedChildren, n.children)
	for i := 1; i < nc; i++ {
		key := n.sortedChildren[i]
		j := i - 1
		for j >= 0 && n.sortedChildren[j].ZIndex > key.ZIndex {
			n.sortedChildren[j+1] = n.sortedChildren[j]
			j--
		}
		n.sortedChildren[j+1] = key
	}
	n.childrenSorted = true
}

// SortedChildren returns the children in paint order (ZIndex, then insertion).
// The returned slice MUST NOT be mutated by the caller.
func (n *Node) SortedChildren() []*Node {
	if !n.childrenSorted {
		rebuildSortedChildren(n)
	}
	if n.sortedChildren != nil && len(n.sortedChildren) == len(n.children) {
		return n.sortedChildren
	}
	return n.children
}

// drawContent draws the node's own visual (sprite quad or mesh) with
// transform m. Containers draw nothing.
func (r *renderer) drawContent(target *ebiten.Image, n *Node, m [6]float64, tint Color, alpha float64) {
	a := tint.A * alpha
	if a <= 0 {
		return
	}
	switch n.Type {
	case NodeTypeSprite:
		if n.TextureWidth <= 0 || n.TextureHeight <= 0 {
			return
		}
		img := n.Image
		if img == nil {
			img = WhitePixel
		}
		b := img.Bounds()
		op := &r.imgOp
		op.GeoM.Reset()
		op.GeoM.Scale(n.TextureWidth/float64(b.Dx()), n.TextureHeight/float64(b.Dy()))
		op.GeoM.Concat(geoM(m))
		op.ColorScale.Reset()
		op.ColorScale.Scale(float32(tint.R*a), float32(tint.G*a), float32(tint.B*a), float32(a))
		op.Blend = n.BlendMode.EbitenBlend()
		op.Filter = ebiten.FilterLinear
		target.DrawImage(img, op)
	case NodeTypeMesh:
		if len(n.Vertices) == 0 || len(n.Indices) == 0 {
			return
		}
		if cap(r.verts) < len(n.Vertices) {
			r.verts = make([]ebiten.Vertex, len(n.Vertices))
		}
		r.verts = r.verts[:len(n.Vertices)]
		transformVertices(n.Vertices, r.verts, m, Color{tint.R, tint.G, tint.B, a})
		img := n.MeshImage
		if img == nil {
			img = WhitePixel
		}
		r.triOp.Blend = n.BlendMode.EbitenBlend()
		target.DrawTriangles(r.verts, n.Indices, img, &r.triOp)
	}
}

// localBounds returns the node's content rectangle in its own local space.
func localBounds(n *Node) Rect {
	if n.Type == NodeTypeMesh {
		return computeMeshAABB(n.Vertices)
	}
	return Rect{Width: n.TextureWidth, Height: n.TextureHeight}
}

// drawSpecial renders a masked or filtered node to an offscreen image, then
// composites it onto target. Order: content, mask, filters.
func (r *renderer) drawSpecial(target *ebiten.Image, n *Node, m [6]float64) {
	bounds := localBounds(n)
	pad := filterChainPadding(n.Filters)
	w := int(math.Ceil(bounds.Width)) + pad*2
	h := int(math.Ceil(bounds.Height)) + pad*2
	if w <= 0 || h <= 0 || bounds.Empty() {
		return
	}

	// Offscreen pixel (0,0) corresponds to local (bounds.X-pad, bounds.Y-pad).
	toRT := [6]float64{1, 0, 0, 1, float64(pad) - bounds.X, float64(pad) - bounds.Y}

	rt := r.pool.Acquire(w, h)
	r.drawContent(rt, n, toRT, n.Color, 1)
	result := rt

	if n.mask != nil {
		maskRT := r.pool.Acquire(w, h)
		// The mask lives in the parent's space: local(n)^-1 * local(mask).
		mm := multiplyAffine(invertAffine(computeLocalTransform(n)), computeLocalTransform(n.mask))
		r.drawContent(maskRT, n.mask, multiplyAffine(toRT, mm), n.mask.Color, n.mask.Alpha)

		var op ebiten.DrawImageOptions
		op.Blend = BlendMask.EbitenBlend()
		result.DrawImage(maskRT, &op)
		r.pool.Release(maskRT)
	}

	var spare *ebiten.Image
	if len(n.Filters) > 0 {
		result, spare = applyFilters(n.Filters, result, &r.pool)
	}

	op := &r.imgOp
	op.GeoM.Reset()
	op.GeoM.Translate(bounds.X-float64(pad), bounds.Y-float64(pad))
	op.GeoM.Concat(geoM(m))
	op.ColorScale.Reset()
	op.ColorScale.ScaleAlpha(float32(n.worldAlpha))
	op.Blend = n.BlendMode.EbitenBlend()
	op.Filter = ebiten.FilterLinear
	target.DrawImage(result, op)

	r.pool.Release(result)
	r.pool.Release(spare)
}
