package isometric

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// transformVertices applies an affine transform and color tint to src vertices,
// writing the result into dst. dst must be at least len(src) in length.
//
// Matrix layout: [0]=a, [1]=b, [2]=c, [3]=d, [4]=tx, [5]=ty
// newX = a*x + c*y + tx, newY = b*x + d*y + ty
func transformVertices(src, dst []ebiten.Vertex, transform [6]float64, tint Color) {
	a, b, c, d, tx, ty := transform[0], transform[1], transform[2], transform[3], transform[4], transform[5]
	cr := float32(tint.R)
	cg := float32(tint.G)
	cb := float32(tint.B)
	ca := float32(tint.A)

	for i := range src {
		s := &src[i]
		ox := float64(s.DstX)
		oy := float64(s.DstY)
		dst[i] = ebiten.Vertex{
			DstX:   float32(a*ox + c*oy + tx),
			DstY:   float32(b*ox + d*oy + ty),
			SrcX:   s.SrcX,
			SrcY:   s.SrcY,
			ColorR: s.ColorR * cr * ca,
			ColorG: s.ColorG * cg * ca,
			ColorB: s.ColorB * cb * ca,
			ColorA: s.ColorA * ca,
		}
	}
}

// computeMeshAABB scans DstX/DstY of the given vertices and returns
// the axis-aligned bounding box in local space.
func computeMeshAABB(verts []ebiten.Vertex) Rect {
	if len(verts) == 0 {
		return Rect{}
	}
	minX := float64(verts[0].DstX)
	minY := float64(verts[0].DstY)
	maxX := minX
	maxY := minY
	for i := 1; i < len(verts); i++ {
		x := float64(verts[i].DstX)
		y := float64(verts[i].DstY)
		minX = math.Min(minX, x)
		maxX = math.Max(maxX, x)
		minY = math.Min(minY, y)
		maxY = math.Max(maxY, y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// meshWorldAABB computes the world-space AABB for a mesh node. Mesh vertices
// may not start at the origin, so the transform is shifted to the local AABB
// min corner first.
func meshWorldAABB(n *Node, transform [6]float64) Rect {
	aabb := computeMeshAABB(n.Vertices)
	a, b, c, d, tx, ty := transform[0], transform[1], transform[2], transform[3], transform[4], transform[5]
	shiftedTx := a*aabb.X + c*aabb.Y + tx
	shiftedTy := b*aabb.X + d*aabb.Y + ty
	shifted := [6]float64{a, b, c, d, shiftedTx, shiftedTy}
	return worldAABB(shifted, aabb.Width, aabb.Height)
}

// --- Polygon ---

// NewPolygon creates an untextured polygon mesh from the given vertices.
// Tint it through the node's Color.
func NewPolygon(name string, points []Point) *Node {
	verts, inds := buildPolygonFan(points)
	return NewMesh(name, WhitePixel, verts, inds)
}

// circleSegments is the fan resolution used by NewCircle.
const circleSegments = 32

// NewCircle creates a filled circle mesh centered at (cx, cy).
func NewCircle(name string, cx, cy, radius float64) *Node {
	pts := make([]Point, circleSegments)
	for i := range pts {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / circleSegments)
		pts[i] = Point{cx + cos*radius, cy + sin*radius}
	}
	return NewPolygon(name, pts)
}

// NewLine creates a straight line mesh of the given width from a to b.
// A zero-length line yields a mesh with no triangles.
func NewLine(name string, a, b Point, width float64) *Node {
	d := b.Sub(a)
	l := d.Len()
	if l == 0 {
		return NewMesh(name, WhitePixel, nil, nil)
	}
	nx := -d.Y / l * width / 2
	ny := d.X / l * width / 2
	return NewPolygon(name, []Point{
		{a.X + nx, a.Y + ny},
		{b.X + nx, b.Y + ny},
		{b.X - nx, b.Y - ny},
		{a.X - nx, a.Y - ny},
	})
}

// buildPolygonFan generates vertices and indices for a fan-triangulated polygon.
// N vertices, 3*(N-2) indices.
func buildPolygonFan(points []Point) ([]ebiten.Vertex, []uint16) {
	n := len(points)
	if n < 3 {
		return nil, nil
	}

	verts := make([]ebiten.Vertex, n)
	inds := make([]uint16, (n-2)*3)

	for i, p := range points {
		v := &verts[i]
		v.DstX = float32(p.X)
		v.DstY = float32(p.Y)
		v.ColorR = 1
		v.ColorG = 1
		v.ColorB = 1
		v.ColorA = 1
		// Untextured: map to center of white pixel (0.5, 0.5)
		v.SrcX = 0.5
		v.SrcY = 0.5
	}

	// Fan triangulation: vertex 0 is the hub.
	for i := 0; i < n-2; i++ {
		inds[i*3+0] = 0
		inds[i*3+1] = uint16(i + 1)
		inds[i*3+2] = uint16(i + 2)
	}

	return verts, inds
}
