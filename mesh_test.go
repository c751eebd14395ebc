package isometric

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestTransformVerticesIdentity(t *testing.T) {
	src := []ebiten.Vertex{{DstX: 10, DstY: 20, ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1}}
	dst := make([]ebiten.Vertex, 1)
	transformVertices(src, dst, identityTransform, ColorWhite)
	if dst[0].DstX != 10 || dst[0].DstY != 20 {
		t.Errorf("Dst = (%v, %v), want (10, 20)", dst[0].DstX, dst[0].DstY)
	}
}

func TestTransformVerticesTranslation(t *testing.T) {
	src := []ebiten.Vertex{{DstX: 1, DstY: 2}}
	dst := make([]ebiten.Vertex, 1)
	transformVertices(src, dst, [6]float64{1, 0, 0, 1, 5, 7}, ColorWhite)
	if dst[0].DstX != 6 || dst[0].DstY != 9 {
		t.Errorf("Dst = (%v, %v), want (6, 9)", dst[0].DstX, dst[0].DstY)
	}
}

func TestTransformVerticesRotation90(t *testing.T) {
	src := []ebiten.Vertex{{DstX: 1, DstY: 0}}
	dst := make([]ebiten.Vertex, 1)
	transformVertices(src, dst, [6]float64{0, 1, -1, 0, 0, 0}, ColorWhite)
	if math.Abs(float64(dst[0].DstX)) > 1e-6 || math.Abs(float64(dst[0].DstY)-1) > 1e-6 {
		t.Errorf("Dst = (%v, %v), want (0, 1)", dst[0].DstX, dst[0].DstY)
	}
}

func TestTransformVerticesColorTint(t *testing.T) {
	src := []ebiten.Vertex{{ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1}}
	dst := make([]ebiten.Vertex, 1)
	transformVertices(src, dst, identityTransform, Color{R: 1, G: 0.5, B: 0, A: 0.5})
	v := dst[0]
	if v.ColorR != 0.5 || v.ColorG != 0.25 || v.ColorB != 0 || v.ColorA != 0.5 {
		t.Errorf("color = (%v, %v, %v, %v), want premultiplied (0.5, 0.25, 0, 0.5)",
			v.ColorR, v.ColorG, v.ColorB, v.ColorA)
	}
}

func TestTransformVerticesPreservesUV(t *testing.T) {
	src := []ebiten.Vertex{{SrcX: 3, SrcY: 4}}
	dst := make([]ebiten.Vertex, 1)
	transformVertices(src, dst, [6]float64{2, 0, 0, 2, 1, 1}, ColorWhite)
	if dst[0].SrcX != 3 || dst[0].SrcY != 4 {
		t.Errorf("Src = (%v, %v), want (3, 4)", dst[0].SrcX, dst[0].SrcY)
	}
}

func TestComputeMeshAABBEmpty(t *testing.T) {
	if got := computeMeshAABB(nil); got != (Rect{}) {
		t.Errorf("AABB = %v, want zero", got)
	}
}

func TestComputeMeshAABBTriangle(t *testing.T) {
	verts := []ebiten.Vertex{{DstX: 0, DstY: 0}, {DstX: 10, DstY: 0}, {DstX: 5, DstY: -8}}
	want := Rect{X: 0, Y: -8, Width: 10, Height: 8}
	if got := computeMeshAABB(verts); got != want {
		t.Errorf("AABB = %v, want %v", got, want)
	}
}

func TestMeshWorldAABBOffset(t *testing.T) {
	n := NewPolygon("p", []Point{{10, 10}, {20, 10}, {20, 30}})
	got := meshWorldAABB(n, [6]float64{1, 0, 0, 1, 100, 0})
	want := Rect{X: 110, Y: 10, Width: 10, Height: 20}
	if got != want {
		t.Errorf("world AABB = %v, want %v", got, want)
	}
}

func TestMeshWorldAABBWithScale(t *testing.T) {
	n := NewPolygon("p", []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}})
	got := meshWorldAABB(n, [6]float64{2, 0, 0, 3, 0, 0})
	want := Rect{Width: 20, Height: 30}
	if got != want {
		t.Errorf("world AABB = %v, want %v", got, want)
	}
}

// --- Shapes ---

func TestBuildPolygonFan(t *testing.T) {
	verts, inds := buildPolygonFan([]Point{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {-1, 0}})
	if len(verts) != 5 {
		t.Fatalf("verts = %d, want 5", len(verts))
	}
	want := []uint16{0, 1, 2, 0, 2, 3, 0, 3, 4}
	if len(inds) != len(want) {
		t.Fatalf("indices = %d, want %d", len(inds), len(want))
	}
	for i := range want {
		if inds[i] != want[i] {
			t.Errorf("inds[%d] = %d, want %d", i, inds[i], want[i])
		}
	}
	if verts[0].SrcX != 0.5 || verts[0].ColorA != 1 {
		t.Error("fan vertices should sample the white pixel center opaquely")
	}
}

func TestBuildPolygonFanDegenerate(t *testing.T) {
	verts, inds := buildPolygonFan([]Point{{0, 0}, {1, 1}})
	if verts != nil || inds != nil {
		t.Error("fewer than 3 points should produce no mesh")
	}
}

func TestNewCircleBounds(t *testing.T) {
	c := NewCircle("c", 50, 40, 10)
	if len(c.Vertices) != circleSegments {
		t.Fatalf("vertices = %d, want %d", len(c.Vertices), circleSegments)
	}
	b := computeMeshAABB(c.Vertices)
	if math.Abs(b.X-40) > 1e-3 || math.Abs(b.Width-20) > 1e-3 {
		t.Errorf("circle AABB = %v, want x 40..60", b)
	}
	if math.Abs(b.Y-30) > 1e-3 || math.Abs(b.Height-20) > 1e-3 {
		t.Errorf("circle AABB = %v, want y 30..50", b)
	}
}

func TestNewLineWidth(t *testing.T) {
	l := NewLine("l", Point{0, 0}, Point{10, 0}, 4)
	b := computeMeshAABB(l.Vertices)
	want := Rect{X: 0, Y: -2, Width: 10, Height: 4}
	if b != want {
		t.Errorf("line AABB = %v, want %v", b, want)
	}
}

func TestNewLineZeroLength(t *testing.T) {
	l := NewLine("l", Point{3, 3}, Point{3, 3}, 4)
	if len(l.Vertices) != 0 || len(l.Indices) != 0 {
		t.Error("zero-length line should have no triangles")
	}
}
