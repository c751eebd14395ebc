package isometric

import (
	"image"

	"golang.org/x/image/draw"
)

// alphaMaskMaxSide bounds the resampled mask so overlap tests stay cheap on
// large art.
const alphaMaskMaxSide = 128

// alphaMask is a down-sampled copy of a sprite's alpha channel, addressed in
// the sprite's texture space.
type alphaMask struct {
	a      *image.Alpha
	texW   float64
	texH   float64
	sx, sy float64
}

// newAlphaMask resamples src's alpha into a mask covering a texture of
// texW x texH units. It returns nil for empty sources or textures.
func newAlphaMask(src image.Image, texW, texH float64) *alphaMask {
	if src == nil || texW <= 0 || texH <= 0 {
		return nil
	}
	sb := src.Bounds()
	if sb.Empty() {
		return nil
	}
	w, h := sb.Dx(), sb.Dy()
	if m := max(w, h); m > alphaMaskMaxSide {
		w = max(1, w*alphaMaskMaxSide/m)
		h = max(1, h*alphaMaskMaxSide/m)
	}
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, sb, draw.Src, nil)
	return &alphaMask{
		a:    dst,
		texW: texW,
		texH: texH,
		sx:   float64(w) / texW,
		sy:   float64(h) / texH,
	}
}

// opaqueAt reports whether the texture point (x, y) has any coverage.
func (m *alphaMask) opaqueAt(x, y float64) bool {
	if x < 0 || y < 0 || x >= m.texW || y >= m.texH {
		return false
	}
	return m.a.AlphaAt(int(x*m.sx), int(y*m.sy)).A > 0
}

// overlapChunk is the world-space sampling step of alphaOverlap.
const overlapChunk = 2

// alphaOverlap reports whether a and b have coverage at a common world point
// inside area. Each chunk of overlapChunk x overlapChunk world units is
// tested at its corner pixels until one is opaque in both.
func alphaOverlap(area Rect, a *Node, am *alphaMask, b *Node, bm *alphaMask) bool {
	if area.Empty() {
		return false
	}
	ia := invertAffine(a.WorldTransform())
	ib := invertAffine(b.WorldTransform())
	for cy := area.Y; cy < area.Y+area.Height; cy += overlapChunk {
		for cx := area.X; cx < area.X+area.Width; cx += overlapChunk {
			if chunkOverlaps(cx, cy, area, ia, am, ib, bm) {
				return true
			}
		}
	}
	return false
}

func chunkOverlaps(cx, cy float64, area Rect, ia [6]float64, am *alphaMask, ib [6]float64, bm *alphaMask) bool {
	for by := 0.0; by < overlapChunk; by++ {
		y := cy + by + 0.5
		if y >= area.Y+area.Height {
			break
		}
		for bx := 0.0; bx < overlapChunk; bx++ {
			x := cx + bx + 0.5
			if x >= area.X+area.Width {
				break
			}
			ax, ay := transformPoint(ia, x, y)
			if !am.opaqueAt(ax, ay) {
				continue
			}
			bx2, by2 := transformPoint(ib, x, y)
			if bm.opaqueAt(bx2, by2) {
				return true
			}
		}
	}
	return false
}
