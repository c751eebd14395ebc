package isometric

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Filter is the interface for visual effects applied to a node's rendered output.
type Filter interface {
	// Apply renders src into dst with the filter effect.
	Apply(src, dst *ebiten.Image)
	// Padding returns the extra pixels needed around the source to accommodate
	// the effect (e.g. outline thickness). Zero means no padding.
	Padding() int
}

// Ebitengine uses premultiplied alpha; the shader un-premultiplies before
// processing and re-premultiplies its output.
const colorMatrixShaderSrc = `//kage:unit pixels
package main

var Matrix [20]float

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	c := imageSrc0At(src)
	if c.a > 0 {
		c.rgb /= c.a
	}
	r := Matrix[0]*c.r + Matrix[1]*c.g + Matrix[2]*c.b + Matrix[3]*c.a + Matrix[4]
	g := Matrix[5]*c.r + Matrix[6]*c.g + Matrix[7]*c.b + Matrix[8]*c.a + Matrix[9]
	b := Matrix[10]*c.r + Matrix[11]*c.g + Matrix[12]*c.b + Matrix[13]*c.a + Matrix[14]
	a := Matrix[15]*c.r + Matrix[16]*c.g + Matrix[17]*c.b + Matrix[18]*c.a + Matrix[19]
	r = clamp(r, 0, 1)
	g = clamp(g, 0, 1)
	b = clamp(b, 0, 1)
	a = clamp(a, 0, 1)
	return vec4(r*a, g*a, b*a, a)
}
`

// Lazy shader compilation (no sync.Once, single-threaded).
var colorMatrixShader *ebiten.Shader

func ensureColorMatrixShader() *ebiten.Shader {
	if colorMatrixShader == nil {
		s, err := ebiten.NewShader([]byte(colorMatrixShaderSrc))
		if err != nil {
			panic("isometric: failed to compile color matrix shader: " + err.Error())
		}
		colorMatrixShader = s
	}
	return colorMatrixShader
}

// --- ColorMatrixFilter ---

// ColorMatrixFilter applies a 4x5 color matrix transformation using a Kage shader.
// The matrix is stored in row-major order: [R_r, R_g, R_b, R_a, R_offset, G_r, ...].
type ColorMatrixFilter struct {
	Matrix      [20]float64
	uniforms    map[string]any
	matrixF32   [20]float32
	matrixSlice []float32
	shaderOp    ebiten.DrawRectShaderOptions
}

// NewColorMatrixFilter creates a color matrix filter initialized to the identity.
func NewColorMatrixFilter() *ColorMatrixFilter {
	f := &ColorMatrixFilter{
		uniforms: make(map[string]any, 1),
	}
	f.matrixSlice = f.matrixF32[:]
	f.uniforms["Matrix"] = f.matrixSlice
	f.Matrix[0] = 1  // R_r
	f.Matrix[6] = 1  // G_g
	f.Matrix[12] = 1 // B_b
	f.Matrix[18] = 1 // A_a
	return f
}

// SetDarken multiplies the RGB channels by k, leaving alpha untouched.
// k=1 is normal, 0 is a black silhouette.
func (f *ColorMatrixFilter) SetDarken(k float64) {
	f.Matrix = [20]float64{
		k, 0, 0, 0, 0,
		0, k, 0, 0, 0,
		0, 0, k, 0, 0,
		0, 0, 0, 1, 0,
	}
}

// Apply renders the color matrix transformation from src into dst.
func (f *ColorMatrixFilter) Apply(src, dst *ebiten.Image) {
	shader := ensureColorMatrixShader()
	for i, v := range f.Matrix {
		f.matrixF32[i] = float32(v)
	}
	bounds := src.Bounds()
	f.shaderOp.Images[0] = src
	f.shaderOp.Uniforms = f.uniforms
	dst.DrawRectShader(bounds.Dx(), bounds.Dy(), shader, &f.shaderOp)
}

// Padding returns 0; color matrix transforms don't expand the image bounds.
func (f *ColorMatrixFilter) Padding() int { return 0 }

// --- OutlineFilter ---

// OutlineFilter draws the source in 8 cardinal/diagonal offsets with the outline
// color, then draws the original on top.
type OutlineFilter struct {
	Thickness int
	Color     Color
	imgOp     ebiten.DrawImageOptions
}

// NewOutlineFilter creates an outline filter.
func NewOutlineFilter(thickness int, c Color) *OutlineFilter {
	return &OutlineFilter{Thickness: thickness, Color: c}
}

// Apply draws an 8-direction offset outline behind the source image.
func (f *OutlineFilter) Apply(src, dst *ebiten.Image) {
	t := float64(f.Thickness)
	offsets := [8][2]float64{
		{-t, 0}, {t, 0}, {0, -t}, {0, t},
		{-t, -t}, {t, -t}, {-t, t}, {t, t},
	}

	op := &f.imgOp
	for _, off := range offsets {
		op.GeoM.Reset()
		op.ColorScale.Reset()
		op.GeoM.Translate(off[0], off[1])
		op.ColorScale.Scale(
			float32(f.Color.R*f.Color.A),
			float32(f.Color.G*f.Color.A),
			float32(f.Color.B*f.Color.A),
			float32(f.Color.A),
		)
		dst.DrawImage(src, op)
	}

	op.GeoM.Reset()
	op.ColorScale.Reset()
	dst.DrawImage(src, op)
}

// Padding returns the outline thickness; the offscreen buffer is expanded by this amount.
func (f *OutlineFilter) Padding() int { return f.Thickness }

// filterChainPadding returns the cumulative padding required by a slice of filters.
func filterChainPadding(filters []Filter) int {
	pad := 0
	for _, f := range filters {
		pad += f.Padding()
	}
	return pad
}

// applyFilters runs a filter chain on src, ping-ponging between two images.
// Returns the image containing the final result and the spare image the
// caller must release (nil when no scratch image was used).
func applyFilters(filters []Filter, src *ebiten.Image, pool *renderTexturePool) (result, spare *ebiten.Image) {
	if len(filters) == 0 {
		return src, nil
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	current := src
	var scratch *ebiten.Image

	for _, f := range filters {
		if scratch == nil {
			scratch = pool.Acquire(w, h)
		} else {
			scratch.Clear()
		}
		f.Apply(current, scratch)
		current, scratch = scratch, current
	}

	return current, scratch
}

// ColorFromHex converts a 0xRRGGBB value to an opaque Color.
func ColorFromHex(hex uint32) Color {
	return Color{
		R: float64(hex>>16&0xff) / 255,
		G: float64(hex>>8&0xff) / 255,
		B: float64(hex&0xff) / 255,
		A: 1,
	}
}
