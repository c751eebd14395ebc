package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/phanxgames/isometric"
	"github.com/spf13/cobra"
)

const (
	angleStep = 0.5
	scaleStep = 0.05
)

var clearColor = color.RGBA{R: 30, G: 30, B: 40, A: 255}

const viewHelp = `arrows: rotation / skew X   shift+arrows: skew Y
+/-: scale   P: pivot   1-6: preset   R: reset   Esc: quit`

// calibView draws the calibration square and its pivot diagonal and adjusts
// them from the keyboard.
type calibView struct {
	calib  *isometric.Calibration
	canvas *isometric.Canvas
	line   *isometric.Node
	report isometric.Report
	w, h   int
}

func newCalibView(c *isometric.Calibration, w, h int) *calibView {
	v := &calibView{calib: c, canvas: isometric.NewCanvas(float64(w), float64(h)), w: w, h: h}
	v.canvas.Viewport.CullEnabled = false
	c.Rect.Color = isometric.ColorFromHex(0x4fa3ff)
	v.canvas.Tiles.AddChild(c.Rect)
	v.remeasure()
	return v
}

// remeasure measures the square and rebuilds the diagonal.
func (v *calibView) remeasure() {
	v.report = v.calib.Measure()
	if v.line != nil {
		v.line.Dispose()
	}
	pivot, opposite := v.calib.PivotLine()
	v.line = isometric.NewLine("pivot-line", pivot, opposite, 2)
	v.line.Color = isometric.ColorFromHex(0xff0000)
	v.canvas.Visuals.AddChild(v.line)
}

func (v *calibView) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	c := v.calib
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	changed := true
	switch {
	case ebiten.IsKeyPressed(ebiten.KeyLeft):
		c.Rotation -= angleStep
	case ebiten.IsKeyPressed(ebiten.KeyRight):
		c.Rotation += angleStep
	case ebiten.IsKeyPressed(ebiten.KeyUp) && shift:
		c.SkewY += angleStep
	case ebiten.IsKeyPressed(ebiten.KeyDown) && shift:
		c.SkewY -= angleStep
	case ebiten.IsKeyPressed(ebiten.KeyUp):
		c.SkewX += angleStep
	case ebiten.IsKeyPressed(ebiten.KeyDown):
		c.SkewX -= angleStep
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual), inpututil.IsKeyJustPressed(ebiten.KeyKPAdd):
		c.Scale += scaleStep
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus), inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract):
		c.Scale = max(c.Scale-scaleStep, scaleStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		c.Pivot = (c.Pivot + 1) % (isometric.PivotCenter + 1)
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		c.Rotation, c.SkewX, c.SkewY = 0, 0, 0
	default:
		changed = v.presetKey()
	}
	if changed {
		v.remeasure()
	}
	return nil
}

// presetKey loads the preset bound to a just-pressed digit key.
func (v *calibView) presetKey() bool {
	for i, p := range isometric.Presets() {
		if inpututil.IsKeyJustPressed(ebiten.Key1 + ebiten.Key(i)) {
			v.calib.FromPreset(p)
			return true
		}
	}
	return false
}

func (v *calibView) Draw(screen *ebiten.Image) {
	screen.Fill(clearColor)
	v.canvas.Draw(screen)
	ebitenutil.DebugPrint(screen, "pivot: "+v.calib.Pivot.String()+"\n"+
		v.report.String()+"\n\n"+v.report.PresetLine()+"\n\n"+viewHelp)
}

func (v *calibView) Layout(_, _ int) (int, int) {
	return v.w, v.h
}

func newViewCmd() *cobra.Command {
	var (
		f    calibFlags
		w, h int
	)
	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open a window to calibrate a projection interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := f.calibration(cmd)
			if err != nil {
				return err
			}
			ebiten.SetWindowSize(w, h)
			ebiten.SetWindowTitle("Isometric Calibration")
			return ebiten.RunGame(newCalibView(c, w, h))
		},
	}
	f.register(cmd)
	cmd.Flags().IntVar(&w, "width", 960, "window width")
	cmd.Flags().IntVar(&h, "height", 720, "window height")
	return cmd
}
