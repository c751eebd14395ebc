package main

import (
	"github.com/phanxgames/isometric"
	"github.com/spf13/cobra"
)

// calibFlags are the transform flags shared by report and view.
type calibFlags struct {
	preset                 string
	rotation, skewX, skewY float64
	scale                  float64
	pivot                  string
}

func (f *calibFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVar(&f.preset, "preset", "", "start from a named preset")
	fs.Float64Var(&f.rotation, "rotation", 0, "rotation in degrees")
	fs.Float64Var(&f.skewX, "skew-x", 0, "horizontal skew in degrees")
	fs.Float64Var(&f.skewY, "skew-y", 0, "vertical skew in degrees")
	fs.Float64Var(&f.scale, "scale", 0.5, "square scale")
	fs.StringVar(&f.pivot, "pivot", isometric.PivotTopLeft.String(),
		"fixed point: top-left, top-right, bottom-right, bottom-left or center")
}

// calibration builds the square described by the flags. Explicit angle
// flags override the preset's.
func (f *calibFlags) calibration(cmd *cobra.Command) (*isometric.Calibration, error) {
	c := isometric.NewCalibration()
	if f.preset != "" {
		p, err := isometric.LookupPreset(f.preset)
		if err != nil {
			return nil, err
		}
		c.FromPreset(p)
	}
	fs := cmd.Flags()
	if fs.Changed("rotation") || f.preset == "" {
		c.Rotation = f.rotation
	}
	if fs.Changed("skew-x") || f.preset == "" {
		c.SkewX = f.skewX
	}
	if fs.Changed("skew-y") || f.preset == "" {
		c.SkewY = f.skewY
	}
	c.Scale = f.scale
	pivot, err := isometric.ParsePivot(f.pivot)
	if err != nil {
		return nil, err
	}
	c.Pivot = pivot
	return c, nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "isocalib",
		Short: "Measure isometric projection presets",
		Long: `Transform a square like the projected scene root and measure it.

Examples:
  isocalib report --preset "True Isometric"        # Measure a built-in preset
  isocalib report --rotation -45 --skew-x 18.435   # Measure custom angles
  isocalib presets                                 # List the built-in presets
  isocalib view --preset "Dimetric (2:1)"          # Calibrate interactively`,
		SilenceUsage: true,
	}
	root.AddCommand(newReportCmd(), newPresetsCmd(), newViewCmd())
	return root
}
