package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/phanxgames/isometric"
	"github.com/spf13/cobra"
)

func newReportCmd() *cobra.Command {
	var (
		f        calibFlags
		lineOnly bool
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the measurements of a transformed square",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := f.calibration(cmd)
			if err != nil {
				return err
			}
			r := c.Measure()
			out := cmd.OutOrStdout()
			if !lineOnly {
				fmt.Fprintln(out, r.String())
			}
			fmt.Fprintln(out, r.PresetLine())
			return nil
		},
	}
	f.register(cmd)
	cmd.Flags().BoolVar(&lineOnly, "line", false, "print only the preset line")
	return cmd
}

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in projection presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tROTATION\tSKEW X\tSKEW Y\tHUD\tRATIO\tMEASURED")
			c := isometric.NewCalibration()
			for _, p := range isometric.Presets() {
				c.FromPreset(p)
				r := c.Measure()
				fmt.Fprintf(w, "%s\t%g\t%g\t%g\t%g\t%.7f\t%.7f\n",
					p.Name, p.Rotation, p.SkewX, p.SkewY, p.HUDAngle, p.Ratio, r.Diagonals.Proportion)
			}
			return w.Flush()
		},
	}
}
