// Isocalib measures projection presets. It transforms a square the way the
// scene root is transformed and reports the constants a preset needs:
// diagonal ratio, HUD angle and corner angles.
//
//	isocalib report --preset "True Isometric"
//	isocalib report --rotation -45 --skew-x 18.435 --skew-y 18.435
//	isocalib presets
//	isocalib view
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
