package isometric

import (
	"errors"
	"fmt"
	"math"
)

// ErrUnknownPreset is returned by LookupPreset for names not in the table.
var ErrUnknownPreset = errors.New("isometric: unknown projection preset")

// DefaultPresetName is the projection used when none is configured.
const DefaultPresetName = "True Isometric"

// Preset is a named projection. Angles are in degrees.
type Preset struct {
	Name string
	// Rotation, SkewX and SkewY are applied to the scene root.
	Rotation, SkewX, SkewY float64
	// HUDAngle places flat overlay widgets (see HUDPositionAngle).
	HUDAngle float64
	// ReverseRotation, ReverseSkewX and ReverseSkewY are applied to each
	// entity mesh to compensate for the root transform.
	ReverseRotation, ReverseSkewX, ReverseSkewY float64
	// Ratio is the vertical compensation factor, the ratio between the
	// projected tile diagonals.
	Ratio float64
}

// PresetRadians is a Preset with angles converted to radians once.
type PresetRadians struct {
	Name                                        string
	Rotation, SkewX, SkewY                      float64
	HUDAngle                                    float64
	ReverseRotation, ReverseSkewX, ReverseSkewY float64
	Ratio                                       float64
}

// Radians converts the preset's angles to radians.
func (p Preset) Radians() PresetRadians {
	return PresetRadians{
		Name:            p.Name,
		Rotation:        DegToRad(p.Rotation),
		SkewX:           DegToRad(p.SkewX),
		SkewY:           DegToRad(p.SkewY),
		HUDAngle:        DegToRad(p.HUDAngle),
		ReverseRotation: DegToRad(p.ReverseRotation),
		ReverseSkewX:    DegToRad(p.ReverseSkewX),
		ReverseSkewY:    DegToRad(p.ReverseSkewY),
		Ratio:           p.Ratio,
	}
}

// presets is ordered for display; lookups go through presetIndex.
var presets = []Preset{
	{Name: "True Isometric", Rotation: -30, SkewX: 30, SkewY: 0, HUDAngle: 30, ReverseRotation: 45, Ratio: math.Sqrt(3)},
	{Name: "Dimetric (2:1)", Rotation: -45, SkewX: 18.435, SkewY: 18.435, HUDAngle: 26.57, ReverseRotation: 45, Ratio: 2},
	{Name: "Overhead (√2:1)", Rotation: -45, SkewX: 9.735607, SkewY: 9.735607, HUDAngle: 35.26, ReverseRotation: 45, Ratio: 1.414213389},
	{Name: "Projection (3:2)", Rotation: -45, SkewX: 11.3101, SkewY: 11.3101, HUDAngle: 33.69, ReverseRotation: 45, Ratio: 1.5},
	{Name: "Game: Diablo 1", Rotation: -30, SkewX: 34, SkewY: 4, HUDAngle: 26, ReverseRotation: 45, Ratio: 2.0503038415792987},
	{Name: "Game: Planescape Torment", Rotation: -35, SkewX: 20, SkewY: 0, HUDAngle: 35, ReverseRotation: 45, Ratio: 1.428148006742114},
}

var presetIndex = func() map[string]int {
	m := make(map[string]int, len(presets))
	for i, p := range presets {
		m[p.Name] = i
	}
	return m
}()

// Presets returns a copy of the preset table in display order.
func Presets() []Preset {
	return append([]Preset(nil), presets...)
}

// LookupPreset returns the preset with the given name.
func LookupPreset(name string) (Preset, error) {
	i, ok := presetIndex[name]
	if !ok {
		return Preset{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return presets[i], nil
}

// PresetOrDefault returns the named preset, or True Isometric when the name
// is empty or unknown.
func PresetOrDefault(name string) Preset {
	p, err := LookupPreset(name)
	if err != nil {
		return presets[0]
	}
	return p
}
