package isometric

import (
	"errors"
	"math"
	"testing"
)

func TestLookupPreset(t *testing.T) {
	p, err := LookupPreset("Dimetric (2:1)")
	if err != nil {
		t.Fatalf("LookupPreset: %v", err)
	}
	if p.Rotation != -45 || p.SkewX != 18.435 || p.SkewY != 18.435 || p.Ratio != 2 {
		t.Errorf("Dimetric = %+v", p)
	}
}

func TestLookupPresetUnknown(t *testing.T) {
	_, err := LookupPreset("Oblique")
	if !errors.Is(err, ErrUnknownPreset) {
		t.Fatalf("err = %v, want ErrUnknownPreset", err)
	}
}

func TestPresetOrDefault(t *testing.T) {
	for _, name := range []string{"", "nope"} {
		if got := PresetOrDefault(name); got.Name != DefaultPresetName {
			t.Errorf("PresetOrDefault(%q) = %q, want %q", name, got.Name, DefaultPresetName)
		}
	}
	if got := PresetOrDefault("Game: Diablo 1"); got.SkewY != 4 {
		t.Errorf("Diablo SkewY = %v, want 4", got.SkewY)
	}
}

func TestPresetsTable(t *testing.T) {
	ps := Presets()
	if len(ps) != 6 {
		t.Fatalf("presets = %d, want 6", len(ps))
	}
	if ps[0].Name != DefaultPresetName {
		t.Errorf("first preset = %q, want the default", ps[0].Name)
	}
	for _, p := range ps {
		if p.ReverseRotation != 45 || p.ReverseSkewX != 0 || p.ReverseSkewY != 0 {
			t.Errorf("%s: reverse = (%v, %v, %v), want (45, 0, 0)",
				p.Name, p.ReverseRotation, p.ReverseSkewX, p.ReverseSkewY)
		}
		if p.Ratio <= 1 {
			t.Errorf("%s: ratio %v should exceed 1", p.Name, p.Ratio)
		}
	}
}

func TestPresetsReturnsCopy(t *testing.T) {
	ps := Presets()
	ps[0].Ratio = 99
	if PresetOrDefault("").Ratio == 99 {
		t.Error("mutating Presets() result should not change the table")
	}
}

func TestPresetRadians(t *testing.T) {
	r := PresetOrDefault("").Radians()
	assertNear(t, "Rotation", r.Rotation, -math.Pi/6)
	assertNear(t, "SkewX", r.SkewX, math.Pi/6)
	assertNear(t, "SkewY", r.SkewY, 0)
	assertNear(t, "ReverseRotation", r.ReverseRotation, math.Pi/4)
	assertNear(t, "Ratio", r.Ratio, math.Sqrt(3))
}
