package isometric

import (
	"encoding/json"
	"math"
	"strings"
	"testing"
)

func TestParseFlagsNil(t *testing.T) {
	if got := ParseFlags(KindMovable, nil); got != DefaultFlags() {
		t.Errorf("ParseFlags(nil) = %+v, want defaults", got)
	}
}

func TestParseFlagsMovable(t *testing.T) {
	f := ParseFlags(KindMovable, map[string]any{
		FlagScale:         1.5,
		FlagOffsetX:       10,
		FlagOffsetY:       float32(-4),
		FlagTokenDisabled: true,
		FlagTileDisabled:  false,
		FlagLinkedWallID:  "w1",
	})
	if f.Scale != 1.5 || f.OffsetX != 10 || f.OffsetY != -4 {
		t.Errorf("numbers = (%v, %v, %v)", f.Scale, f.OffsetX, f.OffsetY)
	}
	if !f.Disabled {
		t.Error("isoTokenDisabled should disable a movable")
	}
	if f.LinkedWallID != "" {
		t.Error("movables should ignore linkedWallId")
	}
}

func TestParseFlagsStatic(t *testing.T) {
	f := ParseFlags(KindStatic, map[string]any{
		FlagTokenDisabled:    true,
		FlagLinkedWallID:     "wall-7",
		FlagReverseTransform: false,
	})
	if f.Disabled {
		t.Error("statics read isoTileDisabled, not isoTokenDisabled")
	}
	if f.LinkedWallID != "wall-7" || f.ReverseTransform {
		t.Errorf("static flags = %+v", f)
	}
}

func TestParseFlagsWrongTypesFallBack(t *testing.T) {
	f := ParseFlags(KindStatic, map[string]any{
		FlagScale:            "big",
		FlagOffsetX:          true,
		FlagTileDisabled:     "yes",
		FlagLinkedWallID:     42,
		FlagReverseTransform: 0,
	})
	if f != DefaultFlags() {
		t.Errorf("ParseFlags = %+v, want defaults", f)
	}
}

func TestParseFlagsScaleClamped(t *testing.T) {
	f := ParseFlags(KindMovable, map[string]any{FlagScale: -3.0})
	if f.Scale != 0 {
		t.Errorf("Scale = %v, want 0", f.Scale)
	}
}

func TestParseFlagsScaleNaN(t *testing.T) {
	f := ParseFlags(KindMovable, map[string]any{FlagScale: math.NaN()})
	if f.Scale != 1 {
		t.Errorf("Scale = %v, want default 1", f.Scale)
	}
}

func TestParseFlagsOccluding(t *testing.T) {
	tests := []struct {
		name string
		kind EntityKind
		v    any
		want bool
	}{
		{"default", KindStatic, nil, false},
		{"bool", KindStatic, true, true},
		{"mode none", KindStatic, 0, false},
		{"mode set", KindStatic, float64(2), true},
		{"wrong type", KindStatic, "yes", false},
		{"movable ignores", KindMovable, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := map[string]any{}
			if tt.v != nil {
				m[FlagOccluding] = tt.v
			}
			if got := ParseFlags(tt.kind, m).Occluding; got != tt.want {
				t.Errorf("Occluding = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseFlagsFromJSON(t *testing.T) {
	var m map[string]any
	dec := json.NewDecoder(strings.NewReader(`{"scale": 2, "offsetY": 12.5, "isoTileDisabled": true}`))
	dec.UseNumber()
	if err := dec.Decode(&m); err != nil {
		t.Fatal(err)
	}
	f := ParseFlags(KindStatic, m)
	if f.Scale != 2 || f.OffsetY != 12.5 || !f.Disabled {
		t.Errorf("flags = %+v", f)
	}
}
