package isometric

import (
	"encoding/json"
	"math"
)

// Flag keys as stored on host entity documents.
const (
	FlagScale            = "scale"
	FlagOffsetX          = "offsetX"
	FlagOffsetY          = "offsetY"
	FlagTokenDisabled    = "isoTokenDisabled"
	FlagTileDisabled     = "isoTileDisabled"
	FlagLinkedWallID     = "linkedWallId"
	FlagReverseTransform = "reverseTransform"
	FlagOccluding        = "occluding"
)

// Flags are the per-entity overrides authored on the host document.
type Flags struct {
	// Scale multiplies the isometric scale. Never negative.
	Scale float64
	// OffsetX and OffsetY are pre-projection pixel offsets.
	OffsetX, OffsetY float64
	// Disabled opts the entity out of the isometric transform.
	Disabled bool
	// LinkedWallID associates a static entity with a wall ("" for none).
	LinkedWallID string
	// ReverseTransform selects the compensated scale basis for static
	// entities. When false the tile lies flat on the projected ground.
	ReverseTransform bool
	// Occluding marks a static whose art hides movables behind it, such as
	// a tree or a pillar. Only occluding statics produce silhouettes.
	Occluding bool
}

// DefaultFlags returns the flags of an entity with nothing authored.
func DefaultFlags() Flags {
	return Flags{Scale: 1, ReverseTransform: true}
}

// ParseFlags reads the flag contract from a decoded document map. Missing or
// wrong-typed values fall back to their defaults. The disabled key depends on
// kind: isoTokenDisabled for movables, isoTileDisabled for statics.
func ParseFlags(kind EntityKind, m map[string]any) Flags {
	f := DefaultFlags()
	if m == nil {
		return f
	}
	if v, ok := number(m[FlagScale]); ok {
		f.Scale = scaleOrDefault(v)
	}
	if v, ok := number(m[FlagOffsetX]); ok {
		f.OffsetX = v
	}
	if v, ok := number(m[FlagOffsetY]); ok {
		f.OffsetY = v
	}
	disabledKey := FlagTokenDisabled
	if kind == KindStatic {
		disabledKey = FlagTileDisabled
	}
	if v, ok := m[disabledKey].(bool); ok {
		f.Disabled = v
	}
	if kind == KindStatic {
		if v, ok := m[FlagLinkedWallID].(string); ok {
			f.LinkedWallID = v
		}
		if v, ok := m[FlagReverseTransform].(bool); ok {
			f.ReverseTransform = v
		}
		// A numeric value is a host occlusion mode where 0 means none.
		if v, ok := m[FlagOccluding].(bool); ok {
			f.Occluding = v
		} else if v, ok := number(m[FlagOccluding]); ok {
			f.Occluding = v != 0
		}
	}
	return f
}

// scaleOrDefault clamps a scale flag to be non-negative. NaN yields the
// default scale of 1.
func scaleOrDefault(v float64) float64 {
	if math.IsNaN(v) {
		return 1
	}
	return max(v, 0)
}

// number converts the numeric types a decoder may produce to float64.
func number(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
