package isometric

import "log/slog"

// Mode is the projection state of a scene.
type Mode uint8

const (
	ModeFlat      Mode = iota // no projection; entities at identity transforms
	ModeIsometric             // stage projected, entities compensated
)

// String returns "flat" or "isometric".
func (m Mode) String() string {
	if m == ModeIsometric {
		return "isometric"
	}
	return "flat"
}

// Projection is everything the transform engine reads for one pass. It is
// rebuilt from the current settings on every trigger and never mutated
// while a pass runs.
type Projection struct {
	Mode   Mode
	Preset PresetRadians
	Scene  SceneConfig

	HeightAdjustment bool
	TokenVisuals     bool
	DepthSort        bool
	// Debug routes skipped-work diagnostics to the package logger.
	Debug bool
}

// NewProjection derives the projection for a scene from the world settings.
func NewProjection(s Settings, scene SceneConfig) Projection {
	mode := ModeFlat
	if s.Isometric(scene) {
		mode = ModeIsometric
	}
	return Projection{
		Mode:             mode,
		Preset:           PresetOrDefault(s.Projection).Radians(),
		Scene:            scene,
		HeightAdjustment: s.EnableHeightAdjustment,
		TokenVisuals:     s.EnableHeightAdjustment && s.EnableTokenVisuals,
		DepthSort:        s.EnableDepthSort,
		Debug:            s.Debug,
	}
}

func (p Projection) log() *slog.Logger {
	return debugLogger(p.Debug)
}

// Isometric reports whether the projection is active.
func (p Projection) Isometric() bool {
	return p.Mode == ModeIsometric
}

// ApplyStage writes the whole-scene rotation and skew to the stage, or
// clears them in flat mode.
func ApplyStage(stage *Node, p Projection) {
	if stage == nil {
		p.log().Debug("stage missing, projection skipped")
		return
	}
	if p.Isometric() {
		stage.SetRotation(p.Preset.Rotation)
		stage.SetSkew(p.Preset.SkewX, p.Preset.SkewY)
		return
	}
	stage.SetRotation(0)
	stage.SetSkew(0, 0)
}

// backgroundCenter returns the scene center shifted by padding and the
// background offset.
func backgroundCenter(c SceneConfig) Point {
	return Point{
		X: c.Width/2 + c.Width*c.Padding + c.BackgroundOffsetX,
		Y: c.Height/2 + c.Height*c.Padding + c.BackgroundOffsetY,
	}
}

// ApplyBackground transforms the background art when the scene is isometric
// and its background toggle is set; otherwise it resets it. A nil background
// is a no-op.
func ApplyBackground(bg *Node, p Projection) {
	if bg == nil {
		p.log().Debug("background missing, transform skipped")
		return
	}
	c := backgroundCenter(p.Scene)
	bg.SetAnchor(0.5, 0.5)
	bg.SetPosition(c.X, c.Y)
	if p.Isometric() && p.Scene.IsometricBackground {
		s := p.Scene.isoScale()
		bg.SetRotation(p.Preset.ReverseRotation)
		bg.SetSkew(p.Preset.ReverseSkewX, p.Preset.ReverseSkewY)
		bg.SetScale(s, s*p.Preset.Ratio)
		return
	}
	bg.SetRotation(0)
	bg.SetSkew(0, 0)
	bg.SetScale(1, 1)
}
