package isometric

import (
	"encoding/json"
	"fmt"
	"os"
)

// Settings holds the world-level configuration shared by every scene.
type Settings struct {
	// WorldIsometric gates the whole system.
	WorldIsometric bool `json:"worldIsometricFlag"`
	// Projection names the active preset.
	Projection string `json:"projection"`

	EnableHeightAdjustment bool `json:"enableHeightAdjustment"`
	// EnableTokenVisuals draws elevation shadows and lines. Only effective
	// together with EnableHeightAdjustment.
	EnableTokenVisuals bool `json:"enableTokenVisuals"`

	EnableOcclusionDynamicTile bool `json:"enableOcclusionDynamicTile"`
	EnableOcclusionSilhouette  bool `json:"enableOcclusionSilhouette"`
	EnableDepthSort            bool `json:"enableDepthSort"`

	// OpacityFadeSeconds animates overlay tile opacity changes. Zero snaps.
	OpacityFadeSeconds float64 `json:"opacityFadeSeconds"`
	// TransitionSeconds eases the stage rotation and skew when a settings
	// or scene change alters the projection. Zero snaps.
	TransitionSeconds float64 `json:"transitionSeconds"`

	// Debug enables diagnostic logging only.
	Debug bool `json:"debug"`
}

// DefaultSettings returns the settings a fresh world starts with.
func DefaultSettings() Settings {
	return Settings{
		WorldIsometric:     true,
		Projection:         DefaultPresetName,
		EnableTokenVisuals: true,
	}
}

// SceneConfig holds the per-scene configuration.
type SceneConfig struct {
	IsometricEnabled    bool    `json:"isometricEnabled"`
	IsometricBackground bool    `json:"isometricBackground"`
	IsometricScale      float64 `json:"isometricScale"`

	// Width and Height are the scene dimensions without padding.
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	// Padding is a fraction of the scene dimensions added on every side.
	Padding float64 `json:"padding"`

	BackgroundOffsetX float64 `json:"backgroundOffsetX"`
	BackgroundOffsetY float64 `json:"backgroundOffsetY"`

	// GridSize is the pixel size of a grid cell.
	GridSize float64 `json:"gridSize"`
	// GridDistance is the number of distance units per grid cell.
	GridDistance float64 `json:"gridDistance"`
}

// DefaultSceneConfig returns a flat scene with a 100px, 5-unit grid.
func DefaultSceneConfig() SceneConfig {
	return SceneConfig{
		IsometricScale: 1,
		GridSize:       100,
		GridDistance:   5,
	}
}

// GridSizeRatio is the grid size relative to the 100px reference grid.
func (c SceneConfig) GridSizeRatio() float64 {
	if c.GridSize <= 0 {
		return 1
	}
	return c.GridSize / 100
}

// gridDistance returns GridDistance, treating non-positive values as 1.
func (c SceneConfig) gridDistance() float64 {
	if c.GridDistance <= 0 {
		return 1
	}
	return c.GridDistance
}

// isoScale returns IsometricScale clamped to be non-negative.
func (c SceneConfig) isoScale() float64 {
	return max(c.IsometricScale, 0)
}

// Isometric reports whether the scene is in isometric mode under s.
func (s Settings) Isometric(c SceneConfig) bool {
	return s.WorldIsometric && c.IsometricEnabled
}

// LoadSettings decodes JSON settings. Missing keys keep their defaults.
func LoadSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	if err := json.Unmarshal(data, &s); err != nil {
		return Settings{}, fmt.Errorf("isometric: decode settings: %w", err)
	}
	return s, nil
}

// LoadSettingsFile reads and decodes a JSON settings file.
func LoadSettingsFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("isometric: read settings: %w", err)
	}
	return LoadSettings(data)
}

// LoadSceneConfig decodes a JSON scene configuration. Missing keys keep
// their defaults.
func LoadSceneConfig(data []byte) (SceneConfig, error) {
	c := DefaultSceneConfig()
	if err := json.Unmarshal(data, &c); err != nil {
		return SceneConfig{}, fmt.Errorf("isometric: decode scene config: %w", err)
	}
	return c, nil
}

// LoadSceneConfigFile reads and decodes a JSON scene configuration file.
func LoadSceneConfigFile(path string) (SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SceneConfig{}, fmt.Errorf("isometric: read scene config: %w", err)
	}
	return LoadSceneConfig(data)
}
