package isometric

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()
	if !s.WorldIsometric || s.Projection != DefaultPresetName || !s.EnableTokenVisuals {
		t.Errorf("defaults = %+v", s)
	}
	if s.EnableOcclusionDynamicTile || s.EnableOcclusionSilhouette || s.Debug {
		t.Error("optional features should start disabled")
	}
}

func TestLoadSettingsKeepsDefaults(t *testing.T) {
	s, err := LoadSettings([]byte(`{"projection": "Dimetric (2:1)", "enableDepthSort": true}`))
	if err != nil {
		t.Fatalf("LoadSettings: %v", err)
	}
	if s.Projection != "Dimetric (2:1)" || !s.EnableDepthSort {
		t.Errorf("decoded = %+v", s)
	}
	if !s.WorldIsometric || !s.EnableTokenVisuals {
		t.Error("missing keys should keep their defaults")
	}
}

func TestLoadSettingsInvalid(t *testing.T) {
	if _, err := LoadSettings([]byte(`{"projection": 3`)); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestLoadSettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := os.WriteFile(path, []byte(`{"worldIsometricFlag": false}`), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadSettingsFile(path)
	if err != nil {
		t.Fatalf("LoadSettingsFile: %v", err)
	}
	if s.WorldIsometric {
		t.Error("worldIsometricFlag should decode to false")
	}
	if _, err := LoadSettingsFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadSceneConfig(t *testing.T) {
	c, err := LoadSceneConfig([]byte(`{"isometricEnabled": true, "width": 4000, "height": 3000, "padding": 0.25}`))
	if err != nil {
		t.Fatalf("LoadSceneConfig: %v", err)
	}
	if !c.IsometricEnabled || c.Width != 4000 || c.Height != 3000 || c.Padding != 0.25 {
		t.Errorf("decoded = %+v", c)
	}
	if c.GridSize != 100 || c.GridDistance != 5 || c.IsometricScale != 1 {
		t.Error("missing keys should keep their defaults")
	}
}

func TestLoadSceneConfigInvalid(t *testing.T) {
	if _, err := LoadSceneConfig([]byte(`[]`)); err == nil {
		t.Error("expected error decoding an array")
	}
}

func TestGridSizeRatio(t *testing.T) {
	cases := []struct{ grid, want float64 }{{100, 1}, {50, 0.5}, {150, 1.5}, {0, 1}, {-10, 1}}
	for _, c := range cases {
		got := SceneConfig{GridSize: c.grid}.GridSizeRatio()
		if got != c.want {
			t.Errorf("GridSizeRatio(%v) = %v, want %v", c.grid, got, c.want)
		}
	}
}

func TestSceneConfigGuards(t *testing.T) {
	c := SceneConfig{GridDistance: 0, IsometricScale: -2}
	if c.gridDistance() != 1 {
		t.Errorf("gridDistance = %v, want 1", c.gridDistance())
	}
	if c.isoScale() != 0 {
		t.Errorf("isoScale = %v, want 0", c.isoScale())
	}
}

func TestSettingsIsometric(t *testing.T) {
	cases := []struct {
		world, scene, want bool
	}{
		{true, true, true},
		{true, false, false},
		{false, true, false},
		{false, false, false},
	}
	for _, c := range cases {
		s := Settings{WorldIsometric: c.world}
		if got := s.Isometric(SceneConfig{IsometricEnabled: c.scene}); got != c.want {
			t.Errorf("Isometric(world=%v, scene=%v) = %v, want %v", c.world, c.scene, got, c.want)
		}
	}
}
