package engineconfig

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// EngineConfigPath is the path to the viewer preferences file, relative to the process working directory.
const EngineConfigPath = "config/viewer.json"

// EnginePrefs holds viewer preferences (window, overlays, where to find the campus). Persisted across runs.
// Room poses captured in edit mode are not stored here.
type EnginePrefs struct {
	WindowWidth  int32  `json:"window_width"`
	WindowHeight int32  `json:"window_height"`
	TargetFPS    int32  `json:"target_fps"`
	ShowFPS      bool   `json:"show_fps"`
	ShowPose     bool   `json:"show_pose"`
	CampusConfig string `json:"campus_config,omitempty"`
	AssetCache   string `json:"asset_cache,omitempty"`
}

// Default returns default preferences (1280x720 at 60 FPS, overlays off, embedded campus).
func Default() EnginePrefs {
	return EnginePrefs{
		WindowWidth:  1280,
		WindowHeight: 720,
		TargetFPS:    60,
		ShowFPS:      false,
		ShowPose:     false,
		AssetCache:   "cache/models",
	}
}

// Load reads preferences from EngineConfigPath. See LoadFrom.
func Load() (EnginePrefs, error) {
	return LoadFrom(EngineConfigPath)
}

// LoadFrom reads preferences from path. If the file is missing or invalid, returns Default()
// and does not create a file. Zero sizes in the file fall back to the defaults.
func LoadFrom(path string) (EnginePrefs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), nil
	}
	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), nil
	}
	d := Default()
	if p.WindowWidth <= 0 || p.WindowHeight <= 0 {
		p.WindowWidth, p.WindowHeight = d.WindowWidth, d.WindowHeight
	}
	if p.TargetFPS <= 0 {
		p.TargetFPS = d.TargetFPS
	}
	return p, nil
}

// Save writes preferences to EngineConfigPath. See SaveTo.
func Save(p EnginePrefs) error {
	return SaveTo(EngineConfigPath, p)
}

// SaveTo writes preferences to path, creating the directory if needed.
func SaveTo(path string, p EnginePrefs) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
