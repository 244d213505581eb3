package engineconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// EngineConfigPath is the default display preferences file, relative to the working directory.
const EngineConfigPath = "config/engine.json"

// EnginePrefs holds display-side preferences. Simulation parameters live in the physics config.
type EnginePrefs struct {
	// DebugMode echoes log lines to stdout and turns vsync off.
	DebugMode bool `json:"debug_mode"`
	ShowFPS   bool `json:"show_fps"`
	// AutoRotateSpeed is how fast the view orbits the pen, in degrees/second.
	AutoRotateSpeed float32 `json:"auto_rotate_speed"`
	CameraHeight    float32 `json:"camera_height"`
	CameraDistance  float32 `json:"camera_distance"`
	TargetFPS       int32   `json:"target_fps,omitempty"`
}

// Default returns the stock view: orbiting at 100 deg/s from 8 units up and 15 back.
func Default() EnginePrefs {
	return EnginePrefs{
		DebugMode:       false,
		ShowFPS:         false,
		AutoRotateSpeed: 100,
		CameraHeight:    8,
		CameraDistance:  15,
	}
}

// VSync reports whether the swap interval should be synced to the display.
func (p EnginePrefs) VSync() bool {
	return !p.DebugMode
}

// Load reads preferences from path. A missing file yields Default() and no error;
// a file that cannot be read or parsed yields Default() and the error.
func Load(path string) (EnginePrefs, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("read engine config %s: %w", path, err)
	}
	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		return Default(), fmt.Errorf("parse engine config %s: %w", path, err)
	}
	return p, nil
}

// Save writes preferences to path, creating the directory if needed.
func Save(path string, p EnginePrefs) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
