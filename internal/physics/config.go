package physics

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigPath is the default physics config file, relative to the process working directory.
const ConfigPath = "config/physics.yaml"

// Config holds every tunable of the simulation. Values are read once at startup;
// the stepper never validates physical values at runtime.
type Config struct {
	Gravity        float32 `yaml:"gravity"`
	GroundY        float32 `yaml:"ground_y"`
	CubeSize       float32 `yaml:"cube_size"`
	Population     int     `yaml:"population"`
	BounceFactor   float32 `yaml:"bounce_factor"`
	FrictionFactor float32 `yaml:"friction_factor"`
	RestThreshold  float32 `yaml:"rest_threshold"`
	ResetInterval  float32 `yaml:"reset_interval"`
	// Bound is the wall distance from the origin on X and Z.
	Bound float32 `yaml:"bound"`

	// SpinRange: a hard impact assigns each spin axis U(-SpinRange, SpinRange) deg/s.
	SpinRange float32 `yaml:"spin_range"`
	// PerturbRange: tangential bounce-direction offsets are U(-PerturbRange, PerturbRange).
	PerturbRange float32 `yaml:"perturb_range"`

	GridWidth      int     `yaml:"grid_width"`
	SpawnHeightMin float32 `yaml:"spawn_height_min"`
	SpawnHeightMax float32 `yaml:"spawn_height_max"`

	SecondInterval    float32 `yaml:"second_interval"`
	FPSSampleInterval float32 `yaml:"fps_sample_interval"`
}

// DefaultConfig returns the stock simulation: 100 half-unit cubes in a 16x16 pen.
func DefaultConfig() Config {
	return Config{
		Gravity:           9.81,
		GroundY:           -2,
		CubeSize:          0.5,
		Population:        100,
		BounceFactor:      1,
		FrictionFactor:    0.9,
		RestThreshold:     0.05,
		ResetInterval:     10,
		Bound:             8,
		SpinRange:         180,
		PerturbRange:      0.5,
		GridWidth:         10,
		SpawnHeightMin:    5,
		SpawnHeightMax:    15,
		SecondInterval:    1,
		FPSSampleInterval: 0.5,
	}
}

// Validate rejects configs the world cannot be built from.
func (c Config) Validate() error {
	var errs []error
	if c.Population < 1 {
		errs = append(errs, fmt.Errorf("population must be at least 1, got %d", c.Population))
	}
	if c.CubeSize <= 0 {
		errs = append(errs, fmt.Errorf("cube_size must be positive, got %v", c.CubeSize))
	}
	if c.GridWidth < 1 {
		errs = append(errs, fmt.Errorf("grid_width must be at least 1, got %d", c.GridWidth))
	}
	if c.Bound <= c.CubeSize/2 {
		errs = append(errs, fmt.Errorf("bound %v does not fit a cube of size %v", c.Bound, c.CubeSize))
	}
	return errors.Join(errs...)
}

// LoadConfig reads a YAML config on top of DefaultConfig. Keys missing from the file keep
// their defaults. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read physics config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse physics config %s: %w", path, err)
	}
	return cfg, nil
}

// SaveConfig writes cfg as YAML, creating the parent directory if needed.
func SaveConfig(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
