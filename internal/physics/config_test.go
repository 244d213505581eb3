package physics

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("LoadConfig = %+v, want defaults", cfg)
	}
}

func TestLoadConfig_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "physics.yaml")
	data := "gravity: 3.5\npopulation: 42\nbounce_factor: 0.6\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	want := DefaultConfig()
	want.Gravity = 3.5
	want.Population = 42
	want.BounceFactor = 0.6
	if cfg != want {
		t.Errorf("LoadConfig = %+v, want %+v", cfg, want)
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "physics.yaml")
	if err := os.WriteFile(path, []byte("gravity: [not a number"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig on malformed YAML: want error")
	}
}

func TestSaveConfig_LoadsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "physics.yaml")
	cfg := DefaultConfig()
	cfg.Bound = 12
	cfg.GridWidth = 4
	if err := SaveConfig(path, cfg); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}
	got, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if got != cfg {
		t.Errorf("LoadConfig = %+v, want %+v", got, cfg)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(*Config) {}, false},
		{"no boxes", func(c *Config) { c.Population = 0 }, true},
		{"flat cube", func(c *Config) { c.CubeSize = 0 }, true},
		{"no grid", func(c *Config) { c.GridWidth = 0 }, true},
		{"pen too small", func(c *Config) { c.Bound = 0.2 }, true},
		// physical values are not range-checked
		{"negative gravity", func(c *Config) { c.Gravity = -1 }, false},
		{"super bounce", func(c *Config) { c.BounceFactor = 3 }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
