package engineconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Missing(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "engine.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if p != Default() {
		t.Errorf("Load = %+v, want defaults", p)
	}
	if !p.VSync() {
		t.Error("vsync off by default")
	}
}

func TestLoad_KeepsDefaultsForMissingKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.json")
	if err := os.WriteFile(path, []byte(`{"debug_mode": true}`), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !p.DebugMode || p.VSync() {
		t.Errorf("debug_mode not applied: %+v", p)
	}
	if p.AutoRotateSpeed != 100 || p.CameraHeight != 8 {
		t.Errorf("defaults lost: %+v", p)
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "engine.json")
	if err := os.WriteFile(path, []byte(`{`), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := Load(path)
	if err == nil {
		t.Error("Load on invalid JSON: want error")
	}
	if p != Default() {
		t.Errorf("Load = %+v, want defaults", p)
	}
}

func TestSave_LoadsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "engine.json")
	want := Default()
	want.ShowFPS = true
	want.TargetFPS = 144
	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Errorf("Load = %+v, want %+v", got, want)
	}
}

func TestLoad_UnreadableIsError(t *testing.T) {
	// a directory exists but cannot be read as a file
	path := t.TempDir()
	p, err := Load(path)
	if err == nil {
		t.Error("Load on a directory: want error")
	}
	if p != Default() {
		t.Errorf("Load = %+v, want defaults", p)
	}
}
