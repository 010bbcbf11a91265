package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Algorithm != "bubble" {
		t.Errorf("expected algorithm bubble, got %s", cfg.Algorithm)
	}
	if cfg.Pattern != "random" {
		t.Errorf("expected pattern random, got %s", cfg.Pattern)
	}
	if cfg.Audio.MinFreq >= cfg.Audio.MaxFreq {
		t.Error("audio frequency range is empty")
	}
}

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sortviz.yaml")
	cfg := DefaultConfig()
	cfg.Algorithm = "insertion"
	cfg.Seed = 42
	cfg.Audio.Enabled = true

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Algorithm != "insertion" || loaded.Seed != 42 || !loaded.Audio.Enabled {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestLoadKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("algorithm: selection\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Algorithm != "selection" {
		t.Errorf("expected selection, got %s", cfg.Algorithm)
	}
	if cfg.Theme != DefaultTheme {
		t.Errorf("expected default theme, got %s", cfg.Theme)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("worst-case")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Pattern != "reversed" {
		t.Errorf("expected pattern reversed, got %s", cfg.Pattern)
	}
	if cfg.DataDir != DefaultDataDir {
		t.Error("preset should keep default data dir")
	}

	cfg.Pattern = "sorted"
	if Presets["worst-case"].Pattern != "reversed" {
		t.Error("GetPreset returned shared preset storage")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	if len(ListPresets()) != len(Presets) {
		t.Error("ListPresets missed entries")
	}
}
