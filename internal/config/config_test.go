package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, ConfigFileName)

	configContent := `
source: "branding/logo.png"
res_dir: "app/src/main/res"
icon_percent: 80
`
	if err := os.WriteFile(configFile, []byte(configContent), 0644); err != nil {
		t.Fatalf("Failed to create test config: %v", err)
	}

	cfg, err := Load(configFile)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Source != "branding/logo.png" {
		t.Errorf("Expected source 'branding/logo.png', got '%s'", cfg.Source)
	}
	if cfg.ResDir != "app/src/main/res" {
		t.Errorf("Expected res_dir 'app/src/main/res', got '%s'", cfg.ResDir)
	}
	if cfg.IconPercent != 80 {
		t.Errorf("Expected icon_percent 80, got %d", cfg.IconPercent)
	}
}

func TestLoadKeepsDefaultsForMissingKeys(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), ConfigFileName)
	if err := os.WriteFile(configFile, []byte("icon_percent: 90\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(configFile)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Source != SourceIcon || cfg.ResDir != AndroidRes {
		t.Errorf("defaults lost: %+v", cfg)
	}
	if cfg.IconPercent != 90 {
		t.Errorf("Expected icon_percent 90, got %d", cfg.IconPercent)
	}
}

func TestLoadOptionalMissingFile(t *testing.T) {
	cfg, err := LoadOptional(filepath.Join(t.TempDir(), ConfigFileName))
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if *cfg != Default() {
		t.Errorf("LoadOptional = %+v, want defaults", *cfg)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name, content, want string
	}{
		{"percent too high", "icon_percent: 120\n", "icon_percent"},
		{"percent zero", "icon_percent: 0\n", "icon_percent"},
		{"empty source", "source: \"\"\n", "source is required"},
		{"empty res dir", "res_dir: \"\"\n", "res_dir is required"},
		{"bad yaml", "icon_percent: [\n", "failed to parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), ConfigFileName)
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := LoadOptional(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q should contain %q", err, tt.want)
			}
		})
	}
}
