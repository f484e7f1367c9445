package cliconfig

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestApplyPackFileConfig(t *testing.T) {
	trueVal := true

	tests := []struct {
		name       string
		fileConfig FileConfig
		changed    map[string]bool
		initial    PackConfig
		expected   PackConfig
		wantErr    bool
	}{
		{
			name: "applies all valid config values",
			fileConfig: FileConfig{
				LogLevel:        "debug",
				FallbackCharset: "euc-jp",
				AssetConv: AssetConvFile{
					OutputDir:    "/out",
					FragmentSize: int64(4096),
					Extensions:   []string{"flac"},
					Verify:       &trueVal,
				},
			},
			changed: map[string]bool{},
			initial: PackConfig{},
			expected: PackConfig{
				LogLevel:        "debug",
				FallbackCharset: "euc-jp",
				OutputDir:       "/out",
				FragmentSize:    4096,
				Extensions:      []string{"flac"},
				Verify:          true,
			},
		},
		{
			name: "fragment size with unit",
			fileConfig: FileConfig{
				AssetConv: AssetConvFile{FragmentSize: "1MiB"},
			},
			changed:  map[string]bool{},
			initial:  PackConfig{},
			expected: PackConfig{FragmentSize: 1 << 20},
		},
		{
			name: "respects changed flags",
			fileConfig: FileConfig{
				AssetConv: AssetConvFile{OutputDir: "/file/out", FragmentSize: int64(10)},
			},
			changed:  map[string]bool{"output": true, "size": true},
			initial:  PackConfig{OutputDir: "/flag/out", FragmentSize: 20},
			expected: PackConfig{OutputDir: "/flag/out", FragmentSize: 20},
		},
		{
			name: "rejects non-positive fragment size",
			fileConfig: FileConfig{
				AssetConv: AssetConvFile{FragmentSize: int64(0)},
			},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name: "rejects unsupported fragment size type",
			fileConfig: FileConfig{
				AssetConv: AssetConvFile{FragmentSize: 1.5},
			},
			changed: map[string]bool{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tt.initial
			err := ApplyPackFileConfig(&cfg, tt.fileConfig, tt.changed)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ApplyPackFileConfig() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !reflect.DeepEqual(cfg, tt.expected) {
				t.Errorf("config = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestApplyCatalogFileConfig(t *testing.T) {
	trueVal := true
	fc := FileConfig{
		LogLevel:  "warn",
		MusicList: MusicListFile{CatalogName: "songs.json", AssumeYes: &trueVal},
	}

	cfg := DefaultCatalogConfig()
	if err := ApplyCatalogFileConfig(&cfg, fc, map[string]bool{"catalog": true}); err != nil {
		t.Fatalf("ApplyCatalogFileConfig() error = %v", err)
	}
	if cfg.CatalogName != DefaultCatalogName {
		t.Errorf("CatalogName = %v, want %v (flag set)", cfg.CatalogName, DefaultCatalogName)
	}
	if !cfg.AssumeYes {
		t.Error("AssumeYes = false, want true")
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %v, want warn", cfg.LogLevel)
	}
}

func TestLoadFileConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "test-config.toml")

	tomlContent := `
log_level = "debug"
fallback_charset = "shift_jis"

[assetconv]
output_dir = "/tmp/out"
fragment_size = 1048576
extensions = ["wav", "ogg", "flac"]
verify = true

[musiclist]
catalog_name = "music.json"
assume_yes = false
`

	if err := os.WriteFile(configPath, []byte(tomlContent), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	fc, err := LoadFileConfig(configPath)
	if err != nil {
		t.Fatalf("LoadFileConfig() error = %v", err)
	}

	if fc.LogLevel != "debug" {
		t.Errorf("LogLevel = %v, want debug", fc.LogLevel)
	}
	if fc.AssetConv.OutputDir != "/tmp/out" {
		t.Errorf("OutputDir = %v, want /tmp/out", fc.AssetConv.OutputDir)
	}
	if fc.AssetConv.FragmentSize != int64(1048576) {
		t.Errorf("FragmentSize = %v (%T), want 1048576", fc.AssetConv.FragmentSize, fc.AssetConv.FragmentSize)
	}
	if len(fc.AssetConv.Extensions) != 3 {
		t.Errorf("Extensions = %v, want 3 entries", fc.AssetConv.Extensions)
	}
	if fc.AssetConv.Verify == nil || *fc.AssetConv.Verify != true {
		t.Errorf("Verify = %v, want true", fc.AssetConv.Verify)
	}
	if fc.MusicList.AssumeYes == nil || *fc.MusicList.AssumeYes {
		t.Errorf("AssumeYes = %v, want false", fc.MusicList.AssumeYes)
	}
}

func TestLoadFileConfig_InvalidFile(t *testing.T) {
	_, err := LoadFileConfig("/nonexistent/path/config.toml")
	if err == nil {
		t.Error("LoadFileConfig() expected error for nonexistent file")
	}
}

func TestLoadFileConfig_InvalidTOML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.toml")

	invalidContent := `
log_level = "debug"
this is not valid toml
`

	if err := os.WriteFile(configPath, []byte(invalidContent), 0644); err != nil {
		t.Fatalf("Failed to create test config file: %v", err)
	}

	_, err := LoadFileConfig(configPath)
	if err == nil {
		t.Error("LoadFileConfig() expected error for invalid TOML")
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path := DefaultConfigPath()

	if path != "" && !strings.Contains(path, ".crtools") {
		t.Errorf("DefaultConfigPath() = %v, should contain .crtools", path)
	}
}

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()
	existingFile := filepath.Join(tmpDir, "exists.txt")

	if err := os.WriteFile(existingFile, []byte("test"), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}

	if !FileExists(existingFile) {
		t.Error("FileExists() = false, want true for existing file")
	}

	if FileExists(filepath.Join(tmpDir, "nonexistent.txt")) {
		t.Error("FileExists() = true, want false for nonexistent file")
	}
}
