package cliconfig

import (
	"reflect"
	"testing"
)

func TestApplyPackEnvConfig(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		changed  map[string]bool
		initial  PackConfig
		expected PackConfig
		wantErr  bool
	}{
		{
			name: "applies all valid env vars",
			envVars: map[string]string{
				"CRTOOLS_LOG_LEVEL":        "debug",
				"CRTOOLS_FALLBACK_CHARSET": "euc-jp",
				"CRTOOLS_OUTPUT_DIR":       "/env/out",
				"CRTOOLS_EXTENSIONS":       "wav, flac",
				"CRTOOLS_FRAGMENT_SIZE":    "1024",
				"CRTOOLS_VERIFY":           "1",
			},
			changed: map[string]bool{},
			initial: PackConfig{},
			expected: PackConfig{
				LogLevel:        "debug",
				FallbackCharset: "euc-jp",
				OutputDir:       "/env/out",
				Extensions:      []string{"wav", "flac"},
				FragmentSize:    1024,
				Verify:          true,
			},
		},
		{
			name: "respects changed flags",
			envVars: map[string]string{
				"CRTOOLS_OUTPUT_DIR":    "/env/out",
				"CRTOOLS_FRAGMENT_SIZE": "1024",
			},
			changed:  map[string]bool{"output": true},
			initial:  PackConfig{OutputDir: "/flag/out"},
			expected: PackConfig{OutputDir: "/flag/out", FragmentSize: 1024},
		},
		{
			name: "returns error for non-numeric fragment size",
			envVars: map[string]string{
				"CRTOOLS_FRAGMENT_SIZE": "big",
			},
			changed: map[string]bool{},
			wantErr: true,
		},
		{
			name: "handles bool 'false' as false",
			envVars: map[string]string{
				"CRTOOLS_VERIFY": "false",
			},
			changed:  map[string]bool{},
			initial:  PackConfig{Verify: true},
			expected: PackConfig{Verify: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.envVars {
				t.Setenv(k, v)
			}

			cfg := tt.initial
			err := ApplyPackEnvConfig(&cfg, tt.changed)

			if tt.wantErr && err == nil {
				t.Error("ApplyPackEnvConfig() expected error but got nil")
				return
			}
			if !tt.wantErr && err != nil {
				t.Errorf("ApplyPackEnvConfig() unexpected error: %v", err)
				return
			}
			if !tt.wantErr && !reflect.DeepEqual(cfg, tt.expected) {
				t.Errorf("config = %+v, want %+v", cfg, tt.expected)
			}
		})
	}
}

func TestApplyCatalogEnvConfig(t *testing.T) {
	t.Setenv("CRTOOLS_CATALOG_NAME", "songs.json")
	t.Setenv("CRTOOLS_ASSUME_YES", "true")
	t.Setenv("CRTOOLS_LOG_LEVEL", "error")

	cfg := DefaultCatalogConfig()
	if err := ApplyCatalogEnvConfig(&cfg, map[string]bool{"log-level": true}); err != nil {
		t.Fatalf("ApplyCatalogEnvConfig() error = %v", err)
	}
	if cfg.CatalogName != "songs.json" {
		t.Errorf("CatalogName = %v, want songs.json", cfg.CatalogName)
	}
	if !cfg.AssumeYes {
		t.Error("AssumeYes = false, want true")
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("LogLevel = %v, want %v (flag set)", cfg.LogLevel, DefaultLogLevel)
	}
}

func TestSplitList(t *testing.T) {
	if got := splitList(" , "); got != nil {
		t.Errorf("splitList(blank) = %v, want nil", got)
	}
	if got := splitList("a,,b "); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("splitList = %v", got)
	}
}
