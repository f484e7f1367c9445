package cliconfig

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig is the TOML configuration shared by assetconv and musiclist.
type FileConfig struct {
	LogLevel        string        `toml:"log_level"`
	FallbackCharset string        `toml:"fallback_charset"`
	AssetConv       AssetConvFile `toml:"assetconv"`
	MusicList       MusicListFile `toml:"musiclist"`
}

// AssetConvFile is the [assetconv] table.
type AssetConvFile struct {
	OutputDir string `toml:"output_dir"`
	// FragmentSize accepts either an integer or a string such as "2MiB".
	FragmentSize interface{} `toml:"fragment_size"`
	Extensions   []string    `toml:"extensions"`
	Verify       *bool       `toml:"verify"`
}

// MusicListFile is the [musiclist] table.
type MusicListFile struct {
	CatalogName string `toml:"catalog_name"`
	AssumeYes   *bool  `toml:"assume_yes"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns the default configuration file path.
// Returns ~/.crtools/config.toml if user home directory is accessible.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".crtools", "config.toml")
	}
	return ""
}

// ApplyPackFileConfig applies configuration from a file to the PackConfig struct.
// It respects flags that have been explicitly set (changed map).
func ApplyPackFileConfig(cfg *PackConfig, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("charset", fc.FallbackCharset, &cfg.FallbackCharset)
	s.setString("output", fc.AssetConv.OutputDir, &cfg.OutputDir)
	s.setStrings("ext", fc.AssetConv.Extensions, &cfg.Extensions)
	s.setBool("verify", fc.AssetConv.Verify, &cfg.Verify)

	size, err := sizeString(fc.AssetConv.FragmentSize)
	if err != nil {
		return err
	}
	return s.setSize("size", size, &cfg.FragmentSize)
}

// ApplyCatalogFileConfig applies configuration from a file to the CatalogConfig struct.
// It respects flags that have been explicitly set (changed map).
func ApplyCatalogFileConfig(cfg *CatalogConfig, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("charset", fc.FallbackCharset, &cfg.FallbackCharset)
	s.setString("catalog", fc.MusicList.CatalogName, &cfg.CatalogName)
	s.setBool("yes", fc.MusicList.AssumeYes, &cfg.AssumeYes)

	return nil
}

// sizeString normalizes the TOML value of fragment_size.
func sizeString(v interface{}) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case int64:
		return fmt.Sprintf("%d", x), nil
	default:
		return "", fmt.Errorf("fragment_size: unsupported value %v (%T)", v, v)
	}
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
