package cliconfig

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/bft-labs/crtools/internal/bmson"
	"github.com/bft-labs/crtools/internal/domain"
	"github.com/bft-labs/crtools/internal/packer"
)

// DefaultCatalogName is the catalog file kept in the musiclist base directory.
const DefaultCatalogName = "music.json"

// DefaultExtensions are tried, in order, when a sound channel names a file that does not exist.
var DefaultExtensions = []string{"wav", "ogg"}

// PackConfig holds CLI configuration for assetconv.
type PackConfig struct {
	Input     string
	OutputDir string

	FragmentSize    int
	Extensions      []string
	FallbackCharset string
	LogLevel        string

	Verify bool
	Watch  bool
}

// DefaultPackConfig returns a PackConfig with default values.
func DefaultPackConfig() PackConfig {
	return PackConfig{
		FragmentSize:    packer.DefaultFragmentSize,
		Extensions:      append([]string(nil), DefaultExtensions...),
		FallbackCharset: bmson.DefaultFallbackCharset,
		LogLevel:        DefaultLogLevel,
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *PackConfig) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("%w: input file is required", domain.ErrInvalidConfiguration)
	}
	input, err := filepath.Abs(c.Input)
	if err != nil {
		return fmt.Errorf("resolve input: %w", err)
	}
	c.Input = input

	if c.OutputDir == "" {
		c.OutputDir = filepath.Dir(c.Input)
	} else if c.OutputDir, err = filepath.Abs(c.OutputDir); err != nil {
		return fmt.Errorf("resolve output: %w", err)
	}

	if c.FragmentSize <= 0 {
		return fmt.Errorf("%w: fragment size must be > 0", domain.ErrInvalidConfiguration)
	}

	exts := make([]string, 0, len(c.Extensions))
	for _, e := range c.Extensions {
		e = strings.TrimPrefix(strings.TrimSpace(e), ".")
		if e != "" {
			exts = append(exts, e)
		}
	}
	c.Extensions = exts

	if err := bmson.ValidateCharset(c.FallbackCharset); err != nil {
		return err
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// CatalogConfig holds CLI configuration for musiclist.
type CatalogConfig struct {
	BaseDir         string
	CatalogName     string
	FallbackCharset string
	LogLevel        string
	AssumeYes       bool
}

// DefaultCatalogConfig returns a CatalogConfig with default values.
func DefaultCatalogConfig() CatalogConfig {
	return CatalogConfig{
		CatalogName:     DefaultCatalogName,
		FallbackCharset: bmson.DefaultFallbackCharset,
		LogLevel:        DefaultLogLevel,
	}
}

// Validate checks the configuration for errors and sets derived defaults.
func (c *CatalogConfig) Validate() error {
	if c.BaseDir == "" {
		return fmt.Errorf("%w: base directory is required", domain.ErrInvalidConfiguration)
	}
	dir, err := filepath.Abs(c.BaseDir)
	if err != nil {
		return fmt.Errorf("resolve base directory: %w", err)
	}
	c.BaseDir = dir

	if c.CatalogName == "" {
		c.CatalogName = DefaultCatalogName
	}
	if filepath.Base(c.CatalogName) != c.CatalogName {
		return fmt.Errorf("%w: catalog name %q must not contain a directory", domain.ErrInvalidConfiguration, c.CatalogName)
	}

	if err := bmson.ValidateCharset(c.FallbackCharset); err != nil {
		return err
	}
	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// ParseFragmentSize parses a fragment size given as a plain byte count
// ("2097152") or with a unit ("2MiB", "512 KB").
func ParseFragmentSize(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		b, herr := humanize.ParseBytes(s)
		if herr != nil {
			return 0, fmt.Errorf("%w: fragment size %q is not a number", domain.ErrInvalidConfiguration, s)
		}
		if b > uint64(maxInt) {
			return 0, fmt.Errorf("%w: fragment size %q is too large", domain.ErrInvalidConfiguration, s)
		}
		n = int(b)
	}
	if n <= 0 {
		return 0, fmt.Errorf("%w: fragment size must be > 0, got %s", domain.ErrInvalidConfiguration, s)
	}
	return n, nil
}

const maxInt = int(^uint(0) >> 1)

// configSetter helps apply configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setStrings sets a list if not empty and flag not changed.
func (s *configSetter) setStrings(flag string, value []string, dst *[]string) {
	if len(value) == 0 || s.changed[flag] {
		return
	}
	*dst = append([]string(nil), value...)
}

// setSize parses a fragment size if not empty and flag not changed.
// Unlike the other setters an unusable value is an error, not a no-op.
func (s *configSetter) setSize(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	n, err := ParseFragmentSize(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = n
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setBoolFromString parses a string to bool and sets the destination.
// Accepts "true", "1" as true, anything else as false.
// Used for environment variables that come as strings.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
