package cliconfig

import (
	"os"
	"strings"
)

// ApplyPackEnvConfig applies configuration from environment variables (CRTOOLS_*).
// It respects flags that have been explicitly set (changed map).
// Returns error if any environment variable has an invalid format.
func ApplyPackEnvConfig(cfg *PackConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("log-level", os.Getenv("CRTOOLS_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("charset", os.Getenv("CRTOOLS_FALLBACK_CHARSET"), &cfg.FallbackCharset)
	s.setString("output", os.Getenv("CRTOOLS_OUTPUT_DIR"), &cfg.OutputDir)
	s.setStrings("ext", splitList(os.Getenv("CRTOOLS_EXTENSIONS")), &cfg.Extensions)
	s.setBoolFromString("verify", os.Getenv("CRTOOLS_VERIFY"), &cfg.Verify)

	return s.setSize("size", os.Getenv("CRTOOLS_FRAGMENT_SIZE"), &cfg.FragmentSize)
}

// ApplyCatalogEnvConfig applies configuration from environment variables (CRTOOLS_*).
// It respects flags that have been explicitly set (changed map).
func ApplyCatalogEnvConfig(cfg *CatalogConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setString("log-level", os.Getenv("CRTOOLS_LOG_LEVEL"), &cfg.LogLevel)
	s.setString("charset", os.Getenv("CRTOOLS_FALLBACK_CHARSET"), &cfg.FallbackCharset)
	s.setString("catalog", os.Getenv("CRTOOLS_CATALOG_NAME"), &cfg.CatalogName)
	s.setBoolFromString("yes", os.Getenv("CRTOOLS_ASSUME_YES"), &cfg.AssumeYes)

	return nil
}

// splitList splits a comma separated environment value.
func splitList(v string) []string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
