package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// ConfigFileReader reads a Configuration from wherever it's stored. The
// shape mirrors the teacher's UVConfigReader/ServerConfigReader function
// types: a single behaviour hidden behind a named func type instead of an
// interface, so tests can substitute a literal closure.
type ConfigFileReader func() (Configuration, error)

// NewFileReader returns a ConfigFileReader that loads Configuration as
// JSON from path.
func NewFileReader(path string) ConfigFileReader {
	return func() (Configuration, error) {
		return ReadConfig(path)
	}
}

// ReadConfig loads a Configuration from a JSON file at path.
func ReadConfig(path string) (Configuration, error) {
	var cfg Configuration
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file %q: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %q: %w", path, err)
	}
	return cfg, nil
}

// WriteConfig writes cfg as indented JSON to path, creating it if absent.
// Used by `lazygate config generate`.
func WriteConfig(path string, cfg Configuration) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file %q: %w", path, err)
	}
	return nil
}

// Exists reports whether a file already sits at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
