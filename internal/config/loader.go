package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".jsonld-cli"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File is the on-disk YAML configuration. All fields are optional; unset
// fields leave the corresponding Config value untouched, which is why the
// scalars are pointers.
//
// Example:
//
//	indent: 4
//	allow:
//	  - http
//	  - https
//	  - file
//	cache: true
//	cache-max-age: 1h
//	user-agent: "my-pipeline/2.1"
//	timeout: 10s
type File struct {
	// Indent sets the default JSON output indentation width.
	Indent *int `yaml:"indent"`

	// Allow replaces the secondary-resource scheme allow-list.
	Allow []string `yaml:"allow"`

	// Cache enables the remote document cache.
	Cache *bool `yaml:"cache"`

	// CacheMaxAge sets the cache freshness bound (Go duration syntax,
	// e.g. "1h30m"). Kept as a string because yaml.v3 has no native
	// duration decoding.
	CacheMaxAge *string `yaml:"cache-max-age"`

	// UserAgent overrides the User-Agent header on fetches.
	UserAgent *string `yaml:"user-agent"`

	// Timeout sets the per-fetch timeout (Go duration syntax).
	Timeout *string `yaml:"timeout"`
}

// Apply copies the file's set fields onto cfg. CLI flags are applied after
// this, so the precedence is defaults < file < flags.
func (f *File) Apply(cfg *Config) error {
	if f.Indent != nil {
		cfg.Indent = *f.Indent
	}
	if f.Allow != nil {
		cfg.Allow = f.Allow
	}
	if f.Cache != nil {
		cfg.CacheEnabled = *f.Cache
	}
	if f.CacheMaxAge != nil {
		d, err := time.ParseDuration(*f.CacheMaxAge)
		if err != nil {
			return fmt.Errorf("invalid cache-max-age in config file: %w", err)
		}
		cfg.CacheMaxAge = d
	}
	if f.UserAgent != nil {
		cfg.UserAgent = *f.UserAgent
	}
	if f.Timeout != nil {
		d, err := time.ParseDuration(*f.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout in config file: %w", err)
		}
		cfg.Timeout = d
	}
	return nil
}

// LoadConfigFile loads settings from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound. Callers should
// handle this error based on whether the config file path was explicitly
// specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	return &cf, nil
}

// FindConfigFile searches for the configuration file in the following order:
// 1. If configPath is specified, use it directly
// 2. Look for .jsonld-cli in the current directory
// 3. Look for .jsonld-cli in the user's home directory
//
// Returns the path to the configuration file if found, or empty string if
// not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	home, err := os.UserHomeDir()
	if err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}
