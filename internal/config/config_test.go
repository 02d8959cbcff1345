package config

import (
	"errors"
	"testing"
	"time"
)

// TestNewConfig verifies that NewConfig returns a Config with all expected
// default values. This test ensures that defaults are documented through
// tests and that changes to defaults are intentional.
func TestNewConfig(t *testing.T) {
	t.Parallel()

	cfg := NewConfig()

	t.Run("default Indent is 2", func(t *testing.T) {
		t.Parallel()
		if cfg.Indent != 2 {
			t.Errorf("expected Indent to be 2, got %d", cfg.Indent)
		}
	})

	t.Run("default Timeout is 30 seconds", func(t *testing.T) {
		t.Parallel()
		if cfg.Timeout != 30*time.Second {
			t.Errorf("expected Timeout to be 30s, got %v", cfg.Timeout)
		}
	})

	t.Run("default allow-list is http and https only", func(t *testing.T) {
		t.Parallel()
		if len(cfg.Allow) != 2 || cfg.Allow[0] != "http" || cfg.Allow[1] != "https" {
			t.Errorf("expected allow-list [http https], got %v", cfg.Allow)
		}
	})

	t.Run("default MaxBodySize is 10MB", func(t *testing.T) {
		t.Parallel()
		if cfg.MaxBodySize != 10*1024*1024 {
			t.Errorf("expected MaxBodySize to be 10MB, got %d", cfg.MaxBodySize)
		}
	})

	t.Run("cache is disabled by default", func(t *testing.T) {
		t.Parallel()
		if cfg.CacheEnabled {
			t.Error("expected CacheEnabled to be false by default")
		}
	})

	t.Run("default CacheMaxAge is 24 hours", func(t *testing.T) {
		t.Parallel()
		if cfg.CacheMaxAge != 24*time.Hour {
			t.Errorf("expected CacheMaxAge to be 24h, got %v", cfg.CacheMaxAge)
		}
	})
}

// TestSchemeAllowed tests the allow-list predicate.
func TestSchemeAllowed(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		allow    []string
		scheme   string
		expected bool
	}{
		{"http allowed by default", DefaultAllow(), "http", true},
		{"https allowed by default", DefaultAllow(), "https", true},
		{"file rejected by default", DefaultAllow(), "file", false},
		{"file allowed when opted in", []string{"http", "https", "file"}, "file", true},
		{"unknown scheme rejected", DefaultAllow(), "ftp", false},
		{"empty scheme rejected", DefaultAllow(), "", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := NewConfig()
			cfg.Allow = tc.allow
			if got := cfg.SchemeAllowed(tc.scheme); got != tc.expected {
				t.Errorf("SchemeAllowed(%q) = %v, expected %v", tc.scheme, got, tc.expected)
			}
		})
	}
}

// TestConfigValidate tests configuration validation.
func TestConfigValidate(t *testing.T) {
	t.Parallel()

	t.Run("default config is valid", func(t *testing.T) {
		t.Parallel()
		if err := NewConfig().Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("negative indent is invalid", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.Indent = -1
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidIndent) {
			t.Errorf("expected ErrInvalidIndent, got %v", err)
		}
	})

	t.Run("zero timeout is invalid", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.Timeout = 0
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidTimeout) {
			t.Errorf("expected ErrInvalidTimeout, got %v", err)
		}
	})

	t.Run("negative max body size is invalid", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.MaxBodySize = -1
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidMaxBodySize) {
			t.Errorf("expected ErrInvalidMaxBodySize, got %v", err)
		}
	})

	t.Run("unknown allow scheme is invalid", func(t *testing.T) {
		t.Parallel()
		cfg := NewConfig()
		cfg.Allow = []string{"http", "gopher"}
		if err := cfg.Validate(); !errors.Is(err, ErrUnknownAllowScheme) {
			t.Errorf("expected ErrUnknownAllowScheme, got %v", err)
		}
	})
}
