// Package config loads client configuration from environment variables.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

const defaultBaseURL = "https://airbnbnew.cybersoft.edu.vn/api"

// Config contains everything the CLI and the local viewer need to talk
// to the backend and to find their local state.
type Config struct {
	// BaseURL is the backend API root.
	BaseURL string

	// APIKey is the static credential the backend requires on every
	// request. There is no default; it identifies the consuming project.
	APIKey string

	// DataDir holds the credential database and its keyfile.
	DataDir string
}

// Load reads configuration from ROOMSTAY_BASE_URL, ROOMSTAY_API_KEY,
// and ROOMSTAY_DATA_DIR, applying defaults where sensible.
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.BaseURL = os.Getenv("ROOMSTAY_BASE_URL")
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid ROOMSTAY_BASE_URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("ROOMSTAY_BASE_URL %q must be an absolute URL", cfg.BaseURL)
	}

	cfg.APIKey = os.Getenv("ROOMSTAY_API_KEY")
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("ROOMSTAY_API_KEY is required")
	}

	cfg.DataDir = os.Getenv("ROOMSTAY_DATA_DIR")
	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home directory: %w", err)
		}
		cfg.DataDir = filepath.Join(home, ".roomstay")
	}

	return cfg, nil
}
