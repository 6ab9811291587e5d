// Package config loads client configuration from .phishguard.yaml with
// environment overrides on top.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/phishguard/phishguard/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".phishguard.yaml"

// EnvBaseURL overrides the configured API base URL when set.
const EnvBaseURL = "PHISHGUARD_API_URL"

type fileConfig struct {
	API struct {
		BaseURL              string `yaml:"base_url"`
		TimeoutSeconds       int    `yaml:"timeout_seconds"`
		DetectTimeoutSeconds int    `yaml:"detect_timeout_seconds"`
		HealthTimeoutSeconds int    `yaml:"health_timeout_seconds"`
	} `yaml:"api"`
	Cache struct {
		TTLMinutes int  `yaml:"ttl_minutes"`
		Disabled   bool `yaml:"disabled"`
	} `yaml:"cache"`
}

// Loader implements domain.ConfigLoader. Precedence, lowest to highest:
// built-in defaults, .phishguard.yaml, .env (via godotenv), process env.
type Loader struct {
	dir string
}

// New creates a Loader reading from the current working directory.
func New() *Loader { return &Loader{dir: "."} }

// NewAt creates a Loader reading from dir.
func NewAt(dir string) *Loader { return &Loader{dir: dir} }

// Load reads the configuration. A missing config file or .env is the normal
// case and yields defaults.
func (l *Loader) Load() (domain.ClientConfig, error) {
	_ = godotenv.Load(filepath.Join(l.dir, ".env"))

	cfg := domain.DefaultClientConfig()

	data, err := os.ReadFile(filepath.Join(l.dir, fileName))
	switch {
	case errors.Is(err, os.ErrNotExist):
		// keep defaults
	case err != nil:
		return domain.ClientConfig{}, err
	default:
		var fc fileConfig
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return domain.ClientConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
		}
		applyFile(&cfg, fc)
	}

	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}

	if err := cfg.Validate(); err != nil {
		return domain.ClientConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
	}
	return cfg, nil
}

// applyFile overlays explicit file values on the defaults; zero values in
// the file keep the default.
func applyFile(cfg *domain.ClientConfig, fc fileConfig) {
	if fc.API.BaseURL != "" {
		cfg.BaseURL = fc.API.BaseURL
	}
	if fc.API.TimeoutSeconds > 0 {
		cfg.Timeout = time.Duration(fc.API.TimeoutSeconds) * time.Second
	}
	if fc.API.DetectTimeoutSeconds > 0 {
		cfg.DetectTimeout = time.Duration(fc.API.DetectTimeoutSeconds) * time.Second
	}
	if fc.API.HealthTimeoutSeconds > 0 {
		cfg.HealthTimeout = time.Duration(fc.API.HealthTimeoutSeconds) * time.Second
	}
	if fc.Cache.TTLMinutes > 0 {
		cfg.CacheTTL = time.Duration(fc.Cache.TTLMinutes) * time.Minute
	}
	if fc.Cache.Disabled {
		cfg.CacheDisabled = true
	}
}
