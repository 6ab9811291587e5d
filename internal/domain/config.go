package domain

import (
	"fmt"
	"time"
)

// DefaultBaseURL is where the detection backend listens in a local setup.
const DefaultBaseURL = "http://localhost:5000/api"

// ClientConfig configures the HTTP client and local stores.
type ClientConfig struct {
	BaseURL       string
	Timeout       time.Duration
	DetectTimeout time.Duration
	HealthTimeout time.Duration
	CacheTTL      time.Duration
	CacheDisabled bool
}

// DefaultClientConfig returns the configuration used when no config file or
// environment override is present.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		BaseURL:       DefaultBaseURL,
		Timeout:       20 * time.Second,
		DetectTimeout: 30 * time.Second,
		HealthTimeout: 5 * time.Second,
		CacheTTL:      15 * time.Minute,
	}
}

func (c ClientConfig) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("api base URL must not be empty")
	}
	if c.Timeout <= 0 || c.DetectTimeout <= 0 || c.HealthTimeout <= 0 {
		return fmt.Errorf("timeouts must be positive")
	}
	return nil
}
