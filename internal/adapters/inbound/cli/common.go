package cli

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/phishguard/phishguard/internal/adapters/outbound/api"
	"github.com/phishguard/phishguard/internal/adapters/outbound/cache"
	"github.com/phishguard/phishguard/internal/adapters/outbound/config"
	"github.com/phishguard/phishguard/internal/adapters/outbound/history"
	"github.com/phishguard/phishguard/internal/domain"
)

// envDataDir relocates the cache and local history, mainly for tests and
// sandboxed installs.
const envDataDir = "PHISHGUARD_DATA_DIR"

func loadConfig() (domain.ClientConfig, error) {
	return config.New().Load()
}

func newAPIClient(cfg domain.ClientConfig) *api.Client {
	return api.New(cfg)
}

func newResultCache(cfg domain.ClientConfig) domain.ResultCache {
	if cfg.CacheDisabled {
		return nil
	}
	dir := cache.DefaultDir()
	if v := os.Getenv(envDataDir); v != "" {
		dir = filepath.Join(v, "results")
	}
	return cache.New(dir, cfg.CacheTTL)
}

func newAnalysisHistory() *history.FileHistory {
	dir := history.DefaultDir()
	if v := os.Getenv(envDataDir); v != "" {
		dir = filepath.Join(v, "history")
	}
	return history.New(dir)
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
