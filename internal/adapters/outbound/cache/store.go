// Package cache is a file-based TTL cache of detection responses, one JSON
// file per canonical URL.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/phishguard/phishguard/internal/domain"
)

type entry struct {
	SavedAt  time.Time                 `json:"saved_at"`
	URL      string                    `json:"url"`
	Response *domain.DetectionResponse `json:"response"`
}

// Store implements domain.ResultCache.
type Store struct {
	dir string
	ttl time.Duration
}

func New(dir string, ttl time.Duration) *Store {
	return &Store{dir: dir, ttl: ttl}
}

// DefaultDir is the per-user location for cached detection results.
func DefaultDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, "phishguard", "results")
}

// Load reads a cached response. A miss, a stale entry or a corrupt file all
// return (nil, nil); stale entries are removed on the way out.
func (s *Store) Load(url string) (*domain.DetectionResponse, error) {
	data, err := os.ReadFile(s.path(url))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, nil
	}
	if time.Since(e.SavedAt) > s.ttl {
		_ = os.Remove(s.path(url))
		return nil, nil
	}
	return e.Response, nil
}

// Save writes a response to the cache, creating directories as needed.
func (s *Store) Save(url string, resp *domain.DetectionResponse) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entry{
		SavedAt:  time.Now(),
		URL:      url,
		Response: resp,
	}, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(s.path(url), data, 0644)
}

// Invalidate removes the cache entry for url.
func (s *Store) Invalidate(url string) error {
	if err := os.Remove(s.path(url)); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *Store) path(url string) string {
	sum := sha256.Sum256([]byte(url))
	return filepath.Join(s.dir, hex.EncodeToString(sum[:])+".json")
}
