// Package history keeps a local JSON log of analyses run from this machine.
package history

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/phishguard/phishguard/internal/domain"
)

const historyFile = "analyses.json"

// FileHistory implements domain.AnalysisHistory using JSON file storage.
type FileHistory struct {
	dir string
}

func New(dir string) *FileHistory {
	return &FileHistory{dir: dir}
}

// DefaultDir is the per-user location for the local analysis log.
func DefaultDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, "phishguard", "history")
}

func (h *FileHistory) Save(entry domain.HistoryEntry) error {
	entries, err := h.Load()
	if err != nil {
		return err
	}

	entries = append(entries, entry)

	if err := os.MkdirAll(h.dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(h.dir, historyFile), data, 0644)
}

func (h *FileHistory) Load() ([]domain.HistoryEntry, error) {
	data, err := os.ReadFile(filepath.Join(h.dir, historyFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var entries []domain.HistoryEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
