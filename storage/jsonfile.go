// Package storage persists journal entries and the extracted user
// memory: entries in SQLite, memory as a small JSON document.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/thelanternworks/inklight/analysis"
)

// MemoryStore persists the rolling UserMemory document at a fixed path.
// A missing or corrupt file reads as an empty memory so the caller can
// always rebuild from entries.
type MemoryStore struct {
	path string
}

func NewMemoryStore(path string) *MemoryStore {
	return &MemoryStore{path: path}
}

func (s *MemoryStore) Load() (analysis.UserMemory, error) {
	var mem analysis.UserMemory
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return analysis.UserMemory{}, nil
		}
		return analysis.UserMemory{}, fmt.Errorf("read memory file: %w", err)
	}
	if err := json.Unmarshal(b, &mem); err != nil {
		// Corrupt on disk: treat as empty rather than blocking the app.
		return analysis.UserMemory{}, nil
	}
	return mem, nil
}

func (s *MemoryStore) Save(mem analysis.UserMemory) error {
	b, err := json.MarshalIndent(mem, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal memory: %w", err)
	}
	if err := writeFileAtomicSameDir(s.path, b, 0o644); err != nil {
		return fmt.Errorf("write memory: %w", err)
	}
	return nil
}

// writeFileAtomicSameDir writes through a temp file in the destination
// directory and renames it into place, so readers never observe a
// partial document.
func writeFileAtomicSameDir(path string, data []byte, mode fs.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".tmp_memory_*.json")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if err := tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return err
	}
	if _, err := tmp.Write([]byte("\n")); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
