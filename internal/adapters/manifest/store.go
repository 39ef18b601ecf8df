// Package manifest persists a small JSON manifest next to installed
// binaries so re-runs can report what they replaced.
package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/markitdown-mcp/installer/internal/core/domain"
	"go.trai.ch/zerr"
)

// fileName is the manifest file kept inside the install directory.
const fileName = ".mcpinstall.json"

// Store reads and writes the install manifest. The manifest location is
// derived from each record's install directory, so one Store serves any
// number of prefixes. It implements ports.ManifestStore.
type Store struct {
	mu sync.Mutex
}

// NewStore creates a new Store.
func NewStore() *Store {
	return &Store{}
}

// Record writes rec into the manifest of its install directory. The
// checksum is computed from the installed binary when absent.
func (s *Store) Record(rec domain.InstallRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if rec.Checksum == "" {
		sum, err := checksumFile(rec.Path)
		if err != nil {
			return zerr.Wrap(err, "failed to checksum installed binary")
		}
		rec.Checksum = sum
	}

	dir := filepath.Dir(rec.Path)
	entries, err := readManifest(dir)
	if err != nil {
		return err
	}
	entries[rec.Binary] = rec

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to encode install manifest")
	}
	data = append(data, '\n')

	path := filepath.Join(dir, fileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return zerr.Wrap(zerr.With(err, "path", path), "failed to write install manifest")
	}
	return nil
}

// Get retrieves the recorded entry for binary in dir, or nil when the
// manifest has no such entry.
func (s *Store) Get(dir, binary string) (*domain.InstallRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := readManifest(dir)
	if err != nil {
		return nil, err
	}
	rec, ok := entries[binary]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func readManifest(dir string) (map[string]domain.InstallRecord, error) {
	path := filepath.Join(dir, fileName)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]domain.InstallRecord{}, nil
	}
	if err != nil {
		return nil, zerr.Wrap(zerr.With(err, "path", path), "failed to read install manifest")
	}

	entries := map[string]domain.InstallRecord{}
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, zerr.Wrap(zerr.With(err, "path", path), "failed to decode install manifest")
	}
	return entries, nil
}

func checksumFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", h.Sum64()), nil
}
