// Package registry enumerates the action artifact directory.
package registry

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/HarshaNaik703/Shibu-Robo/internal/domain"
	"github.com/HarshaNaik703/Shibu-Robo/internal/ports"
)

// DirRegistry snapshots a plain directory, non-recursively. Every call
// re-reads the directory so new artifacts are picked up without any
// invalidation mechanism.
type DirRegistry struct {
	dir string
}

// NewDirRegistry builds a registry over the given directory.
func NewDirRegistry(dir string) *DirRegistry {
	return &DirRegistry{dir: dir}
}

// Dir returns the configured directory.
func (r *DirRegistry) Dir() string {
	return r.dir
}

// Snapshot implements ports.Registry. Entries come back sorted by name
// (os.ReadDir order), which keeps tie-breaking deterministic across
// platforms whose raw enumeration order is not stable.
func (r *DirRegistry) Snapshot(context.Context) ([]domain.RegistryEntry, error) {
	dirEntries, err := os.ReadDir(r.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", domain.ErrRegistryUnavailable, r.dir)
		}
		return nil, err
	}

	entries := make([]domain.RegistryEntry, 0, len(dirEntries))
	for _, dirEntry := range dirEntries {
		if dirEntry.IsDir() {
			continue
		}
		info, err := dirEntry.Info()
		if err != nil {
			continue
		}
		entries = append(entries, domain.RegistryEntry{
			Name:         dirEntry.Name(),
			Path:         filepath.Join(r.dir, dirEntry.Name()),
			IsExecutable: info.Mode()&0o111 != 0,
		})
	}
	return entries, nil
}

var _ ports.Registry = (*DirRegistry)(nil)
