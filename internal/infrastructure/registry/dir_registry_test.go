package registry

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/HarshaNaik703/Shibu-Robo/internal/domain"
)

func TestSnapshotEnumeratesFilesSorted(t *testing.T) {
	dir := t.TempDir()
	for name, mode := range map[string]os.FileMode{
		"move_forward.sh": 0o755,
		"celebrate.py":    0o644,
	} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("#!/bin/sh\n"), mode); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "subdir"), 0o755); err != nil {
		t.Fatalf("mkdir fixture: %v", err)
	}

	entries, err := NewDirRegistry(dir).Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Snapshot() = %+v, want 2 entries and no directories", entries)
	}
	if entries[0].Name != "celebrate.py" || entries[1].Name != "move_forward.sh" {
		t.Fatalf("Snapshot() order = [%s %s], want lexicographic", entries[0].Name, entries[1].Name)
	}
	if entries[0].IsExecutable {
		t.Fatal("celebrate.py should not be marked executable")
	}
	if !entries[1].IsExecutable {
		t.Fatal("move_forward.sh should be marked executable")
	}
	if entries[1].Path != filepath.Join(dir, "move_forward.sh") {
		t.Fatalf("Path = %s", entries[1].Path)
	}
}

func TestSnapshotMissingDirReturnsRegistryUnavailable(t *testing.T) {
	_, err := NewDirRegistry(filepath.Join(t.TempDir(), "missing")).Snapshot(context.Background())
	if !errors.Is(err, domain.ErrRegistryUnavailable) {
		t.Fatalf("Snapshot() error = %v, want ErrRegistryUnavailable", err)
	}
}

func TestSnapshotReReadsDirectoryEachCall(t *testing.T) {
	dir := t.TempDir()
	reg := NewDirRegistry(dir)

	entries, err := reg.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("Snapshot() = %+v, want empty", entries)
	}

	if err := os.WriteFile(filepath.Join(dir, "new_trick.sh"), []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	entries, err = reg.Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot() error = %v", err)
	}
	if len(entries) != 1 || entries[0].Name != "new_trick.sh" {
		t.Fatalf("Snapshot() = %+v, want fresh new_trick.sh", entries)
	}
}
