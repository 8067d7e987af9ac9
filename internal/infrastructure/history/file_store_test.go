package history

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/HarshaNaik703/Shibu-Robo/internal/domain"
)

func tempFileStore(t *testing.T) *FileStore {
	t.Helper()
	return &FileStore{path: filepath.Join(t.TempDir(), "history.jsonl")}
}

func sampleRecord(runID, utterance string) domain.ResolutionRecord {
	return domain.ResolutionRecord{
		RunID:     runID,
		Timestamp: time.Date(2025, 11, 2, 10, 0, 0, 0, time.UTC),
		Utterance: utterance,
		Outcome:   "executed",
		Tier:      "exact",
		Entry:     "move_forward.sh",
		Executed:  true,
		Success:   true,
	}
}

func TestFileStoreSaveAndRecordsNewestFirst(t *testing.T) {
	store := tempFileStore(t)
	for _, rec := range []domain.ResolutionRecord{
		sampleRecord("run-1", "move forward"),
		sampleRecord("run-2", "celebrate"),
		sampleRecord("run-3", "take a photo"),
	} {
		if err := store.Save(rec); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}

	records, err := store.Records(0, "")
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Records() = %+v", records)
	}
	if records[0].RunID != "run-3" || records[2].RunID != "run-1" {
		t.Fatalf("order = [%s %s %s], want newest first", records[0].RunID, records[1].RunID, records[2].RunID)
	}
}

func TestFileStoreRecordsLimitAndSearch(t *testing.T) {
	store := tempFileStore(t)
	for _, rec := range []domain.ResolutionRecord{
		sampleRecord("run-1", "move forward"),
		sampleRecord("run-2", "celebrate"),
		sampleRecord("run-3", "move back"),
	} {
		if err := store.Save(rec); err != nil {
			t.Fatalf("Save() error = %v", err)
		}
	}

	records, err := store.Records(1, "")
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(records) != 1 || records[0].RunID != "run-3" {
		t.Fatalf("Records(1) = %+v", records)
	}

	records, err = store.Records(0, "move")
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Records(move) = %+v", records)
	}
}

func TestFileStoreRecordsMissingFileIsEmpty(t *testing.T) {
	records, err := tempFileStore(t).Records(0, "")
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("Records() = %+v, want empty", records)
	}
}

func TestFileStoreClear(t *testing.T) {
	store := tempFileStore(t)
	if err := store.Save(sampleRecord("run-1", "move forward")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	records, err := store.Records(0, "")
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("Records() after Clear = %+v", records)
	}
	// Clearing an already empty store is fine.
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() on empty store error = %v", err)
	}
}

func TestFileStoreExportJSON(t *testing.T) {
	store := tempFileStore(t)
	if err := store.Save(sampleRecord("run-1", "move forward")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	dest := filepath.Join(t.TempDir(), "export.jsonl")
	if err := store.ExportJSON(dest); err != nil {
		t.Fatalf("ExportJSON() error = %v", err)
	}

	file, err := os.Open(dest)
	if err != nil {
		t.Fatalf("open export: %v", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	if !scanner.Scan() {
		t.Fatal("export file is empty")
	}
	var rec domain.ResolutionRecord
	if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
		t.Fatalf("unmarshal export line: %v", err)
	}
	if rec.RunID != "run-1" || rec.Utterance != "move forward" {
		t.Fatalf("exported record = %+v", rec)
	}
}
