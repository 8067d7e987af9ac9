// Package history persists resolution runs.
package history

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/HarshaNaik703/Shibu-Robo/internal/domain"
	"github.com/HarshaNaik703/Shibu-Robo/internal/pkg/filesystem"
	"github.com/HarshaNaik703/Shibu-Robo/internal/ports"
)

// SQLiteStore persists resolution runs in a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// NewSQLiteStore creates (or opens) the ~/.shibu/history/history.db
// database. When the database cannot be opened the store degrades to the
// jsonl FileStore transparently.
func NewSQLiteStore() *SQLiteStore {
	path := filepath.Join(filesystem.UserHome(), ".shibu", "history", "history.db")
	_ = os.MkdirAll(filepath.Dir(path), 0o755)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return &SQLiteStore{path: path}
	}
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(); err != nil {
		return &SQLiteStore{path: path}
	}
	return store
}

func (s *SQLiteStore) init() error {
	if s.db == nil {
		return os.ErrInvalid
	}
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS resolutions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT,
		timestamp TEXT,
		utterance TEXT,
		outcome TEXT,
		tier TEXT,
		entry TEXT,
		executed INTEGER,
		success INTEGER,
		exit_code INTEGER,
		duration_ms INTEGER,
		verdict TEXT
	);`)
	return err
}

func (s *SQLiteStore) fallback() *FileStore {
	return &FileStore{path: strings.TrimSuffix(s.path, ".db") + ".jsonl"}
}

// Save inserts a new record.
func (s *SQLiteStore) Save(record domain.ResolutionRecord) error {
	if s.db == nil {
		return s.fallback().Save(record)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT INTO resolutions
		(run_id, timestamp, utterance, outcome, tier, entry, executed, success, exit_code, duration_ms, verdict)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.RunID,
		record.Timestamp.Format(time.RFC3339),
		record.Utterance,
		record.Outcome,
		record.Tier,
		record.Entry,
		boolToInt(record.Executed),
		boolToInt(record.Success),
		record.ExitCode,
		record.DurationMS,
		record.Verdict,
	)
	return err
}

// Records returns history entries (limit/search optional).
func (s *SQLiteStore) Records(limit int, search string) ([]domain.ResolutionRecord, error) {
	if s.db == nil {
		return s.fallback().Records(limit, search)
	}
	builder := strings.Builder{}
	builder.WriteString("SELECT run_id, timestamp, utterance, outcome, tier, entry, executed, success, exit_code, duration_ms, verdict FROM resolutions")
	var args []interface{}
	if search != "" {
		builder.WriteString(" WHERE utterance LIKE ? OR entry LIKE ?")
		args = append(args, "%"+search+"%", "%"+search+"%")
	}
	builder.WriteString(" ORDER BY datetime(timestamp) DESC")
	if limit > 0 {
		builder.WriteString(" LIMIT ?")
		args = append(args, limit)
	}
	rows, err := s.db.Query(builder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var records []domain.ResolutionRecord
	for rows.Next() {
		var rec domain.ResolutionRecord
		var ts string
		var executed, success int
		if err := rows.Scan(&rec.RunID, &ts, &rec.Utterance, &rec.Outcome, &rec.Tier, &rec.Entry, &executed, &success, &rec.ExitCode, &rec.DurationMS, &rec.Verdict); err != nil {
			return nil, err
		}
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			rec.Timestamp = t
		}
		rec.Executed = executed == 1
		rec.Success = success == 1
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear deletes all history entries.
func (s *SQLiteStore) Clear() error {
	if s.db == nil {
		return s.fallback().Clear()
	}
	_, err := s.db.Exec("DELETE FROM resolutions")
	return err
}

// ExportJSON writes the resolutions table to a jsonl file.
func (s *SQLiteStore) ExportJSON(dest string) error {
	records, err := s.Records(0, "")
	if err != nil {
		return err
	}
	file, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer file.Close()
	for _, rec := range records {
		b, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		if _, err := file.Write(append(b, '\n')); err != nil {
			return err
		}
	}
	return nil
}

// Path returns the sqlite database path.
func (s *SQLiteStore) Path() string {
	return s.path
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ ports.HistoryRepository = (*SQLiteStore)(nil)
