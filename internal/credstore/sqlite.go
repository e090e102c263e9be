package credstore

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store on a local SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// Open opens (and if necessary creates) the store at path. If path is
// ":memory:", an in-memory database is used. Sets WAL mode and runs
// migrations.
func Open(path string) (*SQLiteStore, error) {
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening store: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func migrate(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS credentials (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS attempt_drafts (
		id          TEXT PRIMARY KEY,
		exercise_id INTEGER NOT NULL UNIQUE,
		responses   TEXT NOT NULL,
		updated_at  TEXT NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("applying schema: %w", err)
	}
	return nil
}

func (s *SQLiteStore) get(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM credentials WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading credential %q: %w", key, err)
	}
	return value, nil
}

func (s *SQLiteStore) set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO credentials (key, value) VALUES (?, ?)`, key, value)
	if err != nil {
		return fmt.Errorf("storing credential %q: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Token() (string, error)              { return s.get(KeyToken) }
func (s *SQLiteStore) SetToken(token string) error         { return s.set(KeyToken, token) }
func (s *SQLiteStore) RefreshToken() (string, error)       { return s.get(KeyRefreshToken) }
func (s *SQLiteStore) SetRefreshToken(token string) error  { return s.set(KeyRefreshToken, token) }

func (s *SQLiteStore) ClearTokens() error {
	_, err := s.db.Exec(`DELETE FROM credentials WHERE key IN (?, ?)`, KeyToken, KeyRefreshToken)
	if err != nil {
		return fmt.Errorf("clearing tokens: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Draft(exerciseID int) (*AttemptDraft, error) {
	var (
		d         AttemptDraft
		responses string
		updatedAt string
	)
	err := s.db.QueryRow(
		`SELECT id, exercise_id, responses, updated_at FROM attempt_drafts WHERE exercise_id = ?`,
		exerciseID,
	).Scan(&d.ID, &d.ExerciseID, &responses, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("exercise %d: %w", exerciseID, ErrNoDraft)
	}
	if err != nil {
		return nil, fmt.Errorf("reading draft: %w", err)
	}

	if err := json.Unmarshal([]byte(responses), &d.Responses); err != nil {
		return nil, fmt.Errorf("decoding draft responses: %w", err)
	}
	if t, err := time.Parse(time.RFC3339, updatedAt); err == nil {
		d.UpdatedAt = t
	}
	return &d, nil
}

func (s *SQLiteStore) SaveDraft(d *AttemptDraft) error {
	if d.ID == "" {
		d.ID = uuid.New().String()
	}
	if d.UpdatedAt.IsZero() {
		d.UpdatedAt = time.Now().UTC()
	}
	responses, err := json.Marshal(d.Responses)
	if err != nil {
		return fmt.Errorf("encoding draft responses: %w", err)
	}
	_, err = s.db.Exec(
		`INSERT INTO attempt_drafts (id, exercise_id, responses, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(exercise_id) DO UPDATE SET responses = excluded.responses, updated_at = excluded.updated_at`,
		d.ID, d.ExerciseID, string(responses), d.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("saving draft: %w", err)
	}
	return nil
}

func (s *SQLiteStore) DeleteDraft(exerciseID int) error {
	if _, err := s.db.Exec(`DELETE FROM attempt_drafts WHERE exercise_id = ?`, exerciseID); err != nil {
		return fmt.Errorf("deleting draft: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
