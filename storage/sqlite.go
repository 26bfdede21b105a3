package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/thelanternworks/inklight/analysis"
)

// ErrNotFound is returned when an entry id has no row.
var ErrNotFound = errors.New("entry not found")

const entriesSchema = `
CREATE TABLE IF NOT EXISTS entries (
	id         TEXT PRIMARY KEY,
	created_at TEXT NOT NULL,
	text       TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_entries_created_at ON entries(created_at);

CREATE TABLE IF NOT EXISTS reflections (
	entry_id   TEXT PRIMARY KEY REFERENCES entries(id) ON DELETE CASCADE,
	created_at TEXT NOT NULL,
	mirror     TEXT NOT NULL,
	question   TEXT NOT NULL DEFAULT '',
	nudges     TEXT NOT NULL DEFAULT '[]',
	mode       TEXT NOT NULL
);
`

// Reflection is the stored reflection for one entry. At most one lives
// per entry; saving again replaces it.
type Reflection struct {
	EntryID   string   `json:"entry_id"`
	CreatedAt string   `json:"created_at"`
	Mirror    string   `json:"mirror"`
	Question  string   `json:"question,omitempty"`
	Nudges    []string `json:"nudges,omitempty"`
	Mode      string   `json:"mode"`
}

// EntryStore keeps journal entries in a local SQLite database.
type EntryStore struct {
	db *sql.DB
}

func OpenEntryStore(path string) (*EntryStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA foreign_keys=ON",
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=10000",
		"PRAGMA synchronous=NORMAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("set pragma: %w", err)
		}
	}

	if _, err := db.Exec(entriesSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &EntryStore{db: db}, nil
}

func (s *EntryStore) Close() error {
	return s.db.Close()
}

// Create inserts the entry, assigning an id and timestamp when absent,
// and returns the stored form.
func (s *EntryStore) Create(ctx context.Context, entry analysis.Entry) (analysis.Entry, error) {
	if strings.TrimSpace(entry.Text) == "" {
		return analysis.Entry{}, errors.New("entry text is empty")
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt == "" {
		entry.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO entries (id, created_at, text) VALUES (?, ?, ?)`,
		entry.ID, entry.CreatedAt, entry.Text)
	if err != nil {
		return analysis.Entry{}, fmt.Errorf("insert entry: %w", err)
	}
	return entry, nil
}

func (s *EntryStore) Get(ctx context.Context, id string) (analysis.Entry, error) {
	var entry analysis.Entry
	err := s.db.QueryRowContext(ctx,
		`SELECT id, created_at, text FROM entries WHERE id = ?`, id).
		Scan(&entry.ID, &entry.CreatedAt, &entry.Text)
	if errors.Is(err, sql.ErrNoRows) {
		return analysis.Entry{}, ErrNotFound
	}
	if err != nil {
		return analysis.Entry{}, fmt.Errorf("get entry: %w", err)
	}
	return entry, nil
}

// List returns entries newest first. A limit of 0 returns everything.
func (s *EntryStore) List(ctx context.Context, limit int) ([]analysis.Entry, error) {
	query := `SELECT id, created_at, text FROM entries ORDER BY created_at DESC, id`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer rows.Close()

	var entries []analysis.Entry
	for rows.Next() {
		var entry analysis.Entry
		if err := rows.Scan(&entry.ID, &entry.CreatedAt, &entry.Text); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

// SaveReflection upserts the reflection for its entry.
func (s *EntryStore) SaveReflection(ctx context.Context, ref Reflection) (Reflection, error) {
	if ref.EntryID == "" {
		return Reflection{}, errors.New("reflection entry id is empty")
	}
	if ref.CreatedAt == "" {
		ref.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}
	nudges, err := json.Marshal(ref.Nudges)
	if err != nil {
		return Reflection{}, fmt.Errorf("marshal nudges: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO reflections (entry_id, created_at, mirror, question, nudges, mode)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(entry_id) DO UPDATE SET
			created_at = excluded.created_at,
			mirror     = excluded.mirror,
			question   = excluded.question,
			nudges     = excluded.nudges,
			mode       = excluded.mode`,
		ref.EntryID, ref.CreatedAt, ref.Mirror, ref.Question, string(nudges), ref.Mode)
	if err != nil {
		return Reflection{}, fmt.Errorf("save reflection: %w", err)
	}
	return ref, nil
}

func (s *EntryStore) GetReflection(ctx context.Context, entryID string) (Reflection, error) {
	var ref Reflection
	var nudges string
	err := s.db.QueryRowContext(ctx, `
		SELECT entry_id, created_at, mirror, question, nudges, mode
		FROM reflections WHERE entry_id = ?`, entryID).
		Scan(&ref.EntryID, &ref.CreatedAt, &ref.Mirror, &ref.Question, &nudges, &ref.Mode)
	if errors.Is(err, sql.ErrNoRows) {
		return Reflection{}, ErrNotFound
	}
	if err != nil {
		return Reflection{}, fmt.Errorf("get reflection: %w", err)
	}
	if err := json.Unmarshal([]byte(nudges), &ref.Nudges); err != nil {
		return Reflection{}, fmt.Errorf("decode nudges: %w", err)
	}
	return ref, nil
}

func (s *EntryStore) Delete(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM entries WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete entry: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
