package runlog

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
}

// NewSQLiteStore opens (or creates) a SQLite database at path and
// creates tables and indexes.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), DirPerm); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Set PRAGMAs before any DDL.
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlite pragma: %w", err)
		}
	}

	ddl := `
CREATE TABLE IF NOT EXISTS runs (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    timestamp   TEXT NOT NULL,
    name        TEXT NOT NULL DEFAULT '',
    dir         TEXT NOT NULL DEFAULT '',
    bundle_path TEXT NOT NULL DEFAULT '',
    bundle_err  TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS run_items (
    id       INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id   INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    item_num INTEGER NOT NULL,
    filename TEXT    NOT NULL,
    px       INTEGER NOT NULL,
    err      TEXT    NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp DESC);
CREATE INDEX IF NOT EXISTS idx_run_items_run  ON run_items(run_id, item_num);
`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}

	return &SQLiteStore{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Log(e Entry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO runs (timestamp, name, dir, bundle_path, bundle_err)
		 VALUES (?, ?, ?, ?, ?)`,
		e.Time.Format(time.RFC3339), e.Name, e.Dir, e.BundlePath, e.BundleErr,
	)
	if err != nil {
		return err
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return err
	}

	for i, it := range e.Items {
		if _, err := tx.Exec(
			`INSERT INTO run_items (run_id, item_num, filename, px, err)
			 VALUES (?, ?, ?, ?, ?)`,
			runID, i+1, it.Name, it.Px, it.Err,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) Entries(limit int) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, timestamp, name, dir, bundle_path, bundle_err FROM runs ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	var entries []Entry
	for rows.Next() {
		var id int64
		var tsStr string
		var e Entry
		if err := rows.Scan(&id, &tsStr, &e.Name, &e.Dir, &e.BundlePath, &e.BundleErr); err != nil {
			return nil, err
		}
		ts, err := time.Parse(time.RFC3339, tsStr)
		if err != nil {
			continue
		}
		e.Time = ts
		ids = append(ids, id)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	itemsByRun, err := s.queryItems()
	if err != nil {
		return nil, err
	}
	for i, id := range ids {
		entries[i].Items = itemsByRun[id]
	}

	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	return entries, nil
}

func (s *SQLiteStore) queryItems() (map[int64][]Item, error) {
	rows, err := s.db.Query(
		`SELECT run_id, filename, px, err FROM run_items ORDER BY run_id, item_num`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byRun := map[int64][]Item{}
	for rows.Next() {
		var runID int64
		var it Item
		if err := rows.Scan(&runID, &it.Name, &it.Px, &it.Err); err != nil {
			return nil, err
		}
		byRun[runID] = append(byRun[runID], it)
	}
	return byRun, rows.Err()
}

func (s *SQLiteStore) Clear() error {
	_, err := s.db.Exec(`DELETE FROM runs`)
	return err
}

func (s *SQLiteStore) Path() string {
	return s.path
}
