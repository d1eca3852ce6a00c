// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package library tracks saved guides: a small SQLite history of every
// generated document plus a filesystem fallback for listing guides written
// by other means. See docs/ARCHITECTURE § Guide Library.
package library

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// dbFilename is the history database inside the guides directory.
const dbFilename = "guides.db"

// Entry is one recorded guide.
type Entry struct {
	ID        int64
	Title     string
	Topic     string
	GuideType string
	Format    string
	Path      string
	Size      int64
	Created   time.Time
}

// Store is the guide history database.
type Store struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS guides (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	topic TEXT NOT NULL,
	guide_type TEXT NOT NULL,
	format TEXT NOT NULL,
	path TEXT NOT NULL UNIQUE,
	size INTEGER NOT NULL,
	created TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_guides_created ON guides(created DESC);
`

// OpenStore opens (creating if needed) the history database in dir.
func OpenStore(dir string) (*Store, error) {
	dsn := filepath.Join(dir, dbFilename) + "?_journal_mode=WAL"
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening guide history: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing guide history schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record inserts one guide into the history. Re-recording the same path
// replaces the earlier row.
func (s *Store) Record(ctx context.Context, e Entry) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO guides (title, topic, guide_type, format, path, size, created)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			title = excluded.title,
			topic = excluded.topic,
			guide_type = excluded.guide_type,
			format = excluded.format,
			size = excluded.size,
			created = excluded.created`,
		e.Title, e.Topic, e.GuideType, e.Format, e.Path, e.Size, e.Created)
	if err != nil {
		return fmt.Errorf("recording guide %s: %w", filepath.Base(e.Path), err)
	}
	return nil
}

// Recent returns up to limit guides, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, topic, guide_type, format, path, size, created
		FROM guides ORDER BY created DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying guide history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Title, &e.Topic, &e.GuideType, &e.Format, &e.Path, &e.Size, &e.Created); err != nil {
			return nil, fmt.Errorf("scanning guide row: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
