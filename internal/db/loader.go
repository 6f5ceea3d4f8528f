package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/FocuswithJustin/usfx2tsv/core/tsv"
)

const schema = `
CREATE TABLE IF NOT EXISTS verses (
	import_id TEXT NOT NULL,
	book      TEXT NOT NULL,
	chapter   INTEGER NOT NULL,
	verse     TEXT NOT NULL,
	text      TEXT NOT NULL,
	PRIMARY KEY (import_id, book, chapter, verse)
);
CREATE TABLE IF NOT EXISTS imports (
	id            TEXT PRIMARY KEY,
	source_path   TEXT NOT NULL,
	source_blake3 TEXT NOT NULL,
	verse_count   INTEGER NOT NULL,
	imported_at   TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_verses_ref ON verses (book, chapter, verse);
`

// Import is the provenance row recorded for one load operation.
type Import struct {
	ID           string
	SourcePath   string
	SourceBlake3 string
	VerseCount   int
	ImportedAt   time.Time
}

// Loader inserts verse records into a SQLite database inside a single
// transaction, together with an imports row identifying the batch.
type Loader struct {
	db *sql.DB
}

// NewLoader returns a Loader writing to db, creating the schema if needed.
func NewLoader(db *sql.DB) (*Loader, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &Loader{db: db}, nil
}

// Load inserts all records produced by next (an iterator returning
// io.EOF-style exhaustion via nil record) under a fresh import batch.
// On any error the transaction rolls back: the database never holds a
// partial import.
func (l *Loader) Load(ctx context.Context, sourcePath, sourceDigest string, next func() (*tsv.VerseRecord, error)) (*Import, error) {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO verses (import_id, book, chapter, verse, text) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return nil, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	imp := &Import{
		ID:           uuid.New().String(),
		SourcePath:   sourcePath,
		SourceBlake3: sourceDigest,
		ImportedAt:   time.Now().UTC(),
	}

	for {
		rec, err := next()
		if err != nil {
			return nil, err
		}
		if rec == nil {
			break
		}
		if _, err := stmt.ExecContext(ctx, imp.ID, rec.Book, rec.Chapter, rec.Verse, rec.Text); err != nil {
			return nil, fmt.Errorf("insert %s: %w", rec, err)
		}
		imp.VerseCount++
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO imports (id, source_path, source_blake3, verse_count, imported_at) VALUES (?, ?, ?, ?, ?)",
		imp.ID, imp.SourcePath, imp.SourceBlake3, imp.VerseCount, imp.ImportedAt.Format(time.RFC3339)); err != nil {
		return nil, fmt.Errorf("record import: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit: %w", err)
	}
	return imp, nil
}

// CountVerses returns the number of verses stored for an import batch.
func (l *Loader) CountVerses(ctx context.Context, importID string) (int, error) {
	var n int
	err := l.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM verses WHERE import_id = ?", importID).Scan(&n)
	return n, err
}
