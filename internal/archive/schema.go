package archive

import (
	"database/sql"
	"fmt"
)

// Schema defines the archive database's single table: one row per
// generated puzzle, keyed by a content hash of its solved grid so a
// repeat generation of the same puzzle does not duplicate the archive.
const Schema = `
CREATE TABLE IF NOT EXISTS puzzle_archive (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	content_hash TEXT NOT NULL UNIQUE,
	width INTEGER NOT NULL,
	height INTEGER NOT NULL,
	difficulty TEXT NOT NULL,
	word_count INTEGER NOT NULL,
	density REAL NOT NULL,
	solved_grid TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_puzzle_archive_difficulty
ON puzzle_archive(difficulty);
`

// InitDB creates the archive schema if it does not already exist.
func InitDB(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("archive: database connection is nil")
	}
	if _, err := db.Exec(Schema); err != nil {
		return fmt.Errorf("archive: failed to initialize schema: %w", err)
	}
	return nil
}
