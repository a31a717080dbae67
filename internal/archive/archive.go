// Package archive records generated puzzles to a local sqlite database
// so the CLI's stats subcommand has something to report on. It is not
// a search-time cache: the Generator and Solver never read from it.
package archive

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/crossplay/crossword/pkg/generator"
	"github.com/crossplay/crossword/pkg/gridmodel"
)

// Archive wraps a sqlite-backed store of generated puzzles.
type Archive struct {
	db *sql.DB
}

// Open connects to (creating if necessary) the sqlite database at path
// and ensures its schema exists.
func Open(path string) (*Archive, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("archive: open %s: %w", path, err)
	}
	if err := InitDB(db); err != nil {
		db.Close()
		return nil, err
	}
	return &Archive{db: db}, nil
}

// Close releases the underlying database handle.
func (a *Archive) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// Record saves a generated puzzle. A repeat content hash is a no-op,
// not an error.
func (a *Archive) Record(p *generator.Puzzle, difficulty gridmodel.Difficulty) error {
	if a.db == nil {
		return fmt.Errorf("archive: database connection is nil")
	}
	solved := solvedString(p.Grid)
	hash := contentHash(solved)

	_, err := a.db.Exec(`
		INSERT OR IGNORE INTO puzzle_archive
			(content_hash, width, height, difficulty, word_count, density, solved_grid)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, hash, p.Grid.Width, p.Grid.Height, string(difficulty), len(p.Slots), p.Grid.Density(), solved)
	if err != nil {
		return fmt.Errorf("archive: save puzzle: %w", err)
	}
	return nil
}

// Entry is one archived puzzle row, as queried by the stats subcommand.
type Entry struct {
	ContentHash string
	Width       int
	Height      int
	Difficulty  string
	WordCount   int
	Density     float64
}

// Stats returns aggregate counts per difficulty, mirroring the
// teacher's `stats` subcommand query shape.
func (a *Archive) Stats() (map[string]int, error) {
	if a.db == nil {
		return nil, fmt.Errorf("archive: database connection is nil")
	}
	rows, err := a.db.Query(`SELECT difficulty, COUNT(*) FROM puzzle_archive GROUP BY difficulty`)
	if err != nil {
		return nil, fmt.Errorf("archive: query stats: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var difficulty string
		var count int
		if err := rows.Scan(&difficulty, &count); err != nil {
			return nil, fmt.Errorf("archive: scan stats row: %w", err)
		}
		counts[difficulty] = count
	}
	return counts, rows.Err()
}

func solvedString(g *gridmodel.Grid) string {
	b := make([]byte, 0, g.Width*g.Height)
	for _, row := range g.Rows() {
		for _, l := range row {
			b = append(b, byte(l))
		}
	}
	return string(b)
}

func contentHash(solved string) string {
	sum := sha256.Sum256([]byte(solved))
	return hex.EncodeToString(sum[:])
}
