package archive

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/crossplay/crossword/pkg/generator"
	"github.com/crossplay/crossword/pkg/gridmodel"
)

func setupTestArchive(t *testing.T) *Archive {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := InitDB(db); err != nil {
		t.Fatalf("failed to initialize schema: %v", err)
	}
	return &Archive{db: db}
}

func fixturePuzzle() *generator.Puzzle {
	g := gridmodel.NewGrid(3, 1)
	g.Set(0, 0, 'C')
	g.Set(1, 0, 'A')
	g.Set(2, 0, 'T')
	return &generator.Puzzle{Grid: g}
}

func TestRecordAndStats(t *testing.T) {
	a := setupTestArchive(t)
	defer a.Close()

	if err := a.Record(fixturePuzzle(), gridmodel.Easy); err != nil {
		t.Fatalf("Record: %v", err)
	}

	counts, err := a.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if counts["easy"] != 1 {
		t.Fatalf("expected 1 easy puzzle recorded, got %d", counts["easy"])
	}
}

func TestRecordIsIdempotentForSameContent(t *testing.T) {
	a := setupTestArchive(t)
	defer a.Close()

	p := fixturePuzzle()
	if err := a.Record(p, gridmodel.Easy); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := a.Record(p, gridmodel.Easy); err != nil {
		t.Fatalf("Record (repeat): %v", err)
	}

	counts, err := a.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if counts["easy"] != 1 {
		t.Fatalf("repeat Record should not duplicate the archive entry, got count %d", counts["easy"])
	}
}
