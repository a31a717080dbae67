package slot

import (
	"testing"

	"github.com/crossplay/crossword/pkg/gridmodel"
)

func mustGrid(t *testing.T, rows []string) *gridmodel.Grid {
	t.Helper()
	letterRows := make([][]gridmodel.Letter, len(rows))
	for y, row := range rows {
		lr := make([]gridmodel.Letter, len(row))
		for x, c := range []byte(row) {
			if c == '#' {
				lr[x] = gridmodel.Block
			} else {
				lr[x] = gridmodel.Letter(c)
			}
		}
		letterRows[y] = lr
	}
	g, err := gridmodel.NewGridFromRows(letterRows)
	if err != nil {
		t.Fatalf("NewGridFromRows: %v", err)
	}
	return g
}

func TestExtractFromGridMinLength(t *testing.T) {
	g := mustGrid(t, []string{
		"CAR",
		"###",
		"TWO",
	})
	slots := ExtractFromGrid(g)
	for _, s := range slots {
		if s.Length < 2 {
			t.Fatalf("slot %+v has length < 2", s)
		}
	}
}

func TestIntersectionGraphEdgesMatchSharedCells(t *testing.T) {
	// . A .
	// C A R
	// . T .
	g := mustGrid(t, []string{
		"#A#",
		"CAR",
		"#T#",
	})
	slots := ExtractFromGrid(g)
	graph := BuildGraph(slots)

	var across, down *Slot
	for _, s := range slots {
		if s.Direction == gridmodel.Across {
			across = s
		} else {
			down = s
		}
	}
	if across == nil || down == nil {
		t.Fatalf("expected one across and one down slot, got %d slots", len(slots))
	}

	ai, _ := graph.IndexOf(across.Key())
	di, _ := graph.IndexOf(down.Key())
	if graph.Degree(ai) != 1 || graph.Degree(di) != 1 {
		t.Fatalf("expected degree 1 for both slots, got across=%d down=%d", graph.Degree(ai), graph.Degree(di))
	}
}

func TestFitsRejectsLengthMismatch(t *testing.T) {
	g := gridmodel.NewGrid(5, 1)
	s := &Slot{X: 0, Y: 0, Length: 3, Direction: gridmodel.Across}
	if Fits(s, "TOOLONGWORD", g) {
		t.Fatal("Fits should reject a word whose length does not match the slot")
	}
}

func TestFitsRejectsConflictingLetter(t *testing.T) {
	g := gridmodel.NewGrid(3, 1)
	g.Set(1, 0, 'X')
	s := &Slot{X: 0, Y: 0, Length: 3, Direction: gridmodel.Across}
	if Fits(s, "CAT", g) {
		t.Fatal("Fits should reject CAT when the middle cell already holds X")
	}
}

func TestPerpendicularOKDetectsConflict(t *testing.T) {
	g := mustGrid(t, []string{
		"...",
		"#.#",
		"#.#",
	})
	slots := ExtractFromGrid(g)
	graph := BuildGraph(slots)
	var across, down *Slot
	for _, s := range slots {
		if s.Direction == gridmodel.Across {
			across = s
		} else {
			down = s
		}
	}
	di, _ := graph.IndexOf(down.Key())
	g.Set(down.X, down.Y, 'Z') // commit a down letter that conflicts with CAR's A
	ai, _ := graph.IndexOf(across.Key())
	_ = ai
	if PerpendicularOK(graph, di, "ZOO", g) == false {
		t.Fatal("ZOO should be consistent with itself at the intersection")
	}
	if PerpendicularOK(graph, ai, "CAR", g) {
		t.Fatal("CAR should conflict with the committed Z at the intersection")
	}
}
