package solver

import (
	"testing"

	"github.com/crossplay/crossword/pkg/gridmodel"
	"github.com/crossplay/crossword/pkg/lexicon"
	"github.com/crossplay/crossword/pkg/slot"
)

func testLexicon(t *testing.T) *lexicon.Lexicon {
	t.Helper()
	lex := lexicon.New()
	words := []struct {
		word, clue string
	}{
		{"CAT", "Feline pet"},
		{"CAR", "Vehicle with wheels"},
		{"ART", "Creative work"},
		{"RUG", "Floor covering"},
	}
	for _, w := range words {
		e, ok := lexicon.NewEntry(w.word, []string{w.clue})
		if !ok {
			t.Fatalf("bad fixture %q", w.word)
		}
		lex.Add(e)
	}
	return lex
}

func singleAcrossGrid(length int) (*gridmodel.Grid, []slot.ClueInput) {
	g := gridmodel.NewGrid(length, 1)
	clues := []slot.ClueInput{
		{Number: 1, X: 0, Y: 0, Length: length, Direction: gridmodel.Across, Clue: "Feline pet"},
	}
	return g, clues
}

func TestDFSSolvesSingleSlotExactClue(t *testing.T) {
	lex := testLexicon(t)
	g, clues := singleAcrossGrid(3)
	result, err := Solve(g, clues, DFS, Options{Lexicon: lex})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if result.Status != Success {
		t.Fatalf("expected success, got %v", result.Status)
	}
	if result.Grid.At(0, 0) != 'C' || result.Grid.At(1, 0) != 'A' || result.Grid.At(2, 0) != 'T' {
		t.Fatalf("expected CAT placed, got pattern %s", result.Grid.Pattern(0, 0, 3, gridmodel.Across))
	}
}

func TestAStarSolvesSingleSlot(t *testing.T) {
	lex := testLexicon(t)
	g, clues := singleAcrossGrid(3)
	result, err := Solve(g, clues, AStar, Options{Lexicon: lex})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if result.Status != Success {
		t.Fatalf("expected success, got %v", result.Status)
	}
}

func TestHybridSolvesSingleSlot(t *testing.T) {
	lex := testLexicon(t)
	g, clues := singleAcrossGrid(3)
	result, err := Solve(g, clues, Hybrid, Options{Lexicon: lex})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if result.Status != Success {
		t.Fatalf("expected success, got %v", result.Status)
	}
}

func TestSolveCrossingWords(t *testing.T) {
	lex := testLexicon(t)
	// . C .
	// C A R
	// . T .
	g := gridmodel.NewGrid(3, 3)
	for _, c := range [][2]int{{0, 0}, {2, 0}, {0, 2}, {2, 2}} {
		g.Set(c[0], c[1], gridmodel.Block)
	}
	clues := []slot.ClueInput{
		{Number: 2, X: 0, Y: 1, Length: 3, Direction: gridmodel.Across, Clue: "Vehicle with wheels"},
		{Number: 1, X: 1, Y: 0, Length: 3, Direction: gridmodel.Down, Clue: "Feline pet"},
	}
	result, err := Solve(g, clues, DFS, Options{Lexicon: lex})
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if result.Status != Success {
		t.Fatalf("expected success, got %v", result.Status)
	}
	across := result.Grid.Pattern(0, 1, 3, gridmodel.Across)
	down := result.Grid.Pattern(1, 0, 3, gridmodel.Down)
	if across != "CAR" || down != "CAT" || across[1] != down[1] {
		t.Fatalf("expected CAR across and CAT down sharing their middle letter, got %s / %s", across, down)
	}
}

func TestSolveUnsatisfiableReturnsPartialNotError(t *testing.T) {
	lex := lexicon.New() // empty lexicon: no candidates possible
	g, clues := singleAcrossGrid(3)
	result, err := Solve(g, clues, DFS, Options{Lexicon: lex})
	if err != nil {
		t.Fatalf("Solve should never error on unsatisfiable input, got %v", err)
	}
	if result.Status != Partial {
		t.Fatalf("expected partial, got %v", result.Status)
	}
	if result.Metrics.WordsPlaced >= result.Metrics.TotalWords {
		t.Fatalf("partial result should have words_placed < total_words")
	}
}

func TestSolveRejectsUnknownAlgorithm(t *testing.T) {
	lex := testLexicon(t)
	g, clues := singleAcrossGrid(3)
	_, err := Solve(g, clues, Algorithm("BOGUS"), Options{Lexicon: lex})
	if err == nil {
		t.Fatal("expected an InputInvalid error for an unknown algorithm")
	}
}
