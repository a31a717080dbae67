package generator

import (
	"math/rand"
	"testing"

	"github.com/crossplay/crossword/pkg/gridmodel"
	"github.com/crossplay/crossword/pkg/lexicon"
)

func fixtureLexicon() *lexicon.Lexicon {
	lex := lexicon.New()
	words := []struct{ word, clue string }{
		{"HELLO", "A greeting"},
		{"HOUSE", "A dwelling"},
		{"LOOSE", "Not tight"},
		{"OTHER", "Not this one"},
		{"EARTH", "Our planet"},
		{"RADIO", "Broadcast device"},
		{"CAT", "Feline pet"},
		{"CAR", "Vehicle"},
		{"TAR", "Road material"},
	}
	for _, w := range words {
		e, ok := lexicon.NewEntry(w.word, []string{w.clue})
		if !ok {
			panic("bad fixture: " + w.word)
		}
		lex.Add(e)
	}
	return lex
}

func TestGenerateWithExplicitSeedProducesContainingWord(t *testing.T) {
	gen := New(fixtureLexicon(), rand.New(rand.NewSource(1)), nil)
	puzzle, err := gen.Generate(Config{
		Width: 5, Height: 5,
		InitialWord: "HELLO",
		MaxAttempts: 10,
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if puzzle.Grid.Density() < 0.2 {
		t.Fatalf("expected density >= 0.2, got %f", puzzle.Grid.Density())
	}
	if len(puzzle.Slots) == 0 {
		t.Fatal("expected at least one slot")
	}

	foundHello := false
	for _, s := range puzzle.Slots {
		if wordAt(puzzle.Grid, s) == "HELLO" {
			foundHello = true
		}
	}
	if !foundHello {
		t.Fatal("expected HELLO to appear somewhere in the generated grid")
	}
}

func TestGenerateRejectsTooSmallGrid(t *testing.T) {
	gen := New(fixtureLexicon(), rand.New(rand.NewSource(1)), nil)
	_, err := gen.Generate(Config{Width: 1, Height: 1})
	if err == nil {
		t.Fatal("expected an InputInvalid error for a 1x1 grid")
	}
}

func TestNumberingIsMonotonic(t *testing.T) {
	gen := New(fixtureLexicon(), rand.New(rand.NewSource(2)), nil)
	puzzle, err := gen.Generate(Config{Width: 5, Height: 5, InitialWord: "HELLO", MaxAttempts: 10})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	last := 0
	for _, s := range puzzle.Slots {
		if s.Number < last {
			t.Fatalf("numbering not monotonic: saw %d after %d", s.Number, last)
		}
		last = s.Number
	}
}

func TestEmptyGridDoesNotMutateSolvedGrid(t *testing.T) {
	g := gridmodel.NewGrid(3, 3)
	g.Set(0, 0, 'A')
	_ = g.EmptyGrid()
	if g.At(0, 0) != 'A' {
		t.Fatal("EmptyGrid must not mutate the receiver")
	}
}
