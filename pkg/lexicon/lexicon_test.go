package lexicon

import "testing"

func buildTestLexicon() *Lexicon {
	lex := New()
	words := []struct {
		word string
		clue string
	}{
		{"CAT", "Feline pet"},
		{"CUT", "Make an incision"},
		{"COT", "Small bed"},
		{"CATS", "Feline pets"},
		{"DOG", "Canine pet"},
		{"HELLO", "A greeting"},
	}
	for _, w := range words {
		e, ok := NewEntry(w.word, []string{w.clue})
		if !ok {
			panic("bad fixture word: " + w.word)
		}
		lex.Add(e)
	}
	return lex
}

func TestByLengthContainsEveryEntryOfThatLength(t *testing.T) {
	lex := buildTestLexicon()
	got := map[string]bool{}
	for _, e := range lex.ByLength(3, 0) {
		if len(e.Word) != 3 {
			t.Fatalf("ByLength(3) returned %q", e.Word)
		}
		got[e.Word] = true
	}
	for _, want := range []string{"CAT", "CUT", "COT", "DOG"} {
		if !got[want] {
			t.Errorf("ByLength(3) missing %s", want)
		}
	}
	if lex.CountByLength(3) != 4 {
		t.Fatalf("CountByLength(3) = %d, want 4", lex.CountByLength(3))
	}
}

func TestByFirstLetterContainsEntry(t *testing.T) {
	lex := buildTestLexicon()
	found := false
	for _, e := range lex.ByFirstLetter('C', 0) {
		if e.Word == "CAT" {
			found = true
		}
	}
	if !found {
		t.Fatal("ByFirstLetter('C') did not contain CAT")
	}
}

func TestByPatternExcludesWrongLength(t *testing.T) {
	lex := buildTestLexicon()
	got := lex.ByPattern("C.T", "", 0)
	words := map[string]bool{}
	for _, e := range got {
		words[e.Word] = true
	}
	for _, want := range []string{"CAT", "CUT", "COT"} {
		if !words[want] {
			t.Errorf("ByPattern(C.T) missing %s", want)
		}
	}
	if words["CATS"] {
		t.Error("ByPattern(C.T) should not include CATS")
	}
}

func TestExactClueCaseInsensitive(t *testing.T) {
	lex := buildTestLexicon()
	e, ok := lex.ExactClue("FELINE PET")
	if !ok || e.Word != "CAT" {
		t.Fatalf("ExactClue case-insensitive lookup failed: %+v, %v", e, ok)
	}
}

func TestClueForWordSyntheticStub(t *testing.T) {
	lex := buildTestLexicon()
	e := lex.ClueForWord("ZEBRA")
	if e.Word != "ZEBRA" {
		t.Fatalf("ClueForWord returned wrong word: %q", e.Word)
	}
	if e.Clue == "" {
		t.Fatal("ClueForWord stub should have a non-empty synthetic clue")
	}
}

func TestScoreDeterministic(t *testing.T) {
	a := Score("CAT")
	b := Score("cat")
	if a != b {
		t.Fatalf("Score should be case-insensitive: %d != %d", a, b)
	}
	if a < 1 {
		t.Fatalf("Score should never be below 1, got %d", a)
	}
}

func TestAlternativeSpellingsFallsBackToByLength(t *testing.T) {
	lex := buildTestLexicon()
	got := lex.AlternativeSpellings("totally unrelated gibberish query", 3, 2)
	if len(got) == 0 {
		t.Fatal("AlternativeSpellings should fall back to ByLength and return results")
	}
	for _, e := range got {
		if len(e.Word) != 3 {
			t.Fatalf("fallback entry %q has wrong length", e.Word)
		}
	}
}
