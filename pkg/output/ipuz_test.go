package output

import "testing"

func TestFormatIPuzRejectsNilDocument(t *testing.T) {
	if _, err := FormatIPuz(nil); err == nil {
		t.Fatal("expected an error for a nil document")
	}
}

func TestFormatIPuzBlockCellsAreHash(t *testing.T) {
	doc := sampleDocument()
	ipuz, err := FormatIPuz(doc)
	if err != nil {
		t.Fatalf("FormatIPuz: %v", err)
	}
	if ipuz.Solution[1][0] != "#" {
		t.Errorf("expected block cell in solution, got %v", ipuz.Solution[1][0])
	}
	if ipuz.Puzzle[1][0] != "#" {
		t.Errorf("expected block cell in puzzle grid, got %v", ipuz.Puzzle[1][0])
	}
}

func TestFormatIPuzNumbersOriginCells(t *testing.T) {
	doc := sampleDocument()
	ipuz, err := FormatIPuz(doc)
	if err != nil {
		t.Fatalf("FormatIPuz: %v", err)
	}
	if ipuz.Puzzle[0][0] != 1 {
		t.Errorf("expected origin cell numbered 1, got %v", ipuz.Puzzle[0][0])
	}
}

func TestFormatIPuzCluesMatchDocument(t *testing.T) {
	doc := sampleDocument()
	ipuz, err := FormatIPuz(doc)
	if err != nil {
		t.Fatalf("FormatIPuz: %v", err)
	}
	if len(ipuz.Clues.Across) != len(doc.Across) {
		t.Fatalf("across clue count = %d, want %d", len(ipuz.Clues.Across), len(doc.Across))
	}
	if len(ipuz.Clues.Down) != len(doc.Down) {
		t.Fatalf("down clue count = %d, want %d", len(ipuz.Clues.Down), len(doc.Down))
	}
}

func TestToIPuzProducesValidJSON(t *testing.T) {
	doc := sampleDocument()
	bytes, err := ToIPuz(doc)
	if err != nil {
		t.Fatalf("ToIPuz: %v", err)
	}
	if len(bytes) == 0 {
		t.Fatal("expected non-empty ipuz JSON")
	}
}
