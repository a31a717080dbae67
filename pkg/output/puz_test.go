package output

import (
	"bytes"
	"testing"
)

func TestFormatPuzMagicHeader(t *testing.T) {
	doc := sampleDocument()
	data, err := FormatPuz(doc)
	if err != nil {
		t.Fatalf("FormatPuz: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("ACROSS&DOWN\x00")) {
		t.Fatal("expected .puz magic header prefix")
	}
}

func TestFormatPuzRejectsOversizedGrid(t *testing.T) {
	doc := &Document{Width: 300, Height: 1, Grid: [][]string{make([]string, 300)}}
	if _, err := FormatPuz(doc); err == nil {
		t.Fatal("expected an error for a grid wider than 255 cells")
	}
}

func TestFormatPuzEncodesSolutionLetters(t *testing.T) {
	doc := sampleDocument()
	data, err := FormatPuz(doc)
	if err != nil {
		t.Fatalf("FormatPuz: %v", err)
	}
	if !bytes.Contains(data, []byte("ACE")) {
		t.Fatal("expected the solution string to contain the placed word ACE")
	}
}
