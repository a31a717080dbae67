package output

import (
	"encoding/json"
	"testing"
	"time"
)

func sampleDocument() *Document {
	now := time.Now().UTC().Truncate(time.Second)
	return &Document{
		ID:         "test-puzzle-123",
		Title:      "Test Puzzle",
		Author:     "Test Author",
		Difficulty: "medium",
		CreatedAt:  now,
		Width:      3,
		Height:     3,
		Grid: [][]string{
			{"A", "C", "E"},
			{"#", "#", "#"},
			{"T", "E", "A"},
		},
		Across: []Clue{
			{Number: 1, Text: "Expert", Answer: "ACE", Length: 3},
			{Number: 2, Text: "Beverage", Answer: "TEA", Length: 3},
		},
		Down: []Clue{
			{Number: 1, Text: "Consumed", Answer: "ATE", Length: 3},
		},
	}
}

func TestFormatJSONMetadata(t *testing.T) {
	doc := sampleDocument()
	result := FormatJSON(doc)

	if result.ID != "test-puzzle-123" {
		t.Errorf("ID = %q", result.ID)
	}
	if result.Title != "Test Puzzle" {
		t.Errorf("Title = %q", result.Title)
	}
	if result.Difficulty != "medium" {
		t.Errorf("Difficulty = %q", result.Difficulty)
	}
	if !result.CreatedAt.Equal(doc.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", result.CreatedAt, doc.CreatedAt)
	}
}

func TestFormatJSONGridAndClues(t *testing.T) {
	doc := sampleDocument()
	result := FormatJSON(doc)

	if len(result.Grid) != 3 || len(result.Grid[0]) != 3 {
		t.Fatalf("expected a 3x3 grid, got %dx%d", len(result.Grid[0]), len(result.Grid))
	}
	if result.Grid[1][0] != "#" {
		t.Errorf("expected block cell, got %q", result.Grid[1][0])
	}
	if len(result.Across) != 2 || result.Across[0].Answer != "ACE" {
		t.Fatalf("unexpected across clues: %+v", result.Across)
	}
	if len(result.Down) != 1 || result.Down[0].Answer != "ATE" {
		t.Fatalf("unexpected down clues: %+v", result.Down)
	}
}

func TestToJSONRoundTripsThroughJSONUnmarshal(t *testing.T) {
	doc := sampleDocument()
	bytes, err := ToJSON(doc)
	if err != nil {
		t.Fatalf("ToJSON: %v", err)
	}

	var parsed map[string]interface{}
	if err := json.Unmarshal(bytes, &parsed); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if parsed["id"] != "test-puzzle-123" {
		t.Errorf("id = %v", parsed["id"])
	}
	grid, ok := parsed["grid"].([]interface{})
	if !ok || len(grid) != 3 {
		t.Fatalf("expected a 3-row grid array, got %v", parsed["grid"])
	}
}

func TestFormatJSONNoClues(t *testing.T) {
	doc := &Document{Width: 1, Height: 1, Grid: [][]string{{"A"}}}
	result := FormatJSON(doc)
	if len(result.Across) != 0 || len(result.Down) != 0 {
		t.Fatal("expected no clues for an empty Document clue list")
	}
}
