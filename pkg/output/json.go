package output

import (
	"encoding/json"
	"time"
)

// ClueJSON is one clue in the plain JSON export format.
type ClueJSON struct {
	Number int    `json:"number"`
	Text   string `json:"text"`
	Answer string `json:"answer"`
	Length int    `json:"length"`
}

// PuzzleJSON is the plain JSON export shape.
type PuzzleJSON struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Author     string    `json:"author"`
	Difficulty string    `json:"difficulty"`
	CreatedAt  time.Time `json:"createdAt"`

	Grid [][]string `json:"grid"`

	Across []ClueJSON `json:"across"`
	Down   []ClueJSON `json:"down"`
}

// FormatJSON converts a Document to its PuzzleJSON shape.
func FormatJSON(doc *Document) *PuzzleJSON {
	return &PuzzleJSON{
		ID:         doc.ID,
		Title:      doc.Title,
		Author:     doc.Author,
		Difficulty: doc.Difficulty,
		CreatedAt:  doc.CreatedAt,
		Grid:       doc.Grid,
		Across:     convertClues(doc.Across),
		Down:       convertClues(doc.Down),
	}
}

func convertClues(clues []Clue) []ClueJSON {
	out := make([]ClueJSON, len(clues))
	for i, c := range clues {
		out[i] = ClueJSON{Number: c.Number, Text: c.Text, Answer: c.Answer, Length: c.Length}
	}
	return out
}

// ToJSON converts a Document to indented JSON bytes.
func ToJSON(doc *Document) ([]byte, error) {
	return json.MarshalIndent(FormatJSON(doc), "", "  ")
}
