package output

import (
	"encoding/json"
	"fmt"
)

// IPuzDimensions is the ipuz puzzle dimensions object.
type IPuzDimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// IPuzClue is one clue in ipuz format: [number, "clue text"].
type IPuzClue []interface{}

// IPuzClues is the ipuz clues section.
type IPuzClues struct {
	Across []IPuzClue `json:"Across"`
	Down   []IPuzClue `json:"Down"`
}

// IPuzPuzzle is the ipuz.org v2 crossword document shape.
type IPuzPuzzle struct {
	Version    string          `json:"version"`
	Kind       []string        `json:"kind"`
	Title      string          `json:"title,omitempty"`
	Author     string          `json:"author,omitempty"`
	Copyright  string          `json:"copyright,omitempty"`
	Difficulty string          `json:"difficulty,omitempty"`
	Dimensions IPuzDimensions  `json:"dimensions"`
	Puzzle     [][]interface{} `json:"puzzle"`
	Solution   [][]interface{} `json:"solution"`
	Clues      IPuzClues       `json:"clues"`
}

// FormatIPuz converts a Document to the ipuz.org crossword structure.
func FormatIPuz(doc *Document) (*IPuzPuzzle, error) {
	if doc == nil {
		return nil, fmt.Errorf("output: document cannot be nil")
	}
	if doc.Width <= 0 || doc.Height <= 0 {
		return nil, fmt.Errorf("output: invalid grid dimensions: %dx%d", doc.Width, doc.Height)
	}
	if len(doc.Grid) != doc.Height {
		return nil, fmt.Errorf("output: grid height mismatch: expected %d, got %d", doc.Height, len(doc.Grid))
	}

	numberAt := make(map[[2]int]int)
	for _, c := range doc.Across {
		numberAt[[2]int{c.X, c.Y}] = c.Number
	}
	for _, c := range doc.Down {
		numberAt[[2]int{c.X, c.Y}] = c.Number
	}

	puzzleGrid := make([][]interface{}, doc.Height)
	solutionGrid := make([][]interface{}, doc.Height)
	for y := 0; y < doc.Height; y++ {
		if len(doc.Grid[y]) != doc.Width {
			return nil, fmt.Errorf("output: grid width mismatch at row %d: expected %d, got %d", y, doc.Width, len(doc.Grid[y]))
		}
		puzzleGrid[y] = make([]interface{}, doc.Width)
		solutionGrid[y] = make([]interface{}, doc.Width)
		for x := 0; x < doc.Width; x++ {
			cell := doc.Grid[y][x]
			if cell == "#" {
				puzzleGrid[y][x] = "#"
				solutionGrid[y][x] = "#"
				continue
			}
			solutionGrid[y][x] = cell
			if n, ok := numberAt[[2]int{x, y}]; ok {
				puzzleGrid[y][x] = n
			} else {
				puzzleGrid[y][x] = 0
			}
		}
	}

	return &IPuzPuzzle{
		Version:    "http://ipuz.org/v2",
		Kind:       []string{"http://ipuz.org/crossword#1"},
		Title:      doc.Title,
		Author:     doc.Author,
		Copyright:  fmt.Sprintf("© %s", doc.Author),
		Difficulty: doc.Difficulty,
		Dimensions: IPuzDimensions{Width: doc.Width, Height: doc.Height},
		Puzzle:     puzzleGrid,
		Solution:   solutionGrid,
		Clues: IPuzClues{
			Across: toIPuzClues(doc.Across),
			Down:   toIPuzClues(doc.Down),
		},
	}, nil
}

func toIPuzClues(clues []Clue) []IPuzClue {
	out := make([]IPuzClue, 0, len(clues))
	for _, c := range clues {
		out = append(out, IPuzClue{c.Number, c.Text})
	}
	return out
}

// ToIPuz renders a Document as ipuz JSON bytes.
func ToIPuz(doc *Document) ([]byte, error) {
	ipuzPuzzle, err := FormatIPuz(doc)
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(ipuzPuzzle, "", "  ")
}
