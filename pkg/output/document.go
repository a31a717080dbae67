// Package output renders a generated or solved puzzle to the on-disk
// formats external crossword tools expect (plain JSON, ipuz, .puz).
// This is the non-HTTP presentation surface SPEC_FULL.md §2 assigns to
// the construction core: it formats files, it does not serve them.
package output

import (
	"time"

	"github.com/crossplay/crossword/pkg/generator"
	"github.com/crossplay/crossword/pkg/gridmodel"
	"github.com/crossplay/crossword/pkg/slot"
)

// Clue is one numbered clue/answer pair in presentation order. X/Y is
// the slot's origin cell, kept so formatters that need per-cell
// numbering (ipuz) don't have to re-derive it from the grid.
type Clue struct {
	Number int
	Text   string
	Answer string
	Length int
	X, Y   int
}

// Document is the format-agnostic intermediate every formatter in this
// package consumes, decoupling pkg/output from the internal Puzzle and
// Solver result shapes.
type Document struct {
	ID         string
	Title      string
	Author     string
	Difficulty string
	CreatedAt  time.Time

	Width, Height int
	Grid          [][]string // letters, "#" for block cells, "." for unfilled cells

	Across []Clue
	Down   []Clue
}

// FromPuzzle builds a Document from a Generator result. Title/Author
// are presentation metadata the construction core does not own; the
// CLI supplies them (or leaves them blank) at format time.
func FromPuzzle(p *generator.Puzzle, title, author string, difficulty gridmodel.Difficulty) *Document {
	doc := &Document{
		ID:         p.Metadata.ID.String(),
		Title:      title,
		Author:     author,
		Difficulty: string(difficulty),
		CreatedAt:  p.Metadata.CreatedAt,
		Width:      p.Grid.Width,
		Height:     p.Grid.Height,
		Grid:       renderGrid(p.Grid),
	}
	for _, s := range p.Slots {
		clue := Clue{
			Number: s.Number,
			Text:   p.Clues[clueKey(s)],
			Answer: wordAt(p.Grid, s),
			Length: s.Length,
			X:      s.X,
			Y:      s.Y,
		}
		if s.Direction == gridmodel.Across {
			doc.Across = append(doc.Across, clue)
		} else {
			doc.Down = append(doc.Down, clue)
		}
	}
	return doc
}

// FromSlots builds a Document from a solved grid plus its slot list,
// the shape the Solver works with (no generator.Puzzle involved).
func FromSlots(g *gridmodel.Grid, slots []*slot.Slot, title, author string) *Document {
	doc := &Document{
		Title:  title,
		Author: author,
		Width:  g.Width,
		Height: g.Height,
		Grid:   renderGrid(g),
	}
	for _, s := range slots {
		clue := Clue{Number: s.Number, Text: s.Clue, Answer: wordAt(g, s), Length: s.Length, X: s.X, Y: s.Y}
		if s.Direction == gridmodel.Across {
			doc.Across = append(doc.Across, clue)
		} else {
			doc.Down = append(doc.Down, clue)
		}
	}
	return doc
}

func clueKey(s *slot.Slot) string {
	dir := "across"
	if s.Direction == gridmodel.Down {
		dir = "down"
	}
	return itoa(s.Number) + "-" + dir
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var b []byte
	for n > 0 {
		b = append([]byte{byte('0' + n%10)}, b...)
		n /= 10
	}
	if neg {
		b = append([]byte{'-'}, b...)
	}
	return string(b)
}

func renderGrid(g *gridmodel.Grid) [][]string {
	rows := make([][]string, g.Height)
	for y := 0; y < g.Height; y++ {
		row := make([]string, g.Width)
		for x := 0; x < g.Width; x++ {
			l := g.At(x, y)
			if l == gridmodel.Block {
				row[x] = "#"
			} else if l.IsLetter() {
				row[x] = string(rune(l))
			} else {
				row[x] = "."
			}
		}
		rows[y] = row
	}
	return rows
}

func wordAt(g *gridmodel.Grid, s *slot.Slot) string {
	b := make([]byte, s.Length)
	for i := 0; i < s.Length; i++ {
		x, y := s.Cell(i)
		b[i] = byte(g.At(x, y))
	}
	return string(b)
}
