// Package slot derives the word-slot and intersection-graph model that
// the generator and solver both search against.
package slot

import (
	"github.com/crossplay/crossword/pkg/gridmodel"
)

// Key identifies a slot by its numbering and direction, matching the
// clue-list key shape ("1-across").
type Key struct {
	Number    int
	Direction gridmodel.Direction
}

// Slot is a maximal run of non-block cells of length >= 2.
type Slot struct {
	Number    int
	X, Y      int
	Length    int
	Direction gridmodel.Direction
	Clue      string
	Answer    string // known answer, if any (solver input path)
}

func (s *Slot) Key() Key { return Key{Number: s.Number, Direction: s.Direction} }

// Cell returns the (x, y) of the i'th letter of the slot, 0 <= i < Length.
func (s *Slot) Cell(i int) (x, y int) {
	if s.Direction == gridmodel.Across {
		return s.X + i, s.Y
	}
	return s.X, s.Y + i
}

// Cells enumerates every (x, y) covered by the slot.
func (s *Slot) Cells() [][2]int {
	cells := make([][2]int, s.Length)
	for i := 0; i < s.Length; i++ {
		x, y := s.Cell(i)
		cells[i] = [2]int{x, y}
	}
	return cells
}

// Graph is the intersection graph over a set of slots: an edge connects
// any two slots that share a cell (always one across, one down).
type Graph struct {
	Slots     []*Slot
	indexOf   map[Key]int
	adjacency [][]int // arena index -> neighbor arena indices
}

// Degree returns the number of slots intersecting slot i (arena index).
func (g *Graph) Degree(i int) int { return len(g.adjacency[i]) }

// Neighbors returns the arena indices of slots intersecting slot i.
func (g *Graph) Neighbors(i int) []int { return g.adjacency[i] }

// IndexOf resolves a slot key to its arena index.
func (g *Graph) IndexOf(k Key) (int, bool) {
	i, ok := g.indexOf[k]
	return i, ok
}

// BuildGraph derives the intersection graph for a fixed slot set. Two
// slots are adjacent iff they share exactly one cell; per invariant 3,
// any shared cell is exactly one across and one down slot.
func BuildGraph(slots []*Slot) *Graph {
	g := &Graph{
		Slots:     slots,
		indexOf:   make(map[Key]int, len(slots)),
		adjacency: make([][]int, len(slots)),
	}
	for i, s := range slots {
		g.indexOf[s.Key()] = i
	}

	cellOwners := make(map[[2]int][]int) // cell -> arena indices covering it
	for i, s := range slots {
		for _, c := range s.Cells() {
			cellOwners[c] = append(cellOwners[c], i)
		}
	}
	seen := make(map[[2]int]bool, len(slots)*len(slots))
	for _, owners := range cellOwners {
		for _, a := range owners {
			for _, b := range owners {
				if a == b {
					continue
				}
				key := [2]int{a, b}
				if seen[key] {
					continue
				}
				seen[key] = true
				g.adjacency[a] = append(g.adjacency[a], b)
			}
		}
	}
	return g
}

// ExtractFromGrid scans a fully specified grid (letters or Block) and
// derives its slot list, numbering cells in row-major scan order per
// SPEC_FULL.md §4.2's invariant 2.
func ExtractFromGrid(g *gridmodel.Grid) []*Slot {
	var slots []*Slot
	number := 0
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.At(x, y) == gridmodel.Block {
				continue
			}
			startsAcross := (x == 0 || g.At(x-1, y) == gridmodel.Block) &&
				(x+1 < g.Width && g.At(x+1, y) != gridmodel.Block)
			startsDown := (y == 0 || g.At(x, y-1) == gridmodel.Block) &&
				(y+1 < g.Height && g.At(x, y+1) != gridmodel.Block)
			if !startsAcross && !startsDown {
				continue
			}
			number++
			if startsAcross {
				length := 0
				for x+length < g.Width && g.At(x+length, y) != gridmodel.Block {
					length++
				}
				if length >= 2 {
					slots = append(slots, &Slot{Number: number, X: x, Y: y, Length: length, Direction: gridmodel.Across})
				}
			}
			if startsDown {
				length := 0
				for y+length < g.Height && g.At(x, y+length) != gridmodel.Block {
					length++
				}
				if length >= 2 {
					slots = append(slots, &Slot{Number: number, X: x, Y: y, Length: length, Direction: gridmodel.Down})
				}
			}
		}
	}
	return slots
}

// ClueInput is the wire shape of one solver-input clue, per SPEC_FULL.md
// §6 ("Solve input").
type ClueInput struct {
	Number    int
	X, Y      int
	Length    int
	Direction gridmodel.Direction
	Clue      string
	Answer    string
}

// ExtractFromClues builds the slot list from an explicit clue list
// (the Solver input path), excluding slots whose span is already fully
// solved in g.
func ExtractFromClues(g *gridmodel.Grid, clues []ClueInput) []*Slot {
	var slots []*Slot
	for _, c := range clues {
		slot := &Slot{
			Number: c.Number, X: c.X, Y: c.Y, Length: c.Length,
			Direction: c.Direction, Clue: c.Clue, Answer: c.Answer,
		}
		if isFullySolved(g, slot) {
			continue
		}
		slots = append(slots, slot)
	}
	return slots
}

func isFullySolved(g *gridmodel.Grid, s *Slot) bool {
	for _, c := range s.Cells() {
		if g.At(c[0], c[1]) == gridmodel.Empty {
			return false
		}
	}
	return true
}

// Fits reports whether word can legally occupy slot in grid: the length
// matches, every covered cell is either Empty or already equal to the
// corresponding letter, and the cells immediately outside the span are
// Block or out of bounds.
func Fits(s *Slot, word string, g *gridmodel.Grid) bool {
	if len(word) != s.Length {
		return false
	}
	for i := 0; i < s.Length; i++ {
		x, y := s.Cell(i)
		cur := g.At(x, y)
		if cur != gridmodel.Empty && cur != gridmodel.Letter(word[i]) {
			return false
		}
	}
	beforeX, beforeY := s.X, s.Y
	afterX, afterY := s.Cell(s.Length - 1)
	if s.Direction == gridmodel.Across {
		beforeX--
		afterX++
	} else {
		beforeY--
		afterY++
	}
	if g.InBounds(beforeX, beforeY) && g.At(beforeX, beforeY) != gridmodel.Block {
		return false
	}
	if g.InBounds(afterX, afterY) && g.At(afterX, afterY) != gridmodel.Block {
		return false
	}
	return true
}

// PerpendicularOK reports whether, at every intersection of s with a
// neighbor in graph, word's letter matches the neighbor's currently
// committed letter (if any).
func PerpendicularOK(graph *Graph, slotIdx int, word string, g *gridmodel.Grid) bool {
	s := graph.Slots[slotIdx]
	for _, n := range graph.Neighbors(slotIdx) {
		other := graph.Slots[n]
		x, y, ok := intersection(s, other)
		if !ok {
			continue
		}
		pos := posAlong(s, x, y)
		letter := gridmodel.Letter(word[pos])
		cur := g.At(x, y)
		if cur.IsLetter() && cur != letter {
			return false
		}
	}
	return true
}

func posAlong(s *Slot, x, y int) int {
	if s.Direction == gridmodel.Across {
		return x - s.X
	}
	return y - s.Y
}

func intersection(a, b *Slot) (x, y int, ok bool) {
	aCells := make(map[[2]int]bool, a.Length)
	for _, c := range a.Cells() {
		aCells[c] = true
	}
	for _, c := range b.Cells() {
		if aCells[c] {
			return c[0], c[1], true
		}
	}
	return 0, 0, false
}
