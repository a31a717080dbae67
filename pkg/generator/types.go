// Package generator synthesizes a dense, interlocking crossword grid by
// incremental word placement search.
package generator

import (
	"time"

	"github.com/google/uuid"

	"github.com/crossplay/crossword/pkg/gridmodel"
	"github.com/crossplay/crossword/pkg/slot"
)

// Metadata identifies a generated puzzle. Title/Author/Theme are a
// product-layer concern the construction core does not own; only the
// identity and timestamp survive here, for pkg/output to stamp.
type Metadata struct {
	ID        uuid.UUID
	CreatedAt time.Time
}

// Puzzle is the Generator's output: a solved grid, its numbered clue
// list, and the slot list that produced the numbering.
type Puzzle struct {
	Grid     *gridmodel.Grid
	Slots    []*slot.Slot
	Clues    map[string]string // "<number>-<direction>" -> clue text
	Metadata Metadata
}

// EmptyGrid returns a copy of p.Grid with letters erased and block cells
// kept; it never mutates p.Grid. No number labels are painted into the
// copy: clue numbering is carried by p.Slots.
func (p *Puzzle) EmptyGrid() *gridmodel.Grid {
	return p.Grid.EmptyGrid()
}

// Stats summarizes a Generate call's outcome per SPEC_FULL.md §6.
type Stats struct {
	WordCount   int
	Difficulty  gridmodel.Difficulty
	Size        int
	Density     float64
	UsedFallback bool
}

// Config parameterizes one Generate call.
type Config struct {
	Width, Height int
	InitialWord   string   // optional; chosen automatically if empty
	WordList      []string // optional; built from the Lexicon if empty
	MaxAttempts   int
	Difficulty    gridmodel.Difficulty
}

func (c *Config) setDefaults() {
	if c.MaxAttempts <= 0 {
		c.MaxAttempts = 40
	}
	if c.Difficulty == "" {
		c.Difficulty = gridmodel.Medium
	}
}
