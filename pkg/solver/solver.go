// Package solver implements the DFS, A*, and Hybrid crossword fillers
// sharing one slot/candidate/scoring contract.
package solver

import (
	"fmt"
	"time"

	"github.com/crossplay/crossword/pkg/gridmodel"
	"github.com/crossplay/crossword/pkg/lexicon"
	"github.com/crossplay/crossword/pkg/slot"
	"github.com/sirupsen/logrus"
)

// Algorithm selects which search strategy Solve runs.
type Algorithm string

const (
	DFS    Algorithm = "DFS"
	AStar  Algorithm = "A*"
	Hybrid Algorithm = "HYBRID"
)

// Status is the terminal outcome of a solve attempt. Unsatisfiable
// conditions are never reported as an error; they surface as Partial.
type Status string

const (
	Success Status = "success"
	Partial Status = "partial"
)

// Metrics carries the observability fields named in SPEC_FULL.md §6.
type Metrics struct {
	ExecutionTime     time.Duration
	MemoryUsageKB     uint64
	MinMemoryKB       uint64
	PeakMemoryKB      uint64
	WordsPlaced       int
	TotalWords        int
	FallbackUsedCount int
	AStarExpansions   int
	DFSBacktracks     int
	ModeSwitches      int
}

// Result is the outcome of a single Solve call.
type Result struct {
	Method  Algorithm
	Status  Status
	Grid    *gridmodel.Grid
	Metrics Metrics
}

// Options configures a solve attempt.
type Options struct {
	Lexicon                 *lexicon.Lexicon
	Log                     *logrus.Logger
	EnableMemoryProfiling   bool
}

// Solve dispatches to the requested algorithm over a fixed grid and
// clue list. grid is never mutated; the returned Result.Grid is always
// a fresh copy.
func Solve(g *gridmodel.Grid, clues []slot.ClueInput, algo Algorithm, opts Options) (Result, error) {
	if g == nil {
		return Result{}, fmt.Errorf("solver: nil grid (InputInvalid)")
	}
	if len(clues) == 0 {
		return Result{}, fmt.Errorf("solver: no clues supplied (InputInvalid)")
	}
	if opts.Lexicon == nil {
		return Result{}, fmt.Errorf("solver: no lexicon supplied (InputInvalid)")
	}
	if opts.Log == nil {
		opts.Log = logrus.New()
	}

	slots := slot.ExtractFromClues(g, clues)
	graph := slot.BuildGraph(slots)

	switch algo {
	case DFS:
		return solveDFS(g, graph, opts)
	case AStar:
		return solveAStar(g, graph, opts)
	case Hybrid:
		return solveHybrid(g, graph, opts)
	default:
		return Result{}, fmt.Errorf("solver: unknown algorithm %q (InputInvalid)", algo)
	}
}
