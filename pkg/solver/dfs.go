package solver

import (
	"sort"
	"time"

	"github.com/crossplay/crossword/pkg/gridmodel"
	"github.com/crossplay/crossword/pkg/lexicon"
	"github.com/crossplay/crossword/pkg/slot"
)

const dfsPrimaryK = 1000

// dfsState carries the mutable search state for one DFS solve: the
// grid being filled in place, per-slot precomputed candidate lists, the
// slot visiting order, and the fallback/backtrack counters.
type dfsState struct {
	grid        *gridmodel.Grid
	graph       *slot.Graph
	order       []int // arena indices, MRV/MCV-ordered
	candidates  map[int][]lexicon.Entry
	filled      map[int]bool
	fallbacks   int
	backtracks  int
}

func solveDFS(g *gridmodel.Grid, graph *slot.Graph, opts Options) (Result, error) {
	start := time.Now()
	work := g.Clone()

	st := &dfsState{
		grid:       work,
		graph:      graph,
		candidates: make(map[int][]lexicon.Entry, len(graph.Slots)),
		filled:     make(map[int]bool, len(graph.Slots)),
	}

	for i, s := range graph.Slots {
		cands, fetchTier := fetchCandidates(opts.Lexicon, s, work, dfsPrimaryK)
		if fetchTier != tierPrimary {
			st.fallbacks++
		}
		st.candidates[i] = cands
		if len(cands) == 0 {
			return dfsResult(Partial, st, start), nil
		}
	}

	st.order = make([]int, len(graph.Slots))
	for i := range st.order {
		st.order[i] = i
	}
	sort.SliceStable(st.order, func(a, b int) bool {
		ia, ib := st.order[a], st.order[b]
		ca, cb := len(st.candidates[ia]), len(st.candidates[ib])
		if ca != cb {
			return ca < cb
		}
		return graph.Degree(ia) > graph.Degree(ib)
	})

	ok := backtrack(st, 0)
	status := Partial
	if ok {
		status = Success
	}
	return dfsResult(status, st, start), nil
}

func backtrack(st *dfsState, pos int) bool {
	if pos == len(st.order) {
		return true
	}
	idx := st.order[pos]
	s := st.graph.Slots[idx]

	for _, entry := range st.candidates[idx] {
		if !slot.Fits(s, entry.Word, st.grid) {
			continue
		}
		if !slot.PerpendicularOK(st.graph, idx, entry.Word, st.grid) {
			continue
		}
		written := place(st.grid, s, entry.Word)
		st.filled[idx] = true

		if forwardCheckOK(st, idx) {
			if backtrack(st, pos+1) {
				return true
			}
		}

		unplace(st.grid, written)
		delete(st.filled, idx)
		st.backtracks++
	}
	return false
}

// forwardCheckOK verifies every neighbor of idx in the intersection
// graph still has at least one viable candidate under the grid as it
// stands after idx's placement (one-ply look-ahead).
func forwardCheckOK(st *dfsState, idx int) bool {
	for _, n := range st.graph.Neighbors(idx) {
		if st.filled[n] {
			continue
		}
		viable := false
		for _, entry := range st.candidates[n] {
			if slot.Fits(st.graph.Slots[n], entry.Word, st.grid) &&
				slot.PerpendicularOK(st.graph, n, entry.Word, st.grid) {
				viable = true
				break
			}
		}
		if !viable {
			return false
		}
	}
	return true
}

// written is the undo log for a single placement: only cells that were
// Empty before the write are recorded, so unplace restores exactly
// those cells and never clobbers a letter shared with an already
// committed crossing slot.
type writtenCell struct {
	x, y int
}

func place(g *gridmodel.Grid, s *slot.Slot, word string) []writtenCell {
	var written []writtenCell
	for i := 0; i < s.Length; i++ {
		x, y := s.Cell(i)
		if g.At(x, y) == gridmodel.Empty {
			g.Set(x, y, gridmodel.Letter(word[i]))
			written = append(written, writtenCell{x, y})
		}
	}
	return written
}

func unplace(g *gridmodel.Grid, written []writtenCell) {
	for _, c := range written {
		g.Set(c.x, c.y, gridmodel.Empty)
	}
}

func dfsResult(status Status, st *dfsState, start time.Time) Result {
	placed := 0
	for _, f := range st.filled {
		if f {
			placed++
		}
	}
	return Result{
		Method: DFS,
		Status: status,
		Grid:   st.grid,
		Metrics: Metrics{
			ExecutionTime:     time.Since(start),
			WordsPlaced:       placed,
			TotalWords:        len(st.graph.Slots),
			FallbackUsedCount: st.fallbacks,
			DFSBacktracks:     st.backtracks,
		},
	}
}
