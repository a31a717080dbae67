package solver

import (
	"sort"
	"time"

	"github.com/crossplay/crossword/pkg/gridmodel"
	"github.com/crossplay/crossword/pkg/lexicon"
	"github.com/crossplay/crossword/pkg/slot"
)

const (
	hybridPrimaryK       = 200
	hybridBeamWidth      = 5
	hybridSwitchThresh   = 0.7
)

// solveHybrid runs a bounded-beam A* phase, then falls through to a
// guided DFS over whatever slots Phase 1 left unfilled.
func solveHybrid(g *gridmodel.Grid, graph *slot.Graph, opts Options) (Result, error) {
	start := time.Now()
	order := orderSlots(opts.Lexicon, graph)

	beam := []*searchState{{grid: g.Clone(), filled: make(map[int]bool), cost: 0, slotIndex: 0}}
	candidateCache := make(map[int][]lexicon.Entry, len(graph.Slots))
	fallbacks := 0
	expansions := 0
	expansionCap := 1000
	if cap := 50 * len(graph.Slots); cap < expansionCap {
		expansionCap = cap
	}

	best := beam[0]
	modeSwitches := 0

	for expansions < expansionCap {
		if len(beam) == 0 {
			break
		}
		cur := beam[0]
		if len(cur.filled) > len(best.filled) {
			best = cur
		}
		if cur.slotIndex == len(order) {
			return hybridResult(Success, cur, graph, fallbacks, expansions, 0, modeSwitches, start), nil
		}

		progress := float64(len(cur.filled)) / float64(len(order))
		if progress > hybridSwitchThresh && len(beam) == 1 {
			break
		}

		var successors []*searchState
		for _, state := range beam {
			succs := expandState(opts.Lexicon, graph, order, state, candidateCache, &fallbacks, hybridPrimaryK, hybridWeights())
			successors = append(successors, succs...)
			expansions++
		}
		if len(successors) == 0 {
			break
		}
		sort.SliceStable(successors, func(i, j int) bool { return successors[i].priority < successors[j].priority })
		if len(successors) > hybridBeamWidth {
			successors = successors[:hybridBeamWidth]
		}
		beam = successors
	}

	modeSwitches++
	workGrid := best.grid.Clone()
	remaining := remainingSlots(graph, best.filled)
	sort.SliceStable(remaining, func(i, j int) bool {
		ci := phase2Score(opts.Lexicon, graph, remaining[i], workGrid)
		cj := phase2Score(opts.Lexicon, graph, remaining[j], workGrid)
		return ci > cj
	})

	st := &dfsState{
		grid:       workGrid,
		graph:      graph,
		candidates: make(map[int][]lexicon.Entry, len(remaining)),
		filled:     make(map[int]bool, len(graph.Slots)),
		order:      remaining,
	}
	for idx := range best.filled {
		st.filled[idx] = true
	}
	for _, idx := range remaining {
		cands, fetchTier := fetchCandidates(opts.Lexicon, graph.Slots[idx], workGrid, hybridPrimaryK)
		if fetchTier != tierPrimary {
			fallbacks++
		}
		st.candidates[idx] = cands
	}

	ok := backtrackFrom(st, 0)
	status := Partial
	if ok {
		status = Success
	}
	return hybridResult(status, nil, graph, fallbacks, expansions, st.backtracks, modeSwitches, start, st), nil
}

func hybridWeights() scoringWeights {
	return scoringWeights{exactClueBonus: 5}
}

func remainingSlots(graph *slot.Graph, filled map[int]bool) []int {
	var out []int
	for i := range graph.Slots {
		if !filled[i] {
			out = append(out, i)
		}
	}
	return out
}

func phase2Score(lex *lexicon.Lexicon, graph *slot.Graph, idx int, g *gridmodel.Grid) int {
	s := graph.Slots[idx]
	pattern := g.Pattern(s.X, s.Y, s.Length, s.Direction)
	fixed := 0
	for _, c := range pattern {
		if c != '.' {
			fixed++
		}
	}
	candidateCount := lex.CountByLength(s.Length)
	bonus := 20 - candidateCount
	if bonus < 0 {
		bonus = 0
	}
	return graph.Degree(idx)*10 - fixed + bonus
}

// backtrackFrom is the Phase 2 guided DFS: same shape as backtrack, but
// walks st.order (already sorted for Phase 2) from pos and uses a
// two-slot forward-check horizon instead of DFS's one-slot horizon.
func backtrackFrom(st *dfsState, pos int) bool {
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

		if forwardCheckHorizon(st, idx, 2) {
			if backtrackFrom(st, pos+1) {
				return true
			}
		}

		unplace(st.grid, written)
		delete(st.filled, idx)
		st.backtracks++
	}
	return false
}

func forwardCheckHorizon(st *dfsState, idx, horizon int) bool {
	if horizon <= 0 {
		return true
	}
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
		if !forwardCheckHorizon(st, n, horizon-1) {
			return false
		}
	}
	return true
}

// expandState produces every legal successor of state for the next
// slot in order, using up to the top-scored candidates.
func expandState(lex *lexicon.Lexicon, graph *slot.Graph, order []int, state *searchState,
	cache map[int][]lexicon.Entry, fallbacks *int, k int, weights scoringWeights) []*searchState {

	if state.slotIndex >= len(order) {
		return nil
	}
	slotArenaIdx := order[state.slotIndex]
	s := graph.Slots[slotArenaIdx]

	cands, ok := cache[slotArenaIdx]
	if !ok {
		var fetchTier tier
		cands, fetchTier = fetchCandidates(lex, s, state.grid, k)
		if fetchTier != tierPrimary {
			*fallbacks++
		}
		cache[slotArenaIdx] = cands
	}

	var legal []lexicon.Entry
	for _, e := range cands {
		if slot.Fits(s, e.Word, state.grid) && slot.PerpendicularOK(graph, slotArenaIdx, e.Word, state.grid) {
			legal = append(legal, e)
		}
	}
	sort.SliceStable(legal, func(i, j int) bool {
		return scoreCandidate(graph, slotArenaIdx, legal[i], state.grid, weights) >
			scoreCandidate(graph, slotArenaIdx, legal[j], state.grid, weights)
	})
	if len(legal) > aStarSuccessorTopN {
		legal = legal[:aStarSuccessorTopN]
	}

	successors := make([]*searchState, 0, len(legal))
	for _, e := range legal {
		nextGrid := state.grid.Clone()
		place(nextGrid, s, e.Word)
		nextFilled := make(map[int]bool, len(state.filled)+1)
		for k2, v := range state.filled {
			nextFilled[k2] = v
		}
		nextFilled[slotArenaIdx] = true
		next := &searchState{
			grid:      nextGrid,
			filled:    nextFilled,
			cost:      state.cost + 1,
			slotIndex: state.slotIndex + 1,
		}
		next.priority = next.cost + heuristic(graph, order, next)
		successors = append(successors, next)
	}
	return successors
}

func hybridResult(status Status, beamState *searchState, graph *slot.Graph, fallbacks, expansions, backtracks, modeSwitches int, start time.Time, dfs ...*dfsState) Result {
	var g *gridmodel.Grid
	placed := 0
	if beamState != nil {
		g = beamState.grid
		placed = len(beamState.filled)
	} else if len(dfs) > 0 {
		g = dfs[0].grid
		for _, f := range dfs[0].filled {
			if f {
				placed++
			}
		}
	}
	return Result{
		Method: Hybrid,
		Status: status,
		Grid:   g,
		Metrics: Metrics{
			ExecutionTime:     time.Since(start),
			WordsPlaced:       placed,
			TotalWords:        len(graph.Slots),
			FallbackUsedCount: fallbacks,
			AStarExpansions:   expansions,
			DFSBacktracks:     backtracks,
			ModeSwitches:      modeSwitches,
		},
	}
}
