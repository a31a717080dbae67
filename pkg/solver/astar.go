package solver

import (
	"container/heap"
	"sort"
	"strings"
	"time"

	"github.com/crossplay/crossword/pkg/gridmodel"
	"github.com/crossplay/crossword/pkg/lexicon"
	"github.com/crossplay/crossword/pkg/slot"
)

const (
	aStarPrimaryK      = 500
	aStarIterationCap  = 5000
	aStarSuccessorTopN = 20
)

// searchState is one A* open/closed-set node: cost is the number of
// slots filled so far, slotIndex is the position in the global slot
// order being decided next.
type searchState struct {
	grid      *gridmodel.Grid
	filled    map[int]bool
	cost      int
	slotIndex int
	priority  int
	heapIndex int
}

func (s *searchState) hash() string {
	var b strings.Builder
	for _, row := range s.grid.Rows() {
		for _, l := range row {
			b.WriteByte(byte(l))
		}
	}
	b.WriteByte('|')
	for i := 0; i < s.slotIndex; i++ {
		b.WriteByte(1)
	}
	return b.String()
}

type stateHeap []*searchState

func (h stateHeap) Len() int            { return len(h) }
func (h stateHeap) Less(i, j int) bool  { return h[i].priority < h[j].priority }
func (h stateHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].heapIndex, h[j].heapIndex = i, j
}
func (h *stateHeap) Push(x interface{}) {
	s := x.(*searchState)
	s.heapIndex = len(*h)
	*h = append(*h, s)
}
func (h *stateHeap) Pop() interface{} {
	old := *h
	n := len(old)
	s := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return s
}

// orderSlots computes the global A* slot visiting order from
// SPEC_FULL.md §4.4.b: score = 10*constraint_degree + max(0, 50 -
// candidate_estimate), descending.
func orderSlots(lex *lexicon.Lexicon, graph *slot.Graph) []int {
	order := make([]int, len(graph.Slots))
	scores := make([]int, len(graph.Slots))
	for i, s := range graph.Slots {
		fixedChars := 1
		estimate := lex.CountByLength(s.Length) / (fixedChars * 5)
		bonus := 50 - estimate
		if bonus < 0 {
			bonus = 0
		}
		scores[i] = 10*graph.Degree(i) + bonus
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return scores[order[a]] > scores[order[b]] })
	return order
}

func heuristic(graph *slot.Graph, order []int, st *searchState) int {
	remaining := len(order) - st.slotIndex
	h := 10 * remaining
	lookahead := 3
	for i := st.slotIndex; i < len(order) && lookahead > 0; i, lookahead = i+1, lookahead-1 {
		h += 5 * graph.Degree(order[i])
	}
	return h
}

func solveAStar(g *gridmodel.Grid, graph *slot.Graph, opts Options) (Result, error) {
	start := time.Now()
	order := orderSlots(opts.Lexicon, graph)

	candidateCache := make(map[int][]lexicon.Entry, len(graph.Slots))
	fallbacks := 0

	initial := &searchState{grid: g.Clone(), filled: make(map[int]bool), cost: 0, slotIndex: 0}
	initial.priority = initial.cost + heuristic(graph, order, initial)

	open := &stateHeap{}
	heap.Init(open)
	heap.Push(open, initial)
	closed := make(map[string]int) // hash -> best cost seen

	var best *searchState = initial
	expansions := 0

	for open.Len() > 0 && expansions < aStarIterationCap {
		cur := heap.Pop(open).(*searchState)
		expansions++

		if len(cur.filled) > len(best.filled) {
			best = cur
		}

		if cur.slotIndex == len(order) {
			return astarResult(Success, cur, graph, fallbacks, expansions, start), nil
		}

		h := cur.hash()
		if bestCost, ok := closed[h]; ok && bestCost <= cur.cost {
			continue
		}
		closed[h] = cur.cost

		slotArenaIdx := order[cur.slotIndex]
		s := graph.Slots[slotArenaIdx]

		cands, ok := candidateCache[slotArenaIdx]
		if !ok {
			var fetchTier tier
			cands, fetchTier = fetchCandidates(opts.Lexicon, s, cur.grid, aStarPrimaryK)
			if fetchTier != tierPrimary {
				fallbacks++
			}
			candidateCache[slotArenaIdx] = cands
		}

		scored := make([]lexicon.Entry, 0, len(cands))
		for _, e := range cands {
			if slot.Fits(s, e.Word, cur.grid) && slot.PerpendicularOK(graph, slotArenaIdx, e.Word, cur.grid) {
				scored = append(scored, e)
			}
		}
		sort.SliceStable(scored, func(i, j int) bool {
			wa := scoringWeights{exactClueBonus: 4, scoreBiasCap: 3}
			return scoreCandidate(graph, slotArenaIdx, scored[i], cur.grid, wa) >
				scoreCandidate(graph, slotArenaIdx, scored[j], cur.grid, wa)
		})
		if len(scored) > aStarSuccessorTopN {
			scored = scored[:aStarSuccessorTopN]
		}

		for _, e := range scored {
			nextGrid := cur.grid.Clone()
			place(nextGrid, s, e.Word)
			nextFilled := make(map[int]bool, len(cur.filled)+1)
			for k, v := range cur.filled {
				nextFilled[k] = v
			}
			nextFilled[slotArenaIdx] = true
			next := &searchState{
				grid:      nextGrid,
				filled:    nextFilled,
				cost:      cur.cost + 1,
				slotIndex: cur.slotIndex + 1,
			}
			next.priority = next.cost + heuristic(graph, order, next)
			heap.Push(open, next)
		}
	}

	final := best
	if open.Len() > 0 {
		final = (*open)[0]
		for _, st := range *open {
			if heuristic(graph, order, st) < heuristic(graph, order, final) {
				final = st
			}
		}
	}
	if final.slotIndex == len(order) {
		return astarResult(Success, final, graph, fallbacks, expansions, start), nil
	}
	return astarResult(Partial, final, graph, fallbacks, expansions, start), nil
}

func astarResult(status Status, st *searchState, graph *slot.Graph, fallbacks, expansions int, start time.Time) Result {
	return Result{
		Method: AStar,
		Status: status,
		Grid:   st.grid,
		Metrics: Metrics{
			ExecutionTime:     time.Since(start),
			WordsPlaced:       len(st.filled),
			TotalWords:        len(graph.Slots),
			FallbackUsedCount: fallbacks,
			AStarExpansions:   expansions,
		},
	}
}
