package solver

import (
	"github.com/crossplay/crossword/pkg/gridmodel"
	"github.com/crossplay/crossword/pkg/lexicon"
	"github.com/crossplay/crossword/pkg/slot"
)

// scoringWeights lets A* and Hybrid apply the slightly different exact-
// clue and score-bias bonuses SPEC_FULL.md §4.4 specifies per variant.
type scoringWeights struct {
	exactClueBonus int
	scoreBiasCap   int // A* only: min(entry.score/5, cap)
}

// scoreCandidate implements the shared candidate-scoring rule: +3 per
// grid-prefilled match, -5 per grid-prefilled conflict, +-3/+-5 per
// intersection against committed neighbor letters, plus an
// algorithm-specific exact-clue bonus and optional score bias. Floored
// at 0.
func scoreCandidate(graph *slot.Graph, slotIdx int, entry lexicon.Entry, g *gridmodel.Grid, w scoringWeights) int {
	s := graph.Slots[slotIdx]
	word := entry.Word
	score := 0

	for i := 0; i < s.Length; i++ {
		x, y := s.Cell(i)
		cur := g.At(x, y)
		if !cur.IsLetter() {
			continue
		}
		if cur == gridmodel.Letter(word[i]) {
			score += 3
		} else {
			score -= 5
		}
	}

	for _, n := range graph.Neighbors(slotIdx) {
		other := graph.Slots[n]
		x, y, ok := sharedCell(s, other)
		if !ok {
			continue
		}
		pos := posAlongSlot(s, x, y)
		cur := g.At(x, y)
		if !cur.IsLetter() {
			continue
		}
		if cur == gridmodel.Letter(word[pos]) {
			score += 3
		} else {
			score -= 5
		}
	}

	if w.exactClueBonus > 0 {
		if exact, ok := exactClueMatches(entry, s); ok && exact {
			score += w.exactClueBonus
		}
	}
	if w.scoreBiasCap > 0 {
		bias := entry.Score / 5
		if bias > w.scoreBiasCap {
			bias = w.scoreBiasCap
		}
		score += bias
	}

	if score < 0 {
		score = 0
	}
	return score
}

func exactClueMatches(entry lexicon.Entry, s *slot.Slot) (bool, bool) {
	if s.Clue == "" {
		return false, false
	}
	return true, entry.Clue != "" && equalFold(entry.Clue, s.Clue)
}

func equalFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		ca, cb := a[i], b[i]
		if ca >= 'A' && ca <= 'Z' {
			ca += 'a' - 'A'
		}
		if cb >= 'A' && cb <= 'Z' {
			cb += 'a' - 'A'
		}
		if ca != cb {
			return false
		}
	}
	return true
}

func sharedCell(a, b *slot.Slot) (x, y int, ok bool) {
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

func posAlongSlot(s *slot.Slot, x, y int) int {
	if s.Direction == gridmodel.Across {
		return x - s.X
	}
	return y - s.Y
}
