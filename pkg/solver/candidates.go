package solver

import (
	"github.com/crossplay/crossword/pkg/gridmodel"
	"github.com/crossplay/crossword/pkg/lexicon"
	"github.com/crossplay/crossword/pkg/slot"
)

// tier identifies which fallback cascade stage produced a candidate
// list, so callers can count FallbackUsedCount.
type tier int

const (
	tierPrimary tier = iota
	tierAlternativeSpellings
	tierPattern
	tierByLength
	tierHeuristicRank
)

// fetchCandidates runs the SPEC_FULL.md §4.4 candidate cascade for a
// slot: primary possible_words lookup by clue, then in order
// alternative_spellings, by_pattern against the current grid, plain
// by_length, and a final heuristic re-rank of a broad by_length pull.
// Returns the candidates and which tier satisfied the request.
func fetchCandidates(lex *lexicon.Lexicon, s *slot.Slot, g *gridmodel.Grid, primaryK int) ([]lexicon.Entry, tier) {
	words := lex.PossibleWords(s.Clue, primaryK, lexicon.LengthRange{Min: s.Length, Max: s.Length})
	if len(words) > 0 {
		return words, tierPrimary
	}

	words = lex.AlternativeSpellings(s.Clue, s.Length, primaryK)
	if len(words) > 0 {
		return words, tierAlternativeSpellings
	}

	pattern := g.Pattern(s.X, s.Y, s.Length, s.Direction)
	words = lex.ByPattern(pattern, "", primaryK)
	if len(words) > 0 {
		return words, tierPattern
	}

	words = lex.ByLength(s.Length, primaryK)
	if len(words) > 0 {
		return words, tierByLength
	}

	words = rankByPatternMatches(lex.ByLength(s.Length, 0), pattern, 200)
	return words, tierHeuristicRank
}

// rankByPatternMatches scores a broad candidate set by how many fixed
// positions of pattern they match, returning the top `limit`.
func rankByPatternMatches(entries []lexicon.Entry, pattern string, limit int) []lexicon.Entry {
	type scored struct {
		e     lexicon.Entry
		match int
	}
	scoredList := make([]scored, 0, len(entries))
	for _, e := range entries {
		if len(e.Word) != len(pattern) {
			continue
		}
		m := 0
		for i := 0; i < len(pattern); i++ {
			if pattern[i] != '.' && pattern[i] == e.Word[i] {
				m++
			}
		}
		scoredList = append(scoredList, scored{e, m})
	}
	for i := 1; i < len(scoredList); i++ {
		j := i
		for j > 0 && scoredList[j-1].match < scoredList[j].match {
			scoredList[j-1], scoredList[j] = scoredList[j], scoredList[j-1]
			j--
		}
	}
	if limit > 0 && len(scoredList) > limit {
		scoredList = scoredList[:limit]
	}
	out := make([]lexicon.Entry, len(scoredList))
	for i, s := range scoredList {
		out[i] = s.e
	}
	return out
}
