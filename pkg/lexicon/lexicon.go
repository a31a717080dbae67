package lexicon

import (
	"math/rand"
	"sort"
	"strings"
	"sync"
)

// Lexicon is a read-mostly, multi-indexed word/clue store. It is safe
// for concurrent use: entries never mutate after Add, and every query
// takes a read lock documenting that contract.
type Lexicon struct {
	mu           sync.RWMutex
	byWord       map[string]Entry
	byLength     map[int][]Entry
	byFirstChar  map[byte][]Entry
	insertOrder  []Entry
}

// New returns an empty Lexicon.
func New() *Lexicon {
	return &Lexicon{
		byWord:      make(map[string]Entry),
		byLength:    make(map[int][]Entry),
		byFirstChar: make(map[byte][]Entry),
	}
}

// Add inserts a normalized entry into every index. Not safe to call
// concurrently with queries; loading completes before a Lexicon is
// shared.
func (l *Lexicon) Add(e Entry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.byWord[e.Word]; exists {
		return
	}
	l.byWord[e.Word] = e
	l.byLength[len(e.Word)] = append(l.byLength[len(e.Word)], e)
	l.byFirstChar[e.Word[0]] = append(l.byFirstChar[e.Word[0]], e)
	l.insertOrder = append(l.insertOrder, e)
}

// Len returns the total number of loaded entries.
func (l *Lexicon) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.insertOrder)
}

// CountByLength returns the number of entries with the given length.
func (l *Lexicon) CountByLength(length int) int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.byLength[length])
}

// ByLength returns entries of the given length, diversely sampled across
// first letters when limit is smaller than the bucket, per SPEC_FULL.md
// §4.1: allocate floor(limit/distinctFirstLetters) top-scored words per
// first letter, then top up from the global score-ordered remainder.
func (l *Lexicon) ByLength(length int, limit int) []Entry {
	l.mu.RLock()
	bucket := append([]Entry(nil), l.byLength[length]...)
	l.mu.RUnlock()

	if limit <= 0 || limit >= len(bucket) {
		sorted := append([]Entry(nil), bucket...)
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Score > sorted[j].Score })
		return sorted
	}

	byFirst := make(map[byte][]Entry)
	var firsts []byte
	for _, e := range bucket {
		c := e.Word[0]
		if _, ok := byFirst[c]; !ok {
			firsts = append(firsts, c)
		}
		byFirst[c] = append(byFirst[c], e)
	}
	for _, c := range firsts {
		sort.SliceStable(byFirst[c], func(i, j int) bool { return byFirst[c][i].Score > byFirst[c][j].Score })
	}

	perLetter := limit / max(1, len(firsts))
	seen := make(map[string]bool)
	var result []Entry
	for _, c := range firsts {
		take := perLetter
		if take > len(byFirst[c]) {
			take = len(byFirst[c])
		}
		for i := 0; i < take; i++ {
			e := byFirst[c][i]
			if !seen[e.Word] {
				seen[e.Word] = true
				result = append(result, e)
			}
		}
	}

	if len(result) < limit {
		remainder := append([]Entry(nil), bucket...)
		sort.SliceStable(remainder, func(i, j int) bool { return remainder[i].Score > remainder[j].Score })
		for _, e := range remainder {
			if len(result) >= limit {
				break
			}
			if !seen[e.Word] {
				seen[e.Word] = true
				result = append(result, e)
			}
		}
	}

	if len(result) > limit {
		result = result[:limit]
	}
	return result
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// ByFirstLetter returns entries beginning with c, optionally capped at limit.
func (l *Lexicon) ByFirstLetter(c byte, limit int) []Entry {
	l.mu.RLock()
	bucket := append([]Entry(nil), l.byFirstChar[c]...)
	l.mu.RUnlock()
	if limit > 0 && limit < len(bucket) {
		bucket = bucket[:limit]
	}
	return bucket
}

// ExactClue returns the first entry (insertion order) whose clue
// case-insensitively equals text.
func (l *Lexicon) ExactClue(text string) (Entry, bool) {
	target := strings.ToLower(text)
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, e := range l.insertOrder {
		if strings.ToLower(e.Clue) == target {
			return e, true
		}
	}
	return Entry{}, false
}

// LengthRange is an inclusive [Min, Max] bound; a zero value means
// unbounded.
type LengthRange struct {
	Min, Max int
}

func (r LengthRange) contains(n int) bool {
	if r.Min > 0 && n < r.Min {
		return false
	}
	if r.Max > 0 && n > r.Max {
		return false
	}
	return true
}

// PossibleWords returns entries whose clue contains the query
// substring (case-insensitively), the exact-clue hit first if any,
// honoring an optional length range and limit.
func (l *Lexicon) PossibleWords(clue string, limit int, lengthRange LengthRange) []Entry {
	target := strings.ToLower(clue)
	var result []Entry
	seen := make(map[string]bool)

	if exact, ok := l.ExactClue(clue); ok && lengthRange.contains(len(exact.Word)) {
		result = append(result, exact)
		seen[exact.Word] = true
	}

	l.mu.RLock()
	all := l.insertOrder
	l.mu.RUnlock()

	for _, e := range all {
		if limit > 0 && len(result) >= limit {
			break
		}
		if seen[e.Word] {
			continue
		}
		if !lengthRange.contains(len(e.Word)) {
			continue
		}
		if strings.Contains(strings.ToLower(e.Clue), target) {
			result = append(result, e)
			seen[e.Word] = true
		}
	}
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result
}

// ByPattern returns length-len(pattern) entries matching pattern, where
// '.' is a wildcard and any other rune is a required letter at that
// position. When clue is non-empty, results are additionally filtered
// by substring containment against the clue.
func (l *Lexicon) ByPattern(pattern string, clue string, limit int) []Entry {
	length := len(pattern)
	pattern = strings.ToUpper(pattern)
	target := strings.ToLower(clue)

	l.mu.RLock()
	bucket := append([]Entry(nil), l.byLength[length]...)
	l.mu.RUnlock()

	var result []Entry
	for _, e := range bucket {
		if limit > 0 && len(result) >= limit {
			break
		}
		if !matchesPattern(e.Word, pattern) {
			continue
		}
		if clue != "" && !strings.Contains(strings.ToLower(e.Clue), target) {
			continue
		}
		result = append(result, e)
	}
	return result
}

func matchesPattern(word, pattern string) bool {
	if len(word) != len(pattern) {
		return false
	}
	for i := 0; i < len(pattern); i++ {
		if pattern[i] == '.' {
			continue
		}
		if word[i] != pattern[i] {
			return false
		}
	}
	return true
}

// ClueForWord returns the stored entry for word, or a synthetic stub
// entry if the word was never loaded.
func (l *Lexicon) ClueForWord(word string) Entry {
	word = strings.ToUpper(word)
	l.mu.RLock()
	e, ok := l.byWord[word]
	l.mu.RUnlock()
	if ok {
		return e
	}
	return Entry{
		Word:       word,
		Clue:       "Definition related to " + word,
		Definition: "Definition related to " + word,
		Score:      Score(word),
	}
}

// AlternativeSpellings implements the fuzzy fallback cascade from
// SPEC_FULL.md §4.1: similar-length clue-similarity match, then
// first-token clue containment at the exact target length, then a
// plain by_length fallback.
func (l *Lexicon) AlternativeSpellings(clue string, length int, limit int) []Entry {
	l.mu.RLock()
	all := l.insertOrder
	l.mu.RUnlock()

	var byRatio []Entry
	for _, e := range all {
		if abs(len(e.Word)-length) > 1 {
			continue
		}
		if similarityRatio(clue, e.Clue) > 0.6 {
			byRatio = append(byRatio, e)
		}
	}
	if len(byRatio) > 0 {
		sort.SliceStable(byRatio, func(i, j int) bool { return byRatio[i].Score > byRatio[j].Score })
		if limit > 0 && len(byRatio) > limit {
			byRatio = byRatio[:limit]
		}
		return byRatio
	}

	firstToken := strings.ToLower(clue)
	if fields := strings.Fields(firstToken); len(fields) > 0 {
		firstToken = fields[0]
	}
	if firstToken != "" {
		var byToken []Entry
		for _, e := range all {
			if len(e.Word) != length {
				continue
			}
			if strings.Contains(strings.ToLower(e.Clue), firstToken) {
				byToken = append(byToken, e)
			}
		}
		if len(byToken) > 0 {
			if limit > 0 && len(byToken) > limit {
				byToken = byToken[:limit]
			}
			return byToken
		}
	}

	return l.ByLength(length, limit)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// Shuffle returns a copy of entries in a random order using rng (tests
// pin rng for determinism per SPEC_FULL.md §9's injectable-RNG note).
func Shuffle(entries []Entry, rng *rand.Rand) []Entry {
	out := append([]Entry(nil), entries...)
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
