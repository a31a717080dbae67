// Package lexicon implements the in-memory, constraint-aware word and
// clue store shared by the generator and solver.
package lexicon

import "strings"

// Entry is a single normalized lexicon record.
type Entry struct {
	Word       string // uppercase A-Z, length 2..15
	Clue       string // first definition
	Definition string // all definitions, joined by "; "
	Score      int
}

var letterWeight = map[byte]int{
	'A': 1, 'E': 1, 'I': 1, 'L': 1, 'N': 1, 'O': 1, 'R': 1, 'S': 1, 'T': 1, 'U': 1,
	'D': 2, 'G': 2,
	'B': 3, 'C': 3, 'M': 3, 'P': 3,
	'F': 4, 'H': 4, 'V': 4, 'W': 4, 'Y': 4,
	'K': 5,
	'J': 8, 'X': 8,
	'Q': 10, 'Z': 10,
}

// letterFrequency is a fixed English letter-frequency table (percent),
// used only to derive the first-letter rarity bonus.
var letterFrequency = map[byte]float64{
	'A': 8.2, 'B': 1.5, 'C': 2.8, 'D': 4.3, 'E': 12.7, 'F': 2.2, 'G': 2.0,
	'H': 6.1, 'I': 7.0, 'J': 0.15, 'K': 0.77, 'L': 4.0, 'M': 2.4, 'N': 6.7,
	'O': 7.5, 'P': 1.9, 'Q': 0.095, 'R': 6.0, 'S': 6.3, 'T': 9.1, 'U': 2.8,
	'V': 0.98, 'W': 2.4, 'X': 0.15, 'Y': 2.0, 'Z': 0.074,
}

func isVowel(c byte) bool {
	switch c {
	case 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}

// Score computes the deterministic word score described in SPEC_FULL.md
// §3: per-letter Scrabble-style weights, an interior-vowel bonus, a
// low-uniqueness penalty, and a first-letter rarity bonus.
func Score(word string) int {
	word = strings.ToUpper(word)
	total := 0
	unique := make(map[byte]struct{}, len(word))
	for i := 0; i < len(word); i++ {
		c := word[i]
		total += letterWeight[c]
		unique[c] = struct{}{}
		if i > 0 && i < len(word)-1 && isVowel(c) {
			total += 2
		}
	}
	if len(unique) < len(word)/2 {
		total -= 3
	}
	if len(word) > 0 {
		freq := letterFrequency[word[0]]
		rarity := 10 - freq*0.5
		if rarity < 1 {
			rarity = 1
		}
		total += int(rarity)
	}
	if total < 1 {
		total = 1
	}
	return total
}

// NewEntry normalizes a raw word/meanings pair into an Entry, computing
// its score. Returns false if the word is not a valid lexicon entry
// (non-letters, length outside 2..15).
func NewEntry(word string, meanings []string) (Entry, bool) {
	word = strings.ToUpper(strings.TrimSpace(word))
	if len(word) < 2 || len(word) > 15 {
		return Entry{}, false
	}
	for i := 0; i < len(word); i++ {
		if word[i] < 'A' || word[i] > 'Z' {
			return Entry{}, false
		}
	}
	clue := ""
	if len(meanings) > 0 {
		clue = meanings[0]
	}
	definition := strings.Join(meanings, "; ")
	return Entry{
		Word:       word,
		Clue:       clue,
		Definition: definition,
		Score:      Score(word),
	}, true
}
