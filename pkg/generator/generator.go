package generator

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/crossplay/crossword/pkg/gridmodel"
	"github.com/crossplay/crossword/pkg/lexicon"
	"github.com/crossplay/crossword/pkg/slot"
)

// Generator builds puzzles against a shared Lexicon. Rand is an
// injectable dependency per SPEC_FULL.md §9's randomness note, so
// tests can pin a seed.
type Generator struct {
	Lexicon *lexicon.Lexicon
	Rand    *rand.Rand
	Log     *logrus.Logger
}

// New returns a Generator. A nil rng defaults to a time-seeded source;
// a nil logger defaults to a standard logrus.Logger.
func New(lex *lexicon.Lexicon, rng *rand.Rand, log *logrus.Logger) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if log == nil {
		log = logrus.New()
	}
	return &Generator{Lexicon: lex, Rand: rng, Log: log}
}

// finalizeIterationCap bounds the post-outer-loop finalization pass.
const finalizeIterationCap = 50

// Generate runs the full Generator contract from SPEC_FULL.md §4.3:
// word-list initialization, an outer seed-and-expand loop retaining the
// puzzle with the most placed words, and a finalization pass. Returns
// an error only for InputInvalid or NoSeed conditions; an unsatisfiable
// seed search is NoSeed, never a panic.
func (gen *Generator) Generate(cfg Config) (*Puzzle, error) {
	if cfg.Width < 3 || cfg.Height < 3 {
		return nil, fmt.Errorf("generator: grid %dx%d too small (InputInvalid)", cfg.Width, cfg.Height)
	}
	cfg.setDefaults()

	wordList := cfg.WordList
	if len(wordList) == 0 {
		wordList = gen.buildWordList(cfg.Width)
	}
	if len(wordList) == 0 {
		return nil, fmt.Errorf("generator: no candidate words available (NoSeed)")
	}

	var best *gridmodel.Grid
	bestWords := -1
	usedFirstLetters := make(map[byte]bool)

	for attempt := 0; attempt < cfg.MaxAttempts; attempt++ {
		seedWord := gen.pickSeedWord(cfg.InitialWord, wordList, usedFirstLetters)
		if seedWord == "" {
			continue
		}
		usedFirstLetters[seedWord[0]] = true

		for _, g := range gen.seedPlacements(cfg.Width, cfg.Height, seedWord) {
			placed := gen.expand(g, removeWord(wordList, seedWord), cfg.MaxAttempts)
			count := countWords(placed)
			if count > bestWords {
				bestWords = count
				best = placed
			}
		}
	}

	if best == nil {
		return nil, fmt.Errorf("generator: could not place any seed word (NoSeed)")
	}

	for i := 0; i < finalizeIterationCap; i++ {
		expanded := gen.expand(best, wordList, cfg.MaxAttempts)
		if countWords(expanded) <= countWords(best) {
			break
		}
		best = expanded
	}

	finalGrid := finalizeBlocks(best)
	slots := slot.ExtractFromGrid(finalGrid)
	clues := make(map[string]string, len(slots))
	for _, s := range slots {
		word := wordAt(finalGrid, s)
		clues[fmt.Sprintf("%d-%s", s.Number, s.Direction)] = gen.Lexicon.ClueForWord(word).Clue
		s.Clue = clues[fmt.Sprintf("%d-%s", s.Number, s.Direction)]
	}

	return &Puzzle{
		Grid:  finalGrid,
		Slots: slots,
		Clues: clues,
		Metadata: Metadata{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
	}, nil
}

func (gen *Generator) buildWordList(width int) []string {
	minLen := width - 2
	if minLen < 3 {
		minLen = 3
	}
	maxLen := width + 2
	if maxLen > 12 {
		maxLen = 12
	}
	var words []string
	seen := make(map[string]bool)
	type scoredWord struct {
		word  string
		score int
	}
	var scored []scoredWord
	for l := minLen; l <= maxLen; l++ {
		for _, e := range gen.Lexicon.ByLength(l, 20) {
			if seen[e.Word] {
				continue
			}
			seen[e.Word] = true
			scored = append(scored, scoredWord{e.Word, e.Score})
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].score != scored[j].score {
			return scored[i].score > scored[j].score
		}
		return gen.Rand.Float64() < 0.5
	})
	for _, sw := range scored {
		words = append(words, sw.word)
	}
	return words
}

func (gen *Generator) pickSeedWord(initial string, wordList []string, usedFirstLetters map[byte]bool) string {
	if initial != "" {
		return initial
	}
	for _, w := range wordList {
		if !usedFirstLetters[w[0]] {
			return w
		}
	}
	top := wordList
	if len(top) > 10 {
		top = top[:10]
	}
	if len(top) == 0 {
		return ""
	}
	return top[gen.Rand.Intn(len(top))]
}

// seedPlacements centers the seed word both horizontally and
// vertically, producing the two candidate starting puzzles SPEC_FULL.md
// §4.3 describes.
func (gen *Generator) seedPlacements(width, height int, word string) []*gridmodel.Grid {
	var grids []*gridmodel.Grid
	if len(word) <= width {
		g := gridmodel.NewGrid(width, height)
		place(g, word, (width-len(word))/2, height/2, gridmodel.Across)
		grids = append(grids, g)
	}
	if len(word) <= height {
		g := gridmodel.NewGrid(width, height)
		place(g, word, width/2, (height-len(word))/2, gridmodel.Down)
		grids = append(grids, g)
	}
	return grids
}

// expand runs the bounded placement search from SPEC_FULL.md §4.3: for
// each candidate word, find every legal placement on g, score it, and
// commit the best-scoring one; words that cannot be placed are tried
// again once after the main list is exhausted.
func (gen *Generator) expand(g *gridmodel.Grid, words []string, maxAttempts int) *gridmodel.Grid {
	work := g.Clone()
	mainList := append([]string(nil), words...)
	var triedLater []string
	swapped := false
	placements := 0

	for len(mainList) > 0 && placements < maxAttempts {
		head := mainList[0]
		mainList = mainList[1:]

		if bestX, bestY, bestDir, ok := bestPlacementFor(gen.Lexicon, work, head); ok {
			place(work, head, bestX, bestY, bestDir)
			placements++
			continue
		}

		triedLater = append(triedLater, head)
		if len(mainList) == 0 && !swapped {
			mainList = triedLater
			triedLater = nil
			swapped = true
		}
	}
	return work
}

func bestPlacementFor(lex *lexicon.Lexicon, g *gridmodel.Grid, word string) (x, y int, dir gridmodel.Direction, ok bool) {
	base := lexicon.Score(word)
	bestScore := -1
	found := false

	for i := 0; i < len(word); i++ {
		for gy := 0; gy < g.Height; gy++ {
			for gx := 0; gx < g.Width; gx++ {
				if g.At(gx, gy) != gridmodel.Letter(word[i]) {
					continue
				}
				for _, dirCandidate := range []gridmodel.Direction{gridmodel.Across, gridmodel.Down} {
					x0, y0 := cellAt(gx, gy, -i, dirCandidate)
					legal, _ := canPlace(g, word, x0, y0, dirCandidate)
					if !legal {
						continue
					}
					score := placementScore(g, word, x0, y0, dirCandidate, base)
					if score > bestScore {
						bestScore = score
						x, y, dir = x0, y0, dirCandidate
						found = true
					}
				}
			}
		}
	}
	return x, y, dir, found
}

func removeWord(words []string, target string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w != target {
			out = append(out, w)
		}
	}
	return out
}

func countWords(g *gridmodel.Grid) int {
	return len(slot.ExtractFromGrid(finalizeBlocks(g)))
}

// finalizeBlocks converts every cell the search never touched into
// Block, per SPEC_FULL.md §9's decision to keep EmptyGrid/solved-grid
// transformation non-mutating and explicit.
func finalizeBlocks(g *gridmodel.Grid) *gridmodel.Grid {
	out := g.Clone()
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			if out.At(x, y) == gridmodel.Empty {
				out.Set(x, y, gridmodel.Block)
			}
		}
	}
	return out
}

func wordAt(g *gridmodel.Grid, s *slot.Slot) string {
	b := make([]byte, s.Length)
	for i := 0; i < s.Length; i++ {
		x, y := s.Cell(i)
		b[i] = byte(g.At(x, y))
	}
	return string(b)
}
