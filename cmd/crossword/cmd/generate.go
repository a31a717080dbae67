package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/crossplay/crossword/internal/archive"
	"github.com/crossplay/crossword/pkg/generator"
	"github.com/crossplay/crossword/pkg/gridmodel"
	"github.com/crossplay/crossword/pkg/lexicon"
	"github.com/crossplay/crossword/pkg/output"
)

var (
	genCount      int
	genDifficulty string
	genWidth      int
	genHeight     int
	genOutput     string
	genFormat     string
	genTitle      string
	genAuthor     string
	genSeed       int64
	genArchive    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate crossword puzzles",
	Long: `Generate one or more crossword puzzles by incremental word-placement
search against the lexicon loaded from the corpus directory.

Examples:
  # Generate 10 easy 13x13 puzzles in JSON format
  crossword generate --count 10 --difficulty easy --size 13 --format json --output ./puzzles

  # Generate a single hard puzzle in all formats
  crossword generate --difficulty hard --format all --output ./puzzle`,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntVarP(&genCount, "count", "n", 1, "number of puzzles to generate")
	generateCmd.Flags().StringVarP(&genDifficulty, "difficulty", "d", "", "puzzle difficulty (easy, medium, hard)")
	generateCmd.Flags().IntVar(&genWidth, "width", 0, "grid width (defaults to --size)")
	generateCmd.Flags().IntVar(&genHeight, "height", 0, "grid height (defaults to --size)")
	generateCmd.Flags().IntVar(&genWidth, "size", 0, "grid width and height (square grid)")
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", ".", "output directory or file path")
	generateCmd.Flags().StringVarP(&genFormat, "format", "f", "json", "output format (json, puz, ipuz, all)")
	generateCmd.Flags().StringVar(&genTitle, "title", "Crossword", "puzzle title stamped into the output")
	generateCmd.Flags().StringVar(&genAuthor, "author", "crossword", "puzzle author stamped into the output")
	generateCmd.Flags().Int64Var(&genSeed, "seed", 0, "random seed override (0 uses the config/time-seeded default)")
	generateCmd.Flags().BoolVar(&genArchive, "archive", true, "record generated puzzles to the archive database")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	difficulty, err := parseDifficulty(genDifficulty)
	if err != nil {
		return err
	}
	formats, err := parseFormats(genFormat)
	if err != nil {
		return err
	}

	size := cfg.DefaultSize
	if genWidth > 0 {
		size = genWidth
	}
	height := size
	if genHeight > 0 {
		height = genHeight
	}

	log.WithField("dir", cfg.CorpusDir).Info("loading corpus")
	lex, err := lexicon.LoadCorpusDir(cfg.CorpusDir, log)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	log.WithField("entries", lex.Len()).Info("corpus loaded")

	seed := genSeed
	if seed == 0 {
		seed = cfg.RandSeed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var arc *archive.Archive
	if genArchive {
		arc, err = archive.Open(cfg.ArchiveDBPath)
		if err != nil {
			return fmt.Errorf("generate: %w", err)
		}
		defer arc.Close()
	}

	if !isFilePath(genOutput) {
		if err := os.MkdirAll(genOutput, 0755); err != nil {
			return fmt.Errorf("generate: create output dir: %w", err)
		}
	}

	gen := generator.New(lex, rng, log)
	for i := 0; i < genCount; i++ {
		puzzle, err := gen.Generate(generator.Config{
			Width:      size,
			Height:     height,
			Difficulty: difficulty,
		})
		if err != nil {
			return fmt.Errorf("generate: puzzle %d: %w", i+1, err)
		}
		log.WithFields(map[string]interface{}{
			"puzzle": i + 1,
			"words":  len(puzzle.Slots),
			"density": puzzle.Grid.Density(),
		}).Info("puzzle generated")

		if arc != nil {
			if err := arc.Record(puzzle, difficulty); err != nil {
				log.WithError(err).Warn("failed to archive puzzle")
			}
		}

		doc := output.FromPuzzle(puzzle, genTitle, genAuthor, difficulty)
		if err := writeDoc(doc, genOutput, i, genCount, formats); err != nil {
			return err
		}
	}
	return nil
}

func parseDifficulty(s string) (gridmodel.Difficulty, error) {
	if s == "" {
		s = cfg.DefaultDifficulty
	}
	switch strings.ToLower(s) {
	case "easy":
		return gridmodel.Easy, nil
	case "medium":
		return gridmodel.Medium, nil
	case "hard":
		return gridmodel.Hard, nil
	default:
		return "", fmt.Errorf("invalid difficulty %q: must be easy, medium, or hard", s)
	}
}

func parseFormats(s string) ([]string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "all" {
		return []string{"json", "puz", "ipuz"}, nil
	}
	var out []string
	for _, f := range strings.Split(s, ",") {
		f = strings.TrimSpace(f)
		switch f {
		case "json", "puz", "ipuz":
			out = append(out, f)
		default:
			return nil, fmt.Errorf("unsupported format %q: must be json, puz, ipuz, or all", f)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("no output format specified")
	}
	return out, nil
}

func isFilePath(p string) bool {
	return filepath.Ext(p) != ""
}

func writeDoc(doc *output.Document, outPath string, index, count int, formats []string) error {
	base := outPath
	if !isFilePath(outPath) {
		name := fmt.Sprintf("puzzle-%03d", index+1)
		if count == 1 {
			name = "puzzle"
		}
		base = filepath.Join(outPath, name)
	} else {
		base = strings.TrimSuffix(outPath, filepath.Ext(outPath))
	}

	for _, format := range formats {
		var data []byte
		var err error
		var ext string
		switch format {
		case "json":
			data, err = output.ToJSON(doc)
			ext = ".json"
		case "puz":
			data, err = output.FormatPuz(doc)
			ext = ".puz"
		case "ipuz":
			data, err = output.ToIPuz(doc)
			ext = ".ipuz"
		}
		if err != nil {
			return fmt.Errorf("generate: format %s: %w", format, err)
		}
		path := base + ext
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("generate: write %s: %w", path, err)
		}
		fmt.Println(path)
	}
	return nil
}
