package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crossplay/crossword/pkg/lexicon"
)

var (
	lookupLength int
	lookupLimit  int
	lookupByWord bool
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [clue or word]",
	Short: "Query the lexicon",
	Long: `Look up candidate words for a clue, or (with --word) look up the clue
and metadata for an exact word.

Examples:
  crossword lookup "Feline pet" --length 3
  crossword lookup CAT --word`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

func init() {
	rootCmd.AddCommand(lookupCmd)

	lookupCmd.Flags().IntVarP(&lookupLength, "length", "l", 0, "restrict results to this exact word length (0 = any)")
	lookupCmd.Flags().IntVar(&lookupLimit, "limit", 10, "maximum number of results")
	lookupCmd.Flags().BoolVarP(&lookupByWord, "word", "w", false, "treat the argument as an exact word, not a clue")
}

func runLookup(cmd *cobra.Command, args []string) error {
	log.WithField("dir", cfg.CorpusDir).Info("loading corpus")
	lex, err := lexicon.LoadCorpusDir(cfg.CorpusDir, log)
	if err != nil {
		return fmt.Errorf("lookup: %w", err)
	}

	query := args[0]
	if lookupByWord {
		e := lex.ClueForWord(query)
		if e.Word == "" {
			return fmt.Errorf("lookup: no entry for word %q", query)
		}
		fmt.Printf("%s: %s (score %d)\n", e.Word, e.Clue, e.Score)
		return nil
	}

	rng := lexicon.LengthRange{Min: lookupLength, Max: lookupLength}
	if lookupLength == 0 {
		rng = lexicon.LengthRange{Min: 1, Max: 30}
	}
	entries := lex.PossibleWords(query, lookupLimit, rng)
	if len(entries) == 0 {
		fmt.Println("no matches found")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("%-15s %s (score %d)\n", e.Word, e.Clue, e.Score)
	}
	return nil
}
