// Command crossword is the CLI front end for the puzzle construction
// core: generate puzzles, solve clue lists, look up lexicon entries,
// and inspect the archive of previously generated puzzles.
package main

import (
	"fmt"
	"os"

	"github.com/crossplay/crossword/cmd/crossword/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
