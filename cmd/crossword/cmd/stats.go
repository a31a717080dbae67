package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crossplay/crossword/internal/archive"
)

var statsDB string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Display puzzle archive statistics",
	Long: `Display aggregate counts of puzzles previously recorded by "generate"
into the archive database.

Example:
  crossword stats --db ./crossword_archive.db`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVarP(&statsDB, "db", "d", "", "path to the archive database (default: config CROSSWORD_ARCHIVE_DB)")
}

func runStats(cmd *cobra.Command, args []string) error {
	dbPath := statsDB
	if dbPath == "" {
		dbPath = cfg.ArchiveDBPath
	}

	arc, err := archive.Open(dbPath)
	if err != nil {
		return fmt.Errorf("stats: %w", err)
	}
	defer arc.Close()

	counts, err := arc.Stats()
	if err != nil {
		return fmt.Errorf("stats: %w", err)
	}

	fmt.Printf("\nPuzzle Archive Statistics\n")
	fmt.Printf("=========================\n")
	fmt.Printf("Database: %s\n\n", dbPath)

	if len(counts) == 0 {
		fmt.Println("  No archived puzzles found")
		return nil
	}

	total := 0
	for _, d := range []string{"easy", "medium", "hard"} {
		if n, ok := counts[d]; ok {
			fmt.Printf("  %-10s: %d\n", d, n)
			total += n
		}
	}
	fmt.Printf("  %-10s: %d\n", "TOTAL", total)
	return nil
}
