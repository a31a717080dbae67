package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/crossplay/crossword/pkg/gridmodel"
	"github.com/crossplay/crossword/pkg/lexicon"
	"github.com/crossplay/crossword/pkg/output"
	"github.com/crossplay/crossword/pkg/slot"
	"github.com/crossplay/crossword/pkg/solver"
)

var (
	solveInput     string
	solveOutput    string
	solveFormat    string
	solveAlgorithm string
)

// solveClueJSON is one clue in a solve-input file.
type solveClueJSON struct {
	Number    int    `json:"number"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Length    int    `json:"length"`
	Direction string `json:"direction"`
	Clue      string `json:"clue"`
}

// solveInputJSON is the wire shape the solve subcommand reads: a block
// grid skeleton plus the clue list to fill it against.
type solveInputJSON struct {
	Grid   []string        `json:"grid"`
	Across []solveClueJSON `json:"across"`
	Down   []solveClueJSON `json:"down"`
}

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Fill a crossword grid from a clue list",
	Long: `Solve reads a grid skeleton and clue list from a JSON input file and
fills it using the requested search algorithm (DFS, A*, or Hybrid),
then writes the solved puzzle in the requested output format(s).

Example:
  crossword solve --input skeleton.json --algorithm HYBRID --output solved.json`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)

	solveCmd.Flags().StringVarP(&solveInput, "input", "i", "", "input grid+clue JSON file (required)")
	solveCmd.Flags().StringVarP(&solveOutput, "output", "o", "solved.json", "output file path (its extension is replaced per format)")
	solveCmd.Flags().StringVarP(&solveFormat, "format", "f", "json", "output format (json, puz, ipuz, all)")
	solveCmd.Flags().StringVarP(&solveAlgorithm, "algorithm", "a", "HYBRID", "search algorithm: DFS, A*, or HYBRID")
	solveCmd.MarkFlagRequired("input")
}

func runSolve(cmd *cobra.Command, args []string) error {
	formats, err := parseFormats(solveFormat)
	if err != nil {
		return err
	}
	algo, err := parseAlgorithm(solveAlgorithm)
	if err != nil {
		return err
	}

	raw, err := os.ReadFile(solveInput)
	if err != nil {
		return fmt.Errorf("solve: read input: %w", err)
	}
	var in solveInputJSON
	if err := json.Unmarshal(raw, &in); err != nil {
		return fmt.Errorf("solve: parse input: %w", err)
	}

	g, err := parseSkeleton(in.Grid)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	clues := append(toClueInputs(in.Across, gridmodel.Across), toClueInputs(in.Down, gridmodel.Down)...)

	log.WithField("dir", cfg.CorpusDir).Info("loading corpus")
	lex, err := lexicon.LoadCorpusDir(cfg.CorpusDir, log)
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}

	start := time.Now()
	result, err := solver.Solve(g, clues, algo, solver.Options{Lexicon: lex, Log: log})
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	log.WithFields(map[string]interface{}{
		"status":   result.Status,
		"elapsed":  time.Since(start),
		"placed":   result.Metrics.WordsPlaced,
		"total":    result.Metrics.TotalWords,
	}).Info("solve finished")

	slots := slot.ExtractFromClues(g, clues)
	doc := output.FromSlots(result.Grid, slots, "", "")
	return writeDoc(doc, solveOutput, 0, 1, formats)
}

func parseAlgorithm(s string) (solver.Algorithm, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DFS":
		return solver.DFS, nil
	case "A*", "ASTAR":
		return solver.AStar, nil
	case "HYBRID":
		return solver.Hybrid, nil
	default:
		return "", fmt.Errorf("invalid algorithm %q: must be DFS, A*, or HYBRID", s)
	}
}

func parseSkeleton(rows []string) (*gridmodel.Grid, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty grid skeleton")
	}
	width := len(rows[0])
	grid := make([][]gridmodel.Letter, len(rows))
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has width %d, want %d", y, len(row), width)
		}
		cells := make([]gridmodel.Letter, width)
		for x := 0; x < width; x++ {
			if row[x] == '#' {
				cells[x] = gridmodel.Block
			} else {
				cells[x] = gridmodel.Empty
			}
		}
		grid[y] = cells
	}
	return gridmodel.NewGridFromRows(grid)
}

func toClueInputs(clues []solveClueJSON, dir gridmodel.Direction) []slot.ClueInput {
	out := make([]slot.ClueInput, len(clues))
	for i, c := range clues {
		out[i] = slot.ClueInput{Number: c.Number, X: c.X, Y: c.Y, Length: c.Length, Direction: dir, Clue: c.Clue}
	}
	return out
}
