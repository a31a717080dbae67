package gridmodel

import "fmt"

// Difficulty names a row of the calibration tables below: a density
// band, a word-length range and a word-count multiplier. Calibration
// values mirror the teacher's difficulty table, extended with the
// density bands SPEC_FULL.md names. The Generator does not read these
// tables; its word list and placement search depend on grid size only.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// DensityBand returns the inclusive [min, max] density target for a
// difficulty, per the Generate input/output contract.
func DensityBand(d Difficulty) (min, max float64, err error) {
	switch d {
	case Easy:
		return 0.35, 0.50, nil
	case Medium:
		return 0.60, 0.69, nil
	case Hard:
		return 0.80, 1.00, nil
	default:
		return 0, 0, fmt.Errorf("gridmodel: unknown difficulty %q", d)
	}
}

// WordLengthRange returns the [min, max] word length calibrated for a
// difficulty. The Generator's candidate word list is built from the grid
// width and does not use it.
func WordLengthRange(d Difficulty) (min, max int, err error) {
	switch d {
	case Easy:
		return 3, 6, nil
	case Medium:
		return 4, 9, nil
	case Hard:
		return 5, 12, nil
	default:
		return 0, 0, fmt.Errorf("gridmodel: unknown difficulty %q", d)
	}
}

// WordCountMultiplier returns the word-count multiplier calibrated for a
// difficulty, relative to a size-only baseline. The Generator has no
// target word count and does not use it.
func WordCountMultiplier(d Difficulty) (float64, error) {
	switch d {
	case Easy:
		return 0.7, nil
	case Medium:
		return 1.0, nil
	case Hard:
		return 1.3, nil
	default:
		return 0, fmt.Errorf("gridmodel: unknown difficulty %q", d)
	}
}
