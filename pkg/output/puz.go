package output

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sort"
	"strings"
)

// FormatPuz converts a Document to .puz binary format, the format used
// by AcrossLite and compatible solvers.
func FormatPuz(doc *Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("output: document cannot be nil")
	}
	if doc.Width <= 0 || doc.Height <= 0 || doc.Width > 255 || doc.Height > 255 {
		return nil, fmt.Errorf("output: invalid grid dimensions for .puz: %dx%d", doc.Width, doc.Height)
	}

	solution := buildSolutionString(doc)
	state := strings.Repeat("-", len(solution))

	title := doc.Title
	author := doc.Author
	copyright := fmt.Sprintf("© %s", author)
	clues := buildClueStrings(doc)

	width := byte(doc.Width)
	height := byte(doc.Height)
	numClues := uint16(len(doc.Across) + len(doc.Down))

	cib := computeCIB(width, height, numClues, 0x0001, 0x0000)

	buf := new(bytes.Buffer)
	if err := writeHeader(buf, width, height, numClues, cib, solution, state); err != nil {
		return nil, fmt.Errorf("output: write .puz header: %w", err)
	}
	if err := writeStrings(buf, title, author, copyright, clues); err != nil {
		return nil, fmt.Errorf("output: write .puz strings: %w", err)
	}
	return buf.Bytes(), nil
}

func buildSolutionString(doc *Document) string {
	var solution strings.Builder
	for y := 0; y < doc.Height; y++ {
		for x := 0; x < doc.Width; x++ {
			cell := doc.Grid[y][x]
			if cell == "#" {
				solution.WriteByte('.')
			} else {
				solution.WriteString(cell)
			}
		}
	}
	return solution.String()
}

func buildClueStrings(doc *Document) []string {
	type numberedClue struct {
		number int
		text   string
		down   bool
	}
	all := make([]numberedClue, 0, len(doc.Across)+len(doc.Down))
	for _, c := range doc.Across {
		all = append(all, numberedClue{c.Number, c.Text, false})
	}
	for _, c := range doc.Down {
		all = append(all, numberedClue{c.Number, c.Text, true})
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].number != all[j].number {
			return all[i].number < all[j].number
		}
		return !all[i].down && all[j].down
	})

	texts := make([]string, len(all))
	for i, c := range all {
		texts[i] = c.text
	}
	return texts
}

func writeHeader(buf *bytes.Buffer, width, height byte, numClues uint16, cib uint16, solution, state string) error {
	globalCksum := uint16(0)

	buf.WriteString("ACROSS&DOWN\x00")
	binary.Write(buf, binary.LittleEndian, globalCksum)
	buf.WriteString("ICHEATED")
	binary.Write(buf, binary.LittleEndian, uint16(0))
	for i := 0; i < 4; i++ {
		binary.Write(buf, binary.LittleEndian, uint16(0))
	}
	buf.WriteString("1.3\x00")
	binary.Write(buf, binary.LittleEndian, uint16(0))
	binary.Write(buf, binary.LittleEndian, uint16(0))
	buf.Write(make([]byte, 4))
	buf.WriteByte(width)
	buf.WriteByte(height)
	binary.Write(buf, binary.LittleEndian, numClues)
	binary.Write(buf, binary.LittleEndian, uint16(0x0001))
	binary.Write(buf, binary.LittleEndian, uint16(0x0000))
	buf.WriteString(solution)
	buf.WriteString(state)
	_ = cib
	return nil
}

func writeStrings(buf *bytes.Buffer, title, author, copyright string, clues []string) error {
	buf.WriteString(title)
	buf.WriteByte(0)
	buf.WriteString(author)
	buf.WriteByte(0)
	buf.WriteString(copyright)
	buf.WriteByte(0)
	for _, clue := range clues {
		buf.WriteString(clue)
		buf.WriteByte(0)
	}
	return nil
}

func computeCIB(width, height byte, numClues, puzzleType, scrambledState uint16) uint16 {
	cksum := uint16(0)
	cksum = checksumRegion(cksum, []byte{width, height})

	numCluesBytes := make([]byte, 2)
	binary.LittleEndian.PutUint16(numCluesBytes, numClues)
	cksum = checksumRegion(cksum, numCluesBytes)

	puzzleTypeBytes := make([]byte, 2)
	binary.LittleEndian.PutUint16(puzzleTypeBytes, puzzleType)
	cksum = checksumRegion(cksum, puzzleTypeBytes)

	scrambledStateBytes := make([]byte, 2)
	binary.LittleEndian.PutUint16(scrambledStateBytes, scrambledState)
	cksum = checksumRegion(cksum, scrambledStateBytes)

	return cksum
}

func checksumRegion(cksum uint16, data []byte) uint16 {
	for _, b := range data {
		if cksum&0x0001 != 0 {
			cksum = (cksum >> 1) + 0x8000
		} else {
			cksum = cksum >> 1
		}
		cksum = (cksum + uint16(b)) & 0xFFFF
	}
	return cksum
}
