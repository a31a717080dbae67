package generator

import (
	"github.com/crossplay/crossword/pkg/gridmodel"
)

// canPlace reports whether word legally occupies the span starting at
// (x0, y0) along dir in g, per SPEC_FULL.md §4.3's expansion-loop fit
// rule, and returns how many of its letters land on already-filled
// (intersecting) cells.
func canPlace(g *gridmodel.Grid, word string, x0, y0 int, dir gridmodel.Direction) (ok bool, intersections int) {
	length := len(word)
	for i := 0; i < length; i++ {
		x, y := cellAt(x0, y0, i, dir)
		if !g.InBounds(x, y) {
			return false, 0
		}
		cur := g.At(x, y)
		if cur.IsLetter() {
			if cur != gridmodel.Letter(word[i]) {
				return false, 0
			}
			intersections++
		}
	}
	if intersections == 0 {
		return false, 0
	}

	beforeX, beforeY := cellAt(x0, y0, -1, dir)
	afterX, afterY := cellAt(x0, y0, length, dir)
	if g.InBounds(beforeX, beforeY) && g.At(beforeX, beforeY).IsLetter() {
		return false, 0
	}
	if g.InBounds(afterX, afterY) && g.At(afterX, afterY).IsLetter() {
		return false, 0
	}

	for i := 0; i < length; i++ {
		x, y := cellAt(x0, y0, i, dir)
		if g.At(x, y).IsLetter() {
			continue // intersection cell, not a new empty position
		}
		px1, py1, px2, py2 := perpendicularNeighbors(x, y, dir)
		if g.InBounds(px1, py1) && g.At(px1, py1).IsLetter() {
			return false, 0
		}
		if g.InBounds(px2, py2) && g.At(px2, py2).IsLetter() {
			return false, 0
		}
	}

	return true, intersections
}

func cellAt(x0, y0, i int, dir gridmodel.Direction) (x, y int) {
	if dir == gridmodel.Across {
		return x0 + i, y0
	}
	return x0, y0 + i
}

func perpendicularNeighbors(x, y int, dir gridmodel.Direction) (x1, y1, x2, y2 int) {
	if dir == gridmodel.Across {
		return x, y - 1, x, y + 1
	}
	return x - 1, y, x + 1, y
}

// place writes word into g along dir starting at (x0, y0). Callers must
// have already verified canPlace.
func place(g *gridmodel.Grid, word string, x0, y0 int, dir gridmodel.Direction) {
	for i := 0; i < len(word); i++ {
		x, y := cellAt(x0, y0, i, dir)
		g.Set(x, y, gridmodel.Letter(word[i]))
	}
}

// placementScore implements SPEC_FULL.md §4.3's placement scoring: base
// word score, plus a "potential" term favoring future crossings, grid
// centrality, and letter reuse.
func placementScore(g *gridmodel.Grid, word string, x0, y0 int, dir gridmodel.Direction, baseScore int) int {
	length := len(word)
	potential := 0

	for i := 0; i < length; i++ {
		x, y := cellAt(x0, y0, i, dir)
		if g.At(x, y).IsLetter() {
			continue
		}
		if hasFilledNeighbor(g, x, y) {
			potential++
		}
	}

	cx, cy := cellAt(x0, y0, length/2, dir)
	dist := manhattan(cx, cy, g.Width/2, g.Height/2)
	centerBonus := 10 - dist
	if centerBonus < 0 {
		centerBonus = 0
	}
	potential += centerBonus / 2

	present := make(map[byte]bool)
	for i := 0; i < length; i++ {
		if wordLetterAppearsInGrid(g, word[i]) {
			present[word[i]] = true
		}
	}
	potential += 2 * len(present)

	return baseScore + potential
}

func hasFilledNeighbor(g *gridmodel.Grid, x, y int) bool {
	for _, d := range [][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
		nx, ny := x+d[0], y+d[1]
		if g.InBounds(nx, ny) && g.At(nx, ny).IsLetter() {
			return true
		}
	}
	return false
}

func manhattan(x1, y1, x2, y2 int) int {
	dx := x1 - x2
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y2
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

func wordLetterAppearsInGrid(g *gridmodel.Grid, c byte) bool {
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.At(x, y) == gridmodel.Letter(c) {
				return true
			}
		}
	}
	return false
}
