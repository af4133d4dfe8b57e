package mines

import (
	"strconv"
	"strings"
)

type CellState int8

const (
	Unknown          CellState = -2
	Flagged          CellState = -1
	CorrectlyFlagged CellState = 64
	ExplodedMine     CellState = 65
	FalselyFlagged   CellState = 66
	UnflaggedMine    CellState = 67
	/*
	 * Each item of a [Grid] is one of the following values:
	 *
	 * 	- 0 to 8 mean the cell is revealed and has a surrounding mine
	 * 	  count.
	 *
	 * 	- -1 means the cell is flagged.
	 *
	 * 	- -2 means the cell is unknown.
	 *
	 * 	- 64 to 67 only appear once the game is lost: a flag on a mine,
	 * 	  the mine that was hit, a flag on a safe cell and a mine that
	 * 	  nobody flagged.
	 */
)

func (s CellState) Revealed() bool {
	return 0 <= s && s <= 8
}

func (s CellState) String() string {
	switch {
	case s == Unknown:
		return "-"
	case s == Flagged, s == CorrectlyFlagged:
		return "F"
	case s == 0:
		return "."
	case s.Revealed():
		return strconv.Itoa(int(s))
	case s == ExplodedMine:
		return "#"
	case s == FalselyFlagged:
		return "x"
	case s == UnflaggedMine:
		return "*"
	default:
		return "!"
	}
}

type Grid []CellState

// ToString lays the grid out width cells per line, glyphs separated by a
// single space. A short last row is kept as is.
func (g Grid) ToString(width int) string {
	var b strings.Builder
	glyphs := make([]string, 0, width)
	for start := 0; start < len(g); start += width {
		glyphs = glyphs[:0]
		for _, s := range g[start:min(start+width, len(g))] {
			glyphs = append(glyphs, s.String())
		}
		b.WriteString(strings.Join(glyphs, " "))
		b.WriteByte('\n')
	}
	return b.String()
}
