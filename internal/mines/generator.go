package mines

import (
	"fmt"
	"strings"
	"time"
)

type GameParams struct {
	Rows, Cols, MineCount int
}

func (p GameParams) Unpack() (rows int, cols int, mc int) {
	return p.Rows, p.Cols, p.MineCount
}

func (p GameParams) String() string {
	return fmt.Sprintf("%dx%d/%d", p.Rows, p.Cols, p.MineCount)
}

// MaxCellCount bounds Rows*Cols so that cell indices never overflow and a
// board stays a reasonable allocation.
const MaxCellCount = 1 << 20

func (p GameParams) CellCount() int {
	return p.Rows * p.Cols
}

// Validate reports a [ConfigError] unless both dimensions are positive,
// Rows*Cols fits in [MaxCellCount] and 0 < MineCount < Rows*Cols.
func (p GameParams) Validate() error {
	switch {
	case p.Rows <= 0:
		return ConfigError{p, fmt.Sprintf("rows must be positive, got %d", p.Rows)}
	case p.Cols <= 0:
		return ConfigError{p, fmt.Sprintf("cols must be positive, got %d", p.Cols)}
	case p.Rows > MaxCellCount/p.Cols:
		return ConfigError{p, fmt.Sprintf("grid exceeds %d cells", MaxCellCount)}
	case p.MineCount <= 0:
		return ConfigError{p, fmt.Sprintf("mine count must be positive, got %d", p.MineCount)}
	case p.MineCount >= p.CellCount():
		return ConfigError{p, fmt.Sprintf(
			"mine count %d leaves no safe cell on %d cells", p.MineCount, p.CellCount(),
		)}
	}
	return nil
}

func (p GameParams) PointInBounds(row, col int) bool {
	return 0 <= row && row < p.Rows && 0 <= col && col < p.Cols
}

type Difficulty int

const (
	Beginner Difficulty = iota
	Intermediate
	Advanced
	Custom
)

var presets = map[Difficulty]GameParams{
	Beginner:     {Rows: 6, Cols: 9, MineCount: 11},
	Intermediate: {Rows: 12, Cols: 18, MineCount: 36},
	Advanced:     {Rows: 21, Cols: 26, MineCount: 92},
}

var timeLimits = map[Difficulty]time.Duration{
	Beginner:     60 * time.Second,
	Intermediate: 180 * time.Second,
	Advanced:     660 * time.Second,
}

func (d Difficulty) String() string {
	switch d {
	case Beginner:
		return "beginner"
	case Intermediate:
		return "intermediate"
	case Advanced:
		return "advanced"
	case Custom:
		return "custom"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beginner", "b":
		return Beginner, nil
	case "intermediate", "i":
		return Intermediate, nil
	case "advanced", "a":
		return Advanced, nil
	case "custom", "c":
		return Custom, nil
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}

// Params returns the preset grid for d. Custom has no preset and reports
// false.
func (d Difficulty) Params() (GameParams, bool) {
	p, ok := presets[d]
	return p, ok
}

// TimeLimit is zero for difficulties without a limit.
func (d Difficulty) TimeLimit() time.Duration {
	return timeLimits[d]
}
