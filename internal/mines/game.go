package mines

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

type Outcome int

const (
	InProgress Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

type RevealKind int

const (
	NoChange RevealKind = iota
	Revealed
	MineHit
)

type RevealResult struct {
	Kind   RevealKind
	Count  int // adjacent mines of the revealed cell
	Opened int // cells that became revealed
}

// Board is the state of one game. It is not safe for concurrent use; a new
// game gets a new Board.
type Board struct {
	GameParams

	mines    MineField
	revealed []bool
	flagged  []bool
	flags    int

	dead    bool
	won     bool
	hitMine int
}

// NewGame places mines for a preset difficulty.
func NewGame(d Difficulty, r *rand.Rand) (*Board, error) {
	p, ok := d.Params()
	if !ok {
		return nil, ConfigError{p, "difficulty " + d.String() + " has no preset"}
	}
	return NewBoard(p, r)
}

func NewBoard(p GameParams, r *rand.Rand) (*Board, error) {
	field, err := PlaceMines(p, r)
	if err != nil {
		return nil, err
	}
	return newBoard(p, field), nil
}

func newBoard(p GameParams, field MineField) *Board {
	n := p.CellCount()
	return &Board{
		GameParams: p,
		mines:      field,
		revealed:   make([]bool, n),
		flagged:    make([]bool, n),
		hitMine:    -1,
	}
}

func (b *Board) Params() GameParams {
	return b.GameParams
}

func (b *Board) over() bool {
	return b.dead || b.won
}

// CountAdjacentMines counts mines in the 3x3 block around row, col without
// the centre, clipped to the grid.
func (b *Board) CountAdjacentMines(row, col int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			rr, cc := row+dr, col+dc
			if b.PointInBounds(rr, cc) && b.mines[rr*b.Cols+cc] {
				n++
			}
		}
	}
	return n
}

func (b *Board) AdjacentMineCount(row, col int) int {
	if !b.PointInBounds(row, col) {
		return 0
	}
	return b.CountAdjacentMines(row, col)
}

func (b *Board) IsRevealed(row, col int) bool {
	return b.PointInBounds(row, col) && b.revealed[row*b.Cols+col]
}

func (b *Board) IsFlagged(row, col int) bool {
	return b.PointInBounds(row, col) && b.flagged[row*b.Cols+col]
}

// IsMine only answers for revealed cells while the game is in progress.
func (b *Board) IsMine(row, col int) bool {
	if !b.PointInBounds(row, col) {
		return false
	}
	i := row*b.Cols + col
	if !b.over() && !b.revealed[i] {
		return false
	}
	return b.mines[i]
}

// reveal marks i revealed unless it already is. The check is the only thing
// that keeps the flood fill from queueing a cell twice.
func (b *Board) reveal(i int, todo *celltodo) bool {
	if b.revealed[i] {
		return false
	}
	b.revealed[i] = true
	if b.flagged[i] {
		b.flagged[i] = false
		b.flags--
	}
	todo.add(i)
	return true
}

func (b *Board) RevealCell(row, col int) RevealResult {
	if b.over() || !b.PointInBounds(row, col) {
		return RevealResult{Kind: NoChange}
	}

	todo := newCelltodo(b.CellCount())
	start := row*b.Cols + col
	if !b.reveal(start, todo) {
		return RevealResult{Kind: NoChange}
	}

	if b.mines[start] {
		b.dead = true
		b.hitMine = start
		Log.WithFields(logrus.Fields{
			"row": row, "col": col,
		}).Debug("mine hit")
		return RevealResult{Kind: MineHit, Opened: 1}
	}

	/*
	 * Work through the queue. A cell without neighbouring mines
	 * queues its whole 3x3 block, itself included; cells that are
	 * already revealed are turned away by reveal.
	 */
	res := RevealResult{Kind: Revealed, Count: b.CountAdjacentMines(row, col)}
	for {
		i, ok := todo.pop()
		if !ok {
			break
		}
		res.Opened++
		r, c := i/b.Cols, i%b.Cols
		if b.CountAdjacentMines(r, c) != 0 {
			continue
		}
		for rr := r - 1; rr <= r+1; rr++ {
			for cc := c - 1; cc <= c+1; cc++ {
				if b.PointInBounds(rr, cc) {
					b.reveal(rr*b.Cols+cc, todo)
				}
			}
		}
	}

	if b.EvaluateOutcome() == Won {
		b.won = true
		Log.WithField("params", b.GameParams.String()).Debug("board cleared")
	}

	return res
}

// ToggleFlag returns the change in placed flags: +1, -1, or 0 when nothing
// happened.
func (b *Board) ToggleFlag(row, col int) int {
	if b.over() || !b.PointInBounds(row, col) {
		return 0
	}
	i := row*b.Cols + col
	if b.revealed[i] {
		return 0
	}
	b.flagged[i] = !b.flagged[i]
	if b.flagged[i] {
		b.flags++
		return +1
	}
	b.flags--
	return -1
}

func (b *Board) FlagsPlaced() int {
	return b.flags
}

// RemainingFlagCount goes negative when more flags than mines are placed.
func (b *Board) RemainingFlagCount() int {
	return b.MineCount - b.flags
}

func (b *Board) EvaluateOutcome() Outcome {
	if b.dead {
		return Lost
	}
	covered := 0
	for i, mine := range b.mines {
		if !mine && !b.revealed[i] {
			covered++
		}
	}
	if covered == 0 {
		return Won
	}
	return InProgress
}

// Forfeit ends a game in progress as lost without opening anything.
func (b *Board) Forfeit() {
	if !b.over() {
		b.dead = true
	}
}

func (b *Board) View() Grid {
	grid := make(Grid, b.CellCount())
	for i := range grid {
		r, c := i/b.Cols, i%b.Cols
		switch {
		case b.revealed[i] && b.mines[i]:
			grid[i] = ExplodedMine
		case b.revealed[i]:
			grid[i] = CellState(b.CountAdjacentMines(r, c))
		case b.flagged[i]:
			grid[i] = Flagged
		default:
			grid[i] = Unknown
		}
	}

	switch {
	case b.won:
		for i, mine := range b.mines {
			if mine {
				grid[i] = Flagged
			}
		}
	case b.dead:
		for i, mine := range b.mines {
			switch {
			case i == b.hitMine:
			case b.flagged[i] && mine:
				grid[i] = CorrectlyFlagged
			case b.flagged[i]:
				grid[i] = FalselyFlagged
			case mine:
				grid[i] = UnflaggedMine
			}
		}
	}

	return grid
}
