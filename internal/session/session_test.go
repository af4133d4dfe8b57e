package session

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/mines"
)

func newTestSession(t *testing.T, d mines.Difficulty) (*Session, *test.Hook) {
	t.Helper()
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	params, ok := d.Params()
	require.True(t, ok)
	s, err := New(d, params, d.TimeLimit(), rand.New(rand.NewPCG(1, 2)), logger)
	require.NoError(t, err)
	return s, hook
}

// findMine locates a mine by probing a copy of the game dealt from the same
// seed.
func findMine(t *testing.T, d mines.Difficulty) (int, int) {
	t.Helper()
	params, _ := d.Params()
	for row := range params.Rows {
		for col := range params.Cols {
			probe, _ := newTestSession(t, d)
			if probe.Reveal(row, col).Kind == mines.MineHit {
				return row, col
			}
		}
	}
	t.Fatal("no mine found")
	return -1, -1
}

func TestNew(t *testing.T) {
	s, hook := newTestSession(t, mines.Beginner)

	assert.NotEqual(t, "00000000-0000-0000-0000-000000000000", s.ID.String())
	assert.Equal(t, mines.InProgress, s.Outcome())
	assert.Equal(t, 60*time.Second, s.TimeLimit)
	assert.Equal(t, 11, s.Board.RemainingFlagCount())

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, "new game", entry.Message)
	assert.Equal(t, s.ID.String(), entry.Data["session_id"])
	assert.Equal(t, "beginner", entry.Data["difficulty"])
	assert.Equal(t, "6x9/11", entry.Data["params"])
}

func TestNewInvalid(t *testing.T) {
	logger, _ := test.NewNullLogger()
	s, err := New(
		mines.Custom, mines.GameParams{Rows: 1, Cols: 1, MineCount: 1}, 0,
		rand.New(rand.NewPCG(1, 2)), logger,
	)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, mines.ErrInvalidConfiguration)
}

func TestTickExpiresOnce(t *testing.T) {
	s, hook := newTestSession(t, mines.Beginner)

	for range 59 {
		assert.False(t, s.Tick(time.Second))
	}
	assert.Equal(t, time.Second, s.TimeLeft())
	assert.Equal(t, mines.InProgress, s.Outcome())

	assert.True(t, s.Tick(time.Second))
	assert.True(t, s.TimedOut)
	assert.Equal(t, mines.Lost, s.Outcome())
	assert.Zero(t, s.TimeLeft())
	assert.Equal(t, "time is up, game lost", hook.LastEntry().Message)

	assert.False(t, s.Tick(time.Second))
	assert.Equal(t, 60*time.Second, s.Elapsed)

	res := s.Reveal(0, 0)
	assert.Equal(t, mines.NoChange, res.Kind)
	assert.Zero(t, s.ToggleFlag(0, 0))
}

func TestTickWithoutLimit(t *testing.T) {
	logger, _ := test.NewNullLogger()
	s, err := New(
		mines.Custom, mines.GameParams{Rows: 4, Cols: 4, MineCount: 3}, 0,
		rand.New(rand.NewPCG(1, 2)), logger,
	)
	require.NoError(t, err)

	for range 1000 {
		assert.False(t, s.Tick(time.Second))
	}
	assert.Equal(t, mines.InProgress, s.Outcome())
	assert.Zero(t, s.TimeLeft())
}

func TestTickStopsAfterLoss(t *testing.T) {
	row, col := findMine(t, mines.Beginner)
	s, hook := newTestSession(t, mines.Beginner)

	s.Tick(5 * time.Second)
	res := s.Reveal(row, col)
	assert.Equal(t, mines.MineHit, res.Kind)
	assert.Equal(t, "mine hit, game lost", hook.LastEntry().Message)

	assert.False(t, s.Tick(time.Hour))
	assert.Equal(t, 5*time.Second, s.Elapsed)
	assert.False(t, s.TimedOut)
}

func TestRestart(t *testing.T) {
	row, col := findMine(t, mines.Beginner)
	s, _ := newTestSession(t, mines.Beginner)
	s.ToggleFlag(0, 0)
	s.Tick(10 * time.Second)
	s.Reveal(row, col)
	require.Equal(t, mines.Lost, s.Outcome())

	oldID, oldBoard := s.ID, s.Board
	require.NoError(t, s.Restart())

	assert.NotEqual(t, oldID, s.ID)
	assert.NotSame(t, oldBoard, s.Board)
	assert.Equal(t, mines.Lost, oldBoard.EvaluateOutcome())
	assert.Equal(t, mines.InProgress, s.Outcome())
	assert.Equal(t, oldBoard.Params(), s.Board.Params())
	assert.Zero(t, s.Elapsed)
	assert.Zero(t, s.Board.FlagsPlaced())
}

func TestToggleFlagRemaining(t *testing.T) {
	s, hook := newTestSession(t, mines.Beginner)

	assert.Equal(t, +1, s.ToggleFlag(2, 3))
	entry := hook.LastEntry()
	assert.Equal(t, "flag toggled", entry.Message)
	assert.Equal(t, 10, entry.Data["remaining"])

	assert.Equal(t, -1, s.ToggleFlag(2, 3))
	assert.Equal(t, 11, hook.LastEntry().Data["remaining"])
}
