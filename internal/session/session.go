// Package session drives a single game: it owns the board, feeds it player
// commands and enforces the time limit from caller-supplied ticks.
//
// A Session is not safe for concurrent use. Whatever goroutine reads player
// input must also deliver the ticks.
package session

import (
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/mines"
)

type Session struct {
	ID         uuid.UUID
	Difficulty mines.Difficulty
	Board      *mines.Board
	TimeLimit  time.Duration
	Elapsed    time.Duration
	TimedOut   bool

	params mines.GameParams
	rnd    *rand.Rand
	log    logrus.FieldLogger
}

// New starts a game. A zero timeLimit disables the limit.
func New(
	d mines.Difficulty, params mines.GameParams, timeLimit time.Duration,
	rnd *rand.Rand, logger logrus.FieldLogger,
) (*Session, error) {
	s := &Session{
		Difficulty: d,
		TimeLimit:  timeLimit,
		params:     params,
		rnd:        rnd,
		log:        logger,
	}
	if err := s.Restart(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Session) logger() logrus.FieldLogger {
	return s.log.WithFields(logrus.Fields{
		"session_id": s.ID.String(),
		"difficulty": s.Difficulty.String(),
	})
}

// Restart throws the current board away and deals a new one with the same
// params.
func (s *Session) Restart() error {
	board, err := mines.NewBoard(s.params, s.rnd)
	if err != nil {
		return err
	}
	s.ID = uuid.New()
	s.Board = board
	s.Elapsed = 0
	s.TimedOut = false
	s.logger().WithField("params", s.params.String()).Info("new game")
	return nil
}

func (s *Session) Outcome() mines.Outcome {
	return s.Board.EvaluateOutcome()
}

func (s *Session) Reveal(row, col int) mines.RevealResult {
	res := s.Board.RevealCell(row, col)
	log := s.logger().WithFields(logrus.Fields{
		"row": row, "col": col, "opened": res.Opened,
	})
	switch res.Kind {
	case mines.NoChange:
		log.Debug("reveal ignored")
	case mines.MineHit:
		log.Info("mine hit, game lost")
	case mines.Revealed:
		log.WithField("count", res.Count).Debug("revealed")
		if s.Outcome() == mines.Won {
			log.WithField("elapsed", s.Elapsed.String()).Info("game won")
		}
	}
	return res
}

func (s *Session) ToggleFlag(row, col int) int {
	delta := s.Board.ToggleFlag(row, col)
	s.logger().WithFields(logrus.Fields{
		"row": row, "col": col, "delta": delta,
		"remaining": s.Board.RemainingFlagCount(),
	}).Debug("flag toggled")
	return delta
}

// Tick advances the play clock by d. It reports true exactly once, on the
// tick that runs out the time limit; the board is forfeited at that point.
func (s *Session) Tick(d time.Duration) bool {
	if s.Outcome() != mines.InProgress {
		return false
	}
	s.Elapsed += d
	if s.TimeLimit <= 0 || s.Elapsed < s.TimeLimit {
		return false
	}
	s.Board.Forfeit()
	s.TimedOut = true
	s.logger().WithField("limit", s.TimeLimit.String()).Info("time is up, game lost")
	return true
}

func (s *Session) TimeLeft() time.Duration {
	if s.TimeLimit <= 0 {
		return 0
	}
	return max(s.TimeLimit-s.Elapsed, 0)
}
