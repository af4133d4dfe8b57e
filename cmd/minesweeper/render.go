package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/session"
)

const usage = "o <row> <col> open, f <row> <col> flag, n new game, q quit"

func render(w io.Writer, s *session.Session) {
	b := s.Board
	p := b.Params()

	var status strings.Builder
	fmt.Fprintf(&status, "%s %s  flags left: %d  ", s.Difficulty, p, b.RemainingFlagCount())
	if s.TimeLimit > 0 {
		fmt.Fprintf(&status, "time left: %ds", int(s.TimeLeft().Seconds()))
	} else {
		fmt.Fprintf(&status, "time: %ds", int(s.Elapsed.Seconds()))
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, status.String())

	digits := make([]string, p.Cols)
	for col := range digits {
		digits[col] = strconv.Itoa(col % 10)
	}
	fmt.Fprintln(w, "     "+strings.Join(digits, " "))

	rows := strings.Split(strings.TrimSuffix(b.View().ToString(p.Cols), "\n"), "\n")
	for row, line := range rows {
		fmt.Fprintf(w, "%3d  %s\n", row, line)
	}

	switch b.EvaluateOutcome() {
	case mines.Won:
		fmt.Fprintln(w, "You cleared the board! n to play again, q to quit.")
	case mines.Lost:
		if !s.TimedOut {
			fmt.Fprintln(w, "You hit a mine! Game over.")
		}
		fmt.Fprintln(w, "n to play again, q to quit.")
	default:
		fmt.Fprintln(w, usage)
	}
}
