package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type CommandKind int

const (
	Open CommandKind = iota
	Flag
	Restart
	Quit
)

type Command struct {
	Kind     CommandKind
	Row, Col int
}

var ErrQuit = errors.New("quit")

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"o": 2,
	"f": 2,
	"n": 0,
	"q": 0,
}

func parseRowCol(twoStrings []string) (row int, col int, err error) {
	if row, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = errors.New("row must be an int")
		return
	}
	if col, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = errors.New("column must be an int")
		return
	}
	return
}

func ParseCommand(line string) (Command, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return Command{}, errors.New("empty command")
	}
	verb := strings.ToLower(parts[0])
	nargs, ok := commandNargs[verb]
	if !ok {
		return Command{}, fmt.Errorf("unknown command %q", parts[0])
	}
	if nargs != len(parts)-1 {
		return Command{}, fmt.Errorf(
			"command %q takes %d arguments, got %d", verb, nargs, len(parts)-1,
		)
	}
	switch verb {
	case "o", "f":
		row, col, err := parseRowCol(parts[1:])
		if err != nil {
			return Command{}, err
		}
		kind := Open
		if verb == "f" {
			kind = Flag
		}
		return Command{Kind: kind, Row: row, Col: col}, nil
	case "n":
		return Command{Kind: Restart}, nil
	default:
		return Command{Kind: Quit}, nil
	}
}

// Apply runs c against the session. Quit is reported as [ErrQuit].
func (s *Session) Apply(c Command) error {
	switch c.Kind {
	case Open:
		s.Reveal(c.Row, c.Col)
	case Flag:
		s.ToggleFlag(c.Row, c.Col)
	case Restart:
		return s.Restart()
	case Quit:
		return ErrQuit
	default:
		return fmt.Errorf("invalid command kind %d", c.Kind)
	}
	return nil
}
