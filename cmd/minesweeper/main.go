package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"hash/maphash"
	"io"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/mines"
	"github.com/vancomm/minesweeper/internal/session"
)

var (
	log = logrus.New()

	configPath     string
	difficultyName string
	customGrid     string
)

func init() {
	const (
		configUsage     = "config file path"
		difficultyUsage = "beginner, intermediate, advanced or custom"
		customUsage     = `custom grid, e.g. "rows=8&cols=8&mines=10"`
	)
	flag.StringVar(&configPath, "config", "", configUsage)
	flag.StringVar(&configPath, "c", "", configUsage+" (shorthand)")
	flag.StringVar(&difficultyName, "difficulty", "", difficultyUsage)
	flag.StringVar(&difficultyName, "d", "", difficultyUsage+" (shorthand)")
	flag.StringVar(&customGrid, "custom", "", customUsage)
}

func setupLogging(cfg config.Config) error {
	level, err := cfg.LogLevel()
	if err != nil {
		return err
	}

	for _, l := range []*logrus.Logger{log, mines.Log} {
		l.SetLevel(level)
		l.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	}

	if cfg.Log.File == "" {
		return nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   cfg.Log.File,
		MaxSize:    cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAgeDays,
		Level:      level,
		Formatter:  &logrus.JSONFormatter{TimestampFormat: time.RFC3339},
	})
	if err != nil {
		return fmt.Errorf("unable to open log file: %w", err)
	}
	// the board owns the terminal once logs have somewhere else to go
	for _, l := range []*logrus.Logger{log, mines.Log} {
		l.AddHook(hook)
		l.SetOutput(io.Discard)
	}
	return nil
}

func createRand(seed uint64) *rand.Rand {
	if seed != 0 {
		return rand.New(rand.NewPCG(seed, seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// readLines is left outside the errgroup: a blocked Scan on stdin cannot be
// interrupted, so waiting for it would hold up shutdown. The process exits
// once play returns.
func readLines(ctx context.Context, r io.Reader, lines chan<- string) {
	defer close(lines)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			return
		}
	}
	if err := scanner.Err(); err != nil {
		log.Error("read input: ", err)
	}
}

func tick(ctx context.Context, ticks chan<- time.Duration) error {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			select {
			case ticks <- time.Second:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

// play is the only goroutine that touches s.
func play(
	ctx context.Context, s *session.Session,
	lines <-chan string, ticks <-chan time.Duration, w io.Writer,
) error {
	render(w, s)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d := <-ticks:
			if s.Tick(d) {
				fmt.Fprintln(w, "\nYour time is up!")
				render(w, s)
			}
		case line, ok := <-lines:
			if !ok {
				return session.ErrQuit
			}
			c, err := session.ParseCommand(line)
			if err != nil {
				log.Debug("command: ", err)
				fmt.Fprintln(w, err)
				fmt.Fprintln(w, usage)
				continue
			}
			if err := s.Apply(c); err != nil {
				return err
			}
			render(w, s)
		}
	}
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatal(err)
	}
	if difficultyName != "" {
		cfg.Difficulty = difficultyName
	}
	if customGrid != "" {
		cfg.Difficulty = mines.Custom.String()
		cfg.Custom = customGrid
	}

	if err := setupLogging(cfg); err != nil {
		log.Fatal(err)
	}
	log.WithFields(cfg.Fields()).Debug("config")

	d, params, limit, err := cfg.Game()
	if err != nil {
		log.Fatal("unable to set up game: ", err)
	}

	s, err := session.New(d, params, limit, createRand(cfg.Seed), log)
	if err != nil {
		log.Fatal("unable to start game: ", err)
	}

	g, gCtx := errgroup.WithContext(mainCtx)
	lines := make(chan string)
	ticks := make(chan time.Duration)

	go readLines(gCtx, os.Stdin, lines)
	g.Go(func() error {
		return tick(gCtx, ticks)
	})
	g.Go(func() error {
		return play(gCtx, s, lines, ticks, os.Stdout)
	})

	if err := g.Wait(); err != nil &&
		!errors.Is(err, session.ErrQuit) && !errors.Is(err, context.Canceled) {
		log.Error("exit reason: ", err)
	}
}
