package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper/internal/mines"
)

// Duration reads either a [time.ParseDuration] string such as "3m" or a
// number of nanoseconds. It is written back as a string.
type Duration struct{ time.Duration }

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Duration.String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		parsed, err := time.ParseDuration(text)
		if err != nil {
			return err
		}
		d.Duration = parsed
		return nil
	}
	var ns int64
	if err := json.Unmarshal(data, &ns); err != nil {
		return fmt.Errorf("duration must be a string or nanoseconds, got %s", data)
	}
	d.Duration = time.Duration(ns)
	return nil
}

const (
	ModeProduction  = "production"
	ModeDevelopment = "development"
)

type LogConfig struct {
	Level      string `json:"level"`
	File       string `json:"file"`
	MaxSizeMB  int    `json:"max_size_mb"`
	MaxBackups int    `json:"max_backups"`
	MaxAgeDays int    `json:"max_age_days"`
}

type Config struct {
	Mode       string    `json:"mode"`
	Difficulty string    `json:"difficulty"`
	Custom     string    `json:"custom"`
	TimeLimit  Duration  `json:"time_limit"`
	Seed       uint64    `json:"seed"`
	Log        LogConfig `json:"log"`
}

func Default() Config {
	return Config{
		Mode:       ModeProduction,
		Difficulty: mines.Beginner.String(),
		Log: LogConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":           c.Mode,
		"difficulty":     c.Difficulty,
		"custom":         c.Custom,
		"time_limit":     c.TimeLimit.Duration.String(),
		"seed":           c.Seed,
		"log_level":      c.Log.Level,
		"log_file":       c.Log.File,
		"log_max_size":   c.Log.MaxSizeMB,
		"log_max_backup": c.Log.MaxBackups,
		"log_max_age":    c.Log.MaxAgeDays,
	}
}

func (c Config) Development() bool {
	return c.Mode == ModeDevelopment
}

// LogLevel falls back to debug in development mode and info otherwise.
func (c Config) LogLevel() (logrus.Level, error) {
	if c.Log.Level != "" {
		return logrus.ParseLevel(c.Log.Level)
	}
	if c.Development() {
		return logrus.DebugLevel, nil
	}
	return logrus.InfoLevel, nil
}

// Game resolves the difficulty into grid params and a time limit. A custom
// grid has no time limit unless one is configured; a configured limit
// overrides the preset one.
func (c Config) Game() (mines.Difficulty, mines.GameParams, time.Duration, error) {
	d, err := mines.ParseDifficulty(c.Difficulty)
	if err != nil {
		return 0, mines.GameParams{}, 0, err
	}
	var params mines.GameParams
	if d == mines.Custom {
		if c.Custom == "" {
			return 0, mines.GameParams{}, 0, errors.New("custom difficulty needs custom grid params")
		}
		if params, err = ParseCustom(c.Custom); err != nil {
			return 0, mines.GameParams{}, 0, err
		}
	} else {
		params, _ = d.Params()
	}
	limit := d.TimeLimit()
	if c.TimeLimit.Duration > 0 {
		limit = c.TimeLimit.Duration
	}
	return d, params, limit, nil
}

// readFile overlays the JSON at path onto config. Unknown keys are errors so
// that a misspelt setting does not silently fall back to its default.
func readFile(path string, config *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	return dec.Decode(config)
}

// Load layers the defaults, a .env file in the working directory, the JSON
// config at path (skipped when path is empty) and MINES_* env variables.
func Load(path string) (Config, error) {
	config := Default()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return config, fmt.Errorf("unable to load .env file: %w", err)
	}

	if path != "" {
		if err := readFile(path, &config); err != nil {
			return config, fmt.Errorf("unable to read config %s: %w", path, err)
		}
	}

	if err := applyEnv(&config); err != nil {
		return config, err
	}

	switch config.Mode {
	case ModeProduction, ModeDevelopment:
	default:
		return config, fmt.Errorf("unknown mode %q, want %s or %s",
			config.Mode, ModeProduction, ModeDevelopment)
	}

	return config, nil
}

func applyEnv(c *Config) error {
	strs := map[string]*string{
		"MINES_MODE":       &c.Mode,
		"MINES_DIFFICULTY": &c.Difficulty,
		"MINES_CUSTOM":     &c.Custom,
		"MINES_LOG_FILE":   &c.Log.File,
		"MINES_LOG_LEVEL":  &c.Log.Level,
	}
	for key, dst := range strs {
		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}

	if v, ok := os.LookupEnv("MINES_TIME_LIMIT"); ok {
		limit, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("unable to parse MINES_TIME_LIMIT: %w", err)
		}
		c.TimeLimit = Duration{limit}
	}

	if v, ok := os.LookupEnv("MINES_SEED"); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("unable to parse MINES_SEED: %w", err)
		}
		c.Seed = seed
	}

	return nil
}
