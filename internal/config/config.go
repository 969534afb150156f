// Package config holds the terminal's tunable constants. Values come from
// CARDBANK_* environment variables, optionally seeded from a dotenv file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/mcoot/cardbank/internal/model"
)

// Hard limits on the player count regardless of configuration
const (
	AbsoluteMinPlayers = model.MinPlayers
	AbsoluteMaxPlayers = model.MaxPlayers
)

// Terminal holds the bounds, thresholds, and timings used by the terminal
type Terminal struct {
	// Player count prompt
	MinPlayers     int `env:"CARDBANK_MIN_PLAYERS" envDefault:"2"`
	MaxPlayers     int `env:"CARDBANK_MAX_PLAYERS" envDefault:"6"`
	DefaultPlayers int `env:"CARDBANK_DEFAULT_PLAYERS" envDefault:"4"`

	// Starting balance prompt
	StartMin     int64 `env:"CARDBANK_START_MIN" envDefault:"1000"`
	StartMax     int64 `env:"CARDBANK_START_MAX" envDefault:"5000"`
	StartStep    int64 `env:"CARDBANK_START_STEP" envDefault:"100"`
	StartDefault int64 `env:"CARDBANK_START_DEFAULT" envDefault:"1500"`

	// Transaction amount prompt
	TxMin        int64 `env:"CARDBANK_TX_MIN" envDefault:"0"`
	TxMax        int64 `env:"CARDBANK_TX_MAX" envDefault:"5000"`
	TxCoarseStep int64 `env:"CARDBANK_TX_COARSE_STEP" envDefault:"100"`
	TxFineStep   int64 `env:"CARDBANK_TX_FINE_STEP" envDefault:"1"`

	// House and hotel counters
	CounterMax int64 `env:"CARDBANK_COUNTER_MAX" envDefault:"50"`

	// Display geometry
	DisplayRows int `env:"CARDBANK_DISPLAY_ROWS" envDefault:"2"`
	DisplayCols int `env:"CARDBANK_DISPLAY_COLS" envDefault:"16"`

	// Joystick thresholds on a 0-1023 scale
	AxisHigh int `env:"CARDBANK_AXIS_HIGH" envDefault:"900"`
	AxisLow  int `env:"CARDBANK_AXIS_LOW" envDefault:"200"`

	// Timing
	InvalidCardDelay time.Duration `env:"CARDBANK_INVALID_CARD_DELAY" envDefault:"1500ms"`
	SuccessDelay     time.Duration `env:"CARDBANK_SUCCESS_DELAY" envDefault:"1000ms"`
	PollCadence      time.Duration `env:"CARDBANK_POLL_CADENCE" envDefault:"200ms"`
	SampleInterval   time.Duration `env:"CARDBANK_SAMPLE_INTERVAL" envDefault:"5ms"`
	ExitSettle       time.Duration `env:"CARDBANK_EXIT_SETTLE" envDefault:"500ms"`
}

// Default returns the built-in configuration without reading the environment
func Default() Terminal {
	return Terminal{
		MinPlayers:       2,
		MaxPlayers:       6,
		DefaultPlayers:   4,
		StartMin:         1000,
		StartMax:         5000,
		StartStep:        100,
		StartDefault:     1500,
		TxMin:            0,
		TxMax:            5000,
		TxCoarseStep:     100,
		TxFineStep:       1,
		CounterMax:       50,
		DisplayRows:      2,
		DisplayCols:      16,
		AxisHigh:         900,
		AxisLow:          200,
		InvalidCardDelay: 1500 * time.Millisecond,
		SuccessDelay:     1000 * time.Millisecond,
		PollCadence:      200 * time.Millisecond,
		SampleInterval:   5 * time.Millisecond,
		ExitSettle:       500 * time.Millisecond,
	}
}

// Load reads the configuration from the environment. Any dotenv files given
// are loaded first; missing files are ignored.
func Load(dotenvFiles ...string) (Terminal, error) {
	for _, f := range dotenvFiles {
		if f == "" {
			continue
		}
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Terminal{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Terminal
	if err := env.Parse(&cfg); err != nil {
		return Terminal{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Terminal{}, err
	}
	return cfg, nil
}

// Validate checks that every bound is consistent
func (c Terminal) Validate() error {
	switch {
	case c.MinPlayers < AbsoluteMinPlayers || c.MaxPlayers > AbsoluteMaxPlayers || c.MinPlayers > c.MaxPlayers:
		return invalid("player bounds must satisfy %d <= min <= max <= %d", AbsoluteMinPlayers, AbsoluteMaxPlayers)
	case c.DefaultPlayers < c.MinPlayers || c.DefaultPlayers > c.MaxPlayers:
		return invalid("default players %d outside [%d,%d]", c.DefaultPlayers, c.MinPlayers, c.MaxPlayers)
	case c.StartMin > c.StartMax || c.StartStep <= 0:
		return invalid("starting balance bounds [%d,%d] step %d", c.StartMin, c.StartMax, c.StartStep)
	case c.StartDefault < c.StartMin || c.StartDefault > c.StartMax:
		return invalid("default starting balance %d outside [%d,%d]", c.StartDefault, c.StartMin, c.StartMax)
	case c.TxMin > c.TxMax || c.TxCoarseStep <= 0 || c.TxFineStep <= 0:
		return invalid("transaction bounds [%d,%d] steps %d/%d", c.TxMin, c.TxMax, c.TxCoarseStep, c.TxFineStep)
	case c.CounterMax < 0:
		return invalid("counter max %d is negative", c.CounterMax)
	case c.DisplayRows < 1 || c.DisplayCols < 1:
		return invalid("display must have at least one row and column")
	case c.AxisLow >= c.AxisHigh:
		return invalid("axis low threshold %d must be below high %d", c.AxisLow, c.AxisHigh)
	}
	return nil
}

// WithoutDelays returns a copy with every display delay removed. The sample
// interval is kept so idle waits on a live input stream do not spin.
func (c Terminal) WithoutDelays() Terminal {
	c.InvalidCardDelay = 0
	c.SuccessDelay = 0
	c.PollCadence = 0
	c.ExitSettle = 0
	return c
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", model.ErrInvalidConfig, fmt.Sprintf(format, args...))
}
