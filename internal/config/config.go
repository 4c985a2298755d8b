// internal/config/config.go
//
// Process configuration for Lucky Thirteen.
// Responsibilities:
//   - Parse settings from environment variables (with .env support wired in
//     by main via godotenv).
//   - Validate the game rules before a board is ever dealt: bad settings are
//     a startup error, never a mid-game surprise.
//   - Hand the engine a game.Config it can trust.
//
// Every knob has a playable default; running the binary with no environment
// at all deals the classic 5x5 board with target 13.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/chrisnorman7/lucky-thirteen/internal/game"
)

// Validation errors. Wrapped with the offending value by Validate.
var (
	ErrBoardSize  = errors.New("board size must be between 3 and 9")
	ErrTargetSum  = errors.New("target sum must be positive")
	ErrMaxValue   = errors.New("max tile value must be positive and below the target sum")
	ErrPenaltyMax = errors.New("penalty max must be positive and below the target sum")
)

// Config is the full process configuration.
type Config struct {
	// Game rules.
	BoardSize  int `env:"BOARD_SIZE"  envDefault:"5"`
	TargetSum  int `env:"TARGET_SUM"  envDefault:"13"`
	MaxValue   int `env:"MAX_VALUE"   envDefault:"12"`
	PenaltyMax int `env:"PENALTY_MAX" envDefault:"12"`

	// Seeding. A non-zero SEED pins the deal for practice and bug reports.
	// DAILY instead derives the seed from today's date, so everyone playing
	// the daily board gets the same deal.
	Seed      int64  `env:"SEED"       envDefault:"0"`
	Daily     bool   `env:"DAILY"      envDefault:"false"`
	DailySalt string `env:"DAILY_SALT" envDefault:"lucky-thirteen"`

	// Speech output. SPEECH_CMD names an external synthesizer ("say",
	// "espeak", "spd-say"); empty disables speech and leaves the transcript
	// as the only narration.
	SpeechCmd   string `env:"SPEECH_CMD"`
	SpeechVoice string `env:"SPEECH_VOICE"`

	// Logging. The terminal is owned by the UI, so logs only go to a file;
	// an empty LOG_FILE disables logging entirely.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"LOG_FILE"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the game rules for playability. The value bounds keep the
// target unreachable from a single tile, which the single-tile re-roll rule
// depends on.
func (c Config) Validate() error {
	if c.BoardSize < 3 || c.BoardSize > 9 {
		return fmt.Errorf("%w (got %d)", ErrBoardSize, c.BoardSize)
	}
	if c.TargetSum <= 0 {
		return fmt.Errorf("%w (got %d)", ErrTargetSum, c.TargetSum)
	}
	if c.MaxValue <= 0 || c.MaxValue >= c.TargetSum {
		return fmt.Errorf("%w (got %d with target %d)", ErrMaxValue, c.MaxValue, c.TargetSum)
	}
	if c.PenaltyMax <= 0 || c.PenaltyMax >= c.TargetSum {
		return fmt.Errorf("%w (got %d with target %d)", ErrPenaltyMax, c.PenaltyMax, c.TargetSum)
	}
	return nil
}

// Game returns the engine's view of the configuration.
func (c Config) Game() game.Config {
	return game.Config{
		BoardSize:  c.BoardSize,
		TargetSum:  c.TargetSum,
		MaxValue:   c.MaxValue,
		PenaltyMax: c.PenaltyMax,
	}
}
