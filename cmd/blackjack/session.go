package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/lox/blackjack/internal/config"
	"github.com/lox/blackjack/internal/deck"
	"github.com/lox/blackjack/internal/game"
	"github.com/lox/blackjack/internal/randutil"
)

// GameFlags are shared by every command that runs a session. Non-zero flags
// override the config file.
type GameFlags struct {
	Config     string  `short:"c" default:"blackjack.hcl" env:"BLACKJACK_CONFIG" help:"HCL config file (defaults apply if missing)"`
	Decks      int     `env:"BLACKJACK_DECKS" help:"Number of decks in the shoe"`
	Multiplier float64 `env:"BLACKJACK_MULTIPLIER" help:"Blackjack payout multiplier"`
	Seed       int64   `env:"BLACKJACK_SEED" help:"Deterministic shuffle seed (0 for random)"`
	LogFile    string  `env:"BLACKJACK_LOG_FILE" help:"Log file, '-' for stderr"`
	Debug      bool    `help:"Enable debug logging"`
}

// load reads the config file and applies flag overrides
func (f *GameFlags) load() (*config.Config, error) {
	cfg, err := config.Load(f.Config)
	if err != nil {
		return nil, err
	}

	if f.Decks != 0 {
		cfg.Game.Decks = f.Decks
	}
	if f.Multiplier != 0 {
		cfg.Game.BlackjackMultiplier = f.Multiplier
	}
	if f.Seed != 0 {
		cfg.Game.Seed = f.Seed
	}
	if f.LogFile != "" {
		cfg.Log.File = f.LogFile
	}
	if f.Debug {
		cfg.Log.Level = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// openLogger creates the session logger. The terminal belongs to the game,
// so logs go to a file unless '-' asks for stderr.
func openLogger(cfg *config.Config, prefix string) (*log.Logger, io.Closer, error) {
	var out io.WriteCloser = nopCloser{os.Stderr}
	if cfg.Log.File != "-" {
		file, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = file
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          prefix,
		Level:           cfg.LogLevel(),
	})
	return logger, out, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// newRound wires a player, dealer and shoe into a round controller. A non-nil
// stack replaces the shuffled shoe with a fixed card order.
func newRound(cfg *config.Config, logger *log.Logger, stack []deck.Card) (*game.Round, int64, error) {
	rng, seed := randutil.FromSeed(cfg.Game.Seed)

	var shoe game.Shoe
	if stack != nil {
		shoe = deck.NewStackedShoe(stack...)
	} else {
		s, err := deck.NewShoe(cfg.Game.Decks, rng)
		if err != nil {
			return nil, 0, err
		}
		shoe = s
	}

	round := game.NewRound(game.NewPlayer(), game.NewDealer(), shoe, cfg.Game.BlackjackMultiplier,
		game.WithLogger(logger))
	return round, seed, nil
}
