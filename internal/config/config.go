package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

const (
	DefaultDecks      = 6
	DefaultMultiplier = 1.5
	DefaultLogLevel   = "info"
	DefaultLogFile    = "blackjack.log"

	// MaxDecks bounds the shoe size
	MaxDecks = 16
)

// Config represents the complete simulator configuration
type Config struct {
	Game GameSettings
	Log  LogSettings
}

// GameSettings contains rule settings for a session
type GameSettings struct {
	Decks               int
	BlackjackMultiplier float64
	// Seed drives shuffling; 0 means seed from the current time
	Seed int64
}

// LogSettings contains logging settings
type LogSettings struct {
	Level string
	File  string
}

// file mirrors the HCL layout. Blocks are pointers so they may be omitted.
type file struct {
	Game *gameBlock `hcl:"game,block"`
	Log  *logBlock  `hcl:"log,block"`
}

type gameBlock struct {
	Decks               int     `hcl:"decks,optional"`
	BlackjackMultiplier float64 `hcl:"blackjack_multiplier,optional"`
	Seed                int64   `hcl:"seed,optional"`
}

type logBlock struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Game: GameSettings{
			Decks:               DefaultDecks,
			BlackjackMultiplier: DefaultMultiplier,
		},
		Log: LogSettings{
			Level: DefaultLogLevel,
			File:  DefaultLogFile,
		},
	}
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source, filling any omitted values with defaults
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw file
	diags = gohcl.DecodeBody(f.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config := Default()
	if raw.Game != nil {
		if raw.Game.Decks != 0 {
			config.Game.Decks = raw.Game.Decks
		}
		if raw.Game.BlackjackMultiplier != 0 {
			config.Game.BlackjackMultiplier = raw.Game.BlackjackMultiplier
		}
		config.Game.Seed = raw.Game.Seed
	}
	if raw.Log != nil {
		if raw.Log.Level != "" {
			config.Log.Level = raw.Log.Level
		}
		if raw.Log.File != "" {
			config.Log.File = raw.Log.File
		}
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Game.Decks < 1 || c.Game.Decks > MaxDecks {
		return fmt.Errorf("decks must be between 1 and %d, got %d", MaxDecks, c.Game.Decks)
	}
	if c.Game.BlackjackMultiplier <= 0 {
		return fmt.Errorf("blackjack multiplier must be positive, got %g", c.Game.BlackjackMultiplier)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.Log.Level, err)
	}
	return nil
}

// LogLevel returns the parsed log level, falling back to info
func (c *Config) LogLevel() log.Level {
	level, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return level
}
