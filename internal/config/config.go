// Package config provides configuration for chess-play games.
package config

import (
	"io"
	"os"

	"github.com/lgbarn/minimax-chess-go/internal/chess"
)

// Player kinds accepted in PlayerConfig.Kind.
const (
	KindHuman     = "human"
	KindRandom    = "random"
	KindMinimax   = "minimax"
	KindAlphaBeta = "alphabeta"
)

// DefaultDepth is the search depth of players not given one.
const DefaultDepth = 3

// Config holds all program configuration.
type Config struct {
	Verbosity int `validate:"min=0,max=2"` // 0=nothing, 1=game summary, 2=running commentary

	// Who plays each side
	First  PlayerConfig
	Second PlayerConfig

	// Sub-configurations
	Game   GameConfig
	Search SearchConfig
	Output OutputConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values: two alpha-beta
// players at the default depth on the standard layout.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		First:      *NewPlayerConfig(KindAlphaBeta),
		Second:     *NewPlayerConfig(KindAlphaBeta),
		Game:       *NewGameConfig(),
		Search:     *NewSearchConfig(),
		Output:     *NewOutputConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Player returns the configuration of the player on side.
func (c *Config) Player(side chess.Side) PlayerConfig {
	if side == chess.Second {
		return c.Second
	}
	return c.First
}

// SetOutput sets the output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks every field of the configuration and reports all
// failures in one ErrInvalidConfig error.
func (c *Config) Validate() error {
	return check(c)
}
